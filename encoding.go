package binuuid

import (
	"encoding/hex"
	"strings"
)

// EncodeToHex encodes the UUID to a hexadecimal string without hyphens
func (u UUID) EncodeToHex() string {
	return hex.EncodeToString(u[:])
}

// DecodeFromHex decodes 32 hexadecimal digits without hyphens to a UUID
func DecodeFromHex(s string) (UUID, error) {
	var uuid UUID
	if len(s) != 2*BinaryLength {
		return uuid, ErrInvalidFormat
	}
	if _, err := hex.Decode(uuid[:], []byte(s)); err != nil {
		return Nil, ErrInvalidFormat
	}
	return uuid, nil
}

// SQLLiteral returns the binary form of u as a MySQL hexadecimal literal,
// e.g. X'6ccd780cbaba102695645b8c656024db'. With swap set the literal holds
// the storage order, matching values written through Ordered.
func (u UUID) SQLLiteral(swap bool) string {
	if swap {
		u = u.ToStorageOrder()
	}
	var b strings.Builder
	b.Grow(3 + 2*BinaryLength)
	b.WriteString("X'")
	b.WriteString(u.EncodeToHex())
	b.WriteByte('\'')
	return b.String()
}
