package binuuid

import (
	"encoding/hex"
	"fmt"
)

const (
	// TextLength is the length of the canonical form xxxxxxxx-xxxx-xxxx-xxxx-xxxxxxxxxxxx.
	TextLength = 36

	// BinaryLength is the length of the binary form.
	BinaryLength = 16
)

// UUID represents a Universally Unique Identifier as defined by RFC 4122 in
// its 16 byte binary form. The zero value is the nil UUID.
type UUID [BinaryLength]byte

// Version represents the UUID version
type Version byte

const (
	_ Version = iota
	VersionTimeBased
	VersionDCESecurity
	VersionNameBasedMD5
	VersionRandom
	VersionNameBasedSHA1
	_
	VersionTimeSorted
	VersionCustom
)

// Nil is the nil UUID (all zeros)
var Nil UUID

// isDash reports whether i is a hyphen position in the canonical text form.
func isDash(i int) bool {
	return i == 8 || i == 13 || i == 18 || i == 23
}

// Version returns the version nibble of the UUID. It is informational only;
// nothing in this package rejects a UUID because of its version.
func (u UUID) Version() Version {
	return Version(u[6] >> 4)
}

// String returns the canonical string representation of the UUID
// in the format: xxxxxxxx-xxxx-xxxx-xxxx-xxxxxxxxxxxx
func (u UUID) String() string {
	var buf [TextLength]byte
	encodeHex(buf[:], u)
	return string(buf[:])
}

// encodeHex writes the canonical lowercase form of u into dst, which must be
// at least TextLength bytes long.
func encodeHex(dst []byte, u UUID) {
	hex.Encode(dst[0:8], u[0:4])
	dst[8] = '-'
	hex.Encode(dst[9:13], u[4:6])
	dst[13] = '-'
	hex.Encode(dst[14:18], u[6:8])
	dst[18] = '-'
	hex.Encode(dst[19:23], u[8:10])
	dst[23] = '-'
	hex.Encode(dst[24:36], u[10:16])
}

// Parse parses a UUID from its canonical 36 character representation.
// Hex digits may be upper or lower case; nothing else is accepted.
func Parse(s string) (UUID, error) {
	var uuid UUID
	if len(s) != TextLength {
		return uuid, fmt.Errorf("%w: length %d", ErrInvalidFormat, len(s))
	}
	j := 0
	for i := 0; i < TextLength; i += 2 {
		if isDash(i) {
			if s[i] != '-' {
				return Nil, fmt.Errorf("%w: expected '-', got %q at %d", ErrInvalidFormat, s[i], i)
			}
			i++
		}
		hi, ok := fromHexChar(s[i])
		if !ok {
			return Nil, fmt.Errorf("%w: invalid hex digit %q at %d", ErrInvalidFormat, s[i], i)
		}
		lo, ok := fromHexChar(s[i+1])
		if !ok {
			return Nil, fmt.Errorf("%w: invalid hex digit %q at %d", ErrInvalidFormat, s[i+1], i+1)
		}
		uuid[j] = hi<<4 | lo
		j++
	}
	return uuid, nil
}

// ParseBytes is like Parse but accepts a byte slice.
func ParseBytes(b []byte) (UUID, error) {
	return Parse(string(b))
}

// MustParse is like Parse but panics if the string cannot be parsed.
// It simplifies safe initialization of global variables.
func MustParse(s string) UUID {
	uuid, err := Parse(s)
	if err != nil {
		panic(fmt.Sprintf("binuuid: Parse(%q): %v", s, err))
	}
	return uuid
}

// fromHexChar converts a hex character into its value. Setting bit 5 folds
// 'A'-'F' onto 'a'-'f'.
func fromHexChar(c byte) (byte, bool) {
	if c >= '0' && c <= '9' {
		return c - '0', true
	}
	c |= 0x20
	if c >= 'a' && c <= 'f' {
		return c - 'a' + 10, true
	}
	return 0, false
}

// Bytes returns the UUID as a byte slice
func (u UUID) Bytes() []byte {
	return u[:]
}

// IsNil returns true if the UUID is the nil UUID (all zeros)
func (u UUID) IsNil() bool {
	return u == Nil
}

// AppendText appends the canonical form of u to b.
func (u UUID) AppendText(b []byte) ([]byte, error) {
	var buf [TextLength]byte
	encodeHex(buf[:], u)
	return append(b, buf[:]...), nil
}

// MarshalText implements the encoding.TextMarshaler interface
func (u UUID) MarshalText() ([]byte, error) {
	return u.AppendText(make([]byte, 0, TextLength))
}

// UnmarshalText implements the encoding.TextUnmarshaler interface
func (u *UUID) UnmarshalText(data []byte) error {
	id, err := ParseBytes(data)
	if err != nil {
		return err
	}
	*u = id
	return nil
}

// MarshalBinary implements the encoding.BinaryMarshaler interface
func (u UUID) MarshalBinary() ([]byte, error) {
	return u[:], nil
}

// UnmarshalBinary implements the encoding.BinaryUnmarshaler interface
func (u *UUID) UnmarshalBinary(data []byte) error {
	id, err := FromBytes(data)
	if err != nil {
		return err
	}
	*u = id
	return nil
}

// FromBytes creates a UUID from a 16 byte slice
func FromBytes(b []byte) (UUID, error) {
	var uuid UUID
	if len(b) != BinaryLength {
		return uuid, ErrInvalidLength
	}
	copy(uuid[:], b)
	return uuid, nil
}

// MustFromBytes is like FromBytes but panics on error
func MustFromBytes(b []byte) UUID {
	uuid, err := FromBytes(b)
	if err != nil {
		panic(err)
	}
	return uuid
}

// Compare returns an integer comparing two UUIDs lexicographically.
// The result will be 0 if u==other, -1 if u < other, and +1 if u > other.
func (u UUID) Compare(other UUID) int {
	for i := 0; i < BinaryLength; i++ {
		if u[i] < other[i] {
			return -1
		}
		if u[i] > other[i] {
			return 1
		}
	}
	return 0
}

// Equal returns true if u and other represent the same UUID
func (u UUID) Equal(other UUID) bool {
	return u == other
}
