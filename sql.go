package binuuid

import (
	"database/sql/driver"
	"fmt"
)

// Scan implements the sql.Scanner interface. It accepts the canonical text
// form or 16 bytes in natural order. NULL leaves u unchanged.
func (u *UUID) Scan(src interface{}) error {
	return scanInto(u, src, false)
}

func (u *UUID) scanBytes(src []byte, swap bool) error {
	switch len(src) {
	case 0:
		return nil
	case BinaryLength:
		id := MustFromBytes(src)
		if swap {
			id = id.FromStorageOrder()
		}
		*u = id
		return nil
	default:
		return u.UnmarshalText(src)
	}
}

// Value implements the driver.Valuer interface. It stores the canonical text
// form, suitable for CHAR(36) columns.
func (u UUID) Value() (driver.Value, error) {
	return u.String(), nil
}

// Binary stores a UUID in a BINARY(16) column in natural field order.
type Binary UUID

// Value implements the driver.Valuer interface
func (b Binary) Value() (driver.Value, error) {
	return UUID(b).Bytes(), nil
}

// Scan implements the sql.Scanner interface
func (b *Binary) Scan(src interface{}) error {
	return scanInto((*UUID)(b), src, false)
}

// MarshalText implements the encoding.TextMarshaler interface
func (b Binary) MarshalText() ([]byte, error) {
	return UUID(b).MarshalText()
}

// UnmarshalText implements the encoding.TextUnmarshaler interface
func (b *Binary) UnmarshalText(data []byte) error {
	return (*UUID)(b).UnmarshalText(data)
}

// UUID returns b as a plain UUID.
func (b Binary) UUID() UUID {
	return UUID(b)
}

// String returns the canonical text form.
func (b Binary) String() string {
	return UUID(b).String()
}

// Ordered stores a UUID in a BINARY(16) column in storage order. The Go value
// always holds the natural order; the swap happens at the driver boundary.
type Ordered UUID

// Value implements the driver.Valuer interface
func (o Ordered) Value() (driver.Value, error) {
	return UUID(o).ToStorageOrder().Bytes(), nil
}

// Scan implements the sql.Scanner interface. 16 byte values are taken to be
// in storage order; text is parsed as is.
func (o *Ordered) Scan(src interface{}) error {
	return scanInto((*UUID)(o), src, true)
}

// MarshalText implements the encoding.TextMarshaler interface. The text is
// the natural canonical form; storage order only applies to Value and Scan.
func (o Ordered) MarshalText() ([]byte, error) {
	return UUID(o).MarshalText()
}

// UnmarshalText implements the encoding.TextUnmarshaler interface
func (o *Ordered) UnmarshalText(data []byte) error {
	return (*UUID)(o).UnmarshalText(data)
}

// UUID returns o as a plain UUID.
func (o Ordered) UUID() UUID {
	return UUID(o)
}

// String returns the canonical text form.
func (o Ordered) String() string {
	return UUID(o).String()
}

func scanInto(u *UUID, src interface{}, swap bool) error {
	switch src := src.(type) {
	case nil:
		return nil
	case string:
		return u.UnmarshalText([]byte(src))
	case []byte:
		return u.scanBytes(src, swap)
	default:
		return fmt.Errorf("binuuid: cannot scan type %T into UUID", src)
	}
}
