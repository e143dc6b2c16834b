package binuuid

import "errors"

var (
	// ErrInvalidFormat indicates that the UUID text is not 32 hex digits with hyphens at 8, 13, 18 and 23
	ErrInvalidFormat = errors.New("binuuid: invalid UUID format")

	// ErrInvalidLength indicates that the UUID byte slice has incorrect length
	ErrInvalidLength = errors.New("binuuid: invalid UUID length (expected 16 bytes)")
)
