package migrate

import (
	"errors"
	"fmt"
	"regexp"

	"github.com/go-sql-driver/mysql"
)

// DefaultBatchSize is used when Config.BatchSize is zero.
const DefaultBatchSize = 500

var (
	// ErrMissingDSN indicates that no data source name was configured
	ErrMissingDSN = errors.New("migrate: missing DSN")

	// ErrInvalidIdentifier indicates a table or column name outside [A-Za-z0-9_$]
	ErrInvalidIdentifier = errors.New("migrate: invalid identifier")

	// ErrSameColumn indicates that source and target name the same column
	ErrSameColumn = errors.New("migrate: source and target must differ")
)

var identifier = regexp.MustCompile(`^[A-Za-z0-9_$]{1,64}$`)

// Direction selects which way a column is converted.
type Direction int

const (
	// ToBinary reads CHAR(36) text and writes BINARY(16).
	ToBinary Direction = iota
	// ToText reads BINARY(16) and writes CHAR(36) text.
	ToText
)

func (d Direction) String() string {
	switch d {
	case ToBinary:
		return "to-binary"
	case ToText:
		return "to-text"
	default:
		return fmt.Sprintf("Direction(%d)", int(d))
	}
}

// Config describes one column conversion.
type Config struct {
	DSN       string
	Table     string
	Key       string // primary key column, used to walk the table in order
	Source    string
	Target    string
	Direction Direction
	Swap      bool // binary side is in storage order
	BatchSize int
}

// Validate checks the configuration and fills in defaults.
func (c *Config) Validate() error {
	if c.DSN == "" {
		return ErrMissingDSN
	}
	if _, err := mysql.ParseDSN(c.DSN); err != nil {
		return fmt.Errorf("migrate: parse DSN: %w", err)
	}
	for _, name := range []string{c.Table, c.Key, c.Source, c.Target} {
		if !identifier.MatchString(name) {
			return fmt.Errorf("%w: %q", ErrInvalidIdentifier, name)
		}
	}
	if c.Source == c.Target {
		return ErrSameColumn
	}
	if c.Direction != ToBinary && c.Direction != ToText {
		return fmt.Errorf("migrate: unknown direction %v", c.Direction)
	}
	if c.BatchSize < 0 {
		return fmt.Errorf("migrate: negative batch size %d", c.BatchSize)
	}
	if c.BatchSize == 0 {
		c.BatchSize = DefaultBatchSize
	}
	return nil
}
