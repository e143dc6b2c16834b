// Package udf implements the call boundary of the UUID_TO_BIN and BIN_TO_UUID
// SQL functions: argument count and type checks, NULL propagation and the
// swap flag. Conversion itself is done by package binuuid.
package udf

import (
	"errors"
	"fmt"
	"math"
	"strings"

	"github.com/Lzww0608/binuuid"
)

var (
	// ErrArgCount indicates a call with no arguments or more than two
	ErrArgCount = errors.New("udf: wrong number of arguments")

	// ErrArgType indicates an argument of the wrong SQL type
	ErrArgType = errors.New("udf: wrong argument type")

	// ErrInvalidFlag indicates a swap flag other than 0 or 1
	ErrInvalidFlag = errors.New("udf: swap flag must be 0 or 1")
)

// ArgError is returned by Func.Check. Its message is the one reported to the
// SQL client.
type ArgError struct {
	Func string
	Msg  string
	Err  error
}

func (e *ArgError) Error() string {
	return e.Func + " " + e.Msg
}

func (e *ArgError) Unwrap() error {
	return e.Err
}

// Arg is a single SQL argument value. nil is SQL NULL, string and []byte are
// string values, and every Go integer type and bool are integer values. Any
// other type is rejected with ErrArgType.
type Arg = interface{}

// Result is the outcome of a successful call. When Null is set Value is nil.
type Result struct {
	Value []byte
	Null  bool
}

// String returns the value as a string, or "NULL".
func (r Result) String() string {
	if r.Null {
		return "NULL"
	}
	return string(r.Value)
}

// Func describes one of the conversion functions.
type Func struct {
	// Name is the SQL name of the function.
	Name string
	// MaxLength is the length of every non-NULL result.
	MaxLength int

	inputLength int
	inputKind   string
	convert     func([]byte, bool) ([]byte, error)
}

var (
	// UUIDToBin converts CHAR(36) text into 16 bytes.
	UUIDToBin = Func{
		Name:        "UUID_TO_BIN",
		MaxLength:   binuuid.BinaryLength,
		inputLength: binuuid.TextLength,
		inputKind:   "a string",
		convert:     binuuid.UUIDToBin,
	}

	// BinToUUID converts 16 bytes into CHAR(36) text.
	BinToUUID = Func{
		Name:        "BIN_TO_UUID",
		MaxLength:   binuuid.TextLength,
		inputLength: binuuid.BinaryLength,
		inputKind:   "a binary",
		convert:     binuuid.BinToUUID,
	}
)

// Funcs lists every function, for hosts that register them by name.
var Funcs = []Func{UUIDToBin, BinToUUID}

// Lookup finds a function by its SQL name, ignoring case.
func Lookup(name string) (Func, bool) {
	for _, f := range Funcs {
		if strings.EqualFold(f.Name, name) {
			return f, true
		}
	}
	return Func{}, false
}

// Check validates the argument list the way a host does once per statement.
// NULL values pass the type checks.
func (f Func) Check(args []Arg) error {
	switch {
	case len(args) < 1:
		return &ArgError{Func: f.Name, Msg: "requires at least one argument", Err: ErrArgCount}
	case len(args) > 2:
		return &ArgError{Func: f.Name, Msg: "accepts at most two arguments", Err: ErrArgCount}
	}

	if args[0] != nil && !isString(args[0]) {
		return &ArgError{Func: f.Name, Msg: "requires the first argument to be " + f.inputKind, Err: ErrArgType}
	}
	if len(args) == 2 && args[1] != nil {
		if _, ok := toInt(args[1]); !ok {
			return &ArgError{Func: f.Name, Msg: "requires the second argument to be an integer", Err: ErrArgType}
		}
	}
	return nil
}

// Call checks args and runs the conversion. A NULL or wrongly sized first
// argument, or text that is not a UUID, gives a NULL result. A swap flag
// outside {0, 1} is an error.
func (f Func) Call(args []Arg) (Result, error) {
	if err := f.Check(args); err != nil {
		return Result{}, err
	}

	in := toBytes(args[0])
	if in == nil || len(in) != f.inputLength {
		return Result{Null: true}, nil
	}

	swap, err := f.swapFlag(args)
	if err != nil {
		return Result{}, err
	}

	out, err := f.convert(in, swap)
	if err != nil {
		return Result{Null: true}, nil
	}
	return Result{Value: out}, nil
}

func (f Func) swapFlag(args []Arg) (bool, error) {
	if len(args) < 2 || args[1] == nil {
		return false, nil
	}
	v, _ := toInt(args[1])
	switch v {
	case 0:
		return false, nil
	case 1:
		return true, nil
	default:
		return false, fmt.Errorf("%s: %w, got %d", f.Name, ErrInvalidFlag, v)
	}
}

func isString(a Arg) bool {
	switch a.(type) {
	case string, []byte:
		return true
	}
	return false
}

func toBytes(a Arg) []byte {
	switch v := a.(type) {
	case string:
		return []byte(v)
	case []byte:
		return v
	}
	return nil
}

func toInt(a Arg) (int64, bool) {
	switch v := a.(type) {
	case int:
		return int64(v), true
	case int8:
		return int64(v), true
	case int16:
		return int64(v), true
	case int32:
		return int64(v), true
	case int64:
		return v, true
	case uint:
		return clampUint(uint64(v)), true
	case uint8:
		return int64(v), true
	case uint16:
		return int64(v), true
	case uint32:
		return int64(v), true
	case uint64:
		return clampUint(v), true
	case bool:
		if v {
			return 1, true
		}
		return 0, true
	}
	return 0, false
}

func clampUint(v uint64) int64 {
	if v > math.MaxInt64 {
		return math.MaxInt64
	}
	return int64(v)
}
