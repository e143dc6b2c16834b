package main

import (
	"errors"
	"os"

	"github.com/jessevdk/go-flags"
)

var errFailed = errors.New("one or more values could not be converted")

type Options struct {
	NoColor bool `long:"no-color" description:"Disable colored output"`
}

func main() {
	var opts Options
	p := flags.NewNamedParser("uuidbin", flags.Default)
	p.AddGroup("Application Options", "", &opts)
	p.CommandHandler = func(cmd flags.Commander, args []string) error {
		setColor(opts.NoColor)
		return cmd.Execute(args)
	}

	p.AddCommand("to-bin", "Convert UUID text to binary",
		"Print the binary form of each UUID as 32 hex digits.", &toBinCommand{})
	p.AddCommand("to-uuid", "Convert binary to UUID text",
		"Print the canonical form of each 16 byte value given as 32 hex digits, 0x... or X'...'.", &toUUIDCommand{})
	p.AddCommand("migrate", "Convert a UUID column of a MySQL table",
		"Fill a BINARY(16) column from a CHAR(36) column, or the reverse with --to-text.", &migrateCommand{})

	if _, err := p.Parse(); err != nil {
		os.Exit(1)
	}
}
