package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/Lzww0608/binuuid"
	"github.com/fatih/color"
	"github.com/rodaine/table"
)

var (
	headerFormatter  = color.New(color.FgGreen, color.Underline).SprintfFunc()
	inputFormatter   = color.New(color.FgYellow).SprintfFunc()
	failureFormatter = color.New(color.FgRed, color.Bold).SprintfFunc()
)

func setColor(disabled bool) {
	if disabled {
		color.NoColor = true
	}
}

type values struct {
	Values []string `positional-arg-name:"VALUE" required:"1"`
}

type toBinCommand struct {
	Swap bool   `short:"s" long:"swap" description:"Write the time fields in storage order"`
	Args values `positional-args:"yes"`
}

func (c *toBinCommand) Execute(_ []string) error {
	return convertAll(os.Stdout, c.Args.Values, func(v string) (string, error) {
		return toBin(c.Swap, v)
	})
}

func toBin(swap bool, v string) (string, error) {
	bin, err := binuuid.TextToBinary(v, swap)
	if err != nil {
		return "", err
	}
	return bin.EncodeToHex(), nil
}

type toUUIDCommand struct {
	Swap bool   `short:"s" long:"swap" description:"Input is in storage order"`
	Args values `positional-args:"yes"`
}

func (c *toUUIDCommand) Execute(_ []string) error {
	return convertAll(os.Stdout, c.Args.Values, func(v string) (string, error) {
		return toUUID(c.Swap, v)
	})
}

func toUUID(swap bool, v string) (string, error) {
	bin, err := binuuid.DecodeFromHex(trimHexLiteral(v))
	if err != nil {
		return "", err
	}
	return binuuid.BinaryToText(bin, swap), nil
}

// trimHexLiteral strips the 0x and X'...' wrappers MySQL clients print
// around binary values.
func trimHexLiteral(s string) string {
	s = strings.TrimSpace(s)
	switch {
	case strings.HasPrefix(s, "0x"), strings.HasPrefix(s, "0X"):
		return s[2:]
	case len(s) >= 3 && (s[0] == 'X' || s[0] == 'x') && s[1] == '\'' && s[len(s)-1] == '\'':
		return s[2 : len(s)-1]
	}
	return s
}

// convertAll prints one row per input and returns errFailed if any
// conversion failed.
func convertAll(w io.Writer, inputs []string, conv func(string) (string, error)) error {
	tbl := table.New("Input", "Output")
	tbl.WithWriter(w).
		WithHeaderFormatter(headerFormatter).
		WithFirstColumnFormatter(inputFormatter)

	failed := false
	for _, in := range inputs {
		out, err := conv(in)
		if err != nil {
			failed = true
			tbl.AddRow(in, failureFormatter("[-] %v", err))
			continue
		}
		tbl.AddRow(in, out)
	}
	tbl.Print()

	if failed {
		return errFailed
	}
	return nil
}

func printStats(w io.Writer, rows [][2]string) {
	tbl := table.New("Stat", "Value")
	tbl.WithWriter(w).WithHeaderFormatter(headerFormatter)
	for _, r := range rows {
		tbl.AddRow(r[0], r[1])
	}
	fmt.Fprintln(w)
	tbl.Print()
}
