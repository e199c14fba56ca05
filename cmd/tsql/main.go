// Command tsql is an interactive shell for inspecting T-SQL queries. Each
// line of input is parsed and printed back either as the syntax tree in JSON
// or as formatted SQL.
package main

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/Bowery/prompt"
	"github.com/mkideal/cli"

	"github.com/parsql/tsql/parser"
)

type argT struct {
	cli.Helper
	Format bool   `cli:"f,format" usage:"print formatted SQL instead of the syntax tree"`
	Case   string `cli:"c,case" usage:"keyword case for formatted SQL (upper or lower)" dft:"upper"`
	Indent int    `cli:"i,indent" usage:"indent width for formatted SQL" dft:"4"`
	Tab    bool   `cli:"t,tab" usage:"indent formatted SQL with tabs"`
}

func main() {
	cli.SetUsageStyle(cli.ManualStyle)
	cli.Run(new(argT), func(ctx *cli.Context) error {
		argv := ctx.Argv().(*argT)
		if argv.Help {
			ctx.WriteUsage()
			return nil
		}

		settings, err := formatSettings(argv)
		if err != nil {
			return err
		}

	FOR_READ:
		for {
			line, err := prompt.Basic(">> ", false)
			if err != nil {
				return err
			}
			line = strings.TrimSpace(line)
			if line == "" {
				continue
			}
			switch strings.ToLower(line) {
			case "quit", "exit":
				break FOR_READ
			}
			if err := run(ctx, line, argv.Format, settings); err != nil {
				printError(ctx, line, err)
			}
		}
		ctx.String("bye~\n")
		return nil
	})
}

func formatSettings(argv *argT) (parser.FormatSettings, error) {
	settings := parser.DefaultFormatSettings()
	switch strings.ToLower(argv.Case) {
	case "upper":
		settings.KeywordCase = parser.KeywordUpper
	case "lower":
		settings.KeywordCase = parser.KeywordLower
	default:
		return settings, fmt.Errorf("unknown keyword case %q", argv.Case)
	}
	settings.IndentWidth = argv.Indent
	settings.UseTab = argv.Tab
	return settings, nil
}

func run(ctx *cli.Context, line string, format bool, settings parser.FormatSettings) error {
	query, err := parser.Parse(line)
	if err != nil {
		return err
	}
	if format {
		ctx.String("%s\n", parser.Format(query, settings))
		return nil
	}
	data, err := json.MarshalIndent(query, "", "  ")
	if err != nil {
		return err
	}
	ctx.String("%s\n", data)
	return nil
}

func printError(ctx *cli.Context, line string, err error) {
	pe, ok := err.(*parser.ParseError)
	if !ok {
		ctx.String("%s %v\n", ctx.Color().Red("ERR!"), err)
		return
	}
	row, col := pe.Location(line)
	ctx.String("%s %s\n", ctx.Color().Red("ERR!"), pe.Details())
	ctx.String("  line: %d col: %d\n", row, col)
}
