package main

import (
	"github.com/alecthomas/kong"

	"droscher.com/BrewNotes/cmd"
)

func main() {
	ctx := kong.Parse(&cmd.CLI, kong.Name("BrewNotes"), kong.Description("BrewNotes is a personal coffee brewing journal."))
	err := ctx.Run(&cmd.Context{Debug: cmd.CLI.Debug})
	ctx.FatalIfErrorf(err)
}
