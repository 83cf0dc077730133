package main

import (
	"github.com/alecthomas/kong"

	"github.com/hoplocal/brewdex/cmd"
)

func main() {
	ctx := kong.Parse(&cmd.CLI, kong.Name("brewdex"), kong.Description("Brewdex is a brewery directory backend."))
	err := ctx.Run(&cmd.Context{Debug: cmd.CLI.Debug})
	ctx.FatalIfErrorf(err)
}
