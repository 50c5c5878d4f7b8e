package main

import (
	"github.com/alecthomas/kong"
)

// version is set by ldflags during build
var version = "dev"

type CLI struct {
	Version  kong.VersionFlag `short:"v" help:"Show version"`
	Finger   FingerCmd        `cmd:"" help:"Play the interactive finger-pressing guessing game"`
	WordFreq WordFreqCmd      `cmd:"" name:"wordfreq" help:"Count word frequencies across two text files"`
	Docs     DocsCmd          `cmd:"" help:"Aggregate spreadsheets, convert Word documents and stamp PDFs"`
}

func main() {
	var cli CLI
	ctx := kong.Parse(&cli,
		kong.Name("coursework"),
		kong.Description("Coursework exercises: guessing game, word frequency, document batch"),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{
			Compact: true,
		}),
		kong.Vars{
			"version": version,
		},
	)
	err := ctx.Run()
	ctx.FatalIfErrorf(err)
}
