package main

import (
	"github.com/alecthomas/kong"
)

// version is set by ldflags during build
var version = "dev"

// Globals are flags shared by every command
type Globals struct {
	Config   string `short:"c" default:"pokercoach.hcl" help:"Path to HCL configuration file"`
	LogLevel string `short:"l" help:"Log level: debug, info, warn or error (overrides config)"`
	NoColor  bool   `help:"Disable coloured output"`
}

type CLI struct {
	Globals

	Version   kong.VersionFlag `short:"v" help:"Show version"`
	Serve     ServeCmd         `cmd:"" help:"Run the coaching HTTP/WebSocket server"`
	Coach     CoachCmd         `cmd:"" help:"Grade one decision described by flags"`
	Eval      EvalCmd          `cmd:"" help:"Evaluate and rank hands on a board"`
	Showdown  ShowdownCmd      `cmd:"" help:"Settle a completed hand"`
	Train     TrainCmd         `cmd:"" help:"Play generated spots in the terminal trainer"`
	Calibrate CalibrateCmd     `cmd:"" help:"Grade many generated spots and report the distribution"`
	Profile   ProfileCmd       `cmd:"" help:"Show or reset the saved trainer profile"`
}

func main() {
	var cli CLI
	ctx := kong.Parse(&cli,
		kong.Name("pokercoach"),
		kong.Description("Poker decision coach: pot odds, equity, outs and starting-hand feedback"),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{
			Compact: true,
		}),
		kong.Vars{
			"version": version,
		},
	)
	err := ctx.Run(&cli.Globals)
	ctx.FatalIfErrorf(err)
}
