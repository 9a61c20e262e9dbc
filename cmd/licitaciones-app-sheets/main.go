package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/sirupsen/logrus"
	uhppoted "github.com/uhppoted/uhppoted-lib/command"

	"github.com/licitaciones/licitaciones-app-sheets/commands"
)

var cli = []uhppoted.Command{
	&commands.VersionCmd,
	&commands.KeywordsCmd,
	&commands.PutCmd,
	&commands.GetCmd,
}

var options = commands.Options{
	Config: commands.DEFAULT_CONFIG,
	Debug:  false,
	JSON:   false,
}

var help = uhppoted.NewHelp(commands.APP, cli, nil)

func main() {
	flag.StringVar(&options.Config, "config", options.Config, "YAML configuration file")
	flag.BoolVar(&options.Debug, "debug", options.Debug, "Enable debugging information")
	flag.BoolVar(&options.JSON, "json", options.JSON, "Log in JSON format")
	flag.Parse()

	cmd, err := uhppoted.Parse(cli, nil, help)
	if err != nil {
		fmt.Printf("\nError parsing command line: %v\n\n", err)
		os.Exit(1)
	}

	if cmd == nil {
		help.Execute()
		os.Exit(1)
	}

	if err = cmd.Execute(&options); err != nil {
		logrus.Fatalf("%v", err)
	}
}
