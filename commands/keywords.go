package commands

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/licitaciones/licitaciones-app-sheets/metrics"
	"github.com/licitaciones/licitaciones-app-sheets/spreadsheet"
)

var KeywordsCmd = Keywords{
	command: command{
		credentials: "",
		url:         "",
		debug:       false,
	},

	area: "",
}

// Keywords retrieves the search keywords from the keywords worksheet.
type Keywords struct {
	command
	area string
}

func (cmd *Keywords) Name() string {
	return "keywords"
}

func (cmd *Keywords) Description() string {
	return "Retrieves the search keywords from the Google Sheets keywords worksheet"
}

func (cmd *Keywords) Usage() string {
	return "[--credentials <file>] [--url <url>] [--range <range>]"
}

func (cmd *Keywords) Help() {
	fmt.Println()
	fmt.Printf("  Usage: %s [--debug] [--config <file>] keywords [options]\n", APP)
	fmt.Println()
	fmt.Println("  Retrieves and displays the search keywords from the keywords worksheet. A missing")
	fmt.Println("  worksheet or any other error is logged and treated as an empty keyword list.")
	fmt.Println()

	helpOptions(cmd.FlagSet())

	fmt.Println()
	fmt.Println("  Examples:")
	fmt.Println(`    licitaciones-app-sheets keywords --credentials "service_account.json"`)
	fmt.Println(`    licitaciones-app-sheets keywords --range "'Palabras Clave'!F8:F19"`)
	fmt.Println()
}

func (cmd *Keywords) FlagSet() *flag.FlagSet {
	flagset := cmd.flagset("keywords")

	flagset.StringVar(&cmd.area, "range", cmd.area, fmt.Sprintf("Keywords range. Defaults to %v", spreadsheet.Area(spreadsheet.KeywordsSheet, spreadsheet.KeywordsRange)))

	return flagset
}

func (cmd *Keywords) Execute(args ...any) error {
	conf, err := cmd.configure(args)
	if err != nil {
		return err
	}

	area := conf.keywords()
	if cmd.area != "" {
		area = cmd.area
	}

	ctx := context.Background()

	session, err := cmd.open(ctx, conf)
	if err != nil {
		return err
	}

	keywords := spreadsheet.LoadKeywords(ctx, session, area, logger)

	m := metrics.NewMetrics()
	m.Keywords.Set(float64(len(keywords)))
	cmd.writeMetrics(conf, m)

	printKeywords(os.Stdout, keywords, isTTY())

	return nil
}
