package commands

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/licitaciones/licitaciones-app-sheets/metrics"
	"github.com/licitaciones/licitaciones-app-sheets/records"
	"github.com/licitaciones/licitaciones-app-sheets/spreadsheet"
)

var PutCmd = Put{
	command: command{
		credentials: "",
		url:         "",
		debug:       false,
	},

	file:     "",
	date:     "",
	logRange: "",
	dryrun:   false,
}

// Put stores the new records from a local file in the month worksheet of the target
// date.
type Put struct {
	command
	file     string
	date     string
	logRange string
	dryrun   bool
}

func (cmd *Put) Name() string {
	return "put"
}

func (cmd *Put) Description() string {
	return "Appends new procurement listings from a JSON or TSV file to the month worksheet"
}

func (cmd *Put) Usage() string {
	return "--file <file> [--date <yyyy-mm-dd>]"
}

func (cmd *Put) Help() {
	fmt.Println()
	fmt.Printf("  Usage: %s [--debug] [--config <file>] put [options] --file <file>\n", APP)
	fmt.Println()
	fmt.Println("  Appends the listings in a JSON or TSV file to the worksheet for the month of the target date,")
	fmt.Println("  skipping listings whose ID is already in the worksheet. The worksheet is created if it does")
	fmt.Println("  not exist.")
	fmt.Println()
	fmt.Println("  Worksheets are named for the month in Spanish (e.g. Octubre) unless the configuration sets")
	fmt.Println("  'locale: en'. A spreadsheet that already has English month worksheets (e.g. October) needs")
	fmt.Println("  'locale: en', otherwise a second worksheet is created for the same month.")
	fmt.Println()

	helpOptions(cmd.FlagSet())

	fmt.Println()
	fmt.Println("  Examples:")
	fmt.Println(`    licitaciones-app-sheets put --file "resultados.json"`)
	fmt.Println(`    licitaciones-app-sheets --debug put --credentials "service_account.json" \`)
	fmt.Println(`                                        --url "https://docs.google.com/spreadsheets/d/1TqiNXXAgfKlSu2b_Yr9r6AdQU_WacdROsuhcHL0i6Mk" \`)
	fmt.Println(`                                        --date 2026-10-16 \`)
	fmt.Println(`                                        --file "resultados.tsv"`)
	fmt.Println()
}

func (cmd *Put) FlagSet() *flag.FlagSet {
	flagset := cmd.flagset("put")

	flagset.StringVar(&cmd.file, "file", cmd.file, "JSON or TSV file with the listings to store")
	flagset.StringVar(&cmd.date, "date", cmd.date, "Target date (YYYY-MM-DD) that selects the month worksheet. Defaults to today")
	flagset.StringVar(&cmd.logRange, "log-range", cmd.logRange, "Spreadsheet range for a run summary e.g. 'Log!A1:F'. Disabled by default")
	flagset.BoolVar(&cmd.dryrun, "dryrun", cmd.dryrun, "Reports the new listings without writing to the spreadsheet")

	return flagset
}

func (cmd *Put) Execute(args ...any) error {
	conf, err := cmd.configure(args)
	if err != nil {
		return err
	}

	if strings.TrimSpace(cmd.file) == "" {
		return fmt.Errorf("--file is a required option")
	}

	date := time.Now()
	if strings.TrimSpace(cmd.date) != "" {
		if date, err = spreadsheet.ParseDate(cmd.date); err != nil {
			return err
		}
	}

	logRange := conf.LogRange
	if cmd.logRange != "" {
		logRange = cmd.logRange
	}

	list, err := records.Load(cmd.file)
	if err != nil {
		return err
	}

	infof("Loaded %v listings from %v", len(list), cmd.file)

	if len(list) == 0 {
		printSummary(os.Stdout, &spreadsheet.Summary{}, cmd.dryrun, isTTY())
		return nil
	}

	ctx := context.Background()

	session, err := cmd.open(ctx, conf)
	if err != nil {
		return err
	}

	writer := spreadsheet.Writer{
		Workbook: session,
		Locale:   conf.Locale,
		DryRun:   cmd.dryrun,
		Log:      logger,
	}

	m := metrics.NewMetrics()

	summary, err := writer.Save(ctx, list, date)
	if summary != nil {
		m.Saved(summary.Received, summary.Duplicates, summary.Appended, summary.Formatted, summary.Created)
	}

	if err != nil {
		cmd.writeMetrics(conf, m)
		return err
	}

	if logRange != "" && !cmd.dryrun {
		if err := spreadsheet.AppendRunLog(ctx, session, logRange, *summary, time.Now()); err != nil {
			warnf("%v", err)
		}
	}

	cmd.writeMetrics(conf, m)

	printSummary(os.Stdout, summary, cmd.dryrun, isTTY())

	return nil
}
