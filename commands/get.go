package commands

import (
	"context"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/licitaciones/licitaciones-app-sheets/records"
	"github.com/licitaciones/licitaciones-app-sheets/spreadsheet"
)

var GetCmd = Get{
	command: command{
		credentials: "",
		url:         "",
		debug:       false,
	},

	month: "",
	date:  "",
	file:  "",
}

// Get downloads a month worksheet to a local TSV file.
type Get struct {
	command
	month string
	date  string
	file  string
}

func (cmd *Get) Name() string {
	return "get"
}

func (cmd *Get) Description() string {
	return "Retrieves a month worksheet from Google Sheets and stores it to a local TSV file"
}

func (cmd *Get) Usage() string {
	return "[--month <name> | --date <yyyy-mm-dd>] [--file <file>]"
}

func (cmd *Get) Help() {
	fmt.Println()
	fmt.Printf("  Usage: %s [--debug] [--config <file>] get [options]\n", APP)
	fmt.Println()
	fmt.Println("  Downloads a month worksheet to a TSV file")
	fmt.Println()

	helpOptions(cmd.FlagSet())

	fmt.Println()
	fmt.Println("  Examples:")
	fmt.Println(`    licitaciones-app-sheets get --month Septiembre --file "septiembre.tsv"`)
	fmt.Println(`    licitaciones-app-sheets --debug get --date 2026-10-16`)
	fmt.Println()
}

func (cmd *Get) FlagSet() *flag.FlagSet {
	flagset := cmd.flagset("get")

	flagset.StringVar(&cmd.month, "month", cmd.month, "Worksheet name e.g. 'Octubre'")
	flagset.StringVar(&cmd.date, "date", cmd.date, "Date (YYYY-MM-DD) that selects the month worksheet. Defaults to today")
	flagset.StringVar(&cmd.file, "file", cmd.file, "TSV file name. Defaults to '<month> - <yyyy-mm-dd HHmmss>.tsv'")

	return flagset
}

func (cmd *Get) Execute(args ...any) error {
	conf, err := cmd.configure(args)
	if err != nil {
		return err
	}

	month, err := cmd.sheet(conf.Locale)
	if err != nil {
		return err
	}

	file := cmd.file
	if strings.TrimSpace(file) == "" {
		file = fmt.Sprintf("%v - %v.tsv", month, time.Now().Format("2006-01-02 150405"))
	}

	ctx := context.Background()

	session, err := cmd.open(ctx, conf)
	if err != nil {
		return err
	}

	if _, err := session.Sheet(ctx, month); err != nil {
		return err
	}

	rows, err := session.Get(ctx, spreadsheet.Area(month, "A1:M"))
	if err != nil {
		return err
	} else if len(rows) == 0 {
		return fmt.Errorf("no data in worksheet '%v'", month)
	}

	tmp, err := os.CreateTemp(os.TempDir(), "licitaciones")
	if err != nil {
		return err
	}

	defer func() {
		tmp.Close()
		os.Remove(tmp.Name())
	}()

	if err := records.MakeTSV(tmp, rows); err != nil {
		return fmt.Errorf("error creating TSV file (%w)", err)
	}

	tmp.Close()

	dir := filepath.Dir(file)
	if err := os.MkdirAll(dir, 0770); err != nil {
		return err
	}

	if err := os.Rename(tmp.Name(), file); err != nil {
		return err
	}

	infof("Retrieved worksheet '%v' (%v rows) to file %s", month, len(rows)-1, file)

	return nil
}

func (cmd *Get) sheet(locale string) (string, error) {
	if month := strings.TrimSpace(cmd.month); month != "" {
		return month, nil
	}

	date := time.Now()
	if strings.TrimSpace(cmd.date) != "" {
		d, err := spreadsheet.ParseDate(cmd.date)
		if err != nil {
			return "", err
		}

		date = d
	}

	return spreadsheet.MonthName(date, locale)
}
