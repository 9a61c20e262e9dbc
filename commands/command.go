package commands

import (
	"context"
	"flag"
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/licitaciones/licitaciones-app-sheets/metrics"
	"github.com/licitaciones/licitaciones-app-sheets/spreadsheet"
)

const APP = "licitaciones-app-sheets"

type Options struct {
	Config string
	Debug  bool
	JSON   bool
}

// command holds the options shared by every command that talks to the spreadsheet.
// Flags override the configuration file, which overrides the defaults.
type command struct {
	credentials string
	url         string
	metrics     string
	debug       bool
}

func (c *command) flagset(name string) *flag.FlagSet {
	flagset := flag.NewFlagSet(name, flag.ExitOnError)

	flagset.StringVar(&c.credentials, "credentials", c.credentials, "Path for the service account 'credentials.json' file. Ignored if GCP_SERVICE_ACCOUNT_KEY is set")
	flagset.StringVar(&c.url, "url", c.url, "Spreadsheet URL or ID")
	flagset.StringVar(&c.metrics, "metrics", c.metrics, "Prometheus textfile to which to write the run metrics")

	return flagset
}

// configure loads the configuration file and applies the command line overrides.
func (c *command) configure(args []any) (*Config, error) {
	options := getOptions(args)

	initLogging(options)
	c.debug = options.Debug

	file := options.Config
	if file == "" {
		file = DEFAULT_CONFIG
	}

	conf, err := LoadConfig(file)
	if err != nil {
		return nil, err
	}

	if strings.TrimSpace(c.credentials) != "" {
		conf.Credentials = c.credentials
	}

	if strings.TrimSpace(c.url) != "" {
		id, err := spreadsheetID(c.url)
		if err != nil {
			return nil, err
		}

		conf.Spreadsheet = id
	}

	if strings.TrimSpace(c.metrics) != "" {
		conf.Metrics = c.metrics
	}

	if strings.TrimSpace(conf.Spreadsheet) == "" {
		return nil, fmt.Errorf("missing spreadsheet - use --url, SPREADSHEET_ID or the configuration file")
	}

	if c.debug {
		debugf("Spreadsheet - ID:%s  credentials:%v", conf.Spreadsheet, conf.credentials())
	}

	return conf, nil
}

func (c *command) open(ctx context.Context, conf *Config) (*spreadsheet.Session, error) {
	session, err := spreadsheet.Open(ctx, conf.credentials(), conf.Spreadsheet)
	if err != nil {
		return nil, err
	}

	infof("Connected to Google Sheets spreadsheet '%v'", session.Title())
	debugf("Spreadsheet ID:%v", session.ID())

	return session, nil
}

func (c *command) writeMetrics(conf *Config, m *metrics.Metrics) {
	if strings.TrimSpace(conf.Metrics) == "" {
		return
	}

	if err := m.Write(conf.Metrics, time.Now()); err != nil {
		warnf("Error writing metrics to %v (%v)", conf.Metrics, err)
	}
}

func getOptions(args []any) *Options {
	if len(args) > 0 {
		if options, ok := args[0].(*Options); ok && options != nil {
			return options
		}
	}

	return &Options{}
}

// spreadsheetID extracts the document key from a spreadsheet URL. A bare key is
// returned as is.
func spreadsheetID(url string) (string, error) {
	url = strings.TrimSpace(url)

	if match := regexp.MustCompile(`^https://docs.google.com/spreadsheets/d/(.*?)(?:/.*)?$`).FindStringSubmatch(url); len(match) > 1 && match[1] != "" {
		return match[1], nil
	}

	if regexp.MustCompile(`^[a-zA-Z0-9_-]{20,}$`).MatchString(url) {
		return url, nil
	}

	return "", fmt.Errorf("invalid spreadsheet URL - expected something like 'https://docs.google.com/spreadsheets/d/%v'", DEFAULT_SPREADSHEET)
}

func helpOptions(flagset *flag.FlagSet) {
	fmt.Println("  Options:")
	fmt.Println()

	flagset.VisitAll(func(f *flag.Flag) {
		fmt.Printf("    --%-13s %s\n", f.Name, f.Usage)
	})

	fmt.Println()
	fmt.Println("    --config        (global) YAML configuration file")
	fmt.Println("    --debug         (global) Displays internal information for diagnosing errors")
	fmt.Println("    --json          (global) Logs in JSON format")
}
