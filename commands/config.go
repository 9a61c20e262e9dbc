package commands

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"github.com/licitaciones/licitaciones-app-sheets/spreadsheet"
)

const (
	DEFAULT_SPREADSHEET = "1TqiNXXAgfKlSu2b_Yr9r6AdQU_WacdROsuhcHL0i6Mk"
	DEFAULT_CREDENTIALS = "service_account.json"
	DEFAULT_LOCALE      = "es"
)

type Config struct {
	Spreadsheet string `yaml:"spreadsheet"`
	Credentials string `yaml:"credentials"`
	Locale      string `yaml:"locale"`
	LogRange    string `yaml:"log-range"`
	Metrics     string `yaml:"metrics"`

	Keywords struct {
		Sheet string `yaml:"sheet"`
		Range string `yaml:"range"`
	} `yaml:"keywords"`

	// Inline service account key, only ever taken from the environment.
	Key string `yaml:"-"`
}

func NewConfig() *Config {
	c := Config{
		Spreadsheet: DEFAULT_SPREADSHEET,
		Credentials: DEFAULT_CREDENTIALS,
		Locale:      DEFAULT_LOCALE,
	}

	c.Keywords.Sheet = spreadsheet.KeywordsSheet
	c.Keywords.Range = spreadsheet.KeywordsRange

	return &c
}

// LoadConfig loads a .env file from the current directory if there is one, then the
// YAML configuration file and finally applies the environment overrides. A missing
// default configuration file is not an error.
func LoadConfig(file string) (*Config, error) {
	loadDotEnv()

	c := NewConfig()

	if strings.TrimSpace(file) != "" {
		bytes, err := os.ReadFile(file)
		if err != nil && !(errors.Is(err, os.ErrNotExist) && file == DEFAULT_CONFIG) {
			return nil, fmt.Errorf("could not load configuration (%w)", err)
		}

		if err == nil {
			if err := yaml.Unmarshal(bytes, c); err != nil {
				return nil, fmt.Errorf("invalid configuration file %v (%w)", file, err)
			}
		}
	}

	c.Spreadsheet = getEnv("SPREADSHEET_ID", c.Spreadsheet)
	c.Key = os.Getenv("GCP_SERVICE_ACCOUNT_KEY")

	return c, nil
}

// loadDotEnv loads .env from the current directory. A missing file is ignored, an
// unreadable or malformed one is logged and otherwise ignored.
func loadDotEnv() {
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		warnf("Error loading .env file (%v)", err)
	}
}

func (c *Config) credentials() spreadsheet.Credentials {
	return spreadsheet.Credentials{
		JSON: c.Key,
		File: c.Credentials,
	}
}

func (c *Config) keywords() string {
	return spreadsheet.Area(c.Keywords.Sheet, c.Keywords.Range)
}

func getEnv(key, fallback string) string {
	if value := strings.TrimSpace(os.Getenv(key)); value != "" {
		return value
	}

	return fallback
}
