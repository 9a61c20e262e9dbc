package spreadsheet

import (
	"errors"
	"fmt"
	"net/http"
	"os"
	"strings"

	"golang.org/x/net/context"
	"golang.org/x/oauth2/google"
	"google.golang.org/api/sheets/v4"
)

var ErrNoCredentials = errors.New("no service account credentials")

// Credentials holds a service account key, either inline (typically from the
// GCP_SERVICE_ACCOUNT_KEY environment variable) or as a key file on disk. The inline
// key takes precedence.
type Credentials struct {
	JSON string
	File string
}

func (c Credentials) String() string {
	if strings.TrimSpace(c.JSON) != "" {
		return "inline service account key"
	}

	return c.File
}

func (c Credentials) key() ([]byte, error) {
	if v := strings.TrimSpace(c.JSON); v != "" {
		return []byte(v), nil
	}

	if strings.TrimSpace(c.File) == "" {
		return nil, ErrNoCredentials
	}

	b, err := os.ReadFile(c.File)
	if errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("%w (%v)", ErrNoCredentials, err)
	} else if err != nil {
		return nil, err
	}

	return b, nil
}

func authorize(ctx context.Context, credentials Credentials) (*http.Client, error) {
	b, err := credentials.key()
	if err != nil {
		return nil, err
	}

	config, err := google.JWTConfigFromJSON(b, sheets.SpreadsheetsScope)
	if err != nil {
		return nil, fmt.Errorf("invalid service account key (%w)", err)
	}

	return config.Client(ctx), nil
}
