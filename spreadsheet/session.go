package spreadsheet

import (
	"context"
	"fmt"
	"strings"

	"google.golang.org/api/option"
	"google.golang.org/api/sheets/v4"
)

// Session is an authorised handle to a single Google Sheets spreadsheet.
type Session struct {
	google      *sheets.Service
	spreadsheet *sheets.Spreadsheet
}

// Open authorises with the service account credentials and fetches the spreadsheet
// metadata. There is no retry - a failed Open should be retried by re-running.
func Open(ctx context.Context, credentials Credentials, spreadsheetId string) (*Session, error) {
	client, err := authorize(ctx, credentials)
	if err != nil {
		return nil, fmt.Errorf("authentication/authorization error (%w)", err)
	}

	google, err := sheets.NewService(ctx, option.WithHTTPClient(client))
	if err != nil {
		return nil, fmt.Errorf("unable to create new Sheets client (%w)", err)
	}

	spreadsheet, err := google.Spreadsheets.Get(spreadsheetId).Context(ctx).Do()
	if err != nil {
		return nil, fmt.Errorf("failed to fetch spreadsheet (%w)", err)
	}

	return &Session{
		google:      google,
		spreadsheet: spreadsheet,
	}, nil
}

func (s *Session) ID() string {
	return s.spreadsheet.SpreadsheetId
}

func (s *Session) Title() string {
	if s.spreadsheet.Properties != nil {
		return s.spreadsheet.Properties.Title
	}

	return ""
}

// Sheet finds a worksheet by title, ignoring case and surrounding whitespace.
func (s *Session) Sheet(ctx context.Context, title string) (*sheets.SheetProperties, error) {
	return findSheet(s.spreadsheet, title)
}

func (s *Session) AddSheet(ctx context.Context, title string, rows, columns int64) (*sheets.SheetProperties, error) {
	rq := sheets.BatchUpdateSpreadsheetRequest{
		Requests: []*sheets.Request{
			{
				AddSheet: &sheets.AddSheetRequest{
					Properties: &sheets.SheetProperties{
						Title: title,
						GridProperties: &sheets.GridProperties{
							RowCount:    rows,
							ColumnCount: columns,
						},
					},
				},
			},
		},
	}

	response, err := s.google.Spreadsheets.BatchUpdate(s.spreadsheet.SpreadsheetId, &rq).Context(ctx).Do()
	if err != nil {
		return nil, fmt.Errorf("error creating worksheet '%v' (%w)", title, err)
	}

	if len(response.Replies) == 0 || response.Replies[0].AddSheet == nil || response.Replies[0].AddSheet.Properties == nil {
		return nil, fmt.Errorf("invalid response creating worksheet '%v'", title)
	}

	properties := response.Replies[0].AddSheet.Properties
	s.spreadsheet.Sheets = append(s.spreadsheet.Sheets, &sheets.Sheet{Properties: properties})

	return properties, nil
}

func (s *Session) Get(ctx context.Context, area string) ([][]interface{}, error) {
	response, err := s.google.Spreadsheets.Values.Get(s.spreadsheet.SpreadsheetId, area).Context(ctx).Do()
	if err != nil {
		return nil, fmt.Errorf("unable to retrieve data from sheet (%w)", err)
	}

	return response.Values, nil
}

// Append adds the rows after the last row of the table in area and returns the
// range that was actually updated.
func (s *Session) Append(ctx context.Context, area string, rows [][]interface{}) (string, error) {
	values := sheets.ValueRange{
		Values: rows,
	}

	response, err := s.google.Spreadsheets.Values.Append(s.spreadsheet.SpreadsheetId, area, &values).
		ValueInputOption("USER_ENTERED").
		InsertDataOption("INSERT_ROWS").
		Context(ctx).
		Do()
	if err != nil {
		return "", fmt.Errorf("error appending rows to worksheet (%w)", err)
	}

	if response.Updates != nil {
		return response.Updates.UpdatedRange, nil
	}

	return "", nil
}

func (s *Session) BatchUpdate(ctx context.Context, requests []*sheets.Request) error {
	rq := sheets.BatchUpdateSpreadsheetRequest{
		Requests: requests,
	}

	if _, err := s.google.Spreadsheets.BatchUpdate(s.spreadsheet.SpreadsheetId, &rq).Context(ctx).Do(); err != nil {
		return err
	}

	return nil
}

func findSheet(spreadsheet *sheets.Spreadsheet, title string) (*sheets.SheetProperties, error) {
	name := strings.ToLower(strings.TrimSpace(title))
	for _, sheet := range spreadsheet.Sheets {
		if sheet.Properties != nil && strings.ToLower(strings.TrimSpace(sheet.Properties.Title)) == name {
			return sheet.Properties, nil
		}
	}

	return nil, fmt.Errorf("%w: '%v'", ErrSheetNotFound, title)
}
