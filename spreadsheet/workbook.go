package spreadsheet

import (
	"context"
	"errors"

	"google.golang.org/api/sheets/v4"
)

var ErrSheetNotFound = errors.New("worksheet not found")

// Workbook is the subset of the Google Sheets API used to maintain the keywords and
// month worksheets of a single spreadsheet. Areas are A1 notation ranges including
// the worksheet name e.g. 'Octubre'!A1:M.
type Workbook interface {
	Sheet(ctx context.Context, title string) (*sheets.SheetProperties, error)
	AddSheet(ctx context.Context, title string, rows, columns int64) (*sheets.SheetProperties, error)
	Get(ctx context.Context, area string) ([][]interface{}, error)
	Append(ctx context.Context, area string, rows [][]interface{}) (string, error)
	BatchUpdate(ctx context.Context, requests []*sheets.Request) error
}
