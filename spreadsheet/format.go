package spreadsheet

import (
	"google.golang.org/api/sheets/v4"

	"github.com/licitaciones/licitaciones-app-sheets/records"
)

var (
	Yellow = sheets.Color{Red: 1, Green: 1, Blue: 0}
	Green  = sheets.Color{Red: 0.8, Green: 0.94, Blue: 0.75}
	Red    = sheets.Color{Red: 0.98, Green: 0.7, Blue: 0.7}
)

// Colour returns red for a value that is exactly NF and green for anything else.
func Colour(v interface{}) sheets.Color {
	if s, ok := v.(string); ok && s == records.NF {
		return Red
	}

	return Green
}

// background builds a request that sets the background colour of a block of cells.
// Rows and columns are zero-based and the end indices are exclusive.
func background(sheetId, top, left, bottom, right int64, colour sheets.Color) *sheets.Request {
	c := colour

	return &sheets.Request{
		RepeatCell: &sheets.RepeatCellRequest{
			Range: &sheets.GridRange{
				SheetId:          sheetId,
				StartRowIndex:    top,
				EndRowIndex:      bottom,
				StartColumnIndex: left,
				EndColumnIndex:   right,
				ForceSendFields:  []string{"SheetId", "StartRowIndex", "StartColumnIndex"},
			},
			Cell: &sheets.CellData{
				UserEnteredFormat: &sheets.CellFormat{
					BackgroundColor: &c,
				},
			},
			Fields: "userEnteredFormat.backgroundColor",
		},
	}
}

func headerFormat(sheetId int64) *sheets.Request {
	return background(sheetId, 0, 0, 1, int64(len(records.Header)), Yellow)
}

// highlights builds one single-cell request per designated column for each of the
// rows, where first is the one-based worksheet row of rows[0].
func highlights(sheetId int64, first int, rows [][]interface{}) []*sheets.Request {
	requests := []*sheets.Request{}

	for i, row := range rows {
		r := int64(first + i - 1)
		for _, col := range records.Highlighted {
			var v interface{}
			if col < len(row) {
				v = row[col]
			}

			c := int64(col)
			requests = append(requests, background(sheetId, r, c, r+1, c+1, Colour(v)))
		}
	}

	return requests
}
