package spreadsheet

import (
	"context"
	"fmt"
	"strings"

	"google.golang.org/api/sheets/v4"
)

type appended struct {
	area string
	rows [][]interface{}
}

// workbook is an in-memory Workbook that records every mutating call.
type workbook struct {
	sheets      map[string]*sheets.SheetProperties
	values      map[string][][]interface{}
	nextId      int64
	sheetError  error
	getError    error
	appendError error
	batchError  error
	rangeless   bool

	created  []string
	appended []appended
	requests [][]*sheets.Request
}

func newWorkbook() *workbook {
	return &workbook{
		sheets: map[string]*sheets.SheetProperties{},
		values: map[string][][]interface{}{},
		nextId: 100,
	}
}

func (w *workbook) with(title string, rows ...[]interface{}) *workbook {
	w.nextId++
	w.sheets[title] = &sheets.SheetProperties{Title: title, SheetId: w.nextId}
	w.values[title] = rows

	return w
}

func (w *workbook) Sheet(ctx context.Context, title string) (*sheets.SheetProperties, error) {
	if w.sheetError != nil {
		return nil, w.sheetError
	}

	if sheet, ok := w.sheets[title]; ok {
		return sheet, nil
	}

	return nil, fmt.Errorf("%w: '%v'", ErrSheetNotFound, title)
}

func (w *workbook) AddSheet(ctx context.Context, title string, rows, columns int64) (*sheets.SheetProperties, error) {
	w.created = append(w.created, title)
	w.with(title)

	return w.sheets[title], nil
}

func (w *workbook) Get(ctx context.Context, area string) ([][]interface{}, error) {
	if w.getError != nil {
		return nil, w.getError
	}

	title := sheetOf(area)
	if _, ok := w.sheets[title]; !ok {
		return nil, fmt.Errorf("Unable to parse range: %v", area)
	}

	return w.values[title], nil
}

func (w *workbook) Append(ctx context.Context, area string, rows [][]interface{}) (string, error) {
	if w.appendError != nil {
		return "", w.appendError
	}

	title := sheetOf(area)
	if _, ok := w.sheets[title]; !ok {
		return "", fmt.Errorf("Unable to parse range: %v", area)
	}

	w.appended = append(w.appended, appended{area: area, rows: rows})

	start := len(w.values[title]) + 1
	w.values[title] = append(w.values[title], rows...)
	end := len(w.values[title])

	if w.rangeless {
		return "", nil
	}

	return fmt.Sprintf("'%v'!A%v:M%v", title, start, end), nil
}

func (w *workbook) BatchUpdate(ctx context.Context, requests []*sheets.Request) error {
	if w.batchError != nil {
		return w.batchError
	}

	w.requests = append(w.requests, requests)

	return nil
}

func sheetOf(area string) string {
	title := area
	if ix := strings.LastIndex(area, "!"); ix >= 0 {
		title = area[:ix]
	}

	return strings.ReplaceAll(strings.Trim(title, "'"), "''", "'")
}
