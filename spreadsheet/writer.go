package spreadsheet

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/sirupsen/logrus"
	"google.golang.org/api/sheets/v4"

	"github.com/licitaciones/licitaciones-app-sheets/records"
)

const (
	newSheetRows    = 1000
	newSheetColumns = 20
)

// Writer appends new records to the month worksheet of a target date.
type Writer struct {
	Workbook Workbook
	Locale   string
	DryRun   bool
	Log      logrus.FieldLogger
}

// Summary describes the outcome of a Writer.Save.
type Summary struct {
	Sheet      string
	Created    bool
	Received   int
	Duplicates int
	Appended   int
	First      int
	Last       int
	Formatted  int
}

// Save stores the records that are not already in the worksheet for the month of
// date, creating the worksheet if necessary. Rows are numbered on from the largest
// existing number and the amount, amount type, site visit and mandatory visit cells
// are coloured red if NF and green otherwise.
//
// The append and the formatting are separate calls so a failure in between leaves the
// rows unformatted.
func (w *Writer) Save(ctx context.Context, list []records.Record, date time.Time) (*Summary, error) {
	log := w.logger()

	if len(list) == 0 {
		log.Infof("No results to save")
		return &Summary{}, nil
	}

	month, err := MonthName(date, w.locale())
	if err != nil {
		return nil, err
	}

	summary := Summary{
		Sheet:    month,
		Received: len(list),
	}

	log = log.WithField("sheet", month)

	// ... get or create month worksheet
	sheet, err := w.Workbook.Sheet(ctx, month)
	if err != nil && !errors.Is(err, ErrSheetNotFound) {
		return nil, err
	}

	index := &records.Index{IDs: map[string]bool{}}

	if sheet == nil && w.DryRun {
		log.Infof("Worksheet does not exist (dry run - not created)")
	} else if sheet == nil {
		if sheet, err = w.create(ctx, month); err != nil {
			return nil, err
		}

		summary.Created = true
		log.Infof("Created worksheet")
	} else {
		rows, err := w.Workbook.Get(ctx, Area(month, "A1:M"))
		if err != nil {
			return nil, err
		}

		if index, err = records.MakeIndex(rows); err != nil {
			return nil, fmt.Errorf("invalid worksheet '%v' (%w)", month, err)
		}
	}

	// ... filter and number
	fresh := records.Filter(list, index.IDs)

	summary.Duplicates = len(list) - len(fresh)

	if len(fresh) == 0 {
		log.Infof("No new records (%v duplicates)", summary.Duplicates)
		return &summary, nil
	}

	rows := records.Rows(fresh, index.Last)

	summary.First = index.Last + 1
	summary.Last = index.Last + len(fresh)

	if w.DryRun {
		for _, r := range fresh {
			log.Debugf("Dry run: %v", r)
		}

		log.Infof("Dry run: %v new records not saved", len(fresh))
		return &summary, nil
	}

	// ... append
	updated, err := w.Workbook.Append(ctx, Area(month, "A1:M"), rows)
	if err != nil {
		return nil, err
	}

	summary.Appended = len(rows)

	first, ok := firstRow(updated)
	if !ok {
		first = index.Rows + 2
	}

	// ... format
	requests := highlights(sheet.SheetId, first, rows)
	if err := w.Workbook.BatchUpdate(ctx, requests); err != nil {
		return &summary, fmt.Errorf("error formatting new rows in worksheet '%v' (%w)", month, err)
	}

	summary.Formatted = len(requests)

	for i := range rows {
		for _, col := range records.Highlighted {
			log.Debugf("Formatted %v", Cell(first+i, col))
		}
	}

	log.Infof("Saved %v new records (%v duplicates)", summary.Appended, summary.Duplicates)

	return &summary, nil
}

func (w *Writer) create(ctx context.Context, month string) (*sheets.SheetProperties, error) {
	sheet, err := w.Workbook.AddSheet(ctx, month, newSheetRows, newSheetColumns)
	if err != nil {
		return nil, err
	}

	header := make([]interface{}, len(records.Header))
	for i, h := range records.Header {
		header[i] = h
	}

	if _, err := w.Workbook.Append(ctx, Area(month, "A1:M"), [][]interface{}{header}); err != nil {
		return nil, err
	}

	if err := w.Workbook.BatchUpdate(ctx, []*sheets.Request{headerFormat(sheet.SheetId)}); err != nil {
		return nil, fmt.Errorf("error formatting header of worksheet '%v' (%w)", month, err)
	}

	return sheet, nil
}

func (w *Writer) locale() string {
	if w.Locale == "" {
		return "es"
	}

	return w.Locale
}

func (w *Writer) logger() logrus.FieldLogger {
	if w.Log == nil {
		return logrus.StandardLogger()
	}

	return w.Log
}
