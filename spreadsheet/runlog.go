package spreadsheet

import (
	"context"
	"fmt"
	"time"
)

// AppendRunLog adds a one line summary of a Save to the log range e.g. 'Log'!A1:F.
func AppendRunLog(ctx context.Context, workbook Workbook, area string, summary Summary, timestamp time.Time) error {
	row := []interface{}{
		timestamp.Format("2006-01-02 15:04:05"),
		summary.Sheet,
		summary.Received,
		summary.Duplicates,
		summary.Appended,
		summary.Created,
	}

	if _, err := workbook.Append(ctx, area, [][]interface{}{row}); err != nil {
		return fmt.Errorf("error writing run log to Google Sheets (%w)", err)
	}

	return nil
}
