package spreadsheet

import (
	"fmt"
	"strings"
	"time"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

var months = map[string][12]string{
	"es": {"enero", "febrero", "marzo", "abril", "mayo", "junio", "julio", "agosto", "septiembre", "octubre", "noviembre", "diciembre"},
	"en": {"january", "february", "march", "april", "may", "june", "july", "august", "september", "october", "november", "december"},
}

// MonthName returns the capitalised full month name of the date in the locale
// ("es" or "en"), which is also the title of the date's worksheet.
func MonthName(date time.Time, locale string) (string, error) {
	tag, err := language.Parse(locale)
	if err != nil {
		return "", fmt.Errorf("invalid month locale '%v' (%w)", locale, err)
	}

	base, _ := tag.Base()
	names, ok := months[strings.ToLower(base.String())]
	if !ok {
		return "", fmt.Errorf("unsupported month locale '%v'", locale)
	}

	return cases.Title(tag).String(names[date.Month()-1]), nil
}

// ParseDate parses a target date in YYYY-MM-DD format.
func ParseDate(s string) (time.Time, error) {
	date, err := time.ParseInLocation("2006-01-02", strings.TrimSpace(s), time.Local)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date '%v' - expected YYYY-MM-DD", s)
	}

	return date, nil
}
