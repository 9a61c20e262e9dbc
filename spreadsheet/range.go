package spreadsheet

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// Area returns an A1 notation range on the named worksheet e.g. 'Palabras Clave'!F8:F19.
func Area(sheet, cells string) string {
	name := "'" + strings.ReplaceAll(sheet, "'", "''") + "'"
	if cells == "" {
		return name
	}

	return fmt.Sprintf("%v!%v", name, cells)
}

// Column converts a zero-based column index to its A1 letters (0 -> A, 26 -> AA).
func Column(index int) string {
	s := ""
	for n := index + 1; n > 0; n = (n - 1) / 26 {
		s = string(rune('A'+(n-1)%26)) + s
	}

	return s
}

// Cell returns the A1 reference of a one-based row and zero-based column.
func Cell(row, column int) string {
	return fmt.Sprintf("%v%v", Column(column), row)
}

// firstRow extracts the starting row number from an A1 range such as
// "'Octubre'!A12:M14" as returned in an append response.
func firstRow(area string) (int, bool) {
	match := regexp.MustCompile(`(?:!|^)\$?[A-Za-z]+\$?([0-9]+)`).FindStringSubmatch(area)
	if len(match) < 2 {
		return 0, false
	}

	row, err := strconv.Atoi(match[1])
	if err != nil || row < 1 {
		return 0, false
	}

	return row, true
}
