package records

import (
	"fmt"
	"strconv"
)

// Index summarises the records already stored in a month worksheet.
type Index struct {
	Rows int
	Last int
	IDs  map[string]bool
}

// MakeIndex builds an Index from the values of a month worksheet, header row included.
// The 'Número' and 'ID' columns are located by header name and fall back to the
// default layout if the header has been edited. Last is the largest numeric 'Número'
// value, cells that are not integers are ignored.
func MakeIndex(rows [][]interface{}) (*Index, error) {
	index := Index{
		IDs: map[string]bool{},
	}

	if len(rows) == 0 {
		return &index, nil
	}

	// ... build column index
	columns := map[string]int{}
	for i, v := range rows[0] {
		k := normalise(fmt.Sprintf("%v", v))
		if k == "" {
			continue
		}

		if _, ok := columns[k]; ok {
			return nil, fmt.Errorf("Duplicate column name '%v'", v)
		}

		columns[k] = i
	}

	number := ColNumber
	if ix, ok := columns[normalise(Header[ColNumber])]; ok {
		number = ix
	}

	id := ColID
	if ix, ok := columns[normalise(Header[ColID])]; ok {
		id = ix
	}

	// ... records
	index.Rows = len(rows) - 1

	for _, row := range rows[1:] {
		if len(row) == 0 {
			continue
		}

		if number < len(row) {
			if n, err := strconv.Atoi(clean(fmt.Sprintf("%v", row[number]))); err == nil && n > index.Last {
				index.Last = n
			}
		}

		if id < len(row) {
			if v := clean(fmt.Sprintf("%v", row[id])); v != "" {
				index.IDs[v] = true
			}
		}
	}

	return &index, nil
}
