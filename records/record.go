package records

import (
	"fmt"
	"strings"
)

// NF is the marker the search step stores in a field it could not find on the listing.
const NF = "NF"

// Header is the fixed column layout of a month worksheet (A..M).
var Header = []string{
	"Número",
	"FyH Extracción",
	"FyH Publicación",
	"ID",
	"Título",
	"Descripción",
	"Tipo",
	"Monto",
	"Tipo Monto",
	"LINK FICHA",
	"FyH TERRENO",
	"OBLIG?",
	"FyH CIERRE",
}

// Zero-based column positions in Header.
const (
	ColNumber = iota
	ColExtracted
	ColPublished
	ColID
	ColTitle
	ColDescription
	ColType
	ColAmount
	ColAmountType
	ColLink
	ColSiteVisit
	ColMandatory
	ColClosing
)

// Highlighted lists the columns that are coloured red/green depending on whether
// the value is NF.
var Highlighted = []int{ColAmount, ColAmountType, ColSiteVisit, ColMandatory}

// Record is a single procurement listing as produced by the search step.
type Record struct {
	ID             string `json:"id"`
	Extracted      string `json:"fecha_extraccion"`
	Published      string `json:"fecha_publicacion"`
	Title          string `json:"titulo"`
	Description    string `json:"descripcion"`
	Type           string `json:"tipo"`
	Amount         string `json:"monto"`
	AmountType     string `json:"tipo_monto"`
	Link           string `json:"link_ficha"`
	SiteVisit      string `json:"fecha_visita"`
	VisitMandatory string `json:"visita_obligatoria"`
	Closing        string `json:"fecha_cierre"`
}

// Row returns the record as a worksheet row in Header order, numbered n.
func (r Record) Row(n int) []interface{} {
	return []interface{}{
		n,
		r.Extracted,
		r.Published,
		r.ID,
		r.Title,
		r.Description,
		r.Type,
		r.Amount,
		r.AmountType,
		r.Link,
		r.SiteVisit,
		r.VisitMandatory,
		r.Closing,
	}
}

func (r Record) String() string {
	return fmt.Sprintf("%v  %v", r.ID, r.Title)
}

// Filter returns the records whose ID is neither in existing nor repeated earlier in
// the list. Records without an ID are dropped. Order is preserved.
func Filter(list []Record, existing map[string]bool) []Record {
	seen := map[string]bool{}
	filtered := []Record{}

	for _, r := range list {
		id := clean(r.ID)
		if id == "" || existing[id] || seen[id] {
			continue
		}

		seen[id] = true
		filtered = append(filtered, r)
	}

	return filtered
}

// Rows numbers the records consecutively from last+1 and returns them as worksheet
// rows.
func Rows(list []Record, last int) [][]interface{} {
	rows := make([][]interface{}, 0, len(list))
	for i, r := range list {
		rows = append(rows, r.Row(last+1+i))
	}

	return rows
}

func clean(v string) string {
	return strings.TrimSpace(v)
}

func normalise(v string) string {
	v = strings.ReplaceAll(v, " ", "")
	v = strings.ReplaceAll(v, "_", "")

	return strings.ToLower(v)
}
