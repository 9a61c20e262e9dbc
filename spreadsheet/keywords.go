package spreadsheet

import (
	"context"
	"fmt"
	"strings"

	"github.com/sirupsen/logrus"
)

const (
	KeywordsSheet = "Palabras Clave"
	KeywordsRange = "F8:F19"
)

// LoadKeywords reads the keywords from a single column range, returning the non-empty
// trimmed entries in order. Any error is logged and an empty list returned so that a
// search can still run, unfiltered.
func LoadKeywords(ctx context.Context, workbook Workbook, area string, log logrus.FieldLogger) []string {
	rows, err := workbook.Get(ctx, area)
	if err != nil {
		log.WithField("range", area).Warnf("Error loading keywords (%v)", err)
		return []string{}
	}

	keywords := []string{}
	for _, row := range rows {
		for _, v := range row {
			if s := strings.TrimSpace(fmt.Sprintf("%v", v)); s != "" {
				keywords = append(keywords, s)
			}
		}
	}

	log.WithField("range", area).Infof("Loaded %v keywords", len(keywords))

	return keywords
}
