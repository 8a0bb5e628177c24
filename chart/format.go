package chart

import (
	"strconv"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

// FormatValue renders an axis value. With language.Und the shortest exact
// decimal is used ("900", "-400", "12.5"); any other tag goes through the
// locale's decimal format, grouping separators included.
func FormatValue(v float64, tag language.Tag) string {
	if v == 0 {
		v = 0 // drop negative zero
	}
	if tag == language.Und {
		return strconv.FormatFloat(v, 'f', -1, 64)
	}
	return message.NewPrinter(tag).Sprint(number.Decimal(v))
}
