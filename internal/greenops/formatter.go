package greenops

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// printer groups thousands the English way.
//
//nolint:gochecknoglobals // a shared printer is the usual x/text/message pattern.
var printer = message.NewPrinter(language.English)

// FormatNumber formats n with thousand separators: 18248 -> "18,248".
func FormatNumber(n int64) string {
	return printer.Sprintf("%d", n)
}

// FormatFloat formats f rounded to precision decimals with thousand
// separators in the integer part: FormatFloat(1234.567, 2) -> "1,234.57".
func FormatFloat(f float64, precision int) string {
	if math.IsInf(f, 0) || math.IsNaN(f) {
		return strconv.FormatFloat(f, 'f', -1, 64)
	}
	if precision < 0 {
		precision = 0
	}

	formatted := strconv.FormatFloat(math.Abs(f), 'f', precision, 64)
	intPart, fracPart, hasFrac := strings.Cut(formatted, ".")

	n, err := strconv.ParseInt(intPart, 10, 64)
	if err != nil {
		// Beyond int64; leave ungrouped.
		return strconv.FormatFloat(f, 'f', precision, 64)
	}

	var b strings.Builder
	if f < 0 && strings.Trim(formatted, "0.") != "" {
		b.WriteByte('-')
	}
	b.WriteString(FormatNumber(n))
	if hasFrac {
		b.WriteByte('.')
		b.WriteString(fracPart)
	}
	return b.String()
}

// FormatLarge abbreviates values of a million or more ("~45.6 million",
// "~1.5 billion"); smaller values are rounded and grouped.
func FormatLarge(n float64) string {
	switch {
	case n >= BillionThreshold:
		return fmt.Sprintf("~%.1f billion", n/BillionThreshold)
	case n >= LargeNumberThreshold:
		return fmt.Sprintf("~%.1f million", n/LargeNumberThreshold)
	default:
		return FormatNumber(int64(math.Round(n)))
	}
}
