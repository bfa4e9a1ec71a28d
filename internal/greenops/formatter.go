package greenops

import (
	"fmt"
	"math"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// printer formats numbers with English thousand separators.
//
//nolint:gochecknoglobals // Global printer is idiomatic for x/text/message usage.
var printer = message.NewPrinter(language.English)

// currencySymbols maps ISO codes to display symbols.
//
//nolint:gochecknoglobals // Read-only lookup table.
var currencySymbols = map[string]string{
	"EUR": "€",
	"USD": "$",
	"GBP": "£",
}

// FormatNumber formats an integer with thousand separators: 18248 -> "18,248".
func FormatNumber(n int64) string {
	return printer.Sprintf("%d", n)
}

// FormatFloat rounds f to precision decimals and adds thousand separators to
// the integer part: FormatFloat(16989.75, 1) -> "16,989.8".
func FormatFloat(f float64, precision int) string {
	if precision < 0 {
		precision = 0
	}
	scale := math.Pow(10, float64(precision))
	rounded := math.Round(f*scale) / scale
	if math.IsInf(rounded, 0) || math.IsNaN(rounded) {
		rounded = f // scaling overflowed; the printer still rounds
	}
	if rounded == 0 {
		rounded = 0 // drop negative zero
	}
	return printer.Sprintf("%.*f", precision, rounded)
}

// FormatLarge abbreviates values of a million or more ("~1.5 billion") and
// formats smaller ones as grouped integers.
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

// FormatEmissions renders tonnes CO2e as "300 Tonne CO2E".
func FormatEmissions(tonnes float64, precision int) string {
	return FormatFloat(tonnes, precision) + " " + DisplayUnit
}

// FormatMoney renders an amount with its currency symbol, or with the code as
// a suffix when no symbol is known: "€22,653", "22,653 CHF".
func FormatMoney(amount float64, currency string, precision int) string {
	code := strings.ToUpper(strings.TrimSpace(currency))
	num := FormatFloat(amount, precision)
	if sym, ok := currencySymbols[code]; ok {
		if strings.HasPrefix(num, "-") {
			return "-" + sym + num[1:]
		}
		return sym + num
	}
	if code == "" {
		return num
	}
	return num + " " + code
}
