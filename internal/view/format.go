package view

import (
	"github.com/spf13/cast"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

var printer = message.NewPrinter(language.English)

// groupDigits formats n with thousands separators, e.g. 10000 -> "10,000".
func groupDigits(n int64) string {
	return printer.Sprint(number.Decimal(n))
}

// LKR formats an amount in rupees, e.g. "LKR 2,000".
func LKR(n int64) string {
	return "LKR " + groupDigits(n)
}

// present mirrors how the page treats backend values: nil, zero, false
// and the empty string all count as missing.
func present(v interface{}) bool {
	switch x := v.(type) {
	case nil:
		return false
	case string:
		return x != ""
	case bool:
		return x
	case float64, float32, int, int64, int32:
		return cast.ToFloat64(x) != 0
	}
	return true
}

// localized renders a backend value for display, grouping digits when the
// value is numeric and passing strings through unchanged.
func localized(v interface{}) string {
	switch x := v.(type) {
	case string:
		return x
	case float64, float32, int, int64, int32:
		return printer.Sprint(number.Decimal(cast.ToFloat64(x)))
	}
	return cast.ToString(v)
}
