package format

import (
	"fmt"
	"strconv"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

// Currency renders monetary amounts with a thousands separator and two
// decimal places. It is explicit configuration passed to whichever render
// call needs it; there is no process-wide formatting hook.
type Currency struct {
	printer *message.Printer
	symbol  string
}

// CurrencyOption configures a Currency formatter before construction.
type CurrencyOption func(*Currency)

// WithSymbol overrides the currency symbol. An empty symbol is allowed and
// produces bare numbers.
func WithSymbol(symbol string) CurrencyOption {
	return func(c *Currency) {
		c.symbol = symbol
	}
}

// WithLanguage selects the locale used for digit grouping.
func WithLanguage(tag language.Tag) CurrencyOption {
	return func(c *Currency) {
		c.printer = message.NewPrinter(tag)
	}
}

// NewCurrency constructs a formatter defaulting to US dollars grouped per
// American English conventions.
func NewCurrency(fns ...CurrencyOption) Currency {
	c := Currency{
		printer: message.NewPrinter(language.AmericanEnglish),
		symbol:  "$",
	}
	for _, fn := range fns {
		if fn == nil {
			continue
		}
		fn(&c)
	}
	if c.printer == nil {
		c.printer = message.NewPrinter(language.AmericanEnglish)
	}
	return c
}

// Format renders a value as currency. Absent values (nil or an empty string)
// format to the empty string so unanswered amounts leave form fields blank.
// Non-numeric values fall back to their plain string form.
func (c Currency) Format(value any) string {
	if value == nil {
		return ""
	}
	if s, ok := value.(string); ok && s == "" {
		return ""
	}

	amount, ok := coerceFloat(value)
	if !ok {
		return fmt.Sprint(value)
	}
	return c.symbol + c.decimal(amount)
}

func (c Currency) decimal(amount float64) string {
	printer := c.printer
	if printer == nil {
		printer = message.NewPrinter(language.AmericanEnglish)
	}
	return printer.Sprintf("%v", number.Decimal(amount,
		number.MinFractionDigits(2),
		number.MaxFractionDigits(2),
	))
}

// Thousands renders a number with a thousands separator and two decimal
// places, without any currency symbol.
func Thousands(amount float64) string {
	return NewCurrency(WithSymbol("")).Format(amount)
}

func coerceFloat(value any) (float64, bool) {
	switch v := value.(type) {
	case float64:
		return v, true
	case float32:
		return float64(v), true
	case int:
		return float64(v), true
	case int8:
		return float64(v), true
	case int16:
		return float64(v), true
	case int32:
		return float64(v), true
	case int64:
		return float64(v), true
	case uint:
		return float64(v), true
	case uint8:
		return float64(v), true
	case uint16:
		return float64(v), true
	case uint32:
		return float64(v), true
	case uint64:
		return float64(v), true
	case string:
		parsed, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return 0, false
		}
		return parsed, true
	default:
		return 0, false
	}
}
