// Package format renders amounts, dates and percentages for display in a
// single locale (en-US).
package format

import (
	"fmt"
	"math"
	"strconv"
	"time"

	"golang.org/x/text/currency"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

var symbols = map[currency.Unit]string{
	currency.USD: "$",
	currency.EUR: "€",
	currency.GBP: "£",
	currency.JPY: "¥",
}

// Formatter formats values for one currency.
type Formatter struct {
	printer *message.Printer
	unit    currency.Unit
	symbol  string
	scale   int
}

// New creates a Formatter for an ISO 4217 currency code such as "USD".
func New(code string) (*Formatter, error) {
	unit, err := currency.ParseISO(code)
	if err != nil {
		return nil, fmt.Errorf("unknown currency %q: %w", code, err)
	}

	symbol, ok := symbols[unit]
	if !ok {
		symbol = unit.String() + " "
	}
	scale, _ := currency.Standard.Rounding(unit)

	return &Formatter{
		printer: message.NewPrinter(language.AmericanEnglish),
		unit:    unit,
		symbol:  symbol,
		scale:   scale,
	}, nil
}

var usd, _ = New("USD")

// Default returns the USD formatter.
func Default() *Formatter { return usd }

func (f *Formatter) Unit() currency.Unit { return f.unit }

// Currency formats v with the currency's standard decimals: 22500 renders as
// "$22,500.00".
func (f *Formatter) Currency(v float64) string {
	return f.money(v, f.scale)
}

// CurrencyWhole formats v without decimals, as on program cards.
func (f *Formatter) CurrencyWhole(v float64) string {
	return f.money(v, 0)
}

func (f *Formatter) money(v float64, decimals int) string {
	sign := ""
	if v < 0 {
		sign = "-"
		v = -v
	}
	return sign + f.symbol + f.printer.Sprint(number.Decimal(v, number.Scale(decimals)))
}

// CompactThousands formats v in thousands for chart axes: 22500 renders as
// "$22.5k".
func (f *Formatter) CompactThousands(v float64) string {
	return f.symbol + strconv.FormatFloat(v/1000, 'f', -1, 64) + "k"
}

// Percent formats p, already scaled to 0..100, as a whole percentage.
func (f *Formatter) Percent(p float64) string {
	return f.printer.Sprintf("%d%%", int64(math.Round(p)))
}

// Currency formats v in USD.
func Currency(v float64) string { return usd.Currency(v) }

// CurrencyWhole formats v in whole US dollars.
func CurrencyWhole(v float64) string { return usd.CurrencyWhole(v) }

// CompactThousands formats v in thousands of US dollars.
func CompactThousands(v float64) string { return usd.CompactThousands(v) }

// Percent formats p as a whole percentage.
func Percent(p float64) string { return usd.Percent(p) }

// Date formats t as month/day/year without padding: "1/15/2023".
func Date(t time.Time) string {
	return t.Format("1/2/2006")
}

// ShortDate formats t as "Jan 15".
func ShortDate(t time.Time) string {
	return t.Format("Jan 2")
}

// LongDate formats t as "January 15, 2024".
func LongDate(t time.Time) string {
	return t.Format("January 2, 2006")
}

// Period formats a program period as "Jan 1 - Mar 31, 2024", spelling out
// both years when they differ.
func Period(start, end time.Time) string {
	if start.Year() == end.Year() {
		return fmt.Sprintf("%s - %s, %d", ShortDate(start), ShortDate(end), end.Year())
	}
	return start.Format("Jan 2, 2006") + " - " + end.Format("Jan 2, 2006")
}
