package money

import (
	"strconv"
	"strings"
)

// Parse converts a textual monetary value into a Money. The input must be
// exactly two whitespace separated fields, the amount first and the currency
// second: "100 Euro", "10 $", "42.4 DOLLAR". Any other shape fails with a
// ParseFormattingError.
//
// The amount accepts whatever strconv.ParseFloat accepts for 32 bits, so an
// optional sign, a fractional part, scientific notation and even "NaN" or
// "Inf" all pass. No range check is applied beyond that. The amount is
// validated before the currency, so an input with both fields broken reports
// the amount failure.
func Parse(input string) (Money, error) {
	fields := strings.Fields(input)
	if len(fields) != 2 {
		return Money{}, &ParseError{
			Kind:    ParseFormattingError,
			Message: "Expecting amount and currency",
		}
	}

	amount, err := strconv.ParseFloat(fields[0], 32)
	if err != nil {
		return Money{}, &ParseError{Kind: ParseAmountError, Cause: err}
	}

	currency, err := ParseCurrency(fields[1])
	if err != nil {
		return Money{}, err
	}

	return Money{Amount: float32(amount), Currency: currency}, nil
}

// ParseCurrency matches a single whitespace-free token against the known
// currency names and symbols. Matching is case-insensitive.
func ParseCurrency(token string) (Currency, error) {
	switch strings.ToLower(token) {
	case "dollar", "$":
		return Dollar, nil
	case "euro", "eur", "€":
		return Euro, nil
	}

	return 0, &ParseError{Kind: ParseCurrencyError, Message: "Unknown currency"}
}
