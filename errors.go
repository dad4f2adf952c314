package money

import "fmt"

// ErrorKind classifies a parse failure. The set is closed: callers can switch
// over Kind exhaustively.
type ErrorKind int

const (
	// ParseAmountError the amount token is not a valid floating point literal
	ParseAmountError ErrorKind = iota

	// ParseCurrencyError the currency token matches no known currency
	ParseCurrencyError

	// ParseFormattingError the input does not split into exactly two tokens
	ParseFormattingError
)

func (k ErrorKind) String() string {
	switch k {
	case ParseAmountError:
		return "ParseAmount"
	case ParseCurrencyError:
		return "ParseCurrency"
	case ParseFormattingError:
		return "ParseFormatting"
	}
	return "Unknown"
}

// ParseError the failure outcome of parsing a monetary value. Kind says what
// went wrong, Message carries the human readable text, and Cause holds the
// underlying numeric parse failure for ParseAmountError.
type ParseError struct {
	Kind    ErrorKind
	Message string
	Cause   error
}

func (e *ParseError) Error() string {
	if e.Kind == ParseAmountError && e.Cause != nil {
		return fmt.Sprintf("Invalid input: %v", e.Cause)
	}
	return e.Message
}

// Unwrap exposes the underlying numeric parse failure to errors.Is/errors.As.
func (e *ParseError) Unwrap() error {
	return e.Cause
}
