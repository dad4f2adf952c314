package money

// Currency the unit of a monetary value. Exactly two currencies are known.
type Currency int

const (
	Dollar Currency = iota
	Euro
)

func (c Currency) String() string {
	switch c {
	case Dollar:
		return "Dollar"
	case Euro:
		return "Euro"
	}
	return "Unknown"
}

// UnmarshalText parses a currency name or symbol, so Currency can be decoded
// directly from JSON strings and the like.
func (c *Currency) UnmarshalText(text []byte) error {
	currency, err := ParseCurrency(string(text))
	if err != nil {
		return err
	}
	*c = currency
	return nil
}

// Money a monetary value: an amount of some currency. Money is a plain value
// with structural equality... two Money are equal when both fields are.
type Money struct {
	Amount   float32
	Currency Currency
}

// UnmarshalText parses "<amount> <currency>" as Parse does.
func (m *Money) UnmarshalText(text []byte) error {
	parsed, err := Parse(string(text))
	if err != nil {
		return err
	}
	*m = parsed
	return nil
}
