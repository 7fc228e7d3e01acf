package model

import "github.com/shopspring/decimal"

// Decimal is used for weights, volumes and temperatures. Its JSON form is a bare number.
type Decimal struct {
	value decimal.Decimal
}

func NewDecimal(d decimal.Decimal) Decimal {
	return Decimal{value: d}
}

func NewDecimalFromInt(i int64) Decimal {
	return Decimal{value: decimal.NewFromInt(i)}
}

func NewDecimalFromString(s string) (Decimal, error) {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return Decimal{}, err
	}
	return Decimal{
		value: d,
	}, nil
}

func (d Decimal) Value() decimal.Decimal {
	return d.value
}

func (d Decimal) Add(o Decimal) Decimal {
	return Decimal{value: d.value.Add(o.value)}
}

func (d Decimal) Sub(o Decimal) Decimal {
	return Decimal{value: d.value.Sub(o.value)}
}

func (d Decimal) IsZero() bool {
	return d.value.IsZero()
}

func (d Decimal) IsPositive() bool {
	return d.value.IsPositive()
}

func (d Decimal) GreaterThan(o Decimal) bool {
	return d.value.GreaterThan(o.value)
}

func (d Decimal) Equal(o Decimal) bool {
	return d.value.Equal(o.value)
}

func (d Decimal) MarshalJSON() ([]byte, error) {
	return []byte(d.value.String()), nil
}

func (d *Decimal) UnmarshalJSON(b []byte) error {
	return d.value.UnmarshalJSON(b)
}

func (d Decimal) String() string {
	return d.value.String()
}

func (d Decimal) LessThan(o Decimal) bool {
	return d.value.LessThan(o.value)
}

func (d Decimal) Mul(o Decimal) Decimal {
	return Decimal{value: d.value.Mul(o.value)}
}

// DivInt splits d into n parts rounded to three decimal places (grams for weights).
func (d Decimal) DivInt(n int) Decimal {
	if n <= 1 {
		return d
	}
	return Decimal{value: d.value.DivRound(decimal.NewFromInt(int64(n)), 3)}
}

func (d Decimal) Abs() Decimal {
	return Decimal{value: d.value.Abs()}
}

func (d Decimal) IntPart() int64 {
	return d.value.IntPart()
}

func SumDecimal(values ...Decimal) Decimal {
	total := Decimal{}
	for _, v := range values {
		total = total.Add(v)
	}
	return total
}
