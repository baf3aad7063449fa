package money

import (
	"fmt"
	"math"
	"strings"

	"github.com/shopspring/decimal"
)

// Cents is an amount of Brazilian reais expressed in centavos.
//
// Every monetary value handled by the billing core is a Cents. Conversions
// from external float/decimal inputs happen once, at the edge, through
// FromFloat/FromDecimal; from then on arithmetic is exact.
type Cents int64

const centsPerUnit = 100

// MaxUnits bounds every amount, in whole reais. Arithmetic on Cents
// saturates at ±MaxCents instead of wrapping around.
const (
	MaxUnits = 1_000_000_000_000
	MaxCents = Cents(MaxUnits * centsPerUnit)
)

var (
	hundred    = decimal.NewFromInt(centsPerUnit)
	maxDecimal = decimal.NewFromInt(int64(MaxCents))
)

func FromUnits(units int64) Cents {
	switch {
	case units > MaxUnits:
		return MaxCents
	case units < -MaxUnits:
		return -MaxCents
	}
	return Cents(units * centsPerUnit)
}

// FromDecimal rounds d to two decimal places (ties away from zero).
func FromDecimal(d decimal.Decimal) Cents {
	c := d.Mul(hundred).Round(0)
	switch {
	case c.GreaterThan(maxDecimal):
		return MaxCents
	case c.LessThan(maxDecimal.Neg()):
		return -MaxCents
	}
	return Cents(c.IntPart())
}

// FromFloat converts a JSON/form number. NaN and infinities degrade to zero.
func FromFloat(f float64) Cents {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return 0
	}
	return FromDecimal(decimal.NewFromFloat(f))
}

func (c Cents) Decimal() decimal.Decimal {
	return decimal.New(int64(c), -2)
}

func (c Cents) Float64() float64 {
	f, _ := c.Decimal().Float64()
	return f
}

// RoundUnits rounds to the nearest whole real, ties away from zero.
func (c Cents) RoundUnits() Cents {
	return FromUnits(c.Decimal().Round(0).IntPart())
}

// CeilUnits rounds up to the next whole real.
func (c Cents) CeilUnits() Cents {
	return FromUnits(c.Decimal().Ceil().IntPart())
}

// Mul multiplies by a quantity, saturating at ±MaxCents.
func (c Cents) Mul(n int64) Cents {
	if c == 0 || n == 0 {
		return 0
	}
	c = clampCents(c)
	ac, an := int64(c), n
	if ac < 0 {
		ac = -ac
	}
	if an < 0 {
		an = -an
	}
	// an < 0 here only for math.MinInt64
	if an < 0 || an > int64(MaxCents)/ac {
		if (c < 0) != (n < 0) {
			return -MaxCents
		}
		return MaxCents
	}
	return c * Cents(n)
}

// Add sums amounts, saturating at ±MaxCents.
func Add(values ...Cents) Cents {
	var sum Cents
	for _, v := range values {
		sum = clampCents(sum + clampCents(v))
	}
	return sum
}

func clampCents(c Cents) Cents {
	return Min(MaxCents, Max(-MaxCents, c))
}

func Max(a, b Cents) Cents {
	if a > b {
		return a
	}
	return b
}

func Min(a, b Cents) Cents {
	if a < b {
		return a
	}
	return b
}

// ParseDigits drops every non-digit rune and parses what is left as whole
// units. "R$ 1.200" -> 1200, "12.50" -> 1250, "" -> 0. Results saturate at
// MaxUnits.
func ParseDigits(s string) int64 {
	var n int64
	for _, r := range s {
		if r < '0' || r > '9' {
			continue
		}
		d := int64(r - '0')
		if n > (MaxUnits-d)/10 {
			return MaxUnits
		}
		n = n*10 + d
	}
	return n
}

// String renders the amount the way the studio prints it: R$ 1.234,56.
func (c Cents) String() string {
	sign := ""
	v := int64(c)
	if v < 0 {
		sign = "-"
		v = -v
	}
	units := fmt.Sprintf("%d", v/centsPerUnit)
	var b strings.Builder
	for i, r := range units {
		if i > 0 && (len(units)-i)%3 == 0 {
			b.WriteByte('.')
		}
		b.WriteRune(r)
	}
	return fmt.Sprintf("%sR$ %s,%02d", sign, b.String(), v%centsPerUnit)
}
