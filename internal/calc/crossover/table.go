package crossover

import (
	"fmt"
	"math"
	"slices"
)

type FilterType string

const (
	Butterworth   FilterType = "Butterworth"
	LinkwitzRiley FilterType = "Linkwitz-Riley"
	Bessel        FilterType = "Bessel"
	Chebychev     FilterType = "Chebychev"
	Legendre      FilterType = "Legendre"
	Gaussian      FilterType = "Gaussian"
	LinearPhase   FilterType = "Linear-Phase"
)

// Order is the filter order, 1 to 4. It marshals as "1st", "2nd", ...
type Order int

func (o Order) String() string {
	switch o {
	case 1:
		return "1st"
	case 2:
		return "2nd"
	case 3:
		return "3rd"
	}
	return fmt.Sprintf("%dth", int(o))
}

func (o Order) MarshalText() ([]byte, error) {
	return []byte(o.String()), nil
}

func (o *Order) UnmarshalText(b []byte) error {
	for n := Order(1); n <= 4; n++ {
		if n.String() == string(b) {
			*o = n
			return nil
		}
	}
	return fmt.Errorf("%w: %q", ErrUnknownOrder, b)
}

// Coefficients are dimensionless K values, one per component.
type Coefficients struct {
	Capacitors []float64 `json:"capacitors"`
	Inductors  []float64 `json:"inductors"`
}

// Cell is one (filter type, order) entry of the design table.
type Cell struct {
	Type    FilterType   `json:"filterType"`
	Order   Order        `json:"order"`
	Woofer  Coefficients `json:"woofer"`
	Tweeter Coefficients `json:"tweeter"`
}

// table holds the tabulated crossover K values in presentation order.
// Callers only ever see copies of it.
var table = [...]Cell{
	{Butterworth, 1,
		Coefficients{[]float64{1 / (2 * math.Pi)}, []float64{}},
		Coefficients{[]float64{}, []float64{1 / (2 * math.Pi)}}},
	{Butterworth, 2,
		Coefficients{[]float64{0.1125}, []float64{0.2251}},
		Coefficients{[]float64{0.1125}, []float64{0.2251}}},
	{Butterworth, 3,
		Coefficients{[]float64{0.1061, 0.3183}, []float64{0.1194}},
		Coefficients{[]float64{0.2122}, []float64{0.2387, 0.0796}}},
	{Butterworth, 4,
		Coefficients{[]float64{0.104, 0.147}, []float64{0.1009, 0.4159}},
		Coefficients{[]float64{0.2509, 0.0609}, []float64{0.2437, 0.1723}}},

	{LinkwitzRiley, 2,
		Coefficients{[]float64{0.0796}, []float64{0.3183}},
		Coefficients{[]float64{0.0796}, []float64{0.3183}}},
	{LinkwitzRiley, 4,
		Coefficients{[]float64{0.0844, 0.1688}, []float64{0.1, 0.4501}},
		Coefficients{[]float64{0.2533, 0.0563}, []float64{0.3, 0.15}}},

	{Bessel, 2,
		Coefficients{[]float64{0.0912}, []float64{0.2756}},
		Coefficients{[]float64{0.0912}, []float64{0.2756}}},
	{Bessel, 4,
		Coefficients{[]float64{0.0702, 0.0719}, []float64{0.862, 0.4983}},
		Coefficients{[]float64{0.2336, 0.0504}, []float64{0.3583, 0.1463}}},

	{Chebychev, 2,
		Coefficients{[]float64{0.1592}, []float64{0.1592}},
		Coefficients{[]float64{0.1592}, []float64{0.1592}}},

	{Legendre, 4,
		Coefficients{[]float64{0.1104, 0.1246}, []float64{0.1073, 0.2783}},
		Coefficients{[]float64{0.2365, 0.091}, []float64{0.2294, 0.2034}}},

	{Gaussian, 4,
		Coefficients{[]float64{0.0767, 0.1491}, []float64{0.1116, 0.3251}},
		Coefficients{[]float64{0.2235, 0.0768}, []float64{0.3253, 0.1674}}},

	{LinearPhase, 4,
		Coefficients{[]float64{0.0741, 0.1524}, []float64{0.1079, 0.3853}},
		Coefficients{[]float64{0.2255, 0.0632}, []float64{0.3285, 0.1674}}},
}

func (c Coefficients) clone() Coefficients {
	return Coefficients{Capacitors: slices.Clone(c.Capacitors), Inductors: slices.Clone(c.Inductors)}
}

func (c Cell) clone() Cell {
	c.Woofer = c.Woofer.clone()
	c.Tweeter = c.Tweeter.clone()
	return c
}

// Cells returns a copy of the whole table in presentation order.
func Cells() []Cell {
	out := make([]Cell, len(table))
	for i, c := range table {
		out[i] = c.clone()
	}
	return out
}

// Lookup finds the cell for a filter type and order.
func Lookup(t FilterType, o Order) (Cell, error) {
	for _, c := range table {
		if c.Type == t && c.Order == o {
			return c.clone(), nil
		}
	}
	return Cell{}, fmt.Errorf("%w: %s %s", ErrUnknownFilter, t, o)
}
