package mtr

// CmpSeries is one side of a pairwise comparison: a series' values
// alongside the per-index "this side was faster" marker and whether
// its name cell should be marked overall-best.
type CmpSeries struct {
	Name     string
	Values   []uint64
	Best     []bool
	NameBest bool
}

// Cmp is a four-row pairwise comparison of two data series: the
// shared axis, each series' values with best/not-best markers, and
// the element-wise max/min ratio.
type Cmp struct {
	AxisName string
	Axis     []uint64
	A        CmpSeries
	B        CmpSeries
	Ratios   []float64
}

// Cmps is every unordered pairwise comparison across a Sers' data
// series (the axis series at index 0 is excluded from pairing).
type Cmps struct {
	Comparisons []Cmp
}

// Compare produces one Cmp per unordered pair of data series. It
// fails InsufficientSeries when fewer than two data series exist —
// the axis series at index 0 isn't counted.
func (s *Sers) Compare() (*Cmps, error) {
	if len(s.Series) < 3 {
		return nil, newError("compare", ErrCodeInsufficientSeries, "fewer than two data series")
	}

	var cmps []Cmp
	for i := 1; i < len(s.Series); i++ {
		for j := i + 1; j < len(s.Series); j++ {
			cmps = append(cmps, comparePair(s.Series[0], s.Series[i], s.Series[j]))
		}
	}
	return &Cmps{Comparisons: cmps}, nil
}

func comparePair(axis, a, b Ser) Cmp {
	n := len(a.Values)
	if len(b.Values) < n {
		n = len(b.Values)
	}

	cmp := Cmp{
		AxisName: axis.Name,
		Axis:     append([]uint64(nil), axis.Values[:min(n, len(axis.Values))]...),
		A:        CmpSeries{Name: a.Name, Values: make([]uint64, 0, n), Best: make([]bool, 0, n)},
		B:        CmpSeries{Name: b.Name, Values: make([]uint64, 0, n), Best: make([]bool, 0, n)},
		Ratios:   make([]float64, 0, n),
	}

	var aBest, bBest int
	for i := 0; i < n; i++ {
		av, bv := a.Values[i], b.Values[i]
		cmp.A.Values = append(cmp.A.Values, av)
		cmp.B.Values = append(cmp.B.Values, bv)

		aIsBest := av <= bv
		bIsBest := bv <= av
		cmp.A.Best = append(cmp.A.Best, aIsBest)
		cmp.B.Best = append(cmp.B.Best, bIsBest)
		if aIsBest {
			aBest++
		}
		if bIsBest {
			bBest++
		}

		min64 := av
		max64 := bv
		if bv < av {
			min64 = bv
			max64 = av
		}
		if min64 < 1 {
			min64 = 1
		}
		cmp.Ratios = append(cmp.Ratios, float64(max64)/float64(min64))
	}

	switch {
	case aBest == bBest:
		cmp.A.NameBest, cmp.B.NameBest = true, true
	case aBest > bBest:
		cmp.A.NameBest = true
	default:
		cmp.B.NameBest = true
	}

	return cmp
}
