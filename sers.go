package mtr

// Ser is one column-oriented series: a name and a vector of values
// aligned with the axis series' index.
type Ser struct {
	Name   string
	Values []uint64
}

// Sers is a transposed view of a Grps: its first element is the
// "axis" series (the transpose label's payload values, in the first
// group's Dat order: insertion order, or sort-label order when the
// query sorted), and every subsequent element is one group's value
// column.
type Sers struct {
	Series []Ser
}

// Transpose pivots groups to series along transposeLabel. Every Dat
// across every group must carry exactly one sample (a statistical
// reducer must have been applied at Run time) and must carry a tag
// of transposeLabel's kind.
func (g *Grps[L]) Transpose(transposeLabel L) (*Sers, error) {
	sers := make([]Ser, 0, 1+len(g.Groups))

	for _, grp := range g.Groups {
		if len(sers) == 0 {
			axis := make([]uint64, 0, len(grp.Dats))
			for _, dat := range grp.Dats {
				lbl, ok := findKind(dat.Tags, transposeLabel)
				if !ok {
					return nil, newError("transpose", ErrCodeMissingTransposeLabel,
						"group '"+joinLabels(grp.Tags, ",")+"' has data missing transpose label '"+transposeLabel.String()+"'")
				}
				val, _ := lbl.Payload()
				axis = append(axis, uint64(val))
			}
			sers = append(sers, Ser{Name: transposeLabel.String(), Values: axis})
		}

		values := make([]uint64, 0, len(grp.Dats))
		for _, dat := range grp.Dats {
			if len(dat.Samples) == 0 {
				return nil, newError("transpose", ErrCodeWrongRowCount, "no rows (expect:1, actual:0)")
			}
			if len(dat.Samples) > 1 {
				return nil, newError("transpose", ErrCodeWrongRowCount, "too many rows (expect:1)")
			}
			values = append(values, dat.Samples[0])
		}

		name := joinLabels(cloneExceptKind(grp.Dats[0].Tags, transposeLabel), ",")
		sers = append(sers, Ser{Name: name, Values: values})
	}

	return &Sers{Series: sers}, nil
}
