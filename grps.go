package mtr

// Grp is a named partition of a Run's results: every Dat whose tags
// satisfy one group tag-list (the same conjunction/disjunction rule
// as Filter).
type Grp[L Label[L]] struct {
	Tags []L
	Dats []Dat[L]
}

// Grps is an ordered list of groups, one per tag list named in a
// Group call.
type Grps[L Label[L]] struct {
	Groups []Grp[L]
}

// Group partitions run's results according to groupQuery, optionally
// sorting each group's Dats by sortLabel. Filtering selects which
// closures run; grouping partitions the results of one run for
// presentation, so a single Run may be grouped several ways even
// though a Query issues only one Group call.
func (r *Run[L]) Group(groupQuery [][]L, sortLabel *L) (*Grps[L], error) {
	ids := make(map[L]map[uint16]struct{})
	dats := make(map[uint16]Dat[L], len(r.Results))

	for i, dat := range r.Results {
		id := uint16(i)
		for _, t := range dat.Tags {
			set, ok := ids[t]
			if !ok {
				set = make(map[uint16]struct{})
				ids[t] = set
			}
			set[id] = struct{}{}
		}
		dats[id] = dat
	}

	groups := make([]Grp[L], 0, len(groupQuery))
	for _, tags := range groupQuery {
		idSets := make([]map[uint16]struct{}, 0, len(tags))
		for _, t := range tags {
			set, ok := ids[t]
			if !ok {
				return nil, newError("group", ErrCodeEmptyGroup, "label '"+joinLabels(tags, "-")+"' didn't produce a group")
			}
			idSets = append(idSets, set)
		}
		if len(idSets) == 0 {
			return nil, newError("group", ErrCodeEmptyGroup, "label '"+joinLabels(tags, "-")+"' didn't produce a group")
		}

		matched := intersectIDs(idSets)
		if len(matched) == 0 {
			return nil, newError("group", ErrCodeEmptyGroup, "label '"+joinLabels(tags, "-")+"' didn't produce a group")
		}

		grpDats := make([]Dat[L], 0, len(matched))
		for i := range r.Results {
			id := uint16(i)
			if _, ok := matched[id]; ok {
				grpDats = append(grpDats, cloneDat(dats[id]))
			}
		}
		if len(grpDats) == 0 {
			return nil, newError("group", ErrCodeEmptyGroup, "label '"+joinLabels(tags, "-")+"' didn't produce a group")
		}

		if sortLabel != nil {
			sortByKind(grpDats, func(d Dat[L]) []L { return d.Tags }, *sortLabel)
		}

		groups = append(groups, Grp[L]{Tags: canonicalize(tags), Dats: grpDats})
	}

	return &Grps[L]{Groups: groups}, nil
}

func cloneDat[L Label[L]](d Dat[L]) Dat[L] {
	return Dat[L]{
		Tags:    append([]L(nil), d.Tags...),
		Samples: append([]uint64(nil), d.Samples...),
	}
}
