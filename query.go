package mtr

import "github.com/ehrlich-b/mtrstudy/internal/logging"

// Query names one pass through the pipeline: which closures to
// select, how many times to run them, and which optional stages
// (sort, reduce, group, transpose, compare) to apply.
type Query[L Label[L]] struct {
	// From selects closures: the outer slice is a disjunction, each
	// inner slice a conjunction of tags. Required, non-empty.
	From [][]L

	// Iter is the per-closure repetition count. Required, >= 1.
	Iter uint32

	// Sort, if set, orders Run (and each Grp) by this label's kind.
	Sort *L

	// Stat, if set, reduces each closure's samples to one value.
	Stat *Stat

	// Group, if set, partitions the Run's results into named groups
	// using the same conjunction/disjunction rule as From.
	Group [][]L

	// Transpose, if set, pivots Grps into a Sers along this label's
	// kind. Requires Group and Stat.
	Transpose *L

	// Compare requests pairwise comparisons of the transposed data
	// series. Requires Transpose.
	Compare bool
}

// Validate checks the cross-field implications the query's optional
// stages imply, without running any of them.
func (q *Query[L]) Validate() error {
	if len(q.From) == 0 {
		return newError("validate", ErrCodeInvalidQuery, "from is empty")
	}
	if q.Iter < 1 {
		return newError("validate", ErrCodeInvalidQuery, "iter must be >= 1")
	}
	if q.Transpose != nil && (q.Group == nil || q.Stat == nil) {
		return newError("validate", ErrCodeInvalidQuery, "transpose requires group and stat")
	}
	if q.Compare && q.Transpose == nil {
		return newError("validate", ErrCodeInvalidQuery, "compare requires transpose")
	}
	return nil
}

// Result is the terminal output of running a Query. When Matched is
// true, Run is always populated, and Groups, Series, and Comparisons
// are populated in pipeline order up to the last stage the query's
// options carried the pipeline to. When Matched is false (no closures
// matched From, the non-fatal NoMatch case) all four are nil.
type Result[L Label[L]] struct {
	Matched     bool
	Run         *Run[L]
	Groups      *Grps[L]
	Series      *Sers
	Comparisons *Cmps
}

// Run executes query against the set, driving the pipeline through
// exactly the stages the query's options name: Set --From--> Frm
// --Iter/Stat/Sort--> Run [--Group--> Grps [--Transpose--> Sers
// [--Compare--> Cmps]]]. When s.Metrics is set, activity counters are
// recorded for every stage the query reaches.
func (s *Set[L]) Run(query Query[L]) (result *Result[L], err error) {
	defer func() {
		if s.Metrics != nil {
			s.Metrics.RecordQuery(err)
		}
	}()

	if err = query.Validate(); err != nil {
		return nil, err
	}
	logging.Stage("filter", "from", len(query.From), "iter", query.Iter)

	frm, ok := s.Filter(query.From)
	if !ok {
		logging.Warn("mtr: filter produced no matches")
		return &Result[L]{Matched: false}, nil
	}

	run, err := frm.Run(query.Iter, query.Sort, query.Stat)
	if err != nil {
		return nil, err
	}
	if s.Metrics != nil {
		var total uint64
		for _, dat := range run.Results {
			for _, v := range dat.Samples {
				total += v
			}
		}
		s.Metrics.RecordRun(len(run.Results), query.Iter, total)
	}
	logging.Stage("run", "dats", len(run.Results))

	if query.Group == nil {
		logging.Warn("mtr: skipping group stage, no group labels given")
		return &Result[L]{Matched: true, Run: run}, nil
	}

	grps, err := run.Group(query.Group, query.Sort)
	if err != nil {
		return nil, err
	}
	if s.Metrics != nil {
		s.Metrics.RecordGroup()
	}
	logging.Stage("grp", "groups", len(grps.Groups))

	if query.Transpose == nil {
		logging.Warn("mtr: skipping transpose stage, no transpose label given")
		return &Result[L]{Matched: true, Run: run, Groups: grps}, nil
	}

	sers, err := grps.Transpose(*query.Transpose)
	if err != nil {
		return nil, err
	}
	if s.Metrics != nil {
		s.Metrics.RecordSeries()
	}
	logging.Stage("ser", "series", len(sers.Series))

	if !query.Compare {
		logging.Warn("mtr: skipping compare stage, compare not requested")
		return &Result[L]{Matched: true, Run: run, Groups: grps, Series: sers}, nil
	}

	cmps, err := sers.Compare()
	if err != nil {
		return nil, err
	}
	if s.Metrics != nil {
		s.Metrics.RecordComparison()
	}
	logging.Stage("cmp", "comparisons", len(cmps.Comparisons))

	return &Result[L]{Matched: true, Run: run, Groups: grps, Series: sers, Comparisons: cmps}, nil
}
