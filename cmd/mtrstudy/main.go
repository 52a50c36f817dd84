// Command mtrstudy runs one of a few canned queries against the
// example closure corpus and prints the result as a console table.
// It is a thin flag-based entry point over the study engine; all
// query construction and table rendering live here, outside the
// engine package, per the engine's own scope boundary.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/ehrlich-b/mtrstudy"
	"github.com/ehrlich-b/mtrstudy/examples/corpus"
	"github.com/ehrlich-b/mtrstudy/internal/logging"
	"github.com/olekukonko/tablewriter"
)

func main() {
	query := flag.String("query", "lengths", "canned query: lengths, compare, threadpool")
	iter := flag.Uint("iter", 8, "iterations per closure")
	verbose := flag.Bool("v", false, "enable debug logging")
	flag.Parse()

	if *verbose {
		logging.SetDefault(logging.NewLogger(&logging.Config{Level: logging.LevelDebug, Output: os.Stderr}))
	}

	set := corpus.New()

	var err error
	switch *query {
	case "lengths":
		err = runLengths(set, uint32(*iter))
	case "compare":
		err = runCompare(set, uint32(*iter))
	case "threadpool":
		err = runThreadPool(set, uint32(*iter))
	default:
		fmt.Fprintf(os.Stderr, "unknown -query %q\n", *query)
		os.Exit(2)
	}

	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func runLengths(set *mtr.Set[corpus.Kind], iter uint32) error {
	stat := mtr.StatMedian
	sort := corpus.Len(0)
	result, err := set.Run(mtr.Query[corpus.Kind]{
		From: [][]corpus.Kind{{corpus.Alloc, corpus.Array}},
		Iter: iter,
		Sort: &sort,
		Stat: &stat,
	})
	if err != nil {
		return err
	}
	if !result.Matched {
		fmt.Println("No matches")
		return nil
	}
	printRun(result.Run)
	return nil
}

func runCompare(set *mtr.Set[corpus.Kind], iter uint32) error {
	stat := mtr.StatMedian
	transpose := corpus.Len(0)
	result, err := set.Run(mtr.Query[corpus.Kind]{
		From:      [][]corpus.Kind{{corpus.Alloc, corpus.Vector, corpus.Resize}, {corpus.Alloc, corpus.Vector, corpus.Macro}},
		Iter:      iter,
		Stat:      &stat,
		Group:     [][]corpus.Kind{{corpus.Alloc, corpus.Vector, corpus.Resize}, {corpus.Alloc, corpus.Vector, corpus.Macro}},
		Transpose: &transpose,
		Compare:   true,
	})
	if err != nil {
		return err
	}
	if !result.Matched {
		fmt.Println("No matches")
		return nil
	}
	printCmps(result.Comparisons)
	return nil
}

func runThreadPool(set *mtr.Set[corpus.Kind], iter uint32) error {
	result, err := set.Run(mtr.Query[corpus.Kind]{
		From: [][]corpus.Kind{{corpus.ThreadPool}},
		Iter: iter,
	})
	if err != nil {
		return err
	}
	if !result.Matched {
		fmt.Println("No matches")
		return nil
	}
	printRun(result.Run)
	return nil
}

func printRun[L mtr.Label[L]](run *mtr.Run[L]) {
	w := tablewriter.NewWriter(os.Stdout)
	w.SetHeader([]string{"tags", "samples"})
	for _, dat := range run.Results {
		w.Append([]string{joinTags(dat.Tags), joinCycles(dat.Samples)})
	}
	w.Render()
}

func printCmps(cmps *mtr.Cmps) {
	for _, cmp := range cmps.Comparisons {
		w := tablewriter.NewWriter(os.Stdout)
		w.SetHeader(append([]string{cmp.AxisName}, cyclesToStrings(cmp.Axis)...))
		w.Append(append([]string{cmp.A.Name}, cyclesToStrings(cmp.A.Values)...))
		w.Append(append([]string{cmp.B.Name}, cyclesToStrings(cmp.B.Values)...))
		w.Append(append([]string{"ratio (max/min)"}, ratiosToStrings(cmp.Ratios)...))
		w.Render()
		fmt.Println()
	}
}

func joinTags[L fmt.Stringer](tags []L) string {
	s := ""
	for i, t := range tags {
		if i > 0 {
			s += ","
		}
		s += t.String()
	}
	return s
}

func joinCycles(vals []uint64) string {
	s := ""
	for i, v := range vals {
		if i > 0 {
			s += ","
		}
		s += mtr.FormatCycles(v)
	}
	return s
}

func cyclesToStrings(vals []uint64) []string {
	out := make([]string, len(vals))
	for i, v := range vals {
		out[i] = mtr.FormatCycles(v)
	}
	return out
}

func ratiosToStrings(vals []float64) []string {
	out := make([]string, len(vals))
	for i, v := range vals {
		out[i] = mtr.FormatRatio(v)
	}
	return out
}
