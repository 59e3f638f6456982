package main

import (
	"fmt"
	"io"
	"math"
	"strings"

	"github.com/spf13/cobra"

	"github.com/charmingruby/lazyseq/eager"
	"github.com/charmingruby/lazyseq/option"
	"github.com/charmingruby/lazyseq/seq"
)

type demo struct {
	name    string
	summary string
	run     func(w io.Writer)
}

type person struct {
	name string
}

var people = []person{{"bob"}, {"alice"}, {"joy"}, {"joyce"}}

var demos = []demo{
	{"names", "map and filter without intermediate collections", demoNames},
	{"laziness", "intermediate stages run nothing on their own", demoLaziness},
	{"interleave", "lazy stages interleave per element, eager ones per stage", demoInterleave},
	{"find", "find stops pulling at the first match", demoFind},
	{"naturals", "an infinite source bounded with takeWhile", demoNaturals},
}

func newDemoCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "demo [name]",
		Short: "Replay lazy evaluation walkthroughs",
		Long:  "Replay one walkthrough by name, or all of them in order:\n\n" + demoIndex(),
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			w := cmd.OutOrStdout()
			if len(args) == 0 {
				for _, d := range demos {
					fmt.Fprintf(w, "== %s\n", d.name)
					d.run(w)
				}
				return nil
			}
			selected := seq.FromSlice(demos).Find(func(d demo) bool { return d.name == args[0] })
			d, ok := selected.Get()
			if !ok {
				return fmt.Errorf("unknown demo %q, expected one of: %s", args[0],
					seq.JoinToString(seq.FromSlice(demos), ", ", func(d demo) string { return d.name }))
			}
			d.run(w)
			return nil
		},
	}
}

func demoIndex() string {
	lines := seq.Map(seq.FromSlice(demos), func(d demo) string {
		return fmt.Sprintf("  %-11s %s", d.name, d.summary)
	})
	return seq.JoinToString(lines, "\n", nil)
}

func demoNames(w io.Writer) {
	names := seq.Map(seq.FromSlice(people), func(p person) string { return p.name }).
		Filter(func(n string) bool { return strings.HasPrefix(n, "j") })
	fmt.Fprintln(w, names.ToList())
}

func demoLaziness(w io.Writer) {
	calls := 0
	_ = seq.Map(seq.Of(1, 2, 3, 4), func(v int) int {
		calls++
		return v * v
	}).Filter(func(v int) bool {
		calls++
		return v%2 == 0
	})
	fmt.Fprintf(w, "callbacks run before a terminal operation: %d\n", calls)
}

func demoInterleave(w io.Writer) {
	var lazy, eagerTrace []string
	lazyResult := seq.Map(seq.Of(1, 2, 3, 4), func(v int) int {
		lazy = append(lazy, fmt.Sprintf("map(%d)", v))
		return v * v
	}).Filter(func(v int) bool {
		lazy = append(lazy, fmt.Sprintf("filter(%d)", v))
		return v%2 == 0
	}).ToList()

	squares := eager.Map([]int{1, 2, 3, 4}, func(v int) int {
		eagerTrace = append(eagerTrace, fmt.Sprintf("map(%d)", v))
		return v * v
	})
	eagerResult := eager.Filter(squares, func(v int) bool {
		eagerTrace = append(eagerTrace, fmt.Sprintf("filter(%d)", v))
		return v%2 == 0
	})

	fmt.Fprintf(w, "lazy:  %s -> %v\n", strings.Join(lazy, " "), lazyResult)
	fmt.Fprintf(w, "eager: %s -> %v\n", strings.Join(eagerTrace, " "), eagerResult)
}

func demoFind(w io.Writer) {
	pulled := 0
	squares := seq.Map(seq.Of(1, 2, 3, 4), func(v int) int {
		pulled++
		return v * v
	})
	found := squares.Find(func(v int) bool { return v > 3 })
	root := option.Map(found, func(v int) float64 { return math.Sqrt(float64(v)) })
	fmt.Fprintf(w, "%v (square of %v) after squaring %d elements\n", found, root, pulled)
}

func demoNaturals(w io.Writer) {
	naturals := seq.Generate(0, func(n int) int { return n + 1 })
	upTo100 := naturals.TakeWhile(func(n int) bool { return n <= 100 })
	fmt.Fprintln(w, seq.Sum(upTo100))
}
