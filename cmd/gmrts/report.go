package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/opengm/gmrts/aggregate"
)

const (
	col1 = 24
	col2 = 12
	col3 = 6
	col4 = 12
	col5 = 6
)

const colTotal = col1 + col2 + col3 + col4 + col5 + 4

func pad(v string, n int) string {
	if len(v) > n {
		v = v[:n]
	}
	return v + strings.Repeat(" ", n-len(v))
}

func padCenter(v string, n int) string {
	if len(v) > n {
		v = v[:n]
	}
	left := (n - len(v)) / 2
	right := n - len(v) - left
	return strings.Repeat(" ", left) + v + strings.Repeat(" ", right)
}

func printLine(w io.Writer, delimiter string) {
	fmt.Fprintf(w, "+%s%s%s%s%s%s%s%s%s+\n",
		strings.Repeat("-", col1), delimiter,
		strings.Repeat("-", col2), delimiter,
		strings.Repeat("-", col3), delimiter,
		strings.Repeat("-", col4), delimiter,
		strings.Repeat("-", col5))
}

// printReport renders the aggregator's report as the box-drawn ASCII
// table the standard's reference tooling used, with per-test pass
// counts and gate verdicts in fixed-width columns.
func printReport(w io.Writer, rep aggregate.Report, nSamples, bits int, waterline int, alphaT float64, elapsedSeconds float64) {
	printLine(w, "-")
	fmt.Fprintf(w, "|%s|\n", pad(fmt.Sprintf("Number of samples: %d", nSamples), colTotal))
	fmt.Fprintf(w, "|%s|\n", pad(fmt.Sprintf("Bits per sample:   %d", bits), colTotal))
	fmt.Fprintf(w, "|%s|\n", pad(fmt.Sprintf("P_value threshold: %d", waterline), colTotal))
	fmt.Fprintf(w, "|%s|\n", pad(fmt.Sprintf("Q_value threshold: %g", alphaT), colTotal))
	printLine(w, "-")

	fmt.Fprintf(w, "|%s %s %s %s %s|\n",
		pad("", col1), padCenter("p_value", col2), pad("", col3), padCenter("q_value", col4), pad("", col5))
	printLine(w, "+")

	for _, ts := range rep.Tests {
		fmt.Fprintf(w, "|%s|", pad(ts.Tester.String(), col1))
		fmt.Fprintf(w, "%s|", padCenter(fmt.Sprintf("%d/%d", ts.PassCount, ts.SampleCount), col2))
		fmt.Fprintf(w, "%s|", padCenter(verdict(ts.PPassGate), col3))
		fmt.Fprintf(w, "%s|", padCenter(fmt.Sprintf("%.4f", ts.Uniformity), col4))
		fmt.Fprintf(w, "%s|\n", padCenter(verdict(ts.QGatePass), col5))
	}
	printLine(w, "+")

	if rep.Pass {
		fmt.Fprintf(w, "|%s|\n", pad("Randomness test PASS.", colTotal))
	} else {
		fmt.Fprintf(w, "|%s|\n", pad("Randomness test FAIL.", colTotal))
	}
	fmt.Fprintf(w, "|%s|\n", pad(fmt.Sprintf("Used time: %.1f seconds", elapsedSeconds), colTotal))
	printLine(w, "-")
}

func verdict(pass bool) string {
	if pass {
		return "PASS"
	}
	return "FAIL"
}
