// Package univariate computes single-column summaries: frequency tables,
// interval bins, descriptive statistics, histograms, boxplot statistics and
// kernel density estimates.
package univariate

import (
	"sort"

	"univar/domain/summary"

	"gonum.org/v1/gonum/floats"
)

// Frequencies counts each distinct value. Rows are ordered by descending
// count; ties keep the order in which values first appear.
func Frequencies(values []string) summary.FrequencyTable {
	counts := make(map[string]int, len(values))
	order := make([]string, 0)
	for _, v := range values {
		if _, seen := counts[v]; !seen {
			order = append(order, v)
		}
		counts[v]++
	}

	sort.SliceStable(order, func(i, j int) bool {
		return counts[order[i]] > counts[order[j]]
	})

	freqs := make([]int, len(order))
	for i, v := range order {
		freqs[i] = counts[v]
	}
	return buildTable(order, freqs, len(values))
}

// buildTable fills relative and cumulative relative frequencies for labels
// already in display order.
func buildTable(labels []string, freqs []int, total int) summary.FrequencyTable {
	table := summary.FrequencyTable{
		Rows:  make([]summary.FrequencyRow, len(labels)),
		Total: total,
	}
	if len(labels) == 0 {
		return table
	}

	relative := make([]float64, len(freqs))
	if total > 0 {
		for i, f := range freqs {
			relative[i] = float64(f) / float64(total)
		}
	}
	cumulative := floats.CumSum(make([]float64, len(relative)), relative)

	for i := range labels {
		table.Rows[i] = summary.FrequencyRow{
			Value:                       labels[i],
			Frequency:                   freqs[i],
			RelativeFrequency:           relative[i],
			CumulativeRelativeFrequency: cumulative[i],
		}
	}
	// Rounding can leave the running sum a hair under one.
	if total > 0 {
		last := &table.Rows[len(table.Rows)-1]
		if sumFreqs(freqs) == total {
			last.CumulativeRelativeFrequency = 1
		}
	}
	return table
}

func sumFreqs(freqs []int) int {
	n := 0
	for _, f := range freqs {
		n += f
	}
	return n
}
