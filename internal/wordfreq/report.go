package wordfreq

import (
	"fmt"
	"io"
	"sort"
)

// Report renders the full exercise output for two raw documents: per-document
// totals, the merged per-word counts and the per-initial totals. Word and
// initial listings are sorted lexically so the report is deterministic.
func Report(w io.Writer, raw1, raw2 string) error {
	s1 := Clean(raw1)
	s2 := Clean(raw2)

	d1 := Count(s1)
	if _, err := fmt.Fprintf(w, "Total words in s1: %d\n", TotalWords(s1)); err != nil {
		return err
	}
	fmt.Fprintf(w, "Unique words in d1: %d\n", len(d1))

	d2 := Count(s2)
	fmt.Fprintf(w, "Total words in s2: %d\n", TotalWords(s2))
	fmt.Fprintf(w, "Unique words in d2: %d\n", len(d2))
	fmt.Fprintln(w)

	d3 := Merge(d1, d2)
	fmt.Fprintf(w, "Unique words in d3: %d\n", len(d3))
	fmt.Fprintln(w, "Word counts in d3:")
	for _, word := range sortedKeys(d3) {
		fmt.Fprintf(w, "\t%s: %d\n", word, d3[word])
	}
	fmt.Fprintln(w)

	d4 := ByInitial(d3)
	fmt.Fprintln(w, "Initial letter counts in d4:")
	for _, initial := range sortedKeys(d4) {
		fmt.Fprintf(w, "\t%s: %d\n", initial, d4[initial])
	}
	_, err := fmt.Fprintln(w)
	return err
}

func sortedKeys(m map[string]int) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
