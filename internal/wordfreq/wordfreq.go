// Package wordfreq counts word occurrences in plain text, merges counts
// across documents and buckets them by initial letter.
package wordfreq

import (
	"strings"
	"unicode"
)

// Clean lowercases s and replaces every rune that is not a letter, number or
// whitespace with a single space, so punctuation never glues words together.
// IsNumber keeps letter-like and fraction numerals (Ⅻ, ½), not just digits.
func Clean(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		if unicode.IsLetter(r) || unicode.IsNumber(r) || unicode.IsSpace(r) {
			b.WriteRune(r)
		} else {
			b.WriteRune(' ')
		}
	}
	return strings.ToLower(b.String())
}

// Count returns the number of occurrences of each whitespace-separated word.
func Count(text string) map[string]int {
	counts := make(map[string]int)
	for _, word := range strings.Fields(text) {
		counts[word]++
	}
	return counts
}

// Merge sums two count maps over the union of their keys.
func Merge(a, b map[string]int) map[string]int {
	merged := make(map[string]int, len(a)+len(b))
	for word, n := range a {
		merged[word] = n
	}
	for word, n := range b {
		merged[word] += n
	}
	return merged
}

// ByInitial totals counts per initial letter a-z. Words starting with any
// other character fall outside every bucket.
func ByInitial(counts map[string]int) map[string]int {
	totals := make(map[string]int, 26)
	for c := 'a'; c <= 'z'; c++ {
		totals[string(c)] = 0
	}
	for word, n := range counts {
		initial := string(unicode.ToLower([]rune(word)[0]))
		if _, ok := totals[initial]; ok {
			totals[initial] += n
		}
	}
	return totals
}

// TotalWords returns the number of whitespace-separated words in text.
func TotalWords(text string) int {
	return len(strings.Fields(text))
}
