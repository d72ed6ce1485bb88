package report

import (
	"math"
	"regexp"

	"github.com/agnivade/levenshtein"
)

// Volatile tokens deleted before comparing issue bodies. Timestamps change
// every run, and run/job IDs are 10 to 11 digit numerals bounded by
// non-letters on both sides; commit hashes and other alphanumeric tokens
// contain letters and survive. The bounding delimiters are deleted with the
// digits.
var (
	timestampPattern = regexp.MustCompile(`[0-9]{4}-[0-9]{2}-[0-9]{2} [0-9]{2}:[0-9]{2}:[0-9]{2}`)
	numericIDPattern = regexp.MustCompile(`[^a-zA-Z][0-9]{10,11}[^a-zA-Z]`)
)

// Normalize deletes volatile tokens from an issue body so two reports of
// the same underlying failure compare as equal.
func Normalize(s string) string {
	s = timestampPattern.ReplaceAllString(s, "")
	return numericIDPattern.ReplaceAllString(s, "")
}

// MinDistance returns the smallest Levenshtein distance between body and
// any of others, all normalized first. An empty set yields math.MaxInt,
// meaning no duplicate can possibly exist.
func MinDistance(body string, others []string) int {
	norm := Normalize(body)
	min := math.MaxInt
	for _, other := range others {
		if d := levenshtein.ComputeDistance(norm, Normalize(other)); d < min {
			min = d
		}
	}
	return min
}
