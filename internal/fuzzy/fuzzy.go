// Package fuzzy suggests likely intended names for mistyped options and
// commands, using bounded Levenshtein distance.
package fuzzy

import "strings"

// Matcher finds near-matches within a maximum edit distance. Inputs shorter
// than two characters never produce suggestions.
type Matcher struct {
	maxDistance int
	minLength   int
}

// NewMatcher creates a Matcher with the given maximum edit distance.
func NewMatcher(maxDistance int) *Matcher {
	return &Matcher{
		maxDistance: maxDistance,
		minLength:   2,
	}
}

// FindBest returns the candidate closest to input, or "" when none is within
// the maximum distance. Ties go to the earliest candidate, so suggestions
// are stable for a fixed candidate order. An exact match is not a
// suggestion and returns "".
func (m *Matcher) FindBest(input string, candidates []string) string {
	if len(input) < m.minLength {
		return ""
	}

	best := ""
	bestDistance := m.maxDistance + 1
	input = strings.ToLower(input)

	for _, candidate := range candidates {
		lower := strings.ToLower(candidate)
		if lower == input {
			return ""
		}
		if d := m.distance(input, lower); d < bestDistance {
			best = candidate
			bestDistance = d
		}
	}

	return best
}

// distance is the Levenshtein distance between a and b, computed with two
// rows and cut short as soon as the result is known to exceed maxDistance.
func (m *Matcher) distance(a, b string) int {
	if abs(len(a)-len(b)) > m.maxDistance {
		return m.maxDistance + 1
	}
	if len(a) > len(b) {
		a, b = b, a
	}

	prev := make([]int, len(a)+1)
	curr := make([]int, len(a)+1)
	for i := range prev {
		prev[i] = i
	}

	for i := 1; i <= len(b); i++ {
		curr[0] = i
		rowMin := i

		for j := 1; j <= len(a); j++ {
			cost := 0
			if a[j-1] != b[i-1] {
				cost = 1
			}
			curr[j] = min(curr[j-1]+1, min(prev[j]+1, prev[j-1]+cost))
			if curr[j] < rowMin {
				rowMin = curr[j]
			}
		}

		if rowMin > m.maxDistance {
			return m.maxDistance + 1
		}
		prev, curr = curr, prev
	}

	return prev[len(a)]
}

// FindBestOption suggests an option name, comparing without the leading
// dashes so "--frce" still finds the "-f, --force" family.
func FindBestOption(input string, options []string, maxDistance int) string {
	matcher := NewMatcher(maxDistance)

	trimmed := make([]string, len(options))
	for i, option := range options {
		trimmed[i] = strings.TrimLeft(option, "-")
	}

	best := matcher.FindBest(strings.TrimLeft(input, "-"), trimmed)
	if best == "" {
		return ""
	}
	for i, t := range trimmed {
		if t == best {
			return options[i]
		}
	}
	return ""
}

// FindBestCommand suggests a command name or alias.
func FindBestCommand(input string, commands []string, maxDistance int) string {
	return NewMatcher(maxDistance).FindBest(input, commands)
}

func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}

func abs(a int) int {
	if a < 0 {
		return -a
	}
	return a
}
