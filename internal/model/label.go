package model

import (
	"sort"
	"strings"
)

// DefaultAlphabet orders the home row first so the shortest labels land
// under the resting fingers.
const DefaultAlphabet = "ASDFGHJKLQWERTYUIOPZXCVBNM"

// Labeled pairs an element with the short string the user types to select
// it. The whole set is discarded on mode exit.
type Labeled struct {
	Element Element
	Label   string
}

// AssignLabels maps elements to unique labels from the given alphabet.
//
// Elements are sorted into reading order (rounded y, then x) before
// assignment so a given input set always yields the same labeling. When
// the set fits in the alphabet every label is a single character;
// otherwise all labels are two characters, which keeps the set prefix-free
// so typing one label can never prematurely match another. Elements beyond
// the two-character capacity go unlabeled and are dropped.
func AssignLabels(elements []Element, alphabet string) []Labeled {
	alphabet = normalizeAlphabet(alphabet)
	letters := []rune(alphabet)
	n := len(letters)

	ordered := make([]Element, len(elements))
	copy(ordered, elements)
	sort.SliceStable(ordered, func(i, j int) bool {
		a, b := ordered[i].Key(), ordered[j].Key()
		if a[1] != b[1] {
			return a[1] < b[1]
		}
		return a[0] < b[0]
	})

	if len(ordered) > n*n {
		ordered = ordered[:n*n]
	}

	result := make([]Labeled, 0, len(ordered))
	for i, el := range ordered {
		var label string
		if len(ordered) <= n {
			label = string(letters[i])
		} else {
			label = string(letters[i/n]) + string(letters[i%n])
		}
		result = append(result, Labeled{Element: el, Label: label})
	}
	return result
}

// normalizeAlphabet uppercases the alphabet, strips duplicates, and falls
// back to the default when nothing usable remains.
func normalizeAlphabet(alphabet string) string {
	var b strings.Builder
	seen := make(map[rune]bool)
	for _, r := range strings.ToUpper(alphabet) {
		if r < 'A' || r > 'Z' || seen[r] {
			continue
		}
		seen[r] = true
		b.WriteRune(r)
	}
	if b.Len() == 0 {
		return DefaultAlphabet
	}
	return b.String()
}

// MatchPrefix returns the labeled elements whose label starts with the
// typed prefix. Matching is case-insensitive; labels are stored upper-case.
func MatchPrefix(labeled []Labeled, typed string) []Labeled {
	prefix := strings.ToUpper(typed)
	var matches []Labeled
	for _, l := range labeled {
		if strings.HasPrefix(l.Label, prefix) {
			matches = append(matches, l)
		}
	}
	return matches
}
