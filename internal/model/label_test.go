package model

import (
	"strings"
	"testing"
)

func elemAt(x, y float64) Element {
	return Element{Role: RoleButton, Frame: rect(x, y, 80, 24), Enabled: true}
}

func TestAssignLabels_ReadingOrder(t *testing.T) {
	elements := []Element{
		elemAt(500, 300),
		elemAt(100, 100),
		elemAt(300, 100),
	}
	labeled := AssignLabels(elements, "ASD")
	if len(labeled) != 3 {
		t.Fatalf("expected 3 labeled elements, got %d", len(labeled))
	}
	// Reading order: (100,100), (300,100), (500,300).
	if labeled[0].Element.Frame.X != 100 || labeled[0].Label != "A" {
		t.Errorf("first label should be A at x=100, got %s at x=%v", labeled[0].Label, labeled[0].Element.Frame.X)
	}
	if labeled[1].Element.Frame.X != 300 || labeled[1].Label != "S" {
		t.Errorf("second label should be S at x=300, got %s", labeled[1].Label)
	}
	if labeled[2].Element.Frame.Y != 300 || labeled[2].Label != "D" {
		t.Errorf("third label should be D at y=300, got %s", labeled[2].Label)
	}
}

func TestAssignLabels_Deterministic(t *testing.T) {
	elements := []Element{elemAt(300, 100), elemAt(100, 100), elemAt(200, 500)}
	first := AssignLabels(elements, DefaultAlphabet)
	second := AssignLabels(elements, DefaultAlphabet)
	for i := range first {
		if first[i].Label != second[i].Label {
			t.Fatalf("assignment not deterministic at index %d: %s vs %s", i, first[i].Label, second[i].Label)
		}
	}
}

func TestAssignLabels_UniqueAndPrefixFree(t *testing.T) {
	var elements []Element
	for i := 0; i < 40; i++ {
		elements = append(elements, elemAt(float64(100+i*30), float64(100+(i%7)*40)))
	}
	labeled := AssignLabels(elements, "ASDFG")
	seen := make(map[string]bool)
	for _, l := range labeled {
		if seen[l.Label] {
			t.Fatalf("duplicate label %q", l.Label)
		}
		seen[l.Label] = true
	}
	for a := range seen {
		for b := range seen {
			if a != b && strings.HasPrefix(b, a) {
				t.Fatalf("label %q is a prefix of %q", a, b)
			}
		}
	}
}

func TestAssignLabels_CapsAtAlphabetCapacity(t *testing.T) {
	var elements []Element
	for i := 0; i < 10; i++ {
		elements = append(elements, elemAt(float64(100+i*30), 100))
	}
	labeled := AssignLabels(elements, "AS")
	if len(labeled) != 4 {
		t.Errorf("2-letter alphabet labels at most 4 elements, got %d", len(labeled))
	}
}

func TestAssignLabels_NormalizesAlphabet(t *testing.T) {
	labeled := AssignLabels([]Element{elemAt(100, 100)}, "aa1!b")
	if labeled[0].Label != "A" {
		t.Errorf("expected normalized label A, got %q", labeled[0].Label)
	}
	// Unusable alphabet falls back to the default.
	labeled = AssignLabels([]Element{elemAt(100, 100)}, "123")
	if labeled[0].Label != string(DefaultAlphabet[0]) {
		t.Errorf("expected default alphabet fallback, got %q", labeled[0].Label)
	}
}

func TestMatchPrefix(t *testing.T) {
	labeled := []Labeled{
		{Label: "A"}, {Label: "S"}, {Label: "D"},
	}
	if got := MatchPrefix(labeled, "a"); len(got) != 1 || got[0].Label != "A" {
		t.Errorf("case-insensitive prefix match failed: %+v", got)
	}
	if got := MatchPrefix(labeled, ""); len(got) != 3 {
		t.Errorf("empty prefix should match all, got %d", len(got))
	}
	if got := MatchPrefix(labeled, "x"); len(got) != 0 {
		t.Errorf("no match expected, got %d", len(got))
	}
}

func TestMatchPrefix_TwoCharLabels(t *testing.T) {
	labeled := []Labeled{
		{Label: "AA"}, {Label: "AS"}, {Label: "AD"}, {Label: "SA"},
	}
	if got := MatchPrefix(labeled, "A"); len(got) != 3 {
		t.Errorf("prefix A should match 3 labels, got %d", len(got))
	}
	if got := MatchPrefix(labeled, "AS"); len(got) != 1 || got[0].Label != "AS" {
		t.Errorf("exact match failed: %+v", got)
	}
}
