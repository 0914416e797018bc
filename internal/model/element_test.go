package model

import "testing"

func TestDedup_KeepsFirstOccurrence(t *testing.T) {
	a := Element{Role: RoleButton, Frame: rect(100, 200, 80, 24), Enabled: true}
	b := Element{Role: RoleLink, Frame: rect(99.7, 200.2, 80.4, 23.9), Enabled: true} // same rounded rect
	c := Element{Role: RoleLink, Frame: rect(300, 200, 80, 24), Enabled: true}

	got := Dedup([]Element{a, b, c})
	if len(got) != 2 {
		t.Fatalf("expected 2 elements, got %d", len(got))
	}
	if got[0].Role != RoleButton {
		t.Errorf("dedup should keep the first occurrence, got role %s", got[0].Role)
	}
}

func TestDedup_Empty(t *testing.T) {
	if got := Dedup(nil); len(got) != 0 {
		t.Errorf("expected empty result, got %d", len(got))
	}
}
