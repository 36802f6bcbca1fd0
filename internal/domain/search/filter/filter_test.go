package filter

import "testing"

func TestNewMatch(t *testing.T) {
	c, err := NewMatch("ownerId", "u1", "u2")
	if err != nil {
		t.Fatalf("NewMatch: %v", err)
	}
	if !c.IsMatch() || c.IsRange() {
		t.Error("expected a match condition")
	}
	if got := c.Values(); len(got) != 2 || got[0] != "u1" {
		t.Errorf("unexpected values: %v", got)
	}

	if _, err := NewMatch("", "v"); err == nil {
		t.Error("expected error for empty key")
	}
	if _, err := NewMatch("k"); err == nil {
		t.Error("expected error for no values")
	}
	if _, err := NewMatch("k", ""); err == nil {
		t.Error("expected error for empty value")
	}
}

func TestNewRange(t *testing.T) {
	lo := 10.0
	r, err := NewRangeBounds(&lo, nil)
	if err != nil {
		t.Fatalf("NewRangeBounds: %v", err)
	}
	c, err := NewRange("createdAt", r)
	if err != nil {
		t.Fatalf("NewRange: %v", err)
	}
	if !c.IsRange() || c.IsMatch() {
		t.Error("expected a range condition")
	}
	if c.Range().GTE() == nil || *c.Range().GTE() != 10.0 {
		t.Error("gte boundary lost")
	}

	if _, err := NewRangeBounds(nil, nil); err == nil {
		t.Error("expected error for empty range")
	}
}

func TestExpression(t *testing.T) {
	m, _ := NewMatch("ownerId", "u1")
	n, _ := NewMatch("archived", "true")

	e, err := NewExpression([]Condition{m}, []Condition{n})
	if err != nil {
		t.Fatalf("NewExpression: %v", err)
	}
	if e.IsEmpty() {
		t.Error("expression should not be empty")
	}
	if len(e.Must()) != 1 || len(e.MustNot()) != 1 {
		t.Error("conditions lost")
	}

	empty := Expression{}
	if !empty.IsEmpty() {
		t.Error("zero expression should be empty")
	}

	many := make([]Condition, MaxConditionsPerGroup+1)
	for i := range many {
		many[i] = m
	}
	if _, err := NewExpression(many, nil); err == nil {
		t.Error("expected error for oversized group")
	}
}
