package rig

import (
	"math"
	"math/rand"
	"testing"
)

func TestDOFRejectsOutOfRange(t *testing.T) {
	d := DOF{Name: HeadRotation, Min: -80, Max: 80, Step: 5, Value: 78}

	if d.Set(85) {
		t.Fatalf("Set(85) accepted with max 80")
	}
	if d.Value != 78 {
		t.Errorf("value changed to %f after rejected request, want 78", d.Value)
	}
	if d.Set(-81) {
		t.Errorf("Set(-81) accepted with min -80")
	}
	if !d.Set(80) || d.Value != 80 {
		t.Errorf("Set(80) on bound should apply, value=%f", d.Value)
	}
}

func TestDOFNeverLeavesRange(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	for _, d := range defaultDOFs() {
		d := d
		span := d.Max - d.Min
		for i := 0; i < 2000; i++ {
			before := d.Value
			req := d.Min - span + rng.Float64()*3*span
			applied := d.Set(req)
			if !applied && d.Value != before {
				t.Fatalf("%s: rejected request mutated value %f -> %f", d.Name, before, d.Value)
			}
			if !d.InRange() {
				t.Fatalf("%s: value %f outside [%f, %f]", d.Name, d.Value, d.Min, d.Max)
			}
		}
	}
}

func TestDOFAdjustStopsAtBound(t *testing.T) {
	d := defaultDOFs()[ArmScale]
	steps := 0
	for d.Adjust(1) {
		steps++
		if steps > 100 {
			t.Fatal("adjust never rejected")
		}
	}
	if steps != 10 {
		t.Errorf("arm scale accepted %d steps up, want 10", steps)
	}
	if math.Abs(d.Value-d.Max) > 1e-9 {
		t.Errorf("arm scale = %v, want %v", d.Value, d.Max)
	}
}

func TestDOFNameRoundTrip(t *testing.T) {
	for n := HeadRotation; n < dofCount; n++ {
		got, ok := ParseDOFName(n.String())
		if !ok || got != n {
			t.Errorf("ParseDOFName(%q) = %v, %v", n.String(), got, ok)
		}
	}
	if _, ok := ParseDOFName("tail"); ok {
		t.Error("unknown DOF name resolved")
	}
}
