package quiz

import (
	"errors"
	"strings"
	"testing"
)

func TestDiagnose_Complete(t *testing.T) {
	store := fillStore(t, map[Axis]int{
		AxisIntervention: 1,
		AxisPerception:   6,
		AxisJudgment:     3,
		AxisEngagement:   4,
	})
	res, err := Diagnose(store, fakeResolver{})
	if err != nil {
		t.Fatalf("Diagnose: %v", err)
	}
	if res.Profile.Key() != "trigger-insight-goal-improvise" {
		t.Errorf("profile = %s", res.Profile.Key())
	}
	if res.Type == nil || res.Type.ID != res.Profile.Key() {
		t.Errorf("type = %+v", res.Type)
	}
	if len(res.Readings) != 4 {
		t.Fatalf("readings = %d, want 4", len(res.Readings))
	}
	for i, a := range AxisOrder {
		r := res.Readings[i]
		if r.Axis != a {
			t.Errorf("reading %d axis = %s, want %s", i, r.Axis, a)
		}
		if r.Content == nil || r.Hint == nil {
			t.Errorf("reading %s missing content or hint", a)
		}
	}
	in := res.Reading(AxisIntervention)
	if in.Score != 8 || in.Strength != StrengthStrong || in.Percent != 100 {
		t.Errorf("intervention reading = %+v", in)
	}
	jd := res.Reading(AxisJudgment)
	if jd.Score != 24 || jd.Strength != StrengthSlight {
		t.Errorf("judgment reading = %+v", jd)
	}
}

func TestDiagnose_Incomplete(t *testing.T) {
	store := NewAnswerStore()
	_ = store.Record(1, 3)
	_, err := Diagnose(store, fakeResolver{})
	if !errors.Is(err, ErrIncomplete) {
		t.Errorf("err = %v, want ErrIncomplete", err)
	}
	if _, err := Diagnose(nil, fakeResolver{}); !errors.Is(err, ErrIncomplete) {
		t.Errorf("nil store err = %v, want ErrIncomplete", err)
	}
}

func TestDiagnose_ContentGap(t *testing.T) {
	tests := []struct {
		name    string
		missing string
		want    string
	}{
		{"type", "type:trigger-observe-goal-design", "trigger-observe-goal-design"},
		{"axis content", "content:goal", "judgment/goal"},
		{"hint", "hint:design", "engagement/design"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := fakeResolver{missing: map[string]bool{tt.missing: true}}
			res, err := Diagnose(fillStore(t, uniform(1)), r)
			if !errors.Is(err, ErrContentGap) {
				t.Fatalf("err = %v, want ErrContentGap", err)
			}
			if res != nil {
				t.Error("partial result returned")
			}
			if !strings.Contains(err.Error(), tt.want) {
				t.Errorf("err %q should name %q", err, tt.want)
			}
		})
	}
}
