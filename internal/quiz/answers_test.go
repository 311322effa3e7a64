package quiz

import (
	"errors"
	"testing"
)

func TestAnswerStore_UpsertOverwrites(t *testing.T) {
	s := NewAnswerStore()
	if err := s.Record(5, 2); err != nil {
		t.Fatal(err)
	}
	if err := s.Record(5, 6); err != nil {
		t.Fatal(err)
	}
	if s.Len() != 1 {
		t.Errorf("Len = %d, want 1", s.Len())
	}
	if v, ok := s.Get(5); !ok || v != 6 {
		t.Errorf("Get(5) = %d, %v; want 6, true", v, ok)
	}
}

func TestAnswerStore_KeepsFirstAnsweredOrder(t *testing.T) {
	s := NewAnswerStore()
	for _, id := range []int{9, 3, 20} {
		_ = s.Record(id, 4)
	}
	_ = s.Record(3, 1)
	got := s.Answers()
	want := []Answer{{9, 4}, {3, 1}, {20, 4}}
	if len(got) != len(want) {
		t.Fatalf("Answers = %v", got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Answers[%d] = %+v, want %+v", i, got[i], want[i])
		}
	}
}

func TestAnswerStore_NeverExceedsBank(t *testing.T) {
	s := NewAnswerStore()
	for round := 0; round < 3; round++ {
		for _, q := range Questions() {
			_ = s.Record(q.ID, round+1)
		}
	}
	if s.Len() != TotalQuestions || !s.Complete() {
		t.Errorf("Len = %d, Complete = %v", s.Len(), s.Complete())
	}
}

func TestAnswerStore_Rejects(t *testing.T) {
	s := NewAnswerStore()
	if err := s.Record(99, 3); !errors.Is(err, ErrUnknownQuestion) {
		t.Errorf("unknown question: %v", err)
	}
	if err := s.Record(1, 0); !errors.Is(err, ErrScoreOutOfRange) {
		t.Errorf("score 0: %v", err)
	}
	if s.Len() != 0 {
		t.Errorf("rejected answers were stored")
	}
}

func TestAnswerStore_Reset(t *testing.T) {
	s := NewAnswerStore()
	_ = s.Record(1, 1)
	s.Reset()
	if s.Len() != 0 || s.Has(1) {
		t.Error("Reset did not clear the store")
	}
}

func TestAnswerStore_ZeroValueUsable(t *testing.T) {
	var s AnswerStore
	if err := s.Record(2, 3); err != nil {
		t.Fatalf("Record on zero value: %v", err)
	}
	if !s.Has(2) {
		t.Error("zero-value store lost the answer")
	}
}
