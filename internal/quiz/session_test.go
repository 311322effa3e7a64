package quiz

import (
	"errors"
	"strings"
	"testing"

	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

// --- Construction ---

func TestNewSession_StartsOnTop(t *testing.T) {
	s, err := NewSession(fakeResolver{})
	if err != nil {
		t.Fatalf("NewSession: %v", err)
	}
	if s.Step() != StepTop {
		t.Errorf("Step = %s, want top", s.Step())
	}
	if s.Total() != 0 || s.Progress() != 0 {
		t.Errorf("Total = %d, Progress = %d on top", s.Total(), s.Progress())
	}
	if _, ok := s.CurrentQuestion(); ok {
		t.Error("no current question expected on top")
	}
}

func TestNewSession_NilResolver(t *testing.T) {
	if _, err := NewSession(nil); err == nil {
		t.Error("expected error for nil resolver")
	}
}

func TestNewSession_RejectsBrokenBank(t *testing.T) {
	orig := bank
	t.Cleanup(func() { bank = orig })
	bank = orig[:TotalQuestions-1]

	_, err := NewSession(fakeResolver{})
	if err == nil {
		t.Fatal("expected error for a short question bank")
	}
	if !strings.Contains(err.Error(), "invalid question bank") {
		t.Errorf("err = %v", err)
	}
}

// --- Start ---

func TestStart(t *testing.T) {
	s := newTestSession(t, fakeResolver{})
	if err := s.Start(); err != nil {
		t.Fatalf("Start: %v", err)
	}
	if s.Step() != StepQuestions || s.Index() != 0 || s.Total() != TotalQuestions {
		t.Errorf("after Start: step=%s index=%d total=%d", s.Step(), s.Index(), s.Total())
	}
	if s.ID() == "" {
		t.Error("Start should assign a session id")
	}
	if !s.IsFirst() || s.IsLast() || s.HasCurrentAnswer() {
		t.Errorf("flags: first=%v last=%v answered=%v", s.IsFirst(), s.IsLast(), s.HasCurrentAnswer())
	}
}

func TestStart_OnlyFromTop(t *testing.T) {
	s := newTestSession(t, fakeResolver{})
	_ = s.Start()
	_ = s.Answer(3)
	err := s.Start()
	if !errors.Is(err, ErrInvalidTransition) {
		t.Fatalf("second Start = %v, want ErrInvalidTransition", err)
	}
	if s.Answered() != 1 {
		t.Error("rejected Start must not reset answers")
	}
}

func TestStart_FreshIDEachRun(t *testing.T) {
	s := newTestSession(t, fakeResolver{})
	_ = s.Start()
	first := s.ID()
	s.Restart()
	_ = s.Start()
	if s.ID() == first {
		t.Error("each run should get a new id")
	}
}

// --- Answer ---

func TestAnswer_Upsert(t *testing.T) {
	s := newTestSession(t, fakeResolver{})
	_ = s.Start()
	_ = s.Answer(2)
	_ = s.Answer(5)
	if v, ok := s.CurrentAnswer(); !ok || v != 5 {
		t.Errorf("CurrentAnswer = %d, %v; want 5", v, ok)
	}
	if s.Answered() != 1 {
		t.Errorf("Answered = %d, want 1", s.Answered())
	}
}

func TestAnswer_Rejects(t *testing.T) {
	s := newTestSession(t, fakeResolver{})
	if err := s.Answer(3); !errors.Is(err, ErrInvalidTransition) {
		t.Errorf("Answer on top = %v", err)
	}
	_ = s.Start()
	if err := s.Answer(9); !errors.Is(err, ErrScoreOutOfRange) {
		t.Errorf("Answer(9) = %v", err)
	}
	if s.HasCurrentAnswer() {
		t.Error("out-of-range answer was recorded")
	}
}

// --- Next / Prev ---

func TestNext_RequiresAnswer(t *testing.T) {
	s := newTestSession(t, fakeResolver{})
	_ = s.Start()
	err := s.Next()
	if !errors.Is(err, ErrNoAnswer) || !errors.Is(err, ErrInvalidTransition) {
		t.Fatalf("Next without answer = %v", err)
	}
	if s.Index() != 0 {
		t.Errorf("Index = %d after rejected Next", s.Index())
	}
}

func TestNext_Advances(t *testing.T) {
	s := newTestSession(t, fakeResolver{})
	_ = s.Start()
	_ = s.Answer(4)
	if err := s.Next(); err != nil {
		t.Fatalf("Next: %v", err)
	}
	if s.Index() != 1 || s.Step() != StepQuestions {
		t.Errorf("index=%d step=%s", s.Index(), s.Step())
	}
	if q, _ := s.CurrentQuestion(); q.ID != 2 {
		t.Errorf("current question = %d, want 2", q.ID)
	}
}

func TestPrev_AtFirst(t *testing.T) {
	s := newTestSession(t, fakeResolver{})
	_ = s.Start()
	err := s.Prev()
	if !errors.Is(err, ErrAtFirstQuestion) {
		t.Fatalf("Prev at 0 = %v", err)
	}
	if s.Index() != 0 {
		t.Errorf("Index = %d, want 0", s.Index())
	}
}

func TestPrev_KeepsAnswers(t *testing.T) {
	s := newTestSession(t, fakeResolver{})
	_ = s.Start()
	_ = s.Answer(6)
	_ = s.Next()
	if err := s.Prev(); err != nil {
		t.Fatalf("Prev: %v", err)
	}
	if v, ok := s.CurrentAnswer(); !ok || v != 6 {
		t.Errorf("answer after Prev = %d, %v", v, ok)
	}
	_ = s.Answer(1)
	if s.Answered() != 1 {
		t.Errorf("changing an answer duplicated it: %d", s.Answered())
	}
}

func TestNext_LastQuestionProducesResult(t *testing.T) {
	s := newTestSession(t, fakeResolver{})
	_ = s.Start()
	if err := answerAll(t, s, 6); err != nil {
		t.Fatalf("answerAll: %v", err)
	}
	if s.Step() != StepResult {
		t.Fatalf("Step = %s, want result", s.Step())
	}
	res, ok := s.Result()
	if !ok {
		t.Fatal("no result")
	}
	if res.Profile.Key() != "watch-insight-relation-improvise" {
		t.Errorf("profile = %s", res.Profile.Key())
	}
	if res.Scores.Intervention != 48 {
		t.Errorf("intervention = %d, want 48", res.Scores.Intervention)
	}
	if err := s.Next(); !errors.Is(err, ErrInvalidTransition) {
		t.Errorf("Next on result = %v", err)
	}
	if err := s.Prev(); !errors.Is(err, ErrInvalidTransition) {
		t.Errorf("Prev on result = %v", err)
	}
}

func TestNext_ContentGapStaysOnQuestions(t *testing.T) {
	core, logs := observer.New(zap.ErrorLevel)
	r := fakeResolver{missing: map[string]bool{"type:trigger-observe-goal-design": true}}
	s, err := NewSession(r, WithShuffler(CanonicalOrder), WithLogger(zap.New(core)))
	if err != nil {
		t.Fatal(err)
	}
	_ = s.Start()
	err = answerAll(t, s, 1)
	if !errors.Is(err, ErrContentGap) {
		t.Fatalf("err = %v, want ErrContentGap", err)
	}
	if s.Step() != StepQuestions || !s.IsLast() {
		t.Errorf("step=%s last=%v, want questions on last", s.Step(), s.IsLast())
	}
	if _, ok := s.Result(); ok {
		t.Error("result must stay absent")
	}
	if logs.Len() != 1 {
		t.Errorf("error logs = %d, want 1", logs.Len())
	}
}

// --- Progress ---

func TestProgress(t *testing.T) {
	s := newTestSession(t, fakeResolver{})
	_ = s.Start()
	want := map[int]int{0: 0, 1: 3, 8: 25, 16: 50, 31: 97}
	for s.Index() < TotalQuestions-1 {
		if w, ok := want[s.Index()]; ok && s.Progress() != w {
			t.Errorf("Progress at %d = %d, want %d", s.Index(), s.Progress(), w)
		}
		_ = s.Answer(3)
		_ = s.Next()
	}
	if s.Progress() != 97 {
		t.Errorf("Progress on last question = %d, want 97", s.Progress())
	}
}

// --- Restart ---

func TestRestart_ClearsEverything(t *testing.T) {
	s := newTestSession(t, fakeResolver{})
	_ = s.Start()
	_ = answerAll(t, s, 2)
	s.Restart()
	if s.Step() != StepTop || s.Index() != 0 || s.Answered() != 0 || s.Total() != 0 || s.ID() != "" {
		t.Errorf("after Restart: %+v", s.Status())
	}
	if _, ok := s.Result(); ok {
		t.Error("result survived Restart")
	}
}

func TestRestart_FromQuestionsAndTop(t *testing.T) {
	s := newTestSession(t, fakeResolver{})
	s.Restart()
	if s.Step() != StepTop {
		t.Error("Restart on top changed step")
	}
	_ = s.Start()
	_ = s.Answer(4)
	_ = s.Next()
	s.Restart()
	if s.Step() != StepTop || s.Answered() != 0 {
		t.Errorf("Restart from questions: step=%s answered=%d", s.Step(), s.Answered())
	}
}

// countingShuffler records every order it hands out.
type countingShuffler struct {
	inner  Shuffler
	orders [][]int
}

func (c *countingShuffler) Shuffle(qs []Question) []Question {
	out := c.inner.Shuffle(qs)
	ids := make([]int, len(out))
	for i, q := range out {
		ids[i] = q.ID
	}
	c.orders = append(c.orders, ids)
	return out
}

func TestRestart_StartReshuffles(t *testing.T) {
	sh := &countingShuffler{inner: NewSeededShuffler(7)}
	s, err := NewSession(fakeResolver{}, WithShuffler(sh))
	if err != nil {
		t.Fatal(err)
	}
	if err := s.Start(); err != nil {
		t.Fatalf("Start: %v", err)
	}
	if err := answerAll(t, s, 3); err != nil {
		t.Fatalf("answerAll: %v", err)
	}
	s.Restart()
	if err := s.Start(); err != nil {
		t.Fatalf("second Start: %v", err)
	}

	if len(sh.orders) != 2 {
		t.Fatalf("Shuffle called %d times, want 2", len(sh.orders))
	}
	first, second := sh.orders[0], sh.orders[1]
	same := true
	for i := range first {
		if first[i] != second[i] {
			same = false
			break
		}
	}
	if same {
		t.Errorf("second run reused the first order %v", first)
	}
	if q, _ := s.CurrentQuestion(); q.ID != second[0] {
		t.Errorf("current question = %d, want %d from the new order", q.ID, second[0])
	}
	if s.Answered() != 0 {
		t.Errorf("Answered = %d after restart", s.Answered())
	}
}

// --- Status ---

func TestStatus_Snapshot(t *testing.T) {
	s := newTestSession(t, fakeResolver{})
	_ = s.Start()
	_ = s.Answer(5)
	st := s.Status()
	if st.Step != StepQuestions || st.Total != 32 || !st.HasCurrentAnswer || st.CurrentAnswer != 5 {
		t.Errorf("Status = %+v", st)
	}
	if st.Question == nil || st.Question.ID != 1 {
		t.Errorf("Status.Question = %+v", st.Question)
	}
	if st.Result != nil {
		t.Error("Result should be nil before completion")
	}
}
