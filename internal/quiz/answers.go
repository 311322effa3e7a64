package quiz

import "fmt"

// AnswerStore holds at most one answer per question id. Insertion order is
// kept; re-answering a question overwrites its score in place.
type AnswerStore struct {
	order []int
	score map[int]int
}

// NewAnswerStore returns an empty store.
func NewAnswerStore() *AnswerStore {
	return &AnswerStore{score: make(map[int]int, TotalQuestions)}
}

// Record upserts the answer for a question.
func (s *AnswerStore) Record(questionID, score int) error {
	if _, ok := QuestionByID(questionID); !ok {
		return fmt.Errorf("%w: id %d", ErrUnknownQuestion, questionID)
	}
	if err := ValidateScore(score); err != nil {
		return err
	}
	if s.score == nil {
		s.score = make(map[int]int, TotalQuestions)
	}
	if _, exists := s.score[questionID]; !exists {
		s.order = append(s.order, questionID)
	}
	s.score[questionID] = score
	return nil
}

// Get returns the recorded score for a question.
func (s *AnswerStore) Get(questionID int) (int, bool) {
	v, ok := s.score[questionID]
	return v, ok
}

// Has reports whether the question has an answer.
func (s *AnswerStore) Has(questionID int) bool {
	_, ok := s.score[questionID]
	return ok
}

// Len returns the number of answered questions.
func (s *AnswerStore) Len() int { return len(s.order) }

// Complete reports whether every question in the bank has an answer.
func (s *AnswerStore) Complete() bool { return len(s.order) == TotalQuestions }

// Answers returns the answers in first-answered order.
func (s *AnswerStore) Answers() []Answer {
	out := make([]Answer, 0, len(s.order))
	for _, id := range s.order {
		out = append(out, Answer{QuestionID: id, Score: s.score[id]})
	}
	return out
}

// Reset drops every answer.
func (s *AnswerStore) Reset() {
	s.order = nil
	s.score = make(map[int]int, TotalQuestions)
}
