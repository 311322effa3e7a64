package quiz

import (
	"errors"
	"fmt"
	"math"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// --- Step enum ---

// Step is the screen a session is on.
type Step string

const (
	StepTop       Step = "top"
	StepQuestions Step = "questions"
	StepResult    Step = "result"
)

// Session drives one respondent through top -> questions -> result.
// It is not safe for concurrent use.
type Session struct {
	id       string
	step     Step
	order    []Question
	answers  *AnswerStore
	index    int
	result   *Result
	started  time.Time
	finished time.Time

	resolver Resolver
	shuffler Shuffler
	logger   *zap.Logger
}

// Option configures a Session.
type Option func(*Session)

// WithShuffler overrides the question order source.
func WithShuffler(s Shuffler) Option {
	return func(sess *Session) { sess.shuffler = s }
}

// WithLogger sets the logger used for transitions and content gaps.
func WithLogger(l *zap.Logger) Option {
	return func(sess *Session) {
		if l != nil {
			sess.logger = l
		}
	}
}

// NewSession returns a session on the top step. It fails if the question
// bank is malformed. Without WithShuffler a crypto-seeded RandomShuffler
// is used.
func NewSession(r Resolver, opts ...Option) (*Session, error) {
	if r == nil {
		return nil, errors.New("quiz: nil resolver")
	}
	if err := ValidateBank(bank); err != nil {
		return nil, fmt.Errorf("quiz: invalid question bank: %w", err)
	}
	s := &Session{
		step:     StepTop,
		answers:  NewAnswerStore(),
		resolver: r,
		logger:   zap.NewNop(),
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.shuffler == nil {
		rs, err := NewRandomShuffler()
		if err != nil {
			return nil, err
		}
		s.shuffler = rs
	}
	return s, nil
}

// --- Transitions ---

// Start begins a new run from the top step with a fresh order and no answers.
func (s *Session) Start() error {
	if s.step != StepTop {
		return fmt.Errorf("%w: start from %s", ErrInvalidTransition, s.step)
	}
	s.id = uuid.NewString()
	s.order = s.shuffler.Shuffle(bank)
	s.answers.Reset()
	s.index = 0
	s.result = nil
	s.started = timeNow()
	s.finished = time.Time{}
	s.step = StepQuestions
	s.logger.Debug("session started",
		zap.String("session", s.id),
		zap.Int("questions", len(s.order)),
	)
	return nil
}

// Answer records score for the current question, replacing any earlier
// answer to it.
func (s *Session) Answer(score int) error {
	if s.step != StepQuestions {
		return fmt.Errorf("%w: answer on %s", ErrInvalidTransition, s.step)
	}
	q := s.order[s.index]
	if err := s.answers.Record(q.ID, score); err != nil {
		return err
	}
	return nil
}

// Next advances to the following question, or on the last question scores
// the run and moves to the result step. On a content gap the session stays
// on the last question.
func (s *Session) Next() error {
	if s.step != StepQuestions {
		return fmt.Errorf("%w: next on %s", ErrInvalidTransition, s.step)
	}
	if !s.HasCurrentAnswer() {
		return ErrNoAnswer
	}
	if s.index < len(s.order)-1 {
		s.index++
		return nil
	}

	result, err := Diagnose(s.answers, s.resolver)
	if err != nil {
		s.logger.Error("diagnosis failed",
			zap.String("session", s.id),
			zap.Error(err),
		)
		return err
	}
	s.result = result
	s.finished = timeNow()
	s.step = StepResult
	s.logger.Info("diagnosis complete",
		zap.String("session", s.id),
		zap.String("type", result.Type.ID),
		zap.String("profile", result.Profile.Key()),
		zap.Duration("elapsed", s.finished.Sub(s.started)),
	)
	return nil
}

// Prev steps back one question. Answers are kept.
func (s *Session) Prev() error {
	if s.step != StepQuestions {
		return fmt.Errorf("%w: prev on %s", ErrInvalidTransition, s.step)
	}
	if s.index == 0 {
		return ErrAtFirstQuestion
	}
	s.index--
	return nil
}

// Restart returns to the top step and clears all run state. It is a no-op
// on the top step.
func (s *Session) Restart() {
	if s.step == StepTop {
		return
	}
	s.logger.Debug("session restarted",
		zap.String("session", s.id),
		zap.String("from", string(s.step)),
	)
	s.id = ""
	s.step = StepTop
	s.order = nil
	s.answers.Reset()
	s.index = 0
	s.result = nil
	s.started = time.Time{}
	s.finished = time.Time{}
}

// --- Getters ---

// ID returns the identifier of the current run, empty on the top step.
func (s *Session) ID() string { return s.id }

// Step returns the current step.
func (s *Session) Step() Step { return s.step }

// Index returns the zero-based position in the question order.
func (s *Session) Index() int { return s.index }

// Total returns the number of questions in the current order.
func (s *Session) Total() int { return len(s.order) }

// CurrentQuestion returns the question at the current index.
func (s *Session) CurrentQuestion() (Question, bool) {
	if s.step != StepQuestions || s.index >= len(s.order) {
		return Question{}, false
	}
	return s.order[s.index], true
}

// CurrentAnswer returns the recorded score for the current question.
func (s *Session) CurrentAnswer() (int, bool) {
	q, ok := s.CurrentQuestion()
	if !ok {
		return 0, false
	}
	return s.answers.Get(q.ID)
}

// HasCurrentAnswer reports whether Next would be accepted.
func (s *Session) HasCurrentAnswer() bool {
	_, ok := s.CurrentAnswer()
	return ok
}

// IsFirst reports whether the current question is the first one.
func (s *Session) IsFirst() bool { return s.step == StepQuestions && s.index == 0 }

// IsLast reports whether the current question is the last one.
func (s *Session) IsLast() bool {
	return s.step == StepQuestions && len(s.order) > 0 && s.index == len(s.order)-1
}

// Answered returns the number of recorded answers.
func (s *Session) Answered() int { return s.answers.Len() }

// Answers returns the recorded answers in first-answered order.
func (s *Session) Answers() []Answer { return s.answers.Answers() }

// Progress is round(index / total * 100). It is computed from the index,
// so it stays below 100 while the last question is shown.
func (s *Session) Progress() int {
	if len(s.order) == 0 {
		return 0
	}
	return int(math.Round(float64(s.index) / float64(len(s.order)) * 100))
}

// Result returns the diagnosis once the session reached the result step.
func (s *Session) Result() (*Result, bool) {
	return s.result, s.result != nil
}

// Status is a point-in-time snapshot of a session.
type Status struct {
	ID               string    `json:"id,omitempty"`
	Step             Step      `json:"step"`
	Index            int       `json:"index"`
	Total            int       `json:"total"`
	Answered         int       `json:"answered"`
	Progress         int       `json:"progress"`
	IsFirst          bool      `json:"is_first"`
	IsLast           bool      `json:"is_last"`
	HasCurrentAnswer bool      `json:"has_current_answer"`
	CurrentAnswer    int       `json:"current_answer,omitempty"`
	Question         *Question `json:"question,omitempty"`
	Result           *Result   `json:"result,omitempty"`
}

// Status returns a snapshot of the session.
func (s *Session) Status() Status {
	st := Status{
		ID:               s.id,
		Step:             s.step,
		Index:            s.index,
		Total:            len(s.order),
		Answered:         s.answers.Len(),
		Progress:         s.Progress(),
		IsFirst:          s.IsFirst(),
		IsLast:           s.IsLast(),
		HasCurrentAnswer: s.HasCurrentAnswer(),
		Result:           s.result,
	}
	if q, ok := s.CurrentQuestion(); ok {
		st.Question = &q
	}
	if v, ok := s.CurrentAnswer(); ok {
		st.CurrentAnswer = v
	}
	return st
}
