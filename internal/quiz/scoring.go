package quiz

import (
	"fmt"
	"math"
)

// Score sums answer scores per axis. Unanswered questions contribute 0, so
// partial stores are accepted.
func Score(store *AnswerStore) AxisScores {
	var scores AxisScores
	if store == nil {
		return scores
	}
	for _, a := range store.Answers() {
		q, ok := QuestionByID(a.QuestionID)
		if !ok {
			continue
		}
		scores.add(q.Axis, a.Score)
	}
	return scores
}

// AxisMin and AxisMax bound a fully answered axis score.
const (
	AxisMin = QuestionsPerAxis * ScaleMin
	AxisMax = QuestionsPerAxis * ScaleMax
)

// Midpoint is the classification threshold, half the theoretical axis range.
func Midpoint() int {
	return QuestionsPerAxis * (ScaleMin + ScaleMax) / 2
}

// TendencyFor classifies one axis score. Scores at or below the midpoint
// resolve to pole A.
func TendencyFor(a Axis, score int) (Tendency, error) {
	if score <= Midpoint() {
		return TendencyAt(a, PoleA)
	}
	return TendencyAt(a, PoleB)
}

// Classify resolves all four axes into a profile.
func Classify(scores AxisScores) (Profile, error) {
	var p Profile
	for _, a := range AxisOrder {
		t, err := TendencyFor(a, scores.Get(a))
		if err != nil {
			return Profile{}, err
		}
		switch a {
		case AxisIntervention:
			p.Intervention = t
		case AxisPerception:
			p.Perception = t
		case AxisJudgment:
			p.Judgment = t
		case AxisEngagement:
			p.Engagement = t
		}
	}
	return p, nil
}

// --- Strength ---

// Strength describes how far an axis score sits from the midpoint.
type Strength string

const (
	StrengthBalanced Strength = "balanced"
	StrengthSlight   Strength = "slight"
	StrengthStrong   Strength = "strong"
)

// Label returns the display label for a strength band.
func (s Strength) Label() string {
	switch s {
	case StrengthBalanced:
		return "Balanced"
	case StrengthSlight:
		return "Slight tendency"
	case StrengthStrong:
		return "Strong tendency"
	}
	return fmt.Sprintf("Strength(%s)", string(s))
}

const (
	balancedMaxDistance = 3
	slightMaxDistance   = 8
)

func distance(score int) int {
	d := score - Midpoint()
	if d < 0 {
		d = -d
	}
	return d
}

// StrengthOf bands the distance of score from the midpoint.
func StrengthOf(score int) Strength {
	switch d := distance(score); {
	case d <= balancedMaxDistance:
		return StrengthBalanced
	case d <= slightMaxDistance:
		return StrengthSlight
	default:
		return StrengthStrong
	}
}

// StrengthPercent maps the distance from the midpoint onto 0..100, where
// 100 is an axis score at either extreme.
func StrengthPercent(score int) int {
	span := Midpoint() - AxisMin
	if span <= 0 {
		return 0
	}
	pct := int(math.Round(float64(distance(score)) / float64(span) * 100))
	if pct > 100 {
		pct = 100
	}
	return pct
}
