// Package quiz implements the FacilitatorStyles diagnosis core: the fixed
// question bank, the answer store, axis scoring, tendency classification
// and the session state machine that drives a respondent from the top
// screen through the questions to a result.
//
// The package does no I/O. Descriptive content (type profiles, axis
// write-ups, cofacilitation hints) is reached through the Resolver
// interface, implemented by the catalog package.
package quiz

import (
	"fmt"
	"strings"
)

// --- Axis enum ---

// Axis is one of the four independent bipolar dimensions the quiz measures.
type Axis string

const (
	AxisIntervention Axis = "intervention"
	AxisPerception   Axis = "perception"
	AxisJudgment     Axis = "judgment"
	AxisEngagement   Axis = "engagement"
)

// AxisOrder is the canonical display and tuple order of the axes.
var AxisOrder = []Axis{
	AxisIntervention,
	AxisPerception,
	AxisJudgment,
	AxisEngagement,
}

// --- Tendency enum ---

// Tendency is the categorical pole a respondent falls into on one axis.
type Tendency string

const (
	TendencyTrigger   Tendency = "trigger"
	TendencyWatch     Tendency = "watch"
	TendencyObserve   Tendency = "observe"
	TendencyInsight   Tendency = "insight"
	TendencyGoal      Tendency = "goal"
	TendencyRelation  Tendency = "relation"
	TendencyDesign    Tendency = "design"
	TendencyImprovise Tendency = "improvise"
)

// Pole selects one end of an axis. PoleA is the low-score end.
type Pole int

const (
	PoleA Pole = iota
	PoleB
)

// axisPoles maps each axis to its (pole A, pole B) tendencies.
var axisPoles = map[Axis][2]Tendency{
	AxisIntervention: {TendencyTrigger, TendencyWatch},
	AxisPerception:   {TendencyObserve, TendencyInsight},
	AxisJudgment:     {TendencyGoal, TendencyRelation},
	AxisEngagement:   {TendencyDesign, TendencyImprovise},
}

// ValidateAxis returns an error if the axis is not recognized.
func ValidateAxis(a Axis) error {
	if _, ok := axisPoles[a]; !ok {
		return fmt.Errorf("%w %q: must be one of: intervention, perception, judgment, engagement", ErrUnknownAxis, a)
	}
	return nil
}

// Poles returns the two tendencies of an axis, pole A first.
func Poles(a Axis) (Tendency, Tendency, error) {
	if err := ValidateAxis(a); err != nil {
		return "", "", err
	}
	p := axisPoles[a]
	return p[0], p[1], nil
}

// TendencyAt returns the tendency at the given pole of an axis.
func TendencyAt(a Axis, pole Pole) (Tendency, error) {
	if err := ValidateAxis(a); err != nil {
		return "", err
	}
	if pole != PoleA && pole != PoleB {
		return "", fmt.Errorf("invalid pole %d", pole)
	}
	return axisPoles[a][pole], nil
}

// AxisOf returns the axis a tendency belongs to.
func AxisOf(t Tendency) (Axis, bool) {
	for axis, poles := range axisPoles {
		if poles[0] == t || poles[1] == t {
			return axis, true
		}
	}
	return "", false
}

// Opposite returns the other tendency on the same axis.
func Opposite(t Tendency) (Tendency, bool) {
	axis, ok := AxisOf(t)
	if !ok {
		return "", false
	}
	poles := axisPoles[axis]
	if poles[0] == t {
		return poles[1], true
	}
	return poles[0], true
}

// --- Core data structures ---

// Question is one fixed forced-choice item of the bank.
type Question struct {
	ID      int    `json:"id"`
	Axis    Axis   `json:"axis"`
	Text    string `json:"text"`
	OptionA string `json:"option_a"` // anchor for score ScaleMin
	OptionB string `json:"option_b"` // anchor for score ScaleMax
}

// Answer is the respondent's choice for one question.
type Answer struct {
	QuestionID int `json:"question_id"`
	Score      int `json:"score"`
}

// AxisScores holds the per-axis sums of answer scores.
type AxisScores struct {
	Intervention int `json:"intervention"`
	Perception   int `json:"perception"`
	Judgment     int `json:"judgment"`
	Engagement   int `json:"engagement"`
}

// Get returns the score for an axis. Unknown axes score 0.
func (s AxisScores) Get(a Axis) int {
	switch a {
	case AxisIntervention:
		return s.Intervention
	case AxisPerception:
		return s.Perception
	case AxisJudgment:
		return s.Judgment
	case AxisEngagement:
		return s.Engagement
	}
	return 0
}

func (s *AxisScores) add(a Axis, v int) {
	switch a {
	case AxisIntervention:
		s.Intervention += v
	case AxisPerception:
		s.Perception += v
	case AxisJudgment:
		s.Judgment += v
	case AxisEngagement:
		s.Engagement += v
	}
}

// Profile is the 4-tuple of tendencies that identifies a facilitator type.
type Profile struct {
	Intervention Tendency `json:"intervention" yaml:"intervention"`
	Perception   Tendency `json:"perception" yaml:"perception"`
	Judgment     Tendency `json:"judgment" yaml:"judgment"`
	Engagement   Tendency `json:"engagement" yaml:"engagement"`
}

// Get returns the tendency recorded for an axis.
func (p Profile) Get(a Axis) Tendency {
	switch a {
	case AxisIntervention:
		return p.Intervention
	case AxisPerception:
		return p.Perception
	case AxisJudgment:
		return p.Judgment
	case AxisEngagement:
		return p.Engagement
	}
	return ""
}

// Key returns the canonical lookup key, e.g. "trigger-observe-goal-design".
func (p Profile) Key() string {
	return strings.Join([]string{
		string(p.Intervention),
		string(p.Perception),
		string(p.Judgment),
		string(p.Engagement),
	}, "-")
}

// Validate checks that every slot holds a tendency of the right axis.
func (p Profile) Validate() error {
	for _, axis := range AxisOrder {
		t := p.Get(axis)
		poles := axisPoles[axis]
		if t != poles[0] && t != poles[1] {
			return fmt.Errorf("invalid %s tendency %q: must be %s or %s", axis, t, poles[0], poles[1])
		}
	}
	return nil
}

// AllProfiles enumerates the 16 tendency combinations in canonical order
// (engagement varies fastest).
func AllProfiles() []Profile {
	profiles := make([]Profile, 0, 16)
	for _, i := range axisPoles[AxisIntervention] {
		for _, p := range axisPoles[AxisPerception] {
			for _, j := range axisPoles[AxisJudgment] {
				for _, e := range axisPoles[AxisEngagement] {
					profiles = append(profiles, Profile{
						Intervention: i,
						Perception:   p,
						Judgment:     j,
						Engagement:   e,
					})
				}
			}
		}
	}
	return profiles
}

// --- Content records (owned by the catalog, consumed here by key) ---

// FacilitatorType is one of the 16 static type profiles.
type FacilitatorType struct {
	ID          string   `json:"id" yaml:"id"`
	Name        string   `json:"name" yaml:"name"`
	Tagline     string   `json:"tagline" yaml:"tagline"`
	Summary     string   `json:"summary" yaml:"summary"`
	Description []string `json:"description" yaml:"description"`
	GoodScenes  []string `json:"good_scenes" yaml:"good_scenes"`
	Influence   string   `json:"influence" yaml:"influence"`
	Profile     Profile  `json:"profile" yaml:"profile"`
}

// Point is a titled strength or weakness.
type Point struct {
	Title       string `json:"title" yaml:"title"`
	Description string `json:"description" yaml:"description"`
}

// AxisContent describes one tendency of one axis.
type AxisContent struct {
	Axis        Axis     `json:"axis" yaml:"axis"`
	Tendency    Tendency `json:"tendency" yaml:"tendency"`
	Label       string   `json:"label" yaml:"label"`
	Summary     string   `json:"summary" yaml:"summary"`
	Detail      string   `json:"detail" yaml:"detail"`
	Strengths   []Point  `json:"strengths" yaml:"strengths"`
	Weaknesses  []Point  `json:"weaknesses" yaml:"weaknesses"`
	GrowthHints []string `json:"growth_hints" yaml:"growth_hints"`
}

// CofacilitationHint is advisory text for working alongside another facilitator.
type CofacilitationHint struct {
	Axis     Axis     `json:"axis" yaml:"axis"`
	Tendency Tendency `json:"tendency" yaml:"tendency"`
	Label    string   `json:"label" yaml:"label"`
	AsMain   MainRole `json:"as_main" yaml:"as_main"`
	AsSub    SubRole  `json:"as_sub" yaml:"as_sub"`
}

// MainRole is advice for leading a session with a co-facilitator.
type MainRole struct {
	Benefit string `json:"benefit" yaml:"benefit"`
	Focus   string `json:"focus" yaml:"focus"`
}

// SubRole is advice for supporting another facilitator.
type SubRole struct {
	WithSame     string `json:"with_same" yaml:"with_same"`
	WithOpposite string `json:"with_opposite" yaml:"with_opposite"`
}

// AxisReading bundles everything the result shows for one axis.
type AxisReading struct {
	Axis     Axis                `json:"axis"`
	Score    int                 `json:"score"`
	Tendency Tendency            `json:"tendency"`
	Strength Strength            `json:"strength"`
	Percent  int                 `json:"strength_percent"`
	Content  *AxisContent        `json:"content"`
	Hint     *CofacilitationHint `json:"cofacilitation_hint"`
}

// Result is the assembled diagnosis for one completed session.
type Result struct {
	Type     *FacilitatorType `json:"type"`
	Scores   AxisScores       `json:"scores"`
	Profile  Profile          `json:"profile"`
	Readings []AxisReading    `json:"readings"` // in AxisOrder
}

// Reading returns the reading for an axis, or nil.
func (r *Result) Reading(a Axis) *AxisReading {
	for i := range r.Readings {
		if r.Readings[i].Axis == a {
			return &r.Readings[i]
		}
	}
	return nil
}

// Resolver is the content lookup the core depends on. Implementations are
// static, already-validated tables; a false return is a content gap.
type Resolver interface {
	TypeFor(p Profile) (*FacilitatorType, bool)
	TypeByID(id string) (*FacilitatorType, bool)
	AxisContent(a Axis, t Tendency) (*AxisContent, bool)
	Hint(a Axis, t Tendency) (*CofacilitationHint, bool)
}
