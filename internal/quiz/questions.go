package quiz

import "fmt"

// Answer scale and bank shape. The midpoint is derived from these, never
// hardcoded, so changing the scale keeps classification consistent.
const (
	ScaleMin         = 1
	ScaleMax         = 6
	QuestionsPerAxis = 8
	TotalQuestions   = QuestionsPerAxis * 4
)

// bank is the canonical question list in id order. Never mutated.
var bank = []Question{
	// intervention: trigger (A) vs watch (B)
	{1, AxisIntervention, "When a workshop falls silent for a while, what do you do?", "Speak up right away and get things moving", "Wait until participants start moving on their own"},
	{2, AxisIntervention, "When a discussion stalls, you...", "Throw in a new angle or question", "Hold the space as time for reflection"},
	{3, AxisIntervention, "When the room's energy feels low...", "You become the one who lifts it", "You wait for the natural flow to return"},
	{4, AxisIntervention, "When participants say little...", "You actively call on people and ask questions", "You focus on making it easy to speak"},
	{5, AxisIntervention, "In the middle of group work...", "You go round and check in with every group", "You step in only when support is needed"},
	{6, AxisIntervention, "When ideas are slow to come...", "You offer an example of your own to prime the pump", "You wait for participants to find their own words"},
	{7, AxisIntervention, "While facilitating, your presence is usually...", "At the center of the room", "At the edge, watching over"},
	{8, AxisIntervention, "Once participants start talking with each other...", "You step in or add to it as needed", "You hold back so you don't get in the way"},

	// perception: observe (A) vs insight (B)
	{9, AxisPerception, "When reading how participants are doing, you rely on...", "Concrete cues such as what they say and their expressions", "The mood and atmosphere of the room"},
	{10, AxisPerception, "When organizing a discussion...", "Record and visualize what was said as it was said", "Read the intent behind the words"},
	{11, AxisPerception, "You notice participants changing through...", "Shifts in what they say or how often", "A vague sense that the air has changed"},
	{12, AxisPerception, "When looking at how a group is doing...", "You follow what each member says", "You sense the feel of the group as a whole"},
	{13, AxisPerception, "During a retrospective you pay attention to...", "Concrete outcomes and remarks", "Participants' faces and the energy in the room"},
	{14, AxisPerception, "When a conflict arises, you first check...", "What the disagreement is about (the facts)", "Why they disagree (feelings and background)"},
	{15, AxisPerception, "When judging how far a discussion has come...", "The quantity and quality of the output", "How convinced and energized participants are"},
	{16, AxisPerception, "When reflecting on your own facilitation...", "You review the notes and deliverables", "You recall how the room felt at the time"},

	// judgment: goal (A) vs relation (B)
	{17, AxisJudgment, "When you are running out of time...", "Narrow the discussion toward the goal", "Consider extending so participants feel settled"},
	{18, AxisJudgment, "When the discussion drifts from the goal...", "Correct course and return to the main topic", "Treat the detour as meaningful too"},
	{19, AxisJudgment, "When not everyone can agree...", "Close it with a vote or a time limit", "Keep the dialogue going until everyone is on board"},
	{20, AxisJudgment, "When measuring a workshop's success...", "How far the objectives were achieved", "Participant satisfaction and changes in relationships"},
	{21, AxisJudgment, "When the planned agenda and participants' interests diverge...", "Prioritize the agenda", "Follow participants' interests"},
	{22, AxisJudgment, "About the deliverables of group work...", "Quality and quantity matter most", "What was learned in the process matters most"},
	{23, AxisJudgment, "When a participant brings you a personal concern...", "Decide whether it relates to the topic and respond accordingly", "Listen first and value the relationship"},
	{24, AxisJudgment, "As a facilitator, what you value most is...", "Leading the group to the agreed goal", "Creating a place where people feel safe to speak"},

	// engagement: design (A) vs improvise (B)
	{25, AxisEngagement, "When preparing a workshop, you emphasize...", "A detailed timeline and run sheet", "A rough flow with room to flex"},
	{26, AxisEngagement, "When things don't go to plan...", "Think about how to get back on plan", "Go with the flow of the moment"},
	{27, AxisEngagement, "When a new idea comes to you mid-session...", "Note it down for next time", "Try it out on the spot"},
	{28, AxisEngagement, "When a participant asks something unexpected...", "Respond along the lines you prepared", "Think it through together right there"},
	{29, AxisEngagement, "The structure of your workshops is...", "Decided in fine detail beforehand", "Adjusted on the day after seeing who is there"},
	{30, AxisEngagement, "When unexpected trouble occurs...", "Use the plan B you prepared in advance", "Work out the best move on the spot"},
	{31, AxisEngagement, "Looking back on facilitation that went well...", "It was when things went to plan", "It was when an unexpected turn led somewhere good"},
	{32, AxisEngagement, "What you value in facilitation is...", "A process you can reproduce", "A one-time-only gathering"},
}

// Questions returns a copy of the bank in canonical id order.
func Questions() []Question {
	out := make([]Question, len(bank))
	copy(out, bank)
	return out
}

// QuestionByID looks up a question in the bank.
func QuestionByID(id int) (Question, bool) {
	if id < 1 || id > len(bank) {
		return Question{}, false
	}
	return bank[id-1], true
}

// ValidateBank checks the bank shape: unique sequential ids, known axes
// and exactly QuestionsPerAxis questions per axis.
func ValidateBank(qs []Question) error {
	if len(qs) != TotalQuestions {
		return fmt.Errorf("question bank has %d questions, want %d", len(qs), TotalQuestions)
	}
	seen := make(map[int]bool, len(qs))
	perAxis := make(map[Axis]int, len(AxisOrder))
	for _, q := range qs {
		if err := ValidateAxis(q.Axis); err != nil {
			return fmt.Errorf("question %d: %w", q.ID, err)
		}
		if q.ID < 1 || q.ID > TotalQuestions {
			return fmt.Errorf("question id %d out of range 1..%d", q.ID, TotalQuestions)
		}
		if seen[q.ID] {
			return fmt.Errorf("duplicate question id %d", q.ID)
		}
		if q.Text == "" || q.OptionA == "" || q.OptionB == "" {
			return fmt.Errorf("question %d: text and both options are required", q.ID)
		}
		seen[q.ID] = true
		perAxis[q.Axis]++
	}
	for _, a := range AxisOrder {
		if perAxis[a] != QuestionsPerAxis {
			return fmt.Errorf("axis %s has %d questions, want %d", a, perAxis[a], QuestionsPerAxis)
		}
	}
	return nil
}

// ValidateScore checks a score against the answer scale.
func ValidateScore(score int) error {
	if score < ScaleMin || score > ScaleMax {
		return fmt.Errorf("%w: %d not in %d..%d", ErrScoreOutOfRange, score, ScaleMin, ScaleMax)
	}
	return nil
}
