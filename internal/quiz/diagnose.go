package quiz

import "fmt"

// Diagnose scores a complete answer store, classifies it and enriches the
// result from r. It never returns a partial result: any missing type,
// axis content or hint is reported as ErrContentGap.
func Diagnose(store *AnswerStore, r Resolver) (*Result, error) {
	if store == nil || !store.Complete() {
		n := 0
		if store != nil {
			n = store.Len()
		}
		return nil, fmt.Errorf("%w: %d of %d answered", ErrIncomplete, n, TotalQuestions)
	}

	scores := Score(store)
	profile, err := Classify(scores)
	if err != nil {
		return nil, err
	}

	ft, ok := r.TypeFor(profile)
	if !ok {
		return nil, fmt.Errorf("%w: no facilitator type for %s", ErrContentGap, profile.Key())
	}

	readings := make([]AxisReading, 0, len(AxisOrder))
	for _, a := range AxisOrder {
		t := profile.Get(a)
		content, ok := r.AxisContent(a, t)
		if !ok {
			return nil, fmt.Errorf("%w: no axis content for %s/%s", ErrContentGap, a, t)
		}
		hint, ok := r.Hint(a, t)
		if !ok {
			return nil, fmt.Errorf("%w: no cofacilitation hint for %s/%s", ErrContentGap, a, t)
		}
		score := scores.Get(a)
		readings = append(readings, AxisReading{
			Axis:     a,
			Score:    score,
			Tendency: t,
			Strength: StrengthOf(score),
			Percent:  StrengthPercent(score),
			Content:  content,
			Hint:     hint,
		})
	}

	return &Result{
		Type:     ft,
		Scores:   scores,
		Profile:  profile,
		Readings: readings,
	}, nil
}
