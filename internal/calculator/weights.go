package calculator

import (
	"fmt"
	"math"
	"sentimenttracker/internal/domain"
)

type NormalizeWeightsInput struct {
	Weights domain.SourceWeights
	Source  domain.Source
	Value   float64
	Locked  map[domain.Source]bool
}

// NormalizeWeights sets Source to Value and redistributes whatever is
// left over among the other unlocked sources, proportional to their
// current share. Locked weights never move, so Value is capped at
// 1 - (sum of locked weights). The input map is not modified.
func NormalizeWeights(in NormalizeWeightsInput) (domain.SourceWeights, error) {
	if err := in.Weights.Validate(); err != nil {
		return nil, err
	}
	if _, ok := in.Weights[in.Source]; !ok {
		return nil, fmt.Errorf("unknown source %q", in.Source)
	}
	if math.IsNaN(in.Value) || in.Value < 0 || in.Value > 1 {
		return nil, fmt.Errorf("weight for %s must be between 0 and 1, got %f", in.Source, in.Value)
	}
	if in.Locked[in.Source] {
		return nil, fmt.Errorf("weight for %s is locked", in.Source)
	}

	lockedSum := 0.0
	otherSources := []domain.Source{}
	for _, source := range in.Weights.Sources() {
		if source == in.Source {
			continue
		}
		if in.Locked[source] {
			lockedSum += in.Weights[source]
		} else {
			otherSources = append(otherSources, source)
		}
	}

	newWeights := in.Weights.Copy()
	newValue := math.Min(in.Value, math.Max(0, 1-lockedSum))
	newWeights[in.Source] = newValue

	// nothing else can move, so the changed source takes
	// whatever is needed to get back to 1
	if len(otherSources) == 0 {
		sum := newWeights.Sum()
		if math.Abs(sum-1) > domain.WeightTolerance {
			newWeights[in.Source] = math.Max(0, newValue+(1-sum))
		}
		return newWeights, nil
	}

	remainingWeight := 1 - newValue - lockedSum
	currentOtherSum := 0.0
	for _, source := range otherSources {
		currentOtherSum += in.Weights[source]
	}

	for _, source := range otherSources {
		if currentOtherSum == 0 {
			newWeights[source] = remainingWeight / float64(len(otherSources))
		} else {
			proportion := in.Weights[source] / currentOtherSum
			newWeights[source] = remainingWeight * proportion
		}
	}

	for source, w := range newWeights {
		newWeights[source] = math.Max(0, w)
	}

	sum := newWeights.Sum()
	if sum > 0 && math.Abs(sum-1) > domain.WeightTolerance {
		adjustSource := otherSources[0]
		newWeights[adjustSource] = math.Max(0, newWeights[adjustSource]+(1-sum))
	}

	return newWeights, nil
}

// CompositeScore is the weighted sum of per-source sentiment
// scores, rounded to two decimals
func CompositeScore(scores map[domain.Source]float64, weights domain.SourceWeights) float64 {
	total := 0.0
	for source, w := range weights {
		total += scores[source] * w
	}
	return math.Round(total*100) / 100
}
