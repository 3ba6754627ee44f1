package calculator

import (
	"fmt"
	"sentimenttracker/internal/domain"
	"sentimenttracker/internal/util"
	"time"

	"github.com/montanaflynn/stats"
)

type SentimentTimelineInput struct {
	SignalsBySource map[domain.Source][]domain.SignalRow
	Weights         domain.SourceWeights
	End             time.Time
	Days            int
}

// SentimentTimeline builds one entry per calendar day ending on End.
// Each source's score for a day is the mean of its signal scores
// (+1 positive, -1 negative, 0 neutral), or 0 with no signals that day.
func SentimentTimeline(in SentimentTimelineInput) ([]domain.SentimentDay, error) {
	if in.Days <= 0 {
		return nil, fmt.Errorf("timeline needs at least one day, got %d", in.Days)
	}

	end := util.TruncateToDay(in.End)
	start := end.AddDate(0, 0, -(in.Days - 1))

	// date -> source -> scores
	scoresByDay := map[string]map[domain.Source][]float64{}
	for source, signals := range in.SignalsBySource {
		for _, s := range signals {
			d := util.TruncateToDay(s.Date)
			if d.Before(start) || d.After(end) {
				continue
			}
			key := d.Format(time.DateOnly)
			if _, ok := scoresByDay[key]; !ok {
				scoresByDay[key] = map[domain.Source][]float64{}
			}
			scoresByDay[key][source] = append(scoresByDay[key][source], s.Sentiment.Score())
		}
	}

	out := []domain.SentimentDay{}
	for d := start; !d.After(end); d = d.AddDate(0, 0, 1) {
		day := domain.SentimentDay{Date: d}
		for source, scores := range scoresByDay[d.Format(time.DateOnly)] {
			mean, err := stats.Mean(scores)
			if err != nil {
				return nil, fmt.Errorf("failed to compute %s sentiment on %s: %w", source, d.Format(time.DateOnly), err)
			}
			day.Set(source, mean)
		}
		day.CompositeSentiment = CompositeScore(day.BySource(), in.Weights)
		out = append(out, day)
	}

	return out, nil
}

func OverallSentiment(latestComposite float64) domain.OverallSentiment {
	switch {
	case latestComposite > 0.5:
		return domain.OverallVeryPositive
	case latestComposite > 0.2:
		return domain.OverallPositive
	case latestComposite > -0.2:
		return domain.OverallNeutral
	case latestComposite > -0.5:
		return domain.OverallNegative
	}
	return domain.OverallVeryNegative
}
