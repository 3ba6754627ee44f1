package service

import (
	"context"
	"fmt"
	"sentimenttracker/internal/calculator"
	"sentimenttracker/internal/domain"
	"sentimenttracker/internal/repository"
	"sentimenttracker/internal/util"
	"time"
)

type SentimentService interface {
	GetCompositeSentiment(ctx context.Context, in GetCompositeSentimentInput) (*CompositeSentimentResult, error)
}

type GetCompositeSentimentInput struct {
	Period  domain.TimePeriod
	Weights domain.SourceWeights
	// defaults to now
	End *time.Time
}

type CompositeSentimentResult struct {
	Days    []domain.SentimentDay   `json:"days"`
	Overall domain.OverallSentiment `json:"overall"`
}

func NewSentimentService(signalRepository repository.SignalRepository) SentimentService {
	return sentimentServiceHandler{
		SignalRepository: signalRepository,
	}
}

type sentimentServiceHandler struct {
	SignalRepository repository.SignalRepository
}

func (h sentimentServiceHandler) GetCompositeSentiment(ctx context.Context, in GetCompositeSentimentInput) (*CompositeSentimentResult, error) {
	days, err := in.Period.Days()
	if err != nil {
		return nil, invalidInput(err)
	}
	weights := in.Weights
	if len(weights) == 0 {
		weights = domain.DefaultSourceWeights()
	}
	if err := weights.Validate(); err != nil {
		return nil, invalidInput(err)
	}

	end := time.Now().UTC()
	if in.End != nil {
		end = *in.End
	}
	start := util.TruncateToDay(end).AddDate(0, 0, -(days - 1))

	signalsBySource := map[domain.Source][]domain.SignalRow{}
	for _, source := range domain.AllSources {
		signals, err := h.SignalRepository.ListSince(source, start)
		if err != nil {
			return nil, fmt.Errorf("failed to get %s signals: %w", source, err)
		}
		signalsBySource[source] = signals
	}

	timeline, err := calculator.SentimentTimeline(calculator.SentimentTimelineInput{
		SignalsBySource: signalsBySource,
		Weights:         weights,
		End:             end,
		Days:            days,
	})
	if err != nil {
		return nil, err
	}

	out := CompositeSentimentResult{
		Days:    timeline,
		Overall: domain.OverallNeutral,
	}
	if len(timeline) > 0 {
		out.Overall = calculator.OverallSentiment(timeline[len(timeline)-1].CompositeSentiment)
	}

	return &out, nil
}
