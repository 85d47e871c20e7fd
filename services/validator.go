package services

import (
	"context"

	"startup-validator/eventbus"
	"startup-validator/logger"
	"startup-validator/models"
)

// ReportStore is the persistence contract the services depend on. The
// MongoDB repository is its production implementation.
type ReportStore interface {
	Save(ctx context.Context, report *models.ValidationReport) (string, error)
	Get(ctx context.Context, id string) (*models.ValidationReport, error)
	List(ctx context.Context, limit, skip int64) ([]models.ValidationReport, int64, error)
	Delete(ctx context.Context, id string) error
}

// ValidationService runs the full validation pipeline: normalize the idea,
// gather research, synthesize the analysis, persist the report.
type ValidationService struct {
	normalizer  *Normalizer
	research    *ResearchService
	synthesizer *Synthesizer
	repo        ReportStore
	bus         eventbus.Publisher
}

func NewValidationService(
	normalizer *Normalizer,
	research *ResearchService,
	synthesizer *Synthesizer,
	repo ReportStore,
	bus eventbus.Publisher,
) *ValidationService {
	return &ValidationService{
		normalizer:  normalizer,
		research:    research,
		synthesizer: synthesizer,
		repo:        repo,
		bus:         bus,
	}
}

// Validate executes one pipeline run and returns the persisted report and
// its id. Stage failures before persistence degrade inside their stage;
// only the save step can fail the run.
func (s *ValidationService) Validate(ctx context.Context, input models.IdeaInput) (*models.ValidationReport, string, error) {
	logger.InfoWithFields("validation started", logger.Fields{
		"idea_name": input.IdeaName,
		"market":    input.Market,
	})

	processed := s.normalizer.Normalize(ctx, input)
	research := s.research.Aggregate(ctx, processed)
	summary := s.synthesizer.Synthesize(ctx, processed, research)

	report := &models.ValidationReport{
		UserInput:      input,
		ProcessedInput: processed,
		WebResearch:    research,
		FinalSummary:   summary,
	}

	id, err := s.repo.Save(ctx, report)
	if err != nil {
		return nil, "", err
	}

	if err := s.bus.Publish(ctx, eventbus.TopicReportCreated, eventbus.NewEvent(eventbus.TopicReportCreated, map[string]string{
		"report_id": id,
		"idea_name": input.IdeaName,
	})); err != nil {
		logger.Log.Warnf("report.created publish failed: %v", err)
	}

	logger.InfoWithFields("validation completed", logger.Fields{
		"report_id":         id,
		"competitors_found": len(research.Competitors),
		"feasibility_score": summary.FeasibilityScore,
	})
	return report, id, nil
}
