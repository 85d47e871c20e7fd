package services

import (
	"context"

	"startup-validator/eventbus"
	"startup-validator/logger"
	"startup-validator/models"
)

// ReportService exposes stored-report reads and deletion to the gateway.
type ReportService struct {
	repo ReportStore
	bus  eventbus.Publisher
}

func NewReportService(repo ReportStore, bus eventbus.Publisher) *ReportService {
	return &ReportService{repo: repo, bus: bus}
}

// List returns reports newest-first with the total count.
func (s *ReportService) List(ctx context.Context, limit, skip int64) ([]models.ValidationReport, int64, error) {
	return s.repo.List(ctx, limit, skip)
}

// Get returns one report by hex id.
func (s *ReportService) Get(ctx context.Context, id string) (*models.ValidationReport, error) {
	return s.repo.Get(ctx, id)
}

// Delete permanently removes one report by hex id.
func (s *ReportService) Delete(ctx context.Context, id string) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}

	if err := s.bus.Publish(ctx, eventbus.TopicReportDeleted, eventbus.NewEvent(eventbus.TopicReportDeleted, map[string]string{
		"report_id": id,
	})); err != nil {
		logger.Log.Warnf("report.deleted publish failed: %v", err)
	}
	return nil
}
