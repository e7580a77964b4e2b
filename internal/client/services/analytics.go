package services

import (
	"context"

	"github.com/dmitrijs2005/sleepcoach/internal/client/client"
	"github.com/dmitrijs2005/sleepcoach/internal/client/models"
)

type AnalyticsService interface {
	Fetch(ctx context.Context) (models.Analytics, error)
}

type analyticsService struct {
	client client.Client
}

func NewAnalyticsService(c client.Client) AnalyticsService {
	return &analyticsService{client: c}
}

// Fetch downloads the aggregate report and normalizes it for display.
// Client errors are returned unchanged so their message can be shown as is.
func (s *analyticsService) Fetch(ctx context.Context) (models.Analytics, error) {
	report, err := s.client.GetAnalytics(ctx)
	if err != nil {
		return models.Analytics{}, err
	}
	return models.NormalizeAnalytics(report), nil
}
