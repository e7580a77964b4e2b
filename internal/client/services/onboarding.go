package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/sleepcoach/internal/client/client"
	"github.com/dmitrijs2005/sleepcoach/internal/client/flow"
	"github.com/dmitrijs2005/sleepcoach/internal/client/models"
	"github.com/dmitrijs2005/sleepcoach/internal/client/session"
	"github.com/dmitrijs2005/sleepcoach/internal/logging"
)

// ErrCompletionUnconfirmed is returned by Complete when the server accepted
// the completion but the refreshed profile does not show it, and the local
// profile was not patched.
var ErrCompletionUnconfirmed = errors.New("onboarding completion not confirmed by the server")

// OnboardingService submits the survey screens. Each method validates its
// input first and sends nothing when validation fails; on success it returns
// the next page in the fixed survey order.
type OnboardingService interface {
	SubmitScreen1(ctx context.Context, data models.Screen1Data) (flow.Route, error)
	SubmitScreen2(ctx context.Context, data models.Screen2Data) (flow.Route, error)
	SubmitScreen3(ctx context.Context, data models.Screen3Data) (flow.Route, error)
	SubmitScreen4(ctx context.Context, data models.Screen4Data) (flow.Route, error)
	Complete(ctx context.Context, data models.CompleteOnboardingData) (flow.Route, error)
}

type onboardingService struct {
	client     client.Client
	store      *session.Store
	logger     logging.Logger
	optimistic bool
}

// NewOnboardingService builds the service. With optimistic set, a completion
// the server does not confirm is still recorded locally.
func NewOnboardingService(c client.Client, store *session.Store, optimistic bool, logger logging.Logger) OnboardingService {
	return &onboardingService{
		client:     c,
		store:      store,
		logger:     logger.With("service", "onboarding"),
		optimistic: optimistic,
	}
}

type validatable interface {
	Validate() error
}

func (s *onboardingService) submit(ctx context.Context, screen models.Screen, data validatable,
	send func(ctx context.Context) (*models.SubmissionResult, error)) (flow.Route, error) {
	if err := data.Validate(); err != nil {
		return "", err
	}

	res, err := send(ctx)
	if err != nil {
		return "", err
	}

	if res != nil && res.User != nil {
		if err := s.store.SaveProfile(ctx, res.User); err != nil {
			s.logger.Warn(ctx, "caching profile failed", "error", err)
		}
	}

	s.logger.Debug(ctx, "screen submitted", "screen", screen)
	return flow.Next(screen), nil
}

func (s *onboardingService) SubmitScreen1(ctx context.Context, data models.Screen1Data) (flow.Route, error) {
	return s.submit(ctx, models.Screen1, data, func(ctx context.Context) (*models.SubmissionResult, error) {
		return s.client.SubmitScreen1(ctx, data)
	})
}

func (s *onboardingService) SubmitScreen2(ctx context.Context, data models.Screen2Data) (flow.Route, error) {
	return s.submit(ctx, models.Screen2, data, func(ctx context.Context) (*models.SubmissionResult, error) {
		return s.client.SubmitScreen2(ctx, data)
	})
}

func (s *onboardingService) SubmitScreen3(ctx context.Context, data models.Screen3Data) (flow.Route, error) {
	return s.submit(ctx, models.Screen3, data, func(ctx context.Context) (*models.SubmissionResult, error) {
		return s.client.SubmitScreen3(ctx, data)
	})
}

func (s *onboardingService) SubmitScreen4(ctx context.Context, data models.Screen4Data) (flow.Route, error) {
	return s.submit(ctx, models.Screen4, data, func(ctx context.Context) (*models.SubmissionResult, error) {
		return s.client.SubmitScreen4(ctx, data)
	})
}

// Complete posts the desired changes and confirms the result with a profile
// refresh. When the server does not report the profile as complete, the
// outcome depends on the optimistic setting: patch the cached profile and
// carry on, or return ErrCompletionUnconfirmed.
func (s *onboardingService) Complete(ctx context.Context, data models.CompleteOnboardingData) (flow.Route, error) {
	data = data.Deduplicated()

	next, err := s.submit(ctx, models.ScreenComplete, data, func(ctx context.Context) (*models.SubmissionResult, error) {
		return s.client.CompleteOnboarding(ctx, data)
	})
	if err != nil {
		return "", err
	}

	fresh := refreshProfile(ctx, s.client, s.store, s.logger)
	if fresh != nil && fresh.IsOnboardingComplete {
		return next, nil
	}

	if !s.optimistic {
		s.logger.Warn(ctx, "completion not confirmed by the server")
		return "", ErrCompletionUnconfirmed
	}

	base := fresh
	if base == nil {
		base, _ = s.store.Load(ctx)
	}
	if base == nil {
		s.logger.Warn(ctx, "completion not confirmed and no profile to update")
		return "", ErrCompletionUnconfirmed
	}

	if err := s.store.SaveProfile(ctx, base.Completed()); err != nil {
		return "", fmt.Errorf("record completion: %w", err)
	}
	s.logger.Warn(ctx, "completion not confirmed by the server, marked complete locally",
		"refreshed", fresh != nil)
	return next, nil
}
