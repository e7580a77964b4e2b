package client

import (
	"context"

	"github.com/dmitrijs2005/sleepcoach/internal/client/models"
)

// Client is the remote API contract. Every method honors ctx.
type Client interface {
	Signup(ctx context.Context, creds models.Credentials) (*models.AuthResponse, error)
	Login(ctx context.Context, creds models.Credentials) (*models.AuthResponse, error)
	SubmitScreen1(ctx context.Context, data models.Screen1Data) (*models.SubmissionResult, error)
	SubmitScreen2(ctx context.Context, data models.Screen2Data) (*models.SubmissionResult, error)
	SubmitScreen3(ctx context.Context, data models.Screen3Data) (*models.SubmissionResult, error)
	SubmitScreen4(ctx context.Context, data models.Screen4Data) (*models.SubmissionResult, error)
	CompleteOnboarding(ctx context.Context, data models.CompleteOnboardingData) (*models.SubmissionResult, error)
	GetUserDetails(ctx context.Context) (*models.UserDetails, error)
	GetAnalytics(ctx context.Context) (*models.AnalyticsReport, error)
	HealthCheck(ctx context.Context) (*models.Health, error)
	Close() error
}

// TokenSource yields the cached bearer token, or "" when there is none.
type TokenSource interface {
	Token(ctx context.Context) (string, error)
}
