package services

import (
	"context"
	"testing"

	"github.com/dmitrijs2005/sleepcoach/internal/client/client"
	"github.com/dmitrijs2005/sleepcoach/internal/client/models"
	"github.com/dmitrijs2005/sleepcoach/internal/client/repositories/metadata"
	"github.com/dmitrijs2005/sleepcoach/internal/client/session"
	"github.com/dmitrijs2005/sleepcoach/internal/logging"
	"go.uber.org/goleak"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

// fakeClient implements client.Client for service unit tests. Each method
// records its name and returns the configured result.
type fakeClient struct {
	calls []string

	AuthResp *models.AuthResponse
	AuthErr  error

	SubmitResp *models.SubmissionResult
	SubmitErr  error

	// Details are returned in order by GetUserDetails; the last one repeats.
	Details    []*models.UserDetails
	DetailsErr error

	Report    *models.AnalyticsReport
	ReportErr error

	HealthResp *models.Health
	HealthErr  error

	CloseErr error

	LastCreds    models.Credentials
	LastComplete models.CompleteOnboardingData
}

var _ client.Client = (*fakeClient)(nil)

func (f *fakeClient) Signup(_ context.Context, creds models.Credentials) (*models.AuthResponse, error) {
	f.calls = append(f.calls, "signup")
	f.LastCreds = creds
	return f.AuthResp, f.AuthErr
}

func (f *fakeClient) Login(_ context.Context, creds models.Credentials) (*models.AuthResponse, error) {
	f.calls = append(f.calls, "login")
	f.LastCreds = creds
	return f.AuthResp, f.AuthErr
}

func (f *fakeClient) submit(name string) (*models.SubmissionResult, error) {
	f.calls = append(f.calls, name)
	if f.SubmitErr != nil {
		return nil, f.SubmitErr
	}
	if f.SubmitResp == nil {
		return &models.SubmissionResult{}, nil
	}
	return f.SubmitResp, nil
}

func (f *fakeClient) SubmitScreen1(context.Context, models.Screen1Data) (*models.SubmissionResult, error) {
	return f.submit("screen1")
}

func (f *fakeClient) SubmitScreen2(context.Context, models.Screen2Data) (*models.SubmissionResult, error) {
	return f.submit("screen2")
}

func (f *fakeClient) SubmitScreen3(context.Context, models.Screen3Data) (*models.SubmissionResult, error) {
	return f.submit("screen3")
}

func (f *fakeClient) SubmitScreen4(context.Context, models.Screen4Data) (*models.SubmissionResult, error) {
	return f.submit("screen4")
}

func (f *fakeClient) CompleteOnboarding(_ context.Context, data models.CompleteOnboardingData) (*models.SubmissionResult, error) {
	f.LastComplete = data
	return f.submit("complete")
}

func (f *fakeClient) GetUserDetails(context.Context) (*models.UserDetails, error) {
	f.calls = append(f.calls, "details")
	if f.DetailsErr != nil {
		return nil, f.DetailsErr
	}
	if len(f.Details) == 0 {
		return nil, client.ErrUnavailable
	}
	d := f.Details[0]
	if len(f.Details) > 1 {
		f.Details = f.Details[1:]
	}
	return d, nil
}

func (f *fakeClient) GetAnalytics(context.Context) (*models.AnalyticsReport, error) {
	f.calls = append(f.calls, "analytics")
	return f.Report, f.ReportErr
}

func (f *fakeClient) HealthCheck(context.Context) (*models.Health, error) {
	f.calls = append(f.calls, "health")
	return f.HealthResp, f.HealthErr
}

func (f *fakeClient) Close() error { return f.CloseErr }

func newStore() *session.Store {
	return session.NewStore(metadata.NewMemoryRepository(), logging.Nop())
}
