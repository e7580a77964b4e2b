package services

import (
	"context"
	"errors"
	"testing"

	"github.com/dmitrijs2005/sleepcoach/internal/client/client"
	"github.com/dmitrijs2005/sleepcoach/internal/client/flow"
	"github.com/dmitrijs2005/sleepcoach/internal/client/models"
	"github.com/dmitrijs2005/sleepcoach/internal/logging"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ptr[T any](v T) *T { return &v }

func TestOnboardingService_InvalidInputSendsNothing(t *testing.T) {
	fc := &fakeClient{}
	svc := NewOnboardingService(fc, newStore(), true, logging.Nop())
	ctx := context.Background()

	_, err := svc.SubmitScreen1(ctx, models.Screen1Data{})
	assert.ErrorIs(t, err, models.ErrValidation)

	_, err = svc.SubmitScreen2(ctx, models.Screen2Data{BedTime: "25:00"})
	require.ErrorIs(t, err, models.ErrValidation)
	assert.Equal(t, "Please enter a valid time", err.Error())

	_, err = svc.SubmitScreen3(ctx, models.Screen3Data{WakeUpTime: "07:00", SleepHours: ptr(13.0)})
	assert.ErrorIs(t, err, models.ErrValidation)

	_, err = svc.SubmitScreen4(ctx, models.Screen4Data{SleepHours: 11})
	assert.ErrorIs(t, err, models.ErrValidation)

	_, err = svc.Complete(ctx, models.CompleteOnboardingData{})
	assert.ErrorIs(t, err, models.ErrValidation)

	assert.Empty(t, fc.calls)
}

func TestOnboardingService_ForwardOrder(t *testing.T) {
	fc := &fakeClient{}
	svc := NewOnboardingService(fc, newStore(), true, logging.Nop())
	ctx := context.Background()

	next, err := svc.SubmitScreen1(ctx, models.Screen1Data{SleepStruggleDuration: models.StruggleMoreThan8Weeks})
	require.NoError(t, err)
	assert.Equal(t, flow.RouteScreen2, next)

	next, err = svc.SubmitScreen2(ctx, models.Screen2Data{BedTime: "23:15"})
	require.NoError(t, err)
	assert.Equal(t, flow.RouteScreen3, next)

	next, err = svc.SubmitScreen3(ctx, models.Screen3Data{WakeUpTime: "06:45"})
	require.NoError(t, err)
	assert.Equal(t, flow.RouteScreen4, next)

	next, err = svc.SubmitScreen4(ctx, models.Screen4Data{SleepHours: 8})
	require.NoError(t, err)
	assert.Equal(t, flow.RouteComplete, next)

	assert.Equal(t, []string{"screen1", "screen2", "screen3", "screen4"}, fc.calls)
}

func TestOnboardingService_ForwardOrderIgnoresServerScreen(t *testing.T) {
	store := newStore()
	fc := &fakeClient{SubmitResp: &models.SubmissionResult{
		User: &models.Profile{UserID: "u", CurrentScreen: models.Screen4, ProgressPercentage: 60},
	}}
	svc := NewOnboardingService(fc, store, true, logging.Nop())
	ctx := context.Background()

	next, err := svc.SubmitScreen1(ctx, models.Screen1Data{SleepStruggleDuration: models.StruggleLessThan2Weeks})
	require.NoError(t, err)
	assert.Equal(t, flow.RouteScreen2, next)

	cached, ok := store.Load(ctx)
	require.True(t, ok, "echoed user is cached")
	assert.Equal(t, models.Screen4, cached.CurrentScreen)
}

func TestOnboardingService_SubmitErrorIsUnchanged(t *testing.T) {
	fc := &fakeClient{SubmitErr: &client.APIError{StatusCode: 500, Message: "HTTP error! status: 500"}}
	svc := NewOnboardingService(fc, newStore(), true, logging.Nop())

	_, err := svc.SubmitScreen2(context.Background(), models.Screen2Data{BedTime: "22:00"})
	require.Error(t, err)
	assert.Equal(t, "HTTP error! status: 500", err.Error())
}

func TestOnboardingService_CompleteConfirmed(t *testing.T) {
	store := newStore()
	ctx := context.Background()
	require.NoError(t, store.Save(ctx, "tok", &models.Profile{UserID: "u", CurrentScreen: models.ScreenComplete, ProgressPercentage: 80}))

	done := (&models.Profile{UserID: "u"}).Completed()
	fc := &fakeClient{Details: []*models.UserDetails{{User: done}}}
	svc := NewOnboardingService(fc, store, false, logging.Nop())

	next, err := svc.Complete(ctx, models.CompleteOnboardingData{DesiredChanges: []models.DesiredChange{
		models.ChangeWakeUpRefreshed, models.ChangeGoToSleepEasily, models.ChangeWakeUpRefreshed,
	}})
	require.NoError(t, err)
	assert.Equal(t, flow.RouteDashboard, next)
	assert.Equal(t, []models.DesiredChange{models.ChangeWakeUpRefreshed, models.ChangeGoToSleepEasily}, fc.LastComplete.DesiredChanges)

	cached, ok := store.Load(ctx)
	require.True(t, ok)
	assert.Equal(t, done, cached)
}

func TestOnboardingService_CompleteUnconfirmed(t *testing.T) {
	pending := &models.Profile{UserID: "u", Nickname: "n", CurrentScreen: models.ScreenComplete, ProgressPercentage: 80}

	tests := []struct {
		name       string
		optimistic bool
		details    []*models.UserDetails
		detailsErr error
		cached     *models.Profile
		wantErr    error
		want       *models.Profile
	}{
		{
			name:       "optimistic, refresh shows incomplete",
			optimistic: true,
			details:    []*models.UserDetails{{User: pending}},
			cached:     pending,
			want:       pending.Completed(),
		},
		{
			name:       "optimistic, refresh failed",
			optimistic: true,
			detailsErr: errors.New("boom"),
			cached:     pending,
			want:       pending.Completed(),
		},
		{
			name:       "optimistic, nothing to patch",
			optimistic: true,
			detailsErr: errors.New("boom"),
			wantErr:    ErrCompletionUnconfirmed,
		},
		{
			name:    "strict",
			details: []*models.UserDetails{{User: pending}},
			cached:  pending,
			wantErr: ErrCompletionUnconfirmed,
			want:    pending,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := newStore()
			ctx := context.Background()
			require.NoError(t, store.Save(ctx, "tok", tt.cached))

			fc := &fakeClient{Details: tt.details, DetailsErr: tt.detailsErr}
			svc := NewOnboardingService(fc, store, tt.optimistic, logging.Nop())

			next, err := svc.Complete(ctx, models.CompleteOnboardingData{
				DesiredChanges: []models.DesiredChange{models.ChangeSleepThroughNight},
			})
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
			} else {
				require.NoError(t, err)
				assert.Equal(t, flow.RouteDashboard, next)
			}

			cached, _ := store.Load(ctx)
			assert.Equal(t, tt.want, cached)
		})
	}
}

func TestOnboardingService_CompleteSubmitError(t *testing.T) {
	fc := &fakeClient{SubmitErr: client.ErrUnavailable}
	svc := NewOnboardingService(fc, newStore(), true, logging.Nop())

	_, err := svc.Complete(context.Background(), models.CompleteOnboardingData{
		DesiredChanges: []models.DesiredChange{models.ChangeSleepThroughNight},
	})
	require.ErrorIs(t, err, client.ErrUnavailable)
	assert.Equal(t, []string{"complete"}, fc.calls)
}
