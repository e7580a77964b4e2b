package models

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ptr[T any](v T) *T { return &v }

func TestSubmissionValidation(t *testing.T) {
	tests := []struct {
		name    string
		data    interface{ Validate() error }
		wantMsg string
	}{
		{"screen1 ok", Screen1Data{SleepStruggleDuration: StruggleTwoToEightWeeks}, ""},
		{"screen1 empty", Screen1Data{}, "Please select an option to continue"},
		{"screen1 unknown", Screen1Data{SleepStruggleDuration: "FOREVER"}, "Please select an option to continue"},

		{"screen2 ok", Screen2Data{BedTime: "22:45"}, ""},
		{"screen2 empty", Screen2Data{}, "Please select your bedtime"},
		{"screen2 hour out of range", Screen2Data{BedTime: "25:00"}, "Please enter a valid time"},
		{"screen2 minute out of range", Screen2Data{BedTime: "22:60"}, "Please enter a valid time"},
		{"screen2 garbage", Screen2Data{BedTime: "late"}, "Please enter a valid time"},

		{"screen3 ok without hours", Screen3Data{WakeUpTime: "07:00"}, ""},
		{"screen3 ok with half hour", Screen3Data{WakeUpTime: "07:00", SleepHours: ptr(7.5)}, ""},
		{"screen3 empty", Screen3Data{}, "Please select your wake up time"},
		{"screen3 bad time", Screen3Data{WakeUpTime: "7"}, "Please enter a valid time"},
		{"screen3 hours too low", Screen3Data{WakeUpTime: "07:00", SleepHours: ptr(0.5)}, "Sleep hours must be between 1 and 12"},
		{"screen3 hours too high", Screen3Data{WakeUpTime: "07:00", SleepHours: ptr(12.5)}, "Sleep hours must be between 1 and 12"},
		{"screen3 hours off step", Screen3Data{WakeUpTime: "07:00", SleepHours: ptr(7.25)}, "Sleep hours must be in steps of 0.5"},

		{"screen4 ok", Screen4Data{SleepHours: 8}, ""},
		{"screen4 missing", Screen4Data{}, "Please select your desired sleep hours"},
		{"screen4 out of range", Screen4Data{SleepHours: 11}, "Sleep hours must be between 4 and 10"},

		{"complete ok", CompleteOnboardingData{DesiredChanges: []DesiredChange{ChangeWakeUpRefreshed}}, ""},
		{"complete empty", CompleteOnboardingData{}, "Please select at least one desired change"},
		{"complete unknown", CompleteOnboardingData{DesiredChanges: []DesiredChange{"FLY"}}, `Unknown desired change "FLY"`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.data.Validate()
			if tt.wantMsg == "" {
				require.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.True(t, errors.Is(err, ErrValidation))
			assert.Equal(t, tt.wantMsg, err.Error())
		})
	}
}

func TestCompleteOnboardingData_Deduplicated(t *testing.T) {
	d := CompleteOnboardingData{DesiredChanges: []DesiredChange{
		ChangeSleepThroughNight, ChangeGoToSleepEasily, ChangeSleepThroughNight,
	}}
	assert.Equal(t,
		[]DesiredChange{ChangeSleepThroughNight, ChangeGoToSleepEasily},
		d.Deduplicated().DesiredChanges)
}

func TestSleepGoalQuality(t *testing.T) {
	assert.Equal(t, "Too Short", SleepGoalQuality(4))
	assert.Equal(t, "Too Short", SleepGoalQuality(5))
	assert.Equal(t, "Extended", SleepGoalQuality(6))
	assert.Equal(t, "Optimal", SleepGoalQuality(7))
	assert.Equal(t, "Optimal", SleepGoalQuality(9))
	assert.Equal(t, "Extended", SleepGoalQuality(10))
}

func TestCredentials(t *testing.T) {
	var verr *ValidationError

	err := Credentials{Nickname: "owl"}.ValidateLogin()
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "password", verr.Field)
	assert.Equal(t, "Password is required", verr.Message)

	require.NoError(t, Credentials{Nickname: "owl", Password: "x"}.ValidateLogin())

	tests := []struct {
		creds   Credentials
		confirm string
		field   string
	}{
		{Credentials{}, "", "nickname"},
		{Credentials{Nickname: "ow", Password: "secret1"}, "secret1", "nickname"},
		{Credentials{Nickname: "owl", Password: ""}, "", "password"},
		{Credentials{Nickname: "owl", Password: "short"}, "short", "password"},
		{Credentials{Nickname: "owl", Password: "secret1"}, "secret2", "confirmPassword"},
	}
	for _, tt := range tests {
		err := tt.creds.ValidateSignup(tt.confirm)
		require.ErrorAs(t, err, &verr)
		assert.Equal(t, tt.field, verr.Field)
	}
	require.NoError(t, Credentials{Nickname: "owl", Password: "secret1"}.ValidateSignup("secret1"))
}
