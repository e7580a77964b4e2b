package cli

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"github.com/dmitrijs2005/sleepcoach/internal/client/flow"
	"github.com/dmitrijs2005/sleepcoach/internal/client/models"
	"github.com/dmitrijs2005/sleepcoach/internal/client/services"
)

// surveySteps is the number of question screens shown in the progress line.
const surveySteps = 4

func (a *App) progress(step int) {
	fmt.Fprintf(a.out, "\nQuestion %d of %d (type 'back' to pause, 'logout' to sign out)\n", step, surveySteps)
}

func (a *App) welcomePage(ctx context.Context, _ flow.State) (flow.Route, error) {
	name := "there"
	if p, ok := a.auth.CachedProfile(ctx); ok && p.Nickname != "" {
		name = p.Nickname
	}
	fmt.Fprintf(a.out, "\nWelcome, %s!\n", name)
	fmt.Fprintln(a.out, "Answer a few short questions so we can build your personal sleep plan.")
	fmt.Fprintln(a.out, "It takes about two minutes.")

	if _, err := a.ask("Press Enter to begin"); err != nil {
		return "", err
	}
	return flow.Next(models.ScreenWelcome), nil
}

func (a *App) screen1Page(ctx context.Context, _ flow.State) (flow.Route, error) {
	a.progress(1)
	fmt.Fprintln(a.out, "How long have you been struggling with your sleep?")
	for {
		choice, err := chooseOne(a, "Choose a number", models.SleepStruggleOptions)
		if err != nil {
			return "", err
		}
		next, err := a.onboarding.SubmitScreen1(ctx, models.Screen1Data{SleepStruggleDuration: choice})
		if err != nil {
			a.showError(err)
			continue
		}
		return next, nil
	}
}

func (a *App) screen2Page(ctx context.Context, _ flow.State) (flow.Route, error) {
	a.progress(2)
	for {
		bedTime, err := a.ask("What time do you usually go to bed? (HH:MM, 24-hour)")
		if err != nil {
			return "", err
		}
		if c, err := models.ParseClock(bedTime); err == nil {
			fmt.Fprintf(a.out, "Bedtime: %s\n", c.Format12())
		}

		next, err := a.onboarding.SubmitScreen2(ctx, models.Screen2Data{BedTime: bedTime})
		if err != nil {
			a.showError(err)
			continue
		}
		return next, nil
	}
}

func (a *App) screen3Page(ctx context.Context, _ flow.State) (flow.Route, error) {
	a.progress(3)
	for {
		wake, err := a.ask("What time do you usually wake up? (HH:MM, 24-hour)")
		if err != nil {
			return "", err
		}
		if c, err := models.ParseClock(wake); err == nil {
			fmt.Fprintf(a.out, "With a %s bedtime that is about %.1f hours of sleep.\n",
				models.AssumedBedTime.Format12(), models.SleepDuration(models.AssumedBedTime, c))
		}

		data := models.Screen3Data{WakeUpTime: wake}
		hours, err := a.ask("How many hours do you actually sleep? (1-12, Enter to skip)")
		if err != nil {
			return "", err
		}
		if hours != "" {
			h, err := strconv.ParseFloat(hours, 64)
			if err != nil {
				a.showError(&models.ValidationError{Field: "sleepHours", Message: "Sleep hours must be between 1 and 12"})
				continue
			}
			data.SleepHours = &h
		}

		next, err := a.onboarding.SubmitScreen3(ctx, data)
		if err != nil {
			a.showError(err)
			continue
		}
		return next, nil
	}
}

func (a *App) screen4Page(ctx context.Context, _ flow.State) (flow.Route, error) {
	a.progress(4)
	fmt.Fprintln(a.out, "How many hours of sleep would you like to get?")
	for h := models.MinSleepGoal; h <= models.MaxSleepGoal; h++ {
		fmt.Fprintf(a.out, "  %2d hours  %s\n", h, models.SleepGoalQuality(h))
	}
	for {
		s, err := a.ask(fmt.Sprintf("Hours (%d-%d)", models.MinSleepGoal, models.MaxSleepGoal))
		if err != nil {
			return "", err
		}
		hours, err := strconv.Atoi(s)
		if err != nil && s != "" {
			a.showError(&models.ValidationError{Field: "sleepHours", Message: fmt.Sprintf(
				"Sleep hours must be a whole number between %d and %d", models.MinSleepGoal, models.MaxSleepGoal)})
			continue
		}

		next, err := a.onboarding.SubmitScreen4(ctx, models.Screen4Data{SleepHours: hours})
		if err != nil {
			a.showError(err)
			continue
		}
		fmt.Fprintf(a.out, "Goal: %d hours of sleep per night (%s)\n", hours, models.SleepGoalQuality(hours))
		return next, nil
	}
}

func (a *App) completePage(ctx context.Context, _ flow.State) (flow.Route, error) {
	fmt.Fprintln(a.out, "\nLast step: what would you like to change about your sleep?")
	for {
		changes, err := chooseMany(a, "Choose one or more numbers, e.g. 1,3", models.DesiredChangeOptions)
		if err != nil {
			return "", err
		}

		next, err := a.onboarding.Complete(ctx, models.CompleteOnboardingData{DesiredChanges: changes})
		if errors.Is(err, services.ErrCompletionUnconfirmed) {
			fmt.Fprintln(a.out, "Your answers were saved, but the server has not confirmed completion yet.")
			fmt.Fprintln(a.out, "Type 'resume' to try again later.")
			return "", nil
		}
		if err != nil {
			a.showError(err)
			continue
		}
		fmt.Fprintln(a.out, "All done! Your sleep plan is ready.")
		return next, nil
	}
}
