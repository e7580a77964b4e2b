package cli

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/sleepcoach/internal/client/flow"
	"github.com/dmitrijs2005/sleepcoach/internal/client/models"
)

func (a *App) homePage(_ context.Context, _ flow.State) (flow.Route, error) {
	fmt.Fprintln(a.out, "SleepCoach: a better night starts with a few questions.")
	fmt.Fprintln(a.out, "Type 'signup' to create an account or 'login' to sign in.")
	return "", nil
}

func (a *App) loginPage(ctx context.Context, _ flow.State) (flow.Route, error) {
	fmt.Fprintln(a.out, "Sign in to continue your sleep journey (type 'back' to cancel)")
	for {
		nickname, err := a.ask("Nickname")
		if err != nil {
			return "", err
		}
		password, err := a.askSecret("Password")
		if err != nil {
			return "", err
		}

		next, err := a.auth.Login(ctx, models.Credentials{Nickname: nickname, Password: password})
		if err != nil {
			a.showError(err)
			continue
		}
		fmt.Fprintf(a.out, "Welcome back, %s!\n", nickname)
		return next, nil
	}
}

func (a *App) signupPage(ctx context.Context, _ flow.State) (flow.Route, error) {
	fmt.Fprintln(a.out, "Create your account (type 'back' to cancel)")
	for {
		nickname, err := a.ask("Nickname (at least 3 characters)")
		if err != nil {
			return "", err
		}
		password, err := a.askSecret("Password (at least 6 characters)")
		if err != nil {
			return "", err
		}
		confirm, err := a.askSecret("Confirm password")
		if err != nil {
			return "", err
		}

		next, err := a.auth.Signup(ctx, models.Credentials{Nickname: nickname, Password: password}, confirm)
		if err != nil {
			a.showError(err)
			continue
		}
		fmt.Fprintf(a.out, "Account created. Hi, %s!\n", nickname)
		return next, nil
	}
}
