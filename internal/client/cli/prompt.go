package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/dmitrijs2005/sleepcoach/internal/client/models"
)

// ask prints prompt and reads one answer. The words "back" and "logout" are
// reserved and reported as errLeave and errLogout.
func (a *App) ask(prompt string) (string, error) {
	s, err := getSimpleText(a.reader, prompt, a.out)
	if err != nil {
		return "", err
	}
	if err := reserved(s); err != nil {
		return "", err
	}
	return s, nil
}

// askSecret reads a password, without echo when stdin is a terminal. The
// reserved words of ask apply here too.
func (a *App) askSecret(prompt string) (string, error) {
	var s string
	if a.terminal {
		pw, err := getPassword(prompt, a.out)
		if err != nil {
			return "", err
		}
		s = string(pw)
	} else {
		var err error
		if s, err = getSimpleText(a.reader, prompt, a.out); err != nil {
			return "", err
		}
	}
	if err := reserved(s); err != nil {
		return "", err
	}
	return s, nil
}

func reserved(answer string) error {
	switch strings.ToLower(answer) {
	case "back":
		return errLeave
	case "logout":
		return errLogout
	}
	return nil
}

// showError prints a failure inline, under the current question.
func (a *App) showError(err error) {
	fmt.Fprintln(a.out, "!", err)
}

// chooseOne lists opts and returns the one picked by number. An answer that
// is not a listed number yields the zero value, which the caller's
// validation reports.
func chooseOne[T ~string | ~int](a *App, prompt string, opts []models.Option[T]) (T, error) {
	var zero T
	for i, o := range opts {
		fmt.Fprintf(a.out, "  %d) %s - %s\n", i+1, o.Label, o.Description)
	}
	s, err := a.ask(prompt)
	if err != nil {
		return zero, err
	}
	n, err := strconv.Atoi(s)
	if err != nil || n < 1 || n > len(opts) {
		return zero, nil
	}
	return opts[n-1].Value, nil
}

// errBadChoice is shown when a multi-select answer names no listed option.
type errBadChoice string

func (e errBadChoice) Error() string {
	return fmt.Sprintf("%q is not one of the listed numbers", string(e))
}

// chooseMany lists opts and reads a comma or space separated list of
// numbers. Repeats are kept; the service removes them.
func chooseMany[T ~string | ~int](a *App, prompt string, opts []models.Option[T]) ([]T, error) {
	for i, o := range opts {
		fmt.Fprintf(a.out, "  %d) %s - %s\n", i+1, o.Label, o.Description)
	}
	for {
		s, err := a.ask(prompt)
		if err != nil {
			return nil, err
		}

		picked, bad := parseChoices(s, len(opts))
		if bad != "" {
			a.showError(errBadChoice(bad))
			continue
		}
		out := make([]T, 0, len(picked))
		for _, i := range picked {
			out = append(out, opts[i].Value)
		}
		return out, nil
	}
}

// parseChoices returns zero-based indexes for a list like "1, 3". The first
// token that is not a number in 1..n is returned as bad.
func parseChoices(s string, n int) (picked []int, bad string) {
	fields := strings.FieldsFunc(s, func(r rune) bool { return r == ',' || r == ' ' || r == ';' })
	for _, f := range fields {
		i, err := strconv.Atoi(f)
		if err != nil || i < 1 || i > n {
			return nil, f
		}
		picked = append(picked, i-1)
	}
	return picked, ""
}
