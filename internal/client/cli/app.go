package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/dmitrijs2005/sleepcoach/internal/client/client"
	"github.com/dmitrijs2005/sleepcoach/internal/client/config"
	"github.com/dmitrijs2005/sleepcoach/internal/client/flow"
	"github.com/dmitrijs2005/sleepcoach/internal/client/repositories/metadata"
	"github.com/dmitrijs2005/sleepcoach/internal/client/services"
	"github.com/dmitrijs2005/sleepcoach/internal/client/session"
	"github.com/dmitrijs2005/sleepcoach/internal/logging"
	"golang.org/x/term"
)

type App struct {
	auth       services.AuthService
	onboarding services.OnboardingService
	analytics  services.AnalyticsService
	resolver   *flow.Resolver
	logger     logging.Logger

	reader *bufio.Reader
	out    io.Writer
	// terminal reports whether passwords can be read without echo.
	terminal bool

	closers []io.Closer
}

// NewApp opens the local store named by cfg and wires the services to a
// HTTP client for cfg.APIBaseURL. The App reads stdin and writes stdout.
func NewApp(ctx context.Context, cfg *config.Config, logger logging.Logger) (*App, error) {
	repo, closer, err := openStore(ctx, cfg)
	if err != nil {
		return nil, err
	}

	store := session.NewStore(repo, logger)
	api := client.NewHTTPClient(cfg.APIBaseURL, cfg.RequestTimeout, store, logger)

	app := newApp(
		services.NewAuthService(api, store, logger),
		services.NewOnboardingService(api, store, cfg.OptimisticCompletion, logger),
		services.NewAnalyticsService(api),
		os.Stdin, os.Stdout, logger,
	)
	app.terminal = term.IsTerminal(int(os.Stdin.Fd()))
	if closer != nil {
		app.closers = append(app.closers, closer)
	}
	return app, nil
}

func newApp(auth services.AuthService, onboarding services.OnboardingService, analytics services.AnalyticsService,
	in io.Reader, out io.Writer, logger logging.Logger) *App {
	return &App{
		auth:       auth,
		onboarding: onboarding,
		analytics:  analytics,
		resolver:   flow.NewResolver(auth),
		logger:     logger,
		reader:     bufio.NewReader(in),
		out:        out,
	}
}

func openStore(ctx context.Context, cfg *config.Config) (metadata.Repository, io.Closer, error) {
	switch cfg.StoreBackend {
	case config.StoreMemory:
		return metadata.NewMemoryRepository(), nil, nil
	case config.StoreSQLite:
		db, err := client.InitDatabase(ctx, cfg.StorePath)
		if err != nil {
			return nil, nil, fmt.Errorf("open store: %w", err)
		}
		return metadata.NewSQLiteRepository(db), db, nil
	}
	return nil, nil, fmt.Errorf("unknown store backend %q", cfg.StoreBackend)
}

// Run greets the user and runs the REPL until exit or end of input.
func (a *App) Run(ctx context.Context) error {
	defer a.Close(ctx)

	fmt.Fprintln(a.out, "Welcome to SleepCoach (type 'help' for commands)")
	if p, ok := a.auth.CachedProfile(ctx); ok && a.auth.HasToken(ctx) {
		fmt.Fprintf(a.out, "Signed in as %s. Type 'resume' to continue.\n", p.Nickname)
	}

	runREPL(ctx, a, a.promptStatus, a.reader, a.out)
	return nil
}

// Close releases the API client and the local store.
func (a *App) Close(ctx context.Context) error {
	errs := []error{a.auth.Close(ctx)}
	for _, c := range a.closers {
		errs = append(errs, c.Close())
	}
	return errors.Join(errs...)
}

func (a *App) promptStatus() string {
	ctx := context.Background()
	if !a.auth.HasToken(ctx) {
		return ""
	}
	if p, ok := a.auth.CachedProfile(ctx); ok {
		return "(" + p.Nickname + ")"
	}
	return ""
}
