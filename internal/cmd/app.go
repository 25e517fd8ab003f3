package cmd

import (
	"fmt"

	"github.com/Ivaneres/coffee/internal/api"
	"github.com/Ivaneres/coffee/internal/config"
	"github.com/Ivaneres/coffee/internal/errors"
	"github.com/Ivaneres/coffee/internal/logging"
	"github.com/Ivaneres/coffee/internal/session"
)

// appContext bundles the wired client stack for command Run funcs.
type appContext struct {
	cfg     *config.Config
	logger  *logging.Logger
	session *session.Session
	client  *api.Client
}

// buildApp loads configuration and wires logger, token store, session and
// API client. The session is created before the client so it can serve as
// the client's token source; the client is then handed back to the session
// for login and user fetches.
func buildApp() (*appContext, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	logger := logging.Discard()
	if cfg.Logging.Enabled {
		logger, err = logging.NewLogger(cfg.Paths.ResolveLogDir(), cfg.Logging.Level)
		if err != nil {
			return nil, fmt.Errorf("failed to create logger: %w", err)
		}
	}

	store, err := session.NewFileTokenStore(cfg.Paths.ResolveTokenFile())
	if err != nil {
		return nil, fmt.Errorf("failed to open token store: %w", err)
	}
	sess := session.New(store, logger)

	client, err := api.New(cfg.Server.BaseURL,
		api.WithTokenSource(sess),
		api.WithTimeout(cfg.Server.Timeout()),
		api.WithLogger(logger),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create API client: %w", err)
	}
	sess.SetAuth(client)
	sess.Restore()

	return &appContext{cfg: cfg, logger: logger, session: sess, client: client}, nil
}

func (a *appContext) close() {
	_ = a.logger.Close()
}

// requireAuth guards subcommands that need a stored token.
func (a *appContext) requireAuth() error {
	if !a.session.Authenticated() {
		return errors.Wrap(errors.ErrNotAuthenticated, "not logged in, run 'coffee login' first")
	}
	return nil
}
