package app

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/raysh454/reportview/internal/cli"
	"github.com/raysh454/reportview/internal/logging"
	"github.com/raysh454/reportview/internal/reportapi"
	"github.com/raysh454/reportview/internal/server"
	"github.com/raysh454/reportview/internal/view"
	"github.com/raysh454/reportview/internal/webclient"
)

// Application is the global runtime state container.
// It holds config, parsed CLI args and the components built from them.
// Pass Application into modules that need access to the global state
// rather than using package-level variables.
type Application struct {
	Config *Config
	Args   *cli.CLIArgs
	Logger logging.Logger

	WebClient *webclient.NetHTTPClient
	Client    *reportapi.Client
	View      *view.View
	Server    *server.Server
}

// NewApplication wires every component from cfg. It fails fast when the
// report API configuration is incomplete, before any request is sent.
func NewApplication(cfg *Config, args *cli.CLIArgs, logger logging.Logger) (*Application, error) {
	if cfg == nil {
		return nil, errors.New("config is nil")
	}
	if logger == nil {
		logger = logging.NewStdoutLogger("reportview")
	}

	wc := webclient.NewNetHTTPClient(cfg.WebClientCfg, logger, nil)

	client, err := reportapi.NewClient(cfg.ReportAPICfg, wc, logger)
	if err != nil {
		return nil, fmt.Errorf("creating report api client: %w", err)
	}

	v := view.New(client, logger)

	srv, err := server.NewServer(cfg.ServerCfg, v, logger)
	if err != nil {
		return nil, fmt.Errorf("creating server: %w", err)
	}

	return &Application{
		Config:    cfg,
		Args:      args,
		Logger:    logger,
		WebClient: wc,
		Client:    client,
		View:      v,
		Server:    srv,
	}, nil
}

// Run serves HTTP until ctx is canceled, then shuts down gracefully.
func (a *Application) Run(ctx context.Context) error {
	if a == nil {
		return errors.New("application is nil")
	}
	httpSrv := a.Server.HTTPServer()

	errCh := make(chan error, 1)
	go func() {
		a.Logger.Info("listening",
			logging.Field{Key: "addr", Value: httpSrv.Addr},
			logging.Field{Key: "report_api", Value: a.Client.BaseURL()})
		if err := httpSrv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	a.Logger.Info("application shutdown initiated")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := httpSrv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutting down http server: %w", err)
	}
	return a.Close()
}

// Close releases the transport.
func (a *Application) Close() error {
	if a == nil || a.WebClient == nil {
		return nil
	}
	return a.WebClient.Close()
}
