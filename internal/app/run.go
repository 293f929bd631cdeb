package app

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/vk/tfconsole/internal/web"
)

// Run starts the console API server and blocks until ctx is cancelled,
// then shuts the server down gracefully. The deployment runner keeps its
// own lifecycle: a run in flight at shutdown is killed with the process.
func (a *App) Run(ctx context.Context) error {
	handler := web.NewHandler(a.logger, a.catalog, a.runner, a.tool)

	server := &http.Server{
		Addr:    a.config.Listen,
		Handler: handler.Routes(),
	}

	for _, tmpl := range a.catalog.List() {
		a.logger.Info("Template available.", "name", tmpl.Name, "path", tmpl.Path)
	}
	dep := a.tool.Detect(ctx)
	if dep.Installed {
		a.logger.Info("Provisioning tool found.", "binary", dep.Name, "version", dep.Version)
	} else {
		a.logger.Warn("Provisioning tool not found on PATH; runs will fail until it is installed.",
			"binary", dep.Name, "install_url", dep.InstallURL)
	}

	errChan := make(chan error, 1)
	go func() {
		a.logger.Info("Console server starting.", "address", a.config.Listen)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errChan <- err
			return
		}
		errChan <- nil
	}()

	select {
	case err := <-errChan:
		return err
	case <-ctx.Done():
	}

	a.logger.Info("Shutting down console server...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		a.logger.Error("Console server shutdown failed.", "error", err)
		return err
	}
	a.logger.Debug("Console server shut down gracefully.")
	return nil
}
