package app

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/vk/tfconsole/internal/runner"
	"github.com/vk/tfconsole/internal/template"
	"github.com/vk/tfconsole/internal/terraform"
)

// App encapsulates the console's dependencies, configuration, and
// lifecycle. All collaborators are owned here and injected downward; there
// are no package-level singletons.
type App struct {
	outW    io.Writer
	logger  *slog.Logger
	config  *Config
	catalog *template.Catalog
	runner  *runner.Runner
	tool    terraform.Tool
}

// NewApp is the constructor for the main application. It returns a fully
// initialized App instance, including its own isolated logger and the
// template catalog discovered under the configured root.
func NewApp(outW io.Writer, config *Config) (*App, error) {
	logger := newLogger(config.LogLevel, config.LogFormat, outW)
	logger.Debug("Logger configured successfully.")

	catalog, err := template.Discover(config.TemplateRoot)
	if err != nil {
		return nil, fmt.Errorf("failed to discover templates: %w", err)
	}
	if catalog.Len() == 0 {
		return nil, fmt.Errorf("no template with a %s file found under %s", template.VarsFileName, config.TemplateRoot)
	}
	logger.Debug("Template catalog built.", "count", catalog.Len())

	return &App{
		outW:    outW,
		logger:  logger,
		config:  config,
		catalog: catalog,
		runner:  runner.New(logger),
		tool:    terraform.NewTool(config.TerraformBinary),
	}, nil
}

// Catalog returns the discovered template catalog. This is primarily for
// testing.
func (a *App) Catalog() *template.Catalog {
	return a.catalog
}

// Runner returns the application's deployment runner. This is primarily
// for testing.
func (a *App) Runner() *runner.Runner {
	return a.runner
}
