// Package web exposes the console's JSON boundary: template listing,
// configuration load/save, run control, and status observation. It renders
// no HTML; the pages that consume this API live outside the core.
package web

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/gorilla/websocket"

	"github.com/vk/tfconsole/internal/ctxlog"
	"github.com/vk/tfconsole/internal/runner"
	"github.com/vk/tfconsole/internal/template"
	"github.com/vk/tfconsole/internal/terraform"
	"github.com/vk/tfconsole/internal/tfvars"
)

// Handler serves the console API. All mutable state lives in the injected
// collaborators; the handler itself is stateless.
type Handler struct {
	logger   *slog.Logger
	catalog  *template.Catalog
	runner   *runner.Runner
	tool     terraform.Tool
	upgrader websocket.Upgrader
}

// NewHandler wires the API against its collaborators.
func NewHandler(logger *slog.Logger, catalog *template.Catalog, run *runner.Runner, tool terraform.Tool) *Handler {
	return &Handler{
		logger:  logger,
		catalog: catalog,
		runner:  run,
		tool:    tool,
		// The console serves a local operator; same-host pages are the
		// only expected origin.
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 4096,
		},
	}
}

// Routes returns the full route table.
func (h *Handler) Routes() *http.ServeMux {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /health", h.health)
	mux.HandleFunc("GET /api/templates", h.listTemplates)
	mux.HandleFunc("GET /api/config", h.getConfig)
	mux.HandleFunc("POST /api/config", h.saveConfig)
	mux.HandleFunc("GET /api/config/defaults", h.getDefaults)
	mux.HandleFunc("POST /api/run", h.startRun)
	mux.HandleFunc("POST /api/run/cancel", h.cancelRun)
	mux.HandleFunc("GET /api/status", h.getStatus)
	mux.HandleFunc("GET /api/status/ws", h.streamStatus)
	mux.HandleFunc("GET /api/dependencies", h.getDependencies)
	return mux
}

func (h *Handler) health(w http.ResponseWriter, r *http.Request) {
	h.logger.Debug("Health check endpoint hit.", "remote_addr", r.RemoteAddr)
	w.WriteHeader(http.StatusOK)
	w.Write([]byte("OK\n"))
}

func (h *Handler) listTemplates(w http.ResponseWriter, r *http.Request) {
	h.writeJSON(w, http.StatusOK, map[string]any{
		"templates": h.catalog.List(),
	})
}

// lookupTemplate resolves the ?template= query parameter, defaulting to
// the sole entry when the catalog holds exactly one.
func (h *Handler) lookupTemplate(w http.ResponseWriter, r *http.Request) (template.Template, bool) {
	name := r.FormValue("template")
	if name == "" && h.catalog.Len() == 1 {
		return h.catalog.List()[0], true
	}
	tmpl, ok := h.catalog.Get(name)
	if !ok {
		h.writeError(w, http.StatusNotFound, "unknown template %q", name)
		return template.Template{}, false
	}
	return tmpl, true
}

// field is one configuration variable in a JSON response, carrying enough
// shape information for a form renderer to pick a widget.
type field struct {
	Name  string `json:"name"`
	Kind  string `json:"kind"`
	Value any    `json:"value"`
}

func configFields(f *tfvars.File) []field {
	fields := make([]field, 0, f.Len())
	for _, name := range f.Names() {
		v, _ := f.Get(name)
		fields = append(fields, field{Name: name, Kind: v.Kind.String(), Value: v.Interface()})
	}
	return fields
}

func (h *Handler) getConfig(w http.ResponseWriter, r *http.Request) {
	tmpl, ok := h.lookupTemplate(w, r)
	if !ok {
		return
	}
	f, err := tfvars.NewStore(tmpl.TfvarsPath).Load()
	if err != nil {
		h.writeError(w, http.StatusInternalServerError, "failed to load configuration: %v", err)
		return
	}
	h.writeJSON(w, http.StatusOK, map[string]any{
		"template": tmpl.Name,
		"fields":   configFields(f),
	})
}

// saveConfig merges submitted form fields into the template's variables
// file and writes it back. Parse warnings from strict validation of the
// saved content are returned alongside, not treated as failure.
func (h *Handler) saveConfig(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		h.writeError(w, http.StatusBadRequest, "malformed form body: %v", err)
		return
	}
	tmpl, ok := h.lookupTemplate(w, r)
	if !ok {
		return
	}

	ctx := ctxlog.WithLogger(r.Context(), h.logger)
	store := tfvars.NewStore(tmpl.TfvarsPath)
	f, err := store.Load()
	if err != nil {
		h.writeError(w, http.StatusInternalServerError, "failed to load configuration: %v", err)
		return
	}
	tfvars.MergeForm(ctx, f, r.PostForm)
	if err := store.Save(f); err != nil {
		h.writeError(w, http.StatusInternalServerError, "failed to save configuration: %v", err)
		return
	}
	h.logger.Info("Configuration saved.", "template", tmpl.Name, "fields", f.Len())

	warnings := tfvars.Validate(template.VarsFileName, f.Serialize())
	h.writeJSON(w, http.StatusOK, map[string]any{
		"saved":    true,
		"template": tmpl.Name,
		"fields":   configFields(f),
		"warnings": warnings,
	})
}

// getDefaults serves a scaffolded variables file for the template, with
// values blanked or replaced by placeholders.
func (h *Handler) getDefaults(w http.ResponseWriter, r *http.Request) {
	tmpl, ok := h.lookupTemplate(w, r)
	if !ok {
		return
	}
	f, err := tfvars.NewStore(tmpl.TfvarsPath).Load()
	if err != nil {
		h.writeError(w, http.StatusInternalServerError, "failed to load configuration: %v", err)
		return
	}
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	w.Write(tfvars.DefaultsFor(f).Serialize())
}

func (h *Handler) writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		h.logger.Error("Failed to encode response.", "error", err)
	}
}

func (h *Handler) writeError(w http.ResponseWriter, status int, format string, args ...any) {
	msg := fmt.Sprintf(format, args...)
	h.logger.Warn("Request failed.", "status", status, "error", msg)
	h.writeJSON(w, status, map[string]string{"error": msg})
}
