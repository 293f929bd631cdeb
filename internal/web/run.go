package web

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/vk/tfconsole/internal/runner"
)

// runRequest selects which fixed terraform action to execute and against
// which template.
type runRequest struct {
	Template string `json:"template"`
	Action   string `json:"action"`
}

// startRun launches a terraform action and returns immediately; progress
// is observed through /api/status. The run reads whatever tfvars content
// is on disk at launch time: there is no transaction between a save from
// one browser tab and a run started from another.
func (h *Handler) startRun(w http.ResponseWriter, r *http.Request) {
	var req runRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.writeError(w, http.StatusBadRequest, "malformed run request: %v", err)
		return
	}

	tmpl, ok := h.catalog.Get(req.Template)
	if !ok && h.catalog.Len() == 1 && req.Template == "" {
		tmpl, ok = h.catalog.List()[0], true
	}
	if !ok {
		h.writeError(w, http.StatusNotFound, "unknown template %q", req.Template)
		return
	}

	command, err := h.tool.Command(req.Action)
	if err != nil {
		h.writeError(w, http.StatusBadRequest, "%v", err)
		return
	}

	err = h.runner.Start(r.Context(), runner.Spec{
		Command:  command,
		Dir:      tmpl.Path,
		Template: tmpl.Name,
	})
	if errors.Is(err, runner.ErrAlreadyRunning) {
		h.writeError(w, http.StatusConflict, "%v", err)
		return
	}
	if err != nil {
		h.writeError(w, http.StatusInternalServerError, "failed to start run: %v", err)
		return
	}

	h.writeJSON(w, http.StatusAccepted, map[string]any{
		"started": true,
		"status":  h.runner.Snapshot(),
	})
}

// getStatus is the polling surface: a plain snapshot of the current run.
func (h *Handler) getStatus(w http.ResponseWriter, r *http.Request) {
	h.writeJSON(w, http.StatusOK, h.runner.Snapshot())
}

func (h *Handler) cancelRun(w http.ResponseWriter, r *http.Request) {
	cancelled := h.runner.Cancel()
	if !cancelled {
		h.writeError(w, http.StatusConflict, "no run in progress")
		return
	}
	h.writeJSON(w, http.StatusOK, map[string]any{"cancelled": true})
}

func (h *Handler) getDependencies(w http.ResponseWriter, r *http.Request) {
	h.writeJSON(w, http.StatusOK, map[string]any{
		"dependencies": []any{h.tool.Detect(r.Context())},
	})
}
