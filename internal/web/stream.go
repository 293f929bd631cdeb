package web

import (
	"net/http"
	"time"
)

// streamInterval is how often status snapshots are pushed to a connected
// client while a run is in flight.
const streamInterval = 2 * time.Second

// streamStatus upgrades the connection to a websocket and pushes status
// snapshots until the run finishes. The final snapshot, with Running false
// and the outcome set, is always delivered before the connection closes,
// so a page can subscribe instead of polling /api/status.
func (h *Handler) streamStatus(w http.ResponseWriter, r *http.Request) {
	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		// Upgrade has already written the HTTP error response.
		h.logger.Warn("Websocket upgrade failed.", "remote_addr", r.RemoteAddr, "error", err)
		return
	}
	defer conn.Close()
	h.logger.Debug("Status stream opened.", "remote_addr", r.RemoteAddr)

	ticker := time.NewTicker(streamInterval)
	defer ticker.Stop()

	for {
		st := h.runner.Snapshot()
		conn.SetWriteDeadline(time.Now().Add(10 * time.Second))
		if err := conn.WriteJSON(st); err != nil {
			h.logger.Debug("Status stream client went away.", "error", err)
			return
		}
		if !st.Running {
			return
		}
		select {
		case <-ticker.C:
		case <-r.Context().Done():
			return
		}
	}
}
