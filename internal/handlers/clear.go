package handlers

import "net/http"

// NewClearHandler returns an HTTP handler for the /clear endpoint.
// The endpoint predates the current session schema and used to touch
// keys the session store no longer has. It is kept as a no-op so clients
// that still call it keep working; it never touches session state.
// @Summary Clear (vestigial)
// @Description No-op kept for client compatibility.
// @Tags auth
// @Success 204 "Nothing to clear"
// @Router /clear [delete]
func NewClearHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	}
}
