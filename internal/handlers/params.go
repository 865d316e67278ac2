package handlers

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
)

// courseIDFromRequest parses the {id} route parameter.
// A non-numeric id cannot reference any course, so callers treat the
// error as not found.
func courseIDFromRequest(r *http.Request) (int64, error) {
	return strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
}
