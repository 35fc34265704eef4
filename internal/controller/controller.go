package controller

import (
	"net/http"

	"github.com/lshigami/Lorikeets/internal/apperr"
)

// StatusForError maps the engine's error taxonomy to HTTP statuses:
// not-found -> 404, invalid-state -> 409, data-integrity -> 500 (server-side
// fault, never a user error). Anything untagged is a 500.
func StatusForError(err error) int {
	switch apperr.KindOf(err) {
	case apperr.KindNotFound:
		return http.StatusNotFound
	case apperr.KindInvalidState:
		return http.StatusConflict
	case apperr.KindDataIntegrity:
		return http.StatusInternalServerError
	default:
		return http.StatusInternalServerError
	}
}
