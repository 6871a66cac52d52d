package handlers

import (
	"net/http"

	"github.com/youthblossom/canopy/internal/store"
)

// GET /api/programs
func ListPrograms(programs *store.ProgramStore) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		list, err := programs.List()
		if err != nil {
			writeMessage(w, http.StatusInternalServerError, "query failed")
			return
		}
		writeJSON(w, http.StatusOK, list)
	}
}
