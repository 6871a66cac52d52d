package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	qrcode "github.com/skip2/go-qrcode"

	"github.com/youthblossom/canopy/internal/store"
)

// GET /api/youths/{id}/qr.png
//
// Renders a QR of the attendance form URL for one youth, so a leader scanning
// a printed card at the door lands on the record-attendance dialog pre-filled.
func YouthQR(youths *store.YouthStore) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := chi.URLParam(r, "id")

		youth, err := youths.Get(id)
		if err != nil {
			writeMessage(w, http.StatusInternalServerError, "lookup failed")
			return
		}
		if youth == nil {
			writeMessage(w, http.StatusNotFound, "Youth not found")
			return
		}

		url := "http://" + r.Host + "/attendance/new?youthId=" + youth.ID
		png, err := qrcode.Encode(url, qrcode.Medium, 256)
		if err != nil {
			writeMessage(w, http.StatusInternalServerError, "failed to generate qr")
			return
		}
		w.Header().Set("Content-Type", "image/png")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write(png)
	}
}
