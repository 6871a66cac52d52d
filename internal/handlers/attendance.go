package handlers

import (
	"errors"
	"net/http"

	"gorm.io/gorm"

	"github.com/youthblossom/canopy/internal/services"
	"github.com/youthblossom/canopy/internal/store"
)

type attendanceRequest struct {
	YouthID      string `json:"youthId" validate:"required"`
	ProgramID    string `json:"programId" validate:"required"`
	Date         string `json:"date" validate:"required"`
	Status       string `json:"attendanceStatus" validate:"required,oneof=present late absent excused"`
	Level        string `json:"engagementLevel" validate:"required,oneof=very_high high medium low none"`
	Participated *bool  `json:"participatedInActivity" validate:"required"`
	ActivityNote string `json:"activityNotes"`
	FollowUpNote string `json:"followUpNotes"`
}

// GET /api/attendance?youthId=&programId=
func ListAttendance(attendance *store.AttendanceStore) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		recs, err := attendance.Filter(q.Get("youthId"), q.Get("programId"))
		if err != nil {
			writeMessage(w, http.StatusInternalServerError, "query failed")
			return
		}
		writeJSON(w, http.StatusOK, recs)
	}
}

// POST /api/attendance
func CreateAttendance(db *gorm.DB) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req attendanceRequest
		if !decodeValid(w, r, &req) {
			return
		}

		recordedBy := ""
		if user := CurrentUser(r); user != nil {
			recordedBy = user.Name
		}

		rec, err := services.RecordAttendance(db, services.AttendanceInput{
			YouthID:       req.YouthID,
			ProgramID:     req.ProgramID,
			Date:          req.Date,
			Status:        req.Status,
			Level:         req.Level,
			Participated:  *req.Participated,
			ActivityNotes: req.ActivityNote,
			FollowUpNotes: req.FollowUpNote,
			RecordedBy:    recordedBy,
		})
		if err != nil {
			if errors.Is(err, services.ErrNotFound) {
				writeMessage(w, http.StatusNotFound, "Related youth or program not found")
				return
			}
			writeMessage(w, http.StatusInternalServerError, "could not record attendance")
			return
		}
		writeJSON(w, http.StatusCreated, rec)
	}
}
