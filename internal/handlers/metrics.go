package handlers

import (
	"math"
	"net/http"

	"github.com/youthblossom/canopy/internal/store"
)

type dashboardMetrics struct {
	ActiveYouths      int64 `json:"activeYouths"`
	AtRiskYouths      int64 `json:"atRiskYouths"`
	TotalPrograms     int64 `json:"totalPrograms"`
	AttendanceRecords int64 `json:"attendanceRecords"`
	AvgEngagement     int   `json:"avgEngagement"`
	AvgAttendance     int   `json:"avgAttendance"`
}

// GET /api/dashboard/metrics
//
// At-risk counts both "at-risk" and "disengaged" youths: the dashboard card
// is a follow-up triage number, not a band count.
func DashboardMetrics(youths *store.YouthStore, programs *store.ProgramStore, attendance *store.AttendanceStore) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		sum, err := youths.Summary()
		if err != nil {
			writeMessage(w, http.StatusInternalServerError, "query failed")
			return
		}
		nPrograms, err := programs.Count()
		if err != nil {
			writeMessage(w, http.StatusInternalServerError, "query failed")
			return
		}
		nRecords, err := attendance.Count()
		if err != nil {
			writeMessage(w, http.StatusInternalServerError, "query failed")
			return
		}

		m := dashboardMetrics{
			ActiveYouths:      sum.Active,
			AtRiskYouths:      sum.AtRisk,
			TotalPrograms:     nPrograms,
			AttendanceRecords: nRecords,
		}
		if sum.Total > 0 {
			m.AvgEngagement = int(math.Round(float64(sum.SumEngagementScore) / float64(sum.Total)))
			m.AvgAttendance = int(math.Round(float64(sum.SumAttendanceRate) / float64(sum.Total)))
		}
		writeJSON(w, http.StatusOK, m)
	}
}
