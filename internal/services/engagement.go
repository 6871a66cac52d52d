package services

import (
	"math"

	"gorm.io/gorm"

	"github.com/youthblossom/canopy/internal/models"
	"github.com/youthblossom/canopy/internal/store"
)

// Weight of each attendance status toward the attendance score.
var statusWeight = map[string]float64{
	"present": 1.0,
	"late":    0.75,
	"excused": 0.5,
	"absent":  0.0,
}

// Weight of each engagement level toward the activity score.
var engagementWeight = map[string]float64{
	"very_high": 1.0,
	"high":      0.85,
	"medium":    0.65,
	"low":       0.35,
	"none":      0.0,
}

// EngagementResult holds the four derived profile fields computed from a
// youth's attendance history.
type EngagementResult struct {
	AttendanceRate   int
	EngagementScore  int
	EngagementStatus string
	LastAttendance   string
}

// ComputeEngagement derives the scoring fields from a non-empty history:
//   - attendance score: mean of the status weights
//   - activity score: mean of the engagement-level weights
//   - engagement score: 60/40 blend of the two, as a rounded percentage
//   - status bands: >=70 engaged, >=40 at-risk, else disengaged
//
// LastAttendance is the latest calendar date in the history; equal dates are
// broken by later RecordedAt, then by record id, so the result is stable for
// a fixed input.
func ComputeEngagement(history []models.AttendanceRecord) EngagementResult {
	var statusSum, levelSum float64
	last := history[0]
	for _, rec := range history {
		statusSum += statusWeight[rec.AttendanceStatus]
		levelSum += engagementWeight[rec.EngagementLevel]
		if moreRecent(rec, last) {
			last = rec
		}
	}
	n := float64(len(history))
	attendanceScore := statusSum / n
	activityScore := levelSum / n

	// math.Round is half-away-from-zero; both scores are non-negative.
	score := int(math.Round((attendanceScore*0.6 + activityScore*0.4) * 100))

	status := "disengaged"
	switch {
	case score >= 70:
		status = "engaged"
	case score >= 40:
		status = "at-risk"
	}

	return EngagementResult{
		AttendanceRate:   int(math.Round(attendanceScore * 100)),
		EngagementScore:  score,
		EngagementStatus: status,
		LastAttendance:   last.Date,
	}
}

// ISO dates order lexicographically, so no parsing is needed.
func moreRecent(a, b models.AttendanceRecord) bool {
	if a.Date != b.Date {
		return a.Date > b.Date
	}
	if !a.RecordedAt.Equal(b.RecordedAt) {
		return a.RecordedAt.After(b.RecordedAt)
	}
	return a.ID > b.ID
}

// RecalculateYouthEngagement recomputes the derived profile fields for one
// youth from their full attendance history and writes them back in a single
// update. An unknown youth or an empty history is a silent no-op: the engine
// may run against stale or partial data and degrades to doing nothing rather
// than erroring. Only storage failures are reported.
func RecalculateYouthEngagement(tx *gorm.DB, youthID string) error {
	youths := store.NewYouthStore(tx)

	youth, err := youths.Get(youthID)
	if err != nil {
		return err
	}
	if youth == nil {
		return nil
	}

	history, err := store.NewAttendanceStore(tx).FindByYouth(youthID)
	if err != nil {
		return err
	}
	if len(history) == 0 {
		return nil
	}

	res := ComputeEngagement(history)
	return youths.ApplyEngagementUpdate(youthID, store.EngagementUpdate{
		AttendanceRate:   res.AttendanceRate,
		EngagementScore:  res.EngagementScore,
		EngagementStatus: res.EngagementStatus,
		LastAttendance:   res.LastAttendance,
	})
}
