package services

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/youthblossom/canopy/internal/models"
	"github.com/youthblossom/canopy/internal/store"
)

// ErrNotFound is returned when an attendance submission references a youth or
// program that does not exist. Ingestion checks references up front, unlike
// the recalculation engine's silent skip: a bad submission must be rejected
// before anything is written.
var ErrNotFound = errors.New("related youth or program not found")

// AttendanceInput is a validated attendance submission. Enum fields have
// already been checked at the HTTP boundary.
type AttendanceInput struct {
	YouthID       string
	ProgramID     string
	Date          string
	Status        string
	Level         string
	Participated  bool
	ActivityNotes string
	FollowUpNotes string
	RecordedBy    string
}

// RecordAttendance appends a new attendance record and recalculates the
// youth's engagement fields, all inside one transaction: a failed ingestion
// leaves both the record store and the profile untouched.
func RecordAttendance(db *gorm.DB, in AttendanceInput) (*models.AttendanceRecord, error) {
	var rec *models.AttendanceRecord
	err := db.Transaction(func(tx *gorm.DB) error {
		youth, err := store.NewYouthStore(tx).Get(in.YouthID)
		if err != nil {
			return err
		}
		program, err := store.NewProgramStore(tx).Get(in.ProgramID)
		if err != nil {
			return err
		}
		if youth == nil || program == nil {
			return ErrNotFound
		}

		rec = &models.AttendanceRecord{
			ID:               uuid.NewString(),
			YouthID:          youth.ID,
			YouthName:        youth.FirstName + " " + youth.LastName,
			ProgramID:        program.ID,
			ProgramName:      program.Name,
			Date:             in.Date,
			AttendanceStatus: in.Status,
			EngagementLevel:  in.Level,
			Participated:     in.Participated,
			ActivityNotes:    in.ActivityNotes,
			FollowUpNotes:    in.FollowUpNotes,
			RecordedAt:       time.Now().UTC(),
			RecordedBy:       in.RecordedBy,
		}
		if err := store.NewAttendanceStore(tx).Append(rec); err != nil {
			return err
		}
		return RecalculateYouthEngagement(tx, youth.ID)
	})
	if err != nil {
		return nil, err
	}
	return rec, nil
}
