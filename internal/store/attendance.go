package store

import (
	"gorm.io/gorm"

	"github.com/youthblossom/canopy/internal/models"
)

// AttendanceStore is append-only: records are never updated or deleted once
// written, and every recalculation reads the full history back out.
type AttendanceStore struct {
	db *gorm.DB
}

func NewAttendanceStore(db *gorm.DB) *AttendanceStore {
	return &AttendanceStore{db: db}
}

func (s *AttendanceStore) Append(rec *models.AttendanceRecord) error {
	return s.db.Create(rec).Error
}

// FindByYouth returns every record for a youth. Order is unspecified; callers
// that care (the engagement engine) sort for themselves.
func (s *AttendanceStore) FindByYouth(youthID string) ([]models.AttendanceRecord, error) {
	var recs []models.AttendanceRecord
	err := s.db.Where("youth_id = ?", youthID).Find(&recs).Error
	return recs, err
}

// Filter lists records newest-first, optionally narrowed by youth and/or
// program. Empty filter values match everything.
func (s *AttendanceStore) Filter(youthID, programID string) ([]models.AttendanceRecord, error) {
	q := s.db.Order("recorded_at DESC, id DESC")
	if youthID != "" {
		q = q.Where("youth_id = ?", youthID)
	}
	if programID != "" {
		q = q.Where("program_id = ?", programID)
	}
	var recs []models.AttendanceRecord
	err := q.Find(&recs).Error
	return recs, err
}

func (s *AttendanceStore) Count() (int64, error) {
	var n int64
	err := s.db.Model(&models.AttendanceRecord{}).Count(&n).Error
	return n, err
}
