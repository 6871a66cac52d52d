package store

import (
	"errors"
	"strings"

	"gorm.io/gorm"

	"github.com/youthblossom/canopy/internal/models"
)

type YouthStore struct {
	db *gorm.DB
}

func NewYouthStore(db *gorm.DB) *YouthStore {
	return &YouthStore{db: db}
}

// Get returns (nil, nil) for an unknown id; only real query failures produce
// an error. Callers that need a not-found condition check for nil.
func (s *YouthStore) Get(id string) (*models.Youth, error) {
	var y models.Youth
	if err := s.db.First(&y, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &y, nil
}

// YouthFilter narrows List. Search matches full name or email,
// case-insensitive; empty fields match everything.
type YouthFilter struct {
	Search   string
	Status   string
	AgeGroup string
}

func (s *YouthStore) List(f YouthFilter) ([]models.Youth, error) {
	q := s.db.Order("created_at DESC, id DESC")
	if f.Search != "" {
		like := "%" + strings.ToLower(f.Search) + "%"
		q = q.Where("LOWER(first_name || ' ' || last_name) LIKE ? OR LOWER(email) LIKE ?", like, like)
	}
	if f.Status != "" {
		q = q.Where("status = ?", f.Status)
	}
	if f.AgeGroup != "" {
		q = q.Where("age_group = ?", f.AgeGroup)
	}
	var youths []models.Youth
	err := q.Find(&youths).Error
	return youths, err
}

func (s *YouthStore) Create(y *models.Youth) error {
	return s.db.Create(y).Error
}

func (s *YouthStore) Save(y *models.Youth) error {
	return s.db.Save(y).Error
}

// Delete reports whether a row was actually removed.
func (s *YouthStore) Delete(id string) (bool, error) {
	res := s.db.Delete(&models.Youth{}, "id = ?", id)
	return res.RowsAffected > 0, res.Error
}

// EngagementUpdate carries exactly the four derived fields the recalculation
// engine owns.
type EngagementUpdate struct {
	AttendanceRate   int
	EngagementScore  int
	EngagementStatus string
	LastAttendance   string
}

// ApplyEngagementUpdate writes the derived fields as one UPDATE. An unknown
// youth id matches zero rows and is silently ignored, matching the permissive
// behavior the recalculation engine relies on.
func (s *YouthStore) ApplyEngagementUpdate(id string, u EngagementUpdate) error {
	return s.db.Model(&models.Youth{}).Where("id = ?", id).Updates(map[string]any{
		"attendance_rate":   u.AttendanceRate,
		"engagement_score":  u.EngagementScore,
		"engagement_status": u.EngagementStatus,
		"last_attendance":   u.LastAttendance,
	}).Error
}

// EngagementSummary aggregates the youth table for the dashboard in a single
// round-trip instead of one COUNT per metric.
type EngagementSummary struct {
	Total              int64
	Active             int64
	AtRisk             int64
	SumEngagementScore int64
	SumAttendanceRate  int64
}

func (s *YouthStore) Summary() (EngagementSummary, error) {
	var sum EngagementSummary
	err := s.db.Model(&models.Youth{}).
		Select(`COUNT(*) AS total,
			COALESCE(SUM(CASE WHEN status = 'active' THEN 1 ELSE 0 END), 0) AS active,
			COALESCE(SUM(CASE WHEN engagement_status IN ('at-risk', 'disengaged') THEN 1 ELSE 0 END), 0) AS at_risk,
			COALESCE(SUM(engagement_score), 0) AS sum_engagement_score,
			COALESCE(SUM(attendance_rate), 0)  AS sum_attendance_rate`).
		Scan(&sum).Error
	return sum, err
}
