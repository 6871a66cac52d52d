package store

import (
	"errors"

	"gorm.io/gorm"

	"github.com/youthblossom/canopy/internal/models"
)

type ProgramStore struct {
	db *gorm.DB
}

func NewProgramStore(db *gorm.DB) *ProgramStore {
	return &ProgramStore{db: db}
}

// Get returns (nil, nil) for an unknown id.
func (s *ProgramStore) Get(id string) (*models.Program, error) {
	var p models.Program
	if err := s.db.First(&p, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &p, nil
}

func (s *ProgramStore) List() ([]models.Program, error) {
	var programs []models.Program
	err := s.db.Order("name ASC").Find(&programs).Error
	return programs, err
}

func (s *ProgramStore) Count() (int64, error) {
	var n int64
	err := s.db.Model(&models.Program{}).Count(&n).Error
	return n, err
}
