package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/youthblossom/canopy/internal/models"
	"github.com/youthblossom/canopy/internal/store"
)

type youthCreateRequest struct {
	FirstName       string   `json:"firstName" validate:"required"`
	LastName        string   `json:"lastName" validate:"required"`
	Email           string   `json:"email" validate:"required,email"`
	Phone           string   `json:"phone" validate:"required"`
	DateOfBirth     string   `json:"dateOfBirth" validate:"required"`
	Gender          string   `json:"gender" validate:"required,oneof=male female"`
	Address         string   `json:"address" validate:"required"`
	EducationStatus string   `json:"educationStatus" validate:"required,oneof=high_school college working unemployed"`
	Occupation      string   `json:"occupation"`
	JoinDate        string   `json:"joinDate" validate:"required"`
	Status          string   `json:"status" validate:"omitempty,oneof=active inactive"`
	SmallGroup      string   `json:"smallGroup"`
	Mentor          string   `json:"mentor"`
	LeadershipLevel string   `json:"leadershipLevel" validate:"omitempty,oneof=none emerging developing established"`
	Discipleship    string   `json:"discipleshipStatus" validate:"omitempty,oneof=new_believer growing mature leader"`
	Notes           string   `json:"notes"`
	MinistryAreas   []string `json:"ministryAreas"`
	AgeGroup        string   `json:"ageGroup" validate:"required,oneof=13-15 16-18 19-24 25-30"`
}

// GET /api/youths?search=&status=&ageGroup=
func ListYouths(youths *store.YouthStore) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		list, err := youths.List(store.YouthFilter{
			Search:   q.Get("search"),
			Status:   q.Get("status"),
			AgeGroup: q.Get("ageGroup"),
		})
		if err != nil {
			writeMessage(w, http.StatusInternalServerError, "query failed")
			return
		}
		writeJSON(w, http.StatusOK, list)
	}
}

// POST /api/youths
func CreateYouth(youths *store.YouthStore) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req youthCreateRequest
		if !decodeValid(w, r, &req) {
			return
		}
		if req.Status == "" {
			req.Status = "active"
		}
		if req.LeadershipLevel == "" {
			req.LeadershipLevel = "none"
		}
		if req.Discipleship == "" {
			req.Discipleship = "growing"
		}
		if req.MinistryAreas == nil {
			req.MinistryAreas = []string{}
		}

		y := models.Youth{
			ID:              uuid.NewString(),
			FirstName:       req.FirstName,
			LastName:        req.LastName,
			Email:           req.Email,
			Phone:           req.Phone,
			DateOfBirth:     req.DateOfBirth,
			Gender:          req.Gender,
			Address:         req.Address,
			EducationStatus: req.EducationStatus,
			Occupation:      req.Occupation,
			JoinDate:        req.JoinDate,
			Status:          req.Status,
			SmallGroup:      req.SmallGroup,
			Mentor:          req.Mentor,
			LeadershipLevel: req.LeadershipLevel,
			Discipleship:    req.Discipleship,
			Notes:           req.Notes,
			MinistryAreas:   req.MinistryAreas,
			AgeGroup:        req.AgeGroup,
			// Derived fields start at zero until attendance is recorded.
			EngagementStatus: "disengaged",
		}
		if err := youths.Create(&y); err != nil {
			writeMessage(w, http.StatusInternalServerError, "create failed")
			return
		}
		writeJSON(w, http.StatusCreated, y)
	}
}

// Pointer fields so an absent key and an explicit zero can be told apart.
// The engine-owned derived fields are deliberately not updatable here.
type youthUpdateRequest struct {
	FirstName       *string   `json:"firstName" validate:"omitempty,min=1"`
	LastName        *string   `json:"lastName" validate:"omitempty,min=1"`
	Email           *string   `json:"email" validate:"omitempty,email"`
	Phone           *string   `json:"phone" validate:"omitempty,min=1"`
	DateOfBirth     *string   `json:"dateOfBirth" validate:"omitempty,min=1"`
	Gender          *string   `json:"gender" validate:"omitempty,oneof=male female"`
	Address         *string   `json:"address" validate:"omitempty,min=1"`
	EducationStatus *string   `json:"educationStatus" validate:"omitempty,oneof=high_school college working unemployed"`
	Occupation      *string   `json:"occupation"`
	JoinDate        *string   `json:"joinDate" validate:"omitempty,min=1"`
	Status          *string   `json:"status" validate:"omitempty,oneof=active inactive"`
	SmallGroup      *string   `json:"smallGroup"`
	Mentor          *string   `json:"mentor"`
	LeadershipLevel *string   `json:"leadershipLevel" validate:"omitempty,oneof=none emerging developing established"`
	Discipleship    *string   `json:"discipleshipStatus" validate:"omitempty,oneof=new_believer growing mature leader"`
	Notes           *string   `json:"notes"`
	MinistryAreas   *[]string `json:"ministryAreas"`
	AgeGroup        *string   `json:"ageGroup" validate:"omitempty,oneof=13-15 16-18 19-24 25-30"`
}

// PUT /api/youths/{id}
func UpdateYouth(youths *store.YouthStore) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req youthUpdateRequest
		if !decodeValid(w, r, &req) {
			return
		}

		youth, err := youths.Get(chi.URLParam(r, "id"))
		if err != nil {
			writeMessage(w, http.StatusInternalServerError, "lookup failed")
			return
		}
		if youth == nil {
			writeMessage(w, http.StatusNotFound, "Youth not found")
			return
		}

		applyString := func(dst *string, src *string) {
			if src != nil {
				*dst = *src
			}
		}
		applyString(&youth.FirstName, req.FirstName)
		applyString(&youth.LastName, req.LastName)
		applyString(&youth.Email, req.Email)
		applyString(&youth.Phone, req.Phone)
		applyString(&youth.DateOfBirth, req.DateOfBirth)
		applyString(&youth.Gender, req.Gender)
		applyString(&youth.Address, req.Address)
		applyString(&youth.EducationStatus, req.EducationStatus)
		applyString(&youth.Occupation, req.Occupation)
		applyString(&youth.JoinDate, req.JoinDate)
		applyString(&youth.Status, req.Status)
		applyString(&youth.SmallGroup, req.SmallGroup)
		applyString(&youth.Mentor, req.Mentor)
		applyString(&youth.LeadershipLevel, req.LeadershipLevel)
		applyString(&youth.Discipleship, req.Discipleship)
		applyString(&youth.Notes, req.Notes)
		applyString(&youth.AgeGroup, req.AgeGroup)
		if req.MinistryAreas != nil {
			youth.MinistryAreas = *req.MinistryAreas
		}

		if err := youths.Save(youth); err != nil {
			writeMessage(w, http.StatusInternalServerError, "update failed")
			return
		}
		writeJSON(w, http.StatusOK, youth)
	}
}

// DELETE /api/youths/{id}
func DeleteYouth(youths *store.YouthStore) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ok, err := youths.Delete(chi.URLParam(r, "id"))
		if err != nil {
			writeMessage(w, http.StatusInternalServerError, "delete failed")
			return
		}
		if !ok {
			writeMessage(w, http.StatusNotFound, "Youth not found")
			return
		}
		w.WriteHeader(http.StatusNoContent)
	}
}
