package models

import "time"

// Role: "admin", "leader", "volunteer"
type User struct {
	ID        string    `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time `json:"-"`
	UpdatedAt time.Time `json:"-"`

	Email        string `gorm:"uniqueIndex;not null" json:"email"`
	Name         string `json:"name"`
	PasswordHash string `json:"-"`
	Role         string `json:"role"`
}

// Youth is the profile aggregate. AttendanceRate, EngagementScore,
// EngagementStatus and LastAttendance are derived fields owned by the
// engagement recalculation in services; everything else belongs to the
// profile-editing endpoints.
type Youth struct {
	ID        string    `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time `json:"-"`
	UpdatedAt time.Time `json:"-"`

	FirstName       string   `json:"firstName"`
	LastName        string   `json:"lastName"`
	Email           string   `json:"email"`
	Phone           string   `json:"phone"`
	DateOfBirth     string   `json:"dateOfBirth"` // ISO date, no time component
	Gender          string   `json:"gender"`      // male | female
	Address         string   `json:"address"`
	EducationStatus string   `json:"educationStatus"` // high_school | college | working | unemployed
	Occupation      string   `json:"occupation,omitempty"`
	JoinDate        string   `json:"joinDate"`
	Status          string   `json:"status"` // active | inactive
	SmallGroup      string   `json:"smallGroup,omitempty"`
	Mentor          string   `json:"mentor,omitempty"`
	LeadershipLevel string   `json:"leadershipLevel"`    // none | emerging | developing | established
	Discipleship    string   `gorm:"column:discipleship_status" json:"discipleshipStatus"` // new_believer | growing | mature | leader
	Notes           string   `json:"notes,omitempty"`
	MinistryAreas   []string `gorm:"serializer:json" json:"ministryAreas"`
	AgeGroup        string   `json:"ageGroup"` // 13-15 | 16-18 | 19-24 | 25-30

	AttendanceRate   int    `json:"attendanceRate"`                // 0-100
	EngagementScore  int    `json:"engagementScore"`               // 0-100
	EngagementStatus string `json:"engagementStatus"`              // engaged | at-risk | disengaged
	LastAttendance   string `json:"lastAttendance,omitempty"`      // ISO date of most recent record
}

type Program struct {
	ID        string    `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time `json:"-"`
	UpdatedAt time.Time `json:"-"`

	Name         string `json:"name"`
	Description  string `json:"description"`
	Category     string `json:"category"` // worship | discipleship | outreach | fellowship | leadership | sabbath_school
	StartDate    string `json:"startDate"`
	EndDate      string `json:"endDate,omitempty"`
	IsActive     bool   `json:"isActive"`
	Participants int    `gorm:"column:participant_count" json:"participantCount"`
	MaxCapacity  int    `json:"maxCapacity,omitempty"`
	Leader       string `json:"leader"`
	Schedule     string `json:"schedule"`
	ScheduleType string `json:"scheduleType"` // sabbath | weekday | special
	AvgAttend    int    `gorm:"column:average_attendance" json:"averageAttendance"`
	Engagement   int    `gorm:"column:engagement_score" json:"engagementScore"`
}

// AttendanceRecord is append-only: once created it is never mutated or
// deleted, and recalculation always re-derives from the full set of records
// for a youth rather than from deltas.
type AttendanceRecord struct {
	ID string `gorm:"primaryKey" json:"id"`

	YouthID     string `gorm:"index;not null" json:"youthId"`
	YouthName   string `json:"youthName"`
	ProgramID   string `gorm:"index;not null" json:"programId"`
	ProgramName string `json:"programName"`

	Date             string `json:"date"`             // calendar date of the activity, not of entry
	AttendanceStatus string `json:"attendanceStatus"` // present | late | absent | excused
	EngagementLevel  string `json:"engagementLevel"`  // very_high | high | medium | low | none
	Participated     bool   `gorm:"column:participated_in_activity" json:"participatedInActivity"`
	ActivityNotes    string `json:"activityNotes,omitempty"`
	FollowUpNotes    string `json:"followUpNotes,omitempty"`

	RecordedAt time.Time `json:"recordedAt"`
	RecordedBy string    `json:"recordedBy,omitempty"`
}
