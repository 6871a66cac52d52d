package services

import (
	"path/filepath"
	"testing"
	"time"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/youthblossom/canopy/internal/models"
	"github.com/youthblossom/canopy/internal/store"
)

// openTestDB returns an isolated in-file SQLite database in a temp directory.
func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dir := t.TempDir()
	dsn := filepath.Join(dir, "test.db")
	gdb, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("open test db: %v", err)
	}
	if err := gdb.AutoMigrate(
		&models.User{},
		&models.Youth{},
		&models.Program{},
		&models.AttendanceRecord{},
	); err != nil {
		t.Fatalf("auto-migrate: %v", err)
	}
	return gdb
}

func rec(status, level, date string) models.AttendanceRecord {
	return models.AttendanceRecord{
		AttendanceStatus: status,
		EngagementLevel:  level,
		Date:             date,
	}
}

func TestComputeEngagement_SingleStrongRecord(t *testing.T) {
	// present/high: attendance 1.0, activity 0.85 → round(94) = 94, engaged.
	res := ComputeEngagement([]models.AttendanceRecord{rec("present", "high", "2026-01-10")})

	if res.AttendanceRate != 100 {
		t.Errorf("AttendanceRate: want 100, got %d", res.AttendanceRate)
	}
	if res.EngagementScore != 94 {
		t.Errorf("EngagementScore: want 94, got %d", res.EngagementScore)
	}
	if res.EngagementStatus != "engaged" {
		t.Errorf("EngagementStatus: want engaged, got %q", res.EngagementStatus)
	}
	if res.LastAttendance != "2026-01-10" {
		t.Errorf("LastAttendance: want 2026-01-10, got %q", res.LastAttendance)
	}
}

func TestComputeEngagement_MixedHistory(t *testing.T) {
	// (present,medium) + (absent,none): attendance 0.5, activity 0.325
	// → round((0.3+0.13)*100) = 43, at-risk.
	res := ComputeEngagement([]models.AttendanceRecord{
		rec("present", "medium", "2026-01-05"),
		rec("absent", "none", "2026-01-12"),
	})

	if res.AttendanceRate != 50 {
		t.Errorf("AttendanceRate: want 50, got %d", res.AttendanceRate)
	}
	if res.EngagementScore != 43 {
		t.Errorf("EngagementScore: want 43, got %d", res.EngagementScore)
	}
	if res.EngagementStatus != "at-risk" {
		t.Errorf("EngagementStatus: want at-risk, got %q", res.EngagementStatus)
	}
}

func TestComputeEngagement_ExcusedOnly(t *testing.T) {
	// excused/none: attendance 0.5, activity 0 → 30, disengaged.
	res := ComputeEngagement([]models.AttendanceRecord{rec("excused", "none", "2026-02-01")})

	if res.AttendanceRate != 50 {
		t.Errorf("AttendanceRate: want 50, got %d", res.AttendanceRate)
	}
	if res.EngagementScore != 30 {
		t.Errorf("EngagementScore: want 30, got %d", res.EngagementScore)
	}
	if res.EngagementStatus != "disengaged" {
		t.Errorf("EngagementStatus: want disengaged, got %q", res.EngagementStatus)
	}
}

// A raw score of x.5 must round away from zero, and a rounded score landing
// exactly on a band edge belongs to the upper band.
func TestComputeEngagement_HalfRoundingAtThreshold(t *testing.T) {
	// (present,high) + (late,none): attendance 0.875 → 87.5 → 88;
	// activity 0.425; blend 0.695 → 69.5 → 70, which is engaged.
	res := ComputeEngagement([]models.AttendanceRecord{
		rec("present", "high", "2026-03-01"),
		rec("late", "none", "2026-03-08"),
	})

	if res.AttendanceRate != 88 {
		t.Errorf("AttendanceRate: want 88, got %d", res.AttendanceRate)
	}
	if res.EngagementScore != 70 {
		t.Errorf("EngagementScore: want 70, got %d", res.EngagementScore)
	}
	if res.EngagementStatus != "engaged" {
		t.Errorf("EngagementStatus: want engaged, got %q", res.EngagementStatus)
	}
}

func TestComputeEngagement_LowerBandEdge(t *testing.T) {
	// absent/very_high: attendance 0, activity 1 → exactly 40 = at-risk.
	res := ComputeEngagement([]models.AttendanceRecord{rec("absent", "very_high", "2026-01-01")})

	if res.AttendanceRate != 0 {
		t.Errorf("AttendanceRate: want 0, got %d", res.AttendanceRate)
	}
	if res.EngagementScore != 40 {
		t.Errorf("EngagementScore: want 40, got %d", res.EngagementScore)
	}
	if res.EngagementStatus != "at-risk" {
		t.Errorf("EngagementStatus: want at-risk, got %q", res.EngagementStatus)
	}
}

func TestComputeEngagement_ScoresStayInBounds(t *testing.T) {
	histories := [][]models.AttendanceRecord{
		{rec("absent", "none", "2026-01-01")},
		{rec("present", "very_high", "2026-01-01")},
		{
			rec("present", "very_high", "2026-01-01"),
			rec("absent", "none", "2026-01-02"),
			rec("late", "low", "2026-01-03"),
			rec("excused", "medium", "2026-01-04"),
		},
	}
	for i, h := range histories {
		res := ComputeEngagement(h)
		if res.AttendanceRate < 0 || res.AttendanceRate > 100 {
			t.Errorf("history %d: AttendanceRate %d out of [0,100]", i, res.AttendanceRate)
		}
		if res.EngagementScore < 0 || res.EngagementScore > 100 {
			t.Errorf("history %d: EngagementScore %d out of [0,100]", i, res.EngagementScore)
		}
	}
}

func TestComputeEngagement_LastAttendanceByCalendarDate(t *testing.T) {
	// Insertion order must not matter, only the calendar date.
	a := rec("present", "high", "2026-01-05")
	b := rec("present", "high", "2026-01-26")

	for _, history := range [][]models.AttendanceRecord{{a, b}, {b, a}} {
		res := ComputeEngagement(history)
		if res.LastAttendance != "2026-01-26" {
			t.Errorf("LastAttendance: want 2026-01-26, got %q", res.LastAttendance)
		}
	}
}

func TestComputeEngagement_SameDateTieBreak(t *testing.T) {
	early := rec("present", "high", "2026-01-26")
	early.RecordedAt = time.Date(2026, 1, 26, 9, 0, 0, 0, time.UTC)
	early.ID = "a"
	late := rec("present", "high", "2026-01-26")
	late.RecordedAt = time.Date(2026, 1, 26, 17, 0, 0, 0, time.UTC)
	late.ID = "b"

	// Same date on both: result must be identical either way round.
	r1 := ComputeEngagement([]models.AttendanceRecord{early, late})
	r2 := ComputeEngagement([]models.AttendanceRecord{late, early})
	if r1 != r2 {
		t.Errorf("tie-break not deterministic: %+v vs %+v", r1, r2)
	}
}

func seedYouth(t *testing.T, gdb *gorm.DB, id string) {
	t.Helper()
	y := models.Youth{
		ID: id, FirstName: "Test", LastName: "Youth", Email: id + "@example.com",
		Status: "active", EngagementStatus: "disengaged", MinistryAreas: []string{},
		AgeGroup: "16-18",
	}
	if err := gdb.Create(&y).Error; err != nil {
		t.Fatalf("seed youth: %v", err)
	}
}

func TestRecalculate_Idempotent(t *testing.T) {
	gdb := openTestDB(t)
	seedYouth(t, gdb, "y1")

	r := rec("late", "medium", "2026-04-04")
	r.ID = "r1"
	r.YouthID = "y1"
	r.ProgramID = "p1"
	if err := gdb.Create(&r).Error; err != nil {
		t.Fatalf("create record: %v", err)
	}

	snapshot := func() models.Youth {
		var y models.Youth
		if err := gdb.First(&y, "id = ?", "y1").Error; err != nil {
			t.Fatalf("load youth: %v", err)
		}
		return y
	}

	if err := RecalculateYouthEngagement(gdb, "y1"); err != nil {
		t.Fatalf("first recalculate: %v", err)
	}
	first := snapshot()
	if err := RecalculateYouthEngagement(gdb, "y1"); err != nil {
		t.Fatalf("second recalculate: %v", err)
	}
	second := snapshot()

	if first.AttendanceRate != second.AttendanceRate ||
		first.EngagementScore != second.EngagementScore ||
		first.EngagementStatus != second.EngagementStatus ||
		first.LastAttendance != second.LastAttendance {
		t.Errorf("recalculate not idempotent: %+v vs %+v", first, second)
	}
}

func TestRecalculate_EmptyHistoryKeepsPriorValues(t *testing.T) {
	gdb := openTestDB(t)
	seedYouth(t, gdb, "y1")

	// Give the profile non-default derived values, as if from older history.
	err := store.NewYouthStore(gdb).ApplyEngagementUpdate("y1", store.EngagementUpdate{
		AttendanceRate: 80, EngagementScore: 75, EngagementStatus: "engaged",
		LastAttendance: "2026-01-01",
	})
	if err != nil {
		t.Fatalf("apply update: %v", err)
	}

	if err := RecalculateYouthEngagement(gdb, "y1"); err != nil {
		t.Fatalf("recalculate: %v", err)
	}

	var y models.Youth
	if err := gdb.First(&y, "id = ?", "y1").Error; err != nil {
		t.Fatalf("load youth: %v", err)
	}
	if y.AttendanceRate != 80 || y.EngagementScore != 75 ||
		y.EngagementStatus != "engaged" || y.LastAttendance != "2026-01-01" {
		t.Errorf("empty history must leave derived fields unchanged, got %+v", y)
	}
}

func TestRecalculate_UnknownYouthIsNoOp(t *testing.T) {
	gdb := openTestDB(t)
	seedYouth(t, gdb, "y1")

	if err := RecalculateYouthEngagement(gdb, "nope"); err != nil {
		t.Fatalf("unknown youth must not error, got %v", err)
	}

	var n int64
	gdb.Model(&models.Youth{}).Where("engagement_status <> ?", "disengaged").Count(&n)
	if n != 0 {
		t.Errorf("no profile should have been touched, %d changed", n)
	}
}
