package db

import (
	"log"
	"os"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/youthblossom/canopy/internal/models"
)

var conn *gorm.DB

func Init() error {
	path := os.Getenv("DB_PATH")
	if path == "" {
		path = "canopy.db"
	}

	var err error
	conn, err = gorm.Open(sqlite.Open(path+"?_journal_mode=WAL&_busy_timeout=5000&_foreign_keys=on"), &gorm.Config{})
	if err != nil {
		return err
	}

	// SQLite works best with a single writer; cap the pool accordingly.
	// The single connection also serializes the append+recalculate
	// transaction in the attendance path, so two concurrent ingestions for
	// the same youth never recompute from a stale history snapshot.
	sqlDB, err := conn.DB()
	if err != nil {
		return err
	}
	sqlDB.SetMaxOpenConns(1)
	sqlDB.SetMaxIdleConns(1)
	sqlDB.SetConnMaxLifetime(0)

	if err := conn.AutoMigrate(
		&models.User{},
		&models.Youth{},
		&models.Program{},
		&models.AttendanceRecord{},
	); err != nil {
		log.Fatalf("auto-migrate failed: %v", err)
	}

	// Composite indexes that GORM doesn't auto-create from struct tags.
	conn.Exec("CREATE INDEX IF NOT EXISTS idx_attendance_youth_date ON attendance_records(youth_id, date)")
	conn.Exec("CREATE INDEX IF NOT EXISTS idx_youth_status          ON youths(status, engagement_status)")

	if err := Seed(conn); err != nil {
		return err
	}

	log.Println("database ready (sqlite)")
	return nil
}

func Conn() *gorm.DB {
	return conn
}
