package db

import (
	"log"
	"os"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/youthblossom/canopy/internal/models"
)

// Seed populates an empty database with the default staff accounts, the
// program catalog and a starter set of youth profiles. Tables that already
// hold rows are left alone, so re-running the server never duplicates data.
func Seed(gdb *gorm.DB) error {
	if err := seedUsers(gdb); err != nil {
		return err
	}
	if err := seedPrograms(gdb); err != nil {
		return err
	}
	return seedYouths(gdb)
}

func seedUsers(gdb *gorm.DB) error {
	var n int64
	if err := gdb.Model(&models.User{}).Count(&n).Error; err != nil {
		return err
	}
	if n > 0 {
		return nil
	}

	defaults := []struct {
		email, name, role, envKey, devPassword string
	}{
		{"admin@youthblossom.org", "Admin User", "admin", "ADMIN_PASSWORD", "admin123"},
		{"leader@youthblossom.org", "Leader User", "leader", "LEADER_PASSWORD", "leader123"},
		{"volunteer@youthblossom.org", "Volunteer User", "volunteer", "VOLUNTEER_PASSWORD", "vol123"},
	}
	for _, d := range defaults {
		pw := os.Getenv(d.envKey)
		if pw == "" {
			pw = d.devPassword // change in production: export ADMIN_PASSWORD=...
		}
		hash, err := bcrypt.GenerateFromPassword([]byte(pw), bcrypt.DefaultCost)
		if err != nil {
			return err
		}
		u := models.User{
			ID:           uuid.NewString(),
			Email:        d.email,
			Name:         d.name,
			PasswordHash: string(hash),
			Role:         d.role,
		}
		if err := gdb.Create(&u).Error; err != nil {
			return err
		}
	}
	log.Println("seeded default users")
	return nil
}

func seedPrograms(gdb *gorm.DB) error {
	var n int64
	if err := gdb.Model(&models.Program{}).Count(&n).Error; err != nil {
		return err
	}
	if n > 0 {
		return nil
	}

	programs := []models.Program{
		{Name: "Sunday Youth Service", Description: "Weekly worship gathering for all age groups", Category: "worship", StartDate: "2025-01-05", IsActive: true, Participants: 45, MaxCapacity: 80, Leader: "Pr. Daniel Osei", Schedule: "Sundays 10:00", ScheduleType: "weekday"},
		{Name: "Youth Bible Study", Description: "Midweek small-group study through the gospels", Category: "discipleship", StartDate: "2025-01-08", IsActive: true, Participants: 28, MaxCapacity: 40, Leader: "Sarah Mensah", Schedule: "Wednesdays 18:30", ScheduleType: "weekday"},
		{Name: "Community Outreach", Description: "Monthly neighbourhood service projects", Category: "outreach", StartDate: "2025-02-01", IsActive: true, Participants: 20, Leader: "Kwame Boateng", Schedule: "First Saturday", ScheduleType: "special"},
		{Name: "Youth Fellowship Night", Description: "Games, food and testimonies", Category: "fellowship", StartDate: "2025-01-17", IsActive: true, Participants: 35, MaxCapacity: 60, Leader: "Ama Darko", Schedule: "Fridays 19:00", ScheduleType: "weekday"},
		{Name: "Leadership Academy", Description: "Training track for emerging youth leaders", Category: "leadership", StartDate: "2025-03-01", IsActive: true, Participants: 12, MaxCapacity: 15, Leader: "Pr. Daniel Osei", Schedule: "Second Sabbath", ScheduleType: "sabbath"},
		{Name: "Summer Camp 2025", Description: "Annual residential camp", Category: "fellowship", StartDate: "2025-07-14", EndDate: "2025-07-20", IsActive: false, Participants: 52, MaxCapacity: 60, Leader: "Sarah Mensah", Schedule: "July, one week", ScheduleType: "special"},
	}
	for i := range programs {
		programs[i].ID = uuid.NewString()
		if err := gdb.Create(&programs[i]).Error; err != nil {
			return err
		}
	}
	log.Printf("seeded %d programs", len(programs))
	return nil
}

func seedYouths(gdb *gorm.DB) error {
	var n int64
	if err := gdb.Model(&models.Youth{}).Count(&n).Error; err != nil {
		return err
	}
	if n > 0 {
		return nil
	}

	youths := []models.Youth{
		{FirstName: "Grace", LastName: "Addo", Email: "grace.addo@example.com", Phone: "+233201112233", DateOfBirth: "2008-04-12", Gender: "female", Address: "12 Ring Rd, Accra", EducationStatus: "high_school", JoinDate: "2024-09-01", Status: "active", LeadershipLevel: "emerging", Discipleship: "growing", MinistryAreas: []string{"choir"}, AgeGroup: "16-18"},
		{FirstName: "Samuel", LastName: "Koranteng", Email: "sam.koranteng@example.com", Phone: "+233244556677", DateOfBirth: "2005-11-03", Gender: "male", Address: "4 Harbour St, Tema", EducationStatus: "college", Occupation: "Student", JoinDate: "2023-06-15", Status: "active", SmallGroup: "Teen Warriors", LeadershipLevel: "developing", Discipleship: "mature", MinistryAreas: []string{"media", "ushering"}, AgeGroup: "19-24"},
		{FirstName: "Efua", LastName: "Quartey", Email: "efua.q@example.com", Phone: "+233209998877", DateOfBirth: "2010-02-27", Gender: "female", Address: "8 Palm Ave, Kumasi", EducationStatus: "high_school", JoinDate: "2025-01-12", Status: "active", LeadershipLevel: "none", Discipleship: "new_believer", MinistryAreas: []string{}, AgeGroup: "13-15"},
		{FirstName: "Daniel", LastName: "Mensimah", Email: "dan.mensimah@example.com", Phone: "+233277334455", DateOfBirth: "1999-08-19", Gender: "male", Address: "22 Lakeside, Accra", EducationStatus: "working", Occupation: "Electrician", JoinDate: "2022-03-05", Status: "inactive", SmallGroup: "Young Professionals", LeadershipLevel: "established", Discipleship: "leader", MinistryAreas: []string{"outreach"}, AgeGroup: "25-30"},
	}
	for i := range youths {
		youths[i].ID = uuid.NewString()
		// New profiles start disengaged until attendance is recorded.
		youths[i].EngagementStatus = "disengaged"
		if err := gdb.Create(&youths[i]).Error; err != nil {
			return err
		}
	}
	log.Printf("seeded %d youths", len(youths))
	return nil
}
