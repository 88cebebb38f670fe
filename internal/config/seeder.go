package config

import (
	"log"

	"campus-connect/internal/adapters/persistence/models"
	"campus-connect/internal/pkg/password"

	"gorm.io/gorm"
)

// Seeder handles database seeding
type Seeder struct {
	db *gorm.DB
}

// NewSeeder creates a new seeder instance
func NewSeeder(db *gorm.DB) *Seeder {
	return &Seeder{db: db}
}

// Run executes all seeders
func (s *Seeder) Run() error {
	log.Println("🌱 Running database seeders...")

	if err := s.seedAdminUser(); err != nil {
		log.Printf("⚠️ Admin seeder skipped: %v", err)
	}
	if err := s.seedCourses(); err != nil {
		log.Printf("⚠️ Course seeder skipped: %v", err)
	}
	if err := s.seedExamRooms(); err != nil {
		log.Printf("⚠️ Exam room seeder skipped: %v", err)
	}

	log.Println("✅ Database seeding completed")
	return nil
}

// seedAdminUser seeds a default admin account so approvals can happen
// on a fresh database. Credentials come from env in production.
func (s *Seeder) seedAdminUser() error {
	var count int64
	s.db.Model(&models.User{}).Where("role = ?", models.RoleAdmin).Count(&count)
	if count > 0 {
		return nil
	}

	email := getEnv("ADMIN_EMAIL", "admin@campus-connect.local")
	hashedPassword, err := password.Hash(getEnv("ADMIN_PASSWORD", "admin123456"))
	if err != nil {
		return err
	}

	admin := &models.User{
		InstituteName: getEnv("ADMIN_INSTITUTE", "Campus Connect"),
		Email:         email,
		Password:      hashedPassword,
		Role:          models.RoleAdmin,
		IsApproved:    true,
	}
	if err := s.db.Create(admin).Error; err != nil {
		return err
	}

	profile := &models.AdminProfile{
		UserID:        admin.ID,
		InstituteName: admin.InstituteName,
	}
	if err := s.db.Create(profile).Error; err != nil {
		return err
	}

	log.Printf("🌱 Seeded admin account: %s", email)
	return nil
}

// seedCourses seeds a small default course catalogue
func (s *Seeder) seedCourses() error {
	var count int64
	s.db.Model(&models.Course{}).Count(&count)
	if count > 0 {
		return nil
	}

	courses := []models.Course{
		{Code: "BCA", Name: "Bachelor of Computer Applications", Duration: "3 years"},
		{Code: "MCA", Name: "Master of Computer Applications", Duration: "2 years"},
		{Code: "BBA", Name: "Bachelor of Business Administration", Duration: "3 years"},
	}
	return s.db.Create(&courses).Error
}

// seedExamRooms seeds default exam rooms for the seating module
func (s *Seeder) seedExamRooms() error {
	var count int64
	s.db.Model(&models.ExamRoom{}).Count(&count)
	if count > 0 {
		return nil
	}

	rooms := []models.ExamRoom{
		{Name: "Hall A", Rows: 10, Cols: 6, Building: "Main Building", Floor: 1},
		{Name: "Hall B", Rows: 8, Cols: 8, Building: "Main Building", Floor: 2},
	}
	return s.db.Create(&rooms).Error
}
