package repositories

import (
	"context"

	"campus-connect/internal/adapters/persistence/models"

	"gorm.io/gorm"
)

// studentRepository implements StudentRepository on GORM
type studentRepository struct {
	db *gorm.DB
}

// NewStudentRepository creates a new student repository
func NewStudentRepository(db *gorm.DB) StudentRepository {
	return &studentRepository{db: db}
}

// ListProfiles lists student profiles with their owning account
// preloaded, ordered the way seating managers consume them.
func (r *studentRepository) ListProfiles(ctx context.Context, offset, limit int) ([]*models.StudentProfile, int64, error) {
	var profiles []*models.StudentProfile
	var total int64

	if err := r.db.WithContext(ctx).Model(&models.StudentProfile{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := r.db.WithContext(ctx).
		Preload("User").
		Order("roll_number ASC, enrollment_no ASC").
		Offset(offset).Limit(limit).
		Find(&profiles).Error
	if err != nil {
		return nil, 0, err
	}

	return profiles, total, nil
}

func (r *studentRepository) ListRegisteredExams(ctx context.Context, userID uint) ([]*models.RegisteredExam, error) {
	var exams []*models.RegisteredExam
	err := r.db.WithContext(ctx).Where("user_id = ?", userID).Order("created_at DESC").Find(&exams).Error
	return exams, err
}

func (r *studentRepository) CreateRegisteredExam(ctx context.Context, exam *models.RegisteredExam) error {
	return r.db.WithContext(ctx).Create(exam).Error
}
