package repositories

import (
	"context"

	"campus-connect/internal/adapters/persistence/models"

	"gorm.io/gorm"
)

// profileRepository implements ProfileRepository on GORM. One table per
// role variant; dispatch happens on the role string.
type profileRepository struct {
	db *gorm.DB
}

// NewProfileRepository creates a new profile repository
func NewProfileRepository(db *gorm.DB) ProfileRepository {
	return &profileRepository{db: db}
}

func (r *profileRepository) CreateStudent(ctx context.Context, profile *models.StudentProfile) error {
	return r.db.WithContext(ctx).Create(profile).Error
}

func (r *profileRepository) CreateAdmin(ctx context.Context, profile *models.AdminProfile) error {
	return r.db.WithContext(ctx).Create(profile).Error
}

func (r *profileRepository) CreateSeatingManager(ctx context.Context, profile *models.SeatingManagerProfile) error {
	return r.db.WithContext(ctx).Create(profile).Error
}

func (r *profileRepository) CreateClubCoordinator(ctx context.Context, profile *models.ClubCoordinatorProfile) error {
	return r.db.WithContext(ctx).Create(profile).Error
}

func (r *profileRepository) GetStudentByUserID(ctx context.Context, userID uint) (*models.StudentProfile, error) {
	var profile models.StudentProfile
	if err := r.db.WithContext(ctx).Where("user_id = ?", userID).First(&profile).Error; err != nil {
		return nil, err
	}
	return &profile, nil
}

func (r *profileRepository) GetAdminByUserID(ctx context.Context, userID uint) (*models.AdminProfile, error) {
	var profile models.AdminProfile
	if err := r.db.WithContext(ctx).Where("user_id = ?", userID).First(&profile).Error; err != nil {
		return nil, err
	}
	return &profile, nil
}

func (r *profileRepository) GetSeatingManagerByUserID(ctx context.Context, userID uint) (*models.SeatingManagerProfile, error) {
	var profile models.SeatingManagerProfile
	if err := r.db.WithContext(ctx).Where("user_id = ?", userID).First(&profile).Error; err != nil {
		return nil, err
	}
	return &profile, nil
}

func (r *profileRepository) GetClubCoordinatorByUserID(ctx context.Context, userID uint) (*models.ClubCoordinatorProfile, error) {
	var profile models.ClubCoordinatorProfile
	if err := r.db.WithContext(ctx).Where("user_id = ?", userID).First(&profile).Error; err != nil {
		return nil, err
	}
	return &profile, nil
}

// DeleteByUserID removes the profile variant matching the account's role
func (r *profileRepository) DeleteByUserID(ctx context.Context, role string, userID uint) error {
	db := r.db.WithContext(ctx)
	switch role {
	case models.RoleAdmin:
		return db.Where("user_id = ?", userID).Delete(&models.AdminProfile{}).Error
	case models.RoleSeatingManager:
		return db.Where("user_id = ?", userID).Delete(&models.SeatingManagerProfile{}).Error
	case models.RoleClubCoordinator:
		return db.Where("user_id = ?", userID).Delete(&models.ClubCoordinatorProfile{}).Error
	default:
		return db.Where("user_id = ?", userID).Delete(&models.StudentProfile{}).Error
	}
}
