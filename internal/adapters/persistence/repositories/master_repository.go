package repositories

import (
	"context"

	"campus-connect/internal/adapters/persistence/models"

	"gorm.io/gorm"
)

// masterRepository implements MasterRepository (courses and fees) on GORM
type masterRepository struct {
	db *gorm.DB
}

// NewMasterRepository creates a new master data repository
func NewMasterRepository(db *gorm.DB) MasterRepository {
	return &masterRepository{db: db}
}

// ============================================================
// Courses
// ============================================================

func (r *masterRepository) CreateCourse(ctx context.Context, course *models.Course) error {
	return r.db.WithContext(ctx).Create(course).Error
}

func (r *masterRepository) GetCourse(ctx context.Context, id uint) (*models.Course, error) {
	var course models.Course
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&course).Error; err != nil {
		return nil, err
	}
	return &course, nil
}

func (r *masterRepository) ListCourses(ctx context.Context) ([]*models.Course, error) {
	var courses []*models.Course
	err := r.db.WithContext(ctx).Order("code ASC").Find(&courses).Error
	return courses, err
}

func (r *masterRepository) UpdateCourse(ctx context.Context, course *models.Course) error {
	return r.db.WithContext(ctx).Save(course).Error
}

func (r *masterRepository) DeleteCourse(ctx context.Context, id uint) error {
	result := r.db.WithContext(ctx).Delete(&models.Course{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// ============================================================
// Fees
// ============================================================

func (r *masterRepository) CreateFee(ctx context.Context, fee *models.Fee) error {
	return r.db.WithContext(ctx).Create(fee).Error
}

func (r *masterRepository) GetFee(ctx context.Context, id uint) (*models.Fee, error) {
	var fee models.Fee
	if err := r.db.WithContext(ctx).Preload("Course").Where("id = ?", id).First(&fee).Error; err != nil {
		return nil, err
	}
	return &fee, nil
}

func (r *masterRepository) ListFeesByUser(ctx context.Context, userID uint, offset, limit int) ([]*models.Fee, int64, error) {
	var fees []*models.Fee
	var total int64

	query := r.db.WithContext(ctx).Model(&models.Fee{}).Where("user_id = ?", userID)
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := r.db.WithContext(ctx).
		Preload("Course").
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Offset(offset).Limit(limit).
		Find(&fees).Error
	if err != nil {
		return nil, 0, err
	}

	return fees, total, nil
}

func (r *masterRepository) UpdateFee(ctx context.Context, fee *models.Fee) error {
	return r.db.WithContext(ctx).Save(fee).Error
}

func (r *masterRepository) DeleteFee(ctx context.Context, id uint) error {
	result := r.db.WithContext(ctx).Delete(&models.Fee{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
