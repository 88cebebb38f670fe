package repositories

import (
	"context"

	"campus-connect/internal/adapters/persistence/models"

	"gorm.io/gorm"
)

// clubRepository implements ClubRepository on GORM
type clubRepository struct {
	db *gorm.DB
}

// NewClubRepository creates a new club repository
func NewClubRepository(db *gorm.DB) ClubRepository {
	return &clubRepository{db: db}
}

func (r *clubRepository) Create(ctx context.Context, club *models.Club) error {
	return r.db.WithContext(ctx).Create(club).Error
}

func (r *clubRepository) GetByID(ctx context.Context, id uint) (*models.Club, error) {
	var club models.Club
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&club).Error; err != nil {
		return nil, err
	}
	return &club, nil
}

// ListApproved lists clubs visible to everyone
func (r *clubRepository) ListApproved(ctx context.Context) ([]*models.Club, error) {
	var clubs []*models.Club
	err := r.db.WithContext(ctx).Where("is_approved = ?", true).Order("club_name ASC").Find(&clubs).Error
	return clubs, err
}

// ListPending lists clubs awaiting admin approval
func (r *clubRepository) ListPending(ctx context.Context) ([]*models.Club, error) {
	var clubs []*models.Club
	err := r.db.WithContext(ctx).Where("is_approved = ?", false).Order("created_at ASC").Find(&clubs).Error
	return clubs, err
}

// Approve flips the approval flag and returns the updated club
func (r *clubRepository) Approve(ctx context.Context, id uint) (*models.Club, error) {
	club, err := r.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !club.IsApproved {
		club.IsApproved = true
		if err := r.db.WithContext(ctx).Save(club).Error; err != nil {
			return nil, err
		}
	}
	return club, nil
}

func (r *clubRepository) Delete(ctx context.Context, id uint) error {
	result := r.db.WithContext(ctx).Delete(&models.Club{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
