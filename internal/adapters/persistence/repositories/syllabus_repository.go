package repositories

import (
	"context"

	"campus-connect/internal/adapters/persistence/models"

	"gorm.io/gorm"
)

// syllabusRepository implements SyllabusRepository on GORM
type syllabusRepository struct {
	db *gorm.DB
}

// NewSyllabusRepository creates a new syllabus repository
func NewSyllabusRepository(db *gorm.DB) SyllabusRepository {
	return &syllabusRepository{db: db}
}

func (r *syllabusRepository) Create(ctx context.Context, syllabus *models.Syllabus) error {
	return r.db.WithContext(ctx).Create(syllabus).Error
}

func (r *syllabusRepository) GetByID(ctx context.Context, id uint) (*models.Syllabus, error) {
	var syllabus models.Syllabus
	err := r.db.WithContext(ctx).Preload("Attachments").Where("id = ?", id).First(&syllabus).Error
	if err != nil {
		return nil, err
	}
	return &syllabus, nil
}

func (r *syllabusRepository) List(ctx context.Context) ([]*models.Syllabus, error) {
	var syllabi []*models.Syllabus
	err := r.db.WithContext(ctx).Preload("Attachments").Order("created_at DESC").Find(&syllabi).Error
	return syllabi, err
}

func (r *syllabusRepository) UpdateMindMap(ctx context.Context, id uint, mindMap string) (*models.Syllabus, error) {
	result := r.db.WithContext(ctx).Model(&models.Syllabus{}).Where("id = ?", id).Update("mind_map", mindMap)
	if result.Error != nil {
		return nil, result.Error
	}
	if result.RowsAffected == 0 {
		return nil, gorm.ErrRecordNotFound
	}
	return r.GetByID(ctx, id)
}

// Delete removes a syllabus and its attachment rows
func (r *syllabusRepository) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("syllabus_id = ?", id).Delete(&models.SyllabusAttachment{}).Error; err != nil {
			return err
		}
		result := tx.Delete(&models.Syllabus{}, id)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		return nil
	})
}

func (r *syllabusRepository) AddAttachment(ctx context.Context, attachment *models.SyllabusAttachment) error {
	return r.db.WithContext(ctx).Create(attachment).Error
}

func (r *syllabusRepository) DeleteAttachment(ctx context.Context, id uint) error {
	result := r.db.WithContext(ctx).Delete(&models.SyllabusAttachment{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
