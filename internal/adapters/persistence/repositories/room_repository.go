package repositories

import (
	"context"

	"campus-connect/internal/adapters/persistence/models"

	"gorm.io/gorm"
)

// roomRepository implements RoomRepository on GORM
type roomRepository struct {
	db *gorm.DB
}

// NewRoomRepository creates a new exam room repository
func NewRoomRepository(db *gorm.DB) RoomRepository {
	return &roomRepository{db: db}
}

func (r *roomRepository) Create(ctx context.Context, room *models.ExamRoom) error {
	return r.db.WithContext(ctx).Create(room).Error
}

func (r *roomRepository) GetByID(ctx context.Context, id uint) (*models.ExamRoom, error) {
	var room models.ExamRoom
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&room).Error; err != nil {
		return nil, err
	}
	return &room, nil
}

func (r *roomRepository) ListActive(ctx context.Context) ([]*models.ExamRoom, error) {
	var rooms []*models.ExamRoom
	err := r.db.WithContext(ctx).Where("is_active = ?", true).Order("name ASC").Find(&rooms).Error
	return rooms, err
}

func (r *roomRepository) Update(ctx context.Context, room *models.ExamRoom) error {
	return r.db.WithContext(ctx).Save(room).Error
}
