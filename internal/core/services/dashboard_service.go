package services

import (
	"context"

	"campus-connect/internal/adapters/persistence/models"

	"gorm.io/gorm"
)

// DashboardService aggregates campus-wide counts for the admin view
type DashboardService struct {
	db *gorm.DB
}

// NewDashboardService creates a new dashboard service
func NewDashboardService(db *gorm.DB) *DashboardService {
	return &DashboardService{db: db}
}

// AdminDashboard is the admin overview payload
type AdminDashboard struct {
	TotalUsers       int64 `json:"total_users"`
	PendingApprovals int64 `json:"pending_approvals"`
	TotalStudents    int64 `json:"total_students"`
	TotalClubs       int64 `json:"total_clubs"`
	PendingClubs     int64 `json:"pending_clubs"`
	TotalEvents      int64 `json:"total_events"`
	ActiveRooms      int64 `json:"active_rooms"`
	TotalCourses     int64 `json:"total_courses"`
}

// GetAdminDashboard builds the admin overview
func (s *DashboardService) GetAdminDashboard(ctx context.Context) (*AdminDashboard, error) {
	db := s.db.WithContext(ctx)
	dashboard := &AdminDashboard{}

	counts := []struct {
		dest  *int64
		query *gorm.DB
	}{
		{&dashboard.TotalUsers, db.Model(&models.User{})},
		{&dashboard.PendingApprovals, db.Model(&models.User{}).Where("is_approved = ?", false)},
		{&dashboard.TotalStudents, db.Model(&models.StudentProfile{})},
		{&dashboard.TotalClubs, db.Model(&models.Club{}).Where("is_approved = ?", true)},
		{&dashboard.PendingClubs, db.Model(&models.Club{}).Where("is_approved = ?", false)},
		{&dashboard.TotalEvents, db.Model(&models.Event{})},
		{&dashboard.ActiveRooms, db.Model(&models.ExamRoom{}).Where("is_active = ?", true)},
		{&dashboard.TotalCourses, db.Model(&models.Course{})},
	}

	for _, c := range counts {
		if err := c.query.Count(c.dest).Error; err != nil {
			return nil, err
		}
	}

	return dashboard, nil
}
