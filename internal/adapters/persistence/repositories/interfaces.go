package repositories

import (
	"context"

	"campus-connect/internal/adapters/persistence/models"
)

// UserRepository defines account persistence
type UserRepository interface {
	Create(ctx context.Context, user *models.User) error
	GetByID(ctx context.Context, id uint) (*models.User, error)
	GetByEmail(ctx context.Context, email string) (*models.User, error)
	ExistsByEmail(ctx context.Context, email string) (bool, error)
	Update(ctx context.Context, user *models.User) error
	Delete(ctx context.Context, id uint) error
	ListPending(ctx context.Context, offset, limit int) ([]*models.User, int64, error)
}

// ProfileRepository defines role-specific profile persistence. Exactly
// one variant exists per account, matching the role at signup.
type ProfileRepository interface {
	CreateStudent(ctx context.Context, profile *models.StudentProfile) error
	CreateAdmin(ctx context.Context, profile *models.AdminProfile) error
	CreateSeatingManager(ctx context.Context, profile *models.SeatingManagerProfile) error
	CreateClubCoordinator(ctx context.Context, profile *models.ClubCoordinatorProfile) error
	GetStudentByUserID(ctx context.Context, userID uint) (*models.StudentProfile, error)
	GetAdminByUserID(ctx context.Context, userID uint) (*models.AdminProfile, error)
	GetSeatingManagerByUserID(ctx context.Context, userID uint) (*models.SeatingManagerProfile, error)
	GetClubCoordinatorByUserID(ctx context.Context, userID uint) (*models.ClubCoordinatorProfile, error)
	DeleteByUserID(ctx context.Context, role string, userID uint) error
}

// ClubRepository defines club persistence
type ClubRepository interface {
	Create(ctx context.Context, club *models.Club) error
	GetByID(ctx context.Context, id uint) (*models.Club, error)
	ListApproved(ctx context.Context) ([]*models.Club, error)
	ListPending(ctx context.Context) ([]*models.Club, error)
	Approve(ctx context.Context, id uint) (*models.Club, error)
	Delete(ctx context.Context, id uint) error
}

// EventRepository defines event persistence
type EventRepository interface {
	Create(ctx context.Context, event *models.Event) error
	GetByID(ctx context.Context, id uint) (*models.Event, error)
	List(ctx context.Context) ([]*models.Event, error)
	ListByType(ctx context.Context, eventType string) ([]*models.Event, error)
	Update(ctx context.Context, event *models.Event) error
	Delete(ctx context.Context, id uint) error
}

// SyllabusRepository defines syllabus and attachment persistence
type SyllabusRepository interface {
	Create(ctx context.Context, syllabus *models.Syllabus) error
	GetByID(ctx context.Context, id uint) (*models.Syllabus, error)
	List(ctx context.Context) ([]*models.Syllabus, error)
	UpdateMindMap(ctx context.Context, id uint, mindMap string) (*models.Syllabus, error)
	Delete(ctx context.Context, id uint) error
	AddAttachment(ctx context.Context, attachment *models.SyllabusAttachment) error
	DeleteAttachment(ctx context.Context, id uint) error
}

// RoomRepository defines exam room persistence
type RoomRepository interface {
	Create(ctx context.Context, room *models.ExamRoom) error
	GetByID(ctx context.Context, id uint) (*models.ExamRoom, error)
	ListActive(ctx context.Context) ([]*models.ExamRoom, error)
	Update(ctx context.Context, room *models.ExamRoom) error
}

// StudentRepository defines student listing and exam registration
type StudentRepository interface {
	ListProfiles(ctx context.Context, offset, limit int) ([]*models.StudentProfile, int64, error)
	ListRegisteredExams(ctx context.Context, userID uint) ([]*models.RegisteredExam, error)
	CreateRegisteredExam(ctx context.Context, exam *models.RegisteredExam) error
}

// MasterRepository defines course and fee persistence
type MasterRepository interface {
	CreateCourse(ctx context.Context, course *models.Course) error
	GetCourse(ctx context.Context, id uint) (*models.Course, error)
	ListCourses(ctx context.Context) ([]*models.Course, error)
	UpdateCourse(ctx context.Context, course *models.Course) error
	DeleteCourse(ctx context.Context, id uint) error
	CreateFee(ctx context.Context, fee *models.Fee) error
	GetFee(ctx context.Context, id uint) (*models.Fee, error)
	ListFeesByUser(ctx context.Context, userID uint, offset, limit int) ([]*models.Fee, int64, error)
	UpdateFee(ctx context.Context, fee *models.Fee) error
	DeleteFee(ctx context.Context, id uint) error
}
