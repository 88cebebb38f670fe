package models

import (
	"strings"
	"time"

	"gorm.io/gorm"
)

// ============================================================
// Accounts & Profiles
// ============================================================

// Account roles
const (
	RoleStudent         = "student"
	RoleAdmin           = "admin"
	RoleSeatingManager  = "seating_manager"
	RoleClubCoordinator = "club_coordinator"
)

// ValidRoles lists every role an account may carry
var ValidRoles = []string{RoleStudent, RoleAdmin, RoleSeatingManager, RoleClubCoordinator}

// IsValidRole reports whether role is one of the known account roles
func IsValidRole(role string) bool {
	for _, r := range ValidRoles {
		if r == role {
			return true
		}
	}
	return false
}

// User represents the users table (one login identity)
type User struct {
	ID            uint           `gorm:"primaryKey" json:"id"`
	InstituteName string         `gorm:"size:150;not null" json:"institute_name"`
	Phone         string         `gorm:"size:20" json:"phone"`
	Email         string         `gorm:"uniqueIndex;size:100;not null" json:"email"`
	Password      string         `gorm:"size:255;not null" json:"-"`
	Role          string         `gorm:"size:30;not null;default:'student'" json:"role"`
	ImageURL      string         `gorm:"size:255" json:"image_url"`
	ImageID       string         `gorm:"size:150" json:"image_id"`
	IsApproved    bool           `gorm:"default:false" json:"is_approved"`
	CreatedAt     time.Time      `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt     time.Time      `gorm:"autoUpdateTime" json:"updated_at"`
	DeletedAt     gorm.DeletedAt `gorm:"index" json:"-"`
}

func (User) TableName() string {
	return "users"
}

// UserResponse is the public-safe account summary (no password hash)
type UserResponse struct {
	ID            uint      `json:"id"`
	InstituteName string    `json:"institute_name"`
	Phone         string    `json:"phone"`
	Email         string    `json:"email"`
	Role          string    `json:"role"`
	ImageURL      string    `json:"image_url"`
	ImageID       string    `json:"image_id"`
	IsApproved    bool      `json:"is_approved"`
	CreatedAt     time.Time `json:"created_at"`
}

func (u *User) ToResponse() *UserResponse {
	return &UserResponse{
		ID:            u.ID,
		InstituteName: u.InstituteName,
		Phone:         u.Phone,
		Email:         u.Email,
		Role:          u.Role,
		ImageURL:      u.ImageURL,
		ImageID:       u.ImageID,
		IsApproved:    u.IsApproved,
		CreatedAt:     u.CreatedAt,
	}
}

// StudentProfile is the role-specific profile for students
type StudentProfile struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	UserID       uint      `gorm:"uniqueIndex;not null" json:"user_id"`
	FullName     string    `gorm:"size:150" json:"full_name"`
	Phone        string    `gorm:"size:20" json:"phone"`
	Address      string    `gorm:"size:255" json:"address"`
	CourseID     string    `gorm:"size:50" json:"course_id"`
	Batch        string    `gorm:"size:50" json:"batch"`
	EnrollmentNo string    `gorm:"size:50" json:"enrollment_no"`
	RollNumber   string    `gorm:"size:50" json:"roll_number"`
	DOB          string    `gorm:"size:20" json:"dob"`
	CreatedAt    time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt    time.Time `gorm:"autoUpdateTime" json:"updated_at"`

	User *User `gorm:"foreignKey:UserID" json:"-"`
}

func (StudentProfile) TableName() string {
	return "student_profiles"
}

// AdminProfile is the role-specific profile for admins
type AdminProfile struct {
	ID            uint      `gorm:"primaryKey" json:"id"`
	UserID        uint      `gorm:"uniqueIndex;not null" json:"user_id"`
	InstituteName string    `gorm:"size:150" json:"institute_name"`
	Phone         string    `gorm:"size:20" json:"phone"`
	Department    string    `gorm:"size:100" json:"department"`
	Address       string    `gorm:"size:255" json:"address"`
	CreatedAt     time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt     time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

func (AdminProfile) TableName() string {
	return "admin_profiles"
}

// SeatingManagerProfile is the role-specific profile for seating managers.
// RoomsManaged is stored comma-joined; use RoomsList/SetRooms.
type SeatingManagerProfile struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	UserID       uint      `gorm:"uniqueIndex;not null" json:"user_id"`
	Phone        string    `gorm:"size:20" json:"phone"`
	Department   string    `gorm:"size:100" json:"department"`
	RoomsManaged string    `gorm:"type:text" json:"-"`
	Shift        string    `gorm:"size:50" json:"shift"`
	CreatedAt    time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt    time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

func (SeatingManagerProfile) TableName() string {
	return "seating_manager_profiles"
}

// RoomsList returns the managed room names as a slice
func (p *SeatingManagerProfile) RoomsList() []string {
	if strings.TrimSpace(p.RoomsManaged) == "" {
		return []string{}
	}
	parts := strings.Split(p.RoomsManaged, ",")
	rooms := make([]string, 0, len(parts))
	for _, part := range parts {
		if name := strings.TrimSpace(part); name != "" {
			rooms = append(rooms, name)
		}
	}
	return rooms
}

// SetRooms stores the managed room names comma-joined
func (p *SeatingManagerProfile) SetRooms(rooms []string) {
	trimmed := make([]string, 0, len(rooms))
	for _, r := range rooms {
		if name := strings.TrimSpace(r); name != "" {
			trimmed = append(trimmed, name)
		}
	}
	p.RoomsManaged = strings.Join(trimmed, ",")
}

// ClubCoordinatorProfile is the role-specific profile for club coordinators
type ClubCoordinatorProfile struct {
	ID              uint      `gorm:"primaryKey" json:"id"`
	UserID          uint      `gorm:"uniqueIndex;not null" json:"user_id"`
	Phone           string    `gorm:"size:20" json:"phone"`
	ClubName        string    `gorm:"size:150" json:"club_name"`
	ClubEmail       string    `gorm:"size:100" json:"club_email"`
	ClubDescription string    `gorm:"type:text" json:"club_description"`
	CreatedAt       time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt       time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

func (ClubCoordinatorProfile) TableName() string {
	return "club_coordinator_profiles"
}

// ============================================================
// Clubs & Events
// ============================================================

// Club represents the clubs table (approval-gated like student accounts)
type Club struct {
	ID              uint      `gorm:"primaryKey" json:"id"`
	UserID          uint      `gorm:"index;not null" json:"user_id"`
	ClubName        string    `gorm:"size:150;not null" json:"club_name"`
	ClubEmail       string    `gorm:"size:100" json:"club_email"`
	ClubDescription string    `gorm:"type:text" json:"club_description"`
	MembersCount    int       `gorm:"default:0" json:"members_count"`
	IsApproved      bool      `gorm:"default:false" json:"is_approved"`
	CreatedAt       time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt       time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

func (Club) TableName() string {
	return "clubs"
}

// Event types
const (
	EventTypeExam     = "exam"
	EventTypeHoliday  = "holiday"
	EventTypeEvent    = "event"
	EventTypeDeadline = "deadline"
)

// IsValidEventType reports whether t is a known event type
func IsValidEventType(t string) bool {
	switch t {
	case EventTypeExam, EventTypeHoliday, EventTypeEvent, EventTypeDeadline:
		return true
	}
	return false
}

// Event represents the events table (calendar entries)
type Event struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	Title       string    `gorm:"size:200;not null" json:"title"`
	Description string    `gorm:"type:text" json:"description"`
	Date        time.Time `gorm:"not null;index" json:"date"`
	Type        string    `gorm:"size:20;not null;default:'event'" json:"type"`
	CreatedBy   uint      `gorm:"index" json:"created_by"`
	CreatedAt   time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt   time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

func (Event) TableName() string {
	return "events"
}

// ============================================================
// Syllabi & Attachments
// ============================================================

// Attachment types
const (
	AttachmentTypePDF   = "pdf"
	AttachmentTypePPT   = "ppt"
	AttachmentTypeImage = "image"
	AttachmentTypeLink  = "link"
)

// IsValidAttachmentType reports whether t is a known attachment type
func IsValidAttachmentType(t string) bool {
	switch t {
	case AttachmentTypePDF, AttachmentTypePPT, AttachmentTypeImage, AttachmentTypeLink:
		return true
	}
	return false
}

// Syllabus represents the syllabi table. MindMap holds the serialized
// topic tree as uploaded by the frontend.
type Syllabus struct {
	ID          uint                 `gorm:"primaryKey" json:"id"`
	Title       string               `gorm:"size:200;not null" json:"title"`
	ContentRaw  string               `gorm:"type:text;not null" json:"content_raw"`
	MindMap     string               `gorm:"type:text" json:"mind_map"`
	UploadedBy  uint                 `gorm:"index" json:"uploaded_by"`
	CreatedAt   time.Time            `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt   time.Time            `gorm:"autoUpdateTime" json:"updated_at"`
	Attachments []SyllabusAttachment `gorm:"foreignKey:SyllabusID" json:"attachments"`
}

func (Syllabus) TableName() string {
	return "syllabi"
}

// SyllabusAttachment represents one attachment row (file or link)
type SyllabusAttachment struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	SyllabusID   uint      `gorm:"index;not null" json:"syllabus_id"`
	Type         string    `gorm:"size:10;not null" json:"type"`
	Name         string    `gorm:"size:200;not null" json:"name"`
	URL          string    `gorm:"size:500;not null" json:"url"`
	CloudinaryID string    `gorm:"size:150" json:"cloudinary_id,omitempty"`
	UploadedAt   time.Time `gorm:"autoCreateTime" json:"uploaded_at"`
}

func (SyllabusAttachment) TableName() string {
	return "syllabus_attachments"
}

// ============================================================
// Exam Rooms & Registered Exams
// ============================================================

// ExamRoom represents the exam_rooms table. Only the seating grid is
// modeled here; seat allocation itself lives outside this service.
type ExamRoom struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Name      string    `gorm:"uniqueIndex;size:100;not null" json:"name"`
	Rows      int       `gorm:"not null" json:"rows"`
	Cols      int       `gorm:"not null" json:"cols"`
	Capacity  int       `gorm:"not null" json:"capacity"`
	Building  string    `gorm:"size:100;default:'Main Building'" json:"building"`
	Floor     int       `gorm:"default:1" json:"floor"`
	IsActive  bool      `gorm:"default:true" json:"is_active"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

func (ExamRoom) TableName() string {
	return "exam_rooms"
}

// BeforeSave derives capacity from the grid when not provided
func (r *ExamRoom) BeforeSave(tx *gorm.DB) error {
	if r.Capacity <= 0 {
		r.Capacity = r.Rows * r.Cols
	}
	return nil
}

// RegisteredExam represents the registered_exams table (one row per
// exam a student signed up for)
type RegisteredExam struct {
	ID         uint      `gorm:"primaryKey" json:"id"`
	UserID     uint      `gorm:"index;not null" json:"user_id"`
	ExamCode   string    `gorm:"size:50;not null" json:"exam_code"`
	ExamName   string    `gorm:"size:200;not null" json:"exam_name"`
	Date       string    `gorm:"size:20" json:"date"`
	Time       string    `gorm:"size:20" json:"time"`
	Venue      string    `gorm:"size:200" json:"venue"`
	CenterCode string    `gorm:"size:50" json:"center_code"`
	CreatedAt  time.Time `gorm:"autoCreateTime" json:"created_at"`
}

func (RegisteredExam) TableName() string {
	return "registered_exams"
}

// ============================================================
// Courses & Fees
// ============================================================

// Course represents the courses table
type Course struct {
	ID          uint           `gorm:"primaryKey" json:"id"`
	Code        string         `gorm:"uniqueIndex;size:50;not null" json:"code"`
	Name        string         `gorm:"size:150;not null" json:"name"`
	Duration    string         `gorm:"size:50" json:"duration"`
	Description string         `gorm:"type:text" json:"description"`
	CreatedAt   time.Time      `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt   time.Time      `gorm:"autoUpdateTime" json:"updated_at"`
	DeletedAt   gorm.DeletedAt `gorm:"index" json:"-"`
}

func (Course) TableName() string {
	return "courses"
}

// Fee statuses
const (
	FeeStatusPending = "pending"
	FeeStatusPaid    = "paid"
)

// Fee represents the fees table (one charge against a student account)
type Fee struct {
	ID        uint       `gorm:"primaryKey" json:"id"`
	UserID    uint       `gorm:"index;not null" json:"user_id"`
	CourseID  *uint      `json:"course_id"`
	Amount    float64    `gorm:"type:decimal(10,2);not null" json:"amount"`
	Semester  string     `gorm:"size:50" json:"semester"`
	DueDate   *time.Time `json:"due_date"`
	Status    string     `gorm:"size:20;not null;default:'pending'" json:"status"`
	Remark    string     `gorm:"type:text" json:"remark"`
	CreatedAt time.Time  `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time  `gorm:"autoUpdateTime" json:"updated_at"`

	Course *Course `gorm:"foreignKey:CourseID" json:"course,omitempty"`
}

func (Fee) TableName() string {
	return "fees"
}

// ============================================================
// Auto Migration
// ============================================================

// AutoMigrate creates/updates every table
func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&User{},
		&StudentProfile{},
		&AdminProfile{},
		&SeatingManagerProfile{},
		&ClubCoordinatorProfile{},
		&Club{},
		&Event{},
		&Syllabus{},
		&SyllabusAttachment{},
		&ExamRoom{},
		&RegisteredExam{},
		&Course{},
		&Fee{},
	)
}
