package services

import (
	"context"
	"errors"
	"fmt"
	"log"
	"mime/multipart"
	"strings"

	"campus-connect/internal/adapters/persistence/models"
	"campus-connect/internal/adapters/persistence/repositories"
	"campus-connect/internal/config"
	"campus-connect/internal/core/domain"
	"campus-connect/internal/pkg/jwt"
	"campus-connect/internal/pkg/password"

	validation "github.com/go-ozzo/ozzo-validation"
	"github.com/go-ozzo/ozzo-validation/is"
	"gorm.io/gorm"
)

// AuthService orchestrates signup, login, approval gating and the
// role-profile dispatch.
type AuthService struct {
	userRepo    repositories.UserRepository
	profileRepo repositories.ProfileRepository
	uploader    Uploader
	cfg         *config.Config
}

// NewAuthService creates a new auth service
func NewAuthService(
	userRepo repositories.UserRepository,
	profileRepo repositories.ProfileRepository,
	uploader Uploader,
	cfg *config.Config,
) *AuthService {
	return &AuthService{
		userRepo:    userRepo,
		profileRepo: profileRepo,
		uploader:    uploader,
		cfg:         cfg,
	}
}

// SignupInput carries account fields plus the role-specific profile
// fields; unused ones default to empty strings.
type SignupInput struct {
	InstituteName string `json:"institute_name"`
	Phone         string `json:"phone"`
	Email         string `json:"email"`
	Password      string `json:"password"`
	Role          string `json:"role"`

	// student
	FullName     string `json:"full_name"`
	Address      string `json:"address"`
	CourseID     string `json:"course_id"`
	Batch        string `json:"batch"`
	EnrollmentNo string `json:"enrollment_no"`
	RollNumber   string `json:"roll_number"`
	DOB          string `json:"dob"`

	// admin / seating manager
	Department   string `json:"department"`
	RoomsManaged string `json:"rooms_managed"`
	Shift        string `json:"shift"`

	// club coordinator
	ClubName        string `json:"club_name"`
	ClubEmail       string `json:"club_email"`
	ClubDescription string `json:"club_description"`
}

// Validate checks the account-level fields
func (in SignupInput) Validate() error {
	return validation.ValidateStruct(&in,
		validation.Field(&in.InstituteName, validation.Required),
		validation.Field(&in.Email, validation.Required, is.Email),
		validation.Field(&in.Password, validation.Required, validation.Length(6, 72)),
		validation.Field(&in.Role, validation.Required,
			validation.In(models.RoleStudent, models.RoleAdmin, models.RoleSeatingManager, models.RoleClubCoordinator)),
	)
}

// LoginOutput is the token plus a public-safe account summary
type LoginOutput struct {
	Token string               `json:"token"`
	User  *models.UserResponse `json:"user"`
}

// ProfileOutput is the role-dispatched profile payload
type ProfileOutput struct {
	Role    string      `json:"role"`
	Profile interface{} `json:"profile"`
}

// SeatingManagerProfileResponse exposes the managed rooms as a list
type SeatingManagerProfileResponse struct {
	ID           uint     `json:"id"`
	UserID       uint     `json:"user_id"`
	Phone        string   `json:"phone"`
	Department   string   `json:"department"`
	RoomsManaged []string `json:"rooms_managed"`
	Shift        string   `json:"shift"`
}

// Signup creates an account, uploads its image and creates the matching
// profile variant. The three steps are not atomic: if profile creation
// fails the account row persists and the caller sees ErrProfileCreation.
func (s *AuthService) Signup(ctx context.Context, input *SignupInput, image *multipart.FileHeader) (*models.UserResponse, error) {
	if err := input.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrInvalidInput, err)
	}

	exists, err := s.userRepo.ExistsByEmail(ctx, input.Email)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, domain.ErrDuplicateEmail
	}

	result, err := s.uploader.Upload(ctx, image)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrUploadFailed, err)
	}

	hash, err := password.HashWithCost(input.Password, s.cfg.BcryptCost)
	if err != nil {
		return nil, err
	}

	user := &models.User{
		InstituteName: input.InstituteName,
		Phone:         input.Phone,
		Email:         input.Email,
		Password:      hash,
		Role:          input.Role,
		ImageURL:      result.URL,
		ImageID:       result.PublicID,
		// only students wait for manual admin approval
		IsApproved: input.Role != models.RoleStudent,
	}
	if err := s.userRepo.Create(ctx, user); err != nil {
		return nil, err
	}

	if err := s.createProfile(ctx, user, input); err != nil {
		log.Printf("⚠️ Profile creation failed for user %d: %v", user.ID, err)
		return nil, domain.ErrProfileCreation
	}

	log.Printf("✅ Account created: %s (role: %s)", user.Email, user.Role)
	return user.ToResponse(), nil
}

// createProfile creates the profile variant matching the account role.
// The variant is chosen once, here; role changes are unsupported.
func (s *AuthService) createProfile(ctx context.Context, user *models.User, input *SignupInput) error {
	switch user.Role {
	case models.RoleAdmin:
		return s.profileRepo.CreateAdmin(ctx, &models.AdminProfile{
			UserID:        user.ID,
			InstituteName: input.InstituteName,
			Phone:         input.Phone,
			Department:    input.Department,
			Address:       input.Address,
		})
	case models.RoleSeatingManager:
		profile := &models.SeatingManagerProfile{
			UserID:     user.ID,
			Phone:      input.Phone,
			Department: input.Department,
			Shift:      input.Shift,
		}
		profile.SetRooms(strings.Split(input.RoomsManaged, ","))
		return s.profileRepo.CreateSeatingManager(ctx, profile)
	case models.RoleClubCoordinator:
		return s.profileRepo.CreateClubCoordinator(ctx, &models.ClubCoordinatorProfile{
			UserID:          user.ID,
			Phone:           input.Phone,
			ClubName:        input.ClubName,
			ClubEmail:       input.ClubEmail,
			ClubDescription: input.ClubDescription,
		})
	default:
		fullName := input.FullName
		if fullName == "" {
			fullName = input.InstituteName
		}
		return s.profileRepo.CreateStudent(ctx, &models.StudentProfile{
			UserID:       user.ID,
			FullName:     fullName,
			Phone:        input.Phone,
			Address:      input.Address,
			CourseID:     input.CourseID,
			Batch:        input.Batch,
			EnrollmentNo: input.EnrollmentNo,
			RollNumber:   input.RollNumber,
			DOB:          input.DOB,
		})
	}
}

// Login verifies credentials, enforces the approval gate and issues a
// bearer token. Approval is checked after password verification.
func (s *AuthService) Login(ctx context.Context, email, plainPassword string) (*LoginOutput, error) {
	user, err := s.userRepo.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}

	if !password.Verify(plainPassword, user.Password) {
		return nil, domain.ErrInvalidCredentials
	}

	if !user.IsApproved {
		return nil, domain.ErrPendingApproval
	}

	token, err := jwt.GenerateToken(
		user.ID,
		user.Email,
		user.InstituteName,
		user.Phone,
		user.Role,
		s.cfg.JWT.Secret,
		s.cfg.JWT.TokenDays,
	)
	if err != nil {
		return nil, err
	}

	log.Printf("✅ Login: %s", user.Email)
	return &LoginOutput{Token: token, User: user.ToResponse()}, nil
}

// GetProfile loads the caller's role-specific profile
func (s *AuthService) GetProfile(ctx context.Context, userID uint, role string) (*ProfileOutput, error) {
	out := &ProfileOutput{Role: role}

	var err error
	switch role {
	case models.RoleAdmin:
		out.Profile, err = s.profileRepo.GetAdminByUserID(ctx, userID)
	case models.RoleSeatingManager:
		var profile *models.SeatingManagerProfile
		profile, err = s.profileRepo.GetSeatingManagerByUserID(ctx, userID)
		if err == nil {
			out.Profile = &SeatingManagerProfileResponse{
				ID:           profile.ID,
				UserID:       profile.UserID,
				Phone:        profile.Phone,
				Department:   profile.Department,
				RoomsManaged: profile.RoomsList(),
				Shift:        profile.Shift,
			}
		}
	case models.RoleClubCoordinator:
		out.Profile, err = s.profileRepo.GetClubCoordinatorByUserID(ctx, userID)
	default:
		out.Profile, err = s.profileRepo.GetStudentByUserID(ctx, userID)
	}

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return out, nil
}

// PendingApprovals lists unapproved accounts for the admin queue
func (s *AuthService) PendingApprovals(ctx context.Context, offset, limit int) ([]*models.UserResponse, int64, error) {
	users, total, err := s.userRepo.ListPending(ctx, offset, limit)
	if err != nil {
		return nil, 0, err
	}

	responses := make([]*models.UserResponse, 0, len(users))
	for _, user := range users {
		responses = append(responses, user.ToResponse())
	}
	return responses, total, nil
}

// Approve sets the approval flag. Approving an already-approved
// account is a no-op success.
func (s *AuthService) Approve(ctx context.Context, userID uint) (*models.UserResponse, error) {
	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}

	if !user.IsApproved {
		user.IsApproved = true
		if err := s.userRepo.Update(ctx, user); err != nil {
			return nil, err
		}
		log.Printf("✅ Account approved: %s", user.Email)
	}

	return user.ToResponse(), nil
}

// Reject deletes an account. Image and profile cleanup are best-effort:
// failures there are logged, never surfaced; only the account delete
// itself is reported to the caller.
func (s *AuthService) Reject(ctx context.Context, userID uint) error {
	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrNotFound
		}
		return err
	}

	if user.ImageID != "" {
		if err := s.uploader.Destroy(ctx, user.ImageID); err != nil {
			log.Printf("⚠️ Image cleanup failed for user %d: %v", user.ID, err)
		}
	}

	if err := s.profileRepo.DeleteByUserID(ctx, user.Role, user.ID); err != nil {
		log.Printf("⚠️ Profile cleanup failed for user %d: %v", user.ID, err)
	}

	if err := s.userRepo.Delete(ctx, user.ID); err != nil {
		return err
	}

	log.Printf("✅ Account rejected and deleted: %s", user.Email)
	return nil
}
