package services

import (
	"context"
	"errors"
	"mime/multipart"
	"testing"

	"campus-connect/internal/adapters/persistence/models"
	"campus-connect/internal/config"
	"campus-connect/internal/core/domain"
	"campus-connect/internal/pkg/jwt"
	"campus-connect/internal/pkg/upload"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// ------------------------------------------------------------
// in-memory fakes
// ------------------------------------------------------------

type fakeUserRepo struct {
	users  map[uint]*models.User
	nextID uint
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: map[uint]*models.User{}}
}

func (r *fakeUserRepo) Create(_ context.Context, user *models.User) error {
	r.nextID++
	user.ID = r.nextID
	copied := *user
	r.users[user.ID] = &copied
	return nil
}

func (r *fakeUserRepo) GetByID(_ context.Context, id uint) (*models.User, error) {
	user, ok := r.users[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	copied := *user
	return &copied, nil
}

func (r *fakeUserRepo) GetByEmail(_ context.Context, email string) (*models.User, error) {
	for _, user := range r.users {
		if user.Email == email {
			copied := *user
			return &copied, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *fakeUserRepo) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	_, err := r.GetByEmail(ctx, email)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return false, nil
	}
	return err == nil, err
}

func (r *fakeUserRepo) Update(_ context.Context, user *models.User) error {
	if _, ok := r.users[user.ID]; !ok {
		return gorm.ErrRecordNotFound
	}
	copied := *user
	r.users[user.ID] = &copied
	return nil
}

func (r *fakeUserRepo) Delete(_ context.Context, id uint) error {
	if _, ok := r.users[id]; !ok {
		return gorm.ErrRecordNotFound
	}
	delete(r.users, id)
	return nil
}

func (r *fakeUserRepo) ListPending(_ context.Context, offset, limit int) ([]*models.User, int64, error) {
	var pending []*models.User
	for _, user := range r.users {
		if !user.IsApproved {
			copied := *user
			pending = append(pending, &copied)
		}
	}
	total := int64(len(pending))
	if offset >= len(pending) {
		return nil, total, nil
	}
	end := offset + limit
	if end > len(pending) {
		end = len(pending)
	}
	return pending[offset:end], total, nil
}

type fakeProfileRepo struct {
	students     map[uint]*models.StudentProfile
	admins       map[uint]*models.AdminProfile
	seating      map[uint]*models.SeatingManagerProfile
	coordinators map[uint]*models.ClubCoordinatorProfile
	failCreate   bool
}

func newFakeProfileRepo() *fakeProfileRepo {
	return &fakeProfileRepo{
		students:     map[uint]*models.StudentProfile{},
		admins:       map[uint]*models.AdminProfile{},
		seating:      map[uint]*models.SeatingManagerProfile{},
		coordinators: map[uint]*models.ClubCoordinatorProfile{},
	}
}

func (r *fakeProfileRepo) CreateStudent(_ context.Context, p *models.StudentProfile) error {
	if r.failCreate {
		return errors.New("insert failed")
	}
	r.students[p.UserID] = p
	return nil
}

func (r *fakeProfileRepo) CreateAdmin(_ context.Context, p *models.AdminProfile) error {
	if r.failCreate {
		return errors.New("insert failed")
	}
	r.admins[p.UserID] = p
	return nil
}

func (r *fakeProfileRepo) CreateSeatingManager(_ context.Context, p *models.SeatingManagerProfile) error {
	if r.failCreate {
		return errors.New("insert failed")
	}
	r.seating[p.UserID] = p
	return nil
}

func (r *fakeProfileRepo) CreateClubCoordinator(_ context.Context, p *models.ClubCoordinatorProfile) error {
	if r.failCreate {
		return errors.New("insert failed")
	}
	r.coordinators[p.UserID] = p
	return nil
}

func (r *fakeProfileRepo) GetStudentByUserID(_ context.Context, userID uint) (*models.StudentProfile, error) {
	p, ok := r.students[userID]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return p, nil
}

func (r *fakeProfileRepo) GetAdminByUserID(_ context.Context, userID uint) (*models.AdminProfile, error) {
	p, ok := r.admins[userID]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return p, nil
}

func (r *fakeProfileRepo) GetSeatingManagerByUserID(_ context.Context, userID uint) (*models.SeatingManagerProfile, error) {
	p, ok := r.seating[userID]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return p, nil
}

func (r *fakeProfileRepo) GetClubCoordinatorByUserID(_ context.Context, userID uint) (*models.ClubCoordinatorProfile, error) {
	p, ok := r.coordinators[userID]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return p, nil
}

func (r *fakeProfileRepo) DeleteByUserID(_ context.Context, role string, userID uint) error {
	switch role {
	case models.RoleAdmin:
		delete(r.admins, userID)
	case models.RoleSeatingManager:
		delete(r.seating, userID)
	case models.RoleClubCoordinator:
		delete(r.coordinators, userID)
	default:
		delete(r.students, userID)
	}
	return nil
}

type fakeUploader struct {
	uploads   int
	destroyed []string
	failNext  bool
}

func (u *fakeUploader) Upload(_ context.Context, file *multipart.FileHeader) (*upload.Result, error) {
	if u.failNext {
		return nil, errors.New("media host unreachable")
	}
	u.uploads++
	return &upload.Result{
		URL:      "https://media.test/" + file.Filename,
		PublicID: "media/" + file.Filename,
	}, nil
}

func (u *fakeUploader) Destroy(_ context.Context, publicID string) error {
	u.destroyed = append(u.destroyed, publicID)
	return nil
}

// ------------------------------------------------------------
// helpers
// ------------------------------------------------------------

func testConfig() *config.Config {
	return &config.Config{
		JWT:        config.JWTConfig{Secret: "test-secret", TokenDays: 10},
		BcryptCost: bcrypt.MinCost,
	}
}

func newTestService() (*AuthService, *fakeUserRepo, *fakeProfileRepo, *fakeUploader) {
	userRepo := newFakeUserRepo()
	profileRepo := newFakeProfileRepo()
	uploader := &fakeUploader{}
	svc := NewAuthService(userRepo, profileRepo, uploader, testConfig())
	return svc, userRepo, profileRepo, uploader
}

func signupInput(email, role string) *SignupInput {
	return &SignupInput{
		InstituteName: "IIT Patna",
		Phone:         "9876543210",
		Email:         email,
		Password:      "secret123",
		Role:          role,
		FullName:      "Test User",
	}
}

func testImage() *multipart.FileHeader {
	return &multipart.FileHeader{Filename: "avatar.png"}
}

// ------------------------------------------------------------
// signup
// ------------------------------------------------------------

func TestSignupApprovalDefaults(t *testing.T) {
	cases := []struct {
		role     string
		approved bool
	}{
		{models.RoleStudent, false},
		{models.RoleAdmin, true},
		{models.RoleSeatingManager, true},
		{models.RoleClubCoordinator, true},
	}

	for _, tc := range cases {
		t.Run(tc.role, func(t *testing.T) {
			svc, _, _, _ := newTestService()
			user, err := svc.Signup(context.Background(), signupInput(tc.role+"@campus.edu", tc.role), testImage())
			require.NoError(t, err)
			assert.Equal(t, tc.approved, user.IsApproved)
			assert.Equal(t, tc.role, user.Role)
		})
	}
}

func TestSignupDuplicateEmail(t *testing.T) {
	svc, _, _, _ := newTestService()

	_, err := svc.Signup(context.Background(), signupInput("dup@campus.edu", models.RoleStudent), testImage())
	require.NoError(t, err)

	_, err = svc.Signup(context.Background(), signupInput("dup@campus.edu", models.RoleAdmin), testImage())
	assert.ErrorIs(t, err, domain.ErrDuplicateEmail)
}

func TestSignupInvalidInput(t *testing.T) {
	svc, userRepo, _, uploader := newTestService()

	input := signupInput("not-an-email", models.RoleStudent)
	_, err := svc.Signup(context.Background(), input, testImage())
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	input = signupInput("short@campus.edu", models.RoleStudent)
	input.Password = "12345"
	_, err = svc.Signup(context.Background(), input, testImage())
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	input = signupInput("role@campus.edu", "superuser")
	_, err = svc.Signup(context.Background(), input, testImage())
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	// nothing persisted, nothing uploaded
	assert.Empty(t, userRepo.users)
	assert.Zero(t, uploader.uploads)
}

func TestSignupUploadFailure(t *testing.T) {
	svc, userRepo, _, uploader := newTestService()
	uploader.failNext = true

	_, err := svc.Signup(context.Background(), signupInput("img@campus.edu", models.RoleStudent), testImage())
	assert.ErrorIs(t, err, domain.ErrUploadFailed)
	assert.Empty(t, userRepo.users)
}

func TestSignupProfileFailureKeepsAccount(t *testing.T) {
	svc, userRepo, profileRepo, _ := newTestService()
	profileRepo.failCreate = true

	_, err := svc.Signup(context.Background(), signupInput("orphan@campus.edu", models.RoleStudent), testImage())
	assert.ErrorIs(t, err, domain.ErrProfileCreation)

	// the account row survives the profile failure
	saved, err := userRepo.GetByEmail(context.Background(), "orphan@campus.edu")
	require.NoError(t, err)
	assert.Equal(t, models.RoleStudent, saved.Role)
	assert.Empty(t, profileRepo.students)
}

func TestSignupSeatingManagerRooms(t *testing.T) {
	svc, _, profileRepo, _ := newTestService()

	input := signupInput("seats@campus.edu", models.RoleSeatingManager)
	input.RoomsManaged = "Hall A, Hall B ,, Hall C"
	input.Department = "Examinations"

	user, err := svc.Signup(context.Background(), input, testImage())
	require.NoError(t, err)

	profile := profileRepo.seating[user.ID]
	require.NotNil(t, profile)
	assert.Equal(t, []string{"Hall A", "Hall B", "Hall C"}, profile.RoomsList())
	assert.Equal(t, "Examinations", profile.Department)
}

func TestSignupClubCoordinatorProfile(t *testing.T) {
	svc, _, profileRepo, _ := newTestService()

	input := signupInput("clubs@campus.edu", models.RoleClubCoordinator)
	input.ClubName = "Robotics Club"
	input.ClubEmail = "robotics@campus.edu"

	user, err := svc.Signup(context.Background(), input, testImage())
	require.NoError(t, err)

	profile := profileRepo.coordinators[user.ID]
	require.NotNil(t, profile)
	assert.Equal(t, "Robotics Club", profile.ClubName)
}

// ------------------------------------------------------------
// login & approval gate
// ------------------------------------------------------------

func TestLoginPendingApproval(t *testing.T) {
	svc, _, _, _ := newTestService()

	_, err := svc.Signup(context.Background(), signupInput("pending@campus.edu", models.RoleStudent), testImage())
	require.NoError(t, err)

	_, err = svc.Login(context.Background(), "pending@campus.edu", "secret123")
	assert.ErrorIs(t, err, domain.ErrPendingApproval)
}

func TestLoginWrongPasswordBeforeApprovalCheck(t *testing.T) {
	svc, _, _, _ := newTestService()

	_, err := svc.Signup(context.Background(), signupInput("pending@campus.edu", models.RoleStudent), testImage())
	require.NoError(t, err)

	// a bad password on a pending account reports invalid credentials,
	// not pending approval
	_, err = svc.Login(context.Background(), "pending@campus.edu", "wrong-password")
	assert.ErrorIs(t, err, domain.ErrInvalidCredentials)
}

func TestLoginUnknownEmail(t *testing.T) {
	svc, _, _, _ := newTestService()

	_, err := svc.Login(context.Background(), "nobody@campus.edu", "secret123")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestStudentApprovalFlow(t *testing.T) {
	svc, _, _, _ := newTestService()

	user, err := svc.Signup(context.Background(), signupInput("flow@campus.edu", models.RoleStudent), testImage())
	require.NoError(t, err)

	_, err = svc.Login(context.Background(), "flow@campus.edu", "secret123")
	require.ErrorIs(t, err, domain.ErrPendingApproval)

	approved, err := svc.Approve(context.Background(), user.ID)
	require.NoError(t, err)
	assert.True(t, approved.IsApproved)

	out, err := svc.Login(context.Background(), "flow@campus.edu", "secret123")
	require.NoError(t, err)
	require.NotEmpty(t, out.Token)

	claims, err := jwt.ValidateToken(out.Token, "test-secret")
	require.NoError(t, err)
	assert.Equal(t, user.ID, claims.UserID)
	assert.Equal(t, models.RoleStudent, claims.Role)
	assert.Equal(t, "IIT Patna", claims.InstituteName)
}

func TestAdminLogsInImmediately(t *testing.T) {
	svc, _, _, _ := newTestService()

	_, err := svc.Signup(context.Background(), signupInput("boss@campus.edu", models.RoleAdmin), testImage())
	require.NoError(t, err)

	out, err := svc.Login(context.Background(), "boss@campus.edu", "secret123")
	require.NoError(t, err)
	assert.Equal(t, models.RoleAdmin, out.User.Role)
}

// ------------------------------------------------------------
// approve / reject
// ------------------------------------------------------------

func TestApproveIdempotent(t *testing.T) {
	svc, _, _, _ := newTestService()

	user, err := svc.Signup(context.Background(), signupInput("twice@campus.edu", models.RoleStudent), testImage())
	require.NoError(t, err)

	first, err := svc.Approve(context.Background(), user.ID)
	require.NoError(t, err)
	second, err := svc.Approve(context.Background(), user.ID)
	require.NoError(t, err)

	assert.True(t, first.IsApproved)
	assert.True(t, second.IsApproved)
}

func TestApproveUnknownUser(t *testing.T) {
	svc, _, _, _ := newTestService()

	_, err := svc.Approve(context.Background(), 999)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestRejectDeletesAccountAndCleansUp(t *testing.T) {
	svc, _, profileRepo, uploader := newTestService()

	user, err := svc.Signup(context.Background(), signupInput("gone@campus.edu", models.RoleStudent), testImage())
	require.NoError(t, err)

	require.NoError(t, svc.Reject(context.Background(), user.ID))

	// rejected account cannot log in anymore
	_, err = svc.Login(context.Background(), "gone@campus.edu", "secret123")
	assert.ErrorIs(t, err, domain.ErrNotFound)

	assert.Contains(t, uploader.destroyed, "media/avatar.png")
	assert.Empty(t, profileRepo.students)
}

func TestRejectUnknownUser(t *testing.T) {
	svc, _, _, _ := newTestService()

	err := svc.Reject(context.Background(), 999)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

// ------------------------------------------------------------
// profiles & pending queue
// ------------------------------------------------------------

func TestGetProfileSeatingManager(t *testing.T) {
	svc, _, _, _ := newTestService()

	input := signupInput("sm@campus.edu", models.RoleSeatingManager)
	input.RoomsManaged = "Hall A,Hall B"
	user, err := svc.Signup(context.Background(), input, testImage())
	require.NoError(t, err)

	out, err := svc.GetProfile(context.Background(), user.ID, models.RoleSeatingManager)
	require.NoError(t, err)
	assert.Equal(t, models.RoleSeatingManager, out.Role)

	profile, ok := out.Profile.(*SeatingManagerProfileResponse)
	require.True(t, ok)
	assert.Equal(t, []string{"Hall A", "Hall B"}, profile.RoomsManaged)
}

func TestGetProfileMissing(t *testing.T) {
	svc, _, _, _ := newTestService()

	_, err := svc.GetProfile(context.Background(), 42, models.RoleStudent)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestPendingApprovalsListsOnlyUnapproved(t *testing.T) {
	svc, _, _, _ := newTestService()

	_, err := svc.Signup(context.Background(), signupInput("s1@campus.edu", models.RoleStudent), testImage())
	require.NoError(t, err)
	_, err = svc.Signup(context.Background(), signupInput("s2@campus.edu", models.RoleStudent), testImage())
	require.NoError(t, err)
	_, err = svc.Signup(context.Background(), signupInput("a1@campus.edu", models.RoleAdmin), testImage())
	require.NoError(t, err)

	pending, total, err := svc.PendingApprovals(context.Background(), 0, 20)
	require.NoError(t, err)
	assert.Equal(t, int64(2), total)
	assert.Len(t, pending, 2)
	for _, user := range pending {
		assert.False(t, user.IsApproved)
	}
}
