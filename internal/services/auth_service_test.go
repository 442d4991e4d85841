package services

import (
	"context"
	"io"
	"log/slog"
	"strings"
	"testing"
	"time"

	"github.com/jayamiko/Visual-Book-App-Server/internal/avatar"
	"github.com/jayamiko/Visual-Book-App-Server/internal/models"
	"github.com/jayamiko/Visual-Book-App-Server/internal/password"
	"github.com/jayamiko/Visual-Book-App-Server/internal/repo"
	"github.com/jayamiko/Visual-Book-App-Server/internal/token"
	"github.com/jayamiko/Visual-Book-App-Server/internal/utils"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeStore is an in-memory UserStore with the same not-found/duplicate
// semantics as the Postgres repo.
type fakeStore struct {
	users     map[string]*models.User
	createErr error
}

func newFakeStore() *fakeStore {
	return &fakeStore{users: make(map[string]*models.User)}
}

func (f *fakeStore) Create(_ context.Context, user *models.User) (*models.User, error) {
	if f.createErr != nil {
		return nil, f.createErr
	}
	for _, existing := range f.users {
		if existing.Email == user.Email || existing.FullName == user.FullName {
			return nil, repo.ErrDuplicate
		}
	}
	user.ID = uuid.NewString()
	user.CreatedAt = time.Now()
	user.UpdatedAt = user.CreatedAt
	stored := *user
	f.users[user.ID] = &stored
	return user, nil
}

func (f *fakeStore) GetByEmail(_ context.Context, email string) (*models.User, error) {
	for _, user := range f.users {
		if user.Email == email {
			found := *user
			return &found, nil
		}
	}
	return nil, repo.ErrNotFound
}

func (f *fakeStore) GetByID(_ context.Context, id string) (*models.User, error) {
	user, ok := f.users[id]
	if !ok {
		return nil, repo.ErrNotFound
	}
	found := *user
	found.PasswordHash = ""
	return &found, nil
}

func (f *fakeStore) ExistsByEmail(_ context.Context, email string) (bool, error) {
	for _, user := range f.users {
		if user.Email == email {
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeStore) ExistsByFullName(_ context.Context, fullName string) (bool, error) {
	for _, user := range f.users {
		if user.FullName == fullName {
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeStore) List(_ context.Context) ([]models.User, error) {
	var users []models.User
	for _, user := range f.users {
		found := *user
		found.PasswordHash = ""
		users = append(users, found)
	}
	return users, nil
}

func newTestService(store UserStore) (*AuthService, *token.Manager) {
	tokens := token.NewManager(token.Config{Secret: "test-secret", TTL: time.Hour})
	service := NewAuthService(
		store,
		password.NewHasher(password.DefaultCost),
		tokens,
		avatar.NewPicker("/uploads/avatar/"),
		slog.New(slog.NewTextHandler(io.Discard, nil)),
	)
	return service, tokens
}

func registerInput() RegisterInput {
	return RegisterInput{
		FullName: "Jane Doe",
		Email:    "jane@x.com",
		Password: "secret12",
		Status:   "user",
		Gender:   "f",
		Phone:    "123456789012",
		City:     "NYC",
	}
}

func TestRegisterIssuesTokenForNewUser(t *testing.T) {
	t.Parallel()

	store := newFakeStore()
	service, tokens := newTestService(store)

	result, err := service.Register(context.Background(), registerInput())
	require.NoError(t, err)
	assert.Equal(t, "Jane Doe", result.FullName)

	claims, err := tokens.Verify(result.Token)
	require.NoError(t, err)
	assert.Equal(t, "user", claims.Status)

	stored, err := store.GetByID(context.Background(), claims.ID)
	require.NoError(t, err)
	assert.Equal(t, "jane@x.com", stored.Email)
}

func TestRegisterStoresHashNotPlaintext(t *testing.T) {
	t.Parallel()

	store := newFakeStore()
	service, _ := newTestService(store)

	_, err := service.Register(context.Background(), registerInput())
	require.NoError(t, err)

	user, err := store.GetByEmail(context.Background(), "jane@x.com")
	require.NoError(t, err)
	assert.NotEqual(t, "secret12", user.PasswordHash)
	assert.True(t, strings.HasPrefix(user.PasswordHash, "$2"))
}

func TestRegisterAlwaysAssignsDefaultAvatar(t *testing.T) {
	t.Parallel()

	store := newFakeStore()
	service, _ := newTestService(store)

	in := registerInput()
	in.Avatar = "https://elsewhere.example/custom.png"
	_, err := service.Register(context.Background(), in)
	require.NoError(t, err)

	user, err := store.GetByEmail(context.Background(), "jane@x.com")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(user.Avatar, "/uploads/avatar/"))
	assert.NotEqual(t, in.Avatar, user.Avatar)
}

func TestRegisterDuplicateFullNameCheckedBeforeEmail(t *testing.T) {
	t.Parallel()

	store := newFakeStore()
	service, _ := newTestService(store)

	_, err := service.Register(context.Background(), registerInput())
	require.NoError(t, err)

	// Same full name and same email: the name collision must win.
	_, err = service.Register(context.Background(), registerInput())
	var appErr *utils.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, 400, appErr.Status)
	assert.Equal(t, utils.CodeDuplicateUser, appErr.Code)
	assert.Equal(t, "Full Name already exist", appErr.Message)
}

func TestRegisterDuplicateEmail(t *testing.T) {
	t.Parallel()

	store := newFakeStore()
	service, _ := newTestService(store)

	_, err := service.Register(context.Background(), registerInput())
	require.NoError(t, err)

	in := registerInput()
	in.FullName = "Janet Doe"
	_, err = service.Register(context.Background(), in)

	var appErr *utils.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, utils.CodeDuplicateUser, appErr.Code)
	assert.Equal(t, "Email already exist", appErr.Message)
}

func TestRegisterMapsStoreDuplicateToDuplicateUser(t *testing.T) {
	t.Parallel()

	// A concurrent registration can slip past the pre-checks; the unique
	// constraint violation must still surface as a duplicate-user error.
	store := newFakeStore()
	store.createErr = repo.ErrDuplicate
	service, _ := newTestService(store)

	_, err := service.Register(context.Background(), registerInput())

	var appErr *utils.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, 400, appErr.Status)
	assert.Equal(t, utils.CodeDuplicateUser, appErr.Code)
}

func TestLoginSuccess(t *testing.T) {
	t.Parallel()

	store := newFakeStore()
	service, tokens := newTestService(store)

	_, err := service.Register(context.Background(), registerInput())
	require.NoError(t, err)

	result, err := service.Login(context.Background(), LoginInput{Email: "jane@x.com", Password: "secret12"})
	require.NoError(t, err)
	assert.Equal(t, "Jane Doe", result.Name)

	claims, err := tokens.Verify(result.Token)
	require.NoError(t, err)
	assert.Equal(t, "user", claims.Status)
}

func TestLoginFailuresAreIndistinguishable(t *testing.T) {
	t.Parallel()

	store := newFakeStore()
	service, _ := newTestService(store)

	_, err := service.Register(context.Background(), registerInput())
	require.NoError(t, err)

	_, wrongPassword := service.Login(context.Background(), LoginInput{Email: "jane@x.com", Password: "wrong"})
	_, unknownEmail := service.Login(context.Background(), LoginInput{Email: "nobody@x.com", Password: "secret12"})

	var errA, errB *utils.AppError
	require.ErrorAs(t, wrongPassword, &errA)
	require.ErrorAs(t, unknownEmail, &errB)
	assert.Equal(t, errA.Status, errB.Status)
	assert.Equal(t, errA.Code, errB.Code)
	assert.Equal(t, errA.Message, errB.Message)
	assert.Equal(t, "Email or password are incorrect", errA.Message)
}

func TestCheckAuthReturnsProfileWithoutPassword(t *testing.T) {
	t.Parallel()

	store := newFakeStore()
	service, tokens := newTestService(store)

	result, err := service.Register(context.Background(), registerInput())
	require.NoError(t, err)

	claims, err := tokens.Verify(result.Token)
	require.NoError(t, err)

	user, err := service.CheckAuth(context.Background(), claims.ID)
	require.NoError(t, err)
	assert.Equal(t, "Jane Doe", user.FullName)
	assert.Equal(t, "jane@x.com", user.Email)
	assert.Empty(t, user.PasswordHash)
}

func TestCheckAuthUnknownIdentity(t *testing.T) {
	t.Parallel()

	store := newFakeStore()
	service, _ := newTestService(store)

	_, err := service.CheckAuth(context.Background(), uuid.NewString())

	var appErr *utils.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, 404, appErr.Status)
	assert.Equal(t, utils.CodeNotFound, appErr.Code)
}
