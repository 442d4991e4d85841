package services

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/jayamiko/Visual-Book-App-Server/internal/avatar"
	"github.com/jayamiko/Visual-Book-App-Server/internal/models"
	"github.com/jayamiko/Visual-Book-App-Server/internal/password"
	"github.com/jayamiko/Visual-Book-App-Server/internal/repo"
	"github.com/jayamiko/Visual-Book-App-Server/internal/token"
	"github.com/jayamiko/Visual-Book-App-Server/internal/utils"
)

// UserStore is the persistence contract the auth flows depend on.
// *repo.UserRepo satisfies it; tests use an in-memory fake.
type UserStore interface {
	Create(ctx context.Context, user *models.User) (*models.User, error)
	GetByEmail(ctx context.Context, email string) (*models.User, error)
	GetByID(ctx context.Context, id string) (*models.User, error)
	ExistsByEmail(ctx context.Context, email string) (bool, error)
	ExistsByFullName(ctx context.Context, fullName string) (bool, error)
	List(ctx context.Context) ([]models.User, error)
}

type AuthService struct {
	users   UserStore
	hasher  *password.Hasher
	tokens  *token.Manager
	avatars *avatar.Picker
	logger  *slog.Logger
}

func NewAuthService(users UserStore, hasher *password.Hasher, tokens *token.Manager, avatars *avatar.Picker, logger *slog.Logger) *AuthService {
	return &AuthService{users: users, hasher: hasher, tokens: tokens, avatars: avatars, logger: logger}
}

type RegisterInput struct {
	FullName string
	Email    string
	Password string
	Status   string
	Gender   string
	Phone    string
	City     string
	Avatar   string
}

type RegisterResult struct {
	FullName string `json:"fullName"`
	Token    string `json:"token"`
}

type LoginInput struct {
	Email    string
	Password string
}

type LoginResult struct {
	Name  string `json:"name"`
	Token string `json:"token"`
}

const loginFailedMessage = "Email or password are incorrect"

// Register creates an account and returns a fresh token for it. The full-name
// duplicate check runs before the email check; the first hit wins. The
// client-supplied avatar is ignored and a random default is assigned instead,
// matching the original contract.
func (s *AuthService) Register(ctx context.Context, in RegisterInput) (*RegisterResult, error) {
	nameExists, err := s.users.ExistsByFullName(ctx, in.FullName)
	if err != nil {
		return nil, s.internal("check full name", err)
	}
	if nameExists {
		return nil, utils.NewAppError(http.StatusBadRequest, utils.CodeDuplicateUser, "Full Name already exist")
	}

	emailExists, err := s.users.ExistsByEmail(ctx, in.Email)
	if err != nil {
		return nil, s.internal("check email", err)
	}
	if emailExists {
		return nil, utils.NewAppError(http.StatusBadRequest, utils.CodeDuplicateUser, "Email already exist")
	}

	hash, err := s.hasher.Hash(in.Password)
	if err != nil {
		return nil, s.internal("hash password", err)
	}

	user := &models.User{
		FullName:     in.FullName,
		Email:        in.Email,
		PasswordHash: hash,
		Status:       in.Status,
		Gender:       in.Gender,
		Phone:        in.Phone,
		City:         in.City,
		Avatar:       s.avatars.Pick(),
	}

	created, err := s.users.Create(ctx, user)
	if err != nil {
		// The pre-checks above are read-then-write; the unique index closes
		// the race between two concurrent registrations.
		if errors.Is(err, repo.ErrDuplicate) {
			return nil, utils.NewAppError(http.StatusBadRequest, utils.CodeDuplicateUser, "Email already exist")
		}
		return nil, s.internal("create user", err)
	}

	tok, err := s.tokens.Issue(created.ID, created.Status)
	if err != nil {
		return nil, s.internal("issue token", err)
	}

	return &RegisterResult{FullName: created.FullName, Token: tok}, nil
}

// Login verifies credentials and returns a fresh token. An unknown email and
// a wrong password produce the identical error so the caller cannot tell
// which one was wrong.
func (s *AuthService) Login(ctx context.Context, in LoginInput) (*LoginResult, error) {
	user, err := s.users.GetByEmail(ctx, in.Email)
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return nil, utils.NewAppError(http.StatusBadRequest, utils.CodeInvalidCredentials, loginFailedMessage)
		}
		return nil, s.internal("get user by email", err)
	}

	if !s.hasher.Verify(in.Password, user.PasswordHash) {
		return nil, utils.NewAppError(http.StatusBadRequest, utils.CodeInvalidCredentials, loginFailedMessage)
	}

	tok, err := s.tokens.Issue(user.ID, user.Status)
	if err != nil {
		return nil, s.internal("issue token", err)
	}

	return &LoginResult{Name: user.FullName, Token: tok}, nil
}

// CheckAuth resolves an authenticated identity back to its profile. The
// record can be gone by the time the token is used; that is a 404, not an
// auth failure.
func (s *AuthService) CheckAuth(ctx context.Context, id string) (*models.User, error) {
	user, err := s.users.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return nil, utils.NewAppError(http.StatusNotFound, utils.CodeNotFound, "")
		}
		return nil, s.internal("get user by id", err)
	}
	return user, nil
}

// ListUsers returns every account without password hashes.
func (s *AuthService) ListUsers(ctx context.Context) ([]models.User, error) {
	users, err := s.users.List(ctx)
	if err != nil {
		return nil, s.internal("list users", err)
	}
	return users, nil
}

// internal logs the real error and returns the generic message the caller is
// allowed to see.
func (s *AuthService) internal(op string, err error) error {
	s.logger.Error("auth service failure", "op", op, "error", err)
	return utils.NewAppError(http.StatusInternalServerError, utils.CodeInternal, "Internal server error")
}
