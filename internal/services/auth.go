package services

import (
	"context"
	"errors"
	"unicode/utf8"

	"github.com/example/studytracker/internal/logger"
	"github.com/example/studytracker/internal/models"
	"github.com/example/studytracker/internal/passwords"
	"github.com/example/studytracker/internal/repositories"
)

// Error variables
var (
	ErrPasswordMismatch   = errors.New("password and confirmation do not match")
	ErrInvalidUsername    = errors.New("username must be 3 to 15 characters")
	ErrUsernameTaken      = errors.New("username already exists")
	ErrInvalidCredentials = errors.New("invalid username or password")
	ErrNoSession          = errors.New("no active session")
)

// Username length bounds, inclusive.
const (
	usernameMinLen = 3
	usernameMaxLen = 15
)

// StudentReader defines read-only operations for students.
type StudentReader interface {
	GetByUsername(ctx context.Context, username string) (*models.StudentDB, error)
	GetByID(ctx context.Context, id int64) (*models.StudentDB, error)
}

// StudentWriter defines write operations for students.
type StudentWriter interface {
	Save(ctx context.Context, username, passwordHash string) (*models.StudentDB, error)
}

// SessionStore defines the server-side session lifecycle: a token is
// absent or active, nothing else.
type SessionStore interface {
	Open(ctx context.Context, studentID int64) (string, error)
	Resolve(ctx context.Context, token string) (int64, bool, error)
	Close(ctx context.Context, token string) (bool, error)
}

// AuthService handles signup, login, logout and session checks.
type AuthService struct {
	reader   StudentReader
	writer   StudentWriter
	sessions SessionStore
}

// NewAuthService creates a new AuthService instance.
func NewAuthService(reader StudentReader, writer StudentWriter, sessions SessionStore) *AuthService {
	return &AuthService{
		reader:   reader,
		writer:   writer,
		sessions: sessions,
	}
}

// Signup creates a new account and opens a session for it.
// Returns the public identity and the session token.
func (svc *AuthService) Signup(ctx context.Context, username, password, passwordConfirmation string) (*models.Student, string, error) {
	if password != passwordConfirmation {
		logger.Log.Errorw("password confirmation mismatch", "username", username)
		return nil, "", ErrPasswordMismatch
	}

	if n := utf8.RuneCountInString(username); n < usernameMinLen || n > usernameMaxLen {
		logger.Log.Errorw("invalid username length", "username", username, "length", n)
		return nil, "", ErrInvalidUsername
	}

	hash, err := passwords.Hash(password)
	if err != nil {
		logger.Log.Errorw("failed to hash password", "err", err)
		return nil, "", err
	}

	existing, err := svc.reader.GetByUsername(ctx, username)
	if err != nil {
		logger.Log.Errorw("failed to check username", "err", err)
		return nil, "", err
	}
	if existing != nil {
		logger.Log.Errorw("username already taken", "username", username)
		return nil, "", ErrUsernameTaken
	}

	student, err := svc.writer.Save(ctx, username, hash)
	if err != nil {
		// A concurrent signup can still hit the unique constraint.
		if errors.Is(err, repositories.ErrConflict) {
			return nil, "", ErrUsernameTaken
		}
		logger.Log.Errorw("failed to save student", "err", err)
		return nil, "", err
	}

	token, err := svc.sessions.Open(ctx, student.ID)
	if err != nil {
		logger.Log.Errorw("failed to open session", "err", err)
		return nil, "", err
	}

	return student.Identity(), token, nil
}

// Login verifies credentials and opens a new session.
func (svc *AuthService) Login(ctx context.Context, username, password string) (*models.Student, string, error) {
	student, err := svc.reader.GetByUsername(ctx, username)
	if err != nil {
		logger.Log.Errorw("failed to get student", "err", err)
		return nil, "", err
	}
	if student == nil {
		logger.Log.Errorw("unknown username", "username", username)
		return nil, "", ErrInvalidCredentials
	}

	if !passwords.Verify(student.PasswordHash, password) {
		logger.Log.Errorw("invalid credentials", "username", username)
		return nil, "", ErrInvalidCredentials
	}

	token, err := svc.sessions.Open(ctx, student.ID)
	if err != nil {
		logger.Log.Errorw("failed to open session", "err", err)
		return nil, "", err
	}

	return student.Identity(), token, nil
}

// Logout destroys the session bound to the token.
func (svc *AuthService) Logout(ctx context.Context, token string) error {
	closed, err := svc.sessions.Close(ctx, token)
	if err != nil {
		logger.Log.Errorw("failed to close session", "err", err)
		return err
	}
	if !closed {
		return ErrNoSession
	}
	return nil
}

// CheckSession resolves the token and returns the identity of its account.
// A token whose account no longer exists is treated as no session.
func (svc *AuthService) CheckSession(ctx context.Context, token string) (*models.Student, error) {
	studentID, ok, err := svc.sessions.Resolve(ctx, token)
	if err != nil {
		logger.Log.Errorw("failed to resolve session", "err", err)
		return nil, err
	}
	if !ok {
		return nil, ErrNoSession
	}

	student, err := svc.reader.GetByID(ctx, studentID)
	if err != nil {
		logger.Log.Errorw("failed to get student", "err", err)
		return nil, err
	}
	if student == nil {
		return nil, ErrNoSession
	}

	return student.Identity(), nil
}
