package auth

import (
	"context"
	"database/sql"
	"errors"

	"farefinder/pkg/logger"
)

// UserStore is the persistence capability the auth service depends on.
type UserStore interface {
	Create(ctx context.Context, email, password string) (int64, error)
	FindByCredentials(ctx context.Context, email, password string) (*User, error)
}

type Service struct {
	users  UserStore
	logger logger.Client
}

func NewService(users UserStore, logger logger.Client) *Service {
	return &Service{
		users:  users,
		logger: logger,
	}
}

type RegisterResult struct {
	Success bool   `json:"success"`
	UserID  int64  `json:"userId,omitempty"`
	Error   string `json:"error,omitempty"`
}

type LoginResult struct {
	Success bool   `json:"success"`
	User    *User  `json:"user,omitempty"`
	Error   string `json:"error,omitempty"`
}

// Register creates an account. Constraint violations (duplicate email) are
// reported back with the raw storage error message.
func (s *Service) Register(ctx context.Context, email, password string) RegisterResult {
	id, err := s.users.Create(ctx, email, password)
	if err != nil {
		s.logger.Warn("registration failed",
			logger.Field{Key: "email", Value: email},
			logger.Field{Key: "err", Value: err},
		)
		return RegisterResult{Success: false, Error: err.Error()}
	}
	return RegisterResult{Success: true, UserID: id}
}

// Login matches the stored password verbatim against the submitted one.
func (s *Service) Login(ctx context.Context, email, password string) LoginResult {
	user, err := s.users.FindByCredentials(ctx, email, password)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return LoginResult{Success: false, Error: "Invalid credentials"}
		}
		s.logger.Error("login query failed", logger.Field{Key: "err", Value: err})
		return LoginResult{Success: false, Error: err.Error()}
	}
	return LoginResult{Success: true, User: user}
}
