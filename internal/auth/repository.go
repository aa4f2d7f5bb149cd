package auth

import (
	"context"

	"farefinder/pkg/db"
)

type User struct {
	ID    int64  `json:"id"`
	Email string `json:"email"`
}

type Repository struct {
	db db.SQLExecutor
}

func NewRepository(executor db.SQLExecutor) *Repository {
	return &Repository{db: executor}
}

// Create inserts a new account and returns its generated id. The email
// uniqueness constraint surfaces as a driver error.
func (r *Repository) Create(ctx context.Context, email, password string) (int64, error) {
	query := "INSERT INTO users (email, password) VALUES ($1, $2) RETURNING id"
	var id int64
	if err := r.db.QueryRowContext(ctx, query, email, password).Scan(&id); err != nil {
		return 0, err
	}
	return id, nil
}

// FindByCredentials looks up an account by exact email and password match.
// Returns sql.ErrNoRows when no account matches.
func (r *Repository) FindByCredentials(ctx context.Context, email, password string) (*User, error) {
	query := "SELECT id, email FROM users WHERE email = $1 AND password = $2"
	var user User
	if err := r.db.QueryRowContext(ctx, query, email, password).Scan(&user.ID, &user.Email); err != nil {
		return nil, err
	}
	return &user, nil
}
