package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"product-catalog/internal/domain"
)

var (
	ErrUserAlreadyExists = errors.New("user with this name already exists")
)

// UserRepository defines the interface for user data access
type UserRepository interface {
	Create(ctx context.Context, user *domain.User) error
}

type userRepository struct {
	db *sql.DB
}

// NewUserRepository creates a new instance of UserRepository
func NewUserRepository(db *sql.DB) UserRepository {
	return &userRepository{db: db}
}

// Create inserts a new user and fills in its generated ID
func (r *userRepository) Create(ctx context.Context, user *domain.User) error {
	query := `
		INSERT INTO users (name)
		VALUES ($1)
		RETURNING id
	`

	err := r.db.QueryRowContext(ctx, query, user.Name).Scan(&user.ID)
	if err != nil {
		if isUniqueViolation(err) {
			return ErrUserAlreadyExists
		}
		if isInvalidValue(err) {
			return ErrInvalidValue
		}
		return fmt.Errorf("failed to create user: %w", err)
	}

	return nil
}
