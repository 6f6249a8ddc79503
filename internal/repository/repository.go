package repository

import (
	"context"
	"database/sql"

	"movielists/internal/models"
)

type Authorization interface {
	Create(ctx context.Context, username, hash string) (int, error)
	GetByUsername(ctx context.Context, username string) (*models.User, error)
}

// Lists provides persistence for movie lists. Reads join the owner's
// username onto the returned records.
type Lists interface {
	Create(ctx context.Context, l models.MovieList) error
	GetByID(ctx context.Context, id string) (*models.MovieList, error)
	ListAll(ctx context.Context) ([]models.MovieList, error)
	Update(ctx context.Context, l models.MovieList) error
	Delete(ctx context.Context, id string) error
}

type Repository struct {
	Auth  Authorization
	Lists Lists
}

func NewRepository(db *sql.DB) *Repository {
	return &Repository{
		Auth:  NewUserRepository(db),
		Lists: NewListRepository(db),
	}
}
