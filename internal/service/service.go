package service

import (
	"context"
	"time"

	"movielists/internal/models"
	"movielists/internal/repository"
)

type Authorization interface {
	SignUp(ctx context.Context, username, password string) (int, string, error)
	SignIn(ctx context.Context, username, password string) (int, string, error)
	ParseToken(accessToken string) (int, error)
}

// Lists exposes the CRUD lifecycle for movie lists. Every mutation
// takes the verified requester identity and enforces ownership.
type Lists interface {
	ListAll(ctx context.Context) ([]models.MovieList, error)
	GetByID(ctx context.Context, id string) (models.MovieList, error)
	Create(ctx context.Context, ownerID int, in ListInput) (models.MovieList, error)
	Update(ctx context.Context, requesterID int, id string, in ListInput) (models.MovieList, error)
	Delete(ctx context.Context, requesterID int, id string) error
}

// ListInput carries the raw payload of a create or update request.
// Movies is free-form multi-line text; the service normalizes it into
// the ordered entries sequence.
type ListInput struct {
	Title  string
	Movies string
	Notes  string
}

// AuthConfig holds token issuance settings loaded from configuration.
type AuthConfig struct {
	SigningKey string
	TokenTTL   time.Duration
}

//
// Root Service aggregates all sub-services.
//

type Service struct {
	Authorization
	Lists
}

// NewService wires the repository layer into concrete services.
func NewService(repos *repository.Repository, auth AuthConfig) *Service {
	return &Service{
		Authorization: NewAuthService(repos.Auth, auth),
		Lists:         NewListService(repos.Lists),
	}
}
