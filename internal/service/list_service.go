package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"movielists/internal/models"
	"movielists/internal/repository"

	"github.com/google/uuid"
)

type ListService struct {
	listRepo repository.Lists
	now      func() time.Time
}

func NewListService(listRepo repository.Lists) *ListService {
	return &ListService{listRepo: listRepo, now: func() time.Time { return time.Now().UTC() }}
}

var _ Lists = (*ListService)(nil)

// ListAll returns every list, newest-created first, with owner
// usernames joined. Visibility is global: any authenticated caller sees
// all lists.
func (s *ListService) ListAll(ctx context.Context) ([]models.MovieList, error) {
	return s.listRepo.ListAll(ctx)
}

func (s *ListService) GetByID(ctx context.Context, id string) (models.MovieList, error) {
	l, err := s.listRepo.GetByID(ctx, id)
	if err != nil {
		return models.MovieList{}, err
	}
	if l == nil {
		return models.MovieList{}, ErrNotFound
	}
	return *l, nil
}

// Create validates and persists a new list owned by ownerID.
func (s *ListService) Create(ctx context.Context, ownerID int, in ListInput) (models.MovieList, error) {
	title := strings.TrimSpace(in.Title)
	if title == "" {
		return models.MovieList{}, fmt.Errorf("%w: title is required", ErrInvalidInput)
	}
	movies := normalizeMovies(in.Movies)
	if len(movies) == 0 {
		return models.MovieList{}, fmt.Errorf("%w: at least one movie is required", ErrInvalidInput)
	}

	now := s.now()
	l := models.MovieList{
		ID:        uuid.NewString(),
		OwnerID:   ownerID,
		Title:     title,
		Movies:    movies,
		Notes:     in.Notes,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := s.listRepo.Create(ctx, l); err != nil {
		return models.MovieList{}, err
	}

	// Re-read to pick up the joined owner username.
	return s.GetByID(ctx, l.ID)
}

// Update replaces movies and notes and, when a non-blank title is
// given, the title; a blank title keeps the stored one. Only the owner
// may update.
func (s *ListService) Update(ctx context.Context, requesterID int, id string, in ListInput) (models.MovieList, error) {
	cur, err := s.listRepo.GetByID(ctx, id)
	if err != nil {
		return models.MovieList{}, err
	}
	if cur == nil {
		return models.MovieList{}, ErrNotFound
	}
	if cur.OwnerID != requesterID {
		return models.MovieList{}, fmt.Errorf("%w: cannot update another user's list", ErrForbidden)
	}

	movies := normalizeMovies(in.Movies)
	if len(movies) == 0 {
		return models.MovieList{}, fmt.Errorf("%w: at least one movie is required", ErrInvalidInput)
	}
	if title := strings.TrimSpace(in.Title); title != "" {
		cur.Title = title
	}
	cur.Movies = movies
	cur.Notes = in.Notes // replaced wholesale; blank clears
	cur.UpdatedAt = s.now()

	if err := s.listRepo.Update(ctx, *cur); err != nil {
		return models.MovieList{}, err
	}
	return s.GetByID(ctx, id)
}

// Delete removes a list permanently. Only the owner may delete.
func (s *ListService) Delete(ctx context.Context, requesterID int, id string) error {
	cur, err := s.listRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if cur == nil {
		return ErrNotFound
	}
	if cur.OwnerID != requesterID {
		return fmt.Errorf("%w: cannot delete another user's list", ErrForbidden)
	}
	return s.listRepo.Delete(ctx, id)
}
