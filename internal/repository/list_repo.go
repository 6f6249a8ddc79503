package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"movielists/internal/models"
)

type ListRepository struct {
	db *sql.DB
}

func NewListRepository(db *sql.DB) *ListRepository {
	return &ListRepository{db: db}
}

var _ Lists = (*ListRepository)(nil)

const (
	insertListSQL = `INSERT INTO movie_lists (id, owner_id, title, movies, notes, created_at, updated_at) VALUES (?, ?, ?, ?, ?, ?, ?)`

	selectListByIDSQL = `SELECT l.id, l.owner_id, u.username, l.title, l.movies, l.notes, l.created_at, l.updated_at
FROM movie_lists l JOIN users u ON u.id = l.owner_id
WHERE l.id = ?`

	selectAllListsSQL = `SELECT l.id, l.owner_id, u.username, l.title, l.movies, l.notes, l.created_at, l.updated_at
FROM movie_lists l JOIN users u ON u.id = l.owner_id
ORDER BY l.created_at DESC`

	updateListSQL = `UPDATE movie_lists SET title = ?, movies = ?, notes = ?, updated_at = ? WHERE id = ?`

	deleteListSQL = `DELETE FROM movie_lists WHERE id = ?`
)

// Create inserts a new list. Movies are stored as a JSON array to keep
// entry order intact.
func (r *ListRepository) Create(ctx context.Context, l models.MovieList) error {
	movies, err := json.Marshal(l.Movies)
	if err != nil {
		return fmt.Errorf("marshal movies for list %q: %w", l.ID, err)
	}
	_, err = r.db.ExecContext(ctx, insertListSQL,
		l.ID,
		l.OwnerID,
		l.Title,
		string(movies),
		l.Notes,
		l.CreatedAt.UTC().Format(timeLayout),
		l.UpdatedAt.UTC().Format(timeLayout),
	)
	if err != nil {
		return fmt.Errorf("insert list %q: %w", l.ID, err)
	}
	return nil
}

// GetByID fetches a list with its owner's username. Returns (nil, nil) if not found.
func (r *ListRepository) GetByID(ctx context.Context, id string) (*models.MovieList, error) {
	l, err := scanList(r.db.QueryRowContext(ctx, selectListByIDSQL, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("select list %q: %w", id, err)
	}
	return l, nil
}

// ListAll returns every list, newest-created first, owner usernames joined.
func (r *ListRepository) ListAll(ctx context.Context) ([]models.MovieList, error) {
	rows, err := r.db.QueryContext(ctx, selectAllListsSQL)
	if err != nil {
		return nil, fmt.Errorf("select lists: %w", err)
	}
	defer rows.Close()

	out := make([]models.MovieList, 0, 16)
	for rows.Next() {
		l, err := scanList(rows)
		if err != nil {
			return nil, fmt.Errorf("scan list row: %w", err)
		}
		out = append(out, *l)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate list rows: %w", err)
	}
	return out, nil
}

// Update replaces title, movies and notes and advances updated_at.
// Owner and created_at are never touched.
func (r *ListRepository) Update(ctx context.Context, l models.MovieList) error {
	movies, err := json.Marshal(l.Movies)
	if err != nil {
		return fmt.Errorf("marshal movies for list %q: %w", l.ID, err)
	}
	_, err = r.db.ExecContext(ctx, updateListSQL,
		l.Title,
		string(movies),
		l.Notes,
		l.UpdatedAt.UTC().Format(timeLayout),
		l.ID,
	)
	if err != nil {
		return fmt.Errorf("update list %q: %w", l.ID, err)
	}
	return nil
}

// Delete removes a list permanently.
func (r *ListRepository) Delete(ctx context.Context, id string) error {
	if _, err := r.db.ExecContext(ctx, deleteListSQL, id); err != nil {
		return fmt.Errorf("delete list %q: %w", id, err)
	}
	return nil
}

// rowScanner is satisfied by both *sql.Row and *sql.Rows.
type rowScanner interface {
	Scan(dest ...any) error
}

func scanList(row rowScanner) (*models.MovieList, error) {
	var (
		l      models.MovieList
		movies string
		notes  sql.NullString
	)
	if err := row.Scan(&l.ID, &l.OwnerID, &l.OwnerUsername, &l.Title, &movies, &notes, &l.CreatedAt, &l.UpdatedAt); err != nil {
		return nil, err
	}
	if err := json.Unmarshal([]byte(movies), &l.Movies); err != nil {
		return nil, fmt.Errorf("unmarshal movies for list %q: %w", l.ID, err)
	}
	if notes.Valid {
		l.Notes = notes.String
	}
	l.CreatedAt = l.CreatedAt.UTC()
	l.UpdatedAt = l.UpdatedAt.UTC()
	return &l, nil
}
