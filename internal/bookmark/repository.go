package bookmark

import (
	"context"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/taiwoajasa245/quran-api/internal/database"
)

type Repository interface {
	Create(ctx context.Context, surah, ayah int, createdAt time.Time) (*Bookmark, error)
	List(ctx context.Context) ([]Bookmark, error)
	Delete(ctx context.Context, id int64) error
}

type repository struct {
	db      *sqlx.DB
	dialect database.Dialect
}

func NewRepository(dbService database.Service) Repository {
	return &repository{db: dbService.DB(), dialect: dbService.Dialect()}
}

type bookmarkRow struct {
	ID        int64         `db:"id"`
	Surah     int           `db:"surah"`
	Ayah      int           `db:"ayah"`
	CreatedAt database.Time `db:"created_at"`
}

func (b bookmarkRow) toBookmark() Bookmark {
	return Bookmark{ID: b.ID, Surah: b.Surah, Ayah: b.Ayah, CreatedAt: b.CreatedAt.Time}
}

func (r *repository) Create(ctx context.Context, surah, ayah int, createdAt time.Time) (*Bookmark, error) {
	query := `
		INSERT INTO bookmarks (surah, ayah, created_at)
		VALUES (?, ?, ?)
		RETURNING id, surah, ayah, created_at
	`

	var row bookmarkRow
	err := r.db.QueryRowxContext(ctx, r.db.Rebind(query), surah, ayah, r.dialect.Timestamp(createdAt)).StructScan(&row)
	if err != nil {
		return nil, fmt.Errorf("failed to insert bookmark: %w", err)
	}

	b := row.toBookmark()
	return &b, nil
}

// List returns newest first. The id tiebreak keeps the order stable when two
// bookmarks share a timestamp.
func (r *repository) List(ctx context.Context) ([]Bookmark, error) {
	query := `
		SELECT id, surah, ayah, created_at
		FROM bookmarks
		ORDER BY created_at DESC, id DESC
	`

	var rows []bookmarkRow
	if err := r.db.SelectContext(ctx, &rows, query); err != nil {
		return nil, fmt.Errorf("failed to list bookmarks: %w", err)
	}

	bookmarks := make([]Bookmark, 0, len(rows))
	for _, row := range rows {
		bookmarks = append(bookmarks, row.toBookmark())
	}
	return bookmarks, nil
}

// Delete ignores the affected row count; removing an unknown id is a no-op.
func (r *repository) Delete(ctx context.Context, id int64) error {
	_, err := r.db.ExecContext(ctx, r.db.Rebind(`DELETE FROM bookmarks WHERE id = ?`), id)
	if err != nil {
		return fmt.Errorf("failed to delete bookmark %d: %w", id, err)
	}
	return nil
}
