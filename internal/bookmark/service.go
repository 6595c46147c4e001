package bookmark

import (
	"context"
	"log/slog"
	"time"
)

type BookmarkService struct {
	repo   Repository
	now    func() time.Time
	logger *slog.Logger
}

func NewBookmarkService(repo Repository) BookmarkService {
	return BookmarkService{
		repo:   repo,
		now:    time.Now,
		logger: slog.Default().With("component", "bookmark"),
	}
}

// WithClock returns a copy of the service that stamps bookmarks using now.
func (s BookmarkService) WithClock(now func() time.Time) BookmarkService {
	s.now = now
	return s
}

// Create stores a bookmark for any (surah, ayah) pair. Neither existence in
// the corpus nor duplicates are checked.
func (s *BookmarkService) Create(ctx context.Context, surah, ayah int) (*Bookmark, error) {
	b, err := s.repo.Create(ctx, surah, ayah, s.now())
	if err != nil {
		s.logger.Error("error creating bookmark", "surah", surah, "ayah", ayah, "error", err)
		return nil, err
	}
	return b, nil
}

func (s *BookmarkService) List(ctx context.Context) ([]Bookmark, error) {
	bookmarks, err := s.repo.List(ctx)
	if err != nil {
		s.logger.Error("error listing bookmarks", "error", err)
		return nil, err
	}
	return bookmarks, nil
}

func (s *BookmarkService) Delete(ctx context.Context, id int64) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		s.logger.Error("error deleting bookmark", "id", id, "error", err)
		return err
	}
	return nil
}
