package quran

import (
	"context"
	"log/slog"
)

type QuranService struct {
	repo   Repository
	logger *slog.Logger
}

func NewQuranService(repo Repository) QuranService {
	return QuranService{
		repo:   repo,
		logger: slog.Default().With("component", "quran"),
	}
}

func (s *QuranService) GetSurahs(ctx context.Context) ([]Surah, error) {
	surahs, err := s.repo.ListSurahs(ctx)
	if err != nil {
		s.logger.Error("error listing surahs", "error", err)
		return nil, err
	}
	if surahs == nil {
		surahs = []Surah{}
	}
	return surahs, nil
}

func (s *QuranService) GetAyahs(ctx context.Context, surah *int) ([]Ayah, error) {
	ayahs, err := s.repo.ListAyahs(ctx, surah)
	if err != nil {
		s.logger.Error("error listing ayahs", "surah", surah, "error", err)
		return nil, err
	}
	if ayahs == nil {
		ayahs = []Ayah{}
	}
	return ayahs, nil
}

// Search returns no rows for an empty term instead of the whole corpus.
func (s *QuranService) Search(ctx context.Context, term string) ([]Ayah, error) {
	if term == "" {
		return []Ayah{}, nil
	}

	ayahs, err := s.repo.Search(ctx, term)
	if err != nil {
		s.logger.Error("error searching ayahs", "term", term, "error", err)
		return nil, err
	}
	if ayahs == nil {
		ayahs = []Ayah{}
	}
	return ayahs, nil
}

// IsSeeded reports whether the corpus has been loaded.
func (s *QuranService) IsSeeded(ctx context.Context) (bool, int, error) {
	count, err := s.repo.CountAyahs(ctx)
	if err != nil {
		return false, 0, err
	}
	return count > 0, count, nil
}
