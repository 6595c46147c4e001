package corpus

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/taiwoajasa245/quran-api/internal/quran"
)

type Outcome int

const (
	// Seeded means this process wrote the corpus.
	Seeded Outcome = iota + 1
	// AlreadySeeded means the store held ayahs before anything was fetched.
	AlreadySeeded
	// SeededElsewhere means another process committed the corpus while this
	// one was fetching or waiting on the write lock.
	SeededElsewhere
)

func (o Outcome) String() string {
	switch o {
	case Seeded:
		return "seeded"
	case AlreadySeeded:
		return "already seeded"
	case SeededElsewhere:
		return "seeded elsewhere"
	default:
		return "unknown"
	}
}

type Fetcher interface {
	FetchEditions(ctx context.Context, editions Editions) (*EditionSet, error)
}

type Seeder struct {
	mu       sync.Mutex
	repo     quran.Repository
	fetcher  Fetcher
	editions Editions
	owner    string
	logger   *slog.Logger
}

func NewSeeder(repo quran.Repository, fetcher Fetcher) *Seeder {
	return &Seeder{
		repo:     repo,
		fetcher:  fetcher,
		editions: DefaultEditions,
		owner:    uuid.NewString(),
		logger:   slog.Default().With("component", "seed"),
	}
}

// Seed loads the corpus if, and only if, the store has no ayahs. Errors are
// logged here and returned; the store is left empty and the next call starts
// over from scratch.
func (s *Seeder) Seed(ctx context.Context) (Outcome, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	count, err := s.repo.CountAyahs(ctx)
	if err != nil {
		s.logger.Error("error checking corpus", "error", err)
		return 0, err
	}
	if count > 0 {
		s.logger.Info("corpus already present, skipping seed", "ayahs", count)
		return AlreadySeeded, nil
	}

	s.logger.Info("store is empty, fetching corpus", "instance", s.owner)
	start := time.Now()

	set, err := s.fetcher.FetchEditions(ctx, s.editions)
	if err != nil {
		s.logger.Error("error fetching corpus", "error", err)
		return 0, fmt.Errorf("fetching corpus: %w", err)
	}

	corpus, err := Align(set)
	if err != nil {
		s.logger.Error("error aligning editions", "error", err)
		return 0, err
	}

	if err := s.repo.SeedCorpus(ctx, s.owner, corpus); err != nil {
		// Depending on the driver a lost race shows up as ErrAlreadySeeded or
		// as a lock error. The rows on disk decide.
		if n, cerr := s.repo.CountAyahs(ctx); cerr == nil && n > 0 {
			if errors.Is(err, quran.ErrAlreadySeeded) {
				s.logger.Info("corpus was seeded by another instance", "ayahs", n)
			} else {
				s.logger.Warn("seed failed but corpus is present", "ayahs", n, "error", err)
			}
			return SeededElsewhere, nil
		}
		s.logger.Error("error writing corpus", "error", err)
		return 0, fmt.Errorf("writing corpus: %w", err)
	}

	s.logger.Info("corpus seeded",
		"surahs", len(corpus.Surahs),
		"ayahs", len(corpus.Ayahs),
		"duration", time.Since(start).Round(time.Millisecond),
	)
	return Seeded, nil
}
