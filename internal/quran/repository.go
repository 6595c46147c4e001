package quran

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/taiwoajasa245/quran-api/internal/database"
)

// SeedSentinelKey is the settings row written first inside the seeding
// transaction. Writing it takes the store's write lock (SQLite) or the row
// lock (Postgres), so concurrent seeders queue behind each other.
const SeedSentinelKey = "corpus.seed"

var ErrAlreadySeeded = errors.New("corpus already seeded")

type Repository interface {
	ListSurahs(ctx context.Context) ([]Surah, error)
	ListAyahs(ctx context.Context, surah *int) ([]Ayah, error)
	Search(ctx context.Context, term string) ([]Ayah, error)
	CountAyahs(ctx context.Context) (int, error)
	SeedCorpus(ctx context.Context, owner string, corpus Corpus) error
}

type repository struct {
	db *sqlx.DB
}

func NewRepository(dbService database.Service) Repository {
	return &repository{db: dbService.DB()}
}

const ayahColumns = `id, surah, ayah, text_arabic, text_english_sahih, text_english_pickthall, text_english_yusufali`

func (r *repository) ListSurahs(ctx context.Context) ([]Surah, error) {
	query := `
		SELECT number, name,
		       englishName AS english_name,
		       englishNameTranslation AS english_name_translation,
		       revelationType AS revelation_type,
		       numberOfAyahs AS number_of_ayahs
		FROM surahs
		ORDER BY number
	`

	var surahs []Surah
	if err := r.db.SelectContext(ctx, &surahs, query); err != nil {
		return nil, fmt.Errorf("failed to list surahs: %w", err)
	}
	return surahs, nil
}

// ListAyahs returns ayahs in insertion order, which the seed makes equal to
// (surah, ayah) order. A nil surah returns the whole corpus.
func (r *repository) ListAyahs(ctx context.Context, surah *int) ([]Ayah, error) {
	query := `SELECT ` + ayahColumns + ` FROM quran`
	var args []interface{}
	if surah != nil {
		query += ` WHERE surah = ?`
		args = append(args, *surah)
	}
	query += ` ORDER BY id`

	var ayahs []Ayah
	if err := r.db.SelectContext(ctx, &ayahs, r.db.Rebind(query), args...); err != nil {
		return nil, fmt.Errorf("failed to list ayahs: %w", err)
	}
	return ayahs, nil
}

// Search matches term as a literal substring of any of the four text
// columns. LIKE wildcards in the term are escaped.
func (r *repository) Search(ctx context.Context, term string) ([]Ayah, error) {
	query := `
		SELECT ` + ayahColumns + `
		FROM quran
		WHERE text_arabic LIKE ? ESCAPE '\'
		   OR text_english_sahih LIKE ? ESCAPE '\'
		   OR text_english_pickthall LIKE ? ESCAPE '\'
		   OR text_english_yusufali LIKE ? ESCAPE '\'
		ORDER BY id
	`

	pattern := "%" + escapeLike(term) + "%"

	var ayahs []Ayah
	err := r.db.SelectContext(ctx, &ayahs, r.db.Rebind(query), pattern, pattern, pattern, pattern)
	if err != nil {
		return nil, fmt.Errorf("failed to search ayahs: %w", err)
	}
	return ayahs, nil
}

func (r *repository) CountAyahs(ctx context.Context) (int, error) {
	var count int
	if err := r.db.GetContext(ctx, &count, `SELECT COUNT(*) FROM quran`); err != nil {
		return 0, fmt.Errorf("failed to count ayahs: %w", err)
	}
	return count, nil
}

// SeedCorpus writes the whole corpus in one transaction. Nothing is visible
// to readers until commit, and any failure leaves the store as it was.
// ErrAlreadySeeded means another writer got there first.
func (r *repository) SeedCorpus(ctx context.Context, owner string, corpus Corpus) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	claim := `
		INSERT INTO settings (key, value) VALUES (?, ?)
		ON CONFLICT (key) DO UPDATE SET value = excluded.value
	`
	stamp := owner + " " + time.Now().UTC().Format(time.RFC3339)
	if _, err := tx.ExecContext(ctx, tx.Rebind(claim), SeedSentinelKey, stamp); err != nil {
		return fmt.Errorf("failed to claim seed sentinel: %w", err)
	}

	// Counted after the claim: a seeder that queued behind us now sees our rows.
	var count int
	if err := tx.GetContext(ctx, &count, `SELECT COUNT(*) FROM quran`); err != nil {
		return fmt.Errorf("failed to count ayahs: %w", err)
	}
	if count > 0 {
		return ErrAlreadySeeded
	}

	insertSurah, err := tx.PreparexContext(ctx, tx.Rebind(`
		INSERT INTO surahs (number, name, englishName, englishNameTranslation, revelationType, numberOfAyahs)
		VALUES (?, ?, ?, ?, ?, ?)
	`))
	if err != nil {
		return fmt.Errorf("failed to prepare surah insert: %w", err)
	}
	defer insertSurah.Close()

	insertAyah, err := tx.PreparexContext(ctx, tx.Rebind(`
		INSERT INTO quran (surah, ayah, text_arabic, text_english_sahih, text_english_pickthall, text_english_yusufali)
		VALUES (?, ?, ?, ?, ?, ?)
	`))
	if err != nil {
		return fmt.Errorf("failed to prepare ayah insert: %w", err)
	}
	defer insertAyah.Close()

	for _, s := range corpus.Surahs {
		_, err := insertSurah.ExecContext(ctx,
			s.Number, s.Name, s.EnglishName, s.EnglishNameTranslation, s.RevelationType, s.NumberOfAyahs)
		if err != nil {
			if database.IsUniqueViolation(err) {
				return ErrAlreadySeeded
			}
			return fmt.Errorf("failed to insert surah %d: %w", s.Number, err)
		}
	}

	for _, a := range corpus.Ayahs {
		_, err := insertAyah.ExecContext(ctx,
			a.Surah, a.Ayah, a.TextArabic, a.TextEnglishSahih, a.TextEnglishPickthall, a.TextEnglishYusufAli)
		if err != nil {
			if database.IsUniqueViolation(err) {
				return ErrAlreadySeeded
			}
			return fmt.Errorf("failed to insert ayah %d:%d: %w", a.Surah, a.Ayah, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}
	return nil
}

func escapeLike(term string) string {
	return strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`).Replace(term)
}
