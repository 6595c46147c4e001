package database

import (
	"context"
	"fmt"
)

// Initialize creates every table and index the application uses.
// Safe to call multiple times - uses IF NOT EXISTS and never drops data.
func (s *service) Initialize(ctx context.Context) error {
	schema := sqliteSchema
	if s.dialect == Postgres {
		schema = postgresSchema
	}

	if _, err := s.db.ExecContext(ctx, schema); err != nil {
		return fmt.Errorf("failed to create schema: %w", err)
	}
	return nil
}

const sqliteSchema = `
CREATE TABLE IF NOT EXISTS quran (
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    surah INTEGER NOT NULL,
    ayah INTEGER NOT NULL,
    text_arabic TEXT NOT NULL,
    text_english_sahih TEXT NOT NULL,
    text_english_pickthall TEXT NOT NULL,
    text_english_yusufali TEXT NOT NULL
);

CREATE UNIQUE INDEX IF NOT EXISTS idx_quran_surah_ayah ON quran(surah, ayah);

CREATE TABLE IF NOT EXISTS surahs (
    number INTEGER PRIMARY KEY,
    name TEXT NOT NULL,
    englishName TEXT NOT NULL,
    englishNameTranslation TEXT NOT NULL,
    revelationType TEXT NOT NULL,
    numberOfAyahs INTEGER NOT NULL
);

CREATE TABLE IF NOT EXISTS bookmarks (
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    surah INTEGER NOT NULL,
    ayah INTEGER NOT NULL,
    created_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP
);

CREATE INDEX IF NOT EXISTS idx_bookmarks_created_at ON bookmarks(created_at);

-- Only the seeding sentinel lives here; display settings stay client-side.
CREATE TABLE IF NOT EXISTS settings (
    key TEXT PRIMARY KEY,
    value TEXT
);
`

const postgresSchema = `
CREATE TABLE IF NOT EXISTS quran (
    id BIGSERIAL PRIMARY KEY,
    surah INTEGER NOT NULL,
    ayah INTEGER NOT NULL,
    text_arabic TEXT NOT NULL,
    text_english_sahih TEXT NOT NULL,
    text_english_pickthall TEXT NOT NULL,
    text_english_yusufali TEXT NOT NULL
);

CREATE UNIQUE INDEX IF NOT EXISTS idx_quran_surah_ayah ON quran(surah, ayah);

CREATE TABLE IF NOT EXISTS surahs (
    number INTEGER PRIMARY KEY,
    name TEXT NOT NULL,
    englishName TEXT NOT NULL,
    englishNameTranslation TEXT NOT NULL,
    revelationType TEXT NOT NULL,
    numberOfAyahs INTEGER NOT NULL
);

CREATE TABLE IF NOT EXISTS bookmarks (
    id BIGSERIAL PRIMARY KEY,
    surah INTEGER NOT NULL,
    ayah INTEGER NOT NULL,
    created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
);

CREATE INDEX IF NOT EXISTS idx_bookmarks_created_at ON bookmarks(created_at);

CREATE TABLE IF NOT EXISTS settings (
    key TEXT PRIMARY KEY,
    value TEXT
);
`
