package quran

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taiwoajasa245/quran-api/internal/testutil"
)

type stubRepository struct {
	Repository
	searched []string
	err      error
}

func (s *stubRepository) ListSurahs(ctx context.Context) ([]Surah, error) {
	return nil, s.err
}

func (s *stubRepository) ListAyahs(ctx context.Context, surah *int) ([]Ayah, error) {
	return nil, s.err
}

func (s *stubRepository) Search(ctx context.Context, term string) ([]Ayah, error) {
	s.searched = append(s.searched, term)
	return nil, s.err
}

func (s *stubRepository) CountAyahs(ctx context.Context) (int, error) {
	return 0, s.err
}

func TestQuranService_EmptyResultsAreNotNil(t *testing.T) {
	svc := NewQuranService(&stubRepository{})
	ctx := context.Background()

	surahs, err := svc.GetSurahs(ctx)
	require.NoError(t, err)
	assert.NotNil(t, surahs)
	assert.Empty(t, surahs)

	ayahs, err := svc.GetAyahs(ctx, nil)
	require.NoError(t, err)
	assert.NotNil(t, ayahs)

	ayahs, err = svc.Search(ctx, "mercy")
	require.NoError(t, err)
	assert.NotNil(t, ayahs)
}

func TestQuranService_SearchEmptyTermSkipsStore(t *testing.T) {
	repo := &stubRepository{}
	svc := NewQuranService(repo)

	ayahs, err := svc.Search(context.Background(), "")
	require.NoError(t, err)
	assert.Equal(t, []Ayah{}, ayahs)
	assert.Empty(t, repo.searched)
}

func TestQuranService_PropagatesErrors(t *testing.T) {
	boom := errors.New("disk I/O error")
	svc := NewQuranService(&stubRepository{err: boom})
	ctx := context.Background()

	_, err := svc.GetSurahs(ctx)
	assert.ErrorIs(t, err, boom)

	_, err = svc.GetAyahs(ctx, nil)
	assert.ErrorIs(t, err, boom)

	_, err = svc.Search(ctx, "x")
	assert.ErrorIs(t, err, boom)

	_, _, err = svc.IsSeeded(ctx)
	assert.ErrorIs(t, err, boom)
}

func TestQuranService_IsSeeded(t *testing.T) {
	db := testutil.NewTestDB(t)
	svc := NewQuranService(NewRepository(db))
	ctx := context.Background()

	seeded, count, err := svc.IsSeeded(ctx)
	require.NoError(t, err)
	assert.False(t, seeded)
	assert.Zero(t, count)

	testutil.SeedFixtures(t, db)

	seeded, count, err = svc.IsSeeded(ctx)
	require.NoError(t, err)
	assert.True(t, seeded)
	assert.Equal(t, len(testutil.Ayahs), count)
}
