package corpus

import (
	"context"
	"net/http"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taiwoajasa245/quran-api/internal/database"
	"github.com/taiwoajasa245/quran-api/internal/quran"
	"github.com/taiwoajasa245/quran-api/internal/testutil"
)

func newTestSeeder(db database.Service, p *testutil.FakeProvider) *Seeder {
	return NewSeeder(quran.NewRepository(db), newTestClient(p.URL, 0))
}

func assertEmptyStore(t *testing.T, db database.Service) {
	t.Helper()
	assert.Zero(t, testutil.CountRows(t, db, "quran"))
	assert.Zero(t, testutil.CountRows(t, db, "surahs"))
	assert.Zero(t, testutil.CountRows(t, db, "settings"))
}

func TestSeeder_SeedsEmptyStore(t *testing.T) {
	db := testutil.NewTestDB(t)
	p := testutil.NewFakeProvider(t)
	seeder := newTestSeeder(db, p)

	outcome, err := seeder.Seed(context.Background())
	require.NoError(t, err)
	assert.Equal(t, Seeded, outcome)

	assert.Equal(t, len(testutil.Ayahs), testutil.CountRows(t, db, "quran"))
	assert.Equal(t, len(testutil.Surahs), testutil.CountRows(t, db, "surahs"))
	assert.Equal(t, 4, p.TotalHits())

	surahs, err := quran.NewRepository(db).ListSurahs(context.Background())
	require.NoError(t, err)
	for _, s := range surahs {
		assert.Equal(t, testutil.AyahCount(s.Number), s.NumberOfAyahs)
	}
}

func TestSeeder_SecondRunDoesNotFetch(t *testing.T) {
	db := testutil.NewTestDB(t)
	p := testutil.NewFakeProvider(t)
	seeder := newTestSeeder(db, p)
	ctx := context.Background()

	_, err := seeder.Seed(ctx)
	require.NoError(t, err)
	hits := p.TotalHits()

	outcome, err := seeder.Seed(ctx)
	require.NoError(t, err)
	assert.Equal(t, AlreadySeeded, outcome)
	assert.Equal(t, hits, p.TotalHits())
	assert.Equal(t, len(testutil.Ayahs), testutil.CountRows(t, db, "quran"))
}

func TestSeeder_SkipsPopulatedStore(t *testing.T) {
	db := testutil.NewTestDB(t)
	testutil.SeedFixtures(t, db)
	p := testutil.NewFakeProvider(t)

	outcome, err := newTestSeeder(db, p).Seed(context.Background())
	require.NoError(t, err)
	assert.Equal(t, AlreadySeeded, outcome)
	assert.Zero(t, p.TotalHits())
}

func TestSeeder_FailedEditionLeavesStoreEmpty(t *testing.T) {
	db := testutil.NewTestDB(t)
	p := testutil.NewFakeProvider(t)
	p.FailEdition(EditionYusufAli, http.StatusInternalServerError)
	seeder := newTestSeeder(db, p)
	ctx := context.Background()

	_, err := seeder.Seed(ctx)
	require.ErrorIs(t, err, ErrUpstream)
	assertEmptyStore(t, db)

	// The next start retries from scratch.
	p.FailEdition(EditionYusufAli, 0)
	outcome, err := seeder.Seed(ctx)
	require.NoError(t, err)
	assert.Equal(t, Seeded, outcome)
	assert.Equal(t, len(testutil.Ayahs), testutil.CountRows(t, db, "quran"))
}

func TestSeeder_MisalignedEditionsLeaveStoreEmpty(t *testing.T) {
	db := testutil.NewTestDB(t)
	p := testutil.NewFakeProvider(t)
	p.Tamper(EditionPickthall, func(surahs []testutil.ProviderSurah) []testutil.ProviderSurah {
		surahs[0].Ayahs = surahs[0].Ayahs[:2]
		return surahs
	})

	_, err := newTestSeeder(db, p).Seed(context.Background())
	require.ErrorIs(t, err, ErrMisaligned)
	assertEmptyStore(t, db)
}

func TestSeeder_ConcurrentInstances(t *testing.T) {
	path := filepath.Join(t.TempDir(), "quran.db")
	p := testutil.NewFakeProvider(t)
	seeders := []*Seeder{
		newTestSeeder(testutil.OpenTestDB(t, path), p),
		newTestSeeder(testutil.OpenTestDB(t, path), p),
	}

	var wg sync.WaitGroup
	outcomes := make([]Outcome, len(seeders))
	errs := make([]error, len(seeders))
	for i, s := range seeders {
		wg.Add(1)
		go func() {
			defer wg.Done()
			outcomes[i], errs[i] = s.Seed(context.Background())
		}()
	}
	wg.Wait()

	for _, err := range errs {
		require.NoError(t, err)
	}

	seeded := 0
	for _, o := range outcomes {
		if o == Seeded {
			seeded++
		}
	}
	assert.Equal(t, 1, seeded, "outcomes: %v", outcomes)

	db := testutil.OpenTestDB(t, path)
	assert.Equal(t, len(testutil.Ayahs), testutil.CountRows(t, db, "quran"))
	assert.Equal(t, len(testutil.Surahs), testutil.CountRows(t, db, "surahs"))
}

// racingFetcher commits a corpus through another handle while the seeder
// under test is still fetching.
type racingFetcher struct {
	other quran.Repository
}

func (f racingFetcher) FetchEditions(ctx context.Context, editions Editions) (*EditionSet, error) {
	set := fixtureSet()
	corpus, err := Align(set)
	if err != nil {
		return nil, err
	}
	if err := f.other.SeedCorpus(ctx, "other-instance", corpus); err != nil {
		return nil, err
	}
	return set, nil
}

func TestSeeder_SeededElsewhereDuringFetch(t *testing.T) {
	path := filepath.Join(t.TempDir(), "quran.db")
	mine := testutil.OpenTestDB(t, path)
	theirs := testutil.OpenTestDB(t, path)

	seeder := NewSeeder(quran.NewRepository(mine), racingFetcher{other: quran.NewRepository(theirs)})

	outcome, err := seeder.Seed(context.Background())
	require.NoError(t, err)
	assert.Equal(t, SeededElsewhere, outcome)
	assert.Equal(t, len(testutil.Ayahs), testutil.CountRows(t, mine, "quran"))

	var owner string
	require.NoError(t, mine.DB().Get(&owner, `SELECT value FROM settings WHERE key = ?`, quran.SeedSentinelKey))
	assert.Contains(t, owner, "other-instance")
}

func TestSeeder_RunRetries(t *testing.T) {
	db := testutil.NewTestDB(t)
	p := testutil.NewFakeProvider(t)
	p.FailEdition(EditionSahih, http.StatusBadGateway)
	seeder := newTestSeeder(db, p)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	done := make(chan struct{})
	go func() {
		defer close(done)
		seeder.RunRetries(ctx, 10*time.Millisecond)
	}()

	require.Eventually(t, func() bool { return p.Hits(EditionSahih) >= 2 }, 5*time.Second, 5*time.Millisecond)
	assertEmptyStore(t, db)

	p.FailEdition(EditionSahih, 0)

	select {
	case <-done:
	case <-time.After(5 * time.Second):
		t.Fatal("retry loop did not stop after seeding")
	}
	assert.Equal(t, len(testutil.Ayahs), testutil.CountRows(t, db, "quran"))
}

func TestSeeder_RunRetriesStopsOnCancel(t *testing.T) {
	db := testutil.NewTestDB(t)
	p := testutil.NewFakeProvider(t)
	p.FailEdition(EditionSahih, http.StatusBadGateway)
	seeder := newTestSeeder(db, p)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		defer close(done)
		seeder.RunRetries(ctx, 10*time.Millisecond)
	}()

	cancel()
	select {
	case <-done:
	case <-time.After(5 * time.Second):
		t.Fatal("retry loop ignored cancellation")
	}
}

func TestSeeder_RunRetriesDisabled(t *testing.T) {
	db := testutil.NewTestDB(t)
	p := testutil.NewFakeProvider(t)

	newTestSeeder(db, p).RunRetries(context.Background(), 0)
	assert.Zero(t, p.TotalHits())
}

func TestOutcomeString(t *testing.T) {
	assert.Equal(t, "seeded", Seeded.String())
	assert.Equal(t, "already seeded", AlreadySeeded.String())
	assert.Equal(t, "seeded elsewhere", SeededElsewhere.String())
	assert.Equal(t, "unknown", Outcome(0).String())
}
