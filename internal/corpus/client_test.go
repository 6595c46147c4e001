package corpus

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taiwoajasa245/quran-api/internal/testutil"
)

func newTestClient(url string, retries int) *Client {
	return NewClient(url,
		WithTimeout(5*time.Second),
		WithRetries(retries),
		WithRetryInterval(time.Millisecond),
	)
}

func TestClient_FetchEditions(t *testing.T) {
	p := testutil.NewFakeProvider(t)
	client := newTestClient(p.URL, 0)

	set, err := client.FetchEditions(context.Background(), DefaultEditions)
	require.NoError(t, err)

	for _, e := range []*Edition{set.Arabic, set.Sahih, set.Pickthall, set.YusufAli} {
		require.NotNil(t, e)
		assert.Len(t, e.Surahs, len(testutil.Surahs), e.Identifier)
	}

	assert.Equal(t, EditionUthmani, set.Arabic.Identifier)
	assert.Equal(t, "Al-Faatiha", set.Arabic.Surahs[0].EnglishName)
	assert.Equal(t, "Meccan", set.Arabic.Surahs[0].RevelationType)
	assert.Equal(t, testutil.Ayahs[4].Pickthall, set.Pickthall.Surahs[1].Ayahs[1].Text)
	assert.Equal(t, 2, set.Pickthall.Surahs[1].Ayahs[1].NumberInSurah)

	for _, id := range []string{EditionUthmani, EditionSahih, EditionPickthall, EditionYusufAli} {
		assert.Equal(t, 1, p.Hits(id), id)
	}
}

func TestClient_RetriesServerErrors(t *testing.T) {
	p := testutil.NewFakeProvider(t)
	p.FailTimes(EditionSahih, 2)
	client := newTestClient(p.URL, 3)

	set, err := client.FetchEditions(context.Background(), DefaultEditions)
	require.NoError(t, err)
	assert.NotNil(t, set.Sahih)
	assert.Equal(t, 3, p.Hits(EditionSahih))
}

func TestClient_RetriesTooManyRequests(t *testing.T) {
	p := testutil.NewFakeProvider(t)
	p.FailEdition(EditionYusufAli, http.StatusTooManyRequests)
	client := newTestClient(p.URL, 2)

	_, err := client.FetchEdition(context.Background(), EditionYusufAli)
	assert.ErrorIs(t, err, ErrUpstream)
	assert.Equal(t, 3, p.Hits(EditionYusufAli))
}

func TestClient_GivesUpAfterRetries(t *testing.T) {
	p := testutil.NewFakeProvider(t)
	p.FailEdition(EditionSahih, http.StatusServiceUnavailable)
	client := newTestClient(p.URL, 2)

	_, err := client.FetchEditions(context.Background(), DefaultEditions)
	assert.ErrorIs(t, err, ErrUpstream)
	assert.Equal(t, 3, p.Hits(EditionSahih))
}

func TestClient_ClientErrorsAreNotRetried(t *testing.T) {
	p := testutil.NewFakeProvider(t)
	client := newTestClient(p.URL, 3)

	_, err := client.FetchEdition(context.Background(), "xx.unknown")
	assert.ErrorIs(t, err, ErrUpstream)
	assert.Equal(t, 1, p.Hits("xx.unknown"))
}

func TestClient_BadPayload(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"not json", "<html>maintenance</html>"},
		{"error code", `{"code":500,"status":"Error","data":{"surahs":[]}}`},
		{"no surahs", `{"code":200,"status":"OK","data":{"surahs":[]}}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := testutil.NewFakeProvider(t)
			p.RawBody(EditionPickthall, tt.body)
			client := newTestClient(p.URL, 3)

			_, err := client.FetchEdition(context.Background(), EditionPickthall)
			assert.ErrorIs(t, err, ErrUpstream)
			assert.Equal(t, 1, p.Hits(EditionPickthall))
		})
	}
}

func TestClient_ProviderUnreachable(t *testing.T) {
	p := testutil.NewFakeProvider(t)
	url := p.URL
	p.Close()

	client := newTestClient(url, 1)
	_, err := client.FetchEditions(context.Background(), DefaultEditions)
	assert.Error(t, err)
}

func TestClient_ContextCancelled(t *testing.T) {
	p := testutil.NewFakeProvider(t)
	client := newTestClient(p.URL, 3)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := client.FetchEditions(ctx, DefaultEditions)
	assert.Error(t, err)
}
