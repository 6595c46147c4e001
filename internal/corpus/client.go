package corpus

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"time"

	"github.com/cenkalti/backoff/v4"
	"golang.org/x/sync/errgroup"
)

// Edition identifiers on api.alquran.cloud.
const (
	EditionUthmani   = "quran-uthmani"
	EditionSahih     = "en.sahih"
	EditionPickthall = "en.pickthall"
	EditionYusufAli  = "en.yusufali"
)

var ErrUpstream = errors.New("corpus provider error")

// Editions names the four editions joined into each ayah row.
type Editions struct {
	Arabic    string
	Sahih     string
	Pickthall string
	YusufAli  string
}

var DefaultEditions = Editions{
	Arabic:    EditionUthmani,
	Sahih:     EditionSahih,
	Pickthall: EditionPickthall,
	YusufAli:  EditionYusufAli,
}

type Edition struct {
	Identifier string
	Surahs     []EditionSurah
}

type EditionSurah struct {
	Number                 int           `json:"number"`
	Name                   string        `json:"name"`
	EnglishName            string        `json:"englishName"`
	EnglishNameTranslation string        `json:"englishNameTranslation"`
	RevelationType         string        `json:"revelationType"`
	Ayahs                  []EditionAyah `json:"ayahs"`
}

type EditionAyah struct {
	Number        int    `json:"number"`
	Text          string `json:"text"`
	NumberInSurah int    `json:"numberInSurah"`
}

// EditionSet holds one fetched copy of each configured edition.
type EditionSet struct {
	Arabic    *Edition
	Sahih     *Edition
	Pickthall *Edition
	YusufAli  *Edition
}

type editionResponse struct {
	Code   int    `json:"code"`
	Status string `json:"status"`
	Data   struct {
		Surahs []EditionSurah `json:"surahs"`
	} `json:"data"`
}

type Client struct {
	baseURL       string
	httpClient    *http.Client
	retries       int
	retryInterval time.Duration
	logger        *slog.Logger
}

type ClientOption func(*Client)

func WithTimeout(d time.Duration) ClientOption {
	return func(c *Client) {
		c.httpClient.Timeout = d
	}
}

func WithHTTPClient(hc *http.Client) ClientOption {
	return func(c *Client) {
		c.httpClient = hc
	}
}

// WithRetries sets how many times a failed edition fetch is retried.
func WithRetries(n int) ClientOption {
	return func(c *Client) {
		c.retries = n
	}
}

// WithRetryInterval sets the first backoff delay; later delays grow from it.
func WithRetryInterval(d time.Duration) ClientOption {
	return func(c *Client) {
		c.retryInterval = d
	}
}

func NewClient(baseURL string, opts ...ClientOption) *Client {
	c := &Client{
		baseURL:       baseURL,
		httpClient:    &http.Client{Timeout: 60 * time.Second},
		retries:       3,
		retryInterval: 500 * time.Millisecond,
		logger:        slog.Default().With("component", "seed"),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// FetchEditions downloads the four editions concurrently. The first failure
// cancels the remaining requests.
func (c *Client) FetchEditions(ctx context.Context, editions Editions) (*EditionSet, error) {
	var set EditionSet
	g, ctx := errgroup.WithContext(ctx)

	fetchInto := func(dst **Edition, id string) {
		g.Go(func() error {
			e, err := c.FetchEdition(ctx, id)
			if err != nil {
				return err
			}
			*dst = e
			return nil
		})
	}

	fetchInto(&set.Arabic, editions.Arabic)
	fetchInto(&set.Sahih, editions.Sahih)
	fetchInto(&set.Pickthall, editions.Pickthall)
	fetchInto(&set.YusufAli, editions.YusufAli)

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return &set, nil
}

// FetchEdition downloads a single edition, retrying transport errors, 429s
// and 5xx responses with exponential backoff.
func (c *Client) FetchEdition(ctx context.Context, id string) (*Edition, error) {
	endpoint := c.baseURL + "/quran/" + url.PathEscape(id)

	b := backoff.NewExponentialBackOff()
	b.InitialInterval = c.retryInterval
	policy := backoff.WithContext(backoff.WithMaxRetries(b, uint64(c.retries)), ctx)

	attempt := 0
	operation := func() (*Edition, error) {
		attempt++
		e, err := c.fetchOnce(ctx, endpoint, id)
		if err != nil {
			c.logger.Warn("edition fetch failed", "edition", id, "attempt", attempt, "error", err)
		}
		return e, err
	}

	e, err := backoff.RetryWithData(operation, policy)
	if err != nil {
		return nil, fmt.Errorf("fetching edition %s: %w", id, err)
	}
	return e, nil
}

func (c *Client) fetchOnce(ctx context.Context, endpoint, id string) (*Edition, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, backoff.Permanent(err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		err := fmt.Errorf("%w: %s returned %s", ErrUpstream, endpoint, resp.Status)
		if resp.StatusCode == http.StatusTooManyRequests || resp.StatusCode >= 500 {
			return nil, err
		}
		return nil, backoff.Permanent(err)
	}

	var payload editionResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, backoff.Permanent(fmt.Errorf("%w: decoding %s: %v", ErrUpstream, id, err))
	}

	if payload.Code != http.StatusOK || len(payload.Data.Surahs) == 0 {
		return nil, backoff.Permanent(fmt.Errorf("%w: edition %s returned code %d (%s) with %d surahs",
			ErrUpstream, id, payload.Code, payload.Status, len(payload.Data.Surahs)))
	}

	return &Edition{Identifier: id, Surahs: payload.Data.Surahs}, nil
}
