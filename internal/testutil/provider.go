package testutil

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
)

// Edition identifiers served by FakeProvider.
const (
	EditionUthmani   = "quran-uthmani"
	EditionSahih     = "en.sahih"
	EditionPickthall = "en.pickthall"
	EditionYusufAli  = "en.yusufali"
)

type ProviderAyah struct {
	Number        int    `json:"number"`
	Text          string `json:"text"`
	NumberInSurah int    `json:"numberInSurah"`
}

type ProviderSurah struct {
	Number                 int            `json:"number"`
	Name                   string         `json:"name"`
	EnglishName            string         `json:"englishName"`
	EnglishNameTranslation string         `json:"englishNameTranslation"`
	RevelationType         string         `json:"revelationType"`
	Ayahs                  []ProviderAyah `json:"ayahs"`
}

// FakeProvider serves the fixtures in the shape of GET /quran/{edition} on
// api.alquran.cloud. Failures and payload edits can be injected per edition.
type FakeProvider struct {
	*httptest.Server

	mu      sync.Mutex
	hits    map[string]int
	status  map[string]int
	flaky   map[string]int
	tamper  map[string]func([]ProviderSurah) []ProviderSurah
	rawBody map[string]string
}

func NewFakeProvider(t *testing.T) *FakeProvider {
	t.Helper()

	p := &FakeProvider{
		hits:    make(map[string]int),
		status:  make(map[string]int),
		flaky:   make(map[string]int),
		tamper:  make(map[string]func([]ProviderSurah) []ProviderSurah),
		rawBody: make(map[string]string),
	}
	p.Server = httptest.NewServer(http.HandlerFunc(p.serve))
	t.Cleanup(p.Close)
	return p
}

// FailEdition makes every request for edition answer with status.
func (p *FakeProvider) FailEdition(edition string, status int) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.status[edition] = status
}

// FailTimes makes the next n requests for edition answer 500.
func (p *FakeProvider) FailTimes(edition string, n int) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.flaky[edition] = n
}

// Tamper rewrites the surahs served for edition.
func (p *FakeProvider) Tamper(edition string, fn func([]ProviderSurah) []ProviderSurah) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.tamper[edition] = fn
}

// RawBody replaces the response body for edition.
func (p *FakeProvider) RawBody(edition, body string) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.rawBody[edition] = body
}

func (p *FakeProvider) Hits(edition string) int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.hits[edition]
}

func (p *FakeProvider) TotalHits() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	total := 0
	for _, n := range p.hits {
		total += n
	}
	return total
}

func (p *FakeProvider) serve(w http.ResponseWriter, r *http.Request) {
	edition, ok := strings.CutPrefix(r.URL.Path, "/quran/")
	if !ok {
		http.NotFound(w, r)
		return
	}

	p.mu.Lock()
	p.hits[edition]++
	status := p.status[edition]
	if status == 0 && p.flaky[edition] > 0 {
		p.flaky[edition]--
		status = http.StatusInternalServerError
	}
	tamper := p.tamper[edition]
	raw, hasRaw := p.rawBody[edition]
	p.mu.Unlock()

	w.Header().Set("Content-Type", "application/json")

	if status != 0 {
		w.WriteHeader(status)
		json.NewEncoder(w).Encode(map[string]any{"code": status, "status": http.StatusText(status), "data": "injected failure"})
		return
	}
	if hasRaw {
		w.Write([]byte(raw))
		return
	}

	surahs, known := editionSurahs(edition)
	if !known {
		w.WriteHeader(http.StatusNotFound)
		json.NewEncoder(w).Encode(map[string]any{"code": 404, "status": "Not Found", "data": "unknown edition"})
		return
	}
	if tamper != nil {
		surahs = tamper(surahs)
	}

	json.NewEncoder(w).Encode(map[string]any{
		"code":   200,
		"status": "OK",
		"data": map[string]any{
			"surahs":  surahs,
			"edition": map[string]any{"identifier": edition},
		},
	})
}

func editionSurahs(edition string) ([]ProviderSurah, bool) {
	var text func(AyahFixture) string
	switch edition {
	case EditionUthmani:
		text = func(a AyahFixture) string { return a.Arabic }
	case EditionSahih:
		text = func(a AyahFixture) string { return a.Sahih }
	case EditionPickthall:
		text = func(a AyahFixture) string { return a.Pickthall }
	case EditionYusufAli:
		text = func(a AyahFixture) string { return a.YusufAli }
	default:
		return nil, false
	}

	surahs := make([]ProviderSurah, 0, len(Surahs))
	global := 0
	for _, s := range Surahs {
		ps := ProviderSurah{
			Number:                 s.Number,
			Name:                   s.Name,
			EnglishName:            s.EnglishName,
			EnglishNameTranslation: s.EnglishNameTranslation,
			RevelationType:         s.RevelationType,
		}
		for _, a := range Ayahs {
			if a.Surah != s.Number {
				continue
			}
			global++
			ps.Ayahs = append(ps.Ayahs, ProviderAyah{Number: global, Text: text(a), NumberInSurah: a.Ayah})
		}
		surahs = append(surahs, ps)
	}
	return surahs, true
}
