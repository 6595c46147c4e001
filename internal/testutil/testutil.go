// Package testutil holds fixtures shared by the package tests.
package testutil

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/taiwoajasa245/quran-api/internal/database"
)

type SurahFixture struct {
	Number                 int
	Name                   string
	EnglishName            string
	EnglishNameTranslation string
	RevelationType         string
}

type AyahFixture struct {
	Surah     int
	Ayah      int
	Arabic    string
	Sahih     string
	Pickthall string
	YusufAli  string
}

// Surahs is a three-chapter slice of the corpus, small enough to read in a
// failing assertion.
var Surahs = []SurahFixture{
	{1, "سُورَةُ ٱلْفَاتِحَةِ", "Al-Faatiha", "The Opening", "Meccan"},
	{2, "سُورَةُ البَقَرَةِ", "Al-Baqara", "The Cow", "Medinan"},
	{3, "سُورَةُ آلِ عِمۡرَانَ", "Aal-i-Imraan", "The Family of Imraan", "Medinan"},
}

var Ayahs = []AyahFixture{
	{1, 1, "بِسْمِ اللَّهِ الرَّحْمَٰنِ الرَّحِيمِ",
		"In the name of Allah, the Entirely Merciful, the Especially Merciful.",
		"In the name of Allah, the Beneficent, the Merciful.",
		"In the name of Allah, Most Gracious, Most Merciful."},
	{1, 2, "الْحَمْدُ لِلَّهِ رَبِّ الْعَالَمِينَ",
		"[All] praise is [due] to Allah, Lord of the worlds -",
		"Praise be to Allah, Lord of the Worlds,",
		"Praise be to Allah, the Cherisher and Sustainer of the worlds;"},
	{1, 3, "الرَّحْمَٰنِ الرَّحِيمِ",
		"The Entirely Merciful, the Especially Merciful,",
		"The Beneficent, the Merciful.",
		"Most Gracious, Most Merciful;"},
	{2, 1, "الم",
		"Alif, Lam, Meem.",
		"Alif. Lam. Mim.",
		"A. L. M."},
	{2, 2, "ذَٰلِكَ الْكِتَابُ لَا رَيْبَ فِيهِ هُدًى لِلْمُتَّقِينَ",
		"This is the Book about which there is no doubt, a guidance for those conscious of Allah -",
		"This is the Scripture whereof there is no doubt, a guidance unto those who ward off (evil).",
		"This is the Book; in it is guidance sure, without doubt, to those who fear Allah;"},
	{3, 1, "الم",
		"Alif, Lam, Meem.",
		"Alif. Lam. Mim.",
		"A. L. M."},
	{3, 2, "اللَّهُ لَا إِلَٰهَ إِلَّا هُوَ الْحَيُّ الْقَيُّومُ",
		"Allah - there is no deity except Him, the Ever-Living, the Sustainer of existence.",
		"Allah! There is no God save Him, the Alive, the Eternal.",
		"Allah! There is no god but He,-the Living, the Self-subsisting, Eternal."},
}

// AyahCount returns how many fixture ayahs belong to surah.
func AyahCount(surah int) int {
	n := 0
	for _, a := range Ayahs {
		if a.Surah == surah {
			n++
		}
	}
	return n
}

// NewTestDB opens a fresh SQLite store in a temp dir and closes it when the
// test ends.
func NewTestDB(t *testing.T) database.Service {
	t.Helper()
	return OpenTestDB(t, filepath.Join(t.TempDir(), "quran.db"))
}

// OpenTestDB opens the store at path. Two calls with the same path give two
// independent handles on one file, like two processes would have.
func OpenTestDB(t *testing.T, path string) database.Service {
	t.Helper()

	db, err := database.NewSQLite(path)
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return db
}

// SeedFixtures writes Surahs and Ayahs straight into the store.
func SeedFixtures(t *testing.T, db database.Service) {
	t.Helper()

	sqlDB := db.DB()
	tx, err := sqlDB.Beginx()
	require.NoError(t, err)
	defer tx.Rollback()

	for _, s := range Surahs {
		_, err := tx.Exec(tx.Rebind(`
			INSERT INTO surahs (number, name, englishName, englishNameTranslation, revelationType, numberOfAyahs)
			VALUES (?, ?, ?, ?, ?, ?)`),
			s.Number, s.Name, s.EnglishName, s.EnglishNameTranslation, s.RevelationType, AyahCount(s.Number))
		require.NoError(t, err)
	}

	for _, a := range Ayahs {
		_, err := tx.Exec(tx.Rebind(`
			INSERT INTO quran (surah, ayah, text_arabic, text_english_sahih, text_english_pickthall, text_english_yusufali)
			VALUES (?, ?, ?, ?, ?, ?)`),
			a.Surah, a.Ayah, a.Arabic, a.Sahih, a.Pickthall, a.YusufAli)
		require.NoError(t, err)
	}

	require.NoError(t, tx.Commit())
}

// CountRows returns the number of rows in table.
func CountRows(t *testing.T, db database.Service, table string) int {
	t.Helper()

	var n int
	require.NoError(t, db.DB().Get(&n, "SELECT COUNT(*) FROM "+table))
	return n
}

// DoRequest sends a request through h. A non-nil body is JSON encoded unless
// it is already a string.
func DoRequest(t *testing.T, h http.Handler, method, target string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	switch b := body.(type) {
	case nil:
	case string:
		buf.WriteString(b)
	default:
		require.NoError(t, json.NewEncoder(&buf).Encode(b))
	}

	req := httptest.NewRequest(method, target, &buf)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

// DecodeJSON unmarshals the recorded body into a T.
func DecodeJSON[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()

	var v T
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &v), "body: %s", rec.Body.String())
	return v
}
