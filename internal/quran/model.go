package quran

// Revelation types carried by the corpus provider.
const (
	RevelationMeccan  = "Meccan"
	RevelationMedinan = "Medinan"
)

type Surah struct {
	Number                 int    `json:"number" db:"number"`
	Name                   string `json:"name" db:"name"`
	EnglishName            string `json:"englishName" db:"english_name"`
	EnglishNameTranslation string `json:"englishNameTranslation" db:"english_name_translation"`
	RevelationType         string `json:"revelationType" db:"revelation_type"`
	NumberOfAyahs          int    `json:"numberOfAyahs" db:"number_of_ayahs"`
}

// Ayah is one verse joined across the script edition and three translations.
type Ayah struct {
	ID                   int64  `json:"id" db:"id"`
	Surah                int    `json:"surah" db:"surah"`
	Ayah                 int    `json:"ayah" db:"ayah"`
	TextArabic           string `json:"text_arabic" db:"text_arabic"`
	TextEnglishSahih     string `json:"text_english_sahih" db:"text_english_sahih"`
	TextEnglishPickthall string `json:"text_english_pickthall" db:"text_english_pickthall"`
	TextEnglishYusufAli  string `json:"text_english_yusufali" db:"text_english_yusufali"`
}

// Corpus is everything a seed writes: surahs in number order and their
// ayahs in (surah, ayah) order.
type Corpus struct {
	Surahs []Surah
	Ayahs  []Ayah
}
