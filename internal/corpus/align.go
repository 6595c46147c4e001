package corpus

import (
	"errors"
	"fmt"
	"strings"

	"github.com/taiwoajasa245/quran-api/internal/quran"
)

var ErrMisaligned = errors.New("editions are not aligned")

// Align joins the four editions position by position into one corpus. The
// script edition supplies surah metadata; the translations must carry the
// same surahs with the same verse counts, or ErrMisaligned is returned.
func Align(set *EditionSet) (quran.Corpus, error) {
	if set == nil || set.Arabic == nil || set.Sahih == nil || set.Pickthall == nil || set.YusufAli == nil {
		return quran.Corpus{}, fmt.Errorf("%w: missing edition", ErrMisaligned)
	}

	script := set.Arabic
	translations := []*Edition{set.Sahih, set.Pickthall, set.YusufAli}

	if len(script.Surahs) == 0 {
		return quran.Corpus{}, fmt.Errorf("%w: %s has no surahs", ErrMisaligned, script.Identifier)
	}
	for _, e := range translations {
		if len(e.Surahs) != len(script.Surahs) {
			return quran.Corpus{}, fmt.Errorf("%w: %s has %d surahs, %s has %d",
				ErrMisaligned, script.Identifier, len(script.Surahs), e.Identifier, len(e.Surahs))
		}
	}

	var corpus quran.Corpus
	prev := 0
	for i, s := range script.Surahs {
		if s.Number <= prev {
			return quran.Corpus{}, fmt.Errorf("%w: surah %d out of order after %d", ErrMisaligned, s.Number, prev)
		}
		prev = s.Number

		if s.RevelationType != quran.RevelationMeccan && s.RevelationType != quran.RevelationMedinan {
			return quran.Corpus{}, fmt.Errorf("%w: surah %d has revelation type %q",
				ErrMisaligned, s.Number, s.RevelationType)
		}

		n := len(s.Ayahs)
		if n == 0 {
			return quran.Corpus{}, fmt.Errorf("%w: surah %d has no ayahs", ErrMisaligned, s.Number)
		}

		for _, e := range translations {
			t := e.Surahs[i]
			if t.Number != s.Number {
				return quran.Corpus{}, fmt.Errorf("%w: position %d is surah %d in %s but %d in %s",
					ErrMisaligned, i, s.Number, script.Identifier, t.Number, e.Identifier)
			}
			if len(t.Ayahs) != n {
				return quran.Corpus{}, fmt.Errorf("%w: surah %d has %d ayahs in %s but %d in %s",
					ErrMisaligned, s.Number, n, script.Identifier, len(t.Ayahs), e.Identifier)
			}
		}

		corpus.Surahs = append(corpus.Surahs, quran.Surah{
			Number:                 s.Number,
			Name:                   s.Name,
			EnglishName:            s.EnglishName,
			EnglishNameTranslation: s.EnglishNameTranslation,
			RevelationType:         s.RevelationType,
			NumberOfAyahs:          n,
		})

		for j := 0; j < n; j++ {
			texts := [4]EditionAyah{
				s.Ayahs[j],
				set.Sahih.Surahs[i].Ayahs[j],
				set.Pickthall.Surahs[i].Ayahs[j],
				set.YusufAli.Surahs[i].Ayahs[j],
			}
			editions := [4]*Edition{script, set.Sahih, set.Pickthall, set.YusufAli}
			for k, a := range texts {
				if a.NumberInSurah != j+1 {
					return quran.Corpus{}, fmt.Errorf("%w: %s surah %d position %d numbered %d",
						ErrMisaligned, editions[k].Identifier, s.Number, j+1, a.NumberInSurah)
				}
				if strings.TrimSpace(a.Text) == "" {
					return quran.Corpus{}, fmt.Errorf("%w: %s %d:%d has empty text",
						ErrMisaligned, editions[k].Identifier, s.Number, j+1)
				}
			}

			corpus.Ayahs = append(corpus.Ayahs, quran.Ayah{
				Surah:                s.Number,
				Ayah:                 j + 1,
				TextArabic:           texts[0].Text,
				TextEnglishSahih:     texts[1].Text,
				TextEnglishPickthall: texts[2].Text,
				TextEnglishYusufAli:  texts[3].Text,
			})
		}
	}

	return corpus, nil
}
