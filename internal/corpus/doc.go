// Package corpus loads the Quran text into an empty store.
//
// Four editions are fetched concurrently from an alquran.cloud compatible
// API: the Uthmani script and the Sahih International, Pickthall and Yusuf
// Ali translations. They are checked for identical surah/ayah segmentation,
// joined by position, and written in a single transaction. A store that
// already holds ayahs is never touched again.
//
// Typical use at startup:
//
//	client := corpus.NewClient(cfg.CorpusAPIURL, corpus.WithTimeout(cfg.CorpusFetchTimeout))
//	seeder := corpus.NewSeeder(quran.NewRepository(db), client)
//	if _, err := seeder.Seed(ctx); err != nil {
//		// logged; the next start (or RunRetries) tries again
//	}
package corpus
