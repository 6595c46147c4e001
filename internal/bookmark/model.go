package bookmark

import "time"

type Bookmark struct {
	ID        int64     `json:"id"`
	Surah     int       `json:"surah"`
	Ayah      int       `json:"ayah"`
	CreatedAt time.Time `json:"created_at"`
}

// CreateBookmarkRequest uses pointers so a missing field can be told apart
// from a zero value.
type CreateBookmarkRequest struct {
	Surah *int `json:"surah"`
	Ayah  *int `json:"ayah"`
}
