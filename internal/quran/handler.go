package quran

import (
	"net/http"
	"strconv"

	"github.com/taiwoajasa245/quran-api/pkg/response"
)

type QuranHandler struct {
	service QuranService
}

func NewQuranHandler(service QuranService) QuranHandler {
	return QuranHandler{service: service}
}

// GetAyahsHandler godoc
// @Summary      List ayahs
// @Description  Returns every ayah, or only those of one surah when surah is given.
// @Tags         quran
// @Produce      json
// @Param        surah  query     int  false  "Surah number"
// @Success      200    {array}   Ayah
// @Failure      400    {object}  response.APIResponse
// @Failure      500    {object}  response.APIResponse
// @Router       /quran [get]
func (h *QuranHandler) GetAyahsHandler(w http.ResponseWriter, r *http.Request) {
	var surah *int
	if raw := r.URL.Query().Get("surah"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil {
			response.Error(w, http.StatusBadRequest, "surah must be an integer")
			return
		}
		surah = &n
	}

	ayahs, err := h.service.GetAyahs(r.Context(), surah)
	if err != nil {
		response.Error(w, http.StatusInternalServerError, "Failed to get ayahs")
		return
	}

	response.JSON(w, http.StatusOK, ayahs)
}

// GetSurahsHandler godoc
// @Summary      List surahs
// @Tags         quran
// @Produce      json
// @Success      200  {array}   Surah
// @Failure      500  {object}  response.APIResponse
// @Router       /surahs [get]
func (h *QuranHandler) GetSurahsHandler(w http.ResponseWriter, r *http.Request) {
	surahs, err := h.service.GetSurahs(r.Context())
	if err != nil {
		response.Error(w, http.StatusInternalServerError, "Failed to get surahs")
		return
	}

	response.JSON(w, http.StatusOK, surahs)
}

// SearchHandler godoc
// @Summary      Search ayahs
// @Description  Literal substring match against the Arabic text and all three translations.
// @Tags         quran
// @Produce      json
// @Param        q    query     string  false  "Search term"
// @Success      200  {array}   Ayah
// @Failure      500  {object}  response.APIResponse
// @Router       /search [get]
func (h *QuranHandler) SearchHandler(w http.ResponseWriter, r *http.Request) {
	ayahs, err := h.service.Search(r.Context(), r.URL.Query().Get("q"))
	if err != nil {
		response.Error(w, http.StatusInternalServerError, "Failed to search")
		return
	}

	response.JSON(w, http.StatusOK, ayahs)
}
