package bookmark

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/taiwoajasa245/quran-api/pkg/response"
)

type BookmarkHandler struct {
	service BookmarkService
}

func NewBookmarkHandler(service BookmarkService) BookmarkHandler {
	return BookmarkHandler{service: service}
}

// ListBookmarksHandler godoc
// @Summary      List bookmarks
// @Description  Newest first.
// @Tags         bookmarks
// @Produce      json
// @Success      200  {array}   Bookmark
// @Failure      500  {object}  response.APIResponse
// @Router       /bookmarks [get]
func (h *BookmarkHandler) ListBookmarksHandler(w http.ResponseWriter, r *http.Request) {
	bookmarks, err := h.service.List(r.Context())
	if err != nil {
		response.Error(w, http.StatusInternalServerError, "Failed to get bookmarks")
		return
	}

	response.JSON(w, http.StatusOK, bookmarks)
}

// CreateBookmarkHandler godoc
// @Summary      Create a bookmark
// @Tags         bookmarks
// @Accept       json
// @Produce      json
// @Param        body  body      CreateBookmarkRequest  true  "Surah and ayah"
// @Success      200   {object}  response.APIResponse
// @Failure      400   {object}  response.APIResponse
// @Failure      500   {object}  response.APIResponse
// @Router       /bookmarks [post]
func (h *BookmarkHandler) CreateBookmarkHandler(w http.ResponseWriter, r *http.Request) {
	var req CreateBookmarkRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid JSON body")
		return
	}

	if req.Surah == nil || req.Ayah == nil {
		response.Error(w, http.StatusBadRequest, "surah and ayah are required")
		return
	}

	if _, err := h.service.Create(r.Context(), *req.Surah, *req.Ayah); err != nil {
		response.Error(w, http.StatusInternalServerError, "Failed to create bookmark")
		return
	}

	response.Success(w)
}

// DeleteBookmarkHandler godoc
// @Summary      Delete a bookmark
// @Description  Deleting an unknown id still succeeds.
// @Tags         bookmarks
// @Produce      json
// @Param        id   path      int  true  "Bookmark ID"
// @Success      200  {object}  response.APIResponse
// @Failure      400  {object}  response.APIResponse
// @Failure      500  {object}  response.APIResponse
// @Router       /bookmarks/{id} [delete]
func (h *BookmarkHandler) DeleteBookmarkHandler(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		response.Error(w, http.StatusBadRequest, "id must be an integer")
		return
	}

	if err := h.service.Delete(r.Context(), id); err != nil {
		response.Error(w, http.StatusInternalServerError, "Failed to delete bookmark")
		return
	}

	response.Success(w)
}
