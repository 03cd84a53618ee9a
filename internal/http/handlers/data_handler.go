// History HTTP handlers, mounted under /data and protected by RequireAuth.
//
//   - POST   /data/save          (save a generation)
//   - GET    /data/history       (newest first, weak ETag)
//   - PUT    /data/favorite/{id} (toggle favorite)
//   - GET    /data/favorites     (favorites only)
//   - DELETE /data/{id}          (delete)
package handlers

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/creatorlab/creatorlab-backend/internal/domain"
	"github.com/creatorlab/creatorlab-backend/internal/http/middleware"
	"github.com/creatorlab/creatorlab-backend/internal/services"
	"github.com/creatorlab/creatorlab-backend/internal/utils"
)

// SaveRequest is the payload of POST /data/save. Result accepts the
// canonical {items, secondary_items} object as well as the {bios},
// {captions, hashtags} and {outputs} responses of the generation endpoints.
type SaveRequest struct {
	Type   string                   `json:"type" binding:"required" example:"caption"`
	Input  domain.GenerationRequest `json:"input"`
	Result domain.GenerationResult  `json:"result"`
}

// SaveResponse wraps the stored record.
type SaveResponse struct {
	Success bool                     `json:"success" example:"true"`
	Saved   *domain.GenerationRecord `json:"saved"`
}

// RecordResponse wraps a single record.
type RecordResponse struct {
	Success bool                     `json:"success" example:"true"`
	Item    *domain.GenerationRecord `json:"item"`
}

// RecordListResponse wraps a list of records, newest first.
type RecordListResponse struct {
	Success bool                      `json:"success" example:"true"`
	Data    []domain.GenerationRecord `json:"data"`
}

// historyError maps HistoryService errors onto the envelope.
func historyError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, services.ErrBadRequest):
		fail(c, http.StatusBadRequest, ErrCodeBadRequest, detail(err, services.ErrBadRequest))
	case errors.Is(err, services.ErrRecordNotFound):
		fail(c, http.StatusNotFound, ErrCodeNotFound, "record not found")
	default:
		middleware.LoggerFrom(c).Error().Err(err).Msg("history operation failed")
		fail(c, http.StatusInternalServerError, ErrCodeInternal, "internal error")
	}
}

// SaveHistory godoc
// @ID          saveHistory
// @Summary     Save a generation
// @Description Stores a generation in the caller's history.
// @Tags        History
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       body  body      handlers.SaveRequest  true  "Record to save"
// @Success     201   {object}  handlers.SaveResponse
// @Failure     400   {object}  handlers.ErrorResponse "Bad request"
// @Failure     401   {object}  handlers.ErrorResponse "Unauthorized"
// @Failure     500   {object}  handlers.ErrorResponse "Internal error"
// @Router      /data/save [post]
func (h *Handlers) SaveHistory(c *gin.Context) {
	var req SaveRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindFailure(c, err)
		return
	}
	rec, err := h.hist.Save(c.Request.Context(), userID(c), domain.ContentType(req.Type), req.Input, req.Result)
	if err != nil {
		historyError(c, err)
		return
	}
	ok(c, http.StatusCreated, SaveResponse{Success: true, Saved: rec})
}

// ListHistory godoc
// @ID          listHistory
// @Summary     List history
// @Description Returns the caller's most recent generations, newest first. Supports weak ETag via If-None-Match.
// @Tags        History
// @Produce     json
// @Security    BearerAuth
// @Param       If-None-Match  header  string  false  "Return 304 if ETag matches"
// @Param       limit          query   int     false  "Maximum records"  minimum(1) default(20)
// @Success     200  {object}  handlers.RecordListResponse
// @Header      200  {string}  ETag  "Weak ETag for the current result"
// @Success     304  {string}  string "Not Modified"
// @Failure     401  {object}  handlers.ErrorResponse "Unauthorized"
// @Failure     500  {object}  handlers.ErrorResponse "Internal error"
// @Router      /data/history [get]
func (h *Handlers) ListHistory(c *gin.Context) {
	ctx := c.Request.Context()
	uid := userID(c)
	limit := utils.AtoiDefault(c.Query("limit"), 0)

	// ETag pre-check (best effort).
	if count, maxTS, err := h.hist.Stats(ctx, uid); err == nil {
		var ts int64
		if maxTS != nil {
			ts = maxTS.UnixNano()
		}
		etag := fmt.Sprintf(`W/"history:%d:%d:%d"`, limit, count, ts)
		c.Header("ETag", etag)
		if etagMatch(c.GetHeader("If-None-Match"), etag) {
			c.Status(http.StatusNotModified)
			return
		}
	}

	items, err := h.hist.List(ctx, uid, limit)
	if err != nil {
		historyError(c, err)
		return
	}
	ok(c, http.StatusOK, RecordListResponse{Success: true, Data: items})
}

// etagMatch reports whether an If-None-Match header lists etag (or "*").
func etagMatch(inm, etag string) bool {
	for _, t := range strings.Split(inm, ",") {
		if t = strings.TrimSpace(t); t == etag || t == "*" {
			return true
		}
	}
	return false
}

// ToggleFavorite godoc
// @ID          toggleFavorite
// @Summary     Toggle favorite
// @Description Flips the favorite flag of one of the caller's records.
// @Tags        History
// @Produce     json
// @Security    BearerAuth
// @Param       id   path      string  true  "Record ID (UUID)"  format(uuid)
// @Success     200  {object}  handlers.RecordResponse
// @Failure     401  {object}  handlers.ErrorResponse "Unauthorized"
// @Failure     404  {object}  handlers.ErrorResponse "Record not found"
// @Failure     500  {object}  handlers.ErrorResponse "Internal error"
// @Router      /data/favorite/{id} [put]
func (h *Handlers) ToggleFavorite(c *gin.Context) {
	rec, err := h.hist.ToggleFavorite(c.Request.Context(), userID(c), c.Param("id"))
	if err != nil {
		historyError(c, err)
		return
	}
	ok(c, http.StatusOK, RecordResponse{Success: true, Item: rec})
}

// ListFavorites godoc
// @ID          listFavorites
// @Summary     List favorites
// @Description Returns the caller's favorite records, newest first.
// @Tags        History
// @Produce     json
// @Security    BearerAuth
// @Success     200  {object}  handlers.RecordListResponse
// @Failure     401  {object}  handlers.ErrorResponse "Unauthorized"
// @Failure     500  {object}  handlers.ErrorResponse "Internal error"
// @Router      /data/favorites [get]
func (h *Handlers) ListFavorites(c *gin.Context) {
	items, err := h.hist.ListFavorites(c.Request.Context(), userID(c))
	if err != nil {
		historyError(c, err)
		return
	}
	ok(c, http.StatusOK, RecordListResponse{Success: true, Data: items})
}

// DeleteHistory godoc
// @ID          deleteHistory
// @Summary     Delete a record
// @Description Removes one of the caller's records from history.
// @Tags        History
// @Security    BearerAuth
// @Param       id   path  string  true  "Record ID (UUID)"  format(uuid)
// @Success     204  {string}  string "No Content"
// @Failure     401  {object}  handlers.ErrorResponse "Unauthorized"
// @Failure     404  {object}  handlers.ErrorResponse "Record not found"
// @Failure     500  {object}  handlers.ErrorResponse "Internal error"
// @Router      /data/{id} [delete]
func (h *Handlers) DeleteHistory(c *gin.Context) {
	if err := h.hist.Delete(c.Request.Context(), userID(c), c.Param("id")); err != nil {
		historyError(c, err)
		return
	}
	noContent(c)
}
