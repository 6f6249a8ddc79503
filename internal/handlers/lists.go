package handlers

import (
	"errors"
	"net/http"

	"movielists/internal/service"

	"github.com/gin-gonic/gin"
)

const statusDeleted = "deleted"

// Request DTO for creating/updating a list. Movies is raw multi-line
// text; validation happens in the service, so nothing is required here
// (update deliberately allows a blank title).
type listRequest struct {
	Title  string `json:"title"`
	Movies string `json:"movies"`
	Notes  string `json:"notes"`
}

// respondListError maps domain errors onto HTTP statuses. Anything
// outside the taxonomy is logged and reported as an opaque 500.
func (h *Handler) respondListError(c *gin.Context, logKey string, err error) {
	switch {
	case errors.Is(err, service.ErrInvalidInput):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, service.ErrForbidden):
		c.JSON(http.StatusForbidden, gin.H{"error": err.Error()})
	case errors.Is(err, service.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	default:
		if h.log != nil {
			h.log.Errorw(logKey, "err", err)
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
	}
}

// @Summary      List all movie lists
// @Tags         lists
// @Produce      json
// @Success      200  {object}  map[string]interface{}  "count, lists"
// @Failure      401  {object}  map[string]string
// @Router       /api/v1/lists [get]
// @Security     BearerAuth
func (h *Handler) listLists(c *gin.Context) {
	lists, err := h.services.Lists.ListAll(c.Request.Context())
	if err != nil {
		h.respondListError(c, "lists_list_failed", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"count": len(lists),
		"lists": lists,
	})
}

// @Summary      Get a movie list by id
// @Tags         lists
// @Produce      json
// @Param        id   path  string  true  "List id"
// @Success      200  {object}  map[string]interface{}
// @Failure      404  {object}  map[string]string
// @Router       /api/v1/lists/{id} [get]
func (h *Handler) getList(c *gin.Context) {
	l, err := h.services.Lists.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.respondListError(c, "lists_get_failed", err)
		return
	}
	c.JSON(http.StatusOK, l)
}

// @Summary      Create a movie list
// @Description  Movies is multi-line text, one title per line; blank lines are dropped.
// @Tags         lists
// @Accept       json
// @Produce      json
// @Param        body  body  listRequest  true  "List payload"
// @Success      201   {object}  map[string]interface{}
// @Failure      400   {object}  map[string]string
// @Failure      401   {object}  map[string]string
// @Failure      429   {object}  map[string]string
// @Router       /api/v1/lists [post]
// @Security     BearerAuth
func (h *Handler) createList(c *gin.Context) {
	uid, ok := userID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "missing identity"})
		return
	}
	var req listRequest
	if ok := h.bindJSONOrBadRequest(c, &req); !ok {
		return
	}

	l, err := h.services.Lists.Create(c.Request.Context(), uid, service.ListInput{
		Title:  req.Title,
		Movies: req.Movies,
		Notes:  req.Notes,
	})
	if err != nil {
		h.respondListError(c, "lists_create_failed", err)
		return
	}
	c.JSON(http.StatusCreated, l)
}

// @Summary      Update a movie list (owner only)
// @Description  Blank title keeps the stored title; notes are replaced wholesale.
// @Tags         lists
// @Accept       json
// @Produce      json
// @Param        id    path  string       true  "List id"
// @Param        body  body  listRequest  true  "List payload"
// @Success      200   {object}  map[string]interface{}
// @Failure      400   {object}  map[string]string
// @Failure      401   {object}  map[string]string
// @Failure      403   {object}  map[string]string
// @Failure      404   {object}  map[string]string
// @Failure      429   {object}  map[string]string
// @Router       /api/v1/lists/{id} [put]
// @Security     BearerAuth
func (h *Handler) updateList(c *gin.Context) {
	uid, ok := userID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "missing identity"})
		return
	}
	var req listRequest
	if ok := h.bindJSONOrBadRequest(c, &req); !ok {
		return
	}

	l, err := h.services.Lists.Update(c.Request.Context(), uid, c.Param("id"), service.ListInput{
		Title:  req.Title,
		Movies: req.Movies,
		Notes:  req.Notes,
	})
	if err != nil {
		h.respondListError(c, "lists_update_failed", err)
		return
	}
	c.JSON(http.StatusOK, l)
}

// @Summary      Delete a movie list (owner only)
// @Tags         lists
// @Produce      json
// @Param        id   path  string  true  "List id"
// @Success      200  {object}  map[string]string
// @Failure      401  {object}  map[string]string
// @Failure      403  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Failure      429  {object}  map[string]string
// @Router       /api/v1/lists/{id} [delete]
// @Security     BearerAuth
func (h *Handler) deleteList(c *gin.Context) {
	uid, ok := userID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "missing identity"})
		return
	}
	if err := h.services.Lists.Delete(c.Request.Context(), uid, c.Param("id")); err != nil {
		h.respondListError(c, "lists_delete_failed", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": statusDeleted})
}

const statusOK = "ok"

// @Summary      Health check
// @Tags         system
// @Produce      json
// @Success      200  {object}  map[string]string
// @Router       /health [get]
func (h *Handler) health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status": statusOK,
	})
}
