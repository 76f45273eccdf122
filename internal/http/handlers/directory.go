package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
)

type UserRequest struct {
	Email   string `json:"email" validate:"required,email"`
	IsAdmin bool   `json:"is_admin"`
}

type DangerousWordRequest struct {
	Word     string `json:"word" form:"word" validate:"required,max=128"`
	Category string `json:"category" form:"category" validate:"required,max=64"`
}

// @Summary List users
// @Tags users
// @Produce json
// @Success 200 {array} models.User
// @Router /api/users [get]
func (h *Handler) UsersList(c *gin.Context) {
	users, err := h.Backend.ListUsers(c.Request.Context(), currentSession(c))
	if err != nil {
		writeUpstreamError(c, err, "Error al cargar usuarios")
		return
	}
	c.JSON(http.StatusOK, users)
}

// @Summary Create user
// @Tags users
// @Accept json
// @Produce json
// @Param body body UserRequest true "user"
// @Success 201 {object} models.User
// @Router /api/users [post]
func (h *Handler) UsersCreate(c *gin.Context) {
	var req UserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, http.StatusBadRequest, "INVALID_REQUEST", "Invalid payload", err.Error())
		return
	}
	if err := h.Validator.Struct(req); err != nil {
		writeError(c, http.StatusBadRequest, "VALIDATION_ERROR", "Validation failed", err.Error())
		return
	}
	u, err := h.Backend.CreateUser(c.Request.Context(), currentSession(c), req.Email, req.IsAdmin)
	if err != nil {
		writeUpstreamError(c, err, "No se pudo agregar el usuario")
		return
	}
	c.JSON(http.StatusCreated, u)
}

func (h *Handler) UsersDelete(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	if err := h.Backend.DeleteUser(c.Request.Context(), currentSession(c), id); err != nil {
		writeUpstreamError(c, err, "No se pudo eliminar el usuario")
		return
	}
	c.Status(http.StatusNoContent)
}

// @Summary List dangerous words
// @Tags dangerous-words
// @Produce json
// @Success 200 {array} models.DangerousWord
// @Router /api/dangerous-words [get]
func (h *Handler) DangerousWordsList(c *gin.Context) {
	words, err := h.Backend.ListDangerousWords(c.Request.Context(), currentSession(c))
	if err != nil {
		writeUpstreamError(c, err, "Error al cargar palabras peligrosas")
		return
	}
	c.JSON(http.StatusOK, words)
}

// DangerousWordsCreate accepts the word as JSON or as query parameters.
func (h *Handler) DangerousWordsCreate(c *gin.Context) {
	var req DangerousWordRequest
	var err error
	if c.ContentType() == "application/json" {
		err = c.ShouldBindJSON(&req)
	} else {
		err = c.ShouldBindQuery(&req)
	}
	if err != nil {
		writeError(c, http.StatusBadRequest, "INVALID_REQUEST", "Invalid payload", err.Error())
		return
	}
	if err := h.Validator.Struct(req); err != nil {
		writeError(c, http.StatusBadRequest, "VALIDATION_ERROR", "Validation failed", err.Error())
		return
	}
	w, err := h.Backend.AddDangerousWord(c.Request.Context(), currentSession(c), req.Word, req.Category)
	if err != nil {
		writeUpstreamError(c, err, "No se pudo agregar la palabra")
		return
	}
	c.JSON(http.StatusCreated, w)
}

func (h *Handler) DangerousWordsDelete(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	if err := h.Backend.DeleteDangerousWord(c.Request.Context(), currentSession(c), id); err != nil {
		writeUpstreamError(c, err, "No se pudo eliminar la palabra")
		return
	}
	c.Status(http.StatusNoContent)
}

func pathID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		writeError(c, http.StatusBadRequest, "INVALID_REQUEST", "id must be a positive integer", nil)
		return 0, false
	}
	return id, true
}
