package rest

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/dmitrijs2005/sealnotes/internal/common"
	"github.com/dmitrijs2005/sealnotes/internal/server/notes"
	"github.com/dmitrijs2005/sealnotes/internal/server/users"
	"github.com/gin-gonic/gin"
)

func (s *Server) health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"message": "Encrypted Notes App is running!"})
}

// bindCredentials decodes {username, password}; both keys are required.
func bindCredentials(c *gin.Context) (string, string, bool) {
	var req credentials
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusUnprocessableEntity, validationError(err.Error(), "body"))
		return "", "", false
	}
	if req.Username == nil {
		c.JSON(http.StatusUnprocessableEntity, validationError("Field required", "body", "username"))
		return "", "", false
	}
	if req.Password == nil {
		c.JSON(http.StatusUnprocessableEntity, validationError("Field required", "body", "password"))
		return "", "", false
	}
	return *req.Username, *req.Password, true
}

func (s *Server) register(c *gin.Context) {
	ctx := c.Request.Context()

	username, password, ok := bindCredentials(c)
	if !ok {
		return
	}

	s.logger.Info(ctx, "Registration request", "username", username)

	u, err := s.users.Register(ctx, username, password)
	switch {
	case errors.Is(err, common.ErrAlreadyExists):
		c.JSON(http.StatusBadRequest, detail("Username already exists"))
		return
	case errors.Is(err, users.ErrMissingCredentials):
		c.JSON(http.StatusBadRequest, detail("Username and password are required"))
		return
	case err != nil:
		s.internalError(c, err)
		return
	}

	s.logger.Info(ctx, "Registered", "user_id", u.ID)
	c.JSON(http.StatusOK, newUserRead(u))
}

func (s *Server) login(c *gin.Context) {
	ctx := c.Request.Context()

	username, password, ok := bindCredentials(c)
	if !ok {
		return
	}

	token, err := s.users.Login(ctx, username, password)
	if err != nil {
		if errors.Is(err, common.ErrInvalidCredentials) {
			s.logger.Info(ctx, "Login rejected", "username", username)
			c.JSON(http.StatusBadRequest, detail("Invalid username or password"))
			return
		}
		s.internalError(c, err)
		return
	}

	c.JSON(http.StatusOK, tokenResponse{AccessToken: token, TokenType: "bearer"})
}

func (s *Server) listNotes(c *gin.Context) {
	list, err := s.notes.List(c.Request.Context(), currentUser(c).ID)
	if err != nil {
		s.internalError(c, err)
		return
	}
	c.JSON(http.StatusOK, newNoteReads(list))
}

func (s *Server) createNote(c *gin.Context) {
	var req noteCreate
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusUnprocessableEntity, validationError(err.Error(), "body"))
		return
	}

	required := []struct {
		name string
		v    *string
	}{
		{"title", req.Title},
		{"content", req.Content},
		{"keywords", req.Keywords},
	}
	for _, f := range required {
		if f.v == nil {
			c.JSON(http.StatusUnprocessableEntity, validationError("Field required", "body", f.name))
			return
		}
	}

	d := notes.Draft{Title: *req.Title, Content: *req.Content, Keywords: *req.Keywords}
	if req.Drawing != nil {
		d.Drawing = *req.Drawing
	}

	n, err := s.notes.Create(c.Request.Context(), currentUser(c).ID, d)
	if err != nil {
		s.internalError(c, err)
		return
	}
	c.JSON(http.StatusCreated, newNoteRead(*n))
}

func (s *Server) searchNotes(c *gin.Context) {
	q, ok := c.GetQuery("q")
	if !ok {
		c.JSON(http.StatusUnprocessableEntity, validationError("Field required", "query", "q"))
		return
	}

	list, err := s.notes.Search(c.Request.Context(), currentUser(c).ID, q)
	if err != nil {
		s.internalError(c, err)
		return
	}
	c.JSON(http.StatusOK, newNoteReads(list))
}

func (s *Server) getNote(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusUnprocessableEntity, validationError("Input should be a valid integer", "path", "note_id"))
		return
	}

	d, err := s.notes.Get(c.Request.Context(), currentUser(c).ID, id)
	switch {
	case errors.Is(err, common.ErrNotFound):
		c.JSON(http.StatusNotFound, detail("Note not found"))
		return
	case errors.Is(err, common.ErrInvalidSignature):
		c.JSON(http.StatusBadRequest, detail("Invalid signature"))
		return
	case err != nil:
		s.internalError(c, err)
		return
	}

	c.JSON(http.StatusOK, newNoteDetail(d))
}

func (s *Server) internalError(c *gin.Context, err error) {
	s.logger.Error(c.Request.Context(), "request failed", "path", c.FullPath(), "error", err)
	c.JSON(http.StatusInternalServerError, detail("Internal Server Error"))
}
