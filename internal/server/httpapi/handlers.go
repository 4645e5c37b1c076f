package httpapi

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/dmitrijs2005/goblog/internal/common"
	"github.com/dmitrijs2005/goblog/internal/server/services"
)

// errorBody is the JSON shape of every non-success response.
type errorBody struct {
	Error  string `json:"error"`
	Status int    `json:"status"`
}

func abortError(c *gin.Context, status int, msg string) {
	c.AbortWithStatusJSON(status, errorBody{Error: msg, Status: status})
}

// writeError is the single translation point from the domain taxonomy to
// HTTP. Internal failures keep their detail out of the response; the full
// chain goes to the log.
func (s *Server) writeError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, common.ErrAlreadyExists):
		abortError(c, http.StatusConflict, err.Error())
	case errors.Is(err, common.ErrUnauthorized):
		abortError(c, http.StatusUnauthorized, err.Error())
	case errors.Is(err, common.ErrUserNotFound), errors.Is(err, common.ErrPostNotFound):
		abortError(c, http.StatusNotFound, err.Error())
	case errors.Is(err, services.ErrInvalidPagination):
		abortError(c, http.StatusBadRequest, err.Error())
	default:
		s.logger.Error(c.Request.Context(), "request failed", "error", err.Error())
		abortError(c, http.StatusInternalServerError, common.ErrInternal.Error())
	}
}

func (s *Server) register(c *gin.Context) {
	var req services.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortError(c, http.StatusBadRequest, "invalid request body")
		return
	}

	user, err := s.auth.Register(c.Request.Context(), req)
	if err != nil {
		s.writeError(c, err)
		return
	}

	c.JSON(http.StatusCreated, user)
}

func (s *Server) login(c *gin.Context) {
	var req services.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortError(c, http.StatusBadRequest, "invalid request body")
		return
	}

	user, err := s.auth.Login(c.Request.Context(), req)
	if err != nil {
		s.writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, user)
}

func (s *Server) createPost(c *gin.Context) {
	caller, ok := callerFromContext(c)
	if !ok {
		abortError(c, http.StatusUnauthorized, "missing bearer")
		return
	}

	var req services.NewPost
	if err := c.ShouldBindJSON(&req); err != nil {
		abortError(c, http.StatusBadRequest, "invalid request body")
		return
	}

	post, err := s.blog.Create(c.Request.Context(), caller, req)
	if err != nil {
		s.writeError(c, err)
		return
	}

	c.JSON(http.StatusCreated, post)
}

func (s *Server) getPost(c *gin.Context) {
	id, ok := postID(c)
	if !ok {
		return
	}

	post, err := s.blog.Get(c.Request.Context(), id)
	if err != nil {
		s.writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, post)
}

func (s *Server) updatePost(c *gin.Context) {
	caller, ok := callerFromContext(c)
	if !ok {
		abortError(c, http.StatusUnauthorized, "missing bearer")
		return
	}

	id, ok := postID(c)
	if !ok {
		return
	}

	// Absent fields decode as "" and are left alone by the update.
	var req struct {
		Title   string `json:"title"`
		Content string `json:"content"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		abortError(c, http.StatusBadRequest, "invalid request body")
		return
	}

	post, err := s.blog.Update(c.Request.Context(), caller, id, req.Title, req.Content)
	if err != nil {
		s.writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, post)
}

func (s *Server) deletePost(c *gin.Context) {
	caller, ok := callerFromContext(c)
	if !ok {
		abortError(c, http.StatusUnauthorized, "missing bearer")
		return
	}

	id, ok := postID(c)
	if !ok {
		return
	}

	if err := s.blog.Delete(c.Request.Context(), caller, id); err != nil {
		s.writeError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

func (s *Server) listPosts(c *gin.Context) {
	offset, ok := queryInt64(c, "offset")
	if !ok {
		return
	}
	limit, ok := queryInt64(c, "limit")
	if !ok {
		return
	}

	list, err := s.blog.List(c.Request.Context(), offset, limit)
	if err != nil {
		s.writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, list)
}

func postID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		abortError(c, http.StatusBadRequest, "invalid post id")
		return 0, false
	}
	return id, true
}

// queryInt64 reads an optional integer query parameter; absent means nil.
func queryInt64(c *gin.Context, name string) (*int64, bool) {
	raw, present := c.GetQuery(name)
	if !present {
		return nil, true
	}
	v, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		abortError(c, http.StatusBadRequest, "invalid "+name)
		return nil, false
	}
	return &v, true
}
