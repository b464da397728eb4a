// Package resp wraps each unit of controller work in a uniform
// success/failure envelope. It is the single place where errors are caught,
// classified, logged, and rendered; no other layer formats responses.
package resp

import (
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"backend/pkg/apperr"
)

// ErrorBody is the fixed wire shape of every non-2xx response.
type ErrorBody struct {
	Timestamp string `json:"timestamp"`
	Status    int    `json:"status"`
	Error     string `json:"error"`
	Message   string `json:"message"`
	Path      string `json:"path"`
}

var zone = time.Local

// SetZone overrides the time zone used for error timestamps. The default is
// the system zone.
func SetZone(loc *time.Location) {
	if loc != nil {
		zone = loc
	}
}

// Serve runs fn and renders either its value with the given success status or
// the uniform error body.
func Serve[T any](c *gin.Context, success int, fn func() (T, error)) {
	value, err := fn()
	if err != nil {
		Fail(c, err)
		return
	}
	c.JSON(success, value)
}

// ServeOK serves fn's value with a 200.
func ServeOK[T any](c *gin.Context, fn func() (T, error)) {
	Serve(c, http.StatusOK, fn)
}

// ServeCreated serves an id-returning creation with a 201, rendering the new
// id as a string.
func ServeCreated(c *gin.Context, fn func() (uint, error)) {
	id, err := fn()
	if err != nil {
		Fail(c, err)
		return
	}
	c.String(http.StatusCreated, strconv.FormatUint(uint64(id), 10))
}

// Fail classifies err, logs it, and writes the error body. Taxonomy errors
// below 500 log at info level without their cause; everything else logs at
// error level with the cause attached and is flattened to a 500, so internal
// detail never reaches the client.
func Fail(c *gin.Context, err error) {
	path := requestPath(c)
	appErr, ok := apperr.As(err)
	if !ok {
		appErr = apperr.Internal(err)
	}
	if appErr.Status < http.StatusInternalServerError {
		slog.Info("error processing request",
			"path", path, "status", appErr.Status, "message", appErr.Message)
	} else {
		slog.Error("error processing request",
			"path", path, "status", appErr.Status, "err", err)
	}
	c.JSON(appErr.Status, ErrorBody{
		Timestamp: time.Now().In(zone).Format(time.RFC3339),
		Status:    appErr.Status,
		Error:     http.StatusText(appErr.Status),
		Message:   appErr.Message,
		Path:      path,
	})
}

func requestPath(c *gin.Context) string {
	if c.Request == nil || c.Request.URL == nil {
		return "(unknown)"
	}
	return c.Request.URL.Path
}
