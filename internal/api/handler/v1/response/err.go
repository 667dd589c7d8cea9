package response

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/Emmabm/web-lasrocas-sub000/internal/domain"
)

type Err struct {
	Error          error  `json:"-"`
	HTTPStatusCode int    `json:"-"`
	StatusText     string `json:"status"`
	Reason         string `json:"reason,omitempty"`
	ErrorText      string `json:"error,omitempty"`
}

func RenderErr(ctx *gin.Context, e *Err) {
	if e.HTTPStatusCode >= http.StatusInternalServerError {
		zap.L().Error("request failed",
			zap.String("path", ctx.FullPath()),
			zap.Int("status", e.HTTPStatusCode),
			zap.Error(e.Error))
	}
	ctx.AbortWithStatusJSON(e.HTTPStatusCode, e)
}

func newErr(status int, err error) *Err {
	return &Err{
		Error:          err,
		HTTPStatusCode: status,
		StatusText:     http.StatusText(status),
		ErrorText:      err.Error(),
	}
}

func ErrBadRequest(err error) *Err {
	return newErr(http.StatusBadRequest, err)
}

func ErrNotFound(resource, key string, value any) *Err {
	return newErr(http.StatusNotFound, fmt.Errorf("%s with %s %v not found", resource, key, value))
}

func ErrConflict(err error) *Err {
	return newErr(http.StatusConflict, err)
}

func ErrBadGateway(err error) *Err {
	return newErr(http.StatusBadGateway, err)
}

// ErrInternalServerError hides the cause from the client; it only goes to the log.
func ErrInternalServerError(err error) *Err {
	return &Err{
		Error:          err,
		HTTPStatusCode: http.StatusInternalServerError,
		StatusText:     http.StatusText(http.StatusInternalServerError),
		ErrorText:      "something went wrong",
	}
}

// FromDomainErr maps the planner error kinds onto HTTP statuses.
func FromDomainErr(err error) *Err {
	var (
		validationErr *domain.ValidationError
		notFoundErr   *domain.NotFoundError
		blockedErr    *domain.BlockedError
	)

	switch {
	case errors.As(err, &validationErr):
		e := ErrBadRequest(validationErr)
		e.Reason = string(validationErr.Reason)
		return e
	case errors.As(err, &notFoundErr):
		return ErrNotFound(notFoundErr.Entity, "id", notFoundErr.Key)
	case errors.As(err, &blockedErr):
		e := ErrConflict(blockedErr)
		e.Reason = "event_inactive"
		return e
	case errors.Is(err, domain.ErrPersistence):
		return ErrBadGateway(err)
	default:
		return ErrInternalServerError(err)
	}
}
