package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	apperrors "github.com/yucatanweather/app/pkg/errors"
)

// apiError is a failed /api call as the front-end sees it. The wire shape
// is {"error":{"code":...,"message":...}}; cause is only logged.
type apiError struct {
	status  int
	code    string
	message string
	cause   error
}

func (e *apiError) Error() string {
	if e.cause != nil {
		return e.cause.Error()
	}
	return e.message
}

func (e *apiError) Unwrap() error { return e.cause }

func (e *apiError) body() gin.H {
	message := e.message
	if message == "" {
		message = e.Error()
	}
	return gin.H{"error": gin.H{"code": e.code, "message": message}}
}

func invalidRequest(message string, cause error) *apiError {
	return &apiError{status: http.StatusBadRequest, code: "invalid_request", message: message, cause: cause}
}

var errTooManyRequests = &apiError{status: http.StatusTooManyRequests, code: "rate_limit_exceeded", message: "too many requests"}

// classify maps a service failure onto the status and code the front-end
// switches on. Unknown failures become a 500 without leaking the cause.
func classify(err error) *apiError {
	var known *apiError
	if errors.As(err, &known) {
		return known
	}
	switch {
	case apperrors.IsCode(err, apperrors.CodeInvalidInput):
		return invalidRequest(err.Error(), err)
	case apperrors.IsCode(err, apperrors.CodePlacesUnavailable):
		return &apiError{status: http.StatusBadGateway, code: apperrors.CodePlacesUnavailable, message: "places source unavailable", cause: err}
	case apperrors.IsCode(err, apperrors.CodePredictionFailed):
		return &apiError{status: http.StatusInternalServerError, code: apperrors.CodePredictionFailed, message: "prediction failed", cause: err}
	}
	return &apiError{status: http.StatusInternalServerError, code: "internal_error", message: "something went wrong", cause: err}
}

// fail records err for errorHandlingMiddleware and stops the chain.
func fail(c *gin.Context, err error) {
	_ = c.Error(classify(err))
	c.Abort()
}
