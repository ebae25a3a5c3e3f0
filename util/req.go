package util

import (
	"errors"
	"fmt"
	"log"
	"net/http"

	"github.com/clubhive/clubhive-be/apperr"
	"github.com/gin-gonic/gin"
)

type HTTPError struct {
	Status  int
	Message string
}

func (he *HTTPError) Error() string {
	return fmt.Sprintf("%v (statusCode=%v)", he.Message, he.Status)
}

var DbHTTPErr = HTTPError{
	Message: "database error",
	Status:  http.StatusInternalServerError,
}

func BuildDbHTTPErr(err error) *HTTPError {
	log.Println("database error occurred", err)
	return &DbHTTPErr
}

func BuildJSONBindHTTPErr(err error) *HTTPError {
	return &HTTPError{
		Status:  http.StatusBadRequest,
		Message: err.Error(),
	}
}

// BuildDomainHTTPErr maps the domain error taxonomy to responses. Anything
// outside the taxonomy is a storage fault. Data-integrity faults respond like
// internal errors, not like ordinary 404s, and always leave a log line.
func BuildDomainHTTPErr(err error) *HTTPError {
	var notFound *apperr.NotFoundError
	if errors.As(err, &notFound) {
		return &HTTPError{Status: http.StatusNotFound, Message: notFound.Error()}
	}
	var notAllowed *apperr.NotAllowedError
	if errors.As(err, &notAllowed) {
		return &HTTPError{Status: http.StatusUnauthorized, Message: notAllowed.Error()}
	}
	var unimplemented *apperr.UnimplementedError
	if errors.As(err, &unimplemented) {
		return &HTTPError{Status: http.StatusNotImplemented, Message: unimplemented.Error()}
	}
	var integrity *apperr.DataIntegrityError
	if errors.As(err, &integrity) {
		log.Println("data integrity fault", integrity)
		return &HTTPError{Status: http.StatusInternalServerError, Message: "internal error"}
	}
	return BuildDbHTTPErr(err)
}

type HandlerFunc func(c *gin.Context) (interface{}, *HTTPError)

type HandlerOpts struct{}

// HandlerWrapper adapts a data-or-error handler into the uniform
// {success, data|message} response shape.
func HandlerWrapper(handler HandlerFunc, opts *HandlerOpts) gin.HandlerFunc {
	return func(c *gin.Context) {
		data, httpErr := handler(c)
		if httpErr != nil {
			HandleHTTPErrorRes(c, httpErr)
			return
		}
		c.JSON(http.StatusOK, gin.H{
			"success": true,
			"data":    data,
		})
	}
}

/*
	HandleHTTPErrorRes handles creating the appropriate response for the HTTP error.
	break the route after calling this function
*/
func HandleHTTPErrorRes(c *gin.Context, err *HTTPError) {
	c.JSON(err.Status, gin.H{
		"success": false,
		"message": err.Message,
	})
}
