package pkg

import (
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAppError(t *testing.T) {
	cause := errors.New("dynamo timeout")
	err := NewDomainError("INTERNAL_ERROR", "An internal error occurred", cause, http.StatusInternalServerError)

	assert.ErrorIs(t, err, cause)
	assert.Contains(t, err.Error(), "dynamo timeout")
	assert.Equal(t, HTTPError{Code: "INTERNAL_ERROR", Message: "An internal error occurred"}, err.ToHTTPError())

	simple := NewDomainErrorSimple("NOT_FOUND", "Request not found", http.StatusNotFound)
	assert.Equal(t, http.StatusNotFound, simple.HTTPStatus)
	assert.Equal(t, "NOT_FOUND: Request not found", simple.Error())
	assert.Nil(t, simple.Unwrap())
}
