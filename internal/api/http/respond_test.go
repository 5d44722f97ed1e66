package http

import (
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"rentmarket-backend/internal/domain"
	"rentmarket-backend/internal/service"

	"github.com/stretchr/testify/assert"
)

func TestWriteError(t *testing.T) {
	cases := []struct {
		name   string
		err    error
		status int
	}{
		{"NotFound", domain.ErrNotFound, http.StatusNotFound},
		{"WrappedNotFound", fmt.Errorf("loading item: %w", domain.ErrNotFound), http.StatusNotFound},
		{"Forbidden", domain.ErrForbidden, http.StatusForbidden},
		{"InvalidState", fmt.Errorf("request already approved: %w", domain.ErrInvalidState), http.StatusConflict},
		{"BadCredentials", service.ErrInvalidCredentials, http.StatusUnauthorized},
		{"Unknown", errors.New("boom"), http.StatusInternalServerError},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			writeError(rec, tc.err)
			assert.Equal(t, tc.status, rec.Code)
		})
	}
}

func TestWriteError_Validation(t *testing.T) {
	ve := domain.NewValidationError()
	ve.Add("title", "Please provide a title for your rental item.")
	ve.Add("title", "The title cannot exceed 255 characters.")
	ve.Add("location", "Please specify the location of your rental item.")

	rec := httptest.NewRecorder()
	writeError(rec, ve)

	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	assert.JSONEq(t, `{
		"message": "The given data was invalid.",
		"errors": {
			"title": [
				"Please provide a title for your rental item.",
				"The title cannot exceed 255 characters."
			],
			"location": ["Please specify the location of your rental item."]
		}
	}`, rec.Body.String())
}

func TestParsePage(t *testing.T) {
	assert.Equal(t, int32(1), parsePage(""))
	assert.Equal(t, int32(1), parsePage("abc"))
	assert.Equal(t, int32(1), parsePage("0"))
	assert.Equal(t, int32(1), parsePage("-2"))
	assert.Equal(t, int32(3), parsePage("3"))
}
