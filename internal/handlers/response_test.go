package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dropstore/dropstore-backend/internal/apperror"
)

func decodeMessage(t *testing.T, rec *httptest.ResponseRecorder) string {
	t.Helper()
	var body MessageResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&body))
	return body.Message
}

func TestWriteError_BusinessErrorsAre400(t *testing.T) {
	cases := []error{
		apperror.Validation("Email is required!"),
		apperror.NotFound("User not found"),
		apperror.Conflict("User already exists"),
		apperror.Unauthorized("Invalid Password"),
		apperror.Forbidden("User not verified"),
	}
	for _, err := range cases {
		rec := httptest.NewRecorder()
		writeError(rec, err, "fallback")

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, err.Error(), decodeMessage(t, rec))
	}
}

func TestWriteError_InternalErrorsAreGeneric500(t *testing.T) {
	rec := httptest.NewRecorder()
	writeError(rec, errors.New("mongo: connection reset"), "Error fetching cart")

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	// The driver error is never surfaced to the client.
	assert.Equal(t, "Error fetching cart", decodeMessage(t, rec))
}

func TestBearerToken(t *testing.T) {
	r := httptest.NewRequest(http.MethodGet, "/user", nil)
	r.Header.Set("Authorization", "Bearer abc.def.ghi")
	assert.Equal(t, "abc.def.ghi", bearerToken(r))

	r.Header.Set("Authorization", "abc.def.ghi")
	assert.Equal(t, "", bearerToken(r))

	r.Header.Del("Authorization")
	assert.Equal(t, "", bearerToken(r))
}
