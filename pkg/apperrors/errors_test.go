package apperrors

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAsAppErrorUnwrapsChains(t *testing.T) {
	base := ErrNotFound("job", "Job posting not found")
	wrapped := fmt.Errorf("loading: %w", base)

	appErr, ok := AsAppError(wrapped)
	require.True(t, ok)
	assert.Same(t, base, appErr)
	assert.True(t, HasCode(wrapped, CodeNotFound))
	assert.False(t, HasCode(errors.New("plain"), CodeNotFound))
}

func TestFactoriesReturnFreshValues(t *testing.T) {
	a := ErrInvalidFilter("bad")
	b := ErrInvalidFilter("bad")
	a.WithDetails(map[string]string{"limit": "too big"})
	assert.Nil(t, b.Details)
	assert.Equal(t, http.StatusBadRequest, a.HTTPCode)
}

func TestStoreUnavailableKeepsCause(t *testing.T) {
	cause := errors.New("dial tcp: connection refused")
	err := ErrStoreUnavailable(cause)

	assert.ErrorIs(t, err, cause)
	assert.Equal(t, CodeStoreUnavailable, err.Code)
	assert.Equal(t, http.StatusServiceUnavailable, err.HTTPCode)
}

func TestHandleErrorWritesEnvelope(t *testing.T) {
	gin.SetMode(gin.TestMode)

	cases := []struct {
		name   string
		err    error
		status int
		code   ErrorCode
	}{
		{"validation", ValidationError(map[string]string{"title": "This field is required"}), http.StatusBadRequest, CodeValidationFailed},
		{"conflict", ErrConflict("store", "duplicate"), http.StatusConflict, CodeConflict},
		{"rate limited", ErrRateLimited(), http.StatusTooManyRequests, CodeRateLimited},
		{"unknown", errors.New("boom"), http.StatusInternalServerError, CodeInternalError},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			c, _ := gin.CreateTestContext(w)

			HandleError(c, tc.err)

			assert.Equal(t, tc.status, w.Code)
			assert.True(t, c.IsAborted())
			var body struct {
				Error struct {
					Code    ErrorCode `json:"code"`
					Message string    `json:"message"`
				} `json:"error"`
			}
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
			assert.Equal(t, tc.code, body.Error.Code)
			assert.NotEmpty(t, body.Error.Message)
		})
	}
}

func TestServerErrorsHideCauseUnlessDebug(t *testing.T) {
	gin.SetMode(gin.TestMode)
	t.Cleanup(func() { SetDebug(false) })

	err := ErrStoreUnavailable(errors.New("password=hunter2")).WithDetails("password=hunter2")

	SetDebug(false)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	HandleError(c, err)
	assert.NotContains(t, w.Body.String(), "hunter2")

	SetDebug(true)
	w = httptest.NewRecorder()
	c, _ = gin.CreateTestContext(w)
	HandleError(c, err)
	assert.Contains(t, w.Body.String(), "hunter2")
}
