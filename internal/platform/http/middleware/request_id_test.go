package middleware

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newRouter(seen *string) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(RequestID())
	r.GET("/", func(c *gin.Context) {
		*seen = RequestIDFromContext(c)
		c.Status(http.StatusOK)
	})
	return r
}

func TestRequestID(t *testing.T) {
	tests := []struct {
		name     string
		header   string
		keepSent bool
	}{
		{"generated when absent", "", false},
		{"caller id kept", "req-123", true},
		{"overlong id replaced", strings.Repeat("x", maxRequestIDLen+1), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var seen string
			w := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			if tt.header != "" {
				req.Header.Set(HeaderRequestID, tt.header)
			}

			newRouter(&seen).ServeHTTP(w, req)

			got := w.Header().Get(HeaderRequestID)
			assert.Equal(t, seen, got)
			if tt.keepSent {
				assert.Equal(t, tt.header, got)
				return
			}
			_, err := uuid.Parse(got)
			require.NoError(t, err, "expected a generated UUID, got %q", got)
		})
	}
}

func TestRequestIDFromContext_Nil(t *testing.T) {
	assert.Equal(t, "", RequestIDFromContext(nil))
}
