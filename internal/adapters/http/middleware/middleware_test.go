package middleware

import (
	"bytes"
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jsamuelsen/content-api/internal/adapters/http/failure"
	"github.com/jsamuelsen/content-api/internal/domain"
	"github.com/jsamuelsen/content-api/internal/platform/logging"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newMapper() *failure.Mapper {
	return failure.NewMapper(discardLogger())
}

// TestRequestIDMiddleware tests the RequestID middleware.
func TestRequestIDMiddleware(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name             string
		existingHeaderID string
		expectGenerated  bool
	}{
		{
			name:            "generates UUID when no header present",
			expectGenerated: true,
		},
		{
			name:             "passes through existing header",
			existingHeaderID: "existing-req-123",
		},
		{
			name:             "replaces oversized header",
			existingHeaderID: strings.Repeat("x", maxIDLength+1),
			expectGenerated:  true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			var capturedID, capturedContextID string

			router := gin.New()
			router.Use(RequestID())
			router.GET("/test", func(c *gin.Context) {
				capturedID = GetRequestID(c)
				capturedContextID = RequestIDFromContext(c.Request.Context())
				c.Status(http.StatusOK)
			})

			w := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodGet, "/test", nil)
			if tt.existingHeaderID != "" {
				req.Header.Set(HeaderRequestID, tt.existingHeaderID)
			}

			router.ServeHTTP(w, req)

			assert.Equal(t, http.StatusOK, w.Code)
			assert.Equal(t, w.Header().Get(HeaderRequestID), capturedID)
			assert.Equal(t, capturedID, capturedContextID)

			if tt.expectGenerated {
				_, err := uuid.Parse(capturedID)
				assert.NoError(t, err, "generated ID should be a valid UUID")
			} else {
				assert.Equal(t, tt.existingHeaderID, capturedID)
			}
		})
	}
}

// TestCorrelationIDMiddleware tests the CorrelationID middleware.
func TestCorrelationIDMiddleware(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name             string
		existingHeaderID string
	}{
		{name: "generates UUID when no header present"},
		{name: "propagates upstream correlation ID", existingHeaderID: "txn-789"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			var capturedID, capturedContextID string

			router := gin.New()
			router.Use(CorrelationID())
			router.GET("/test", func(c *gin.Context) {
				capturedID = GetCorrelationID(c)
				capturedContextID = CorrelationIDFromContext(c.Request.Context())
				c.Status(http.StatusOK)
			})

			w := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodGet, "/test", nil)
			if tt.existingHeaderID != "" {
				req.Header.Set(HeaderCorrelationID, tt.existingHeaderID)
			}

			router.ServeHTTP(w, req)

			assert.NotEmpty(t, capturedID)
			assert.Equal(t, w.Header().Get(HeaderCorrelationID), capturedID)
			assert.Equal(t, capturedID, capturedContextID)

			if tt.existingHeaderID != "" {
				assert.Equal(t, tt.existingHeaderID, capturedID)
			}
		})
	}
}

func TestIDMiddleware_EnrichesContextLogger(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	base := slog.New(slog.NewJSONHandler(&buf, nil))

	router := gin.New()
	router.Use(func(c *gin.Context) {
		c.Request = c.Request.WithContext(logging.WithContext(c.Request.Context(), base))
		c.Next()
	})
	router.Use(RequestID(), CorrelationID())
	router.GET("/test", func(c *gin.Context) {
		logging.FromContext(c.Request.Context()).Info("inside handler")
		c.Status(http.StatusOK)
	})

	req := httptest.NewRequest(http.MethodGet, "/test", nil)
	req.Header.Set(HeaderRequestID, "req-1")
	req.Header.Set(HeaderCorrelationID, "corr-1")

	router.ServeHTTP(httptest.NewRecorder(), req)

	assert.Contains(t, buf.String(), `"request_id":"req-1"`)
	assert.Contains(t, buf.String(), `"correlation_id":"corr-1"`)
}

func TestContextIDs(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name          string
		ctx           context.Context
		requestID     string
		correlationID string
	}{
		{name: "empty context", ctx: context.Background()},
		{name: "nil context", ctx: nil},
		{
			name:      "request ID only",
			ctx:       ContextWithRequestID(context.Background(), "req-123"),
			requestID: "req-123",
		},
		{
			name:          "both IDs stored together",
			ctx:           ContextWithCorrelationID(ContextWithRequestID(context.Background(), "req-123"), "corr-456"),
			requestID:     "req-123",
			correlationID: "corr-456",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tt.requestID, RequestIDFromContext(tt.ctx))
			assert.Equal(t, tt.correlationID, CorrelationIDFromContext(tt.ctx))
		})
	}
}

func TestGetIDFromContext(t *testing.T) {
	t.Parallel()

	c, _ := gin.CreateTestContext(httptest.NewRecorder())

	assert.Empty(t, GetRequestID(c))

	c.Set(ContextKeyRequestID, 42)
	assert.Empty(t, GetRequestID(c), "non-string values are ignored")

	c.Set(ContextKeyRequestID, "abc")
	assert.Equal(t, "abc", GetRequestID(c))
}

// TestErrorHandler tests that recorded failures are written by the mapper.
func TestErrorHandler(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		handler    gin.HandlerFunc
		wantStatus int
		wantBody   string
	}{
		{
			name: "no failure leaves response untouched",
			handler: func(c *gin.Context) {
				c.String(http.StatusOK, "ok")
			},
			wantStatus: http.StatusOK,
			wantBody:   "ok",
		},
		{
			name: "user not found becomes 404",
			handler: func(c *gin.Context) {
				_ = c.Error(domain.NewUserNotFoundError("mj"))
			},
			wantStatus: http.StatusNotFound,
			wantBody:   `{"errors":["User ` + "`mj`" + ` not found"]}`,
		},
		{
			name: "content not allowed becomes 400",
			handler: func(c *gin.Context) {
				_ = c.Error(domain.NewContentNotAllowedError([]domain.Violation{
					{Term: "terrorism", Reason: domain.ReasonNotAppropriate},
				}))
			},
			wantStatus: http.StatusBadRequest,
			wantBody:   `{"errors":["terrorism is not appropriate"]}`,
		},
		{
			name: "last recorded failure wins",
			handler: func(c *gin.Context) {
				_ = c.Error(errors.New("first"))
				_ = c.Error(domain.NewUserNotFoundError("mj"))
			},
			wantStatus: http.StatusNotFound,
			wantBody:   `{"errors":["User ` + "`mj`" + ` not found"]}`,
		},
		{
			name: "unclassified failure becomes empty 500",
			handler: func(c *gin.Context) {
				_ = c.Error(errors.New("secret internal detail"))
			},
			wantStatus: http.StatusInternalServerError,
		},
		{
			name: "already written response is kept",
			handler: func(c *gin.Context) {
				c.String(http.StatusAccepted, "done")
				_ = c.Error(errors.New("late"))
			},
			wantStatus: http.StatusAccepted,
			wantBody:   "done",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			router := gin.New()
			router.Use(ErrorHandler(newMapper()))
			router.GET("/test", tt.handler)

			w := httptest.NewRecorder()
			router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/test", nil))

			assert.Equal(t, tt.wantStatus, w.Code)

			switch {
			case tt.wantBody == "":
				assert.Empty(t, w.Body.String())
			case strings.HasPrefix(tt.wantBody, "{"):
				assert.JSONEq(t, tt.wantBody, w.Body.String())
			default:
				assert.Equal(t, tt.wantBody, w.Body.String())
			}
		})
	}
}

func TestErrorHandler_LogsFailureAfterWrittenResponse(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	logger := slog.New(slog.NewJSONHandler(&buf, nil))

	router := gin.New()
	router.Use(ErrorHandler(failure.NewMapper(logger)))
	router.GET("/test", func(c *gin.Context) {
		c.String(http.StatusAccepted, "done")
		_ = c.Error(domain.NewUserNotFoundError("mj"))
	})

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/test", nil))

	assert.Equal(t, http.StatusAccepted, w.Code)
	assert.Equal(t, "done", w.Body.String())
	assert.Contains(t, buf.String(), `"level":"ERROR","msg":"handling UserNotFound"`)
}

// TestRecovery tests the Recovery middleware.
func TestRecovery(t *testing.T) {
	t.Parallel()

	t.Run("normal request passes through", func(t *testing.T) {
		t.Parallel()

		router := gin.New()
		router.Use(Recovery(newMapper()))
		router.GET("/test", func(c *gin.Context) {
			c.Status(http.StatusOK)
		})

		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/test", nil))
		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("panicking handler returns empty 500", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		logger := slog.New(slog.NewJSONHandler(&buf, nil))

		router := gin.New()
		router.Use(Recovery(failure.NewMapper(logger)))
		router.GET("/test", func(c *gin.Context) {
			panic("something went wrong")
		})

		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/test", nil))

		assert.Equal(t, http.StatusInternalServerError, w.Code)
		assert.Empty(t, w.Body.String())
		assert.Contains(t, buf.String(), "*middleware.PanicError")
	})

	t.Run("abort handler panic propagates", func(t *testing.T) {
		t.Parallel()

		router := gin.New()
		router.Use(Recovery(newMapper()))
		router.GET("/test", func(c *gin.Context) {
			panic(http.ErrAbortHandler)
		})

		assert.PanicsWithValue(t, http.ErrAbortHandler, func() {
			router.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/test", nil))
		})
	})
}

func TestPanicError(t *testing.T) {
	t.Parallel()

	err := &PanicError{Value: "boom"}

	assert.Equal(t, "panic: boom", err.Error())
	assert.Equal(t, failure.KindUnclassified, failure.Classify(err))
}

// TestLogging tests the Logging middleware.
func TestLogging(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		path      string
		skipPaths []string
		status    int
		wantLevel string
		wantLog   bool
	}{
		{name: "logs normal request", path: "/users/mj", status: http.StatusOK, wantLevel: "INFO", wantLog: true},
		{name: "logs 400 at warn level", path: "/users/mj/posts", status: http.StatusBadRequest, wantLevel: "WARN", wantLog: true},
		{name: "logs 500 at error level", path: "/boom", status: http.StatusInternalServerError, wantLevel: "ERROR", wantLog: true},
		{name: "logs path with query string", path: "/users/mj?verbose=1", status: http.StatusOK, wantLevel: "INFO", wantLog: true},
		{name: "skips /-/ paths", path: "/-/ready", status: http.StatusOK},
		{name: "skips exact path", path: "/favicon.ico", skipPaths: []string{"/favicon.ico"}, status: http.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			var buf bytes.Buffer
			logger := slog.New(slog.NewJSONHandler(&buf, nil))

			router := gin.New()
			router.Use(Logging(logger, tt.skipPaths...))
			router.NoRoute(func(c *gin.Context) {
				c.Status(tt.status)
			})

			w := httptest.NewRecorder()
			router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, tt.path, nil))

			assert.Equal(t, tt.status, w.Code)

			if !tt.wantLog {
				assert.Empty(t, buf.String())
				return
			}

			lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
			require.Len(t, lines, 2)
			assert.Contains(t, lines[0], "request started")
			assert.Contains(t, lines[1], "request completed")
			assert.Contains(t, lines[1], `"level":"`+tt.wantLevel+`"`)
			assert.Contains(t, lines[1], tt.path)
		})
	}
}

// TestTimeout tests the Timeout middleware.
func TestTimeout(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name         string
		timeout      time.Duration
		wantDeadline bool
	}{
		{name: "sets context deadline", timeout: 5 * time.Second, wantDeadline: true},
		{name: "zero disables deadline", timeout: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			var hasDeadline bool

			router := gin.New()
			router.Use(Timeout(tt.timeout))
			router.GET("/test", func(c *gin.Context) {
				_, hasDeadline = c.Request.Context().Deadline()
				c.Status(http.StatusOK)
			})

			w := httptest.NewRecorder()
			router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/test", nil))

			assert.Equal(t, http.StatusOK, w.Code)
			assert.Equal(t, tt.wantDeadline, hasDeadline)
		})
	}
}

// TestMiddlewareChain runs the interception middleware in router order.
func TestMiddlewareChain(t *testing.T) {
	t.Parallel()

	mapper := newMapper()

	router := gin.New()
	router.Use(Recovery(mapper), RequestID(), CorrelationID(), Logging(discardLogger()), ErrorHandler(mapper))
	router.GET("/users/:username", func(c *gin.Context) {
		_ = c.Error(domain.NewUserNotFoundError(c.Param("username")))
	})
	router.GET("/panic", func(c *gin.Context) {
		panic("boom")
	})

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/users/mj", nil))

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.JSONEq(t, `{"errors":["User `+"`mj`"+` not found"]}`, w.Body.String())
	assert.NotEmpty(t, w.Header().Get(HeaderRequestID))
	assert.NotEmpty(t, w.Header().Get(HeaderCorrelationID))

	w = httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/panic", nil))

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Empty(t, w.Body.String())
}
