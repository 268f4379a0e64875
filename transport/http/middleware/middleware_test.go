package middleware_test

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"hotel/config"
	"hotel/infras/otel/mocks"
	"hotel/shared/cache"
	cacheMocks "hotel/shared/cache/mocks"
	"hotel/shared/constant"
	"hotel/transport/http/middleware"
)

func newMiddleware(t *testing.T, enableLimiter bool, maxRequests int) (middleware.AppMiddleware, *cacheMocks.MockRedisCache) {
	ctrl := gomock.NewController(t)

	cfg := &config.Config{}
	cfg.App.Name = "hotel-api"
	cfg.App.RateLimiter.Enable = enableLimiter
	cfg.App.RateLimiter.MaxRequests = maxRequests
	cfg.App.RateLimiter.WindowSeconds = 60

	mockCache := cacheMocks.NewMockRedisCache(ctrl)

	return middleware.NewAppMiddleware(mocks.NewOtel(), cfg, mockCache), mockCache
}

func okHandler() http.Handler {
	return http.HandlerFunc(func(writer http.ResponseWriter, _ *http.Request) {
		writer.WriteHeader(http.StatusOK)
		_, _ = writer.Write([]byte(`{}`))
	})
}

func TestRecovererFlattensPanicsToInternalError(t *testing.T) {
	appMiddleware, _ := newMiddleware(t, false, 0)

	next := http.HandlerFunc(func(http.ResponseWriter, *http.Request) {
		panic(errors.New("repository exploded"))
	})

	recorder := httptest.NewRecorder()
	appMiddleware.Recoverer(next).ServeHTTP(recorder, httptest.NewRequest(http.MethodGet, "/api/rooms", nil))

	assert.Equal(t, http.StatusInternalServerError, recorder.Code)
	assert.JSONEq(t, `{"error":"Internal server error"}`, recorder.Body.String())
	assert.NotContains(t, recorder.Body.String(), "exploded")
}

func TestRequestIDGeneratedWhenMissing(t *testing.T) {
	appMiddleware, _ := newMiddleware(t, false, 0)

	var seenID string
	next := http.HandlerFunc(func(_ http.ResponseWriter, request *http.Request) {
		seenID, _ = request.Context().Value(constant.ContextKeyRequestID).(string)
	})

	recorder := httptest.NewRecorder()
	appMiddleware.RequestID(next).ServeHTTP(recorder, httptest.NewRequest(http.MethodGet, "/health", nil))

	require.NotEmpty(t, seenID)
	assert.Equal(t, seenID, recorder.Header().Get(constant.RequestHeaderRequestID))
}

func TestRequestIDEchoesInboundHeader(t *testing.T) {
	appMiddleware, _ := newMiddleware(t, false, 0)

	request := httptest.NewRequest(http.MethodGet, "/health", nil)
	request.Header.Set(constant.RequestHeaderRequestID, "req-42")

	recorder := httptest.NewRecorder()
	appMiddleware.RequestID(okHandler()).ServeHTTP(recorder, request)

	assert.Equal(t, "req-42", recorder.Header().Get(constant.RequestHeaderRequestID))
}

func TestRateLimitDisabledSkipsCache(t *testing.T) {
	appMiddleware, mockCache := newMiddleware(t, false, 1)

	// No expectations on the mock: the disabled limiter must never touch it.
	_ = mockCache

	recorder := httptest.NewRecorder()
	appMiddleware.RateLimit()(okHandler()).ServeHTTP(recorder, httptest.NewRequest(http.MethodGet, "/api/rooms", nil))

	assert.Equal(t, http.StatusOK, recorder.Code)
	assert.Empty(t, recorder.Header().Get(constant.RequestHeaderRateLimit))
}

func TestRateLimitFirstRequestStartsWindow(t *testing.T) {
	appMiddleware, mockCache := newMiddleware(t, true, 2)

	mockCache.EXPECT().
		Get(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(cache.Nil)
	mockCache.EXPECT().
		Save(gomock.Any(), gomock.Any(), 1, 60).
		Return(nil)

	recorder := httptest.NewRecorder()
	appMiddleware.RateLimit()(okHandler()).ServeHTTP(recorder, httptest.NewRequest(http.MethodGet, "/api/rooms", nil))

	assert.Equal(t, http.StatusOK, recorder.Code)
	assert.Equal(t, "2", recorder.Header().Get(constant.RequestHeaderRateLimit))
	assert.Equal(t, "1", recorder.Header().Get(constant.RequestHeaderRateLimitRemaining))
	assert.Equal(t, "60", recorder.Header().Get(constant.RequestHeaderRateLimitWindow))
}

func TestRateLimitRejectsOverLimit(t *testing.T) {
	appMiddleware, mockCache := newMiddleware(t, true, 2)

	mockCache.EXPECT().
		Get(gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ any, _ string, value any) error {
			*(value.(*int)) = 2

			return nil
		})

	recorder := httptest.NewRecorder()
	appMiddleware.RateLimit()(okHandler()).ServeHTTP(recorder, httptest.NewRequest(http.MethodGet, "/api/rooms", nil))

	assert.Equal(t, http.StatusTooManyRequests, recorder.Code)
	assert.JSONEq(t, `{"error":"REQUEST LIMIT EXCEEDED"}`, recorder.Body.String())
}

func TestRateLimitFailsOpenOnCacheErrors(t *testing.T) {
	appMiddleware, mockCache := newMiddleware(t, true, 1)

	mockCache.EXPECT().
		Get(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(errors.New("redis down"))

	recorder := httptest.NewRecorder()
	appMiddleware.RateLimit()(okHandler()).ServeHTTP(recorder, httptest.NewRequest(http.MethodGet, "/api/rooms", nil))

	assert.Equal(t, http.StatusOK, recorder.Code)
	assert.Empty(t, recorder.Header().Get(constant.RequestHeaderRateLimit))
}
