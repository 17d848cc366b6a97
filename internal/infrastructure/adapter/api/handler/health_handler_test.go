package handler

import (
	"net/http"
	"testing"
	"time"

	coremocks "github.com/amirhossein-jamali/ledger/mocks/port/core"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func TestHealthHandler(t *testing.T) {
	startedAt := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

	mockTime := coremocks.NewMockTimeProvider(t)
	mockTime.EXPECT().Now().Return(startedAt).Once()
	mockTime.EXPECT().Since(startedAt).Return(90 * time.Second).Once()

	h := NewHealthHandler(mockTime)
	router := gin.New()
	router.GET("/health", h.Health)

	w := performRequest(router, http.MethodGet, "/health", "")

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"status":"ok","uptime_seconds":90}`, w.Body.String())
}
