package utils

import (
	"errors"
	"mommycare-service/internal/pkg/constvars"
	"mommycare-service/internal/pkg/exceptions"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

func TestBuildPaginationResponse(t *testing.T) {
	t.Run("Middle Page", func(t *testing.T) {
		pagination := BuildPaginationResponse(30, 2, 12, "/api/products", constvars.AppProductPaginationUrlFormat)

		assert.Equal(t, 3, pagination.TotalPages)
		assert.True(t, pagination.HasNext)
		assert.True(t, pagination.HasPrev)
		assert.Equal(t, "/api/products?page=3&limit=12", pagination.NextURL)
		assert.Equal(t, "/api/products?page=1&limit=12", pagination.PrevURL)
	})

	t.Run("Exact Last Page Has No Next", func(t *testing.T) {
		pagination := BuildPaginationResponse(24, 2, 12, "/api/products", constvars.AppProductPaginationUrlFormat)

		assert.Equal(t, 2, pagination.TotalPages)
		assert.False(t, pagination.HasNext)
		assert.Empty(t, pagination.NextURL)
	})

	t.Run("Empty Result", func(t *testing.T) {
		pagination := BuildPaginationResponse(0, 1, 12, "/api/products", constvars.AppProductPaginationUrlFormat)

		assert.Equal(t, 0, pagination.TotalPages)
		assert.False(t, pagination.HasNext)
		assert.False(t, pagination.HasPrev)
	})
}

func TestBuildErrorResponse(t *testing.T) {
	log := zap.NewNop()

	t.Run("Custom Error Status And Message", func(t *testing.T) {
		rr := httptest.NewRecorder()

		BuildErrorResponse(log, rr, exceptions.ErrVaccinationsAlreadyInitialized(nil))

		var body map[string]interface{}
		assert.NoError(t, json.Unmarshal(rr.Body.Bytes(), &body))
		assert.Equal(t, http.StatusConflict, rr.Code)
		assert.Equal(t, false, body["success"])
		assert.Equal(t, constvars.ErrClientVaccinationsAlreadyInitialized, body["message"])
	})

	t.Run("Database Unavailable Maps To 503", func(t *testing.T) {
		rr := httptest.NewRecorder()

		BuildErrorResponse(log, rr, exceptions.ErrMongoDBFindDocument(mongo.ErrClientDisconnected))

		assert.Equal(t, http.StatusServiceUnavailable, rr.Code)
	})

	t.Run("Plain Error Is 500", func(t *testing.T) {
		rr := httptest.NewRecorder()

		BuildErrorResponse(log, rr, errors.New("boom"))

		var body map[string]interface{}
		assert.NoError(t, json.Unmarshal(rr.Body.Bytes(), &body))
		assert.Equal(t, http.StatusInternalServerError, rr.Code)
		assert.Equal(t, constvars.ErrClientSomethingWrongWithApplication, body["message"])
	})
}
