// internal/interfaces/http/handlers/errors_test.go
package handlers

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/your-org/storefront-gateway/internal/domain/order"
	"github.com/your-org/storefront-gateway/internal/pkg/validate"
	"github.com/your-org/storefront-gateway/internal/shopapi"
)

func respond(t *testing.T, err error) *httptest.ResponseRecorder {
	t.Helper()

	gin.SetMode(gin.TestMode)
	recorder := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(recorder)

	respondShopError(c, err)
	return recorder
}

func TestRespondShopError(t *testing.T) {
	t.Run("shape mismatch is a bad gateway", func(t *testing.T) {
		rec := respond(t, &validate.Error{Schema: "CatalogResponse", Issues: []string{"Items[0].ID: failed \"required\""}})

		assert.Equal(t, http.StatusBadGateway, rec.Code)
		assert.Contains(t, rec.Body.String(), "CatalogResponse")
	})

	t.Run("missing catalog reference is a not found", func(t *testing.T) {
		rec := respond(t, &order.NotFoundError{ItemID: "vanished"})

		assert.Equal(t, http.StatusNotFound, rec.Code)
		assert.Contains(t, rec.Body.String(), "vanished")
	})

	t.Run("availability conflict is recoverable", func(t *testing.T) {
		rec := respond(t, &shopapi.StatusError{Endpoint: "POST /cart/checkout", StatusCode: http.StatusConflict})

		assert.Equal(t, http.StatusConflict, rec.Code)
		assert.Contains(t, rec.Body.String(), "corrective")
	})

	t.Run("other upstream failures are a bad gateway", func(t *testing.T) {
		rec := respond(t, &shopapi.StatusError{Endpoint: "GET /catalog", StatusCode: http.StatusServiceUnavailable})

		assert.Equal(t, http.StatusBadGateway, rec.Code)
	})

	t.Run("unknown errors are internal", func(t *testing.T) {
		rec := respond(t, errors.New("boom"))

		assert.Equal(t, http.StatusInternalServerError, rec.Code)
	})

	t.Run("wrapped errors still map", func(t *testing.T) {
		wrapped := errors.Join(errors.New("context"), &order.NotFoundError{ItemID: "x"})
		rec := respond(t, wrapped)

		assert.Equal(t, http.StatusNotFound, rec.Code)
	})
}
