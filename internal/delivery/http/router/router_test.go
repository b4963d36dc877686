package router

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	deliverycontext "cartbridge/internal/delivery/context"
	"cartbridge/internal/delivery/http/middleware"
	"cartbridge/internal/delivery/http/router/handler"
	"cartbridge/internal/delivery/http/validator"
	"cartbridge/internal/domain/entity"
	"cartbridge/internal/domain/repository"
	mockRepo "cartbridge/internal/mocks/repository"
	mockSvc "cartbridge/internal/mocks/service"
	"cartbridge/internal/usecase/impl"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func setupTestServer(t *testing.T) (*echo.Echo, *mockRepo.MockGuestCartRepository, *mockSvc.MockCartAPIClient) {
	t.Helper()

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	guestRepo := mockRepo.NewMockGuestCartRepository(t)
	api := mockSvc.NewMockCartAPIClient(t)
	sessions := impl.NewCartSessionService(guestRepo, api, logger)

	e := echo.New()
	e.HideBanner = true
	e.Validator = validator.New()
	e.HTTPErrorHandler = middleware.NewErrorMiddleware(logger).HandleHTTPError

	r := NewRouter(RouterParams{
		CartHandler:      handler.NewCartHandler(sessions, logger),
		ClientMiddleware: middleware.NewClientMiddleware(),
	})
	r.RegisterRoutes(e)

	return e, guestRepo, api
}

func doRequest(e *echo.Echo, method, target, body, clientID string) *httptest.ResponseRecorder {
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, reader)
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	if clientID != "" {
		req.Header.Set(deliverycontext.HeaderXClientID, clientID)
	}
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	return rec
}

func TestRouter_HealthCheck(t *testing.T) {
	e, _, _ := setupTestServer(t)

	rec := doRequest(e, http.MethodGet, "/health", "", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"status":"ok"`)
}

func TestRouter_CartRequiresClientID(t *testing.T) {
	e, _, _ := setupTestServer(t)

	rec := doRequest(e, http.MethodGet, "/api/v1/cart", "", "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "MISSING_CLIENT_ID")
}

func TestRouter_GuestAddAndGetFlow(t *testing.T) {
	e, guestRepo, _ := setupTestServer(t)

	guestRepo.EXPECT().
		LoadItems(mock.Anything, "client-1").
		Return(nil, repository.ErrGuestCartNotFound).
		Once()
	guestRepo.EXPECT().
		SaveItems(mock.Anything, "client-1", mock.Anything).
		Return(nil)

	body := `{
		"product": {"id": "prod-chair", "name": "Conference Chair", "price_cents": 24900},
		"quantity": 2,
		"customizations": {"finish_id": 7}
	}`
	rec := doRequest(e, http.MethodPost, "/api/v1/cart/items", body, "client-1")
	require.Equal(t, http.StatusCreated, rec.Code)

	rec = doRequest(e, http.MethodGet, "/api/v1/cart", "", "client-1")
	require.Equal(t, http.StatusOK, rec.Code)

	var envelope struct {
		Success bool `json:"success"`
		Data    struct {
			Items []struct {
				Product  entity.ProductRef `json:"product"`
				Quantity int               `json:"quantity"`
			} `json:"items"`
			ItemCount       int   `json:"item_count"`
			TotalPriceCents int64 `json:"total_price_cents"`
			Authenticated   bool  `json:"authenticated"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &envelope))
	assert.True(t, envelope.Success)
	require.Len(t, envelope.Data.Items, 1)
	assert.Equal(t, "prod-chair", envelope.Data.Items[0].Product.ID)
	assert.Equal(t, 2, envelope.Data.ItemCount)
	assert.Equal(t, int64(49800), envelope.Data.TotalPriceCents)
	assert.False(t, envelope.Data.Authenticated)
}

func TestRouter_AddItemRejectsZeroQuantity(t *testing.T) {
	e, _, _ := setupTestServer(t)

	body := `{"product": {"id": "prod-chair"}, "quantity": 0}`
	rec := doRequest(e, http.MethodPost, "/api/v1/cart/items", body, "client-1")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestRouter_UpdateItemRejectsNonNumericIndex(t *testing.T) {
	e, _, _ := setupTestServer(t)

	rec := doRequest(e, http.MethodPatch, "/api/v1/cart/items/abc", `{"quantity": 2}`, "client-1")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "VALIDATION_FAILED")
}

func TestRouter_UpdateItemRequiresOneField(t *testing.T) {
	e, guestRepo, _ := setupTestServer(t)

	guestRepo.EXPECT().
		LoadItems(mock.Anything, "client-1").
		Return(nil, repository.ErrGuestCartNotFound).
		Once()

	rec := doRequest(e, http.MethodPatch, "/api/v1/cart/items/0", `{}`, "client-1")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "INVALID_INPUT")
}

func TestRouter_LoginRequiresBearerToken(t *testing.T) {
	e, _, _ := setupTestServer(t)

	rec := doRequest(e, http.MethodPost, "/api/v1/session/login", "", "client-1")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Contains(t, rec.Body.String(), "MISSING_AUTH_TOKEN")
}

func TestRouter_LoginMergesGuestCart(t *testing.T) {
	e, guestRepo, api := setupTestServer(t)

	persisted := []entity.GuestCartItem{
		{
			Product:        entity.ProductRef{ID: "prod-chair", PriceCents: 24900},
			Quantity:       3,
			Customizations: entity.Customizations{FinishID: 7},
		},
	}
	guestRepo.EXPECT().
		LoadItems(mock.Anything, "client-1").
		Return(persisted, nil).
		Once()
	api.EXPECT().
		MergeItems(mock.Anything, mock.Anything).
		Return(nil).
		Once()
	api.EXPECT().
		FetchCart(mock.Anything).
		Return(&entity.BackendCart{
			ID: "cart-9",
			Items: []entity.BackendCartItem{
				{ID: "item-1", Product: entity.ProductRef{ID: "prod-chair"}, Quantity: 3, UnitPriceCents: 23900},
			},
		}, nil).
		Once()
	guestRepo.EXPECT().
		Clear(mock.Anything, "client-1").
		Return(nil).
		Once()

	req := httptest.NewRequest(http.MethodPost, "/api/v1/session/login", nil)
	req.Header.Set(deliverycontext.HeaderXClientID, "client-1")
	req.Header.Set("Authorization", "Bearer token-123")
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"authenticated":true`)
	assert.Contains(t, rec.Body.String(), `"item-1"`)
}

func TestRouter_LogoutRevertsToGuestMode(t *testing.T) {
	e, guestRepo, _ := setupTestServer(t)

	guestRepo.EXPECT().
		LoadItems(mock.Anything, "client-1").
		Return(nil, repository.ErrGuestCartNotFound).
		Once()

	rec := doRequest(e, http.MethodPost, "/api/v1/session/logout", "", "client-1")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"authenticated":false`)
}

func TestRouter_ResponseCarriesRequestID(t *testing.T) {
	e, guestRepo, _ := setupTestServer(t)

	guestRepo.EXPECT().
		LoadItems(mock.Anything, "client-1").
		Return(nil, repository.ErrGuestCartNotFound).
		Once()

	req := httptest.NewRequest(http.MethodGet, "/api/v1/cart", nil)
	req.Header.Set(deliverycontext.HeaderXClientID, "client-1")
	req.Header.Set(deliverycontext.HeaderXRequestID, "req-42")
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, "req-42", rec.Header().Get(deliverycontext.HeaderXRequestID))
}
