package handlers_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"rinseo/config"
	"rinseo/handlers"
	"rinseo/middleware"
	"rinseo/routes"
	"rinseo/services/catalog"
	"rinseo/store"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
)

func newTestRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	config.AppConfig = config.Config{
		Env:                   "test",
		JWTSecret:             "test-secret",
		MaxRequestsPerMin:     1000,
		DeliveryFee:           50,
		FreeDeliveryThreshold: 500,
		PendingItemTTLMin:     30,
	}

	router := gin.New()
	router.Use(middleware.ClientScope(store.NewMemoryStore()))

	// The missing path makes the catalog serve its inline fallback.
	storefront := handlers.NewStorefront(catalog.Load("missing/products.json"))
	routes.RegisterRoutes(router, handlers.NewBundle(storefront))
	return router
}

type apiRequest struct {
	method   string
	path     string
	body     string
	clientID string
	token    string
}

func do(t *testing.T, router *gin.Engine, req apiRequest) (*httptest.ResponseRecorder, map[string]interface{}) {
	t.Helper()

	var body *strings.Reader
	if req.body != "" {
		body = strings.NewReader(req.body)
	} else {
		body = strings.NewReader("")
	}
	httpReq := httptest.NewRequest(req.method, req.path, body)
	httpReq.Header.Set("Content-Type", "application/json")
	if req.clientID != "" {
		httpReq.Header.Set(middleware.ClientIDHeader, req.clientID)
	}
	if req.token != "" {
		httpReq.Header.Set("Authorization", "Bearer "+req.token)
	}

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httpReq)

	parsed := map[string]interface{}{}
	if w.Body.Len() > 0 {
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &parsed))
	}
	return w, parsed
}

func TestHealthRoute(t *testing.T) {
	router := newTestRouter(t)
	w, body := do(t, router, apiRequest{method: http.MethodGet, path: "/health"})
	require.Equal(t, http.StatusOK, w.Code)
	require.Equal(t, "ok", body["status"])
}

func TestProductCatalogEndpoints(t *testing.T) {
	router := newTestRouter(t)

	w, body := do(t, router, apiRequest{method: http.MethodGet, path: "/api/products"})
	require.Equal(t, http.StatusOK, w.Code)
	require.Len(t, body["products"], 6)

	w, body = do(t, router, apiRequest{method: http.MethodGet, path: "/api/products/formal-blazer"})
	require.Equal(t, http.StatusOK, w.Code)
	product := body["product"].(map[string]interface{})
	require.Equal(t, "Formal Blazer", product["name"])

	w, _ = do(t, router, apiRequest{method: http.MethodGet, path: "/api/products/ghost"})
	require.Equal(t, http.StatusNotFound, w.Code)

	w, body = do(t, router, apiRequest{method: http.MethodGet, path: "/api/service-plans"})
	require.Equal(t, http.StatusOK, w.Code)
	require.Len(t, body["servicePlans"], 2)
}

func TestRegisterValidation(t *testing.T) {
	router := newTestRouter(t)

	w, _ := do(t, router, apiRequest{
		method: http.MethodPost, path: "/api/auth/register",
		body: `{"name":"Ann","email":"ann@x.com","password":"abcde"}`,
	})
	require.Equal(t, http.StatusBadRequest, w.Code)

	w, body := do(t, router, apiRequest{
		method: http.MethodPost, path: "/api/auth/register",
		body: `{"name":"Ann","email":"ann@x.com","password":"abcdef"}`,
	})
	require.Equal(t, http.StatusCreated, w.Code)
	require.NotEmpty(t, body["token"])
	user := body["user"].(map[string]interface{})
	require.Equal(t, "Ann", user["name"])
}

func TestAddItemRequiresSizeForSizedProducts(t *testing.T) {
	router := newTestRouter(t)

	w, _ := do(t, router, apiRequest{
		method: http.MethodPost, path: "/api/cart/items",
		body: `{"productId":"classic-white-shirt","type":"buy"}`,
	})
	require.Equal(t, http.StatusBadRequest, w.Code)
}

func TestAddItemRejectsUnknownKind(t *testing.T) {
	router := newTestRouter(t)

	w, _ := do(t, router, apiRequest{
		method: http.MethodPost, path: "/api/cart/items",
		body: `{"productId":"classic-white-shirt","type":"lease","selectedSize":"M"}`,
	})
	require.Equal(t, http.StatusBadRequest, w.Code)
}

// TestDeferredAddToCartFlow walks the full storefront journey: an
// anonymous add is deferred, login replays it exactly once, and the
// cart then behaves as if the item had been added after login.
func TestDeferredAddToCartFlow(t *testing.T) {
	router := newTestRouter(t)

	// 1. Anonymous add: deferred, not in any cart.
	w, body := do(t, router, apiRequest{
		method: http.MethodPost, path: "/api/cart/items",
		body: `{"productId":"classic-white-shirt","type":"buy","selectedSize":"M"}`,
	})
	require.Equal(t, http.StatusUnauthorized, w.Code)
	require.Equal(t, true, body["pending"])
	clientID := w.Header().Get(middleware.ClientIDHeader)
	require.NotEmpty(t, clientID)

	// 2. Login from the same client: the intent replays once.
	w, body = do(t, router, apiRequest{
		method: http.MethodPost, path: "/api/auth/login",
		body:     `{"email":"ann@x.com","password":"abcdef"}`,
		clientID: clientID,
	})
	require.Equal(t, http.StatusOK, w.Code)
	token := body["token"].(string)
	require.NotEmpty(t, token)
	replayed := body["replayedItem"].(map[string]interface{})
	require.Equal(t, "classic-white-shirt", replayed["productId"])

	// 3. The cart holds one line at the catalog price.
	w, body = do(t, router, apiRequest{method: http.MethodGet, path: "/api/cart", token: token})
	require.Equal(t, http.StatusOK, w.Code)
	require.Len(t, body["items"], 1)
	require.EqualValues(t, 1499, body["subtotal"])
	require.EqualValues(t, 0, body["deliveryFee"])

	// A second login must not replay again.
	w, body = do(t, router, apiRequest{
		method: http.MethodPost, path: "/api/auth/login",
		body:  `{"email":"ann@x.com","password":"abcdef"}`,
		token: token,
	})
	require.Equal(t, http.StatusOK, w.Code)
	require.Nil(t, body["replayedItem"])

	w, body = do(t, router, apiRequest{method: http.MethodGet, path: "/api/cart", token: token})
	require.EqualValues(t, 1, body["itemCount"])

	// 4. Quantity update reprices the cart.
	w, body = do(t, router, apiRequest{
		method: http.MethodPut, path: "/api/cart/items",
		body:  `{"productId":"classic-white-shirt","type":"buy","selectedSize":"M","quantity":2}`,
		token: token,
	})
	require.Equal(t, http.StatusOK, w.Code)
	require.EqualValues(t, 2998, body["subtotal"])

	// 5. Checkout settles and empties the cart.
	w, body = do(t, router, apiRequest{method: http.MethodPost, path: "/api/cart/checkout", token: token})
	require.Equal(t, http.StatusOK, w.Code)
	order := body["order"].(map[string]interface{})
	require.EqualValues(t, 2998, order["total"])

	w, body = do(t, router, apiRequest{method: http.MethodGet, path: "/api/cart", token: token})
	require.EqualValues(t, 0, body["itemCount"])

	// 6. Logout sends the client home and closes protected routes.
	w, body = do(t, router, apiRequest{method: http.MethodPost, path: "/api/auth/logout", token: token})
	require.Equal(t, http.StatusOK, w.Code)
	require.Equal(t, "/", body["redirect"])

	w, _ = do(t, router, apiRequest{method: http.MethodGet, path: "/api/cart", token: token})
	require.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestBookingFlow(t *testing.T) {
	router := newTestRouter(t)

	// Authenticate first so the converted booking can land in a cart.
	w, body := do(t, router, apiRequest{
		method: http.MethodPost, path: "/api/auth/login",
		body: `{"email":"ann@x.com","password":"abcdef"}`,
	})
	require.Equal(t, http.StatusOK, w.Code)
	token := body["token"].(string)

	// An incomplete draft fails with the first violated rule.
	w, body = do(t, router, apiRequest{
		method: http.MethodPost, path: "/api/bookings",
		body:  `{"serviceType":"","pickupDate":"","pickupTime":"","pickupAddress":"","phoneNumber":""}`,
		token: token,
	})
	require.Equal(t, http.StatusBadRequest, w.Code)
	require.Equal(t, "Please select a service type", body["message"])

	w, body = do(t, router, apiRequest{
		method: http.MethodPost, path: "/api/bookings",
		body: `{"serviceType":"wash-iron","pickupDate":"2030-01-15","pickupTime":"10:00",` +
			`"pickupAddress":"12 Green Park Road, Delhi","phoneNumber":"9876543210"}`,
		token: token,
	})
	require.Equal(t, http.StatusCreated, w.Code)
	booked := body["booking"].(map[string]interface{})
	bookingID := booked["id"].(string)
	require.NotEmpty(t, bookingID)

	// Convert the booking into a service cart line.
	w, body = do(t, router, apiRequest{
		method: http.MethodPost, path: "/api/bookings/" + bookingID + "/add-to-cart",
		token: token,
	})
	require.Equal(t, http.StatusOK, w.Code)
	items := body["items"].([]interface{})
	require.Len(t, items, 1)
	line := items[0].(map[string]interface{})
	require.Equal(t, "service", line["type"])
	require.EqualValues(t, 250, line["price"])
	require.Equal(t, "Laundry Service - Wash + Iron", line["name"])
}

func TestDailyPromoMarker(t *testing.T) {
	router := newTestRouter(t)

	w, body := do(t, router, apiRequest{method: http.MethodGet, path: "/api/promo/daily"})
	require.Equal(t, http.StatusOK, w.Code)
	require.Equal(t, true, body["show"])
	clientID := w.Header().Get(middleware.ClientIDHeader)

	w, _ = do(t, router, apiRequest{method: http.MethodPost, path: "/api/promo/daily/seen", clientID: clientID})
	require.Equal(t, http.StatusNoContent, w.Code)

	w, body = do(t, router, apiRequest{method: http.MethodGet, path: "/api/promo/daily", clientID: clientID})
	require.Equal(t, false, body["show"])
}
