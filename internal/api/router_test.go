package api

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/megdcosta/frijio/internal/config"
	"github.com/megdcosta/frijio/internal/service"
	"github.com/megdcosta/frijio/internal/store/memory"
	"github.com/megdcosta/frijio/internal/websocket"
)

type fakeExtractor struct{ text string }

func (f fakeExtractor) ExtractText(ctx context.Context, imageURL string) (string, error) {
	return f.text, nil
}

type fakeClassifier struct{ food map[string]bool }

func (f fakeClassifier) IsFoodItem(ctx context.Context, line string) (bool, error) {
	return f.food[line], nil
}

type fakeGenerator struct{ raw string }

func (f fakeGenerator) GenerateRecipes(ctx context.Context, ingredients []string) (string, error) {
	return f.raw, nil
}

func newTestRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	st := memory.New()

	hub := websocket.NewHub()
	go hub.Run()

	return SetupRouter(Deps{
		Config: &config.Config{
			Environment:    "test",
			RequestTimeout: 5 * time.Second,
			JWT:            config.JWTConfig{Secret: "test-secret", ExpiresIn: "1h"},
			CORS:           config.CORSConfig{AllowedOrigins: []string{"http://localhost:3000"}},
		},
		Store:    st,
		Fridges:  service.NewFridgeService(st.Users, st.Fridges, logger),
		Items:    service.NewItemService(st.Fridges, st.Items, st.Grocery, logger),
		Expenses: service.NewExpenseService(st.Expenses, logger),
		AI: service.NewAIService(
			fakeExtractor{text: "Milk 2%\nSubtotal\nBananas"},
			fakeClassifier{food: map[string]bool{"Milk 2%": true, "Bananas": true}},
			fakeGenerator{raw: `{"recommendations":[{"recipe":"Fried rice","ingredients":["rice","egg"],"instructions":["cook"],"time":"15 min"}]}`},
			logger,
		),
		Hub: hub,
	})
}

func doRequest(t *testing.T, router *gin.Engine, method, path, token string, body any) (*httptest.ResponseRecorder, map[string]any) {
	t.Helper()

	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(data)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	var decoded map[string]any
	if rec.Body.Len() > 0 {
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &decoded))
	}
	return rec, decoded
}

func registerAccount(t *testing.T, router *gin.Engine, username string) (token, accountID string) {
	t.Helper()

	rec, body := doRequest(t, router, http.MethodPost, "/api/auth/register", "", gin.H{
		"username": username,
		"email":    username + "@example.com",
		"password": "hunter22",
	})
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	account := body["account"].(map[string]any)
	return body["token"].(string), account["id"].(string)
}

func TestRegisterAndLogin(t *testing.T) {
	router := newTestRouter(t)

	token, _ := registerAccount(t, router, "alice")
	require.NotEmpty(t, token)

	// Duplicate registration conflicts.
	rec, _ := doRequest(t, router, http.MethodPost, "/api/auth/register", "", gin.H{
		"username": "alice", "email": "alice@example.com", "password": "hunter22",
	})
	assert.Equal(t, http.StatusConflict, rec.Code)

	// Login by username, then by email.
	rec, body := doRequest(t, router, http.MethodPost, "/api/auth/login", "", gin.H{
		"email_or_username": "alice", "password": "hunter22",
	})
	require.Equal(t, http.StatusOK, rec.Code)
	assert.NotEmpty(t, body["token"])

	rec, _ = doRequest(t, router, http.MethodPost, "/api/auth/login", "", gin.H{
		"email_or_username": "alice@example.com", "password": "hunter22",
	})
	assert.Equal(t, http.StatusOK, rec.Code)

	rec, _ = doRequest(t, router, http.MethodPost, "/api/auth/login", "", gin.H{
		"email_or_username": "alice", "password": "wrong",
	})
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestProtectedRoutesRequireToken(t *testing.T) {
	router := newTestRouter(t)

	rec, _ := doRequest(t, router, http.MethodGet, "/api/fridges", "", nil)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	rec, _ = doRequest(t, router, http.MethodGet, "/api/fridges", "not-a-token", nil)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestFridgeLifecycle(t *testing.T) {
	router := newTestRouter(t)
	alice, aliceID := registerAccount(t, router, "alice")
	bob, bobID := registerAccount(t, router, "bob")

	rec, body := doRequest(t, router, http.MethodPost, "/api/fridges", alice, gin.H{"name": "Apt 4B"})
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	fridgeID := body["id"].(string)
	assert.Equal(t, aliceID, body["owner_id"])

	// Bob joins by ID.
	rec, _ = doRequest(t, router, http.MethodPost, "/api/fridges/join", bob, gin.H{"fridge_id": fridgeID})
	require.Equal(t, http.StatusOK, rec.Code)

	// Joining again conflicts.
	rec, body = doRequest(t, router, http.MethodPost, "/api/fridges/join", bob, gin.H{"fridge_id": fridgeID})
	assert.Equal(t, http.StatusConflict, rec.Code)
	assert.Equal(t, "You are already a member of this fridge.", body["error"])

	// Joining an unknown fridge is a 404 with the canonical message.
	rec, body = doRequest(t, router, http.MethodPost, "/api/fridges/join", bob, gin.H{"fridge_id": "no-such-fridge"})
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "Invalid Fridge ID. Please check again.", body["error"])

	// Both members see the fridge with both IDs.
	rec, body = doRequest(t, router, http.MethodGet, "/api/fridges/"+fridgeID, bob, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.ElementsMatch(t, []any{aliceID, bobID}, body["members"])

	// A non-member gets a 403.
	carol, _ := registerAccount(t, router, "carol")
	rec, _ = doRequest(t, router, http.MethodGet, "/api/fridges/"+fridgeID, carol, nil)
	assert.Equal(t, http.StatusForbidden, rec.Code)

	// The membership list shows up on the profile.
	rec, body = doRequest(t, router, http.MethodGet, "/api/users/me", bob, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, []any{fridgeID}, body["fridge_ids"])
}

func TestItemRoutes(t *testing.T) {
	router := newTestRouter(t)
	alice, _ := registerAccount(t, router, "alice")

	rec, body := doRequest(t, router, http.MethodPost, "/api/fridges", alice, gin.H{"name": "Apt 4B"})
	require.Equal(t, http.StatusCreated, rec.Code)
	fridgeID := body["id"].(string)
	base := "/api/fridges/" + fridgeID + "/items"

	rec, body = doRequest(t, router, http.MethodPost, base, alice, gin.H{
		"name": "Milk", "type": "Eggs/Dairy", "quantity": "2", "expiration_date": "2026-09-10",
	})
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	milkID := body["id"].(string)

	rec, _ = doRequest(t, router, http.MethodPost, base, alice, gin.H{
		"name": "Yogurt", "type": "Eggs/Dairy", "expiration_date": "2026-09-01",
	})
	require.Equal(t, http.StatusCreated, rec.Code)

	// A malformed expiration date is rejected before the service runs.
	rec, _ = doRequest(t, router, http.MethodPost, base, alice, gin.H{
		"name": "Cheese", "expiration_date": "next week",
	})
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec, body = doRequest(t, router, http.MethodGet, base, alice, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Len(t, body["items"], 2)

	rec, body = doRequest(t, router, http.MethodGet, base+"?search=milk", alice, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	require.Len(t, body["items"], 1)

	rec, body = doRequest(t, router, http.MethodGet, base+"?sort=expiration", alice, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	items := body["items"].([]any)
	require.Len(t, items, 2)
	assert.Equal(t, "Yogurt", items[0].(map[string]any)["name"])

	rec, body = doRequest(t, router, http.MethodPut, base+"/"+milkID, alice, gin.H{"name": "Oat milk"})
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Oat milk", body["name"])

	rec, _ = doRequest(t, router, http.MethodPut, base+"/no-such-item", alice, gin.H{"name": "Ghost"})
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec, _ = doRequest(t, router, http.MethodDelete, base+"/"+milkID, alice, nil)
	assert.Equal(t, http.StatusOK, rec.Code)
	// Idempotent delete.
	rec, _ = doRequest(t, router, http.MethodDelete, base+"/"+milkID, alice, nil)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestGroceryRoutes(t *testing.T) {
	router := newTestRouter(t)
	alice, _ := registerAccount(t, router, "alice")

	rec, body := doRequest(t, router, http.MethodPost, "/api/fridges", alice, gin.H{"name": "Apt 4B"})
	require.Equal(t, http.StatusCreated, rec.Code)
	base := "/api/fridges/" + body["id"].(string) + "/grocery-items"

	rec, body = doRequest(t, router, http.MethodPost, base, alice, gin.H{"name": "Bread", "quantity": "1 loaf"})
	require.Equal(t, http.StatusCreated, rec.Code)
	itemID := body["id"].(string)
	assert.Equal(t, false, body["is_checked"])

	rec, _ = doRequest(t, router, http.MethodPost, base+"/"+itemID+"/toggle", alice, nil)
	require.Equal(t, http.StatusOK, rec.Code)

	rec, body = doRequest(t, router, http.MethodGet, base, alice, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	list := body["items"].([]any)
	require.Len(t, list, 1)
	assert.Equal(t, true, list[0].(map[string]any)["is_checked"])

	rec, _ = doRequest(t, router, http.MethodPost, base+"/no-such-item/toggle", alice, nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec, _ = doRequest(t, router, http.MethodDelete, base+"/"+itemID, alice, nil)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestExpenseRoutes(t *testing.T) {
	router := newTestRouter(t)
	alice, aliceID := registerAccount(t, router, "alice")

	rec, body := doRequest(t, router, http.MethodPost, "/api/fridges", alice, gin.H{"name": "Apt 4B"})
	require.Equal(t, http.StatusCreated, rec.Code)
	base := "/api/fridges/" + body["id"].(string) + "/expenses"

	rec, body = doRequest(t, router, http.MethodGet, base, alice, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Empty(t, body["expenses"])

	rec, body = doRequest(t, router, http.MethodPost, base, alice, gin.H{
		"item_name": "Pizza", "cost": 20, "payer_id": aliceID, "user_ids": aliceID + ",u2",
	})
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	assert.Equal(t, 20.0, body["cost"])
	assert.Equal(t, []any{aliceID, "u2"}, body["user_ids"])

	// Every missing field gets its own message.
	rec, body = doRequest(t, router, http.MethodPost, base, alice, gin.H{})
	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Len(t, body["messages"], 4)

	rec, body = doRequest(t, router, http.MethodGet, base, alice, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Len(t, body["expenses"], 1)
}

func TestAIRoutes(t *testing.T) {
	router := newTestRouter(t)
	alice, _ := registerAccount(t, router, "alice")

	rec, body := doRequest(t, router, http.MethodPost, "/api/ai/scan-receipt", alice, gin.H{
		"imageUrl": "https://example.com/receipt.jpg",
	})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	assert.Equal(t, "Milk 2%\nSubtotal\nBananas", body["text"])
	assert.Equal(t, []any{"Milk 2%", "Bananas"}, body["items"])

	rec, _ = doRequest(t, router, http.MethodPost, "/api/ai/scan-receipt", alice, gin.H{"imageUrl": "not a url"})
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec, body = doRequest(t, router, http.MethodPost, "/api/ai/recommend-recipes", alice, gin.H{
		"ingredients": []string{"rice", "egg"},
	})
	require.Equal(t, http.StatusOK, rec.Code)
	recs := body["recommendations"].([]any)
	require.Len(t, recs, 1)
	assert.Equal(t, "Fried rice", recs[0].(map[string]any)["recipe"])

	rec, _ = doRequest(t, router, http.MethodPost, "/api/ai/recommend-recipes", alice, gin.H{"ingredients": []string{}})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHealthz(t *testing.T) {
	router := newTestRouter(t)

	rec, body := doRequest(t, router, http.MethodGet, "/healthz", "", nil)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "ok", body["status"])
}

func TestCORSPreflight(t *testing.T) {
	router := newTestRouter(t)

	req := httptest.NewRequest(http.MethodOptions, "/api/fridges", nil)
	req.Header.Set("Origin", "http://localhost:3000")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Equal(t, "http://localhost:3000", rec.Header().Get("Access-Control-Allow-Origin"))

	// Unknown origins are not echoed back.
	req = httptest.NewRequest(http.MethodOptions, "/api/fridges", nil)
	req.Header.Set("Origin", "https://evil.example.com")
	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	assert.Empty(t, rec.Header().Get("Access-Control-Allow-Origin"))
}
