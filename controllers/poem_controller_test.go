package controllers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rozanashayari/daily-poetry-backend/config"
	"github.com/rozanashayari/daily-poetry-backend/store"
)

func testRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	config.Store = store.NewMemoryStore()

	r := gin.New()
	r.POST("/api/init", InitData)
	r.GET("/api/poem/today", GetTodaysPoem)
	r.GET("/api/poems", ListPoems)
	r.GET("/api/search", SearchPoems)
	r.POST("/api/poems", CreatePoem)
	r.POST("/api/poems/:id/share", SharePoem)
	r.POST("/api/email/subscribe", Subscribe)
	return r
}

func doJSON(t *testing.T, r *gin.Engine, method, path, body string) (*httptest.ResponseRecorder, map[string]any) {
	t.Helper()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	var parsed map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &parsed))
	return w, parsed
}

func TestInitAndTodayFlow(t *testing.T) {
	r := testRouter()

	w, body := doJSON(t, r, http.MethodPost, "/api/init", "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, true, body["initialized"])

	w, body = doJSON(t, r, http.MethodPost, "/api/init", "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, false, body["initialized"])

	w, body = doJSON(t, r, http.MethodGet, "/api/poem/today", "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, true, body["success"])
	assert.NotEmpty(t, body["date"])
	require.NotNil(t, body["poem"])
}

func TestTodayWithoutPoems(t *testing.T) {
	r := testRouter()

	w, body := doJSON(t, r, http.MethodGet, "/api/poem/today", "")
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, false, body["success"])
	assert.Equal(t, "no poems available", body["error"])
}

func TestCreateListAndShare(t *testing.T) {
	r := testRouter()

	poemJSON := `{
		"urdu": "دل کی بات",
		"hindi": "दिल की बात",
		"english": "matters of the heart",
		"author": {"urdu": "غالب", "hindi": "ग़ालिब", "english": "Ghalib"},
		"category": "romance"
	}`
	w, body := doJSON(t, r, http.MethodPost, "/api/poems", poemJSON)
	require.Equal(t, http.StatusOK, w.Code)
	poem := body["poem"].(map[string]any)
	id := poem["id"].(string)
	assert.True(t, strings.HasPrefix(id, "poem_"))

	w, body = doJSON(t, r, http.MethodGet, "/api/poems?limit=10", "")
	assert.Equal(t, http.StatusOK, w.Code)
	pagination := body["pagination"].(map[string]any)
	assert.Equal(t, float64(1), pagination["total"])
	assert.Equal(t, float64(10), pagination["limit"])

	w, body = doJSON(t, r, http.MethodPost, "/api/poems/"+id+"/share", `{"platform":"twitter"}`)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, float64(1), body["shares"])

	w, body = doJSON(t, r, http.MethodPost, "/api/poems/poem_missing/share", "")
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, false, body["success"])
}

func TestCreateValidationErrors(t *testing.T) {
	r := testRouter()

	w, body := doJSON(t, r, http.MethodPost, "/api/poems", `{"english":"half a poem"}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "missing required fields: urdu, hindi, english, author", body["error"])
}

func TestSearchQueryTooShort(t *testing.T) {
	r := testRouter()

	w, body := doJSON(t, r, http.MethodGet, "/api/search?q=x", "")
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "search query must be at least 2 characters long", body["error"])
}

func TestSubscribeConflict(t *testing.T) {
	r := testRouter()

	w, _ := doJSON(t, r, http.MethodPost, "/api/email/subscribe", `{"email":"reader@example.com"}`)
	assert.Equal(t, http.StatusOK, w.Code)

	w, body := doJSON(t, r, http.MethodPost, "/api/email/subscribe", `{"email":"reader@example.com"}`)
	assert.Equal(t, http.StatusConflict, w.Code)
	assert.Equal(t, "email already subscribed", body["error"])
}
