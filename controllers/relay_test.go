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
)

const testSecret = "8fc1b4fd80f5cb3c6e705a1428342c02"

func relayRouter(secret string) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	authorized := r.Group("/", APIKeyAuthMiddleware(secret))
	authorized.GET("", RelayRoot)
	authorized.POST("/save_annotation", RelaySaveAnnotation)
	return r
}

func TestRelayRootWithValidCredential(t *testing.T) {
	r := relayRouter(testSecret)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("api_key", testSecret)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "message")
}

func TestRelayRootRejectsBadCredential(t *testing.T) {
	r := relayRouter(testSecret)

	for _, key := range []string{"", "wrong-key"} {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		if key != "" {
			req.Header.Set("api_key", key)
		}
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusForbidden, w.Code)
		assert.JSONEq(t, `{"detail": "Invalid or missing API key"}`, w.Body.String())
	}
}

func TestRelaySaveAnnotationEchoesBody(t *testing.T) {
	r := relayRouter(testSecret)

	req := httptest.NewRequest(http.MethodPost, "/save_annotation", strings.NewReader(`{"id":1,"location":"Torcula"}`))
	req.Header.Set("api_key", testSecret)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var response struct {
		Status     string                 `json:"status"`
		Annotation map[string]interface{} `json:"annotation"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	assert.Equal(t, "saved", response.Status)
	assert.Equal(t, float64(1), response.Annotation["id"])
	assert.Equal(t, "Torcula", response.Annotation["location"])
}

func TestRelaySaveAnnotationWrongCredential(t *testing.T) {
	r := relayRouter(testSecret)

	req := httptest.NewRequest(http.MethodPost, "/save_annotation", strings.NewReader(`{"id":1,"location":"Torcula"}`))
	req.Header.Set("api_key", "wrong-key")
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestRelaySaveAnnotationRejectsBadJSON(t *testing.T) {
	r := relayRouter(testSecret)

	req := httptest.NewRequest(http.MethodPost, "/save_annotation", strings.NewReader("not json"))
	req.Header.Set("api_key", testSecret)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}
