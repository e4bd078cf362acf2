package api

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHealthHandler(t *testing.T) {
	req, err := http.NewRequest("GET", "/health", nil)
	if err != nil {
		t.Fatal(err)
	}

	rr := httptest.NewRecorder()
	handler := HealthHandler("1.2.3")

	handler.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code, "handler returned wrong status code")
	assert.Equal(t, "application/json", rr.Header().Get("Content-Type"), "handler returned wrong content type")

	var resp HealthResponse
	err = json.Unmarshal(rr.Body.Bytes(), &resp)
	assert.NoError(t, err, "failed to parse response body")

	assert.Equal(t, "ok", resp.Status, "handler returned wrong status in body")
	assert.Equal(t, "1.2.3", resp.Version)
}
