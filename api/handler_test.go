package api

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"

	"salesdash/internal/sales"
)

func newTestRouter(t *testing.T) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	InitRoutes(router, zaptest.NewLogger(t))
	return router
}

func doJSON(t *testing.T, router *gin.Engine, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	reader := bytes.NewBuffer(nil)
	if body != nil {
		data, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewBuffer(data)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestListDefaultsAndValidation(t *testing.T) {
	router := newTestRouter(t)

	w := doJSON(t, router, http.MethodGet, "/sales", nil)
	assert.Equal(t, http.StatusOK, w.Code, "absent query params fall back to defaults")

	var page sales.Page
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &page))
	assert.Equal(t, 0, page.Total)

	w = doJSON(t, router, http.MethodGet, "/sales?sortField=color", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = doJSON(t, router, http.MethodGet, "/sales?sortDirection=sideways", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = doJSON(t, router, http.MethodGet, "/sales?page=zero", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestCreateUpdateDeleteOverHTTP(t *testing.T) {
	router := newTestRouter(t)

	w := doJSON(t, router, http.MethodPost, "/sales", sales.Candidate{Product: "Widget", Amount: 10, Date: "2024-01-01"})
	require.Equal(t, http.StatusCreated, w.Code)

	var created sales.Sale
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))
	require.NotEmpty(t, created.ID)

	w = doJSON(t, router, http.MethodPut, "/sales/"+created.ID, sales.Candidate{Product: "Widget Pro", Amount: 12, Date: "2024-01-01"})
	assert.Equal(t, http.StatusOK, w.Code)

	w = doJSON(t, router, http.MethodPut, "/sales/unknown-id", sales.Candidate{Product: "X", Amount: 1, Date: "2024-01-01"})
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = doJSON(t, router, http.MethodDelete, "/sales/"+created.ID, nil)
	assert.Equal(t, http.StatusOK, w.Code)
	var deleted struct {
		ID string `json:"id"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &deleted))
	assert.Equal(t, created.ID, deleted.ID, "delete echoes the id")

	w = doJSON(t, router, http.MethodDelete, "/sales/"+created.ID, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestBulkCreateOverHTTP(t *testing.T) {
	router := newTestRouter(t)

	w := doJSON(t, router, http.MethodPost, "/sales/bulk", []sales.Candidate{
		{Product: "A", Amount: 1, Date: "2024-01-01"},
		{Product: "B", Amount: 2, Date: "2024-01-02"},
	})
	require.Equal(t, http.StatusCreated, w.Code)

	var created []sales.Sale
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))
	require.Len(t, created, 2)
	assert.Equal(t, "A", created[0].Product, "response preserves input order")

	w = doJSON(t, router, http.MethodPost, "/sales/bulk", []sales.Candidate{
		{Product: "C", Amount: 3, Date: "2024-01-03"},
		{Product: "", Amount: 4, Date: "2024-01-04"},
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = doJSON(t, router, http.MethodGet, "/sales", nil)
	var page sales.Page
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &page))
	assert.Equal(t, 2, page.Total, "rejected batch stored nothing")
}
