package server

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

type mockOrderController struct {
	hits []string
}

func (m *mockOrderController) handle(name string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		m.hits = append(m.hits, name)
		w.WriteHeader(http.StatusTeapot)
	}
}

func (m *mockOrderController) Landing(w http.ResponseWriter, r *http.Request) {
	m.handle("landing")(w, r)
}

func (m *mockOrderController) SubmitForm(w http.ResponseWriter, r *http.Request) {
	m.handle("submitForm")(w, r)
}

func (m *mockOrderController) GetOrder(w http.ResponseWriter, r *http.Request) {
	m.handle("getOrder")(w, r)
}

func (m *mockOrderController) UpdateField(w http.ResponseWriter, r *http.Request) {
	m.handle("updateField")(w, r)
}

func (m *mockOrderController) SubmitOrder(w http.ResponseWriter, r *http.Request) {
	m.handle("submitOrder")(w, r)
}

func TestRouter_Routes(t *testing.T) {
	tests := []struct {
		method string
		path   string
		want   string
	}{
		{http.MethodGet, "/", "landing"},
		{http.MethodPost, "/order", "submitForm"},
		{http.MethodGet, "/api/order", "getOrder"},
		{http.MethodPatch, "/api/order/fields", "updateField"},
		{http.MethodPost, "/api/order/submit", "submitOrder"},
	}

	for _, tt := range tests {
		t.Run(tt.method+" "+tt.path, func(t *testing.T) {
			ctrl := &mockOrderController{}
			router := NewRouter(ctrl, zap.NewNop())

			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, httptest.NewRequest(tt.method, tt.path, nil))

			assert.Equal(t, http.StatusTeapot, rec.Code)
			assert.Equal(t, []string{tt.want}, ctrl.hits)
		})
	}
}

func TestRouter_Health(t *testing.T) {
	router := NewRouter(&mockOrderController{}, zap.NewNop())

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "ok", rec.Body.String())
}

func TestRouter_Metrics(t *testing.T) {
	router := NewRouter(&mockOrderController{}, zap.NewNop())

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "go_goroutines")
}

func TestRouter_MethodNotAllowed(t *testing.T) {
	router := NewRouter(&mockOrderController{}, zap.NewNop())

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodDelete, "/order", nil))

	assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
}
