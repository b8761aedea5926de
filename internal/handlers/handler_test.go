package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"

	"github.com/harentsoaR/tutormatch-api/internal/config"
	"github.com/harentsoaR/tutormatch-api/internal/mocks"
	"github.com/harentsoaR/tutormatch-api/internal/testutil"
)

var testCORS = config.CORS{
	AllowOrigins: []string{"*"},
	AllowHeaders: []string{"Origin", "X-Requested-With", "Content-Type", "Accept"},
}

func newTestRouter(t *testing.T) (*gin.Engine, *mocks.Gateway) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	gw := new(mocks.Gateway)
	t.Cleanup(func() { gw.AssertExpectations(t) })

	return NewRouter(NewHandler(gw, testutil.MakeNoopLogger()), testCORS), gw
}

func do(r http.Handler, method, target, body string) *httptest.ResponseRecorder {
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, target, nil)
	} else {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decodeObject(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var got map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got), w.Body.String())
	return got
}

func decodeList(t *testing.T, w *httptest.ResponseRecorder) []map[string]any {
	t.Helper()
	var got []map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got), w.Body.String())
	return got
}
