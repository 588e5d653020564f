package api

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"
	"time"

	"univar/app"
	"univar/domain/dataset"
	"univar/internal"
	"univar/internal/config"
	"univar/internal/errors"
	"univar/internal/session"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestAPI(t *testing.T) (http.Handler, *http.Cookie) {
	t.Helper()
	return newTestAPIWith(t, []dataset.Column{
		{Name: "city", Kind: dataset.KindCategorical, Raw: []string{"Lima", "Quito", "Lima", ""}, Missing: []bool{false, false, false, true}},
		{Name: "age", Kind: dataset.KindNumeric, Raw: []string{"1", "2", "3", "4"}, Missing: make([]bool, 4)},
	})
}

func newTestAPIWith(t *testing.T, columns []dataset.Column) (http.Handler, *http.Cookie) {
	t.Helper()
	logger := internal.NewLogger(internal.LogLevelError)
	store := session.NewStore(time.Hour)

	id := session.NewID()
	store.Put(id, dataset.NewDataset("people.csv", columns))

	h := NewHandler(store, app.NewAnalysisService(logger), config.Default().Analysis, logger)
	return h.Routes(), session.NewCookie(id, time.Hour)
}

func doGet(h http.Handler, target string, cookie *http.Cookie) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, target, nil)
	if cookie != nil {
		req.AddCookie(cookie)
	}
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func decode(t *testing.T, rec *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return body
}

func TestDatasetEndpoint(t *testing.T) {
	h, cookie := newTestAPI(t)

	rec := doGet(h, "/api/v1/dataset", cookie)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
	body := decode(t, rec)
	assert.Equal(t, "people.csv", body["name"])
	assert.EqualValues(t, 4, body["row_count"])

	columns := body["columns"].([]interface{})
	require.Len(t, columns, 2)
	city := columns[0].(map[string]interface{})
	assert.Equal(t, "city", city["name"])
	assert.Equal(t, "categorical", city["kind"])
	assert.EqualValues(t, 1, city["missing_count"])
}

func TestDatasetEndpointWithoutSession(t *testing.T) {
	h, _ := newTestAPI(t)

	tests := []struct {
		name   string
		cookie *http.Cookie
	}{
		{name: "no cookie"},
		{name: "garbage cookie", cookie: &http.Cookie{Name: session.CookieName, Value: "not-a-uuid"}},
		{name: "unknown session", cookie: session.NewCookie(session.NewID(), time.Hour)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := doGet(h, "/api/v1/dataset", tt.cookie)
			assert.Equal(t, http.StatusNotFound, rec.Code)
			assert.Equal(t, "NOT_FOUND", decode(t, rec)["code"])
		})
	}
}

func TestColumnSummary(t *testing.T) {
	h, cookie := newTestAPI(t)

	t.Run("categorical", func(t *testing.T) {
		rec := doGet(h, "/api/v1/columns/city/summary", cookie)
		require.Equal(t, http.StatusOK, rec.Code)
		body := decode(t, rec)
		assert.Equal(t, "categorical", body["mode"])
		freq := body["frequencies"].(map[string]interface{})
		assert.EqualValues(t, 3, freq["total"])
		first := freq["rows"].([]interface{})[0].(map[string]interface{})
		assert.Equal(t, "Lima", first["value"])
		assert.EqualValues(t, 2, first["frequency"])
	})

	t.Run("numeric", func(t *testing.T) {
		rec := doGet(h, "/api/v1/columns/age/summary", cookie)
		require.Equal(t, http.StatusOK, rec.Code)
		body := decode(t, rec)
		assert.Equal(t, "numeric", body["mode"])
		describe := body["describe"].(map[string]interface{})
		assert.EqualValues(t, 4, describe["count"])
		assert.InDelta(t, 2.5, describe["mean"], 1e-12)
		assert.Contains(t, body, "histogram")
		assert.Contains(t, body, "boxplot")
		assert.Contains(t, body, "density")
	})

	t.Run("binned", func(t *testing.T) {
		rec := doGet(h, "/api/v1/columns/age/summary?categorical=true&bins=3", cookie)
		require.Equal(t, http.StatusOK, rec.Code)
		body := decode(t, rec)
		assert.Equal(t, "binned", body["mode"])
		assert.EqualValues(t, 3, body["bins"])
		rows := body["frequencies"].(map[string]interface{})["rows"].([]interface{})
		assert.Len(t, rows, 3)
	})
}

func TestColumnSummaryEscapedNames(t *testing.T) {
	names := []string{"a/b", "speed km/h", "100%", "a b", "50%/day"}
	columns := make([]dataset.Column, len(names))
	for i, name := range names {
		columns[i] = dataset.Column{Name: name, Kind: dataset.KindNumeric, Raw: []string{"1", "2"}, Missing: make([]bool, 2)}
	}
	h, cookie := newTestAPIWith(t, columns)

	for _, name := range names {
		t.Run(name, func(t *testing.T) {
			rec := doGet(h, "/api/v1/columns/"+url.PathEscape(name)+"/summary", cookie)
			require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
			body := decode(t, rec)
			assert.Equal(t, name, body["column"])
			assert.Equal(t, "numeric", body["mode"])
		})
	}
}

func TestColumnParamRejectsBadEscape(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/api/v1/columns/x/summary", nil)
	req.URL.RawPath = "/api/v1/columns/a%zz/summary"
	rctx := chi.NewRouteContext()
	rctx.URLParams.Add("name", "a%zz")
	req = req.WithContext(context.WithValue(req.Context(), chi.RouteCtxKey, rctx))

	_, err := columnParam(req)

	var appErr *errors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, errors.CodeInvalidInput, appErr.Code)
}

func TestColumnSummaryErrors(t *testing.T) {
	h, cookie := newTestAPI(t)

	tests := []struct {
		name   string
		target string
		status int
		code   string
	}{
		{name: "unknown column", target: "/api/v1/columns/height/summary", status: http.StatusNotFound, code: "NOT_FOUND"},
		{name: "bins not a number", target: "/api/v1/columns/age/summary?categorical=1&bins=ten", status: http.StatusBadRequest, code: "INVALID_INPUT"},
		{name: "bins zero", target: "/api/v1/columns/age/summary?categorical=1&bins=0", status: http.StatusBadRequest, code: "INVALID_INPUT"},
		{name: "bins above limit", target: "/api/v1/columns/age/summary?categorical=1&bins=51", status: http.StatusBadRequest, code: "INVALID_INPUT"},
		{name: "bad toggle", target: "/api/v1/columns/age/summary?categorical=maybe", status: http.StatusBadRequest, code: "INVALID_INPUT"},
		{name: "no such endpoint", target: "/api/v1/nothing", status: http.StatusNotFound, code: "NOT_FOUND"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := doGet(h, tt.target, cookie)
			assert.Equal(t, tt.status, rec.Code)
			assert.Equal(t, tt.code, decode(t, rec)["code"])
		})
	}
}

func TestParseBool(t *testing.T) {
	for _, raw := range []string{"", "0", "false", "Off", "no"} {
		got, err := parseBool(raw)
		require.NoError(t, err, raw)
		assert.False(t, got, raw)
	}
	for _, raw := range []string{"1", "TRUE", "on", "yes"} {
		got, err := parseBool(raw)
		require.NoError(t, err, raw)
		assert.True(t, got, raw)
	}
}
