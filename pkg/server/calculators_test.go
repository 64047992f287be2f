package server

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/suryakart/suryakart/pkg/calculator"
	"github.com/suryakart/suryakart/pkg/storage"
)

func TestHandleListCalculators(t *testing.T) {
	srv, _ := newTestServer(t, storage.NewMemory())
	handler := srv.setupHandler()

	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/api/calculators", nil))
	require.Equal(t, http.StatusOK, rr.Code)

	var defs []calculator.Definition
	require.NoError(t, json.NewDecoder(rr.Body).Decode(&defs))
	var ids []string
	for _, d := range defs {
		ids = append(ids, d.ID)
		assert.NotEmpty(t, d.Fields, d.ID)
	}
	assert.Equal(t, []string{"savings", "roi", "panel-size", "battery", "carbon"}, ids)
}

func TestHandleEvaluateCalculator(t *testing.T) {
	srv, _ := newTestServer(t, storage.NewMemory())
	handler := srv.setupHandler()

	post := func(path, body string) *httptest.ResponseRecorder {
		rr := httptest.NewRecorder()
		handler.ServeHTTP(rr, httptest.NewRequest(http.MethodPost, path, strings.NewReader(body)))
		return rr
	}

	t.Run("Savings", func(t *testing.T) {
		rr := post("/api/calculators/savings", `{"inputs":{"monthlyBill":3000,"sunHours":5,"electricityRate":8,"efficiency":50}}`)
		require.Equal(t, http.StatusOK, rr.Code)

		var eval calculator.Evaluation
		require.NoError(t, json.NewDecoder(rr.Body).Decode(&eval))
		assert.Equal(t, "savings", eval.ID)
		o, ok := eval.Output("lifetimeSavings")
		require.True(t, ok)
		assert.Equal(t, "4,50,000", o.Display)
	})

	t.Run("Defaults", func(t *testing.T) {
		rr := post("/api/calculators/carbon", `{}`)
		assert.Equal(t, http.StatusOK, rr.Code)
	})

	t.Run("Unknown Calculator", func(t *testing.T) {
		rr := post("/api/calculators/wind", `{}`)
		assert.Equal(t, http.StatusNotFound, rr.Code)
		assert.Equal(t, "The page you are looking for cannot be found", decodeError(t, rr))
	})

	t.Run("Invalid Input", func(t *testing.T) {
		rr := post("/api/calculators/panel-size", `{"inputs":{"systemLosses":100}}`)
		assert.Equal(t, http.StatusBadRequest, rr.Code)
		assert.Contains(t, decodeError(t, rr), "invalid input")
	})

	t.Run("Non Finite Result", func(t *testing.T) {
		rr := post("/api/calculators/savings", `{"inputs":{"monthlyBill":1e308,"electricityRate":1e-300}}`)
		assert.Equal(t, http.StatusBadRequest, rr.Code)
		assert.Contains(t, decodeError(t, rr), "is not a finite number")
	})

	t.Run("Negative ROI", func(t *testing.T) {
		rr := post("/api/calculators/roi", `{"inputs":{"systemCost":100000,"annualSavings":1000,"taxCredit":0,"maintenanceCost":2000}}`)
		require.Equal(t, http.StatusOK, rr.Code)
		var eval calculator.Evaluation
		require.NoError(t, json.NewDecoder(rr.Body).Decode(&eval))
		o, ok := eval.Output("netSavings")
		require.True(t, ok)
		assert.Equal(t, -125000.0, o.Value)
	})

	t.Run("Invalid Body", func(t *testing.T) {
		rr := post("/api/calculators/savings", `not json`)
		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})

	t.Run("Body Too Large", func(t *testing.T) {
		rr := post("/api/calculators/savings", `{"options":{"x":"`+strings.Repeat("a", maxBodyBytes)+`"}}`)
		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})
}
