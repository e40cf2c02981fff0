/*
handlers_test.go - Preview API handler tests

Tests run the real chi router over an in-memory SQLite store loaded with
a small generated dataset, so routing, filters, and serialization are all
exercised together.
*/
package api_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/warp/workforce-engine/api"
	"github.com/warp/workforce-engine/config"
	"github.com/warp/workforce-engine/store/sqlite"
	"github.com/warp/workforce-engine/workforce"
)

// =============================================================================
// TEST SETUP
// =============================================================================

func newTestServer(t *testing.T) (*httptest.Server, *workforce.Dataset) {
	t.Helper()

	cfg := &config.Config{
		Seed: 42,
		Days: 1,
		Orgs: []string{"H/Inpatient/Nursing", "H/Admin/HR"},
		Jobs: map[string][]config.Job{
			"Nursing": {{Code: "RN", Title: "Registered Nurse", Family: "Clinical"}},
			"HR":      {{Code: "HRG", Title: "HR Generalist", Family: "Administrative"}},
		},
		Paycodes: []string{"REG", "OT", "CALL"},
	}
	start := time.Date(2025, time.June, 2, 0, 0, 0, 0, time.UTC)
	ds, err := workforce.Generate(cfg, workforce.NewStreams(cfg.Seed), start)
	require.NoError(t, err)

	store, err := sqlite.New(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })
	require.NoError(t, store.LoadDataset(context.Background(), ds))

	srv := httptest.NewServer(api.NewRouter(api.NewHandler(store)))
	t.Cleanup(srv.Close)
	return srv, ds
}

func getJSON(t *testing.T, url string, out interface{}) *http.Response {
	t.Helper()
	resp, err := http.Get(url)
	require.NoError(t, err)
	t.Cleanup(func() { resp.Body.Close() })
	if out != nil && resp.StatusCode == http.StatusOK {
		require.NoError(t, json.NewDecoder(resp.Body).Decode(out))
	}
	return resp
}

// =============================================================================
// TESTS
// =============================================================================

func TestGetSummary(t *testing.T) {
	srv, ds := newTestServer(t)

	var sum sqlite.Summary
	resp := getJSON(t, srv.URL+"/api/summary", &sum)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	assert.Equal(t, len(ds.Employees), sum.Employees)
	assert.Equal(t, len(ds.Shifts), sum.Shifts)
	assert.Equal(t, len(ds.Timecards), sum.Timecards)
	assert.Equal(t, sum.Shifts, sum.OpenShifts+sum.FilledShifts)
}

func TestListEmployees(t *testing.T) {
	srv, _ := newTestServer(t)

	var all []api.EmployeeDTO
	resp := getJSON(t, srv.URL+"/api/employees?limit=5000", &all)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.Len(t, all, 140)
	assert.Equal(t, "E100000", all[0].EmployeeID)
	assert.NotEmpty(t, all[0].EmployeeName)

	var hr []api.EmployeeDTO
	resp = getJSON(t, srv.URL+"/api/employees?org=H/Admin/HR&limit=5000", &hr)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.Len(t, hr, 70)
	for _, e := range hr {
		assert.Equal(t, "HR", e.Department)
	}

	var limited []api.EmployeeDTO
	resp = getJSON(t, srv.URL+"/api/employees?limit=3", &limited)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Len(t, limited, 3)
}

func TestListSchedule_OpenFilter(t *testing.T) {
	srv, _ := newTestServer(t)

	var open []api.ShiftDTO
	resp := getJSON(t, srv.URL+"/api/schedule?open=true&limit=5000", &open)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	for _, s := range open {
		assert.True(t, s.IsOpenShift)
		assert.Empty(t, s.EmployeeID)
	}
}

func TestListTimecards_DateFilter(t *testing.T) {
	srv, ds := newTestServer(t)

	date := ds.Timecards[0].WorkDate.Format("2006-01-02")
	var cards []api.TimecardDTO
	resp := getJSON(t, srv.URL+"/api/timecards?date="+date+"&limit=5000", &cards)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.NotEmpty(t, cards)
	for _, tc := range cards {
		assert.Equal(t, date, tc.WorkDate)
	}
}

func TestBadParams(t *testing.T) {
	srv, _ := newTestServer(t)

	resp := getJSON(t, srv.URL+"/api/employees?limit=nope", nil)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	resp = getJSON(t, srv.URL+"/api/employees?limit=0", nil)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	resp = getJSON(t, srv.URL+"/api/timecards?date=June+2nd", nil)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestHealthz(t *testing.T) {
	srv, _ := newTestServer(t)

	var health api.HealthDTO
	resp := getJSON(t, srv.URL+"/api/healthz", &health)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "ok", health.Status)
}
