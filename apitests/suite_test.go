package apitests

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/frogg-app/monitoring-contract-tests/framework"
)

// Every registered case, in registration order. The suite's shape must not
// depend on configuration or on any case's outcome.
var allCaseNames = []string{
	"Health endpoint (/health)",
	"API v1 health (/api/v1/health)",
	"Login - invalid credentials",
	"Login - missing fields",
	"Protected endpoint - no auth",
	"Protected endpoint - invalid token",
	"Logout - without token",
	"Refresh - without token",
	"List servers - requires auth",
	"List servers - authenticated",
	"Create server",
	"Get server by ID",
	"Update server",
	"Get server metrics",
	"Get server containers",
	"Delete server",
	"List alert rules - requires auth",
	"List alert rules",
	"Create alert rule",
	"Delete alert rule",
	"List alert events",
	"List channels - requires auth",
	"List notification channels",
	"Create notification channel",
	"Delete notification channel",
	"Serves HTML",
	"Flutter JS bundle",
	"API proxy",
	"SPA routing",
}

func namesOf(results framework.Results) []string {
	var names []string
	for _, r := range results.Tests {
		names = append(names, r.Name)
	}
	return names
}

const (
	stubAccessToken  = "stub-access-token"
	stubRefreshToken = "stub-refresh-token"
)

// stubMonitoringAPI is an in-memory rendition of the monitoring API, just rich
// enough to satisfy every contract the suite asserts on.
type stubMonitoringAPI struct {
	mu       sync.Mutex
	nextID   int
	servers  map[int]map[string]interface{}
	rules    map[int]map[string]interface{}
	channels map[int]map[string]interface{}
}

func newStubMonitoringAPI() *stubMonitoringAPI {
	return &stubMonitoringAPI{
		servers:  make(map[int]map[string]interface{}),
		rules:    make(map[int]map[string]interface{}),
		channels: make(map[int]map[string]interface{}),
	}
}

func (s *stubMonitoringAPI) allocateID() int {
	s.nextID++
	return s.nextID
}

func writeJSON(w http.ResponseWriter, status int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}

func (s *stubMonitoringAPI) router() http.Handler {
	r := mux.NewRouter()

	health := func(w http.ResponseWriter, req *http.Request) {
		writeJSON(w, 200, map[string]interface{}{"status": "ok", "version": "1.0.0", "uptime": 42})
	}
	r.HandleFunc("/health", health).Methods("GET")
	r.HandleFunc("/api/v1/health", health).Methods("GET")

	r.HandleFunc("/api/v1/auth/login", func(w http.ResponseWriter, req *http.Request) {
		var params map[string]string
		_ = json.NewDecoder(req.Body).Decode(&params)
		if params["username"] == "" || params["password"] == "" {
			writeJSON(w, 400, map[string]string{"error": "missing fields"})
			return
		}
		if params["username"] != "admin" || params["password"] != "admin123" {
			writeJSON(w, 401, map[string]string{"error": "invalid credentials"})
			return
		}
		writeJSON(w, 200, map[string]string{
			"access_token":  stubAccessToken,
			"refresh_token": stubRefreshToken,
		})
	}).Methods("POST")

	requiresRefreshToken := func(w http.ResponseWriter, req *http.Request) {
		var params map[string]string
		_ = json.NewDecoder(req.Body).Decode(&params)
		if params["refresh_token"] == "" {
			writeJSON(w, 400, map[string]string{"error": "missing refresh token"})
			return
		}
		writeJSON(w, 200, map[string]string{"access_token": stubAccessToken})
	}
	r.HandleFunc("/api/v1/auth/logout", requiresRefreshToken).Methods("POST")
	r.HandleFunc("/api/v1/auth/refresh", requiresRefreshToken).Methods("POST")

	// Everything below requires a valid bearer token.
	authed := r.PathPrefix("/api/v1").Subrouter()
	authed.Use(func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
			if req.Header.Get("Authorization") != "Bearer "+stubAccessToken {
				writeJSON(w, 401, map[string]string{"error": "unauthorized"})
				return
			}
			next.ServeHTTP(w, req)
		})
	})

	authed.HandleFunc("/auth/me", func(w http.ResponseWriter, req *http.Request) {
		writeJSON(w, 200, map[string]string{"username": "admin"})
	}).Methods("GET")

	s.collectionRoutes(authed, "/servers", "servers", "server", s.servers)
	s.collectionRoutes(authed, "/alerts/rules", "rules", "rule", s.rules)
	s.collectionRoutes(authed, "/settings/notifications", "channels", "channel", s.channels)

	authed.HandleFunc("/alerts/events", func(w http.ResponseWriter, req *http.Request) {
		writeJSON(w, 200, map[string]interface{}{"events": []interface{}{}, "total": 0})
	}).Methods("GET")

	authed.HandleFunc("/servers/{id}/metrics", func(w http.ResponseWriter, req *http.Request) {
		writeJSON(w, 200, map[string]interface{}{"metrics": []interface{}{}})
	}).Methods("GET")
	authed.HandleFunc("/servers/{id}/containers", func(w http.ResponseWriter, req *http.Request) {
		writeJSON(w, 200, map[string]interface{}{"containers": []interface{}{}})
	}).Methods("GET")

	return r
}

// collectionRoutes wires the standard CRUD surface the suite expects from
// each resource collection.
func (s *stubMonitoringAPI) collectionRoutes(
	r *mux.Router, prefix, collectionKey, resourceKey string, store map[int]map[string]interface{},
) {
	r.HandleFunc(prefix, func(w http.ResponseWriter, req *http.Request) {
		s.mu.Lock()
		items := []interface{}{}
		for _, item := range store {
			items = append(items, item)
		}
		s.mu.Unlock()
		writeJSON(w, 200, map[string]interface{}{collectionKey: items, "total": len(items)})
	}).Methods("GET")

	r.HandleFunc(prefix, func(w http.ResponseWriter, req *http.Request) {
		var params map[string]interface{}
		_ = json.NewDecoder(req.Body).Decode(&params)
		s.mu.Lock()
		id := s.allocateID()
		if params == nil {
			params = map[string]interface{}{}
		}
		params["id"] = id
		store[id] = params
		s.mu.Unlock()
		writeJSON(w, 201, map[string]interface{}{resourceKey: params})
	}).Methods("POST")

	byID := prefix + "/{id:[0-9]+}"
	withStoredItem := func(handle func(w http.ResponseWriter, req *http.Request, id int)) http.HandlerFunc {
		return func(w http.ResponseWriter, req *http.Request) {
			var id int
			_, _ = fmt.Sscanf(mux.Vars(req)["id"], "%d", &id)
			s.mu.Lock()
			_, found := store[id]
			s.mu.Unlock()
			if !found {
				writeJSON(w, 404, map[string]string{"error": "not found"})
				return
			}
			handle(w, req, id)
		}
	}

	r.HandleFunc(byID, withStoredItem(func(w http.ResponseWriter, req *http.Request, id int) {
		s.mu.Lock()
		item := store[id]
		s.mu.Unlock()
		writeJSON(w, 200, map[string]interface{}{resourceKey: item})
	})).Methods("GET")

	r.HandleFunc(byID, withStoredItem(func(w http.ResponseWriter, req *http.Request, id int) {
		var params map[string]interface{}
		_ = json.NewDecoder(req.Body).Decode(&params)
		s.mu.Lock()
		for k, v := range params {
			store[id][k] = v
		}
		s.mu.Unlock()
		writeJSON(w, 200, map[string]interface{}{resourceKey: store[id]})
	})).Methods("PUT")

	r.HandleFunc(byID, withStoredItem(func(w http.ResponseWriter, req *http.Request, id int) {
		s.mu.Lock()
		delete(store, id)
		s.mu.Unlock()
		w.WriteHeader(204)
	})).Methods("DELETE")
}

// stubWebApp mimics the front end: an HTML shell for any unrecognized path, a
// built JS asset, and transparent proxying of the API prefix.
func stubWebApp(apiHealth http.HandlerFunc) http.Handler {
	const indexPage = "<!DOCTYPE html><html><head><title>Frogg</title></head><body></body></html>"
	r := mux.NewRouter()
	r.HandleFunc("/main.dart.js", func(w http.ResponseWriter, req *http.Request) {
		w.Header().Set("Content-Type", "application/javascript")
		_, _ = w.Write([]byte("(function(){})();"))
	})
	r.HandleFunc("/api/v1/health", apiHealth)
	r.PathPrefix("/").HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		w.Header().Set("Content-Type", "text/html")
		_, _ = w.Write([]byte(indexPage))
	})
	return r
}

func TestSuiteRunsGreenAgainstStubAPI(t *testing.T) {
	api := newStubMonitoringAPI()
	server := httptest.NewServer(api.router())
	defer server.Close()

	results := RunTestSuite(server.URL, "", framework.NullTestLogger(), nil)

	require.Equal(t, allCaseNames, namesOf(results))
	for _, r := range results.Tests {
		assert.True(t, r.Passed, "%s: %s", r.Name, r.Message)
	}
	assert.True(t, results.OK())

	// The web app cases must have reported skips, not real checks.
	webResults := results.Tests[len(results.Tests)-4:]
	for _, r := range webResults {
		assert.Equal(t, "Web App Tests", r.Group)
		assert.True(t, strings.HasPrefix(r.Message, "Skipped"), r.Message)
	}

	// Every resource the run created against the API was cleaned up.
	api.mu.Lock()
	defer api.mu.Unlock()
	assert.Empty(t, api.servers)
	assert.Empty(t, api.rules)
	assert.Empty(t, api.channels)
}

func TestSuiteExercisesWebAppWhenConfigured(t *testing.T) {
	api := newStubMonitoringAPI()
	apiServer := httptest.NewServer(api.router())
	defer apiServer.Close()

	webServer := httptest.NewServer(stubWebApp(func(w http.ResponseWriter, req *http.Request) {
		writeJSON(w, 200, map[string]interface{}{"status": "ok", "version": "1.0.0", "uptime": 42})
	}))
	defer webServer.Close()

	results := RunTestSuite(apiServer.URL, webServer.URL, framework.NullTestLogger(), nil)

	require.Equal(t, allCaseNames, namesOf(results))
	assert.True(t, results.OK())

	webResults := results.Tests[len(results.Tests)-4:]
	for _, r := range webResults {
		assert.True(t, r.Passed, "%s: %s", r.Name, r.Message)
		assert.False(t, strings.HasPrefix(r.Message, "Skipped"), r.Message)
	}
}

func TestSuiteRunsEveryCaseEvenWhenTheAPIIsBroken(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		writeJSON(w, 500, map[string]string{"error": "internal"})
	}))
	defer server.Close()

	results := RunTestSuite(server.URL, "", framework.NullTestLogger(), nil)

	// A broken service fails cases but never shortens the run.
	require.Equal(t, allCaseNames, namesOf(results))
	assert.False(t, results.OK())

	// Lifecycle cases with no created resource skip rather than fail.
	for _, r := range results.Tests {
		switch r.Name {
		case "Get server by ID", "Update server", "Delete server",
			"Delete alert rule", "Delete notification channel":
			assert.True(t, r.Passed, "%s should have skipped", r.Name)
			assert.True(t, strings.HasPrefix(r.Message, "Skipped"), r.Message)
		}
	}
}

func TestSuiteVerdictsAreRepeatableAcrossRuns(t *testing.T) {
	api := newStubMonitoringAPI()
	server := httptest.NewServer(api.router())
	defer server.Close()

	first := RunTestSuite(server.URL, "", framework.NullTestLogger(), nil)
	second := RunTestSuite(server.URL, "", framework.NullTestLogger(), nil)

	require.Equal(t, len(first.Tests), len(second.Tests))
	for i := range first.Tests {
		assert.Equal(t, first.Tests[i].Passed, second.Tests[i].Passed, first.Tests[i].Name)
		assert.Equal(t, first.Tests[i].Message, second.Tests[i].Message, first.Tests[i].Name)
	}
}
