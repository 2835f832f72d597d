// Package quadstest runs an in-process fake of the QUADS REST API for tests.
//
// The fake keeps hosts, clouds, schedules, assignments and vlans in memory,
// requires a bearer token from POST /login/ on every other route and counts
// logins and logouts so tests can assert session handling.
package quadstest

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sort"
	"strings"
	"sync"
	"testing"

	"github.com/google/uuid"
	"github.com/gorilla/mux"

	"github.com/quadsproject/go-quads-lib/internal/types"
)

// APIPrefix is where the fake mounts the API. Clients use BaseURL() as base.
const APIPrefix = "/api/v3"

// Server is a fake QUADS API.
type Server struct {
	*httptest.Server

	// Router serves authenticated routes; tests may register extra paths on it.
	Router *mux.Router

	Username string
	Password string
	// TokenKey is the login body field carrying the token ("auth_token" or "token").
	TokenKey string
	// FixedToken, when set, is issued instead of a random token.
	FixedToken string

	mu          sync.Mutex
	tokens      map[string]bool
	logins      int
	logouts     int
	hosts       map[string]types.Host
	clouds      []types.Cloud
	schedules   []types.Schedule
	assignments []types.Assignment
	vlans       []types.Vlan
	moves       []types.Move
}

// New starts a fake seeded with three clouds and three hosts. It is closed when
// the test ends.
func New(t testing.TB) *Server {
	t.Helper()
	s := &Server{
		Username: "admin",
		Password: "secret",
		TokenKey: "auth_token",
		tokens:   map[string]bool{},
		hosts:    map[string]types.Host{},
	}
	s.seed()
	s.Server = httptest.NewServer(s.routes())
	t.Cleanup(s.Close)
	return s
}

// BaseURL returns the API base URL.
func (s *Server) BaseURL() string { return s.URL + APIPrefix }

func (s *Server) seed() {
	s.clouds = []types.Cloud{{ID: 1, Name: "cloud01"}, {ID: 2, Name: "cloud02"}, {ID: 3, Name: "cloud03"}}
	for i, h := range []types.Host{
		{ID: 1, Name: "host1.example.com", Model: "r640", HostType: "scalelab", Cloud: &types.Ref{ID: 1, Name: "cloud01"}},
		{ID: 2, Name: "host2.example.com", Model: "r640", HostType: "scalelab", Cloud: &types.Ref{ID: 2, Name: "cloud02"}},
		{ID: 3, Name: "host3.example.com", Model: "r750", HostType: "scalelab", Cloud: &types.Ref{ID: 2, Name: "cloud02"}, Broken: true},
	} {
		h.DefaultCloud = &types.Ref{ID: 1, Name: "cloud01"}
		h.Interfaces = []types.Interface{{ID: i + 1, Name: "em1", MacAddress: "52:54:00:00:00:0" + string(rune('1'+i))}}
		s.hosts[h.Name] = h
	}
	s.vlans = []types.Vlan{{ID: 1, VlanID: 1150, Gateway: "10.1.1.254", IPFree: 500, IPRange: "10.1.0.0/23", Netmask: "255.255.254.0"}}
	s.assignments = []types.Assignment{{
		ID: 1, Active: true, Owner: "alice", Ticket: "1234", Description: "perf testing",
		Cloud: &types.Ref{ID: 2, Name: "cloud02"},
	}}
	s.schedules = []types.Schedule{{
		ID: 1, Start: "2024-05-01T22:00", End: "2024-05-15T22:00",
		Host:  &types.Ref{Name: "host2.example.com"},
		Cloud: &types.Ref{ID: 2, Name: "cloud02"},
	}}
	s.moves = []types.Move{{Host: "host2.example.com", FromCloud: "cloud01", ToCloud: "cloud02"}}
}

func (s *Server) routes() http.Handler {
	root := mux.NewRouter()
	v3 := root.PathPrefix(APIPrefix).Subrouter()
	v3.HandleFunc("/login/", s.login).Methods(http.MethodPost)
	v3.HandleFunc("/logout/", s.logout).Methods(http.MethodPost)

	authed := v3.NewRoute().Subrouter()
	authed.Use(s.requireToken)

	// Hosts
	authed.HandleFunc("/hosts", s.listHosts).Methods(http.MethodGet)
	authed.HandleFunc("/hosts", s.createHost).Methods(http.MethodPost)
	authed.HandleFunc("/hosts/{name}", s.getHost).Methods(http.MethodGet)
	authed.HandleFunc("/hosts/{name}", s.updateHost).Methods(http.MethodPatch)
	authed.HandleFunc("/hosts/{name}", s.removeHost).Methods(http.MethodDelete)
	authed.HandleFunc("/hosts/{name}/interfaces", s.hostInterfaces).Methods(http.MethodGet)
	authed.HandleFunc("/available", s.listAvailable).Methods(http.MethodGet)
	authed.HandleFunc("/available/{name}", s.isAvailable).Methods(http.MethodGet)

	// Clouds
	authed.HandleFunc("/clouds", s.listClouds).Methods(http.MethodGet)
	authed.HandleFunc("/clouds", s.createCloud).Methods(http.MethodPost)
	authed.HandleFunc("/clouds/free/", s.freeClouds).Methods(http.MethodGet)
	authed.HandleFunc("/clouds/summary", s.summary).Methods(http.MethodGet)

	// Schedules, assignments
	authed.HandleFunc("/schedules", s.listSchedules).Methods(http.MethodGet)
	authed.HandleFunc("/schedules/current", s.listSchedules).Methods(http.MethodGet)
	authed.HandleFunc("/schedules/future", s.futureSchedules).Methods(http.MethodGet)
	authed.HandleFunc("/assignments/active", s.activeAssignments).Methods(http.MethodGet)
	authed.HandleFunc("/assignments/active/{cloud}", s.activeCloudAssignment).Methods(http.MethodGet)

	// Misc
	authed.HandleFunc("/vlans", s.listVlans).Methods(http.MethodGet)
	authed.HandleFunc("/moves", s.listMoves).Methods(http.MethodGet)
	authed.HandleFunc("/version", s.version).Methods(http.MethodGet)

	s.Router = authed
	return root
}

// --------------------------------------------------------------------
// Session handling
// --------------------------------------------------------------------

// Logins returns how many logins succeeded.
func (s *Server) Logins() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.logins
}

// Logouts returns how many logout requests were received.
func (s *Server) Logouts() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.logouts
}

// ActiveSessions returns the number of tokens not yet logged out.
func (s *Server) ActiveSessions() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.tokens)
}

// ExpireSessions forgets every issued token, so the next call gets a 401.
func (s *Server) ExpireSessions() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.tokens = map[string]bool{}
}

func (s *Server) login(w http.ResponseWriter, r *http.Request) {
	user, pass, ok := r.BasicAuth()
	if !ok || user != s.Username || pass != s.Password {
		WriteError(w, http.StatusUnauthorized, "Invalid credentials")
		return
	}
	token := s.FixedToken
	if token == "" {
		token = uuid.NewString()
	}
	s.mu.Lock()
	s.tokens[token] = true
	s.logins++
	s.mu.Unlock()

	WriteJSON(w, http.StatusCreated, map[string]any{
		"status_code": http.StatusCreated,
		"message":     "Successfully logged in.",
		s.TokenKey:    token,
	})
}

func (s *Server) logout(w http.ResponseWriter, r *http.Request) {
	token := bearer(r)
	s.mu.Lock()
	s.logouts++
	known := s.tokens[token]
	delete(s.tokens, token)
	s.mu.Unlock()

	if !known {
		WriteError(w, http.StatusUnauthorized, "Invalid token")
		return
	}
	WriteJSON(w, http.StatusOK, map[string]any{"status_code": http.StatusOK, "message": "Successfully logged out."})
}

func (s *Server) requireToken(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		s.mu.Lock()
		ok := s.tokens[bearer(r)]
		s.mu.Unlock()
		if !ok {
			WriteError(w, http.StatusUnauthorized, "Invalid token. Please log in again.")
			return
		}
		next.ServeHTTP(w, r)
	})
}

func bearer(r *http.Request) string {
	return strings.TrimPrefix(r.Header.Get("Authorization"), "Bearer ")
}

// --------------------------------------------------------------------
// Hosts
// --------------------------------------------------------------------

// AddHost stores h, replacing any host with the same name.
func (s *Server) AddHost(h types.Host) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.hosts[h.Name] = h
}

// Host returns the stored host named name.
func (s *Server) Host(name string) (types.Host, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	h, ok := s.hosts[name]
	return h, ok
}

func (s *Server) sortedHosts(keep func(types.Host) bool) []types.Host {
	out := []types.Host{}
	for _, h := range s.hosts {
		if keep(h) {
			out = append(out, h)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}

func (s *Server) listHosts(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	s.mu.Lock()
	hosts := s.sortedHosts(func(h types.Host) bool {
		if m := q.Get("model"); m != "" && !strings.EqualFold(h.Model, m) {
			return false
		}
		if c := q.Get("cloud"); c != "" && (h.Cloud == nil || h.Cloud.Name != c) {
			return false
		}
		if n := q.Get("name"); n != "" && h.Name != n {
			return false
		}
		return true
	})
	s.mu.Unlock()

	if q.Get("group_by") == "model" {
		grouped := map[string][]types.Host{}
		for _, h := range hosts {
			grouped[h.Model] = append(grouped[h.Model], h)
		}
		WriteJSON(w, http.StatusOK, grouped)
		return
	}
	WriteJSON(w, http.StatusOK, hosts)
}

func (s *Server) getHost(w http.ResponseWriter, r *http.Request) {
	h, ok := s.Host(mux.Vars(r)["name"])
	if !ok {
		WriteError(w, http.StatusNotFound, "Host not found: "+mux.Vars(r)["name"])
		return
	}
	WriteJSON(w, http.StatusOK, h)
}

func (s *Server) createHost(w http.ResponseWriter, r *http.Request) {
	var req types.CreateHostRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Name == "" {
		WriteError(w, http.StatusBadRequest, "Missing argument: name")
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, exists := s.hosts[req.Name]; exists {
		WriteError(w, http.StatusBadRequest, "Host "+req.Name+" already exists")
		return
	}
	h := types.Host{ID: len(s.hosts) + 1, Name: req.Name, Model: strings.ToUpper(req.Model), HostType: req.HostType}
	if req.DefaultCloud != "" {
		h.DefaultCloud = &types.Ref{Name: req.DefaultCloud}
	}
	if req.Cloud != "" {
		h.Cloud = &types.Ref{Name: req.Cloud}
	}
	s.hosts[h.Name] = h
	WriteJSON(w, http.StatusCreated, h)
}

func (s *Server) updateHost(w http.ResponseWriter, r *http.Request) {
	name := mux.Vars(r)["name"]
	var req types.UpdateHostRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, http.StatusBadRequest, "Invalid JSON body")
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	h, ok := s.hosts[name]
	if !ok {
		WriteError(w, http.StatusNotFound, "Host not found: "+name)
		return
	}
	if req.Broken != nil {
		h.Broken = *req.Broken
	}
	if req.Retired != nil {
		h.Retired = *req.Retired
	}
	if req.Model != nil {
		h.Model = *req.Model
	}
	if req.Cloud != nil {
		h.Cloud = &types.Ref{Name: *req.Cloud}
	}
	s.hosts[name] = h
	WriteJSON(w, http.StatusOK, h)
}

func (s *Server) removeHost(w http.ResponseWriter, r *http.Request) {
	name := mux.Vars(r)["name"]
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.hosts[name]; !ok {
		WriteError(w, http.StatusNotFound, "Host not found: "+name)
		return
	}
	delete(s.hosts, name)
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) hostInterfaces(w http.ResponseWriter, r *http.Request) {
	h, ok := s.Host(mux.Vars(r)["name"])
	if !ok {
		WriteError(w, http.StatusNotFound, "Host not found")
		return
	}
	ifaces := h.Interfaces
	if ifaces == nil {
		ifaces = []types.Interface{}
	}
	WriteJSON(w, http.StatusOK, ifaces)
}

func (s *Server) listAvailable(w http.ResponseWriter, r *http.Request) {
	model := r.URL.Query().Get("model")
	s.mu.Lock()
	hosts := s.sortedHosts(func(h types.Host) bool {
		return !h.Broken && !h.Retired && (model == "" || strings.EqualFold(h.Model, model))
	})
	s.mu.Unlock()
	WriteJSON(w, http.StatusOK, hosts)
}

func (s *Server) isAvailable(w http.ResponseWriter, r *http.Request) {
	h, ok := s.Host(mux.Vars(r)["name"])
	if !ok {
		WriteError(w, http.StatusNotFound, "Host not found")
		return
	}
	WriteJSON(w, http.StatusOK, !h.Broken && !h.Retired)
}

// --------------------------------------------------------------------
// Clouds
// --------------------------------------------------------------------

func (s *Server) listClouds(w http.ResponseWriter, r *http.Request) {
	name := r.URL.Query().Get("name")
	s.mu.Lock()
	out := []types.Cloud{}
	for _, c := range s.clouds {
		if name == "" || c.Name == name {
			out = append(out, c)
		}
	}
	s.mu.Unlock()
	WriteJSON(w, http.StatusOK, out)
}

func (s *Server) createCloud(w http.ResponseWriter, r *http.Request) {
	var req types.CloudRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Name == "" {
		WriteError(w, http.StatusBadRequest, "Missing argument: name")
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	c := types.Cloud{ID: len(s.clouds) + 1, Name: req.Name}
	s.clouds = append(s.clouds, c)
	WriteJSON(w, http.StatusCreated, c)
}

func (s *Server) freeClouds(w http.ResponseWriter, _ *http.Request) {
	s.mu.Lock()
	active := map[string]bool{}
	for _, a := range s.assignments {
		if a.Active && a.Cloud != nil {
			active[a.Cloud.Name] = true
		}
	}
	out := []types.Cloud{}
	for _, c := range s.clouds {
		if !active[c.Name] && c.Name != "cloud01" {
			out = append(out, c)
		}
	}
	s.mu.Unlock()
	WriteJSON(w, http.StatusOK, out)
}

func (s *Server) summary(w http.ResponseWriter, _ *http.Request) {
	s.mu.Lock()
	counts := map[string]int{}
	for _, h := range s.hosts {
		if h.Cloud != nil {
			counts[h.Cloud.Name]++
		}
	}
	out := []types.CloudSummary{}
	for _, c := range s.clouds {
		row := types.CloudSummary{Name: c.Name, Count: counts[c.Name]}
		for _, a := range s.assignments {
			if a.Active && a.Cloud != nil && a.Cloud.Name == c.Name {
				row.Owner, row.Ticket, row.Description = a.Owner, a.Ticket, a.Description
			}
		}
		out = append(out, row)
	}
	s.mu.Unlock()
	WriteJSON(w, http.StatusOK, out)
}

// --------------------------------------------------------------------
// Schedules, assignments, vlans, moves
// --------------------------------------------------------------------

func (s *Server) listSchedules(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	s.mu.Lock()
	out := []types.Schedule{}
	for _, sc := range s.schedules {
		if h := q.Get("host"); h != "" && (sc.Host == nil || sc.Host.Name != h) {
			continue
		}
		if c := q.Get("cloud"); c != "" && (sc.Cloud == nil || sc.Cloud.Name != c) {
			continue
		}
		out = append(out, sc)
	}
	s.mu.Unlock()
	WriteJSON(w, http.StatusOK, out)
}

func (s *Server) futureSchedules(w http.ResponseWriter, _ *http.Request) {
	WriteJSON(w, http.StatusOK, []types.Schedule{})
}

func (s *Server) activeAssignments(w http.ResponseWriter, _ *http.Request) {
	s.mu.Lock()
	out := []types.Assignment{}
	for _, a := range s.assignments {
		if a.Active {
			out = append(out, a)
		}
	}
	s.mu.Unlock()
	WriteJSON(w, http.StatusOK, out)
}

func (s *Server) activeCloudAssignment(w http.ResponseWriter, r *http.Request) {
	cloud := mux.Vars(r)["cloud"]
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, a := range s.assignments {
		if a.Active && a.Cloud != nil && a.Cloud.Name == cloud {
			WriteJSON(w, http.StatusOK, a)
			return
		}
	}
	WriteError(w, http.StatusNotFound, "No active assignment for cloud "+cloud)
}

func (s *Server) listVlans(w http.ResponseWriter, _ *http.Request) {
	s.mu.Lock()
	out := append([]types.Vlan{}, s.vlans...)
	s.mu.Unlock()
	WriteJSON(w, http.StatusOK, out)
}

func (s *Server) listMoves(w http.ResponseWriter, _ *http.Request) {
	s.mu.Lock()
	out := append([]types.Move{}, s.moves...)
	s.mu.Unlock()
	WriteJSON(w, http.StatusOK, out)
}

func (s *Server) version(w http.ResponseWriter, _ *http.Request) {
	WriteJSON(w, http.StatusOK, types.Version{Result: "QUADS version 2.1.0 delta"})
}
