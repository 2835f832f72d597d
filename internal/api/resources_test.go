package api

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/url"
	"strings"
	"sync"
	"testing"

	apierrors "github.com/quadsproject/go-quads-lib/internal/errors"
	"github.com/quadsproject/go-quads-lib/internal/types"
)

type recorded struct {
	method string
	uri    string
	body   string
}

// recorder answers every request with reply and remembers what it saw.
func recorder(t *testing.T, reply string) (Conn, func() []recorded) {
	t.Helper()
	var (
		mu   sync.Mutex
		seen []recorded
	)
	c := newConn(t, func(w http.ResponseWriter, r *http.Request) {
		raw, _ := io.ReadAll(r.Body)
		mu.Lock()
		seen = append(seen, recorded{method: r.Method, uri: r.URL.RequestURI(), body: string(raw)})
		mu.Unlock()
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(reply))
	})
	return c, func() []recorded {
		mu.Lock()
		defer mu.Unlock()
		return append([]recorded(nil), seen...)
	}
}

func TestMutations_Routes(t *testing.T) {
	t.Parallel()
	wipe := true
	start := "2024-05-01 22:00"
	cases := []struct {
		name   string
		call   func(context.Context, Conn) error
		method string
		uri    string
		body   string
	}{
		{"update cloud", func(ctx context.Context, c Conn) error {
			return UpdateCloud(ctx, c, "cloud02", types.CloudRequest{LastRedefined: "2024-01-01"})
		}, http.MethodPatch, "/clouds/cloud02", `{"last_redefined":"2024-01-01"}`},
		{"remove cloud", func(ctx context.Context, c Conn) error { return RemoveCloud(ctx, c, "cloud02") },
			http.MethodDelete, "/clouds/cloud02", ""},
		{"update schedule", func(ctx context.Context, c Conn) error {
			return UpdateSchedule(ctx, c, 7, types.UpdateScheduleRequest{Start: &start})
		}, http.MethodPatch, "/schedules/7", `{"start":"2024-05-01 22:00"}`},
		{"remove schedule", func(ctx context.Context, c Conn) error { return RemoveSchedule(ctx, c, 7) },
			http.MethodDelete, "/schedules/7", ""},
		{"update assignment", func(ctx context.Context, c Conn) error {
			return UpdateAssignment(ctx, c, 3, types.UpdateAssignmentRequest{Wipe: &wipe})
		}, http.MethodPatch, "/assignments/3", `{"wipe":true}`},
		{"update notification", func(ctx context.Context, c Conn) error {
			return UpdateNotification(ctx, c, 3, types.UpdateNotificationRequest{Initial: &wipe})
		}, http.MethodPatch, "/notifications/3", `{"initial":true}`},
		{"update interface", func(ctx context.Context, c Conn) error {
			return UpdateInterface(ctx, c, "host1", types.InterfaceRequest{Name: "em1", MacAddress: "aa:bb"})
		}, http.MethodPatch, "/interfaces/host1", `{"name":"em1","mac_address":"aa:bb"}`},
		{"remove interface", func(ctx context.Context, c Conn) error { return RemoveInterface(ctx, c, "host1", "em1") },
			http.MethodDelete, "/interfaces/host1/em1", ""},
		{"remove memory", func(ctx context.Context, c Conn) error { return RemoveMemory(ctx, c, 11) },
			http.MethodDelete, "/memory/11", ""},
		{"update disk", func(ctx context.Context, c Conn) error {
			return UpdateDisk(ctx, c, "host1", types.DiskRequest{ID: 2, Count: 4})
		}, http.MethodPatch, "/disks/host1", `{"disk_id":2,"count":4}`},
		{"remove disk", func(ctx context.Context, c Conn) error { return RemoveDisk(ctx, c, "host1", 2) },
			http.MethodDelete, "/disks/host1/2", ""},
		{"remove processor", func(ctx context.Context, c Conn) error { return RemoveProcessor(ctx, c, 5) },
			http.MethodDelete, "/processors/5", ""},
		{"update vlan", func(ctx context.Context, c Conn) error {
			return UpdateVlan(ctx, c, 1150, types.VlanRequest{Gateway: "10.0.0.1"})
		}, http.MethodPatch, "/vlans/1150", `{"gateway":"10.0.0.1"}`},
	}
	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			c, seen := recorder(t, `{}`)
			if err := tc.call(context.Background(), c); err != nil {
				t.Fatalf("call: %v", err)
			}
			got := seen()
			if len(got) != 1 {
				t.Fatalf("expected one request, got %d", len(got))
			}
			if got[0].method != tc.method || got[0].uri != tc.uri || got[0].body != tc.body {
				t.Fatalf("got %+v, want %s %s %s", got[0], tc.method, tc.uri, tc.body)
			}
		})
	}
}

func TestMutations_RejectMissingIdentifiers(t *testing.T) {
	t.Parallel()
	c := Conn{HTTP: &http.Client{Transport: &errRT{}}, BaseURL: "http://example.com"}
	ctx := context.Background()
	calls := map[string]error{
		"cloud":        RemoveCloud(ctx, c, ""),
		"schedule":     RemoveSchedule(ctx, c, 0),
		"assignment":   UpdateAssignment(ctx, c, -1, types.UpdateAssignmentRequest{}),
		"notification": UpdateNotification(ctx, c, 0, types.UpdateNotificationRequest{}),
		"interface":    RemoveInterface(ctx, c, "host1", ""),
		"disk":         RemoveDisk(ctx, c, "host1", 0),
		"memory":       RemoveMemory(ctx, c, 0),
		"processor":    RemoveProcessor(ctx, c, 0),
		"vlan":         UpdateVlan(ctx, c, 0, types.VlanRequest{}),
	}
	for name, err := range calls {
		if !errors.Is(err, apierrors.ErrInvalidArgument) {
			t.Errorf("%s: expected ErrInvalidArgument, got %v", name, err)
		}
	}
}

func TestClouds(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	c, seen := recorder(t, `[{"id":1,"name":"cloud01"},{"id":2,"name":"cloud02"}]`)
	clouds, err := ListClouds(ctx, c, url.Values{"name": {"cloud01"}})
	if err != nil || len(clouds) != 2 {
		t.Fatalf("ListClouds: %+v %v", clouds, err)
	}
	if _, err := ListFreeClouds(ctx, c); err != nil {
		t.Fatalf("ListFreeClouds: %v", err)
	}
	cloud, err := GetCloud(ctx, c, "cloud01")
	if err != nil || cloud.Name != "cloud01" {
		t.Fatalf("GetCloud: %+v %v", cloud, err)
	}
	uris := []string{}
	for _, r := range seen() {
		uris = append(uris, r.uri)
	}
	if strings.Join(uris, " ") != "/clouds?name=cloud01 /clouds/free/ /clouds?name=cloud01" {
		t.Fatalf("uris = %v", uris)
	}
}

func TestGetCloud_NotFound(t *testing.T) {
	t.Parallel()
	c, _ := recorder(t, `[]`)
	if _, err := GetCloud(context.Background(), c, "cloud99"); !errors.Is(err, apierrors.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestCloudSummary(t *testing.T) {
	t.Parallel()
	c, seen := recorder(t, `[{"name":"cloud02","count":5,"owner":"alice","provisioned":true}]`)
	rows, err := CloudSummary(context.Background(), c, url.Values{"date": {"2024-05-01"}})
	if err != nil || len(rows) != 1 || rows[0].Count != 5 || !rows[0].Provisioned {
		t.Fatalf("CloudSummary: %+v %v", rows, err)
	}
	if got := seen()[0].uri; got != "/clouds/summary?date=2024-05-01" {
		t.Fatalf("uri = %s", got)
	}
}

func TestCreateCloud(t *testing.T) {
	t.Parallel()
	c, seen := recorder(t, `{"id":4,"name":"cloud04"}`)
	cloud, err := CreateCloud(context.Background(), c, types.CloudRequest{Name: "cloud04"})
	if err != nil || cloud.ID != 4 {
		t.Fatalf("CreateCloud: %+v %v", cloud, err)
	}
	if r := seen()[0]; r.method != http.MethodPost || r.uri != "/clouds" || r.body != `{"name":"cloud04"}` {
		t.Fatalf("request = %+v", r)
	}
	if _, err := CreateCloud(context.Background(), c, types.CloudRequest{}); !errors.Is(err, apierrors.ErrInvalidArgument) {
		t.Fatalf("expected ErrInvalidArgument, got %v", err)
	}
}

func TestSchedules(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	reply := `{"schedules":[{"id":1,"start":"2024-05-01T22:00","end":"2024-05-15T22:00","host":"host1","cloud":{"id":2,"name":"cloud02"}}]}`
	c, seen := recorder(t, reply)

	all, err := ListSchedules(ctx, c, url.Values{"host": {"host1"}})
	if err != nil || len(all) != 1 || all[0].Host.Name != "host1" || all[0].Cloud.Name != "cloud02" {
		t.Fatalf("ListSchedules: %+v %v", all, err)
	}
	if _, err := ListCurrentSchedules(ctx, c, url.Values{"cloud": {"cloud02"}}); err != nil {
		t.Fatalf("ListCurrentSchedules: %v", err)
	}
	if _, err := ListFutureSchedules(ctx, c, nil); err != nil {
		t.Fatalf("ListFutureSchedules: %v", err)
	}
	want := []string{"/schedules?host=host1", "/schedules/current?cloud=cloud02", "/schedules/future"}
	for i, r := range seen() {
		if r.uri != want[i] {
			t.Fatalf("request %d uri = %s, want %s", i, r.uri, want[i])
		}
	}
}

func TestGetSchedule_Validation(t *testing.T) {
	t.Parallel()
	c, _ := recorder(t, `{"id":1,"start":"2024-05-01T22:00"}`)
	_, err := GetSchedule(context.Background(), c, 1)
	var de *apierrors.DecodeError
	if !errors.As(err, &de) {
		t.Fatalf("schedule without end should fail validation, got %v", err)
	}
}

func TestCreateSchedule(t *testing.T) {
	t.Parallel()
	c, seen := recorder(t, `{"id":12,"start":"2024-05-01 22:00","end":"2024-05-15 22:00","host":"host1","cloud":"cloud02"}`)
	req := types.CreateScheduleRequest{Cloud: "cloud02", Hostname: "host1", Start: "2024-05-01 22:00", End: "2024-05-15 22:00"}
	s, err := CreateSchedule(context.Background(), c, req)
	if err != nil || s.ID != 12 {
		t.Fatalf("CreateSchedule: %+v %v", s, err)
	}
	if r := seen()[0]; r.method != http.MethodPost || r.uri != "/schedules" {
		t.Fatalf("request = %+v", r)
	}
	if _, err := CreateSchedule(context.Background(), c, types.CreateScheduleRequest{Hostname: "host1"}); !errors.Is(err, apierrors.ErrInvalidArgument) {
		t.Fatalf("missing cloud: %v", err)
	}
}

func TestAssignments(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	c, seen := recorder(t, `[{"id":3,"active":true,"owner":"alice","cloud":{"name":"cloud02"},"vlan":{"vlan_id":1150}}]`)

	list, err := ListAssignments(ctx, c, url.Values{"owner": {"alice"}})
	if err != nil || len(list) != 1 || list[0].Vlan.VlanID != 1150 {
		t.Fatalf("ListAssignments: %+v %v", list, err)
	}
	if _, err := ListActiveAssignments(ctx, c); err != nil {
		t.Fatalf("ListActiveAssignments: %v", err)
	}
	want := []string{"/assignments?owner=alice", "/assignments/active"}
	for i, r := range seen() {
		if r.uri != want[i] {
			t.Fatalf("request %d uri = %s, want %s", i, r.uri, want[i])
		}
	}
}

func TestGetActiveCloudAssignment(t *testing.T) {
	t.Parallel()
	c, seen := recorder(t, `{"id":3,"active":true,"cloud":"cloud02"}`)
	a, err := GetActiveCloudAssignment(context.Background(), c, "cloud02")
	if err != nil || a.ID != 3 || a.Cloud.Name != "cloud02" {
		t.Fatalf("GetActiveCloudAssignment: %+v %v", a, err)
	}
	if got := seen()[0].uri; got != "/assignments/active/cloud02" {
		t.Fatalf("uri = %s", got)
	}
}

func TestCreateAssignment(t *testing.T) {
	t.Parallel()
	c, seen := recorder(t, `{"id":8,"cloud":"cloud03","owner":"bob"}`)
	vlan := 1150
	a, err := CreateAssignment(context.Background(), c, types.CreateAssignmentRequest{
		Cloud: "cloud03", Description: "perf", Owner: "bob", VlanID: &vlan,
	})
	if err != nil || a.ID != 8 {
		t.Fatalf("CreateAssignment: %+v %v", a, err)
	}
	if !strings.Contains(seen()[0].body, `"vlan":1150`) {
		t.Fatalf("body = %s", seen()[0].body)
	}
}

func TestHardware(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	c, seen := recorder(t, `{"interfaces":[{"name":"em1","mac_address":"aa:bb","host":"host1"}]}`)
	ifaces, err := ListHostInterfaces(ctx, c, "host1")
	if err != nil || len(ifaces) != 1 || ifaces[0].Host != "host1" {
		t.Fatalf("ListHostInterfaces: %+v %v", ifaces, err)
	}
	if _, err := ListInterfaces(ctx, c); err != nil {
		t.Fatalf("ListInterfaces: %v", err)
	}
	want := []string{"/hosts/host1/interfaces", "/interfaces"}
	for i, r := range seen() {
		if r.uri != want[i] {
			t.Fatalf("request %d uri = %s, want %s", i, r.uri, want[i])
		}
	}
}

func TestHardware_Create(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	c, seen := recorder(t, "")

	if iface, err := CreateInterface(ctx, c, "host1", types.InterfaceRequest{Name: "em2"}); err != nil || iface != nil {
		t.Fatalf("CreateInterface: %+v %v", iface, err)
	}
	if m, err := CreateMemory(ctx, c, "host1", types.MemoryRequest{Handle: "DIMM A1", SizeGB: 32}); err != nil || m != nil {
		t.Fatalf("CreateMemory: %+v %v", m, err)
	}
	if d, err := CreateDisk(ctx, c, "host1", types.DiskRequest{DiskType: "nvme", SizeGB: 2000, Count: 2}); err != nil || d != nil {
		t.Fatalf("CreateDisk: %+v %v", d, err)
	}
	if p, err := CreateProcessor(ctx, c, "host1", types.ProcessorRequest{Handle: "CPU1", Cores: 16, Threads: 32}); err != nil || p != nil {
		t.Fatalf("CreateProcessor: %+v %v", p, err)
	}
	want := []string{"/interfaces/host1", "/memory/host1", "/disks/host1", "/processors/host1"}
	got := seen()
	if len(got) != len(want) {
		t.Fatalf("got %d requests", len(got))
	}
	for i, r := range got {
		if r.method != http.MethodPost || r.uri != want[i] {
			t.Fatalf("request %d = %s %s, want POST %s", i, r.method, r.uri, want[i])
		}
	}
}

func TestVlansMovesVersion(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	c, _ := recorder(t, `[{"vlan_id":1150,"gateway":"10.1.1.254","ip_free":500}]`)
	vlans, err := ListVlans(ctx, c)
	if err != nil || len(vlans) != 1 || vlans[0].IPFree != 500 {
		t.Fatalf("ListVlans: %+v %v", vlans, err)
	}

	c, seen := recorder(t, `[{"host":"host1","from_cloud":"cloud01","to_cloud":"cloud02"}]`)
	moves, err := ListMoves(ctx, c, "2024-05-01")
	if err != nil || len(moves) != 1 || moves[0].ToCloud != "cloud02" {
		t.Fatalf("ListMoves: %+v %v", moves, err)
	}
	if got := seen()[0].uri; got != "/moves?date=2024-05-01" {
		t.Fatalf("uri = %s", got)
	}

	c, _ = recorder(t, `{"result":"QUADS version 2.0.0 gamma"}`)
	v, err := GetVersion(ctx, c)
	if err != nil || v.Result == "" {
		t.Fatalf("GetVersion: %+v %v", v, err)
	}

	c, _ = recorder(t, `{}`)
	if _, err := GetVersion(ctx, c); err == nil {
		t.Fatal("empty version body should fail validation")
	}
}
