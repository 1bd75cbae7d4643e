package testutil

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
)

const FakeServiceTypeID = "1397044"

// FakePCO is an in-process stand-in for the Planning Center Services API.
// Zero status fields mean 200 OK. Fields may be changed between calls.
type FakePCO struct {
	mu sync.Mutex

	Plans       []Record
	TeamMembers []Record
	Items       []Record

	PlansStatus       int
	TeamMembersStatus int
	ItemsStatus       int

	// ItemsBody, when set, is written verbatim instead of Items.
	ItemsBody string

	// TeamMembersNext advertises a second page of team members.
	TeamMembersNext bool

	requests []*http.Request
	server   *httptest.Server
}

// NewFakePCO starts a fake API server that is closed when the test ends.
func NewFakePCO(t *testing.T) *FakePCO {
	t.Helper()
	f := &FakePCO{}
	f.server = httptest.NewServer(f)
	t.Cleanup(f.server.Close)
	return f
}

// URL is the base URL to configure the client with.
func (f *FakePCO) URL() string {
	return f.server.URL
}

// Requests returns the requests received so far.
func (f *FakePCO) Requests() []*http.Request {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]*http.Request, len(f.requests))
	copy(out, f.requests)
	return out
}

// RequestPaths returns the URL paths received so far, in order.
func (f *FakePCO) RequestPaths() []string {
	var paths []string
	for _, r := range f.Requests() {
		paths = append(paths, r.URL.Path)
	}
	return paths
}

func (f *FakePCO) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.requests = append(f.requests, r.Clone(r.Context()))

	prefix := "/services/v2/service_types/" + FakeServiceTypeID + "/plans"
	rest, ok := strings.CutPrefix(r.URL.Path, prefix)
	if !ok || r.Method != http.MethodGet {
		http.NotFound(w, r)
		return
	}

	switch {
	case rest == "":
		f.write(w, f.PlansStatus, f.Plans, false)
	case strings.HasSuffix(rest, "/team_members"):
		f.write(w, f.TeamMembersStatus, f.TeamMembers, f.TeamMembersNext)
	case strings.HasSuffix(rest, "/items"):
		if f.ItemsBody != "" && statusOrOK(f.ItemsStatus) == http.StatusOK {
			w.Header().Set("Content-Type", "application/json")
			w.Write([]byte(f.ItemsBody))
			return
		}
		f.write(w, f.ItemsStatus, f.Items, false)
	default:
		http.NotFound(w, r)
	}
}

func (f *FakePCO) write(w http.ResponseWriter, status int, data []Record, next bool) {
	status = statusOrOK(status)
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if status != http.StatusOK {
		json.NewEncoder(w).Encode(map[string]any{
			"errors": []map[string]any{{"status": http.StatusText(status)}},
		})
		return
	}
	if data == nil {
		data = []Record{}
	}
	links := map[string]any{}
	if next {
		links["next"] = f.server.URL + "/next-page"
	}
	json.NewEncoder(w).Encode(map[string]any{
		"data":  data,
		"links": links,
	})
}

func statusOrOK(status int) int {
	if status == 0 {
		return http.StatusOK
	}
	return status
}
