package store

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"portfolio/internal/domain/models"
	"portfolio/internal/domain/services"
)

func newTestClient(t *testing.T, handler http.Handler) (*Client, *httptest.Server) {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	client, err := NewClient(server.URL)
	if err != nil {
		t.Fatalf("NewClient: %v", err)
	}
	return client, server
}

func TestProjectStoreFetchAll(t *testing.T) {
	projects := []models.Project{
		{ID: "p1", Title: "Realtime Dashboard", Featured: true},
		{ID: "p2", Title: "CLI Notebook"},
	}

	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet || r.URL.Path != "/projects" {
			t.Errorf("unexpected request: %s %s", r.Method, r.URL.Path)
		}
		json.NewEncoder(w).Encode(projects)
	}))

	store := NewProjectStore(client)
	if err := store.FetchAll(context.Background()); err != nil {
		t.Fatalf("FetchAll: %v", err)
	}

	state := store.Snapshot()
	if len(state.Items) != 2 {
		t.Fatalf("expected 2 projects, got %d", len(state.Items))
	}
	if state.Items[0].Title != "Realtime Dashboard" {
		t.Errorf("expected first project title %q, got %q", "Realtime Dashboard", state.Items[0].Title)
	}
	if state.IsLoading {
		t.Error("expected IsLoading false after fetch settled")
	}
	if state.Err != "" {
		t.Errorf("expected empty error, got %q", state.Err)
	}
}

func TestProjectStoreFetchFailureKeepsItems(t *testing.T) {
	var failing atomic.Bool

	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if failing.Load() {
			w.WriteHeader(http.StatusInternalServerError)
			return
		}
		json.NewEncoder(w).Encode([]models.Project{{ID: "p1", Title: "Kept"}})
	}))

	store := NewProjectStore(client)
	if err := store.FetchAll(context.Background()); err != nil {
		t.Fatalf("first FetchAll: %v", err)
	}

	failing.Store(true)
	if err := store.FetchAll(context.Background()); err == nil {
		t.Fatal("expected error from failing fetch")
	}

	state := store.Snapshot()
	if len(state.Items) != 1 || state.Items[0].Title != "Kept" {
		t.Errorf("expected prior items to survive failed fetch, got %+v", state.Items)
	}
	if state.Err != "Failed to fetch projects" {
		t.Errorf("expected fixed error message, got %q", state.Err)
	}
	if state.IsLoading {
		t.Error("expected IsLoading false after failed fetch")
	}
}

// Create must discard the mutation response and reconcile with exactly one
// follow-up GET /projects.
func TestProjectStoreCreateReconciles(t *testing.T) {
	var listCalls, createCalls atomic.Int32
	full := []models.Project{
		{ID: "p1", Title: "Existing"},
		{ID: "p2", Title: "X"},
	}

	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch {
		case r.Method == http.MethodPost && r.URL.Path == "/projects/create":
			createCalls.Add(1)
			w.WriteHeader(http.StatusCreated)
			json.NewEncoder(w).Encode(map[string]models.Project{
				"project": {ID: "p2", Title: "X"},
			})
		case r.Method == http.MethodGet && r.URL.Path == "/projects":
			listCalls.Add(1)
			json.NewEncoder(w).Encode(full)
		default:
			t.Errorf("unexpected request: %s %s", r.Method, r.URL.Path)
			w.WriteHeader(http.StatusNotFound)
		}
	}))

	store := NewProjectStore(client)
	err := store.Create(context.Background(), &services.CreateProjectRequest{Title: "X", Description: "d"})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	if got := createCalls.Load(); got != 1 {
		t.Errorf("expected 1 create call, got %d", got)
	}
	if got := listCalls.Load(); got != 1 {
		t.Errorf("expected exactly 1 reconcile fetch, got %d", got)
	}

	state := store.Snapshot()
	if len(state.Items) != 2 {
		t.Fatalf("expected reconciled list of 2, got %d", len(state.Items))
	}
	if state.IsLoading {
		t.Error("expected IsLoading false")
	}
	if state.Err != "" {
		t.Errorf("expected empty error, got %q", state.Err)
	}
}

func TestProjectStoreCreateFailureLeavesItems(t *testing.T) {
	var listCalls atomic.Int32

	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method == http.MethodGet {
			listCalls.Add(1)
			json.NewEncoder(w).Encode([]models.Project{{ID: "p1"}})
			return
		}
		w.WriteHeader(http.StatusBadRequest)
	}))

	store := NewProjectStore(client)
	if err := store.FetchAll(context.Background()); err != nil {
		t.Fatalf("FetchAll: %v", err)
	}

	if err := store.Create(context.Background(), &services.CreateProjectRequest{}); err == nil {
		t.Fatal("expected create to fail")
	}

	if got := listCalls.Load(); got != 1 {
		t.Errorf("failed create must not trigger a reconcile fetch, got %d list calls", got)
	}
	state := store.Snapshot()
	if len(state.Items) != 1 {
		t.Errorf("expected prior items unchanged, got %d", len(state.Items))
	}
	if state.Err != "Failed to create project" {
		t.Errorf("expected fixed create error, got %q", state.Err)
	}
}

// Concurrent fetches collapse into a single request.
func TestProjectStoreConcurrentFetchCollapses(t *testing.T) {
	var calls atomic.Int32
	started := make(chan struct{})
	release := make(chan struct{})

	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if calls.Add(1) == 1 {
			close(started)
		}
		<-release
		json.NewEncoder(w).Encode([]models.Project{{ID: "p1"}})
	}))

	store := NewProjectStore(client)

	var wg sync.WaitGroup
	wg.Add(2)
	go func() {
		defer wg.Done()
		store.FetchAll(context.Background())
	}()

	<-started
	go func() {
		defer wg.Done()
		store.FetchAll(context.Background())
	}()

	// Give the second fetch a moment to join the in-flight request, then
	// let the handler respond.
	time.Sleep(50 * time.Millisecond)
	close(release)
	wg.Wait()

	if got := calls.Load(); got != 1 {
		t.Errorf("expected concurrent fetches to collapse to 1 request, got %d", got)
	}
	if got := len(store.Snapshot().Items); got != 1 {
		t.Errorf("expected 1 project, got %d", got)
	}
}

// A reconcile fetch after a successful create must hit the network itself,
// not join a collection fetch that was already in flight before the
// mutation committed. And when that older fetch eventually lands, its
// pre-mutation list must not overwrite the reconciled one.
func TestProjectStoreReconcileIgnoresStaleFlight(t *testing.T) {
	var listCalls atomic.Int32
	staleStarted := make(chan struct{})
	releaseStale := make(chan struct{})

	preMutation := []models.Project{{ID: "p1", Title: "Existing"}}
	postMutation := []models.Project{
		{ID: "p1", Title: "Existing"},
		{ID: "p2", Title: "X"},
	}

	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch {
		case r.Method == http.MethodPost && r.URL.Path == "/projects/create":
			w.WriteHeader(http.StatusCreated)
			json.NewEncoder(w).Encode(map[string]models.Project{"project": postMutation[1]})
		case r.Method == http.MethodGet && r.URL.Path == "/projects":
			if listCalls.Add(1) == 1 {
				close(staleStarted)
				<-releaseStale
				json.NewEncoder(w).Encode(preMutation)
				return
			}
			json.NewEncoder(w).Encode(postMutation)
		default:
			t.Errorf("unexpected request: %s %s", r.Method, r.URL.Path)
		}
	}))

	store := NewProjectStore(client)

	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		store.FetchAll(context.Background())
	}()
	<-staleStarted

	// Create runs start to finish while the first fetch is still blocked.
	if err := store.Create(context.Background(), &services.CreateProjectRequest{Title: "X", Description: "d"}); err != nil {
		t.Fatalf("Create: %v", err)
	}

	if got := len(store.Snapshot().Items); got != 2 {
		t.Fatalf("expected reconciled list of 2 after create, got %d", got)
	}
	if got := listCalls.Load(); got != 2 {
		t.Errorf("reconcile must issue its own fetch, got %d list calls", got)
	}

	close(releaseStale)
	wg.Wait()

	state := store.Snapshot()
	if len(state.Items) != 2 {
		t.Errorf("stale fetch must not overwrite the reconciled list, got %d items", len(state.Items))
	}
	if state.Err != "" {
		t.Errorf("expected empty error, got %q", state.Err)
	}
}

func TestProjectStoreFetchFeatured(t *testing.T) {
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/projects/featured-projects" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		json.NewEncoder(w).Encode([]models.Project{{ID: "p1", Featured: true}})
	}))

	store := NewProjectStore(client)
	if err := store.FetchFeatured(context.Background()); err != nil {
		t.Fatalf("FetchFeatured: %v", err)
	}

	state := store.FeaturedSnapshot()
	if len(state.Items) != 1 || !state.Items[0].Featured {
		t.Errorf("expected one featured project, got %+v", state.Items)
	}
	if got := len(store.Snapshot().Items); got != 0 {
		t.Errorf("featured fetch must not touch the full list, got %d items", got)
	}
}
