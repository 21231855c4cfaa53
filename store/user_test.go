package store

import (
	"context"
	"encoding/json"
	"net/http"
	"sync/atomic"
	"testing"

	"portfolio/internal/domain/models"
	"portfolio/internal/domain/services"
)

func TestUserStoreFetchAll(t *testing.T) {
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/users" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		json.NewEncoder(w).Encode([]models.User{{ID: "u1", Name: "Ada Example"}})
	}))

	store := NewUserStore(client)
	if err := store.FetchAll(context.Background()); err != nil {
		t.Fatalf("FetchAll: %v", err)
	}

	state := store.Snapshot()
	if len(state.Items) != 1 || state.Items[0].Name != "Ada Example" {
		t.Errorf("expected owner profile, got %+v", state.Items)
	}
}

func TestUserStoreUpdateReconciles(t *testing.T) {
	var fetches atomic.Int32
	name := "New Name"

	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch {
		case r.Method == http.MethodPut && r.URL.Path == "/admin/user/u1":
			json.NewEncoder(w).Encode(models.User{ID: "u1", Name: name})
		case r.Method == http.MethodGet && r.URL.Path == "/users":
			fetches.Add(1)
			json.NewEncoder(w).Encode([]models.User{{ID: "u1", Name: name}})
		default:
			t.Errorf("unexpected request: %s %s", r.Method, r.URL.Path)
		}
	}))

	store := NewUserStore(client)
	err := store.Update(context.Background(), "u1", &services.UpdateUserRequest{Name: &name})
	if err != nil {
		t.Fatalf("Update: %v", err)
	}

	if got := fetches.Load(); got != 1 {
		t.Errorf("expected exactly 1 reconcile fetch, got %d", got)
	}
	state := store.Snapshot()
	if len(state.Items) != 1 || state.Items[0].Name != name {
		t.Errorf("expected updated profile, got %+v", state.Items)
	}
}

func TestUserStoreFetchFailure(t *testing.T) {
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))

	store := NewUserStore(client)
	if err := store.FetchAll(context.Background()); err == nil {
		t.Fatal("expected error")
	}
	if got := store.Snapshot().Err; got != "Failed to fetch user data" {
		t.Errorf("expected fixed error, got %q", got)
	}
}
