package store

import (
	"context"
	"errors"
	"net/http"
	"testing"
)

func TestClientProblemDetail(t *testing.T) {
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/problem+json")
		w.WriteHeader(http.StatusNotFound)
		w.Write([]byte(`{"type":"not-found","status":404,"detail":"project not found"}`))
	}))

	err := client.Get(context.Background(), "/projects/nope", &struct{}{})
	var apiErr *APIError
	if !errors.As(err, &apiErr) {
		t.Fatalf("expected *APIError, got %T", err)
	}
	if apiErr.Status != http.StatusNotFound {
		t.Errorf("expected status 404, got %d", apiErr.Status)
	}
	if apiErr.Message != "project not found" {
		t.Errorf("expected problem detail extracted, got %q", apiErr.Message)
	}
}

func TestClientContextCancellation(t *testing.T) {
	block := make(chan struct{})
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		<-r.Context().Done()
		close(block)
	}))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if err := client.Get(ctx, "/projects", &struct{}{}); err == nil {
		t.Fatal("expected error from cancelled context")
	}
}

func TestBaseURLFromEnv(t *testing.T) {
	tests := []struct {
		name string
		env  map[string]string
		want string
	}{
		{
			name: "default",
			want: "http://localhost:8080",
		},
		{
			name: "dev url",
			env:  map[string]string{"PORTFOLIO_API_URL": "http://localhost:9999"},
			want: "http://localhost:9999",
		},
		{
			name: "prod url",
			env: map[string]string{
				"PORTFOLIO_ENV":          "prod",
				"PORTFOLIO_API_URL":      "http://localhost:9999",
				"PORTFOLIO_API_URL_PROD": "https://api.example.com",
			},
			want: "https://api.example.com",
		},
		{
			name: "prod env without prod url falls back",
			env: map[string]string{
				"PORTFOLIO_ENV":     "prod",
				"PORTFOLIO_API_URL": "http://localhost:9999",
			},
			want: "http://localhost:9999",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for _, k := range []string{"PORTFOLIO_ENV", "PORTFOLIO_API_URL", "PORTFOLIO_API_URL_PROD"} {
				t.Setenv(k, "")
			}
			for k, v := range tt.env {
				t.Setenv(k, v)
			}
			if got := BaseURLFromEnv(); got != tt.want {
				t.Errorf("BaseURLFromEnv() = %q, want %q", got, tt.want)
			}
		})
	}
}
