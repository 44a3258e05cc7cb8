package boj

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestGetDataset_Success(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/dataset.json" {
			t.Errorf("path = %q, want /dataset.json", r.URL.Path)
		}
		if got := r.URL.Query().Get("name"); got != "tankan" {
			t.Errorf("name = %q, want tankan", got)
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{
			"name": "tankan",
			"shape": [120, 3],
			"columns": ["date", "large_mfg", "large_nonmfg"],
			"date_range": ["1995-03", "2025-06"],
			"rows": [
				{"date": "2025-03", "large_mfg": 12, "large_nonmfg": 33},
				{"date": "2025-06", "large_mfg": 13, "large_nonmfg": 34}
			]
		}`))
	}))
	defer server.Close()

	client := NewClient(server.URL)
	dataset, err := client.GetDataset(context.Background(), "tankan")
	if err != nil {
		t.Fatalf("GetDataset() returned unexpected error: %v", err)
	}
	if dataset == nil {
		t.Fatal("GetDataset() returned nil dataset")
	}

	if dataset.Name != "tankan" {
		t.Errorf("Name = %q, want tankan", dataset.Name)
	}
	if len(dataset.Shape) != 2 || dataset.Shape[0] != 120 {
		t.Errorf("Shape = %v, want [120 3]", dataset.Shape)
	}
	if len(dataset.Columns) != 3 {
		t.Errorf("Columns = %v", dataset.Columns)
	}
	if len(dataset.Sample) != 2 {
		t.Errorf("len(Sample) = %d, want 2", len(dataset.Sample))
	}
}

func TestGetDataset_Unknown(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{}`))
	}))
	defer server.Close()

	client := NewClient(server.URL)
	dataset, err := client.GetDataset(context.Background(), "nonexistent")
	if err != nil {
		t.Fatalf("GetDataset() returned unexpected error: %v", err)
	}
	if dataset != nil {
		t.Errorf("GetDataset() = %+v, want nil for unknown dataset", dataset)
	}
}

func TestGetDataset_ServerError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer server.Close()

	client := NewClient(server.URL)
	_, err := client.GetDataset(context.Background(), "tankan")
	if err == nil {
		t.Error("GetDataset() expected error for status 502, got nil")
	}
}
