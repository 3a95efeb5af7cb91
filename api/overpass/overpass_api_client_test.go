package overpass

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"bizsense-server/api"
)

func TestBuildQuery(t *testing.T) {
	query := BuildQuery(19.0760, 72.8777, 5000, []string{"amenity", "shop"})

	for _, want := range []string{
		"[out:json]",
		`node["amenity"](around:5000,`,
		`way["amenity"](around:5000,`,
		`relation["amenity"](around:5000,`,
		`node["shop"](around:5000,`,
		"out center;",
	} {
		if !strings.Contains(query, want) {
			t.Errorf("Query missing %q:\n%s", want, query)
		}
	}
}

func TestGetPOIsNearby_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != "POST" {
			t.Errorf("expected POST; got %s", r.Method)
		}
		if err := r.ParseForm(); err != nil {
			t.Fatalf("failed to parse form: %v", err)
		}
		if !strings.Contains(r.PostForm.Get("data"), `node["amenity"]`) {
			t.Errorf("query not forwarded in data field: %s", r.PostForm.Get("data"))
		}

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{
			"version": 0.6,
			"generator": "test",
			"elements": [
				{"type": "node", "id": 1, "lat": 19.0768, "lon": 72.8781,
				 "tags": {"amenity": "cafe"}}
			]
		}`))
	}))
	defer srv.Close()

	client := NewOverpassApiClient(
		[]string{srv.URL},
		api.NewHTTPClient("", "TestAgent/1.0", 5*time.Second))

	// Act
	response, err := client.GetPOIsNearby(19.0760, 72.8777, 5000, []string{"amenity"})

	// Assert
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if len(response.Elements) != 1 {
		t.Fatalf("Expected 1 element, got %d", len(response.Elements))
	}
	if response.Elements[0].Category() != "cafe" {
		t.Errorf("Expected category cafe, got %s", response.Elements[0].Category())
	}
}

func TestGetPOIsNearby_FailsOverOnRemark(t *testing.T) {
	// First endpoint reports a rate-limit remark; the second answers.
	limited := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"remark": "runtime error: load too high", "elements": []}`))
	}))
	defer limited.Close()

	healthy := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"generator": "healthy", "elements": []}`))
	}))
	defer healthy.Close()

	client := NewOverpassApiClient(
		[]string{limited.URL, healthy.URL},
		api.NewHTTPClient("", "TestAgent/1.0", 5*time.Second))

	response, err := client.GetPOIsNearby(19.0760, 72.8777, 5000, []string{"amenity"})
	if err != nil {
		t.Fatalf("Expected failover to succeed, got %v", err)
	}
	if response.Generator != "healthy" {
		t.Errorf("Expected the healthy endpoint's response, got %+v", response)
	}
}

func TestGetPOIsNearby_FailsOverOnInvalidJSON(t *testing.T) {
	broken := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`<html>gateway timeout</html>`))
	}))
	defer broken.Close()

	healthy := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"generator": "healthy", "elements": []}`))
	}))
	defer healthy.Close()

	client := NewOverpassApiClient(
		[]string{broken.URL, healthy.URL},
		api.NewHTTPClient("", "TestAgent/1.0", 5*time.Second))

	response, err := client.GetPOIsNearby(19.0760, 72.8777, 5000, []string{"amenity"})
	if err != nil {
		t.Fatalf("Expected failover to succeed, got %v", err)
	}
	if response.Generator != "healthy" {
		t.Errorf("Expected the healthy endpoint's response, got %+v", response)
	}
}

func TestGetPOIsNearby_AllEndpointsFail(t *testing.T) {
	limited := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"remark": "rate limited", "elements": []}`))
	}))
	defer limited.Close()

	client := NewOverpassApiClient(
		[]string{limited.URL},
		api.NewHTTPClient("", "TestAgent/1.0", 5*time.Second))

	_, err := client.GetPOIsNearby(19.0760, 72.8777, 5000, []string{"amenity"})
	if err == nil {
		t.Fatal("Expected an error when every endpoint fails, got nil")
	}
	if !strings.Contains(err.Error(), "rate limited") {
		t.Errorf("Expected the last remark in the error, got %v", err)
	}
}
