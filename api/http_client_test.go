package api

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

func TestHTTPClient_Get_Success(t *testing.T) {
	// Mock server setup
	mockResponse := map[string]string{"message": "success"}
	mockServer := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/search" {
			t.Errorf("Expected endpoint '/search', got '%s'", r.URL.Path)
		}
		if r.URL.Query().Get("q") != "matunga" {
			t.Errorf("Expected query param q=matunga, got '%s'", r.URL.Query().Get("q"))
		}
		if r.Header.Get("User-Agent") != "TestAgent/1.0" {
			t.Errorf("Expected User-Agent header, got '%s'", r.Header.Get("User-Agent"))
		}

		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(mockResponse)
	}))
	defer mockServer.Close()

	// Test setup
	client := NewHTTPClient(mockServer.URL, "TestAgent/1.0", 5*time.Second)

	// Act
	body, err := client.Get("/search", map[string][]string{"q": {"matunga"}})

	// Assert
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	var response map[string]string
	if err := json.Unmarshal(body, &response); err != nil {
		t.Fatalf("Failed to unmarshal body: %v", err)
	}
	if response["message"] != "success" {
		t.Errorf("Expected response message to be 'success', got '%s'", response["message"])
	}
}

func TestHTTPClient_PostForm_Success(t *testing.T) {
	mockServer := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != "POST" {
			t.Errorf("Expected POST, got %s", r.Method)
		}
		if err := r.ParseForm(); err != nil {
			t.Fatalf("Failed to parse form: %v", err)
		}
		if r.PostForm.Get("data") != "some query" {
			t.Errorf("Expected form field data='some query', got '%s'", r.PostForm.Get("data"))
		}

		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"elements":[]}`))
	}))
	defer mockServer.Close()

	client := NewHTTPClient("", "TestAgent/1.0", 5*time.Second)

	// Act
	body, err := client.PostForm(mockServer.URL, map[string][]string{"data": {"some query"}})

	// Assert
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if string(body) != `{"elements":[]}` {
		t.Errorf("Unexpected body: %s", string(body))
	}
}

func TestHTTPClient_Get_Failure(t *testing.T) {
	// Mock server setup
	mockServer := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		w.Write([]byte(`{"error": "bad request"}`))
	}))
	defer mockServer.Close()

	client := NewHTTPClient(mockServer.URL, "", 5*time.Second)

	// Act
	_, err := client.Get("/anything", nil)

	// Assert
	if err == nil {
		t.Fatalf("Expected an error, got nil")
	}

	expectedError := "unexpected status code: 400 Bad Request"
	if err.Error() != expectedError {
		t.Errorf("Expected error '%s', got '%s'", expectedError, err.Error())
	}
}
