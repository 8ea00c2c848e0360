package mpesa_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"printshop-backend/internal/mpesa"
)

func TestClient_Verify(t *testing.T) {
	var gotRef, gotKey string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "POST", r.Method)
		assert.Equal(t, "/verify", r.URL.Path)
		gotKey = r.Header.Get("x-api-key")

		var body struct {
			Reference string `json:"reference"`
		}
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		gotRef = body.Reference

		json.NewEncoder(w).Encode(map[string]bool{"valid": true})
	}))
	defer server.Close()

	client := mpesa.NewClient(server.URL, "test-key")
	valid, err := client.Verify("ABC123")
	require.NoError(t, err)

	assert.True(t, valid)
	assert.Equal(t, "ABC123", gotRef)
	assert.Equal(t, "test-key", gotKey)
}

func TestClient_Verify_Rejected(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]bool{"valid": false})
	}))
	defer server.Close()

	client := mpesa.NewClient(server.URL, "test-key")
	valid, err := client.Verify("BOGUS")
	require.NoError(t, err)
	assert.False(t, valid)
}

func TestClient_Verify_Non200(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "upstream unavailable", http.StatusBadGateway)
	}))
	defer server.Close()

	client := mpesa.NewClient(server.URL, "test-key")
	_, err := client.Verify("ABC123")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "status 502")
}

func TestClient_Verify_TrailingSlashBaseURL(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/verify", r.URL.Path)
		json.NewEncoder(w).Encode(map[string]bool{"valid": true})
	}))
	defer server.Close()

	client := mpesa.NewClient(server.URL+"/", "test-key")
	valid, err := client.Verify("ABC123")
	require.NoError(t, err)
	assert.True(t, valid)
}
