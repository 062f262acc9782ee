package iplookup

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClientBuilder_Validation(t *testing.T) {
	_, err := NewClientBuilder().WithEndpoint("").Build()
	assert.Error(t, err)

	_, err = NewClientBuilder().WithTimeout(0).Build()
	assert.Error(t, err)

	client, err := NewClientBuilder().Build()
	require.NoError(t, err)
	assert.NotNil(t, client)
}

func TestLookup_Success(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/8.8.8.8", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{
			"status": "success",
			"query": "8.8.8.8",
			"country": "United States",
			"countryCode": "US",
			"city": "Ashburn",
			"lat": 39.03,
			"lon": -77.5,
			"isp": "Google LLC"
		}`))
	}))
	defer server.Close()

	client, err := NewClientBuilder().WithEndpoint(server.URL).Build()
	require.NoError(t, err)

	info, err := client.Lookup(context.Background(), "8.8.8.8")
	require.NoError(t, err)

	assert.Equal(t, "United States", info.Country)
	assert.Equal(t, "US", info.CountryCode)
	assert.Equal(t, "Google LLC", info.ISP)
	assert.InDelta(t, 39.03, info.Lat, 0.001)
}

func TestLookup_SelfQuery(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/", r.URL.Path)
		_, _ = w.Write([]byte(`{"status": "success", "query": "203.0.113.7"}`))
	}))
	defer server.Close()

	client, err := NewClientBuilder().WithEndpoint(server.URL).Build()
	require.NoError(t, err)

	info, err := client.Lookup(context.Background(), "")
	require.NoError(t, err)
	assert.Equal(t, "203.0.113.7", info.Query)
}

func TestLookup_APIFailure(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"status": "fail", "message": "invalid query", "query": "bogus"}`))
	}))
	defer server.Close()

	client, err := NewClientBuilder().WithEndpoint(server.URL).Build()
	require.NoError(t, err)

	_, err = client.Lookup(context.Background(), "bogus")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid query")
}

func TestLookup_HTTPError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
	}))
	defer server.Close()

	client, err := NewClientBuilder().WithEndpoint(server.URL).Build()
	require.NoError(t, err)

	_, err = client.Lookup(context.Background(), "8.8.8.8")
	assert.Error(t, err)
}

func TestLookup_ContextCancelled(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(200 * time.Millisecond)
	}))
	defer server.Close()

	client, err := NewClientBuilder().WithEndpoint(server.URL).Build()
	require.NoError(t, err)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer cancel()

	_, err = client.Lookup(ctx, "8.8.8.8")
	assert.Error(t, err)
}
