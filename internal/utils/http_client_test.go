package utils

import (
	"testing"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewHTTPClient_NotNil(t *testing.T) {
	client := NewHTTPClient("http://localhost:8080", 0)

	require.NotNil(t, client)
	require.NotNil(t, client.Client)
}

func TestNewHTTPClient_Type(t *testing.T) {
	client := NewHTTPClient("http://localhost:8080", 0)

	// Ensure the embedded client is actually a *resty.Client
	_, ok := interface{}(client.Client).(*resty.Client)
	assert.True(t, ok, "expected embedded client to be *resty.Client, got %T", client.Client)
}

func TestNewHTTPClient_Independence(t *testing.T) {
	client1 := NewHTTPClient("http://localhost:8080", 0)
	client2 := NewHTTPClient("http://localhost:8080", 0)

	assert.NotSame(t, client1.Client, client2.Client)
}

func TestNewHTTPClient_BaseURLAndHeaders(t *testing.T) {
	client := NewHTTPClient("http://example.com:9000", 0)

	assert.Equal(t, "http://example.com:9000", client.BaseURL)
	assert.Equal(t, "application/json", client.Header.Get("Accept"))
	assert.Equal(t, 0, client.RetryCount)
}

func TestNewHTTPClient_Timeout(t *testing.T) {
	client := NewHTTPClient("http://localhost:8080", 3*time.Second)
	assert.Equal(t, 3*time.Second, client.GetClient().Timeout)

	noDeadline := NewHTTPClient("http://localhost:8080", 0)
	assert.Zero(t, noDeadline.GetClient().Timeout)
}
