// Copyright (c) 2026 SelfHost Hub. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package newsletter_test

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taibuivan/selfhosthub/internal/newsletter"
)

func newTestServer(t *testing.T) (*httptest.Server, *fakeRepository) {
	t.Helper()
	repo := &fakeRepository{}
	service := newsletter.NewService(repo, slog.Default())
	handler := newsletter.NewHandler(service)

	server := httptest.NewServer(handler.Routes())
	t.Cleanup(server.Close)
	return server, repo
}

/*
TestSubscribe_JSONBody verifies the 201 path with a JSON payload.
*/
func TestSubscribe_JSONBody(t *testing.T) {
	server, repo := newTestServer(t)

	response, err := http.Post(server.URL+"/subscribe", "application/json",
		strings.NewReader(`{"email": "person@example.com"}`))
	require.NoError(t, err)
	defer response.Body.Close()

	assert.Equal(t, http.StatusCreated, response.StatusCode)

	body := map[string]string{}
	require.NoError(t, json.NewDecoder(response.Body).Decode(&body))
	assert.Equal(t, "Subscription successful", body["message"])
	assert.Len(t, repo.subscribers, 1)
}

/*
TestSubscribe_QueryParamFallback verifies the legacy query-parameter form.
*/
func TestSubscribe_QueryParamFallback(t *testing.T) {
	server, repo := newTestServer(t)

	response, err := http.Post(server.URL+"/subscribe?email=person%40example.com", "application/json", nil)
	require.NoError(t, err)
	defer response.Body.Close()

	assert.Equal(t, http.StatusCreated, response.StatusCode)
	assert.Len(t, repo.subscribers, 1)
}

/*
TestSubscribe_Duplicate verifies the 400 response with its detail message.
*/
func TestSubscribe_Duplicate(t *testing.T) {
	server, _ := newTestServer(t)

	first, err := http.Post(server.URL+"/subscribe", "application/json",
		strings.NewReader(`{"email": "person@example.com"}`))
	require.NoError(t, err)
	first.Body.Close()
	require.Equal(t, http.StatusCreated, first.StatusCode)

	second, err := http.Post(server.URL+"/subscribe", "application/json",
		strings.NewReader(`{"email": "person@example.com"}`))
	require.NoError(t, err)
	defer second.Body.Close()

	assert.Equal(t, http.StatusBadRequest, second.StatusCode)

	body := map[string]any{}
	require.NoError(t, json.NewDecoder(second.Body).Decode(&body))
	assert.Equal(t, "Email already subscribed", body["detail"])
}

/*
TestSubscribe_InvalidJSON verifies the 400 response for an unparseable body
with no query-parameter fallback to save it.
*/
func TestSubscribe_InvalidJSON(t *testing.T) {
	server, repo := newTestServer(t)

	response, err := http.Post(server.URL+"/subscribe", "application/json",
		strings.NewReader(`{"email": `))
	require.NoError(t, err)
	defer response.Body.Close()

	assert.Equal(t, http.StatusBadRequest, response.StatusCode)
	assert.Empty(t, repo.subscribers)

	body := map[string]any{}
	require.NoError(t, json.NewDecoder(response.Body).Decode(&body))
	assert.Equal(t, "Invalid JSON payload", body["detail"])
}

/*
TestSubscribe_MalformedEmail verifies the 400 validation response.
*/
func TestSubscribe_MalformedEmail(t *testing.T) {
	server, repo := newTestServer(t)

	response, err := http.Post(server.URL+"/subscribe", "application/json",
		strings.NewReader(`{"email": "not-an-email"}`))
	require.NoError(t, err)
	defer response.Body.Close()

	assert.Equal(t, http.StatusBadRequest, response.StatusCode)
	assert.Empty(t, repo.subscribers)
}
