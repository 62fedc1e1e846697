package api

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"

	"herbtrack/internal/client/models"
)

func TestLogin_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "/login", r.URL.Path)
		require.Equal(t, "application/json", r.Header.Get("Content-Type"))

		var body map[string]string
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		require.Equal(t, "alice", body["username"])
		require.Equal(t, "secret", body["password"])

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"access_token":"tok-1","user":{"id":7,"username":"alice","email":"a@b.c"}}`))
	}))
	defer srv.Close()

	c := NewHTTPClient(srv.URL)
	sess, err := c.Login(context.Background(), "alice", "secret")
	require.NoError(t, err)
	require.Equal(t, "tok-1", sess.Token)
	require.Equal(t, int64(7), sess.User.ID)
	require.Equal(t, "alice", sess.User.Username)
}

func TestBearerTokenAttached(t *testing.T) {
	var gotAuth string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		_, _ = w.Write([]byte(`[]`))
	}))
	defer srv.Close()

	c := NewHTTPClient(srv.URL)

	_, err := c.ListEntries(context.Background())
	require.NoError(t, err)
	require.Empty(t, gotAuth)

	c.SetToken("tok-1")
	_, err = c.ListEntries(context.Background())
	require.NoError(t, err)
	require.Equal(t, "Bearer tok-1", gotAuth)

	c.ClearToken()
	_, err = c.ListEntries(context.Background())
	require.NoError(t, err)
	require.Empty(t, gotAuth)
}

func TestErrorMessageExtracted(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte(`{"error":"username already registered"}`))
	}))
	defer srv.Close()

	c := NewHTTPClient(srv.URL)
	err := c.Register(context.Background(), "alice", "a@b.c", "secret")
	require.Error(t, err)

	var apiErr *Error
	require.ErrorAs(t, err, &apiErr)
	require.Equal(t, "username already registered", apiErr.Message)
}

func TestErrorFallbackMessage(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte(`<html>gateway error</html>`))
	}))
	defer srv.Close()

	c := NewHTTPClient(srv.URL)
	_, err := c.Stats(context.Background())
	require.Error(t, err)

	var apiErr *Error
	require.ErrorAs(t, err, &apiErr)
	require.Equal(t, genericMessage, apiErr.Message)
}

func TestTransportErrorIsAPIError(t *testing.T) {
	c := NewHTTPClient("http://127.0.0.1:1")
	_, err := c.ListEntries(context.Background())
	require.Error(t, err)

	var apiErr *Error
	require.ErrorAs(t, err, &apiErr)
	require.NotEmpty(t, apiErr.Message)
}

func TestDeleteEntry_Path(t *testing.T) {
	var gotPath, gotMethod string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotMethod = r.Method
		_, _ = w.Write([]byte(`{"message":"Entry deleted successfully"}`))
	}))
	defer srv.Close()

	c := NewHTTPClient(srv.URL)
	require.NoError(t, c.DeleteEntry(context.Background(), 42))
	require.Equal(t, http.MethodDelete, gotMethod)
	require.Equal(t, "/entries/42", gotPath)
}

func TestCreateEntry_DecodesServerFields(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var req CreateEntryRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		require.Equal(t, "5", req.Puffs)
		require.Equal(t, 80.0, req.THCPercent)

		_, _ = w.Write([]byte(`{"id":12,"method":"vape","puffs":"5","thc_percent":80,"thc_mg":10}`))
	}))
	defer srv.Close()

	c := NewHTTPClient(srv.URL)
	entry, err := c.CreateEntry(context.Background(), &CreateEntryRequest{Method: "vape", Puffs: "5", THCPercent: 80})
	require.NoError(t, err)
	require.Equal(t, int64(12), entry.ID)
	require.Equal(t, 10.0, entry.THCMg)
	require.Equal(t, models.MethodVape, entry.Method)
}

func TestNewCreateEntryRequest(t *testing.T) {
	d := models.Draft{
		Date:       "2025-06-30",
		Time:       "21:15",
		Method:     models.MethodEdible,
		Amount:     "10",
		THCPercent: 75,
		Strain:     "Blue Dream",
		Mood:       7,
		Anxiety:    2,
		Activities: []string{"Music", "Reading"},
		Notes:      "mellow",
	}

	req := NewCreateEntryRequest(d)
	require.Equal(t, "edible", req.Method)
	require.Equal(t, "10", req.Amount)
	require.Equal(t, 75.0, req.THCPercent)
	require.Equal(t, []string{"Music", "Reading"}, req.Activities)

	data, err := json.Marshal(req)
	require.NoError(t, err)
	require.Contains(t, string(data), `"thc_percent":75`)
	require.Contains(t, string(data), `"date":"2025-06-30"`)
}
