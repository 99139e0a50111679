package main

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/SscSPs/diary_app/internal/dto"
	"github.com/SscSPs/diary_app/internal/utils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAdd_SendsFlagsAsRequest(t *testing.T) {
	var got dto.EntryRequest
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		w.WriteHeader(http.StatusCreated)
		_ = json.NewEncoder(w).Encode(dto.EntryResponse{ID: "new-id", Date: got.Date, Mood: got.Mood})
	}))
	defer srv.Close()

	var out bytes.Buffer
	err := newApp(&out).Run([]string{"diaryctl", "--server", srv.URL, "add",
		"--date", "2024-03-01", "--mood", "8", "--learned", "go",
		"--gratitude", "sun", "--gratitude", "tea, coffee"})

	require.NoError(t, err)
	assert.Equal(t, "2024-03-01", got.Date)
	assert.Equal(t, 8, got.Mood)
	assert.Equal(t, []string{"sun", "tea, coffee"}, got.Gratitude)
	assert.Contains(t, out.String(), `"id": "new-id"`)
}

func TestDelete_RequiresID(t *testing.T) {
	var out bytes.Buffer
	err := newApp(&out).Run([]string{"diaryctl", "--server", "http://127.0.0.1:1", "delete"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "entry id argument is required")
}

func TestDelete_PrintsConfirmation(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodDelete, r.Method)
		assert.Equal(t, "/api/v1/entries/abc", r.URL.Path)
		_, _ = w.Write([]byte(`{"message":"Entry deleted"}`))
	}))
	defer srv.Close()

	var out bytes.Buffer
	require.NoError(t, newApp(&out).Run([]string{"diaryctl", "--server", srv.URL, "delete", "abc"}))
	assert.Equal(t, "deleted abc\n", out.String())
}

func TestToken_MintsParsableToken(t *testing.T) {
	var out bytes.Buffer
	require.NoError(t, newApp(&out).Run([]string{"diaryctl", "token", "--secret", "s3cret", "--subject", "me"}))

	claims, err := utils.ParseAccessToken(strings.TrimSpace(out.String()), "s3cret")
	require.NoError(t, err)
	assert.Equal(t, "me", claims.Subject)
}
