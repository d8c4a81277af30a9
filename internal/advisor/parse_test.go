package advisor

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aqqnoor/aunichance/internal/classify"
	"github.com/aqqnoor/aunichance/internal/extraction"
	"github.com/aqqnoor/aunichance/internal/fetch"
)

func admissionPage() http.HandlerFunc {
	body := "<html><body><main><h1>Admission Requirements</h1><p>" +
		strings.Repeat("Minimum GPA 3.5 and IELTS 6.5 are required for entry. ", 5) +
		"</p></main></body></html>"
	return func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "text/html")
		_, _ = w.Write([]byte(body))
	}
}

func TestParseDocument(t *testing.T) {
	t.Run("Requirements document extracted without persistence", func(t *testing.T) {
		server := httptest.NewServer(admissionPage())
		defer server.Close()

		gateway := newFakeGateway()
		client := &fakeClient{response: `{"gpa": {"min": 3.5}, "ielts": {"min": 6.5}}`}
		service := NewService(gateway, client, Options{})

		// The locator carries no category keyword, so the general template
		// and window apply; extraction still yields a requirement record.
		result, err := service.ParseDocument(context.Background(), server.URL, nil)
		require.NoError(t, err)
		assert.Equal(t, classify.CategoryGeneral, result.Category)
		require.NotNil(t, result.Requirements)
		assert.Equal(t, 3.5, *result.Requirements.GPA.Min)
		assert.Nil(t, result.Deadlines)
		assert.False(t, result.Saved)
		assert.Empty(t, gateway.requirements)
	})

	t.Run("Requirements persisted when program given", func(t *testing.T) {
		server := httptest.NewServer(admissionPage())
		defer server.Close()

		gateway := newFakeGateway()
		programID := storedProgram(gateway)
		client := &fakeClient{response: `{"ielts": {"min": 6.5}}`}
		service := NewService(gateway, client, Options{})

		result, err := service.ParseDocument(context.Background(), server.URL, &programID)
		require.NoError(t, err)
		assert.True(t, result.Saved)
		require.Contains(t, gateway.requirements, programID)
		assert.Equal(t, 6.5, *gateway.requirements[programID].IELTS.Min)
	})

	t.Run("Deadline URL routes to deadlines extraction", func(t *testing.T) {
		mux := http.NewServeMux()
		mux.HandleFunc("/deadlines", func(w http.ResponseWriter, _ *http.Request) {
			w.Header().Set("Content-Type", "text/html")
			_, _ = w.Write([]byte("<html><body><main>" +
				strings.Repeat("Application deadline January 15, 2026. ", 5) +
				"</main></body></html>"))
		})
		server := httptest.NewServer(mux)
		defer server.Close()

		gateway := newFakeGateway()
		programID := storedProgram(gateway)
		client := &fakeClient{response: `[{"deadline_type": "regular", "date": "2026-01-15"}]`}
		service := NewService(gateway, client, Options{})

		result, err := service.ParseDocument(context.Background(), server.URL+"/deadlines", &programID)
		require.NoError(t, err)
		assert.Equal(t, classify.CategoryDeadlines, result.Category)
		require.Len(t, result.Deadlines, 1)
		assert.True(t, result.Saved)
		assert.Len(t, gateway.deadlines[programID], 1)
	})

	t.Run("Verbose writer receives the extraction summary", func(t *testing.T) {
		server := httptest.NewServer(admissionPage())
		defer server.Close()

		var verbose bytes.Buffer
		client := &fakeClient{response: `{"gpa": {"min": 3.5}}`}
		service := NewService(newFakeGateway(), client, Options{Verbose: &verbose})

		_, err := service.ParseDocument(context.Background(), server.URL, nil)
		require.NoError(t, err)
		assert.Contains(t, verbose.String(), "EXTRACTED REQUIREMENTS")
		assert.Contains(t, verbose.String(), "min 3.5")
	})

	t.Run("Fetch failure propagates as FetchError", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusServiceUnavailable)
		}))
		defer server.Close()

		service := NewService(newFakeGateway(), &fakeClient{}, Options{})

		_, err := service.ParseDocument(context.Background(), server.URL, nil)
		var fetchErr *fetch.FetchError
		assert.ErrorAs(t, err, &fetchErr)
	})

	t.Run("Near-empty page fails fast with EmptyInputError", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			w.Header().Set("Content-Type", "text/html")
			_, _ = w.Write([]byte("<html><body>hi</body></html>"))
		}))
		defer server.Close()

		service := NewService(newFakeGateway(), &fakeClient{response: "{}"}, Options{})

		_, err := service.ParseDocument(context.Background(), server.URL, nil)
		var emptyErr *extraction.EmptyInputError
		assert.ErrorAs(t, err, &emptyErr)
	})
}
