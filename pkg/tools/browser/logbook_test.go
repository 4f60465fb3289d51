package browser

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLogBook_StampsMissingTimestamps(t *testing.T) {
	fixed := time.Date(2024, 5, 1, 12, 0, 0, 500, time.UTC)
	book := NewLogBook(func() time.Time { return fixed })

	book.AppendConsole(ConsoleLogEntry{Type: "log", Text: "hi"})
	book.AppendConsole(ConsoleLogEntry{Type: "log", Text: "kept", Timestamp: "earlier"})
	book.AppendRequest(NetworkRequestRecord{URL: "https://a.test/"})
	book.AppendResponse(NetworkResponseRecord{URL: "https://a.test/", Status: 200})

	console := book.Console()
	require.Len(t, console, 2)
	assert.Equal(t, fixed.Format(time.RFC3339Nano), console[0].Timestamp)
	assert.Equal(t, "earlier", console[1].Timestamp)
	assert.Equal(t, fixed.Format(time.RFC3339Nano), book.Requests()[0].Timestamp)
	assert.Equal(t, fixed.Format(time.RFC3339Nano), book.Responses()[0].Timestamp)
}

func TestLogBook_ReturnsCopies(t *testing.T) {
	book := NewLogBook(nil)
	book.AppendConsole(ConsoleLogEntry{Type: "log", Text: "original"})

	entries := book.Console()
	entries[0].Text = "mutated"

	assert.Equal(t, "original", book.Console()[0].Text)
}

func TestLogBook_ConcurrentAppends(t *testing.T) {
	book := NewLogBook(nil)

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(3)
		go func() {
			defer wg.Done()
			book.AppendConsole(ConsoleLogEntry{Type: "log"})
		}()
		go func() {
			defer wg.Done()
			book.AppendRequest(NetworkRequestRecord{Method: "GET"})
		}()
		go func() {
			defer wg.Done()
			book.AppendResponse(NetworkResponseRecord{Status: 200})
		}()
	}
	wg.Wait()

	assert.Len(t, book.Console(), 50)
	assert.Len(t, book.Requests(), 50)
	assert.Len(t, book.Responses(), 50)
}

func TestFilterConsole(t *testing.T) {
	entries := []ConsoleLogEntry{
		{Type: "log", Text: "a"},
		{Type: "error", Text: "b"},
		{Type: "log", Text: "c"},
		{Type: "warning", Text: "d"},
	}

	tests := []struct {
		name    string
		logType string
		want    []string
	}{
		{name: "all", logType: "all", want: []string{"a", "b", "c", "d"}},
		{name: "empty matches nothing", logType: "", want: []string{}},
		{name: "only log in order", logType: "log", want: []string{"a", "c"}},
		{name: "only error", logType: "error", want: []string{"b"}},
		{name: "no match", logType: "debug", want: []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := FilterConsole(entries, tt.logType)
			texts := make([]string, 0, len(got))
			for _, e := range got {
				texts = append(texts, e.Text)
			}
			assert.Equal(t, tt.want, texts)
		})
	}
}

func TestFilterNetwork(t *testing.T) {
	requests := []NetworkRequestRecord{
		{URL: "https://x/api/users", Method: "GET"},
		{URL: "https://x/api/users", Method: "POST"},
		{URL: "https://x/static/app.js", Method: "GET"},
		{URL: "https://x/api/orders", Method: "GET"},
	}
	responses := []NetworkResponseRecord{
		{URL: "https://x/api/users", Status: 200},
		{URL: "https://x/api/users", Status: 201},
		{URL: "https://x/static/app.js", Status: 304},
	}

	t.Run("method and pattern are combined", func(t *testing.T) {
		got := FilterNetwork(requests, responses, "GET", "/api/")
		require.Len(t, got, 2)
		assert.Equal(t, "https://x/api/users", got[0].URL)
		require.NotNil(t, got[0].Response)
		assert.Equal(t, 200, got[0].Response.Status)
		assert.Equal(t, "https://x/api/orders", got[1].URL)
		assert.Nil(t, got[1].Response)
	})

	t.Run("pairs with the first response for the url", func(t *testing.T) {
		got := FilterNetwork(requests, responses, "POST", "")
		require.Len(t, got, 1)
		require.NotNil(t, got[0].Response)
		assert.Equal(t, 200, got[0].Response.Status)
	})

	t.Run("no filters keeps everything", func(t *testing.T) {
		assert.Len(t, FilterNetwork(requests, responses, "", ""), 4)
	})

	t.Run("empty result is an empty list", func(t *testing.T) {
		got := FilterNetwork(nil, nil, "", "")
		assert.NotNil(t, got)
		assert.Empty(t, got)
	})
}
