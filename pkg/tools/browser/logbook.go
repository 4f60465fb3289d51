package browser

import (
	"strings"
	"sync"
	"time"
)

// LogBook is an append-only, concurrency-safe LogSink. Records without a
// timestamp are stamped on arrival.
type LogBook struct {
	mu        sync.Mutex
	now       func() time.Time
	console   []ConsoleLogEntry
	requests  []NetworkRequestRecord
	responses []NetworkResponseRecord
}

// NewLogBook creates an empty LogBook. A nil clock means time.Now.
func NewLogBook(now func() time.Time) *LogBook {
	if now == nil {
		now = time.Now
	}
	return &LogBook{now: now}
}

func (b *LogBook) stamp() string {
	return b.now().Format(time.RFC3339Nano)
}

// AppendConsole records a console message.
func (b *LogBook) AppendConsole(entry ConsoleLogEntry) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if entry.Timestamp == "" {
		entry.Timestamp = b.stamp()
	}
	b.console = append(b.console, entry)
}

// AppendRequest records an outgoing request.
func (b *LogBook) AppendRequest(record NetworkRequestRecord) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if record.Timestamp == "" {
		record.Timestamp = b.stamp()
	}
	b.requests = append(b.requests, record)
}

// AppendResponse records an incoming response.
func (b *LogBook) AppendResponse(record NetworkResponseRecord) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if record.Timestamp == "" {
		record.Timestamp = b.stamp()
	}
	b.responses = append(b.responses, record)
}

// Console returns a copy of the console entries in arrival order.
func (b *LogBook) Console() []ConsoleLogEntry {
	b.mu.Lock()
	defer b.mu.Unlock()
	return append([]ConsoleLogEntry(nil), b.console...)
}

// Requests returns a copy of the request records in arrival order.
func (b *LogBook) Requests() []NetworkRequestRecord {
	b.mu.Lock()
	defer b.mu.Unlock()
	return append([]NetworkRequestRecord(nil), b.requests...)
}

// Responses returns a copy of the response records in arrival order.
func (b *LogBook) Responses() []NetworkResponseRecord {
	b.mu.Lock()
	defer b.mu.Unlock()
	return append([]NetworkResponseRecord(nil), b.responses...)
}

// FilterConsole returns the entries whose type equals logType.
// "all" keeps every entry.
func FilterConsole(entries []ConsoleLogEntry, logType string) []ConsoleLogEntry {
	out := make([]ConsoleLogEntry, 0, len(entries))
	for _, e := range entries {
		if logType == DefaultLogType || e.Type == logType {
			out = append(out, e)
		}
	}
	return out
}

// FilterNetwork selects requests by exact method and URL substring and pairs
// each one with the first response recorded for the same URL.
func FilterNetwork(requests []NetworkRequestRecord, responses []NetworkResponseRecord, method, urlPattern string) []NetworkRequestView {
	out := make([]NetworkRequestView, 0, len(requests))
	for _, req := range requests {
		if method != "" && req.Method != method {
			continue
		}
		if urlPattern != "" && !strings.Contains(req.URL, urlPattern) {
			continue
		}
		view := NetworkRequestView{NetworkRequestRecord: req}
		for i := range responses {
			if responses[i].URL == req.URL {
				resp := responses[i]
				view.Response = &resp
				break
			}
		}
		out = append(out, view)
	}
	return out
}
