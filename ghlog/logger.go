package ghlog

import (
	"encoding/json"
	"io"
	"sync"
)

// Logger accumulates scalar key/value pairs and serializes them as a single
// flat JSON object on demand. Keys are written in first-Add order.
//
// A nil *Logger is a valid, inert logger: every method is a no-op (Add) or
// writes an empty object (WriteJSON). This lets callers thread an optional
// *ghlog.Logger through builders without a presence check at each call site.
type Logger struct {
	mu   sync.Mutex
	keys []string
	vals map[string]any
}

// NewLogger returns an empty Logger ready to accumulate entries.
func NewLogger() *Logger {
	return &Logger{vals: make(map[string]any)}
}

// Add records value under key, overwriting any previous value for the same
// key without changing its position in output order. Add on a nil Logger is
// a no-op.
func (l *Logger) Add(key string, value any) {
	if l == nil {
		return
	}
	l.mu.Lock()
	defer l.mu.Unlock()
	if _, exists := l.vals[key]; !exists {
		l.keys = append(l.keys, key)
	}
	l.vals[key] = value
}

// WriteJSON marshals the accumulated key/value pairs as a single JSON object
// to w, preserving first-Add key order. A nil Logger writes "{}".
func (l *Logger) WriteJSON(w io.Writer) error {
	if l == nil {
		_, err := io.WriteString(w, "{}\n")

		return err
	}
	l.mu.Lock()
	defer l.mu.Unlock()

	buf := make([]byte, 0, 2+32*len(l.keys))
	buf = append(buf, '{')
	for i, k := range l.keys {
		if i > 0 {
			buf = append(buf, ',')
		}
		kb, err := json.Marshal(k)
		if err != nil {
			return err
		}
		vb, err := json.Marshal(l.vals[k])
		if err != nil {
			return err
		}
		buf = append(buf, kb...)
		buf = append(buf, ':')
		buf = append(buf, vb...)
	}
	buf = append(buf, '}', '\n')

	_, err := w.Write(buf)

	return err
}
