package journal

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/vmihailenco/msgpack/v5"
)

// Supported on-disk encodings.
const (
	FormatJSON    = "json"
	FormatMsgpack = "msgpack"
)

// SelectionRecord captures one agent selection for audit and prompt tuning.
type SelectionRecord struct {
	ID           string    `json:"id" msgpack:"id"`
	Timestamp    time.Time `json:"timestamp" msgpack:"timestamp"`
	Sequence     int       `json:"sequence" msgpack:"sequence"`
	Query        string    `json:"query" msgpack:"query"`
	ParentQuery  string    `json:"parent_query,omitempty" msgpack:"parent_query,omitempty"`
	TaskText     string    `json:"task_text" msgpack:"task_text"`
	Model        string    `json:"model,omitempty" msgpack:"model,omitempty"`
	PromptFamily string    `json:"prompt_family,omitempty" msgpack:"prompt_family,omitempty"`
	PromptDigest string    `json:"prompt_digest,omitempty" msgpack:"prompt_digest,omitempty"`
	AgentName    string    `json:"agent_name" msgpack:"agent_name"`
	RolePrompt   string    `json:"agent_role_prompt" msgpack:"agent_role_prompt"`
	Stage        string    `json:"stage" msgpack:"stage"`
	Fallback     bool      `json:"fallback" msgpack:"fallback"`
	RawResponse  string    `json:"raw_response,omitempty" msgpack:"raw_response,omitempty"`
	ErrorMessage string    `json:"error_message,omitempty" msgpack:"error_message,omitempty"`
	DurationMS   int64     `json:"duration_ms" msgpack:"duration_ms"`
}

// ValidFormat reports whether format names a supported encoding; "" means json.
func ValidFormat(format string) bool {
	switch strings.ToLower(strings.TrimSpace(format)) {
	case "", FormatJSON, FormatMsgpack:
		return true
	}
	return false
}

// Option customises a Writer.
type Option func(*Writer)

// WithFormat selects the record encoding.
func WithFormat(format string) Option {
	return func(w *Writer) {
		if f := strings.ToLower(strings.TrimSpace(format)); f != "" {
			w.format = f
		}
	}
}

// Writer persists selection records to a directory, one file per record.
type Writer struct {
	dir    string
	format string
	mu     sync.Mutex
	seq    int
	nowFn  func() time.Time
}

// NewWriter constructs a journal writer and creates dir if needed.
func NewWriter(dir string, opts ...Option) (*Writer, error) {
	if dir == "" {
		dir = "journal"
	}
	w := &Writer{dir: dir, format: FormatJSON, nowFn: time.Now}
	for _, opt := range opts {
		opt(w)
	}
	if !ValidFormat(w.format) {
		return nil, fmt.Errorf("journal: unsupported format %q", w.format)
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("journal: create %s: %w", dir, err)
	}
	return w, nil
}

// Dir returns the directory records are written to.
func (w *Writer) Dir() string { return w.dir }

// WriteSelection writes rec to a timestamped file and returns its path.
// It is safe for concurrent use.
func (w *Writer) WriteSelection(rec *SelectionRecord) (string, error) {
	if rec == nil {
		return "", errors.New("journal: nil record")
	}

	w.mu.Lock()
	w.seq++
	seq := w.seq
	if rec.Timestamp.IsZero() {
		rec.Timestamp = w.nowFn()
	}
	w.mu.Unlock()

	rec.Sequence = seq
	data, err := w.encode(rec)
	if err != nil {
		return "", fmt.Errorf("journal: encode %s: %w", rec.ID, err)
	}
	name := fmt.Sprintf("selection_%s_%05d.%s", rec.Timestamp.UTC().Format("20060102_150405"), seq, w.format)
	path := filepath.Join(w.dir, name)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return "", err
	}
	return path, nil
}

func (w *Writer) encode(rec *SelectionRecord) ([]byte, error) {
	if w.format == FormatMsgpack {
		return msgpack.Marshal(rec)
	}
	return json.MarshalIndent(rec, "", "  ")
}

// ReadSelection decodes a record written by WriteSelection, picking the
// encoding from the file extension.
func ReadSelection(path string) (*SelectionRecord, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var rec SelectionRecord
	switch filepath.Ext(path) {
	case "." + FormatMsgpack:
		err = msgpack.Unmarshal(data, &rec)
	default:
		err = json.Unmarshal(data, &rec)
	}
	if err != nil {
		return nil, fmt.Errorf("journal: decode %s: %w", path, err)
	}
	return &rec, nil
}
