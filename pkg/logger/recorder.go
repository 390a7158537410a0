package logger

import (
	"sync"
)

// Entry is one message kept by a Recorder
type Entry struct {
	Level   string
	Message string
	Fields  map[string]interface{}
}

// Recorder is a Logger that keeps messages in memory instead of writing
// them. Loggers derived with WithField or WithFields append to the same
// entries. Fatal is recorded and does not exit.
type Recorder struct {
	mu      *sync.Mutex
	entries *[]Entry
	fields  map[string]interface{}
}

func NewRecorder() *Recorder {
	return &Recorder{
		mu:      &sync.Mutex{},
		entries: &[]Entry{},
		fields:  map[string]interface{}{},
	}
}

// Entries returns a copy of everything recorded so far
func (r *Recorder) Entries() []Entry {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]Entry, len(*r.entries))
	copy(out, *r.entries)
	return out
}

// Find returns the first entry with the given message
func (r *Recorder) Find(message string) (Entry, bool) {
	for _, e := range r.Entries() {
		if e.Message == message {
			return e, true
		}
	}
	return Entry{}, false
}

func (r *Recorder) record(level, msg string) {
	fields := make(map[string]interface{}, len(r.fields))
	for k, v := range r.fields {
		fields[k] = v
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	*r.entries = append(*r.entries, Entry{Level: level, Message: msg, Fields: fields})
}

func (r *Recorder) Debug(msg string) { r.record("debug", msg) }
func (r *Recorder) Info(msg string)  { r.record("info", msg) }
func (r *Recorder) Warn(msg string)  { r.record("warn", msg) }
func (r *Recorder) Error(msg string) { r.record("error", msg) }
func (r *Recorder) Fatal(msg string) { r.record("fatal", msg) }

func (r *Recorder) WithField(key string, value interface{}) Logger {
	return r.WithFields(map[string]interface{}{key: value})
}

func (r *Recorder) WithFields(fields map[string]interface{}) Logger {
	merged := make(map[string]interface{}, len(r.fields)+len(fields))
	for k, v := range r.fields {
		merged[k] = v
	}
	for k, v := range fields {
		merged[k] = v
	}
	return &Recorder{mu: r.mu, entries: r.entries, fields: merged}
}
