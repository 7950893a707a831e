// Package testutil holds fixtures shared by package tests.
package testutil

import (
	"sync"

	"github.com/ochairo/saclient/internal/domain/entities"
)

// ProgressRecorder is a Progress sink that keeps everything it receives
type ProgressRecorder struct {
	mu       sync.Mutex
	messages []entities.Message
	errors   []error
}

// SetStatus records a status message
func (r *ProgressRecorder) SetStatus(msg entities.Message) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.messages = append(r.messages, msg)
}

// SetError records an error
func (r *ProgressRecorder) SetError(err error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.errors = append(r.errors, err)
}

// Messages returns a copy of the recorded messages
func (r *ProgressRecorder) Messages() []entities.Message {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]entities.Message(nil), r.messages...)
}

// Texts returns the text of recorded messages at the given level
func (r *ProgressRecorder) Texts(level entities.Level) []string {
	var out []string
	for _, m := range r.Messages() {
		if m.Level == level {
			out = append(out, m.Text)
		}
	}
	return out
}

// Errors returns a copy of the recorded errors
func (r *ProgressRecorder) Errors() []error {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]error(nil), r.errors...)
}
