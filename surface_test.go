package authform_test

import (
	"sync"

	"github.com/dmitrymomot/authform"
)

// statusRecord is one ShowStatus call as the surface saw it.
type statusRecord struct {
	text     string
	kind     authform.StatusKind
	announce bool
}

// fakeSurface is an in-memory Surface that records everything the controller
// tells it to display. All methods are safe for concurrent use because the
// success auto-reset arrives from a timer goroutine.
type fakeSurface struct {
	mu          sync.Mutex
	values      map[string]string
	fieldErrors map[string]string
	valid       map[string]bool
	status      *statusRecord
	statusLog   []statusRecord
	enabled     bool
	resets      int
}

func newFakeSurface() *fakeSurface {
	return &fakeSurface{
		values:      make(map[string]string),
		fieldErrors: make(map[string]string),
		valid:       make(map[string]bool),
		enabled:     true,
	}
}

func (s *fakeSurface) set(field, value string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.values[field] = value
}

func (s *fakeSurface) FieldValue(field string) string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.values[field]
}

func (s *fakeSurface) ShowFieldError(field, message string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.fieldErrors[field] = message
	delete(s.valid, field)
}

func (s *fakeSurface) ClearFieldError(field string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.fieldErrors, field)
	delete(s.valid, field)
}

func (s *fakeSurface) MarkFieldValid(field string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.valid[field] = true
	delete(s.fieldErrors, field)
}

func (s *fakeSurface) ShowStatus(text string, kind authform.StatusKind, announce bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	rec := statusRecord{text: text, kind: kind, announce: announce}
	s.status = &rec
	s.statusLog = append(s.statusLog, rec)
}

func (s *fakeSurface) ClearStatus() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.status = nil
}

func (s *fakeSurface) SetSubmitEnabled(enabled bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.enabled = enabled
}

func (s *fakeSurface) ResetFields() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.values = make(map[string]string)
	s.resets++
}

func (s *fakeSurface) fieldError(field string) (string, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	msg, ok := s.fieldErrors[field]
	return msg, ok
}

func (s *fakeSurface) errorCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.fieldErrors)
}

func (s *fakeSurface) isValid(field string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.valid[field]
}

func (s *fakeSurface) currentStatus() (statusRecord, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.status == nil {
		return statusRecord{}, false
	}
	return *s.status, true
}

func (s *fakeSurface) statusKinds() []authform.StatusKind {
	s.mu.Lock()
	defer s.mu.Unlock()
	kinds := make([]authform.StatusKind, len(s.statusLog))
	for i, rec := range s.statusLog {
		kinds[i] = rec.kind
	}
	return kinds
}

func (s *fakeSurface) submitEnabled() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.enabled
}

func (s *fakeSurface) resetCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.resets
}

func (s *fakeSurface) value(field string) string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.values[field]
}

// fakeTabs records tab activations.
type fakeTabs struct {
	mu     sync.Mutex
	active []authform.TabID
}

func (t *fakeTabs) ActivateTab(tab authform.TabID) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.active = append(t.active, tab)
}

func (t *fakeTabs) activated() []authform.TabID {
	t.mu.Lock()
	defer t.mu.Unlock()
	return append([]authform.TabID(nil), t.active...)
}
