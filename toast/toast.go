// Package toast maintains an ordered list of transient UI messages for a
// single client session. Every mutation publishes the full updated list
// to subscribers so a rendering layer can re-render the active toasts.
// Durations are advisory metadata; the store never expires entries on
// its own.
package toast

import (
	"math/rand"
	"slices"
	"sync"
)

// Type tags a toast with the kind of feedback it carries.
type Type string

const (
	TypeSuccess Type = "success"
	TypeError   Type = "error"
	TypeWarning Type = "warning"
	TypeInfo    Type = "info"
)

const (
	// DefaultDuration is how long consumers should display a toast, in
	// milliseconds.
	DefaultDuration = 5000

	idLength   = 7
	idAlphabet = "0123456789abcdefghijklmnopqrstuvwxyz"
)

// Toast is a single transient message.
type Toast struct {
	ID          string `json:"id"`
	Type        Type   `json:"type"`
	Message     string `json:"message"`
	Duration    int    `json:"duration,omitempty"`
	Dismissible bool   `json:"dismissible"`
}

// Option overrides a default field on a new toast.
type Option func(*Toast)

// WithDuration sets the advisory display duration in milliseconds.
func WithDuration(ms int) Option {
	return func(t *Toast) {
		t.Duration = ms
	}
}

// WithDismissible controls whether the consumer should render a dismiss
// control for the toast.
func WithDismissible(dismissible bool) Option {
	return func(t *Toast) {
		t.Dismissible = dismissible
	}
}

// Subscriber receives the full toast list after every mutation.
type Subscriber func([]Toast)

// Store holds the active toasts for one session. Construct with New;
// the zero value is not usable.
type Store struct {
	mu          sync.Mutex
	toasts      []Toast
	subscribers map[int]Subscriber
	nextSubID   int
}

func New() *Store {
	return &Store{
		subscribers: make(map[int]Subscriber),
	}
}

// Add appends a toast with a freshly generated id, returning that id.
// Options are applied over the defaults (DefaultDuration, dismissible).
func (s *Store) Add(typ Type, message string, opts ...Option) string {
	t := Toast{
		ID:          generateID(),
		Type:        typ,
		Message:     message,
		Duration:    DefaultDuration,
		Dismissible: true,
	}
	for _, opt := range opts {
		opt(&t)
	}

	s.mu.Lock()
	s.toasts = append(s.toasts, t)
	s.publishLocked()
	s.mu.Unlock()

	return t.ID
}

// Remove deletes the toast with the matching id. Removing an unknown id
// is a no-op, but subscribers are still notified.
func (s *Store) Remove(id string) {
	s.mu.Lock()
	s.toasts = slices.DeleteFunc(s.toasts, func(t Toast) bool {
		return t.ID == id
	})
	s.publishLocked()
	s.mu.Unlock()
}

// Clear empties the toast list.
func (s *Store) Clear() {
	s.mu.Lock()
	s.toasts = nil
	s.publishLocked()
	s.mu.Unlock()
}

// Toasts returns a snapshot of the active toasts in insertion order.
func (s *Store) Toasts() []Toast {
	s.mu.Lock()
	defer s.mu.Unlock()
	return slices.Clone(s.toasts)
}

// Subscribe registers fn to receive the full toast list after every
// mutation. The returned function unsubscribes it.
func (s *Store) Subscribe(fn Subscriber) (unsubscribe func()) {
	s.mu.Lock()
	id := s.nextSubID
	s.nextSubID++
	s.subscribers[id] = fn
	s.mu.Unlock()

	return func() {
		s.mu.Lock()
		delete(s.subscribers, id)
		s.mu.Unlock()
	}
}

// Convenience constructors for the different toast types

func (s *Store) Success(message string, opts ...Option) string {
	return s.Add(TypeSuccess, message, opts...)
}

func (s *Store) Error(message string, opts ...Option) string {
	return s.Add(TypeError, message, opts...)
}

func (s *Store) Warning(message string, opts ...Option) string {
	return s.Add(TypeWarning, message, opts...)
}

func (s *Store) Info(message string, opts ...Option) string {
	return s.Add(TypeInfo, message, opts...)
}

// publishLocked sends a snapshot to every subscriber. Callers must hold mu.
func (s *Store) publishLocked() {
	if len(s.subscribers) == 0 {
		return
	}
	snapshot := slices.Clone(s.toasts)
	for _, fn := range s.subscribers {
		fn(snapshot)
	}
}

func generateID() string {
	b := make([]byte, idLength)
	for i := range b {
		b[i] = idAlphabet[rand.Intn(len(idAlphabet))]
	}
	return string(b)
}
