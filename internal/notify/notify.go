// Package notify carries transient user-facing notifications (the toast line
// in the cashier screen). Remote-call failures surface here, never as panics
// in the view layer.
package notify

import "sync"

type Level int

const (
	LevelSuccess Level = iota
	LevelError
)

type Notification struct {
	Level   Level
	Message string
}

// Notifier receives user-visible notifications.
type Notifier interface {
	Success(msg string)
	Error(msg string)
}

// Func adapts a function to Notifier.
type Func func(Notification)

func (f Func) Success(msg string) { f(Notification{Level: LevelSuccess, Message: msg}) }
func (f Func) Error(msg string)   { f(Notification{Level: LevelError, Message: msg}) }

// Memory keeps notifications in order, for tests and for draining into a view.
type Memory struct {
	mu    sync.Mutex
	items []Notification
}

func (m *Memory) Success(msg string) { m.add(Notification{Level: LevelSuccess, Message: msg}) }
func (m *Memory) Error(msg string)   { m.add(Notification{Level: LevelError, Message: msg}) }

func (m *Memory) add(n Notification) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.items = append(m.items, n)
}

// All returns a copy of everything received so far.
func (m *Memory) All() []Notification {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]Notification, len(m.items))
	copy(out, m.items)
	return out
}

// Drain returns and clears pending notifications.
func (m *Memory) Drain() []Notification {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := m.items
	m.items = nil
	return out
}

// Nop discards everything.
type Nop struct{}

func (Nop) Success(string) {}
func (Nop) Error(string)   {}
