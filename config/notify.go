package config

import (
	"sync"
)

// Change represents a configuration change event. Configs are
// immutable, so a change is always a whole-snapshot replacement.
type Change struct {
	// Old is the snapshot being replaced. Nil for the first publish.
	Old *Config

	// New is the snapshot now in effect.
	New *Config

	// Source identifies where the change came from.
	Source string
}

// Observer is called when a new config snapshot is published.
type Observer func(change Change)

// Subscription represents an active observer subscription.
type Subscription struct {
	id       uint64
	notifier *Notifier
}

// Unsubscribe removes this subscription.
func (s *Subscription) Unsubscribe() {
	if s.notifier != nil {
		s.notifier.unsubscribe(s.id)
	}
}

// Notifier distributes config snapshots to subscribed observers. It
// remembers the most recent snapshot so late subscribers can catch up
// with Current.
type Notifier struct {
	mu sync.RWMutex

	observers map[uint64]Observer
	nextID    uint64
	current   *Config

	// Whether to notify synchronously or asynchronously
	async  bool
	buffer chan Change
	done   chan struct{}
	wg     sync.WaitGroup
	closed bool
}

// NotifierOption configures a Notifier.
type NotifierOption func(*Notifier)

// WithAsync enables asynchronous delivery through a buffered channel.
func WithAsync(bufferSize int) NotifierOption {
	return func(n *Notifier) {
		if bufferSize > 0 {
			n.async = true
			n.buffer = make(chan Change, bufferSize)
		}
	}
}

// NewNotifier creates a new Notifier.
func NewNotifier(opts ...NotifierOption) *Notifier {
	n := &Notifier{
		observers: make(map[uint64]Observer),
		done:      make(chan struct{}),
	}

	for _, opt := range opts {
		opt(n)
	}

	if n.async {
		n.wg.Add(1)
		go n.processAsync()
	}

	return n
}

// Subscribe registers an observer for future publishes.
func (n *Notifier) Subscribe(observer Observer) *Subscription {
	n.mu.Lock()
	defer n.mu.Unlock()

	id := n.nextID
	n.nextID++
	n.observers[id] = observer

	return &Subscription{id: id, notifier: n}
}

// Current returns the most recently published snapshot, or nil if
// nothing has been published yet.
func (n *Notifier) Current() *Config {
	n.mu.RLock()
	defer n.mu.RUnlock()
	return n.current
}

// Publish makes cfg the current snapshot and notifies observers.
// Publishing on a closed notifier returns ErrNotifierClosed.
func (n *Notifier) Publish(cfg *Config, source string) error {
	n.mu.Lock()
	if n.closed {
		n.mu.Unlock()
		return ErrNotifierClosed
	}
	change := Change{Old: n.current, New: cfg, Source: source}
	n.current = cfg
	n.mu.Unlock()

	if n.async {
		select {
		case n.buffer <- change:
		case <-n.done:
		}
		return nil
	}

	n.deliver(change)
	return nil
}

// Close shuts down the notifier. It is safe to call Close multiple
// times.
func (n *Notifier) Close() {
	n.mu.Lock()
	if n.closed {
		n.mu.Unlock()
		return
	}
	n.closed = true
	n.mu.Unlock()

	close(n.done)
	n.wg.Wait()
}

// unsubscribe removes an observer by ID.
func (n *Notifier) unsubscribe(id uint64) {
	n.mu.Lock()
	defer n.mu.Unlock()
	delete(n.observers, id)
}

// deliver sends a change to all observers, outside the lock.
func (n *Notifier) deliver(change Change) {
	n.mu.RLock()
	observers := make([]Observer, 0, len(n.observers))
	for _, obs := range n.observers {
		observers = append(observers, obs)
	}
	n.mu.RUnlock()

	for _, obs := range observers {
		obs(change)
	}
}

// processAsync handles asynchronous delivery.
func (n *Notifier) processAsync() {
	defer n.wg.Done()

	for {
		select {
		case change := <-n.buffer:
			n.deliver(change)
		case <-n.done:
			// Drain remaining buffered changes
			for {
				select {
				case change := <-n.buffer:
					n.deliver(change)
				default:
					return
				}
			}
		}
	}
}
