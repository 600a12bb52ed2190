package utilities

import (
	"sync"

	"go.uber.org/zap"
)

const (
	TopicMoodRecorded  = "mood_recorded"
	TopicWatchRecorded = "watch_recorded"
)

type EventHandler func(interface{})

type EventBus struct {
	handlers map[string][]EventHandler
	mu       sync.RWMutex
	inflight sync.WaitGroup
	logger   *zap.Logger
}

func NewEventBus(logger *zap.Logger) *EventBus {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &EventBus{
		handlers: make(map[string][]EventHandler),
		logger:   logger,
	}
}

func (eb *EventBus) Subscribe(event string, handler EventHandler) {
	eb.mu.Lock()
	defer eb.mu.Unlock()
	eb.handlers[event] = append(eb.handlers[event], handler)
}

// Publish hands data to every subscriber of event. Handlers run
// asynchronously and Publish never waits for them.
func (eb *EventBus) Publish(event string, data interface{}) {
	eb.mu.RLock()
	defer eb.mu.RUnlock()
	for _, handler := range eb.handlers[event] {
		eb.inflight.Add(1)
		go eb.run(event, handler, data)
	}
}

func (eb *EventBus) run(event string, handler EventHandler, data interface{}) {
	defer eb.inflight.Done()
	defer func() {
		if r := recover(); r != nil {
			eb.logger.Error("event handler panicked", zap.String("event", event), zap.Any("panic", r))
		}
	}()
	handler(data)
}

// Wait blocks until every handler started so far has returned.
func (eb *EventBus) Wait() {
	eb.inflight.Wait()
}
