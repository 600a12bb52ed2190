package utilities

import (
	"sync"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/goleak"
)

func TestEventBusDeliversToAllSubscribers(t *testing.T) {
	defer goleak.VerifyNone(t, goleak.IgnoreCurrent())

	bus := NewEventBus(nil)
	var (
		mu  sync.Mutex
		got []string
	)
	for _, name := range []string{"a", "b"} {
		name := name
		bus.Subscribe(TopicMoodRecorded, func(data interface{}) {
			mu.Lock()
			defer mu.Unlock()
			got = append(got, name+":"+data.(string))
		})
	}

	bus.Publish(TopicMoodRecorded, "happy")
	bus.Wait()

	assert.ElementsMatch(t, []string{"a:happy", "b:happy"}, got)
}

func TestEventBusIgnoresTopicsWithoutSubscribers(t *testing.T) {
	defer goleak.VerifyNone(t, goleak.IgnoreCurrent())

	bus := NewEventBus(nil)
	var calls int32
	bus.Subscribe(TopicWatchRecorded, func(interface{}) { atomic.AddInt32(&calls, 1) })

	bus.Publish(TopicMoodRecorded, "sad")
	bus.Wait()

	assert.Equal(t, int32(0), atomic.LoadInt32(&calls))
}

func TestEventBusRecoversHandlerPanics(t *testing.T) {
	defer goleak.VerifyNone(t, goleak.IgnoreCurrent())

	bus := NewEventBus(nil)
	var calls int32
	bus.Subscribe(TopicWatchRecorded, func(interface{}) { panic("storage down") })
	bus.Subscribe(TopicWatchRecorded, func(interface{}) { atomic.AddInt32(&calls, 1) })

	assert.NotPanics(t, func() {
		bus.Publish(TopicWatchRecorded, "1")
		bus.Wait()
	})
	assert.Equal(t, int32(1), atomic.LoadInt32(&calls))
}
