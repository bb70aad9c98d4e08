package worker

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/atomic"
)

type countHandler struct {
	started *atomic.Int32
	handled *atomic.Int32
}

func (h *countHandler) Start() {
	h.started.Inc()
}

func (h *countHandler) Handle(t Task) {
	h.handled.Add(int32(t.(int)))
}

func TestWorker(t *testing.T) {
	var wg sync.WaitGroup
	w := NewWorker("test", &wg)
	h := &countHandler{started: atomic.NewInt32(0), handled: atomic.NewInt32(0)}
	w.Start(h)
	w.Start(h)
	for i := 1; i <= 10; i++ {
		w.Sender() <- i
	}
	w.Stop()
	wg.Wait()
	assert.Equal(t, int32(2), h.started.Load())
	assert.Equal(t, int32(55), h.handled.Load())
	assert.Equal(t, "test", w.Name())
}

func TestWorkerTrySend(t *testing.T) {
	var wg sync.WaitGroup
	w := NewWorkerWithCapacity("full", &wg, 1)
	assert.True(t, w.TrySend(1))
	assert.False(t, w.TrySend(2))
	assert.Equal(t, uint64(1), w.Dropped())
}
