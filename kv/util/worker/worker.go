package worker

import (
	"sync"

	"go.uber.org/atomic"
)

type TaskStop struct{}

type Task interface{}

// Worker runs tasks from a buffered queue on one or more goroutines.
type Worker struct {
	name     string
	sender   chan<- Task
	receiver <-chan Task
	wg       *sync.WaitGroup
	running  *atomic.Int32
	dropped  *atomic.Uint64
}

type TaskHandler interface {
	Handle(t Task)
}

type Starter interface {
	Start()
}

// Start adds one goroutine handling tasks. It can be called several times to handle tasks concurrently.
func (w *Worker) Start(handler TaskHandler) {
	w.wg.Add(1)
	w.running.Inc()
	go func() {
		defer w.wg.Done()
		defer w.running.Dec()
		if s, ok := handler.(Starter); ok {
			s.Start()
		}
		for {
			task := <-w.receiver
			if _, ok := task.(TaskStop); ok {
				return
			}
			handler.Handle(task)
		}
	}()
}

func (w *Worker) Sender() chan<- Task {
	return w.sender
}

// TrySend queues t without blocking. It returns false and counts a drop if the queue is full.
func (w *Worker) TrySend(t Task) bool {
	select {
	case w.sender <- t:
		return true
	default:
		w.dropped.Inc()
		return false
	}
}

func (w *Worker) Dropped() uint64 {
	return w.dropped.Load()
}

func (w *Worker) Name() string {
	return w.name
}

// Stop asks every goroutine to exit once the tasks queued before it are handled.
func (w *Worker) Stop() {
	for i := w.running.Load(); i > 0; i-- {
		w.sender <- TaskStop{}
	}
}

const defaultWorkerCapacity = 128

func NewWorker(name string, wg *sync.WaitGroup) *Worker {
	return NewWorkerWithCapacity(name, wg, defaultWorkerCapacity)
}

func NewWorkerWithCapacity(name string, wg *sync.WaitGroup, capacity int) *Worker {
	ch := make(chan Task, capacity)
	return &Worker{
		sender:   (chan<- Task)(ch),
		receiver: (<-chan Task)(ch),
		name:     name,
		wg:       wg,
		running:  atomic.NewInt32(0),
		dropped:  atomic.NewUint64(0),
	}
}
