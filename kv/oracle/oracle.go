package oracle

import (
	"context"
	"sync"
	"time"

	"github.com/ngaut/log"
	"go.uber.org/atomic"
)

// Oracle hands out transaction start ids and commit ids. Ids are strictly increasing across all callers and never
// reused.
type Oracle interface {
	NextID(ctx context.Context) (uint64, error)
}

const (
	physicalShiftBits = 18
	maxLogical        = int64(1 << physicalShiftBits)
)

// ComposeID builds an id from a physical time in milliseconds and a logical counter.
func ComposeID(physical, logical int64) uint64 {
	return uint64(physical<<physicalShiftBits | logical)
}

// ExtractPhysical returns the millisecond part of an id.
func ExtractPhysical(id uint64) int64 {
	return int64(id >> physicalShiftBits)
}

// Local is a timestamp oracle living in one process. Ids are the wall clock in milliseconds shifted left by 18 bits,
// plus a logical counter for ids handed out within the same millisecond. If the clock goes backwards the previous
// physical time keeps being used.
type Local struct {
	mu       sync.Mutex
	physical int64
	logical  int64
	now      func() time.Time
}

func NewLocal() *Local {
	return &Local{now: time.Now}
}

// NewLocalWithClock is NewLocal with an injected clock.
func NewLocalWithClock(now func() time.Time) *Local {
	return &Local{now: now}
}

func (o *Local) NextID(ctx context.Context) (uint64, error) {
	o.mu.Lock()
	defer o.mu.Unlock()
	physical := o.now().UnixNano() / int64(time.Millisecond)
	if physical > o.physical {
		o.physical = physical
		o.logical = 0
	} else {
		if physical < o.physical-1000 {
			log.Warnf("clock went backwards by %dms", o.physical-physical)
		}
		o.logical++
		if o.logical >= maxLogical {
			// Borrow the next millisecond.
			o.physical++
			o.logical = 0
		}
	}
	return ComposeID(o.physical, o.logical), nil
}

// Sequence is an Oracle returning consecutive integers, for tests that need to pick ids.
type Sequence struct {
	last *atomic.Uint64
}

// NewSequence returns a Sequence whose first id is last+1.
func NewSequence(last uint64) *Sequence {
	return &Sequence{last: atomic.NewUint64(last)}
}

func (s *Sequence) NextID(ctx context.Context) (uint64, error) {
	return s.last.Inc(), nil
}

// Set makes the next id last+1.
func (s *Sequence) Set(last uint64) {
	s.last.Store(last)
}

func (s *Sequence) Last() uint64 {
	return s.last.Load()
}
