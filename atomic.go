package efuse

import (
	"fmt"
	"sync/atomic"
)

/*
The shared fuse: same contract as `Fuse`, safe for concurrent use
from any number of goroutines with no external locking.

The only shared state is the one zapped flag, and every touch of it
goes through `sync/atomic` -- which is sequentially consistent, so
any reader that observes a zap also observes everything sequenced
before it.  That is the strongest ordering there is, and it's the
right trade here: this is a rarely-toggled control flag, not a hot
counter.

The zero value is ready to use (unzapped, initial state false).  An
AtomicFuse must not be copied after first use; take a `Clone`.
*/
type AtomicFuse struct {
	initialState bool
	zapped       atomic.Bool
}

// NewAtomic returns an unzapped shared fuse with the given initial state.
func NewAtomic(initialState bool) *AtomicFuse {
	return &AtomicFuse{initialState: initialState}
}

func (f *AtomicFuse) InitialState() bool {
	return f.initialState
}

func (f *AtomicFuse) AsBool() bool {
	return f.initialState != f.zapped.Load()
}

func (f *AtomicFuse) IsZapped() bool {
	return f.zapped.Load()
}

func (f *AtomicFuse) Zap() bool {
	// A plain store is the set-true: every writer writes the same
	// value, so concurrent zaps cannot lose updates.
	f.zapped.Store(true)
	return !f.initialState
}

func (f *AtomicFuse) ZapOnce() (bool, error) {
	// The CAS is the sole arbitration point: among any number of
	// concurrent callers, exactly one sees false->true.
	if !f.zapped.CompareAndSwap(false, true) {
		return false, errAlreadyZapped()
	}
	return !f.initialState, nil
}

// Clone returns an independent fuse carrying the same initial state and
// the zapped value observed at call time.  It does not stay linked to
// the original: zapping one has no effect on the other.
func (f *AtomicFuse) Clone() *AtomicFuse {
	clone := &AtomicFuse{initialState: f.initialState}
	clone.zapped.Store(f.zapped.Load())
	return clone
}

// Equal is structural equality over the initial state and a
// point-in-time snapshot of each flag.  Nil-safe.
func (f *AtomicFuse) Equal(other *AtomicFuse) bool {
	if f == nil || other == nil {
		return f == other
	}
	return f.initialState == other.initialState &&
		f.zapped.Load() == other.zapped.Load()
}

func (f *AtomicFuse) String() string {
	return fmt.Sprintf("fuse(initial=%t zapped=%t)", f.initialState, f.zapped.Load())
}
