package efuse

import (
	"fmt"
)

/*
A fuse: a boolean-like value with a fixed initial state which can be
toggled ("zapped") exactly once, after which it reports the opposite
of its initial state forever.

Much like a `sync.Once`, except it carries a value and tells you who
got there first;
much like an atomic bool, except the transition is one-way and the
direction is decided at construction time.

This is often useful for modelling permanent transitions -- "has this
safety check fired", "has shutdown begun" -- where callers need both
an unconditional idempotent toggle and a conditional toggle that
reports whether it was the first to fire.

Both `Fuse` and `AtomicFuse` satisfy this; they differ only in
ownership.  Use `Fuse` when one goroutine owns the value, and
`AtomicFuse` when it is shared.
*/
type Latch interface {
	// Return the boolean this fuse was constructed with.  Fixed for life.
	InitialState() bool

	// Return the current logical value: the initial state, toggled iff zapped.
	AsBool() bool

	// Whether the one-way transition has happened.
	IsZapped() bool

	// Zap unconditionally.  Idempotent; returns the resulting value,
	// which is always the negation of the initial state.
	Zap() bool

	// Zap, reporting whether this call was the transition's first
	// trigger: the first call returns the resulting value; every later
	// call returns `ErrAlreadyZapped` and changes nothing.
	ZapOnce() (bool, error)
}

var (
	_ Latch = (*Fuse)(nil)
	_ Latch = (*AtomicFuse)(nil)
)

/*
The single-owner fuse.

The zero value is ready to use: an unzapped fuse with initial state
false.  `Fuse` is a comparable value type -- `==` matches iff both
the initial states and the zapped flags match, so a zapped
true-fuse is not equal to a fresh false-fuse even though both
currently read as false.

Not safe for concurrent mutation; share an `AtomicFuse` instead.
*/
type Fuse struct {
	initialState bool
	zapped       bool
}

// New returns an unzapped fuse with the given initial state.
// This is also the from-boolean conversion: the zapped flag always
// starts clear, whatever the fuse it may have been read from had.
func New(initialState bool) *Fuse {
	return &Fuse{initialState: initialState}
}

func (f *Fuse) InitialState() bool {
	return f.initialState
}

func (f *Fuse) AsBool() bool {
	return f.initialState != f.zapped
}

func (f *Fuse) IsZapped() bool {
	return f.zapped
}

func (f *Fuse) Zap() bool {
	f.zapped = true
	return !f.initialState
}

func (f *Fuse) ZapOnce() (bool, error) {
	if f.zapped {
		return false, errAlreadyZapped()
	}
	return f.Zap(), nil
}

// Equal is structural equality over both fields, same as `==` on the
// values; it exists for symmetry with `AtomicFuse.Equal` and is nil-safe.
func (f *Fuse) Equal(other *Fuse) bool {
	if f == nil || other == nil {
		return f == other
	}
	return *f == *other
}

func (f *Fuse) String() string {
	return fmt.Sprintf("fuse(initial=%t zapped=%t)", f.initialState, f.zapped)
}
