package efuse

import (
	"go.polydawn.net/meep"
)

/*
Returned by `ZapOnce` when the fuse was already zapped: the caller
was not the one to trigger the transition, and retrying cannot
change that.

The fuse itself remains valid (and zapped) after this error.
*/
type ErrAlreadyZapped struct {
	meep.TraitAutodescribing

	// No TraitTraceable: losing the zap race is an expected result on
	// a path measured in nanoseconds, and collecting stacks there is
	// not free.
}

func errAlreadyZapped() error {
	return meep.Meep(&ErrAlreadyZapped{})
}
