package efuse

import "testing"

/*
Run a benchmark body in capped batches.

Some of these benchmark bodies are so short that go bench will run
`b.N` sky high, and the preallocated fuse pools get ridiculous at
that N and start to have difficult-to-constrain memory-pressure
effects on *subsequent* benchmark functions.  Capping the batch
size keeps the pools bounded without putting allocation inside the
timed loop.
*/
func subbatch(b *testing.B, fn func(*testing.B)) {
	maxSize := 100 * 1000
	originalN := b.N
	for n := b.N; n > 0; n -= maxSize {
		b.N = n // max left
		if b.N > maxSize {
			b.N = maxSize
		}
		fn(b)
	}
	b.N = originalN
}
