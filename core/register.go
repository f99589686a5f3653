// Package core implements the 32-bit character register: the single stateful
// cell, its six byte pointers, and the status/property classifiers and
// codecs that operate on it.
package core

// Register is the holding cell for one in-flight character, shared by the
// UTF-32, UTF-8 and UTF-16 read/write paths. Only one dispatched action
// touches it per step (see Step in dispatch.go).
type Register struct {
	R uint32

	// Rcip/Rcop track UTF-32 write/read progress (0-4). Unlike Rbip, these
	// are not always recoverable from R alone: a two-byte partial UTF-32
	// write and an unrelated complete write can leave R in the same state,
	// so they are kept as explicit counters.
	Rcip, Rcop uint8

	// Rbop tracks UTF-8 read progress (0-6). The write-side pointer is not
	// stored: it is always derivable from R's band (see utf8Len), matching
	// the register's own design intent that the layout make rbip
	// combinational.
	Rbop uint8

	// Ruip/Ruop track UTF-16 write/read progress (0-4). Ruip is kept
	// explicit rather than derived: a freshly parked high surrogate and a
	// directly-written surrogate code point share the same R value but
	// differ in readiness, which R alone cannot distinguish.
	Ruip, Ruop uint8

	retry bool
	empty bool

	// awaitingLowSurrogate is set while Ruip==2 holds a freshly parked high
	// surrogate still awaiting its pair. It is the one piece of state
	// Classify(R) cannot reconstruct from R alone (see DESIGN.md).
	awaitingLowSurrogate bool

	// freshWordPending is set by the UTF-16 revert path (see utf16.go) to
	// mark that, although Ruip reads 2, the next WriteUTF16 byte starts a
	// brand new word rather than extending the orphaned one already parked
	// in R. Cleared by Reset and by consuming that next byte.
	freshWordPending bool
}

// NewRegister returns a freshly reset register.
func NewRegister() *Register {
	r := &Register{}
	r.Reset()
	return r
}

// Reset implements reset_all: clears R, every pointer, retry, and the
// surrogate-pending marker, and sets the empty sentinel.
func (r *Register) Reset() {
	*r = Register{empty: true}
}

// ResetRead implements reset_read: zeroes the three output pointers only,
// so an already-decoded or already-encoded value can be re-read from the
// start without disturbing R or the write-side pointers.
func (r *Register) ResetRead() {
	r.Rcop = 0
	r.Rbop = 0
	r.Ruop = 0
}

// Empty reports the private empty sentinel: true only immediately after a
// reset, before any byte has been written.
func (r *Register) Empty() bool { return r.empty }

// Retry reports the sticky retry latch.
func (r *Register) Retry() bool { return r.retry }

// PendingWord reports whether the next WriteUTF16 byte begins a fresh word
// after a revert, rather than continuing whatever Ruip's raw value would
// otherwise suggest. Only ever true immediately after a §4.7 revert.
func (r *Register) PendingWord() bool { return r.freshWordPending }

// utf8Len returns the UTF-8 byte count implied by R's current band: either
// the fully-consumed length of a complete (or rejected) sequence, or the
// number of bytes consumed so far of an in-progress one.
func (r *Register) utf8Len() uint8 {
	if r.empty {
		return 0
	}
	return describe(r.R).length
}

// Ready reports the register's ready flag: Classify(R)'s pure derivation,
// except while a high surrogate is freshly parked awaiting its pair, a
// state R alone cannot distinguish from a directly-written surrogate code
// point (see awaitingLowSurrogate).
func (r *Register) Ready() bool {
	if r.empty {
		return false
	}
	if r.awaitingLowSurrogate {
		return false
	}
	return Classify(r.R).Ready
}

// Status returns the full derived status flags, folding in Ready's
// surrogate-pending override.
func (r *Register) Status() Status {
	st := Classify(r.R)
	st.Ready = r.Ready()
	return st
}

// Error computes the derived error signal for the given chk_range policy.
func (r *Register) Error(chkRange bool) bool {
	st := r.Status()
	return r.retry || st.Invalid || st.Overlong || (st.Nonuni && chkRange)
}

// Properties returns the six property bits for the register's current
// value under the given chk_range policy.
func (r *Register) Properties(chkRange bool) Properties {
	return ClassifyProperties(r.R, r.Status(), chkRange)
}

// noteFirstByte clears retry when wasFirst (the pointer was at zero before
// this write) and the write succeeded, per the lifecycle rule that retry is
// cleared only by reset or a successful first-byte write.
func (r *Register) noteFirstByte(wasFirst bool) {
	if wasFirst {
		r.retry = false
	}
	r.empty = false
}

// EOF accessors. Each reports the pointer state after the operation it
// accompanies, per the hardware's same-edge sampling of the eof output.
func (r *Register) CinEOF() bool  { return r.Rcip >= 4 }
func (r *Register) CoutEOF() bool { return r.Rcop >= 4 }
func (r *Register) BinEOF() bool  { return r.utf8Len() >= 6 }
func (r *Register) BoutEOF() bool { return r.Rbop >= r.utf8Len() }
func (r *Register) UinEOF() bool  { return r.Ruip >= 4 }
func (r *Register) UoutEOF() bool { return r.Ruop >= r.utf16Len() }
