package core

// Request is the external contract for one step: the host sets at most one
// field, and Step honours it by the fixed §4.1 priority order regardless of
// how many fields happen to be set.
type Request struct {
	ResetAll  bool
	ResetRead bool

	WriteUTF32 *byte
	WriteUTF8  *byte
	WriteUTF16 *byte

	ReadUTF32 bool
	ReadUTF8  bool
	ReadUTF16 bool
}

// StepResult is the full observable state of the register after one
// dispatched action, per the external-interfaces list of observable outputs.
type StepResult struct {
	R uint32

	Rcip, Rcop uint8
	Rbip, Rbop uint8
	Ruip, Ruop uint8

	CinEOF, CoutEOF bool
	BinEOF, BoutEOF bool
	UinEOF, UoutEOF bool

	Ready, Retry, Invalid, Overlong, Nonuni, Error bool

	Normal, Control, Surrogate, Highchar, Private, Nonchar bool

	// Byte holds the output of a read_utf32/read_utf8/read_utf16 action; it
	// is 0 and meaningless for every other action.
	Byte byte
}

// Step dispatches exactly one action per call, chosen from req by the fixed
// priority order: reset_all, reset_read, the three writes, then the three
// reads. Fields of req beyond the first honoured one are ignored.
func (r *Register) Step(req Request, cfg *Config) StepResult {
	switch {
	case req.ResetAll:
		r.Reset()

	case req.ResetRead:
		r.ResetRead()

	case req.WriteUTF32 != nil:
		r.WriteUTF32(*req.WriteUTF32, cfg)

	case req.WriteUTF8 != nil:
		r.WriteUTF8(*req.WriteUTF8)

	case req.WriteUTF16 != nil:
		r.WriteUTF16(*req.WriteUTF16, cfg)

	case req.ReadUTF32:
		return r.observe(cfg, r.ReadUTF32(cfg))

	case req.ReadUTF8:
		return r.observe(cfg, r.ReadUTF8())

	case req.ReadUTF16:
		return r.observe(cfg, r.ReadUTF16(cfg))
	}

	return r.observe(cfg, 0)
}

// observe snapshots every observable output listed in the external
// interfaces section, plus the byte a read action just produced.
func (r *Register) observe(cfg *Config, b byte) StepResult {
	st := r.Status()
	props := r.Properties(cfg.ChkRange)
	errFlag := r.Error(cfg.ChkRange)

	return StepResult{
		R: r.R,

		Rcip: r.Rcip, Rcop: r.Rcop,
		Rbip: r.utf8Len(), Rbop: r.Rbop,
		Ruip: r.Ruip, Ruop: r.Ruop,

		CinEOF: r.CinEOF(), CoutEOF: r.CoutEOF(),
		BinEOF: r.BinEOF(), BoutEOF: r.BoutEOF(),
		UinEOF: r.UinEOF(), UoutEOF: r.UoutEOF(),

		Ready: st.Ready, Retry: r.retry, Invalid: st.Invalid,
		Overlong: st.Overlong, Nonuni: st.Nonuni, Error: errFlag,

		Normal: props.Normal, Control: props.Control,
		Surrogate: props.Surrogate, Highchar: props.Highchar,
		Private: props.Private, Nonchar: props.Nonchar,

		Byte: b,
	}
}
