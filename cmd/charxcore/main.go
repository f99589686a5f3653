// Package main provides the entry point for charxcore.
// charxcore is a byte-serial transcoder built on the character register
// core: it drives one core.Register through an input file one byte at a
// time and reads the converted output back out the same way.
package main

import (
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/sarchlab/charxcore/core"
)

var (
	from      = flag.String("from", "utf8", "Input encoding: utf8, utf16, or utf32")
	to        = flag.String("to", "utf8", "Output encoding: utf8, utf16, or utf32")
	bigEndian = flag.Bool("cbe", false, "Big-endian byte order for utf16/utf32")
	chkRange  = flag.Bool("chk-range", true, "Treat non-Unicode code points and out-of-range values as errors")
	verbose   = flag.Bool("v", false, "Verbose output")
)

func main() {
	flag.Parse()

	cfg := &core.Config{ChkRange: *chkRange, BigEndian: *bigEndian}

	var in io.Reader = os.Stdin
	if flag.NArg() > 0 {
		f, err := os.Open(flag.Arg(0))
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error opening input: %v\n", err)
			os.Exit(1)
		}
		defer f.Close()
		in = f
	}

	input, err := io.ReadAll(in)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error reading input: %v\n", err)
		os.Exit(1)
	}

	out, errCount, err := transcode(input, *from, *to, cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	os.Stdout.Write(out)

	if *verbose {
		fmt.Fprintf(os.Stderr, "\n%s -> %s: %d input bytes, %d output bytes, %d flagged characters\n",
			*from, *to, len(input), len(out), errCount)
	}

	if errCount > 0 {
		os.Exit(1)
	}
}

// transcode drives a single core.Register through input one byte at a time,
// decoding from the `from` encoding and re-encoding each completed
// character into the `to` encoding before moving on to the next one. On
// retry (per §7, a write that could not be applied) any already-ready
// output is flushed first. A revert that leaves the register's PendingWord
// set (§4.7/§9: an unpaired high surrogate) only has its read side reset,
// and the byte that had already been consumed into the abandoned word is
// resubmitted alongside the current one, so no input byte is lost; any
// other retry reset is a full reset_all with the current byte resubmitted
// as a fresh entry.
func transcode(input []byte, from, to string, cfg *core.Config) ([]byte, int, error) {
	writeByte, err := writerFor(from)
	if err != nil {
		return nil, 0, err
	}
	reader, err := readerFor(to)
	if err != nil {
		return nil, 0, err
	}

	var out []byte
	errCount := 0
	reg := core.NewRegister()
	var prevByte byte

	for _, b := range input {
		writeByte(reg, b, cfg)
		if reg.Retry() {
			if reg.Ready() {
				out, errCount = flush(out, reg, reader, cfg, errCount)
			}
			if reg.PendingWord() {
				reg.ResetRead()
				writeByte(reg, prevByte, cfg)
			} else {
				reg.Reset()
			}
			writeByte(reg, b, cfg)
		}
		if reg.Ready() {
			out, errCount = flush(out, reg, reader, cfg, errCount)
			reg.Reset()
		}
		prevByte = b
	}

	return out, errCount, nil
}

// flush appends reader's full encoding of reg's current character to out,
// counting it as an error per cfg's chk_range policy if flagged.
func flush(out []byte, reg *core.Register, reader encoding, cfg *core.Config, errCount int) ([]byte, int) {
	if reg.Error(cfg.ChkRange) {
		errCount++
	}
	reg.ResetRead()
	for {
		b, eof := reader.read(reg, cfg)
		if eof {
			break
		}
		out = append(out, b)
	}
	return out, errCount
}

// encoding bundles one encoding's write/read/EOF operations on a Register,
// so the transcoding loop above can stay encoding-agnostic.
type encoding struct {
	write func(r *core.Register, b byte, cfg *core.Config)
	read  func(r *core.Register, cfg *core.Config) (byte, bool)
}

func writerFor(name string) (func(r *core.Register, b byte, cfg *core.Config), error) {
	e, err := encodingFor(name)
	if err != nil {
		return nil, err
	}
	return e.write, nil
}

func readerFor(name string) (encoding, error) {
	return encodingFor(name)
}

func encodingFor(name string) (encoding, error) {
	switch name {
	case "utf8":
		return encoding{
			write: func(r *core.Register, b byte, _ *core.Config) { r.WriteUTF8(b) },
			read: func(r *core.Register, _ *core.Config) (byte, bool) {
				if r.BoutEOF() {
					return 0, true
				}
				return r.ReadUTF8(), false
			},
		}, nil
	case "utf16":
		return encoding{
			write: func(r *core.Register, b byte, cfg *core.Config) { r.WriteUTF16(b, cfg) },
			read: func(r *core.Register, cfg *core.Config) (byte, bool) {
				if r.UoutEOF() {
					return 0, true
				}
				return r.ReadUTF16(cfg), false
			},
		}, nil
	case "utf32":
		return encoding{
			write: func(r *core.Register, b byte, cfg *core.Config) { r.WriteUTF32(b, cfg) },
			read: func(r *core.Register, cfg *core.Config) (byte, bool) {
				if r.CoutEOF() {
					return 0, true
				}
				return r.ReadUTF32(cfg), false
			},
		}, nil
	default:
		return encoding{}, fmt.Errorf("unknown encoding %q", name)
	}
}
