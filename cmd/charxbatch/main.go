// Package main provides the entry point for charxbatch.
// charxbatch validates a batch of files concurrently, one core.Register
// per file: per §5, instances share no state and need no internal locking,
// so the batch runs each file's registers on its own goroutine.
package main

import (
	"flag"
	"fmt"
	"os"

	"golang.org/x/sync/errgroup"

	"github.com/sarchlab/charxcore/core"
)

var (
	encoding  = flag.String("encoding", "utf8", "Encoding to validate: utf8, utf16, or utf32")
	bigEndian = flag.Bool("cbe", false, "Big-endian byte order for utf16/utf32")
	chkRange  = flag.Bool("chk-range", true, "Treat non-Unicode code points and out-of-range values as errors")
	verbose   = flag.Bool("v", false, "Verbose output")
)

// fileReport summarizes one file's validation pass.
type fileReport struct {
	path       string
	characters int
	flagged    int
}

func main() {
	flag.Parse()

	paths := flag.Args()
	if len(paths) == 0 {
		fmt.Fprintf(os.Stderr, "Usage: charxbatch [options] <file>...\n\nOptions:\n")
		flag.PrintDefaults()
		os.Exit(1)
	}

	cfg := &core.Config{ChkRange: *chkRange, BigEndian: *bigEndian}

	reports := make([]fileReport, len(paths))
	var g errgroup.Group

	for i, path := range paths {
		i, path := i, path
		g.Go(func() error {
			report, err := validateFile(path, *encoding, cfg)
			if err != nil {
				return fmt.Errorf("%s: %w", path, err)
			}
			reports[i] = report
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	exitCode := 0
	for _, report := range reports {
		if *verbose || report.flagged > 0 {
			fmt.Printf("%s: %d characters, %d flagged\n", report.path, report.characters, report.flagged)
		}
		if report.flagged > 0 {
			exitCode = 1
		}
	}
	os.Exit(exitCode)
}

// validateFile drives one core.Register over a file's bytes in the given
// encoding, counting completed characters and how many carry an error flag.
// A revert that leaves PendingWord set (§4.7/§9: an unpaired high surrogate)
// counts the orphaned character, only resets the read side, and resubmits
// the byte already consumed into the abandoned word alongside the current
// one, so no character is lost or miscounted; any other retry is a full
// reset_all with the current byte resubmitted as a fresh entry.
func validateFile(path string, encoding string, cfg *core.Config) (fileReport, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return fileReport{}, fmt.Errorf("failed to read file: %w", err)
	}

	write, err := writeFunc(encoding)
	if err != nil {
		return fileReport{}, err
	}

	report := fileReport{path: path}
	reg := core.NewRegister()
	var prevByte byte

	for _, b := range data {
		write(reg, b, cfg)
		if reg.Retry() {
			if reg.Ready() {
				report.characters++
				if reg.Error(cfg.ChkRange) {
					report.flagged++
				}
			}
			if reg.PendingWord() {
				reg.ResetRead()
				write(reg, prevByte, cfg)
			} else {
				reg.Reset()
			}
			write(reg, b, cfg)
		}
		if reg.Ready() {
			report.characters++
			if reg.Error(cfg.ChkRange) {
				report.flagged++
			}
			reg.Reset()
		}
		prevByte = b
	}

	return report, nil
}

func writeFunc(encoding string) (func(r *core.Register, b byte, cfg *core.Config), error) {
	switch encoding {
	case "utf8":
		return func(r *core.Register, b byte, _ *core.Config) { r.WriteUTF8(b) }, nil
	case "utf16":
		return (*core.Register).WriteUTF16, nil
	case "utf32":
		return (*core.Register).WriteUTF32, nil
	default:
		return nil, fmt.Errorf("unknown encoding %q", encoding)
	}
}
