// Package main provides the entry point for charxcore.
// charxcore is a byte-serial UTF-8/UTF-16/UTF-32 transcoder built around a
// single 32-bit character register.
//
// For the full CLI, use: go run ./cmd/charxcore
package main

import (
	"fmt"
	"os"
)

func main() {
	fmt.Println("charxcore - byte-serial UTF-8/UTF-16/UTF-32 transcoder")
	fmt.Println("")
	fmt.Println("Usage: charxcore [options] [file]")
	fmt.Println("")
	fmt.Println("Options:")
	fmt.Println("  -from        Input encoding: utf8, utf16, or utf32")
	fmt.Println("  -to          Output encoding: utf8, utf16, or utf32")
	fmt.Println("  -cbe         Big-endian byte order for utf16/utf32")
	fmt.Println("  -chk-range   Treat non-Unicode code points as errors")
	fmt.Println("  -v           Verbose output")
	fmt.Println("")
	fmt.Println("Run 'go run ./cmd/charxcore' for the full CLI, or")
	fmt.Println("'go run ./cmd/charxbatch' to validate a batch of files concurrently.")

	if len(os.Args) > 1 {
		fmt.Println("\nNote: You provided arguments. Use 'go run ./cmd/charxcore' instead.")
	}
}
