package main

import (
	"errors"
	"fmt"
	"io"

	"github.com/kjhall/bitpack"
)

func usageErrorf(format string, args ...any) error {
	return fmt.Errorf("%w: "+format, append([]any{bitpack.ErrUsage}, args...)...)
}

// exitCodeFor prints err (if any) to stderr and returns the exit code the
// CLI contract assigns to it: 0 for nil, 1 for usage errors, 2 for data
// errors detected by the core.
func exitCodeFor(err error, stderr io.Writer) int {
	if err == nil {
		return 0
	}
	fmt.Fprintln(stderr, err)

	switch {
	case errors.Is(err, bitpack.ErrUsage), errors.Is(err, bitpack.ErrUnknownVariant):
		return 1
	default:
		return 2
	}
}
