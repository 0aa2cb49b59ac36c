package main

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for the failure classes callers are expected to branch on.
// Check them with errors.Is; everything else is wrapped context.

// ErrInvalidRepository is returned when the given path does not contain an
// initialized Git repository.
var ErrInvalidRepository = errors.New("not a git repository")

// ErrInvalidThreshold is returned when the size threshold is not positive.
// It is rejected before any scanning starts.
var ErrInvalidThreshold = errors.New("size threshold must be positive")

// ErrExternalTool is returned when a git or git-lfs invocation exits
// non-zero. The wrapped message carries the captured diagnostic text.
var ErrExternalTool = errors.New("external tool failed")

// ErrAttributesWrite is returned when appending to the attributes file
// fails. The scan results that led to the write are still usable.
var ErrAttributesWrite = errors.New("cannot write attributes file")

// ErrNotPointer is returned when blob content is not a Git LFS pointer.
var ErrNotPointer = errors.New("not an LFS pointer")

func wrapExternal(cmdline, diag string, err error) error {
	diag = strings.TrimSpace(diag)
	if diag == "" {
		return fmt.Errorf("%w: %s: %v", ErrExternalTool, cmdline, err)
	}
	return fmt.Errorf("%w: %s: %s", ErrExternalTool, cmdline, diag)
}
