package main

import (
	"bytes"
	"context"
	"os/exec"
	"strings"
	"time"
)

// retry defaults, used for the push commands which are idempotent
const (
	retryAttempts = 3
	retryDelay    = 500 * time.Millisecond
	retryBackoff  = 2.0
	retryMaxDelay = 5 * time.Second
)

type execResult struct {
	cmdline string
	stdout  string
	stderr  string
}

// runCommand runs cmd to completion and captures both output streams.
// A non-zero exit comes back as ErrExternalTool with the stderr text.
func runCommand(cmd *exec.Cmd) (execResult, error) {
	var outbuf, errbuf bytes.Buffer
	cmd.Stdout = &outbuf
	cmd.Stderr = &errbuf

	err := cmd.Run()
	res := execResult{
		cmdline: strings.Join(cmd.Args, " "),
		stdout:  outbuf.String(),
		stderr:  errbuf.String(),
	}
	if err != nil {
		return res, wrapExternal(res.cmdline, res.stderr, err)
	}
	return res, nil
}

// runWithRetry retries fn with exponential backoff until it succeeds, the
// attempts are exhausted, or ctx expires. Each attempt gets its own timeout.
// The last error is returned so its diagnostics are not lost.
func runWithRetry(ctx context.Context, attempts int, timeout time.Duration, fn func(context.Context) error) error {
	delay := retryDelay
	var lastErr error
	for try := 0; try < attempts; try++ {
		attemptCtx, cancel := context.WithTimeout(ctx, timeout)
		lastErr = fn(attemptCtx)
		cancel()
		if lastErr == nil {
			return nil
		}
		if try == attempts-1 {
			break
		}
		select {
		case <-time.After(delay):
		case <-ctx.Done():
			return lastErr
		}
		delay = time.Duration(float64(delay) * retryBackoff)
		if delay > retryMaxDelay {
			delay = retryMaxDelay
		}
	}
	return lastErr
}
