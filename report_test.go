package main

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestScanReportSkips(t *testing.T) {
	report := NewScanReport("history")
	assert.Empty(t, report.Skipped())

	report.Skip("commit abc", fmt.Errorf("diff-tree failed"))
	report.Skip("blob def", fmt.Errorf("missing object"))

	assert.Equal(t, []string{
		"commit abc: diff-tree failed",
		"blob def: missing object",
	}, report.Skipped())
	assert.Equal(t, "history", report.mode)
}

func TestScanReportElapsed(t *testing.T) {
	report := NewScanReport("working-tree")
	time.Sleep(time.Millisecond)
	assert.Greater(t, report.Elapsed(), time.Duration(0))
}
