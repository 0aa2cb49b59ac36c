package main

import (
	"fmt"
	"time"
)

// ScanReport is what a scan hands back instead of logging as it goes.
// The CLI prints it; library callers inspect it.
type ScanReport struct {
	mode           string
	started        time.Time
	commitsScanned int
	filesVisited   int
	found          int
	skipped        []string
}

func NewScanReport(mode string) *ScanReport {
	return &ScanReport{mode: mode, started: time.Now()}
}

// Skip records one absorbed per-unit failure.
func (r *ScanReport) Skip(unit string, err error) {
	r.skipped = append(r.skipped, fmt.Sprintf("%s: %v", unit, err))
}

func (r *ScanReport) Skipped() []string {
	return r.skipped
}

func (r *ScanReport) Elapsed() time.Duration {
	return time.Since(r.started)
}

// MigrationReport summarizes one synthesis / migration run.
type MigrationReport struct {
	appended []string // patterns newly written to the attributes file
	migrated bool     // history rewritten by git lfs migrate import
	pushed   bool     // LFS objects and refs pushed to the remote
}
