package main

import (
	"bufio"
	"io"
	"math"
	"strings"
	"time"

	"github.com/github/git-sizer/counts"
	"github.com/github/git-sizer/git"
	"github.com/github/git-sizer/meter"
)

// fitsCount32 reports whether the sizer's 32-bit object counts can represent
// the threshold. Past that the conversion wraps to zero and would admit
// every blob, so such limits must stay on the diff walk.
func fitsCount32(threshold int64) bool {
	return threshold <= math.MaxUint32
}

// scanHistorySizer aggregates blob sizes through the git-sizer library and
// then resolves object ids to paths with one rev-list pass. Any failure here
// just sends the caller to the diff walk; the result shape is identical
// apart from the missing commit provenance.
func (repo *Repository) scanHistorySizer(threshold int64) (ScanResult, *ScanReport, error) {
	report := NewScanReport("history (sizer)")

	sizerRepo, err := git.NewRepository(repo.path)
	if err != nil {
		return nil, nil, err
	}
	defer sizerRepo.Close()

	var progressMeter meter.Progress
	if repo.opts.verbose {
		progressMeter = meter.NewProgressMeter(100 * time.Millisecond)
	} else {
		progressMeter = &meter.NoProgressMeter{}
	}

	refIter, err := sizerRepo.NewReferenceIter()
	if err != nil {
		return nil, nil, err
	}
	defer func() {
		if refIter != nil {
			refIter.Close()
		}
	}()

	iter, in, err := sizerRepo.NewObjectIter("--stdin", "--date-order")
	if err != nil {
		return nil, nil, err
	}
	defer func() {
		if iter != nil {
			iter.Close()
		}
	}()

	// feed every reference into the object iterator
	errChan := make(chan error, 1)
	go func() {
		defer in.Close()
		bufin := bufio.NewWriter(in)
		defer bufin.Flush()

		for {
			ref, ok, err := refIter.Next()
			if err != nil {
				errChan <- err
				return
			}
			if !ok {
				break
			}
			if _, err := bufin.WriteString(ref.OID.String()); err != nil {
				errChan <- err
				return
			}
			if err := bufin.WriteByte('\n'); err != nil {
				errChan <- err
				return
			}
		}

		err := refIter.Close()
		errChan <- err
		refIter = nil
	}()

	blobSizes := make(map[string]int64)
	progressMeter.Start("Scanning blob: %d")
	for {
		oid, objectType, objectSize, err := iter.Next()
		if err != nil {
			if err != io.EOF {
				return nil, nil, err
			}
			break
		}
		if objectType != "blob" {
			continue
		}
		progressMeter.Inc()
		if objectSize >= counts.Count32(threshold) {
			blobSizes[oid.String()] = int64(objectSize)
		}
	}
	progressMeter.Done()

	if err := <-errChan; err != nil {
		return nil, nil, err
	}

	result, err := repo.resolveBlobPaths(blobSizes)
	if err != nil {
		return nil, nil, err
	}
	report.found = len(result)
	return result, report, nil
}

// resolveBlobPaths maps the qualifying blob ids to the paths that carried
// them, keeping the largest object per path.
func (repo *Repository) resolveBlobPaths(blobSizes map[string]int64) (ScanResult, error) {
	iter, err := repo.NewOutputIter("-c", "core.quotepath=false", "rev-list", "--objects", "--all")
	if err != nil {
		return nil, err
	}
	defer iter.Close()

	best := make(map[string]ObjectRecord)
	for {
		line, ok, err := iter.Next()
		if err != nil {
			return nil, err
		}
		if !ok {
			break
		}
		// format: "<oid> <path>"; commits and unnamed trees carry no path
		sp := strings.IndexByte(line, ' ')
		if sp < 0 {
			continue
		}
		oid, path := line[:sp], line[sp+1:]
		size, hit := blobSizes[oid]
		if !hit || path == "" {
			continue
		}
		if prev, ok := best[path]; ok && prev.size >= size {
			continue
		}
		best[path] = ObjectRecord{path: path, size: size, oid: oid}
	}

	result := make(ScanResult, 0, len(best))
	for _, rec := range best {
		result = append(result, rec)
	}
	sortRecords(result)
	return result, nil
}
