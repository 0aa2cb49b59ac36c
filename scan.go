package main

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"
)

// ObjectRecord is one observed large file. For history scans it carries the
// commit that produced the largest version ever seen for that path.
type ObjectRecord struct {
	path       string // repo-relative, slash-separated
	size       int64
	oid        string
	commit     string
	commitDate string
	commitMsg  string
}

type ScanResult []ObjectRecord

// sortRecords orders by size descending, ties by path ascending.
func sortRecords(result ScanResult) {
	sort.Slice(result, func(i, j int) bool {
		if result[i].size != result[j].size {
			return result[i].size > result[j].size
		}
		return result[i].path < result[j].path
	})
}

const progressInterval = 50

// thresholdBytes parses and validates the configured size limit.
func (repo *Repository) thresholdBytes() (int64, error) {
	limit, err := UnitConvert(repo.opts.limit)
	if err != nil {
		// ParseUint rejects negative values, but the caller should see
		// the threshold sentinel, not a numeric parse failure
		if strings.HasPrefix(strings.TrimSpace(repo.opts.limit), "-") {
			return 0, fmt.Errorf("%w: %s", ErrInvalidThreshold, repo.opts.limit)
		}
		return 0, err
	}
	if limit == 0 {
		return 0, ErrInvalidThreshold
	}
	return int64(limit), nil
}

// ScanWorkingTree walks the checkout and reports every file at or above the
// size limit. Per-file stat failures are recorded and skipped, never fatal.
func (repo *Repository) ScanWorkingTree() (ScanResult, *ScanReport, error) {
	threshold, err := repo.thresholdBytes()
	if err != nil {
		return nil, nil, err
	}
	return scanWorkingTree(repo.path, repo.gitDir, threshold)
}

func scanWorkingTree(root, gitDir string, threshold int64) (ScanResult, *ScanReport, error) {
	report := NewScanReport("worktree")
	var result ScanResult

	absRoot, err := filepath.Abs(root)
	if err != nil {
		return nil, nil, err
	}

	err = filepath.Walk(absRoot, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			report.Skip(path, err)
			return nil
		}
		if info.IsDir() {
			if path == gitDir || filepath.Base(path) == ".git" {
				return filepath.SkipDir
			}
			return nil
		}
		if !info.Mode().IsRegular() {
			return nil
		}
		report.filesVisited++
		if info.Size() < threshold {
			return nil
		}
		// files that are already pointer stubs stay out of the result
		if info.Size() <= MaxPointerSize && isPointerFile(path) {
			return nil
		}
		rel, err := filepath.Rel(absRoot, path)
		if err != nil {
			report.Skip(path, err)
			return nil
		}
		result = append(result, ObjectRecord{
			path: filepath.ToSlash(rel),
			size: info.Size(),
		})
		return nil
	})
	if err != nil {
		return nil, nil, err
	}

	sortRecords(result)
	report.found = len(result)
	return result, report, nil
}

// ScanHistory reports, for every path that ever held an object at or above
// the size limit, the largest version seen across all reachable commits.
// When the git-sizer fast path cannot serve, it falls back to a per-commit
// diff walk with the same result shape.
func (repo *Repository) ScanHistory() (ScanResult, *ScanReport, error) {
	threshold, err := repo.thresholdBytes()
	if err != nil {
		return nil, nil, err
	}

	if fitsCount32(threshold) {
		if result, report, err := repo.scanHistorySizer(threshold); err == nil {
			return result, report, nil
		}
	}
	return repo.scanHistoryWalk(threshold)
}

type commitInfo struct {
	hash    string
	parents []string
	date    string
	subject string
}

// parseCommitLine splits one `git log --format=%H%x01%P%x01%cI%x01%s` line.
func parseCommitLine(line string) (commitInfo, error) {
	parts := strings.SplitN(line, "\x01", 4)
	if len(parts) != 4 {
		return commitInfo{}, fmt.Errorf("malformed commit line: %q", line)
	}
	ci := commitInfo{
		hash:    parts[0],
		date:    parts[2],
		subject: parts[3],
	}
	if parts[1] != "" {
		ci.parents = strings.Split(parts[1], " ")
	}
	return ci, nil
}

// parseLsTreeLine splits one `git ls-tree -r -l` line:
//
//	<mode> blob <oid> <size>\t<path>
func parseLsTreeLine(line string) (oid string, size int64, path string, ok bool) {
	tab := strings.IndexByte(line, '\t')
	if tab < 0 {
		return "", 0, "", false
	}
	path = line[tab+1:]
	fields := strings.Fields(line[:tab])
	if len(fields) != 4 || fields[1] != "blob" {
		return "", 0, "", false
	}
	size, err := strconv.ParseInt(fields[3], 10, 64)
	if err != nil {
		return "", 0, "", false
	}
	return fields[2], size, path, true
}

// parseDiffTreeLine splits one `git diff-tree -r -M` line:
//
//	:<oldmode> <newmode> <oldoid> <newoid> <status>\t<path>[\t<newpath>]
//
// Deletions carry no object worth sizing; renames report the new path.
func parseDiffTreeLine(line string) (oid string, path string, ok bool) {
	if !strings.HasPrefix(line, ":") {
		return "", "", false
	}
	tab := strings.IndexByte(line, '\t')
	if tab < 0 {
		return "", "", false
	}
	fields := strings.Fields(line[1:tab])
	if len(fields) != 5 {
		return "", "", false
	}
	status := fields[4]
	if strings.HasPrefix(status, "D") {
		return "", "", false
	}
	paths := strings.Split(line[tab+1:], "\t")
	path = paths[0]
	if strings.HasPrefix(status, "R") || strings.HasPrefix(status, "C") {
		if len(paths) < 2 {
			return "", "", false
		}
		path = paths[1]
	}
	return fields[3], path, true
}

func (repo *Repository) scanHistoryWalk(threshold int64) (ScanResult, *ScanReport, error) {
	report := NewScanReport("history")

	iter, err := repo.NewOutputIter(
		"-c", "core.quotepath=false",
		"log", "--all", "--reverse", "--date-order",
		"--format=%H\x01%P\x01%cI\x01%s",
	)
	if err != nil {
		return nil, nil, err
	}
	defer iter.Close()

	checker, err := repo.NewBatchChecker()
	if err != nil {
		return nil, nil, err
	}
	defer checker.Close()

	best := make(map[string]ObjectRecord)
	for {
		line, ok, err := iter.Next()
		if err != nil {
			return nil, nil, err
		}
		if !ok {
			break
		}
		ci, err := parseCommitLine(line)
		if err != nil {
			report.Skip(line, err)
			continue
		}
		walkCommit(repo, ci, checker, threshold, best, report)

		report.commitsScanned++
		if report.commitsScanned%progressInterval == 0 {
			PrintLocalWithPlainln("scanned %d commits...", report.commitsScanned)
		}
	}

	result := make(ScanResult, 0, len(best))
	for _, rec := range best {
		result = append(result, rec)
	}
	sortRecords(result)
	report.found = len(result)
	return result, report, nil
}

// walkCommit folds one commit's file set into best. A failed comparison
// against one parent is skipped; the other parents still count.
func walkCommit(git gitRunner, ci commitInfo, checker sizeResolver, threshold int64, best map[string]ObjectRecord, report *ScanReport) {
	record := func(oid, path string, size int64) {
		if size < threshold {
			return
		}
		if prev, ok := best[path]; ok && prev.size >= size {
			return
		}
		best[path] = ObjectRecord{
			path:       path,
			size:       size,
			oid:        oid,
			commit:     ci.hash,
			commitDate: ci.date,
			commitMsg:  ci.subject,
		}
	}

	if len(ci.parents) == 0 {
		// root commit: its full tree, sizes included in the listing
		out, err := git.gitOutput("-c", "core.quotepath=false", "ls-tree", "-r", "-l", ci.hash)
		if err != nil {
			report.Skip(ci.hash, err)
			return
		}
		for _, line := range strings.Split(out, "\n") {
			if oid, size, path, ok := parseLsTreeLine(line); ok {
				record(oid, path, size)
			}
		}
		return
	}

	for _, parent := range ci.parents {
		out, err := git.gitOutput("-c", "core.quotepath=false", "diff-tree", "-r", "-M", parent, ci.hash)
		if err != nil {
			report.Skip(parent+".."+ci.hash, err)
			continue
		}
		for _, line := range strings.Split(out, "\n") {
			oid, path, ok := parseDiffTreeLine(line)
			if !ok {
				continue
			}
			size, err := checker.size(oid)
			if err != nil {
				report.Skip(path+"@"+ci.hash, err)
				continue
			}
			record(oid, path, size)
		}
	}
}
