package main

import (
	"fmt"
	"os"
	"path"
	"sort"
	"strings"

	mapset "github.com/deckarep/golang-set"
)

// AttributesFile is the pattern file merged by each synthesis run.
const AttributesFile = ".gitattributes"

const attrLineSuffix = " filter=lfs diff=lfs merge=lfs -text"

// derivePatterns turns scanned records into candidate tracking patterns.
// A file with an extension yields a global `*.<ext>` plus, when it does not
// sit at the repository root, a directory-scoped `<dir>/*.<ext>`. A file
// without an extension yields its literal path and nothing else. For names
// like archive.tar.gz only the final extension counts; that is a known
// limitation, kept as-is.
func derivePatterns(result ScanResult) mapset.Set {
	patterns := mapset.NewSet()
	for _, rec := range result {
		dir, name := path.Split(rec.path)
		dir = strings.TrimSuffix(dir, "/")
		ext := strings.TrimPrefix(path.Ext(name), ".")
		if ext == "" {
			patterns.Add(rec.path)
			continue
		}
		patterns.Add("*." + ext)
		if dir != "" {
			patterns.Add(dir + "/*." + ext)
		}
	}
	return patterns
}

// sortedPatterns flattens a pattern set for display and command lines.
func sortedPatterns(patterns mapset.Set) []string {
	flat := make([]string, 0, patterns.Cardinality())
	for p := range patterns.Iter() {
		flat = append(flat, p.(string))
	}
	sort.Strings(flat)
	return flat
}

// parseAttributePatterns collects the pattern field of every rule line.
func parseAttributePatterns(content string) mapset.Set {
	existing := mapset.NewSet()
	for _, line := range strings.Split(content, "\n") {
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		existing.Add(strings.Fields(line)[0])
	}
	return existing
}

// mergeAttributes appends the patterns not yet present in the attributes
// file, one rule line each, in sorted order. Existing lines are never
// touched: the file only ever grows. Returns the patterns it appended.
func mergeAttributes(attrPath string, candidates mapset.Set) ([]string, error) {
	content, err := os.ReadFile(attrPath)
	if err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("%w: %s: %v", ErrAttributesWrite, attrPath, err)
	}

	delta := candidates.Difference(parseAttributePatterns(string(content)))
	if delta.Cardinality() == 0 {
		return nil, nil
	}

	appended := make([]string, 0, delta.Cardinality())
	for p := range delta.Iter() {
		appended = append(appended, p.(string))
	}
	sort.Strings(appended)

	var buf strings.Builder
	if len(content) > 0 && content[len(content)-1] != '\n' {
		buf.WriteByte('\n')
	}
	for _, p := range appended {
		buf.WriteString(p)
		buf.WriteString(attrLineSuffix)
		buf.WriteByte('\n')
	}

	f, err := os.OpenFile(attrPath, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrAttributesWrite, attrPath, err)
	}
	defer f.Close()
	if _, err := f.WriteString(buf.String()); err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrAttributesWrite, attrPath, err)
	}

	return appended, nil
}
