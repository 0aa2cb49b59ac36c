package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/dustin/go-humanize"
)

// Convert number to bytes according to Uint
// e.g. 10 Kib => (10 * 1024) bytes
// valid unit: b, B, k, K, m, M, g, G
func UnitConvert(input string) (uint64, error) {
	if len(input) == 0 {
		return 0, fmt.Errorf("expected a value followed by --limit options, but you are: %s", input)
	}
	v := input[:len(input)-1]
	u := input[len(input)-1:]
	cv, err := strconv.ParseUint(v, 10, 32)
	if err != nil {
		return 0, err
	}
	if strings.ToLower(u) == "b" {
		return cv, nil
	} else if strings.ToLower(u) == "k" {
		return cv * 1024, nil
	} else if strings.ToLower(u) == "m" {
		return cv * 1024 * 1024, nil
	} else if strings.ToLower(u) == "g" {
		return cv * 1024 * 1024 * 1024, nil
	} else {
		err := fmt.Errorf("expected format: --limit=<n>b|k|m|g, but you are: --limit=%s", input)
		return 0, err
	}
}

func TrimeDoubleQuote(input string) string {
	return strings.Trim(input, "\"")
}

// ShowScanResult prints at most limit records as a table, largest first.
func ShowScanResult(result ScanResult, limit uint32) {
	PrintLocalWithGreenln("scan done")
	PrintLocalWithYellowln("the following paths held the largest objects seen in the scan range")

	shown := result
	if limit > 0 && int(limit) < len(shown) {
		shown = shown[:limit]
	}

	maxPathLen := len("File Name")
	for _, rec := range shown {
		if len(rec.path) > maxPathLen {
			maxPathLen = len(rec.path)
		}
	}

	fmt.Fprintf(stdout, "| %-*s | %-10s | %-40s |\n", maxPathLen, "File Name", "Size", "Last Big Commit")
	fmt.Fprintf(stdout, "|-%s-|-%s-|-%s-|\n", strings.Repeat("-", maxPathLen), strings.Repeat("-", 10), strings.Repeat("-", 40))
	for _, rec := range shown {
		commit := rec.commit
		if commit == "" {
			commit = "-"
		}
		fmt.Fprintf(stdout, "| %-*s | %-10s | %-40.40s |\n", maxPathLen, rec.path, humanize.IBytes(uint64(rec.size)), commit)
	}
}
