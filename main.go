package main

import (
	"context"
	"os"
	"path/filepath"
	"time"

	mapset "github.com/deckarep/golang-set"
)

func main() {
	var op = Options{}
	if err := op.ParseOptions(os.Args[1:]); err != nil {
		PrintLocalWithRedln("parse option error: %s", err)
		os.Exit(1)
	}
	if op.help || op.version {
		return
	}
	if op.interact {
		op.scan = true
		if err := op.SurveyCmd(); err != nil {
			PrintLocalWithRedln("ask question module fail: %s", err)
			os.Exit(1)
		}
	}
	if !op.scan {
		usage()
		return
	}

	repo, err := NewRepository(op.path, op)
	if err != nil {
		PrintLocalWithRedln("couldn't open Git repository: %s", err)
		os.Exit(1)
	}
	defer repo.Close()

	var result ScanResult
	var report *ScanReport
	if op.history {
		result, report, err = repo.ScanHistory()
	} else {
		result, report, err = repo.ScanWorkingTree()
	}
	if err != nil {
		PrintLocalWithRedln("scanning repository error: %s", err)
		os.Exit(1)
	}

	if op.verbose {
		for _, unit := range report.Skipped() {
			PrintLocalWithYellowln("skipped: %s", unit)
		}
	}
	if len(report.Skipped()) > 0 {
		PrintLocalWithYellowln("skipped %d units during scan", len(report.Skipped()))
	}
	PrintLocalWithPlainln("scan finished in %s: %d files visited, %d commits scanned (%s)",
		report.Elapsed().Round(time.Millisecond), report.filesVisited, report.commitsScanned, report.mode)
	if len(result) == 0 {
		PrintLocalWithRedln("no files were scanned")
		os.Exit(1)
	}
	ShowScanResult(result, op.number)

	patterns := sortedPatterns(derivePatterns(result))
	PrintLocalWithPlainln("derived tracking patterns:")
	for _, p := range patterns {
		PrintBlueln("  " + p)
	}

	if op.interact {
		patterns = MultiSelectPatterns(patterns)
		if len(patterns) == 0 {
			PrintLocalWithRedln("no patterns were selected")
			os.Exit(1)
		}
	}

	if !op.track {
		return
	}

	lfs := NewLFSClient(repo)
	if !lfs.IsInstalled() {
		PrintLocalWithRedln("git-lfs is not installed")
		os.Exit(1)
	}
	if err := lfs.Install(); err != nil {
		PrintLocalWithYellowln("skipped: %s", err)
	} else if op.verbose {
		PrintLocalWithGreenln("installed git-lfs hooks")
	}

	selected := mapset.NewSet()
	for _, p := range patterns {
		selected.Add(p)
	}
	mreport := MigrationReport{}
	mreport.appended, err = mergeAttributes(filepath.Join(op.path, AttributesFile), selected)
	if err != nil {
		// the scan result above is still valid, only the write failed
		PrintLocalWithRedln("attributes write error: %s", err)
		os.Exit(1)
	}
	if len(mreport.appended) == 0 {
		PrintLocalWithYellowln("nothing new to track")
	} else {
		PrintLocalWithGreenln("tracking patterns added to %s", AttributesFile)
		for _, p := range mreport.appended {
			PrintLocalWithGreenln("now tracking %s", p)
		}
		// commit before the migrate rewrite: CleanUp resets the working
		// tree and would otherwise discard the attributes change
		if err := lfs.Add(AttributesFile); err != nil {
			PrintLocalWithYellowln("skipped: %s", err)
		} else if err := lfs.Commit(attributesCommitMsg); err != nil {
			PrintLocalWithYellowln("skipped: %s", err)
		} else {
			PrintLocalWithGreenln("committed %s", AttributesFile)
		}
	}

	if op.migrate {
		if op.interact && !ConfirmMigrate() {
			PrintLocalWithRedln("operation aborted")
			os.Exit(1)
		}
		threshold, err := repo.thresholdBytes()
		if err != nil {
			PrintLocalWithRedln("option format error: %s", err)
			os.Exit(1)
		}
		PrintLocalWithPlainln("rewriting history with git lfs migrate import...")
		if err := lfs.MigrateImport(patterns, threshold); err != nil {
			PrintLocalWithRedln("migrate import failed: %s", err)
			os.Exit(1)
		}
		mreport.migrated = true
		PrintLocalWithGreenln("migrate import done")
		repo.CleanUp()
	}

	if op.push {
		PrintLocalWithPlainln("pushing LFS objects and refs to %s...", op.remote)
		if err := lfs.Push(context.Background(), op.remote, op.branch); err != nil {
			PrintLocalWithRedln("push failed: %s", err)
			os.Exit(1)
		}
		mreport.pushed = true
		PrintLocalWithGreenln("push done")
	}
}
