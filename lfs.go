package main

import (
	"context"
	"fmt"
	"strings"
	"time"
)

const pushTimeout = 10 * time.Minute

const attributesCommitMsg = "track large files with git-lfs"

// LFSClient drives the git-lfs extension through the git executable.
// Every method returns the collaborator's diagnostics inside the error;
// nothing here panics or prints on its own.
type LFSClient struct {
	git gitRunner
}

func NewLFSClient(repo *Repository) *LFSClient {
	return &LFSClient{git: repo}
}

// IsInstalled probes for a usable git-lfs.
func (c *LFSClient) IsInstalled() bool {
	_, err := c.git.gitOutput("lfs", "version")
	return err == nil
}

// Install sets up the LFS hooks for this repository.
func (c *LFSClient) Install() error {
	_, err := c.git.gitOutput("lfs", "install")
	return err
}

// Track registers one pattern with git lfs track.
func (c *LFSClient) Track(pattern string) error {
	_, err := c.git.gitOutput("lfs", "track", pattern)
	return err
}

// Untrack removes one pattern from git lfs tracking.
func (c *LFSClient) Untrack(pattern string) error {
	_, err := c.git.gitOutput("lfs", "untrack", pattern)
	return err
}

// ListTracked returns the patterns git lfs currently tracks. Each pattern
// arrives on a line prefixed with "Tracking ", usually quoted.
func (c *LFSClient) ListTracked() ([]string, error) {
	out, err := c.git.gitOutput("lfs", "track")
	if err != nil {
		return nil, err
	}

	var patterns []string
	for _, line := range strings.Split(out, "\n") {
		line = strings.TrimSpace(line)
		if !strings.HasPrefix(line, "Tracking ") {
			continue
		}
		pattern := strings.TrimSpace(strings.TrimPrefix(line, "Tracking "))
		patterns = append(patterns, TrimeDoubleQuote(pattern))
	}
	return patterns, nil
}

// LFSStatus mirrors the two sections of `git lfs status` output.
type LFSStatus struct {
	Tracked    []string
	NotTracked []string
}

// Status parses the fixed two-section status report:
// "Tracked files:" then "Objects not tracked by Git LFS:".
func (c *LFSClient) Status() (LFSStatus, error) {
	out, err := c.git.gitOutput("lfs", "status")
	if err != nil {
		return LFSStatus{}, err
	}

	var status LFSStatus
	var section *[]string
	for _, line := range strings.Split(out, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		switch {
		case strings.HasPrefix(line, "Tracked files:"):
			section = &status.Tracked
		case strings.HasPrefix(line, "Objects not tracked by Git LFS:"):
			section = &status.NotTracked
		case section != nil && !strings.HasPrefix(line, "("):
			*section = append(*section, line)
		}
	}
	return status, nil
}

// Add stages one path.
func (c *LFSClient) Add(path string) error {
	_, err := c.git.gitOutput("add", path)
	return err
}

// Commit records the staged changes. The attributes file must land in
// history before the migrate rewrite, or the clean-up reset throws it away.
func (c *LFSClient) Commit(message string) error {
	_, err := c.git.gitOutput("commit", "-m", message)
	return err
}

// MigrateImport rewrites history so the matching blobs become pointer
// stubs. aboveBytes > 0 additionally restricts the rewrite to objects of at
// least that size, so the rewrite honors the same threshold the scan used.
func (c *LFSClient) MigrateImport(patterns []string, aboveBytes int64) error {
	args := []string{"lfs", "migrate", "import", "--everything", "--yes"}
	if len(patterns) > 0 {
		args = append(args, "--include="+strings.Join(patterns, ","))
	}
	if aboveBytes > 0 {
		args = append(args, fmt.Sprintf("--above=%db", aboveBytes))
	}
	_, err := c.git.gitOutput(args...)
	return err
}

// PushObjects uploads the LFS payloads. Safe to re-run, so it retries.
func (c *LFSClient) PushObjects(ctx context.Context, remote string) error {
	return runWithRetry(ctx, retryAttempts, pushTimeout, func(ctx context.Context) error {
		_, err := c.git.gitOutputContext(ctx, "lfs", "push", "--all", remote)
		return err
	})
}

// PushRefs force-pushes the rewritten refs. Safe to re-run, so it retries.
func (c *LFSClient) PushRefs(ctx context.Context, remote, branch string) error {
	return runWithRetry(ctx, retryAttempts, pushTimeout, func(ctx context.Context) error {
		_, err := c.git.gitOutputContext(ctx, "push", "--force", remote, branch)
		return err
	})
}

// Push uploads LFS objects first, then the refs, the order the LFS server
// expects so no ref ever points at missing payloads.
func (c *LFSClient) Push(ctx context.Context, remote, branch string) error {
	if err := c.PushObjects(ctx, remote); err != nil {
		return err
	}
	return c.PushRefs(ctx, remote, branch)
}

// Pull fetches LFS content for the current checkout.
func (c *LFSClient) Pull(remote, branch string) error {
	_, err := c.git.gitOutput("lfs", "pull", remote, branch)
	return err
}

// Prune drops local LFS objects that are safe to delete.
func (c *LFSClient) Prune() error {
	_, err := c.git.gitOutput("lfs", "prune")
	return err
}

// Logs returns the most recent git-lfs error log.
func (c *LFSClient) Logs() (string, error) {
	return c.git.gitOutput("lfs", "logs", "last")
}
