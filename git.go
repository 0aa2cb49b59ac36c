package main

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	"github.com/cli/safeexec"
)

// gitRunner is the one capability the scanner and the LFS client need from
// the collaborator process: run a git invocation, get captured stdout back.
type gitRunner interface {
	gitOutput(args ...string) (string, error)
	gitOutputContext(ctx context.Context, args ...string) (string, error)
}

type Repository struct {
	path   string // working dir
	gitBin string
	gitDir string // .git dir
	opts   Options
}

func findGitBin() (string, error) {
	gitBin, err := safeexec.LookPath("git")
	if err != nil {
		return "", err
	}

	gitBin, err = filepath.Abs(gitBin)
	if err != nil {
		return "", err
	}

	return gitBin, nil
}

func (repo *Repository) GitCommand(callerArgs ...string) *exec.Cmd {
	args := []string{
		"--no-replace-objects",
		"-C",
		repo.path,
	}

	args = append(args, callerArgs...)

	cmd := exec.Command(repo.gitBin, args...)
	cmd.Env = append(
		os.Environ(),
		// Disable grafts when running our commands:
		"GIT_GRAFT_FILE="+os.DevNull,
	)

	return cmd
}

// gitOutput runs one git command to completion and returns captured stdout.
func (repo *Repository) gitOutput(args ...string) (string, error) {
	res, err := runCommand(repo.GitCommand(args...))
	return res.stdout, err
}

// gitOutputContext is gitOutput with a deadline: the process is killed when
// ctx expires. Used by the retried network commands.
func (repo *Repository) gitOutputContext(ctx context.Context, callerArgs ...string) (string, error) {
	args := []string{"--no-replace-objects", "-C", repo.path}
	args = append(args, callerArgs...)

	cmd := exec.CommandContext(ctx, repo.gitBin, args...)
	cmd.Env = append(os.Environ(), "GIT_GRAFT_FILE="+os.DevNull)

	res, err := runCommand(cmd)
	return res.stdout, err
}

// CanonicalizePath returns absolute repo path
func CanonicalizePath(path, relPath string) string {
	if filepath.IsAbs(relPath) {
		return relPath
	}
	return filepath.Join(path, relPath)
}

func GitDir(gitbin, path string) (string, error) {

	cmd := exec.Command(gitbin, "-C", path, "rev-parse", "--git-dir")
	out, err := cmd.Output()
	if err != nil {
		return "", fmt.Errorf(
			"%w: could not run 'git rev-parse --git-dir' in %s: %s",
			ErrInvalidRepository, path, err,
		)
	}
	// git object dir: ${repo-path}/${git-dir}
	gitDir := CanonicalizePath(path, string(bytes.TrimSpace(out)))

	return gitDir, nil
}

// check if the current repository is bare repo
func IsBare(gitbin, path string) (bool, error) {

	cmd := exec.Command(gitbin, "-C", path, "rev-parse", "--is-bare-repository")
	out, err := cmd.Output()
	if err != nil {
		return false, fmt.Errorf(
			"could not run 'git rev-parse --is-bare-repository': %s", err,
		)
	}
	return string(bytes.TrimSpace(out)) == "true", nil
}

// check if the current repository is shallow repo, need Git version 2.15.0 or newer
func IsShallow(gitbin, path string) (bool, error) {
	cmd := exec.Command(gitbin, "-C", path, "rev-parse", "--is-shallow-repository")
	out, err := cmd.Output()
	if err != nil {
		return false, fmt.Errorf(
			"could not run 'git rev-parse --is-shallow-repository': %s", err,
		)
	}
	return string(bytes.TrimSpace(out)) == "true", nil
}

func NewRepository(path string, opts Options) (*Repository, error) {
	// Find the `git` executable to be used:
	gitBin, err := findGitBin()
	if err != nil {
		return nil, fmt.Errorf(
			"could not find 'git' executable (is it in your PATH?): %v", err,
		)
	}

	gitdir, err := GitDir(gitBin, path)
	if err != nil {
		return nil, err
	}

	if bare, err := IsBare(gitBin, path); err != nil {
		return nil, err
	} else if bare {
		return nil, fmt.Errorf("%w: %s appears to be a bare clone; please operate in a normal repository", ErrInvalidRepository, path)
	}

	if shallow, err := IsShallow(gitBin, path); err != nil {
		return nil, err
	} else if shallow {
		return nil, fmt.Errorf("%w: %s appears to be a shallow clone; full clone required", ErrInvalidRepository, path)
	}

	return &Repository{
		path:   path,
		gitDir: gitdir,
		gitBin: gitBin,
		opts:   opts,
	}, nil
}

func (repo *Repository) Close() error {
	return nil
}

// CleanUp shrinks the local object database after a history rewrite.
func (repo *Repository) CleanUp() {
	PrintLocalWithPlainln("clean up the repository...")

	steps := [][]string{
		{"reset", "--hard"},
		{"reflog", "expire", "--expire=now", "--all"},
		{"gc", "--prune=now"},
	}
	for _, args := range steps {
		PrintLocalWithPlainln("running git " + strings.Join(args, " "))
		if _, err := repo.gitOutput(args...); err != nil {
			PrintLocalWithRedln(err.Error())
		}
	}
}
