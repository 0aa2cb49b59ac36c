package main

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"os/exec"
	"strconv"
	"strings"
)

// gitOutputIter yields the stdout of a long-running git command line by
// line, so a full-history walk never buffers the whole listing in memory.
type gitOutputIter struct {
	cmd *exec.Cmd
	out io.ReadCloser
	f   *bufio.Reader
}

func (repo *Repository) NewOutputIter(args ...string) (*gitOutputIter, error) {
	cmd := repo.GitCommand(args...)
	out, err := cmd.StdoutPipe()
	if err != nil {
		return nil, err
	}

	cmd.Stderr = os.Stderr

	if err := cmd.Start(); err != nil {
		out.Close()
		return nil, err
	}

	return &gitOutputIter{
		cmd: cmd,
		out: out,
		f:   bufio.NewReader(out),
	}, nil
}

// Next returns the next output line without its trailing newline.
// ok is false once the stream is exhausted.
func (iter *gitOutputIter) Next() (line string, ok bool, err error) {
	line, err = iter.f.ReadString('\n')
	if err != nil {
		if err == io.EOF {
			if line == "" {
				return "", false, nil
			}
			return line, true, nil
		}
		return "", false, err
	}
	return strings.TrimSuffix(line, "\n"), true, nil
}

func (iter *gitOutputIter) Close() error {
	err := iter.out.Close()
	err2 := iter.cmd.Wait()
	if err == nil {
		err = err2
	}
	return err
}

// sizeResolver maps an object id to its size in bytes.
type sizeResolver interface {
	size(oid string) (int64, error)
	Close() error
}

// batchChecker keeps one `git cat-file --batch-check` process alive and
// feeds it object ids over stdin, one lookup per line of its stdout.
type batchChecker struct {
	cmd *exec.Cmd
	in  io.WriteCloser
	out *bufio.Reader
}

func (repo *Repository) NewBatchChecker() (*batchChecker, error) {
	cmd := repo.GitCommand("cat-file", "--batch-check")

	in, err := cmd.StdinPipe()
	if err != nil {
		return nil, err
	}
	out, err := cmd.StdoutPipe()
	if err != nil {
		in.Close()
		return nil, err
	}
	cmd.Stderr = os.Stderr

	if err := cmd.Start(); err != nil {
		in.Close()
		out.Close()
		return nil, err
	}

	return &batchChecker{
		cmd: cmd,
		in:  in,
		out: bufio.NewReader(out),
	}, nil
}

// size resolves one blob id. Response format: "<oid> <type> <size>",
// or "<oid> missing" when the object cannot be found.
func (bc *batchChecker) size(oid string) (int64, error) {
	if _, err := io.WriteString(bc.in, oid+"\n"); err != nil {
		return 0, err
	}
	line, err := bc.out.ReadString('\n')
	if err != nil {
		return 0, err
	}
	fields := strings.Fields(line)
	if len(fields) < 3 {
		return 0, fmt.Errorf("cat-file: object %s: %s", oid, strings.TrimSpace(line))
	}
	size, err := strconv.ParseInt(fields[2], 10, 64)
	if err != nil {
		return 0, fmt.Errorf("cat-file: bad size for %s: %v", oid, err)
	}
	return size, nil
}

func (bc *batchChecker) Close() error {
	err := bc.in.Close()
	err2 := bc.cmd.Wait()
	if err == nil {
		err = err2
	}
	return err
}
