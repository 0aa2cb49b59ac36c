package main

import (
	"bytes"
	"fmt"
	"os"
	"strconv"
	"strings"
)

var LFSVER = "https://git-lfs.github.com/spec/v1"

// MaxPointerSize caps how much content can still be a pointer stub; real
// pointers stay well under 200 bytes.
const MaxPointerSize = 1024

// Pointer is the stub git-lfs leaves in place of a large blob.
type Pointer struct {
	Version string
	Oid     string // sha256, hex
	Size    int64
}

// version https://git-lfs.github.com/spec/v1
// oid sha256:$(sha256)
// size $(old size)
func EncodePointer(p Pointer) []byte {
	var buf bytes.Buffer
	fmt.Fprintf(&buf, "version %s\n", p.Version)
	fmt.Fprintf(&buf, "oid sha256:%s\n", p.Oid)
	fmt.Fprintf(&buf, "size %d\n", p.Size)
	return buf.Bytes()
}

// DecodePointer parses pointer stub content. Anything that is not a
// well-formed pointer comes back as ErrNotPointer.
func DecodePointer(data []byte) (Pointer, error) {
	if len(data) > MaxPointerSize {
		return Pointer{}, ErrNotPointer
	}
	var p Pointer
	for _, line := range strings.Split(string(data), "\n") {
		if line == "" {
			continue
		}
		switch {
		case strings.HasPrefix(line, "version "):
			p.Version = strings.TrimPrefix(line, "version ")
		case strings.HasPrefix(line, "oid sha256:"):
			p.Oid = strings.TrimPrefix(line, "oid sha256:")
		case strings.HasPrefix(line, "size "):
			size, err := strconv.ParseInt(strings.TrimPrefix(line, "size "), 10, 64)
			if err != nil {
				return Pointer{}, ErrNotPointer
			}
			p.Size = size
		}
	}
	if p.Version != LFSVER || len(p.Oid) != 64 || p.Size < 0 {
		return Pointer{}, ErrNotPointer
	}
	return p, nil
}

func IsPointerBlob(data []byte) bool {
	_, err := DecodePointer(data)
	return err == nil
}

// isPointerFile reports whether the file at path already holds a pointer
// stub. Read failures just mean "no": the scan must not stop for them.
func isPointerFile(path string) bool {
	data, err := os.ReadFile(path)
	if err != nil || len(data) > MaxPointerSize {
		return false
	}
	return IsPointerBlob(data)
}
