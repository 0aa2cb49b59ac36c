package main

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPrintRouting(t *testing.T) {
	savedOut, savedErr := stdout, stderr
	defer func() { stdout, stderr = savedOut, savedErr }()

	var outBuf, errBuf bytes.Buffer
	stdout, stderr = &outBuf, &errBuf

	PrintGreenln("done")
	PrintBlueln("pattern")
	PrintPlainln("table row")
	PrintRedln("fatal")
	PrintYellowln("warning")

	assert.Contains(t, outBuf.String(), "done")
	assert.Contains(t, outBuf.String(), "pattern")
	assert.Contains(t, outBuf.String(), "table row")
	assert.NotContains(t, outBuf.String(), "fatal")
	assert.NotContains(t, outBuf.String(), "warning")

	assert.Contains(t, errBuf.String(), "fatal")
	assert.Contains(t, errBuf.String(), "warning")
	assert.NotContains(t, errBuf.String(), "done")
}

func TestPrintColorCodes(t *testing.T) {
	savedOut := stdout
	defer func() { stdout = savedOut }()

	var outBuf bytes.Buffer
	stdout = &outBuf

	PrintGreen("ok")
	assert.Equal(t, "\033[32mok\033[0m", outBuf.String())

	outBuf.Reset()
	PrintGreenln("ok")
	assert.Equal(t, "\033[32mok\033[0m\n", outBuf.String())
}
