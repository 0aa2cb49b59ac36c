package main

import (
	"fmt"
	"io"

	colorable "github.com/mattn/go-colorable"
)

const (
	ansiRed    = "\033[31m%s\033[0m"
	ansiGreen  = "\033[32m%s\033[0m"
	ansiYellow = "\033[33m%s\033[0m"
	ansiBlue   = "\033[34m%s\033[0m"
)

// Warnings and errors go to stderr so that piped scan output stays clean.
// Both writers translate ANSI sequences on Windows consoles.
var (
	stdout io.Writer = colorable.NewColorableStdout()
	stderr io.Writer = colorable.NewColorableStderr()
)

func PrintRed(msg string) {
	fmt.Fprintf(stderr, ansiRed, msg)
}

func PrintGreen(msg string) {
	fmt.Fprintf(stdout, ansiGreen, msg)
}

func PrintYellow(msg string) {
	fmt.Fprintf(stderr, ansiYellow, msg)
}

func PrintBlue(msg string) {
	fmt.Fprintf(stdout, ansiBlue, msg)
}

func PrintPlain(msg string) {
	fmt.Fprint(stdout, msg)
}

func PrintRedln(msg string) {
	fmt.Fprintf(stderr, ansiRed+"\n", msg)
}

func PrintGreenln(msg string) {
	fmt.Fprintf(stdout, ansiGreen+"\n", msg)
}

func PrintYellowln(msg string) {
	fmt.Fprintf(stderr, ansiYellow+"\n", msg)
}

func PrintBlueln(msg string) {
	fmt.Fprintf(stdout, ansiBlue+"\n", msg)
}

func PrintPlainln(msg string) {
	fmt.Fprintln(stdout, msg)
}
