package main

import (
	"testing"
)

func TestUnitConvert(t *testing.T) {
	var Data_t = []struct {
		input    string
		expected uint64
	}{
		{"0b", 0},
		{"123b", 123},
		{"1k", 1024},
		{"1000K", 1000 * 1024},
		{"1M", 1024 * 1024},
		{"1G", 1024 * 1024 * 1024},
		{"4g", 4 * 1024 * 1024 * 1024},
	}
	for _, data := range Data_t {
		out, _ := UnitConvert(data.input)
		if out != data.expected {
			t.Errorf("test UnitConvert error: expect: %v actual: %v", data.expected, out)
		}
	}
}

func TestUnitConvertBadInput(t *testing.T) {
	for _, input := range []string{"", "10x", "m", "-1m"} {
		if _, err := UnitConvert(input); err == nil {
			t.Errorf("test UnitConvert error: expected error for input %q", input)
		}
	}
}

func TestTrimeDoubleQuote(t *testing.T) {
	var Data_t = []struct {
		input    string
		expected string
	}{
		{"\"quoted\"", "quoted"},
		{"non-quoted", "non-quoted"},
		{"\"*.mp4\"", "*.mp4"},
	}

	for _, data := range Data_t {
		actual := TrimeDoubleQuote(data.input)
		if data.expected != actual {
			t.Errorf("test TrimeDoubleQuote error: expect: %v actual: %v", data.expected, actual)
		}
	}
}

func TestShowScanResult(t *testing.T) {
	var Data_t = ScanResult{
		// for display, the first one is the biggest one
		{path: "assets/loooooooooooooooooooooooooong file", size: 100000, oid: "4fd1482c27853b935c11108688f63e3f4f0f9c80"},
		{path: "looooooong file", size: 100, oid: "5266b09a8b363e8c50ec25488c821c441c3809a0"},
		{path: "short file1", size: 10, oid: "e288c8793273629cf7a0679f4410eaf74c7108f0"},
	}
	ShowScanResult(Data_t, 3)
	ShowScanResult(Data_t, 1)
}
