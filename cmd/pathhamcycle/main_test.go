// Copyright 2026 The pathhamcycle Authors
// License MIT: http://opensource.org/licenses/MIT

package main

import (
	"bytes"
	"strings"
	"testing"
)

// tetrahedronRecord is the same embedding used by the core package's own
// tests: K4 with vertex 3 at the centre of triangle 0-1-2, encoded as an
// 8-bit planar_code record. It has a path-Hamiltonian cycle.
func tetrahedronRecord() []byte {
	return []byte{
		4,
		2, 3, 4, 0,
		1, 4, 3, 0,
		1, 2, 4, 0,
		1, 3, 2, 0,
	}
}

func TestRunHelp(t *testing.T) {
	var out bytes.Buffer
	code := run([]string{"-h"}, strings.NewReader(""), &out)
	if code != 0 {
		t.Errorf("exit code = %d, want 0", code)
	}
	if !strings.Contains(out.String(), "Usage: pathhamcycle") {
		t.Errorf("help output missing usage text: %q", out.String())
	}
}

func TestRunUnknownFlag(t *testing.T) {
	var out bytes.Buffer
	code := run([]string{"--bogus"}, strings.NewReader(""), &out)
	if code != 1 {
		t.Errorf("exit code = %d, want 1", code)
	}
}

func TestRunCountsWithoutFilter(t *testing.T) {
	var out bytes.Buffer
	code := run(nil, bytes.NewReader(tetrahedronRecord()), &out)
	if code != 0 {
		t.Errorf("exit code = %d, want 0", code)
	}
	if out.Len() != 0 {
		t.Errorf("expected no stdout output without -filter, got %q", out.String())
	}
}

func TestRunFilterEmitsMatch(t *testing.T) {
	var out bytes.Buffer
	code := run([]string{"-f"}, bytes.NewReader(tetrahedronRecord()), &out)
	if code != 0 {
		t.Errorf("exit code = %d, want 0", code)
	}
	want := append([]byte(">>planar_code<<"), tetrahedronRecord()...)
	if !bytes.Equal(out.Bytes(), want) {
		t.Errorf("filtered output = %v, want %v", out.Bytes(), want)
	}
}

func TestRunFilterInvertSuppressesMatch(t *testing.T) {
	var out bytes.Buffer
	code := run([]string{"-f", "-i"}, bytes.NewReader(tetrahedronRecord()), &out)
	if code != 0 {
		t.Errorf("exit code = %d, want 0", code)
	}
	want := []byte(">>planar_code<<")
	if !bytes.Equal(out.Bytes(), want) {
		t.Errorf("inverted filter output = %v, want just the header %v", out.Bytes(), want)
	}
}
