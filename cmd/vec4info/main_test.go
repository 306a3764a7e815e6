package main

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/cwbudde/algo-simd/internal/cpu"
	"github.com/cwbudde/algo-simd/vec4"
)

func TestParseVector(t *testing.T) {
	v, err := parseVector("1, -2.5,3,4e2")
	if err != nil {
		t.Fatal(err)
	}
	if v != vec4.New(1, -2.5, 3, 400) {
		t.Errorf("parseVector = %v", v)
	}

	if _, err := parseVector("1,2,3"); !errors.Is(err, errVectorLanes) {
		t.Errorf("short vector error = %v", err)
	}
	if _, err := parseVector("1,2,x,4"); err == nil {
		t.Error("expected error for non-numeric lane")
	}
}

func TestPrintShuffle(t *testing.T) {
	var buf bytes.Buffer
	if err := printShuffle(&buf, "swap", "1,2,3,4"); err != nil {
		t.Fatal(err)
	}
	if out := buf.String(); !strings.Contains(out, "= (4, 3, 2, 1)") || !strings.Contains(out, "wzyx") {
		t.Errorf("unexpected output %q", out)
	}

	if err := printShuffle(&buf, "bogus", "1,2,3,4"); !errors.Is(err, vec4.ErrInvalidShuffle) {
		t.Errorf("error = %v, want ErrInvalidShuffle", err)
	}
}

func TestRunCheck(t *testing.T) {
	var buf bytes.Buffer
	if !runCheck(&buf, cpu.DetectFeatures(), 1, 32) {
		t.Fatalf("conformance check failed:\n%s", buf.String())
	}
	if !strings.Contains(buf.String(), "generic  ok") {
		t.Errorf("generic not reported:\n%s", buf.String())
	}
}

func TestPrintOperations(t *testing.T) {
	var buf bytes.Buffer
	printOperations(&buf)
	if !strings.Contains(buf.String(), "Shuffle") || !strings.Contains(buf.String(), "Implementation: ") {
		t.Errorf("unexpected output:\n%s", buf.String())
	}
}
