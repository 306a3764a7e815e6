// Command vec4info reports how the four-lane vector operations are
// dispatched on this machine and checks the accelerated backends against
// the generic reference.
//
// Usage:
//
//	vec4info [flags]
//
// Without flags it prints the detected CPU features, the chosen
// implementation and the backend of every operation.
//
// Examples:
//
//	vec4info -features
//	vec4info -list
//	vec4info -check 10000
//	vec4info -shuffle swap -vec 1,2,3,4
//	VEC4_NO_SIMD=1 vec4info -ops
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/cwbudde/algo-simd/internal/cpu"
	"github.com/cwbudde/algo-simd/internal/kernel/conformance"
	"github.com/cwbudde/algo-simd/internal/kernel/registry"
	"github.com/cwbudde/algo-simd/vec4"
)

func main() {
	features := flag.Bool("features", false, "print detected CPU features")
	list := flag.Bool("list", false, "print registered backends")
	ops := flag.Bool("ops", false, "print the backend chosen for each operation")
	check := flag.Int("check", 0, "compare every usable backend against generic on `N` random vectors")
	seed := flag.Int64("seed", conformance.DefaultSeed, "random seed for -check")
	shuffle := flag.String("shuffle", "", "shuffle selector name or lane pattern (e.g. swap, wzyx)")
	vecFlag := flag.String("vec", "1,2,3,4", "input vector for -shuffle as x,y,z,w")
	verbose := flag.Bool("v", false, "log dispatch decisions to stderr")
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: vec4info [flags]\n\n")
		fmt.Fprintf(os.Stderr, "Reports vector backend selection and checks backend conformance.\n\n")
		fmt.Fprintf(os.Stderr, "Flags:\n")
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nEnvironment:\n")
		fmt.Fprintf(os.Stderr, "  %s=1  force the generic backend\n", vec4.NoSIMDEnv)
	}
	flag.Parse()

	if *verbose {
		vec4.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug})))
	}

	selected := *features || *list || *ops || *check > 0 || *shuffle != ""
	if !selected {
		*features, *ops = true, true
	}

	if *features {
		printFeatures(os.Stdout, cpu.DetectFeatures())
	}
	if *list {
		printBackends(os.Stdout, registry.Global.ListEntries())
	}
	if *ops {
		printOperations(os.Stdout)
	}
	if *shuffle != "" {
		if err := printShuffle(os.Stdout, *shuffle, *vecFlag); err != nil {
			fmt.Fprintf(os.Stderr, "error: %v\n", err)
			os.Exit(2)
		}
	}
	if *check > 0 {
		if !runCheck(os.Stdout, cpu.DetectFeatures(), *seed, *check) {
			os.Exit(1)
		}
	}
}

func printFeatures(w io.Writer, f cpu.Features) {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "Feature\tAvailable\n")
	fmt.Fprintf(tw, "-------\t---------\n")
	fmt.Fprintf(tw, "Architecture\t%s\n", f.Architecture)
	fmt.Fprintf(tw, "SSE2\t%v\n", f.HasSSE2)
	fmt.Fprintf(tw, "SSE3\t%v\n", f.HasSSE3)
	fmt.Fprintf(tw, "AVX\t%v\n", f.HasAVX)
	fmt.Fprintf(tw, "AVX2\t%v\n", f.HasAVX2)
	fmt.Fprintf(tw, "AVX-512\t%v\n", f.HasAVX512)
	fmt.Fprintf(tw, "NEON\t%v\n", f.HasNEON)
	if err := tw.Flush(); err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "error: failed to flush output: %v\n", err)
	}
	fmt.Fprintln(w)
}

func printBackends(w io.Writer, entries []registry.OpEntry) {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "Backend\tLevel\tPriority\tOps\n")
	fmt.Fprintf(tw, "-------\t-----\t--------\t---\n")
	for _, e := range entries {
		fmt.Fprintf(tw, "%s\t%s\t%d\t%d\n", e.Name, e.SIMDLevel, e.Priority, len(e.Provided()))
	}
	if err := tw.Flush(); err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "error: failed to flush output: %v\n", err)
	}
	fmt.Fprintln(w)
}

func printOperations(w io.Writer) {
	fmt.Fprintf(w, "Implementation: %s\n\n", vec4.Implementation())

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "Operation\tBackend\n")
	fmt.Fprintf(tw, "---------\t-------\n")
	for _, op := range vec4.Operations() {
		fmt.Fprintf(tw, "%s\t%s\n", op.Op, op.Backend)
	}
	if err := tw.Flush(); err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "error: failed to flush output: %v\n", err)
	}
	fmt.Fprintln(w)
}

func printShuffle(w io.Writer, selName, vecText string) error {
	sel, err := vec4.ParseShuffleSel(selName)
	if err != nil {
		return err
	}
	v, err := parseVector(vecText)
	if err != nil {
		return err
	}
	fmt.Fprintf(w, "Shuffle(%v, %s [%#02x, %s]) = %v\n", v, sel, uint8(sel), sel.Pattern(), vec4.Shuffle(v, sel))
	return nil
}

var errVectorLanes = errors.New("vector needs four comma-separated lanes")

func parseVector(s string) (vec4.Vector4f, error) {
	parts := strings.Split(s, ",")
	if len(parts) != 4 {
		return vec4.Vector4f{}, fmt.Errorf("%w: %q", errVectorLanes, s)
	}
	var v vec4.Vector4f
	for i, p := range parts {
		f, err := strconv.ParseFloat(strings.TrimSpace(p), 32)
		if err != nil {
			return vec4.Vector4f{}, fmt.Errorf("lane %d: %w", i, err)
		}
		v[i] = float32(f)
	}
	return v, nil
}

// runCheck runs the conformance comparison for every registered backend the
// CPU supports and reports whether all of them matched.
func runCheck(w io.Writer, f cpu.Features, seed int64, count int) bool {
	ok := true
	for _, e := range registry.Global.ListEntries() {
		if !cpu.Supports(f, e.SIMDLevel) {
			fmt.Fprintf(w, "%-8s skipped (needs %s)\n", e.Name, e.SIMDLevel)
			continue
		}
		mismatches := conformance.Check(e, seed, count)
		if len(mismatches) == 0 {
			fmt.Fprintf(w, "%-8s ok (%d ops)\n", e.Name, len(e.Provided()))
			continue
		}
		ok = false
		fmt.Fprintf(w, "%-8s %d mismatches\n", e.Name, len(mismatches))
		for i, m := range mismatches {
			if i == 10 {
				fmt.Fprintf(w, "  ... %d more\n", len(mismatches)-i)
				break
			}
			fmt.Fprintf(w, "  %s\n", m)
		}
	}
	return ok
}
