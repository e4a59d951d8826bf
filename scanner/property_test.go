package scanner

import (
	"reflect"
	"testing"

	"pgregory.net/rapid"

	"github.com/dshills/glint/partition"
	"github.com/dshills/glint/syntax"
)

// TestScanCoverageProperty checks the scanner contract over random
// content: for every kind, the tokens of a scan tile the partition
// exactly, with no zero-length tokens.
func TestScanCoverageProperty(t *testing.T) {
	table, err := BuildTable(nil)
	if err != nil {
		t.Fatal(err)
	}

	kinds := partition.Kinds()
	rapid.Check(t, func(rt *rapid.T) {
		src := rapid.String().Draw(rt, "src")
		kind := rapid.SampledFrom(kinds).Draw(rt, "kind")

		p := partition.Partition{Kind: kind, Offset: 0, Length: len(src)}
		tokens, err := table.Scan(src, p)
		if err != nil {
			rt.Fatalf("Scan() = %v", err)
		}
		if len(src) == 0 {
			if len(tokens) != 0 {
				rt.Fatalf("empty partition produced %d tokens", len(tokens))
			}
			return
		}
		if !syntax.Contiguous(tokens, 0, len(src)) {
			rt.Fatalf("tokens %v do not cover [0:%d)", tokens, len(src))
		}
	})
}

// TestScanInteriorProperty checks coverage for partitions that select
// an interior slice of a larger document.
func TestScanInteriorProperty(t *testing.T) {
	table, err := BuildTable(nil)
	if err != nil {
		t.Fatal(err)
	}

	kinds := partition.Kinds()
	rapid.Check(t, func(rt *rapid.T) {
		src := rapid.StringN(1, 64, -1).Draw(rt, "src")
		kind := rapid.SampledFrom(kinds).Draw(rt, "kind")
		start := rapid.IntRange(0, len(src)-1).Draw(rt, "start")
		length := rapid.IntRange(1, len(src)-start).Draw(rt, "length")

		p := partition.Partition{Kind: kind, Offset: start, Length: length}
		tokens, err := table.Scan(src, p)
		if err != nil {
			rt.Fatalf("Scan() = %v", err)
		}
		if !syntax.Contiguous(tokens, start, start+length) {
			rt.Fatalf("tokens %v do not cover [%d:%d)", tokens, start, start+length)
		}
	})
}

// TestScanDeterministicProperty checks that scanning is a pure
// function of its input.
func TestScanDeterministicProperty(t *testing.T) {
	table, err := BuildTable(nil)
	if err != nil {
		t.Fatal(err)
	}

	kinds := partition.Kinds()
	rapid.Check(t, func(rt *rapid.T) {
		src := rapid.String().Draw(rt, "src")
		kind := rapid.SampledFrom(kinds).Draw(rt, "kind")

		p := partition.Partition{Kind: kind, Offset: 0, Length: len(src)}
		first, err := table.Scan(src, p)
		if err != nil {
			rt.Fatalf("Scan() = %v", err)
		}
		second, err := table.Scan(src, p)
		if err != nil {
			rt.Fatalf("Scan() = %v", err)
		}
		if !reflect.DeepEqual(first, second) {
			rt.Fatalf("repeated scan differs: %v vs %v", first, second)
		}
	})
}
