// Copyright (c) 2024 The starkcurve developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package starkcurve

import (
	"os"
	"strings"
	"testing"

	"github.com/davecgh/go-spew/spew"
)

func TestPedersenIsDeterministic(t *testing.T) {
	table := DefaultPointTable()
	a := FieldElementFromUint64(1)
	b := FieldElementFromUint64(2)

	h1, err := Pedersen(table, a, b)
	if err != nil {
		t.Fatalf("Pedersen error: %v", err)
	}
	h2, err := Pedersen(table, a, b)
	if err != nil {
		t.Fatalf("Pedersen error: %v", err)
	}
	if h1 != h2 {
		t.Fatalf("Pedersen is not deterministic: %s != %s", h1, h2)
	}
}

func TestPedersenIsOrderSensitive(t *testing.T) {
	table := DefaultPointTable()
	a := FieldElementFromUint64(3)
	b := FieldElementFromUint64(4)

	ab, err := Pedersen(table, a, b)
	if err != nil {
		t.Fatalf("Pedersen(a,b) error: %v", err)
	}
	ba, err := Pedersen(table, b, a)
	if err != nil {
		t.Fatalf("Pedersen(b,a) error: %v", err)
	}
	if ab == ba {
		t.Fatalf("Pedersen(a,b) == Pedersen(b,a) = %s, want distinct digests for a=%s b=%s",
			ab, spew.Sdump(a), spew.Sdump(b))
	}
}

func TestPedersenSingleInput(t *testing.T) {
	table := DefaultPointTable()
	if _, err := Pedersen(table, FieldElementFromUint64(42)); err != nil {
		t.Fatalf("Pedersen with a single input: unexpected error: %v", err)
	}
}

func TestPedersenRejectsWrongArity(t *testing.T) {
	table := DefaultPointTable()
	if _, err := Pedersen(table); err == nil {
		t.Fatal("Pedersen with zero inputs: expected error, got nil")
	}
	three := []*FieldElement{
		FieldElementFromUint64(1),
		FieldElementFromUint64(2),
		FieldElementFromUint64(3),
	}
	if _, err := Pedersen(table, three...); err == nil {
		t.Fatal("Pedersen with three inputs: expected error, got nil")
	}
}

// TestPedersenConformanceVector checks the digest against StarkWare's
// published reference vector. It is skipped unless a real constant-point
// table is supplied via STARKCURVE_CONFORMANCE_TABLE (a path to a file of
// 506 newline-separated "xhex,yhex" pairs), since DefaultPointTable's
// synthetic constants cannot reproduce it.
func TestPedersenConformanceVector(t *testing.T) {
	if os.Getenv("STARKCURVE_CONFORMANCE_TABLE") == "" {
		t.Skip("STARKCURVE_CONFORMANCE_TABLE not set; this test only runs against the real, externally supplied constant-point table")
	}
	data, err := os.ReadFile(os.Getenv("STARKCURVE_CONFORMANCE_TABLE"))
	if err != nil {
		t.Fatalf("reading conformance table: %v", err)
	}
	var pairs [][2]string
	for _, line := range strings.Fields(string(data)) {
		xy := strings.SplitN(line, ",", 2)
		pairs = append(pairs, [2]string{xy[0], xy[len(xy)-1]})
	}
	table, err := NewPointTable(pairs)
	if err != nil {
		t.Fatalf("NewPointTable: %v", err)
	}
	a, _ := FieldElementFromHex("0x3d937c035c878245caf64531a5756109c53068da139362728feb561405371cb")
	b, _ := FieldElementFromHex("0x208a0a10250e382e1e4bbe2880906c2791bf6275695e02fbbc6aeff9cd8b31a")
	want := "30e480bed5fe53fa909cc0f8c4d99b8f9f2c016be4c41e13a4848797979c662"
	if got, err := Pedersen(table, a, b); err != nil || got != want {
		t.Fatalf("Pedersen(a, b) = %q, %v; want %q", got, err, want)
	}
}
