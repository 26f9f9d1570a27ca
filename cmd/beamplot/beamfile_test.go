package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/beamz/beamplot/beam"
)

const testBeamYAML = `
depth: 0.3
nodes:
  - {x: 0, label: A}
  - {x: 4, label: B}
  - {x: 10, label: C}
supports:
  - {at: A, fixity: PINNED}
  - {at: 10, fixity: H_ROLLER}
joints:
  - {at: B, fixity: FIXED}
loads:
  - {magnitude: -40, start: B, label: D}
  - {magnitude: 2, start: A, end: C, end_magnitude: 5}
  - {magnitude: 12, start: C, moment: true}
dimensions: [A, 4, C]
style:
  symbol_scale: 0.02
`

func writeBeamFile(t *testing.T, contents string) string {
	t.Helper()
	name := filepath.Join(t.TempDir(), "beam.yaml")
	if err := os.WriteFile(name, []byte(contents), 0o666); err != nil {
		t.Fatalf("failed to write beam file: %v", err)
	}
	return name
}

func TestLoadBeamFile(t *testing.T) {
	bf, err := loadBeamFile(writeBeamFile(t, testBeamYAML))
	if err != nil {
		t.Fatalf("loadBeamFile failed: %v", err)
	}
	b, err := beam.New(bf.spec())
	if err != nil {
		t.Fatalf("beam.New failed: %v", err)
	}

	if got, want := b.Length(), 10.0; got != want {
		t.Errorf("length = %g, want %g", got, want)
	}
	if len(b.Supports) != 2 {
		t.Fatalf("got %d supports, want 2", len(b.Supports))
	}
	// "A" resolves by label, 10 by position
	if b.Supports[0].Node != b.Nodes[0] {
		t.Errorf("support 0 resolved to x=%g, want node A", b.Supports[0].Node.X)
	}
	if b.Supports[1].Node != b.Nodes[2] || b.Supports[1].Fixity != beam.HRoller {
		t.Errorf("support 1 = %+v, want H_ROLLER at x=10", b.Supports[1])
	}
	if len(b.Joints) != 1 || b.Joints[0].Fixity != beam.Fixed {
		t.Errorf("joints = %+v, want one FIXED joint", b.Joints)
	}

	if len(b.Loads) != 3 {
		t.Fatalf("got %d loads, want 3", len(b.Loads))
	}
	if b.Loads[0].Label == nil || b.Loads[0].Label.Text != "D" {
		t.Errorf("load 0 label = %+v, want D", b.Loads[0].Label)
	}
	dist := b.Loads[1]
	if dist.End != b.Nodes[2] || dist.EndMagnitude == nil || *dist.EndMagnitude != 5 {
		t.Errorf("distributed load = %+v, want end at C with magnitude 5", dist)
	}
	if !b.Loads[2].Moment {
		t.Errorf("load 2 is not a moment")
	}

	if len(b.Dimensions) != 3 || b.Dimensions[1] != b.Nodes[1] {
		t.Errorf("dimensions = %+v, want all three nodes", b.Dimensions)
	}
	if bf.Style.SymbolScale != 0.02 {
		t.Errorf("symbol scale = %g, want 0.02", bf.Style.SymbolScale)
	}
}

func TestLoadBeamFileBadFixity(t *testing.T) {
	_, err := loadBeamFile(writeBeamFile(t, "supports:\n  - {at: 0, fixity: WOBBLY}\n"))
	if err == nil {
		t.Fatalf("expected error for unknown fixity")
	}
}

func TestLoadBeamFileBadRef(t *testing.T) {
	_, err := loadBeamFile(writeBeamFile(t, "dimensions:\n  - [1, 2]\n"))
	if err == nil {
		t.Fatalf("expected error for non-scalar location")
	}
}
