package scenario_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/dipak93/Byzantine-Generals-Problem/core"
	"github.com/dipak93/Byzantine-Generals-Problem/scenario"
)

func TestDocumentBuildHonest(t *testing.T) {
	doc := scenario.Document{
		SourceID:     0,
		M:            1,
		N:            4,
		SourceValue:  "one",
		DefaultValue: "ZERO",
	}
	p, err := doc.Build()
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	if p.SourceID() != 0 || p.M() != 1 || p.N() != 4 {
		t.Errorf("got source=%d m=%d n=%d, want 0 1 4", p.SourceID(), p.M(), p.N())
	}
	if p.SourceValue().Input != core.One {
		t.Errorf("source value: got %s, want %s", p.SourceValue().Input, core.One)
	}
	if p.DefaultValue() != core.Zero {
		t.Errorf("default value: got %s, want %s", p.DefaultValue(), core.Zero)
	}
}

func TestDocumentBuildFaults(t *testing.T) {
	doc := scenario.Document{
		SourceID:     0,
		M:            1,
		N:            4,
		SourceValue:  "1",
		DefaultValue: "1",
		Faults: []scenario.FaultSpec{
			{Sender: 0, Kind: "each", Each: map[int]string{1: "one", 2: "one", 3: "zero"}},
			{Sender: 2, Kind: "always-unknown"},
		},
	}
	p, err := doc.Build()
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	if !p.IsFaulty(0) || !p.IsFaulty(2) {
		t.Error("senders 0 and 2 should both be faulty")
	}
	if got := p.ValueToSend(core.One, 0, 3, core.Path{0}); got != core.Zero {
		t.Errorf("sender 0 to receiver 3: got %s, want %s", got, core.Zero)
	}
	if got := p.ValueToSend(core.One, 2, 1, core.Path{0, 2}); got != core.Unknown {
		t.Errorf("sender 2: got %s, want %s", got, core.Unknown)
	}
}

func TestDocumentBuildRejectsUnrecognizedValue(t *testing.T) {
	doc := scenario.Document{SourceID: 0, M: 0, N: 1, SourceValue: "maybe", DefaultValue: "one"}
	if _, err := doc.Build(); err == nil {
		t.Error("expected an error for an unrecognized source_value")
	}
}

func TestDocumentBuildRejectsUnrecognizedFaultKind(t *testing.T) {
	doc := scenario.Document{
		SourceID: 0, M: 0, N: 1, SourceValue: "one", DefaultValue: "one",
		Faults: []scenario.FaultSpec{{Sender: 0, Kind: "mischievous"}},
	}
	if _, err := doc.Build(); err == nil {
		t.Error("expected an error for an unrecognized fault kind")
	}
}

func TestLoadFileRoundTrip(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "scenario.yaml")
	contents := `
source_id: 0
m: 1
n: 4
source_value: one
default_value: one
faults:
  - sender: 0
    kind: each
    each:
      1: one
      2: one
      3: zero
`
	if err := os.WriteFile(path, []byte(contents), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	p, err := scenario.LoadFile(path)
	if err != nil {
		t.Fatalf("LoadFile: %v", err)
	}
	if p.N() != 4 || p.M() != 1 {
		t.Errorf("got n=%d m=%d, want 4 1", p.N(), p.M())
	}
	if got := p.ValueToSend(core.One, 0, 3, core.Path{0}); got != core.Zero {
		t.Errorf("sender 0 to receiver 3: got %s, want %s", got, core.Zero)
	}
}

func TestLoadFileMissing(t *testing.T) {
	if _, err := scenario.LoadFile("/nonexistent/scenario.yaml"); err == nil {
		t.Error("expected an error for a missing file")
	}
}
