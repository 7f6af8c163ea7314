package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/Garsondee/hellspawn-ai/internal/fixed"
	"github.com/Garsondee/hellspawn-ai/internal/mobj"
)

func TestLoadEmptyPath(t *testing.T) {
	tbl, err := Load("")
	if err != nil {
		t.Fatalf("Load(\"\") returned error: %v", err)
	}
	if len(tbl.Archetypes) != 0 {
		t.Fatalf("expected empty table, got %d entries", len(tbl.Archetypes))
	}
}

func TestApplyOverridesRadius(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "archetypes.yaml")
	yamlBody := "archetypes:\n  trooper:\n    radius: 99\n"
	if err := os.WriteFile(path, []byte(yamlBody), 0o644); err != nil {
		t.Fatalf("writing fixture: %v", err)
	}

	orig := mobj.Archetypes[mobj.KindTrooper]
	defer func() { mobj.Archetypes[mobj.KindTrooper] = orig }()

	if err := LoadAndApply(path); err != nil {
		t.Fatalf("LoadAndApply: %v", err)
	}

	got := mobj.Archetypes[mobj.KindTrooper].Radius
	want := fixed.FromInt(99)
	if got != want {
		t.Fatalf("trooper radius = %v, want %v", got, want)
	}
}

func TestApplyUnknownArchetypeName(t *testing.T) {
	tbl := &Table{Archetypes: map[string]ArchetypeOverride{
		"not-a-real-monster": {},
	}}
	if err := Apply(tbl); err == nil {
		t.Fatal("expected an error for an unknown archetype name")
	}
}
