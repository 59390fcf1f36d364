package bundle

import (
	"os"
	"path/filepath"
	"testing"

	"go.uber.org/zap"
)

func TestLoadFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "bundle.json")
	if err := os.WriteFile(path, []byte(sampleBundleJSON), 0o644); err != nil {
		t.Fatal(err)
	}

	logger := zap.NewNop().Sugar()
	b, err := LoadFile(path, nil, logger)
	if err != nil {
		t.Fatalf("LoadFile() error = %v", err)
	}
	if b.Len() != 3 {
		t.Errorf("Len() = %d, want 3", b.Len())
	}
}

func TestLoadFile_YAML(t *testing.T) {
	content := `
type: bundle
id: bundle--4ba3e17c-6c1c-4d5e-9a30-4a63f0f2d411
objects:
  - type: malware
    id: malware--550e8400-e29b-41d4-a716-446655440000
    name: CryptoLocker
    is_family: true
  - type: indicator
    id: indicator--8e2e2d2b-17d4-4cbf-938f-98ee46b3cd3f
    pattern: "[file:size > 1000]"
    pattern_type: stix
`
	dir := t.TempDir()
	path := filepath.Join(dir, "bundle.yaml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	b, err := LoadFile(path, nil, zap.NewNop().Sugar())
	if err != nil {
		t.Fatalf("LoadFile() error = %v", err)
	}
	if b.Len() != 2 {
		t.Errorf("Len() = %d, want 2", b.Len())
	}
	obj, ok := b.Get("malware--550e8400-e29b-41d4-a716-446655440000")
	if !ok || obj.Type() != "malware" {
		t.Error("YAML bundle missing malware object")
	}
}

func TestLoadFile_RejectsBadEnvelope(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "bad.json")
	if err := os.WriteFile(path, []byte(`{"type":"bundle","id":"nope","objects":[]}`), 0o644); err != nil {
		t.Fatal(err)
	}

	if _, err := LoadFile(path, nil, zap.NewNop().Sugar()); err == nil {
		t.Fatal("LoadFile() should reject invalid envelope")
	}
}

func TestWriteFileRoundTrip(t *testing.T) {
	b, err := Decode([]byte(sampleBundleJSON), nil)
	if err != nil {
		t.Fatalf("Decode() error = %v", err)
	}

	dir := t.TempDir()
	path := filepath.Join(dir, "out.json")
	logger := zap.NewNop().Sugar()

	if err := WriteFile(path, b, logger); err != nil {
		t.Fatalf("WriteFile() error = %v", err)
	}

	again, err := LoadFile(path, nil, logger)
	if err != nil {
		t.Fatalf("LoadFile() error = %v", err)
	}
	if again.Len() != b.Len() {
		t.Errorf("round-trip Len() = %d, want %d", again.Len(), b.Len())
	}
}
