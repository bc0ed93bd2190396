package alias

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func tempStore(t *testing.T) *FileStore {
	t.Helper()
	return NewFileStore(filepath.Join(t.TempDir(), "device-map.json"))
}

func TestFileStore_UpsertAndResolve(t *testing.T) {
	s := tempStore(t)
	ctx := context.Background()

	if err := s.Upsert(ctx, "u1", "lamp", "dev123"); err != nil {
		t.Fatal(err)
	}

	got, err := s.Resolve(ctx, "u1", "lamp")
	if err != nil {
		t.Fatal(err)
	}
	if got != "dev123" {
		t.Errorf("expected dev123, got %q", got)
	}
}

func TestFileStore_ResolvePrefersMappingOverPattern(t *testing.T) {
	s := tempStore(t)
	ctx := context.Background()

	// The alias itself matches the device-id pattern; the mapping must win.
	if err := s.Upsert(ctx, "u1", "bedroom1", "devabc12"); err != nil {
		t.Fatal(err)
	}

	got, err := s.Resolve(ctx, "u1", "bedroom1")
	if err != nil {
		t.Fatal(err)
	}
	if got != "devabc12" {
		t.Errorf("expected mapped id devabc12, got %q", got)
	}
}

func TestFileStore_ResolveFallbackToDeviceID(t *testing.T) {
	s := tempStore(t)

	got, err := s.Resolve(context.Background(), "u1", "AbC123xyz9")
	if err != nil {
		t.Fatal(err)
	}
	if got != "AbC123xyz9" {
		t.Errorf("expected raw id passthrough, got %q", got)
	}
}

func TestFileStore_ResolveNotFound(t *testing.T) {
	s := tempStore(t)

	// Too short to be a device id and not mapped
	_, err := s.Resolve(context.Background(), "u1", "lamp")
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}

func TestFileStore_MissingFileIsEmpty(t *testing.T) {
	s := NewFileStore(filepath.Join(t.TempDir(), "nope", "missing.json"))

	m, err := s.Dump(context.Background())
	if err != nil {
		t.Fatal(err)
	}
	if len(m) != 0 {
		t.Errorf("expected empty store, got %v", m)
	}
}

func TestFileStore_CorruptFileIsEmpty(t *testing.T) {
	path := filepath.Join(t.TempDir(), "device-map.json")
	if err := os.WriteFile(path, []byte("{not json"), 0o600); err != nil {
		t.Fatal(err)
	}

	s := NewFileStore(path)
	m, err := s.Dump(context.Background())
	if err != nil {
		t.Fatal(err)
	}
	if len(m) != 0 {
		t.Errorf("expected empty store for corrupt file, got %v", m)
	}

	// A write on top of a corrupt file recovers silently
	if err := s.Upsert(context.Background(), "u1", "lamp", "dev123"); err != nil {
		t.Fatal(err)
	}
	got, err := s.Resolve(context.Background(), "u1", "lamp")
	if err != nil || got != "dev123" {
		t.Errorf("expected recovery to dev123, got %q err %v", got, err)
	}
}

func TestFileStore_UpsertRequiresAllFields(t *testing.T) {
	s := tempStore(t)

	if err := s.Upsert(context.Background(), "u1", "", "dev123"); !errors.Is(err, ErrMissingField) {
		t.Errorf("expected ErrMissingField, got %v", err)
	}
}

func TestFileStore_DumpIsolatesUsers(t *testing.T) {
	s := tempStore(t)
	ctx := context.Background()

	if err := s.Upsert(ctx, "u1", "lamp", "dev123"); err != nil {
		t.Fatal(err)
	}
	if err := s.Upsert(ctx, "u2", "lamp", "dev456"); err != nil {
		t.Fatal(err)
	}

	m, err := s.Dump(ctx)
	if err != nil {
		t.Fatal(err)
	}
	if m["u1"]["lamp"] != "dev123" || m["u2"]["lamp"] != "dev456" {
		t.Errorf("unexpected dump contents: %v", m)
	}

	// u2's mapping must not leak into u1's resolution
	if _, err := s.Resolve(ctx, "u3", "lamp"); !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound for unmapped user, got %v", err)
	}
}

func TestLooksLikeDeviceID(t *testing.T) {
	valid := []string{"abcd1234", "ABCDEFGH", "00000000", "bf1234567890abcd"}
	for _, s := range valid {
		if !LooksLikeDeviceID(s) {
			t.Errorf("expected %q to look like a device id", s)
		}
	}

	invalid := []string{"", "lamp", "abc-1234", "abcd123", "dev 12345"}
	for _, s := range invalid {
		if LooksLikeDeviceID(s) {
			t.Errorf("expected %q to not look like a device id", s)
		}
	}
}
