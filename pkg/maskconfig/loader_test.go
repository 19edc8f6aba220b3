package maskconfig_test

import (
	"bytes"
	"errors"
	"log/slog"
	"os"
	"strings"
	"testing"
	"testing/fstest"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-inputmask/pkg/mask"
	"github.com/goliatone/go-inputmask/pkg/maskconfig"
)

func TestLoadFS_Testdata(t *testing.T) {
	var logs bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&logs, &slog.HandlerOptions{Level: slog.LevelDebug}))

	store, err := maskconfig.LoadFS(os.DirFS("testdata"), maskconfig.WithLogger(logger))
	if err != nil {
		t.Fatalf("load: %v", err)
	}

	want := []string{"amount", "card", "dob", "phone", "pin", "postal", "zip"}
	if diff := cmp.Diff(want, store.Names()); diff != "" {
		t.Fatalf("names mismatch (-want +got):\n%s", diff)
	}
	if !strings.Contains(logs.String(), "masks=7") {
		t.Fatalf("expected load summary in logs, got %q", logs.String())
	}

	cases := []struct {
		name  string
		input string
		want  string
	}{
		{"phone", "777", "(777) ___-____"},
		{"card", "12341234123412349999", "1234 1234 1234 1234"},
		{"pin", "12345", "1234"},
		{"amount", "1500000.00", "1.500.000,00"},
		{"dob", "02292010", "03/01/2010"},
		{"postal", "k1a0b1", "k1a 0b1"},
	}
	for _, tc := range cases {
		engine, err := store.Engine(tc.name)
		if err != nil {
			t.Fatalf("engine %s: %v", tc.name, err)
		}
		if got := engine.Mask(tc.input); got != tc.want {
			t.Fatalf("%s mask %q: want %q, got %q", tc.name, tc.input, tc.want, got)
		}
	}

	def, ok := store.Definition("phone")
	if !ok || def.Description != "North American phone number" {
		t.Fatalf("definition not preserved: %#v", def)
	}
	if zip, _ := store.Definition("zip"); zip.Mask != "12345" {
		t.Fatalf("numeric JSON mask should be stringified, got %q", zip.Mask)
	}
	cfg, _ := store.Config("amount")
	if cfg.Mode != mask.ModeNumber {
		t.Fatalf("amount mode: want Number, got %v", cfg.Mode)
	}
}

func TestStore_EngineIsFreshPerCall(t *testing.T) {
	store, err := maskconfig.Parse([]byte("masks:\n  pin:\n    mask: \"0000\"\n"), "inline.yaml")
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	first, _ := store.Engine("pin")
	second, _ := store.Engine("pin")
	if first == second {
		t.Fatalf("expected distinct engines per call")
	}
	first.Resolve("1234")
	if second.Value() != "" {
		t.Fatalf("engines share state: %q", second.Value())
	}
}

func TestLoadFS_Errors(t *testing.T) {
	cases := []struct {
		name     string
		files    fstest.MapFS
		contains string
		config   bool
	}{
		{
			name:     "empty file",
			files:    fstest.MapFS{"a.yaml": {Data: []byte("  \n")}},
			contains: "is empty",
		},
		{
			name: "duplicate across files",
			files: fstest.MapFS{
				"a.yaml": {Data: []byte("masks:\n  pin:\n    mask: \"00\"\n")},
				"b.json": {Data: []byte(`{"masks":{"pin":{"mask":"000"}}}`)},
			},
			contains: `duplicate mask "pin"`,
		},
		{
			name:     "missing pattern",
			files:    fstest.MapFS{"a.yaml": {Data: []byte("masks:\n  broken:\n    guide: true\n")}},
			contains: "mask/pattern required",
			config:   true,
		},
		{
			name:     "unsupported pattern type",
			files:    fstest.MapFS{"a.json": {Data: []byte(`{"masks":{"flag":{"mask":true}}}`)}},
			contains: "unsupported mask value",
		},
		{
			name:     "non scalar pattern",
			files:    fstest.MapFS{"a.yaml": {Data: []byte("masks:\n  list:\n    mask: [\"0\"]\n")}},
			contains: "must be a scalar",
		},
		{
			name:     "invalid yaml",
			files:    fstest.MapFS{"a.yaml": {Data: []byte("masks: [\n")}},
			contains: "maskconfig: parse a.yaml",
		},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			_, err := maskconfig.LoadFS(tc.files)
			if err == nil {
				t.Fatalf("expected error")
			}
			if !strings.Contains(err.Error(), tc.contains) {
				t.Fatalf("error %q does not mention %q", err, tc.contains)
			}
			if tc.config && !errors.Is(err, mask.ErrConfiguration) {
				t.Fatalf("expected configuration error, got %v", err)
			}
		})
	}
}

func TestLoadFS_NilAndIgnoredFiles(t *testing.T) {
	store, err := maskconfig.LoadFS(nil)
	if err != nil || !store.Empty() {
		t.Fatalf("nil fs: store=%v err=%v", store, err)
	}

	store, err = maskconfig.LoadFS(fstest.MapFS{"README.md": {Data: []byte("# masks")}})
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if !store.Empty() {
		t.Fatalf("non-schema files should be ignored, got %v", store.Names())
	}
	if _, err := store.Engine("phone"); err == nil {
		t.Fatalf("expected missing mask error")
	}
}
