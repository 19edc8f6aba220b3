package inputmask_test

import (
	"errors"
	"testing"
	"testing/fstest"

	"github.com/goliatone/go-inputmask"
)

func TestNew_QuickStart(t *testing.T) {
	engine, err := inputmask.New(inputmask.Config{Pattern: "[1 ](000) 000-0000"})
	if err != nil {
		t.Fatalf("new: %v", err)
	}
	if got := engine.Resolve("1-999-999-9999").Value(); got != "1 (999) 999-9999" {
		t.Fatalf("value: got %q", got)
	}
	if engine.Mode() != inputmask.ModeLiteral {
		t.Fatalf("mode: got %v", engine.Mode())
	}

	if _, err := inputmask.New(inputmask.Config{}); !errors.Is(err, inputmask.ErrConfiguration) {
		t.Fatalf("expected configuration error, got %v", err)
	}
}

func TestLoadFS_ReExport(t *testing.T) {
	store, err := inputmask.LoadFS(fstest.MapFS{
		"masks.yaml": {Data: []byte("masks:\n  amount:\n    mask: Number\n")},
	})
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	engine, err := store.Engine("amount")
	if err != nil {
		t.Fatalf("engine: %v", err)
	}
	if got := engine.Mask("15000000.00"); got != "15,000,000.00" {
		t.Fatalf("amount: got %q", got)
	}

	session := inputmask.NewSession(engine)
	if got := session.Change("1500").Display; got != "1,500" {
		t.Fatalf("session: got %q", got)
	}
}
