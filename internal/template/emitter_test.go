package template

import (
	"errors"
	"testing"

	"github.com/go-git/go-billy/v5/memfs"
	"github.com/go-git/go-billy/v5/util"
)

func TestEmitterEmit(t *testing.T) {
	t.Run("creates_parents_and_writes", func(t *testing.T) {
		fs := memfs.New()
		e := NewEmitter(fs, nil)

		written, err := e.Emit("demo", []GeneratedFile{
			{Path: "locales/uz.json", Content: []byte("{}\n")},
			{Path: "src/app/[locale]/page.tsx", Content: []byte("page\n")},
		})
		if err != nil {
			t.Fatalf("Emit error: %v", err)
		}
		if len(written) != 2 {
			t.Fatalf("written = %v, want 2 paths", written)
		}

		got, err := util.ReadFile(fs, "demo/src/app/[locale]/page.tsx")
		if err != nil {
			t.Fatalf("read emitted file: %v", err)
		}
		if string(got) != "page\n" {
			t.Errorf("content = %q, want %q", got, "page\n")
		}
	})

	t.Run("overwrites_existing_file", func(t *testing.T) {
		fs := memfs.New()
		if err := util.WriteFile(fs, "demo/next.config.ts", []byte("old"), 0o644); err != nil {
			t.Fatalf("seed: %v", err)
		}

		e := NewEmitter(fs, nil)
		if _, err := e.Emit("demo", []GeneratedFile{{Path: "next.config.ts", Content: []byte("new")}}); err != nil {
			t.Fatalf("Emit error: %v", err)
		}

		got, _ := util.ReadFile(fs, "demo/next.config.ts")
		if string(got) != "new" {
			t.Errorf("content = %q, want %q", got, "new")
		}
	})

	t.Run("mkdir_is_idempotent", func(t *testing.T) {
		fs := memfs.New()
		e := NewEmitter(fs, nil)
		files := []GeneratedFile{{Path: "i18n/routing.ts", Content: []byte("x")}}

		for i := range 2 {
			if _, err := e.Emit("demo", files); err != nil {
				t.Fatalf("Emit #%d error: %v", i+1, err)
			}
		}

		entries, err := fs.ReadDir("demo")
		if err != nil {
			t.Fatalf("ReadDir: %v", err)
		}
		count := 0
		for _, entry := range entries {
			if entry.Name() == "i18n" {
				count++
			}
		}
		if count != 1 {
			t.Errorf("i18n directory present %d times, want 1", count)
		}
	})

	t.Run("rejects_escaping_paths_before_writing", func(t *testing.T) {
		fs := memfs.New()
		e := NewEmitter(fs, nil)

		_, err := e.Emit("demo", []GeneratedFile{
			{Path: "ok.txt", Content: []byte("x")},
			{Path: "../outside.txt", Content: []byte("x")},
		})
		if !errors.Is(err, ErrPathTraversal) {
			t.Fatalf("expected ErrPathTraversal, got: %v", err)
		}
		if _, err := fs.Stat("demo/ok.txt"); err == nil {
			t.Error("no file should be written when any path is invalid")
		}
	})
}

func TestValidateFilePath(t *testing.T) {
	tests := []struct {
		name    string
		path    string
		wantErr bool
	}{
		{"simple", "locales/en.json", false},
		{"bracket_segment", "app/[locale]/layout.tsx", false},
		{"inner_dotdot_resolved", "src/../locales/en.json", false},
		{"empty", "", true},
		{"dot", ".", true},
		{"absolute", "/etc/passwd", true},
		{"parent", "../x", true},
		{"nested_escape", "a/../../x", true},
		{"backslash_escape", `..\x`, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validateFilePath(tt.path)
			if (err != nil) != tt.wantErr {
				t.Errorf("validateFilePath(%q) error = %v, wantErr %v", tt.path, err, tt.wantErr)
			}
		})
	}
}
