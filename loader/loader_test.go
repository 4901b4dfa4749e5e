// Copyright (c) 2025 Michael D Henderson. All rights reserved.

package loader_test

import (
	"errors"
	"io/fs"
	"path/filepath"
	"testing"

	"github.com/mdhender/jsrender"
	"github.com/mdhender/jsrender/loader"
	"github.com/spf13/afero"
)

func TestLoader_Resolve(t *testing.T) {
	base := filepath.FromSlash("/opt/jsrender/bin")
	l := loader.New(base)
	for _, tc := range []struct {
		name string
		want string
	}{
		{"tree.json", filepath.Join(base, "tree.json")},
		{filepath.FromSlash("testdata/tree.json"), filepath.Join(base, "testdata", "tree.json")},
		{filepath.FromSlash("../share/tree.json"), filepath.FromSlash("/opt/jsrender/share/tree.json")},
		{filepath.FromSlash("/tmp/tree.json"), filepath.FromSlash("/tmp/tree.json")},
	} {
		if got := l.Resolve(tc.name); got != tc.want {
			t.Errorf("Resolve(%q) = %q, want %q", tc.name, got, tc.want)
		}
	}

	if got, want := loader.New("").Resolve("tree.json"), "tree.json"; got != want {
		t.Errorf("Resolve without base = %q, want %q", got, want)
	}
}

func TestLoader_Load(t *testing.T) {
	base := filepath.FromSlash("/opt/jsrender/bin")
	mfs := afero.NewMemMapFs()
	data := []byte(`{"type":"IDENTIFIER","value":"x"}`)
	if err := afero.WriteFile(mfs, filepath.Join(base, "tree.json"), data, 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}

	l := loader.New(base)
	l.SetFS(mfs)

	input, err := l.Load("tree.json")
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if got, want := input.Path, filepath.Join(base, "tree.json"); got != want {
		t.Errorf("Path = %q, want %q", got, want)
	}
	if got, want := input.Size, len(data); got != want {
		t.Errorf("Size = %d, want %d", got, want)
	}
	if got, want := input.Root.Type, jsrender.IDENTIFIER; got != want {
		t.Errorf("Root.Type = %q, want %q", got, want)
	}
}

func TestLoader_LoadErrors(t *testing.T) {
	mfs := afero.NewMemMapFs()
	if err := afero.WriteFile(mfs, filepath.FromSlash("/data/bad.json"), []byte(`{"type":`), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	if err := afero.WriteFile(mfs, filepath.FromSlash("/data/null.json"), []byte(`null`), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}

	l := loader.New(filepath.FromSlash("/data"))
	l.SetFS(mfs)

	for _, tc := range []struct {
		name string
		op   string
		code string
	}{
		{"missing.json", "read", jsrender.ErrCodeInputRead},
		{"bad.json", "decode", jsrender.ErrCodeInputDecode},
		{"null.json", "decode", jsrender.ErrCodeInputDecode},
	} {
		t.Run(tc.name, func(t *testing.T) {
			input, err := l.Load(tc.name)
			if err == nil {
				t.Fatalf("load: got %+v, want error", input)
			}
			var ie *jsrender.InputError
			if !errors.As(err, &ie) {
				t.Fatalf("load: got %T %v, want *jsrender.InputError", err, err)
			}
			if ie.Op != tc.op {
				t.Errorf("Op = %q, want %q", ie.Op, tc.op)
			}
			if got := jsrender.ErrorCode(err); got != tc.code {
				t.Errorf("ErrorCode = %q, want %q", got, tc.code)
			}
		})
	}

	_, err := l.Load("missing.json")
	if !errors.Is(err, fs.ErrNotExist) {
		t.Errorf("load missing: got %v, want fs.ErrNotExist", err)
	}
}
