// Copyright (c) 2025 Michael D Henderson. All rights reserved.

// Package loader reads syntax tree documents from disk.
package loader

import (
	"log"
	"os"
	"path/filepath"

	"github.com/mdhender/jsrender"
	"github.com/spf13/afero"
)

// Loader resolves input names against a base directory and decodes them.
type Loader struct {
	baseDir string
	fs      afero.Fs
	debug   bool
}

// New creates a Loader that resolves relative names against baseDir.
// An empty baseDir leaves relative names relative to the working directory.
func New(baseDir string) *Loader {
	return &Loader{
		baseDir: baseDir,
		fs:      afero.NewOsFs(),
	}
}

// NewFromExecutable creates a Loader that resolves relative names against
// the directory holding the running executable.
func NewFromExecutable() (*Loader, error) {
	exe, err := os.Executable()
	if err != nil {
		return nil, err
	}
	return New(filepath.Dir(exe)), nil
}

// SetFS sets the filesystem for testing.
func (l *Loader) SetFS(fs afero.Fs) {
	l.fs = fs
}

func (l *Loader) SetDebug(flag bool) {
	l.debug = flag
}

// Input is a decoded document.
type Input struct {
	Path string // the resolved path
	Size int    // bytes read
	Root *jsrender.Node
}

// Resolve returns the path a name refers to. Absolute names are returned as is.
func (l *Loader) Resolve(name string) string {
	if filepath.IsAbs(name) || l.baseDir == "" {
		return filepath.Clean(name)
	}
	return filepath.Join(l.baseDir, name)
}

// Load reads and decodes the named document.
// Failures are returned as *jsrender.InputError.
func (l *Loader) Load(name string) (*Input, error) {
	path := l.Resolve(name)
	if l.debug {
		log.Printf("loader: %q: resolved to %q\n", name, path)
	}

	data, err := afero.ReadFile(l.fs, path)
	if err != nil {
		return nil, &jsrender.InputError{Op: "read", Path: path, Err: err}
	}

	root, err := jsrender.Decode(data)
	if err != nil {
		return nil, &jsrender.InputError{Op: "decode", Path: path, Err: err}
	}

	return &Input{Path: path, Size: len(data), Root: root}, nil
}
