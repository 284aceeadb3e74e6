// Package hcl implements the HCL build-file loader: it parses .hcl build
// files and translates them into the format-agnostic config model.
package hcl

import (
	"context"
	"fmt"
	"os"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/vk/anvilgo/internal/config"
	"github.com/vk/anvilgo/internal/ctxlog"
	"github.com/vk/anvilgo/internal/fsutil"
	"github.com/vk/anvilgo/internal/schema"
)

// Loader is the HCL implementation of config.Loader.
type Loader struct{}

// NewLoader returns an HCL build-file loader.
func NewLoader() *Loader {
	return &Loader{}
}

var _ config.Loader = (*Loader)(nil)

// Load parses the build file at path, or every .hcl file under path when it
// is a directory, and translates the result into the config model.
func (l *Loader) Load(ctx context.Context, path string) (*config.Model, error) {
	logger := ctxlog.FromContext(ctx)

	info, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("build file %q: %w", path, err)
	}

	paths := []string{path}
	if info.IsDir() {
		paths, err = fsutil.FindFilesByExtension(path, ".hcl")
		if err != nil {
			return nil, fmt.Errorf("scanning %q for build files: %w", path, err)
		}
		if len(paths) == 0 {
			return nil, fmt.Errorf("no .hcl build files found under %q", path)
		}
	}
	logger.Debug("Loading build files.", "files", paths)

	parser := hclparse.NewParser()
	files := make([]*hcl.File, 0, len(paths))
	for _, p := range paths {
		f, diags := parser.ParseHCLFile(p)
		if diags.HasErrors() {
			return nil, fmt.Errorf("parsing %s: %w", p, diags)
		}
		files = append(files, f)
	}

	var bf schema.BuildFile
	if diags := gohcl.DecodeBody(hcl.MergeFiles(files), nil, &bf); diags.HasErrors() {
		return nil, fmt.Errorf("decoding build file: %w", diags)
	}

	model, err := l.translate(&bf)
	if err != nil {
		return nil, err
	}
	logger.Debug("Build file loaded.",
		"targets", len(model.Targets),
		"properties", len(model.Properties))
	return model, nil
}
