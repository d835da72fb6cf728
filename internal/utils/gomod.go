package utils

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/mod/modfile"
	"golang.org/x/mod/module"
)

// GoModParser provides utilities for reading and writing go.mod files
type GoModParser struct{}

// NewGoModParser creates a new go.mod parser
func NewGoModParser() *GoModParser {
	return &GoModParser{}
}

// ParseModuleName extracts the module name from a go.mod file
func (p *GoModParser) ParseModuleName(goModPath string) (string, error) {
	cleanPath := filepath.Clean(goModPath)
	if filepath.Base(cleanPath) != "go.mod" {
		return "", fmt.Errorf("file is not a go.mod file: %s", goModPath)
	}

	content, err := os.ReadFile(cleanPath)
	if err != nil {
		return "", WrapLoadError("go.mod file", err)
	}

	// Use the official modfile parser
	modFile, err := modfile.Parse(cleanPath, content, nil)
	if err != nil {
		return "", WrapParseError("go.mod file", err)
	}

	if modFile.Module == nil {
		return "", fmt.Errorf("no module declaration found in go.mod")
	}

	return modFile.Module.Mod.Path, nil
}

// FindGoModFile searches for go.mod file starting from the given directory and walking up
func (p *GoModParser) FindGoModFile(startDir string) (string, error) {
	currentDir, err := filepath.Abs(startDir)
	if err != nil {
		return "", err
	}

	for {
		goModPath := filepath.Join(currentDir, "go.mod")
		if info, err := os.Stat(goModPath); err == nil && !info.IsDir() {
			return goModPath, nil
		}

		parentDir := filepath.Dir(currentDir)
		if parentDir == currentDir {
			break
		}
		currentDir = parentDir
	}

	return "", fmt.Errorf("go.mod file not found")
}

// ResolveModulePath derives the import path of dir from the nearest
// enclosing go.mod. ok is false when dir is not inside a module.
func (p *GoModParser) ResolveModulePath(dir string) (string, bool) {
	goModPath, err := p.FindGoModFile(dir)
	if err != nil {
		return "", false
	}

	moduleName, err := p.ParseModuleName(goModPath)
	if err != nil {
		return "", false
	}

	absDir, err := filepath.Abs(dir)
	if err != nil {
		return "", false
	}
	rel, err := filepath.Rel(filepath.Dir(goModPath), absDir)
	if err != nil || strings.HasPrefix(rel, "..") {
		return "", false
	}
	if rel == "." {
		return moduleName, true
	}
	return moduleName + "/" + filepath.ToSlash(rel), true
}

// Requirement is a module requirement written into a new go.mod
type Requirement struct {
	Path    string
	Version string
}

// BuildGoMod renders a go.mod file for a new module
func (p *GoModParser) BuildGoMod(modulePath, goVersion string, requires []Requirement) ([]byte, error) {
	if err := module.CheckImportPath(modulePath); err != nil {
		return nil, fmt.Errorf("invalid module path %q: %w", modulePath, err)
	}

	file := &modfile.File{}
	if err := file.AddModuleStmt(modulePath); err != nil {
		return nil, err
	}
	if err := file.AddGoStmt(goVersion); err != nil {
		return nil, fmt.Errorf("invalid go version %q: %w", goVersion, err)
	}
	for _, req := range requires {
		if err := file.AddRequire(req.Path, req.Version); err != nil {
			return nil, fmt.Errorf("failed to add requirement %s: %w", req.Path, err)
		}
	}

	file.Cleanup()
	return modfile.Format(file.Syntax), nil
}
