package cli

import (
	"github.com/toyz/routedoc/internal/scaffold"
	"github.com/toyz/routedoc/internal/utils"
)

// ModuleResolver handles resolving the module path of Go scaffolds
type ModuleResolver struct {
	gomod *utils.GoModParser
}

// NewModuleResolver creates a new module resolver
func NewModuleResolver() *ModuleResolver {
	return &ModuleResolver{gomod: utils.NewGoModParser()}
}

// ResolveModuleName returns customModule when set. Otherwise the module path
// is derived from a go.mod at or above dir, falling back to
// scaffold.DefaultModule.
func (r *ModuleResolver) ResolveModuleName(customModule, dir string) string {
	if customModule != "" {
		return customModule
	}
	if modulePath, ok := r.gomod.ResolveModulePath(dir); ok {
		return modulePath
	}
	return scaffold.DefaultModule
}
