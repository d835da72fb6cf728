package scaffold

import (
	"strings"

	"github.com/toyz/routedoc/internal/errors"
)

// Target is the framework a scaffold is generated for
type Target string

const (
	TargetExpress Target = "express"
	TargetKoa     Target = "koa"
	TargetFastify Target = "fastify"
	TargetGin     Target = "gin"
	TargetEcho    Target = "echo"
	TargetFiber   Target = "fiber"
)

// SupportedTargets returns every scaffold target
func SupportedTargets() []Target {
	return []Target{TargetExpress, TargetKoa, TargetFastify, TargetGin, TargetEcho, TargetFiber}
}

// ParseTarget matches name case-insensitively against the supported targets
func ParseTarget(name string) (Target, error) {
	lower := Target(strings.ToLower(name))
	for _, target := range SupportedTargets() {
		if lower == target {
			return target, nil
		}
	}

	names := make([]string, 0, len(SupportedTargets()))
	for _, target := range SupportedTargets() {
		names = append(names, string(target))
	}
	return "", errors.Newf(errors.FrameworkErrorCode, "unsupported scaffold target: %s", name).
		WithContext("target", name).
		WithSuggestion("Supported targets: " + strings.Join(names, ", "))
}

// IsGo reports whether the target produces a Go module
func (t Target) IsGo() bool {
	return t == TargetGin || t == TargetEcho || t == TargetFiber
}
