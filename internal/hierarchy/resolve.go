package hierarchy

import (
	"strings"

	"droidlens/internal/extractor"
)

// TypeResolver maps a raw source-level type name to a fully qualified
// name using the declaring file's import context. Resolvers are tried in
// order; the first hit wins.
type TypeResolver interface {
	Name() string
	Resolve(raw string, file *extractor.FileResult) (string, bool)
}

// StageStats counts how many names each stage settled.
type StageStats struct {
	Resolver string
	Resolved int
}

// ResolveChain runs an ordered list of TypeResolvers. Names no stage can
// place are returned unchanged and counted as fallbacks; they become
// phantom classes under their simple name.
type ResolveChain struct {
	stages    []TypeResolver
	resolved  map[string]int
	Fallbacks int
}

// NewDefaultChain builds the standard resolution order: already
// qualified names, single-type imports, same-package siblings, wildcard
// imports, then java.lang defaults.
func NewDefaultChain(declared func(string) bool) *ResolveChain {
	return NewResolveChain(
		&qualifiedResolver{},
		&importResolver{},
		&samePackageResolver{declared: declared},
		&wildcardResolver{declared: declared},
		&javaLangResolver{},
	)
}

func NewResolveChain(stages ...TypeResolver) *ResolveChain {
	return &ResolveChain{stages: stages, resolved: make(map[string]int)}
}

// ResolveType canonicalizes one raw type name. Primitive types and
// array suffixes pass through untouched.
func (c *ResolveChain) ResolveType(raw string, file *extractor.FileResult) string {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return raw
	}

	suffix := ""
	for strings.HasSuffix(raw, "[]") {
		raw = strings.TrimSuffix(raw, "[]")
		suffix += "[]"
	}

	if isPrimitive(raw) {
		return raw + suffix
	}

	for _, stage := range c.stages {
		if fqn, ok := stage.Resolve(raw, file); ok {
			c.resolved[stage.Name()]++
			return fqn + suffix
		}
	}

	c.Fallbacks++
	return raw + suffix
}

// Stats reports per-stage resolution counts in chain order.
func (c *ResolveChain) Stats() []StageStats {
	out := make([]StageStats, 0, len(c.stages))
	for _, s := range c.stages {
		out = append(out, StageStats{Resolver: s.Name(), Resolved: c.resolved[s.Name()]})
	}
	return out
}

type qualifiedResolver struct{}

func (r *qualifiedResolver) Name() string { return "qualified" }

func (r *qualifiedResolver) Resolve(raw string, _ *extractor.FileResult) (string, bool) {
	if strings.Contains(raw, ".") {
		return raw, true
	}
	return "", false
}

type importResolver struct{}

func (r *importResolver) Name() string { return "import" }

func (r *importResolver) Resolve(raw string, file *extractor.FileResult) (string, bool) {
	if file == nil {
		return "", false
	}
	for _, imp := range file.Imports {
		if strings.HasSuffix(imp, "."+raw) {
			return imp, true
		}
	}
	return "", false
}

type samePackageResolver struct {
	declared func(string) bool
}

func (r *samePackageResolver) Name() string { return "package" }

func (r *samePackageResolver) Resolve(raw string, file *extractor.FileResult) (string, bool) {
	if file == nil || file.Package == "" || r.declared == nil {
		return "", false
	}
	candidate := file.Package + "." + raw
	if r.declared(candidate) {
		return candidate, true
	}
	return "", false
}

type wildcardResolver struct {
	declared func(string) bool
}

func (r *wildcardResolver) Name() string { return "wildcard" }

func (r *wildcardResolver) Resolve(raw string, file *extractor.FileResult) (string, bool) {
	if file == nil || r.declared == nil {
		return "", false
	}
	for _, pkg := range file.Wildcards {
		candidate := pkg + "." + raw
		if r.declared(candidate) {
			return candidate, true
		}
	}
	return "", false
}

// javaLangResolver covers the implicit java.lang import.
type javaLangResolver struct{}

var javaLangTypes = map[string]bool{
	"Object": true, "String": true, "CharSequence": true, "Class": true,
	"Integer": true, "Long": true, "Short": true, "Byte": true,
	"Float": true, "Double": true, "Boolean": true, "Character": true,
	"Number": true, "Void": true, "Thread": true, "Runnable": true,
	"Exception": true, "RuntimeException": true, "Throwable": true,
	"Error": true, "StringBuilder": true, "StringBuffer": true,
	"Iterable": true, "Comparable": true, "Cloneable": true,
}

func (r *javaLangResolver) Name() string { return "java.lang" }

func (r *javaLangResolver) Resolve(raw string, _ *extractor.FileResult) (string, bool) {
	if javaLangTypes[raw] {
		return "java.lang." + raw, true
	}
	return "", false
}

var primitives = map[string]bool{
	"void": true, "boolean": true, "byte": true, "short": true,
	"char": true, "int": true, "long": true, "float": true, "double": true,
}

func isPrimitive(name string) bool {
	return primitives[name]
}
