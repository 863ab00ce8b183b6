package extractor

import sitter "github.com/smacker/go-tree-sitter"

// FileResult holds everything extracted from one Java source file.
// Type names inside are raw, exactly as written in the source; the
// hierarchy builder resolves them to fully qualified names later using
// the import context carried here.
type FileResult struct {
	Path      string       `json:"path"`
	Package   string       `json:"package"`
	Imports   []string     `json:"imports,omitempty"`   // single-type imports, fully qualified
	Wildcards []string     `json:"wildcards,omitempty"` // on-demand import package prefixes
	Classes   []*ClassDecl `json:"classes"`
}

// ClassDecl is a single class or interface declaration.
type ClassDecl struct {
	Name       string       `json:"name"` // simple name
	Package    string       `json:"package"`
	Kind       string       `json:"kind"` // "class" or "interface"
	Filepath   string       `json:"filepath"`
	StartLine  int          `json:"start_line"`
	EndLine    int          `json:"end_line"`
	Superclass string       `json:"superclass,omitempty"` // raw extends target
	Interfaces []string     `json:"interfaces,omitempty"` // raw implements/extends targets
	Methods    []MethodDecl `json:"methods,omitempty"`
}

// MethodDecl is a method declaration inside a ClassDecl. Constructors
// and initializer blocks are not extracted; they are never lifecycle
// hooks.
type MethodDecl struct {
	Name       string   `json:"name"`
	Params     []string `json:"params,omitempty"` // raw parameter types, in order
	ReturnType string   `json:"return_type"`
	StartLine  int      `json:"start_line"`
	EndLine    int      `json:"end_line"`
}

// LanguageExtractor defines the interface a language parser must implement.
type LanguageExtractor interface {
	GetLanguage() *sitter.Language
	GetQuery() string
	ExtractClass(captureName string, node *sitter.Node, sourceCode []byte, filepath string, packageName string) *ClassDecl
}
