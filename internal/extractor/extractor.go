package extractor

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"os"
	"strings"

	lru "github.com/hashicorp/golang-lru/v2"
	sitter "github.com/smacker/go-tree-sitter"
)

// parseCacheSize bounds the number of per-file parse results kept in
// memory. Incremental updates re-extract the same files repeatedly, so
// cache hits are common there; a full scan touches each file once.
const parseCacheSize = 512

// Extractor orchestrates the extraction process using a language-specific
// extractor.
type Extractor struct {
	langExtractor LanguageExtractor
	langName      string
	cache         *lru.Cache[string, *FileResult]
}

// NewExtractor creates a new extractor for a given language.
func NewExtractor(lang string) (*Extractor, error) {
	var langExt LanguageExtractor
	switch lang {
	case "java":
		langExt = &JavaExtractor{}
	default:
		return nil, fmt.Errorf("unsupported language: %s", lang)
	}

	cache, err := lru.New[string, *FileResult](parseCacheSize)
	if err != nil {
		return nil, err
	}

	return &Extractor{langExtractor: langExt, langName: lang, cache: cache}, nil
}

// ExtractFromFile parses a single source file and extracts all type
// declarations. Results are cached by content hash, so re-extracting an
// unchanged file is free.
func (e *Extractor) ExtractFromFile(filepath string) (*FileResult, error) {
	sourceCode, err := os.ReadFile(filepath)
	if err != nil {
		return nil, fmt.Errorf("failed to read file %s: %w", filepath, err)
	}

	key := cacheKey(filepath, sourceCode)
	if cached, ok := e.cache.Get(key); ok {
		return cached, nil
	}

	parser := sitter.NewParser()
	parser.SetLanguage(e.langExtractor.GetLanguage())
	tree, err := parser.ParseCtx(context.Background(), nil, sourceCode)
	if err != nil {
		return nil, fmt.Errorf("failed to parse file %s: %w", filepath, err)
	}

	result := &FileResult{Path: filepath}
	e.collectHeader(tree.RootNode(), sourceCode, result)

	query, err := sitter.NewQuery([]byte(e.langExtractor.GetQuery()), e.langExtractor.GetLanguage())
	if err != nil {
		return nil, fmt.Errorf("failed to create query: %w", err)
	}

	qc := sitter.NewQueryCursor()
	qc.Exec(query, tree.RootNode())

	for {
		m, ok := qc.NextMatch()
		if !ok {
			break
		}
		for _, c := range m.Captures {
			captureName := query.CaptureNameForId(c.Index)
			decl := e.langExtractor.ExtractClass(captureName, c.Node, sourceCode, filepath, result.Package)
			if decl != nil {
				result.Classes = append(result.Classes, decl)
			}
		}
	}

	e.cache.Add(key, result)
	return result, nil
}

// collectHeader reads the package declaration and imports from the top
// of the compilation unit.
func (e *Extractor) collectHeader(root *sitter.Node, sourceCode []byte, result *FileResult) {
	for i := 0; i < int(root.NamedChildCount()); i++ {
		child := root.NamedChild(i)
		switch child.Type() {
		case "package_declaration":
			result.Package = trimDeclaration(child.Content(sourceCode), "package")
		case "import_declaration":
			imp := trimDeclaration(child.Content(sourceCode), "import")
			if strings.HasPrefix(imp, "static ") {
				// Static imports bring in members, not types.
				continue
			}
			if strings.HasSuffix(imp, ".*") {
				result.Wildcards = append(result.Wildcards, strings.TrimSuffix(imp, ".*"))
			} else if imp != "" {
				result.Imports = append(result.Imports, imp)
			}
		}
	}
}

func trimDeclaration(content, keyword string) string {
	content = strings.TrimSpace(content)
	content = strings.TrimPrefix(content, keyword)
	content = strings.TrimSuffix(strings.TrimSpace(content), ";")
	return strings.TrimSpace(content)
}

func cacheKey(filepath string, sourceCode []byte) string {
	sum := sha256.Sum256(sourceCode)
	return filepath + ":" + hex.EncodeToString(sum[:8])
}
