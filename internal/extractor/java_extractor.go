package extractor

import (
	"strings"

	sitter "github.com/smacker/go-tree-sitter"
	"github.com/smacker/go-tree-sitter/java"
)

// JavaExtractor implements LanguageExtractor for Java.
type JavaExtractor struct{}

func (j *JavaExtractor) GetLanguage() *sitter.Language {
	return java.GetLanguage()
}

func (j *JavaExtractor) GetQuery() string {
	return `
		(class_declaration) @class
		(interface_declaration) @interface
	`
}

func (j *JavaExtractor) ExtractClass(captureName string, node *sitter.Node, sourceCode []byte, filepath string, packageName string) *ClassDecl {
	var decl *ClassDecl
	switch captureName {
	case "class":
		decl = j.extractClassDecl(node, sourceCode, filepath, "class")
	case "interface":
		decl = j.extractClassDecl(node, sourceCode, filepath, "interface")
	}

	if decl != nil {
		decl.Package = packageName
	}
	return decl
}

func (j *JavaExtractor) extractClassDecl(node *sitter.Node, sourceCode []byte, filepath string, kind string) *ClassDecl {
	nameNode := node.ChildByFieldName("name")
	if nameNode == nil {
		return nil
	}

	decl := &ClassDecl{
		Name:      nameNode.Content(sourceCode),
		Kind:      kind,
		Filepath:  filepath,
		StartLine: int(node.StartPoint().Row + 1),
		EndLine:   int(node.EndPoint().Row + 1),
	}

	// extends clause: a single class for classes, a type list for
	// interfaces (which have no implements clause).
	if super := node.ChildByFieldName("superclass"); super != nil {
		for _, t := range typeNames(super, sourceCode) {
			decl.Superclass = t
			break
		}
	}
	if ifaces := node.ChildByFieldName("interfaces"); ifaces != nil {
		decl.Interfaces = append(decl.Interfaces, typeNames(ifaces, sourceCode)...)
	}
	if kind == "interface" {
		for i := 0; i < int(node.NamedChildCount()); i++ {
			child := node.NamedChild(i)
			if child.Type() == "extends_interfaces" {
				decl.Interfaces = append(decl.Interfaces, typeNames(child, sourceCode)...)
			}
		}
	}

	if body := node.ChildByFieldName("body"); body != nil {
		decl.Methods = j.extractMethods(body, sourceCode)
	}

	return decl
}

func (j *JavaExtractor) extractMethods(body *sitter.Node, sourceCode []byte) []MethodDecl {
	var methods []MethodDecl
	for i := 0; i < int(body.NamedChildCount()); i++ {
		child := body.NamedChild(i)
		if child.Type() != "method_declaration" {
			continue
		}

		nameNode := child.ChildByFieldName("name")
		typeNode := child.ChildByFieldName("type")
		if nameNode == nil || typeNode == nil {
			continue
		}

		m := MethodDecl{
			Name:       nameNode.Content(sourceCode),
			ReturnType: cleanTypeName(typeNode.Content(sourceCode)),
			StartLine:  int(child.StartPoint().Row + 1),
			EndLine:    int(child.EndPoint().Row + 1),
		}

		if params := child.ChildByFieldName("parameters"); params != nil {
			m.Params = j.extractParams(params, sourceCode)
		}

		methods = append(methods, m)
	}
	return methods
}

func (j *JavaExtractor) extractParams(params *sitter.Node, sourceCode []byte) []string {
	var out []string
	for i := 0; i < int(params.NamedChildCount()); i++ {
		p := params.NamedChild(i)
		switch p.Type() {
		case "formal_parameter":
			if t := p.ChildByFieldName("type"); t != nil {
				out = append(out, cleanTypeName(t.Content(sourceCode)))
			}
		case "spread_parameter":
			// Varargs lower to an array parameter.
			if t := p.NamedChild(0); t != nil {
				out = append(out, cleanTypeName(t.Content(sourceCode))+"[]")
			}
		}
	}
	return out
}

// typeNames collects the raw type names under an extends/implements
// clause node, skipping keywords and punctuation.
func typeNames(node *sitter.Node, sourceCode []byte) []string {
	var out []string
	var walk func(n *sitter.Node)
	walk = func(n *sitter.Node) {
		switch n.Type() {
		case "type_identifier", "scoped_type_identifier", "generic_type":
			out = append(out, cleanTypeName(n.Content(sourceCode)))
			return
		}
		for i := 0; i < int(n.NamedChildCount()); i++ {
			walk(n.NamedChild(i))
		}
	}
	walk(node)
	return out
}

// cleanTypeName strips generic arguments and normalizes whitespace while
// preserving array suffixes: "List<String>" -> "List", "int [ ]" -> "int[]".
func cleanTypeName(raw string) string {
	raw = strings.TrimSpace(raw)
	arrays := strings.Count(raw, "[")
	if i := strings.IndexByte(raw, '<'); i >= 0 {
		// Generic arguments may themselves contain brackets; count only
		// the ones outside the argument list.
		depth := 0
		arrays = 0
		for _, r := range raw {
			switch r {
			case '<':
				depth++
			case '>':
				depth--
			case '[':
				if depth == 0 {
					arrays++
				}
			}
		}
		raw = raw[:i]
	} else if arrays > 0 {
		raw = raw[:strings.IndexByte(raw, '[')]
	}
	raw = strings.Join(strings.Fields(raw), "")
	return raw + strings.Repeat("[]", arrays)
}
