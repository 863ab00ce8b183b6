package hierarchy

import (
	"droidlens/internal/extractor"
)

// Builder accumulates extracted files and links them into a Hierarchy.
// Supertype and signature names are kept raw until Build so that
// same-package and wildcard resolution can see every declared class.
type Builder struct {
	h       *Hierarchy
	pending []pendingFile
}

type pendingFile struct {
	file    *extractor.FileResult
	classes []*Class // parallel to file.Classes
}

func NewBuilder() *Builder {
	return &Builder{h: New()}
}

// AddFile registers all declarations from one extracted file.
func (b *Builder) AddFile(f *extractor.FileResult) {
	if f == nil {
		return
	}

	pf := pendingFile{file: f}
	for _, decl := range f.Classes {
		c := &Class{
			Name:      qualifiedName(decl),
			Package:   decl.Package,
			Kind:      Kind(decl.Kind),
			Filepath:  decl.Filepath,
			StartLine: decl.StartLine,
			EndLine:   decl.EndLine,
		}
		c = b.h.Add(c)
		pf.classes = append(pf.classes, c)
	}
	b.pending = append(b.pending, pf)
}

// Build resolves all raw type references and returns the finished
// hierarchy plus per-stage resolution stats. The hierarchy must not be
// mutated afterwards.
func (b *Builder) Build() (*Hierarchy, []StageStats) {
	chain := NewDefaultChain(func(name string) bool {
		c := b.h.ClassByName(name)
		return c != nil && !c.Phantom
	})

	for _, pf := range b.pending {
		for i, decl := range pf.file.Classes {
			c := pf.classes[i]

			if decl.Superclass != "" {
				super := chain.ResolveType(decl.Superclass, pf.file)
				c.Superclass = b.h.Ensure(super)
			}
			for _, raw := range decl.Interfaces {
				iface := b.h.Ensure(chain.ResolveType(raw, pf.file))
				if iface.Phantom {
					iface.Kind = KindInterface
				}
				c.Interfaces = append(c.Interfaces, iface)
			}

			for _, md := range decl.Methods {
				m := &Method{
					Class:      c,
					Name:       md.Name,
					ReturnType: chain.ResolveType(md.ReturnType, pf.file),
					StartLine:  md.StartLine,
					EndLine:    md.EndLine,
				}
				for _, p := range md.Params {
					m.Params = append(m.Params, chain.ResolveType(p, pf.file))
				}
				c.Methods = append(c.Methods, m)
			}
		}
	}

	b.pending = nil
	return b.h, chain.Stats()
}

func qualifiedName(decl *extractor.ClassDecl) string {
	if decl.Package == "" {
		return decl.Name
	}
	return decl.Package + "." + decl.Name
}
