package hierarchy

import "strings"

type Kind string

const (
	KindClass     Kind = "class"
	KindInterface Kind = "interface"
)

// Class is the canonical handle for a type in the hierarchy. Pointer
// identity is stable for the lifetime of the owning Hierarchy, so a
// *Class can be used directly as a map key.
type Class struct {
	Name      string // fully qualified name
	Package   string
	Kind      Kind
	Filepath  string
	StartLine int
	EndLine   int

	// Phantom marks a type that was referenced (as a supertype or in a
	// method signature) but never declared in the scanned sources.
	// Framework classes like android.app.Activity are always phantoms.
	Phantom bool

	Superclass *Class
	Interfaces []*Class
	Methods    []*Method
}

// SimpleName returns the name without its package qualifier.
func (c *Class) SimpleName() string {
	if i := strings.LastIndex(c.Name, "."); i >= 0 {
		return c.Name[i+1:]
	}
	return c.Name
}

// Method is a method declaration owned by exactly one class.
type Method struct {
	Class      *Class `json:"-"`
	Name       string
	Params     []string // fully qualified parameter types, in order
	ReturnType string
	StartLine  int
	EndLine    int
}

// SubSignature returns the declaring-class independent canonical form of
// the method, e.g. "void onCreate(android.os.Bundle)". Two methods with
// the same subsignature are the same hook regardless of where they are
// declared.
func (m *Method) SubSignature() string {
	return Subsignature(m.ReturnType, m.Name, m.Params)
}

// Subsignature builds the canonical subsignature string from its parts.
func Subsignature(returnType, name string, params []string) string {
	var sb strings.Builder
	sb.WriteString(strings.TrimSpace(returnType))
	sb.WriteByte(' ')
	sb.WriteString(strings.TrimSpace(name))
	sb.WriteByte('(')
	for i, p := range params {
		if i > 0 {
			sb.WriteByte(',')
		}
		sb.WriteString(strings.TrimSpace(p))
	}
	sb.WriteByte(')')
	return sb.String()
}
