package hierarchy

import "sort"

// Hierarchy holds every class known to one analysis run. It is built
// once, then treated as immutable; the subtype oracle assumes no
// further mutation.
type Hierarchy struct {
	classes map[string]*Class
}

func New() *Hierarchy {
	return &Hierarchy{classes: make(map[string]*Class)}
}

// ClassByName resolves a fully qualified name to its handle, or nil if
// the type is not present in this hierarchy. A nil result is a capability
// gap, not an error: the analyzed framework version may simply lack the
// class.
func (h *Hierarchy) ClassByName(name string) *Class {
	return h.classes[name]
}

// Ensure returns the handle for name, creating a phantom entry if the
// type has not been seen yet.
func (h *Hierarchy) Ensure(name string) *Class {
	if c, ok := h.classes[name]; ok {
		return c
	}
	c := &Class{
		Name:    name,
		Package: packageOf(name),
		Kind:    KindClass,
		Phantom: true,
	}
	h.classes[name] = c
	return c
}

// Add registers a declared class, replacing any phantom placeholder in
// place so existing handles stay valid.
func (h *Hierarchy) Add(c *Class) *Class {
	if existing, ok := h.classes[c.Name]; ok && existing.Phantom {
		existing.Package = c.Package
		existing.Kind = c.Kind
		existing.Filepath = c.Filepath
		existing.StartLine = c.StartLine
		existing.EndLine = c.EndLine
		existing.Phantom = false
		existing.Superclass = c.Superclass
		existing.Interfaces = c.Interfaces
		existing.Methods = c.Methods
		for _, m := range existing.Methods {
			m.Class = existing
		}
		return existing
	}
	h.classes[c.Name] = c
	return c
}

// Classes returns all known classes, declared and phantom, in name order.
func (h *Hierarchy) Classes() []*Class {
	out := make([]*Class, 0, len(h.classes))
	for _, c := range h.classes {
		out = append(out, c)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}

// Size returns the number of known classes.
func (h *Hierarchy) Size() int {
	return len(h.classes)
}

// CanStoreType reports whether a value of type sub can be stored where
// type sup is expected, i.e. sub is sup or a transitive subtype of it.
// Both single inheritance and interface implementation count.
func (h *Hierarchy) CanStoreType(sub, sup *Class) bool {
	if sub == nil || sup == nil {
		return false
	}
	return h.canStore(sub, sup, make(map[*Class]bool))
}

func (h *Hierarchy) canStore(sub, sup *Class, seen map[*Class]bool) bool {
	if sub == sup {
		return true
	}
	if seen[sub] {
		// Cycle in the declared hierarchy; broken input, treat as no match.
		return false
	}
	seen[sub] = true

	if sub.Superclass != nil && h.canStore(sub.Superclass, sup, seen) {
		return true
	}
	for _, iface := range sub.Interfaces {
		if h.canStore(iface, sup, seen) {
			return true
		}
	}
	return false
}

func packageOf(name string) string {
	for i := len(name) - 1; i >= 0; i-- {
		if name[i] == '.' {
			return name[:i]
		}
	}
	return ""
}
