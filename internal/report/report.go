package report

import (
	"fmt"
	"sort"
	"strings"

	"droidlens/internal/hierarchy"
	"droidlens/internal/lifecycle"
)

// Generator renders human-readable summaries of a classified hierarchy.
type Generator struct {
	h          *hierarchy.Hierarchy
	classifier *lifecycle.Classifier
}

func NewGenerator(h *hierarchy.Hierarchy, classifier *lifecycle.Classifier) *Generator {
	return &Generator{h: h, classifier: classifier}
}

// Markdown renders the full component report: one section per role,
// each class with its lifecycle methods flagged.
func (g *Generator) Markdown() (string, error) {
	byComponent := g.groupByComponent()

	var sb strings.Builder
	sb.WriteString("# Android Component Report\n\n")

	total := 0
	for _, classes := range byComponent {
		total += len(classes)
	}
	sb.WriteString(fmt.Sprintf("Classified %d application classes.\n\n", total))

	for _, ctype := range lifecycle.AllComponentTypes() {
		classes := byComponent[ctype]
		if len(classes) == 0 {
			continue
		}

		sb.WriteString(fmt.Sprintf("## %s (%d)\n\n", ctype, len(classes)))
		for _, c := range classes {
			sb.WriteString(fmt.Sprintf("### %s\n\n", c.Name))
			if c.Superclass != nil {
				sb.WriteString(fmt.Sprintf("- extends `%s`\n", c.Superclass.Name))
			}
			for _, iface := range c.Interfaces {
				sb.WriteString(fmt.Sprintf("- implements `%s`\n", iface.Name))
			}

			if ctype == lifecycle.ComponentApplication {
				// Application callbacks run outside the component
				// lifecycle, so they are listed but never counted as
				// entry points.
				if callbacks := applicationCallbackLines(c); len(callbacks) > 0 {
					sb.WriteString("\nApplication callbacks:\n\n")
					for _, line := range callbacks {
						sb.WriteString(line)
					}
				}
			} else {
				entries, err := g.entryPointLines(c)
				if err != nil {
					return "", err
				}
				if len(entries) > 0 {
					sb.WriteString("\nLifecycle entry points:\n\n")
					for _, line := range entries {
						sb.WriteString(line)
					}
				}
			}
			sb.WriteString("\n")
		}
	}

	sb.WriteString(g.mermaidDiagram(byComponent))
	return sb.String(), nil
}

func applicationCallbackLines(c *hierarchy.Class) []string {
	callbacks := lifecycle.ApplicationLifecycleMethods()
	var out []string
	for _, m := range c.Methods {
		if callbacks.Contains(m.SubSignature()) {
			out = append(out, fmt.Sprintf("- `%s`\n", m.SubSignature()))
		}
	}
	return out
}

func (g *Generator) entryPointLines(c *hierarchy.Class) ([]string, error) {
	var out []string
	for _, m := range c.Methods {
		isEntry, err := g.classifier.IsEntryPointMethod(m)
		if err != nil {
			return nil, err
		}
		if isEntry {
			out = append(out, fmt.Sprintf("- `%s`\n", m.SubSignature()))
		}
	}
	return out, nil
}

func (g *Generator) groupByComponent() map[lifecycle.ComponentType][]*hierarchy.Class {
	byComponent := make(map[lifecycle.ComponentType][]*hierarchy.Class)
	for _, c := range g.h.Classes() {
		if c.Phantom {
			continue
		}
		ctype := g.classifier.ComponentTypeOf(c)
		byComponent[ctype] = append(byComponent[ctype], c)
	}
	for _, classes := range byComponent {
		sort.Slice(classes, func(i, j int) bool { return classes[i].Name < classes[j].Name })
	}
	return byComponent
}

// mermaidDiagram draws the component classes and their supertype edges.
// Plain classes are left out to keep the diagram readable.
func (g *Generator) mermaidDiagram(byComponent map[lifecycle.ComponentType][]*hierarchy.Class) string {
	var sb strings.Builder
	sb.WriteString("## Component Diagram\n\n")
	sb.WriteString("```mermaid\n")
	sb.WriteString("classDiagram\n")

	for _, ctype := range lifecycle.AllComponentTypes() {
		if ctype == lifecycle.ComponentPlain {
			continue
		}
		for _, c := range byComponent[ctype] {
			sb.WriteString(fmt.Sprintf("    class %s {\n", mermaidName(c)))
			sb.WriteString(fmt.Sprintf("        <<%s>>\n", ctype))
			sb.WriteString("    }\n")

			if c.Superclass != nil {
				sb.WriteString(fmt.Sprintf("    %s <|-- %s\n", mermaidName(c.Superclass), mermaidName(c)))
			}
			for _, iface := range c.Interfaces {
				sb.WriteString(fmt.Sprintf("    %s <|.. %s\n", mermaidName(iface), mermaidName(c)))
			}
		}
	}

	sb.WriteString("```\n")
	return sb.String()
}

// mermaidName avoids dots in node identifiers, which mermaid rejects.
func mermaidName(c *hierarchy.Class) string {
	return strings.ReplaceAll(c.Name, ".", "_")
}
