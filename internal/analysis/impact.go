package analysis

import (
	"droidlens/internal/git"
	"droidlens/internal/hierarchy"
	"droidlens/internal/lifecycle"
)

// EntryPointHit is one lifecycle method touched by a change.
type EntryPointHit struct {
	Class        *hierarchy.Class
	Method       *hierarchy.Method
	Component    lifecycle.ComponentType
	SubSignature string
}

// ImpactReport summarizes which components a set of source changes
// touches. Entry-point hits matter most downstream: a changed lifecycle
// method changes what the framework executes.
type ImpactReport struct {
	ChangedClasses      []*hierarchy.Class
	AffectedEntryPoints []EntryPointHit
}

// Analyzer maps git changes onto the classified hierarchy.
type Analyzer struct {
	h          *hierarchy.Hierarchy
	classifier *lifecycle.Classifier
}

func NewAnalyzer(h *hierarchy.Hierarchy, classifier *lifecycle.Classifier) *Analyzer {
	return &Analyzer{h: h, classifier: classifier}
}

// AnalyzeChanges identifies the classes and entry-point methods affected
// by the given changes.
func (a *Analyzer) AnalyzeChanges(changes []git.ChangedFile) (*ImpactReport, error) {
	report := &ImpactReport{}
	seenClass := make(map[*hierarchy.Class]bool)

	byFile := make(map[string]git.ChangedFile, len(changes))
	for _, change := range changes {
		byFile[change.Path] = change
	}

	for _, c := range a.h.Classes() {
		if c.Phantom {
			continue
		}
		change, ok := byFile[c.Filepath]
		if !ok {
			continue
		}

		touched := change.Deleted || overlaps(change.ChangedLines, c.StartLine, c.EndLine)
		if !touched {
			continue
		}
		if !seenClass[c] {
			report.ChangedClasses = append(report.ChangedClasses, c)
			seenClass[c] = true
		}

		for _, m := range c.Methods {
			if !change.Deleted && !overlaps(change.ChangedLines, m.StartLine, m.EndLine) {
				continue
			}
			isEntry, err := a.classifier.IsEntryPointMethod(m)
			if err != nil {
				return nil, err
			}
			if isEntry {
				report.AffectedEntryPoints = append(report.AffectedEntryPoints, EntryPointHit{
					Class:        c,
					Method:       m,
					Component:    a.classifier.ComponentTypeOf(c),
					SubSignature: m.SubSignature(),
				})
			}
		}
	}

	return report, nil
}

func overlaps(lines []int, start, end int) bool {
	for _, line := range lines {
		if line >= start && line <= end {
			return true
		}
	}
	return false
}
