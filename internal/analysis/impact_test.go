package analysis

import (
	"testing"

	"droidlens/internal/git"
	"droidlens/internal/hierarchy"
	"droidlens/internal/lifecycle"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func classifiedHierarchy() (*hierarchy.Hierarchy, *lifecycle.Classifier) {
	h := hierarchy.New()
	activity := h.Ensure(lifecycle.ActivityClass)

	main := h.Add(&hierarchy.Class{
		Name:      "com.example.MainActivity",
		Package:   "com.example",
		Kind:      hierarchy.KindClass,
		Filepath:  "src/MainActivity.java",
		StartLine: 5,
		EndLine:   60,
	})
	main.Superclass = activity
	main.Methods = []*hierarchy.Method{
		{Class: main, Name: "onCreate", ReturnType: "void", Params: []string{"android.os.Bundle"}, StartLine: 10, EndLine: 20},
		{Class: main, Name: "renderList", ReturnType: "void", StartLine: 25, EndLine: 40},
	}

	util := h.Add(&hierarchy.Class{
		Name:      "com.example.Util",
		Package:   "com.example",
		Kind:      hierarchy.KindClass,
		Filepath:  "src/Util.java",
		StartLine: 1,
		EndLine:   30,
	})
	util.Methods = []*hierarchy.Method{
		{Class: util, Name: "onCreate", ReturnType: "void", Params: []string{"android.os.Bundle"}, StartLine: 3, EndLine: 8},
	}

	return h, lifecycle.NewClassifier(h, h, nil)
}

func TestAnalyzeChanges_EntryPointHit(t *testing.T) {
	h, classifier := classifiedHierarchy()
	a := NewAnalyzer(h, classifier)

	report, err := a.AnalyzeChanges([]git.ChangedFile{
		{Path: "src/MainActivity.java", ChangedLines: []int{12, 13}},
	})
	require.NoError(t, err)

	require.Len(t, report.ChangedClasses, 1)
	assert.Equal(t, "com.example.MainActivity", report.ChangedClasses[0].Name)

	require.Len(t, report.AffectedEntryPoints, 1)
	hit := report.AffectedEntryPoints[0]
	assert.Equal(t, "void onCreate(android.os.Bundle)", hit.SubSignature)
	assert.Equal(t, lifecycle.ComponentActivity, hit.Component)
}

func TestAnalyzeChanges_NonLifecycleMethod(t *testing.T) {
	h, classifier := classifiedHierarchy()
	a := NewAnalyzer(h, classifier)

	report, err := a.AnalyzeChanges([]git.ChangedFile{
		{Path: "src/MainActivity.java", ChangedLines: []int{30}},
	})
	require.NoError(t, err)

	assert.Len(t, report.ChangedClasses, 1)
	assert.Empty(t, report.AffectedEntryPoints, "renderList is not a lifecycle method")
}

func TestAnalyzeChanges_PlainClassNeverYieldsEntryPoints(t *testing.T) {
	h, classifier := classifiedHierarchy()
	a := NewAnalyzer(h, classifier)

	report, err := a.AnalyzeChanges([]git.ChangedFile{
		{Path: "src/Util.java", ChangedLines: []int{4}},
	})
	require.NoError(t, err)

	assert.Len(t, report.ChangedClasses, 1)
	assert.Empty(t, report.AffectedEntryPoints)
}

func TestAnalyzeChanges_DeletedFile(t *testing.T) {
	h, classifier := classifiedHierarchy()
	a := NewAnalyzer(h, classifier)

	report, err := a.AnalyzeChanges([]git.ChangedFile{
		{Path: "src/MainActivity.java", Deleted: true},
	})
	require.NoError(t, err)

	require.Len(t, report.ChangedClasses, 1)
	// Every lifecycle method of a deleted class counts as affected.
	require.Len(t, report.AffectedEntryPoints, 1)
	assert.Equal(t, "void onCreate(android.os.Bundle)", report.AffectedEntryPoints[0].SubSignature)
}

func TestAnalyzeChanges_UntouchedFiles(t *testing.T) {
	h, classifier := classifiedHierarchy()
	a := NewAnalyzer(h, classifier)

	report, err := a.AnalyzeChanges([]git.ChangedFile{
		{Path: "src/Other.java", ChangedLines: []int{1, 2, 3}},
	})
	require.NoError(t, err)
	assert.Empty(t, report.ChangedClasses)
	assert.Empty(t, report.AffectedEntryPoints)
}
