package report

import (
	"strings"
	"testing"

	"droidlens/internal/hierarchy"
	"droidlens/internal/lifecycle"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testSetup() *Generator {
	h := hierarchy.New()
	activity := h.Ensure(lifecycle.ActivityClass)
	receiver := h.Ensure(lifecycle.BroadcastReceiverClass)

	app := h.Add(&hierarchy.Class{Name: "com.example.App", Kind: hierarchy.KindClass})
	app.Superclass = h.Ensure(lifecycle.ApplicationClass)
	app.Methods = []*hierarchy.Method{
		{Class: app, Name: "onLowMemory", ReturnType: "void"},
	}

	main := h.Add(&hierarchy.Class{Name: "com.example.MainActivity", Kind: hierarchy.KindClass})
	main.Superclass = activity
	main.Methods = []*hierarchy.Method{
		{Class: main, Name: "onCreate", ReturnType: "void", Params: []string{"android.os.Bundle"}},
		{Class: main, Name: "helper", ReturnType: "void"},
	}

	boot := h.Add(&hierarchy.Class{Name: "com.example.BootReceiver", Kind: hierarchy.KindClass})
	boot.Superclass = receiver

	h.Add(&hierarchy.Class{Name: "com.example.Util", Kind: hierarchy.KindClass})

	return NewGenerator(h, lifecycle.NewClassifier(h, h, nil))
}

func TestMarkdown_Sections(t *testing.T) {
	md, err := testSetup().Markdown()
	require.NoError(t, err)

	assert.Contains(t, md, "## Application (1)")
	assert.Contains(t, md, "## Activity (1)")
	assert.Contains(t, md, "## BroadcastReceiver (1)")
	assert.Contains(t, md, "## Plain (1)")
	assert.Contains(t, md, "### com.example.MainActivity")
	assert.Contains(t, md, "- extends `android.app.Activity`")
}

func TestMarkdown_EntryPointsFlagged(t *testing.T) {
	md, err := testSetup().Markdown()
	require.NoError(t, err)

	assert.Contains(t, md, "- `void onCreate(android.os.Bundle)`")
	assert.NotContains(t, md, "void helper()")
}

func TestMarkdown_ApplicationCallbacksListed(t *testing.T) {
	md, err := testSetup().Markdown()
	require.NoError(t, err)

	assert.Contains(t, md, "Application callbacks:")
	assert.Contains(t, md, "- `void onLowMemory()`")
}

func TestMarkdown_MermaidDiagram(t *testing.T) {
	md, err := testSetup().Markdown()
	require.NoError(t, err)

	assert.Contains(t, md, "```mermaid")
	assert.Contains(t, md, "classDiagram")
	assert.Contains(t, md, "class com_example_MainActivity")
	assert.Contains(t, md, "android_app_Activity <|-- com_example_MainActivity")
	// Plain classes stay out of the diagram.
	assert.False(t, strings.Contains(md, "class com_example_Util"))
}
