package hierarchy

import (
	"testing"

	"droidlens/internal/extractor"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuilder_LinksDeclarations(t *testing.T) {
	b := NewBuilder()

	b.AddFile(&extractor.FileResult{
		Path:    "src/com/example/MainActivity.java",
		Package: "com.example",
		Imports: []string{"android.app.Activity", "android.os.Bundle"},
		Classes: []*extractor.ClassDecl{{
			Name:       "MainActivity",
			Package:    "com.example",
			Kind:       "class",
			Filepath:   "src/com/example/MainActivity.java",
			Superclass: "Activity",
			Interfaces: []string{"Refreshable"},
			Methods: []extractor.MethodDecl{{
				Name:       "onCreate",
				ReturnType: "void",
				Params:     []string{"Bundle"},
				StartLine:  10,
				EndLine:    14,
			}},
		}},
	})
	b.AddFile(&extractor.FileResult{
		Path:    "src/com/example/Refreshable.java",
		Package: "com.example",
		Classes: []*extractor.ClassDecl{{
			Name:     "Refreshable",
			Package:  "com.example",
			Kind:     "interface",
			Filepath: "src/com/example/Refreshable.java",
		}},
	})

	h, stats := b.Build()

	main := h.ClassByName("com.example.MainActivity")
	require.NotNil(t, main)
	assert.False(t, main.Phantom)

	require.NotNil(t, main.Superclass)
	assert.Equal(t, "android.app.Activity", main.Superclass.Name)
	assert.True(t, main.Superclass.Phantom, "framework classes stay phantom")

	require.Len(t, main.Interfaces, 1)
	iface := main.Interfaces[0]
	assert.Equal(t, "com.example.Refreshable", iface.Name)
	assert.False(t, iface.Phantom, "same-package interface resolves to its declaration")
	assert.Equal(t, KindInterface, iface.Kind)

	require.Len(t, main.Methods, 1)
	assert.Equal(t, "void onCreate(android.os.Bundle)", main.Methods[0].SubSignature())
	assert.Same(t, main, main.Methods[0].Class)

	assert.NotEmpty(t, stats)
}

func TestBuilder_DeclarationOrderIndependent(t *testing.T) {
	// The interface file arrives after the class that implements it;
	// raw names must still resolve because linking happens in Build.
	b := NewBuilder()
	b.AddFile(&extractor.FileResult{
		Path:    "src/a/Impl.java",
		Package: "a",
		Classes: []*extractor.ClassDecl{{
			Name: "Impl", Package: "a", Kind: "class",
			Interfaces: []string{"Iface"},
		}},
	})
	b.AddFile(&extractor.FileResult{
		Path:    "src/a/Iface.java",
		Package: "a",
		Classes: []*extractor.ClassDecl{{
			Name: "Iface", Package: "a", Kind: "interface",
		}},
	})

	h, _ := b.Build()
	impl := h.ClassByName("a.Impl")
	require.NotNil(t, impl)
	require.Len(t, impl.Interfaces, 1)
	assert.Equal(t, "a.Iface", impl.Interfaces[0].Name)
	assert.True(t, h.CanStoreType(impl, impl.Interfaces[0]))
}

func TestBuilder_PhantomSupertypeChain(t *testing.T) {
	b := NewBuilder()
	b.AddFile(&extractor.FileResult{
		Path:    "src/com/example/PushService.java",
		Package: "com.example",
		Imports: []string{"com.google.android.gms.gcm.GcmListenerService"},
		Classes: []*extractor.ClassDecl{{
			Name: "PushService", Package: "com.example", Kind: "class",
			Superclass: "GcmListenerService",
		}},
	})

	h, _ := b.Build()
	push := h.ClassByName("com.example.PushService")
	require.NotNil(t, push)
	base := h.ClassByName("com.google.android.gms.gcm.GcmListenerService")
	require.NotNil(t, base)
	assert.True(t, base.Phantom)
	assert.True(t, h.CanStoreType(push, base))
}
