package extractor

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleSource = `package com.example.app;

import android.app.Activity;
import android.os.Bundle;
import android.content.ServiceConnection;
import com.example.util.*;
import static java.util.Objects.requireNonNull;

public class MainActivity extends Activity implements ServiceConnection {

    private int counter;

    public MainActivity() {
        this.counter = 0;
    }

    @Override
    protected void onCreate(Bundle savedInstanceState) {
        super.onCreate(savedInstanceState);
    }

    public java.util.List<String> pendingNames(Map<String, Integer> hints, String... extras) {
        return null;
    }
}

interface Refreshable extends AutoCloseable {
    void refresh(int[] slots);
}
`

func writeSample(t *testing.T, source string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "MainActivity.java")
	require.NoError(t, os.WriteFile(path, []byte(source), 0o644))
	return path
}

func TestExtractFromFile_Classes(t *testing.T) {
	ext, err := NewExtractor("java")
	require.NoError(t, err)

	result, err := ext.ExtractFromFile(writeSample(t, sampleSource))
	require.NoError(t, err)

	assert.Equal(t, "com.example.app", result.Package)
	assert.Equal(t, []string{"android.app.Activity", "android.os.Bundle", "android.content.ServiceConnection"}, result.Imports)
	assert.Equal(t, []string{"com.example.util"}, result.Wildcards)

	require.Len(t, result.Classes, 2)

	main := result.Classes[0]
	assert.Equal(t, "MainActivity", main.Name)
	assert.Equal(t, "class", main.Kind)
	assert.Equal(t, "Activity", main.Superclass)
	assert.Equal(t, []string{"ServiceConnection"}, main.Interfaces)

	// Constructors are skipped; only the two methods remain.
	require.Len(t, main.Methods, 2)

	onCreate := main.Methods[0]
	assert.Equal(t, "onCreate", onCreate.Name)
	assert.Equal(t, "void", onCreate.ReturnType)
	assert.Equal(t, []string{"Bundle"}, onCreate.Params)
	assert.Greater(t, onCreate.StartLine, 0)

	pending := main.Methods[1]
	assert.Equal(t, "java.util.List", pending.ReturnType, "generic arguments are stripped")
	assert.Equal(t, []string{"Map", "String[]"}, pending.Params, "varargs lower to arrays")

	iface := result.Classes[1]
	assert.Equal(t, "Refreshable", iface.Name)
	assert.Equal(t, "interface", iface.Kind)
	assert.Equal(t, []string{"AutoCloseable"}, iface.Interfaces)
	require.Len(t, iface.Methods, 1)
	assert.Equal(t, []string{"int[]"}, iface.Methods[0].Params)
}

func TestExtractFromFile_CachesByContent(t *testing.T) {
	ext, err := NewExtractor("java")
	require.NoError(t, err)

	path := writeSample(t, sampleSource)

	first, err := ext.ExtractFromFile(path)
	require.NoError(t, err)
	second, err := ext.ExtractFromFile(path)
	require.NoError(t, err)
	assert.Same(t, first, second, "unchanged file should hit the parse cache")

	// Changing the content must invalidate the cached result.
	require.NoError(t, os.WriteFile(path, []byte("package com.example.app;\nclass Tiny {}\n"), 0o644))
	third, err := ext.ExtractFromFile(path)
	require.NoError(t, err)
	assert.NotSame(t, first, third)
	require.Len(t, third.Classes, 1)
	assert.Equal(t, "Tiny", third.Classes[0].Name)
}

func TestNewExtractor_UnsupportedLanguage(t *testing.T) {
	_, err := NewExtractor("cobol")
	assert.Error(t, err)
}

func TestCleanTypeName(t *testing.T) {
	cases := map[string]string{
		"List<String>":            "List",
		"Map<String, List<Long>>": "Map",
		"int [ ]":                 "int[]",
		"String[]":                "String[]",
		"List<String>[]":          "List[]",
		"  Bundle ":               "Bundle",
	}
	for in, want := range cases {
		assert.Equal(t, want, cleanTypeName(in), in)
	}
}
