package esbuildplugin

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/evanw/esbuild/pkg/api"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"extension-resolver/internal/host"
	"extension-resolver/internal/policy"
	"extension-resolver/internal/resolve"
)

func writeTree(t *testing.T, files map[string]string) string {
	t.Helper()

	dir := t.TempDir()
	for name, content := range files {
		p := filepath.Join(dir, filepath.FromSlash(name))
		require.NoError(t, os.MkdirAll(filepath.Dir(p), 0o755))
		require.NoError(t, os.WriteFile(p, []byte(content), 0o644))
	}

	return dir
}

func TestBuildRewritesRelativeImports(t *testing.T) {
	dir := writeTree(t, map[string]string{
		"main.ts":      "import { a } from \"./a\";\nimport React from \"react\";\nexport * from \"./lib\";\nconsole.log(a, React);\n",
		"a.ts":         "export const a = 1;\n",
		"lib/index.ts": "export const b = 2;\n",
	})

	r := resolve.New(policy.Normalize(nil), nil)

	result, err := Build(r, BuildOptions{
		EntryPoints: []string{filepath.Join(dir, "main.ts")},
		OutDir:      filepath.Join(dir, "out"),
	})
	require.NoError(t, err)
	require.Len(t, result.OutputFiles, 1)

	out := string(result.OutputFiles[0].Contents)
	assert.Contains(t, out, `"./a.js"`)
	assert.Contains(t, out, `"./lib/index.js"`)
	assert.Contains(t, out, `"react"`)
	assert.NotContains(t, out, "export const a = 1")
}

func TestBuildCommonJS(t *testing.T) {
	dir := writeTree(t, map[string]string{
		"main.js": "const util = require(\"./util\");\nmodule.exports = util;\n",
		"util.ts": "export const u = 1;\n",
	})

	r := resolve.New(policy.Normalize(nil), nil)

	result, err := Build(r, BuildOptions{
		EntryPoints: []string{filepath.Join(dir, "main.js")},
		OutDir:      filepath.Join(dir, "out"),
		Format:      FormatCJS,
	})
	require.NoError(t, err)
	require.Len(t, result.OutputFiles, 1)
	assert.Contains(t, string(result.OutputFiles[0].Contents), `require("./util.js")`)
}

func TestBuildKeepsUnresolvedImports(t *testing.T) {
	dir := writeTree(t, map[string]string{
		"main.ts": "import \"./missing\";\nimport { b } from \"./b\";\nconsole.log(b);\n",
		// .tsx is not a default candidate extension
		"b.tsx": "export const b = 2;\n",
	})

	result, err := Build(resolve.New(policy.Normalize(nil), nil), BuildOptions{
		EntryPoints: []string{filepath.Join(dir, "main.ts")},
		OutDir:      filepath.Join(dir, "out"),
	})
	require.NoError(t, err)
	require.Len(t, result.OutputFiles, 1)

	out := string(result.OutputFiles[0].Contents)
	assert.Contains(t, out, `"./missing"`)
	assert.Contains(t, out, `"./b"`)
	assert.NotContains(t, out, "b = 2")
}

func TestBuildOptionsValidation(t *testing.T) {
	r := resolve.New(policy.Normalize(nil), nil)

	_, err := Build(r, BuildOptions{})
	require.Error(t, err)

	_, err = Build(r, BuildOptions{EntryPoints: []string{"main.js"}, Format: "iife"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown output format")
}

func TestKindOf(t *testing.T) {
	tests := []struct {
		kind     api.ResolveKind
		expected host.Kind
		ok       bool
	}{
		{api.ResolveJSImportStatement, host.KindStaticImport, true},
		{api.ResolveJSRequireCall, host.KindRequireCall, true},
		{api.ResolveJSDynamicImport, host.KindDynamicImport, true},
		{api.ResolveEntryPoint, 0, false},
		{api.ResolveCSSImportRule, 0, false},
	}

	for _, tt := range tests {
		got, ok := kindOf(tt.kind)
		assert.Equal(t, tt.ok, ok)
		assert.Equal(t, tt.expected, got)
	}
}
