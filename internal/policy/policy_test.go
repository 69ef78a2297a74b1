package policy

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizeDefaults(t *testing.T) {
	p := Normalize(nil)

	assert.Equal(t, DefaultCandidateExtensions, p.CandidateExtensions())
	assert.Equal(t, ".js", p.OutputExtension())
	assert.Equal(t, []string{".json"}, p.ExtensionsToKeep())
	assert.False(t, p.UsesMap())

	assert.Equal(t, ".js", p.OutputFor(".ts"))
	assert.Equal(t, ".js", p.OutputFor(".mjs"))
	assert.Equal(t, ".json", p.OutputFor(".json"))
}

func TestNormalizeReplacesListsWholesale(t *testing.T) {
	p := Normalize(&Options{
		CandidateExtensions: ExtensionList{".ts"},
	})

	// no append onto the defaults
	assert.Equal(t, []string{".ts"}, p.CandidateExtensions())
	// untouched fields keep their defaults
	assert.Equal(t, ".js", p.OutputExtension())
	assert.Equal(t, []string{".json"}, p.ExtensionsToKeep())
}

func TestNormalizeEmptyListsArePresent(t *testing.T) {
	p := Normalize(&Options{
		CandidateExtensions: ExtensionList{},
		ExtensionsToKeep:    ExtensionList{},
	})

	assert.Empty(t, p.CandidateExtensions())
	assert.Empty(t, p.ExtensionsToKeep())
	assert.Equal(t, ".js", p.OutputFor(".json"))
}

func TestNormalizeMapStyle(t *testing.T) {
	p := Normalize(&Options{
		ExtensionsToKeep: ExtensionList{".ts"},
		ExtensionMap: map[string]string{
			".ts":  ".js",
			".mts": ".mjs",
		},
	})

	require.True(t, p.UsesMap())

	tests := []struct {
		matched  string
		expected string
	}{
		{".ts", ".js"},
		{".mts", ".mjs"},
		{".json", ".json"},
		{".cjs", ".cjs"},
	}

	for _, tt := range tests {
		t.Run(tt.matched, func(t *testing.T) {
			assert.Equal(t, tt.expected, p.OutputFor(tt.matched))
		})
	}
}

func TestPolicyIsImmutable(t *testing.T) {
	exts := ExtensionList{".ts", ".js"}
	rewrite := map[string]string{".ts": ".js"}

	p := Normalize(&Options{CandidateExtensions: exts, ExtensionMap: rewrite})

	exts[0] = ".tsx"
	rewrite[".ts"] = ".cjs"

	got := p.CandidateExtensions()
	got[1] = ".mjs"

	m := p.ExtensionMap()
	m[".ts"] = ".mjs"

	assert.Equal(t, []string{".ts", ".js"}, p.CandidateExtensions())
	assert.Equal(t, ".js", p.OutputFor(".ts"))
}

func TestMerge(t *testing.T) {
	base := &Options{
		CandidateExtensions: ExtensionList{".js"},
		OutputExtension:     String(".cjs"),
	}
	override := &Options{
		OutputExtension:  String(".mjs"),
		ExtensionsToKeep: ExtensionList{},
	}

	merged := Merge(base, override)

	assert.Equal(t, ExtensionList{".js"}, merged.CandidateExtensions)
	assert.Equal(t, ".mjs", *merged.OutputExtension)
	assert.NotNil(t, merged.ExtensionsToKeep)
	assert.Empty(t, merged.ExtensionsToKeep)
	assert.Nil(t, merged.ExtensionMap)

	// base is not modified
	assert.Equal(t, ".cjs", *base.OutputExtension)
	assert.Nil(t, base.ExtensionsToKeep)

	assert.Equal(t, base.CandidateExtensions, Merge(base, nil).CandidateExtensions)
	assert.Equal(t, override.OutputExtension, Merge(nil, override).OutputExtension)
}

func TestPolicyOptionsRoundTrip(t *testing.T) {
	tests := []struct {
		name string
		opts *Options
	}{
		{"defaults", nil},
		{"empty keep", &Options{ExtensionsToKeep: ExtensionList{}}},
		{"map style", &Options{ExtensionMap: map[string]string{".ts": ".js"}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := Normalize(tt.opts)

			data, err := Marshal(p.Options())
			require.NoError(t, err)

			reloaded, err := Parse(data)
			require.NoError(t, err)

			assert.Equal(t, p, Normalize(reloaded))
		})
	}
}
