package suggest

import (
	"fmt"
	"os"
	"path"
	"path/filepath"
	"slices"
	"sort"
	"strings"
)

// MinScore is the similarity a candidate needs to be suggested.
const MinScore = 0.6

// Candidate is a sibling entry that the specifier may have meant.
type Candidate struct {
	// Specifier is the candidate written the way the original was, without
	// an extension.
	Specifier string
	Score     float64
}

// CandidateList is a list of candidates with ranking functionality.
type CandidateList []Candidate

// Len implements sort.Interface.
func (c CandidateList) Len() int { return len(c) }

// Swap implements sort.Interface.
func (c CandidateList) Swap(i, j int) { c[i], c[j] = c[j], c[i] }

// Less implements sort.Interface.
// Sorts by score descending, then by specifier for determinism.
func (c CandidateList) Less(i, j int) bool {
	if c[i].Score != c[j].Score {
		return c[i].Score > c[j].Score
	}

	return c[i].Specifier < c[j].Specifier
}

// Best returns the best candidate, or nil if no candidates.
func (c CandidateList) Best() *Candidate {
	if len(c) == 0 {
		return nil
	}

	return &c[0]
}

// Rank lists the directory that specifier points into, relative to
// containingFile, and ranks its entries by name similarity. Files count only
// when their extension is one of exts; directories always count. Names are
// compared case-insensitively with extensions removed.
func Rank(containingFile, specifier string, exts []string) (CandidateList, error) {
	specDir, target := path.Split(specifier)
	target = strings.ToLower(stem(target, exts))

	dir := filepath.Join(filepath.Dir(containingFile), filepath.FromSlash(specDir))

	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("failed to list %s: %w", dir, err)
	}

	self := filepath.Base(containingFile)

	var candidates CandidateList

	for _, e := range entries {
		name := e.Name()
		if name == self || strings.HasPrefix(name, ".") {
			continue
		}

		if !e.IsDir() {
			if !slices.Contains(exts, filepath.Ext(name)) {
				continue
			}

			name = stem(name, exts)
		}

		candidates = append(candidates, Candidate{
			Specifier: specDir + name,
			Score:     Similarity(strings.ToLower(name), target),
		})
	}

	sort.Sort(candidates)

	return candidates, nil
}

// Suggest returns the best ranked candidate scoring at least MinScore.
func Suggest(containingFile, specifier string, exts []string) (string, bool) {
	candidates, err := Rank(containingFile, specifier, exts)
	if err != nil {
		return "", false
	}

	best := candidates.Best()
	if best == nil || best.Score < MinScore {
		return "", false
	}

	return best.Specifier, true
}

func stem(name string, exts []string) string {
	ext := filepath.Ext(name)
	if ext != "" && slices.Contains(exts, ext) {
		return strings.TrimSuffix(name, ext)
	}

	return name
}
