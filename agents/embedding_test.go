package agents

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateIsNormalized(t *testing.T) {
	g := NewEmbeddingGenerator()

	vec := g.Generate("learned docker fundamentals this week")

	require.Len(t, vec, g.Dimension())
	var norm float64
	for _, v := range vec {
		norm += v * v
	}
	assert.InDelta(t, 1.0, math.Sqrt(norm), 1e-9)
}

func TestGenerateDeterministicAndCaseInsensitive(t *testing.T) {
	g := NewEmbeddingGenerator()

	a := g.Generate("Skill Gap Analysis")
	b := g.Generate("skill gap analysis")

	assert.Equal(t, a, b)
}

func TestGenerateEmptyText(t *testing.T) {
	g := NewEmbeddingGenerator()

	vec := g.Generate("")

	require.Len(t, vec, g.Dimension())
	for _, v := range vec {
		assert.Zero(t, v)
	}
}

func TestSimilarity(t *testing.T) {
	g := NewEmbeddingGenerator()

	same := g.Similarity(g.Generate("golang concurrency"), g.Generate("golang concurrency"))
	assert.InDelta(t, 1.0, same, 1e-9)

	different := g.Similarity(g.Generate("golang concurrency"), g.Generate("watercolor painting"))
	assert.Less(t, different, same)

	zero := g.Similarity(g.Generate(""), g.Generate("anything"))
	assert.Zero(t, zero)
}

func TestFindSimilarRanksAndLimits(t *testing.T) {
	g := NewEmbeddingGenerator()

	query := g.Generate("docker containers and kubernetes")
	candidates := [][]float64{
		g.Generate("watercolor painting techniques"),
		g.Generate("docker containers in production"),
		g.Generate("kubernetes cluster administration"),
		g.Generate("sourdough bread recipes"),
	}

	matches := g.FindSimilar(query, candidates, 2)

	require.Len(t, matches, 2)
	assert.GreaterOrEqual(t, matches[0].Score, matches[1].Score)
	assert.Contains(t, []int{1, 2}, matches[0].Index)
}
