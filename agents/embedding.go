package agents

import (
	"math"
	"sort"
	"strings"
)

// embeddingDimension matches common sentence-transformer output sizes.
const embeddingDimension = 384

// EmbeddingGenerator produces deterministic character-frequency
// embeddings for semantic memory and similarity search.
type EmbeddingGenerator struct {
	dimension int
}

func NewEmbeddingGenerator() *EmbeddingGenerator {
	return &EmbeddingGenerator{dimension: embeddingDimension}
}

func (g *EmbeddingGenerator) Dimension() int { return g.dimension }

// Generate returns an L2-normalized embedding for the text.
func (g *EmbeddingGenerator) Generate(text string) []float64 {
	vec := make([]float64, g.dimension)
	for i, r := range []rune(strings.ToLower(text)) {
		idx := int(r) % g.dimension
		vec[idx] += 1.0 / float64(i+1)
	}

	var norm float64
	for _, v := range vec {
		norm += v * v
	}
	norm = math.Sqrt(norm)
	if norm > 0 {
		for i := range vec {
			vec[i] /= norm
		}
	}
	return vec
}

// GenerateBatch embeds each text independently.
func (g *EmbeddingGenerator) GenerateBatch(texts []string) [][]float64 {
	out := make([][]float64, len(texts))
	for i, t := range texts {
		out[i] = g.Generate(t)
	}
	return out
}

// Similarity returns the cosine similarity of two vectors, 0 when
// either is the zero vector.
func (g *EmbeddingGenerator) Similarity(a, b []float64) float64 {
	n := len(a)
	if len(b) < n {
		n = len(b)
	}

	var dot, normA, normB float64
	for i := 0; i < n; i++ {
		dot += a[i] * b[i]
	}
	for _, v := range a {
		normA += v * v
	}
	for _, v := range b {
		normB += v * v
	}
	if normA == 0 || normB == 0 {
		return 0
	}
	return dot / (math.Sqrt(normA) * math.Sqrt(normB))
}

// SimilarityMatch pairs a candidate index with its similarity score.
type SimilarityMatch struct {
	Index int
	Score float64
}

// FindSimilar ranks candidates against the query by cosine similarity
// and returns the top k matches.
func (g *EmbeddingGenerator) FindSimilar(query []float64, candidates [][]float64, topK int) []SimilarityMatch {
	matches := make([]SimilarityMatch, len(candidates))
	for i, c := range candidates {
		matches[i] = SimilarityMatch{Index: i, Score: g.Similarity(query, c)}
	}
	sort.SliceStable(matches, func(i, j int) bool { return matches[i].Score > matches[j].Score })
	if topK < len(matches) {
		matches = matches[:topK]
	}
	return matches
}
