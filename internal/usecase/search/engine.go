package search

import (
	"log"
	"math"
	"sort"

	"github.com/DauDinhQuangAnh/BE-PROFILE-MEEE/internal/domain/entity"
)

// Engine runs batch nearest-neighbor search over stored documents using
// cosine similarity. It is stateless apart from the shared vector cache.
type Engine struct {
	cache *VectorCache
}

func NewEngine(cache *VectorCache) *Engine {
	return &Engine{cache: cache}
}

// Search scores every usable document against the query vector and
// returns at most topK matches with similarity >= threshold, ordered by
// similarity descending. Ties keep input order. Rows that are not yet
// embedded are silently excluded; rows with a malformed vector or a
// dimensionality different from the query are logged and skipped, never
// failing the batch.
func (e *Engine) Search(query []float32, docs []entity.StoredDocument, threshold float64, topK int) []entity.Match {
	if topK < 1 {
		topK = 1
	}

	var matches []entity.Match
	for _, doc := range docs {
		resolved := e.cache.Resolve(doc.Vector)
		switch resolved.State {
		case VectorUnembedded:
			continue
		case VectorMalformed:
			log.Printf("skipping document %d: %v", doc.ID, resolved.Err)
			continue
		}

		if len(resolved.Values) != len(query) {
			log.Printf("skipping document %d: vector dimension %d does not match query dimension %d",
				doc.ID, len(resolved.Values), len(query))
			continue
		}

		similarity := CosineSimilarity(query, resolved.Values)
		if similarity >= threshold {
			matches = append(matches, entity.Match{
				ID:           doc.ID,
				Chunk:        doc.Chunk,
				OriginalData: doc.OriginalData,
				Link:         doc.Link,
				Similarity:   similarity,
			})
		}
	}

	sort.SliceStable(matches, func(i, j int) bool {
		return matches[i].Similarity > matches[j].Similarity
	})

	if len(matches) > topK {
		matches = matches[:topK]
	}
	return matches
}

// CosineSimilarity returns dot(a,b) / (|a|*|b|). A zero-norm operand
// yields 0.0 rather than NaN, so degenerate vectors never match and
// never raise. Both vectors must have the same length.
func CosineSimilarity(a, b []float32) float64 {
	var dot, normA, normB float64
	for i := range a {
		dot += float64(a[i]) * float64(b[i])
		normA += float64(a[i]) * float64(a[i])
		normB += float64(b[i]) * float64(b[i])
	}
	if normA == 0 || normB == 0 {
		return 0.0
	}
	return dot / (math.Sqrt(normA) * math.Sqrt(normB))
}
