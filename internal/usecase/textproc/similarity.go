package textproc

import (
	"math"
	"regexp"
	"strings"
)

// Similarity scores how alike two texts are, in [0, 1].
type Similarity interface {
	Score(a, b string) float64
}

// TFIDFSimilarity computes cosine similarity between two texts over a
// TF-IDF vector space built from just those two texts. The vocabulary is
// recomputed per call, so scores are only comparable within one call.
type TFIDFSimilarity struct {
	tokenPattern *regexp.Regexp
}

func NewTFIDFSimilarity() *TFIDFSimilarity {
	return &TFIDFSimilarity{
		tokenPattern: regexp.MustCompile(`[\p{L}\p{N}]+`),
	}
}

// Score returns 0.0 when either text has no tokens (empty or
// whitespace-only input never merges).
func (s *TFIDFSimilarity) Score(a, b string) float64 {
	tokensA := s.tokenize(a)
	tokensB := s.tokenize(b)
	if len(tokensA) == 0 || len(tokensB) == 0 {
		return 0.0
	}

	// document frequencies over the 2-text corpus
	df := make(map[string]int)
	for _, toks := range [][]string{tokensA, tokensB} {
		seen := make(map[string]struct{})
		for _, tok := range toks {
			if _, ok := seen[tok]; ok {
				continue
			}
			seen[tok] = struct{}{}
			df[tok]++
		}
	}

	// smoothed IDF, N = 2
	idf := make(map[string]float64, len(df))
	for term, freq := range df {
		idf[term] = math.Log(3.0/(1.0+float64(freq))) + 1.0
	}

	vecA := tfidfVector(tokensA, idf)
	vecB := tfidfVector(tokensB, idf)

	var dot, normA, normB float64
	for term, wa := range vecA {
		if wb, ok := vecB[term]; ok {
			dot += wa * wb
		}
		normA += wa * wa
	}
	for _, wb := range vecB {
		normB += wb * wb
	}
	if normA == 0 || normB == 0 {
		return 0.0
	}
	return dot / (math.Sqrt(normA) * math.Sqrt(normB))
}

func tfidfVector(tokens []string, idf map[string]float64) map[string]float64 {
	tf := make(map[string]int)
	for _, tok := range tokens {
		tf[tok]++
	}
	vec := make(map[string]float64, len(tf))
	total := float64(len(tokens))
	for term, count := range tf {
		vec[term] = float64(count) / total * idf[term]
	}
	return vec
}

func (s *TFIDFSimilarity) tokenize(text string) []string {
	return s.tokenPattern.FindAllString(strings.ToLower(text), -1)
}
