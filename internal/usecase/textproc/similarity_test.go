package textproc

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestScoreIdenticalTexts(t *testing.T) {
	s := NewTFIDFSimilarity()
	assert.InDelta(t, 1.0, s.Score("Hôm nay trời đẹp", "Hôm nay trời đẹp"), 1e-9)
}

func TestScoreDisjointTexts(t *testing.T) {
	s := NewTFIDFSimilarity()
	assert.Equal(t, 0.0, s.Score("trời đẹp", "đi làm"))
}

func TestScoreEmptyText(t *testing.T) {
	s := NewTFIDFSimilarity()
	assert.Equal(t, 0.0, s.Score("", "trời đẹp"))
	assert.Equal(t, 0.0, s.Score("trời đẹp", ""))
	assert.Equal(t, 0.0, s.Score("   ", "trời đẹp"))
}

func TestScoreSymmetric(t *testing.T) {
	s := NewTFIDFSimilarity()
	a, b := "Hôm nay trời đẹp.", "Trời đẹp và nắng."
	assert.InDelta(t, s.Score(a, b), s.Score(b, a), 1e-12)
}

func TestScoreRange(t *testing.T) {
	s := NewTFIDFSimilarity()
	pairs := [][2]string{
		{"trời đẹp", "trời đẹp và nắng"},
		{"một hai ba", "ba bốn năm"},
		{"xin chào", "tạm biệt"},
	}
	for _, p := range pairs {
		score := s.Score(p[0], p[1])
		assert.GreaterOrEqual(t, score, 0.0)
		assert.LessOrEqual(t, score, 1.0+1e-9)
	}
}

func TestScoreOverlappingTexts(t *testing.T) {
	s := NewTFIDFSimilarity()
	score := s.Score("Hôm nay trời đẹp.", "Trời đẹp và nắng.")
	// two of four terms shared on each side
	assert.Greater(t, score, 0.3)
	assert.Less(t, score, 0.4)
}

func TestScoreIgnoresCaseAndPunctuation(t *testing.T) {
	s := NewTFIDFSimilarity()
	assert.InDelta(t, 1.0, s.Score("Trời đẹp!", "trời đẹp."), 1e-9)
}
