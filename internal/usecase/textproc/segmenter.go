package textproc

import (
	"regexp"
	"strings"
)

// Segmenter splits raw text into ordered, trimmed, nonempty sentences.
// Boundary detection quality is the implementation's concern; the
// pipeline only relies on order being preserved.
type Segmenter interface {
	Segment(text string) []string
}

// RegexSegmenter splits on terminal punctuation (. ! ?), keeping the
// terminator with the sentence. Text after the last terminator becomes a
// final sentence of its own.
type RegexSegmenter struct {
	splitter *regexp.Regexp
}

func NewRegexSegmenter() *RegexSegmenter {
	return &RegexSegmenter{
		splitter: regexp.MustCompile(`(?m)(?U)[^.!?]+[.!?]+`),
	}
}

func (s *RegexSegmenter) Segment(text string) []string {
	var sentences []string
	last := 0
	for _, loc := range s.splitter.FindAllStringIndex(text, -1) {
		if sent := strings.TrimSpace(text[loc[0]:loc[1]]); sent != "" {
			sentences = append(sentences, sent)
		}
		last = loc[1]
	}

	// trailing text without a terminator
	if tail := strings.TrimSpace(text[last:]); tail != "" {
		sentences = append(sentences, tail)
	}

	return sentences
}
