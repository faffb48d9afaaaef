package textproc

// Merger greedily merges adjacent sentences into chunks. Each candidate
// sentence is scored against the whole accumulated chunk, not the
// previous sentence alone, so a chunk keeps growing while the topic
// holds.
type Merger struct {
	sim Similarity
}

func NewMerger(sim Similarity) *Merger {
	return &Merger{sim: sim}
}

// Merge returns the input sequence collapsed into chunks. A sentence is
// appended (space-joined) to the current chunk when its similarity to
// the accumulated chunk is at least threshold, otherwise the chunk is
// sealed and a new one starts. Zero or one sentence comes back
// unchanged.
//
// Note: re-merging already merged chunks is not guaranteed to reproduce
// the same boundaries, since the similarity vocabulary is rebuilt per
// comparison.
func (m *Merger) Merge(sentences []string, threshold float64) []string {
	if len(sentences) <= 1 {
		return append([]string(nil), sentences...)
	}

	var chunks []string
	current := sentences[0]

	for _, sentence := range sentences[1:] {
		if m.sim.Score(current, sentence) >= threshold {
			current = current + " " + sentence
		} else {
			chunks = append(chunks, current)
			current = sentence
		}
	}
	chunks = append(chunks, current)

	return chunks
}
