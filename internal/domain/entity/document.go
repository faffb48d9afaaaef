package entity

// VectorPending is stored in the vector column when a document chunk has
// been accepted but not embedded yet. Rows carrying it never participate
// in similarity search.
const VectorPending = "processed"

// StoredDocument is one row of the Vector_database table, the unit that
// similarity search runs over. Vector holds the textual encoding of the
// embedding (e.g. "[0.1, 0.2, ...]"), VectorPending, or "".
type StoredDocument struct {
	ID           int64  `json:"id"`
	Chunk        string `json:"chunk"`
	Vector       string `json:"vector"`
	OriginalData string `json:"original_data"`
	Link         string `json:"link"`
}

// Match is a search hit. Produced fresh per query, never persisted.
// Similarity is cosine similarity in [-1, 1].
type Match struct {
	ID           int64   `json:"id"`
	Chunk        string  `json:"chunk"`
	OriginalData string  `json:"original_data"`
	Link         string  `json:"link"`
	Similarity   float64 `json:"similarity"`
}

// SourceRow is one row of a bulk ingestion table (STT, DATA, Link).
type SourceRow struct {
	STT  int    `json:"stt"`
	Data string `json:"data"`
	Link string `json:"link"`
}

// ProcessedRow is a SourceRow expanded to a single chunk with its
// embedding. ChunkIndex is 1-based within the source row.
type ProcessedRow struct {
	STT        int    `json:"stt"`
	Data       string `json:"data"`
	Link       string `json:"link"`
	Chunk      string `json:"chunk"`
	ChunkIndex int    `json:"chunk_index"`
	Vector     string `json:"vector"`
}
