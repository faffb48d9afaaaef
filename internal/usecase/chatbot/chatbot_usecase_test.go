package chatbot

import (
	"context"
	"errors"
	"testing"

	"github.com/DauDinhQuangAnh/BE-PROFILE-MEEE/internal/domain/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeRepo struct {
	docs     []entity.StoredDocument
	inserted []entity.StoredDocument
	pingErr  error
}

func (r *fakeRepo) Insert(_ context.Context, doc *entity.StoredDocument) error {
	doc.ID = int64(len(r.inserted) + 1)
	r.inserted = append(r.inserted, *doc)
	return nil
}

func (r *fakeRepo) InsertBatch(_ context.Context, docs []entity.StoredDocument) error {
	r.inserted = append(r.inserted, docs...)
	return nil
}

func (r *fakeRepo) ListRecent(_ context.Context, limit int, _ string) ([]entity.StoredDocument, error) {
	if limit < len(r.docs) {
		return r.docs[:limit], nil
	}
	return r.docs, nil
}

func (r *fakeRepo) Ping(_ context.Context) error { return r.pingErr }

type fakeEmbedder struct {
	vector []float32
	err    error
	calls  int
}

func (e *fakeEmbedder) EmbedBatch(_ context.Context, texts []string) ([][]float32, error) {
	e.calls++
	if e.err != nil {
		return nil, e.err
	}
	out := make([][]float32, len(texts))
	for i := range texts {
		out[i] = e.vector
	}
	return out, nil
}

type fakeChat struct {
	available bool
	response  string
	err       error
}

func (c *fakeChat) Available() bool { return c.available }

func (c *fakeChat) GenerateResponse(_ context.Context, _ string) (string, error) {
	return c.response, c.err
}

func newTestUsecase(repo *fakeRepo, embedder *fakeEmbedder, chat *fakeChat) *ChatbotUsecase {
	return NewChatbotUsecase(repo, embedder, chat, 0.5, 1000)
}

func TestQueryReturnsRankedMatches(t *testing.T) {
	repo := &fakeRepo{docs: []entity.StoredDocument{
		{ID: 1, Chunk: "chunk one", OriginalData: "doc one", Vector: "[1, 0]"},
		{ID: 2, Chunk: "chunk two", OriginalData: "doc two", Vector: "[0, 1]"},
		{ID: 3, Chunk: "chunk three", OriginalData: "doc three", Vector: "[0.70710678, 0.70710678]"},
		{ID: 4, Chunk: "pending", OriginalData: "doc four", Vector: entity.VectorPending},
		{ID: 5, Chunk: "broken", OriginalData: "doc five", Vector: "not-a-list"},
	}}
	embedder := &fakeEmbedder{vector: []float32{1, 0}}
	chat := &fakeChat{available: true, response: "xin chào 👋"}

	uc := newTestUsecase(repo, embedder, chat)
	result, err := uc.Query(context.Background(), "Quang Anh là ai?", 0.5, 2)
	require.NoError(t, err)

	require.Len(t, result.Matches, 2)
	assert.Equal(t, int64(1), result.Matches[0].ID)
	assert.Equal(t, int64(3), result.Matches[1].ID)
	assert.Equal(t, "success", result.Status)
	assert.Equal(t, 2, result.EmbeddingDims)

	assert.Equal(t, AIStatusSuccess, result.AIStatus)
	assert.Equal(t, "xin chào 👋", result.AIResponse)
	assert.Contains(t, result.CombinedContent, "Quang Anh là ai?")
	assert.Contains(t, result.CombinedContent, "Tài liệu 1: doc one")
	assert.Contains(t, result.CombinedContent, "Tài liệu 2: doc three")
}

func TestQueryThresholdMonotonicity(t *testing.T) {
	repo := &fakeRepo{docs: []entity.StoredDocument{
		{ID: 1, Vector: "[1, 0]", OriginalData: "a"},
		{ID: 2, Vector: "[0, 1]", OriginalData: "b"},
		{ID: 3, Vector: "[0.70710678, 0.70710678]", OriginalData: "c"},
	}}
	embedder := &fakeEmbedder{vector: []float32{1, 0}}
	uc := newTestUsecase(repo, embedder, &fakeChat{})

	prev := len(repo.docs) + 1
	for _, threshold := range []float64{0, 0.5, 0.9} {
		result, err := uc.Query(context.Background(), "câu hỏi", threshold, 10)
		require.NoError(t, err)
		assert.LessOrEqual(t, len(result.Matches), prev)
		prev = len(result.Matches)
	}
}

func TestQueryNoMatches(t *testing.T) {
	repo := &fakeRepo{}
	embedder := &fakeEmbedder{vector: []float32{1, 0}}
	uc := newTestUsecase(repo, embedder, &fakeChat{available: false})

	result, err := uc.Query(context.Background(), "câu hỏi", 0.5, 2)
	require.NoError(t, err)
	assert.Empty(t, result.Matches)
	assert.Equal(t, "no_matches", result.Status)
	assert.Equal(t, AIStatusUnavailable, result.AIStatus)
	assert.Contains(t, result.CombinedContent, "không có thông tin liên quan nào")
}

func TestQueryEmbeddingFailureIsFatal(t *testing.T) {
	uc := newTestUsecase(&fakeRepo{}, &fakeEmbedder{err: errors.New("deadline exceeded")}, &fakeChat{})

	_, err := uc.Query(context.Background(), "câu hỏi", 0.5, 2)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to encode question")
}

func TestQueryAIFailureDegrades(t *testing.T) {
	repo := &fakeRepo{docs: []entity.StoredDocument{
		{ID: 1, Vector: "[1, 0]", OriginalData: "doc one"},
	}}
	chat := &fakeChat{available: true, err: errors.New("model overloaded")}
	uc := newTestUsecase(repo, &fakeEmbedder{vector: []float32{1, 0}}, chat)

	result, err := uc.Query(context.Background(), "câu hỏi", 0.5, 2)
	require.NoError(t, err)
	assert.Equal(t, AIStatusFailed, result.AIStatus)
	assert.Equal(t, "model overloaded", result.AIError)
	assert.Empty(t, result.AIResponse)
}

func TestQueryDeduplicatesOriginalData(t *testing.T) {
	repo := &fakeRepo{docs: []entity.StoredDocument{
		{ID: 1, Chunk: "chunk a", OriginalData: "same doc", Vector: "[1, 0]"},
		{ID: 2, Chunk: "chunk b", OriginalData: "same doc", Vector: "[0.9, 0.1]"},
	}}
	uc := newTestUsecase(repo, &fakeEmbedder{vector: []float32{1, 0}}, &fakeChat{})

	result, err := uc.Query(context.Background(), "câu hỏi", 0.5, 5)
	require.NoError(t, err)
	require.Len(t, result.Matches, 2)
	assert.Contains(t, result.CombinedContent, "Tài liệu 1: same doc")
	assert.NotContains(t, result.CombinedContent, "Tài liệu 2")
}

func TestStoreRawUsesPendingSentinel(t *testing.T) {
	repo := &fakeRepo{}
	uc := newTestUsecase(repo, &fakeEmbedder{}, &fakeChat{})

	doc, err := uc.StoreRaw(context.Background(), "nội dung tài liệu")
	require.NoError(t, err)
	assert.Equal(t, entity.VectorPending, doc.Vector)
	assert.Equal(t, "nội dung tài liệu", doc.Chunk)
	require.Len(t, repo.inserted, 1)
}

func TestStoreRawRejectsEmpty(t *testing.T) {
	uc := newTestUsecase(&fakeRepo{}, &fakeEmbedder{}, &fakeChat{})
	_, err := uc.StoreRaw(context.Background(), "   ")
	require.Error(t, err)
}

func TestProcessTextSingleSentence(t *testing.T) {
	uc := newTestUsecase(&fakeRepo{}, &fakeEmbedder{}, &fakeChat{})
	chunks := uc.ProcessText("Chỉ có một câu.", 0.5)
	assert.Equal(t, []string{"Chỉ có một câu."}, chunks)
}

func TestProcessTextEmpty(t *testing.T) {
	uc := newTestUsecase(&fakeRepo{}, &fakeEmbedder{}, &fakeChat{})
	assert.Empty(t, uc.ProcessText("", 0.5))
	assert.Empty(t, uc.ProcessText("   ", 0.5))
}

func TestIngestRows(t *testing.T) {
	repo := &fakeRepo{}
	embedder := &fakeEmbedder{vector: []float32{0.1, 0.2, 0.3}}
	uc := newTestUsecase(repo, embedder, &fakeChat{})

	rows := []entity.SourceRow{
		{STT: 1, Data: "Hôm nay trời đẹp. Tôi đi làm.", Link: "https://example.com/1"},
		{STT: 2, Data: "Quang Anh thích lập trình.", Link: ""},
	}

	processed, err := uc.IngestRows(context.Background(), rows, 1)
	require.NoError(t, err)
	require.Len(t, processed, 3)

	// first row splits into two chunks at threshold 1
	assert.Equal(t, 1, processed[0].STT)
	assert.Equal(t, 1, processed[0].ChunkIndex)
	assert.Equal(t, 2, processed[1].ChunkIndex)
	assert.Equal(t, "https://example.com/1", processed[1].Link)
	assert.Equal(t, 2, processed[2].STT)
	assert.Equal(t, 1, processed[2].ChunkIndex)

	require.Len(t, repo.inserted, 3)
	for _, doc := range repo.inserted {
		assert.Equal(t, "[0.1, 0.2, 0.3]", doc.Vector)
	}
	assert.Equal(t, "Hôm nay trời đẹp. Tôi đi làm.", repo.inserted[0].OriginalData)
}

func TestIngestRowsEmbeddingFailureSkipsRow(t *testing.T) {
	repo := &fakeRepo{}
	uc := newTestUsecase(repo, &fakeEmbedder{err: errors.New("unavailable")}, &fakeChat{})

	_, err := uc.IngestRows(context.Background(), []entity.SourceRow{{STT: 1, Data: "Một câu."}}, 0.5)
	require.Error(t, err)
	assert.Empty(t, repo.inserted)
}

func TestIngestDocumentEmptyText(t *testing.T) {
	uc := newTestUsecase(&fakeRepo{}, &fakeEmbedder{}, &fakeChat{})
	_, err := uc.IngestDocument(context.Background(), "  ", "", 0.5)
	require.Error(t, err)
}

func TestClearCache(t *testing.T) {
	repo := &fakeRepo{docs: []entity.StoredDocument{{ID: 1, Vector: "[1, 0]", OriginalData: "a"}}}
	uc := newTestUsecase(repo, &fakeEmbedder{vector: []float32{1, 0}}, &fakeChat{})

	_, err := uc.Query(context.Background(), "câu hỏi", 0.5, 1)
	require.NoError(t, err)
	require.Equal(t, 1, uc.cache.Len())

	uc.ClearCache()
	assert.Equal(t, 0, uc.cache.Len())
}
