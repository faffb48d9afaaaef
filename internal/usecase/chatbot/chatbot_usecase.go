package chatbot

import (
	"context"
	"fmt"
	"log"
	"strings"

	"github.com/DauDinhQuangAnh/BE-PROFILE-MEEE/internal/domain/entity"
	"github.com/DauDinhQuangAnh/BE-PROFILE-MEEE/internal/domain/repository"
	"github.com/DauDinhQuangAnh/BE-PROFILE-MEEE/internal/usecase/search"
	"github.com/DauDinhQuangAnh/BE-PROFILE-MEEE/internal/usecase/textproc"

	"github.com/google/uuid"
)

type EmbeddingService interface {
	EmbedBatch(ctx context.Context, texts []string) ([][]float32, error)
}

type ChatService interface {
	Available() bool
	GenerateResponse(ctx context.Context, prompt string) (string, error)
}

// AI response statuses reported to the client.
const (
	AIStatusSuccess     = "success"
	AIStatusFailed      = "failed"
	AIStatusUnavailable = "unavailable"
)

type ChatbotUsecase struct {
	docRepo   repository.DocumentRepository
	embedder  EmbeddingService
	chat      ChatService
	segmenter textproc.Segmenter
	merger    *textproc.Merger
	engine    *search.Engine
	cache     *search.VectorCache

	mergeThreshold float64
	historyLimit   int
}

func NewChatbotUsecase(
	docRepo repository.DocumentRepository,
	embedder EmbeddingService,
	chat ChatService,
	mergeThreshold float64,
	historyLimit int,
) *ChatbotUsecase {
	cache := search.NewVectorCache()
	return &ChatbotUsecase{
		docRepo:        docRepo,
		embedder:       embedder,
		chat:           chat,
		segmenter:      textproc.NewRegexSegmenter(),
		merger:         textproc.NewMerger(textproc.NewTFIDFSimilarity()),
		engine:         search.NewEngine(cache),
		cache:          cache,
		mergeThreshold: mergeThreshold,
		historyLimit:   historyLimit,
	}
}

// ProcessText splits text into sentences and merges them into chunks.
// Text with at most one sentence comes back as a single chunk.
func (uc *ChatbotUsecase) ProcessText(text string, threshold float64) []string {
	sentences := uc.segmenter.Segment(text)
	if len(sentences) == 0 {
		return nil
	}
	if len(sentences) == 1 {
		return []string{text}
	}
	return uc.merger.Merge(sentences, threshold)
}

// StoreRaw stores a document chunk with the pending sentinel vector. The
// row is excluded from search until it is embedded.
func (uc *ChatbotUsecase) StoreRaw(ctx context.Context, content string) (*entity.StoredDocument, error) {
	if strings.TrimSpace(content) == "" {
		return nil, fmt.Errorf("empty document content")
	}

	doc := &entity.StoredDocument{
		Chunk:        content,
		Vector:       entity.VectorPending,
		OriginalData: content,
	}
	if err := uc.docRepo.Insert(ctx, doc); err != nil {
		return nil, fmt.Errorf("failed to store document chunk: %w", err)
	}
	return doc, nil
}

// History returns up to limit stored documents, newest first.
func (uc *ChatbotUsecase) History(ctx context.Context, limit int, docFilter string) ([]entity.StoredDocument, error) {
	if limit <= 0 {
		limit = 50
	}
	return uc.docRepo.ListRecent(ctx, limit, docFilter)
}

// IngestRows runs the full pipeline over bulk source rows: per row,
// segment and merge the DATA text, embed all chunks in one batch call
// and persist them. A row whose embedding fails is logged and skipped;
// it never gets a partial or zero vector.
func (uc *ChatbotUsecase) IngestRows(ctx context.Context, rows []entity.SourceRow, threshold float64) ([]entity.ProcessedRow, error) {
	if threshold < 0 {
		threshold = uc.mergeThreshold
	}

	batchID := uuid.New().String()
	log.Printf("ingest batch %s: %d rows, merge threshold %.2f", batchID, len(rows), threshold)

	var processed []entity.ProcessedRow
	var stored []entity.StoredDocument
	failed := 0

	for _, row := range rows {
		chunks := uc.ProcessText(row.Data, threshold)
		if len(chunks) == 0 {
			continue
		}

		vectors, err := uc.embedder.EmbedBatch(ctx, chunks)
		if err != nil {
			log.Printf("ingest batch %s: embedding failed for row %d: %v", batchID, row.STT, err)
			failed++
			continue
		}

		for i, chunk := range chunks {
			serialized := search.FormatVector(vectors[i])
			processed = append(processed, entity.ProcessedRow{
				STT:        row.STT,
				Data:       row.Data,
				Link:       row.Link,
				Chunk:      chunk,
				ChunkIndex: i + 1,
				Vector:     serialized,
			})
			stored = append(stored, entity.StoredDocument{
				Chunk:        chunk,
				Vector:       serialized,
				OriginalData: row.Data,
				Link:         row.Link,
			})
		}
	}

	if len(stored) == 0 {
		if failed > 0 {
			return nil, fmt.Errorf("ingest batch %s: all %d rows failed", batchID, failed)
		}
		return nil, nil
	}

	if err := uc.docRepo.InsertBatch(ctx, stored); err != nil {
		return nil, fmt.Errorf("failed to save ingested chunks: %w", err)
	}

	log.Printf("ingest batch %s: stored %d chunks (%d rows failed)", batchID, len(stored), failed)
	return processed, nil
}

// IngestDocument runs one text document (e.g. extracted from a PDF)
// through the same pipeline as a single bulk row.
func (uc *ChatbotUsecase) IngestDocument(ctx context.Context, text, link string, threshold float64) ([]entity.ProcessedRow, error) {
	if strings.TrimSpace(text) == "" {
		return nil, fmt.Errorf("no text to ingest")
	}
	return uc.IngestRows(ctx, []entity.SourceRow{{Data: text, Link: link}}, threshold)
}

// QueryResult carries everything the query endpoint reports.
type QueryResult struct {
	Question        string
	EmbeddingDims   int
	MatchThreshold  float64
	MatchCount      int
	Matches         []entity.Match
	CombinedContent string
	Status          string
	AIResponse      string
	AIStatus        string
	AIError         string
}

// Query embeds the question, retrieves the most similar stored chunks
// and asks the LLM to answer from them. A failing LLM degrades the
// result instead of failing the query; a failing embedding is fatal.
func (uc *ChatbotUsecase) Query(ctx context.Context, question string, matchThreshold float64, matchCount int) (*QueryResult, error) {
	vectors, err := uc.embedder.EmbedBatch(ctx, []string{question})
	if err != nil {
		return nil, fmt.Errorf("failed to encode question: %w", err)
	}
	if len(vectors) == 0 {
		return nil, fmt.Errorf("no embedding generated for question")
	}
	queryVector := vectors[0]
	log.Printf("question encoded: %d dimensions", len(queryVector))

	docs, err := uc.docRepo.ListRecent(ctx, uc.historyLimit, "")
	if err != nil {
		return nil, fmt.Errorf("failed to load documents: %w", err)
	}

	matches := uc.engine.Search(queryVector, docs, matchThreshold, matchCount)

	result := &QueryResult{
		Question:       question,
		EmbeddingDims:  len(queryVector),
		MatchThreshold: matchThreshold,
		MatchCount:     matchCount,
		Matches:        matches,
	}

	if len(matches) > 0 {
		result.Status = "success"
		result.CombinedContent = buildPromptWithContext(question, matches)
	} else {
		result.Status = "no_matches"
		result.CombinedContent = buildPromptNoContext(question)
	}

	if !uc.chat.Available() {
		result.AIStatus = AIStatusUnavailable
		return result, nil
	}

	answer, err := uc.chat.GenerateResponse(ctx, result.CombinedContent)
	if err != nil {
		log.Printf("ai response generation failed: %v", err)
		result.AIStatus = AIStatusFailed
		result.AIError = err.Error()
		return result, nil
	}

	result.AIResponse = answer
	result.AIStatus = AIStatusSuccess
	return result, nil
}

// ClearCache drops all memoized vector parses.
func (uc *ChatbotUsecase) ClearCache() {
	uc.cache.Clear()
	log.Printf("vector cache cleared")
}

// TestConnection probes the database.
func (uc *ChatbotUsecase) TestConnection(ctx context.Context) error {
	return uc.docRepo.Ping(ctx)
}

func buildPromptWithContext(question string, matches []entity.Match) string {
	// de-duplicate original documents, preserving match order
	seen := make(map[string]struct{})
	var unique []string
	for _, m := range matches {
		if m.OriginalData == "" {
			continue
		}
		if _, ok := seen[m.OriginalData]; ok {
			continue
		}
		seen[m.OriginalData] = struct{}{}
		unique = append(unique, m.OriginalData)
	}

	if len(unique) == 0 {
		return buildPromptNoContext(question)
	}

	var docs strings.Builder
	for i, data := range unique {
		if i > 0 {
			docs.WriteString("\n\n")
		}
		fmt.Fprintf(&docs, "Tài liệu %d: %s", i+1, data)
	}

	return fmt.Sprintf(`Bạn sẽ thay mặt Đậu Đình Quang Anh để trả lời các câu hỏi của người dùng, sử dụng từ ngữ teencode 1 chút thêm cả icon. Câu hỏi của người dùng là "%s" và các thông tin liên quan đến câu hỏi là:

%s`, question, docs.String())
}

func buildPromptNoContext(question string) string {
	return fmt.Sprintf(`Bạn sẽ thay mặt Đậu Đình Quang Anh để trả lời các câu hỏi của người dùng, sử dụng từ ngữ teencode 1 chút thêm cả icon, trả lời câu hỏi 1 cách thân thiện như đang đối thoại với người dùng vậy, nên nhớ chỉ trả lời các câu hỏi liên quan đến Quang Anh với mục đích giới thiệu Quang Anh(Đậu Đình Quang Anh). Câu hỏi của người dùng là "%s" và không có thông tin liên quan nào được tìm thấy.`, question)
}
