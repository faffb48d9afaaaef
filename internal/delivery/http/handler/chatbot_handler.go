package handler

import (
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/DauDinhQuangAnh/BE-PROFILE-MEEE/internal/delivery/http/dto"
	"github.com/DauDinhQuangAnh/BE-PROFILE-MEEE/internal/usecase/chatbot"

	"github.com/gofiber/fiber/v2"
)

type ChatbotHandler struct {
	chatbotUsecase *chatbot.ChatbotUsecase
	extractor      *chatbot.PDFExtractor
	matchThreshold float64
	matchCount     int
}

func NewChatbotHandler(chatbotUsecase *chatbot.ChatbotUsecase, matchThreshold float64, matchCount int) *ChatbotHandler {
	return &ChatbotHandler{
		chatbotUsecase: chatbotUsecase,
		extractor:      chatbot.NewPDFExtractor(),
		matchThreshold: matchThreshold,
		matchCount:     matchCount,
	}
}

// Chat godoc
// @Summary      Store a document chunk
// @Description  Store raw document content with a pending vector; it is excluded from search until embedded
// @Tags         Chat
// @Accept       json
// @Produce      json
// @Param        request  body  dto.ChatRequest  true  "Document content"
// @Success      200  {object}  dto.ChatResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /api/chat [post]
func (h *ChatbotHandler) Chat(c *fiber.Ctx) error {
	var req dto.ChatRequest
	if err := c.BodyParser(&req); err != nil || strings.TrimSpace(req.Prompt) == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: "Missing document content in request body"})
	}

	source := req.UserID
	if source == "" {
		source = "unknown_source"
	}

	doc, err := h.chatbotUsecase.StoreRaw(c.Context(), req.Prompt)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Error: err.Error()})
	}

	return c.Status(fiber.StatusOK).JSON(dto.ChatResponse{
		Content:   doc.Chunk,
		Status:    doc.Vector,
		Source:    source,
		Timestamp: time.Now().Format(time.RFC3339),
	})
}

// History godoc
// @Summary      List stored document chunks
// @Tags         Chat
// @Produce      json
// @Param        limit    query  int     false  "Maximum rows" default(50)
// @Param        user_id  query  string  false  "Filter by source document"
// @Success      200  {object}  dto.HistoryResponse
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /api/chat/history [get]
func (h *ChatbotHandler) History(c *fiber.Ctx) error {
	limit, _ := strconv.Atoi(c.Query("limit", "50"))
	docFilter := c.Query("user_id")

	chunks, err := h.chatbotUsecase.History(c.Context(), limit, docFilter)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Error: "Failed to retrieve document chunks"})
	}

	return c.Status(fiber.StatusOK).JSON(dto.HistoryResponse{
		Chunks: chunks,
		Count:  len(chunks),
	})
}

// Query godoc
// @Summary      Answer a question from stored documents
// @Description  Embed the question, retrieve the most similar chunks and generate an AI answer from them
// @Tags         Query
// @Accept       json
// @Produce      json
// @Param        request  body  dto.QueryRequest  true  "Question with optional match settings"
// @Success      200  {object}  dto.QueryResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /api/query [post]
func (h *ChatbotHandler) Query(c *fiber.Ctx) error {
	var req dto.QueryRequest
	if err := c.BodyParser(&req); err != nil || strings.TrimSpace(req.Question) == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: "Missing question in request body"})
	}

	threshold := h.matchThreshold
	if req.MatchThreshold != nil {
		threshold = *req.MatchThreshold
	}
	count := h.matchCount
	if req.MatchCount != nil {
		count = *req.MatchCount
	}
	if count < 1 {
		count = 1
	}

	result, err := h.chatbotUsecase.Query(c.Context(), req.Question, threshold, count)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Error: err.Error()})
	}

	return c.Status(fiber.StatusOK).JSON(dto.QueryResponse{
		Question:                   result.Question,
		QuestionEmbeddingDimension: result.EmbeddingDims,
		MatchThreshold:             result.MatchThreshold,
		MatchCount:                 result.MatchCount,
		FoundMatches:               len(result.Matches),
		Matches:                    result.Matches,
		CombinedContent:            result.CombinedContent,
		Status:                     result.Status,
		AIResponse:                 result.AIResponse,
		AIStatus:                   result.AIStatus,
		AIError:                    result.AIError,
	})
}

// Ingest godoc
// @Summary      Bulk ingest tabular data
// @Description  Upload a CSV with STT, DATA and Link columns; each row is chunked, embedded and stored
// @Tags         Ingest
// @Accept       multipart/form-data
// @Produce      json
// @Param        file       formData  file    true   "CSV file"
// @Param        threshold  formData  number  false  "Merge similarity threshold"
// @Success      200  {object}  dto.IngestResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /api/ingest [post]
func (h *ChatbotHandler) Ingest(c *fiber.Ctx) error {
	file, err := c.FormFile("file")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: "Failed to get file"})
	}

	threshold := -1.0
	if v := c.FormValue("threshold"); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			threshold = f
		}
	}

	src, err := file.Open()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Error: "failed to open file"})
	}
	defer src.Close()

	rows, err := chatbot.ReadSourceTable(src)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: err.Error()})
	}

	processed, err := h.chatbotUsecase.IngestRows(c.Context(), rows, threshold)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Error: err.Error()})
	}

	return c.Status(fiber.StatusOK).JSON(dto.IngestResponse{
		Rows:     processed,
		RowCount: len(processed),
		Message:  "Ingestion completed",
	})
}

// Upload godoc
// @Summary      Ingest a PDF document
// @Description  Extract text from an uploaded PDF and run it through the chunking and embedding pipeline
// @Tags         Ingest
// @Accept       multipart/form-data
// @Produce      json
// @Param        file  formData  file    true   "PDF file"
// @Param        link  formData  string  false  "Source link stored with the chunks"
// @Success      200  {object}  dto.IngestResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /api/documents/upload [post]
func (h *ChatbotHandler) Upload(c *fiber.Ctx) error {
	file, err := c.FormFile("file")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: "Failed to get file"})
	}

	src, err := file.Open()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Error: "failed to open file"})
	}
	defer src.Close()

	buf, err := io.ReadAll(src)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Error: "failed to read file"})
	}

	text, err := h.extractor.ExtractText(buf)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: err.Error()})
	}

	processed, err := h.chatbotUsecase.IngestDocument(c.Context(), text, c.FormValue("link"), -1)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Error: err.Error()})
	}

	return c.Status(fiber.StatusOK).JSON(dto.IngestResponse{
		Rows:     processed,
		RowCount: len(processed),
		Message:  "Document ingested",
	})
}

// TestConnection godoc
// @Summary      Test database connectivity
// @Tags         System
// @Produce      json
// @Success      200  {object}  dto.ConnectionResponse
// @Failure      500  {object}  dto.ConnectionResponse
// @Router       /api/test-connection [get]
func (h *ChatbotHandler) TestConnection(c *fiber.Ctx) error {
	if err := h.chatbotUsecase.TestConnection(c.Context()); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ConnectionResponse{
			Status:  "disconnected",
			Message: "Failed to connect to Supabase",
		})
	}
	return c.Status(fiber.StatusOK).JSON(dto.ConnectionResponse{
		Status:  "connected",
		Message: "Successfully connected to Supabase",
	})
}

// ClearCache godoc
// @Summary      Clear the vector parse cache
// @Tags         System
// @Produce      json
// @Success      200  {object}  dto.MessageResponse
// @Router       /api/cache/clear [post]
func (h *ChatbotHandler) ClearCache(c *fiber.Ctx) error {
	h.chatbotUsecase.ClearCache()
	return c.Status(fiber.StatusOK).JSON(dto.MessageResponse{Message: "Vector search cache cleared"})
}
