package dto

import "github.com/DauDinhQuangAnh/BE-PROFILE-MEEE/internal/domain/entity"

type ChatRequest struct {
	Prompt string `json:"prompt"`
	UserID string `json:"user_id"`
}

type ChatResponse struct {
	Content   string `json:"content"`
	Status    string `json:"status"`
	Source    string `json:"source"`
	Timestamp string `json:"timestamp"`
}

type HistoryResponse struct {
	Chunks []entity.StoredDocument `json:"chunks"`
	Count  int                     `json:"count"`
}

type QueryRequest struct {
	Question       string   `json:"question"`
	MatchThreshold *float64 `json:"match_threshold,omitempty"`
	MatchCount     *int     `json:"match_count,omitempty"`
}

type QueryResponse struct {
	Question                   string         `json:"question"`
	QuestionEmbeddingDimension int            `json:"question_embedding_dimensions"`
	MatchThreshold             float64        `json:"match_threshold"`
	MatchCount                 int            `json:"match_count"`
	FoundMatches               int            `json:"found_matches"`
	Matches                    []entity.Match `json:"matches"`
	CombinedContent            string         `json:"combined_content"`
	Status                     string         `json:"status"`
	AIResponse                 string         `json:"ai_response,omitempty"`
	AIStatus                   string         `json:"ai_status"`
	AIError                    string         `json:"ai_error,omitempty"`
}

type IngestResponse struct {
	Rows     []entity.ProcessedRow `json:"rows"`
	RowCount int                   `json:"row_count"`
	Message  string                `json:"message"`
}

type ConnectionResponse struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}

type MessageResponse struct {
	Message string `json:"message"`
}

type ErrorResponse struct {
	Error string `json:"error"`
}
