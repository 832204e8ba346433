package services

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"time"

	"volunteerhub/dto"
	"volunteerhub/internal/apperr"

	"go.uber.org/zap"
)

const (
	completionsURL = "https://openrouter.ai/api/v1/chat/completions"
	chatModel      = "google/gemini-2.0-flash-001"

	systemContext = "You are the assistant of a volunteer event platform. " +
		"Help users find events, register for them and file activity reports. Answer briefly."
)

// ChatService is stateless boundary glue around the completion API: it
// forwards the transcript and relays the answer, nothing more.
type ChatService struct {
	APIKey  string
	Referer string
	Title   string

	Client *http.Client
	Logger *zap.Logger
}

func NewChatService(apiKey, referer, title string, logger *zap.Logger) *ChatService {
	return &ChatService{
		APIKey:  apiKey,
		Referer: referer,
		Title:   title,
		Client:  &http.Client{Timeout: 30 * time.Second},
		Logger:  logger,
	}
}

type completionRequest struct {
	Model       string            `json:"model"`
	Messages    []dto.ChatMessage `json:"messages"`
	Temperature float64           `json:"temperature"`
	MaxTokens   int               `json:"max_tokens"`
}

type upstreamError struct {
	Error struct {
		Message string `json:"message"`
		Code    any    `json:"code"`
	} `json:"error"`
}

// Complete forwards the transcript, prefixed with the fixed system
// context, and returns the upstream completion.
func (s *ChatService) Complete(ctx context.Context, messages []dto.ChatMessage) (*dto.ChatResponse, error) {
	payload := completionRequest{
		Model:       chatModel,
		Messages:    append([]dto.ChatMessage{{Role: "system", Content: systemContext}}, messages...),
		Temperature: 0.7,
		MaxTokens:   500,
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, completionsURL, bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Authorization", "Bearer "+s.APIKey)
	req.Header.Set("HTTP-Referer", s.Referer)
	req.Header.Set("X-Title", s.Title)
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.Client.Do(req)
	if err != nil {
		s.Logger.Error("completion API unreachable", zap.Error(err))
		return nil, apperr.Wrap(apperr.Upstream, "completion API unreachable", err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, apperr.Wrap(apperr.Upstream, "failed to read completion response", err)
	}

	if resp.StatusCode != http.StatusOK {
		return nil, s.classify(raw, resp.StatusCode)
	}

	var completion dto.ChatResponse
	if err := json.Unmarshal(raw, &completion); err != nil || len(completion.Choices) == 0 {
		s.Logger.Error("malformed completion response", zap.Int("status", resp.StatusCode))
		return nil, apperr.New(apperr.Upstream, "malformed completion response")
	}
	return &completion, nil
}

// classify turns an upstream failure into a structured error with a
// remediation hint where the cause is recognizable.
func (s *ChatService) classify(raw []byte, status int) *apperr.Error {
	var ue upstreamError
	_ = json.Unmarshal(raw, &ue)

	msg := ue.Error.Message
	if msg == "" {
		msg = "completion API error"
	}
	s.Logger.Error("completion API error", zap.Int("status", status), zap.String("message", msg))

	// A hint is attached only when the cause is recognizable.
	var hint string
	if code, ok := ue.Error.Code.(string); ok && code == "unsupported_country_region_territory" {
		hint = "use a VPN exit in a supported region (US/Europe)"
	} else if status == http.StatusUnauthorized {
		hint = "check the API key"
	}
	return &apperr.Error{Kind: apperr.Upstream, Msg: msg, Solution: hint}
}
