package dto

type ChatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type ChatRequest struct {
	Messages []ChatMessage `json:"messages" validate:"required,min=1"`
}

type ChatChoice struct {
	Message ChatMessage `json:"message"`
}

type ChatResponse struct {
	Choices []ChatChoice `json:"choices"`
}

type ErrorResponse struct {
	Error    string   `json:"error,omitempty"`
	Errors   []string `json:"errors,omitempty"`
	Solution string   `json:"solution,omitempty"`
}
