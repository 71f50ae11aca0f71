package service

import "context"

// AIService is the generative model behind notes, quizzes and tutor chat.
// Implementations send a single prompt and return the generated text.
type AIService interface {
	GenerateContent(ctx context.Context, prompt string) (string, error)
}
