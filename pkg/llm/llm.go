package llm

import "context"

// ChatModel is a minimal abstraction for chat-based LLMs used by the domain.
// It hides concrete providers so the advisor can be tested with a fake.
type ChatModel interface {
	Complete(ctx context.Context, systemPrompt, userMessage string) (string, error)
}
