package advisor

import (
	"context"
	"fmt"
	"time"

	"github.com/artem13815/lifeadvisor/pkg/llm"
)

// Service describes the chat use case: one message in, one advice reply out.
type Service interface {
	Reply(ctx context.Context, message string) (string, error)
}

type Options struct {
	UserName string
	// Now defaults to time.Now; tests pin it to a fixed day.
	Now func() time.Time
}

type service struct {
	llm      llm.ChatModel
	userName string
	now      func() time.Time
}

// NewService creates the default implementation.
func NewService(model llm.ChatModel, opts Options) Service {
	if opts.UserName == "" {
		opts.UserName = DefaultUserName
	}
	if opts.Now == nil {
		opts.Now = time.Now
	}
	return &service{
		llm:      model,
		userName: opts.UserName,
		now:      opts.Now,
	}
}

func (s *service) Reply(ctx context.Context, message string) (string, error) {
	system := SystemPrompt(s.userName, s.now())
	answer, err := s.llm.Complete(ctx, system, message)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrExternalService, err)
	}
	return answer, nil
}
