package metrics

import (
	"context"
	"time"

	"github.com/artem13815/lifeadvisor/pkg/llm"
)

type meteredModel struct {
	next      llm.ChatModel
	model     string
	collector *Collector
}

// InstrumentChatModel times every Complete call of next under the given model label.
func InstrumentChatModel(next llm.ChatModel, model string, c *Collector) llm.ChatModel {
	return &meteredModel{next: next, model: model, collector: c}
}

func (m *meteredModel) Complete(ctx context.Context, systemPrompt, userMessage string) (string, error) {
	start := time.Now()
	out, err := m.next.Complete(ctx, systemPrompt, userMessage)
	m.collector.RecordCompletion(m.model, time.Since(start), err)
	return out, err
}
