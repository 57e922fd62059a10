package checkers

import (
	"context"
	"errors"
	"strings"
)

var ErrMissingCredential = errors.New("api key is not configured")

// CredentialsChecker reports not ready until a completion API key is set.
// It never calls the provider.
type CredentialsChecker struct {
	provider string
	apiKey   string
}

func NewCredentialsChecker(provider, apiKey string) *CredentialsChecker {
	return &CredentialsChecker{provider: provider, apiKey: apiKey}
}

func (c *CredentialsChecker) Name() string { return c.provider }

func (c *CredentialsChecker) Check(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if strings.TrimSpace(c.apiKey) == "" {
		return ErrMissingCredential
	}
	return nil
}
