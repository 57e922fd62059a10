package advisor

import (
	"fmt"
	"time"
)

const DefaultUserName = "Ervin"

const systemPromptTemplate = "You are a life advisor assistant. Today is %s. The user is %s. " +
	"Give helpful, safe, and positive advice only. Avoid dangerous or illegal suggestions. " +
	"Help with daily problems."

// SystemPrompt renders the persona instruction for the given user and day.
func SystemPrompt(userName string, today time.Time) string {
	return fmt.Sprintf(systemPromptTemplate, today.Format(time.DateOnly), userName)
}
