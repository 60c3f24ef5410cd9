package tools

import (
	"encoding/json"
	"fmt"

	"github.com/agentstation/lnmap/pkg/constants"
	"github.com/agentstation/lnmap/pkg/errors"
)

// truncationNotice ends a response cut at the character limit.
const truncationNotice = "\n\n[response truncated: exceeded %d characters; narrow the query or lower the limit]"

// document renders v as indented JSON.
func document(v any) (*Result, error) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return nil, errors.NewParseError("json", "response", "failed to render response", err)
	}
	return &Result{Text: truncate(string(data)), Data: v}, nil
}

// message renders a plain text response.
func message(format string, args ...any) *Result {
	return &Result{Text: fmt.Sprintf(format, args...)}
}

// truncate cuts text to constants.CharacterLimit runes.
func truncate(text string) string {
	if len(text) <= constants.CharacterLimit {
		return text
	}
	runes := []rune(text)
	if len(runes) <= constants.CharacterLimit {
		return text
	}
	return string(runes[:constants.CharacterLimit]) + fmt.Sprintf(truncationNotice, constants.CharacterLimit)
}
