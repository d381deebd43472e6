package claude

import (
	"encoding/json"
	"errors"
	"time"
)

// EntryType identifies the type of a transcript record.
type EntryType string

const (
	EntryTypeUser      EntryType = "user"
	EntryTypeAssistant EntryType = "assistant"
	EntryTypeSummary   EntryType = "summary"
)

// Entry is a single line of a transcript file. Only the fields the indexer
// needs are decoded; everything else is left in place.
type Entry struct {
	Type      EntryType       `json:"type"`
	Timestamp string          `json:"timestamp"`
	SessionID string          `json:"sessionId"`
	CWD       string          `json:"cwd"`
	Message   json.RawMessage `json:"message"`
}

// UserMessage is the message field of user entries.
type UserMessage struct {
	Role    string          `json:"role"`
	Content json.RawMessage `json:"content"` // string or []ContentBlock
}

// ContentBlock is one block of structured message content.
type ContentBlock struct {
	Type      string `json:"type"`
	Text      string `json:"text,omitempty"`
	ToolUseID string `json:"tool_use_id,omitempty"` // tool_result
}

// parseEntry decodes one transcript line.
func parseEntry(line []byte) (*Entry, error) {
	var entry Entry
	if err := json.Unmarshal(line, &entry); err != nil {
		return nil, err
	}
	return &entry, nil
}

// Time returns the entry's parsed timestamp. Records in a transcript carry
// RFC 3339 timestamps (Z-suffixed UTC in practice).
func (e *Entry) Time() (time.Time, error) {
	if e.Timestamp == "" {
		return time.Time{}, errors.New("entry has no timestamp")
	}
	return time.Parse(time.RFC3339, e.Timestamp)
}

// PromptText extracts user prompt text from an entry.
// Returns empty string for non-user entries or tool results.
func (e *Entry) PromptText() string {
	if e.Type != EntryTypeUser || len(e.Message) == 0 {
		return ""
	}
	var msg UserMessage
	if err := json.Unmarshal(e.Message, &msg); err != nil {
		return ""
	}
	return ParseUserContent(msg.Content)
}

// ParseUserContent extracts the text content from a user message.
// User content can be either a plain string or an array of content blocks.
func ParseUserContent(raw json.RawMessage) string {
	if len(raw) == 0 {
		return ""
	}

	// Plain string content
	var str string
	if err := json.Unmarshal(raw, &str); err == nil {
		return str
	}

	// Array of content blocks
	var blocks []ContentBlock
	if err := json.Unmarshal(raw, &blocks); err != nil {
		return ""
	}

	// Entries whose content is nothing but tool results are transport
	// noise, not something the user typed.
	onlyToolResults := true
	var text string
	for _, b := range blocks {
		if b.Type == "tool_result" {
			continue
		}
		onlyToolResults = false
		if b.Type == "text" && b.Text != "" {
			if text != "" {
				text += "\n"
			}
			text += b.Text
		}
	}
	if onlyToolResults {
		return ""
	}
	return text
}
