package memory

import (
	"encoding/json"
	"errors"
	"os"
)

// Message is a minimal persisted view of a chat turn.
// For simplicity, currently storing only text. Tool blocks are transient.
type Message struct {
	Role string `json:"role"`
	Text string `json:"text,omitempty"`
}

// Thread is a named conversation whose transcript persists between runs,
// so repeated invocations with the same thread id continue where they
// left off.
type Thread struct {
	ID       string    `json:"id"`
	Messages []Message `json:"messages"`
}

// Append records one turn on the thread.
func (t *Thread) Append(role, text string) {
	t.Messages = append(t.Messages, Message{Role: role, Text: text})
}

// LoadThread reads the thread stored at path. A missing file yields an
// empty thread carrying the given id.
func LoadThread(path, id string) (*Thread, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return &Thread{ID: id}, nil
		}
		return nil, err
	}
	var t Thread
	if err := json.Unmarshal(b, &t); err != nil {
		return nil, err
	}
	if t.ID == "" {
		t.ID = id
	}
	return &t, nil
}

// SaveThread writes the thread to path.
func SaveThread(path string, t *Thread) error {
	b, err := json.MarshalIndent(t, "", " ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, b, 0o644)
}
