package notifier

import (
	"fmt"
	"slices"
	"strings"
)

// Message is a list of sentences to be sent together.
type Message []string

// NewMessage creates a new empty Message.
func NewMessage() Message { return nil }

// NewMessagef creates a new Message containing one formatted sentence.
func NewMessagef(format string, args ...any) Message {
	return Message{fmt.Sprintf(format, args...)}
}

// MergeMessages concatenates the sentences of all messages.
func MergeMessages(msgs ...Message) Message {
	return slices.Concat(msgs...)
}

// Format turns the message into a single string.
func (m Message) Format() string { return strings.Join(m, " ") }

// IsEmpty checks if the message is empty.
func (m Message) IsEmpty() bool { return len(m) == 0 }
