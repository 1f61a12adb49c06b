package messaging

import (
	"encoding/json"
	"fmt"
	"time"
)

// SessionSubjectPrefix is the subject every session transcript is published
// under, followed by the session id.
const SessionSubjectPrefix = "adventure.session"

// SessionSubject returns the subject a session's turns are published on.
func SessionSubject(session string) string {
	return fmt.Sprintf("%s.%s", SessionSubjectPrefix, session)
}

// Publisher provides the ability to publish messages to subjects
type Publisher interface {
	Publish(subject string, data []byte) error
}

// Turn is the transcript of one processed line of input.
type Turn struct {
	Session string    `json:"session"`
	Input   string    `json:"input"`
	Lines   []string  `json:"lines"`
	State   string    `json:"state"`
	Time    time.Time `json:"time"`
}

// TranscriptPublisher publishes session turns as JSON.
type TranscriptPublisher struct {
	pub Publisher
}

func NewTranscriptPublisher(pub Publisher) *TranscriptPublisher {
	return &TranscriptPublisher{pub: pub}
}

// PublishTurn publishes t on its session's subject.
func (p *TranscriptPublisher) PublishTurn(t Turn) error {
	data, err := json.Marshal(t)
	if err != nil {
		return fmt.Errorf("marshalling turn: %w", err)
	}
	if err := p.pub.Publish(SessionSubject(t.Session), data); err != nil {
		return fmt.Errorf("publishing turn: %w", err)
	}
	return nil
}
