package messaging

import (
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/pixil98/go-testutil"
)

type recordingPublisher struct {
	subject string
	data    []byte
	err     error
}

func (p *recordingPublisher) Publish(subject string, data []byte) error {
	p.subject = subject
	p.data = data
	return p.err
}

func TestSessionSubject(t *testing.T) {
	testutil.AssertEqual(t, "subject", SessionSubject("abc-123"), "adventure.session.abc-123")
}

func TestTranscriptPublisher_PublishTurn(t *testing.T) {
	tests := map[string]struct {
		pubErr error
		expErr string
	}{
		"published": {},
		"publish fails": {
			pubErr: errors.New("connection closed"),
			expErr: "publishing turn: connection closed",
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			rec := &recordingPublisher{err: tt.pubErr}
			p := NewTranscriptPublisher(rec)

			turn := Turn{
				Session: "s1",
				Input:   "go north",
				Lines:   []string{"You are in a forest."},
				State:   "playing",
				Time:    time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC),
			}
			err := p.PublishTurn(turn)
			if tt.expErr != "" {
				testutil.AssertErrorContains(t, err, tt.expErr)
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}

			testutil.AssertEqual(t, "subject", rec.subject, "adventure.session.s1")

			var got Turn
			if err := json.Unmarshal(rec.data, &got); err != nil {
				t.Fatalf("decoding: %v", err)
			}
			testutil.AssertEqual(t, "input", got.Input, turn.Input)
			testutil.AssertEqual(t, "lines", len(got.Lines), 1)
			testutil.AssertEqual(t, "time", got.Time.Equal(turn.Time), true)
		})
	}
}
