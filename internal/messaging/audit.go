package messaging

import (
	"context"
	"encoding/json"
	"log/slog"
)

// Subscriber is the part of NatsServer the Auditor needs.
type Subscriber interface {
	Ready() <-chan struct{}
	Subscribe(subject string, handler func(data []byte)) (func(), error)
}

// Auditor logs every published turn of every session.
type Auditor struct {
	sub Subscriber
}

func NewAuditor(sub Subscriber) *Auditor {
	return &Auditor{sub: sub}
}

func (a *Auditor) Start(ctx context.Context) error {
	select {
	case <-ctx.Done():
		return nil
	case <-a.sub.Ready():
	}

	unsubscribe, err := a.sub.Subscribe(SessionSubjectPrefix+".*", func(data []byte) {
		var t Turn
		if err := json.Unmarshal(data, &t); err != nil {
			slog.WarnContext(ctx, "decoding transcript", "error", err)
			return
		}
		slog.InfoContext(ctx, "turn",
			"session", t.Session,
			"input", t.Input,
			"lines", len(t.Lines),
			"state", t.State)
	})
	if err != nil {
		return err
	}
	defer unsubscribe()

	<-ctx.Done()
	return nil
}
