package catalog

import (
	"context"
	"encoding/json"

	"github.com/segmentio/kafka-go"
	"go.uber.org/zap"
)

// Listener consumes product-update events published when the back office
// changes the catalog on another terminal, and drops the local cache so the
// next grid render refetches. Optional: only wired when brokers are
// configured.
type Listener struct {
	reader  *kafka.Reader
	service *Service
	log     *zap.SugaredLogger
}

func NewListener(service *Service, log *zap.SugaredLogger, brokers ...string) *Listener {
	reader := kafka.NewReader(kafka.ReaderConfig{
		Brokers:  brokers,
		Topic:    "product-updates",
		GroupID:  "pos-terminal",
		MaxBytes: 10e6, // 10MB
	})
	return &Listener{reader: reader, service: service, log: log}
}

func (l *Listener) Run(ctx context.Context) {
	for {
		if ctx.Err() != nil {
			return
		}
		l.consumeOne(ctx)
	}
}

func (l *Listener) Close() {
	if err := l.reader.Close(); err != nil {
		l.log.Warnw("error closing reader", "error", err)
	}
}

func (l *Listener) consumeOne(ctx context.Context) {
	m, err := l.reader.ReadMessage(ctx)
	if err != nil {
		if ctx.Err() == nil {
			l.log.Warnw("error reading message", "error", err)
		}
		return
	}

	var payload map[string]interface{}
	if errUnmarshal := json.Unmarshal(m.Value, &payload); errUnmarshal != nil {
		l.log.Warnw("error parsing message", "error", errUnmarshal)
		return
	}

	l.log.Infow("catalog changed, dropping cache", "event", payload["event"])
	l.service.Invalidate(ctx)
}
