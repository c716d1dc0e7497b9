package kafka

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sort"

	"github.com/IBM/sarama"
)

var ErrNoBrokers = errors.New("kafka: at least one broker is required")

type Options struct {
	Brokers  []string
	ClientID string
	// Config overrides the idempotent defaults when set.
	Config *sarama.Config
	Logger *slog.Logger
}

// Producer delivers outbox messages one at a time and waits for every
// in-sync replica before reporting success.
type Producer struct {
	sync   sarama.SyncProducer
	logger *slog.Logger
}

func NewProducer(opts Options) (*Producer, error) {
	if len(opts.Brokers) == 0 {
		return nil, ErrNoBrokers
	}
	cfg := opts.Config
	if cfg == nil {
		cfg = defaultConfig(opts.ClientID)
	}
	sync, err := sarama.NewSyncProducer(opts.Brokers, cfg)
	if err != nil {
		return nil, fmt.Errorf("kafka: connect %v: %w", opts.Brokers, err)
	}
	return newProducer(sync, opts.Logger), nil
}

func newProducer(sync sarama.SyncProducer, logger *slog.Logger) *Producer {
	if logger == nil {
		logger = slog.Default()
	}
	return &Producer{sync: sync, logger: logger.With("component", "kafka")}
}

func defaultConfig(clientID string) *sarama.Config {
	if clientID == "" {
		clientID = "stayfront"
	}
	cfg := sarama.NewConfig()
	cfg.ClientID = clientID
	cfg.Version = sarama.V2_1_0_0
	cfg.Producer.RequiredAcks = sarama.WaitForAll
	cfg.Producer.Idempotent = true
	cfg.Producer.Return.Successes = true
	cfg.Net.MaxOpenRequests = 1
	return cfg
}

// Publish sends payload keyed by the visitor id so one visitor's events keep
// their order within a partition.
func (p *Producer) Publish(ctx context.Context, topic string, key string, payload []byte, headers map[string]string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	msg := &sarama.ProducerMessage{
		Topic:   topic,
		Key:     sarama.StringEncoder(key),
		Value:   sarama.ByteEncoder(payload),
		Headers: recordHeaders(headers),
	}
	partition, offset, err := p.sync.SendMessage(msg)
	if err != nil {
		return fmt.Errorf("kafka: publish to %s: %w", topic, err)
	}
	p.logger.DebugContext(ctx, "event delivered", "topic", topic, "key", key, "partition", partition, "offset", offset)
	return nil
}

func (p *Producer) Close() error {
	if p == nil || p.sync == nil {
		return nil
	}
	return p.sync.Close()
}

func recordHeaders(headers map[string]string) []sarama.RecordHeader {
	keys := make([]string, 0, len(headers))
	for k := range headers {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	out := make([]sarama.RecordHeader, 0, len(keys))
	for _, k := range keys {
		out = append(out, sarama.RecordHeader{Key: []byte(k), Value: []byte(headers[k])})
	}
	return out
}
