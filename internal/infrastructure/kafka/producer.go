package kafka

import (
	"context"
	"fmt"
	"time"

	"github.com/DRSN-tech/product-table/internal/cfg"
	"github.com/DRSN-tech/product-table/internal/usecase"
	"github.com/DRSN-tech/product-table/pkg/e"
	"github.com/DRSN-tech/product-table/pkg/logger"
	"github.com/jimlawless/whereami"
	"github.com/segmentio/kafka-go"
	"go.opentelemetry.io/otel/trace"
	"google.golang.org/protobuf/proto"
	"google.golang.org/protobuf/types/known/structpb"
)

// Producer публикует события изменения Query. Ключ сообщения - id сессии,
// поэтому события одной сессии попадают в одну партицию и сохраняют порядок.
type Producer struct {
	writer *kafka.Writer
	logger logger.Logger
	cfg    *cfg.KafkaCfg
}

func NewProducer(logger logger.Logger, cfg *cfg.KafkaCfg) *Producer {
	writer := &kafka.Writer{
		Addr:         kafka.TCP(cfg.Brokers...),
		Topic:        cfg.Topic,
		Balancer:     &kafka.Hash{},
		RequiredAcks: kafka.RequireOne,
		Async:        true,
		BatchSize:    100,
		BatchTimeout: 200 * time.Millisecond,
		WriteTimeout: 10 * time.Second,
		Completion: func(messages []kafka.Message, err error) {
			if err != nil {
				logger.Warnf("Kafka producer error (%d messages): %s", len(messages), err.Error())
			}
		},
	}

	return &Producer{
		writer: writer,
		logger: logger,
		cfg:    cfg,
	}
}

// PublishQueryChanged ставит событие в очередь writer'а и не ждет подтверждения брокера.
func (p *Producer) PublishQueryChanged(ctx context.Context, event *usecase.QueryChangedEvent) error {
	value, err := PayloadBytes(event)
	if err != nil {
		return e.Wrap(whereami.WhereAmI(), err)
	}

	return p.writer.WriteMessages(ctx, kafka.Message{
		Key:     []byte(event.SessionID),
		Value:   value,
		Headers: messageHeaders(ctx, event),
	})
}

// messageHeaders добавляет к типу события trace_id и span_id, если ctx несет span.
func messageHeaders(ctx context.Context, event *usecase.QueryChangedEvent) []kafka.Header {
	headers := []kafka.Header{
		{Key: "event_type", Value: []byte(event.EventType)},
	}

	if sc := trace.SpanContextFromContext(ctx); sc.IsValid() {
		headers = append(headers,
			kafka.Header{Key: "trace_id", Value: []byte(sc.TraceID().String())},
			kafka.Header{Key: "span_id", Value: []byte(sc.SpanID().String())},
		)
	}

	return headers
}

// EnsureTopic создает топик, если его еще нет.
func (p *Producer) EnsureTopic(timeout time.Duration) error {
	conn, err := kafka.Dial(p.cfg.NetworkMode, p.cfg.Brokers[0])
	if err != nil {
		return e.Wrap(whereami.WhereAmI(), err)
	}
	defer conn.Close()

	partitions, err := conn.ReadPartitions(p.cfg.Topic)
	if err == nil && len(partitions) > 0 {
		return nil
	}

	done := make(chan error, 1)
	go func() {
		done <- conn.CreateTopics(kafka.TopicConfig{
			Topic:             p.cfg.Topic,
			NumPartitions:     p.cfg.Partitions,
			ReplicationFactor: p.cfg.ReplicationFactor,
		})
	}()

	select {
	case err := <-done:
		if err != nil {
			return e.Wrap(whereami.WhereAmI(), fmt.Errorf("failed to create topic %s: %w", p.cfg.Topic, err))
		}
		return nil
	case <-time.After(timeout):
		_ = conn.Close()
		return e.Wrap(whereami.WhereAmI(), fmt.Errorf("timeout: %v, topic: %s", timeout, p.cfg.Topic))
	}
}

// Close дожидается отправки буферизованных сообщений.
func (p *Producer) Close(context.Context) error {
	return p.writer.Close()
}

// PayloadBytes сериализует событие в google.protobuf.Struct.
func PayloadBytes(event *usecase.QueryChangedEvent) ([]byte, error) {
	payload, err := toProtoStruct(event)
	if err != nil {
		return nil, err
	}

	return proto.Marshal(payload)
}

func toProtoStruct(event *usecase.QueryChangedEvent) (*structpb.Struct, error) {
	const op = "producer.toProtoStruct"

	categoryIDs := make([]any, 0, len(event.Query.CategoryIDs))
	for _, id := range event.Query.CategoryIDs {
		categoryIDs = append(categoryIDs, id)
	}

	var ownerID any
	if event.Query.OwnerID != nil {
		ownerID = *event.Query.OwnerID
	}

	s, err := structpb.NewStruct(map[string]any{
		"event_id":    event.EventID,
		"session_id":  event.SessionID,
		"event_type":  event.EventType,
		"row_count":   event.RowCount,
		"occurred_at": event.OccurredAt.UTC().Format(time.RFC3339Nano),
		"query": map[string]any{
			"owner_id":       ownerID,
			"text":           event.Query.Text,
			"category_ids":   categoryIDs,
			"sort_column":    event.Query.SortColumn,
			"sort_direction": event.Query.SortDirection,
		},
	})
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	return s, nil
}
