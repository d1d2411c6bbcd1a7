package events

import (
	"context"
	"encoding/json"
	"strings"

	"github.com/moneygate/tool-service/config"
	"github.com/moneygate/tool-service/metrics"
	"github.com/moneygate/tool-service/models"

	kafka "github.com/segmentio/kafka-go"
	"github.com/sirupsen/logrus"
)

// toolEvent mirrors the schema consumed by downstream analytics workers.
type toolEvent struct {
	ToolID     string `json:"tool_id"`
	OwnerID    string `json:"owner_id"`
	TemplateID string `json:"template_id"`
	FileType   string `json:"file_type"`
	FileFormat string `json:"file_format"`
	SizeBytes  int64  `json:"size_bytes"`
	CreatedAt  string `json:"created_at"`
}

// Publisher emits tool lifecycle events to Kafka, best effort. A failed
// publish is logged and counted, never returned to the request path.
type Publisher struct {
	generated *kafka.Writer
	deleted   *kafka.Writer
	logger    *logrus.Logger
}

// NewPublisher returns nil when no brokers are configured; a nil Publisher
// is safe to call and publishes nothing.
func NewPublisher(cfg config.KafkaConfig, logger *logrus.Logger) *Publisher {
	if cfg.Brokers == "" {
		return nil
	}
	brokers := splitBrokers(cfg.Brokers)
	return &Publisher{
		generated: kafka.NewWriter(kafka.WriterConfig{
			Brokers:  brokers,
			Topic:    cfg.GeneratedTopic,
			Balancer: &kafka.LeastBytes{},
		}),
		deleted: kafka.NewWriter(kafka.WriterConfig{
			Brokers:  brokers,
			Topic:    cfg.DeletedTopic,
			Balancer: &kafka.LeastBytes{},
		}),
		logger: logger,
	}
}

func (p *Publisher) ToolGenerated(ctx context.Context, tool *models.GeneratedTool) {
	if p == nil {
		return
	}
	p.publish(ctx, p.generated, tool)
}

func (p *Publisher) ToolDeleted(ctx context.Context, tool *models.GeneratedTool) {
	if p == nil {
		return
	}
	p.publish(ctx, p.deleted, tool)
}

func (p *Publisher) publish(ctx context.Context, w *kafka.Writer, tool *models.GeneratedTool) {
	payload, _ := json.Marshal(toolEvent{
		ToolID:     tool.ID.String(),
		OwnerID:    tool.OwnerID,
		TemplateID: tool.TemplateID,
		FileType:   tool.FileType,
		FileFormat: tool.FileFormat,
		SizeBytes:  tool.SizeBytes,
		CreatedAt:  tool.CreatedAt.Format("2006-01-02T15:04:05Z07:00"),
	})
	err := w.WriteMessages(ctx, kafka.Message{
		Key:   []byte(tool.ID.String()),
		Value: payload,
	})
	if err != nil {
		metrics.KafkaMessagesTotal.WithLabelValues("tool-service", w.Topic, "error").Inc()
		p.logger.WithError(err).WithField("topic", w.Topic).Warn("kafka publish failed")
		return
	}
	metrics.KafkaMessagesTotal.WithLabelValues("tool-service", w.Topic, "ok").Inc()
}

func (p *Publisher) Close() {
	if p == nil {
		return
	}
	_ = p.generated.Close()
	_ = p.deleted.Close()
}

func splitBrokers(s string) []string {
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, b := range parts {
		if b = strings.TrimSpace(b); b != "" {
			out = append(out, b)
		}
	}
	return out
}
