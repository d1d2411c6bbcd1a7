package events

import (
	"context"
	"testing"
	"time"

	"github.com/moneygate/tool-service/config"
	"github.com/moneygate/tool-service/metrics"
	"github.com/moneygate/tool-service/models"

	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/sirupsen/logrus"
	logtest "github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func eventTool() *models.GeneratedTool {
	return &models.GeneratedTool{
		Base:       models.Base{ID: uuid.New(), CreatedAt: time.Now().UTC()},
		OwnerID:    "u1",
		Title:      "My Goals",
		FileType:   models.FileTypeSpreadsheet,
		FileFormat: models.FileFormatXLSX,
		SizeBytes:  128,
		TemplateID: "savings-tracker",
	}
}

func TestNewPublisher_NoBrokersDisabled(t *testing.T) {
	logger, _ := logtest.NewNullLogger()
	p := NewPublisher(config.KafkaConfig{}, logger)
	assert.Nil(t, p)

	// A nil publisher is callable; nothing happens.
	p.ToolGenerated(context.Background(), eventTool())
	p.ToolDeleted(context.Background(), eventTool())
	p.Close()
}

func TestPublisher_FailureIsLoggedAndCountedNotSurfaced(t *testing.T) {
	logger, hook := logtest.NewNullLogger()
	p := NewPublisher(config.KafkaConfig{
		Brokers:        "127.0.0.1:1",
		GeneratedTopic: "tool.generated",
		DeletedTopic:   "tool.deleted",
	}, logger)
	require.NotNil(t, p)
	defer p.Close()

	before := testutil.ToFloat64(metrics.KafkaMessagesTotal.WithLabelValues("tool-service", "tool.generated", "error"))

	ctx, cancel := context.WithTimeout(context.Background(), 200*time.Millisecond)
	defer cancel()

	// Broker is unreachable; the publish must return without an error
	// reaching the caller.
	p.ToolGenerated(ctx, eventTool())

	entry := hook.LastEntry()
	require.NotNil(t, entry)
	assert.Equal(t, logrus.WarnLevel, entry.Level)
	assert.Equal(t, "tool.generated", entry.Data["topic"])

	after := testutil.ToFloat64(metrics.KafkaMessagesTotal.WithLabelValues("tool-service", "tool.generated", "error"))
	assert.Equal(t, before+1, after)
}
