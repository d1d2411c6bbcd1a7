package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/moneygate/tool-service/events"
	"github.com/moneygate/tool-service/generator"
	"github.com/moneygate/tool-service/metrics"
	"github.com/moneygate/tool-service/models"
	"github.com/moneygate/tool-service/repository"
	"github.com/moneygate/tool-service/storage"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

type ToolService interface {
	GenerateSpreadsheet(ctx context.Context, ownerID string, opts generator.SpreadsheetOptions) (*models.GeneratedTool, error)
	GenerateDocument(ctx context.Context, ownerID string, opts generator.DocumentOptions) (*models.GeneratedTool, error)
	ListTools(ctx context.Context, ownerID string) ([]*models.GeneratedTool, error)
	GetTool(ctx context.Context, ownerID, toolID string) (*models.GeneratedTool, error)
	DeleteTool(ctx context.Context, ownerID, toolID string) error
	// SessionTools returns the in-memory mirror of the owner's list
	// without touching the repository.
	SessionTools(ownerID string) []*models.GeneratedTool
}

type ToolServiceImpl struct {
	repo    repository.ToolRepository
	store   storage.ArtifactStore
	events  *events.Publisher
	session *sessionCache
	logger  *logrus.Logger
}

func NewToolService(repo repository.ToolRepository, store storage.ArtifactStore, pub *events.Publisher, logger *logrus.Logger) ToolService {
	return &ToolServiceImpl{
		repo:    repo,
		store:   store,
		events:  pub,
		session: newSessionCache(),
		logger:  logger,
	}
}

func (s *ToolServiceImpl) GenerateSpreadsheet(ctx context.Context, ownerID string, opts generator.SpreadsheetOptions) (*models.GeneratedTool, error) {
	wb, err := generator.BuildSpreadsheet(opts)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrSynthesis, err)
	}
	data, err := generator.EncodeXLSX(wb)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrSynthesis, err)
	}
	return s.persistTool(ctx, ownerID, models.FileTypeSpreadsheet, models.FileFormatXLSX, opts.Title, opts.Description, opts.TemplateID, opts, data)
}

func (s *ToolServiceImpl) GenerateDocument(ctx context.Context, ownerID string, opts generator.DocumentOptions) (*models.GeneratedTool, error) {
	doc, err := generator.BuildDocument(opts)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrSynthesis, err)
	}
	data, err := generator.EncodePDF(doc)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrSynthesis, err)
	}
	return s.persistTool(ctx, ownerID, models.FileTypeDocument, models.FileFormatPDF, opts.Title, opts.Description, opts.TemplateID, opts, data)
}

// persistTool is the shared tail of both generate flows: upload the bytes,
// then write the record. A record write failure after a successful upload
// leaves the blob orphaned; that is the accepted failure mode, there is no
// rollback.
func (s *ToolServiceImpl) persistTool(ctx context.Context, ownerID, fileType, format, title, description, templateID string, opts any, data []byte) (*models.GeneratedTool, error) {
	toolID := uuid.New()

	storagePath, downloadURL, err := s.store.Persist(ctx, ownerID, toolID.String(), data, format)
	if err != nil {
		metrics.ToolsGenerated.WithLabelValues(templateID, format, "error").Inc()
		return nil, fmt.Errorf("%w: %w", ErrUpload, err)
	}

	snapshot, err := json.Marshal(opts)
	if err != nil {
		return nil, fmt.Errorf("%w: marshal options snapshot: %w", ErrMetadataWrite, err)
	}

	tool := &models.GeneratedTool{
		Base:        models.Base{ID: toolID},
		OwnerID:     ownerID,
		Title:       title,
		Description: description,
		FileType:    fileType,
		FileFormat:  format,
		SizeBytes:   int64(len(data)),
		DownloadURL: downloadURL,
		StoragePath: storagePath,
		TemplateID:  templateID,
		Options:     snapshot,
	}

	if err := s.repo.Create(tool); err != nil {
		metrics.ToolsGenerated.WithLabelValues(templateID, format, "error").Inc()
		s.logger.WithFields(logrus.Fields{
			"owner_id":     ownerID,
			"storage_path": storagePath,
		}).Error("metadata write failed, blob orphaned")
		return nil, fmt.Errorf("%w: %w", ErrMetadataWrite, err)
	}

	s.session.add(tool)
	s.events.ToolGenerated(ctx, tool)
	metrics.ToolsGenerated.WithLabelValues(templateID, format, "ok").Inc()
	metrics.ArtifactBytes.WithLabelValues(format).Observe(float64(len(data)))

	return tool, nil
}

func (s *ToolServiceImpl) ListTools(ctx context.Context, ownerID string) ([]*models.GeneratedTool, error) {
	tools, err := s.repo.ListByOwner(ownerID)
	if err != nil {
		return nil, fmt.Errorf("failed to list tools: %w", err)
	}
	s.session.replaceAll(ownerID, tools)
	return tools, nil
}

func (s *ToolServiceImpl) GetTool(ctx context.Context, ownerID, toolID string) (*models.GeneratedTool, error) {
	id, err := uuid.Parse(toolID)
	if err != nil {
		return nil, ErrNotFound
	}
	tool, err := s.repo.GetByOwnerAndID(ownerID, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get tool: %w", err)
	}
	return tool, nil
}

func (s *ToolServiceImpl) DeleteTool(ctx context.Context, ownerID, toolID string) error {
	tool, err := s.GetTool(ctx, ownerID, toolID)
	if err != nil {
		return err
	}

	// Blob removal is best effort: a failure here still lets the record
	// go away, the object store just keeps a stray file.
	if err := s.store.Delete(ctx, tool.StoragePath); err != nil {
		s.logger.WithError(err).WithField("storage_path", tool.StoragePath).Warn("blob removal failed")
	}

	if err := s.repo.DeleteByOwnerAndID(ownerID, tool.ID); err != nil {
		return fmt.Errorf("%w: %w", ErrDelete, err)
	}

	s.session.remove(ownerID, toolID)
	s.events.ToolDeleted(ctx, tool)
	metrics.ToolsDeleted.Inc()

	return nil
}

func (s *ToolServiceImpl) SessionTools(ownerID string) []*models.GeneratedTool {
	return s.session.snapshot(ownerID)
}
