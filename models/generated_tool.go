package models

import (
	"gorm.io/datatypes"
)

// GeneratedTool is one artifact built from a template and owned by one user.
// The record and its blob are created together; StoragePath is internal to
// the service and never serialized to API responses.
type GeneratedTool struct {
	Base
	OwnerID     string         `gorm:"type:varchar(128);not null;index" json:"owner_id"`
	Title       string         `gorm:"not null" json:"title"`
	Description string         `gorm:"type:text" json:"description"`
	FileType    string         `gorm:"type:varchar(32);not null" json:"file_type"`
	FileFormat  string         `gorm:"type:varchar(16);not null" json:"file_format"`
	SizeBytes   int64          `gorm:"not null" json:"size_bytes"`
	DownloadURL string         `gorm:"type:text;not null" json:"download_url"`
	StoragePath string         `gorm:"not null;uniqueIndex" json:"-"`
	TemplateID  string         `gorm:"type:varchar(64);not null;index" json:"template_id"`
	Options     datatypes.JSON `gorm:"type:jsonb" json:"options"`
}

func (GeneratedTool) TableName() string {
	return "generated_tools"
}

// 文件类型常量
const (
	FileTypeSpreadsheet = "spreadsheet"
	FileTypeDocument    = "document"
	FileTypeCalculator  = "calculator" // reserved, no synthesizer emits it yet
)

// 文件格式常量
const (
	FileFormatXLSX = "xlsx"
	FileFormatPDF  = "pdf"
)
