package printing

import (
	"context"
	"fmt"
	"time"

	"github.com/studiosnap/backend/internal/application/report"
	"github.com/studiosnap/backend/internal/domain/shared"
	infra "github.com/studiosnap/backend/internal/infrastructure/printing"
	"go.uber.org/zap"
)

// ReportDocumentService turns finance report payloads into PDF documents.
type ReportDocumentService struct {
	renderer infra.PDFRenderer
	logger   *zap.Logger
}

// NewReportDocumentService creates a new ReportDocumentService
func NewReportDocumentService(renderer infra.PDFRenderer, logger *zap.Logger) *ReportDocumentService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ReportDocumentService{
		renderer: renderer,
		logger:   logger,
	}
}

// ReportDocument is a generated PDF with its suggested download name.
type ReportDocument struct {
	PDFData   []byte
	FileName  string
	PageCount int
}

// GeneratePDF renders the report payload to an A4 portrait PDF.
func (s *ReportDocumentService) GeneratePDF(ctx context.Context, payload *report.ReportPayload) (*ReportDocument, error) {
	if payload == nil {
		return nil, shared.NewDomainError("INVALID_INPUT", "Report payload is required")
	}

	html, err := RenderReportHTML(payload)
	if err != nil {
		return nil, fmt.Errorf("failed to render report template: %w", err)
	}

	result, err := s.renderer.Render(ctx, &infra.RenderRequest{
		HTML:        html,
		PaperSize:   infra.PaperSizeA4,
		Orientation: infra.OrientationPortrait,
		Margins:     infra.DefaultMargins(),
		Title:       payload.StudioName + " Finance Report",
	})
	if err != nil {
		return nil, fmt.Errorf("failed to render report PDF: %w", err)
	}

	s.logger.Info("finance report PDF generated",
		zap.String("range", payload.RangeLabel),
		zap.Int("pages", result.PageCount),
		zap.Int("bytes", len(result.PDFData)))

	return &ReportDocument{
		PDFData:   result.PDFData,
		FileName:  fmt.Sprintf("finance-report-%s.pdf", time.Now().Format("20060102-150405")),
		PageCount: result.PageCount,
	}, nil
}
