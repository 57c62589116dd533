package services

import (
	"context"
	"errors"
	"fmt"
	"mime/multipart"

	"go.uber.org/zap"

	"github.com/Anishkumar-1804/resume-analyzer/internal/models"
)

// The two user-visible failure kinds. Extraction failures abort the
// interaction before the remote call; analysis failures come from the remote
// call itself. Neither is retried and no partial result is returned.
var (
	ErrExtraction = errors.New("extraction failed")
	ErrAnalysis   = errors.New("analysis failed")
)

type AnalyzerService interface {
	Analyze(ctx context.Context, file *multipart.FileHeader, settings models.AnalysisSettings) (*models.AnalysisReport, error)
}

type analyzerService struct {
	storage   StorageService
	detector  FileTypeDetector
	extractor ExtractorService
	prompts   *PromptBuilder
	gemini    GeminiService
	log       *zap.SugaredLogger
}

func NewAnalyzerService(
	storage StorageService,
	detector FileTypeDetector,
	extractor ExtractorService,
	prompts *PromptBuilder,
	gemini GeminiService,
	log *zap.SugaredLogger,
) AnalyzerService {
	return &analyzerService{
		storage:   storage,
		detector:  detector,
		extractor: extractor,
		prompts:   prompts,
		gemini:    gemini,
		log:       log,
	}
}

// Analyze runs the whole pipeline for one interaction: persist the upload to
// a temp path, sniff its type, extract content, compose the prompt and make
// the single blocking model call. The temp file is deleted when the
// interaction ends, whatever the outcome.
func (a *analyzerService) Analyze(ctx context.Context, file *multipart.FileHeader, settings models.AnalysisSettings) (*models.AnalysisReport, error) {
	filename, filePath, err := a.storage.SaveUpload(file)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrExtraction, err)
	}
	defer func() {
		if err := a.storage.DeleteFile(filename); err != nil {
			a.log.Warnw("failed to remove temp file", "file", filename, "error", err)
		}
	}()

	fileType := a.detector.DetectType(filePath, file.Filename)
	a.log.Infow("processing upload", "file", file.Filename, "type", fileType)

	content, err := a.extractor.Extract(filePath, fileType)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrExtraction, err)
	}

	prompt := a.prompts.BuildResumeAnalysisPrompt(settings.JobDescription)

	var analysis string
	switch content.Kind {
	case ContentImage:
		analysis, err = a.gemini.AnalyzeImage(ctx, prompt, content.ImageData, content.ImageMIME)
	default:
		analysis, err = a.gemini.AnalyzeText(ctx, prompt, content.Text)
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrAnalysis, err)
	}

	return &models.AnalysisReport{
		FileName:     file.Filename,
		DetectedType: fileType,
		Analysis:     analysis,
	}, nil
}
