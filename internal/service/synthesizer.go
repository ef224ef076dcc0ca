package service

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"sintese/internal/config"
	"sintese/internal/detect"
	"sintese/internal/domain"
	"sintese/internal/export"
	"sintese/internal/loader"
	"sintese/internal/port"
	"sintese/internal/provider"
	"sintese/internal/report"
	"sintese/internal/synthesis"
)

// Report artifact names, written into the process folder itself.
const (
	MarkdownFileName = "sintese_processual.md"
	DocxFileName     = "sintese_processual.docx"
	XLSXFileName     = "sintese_processual.xlsx"
	LogFileName      = "Log.txt"
)

// Synthesizer runs the whole pipeline for one process folder: load PDFs,
// pre-extract metadata, query the model per chunk, consolidate, render.
type Synthesizer struct {
	cfg       *config.Config
	loader    *loader.Loader
	completer port.TextCompleter
	mode      domain.Provider
	log       *zap.Logger
}

// Result points at the artifacts a run produced.
type Result struct {
	Report       *domain.Report
	MarkdownPath string
	DocxPath     string
	XLSXPath     string
}

// New creates a Synthesizer. The completer is expected to already carry its
// rate-limit retry wrapping.
func New(cfg *config.Config, ldr *loader.Loader, completer port.TextCompleter, mode domain.Provider, log *zap.Logger) *Synthesizer {
	if log == nil {
		log = zap.NewNop()
	}
	return &Synthesizer{cfg: cfg, loader: ldr, completer: completer, mode: mode, log: log}
}

// Run processes folder and writes the report artifacts next to the PDFs.
// It fails before any model call when the folder has no usable text, and
// fails without writing artifacts when no chunk yields an extraction.
func (s *Synthesizer) Run(ctx context.Context, folder string, writeXLSX bool) (*Result, error) {
	start := time.Now()
	runID := uuid.NewString()
	log := s.log.With(zap.String("run_id", runID), zap.String("folder", folder))

	docs, err := s.loader.Load(folder)
	if err != nil {
		return nil, err
	}

	totalPages := 0
	texts := make([]string, 0, len(docs))
	for _, doc := range docs {
		totalPages += doc.Pages
		texts = append(texts, doc.Text)
	}
	fullText := strings.Join(texts, "\n\n")
	log.Info("documents loaded", zap.Int("documents", len(docs)), zap.Int("pages", totalPages))

	caseData := detect.Extract(fullText)
	log.Info("system detected",
		zap.String("system", string(caseData.System)),
		zap.String("process", caseData.Number),
		zap.Int("docket_events", len(caseData.DocketEvents)))

	chunks := provider.SplitChunks(fullText, s.cfg.Chunk.MaxChars(s.mode))
	log.Info("text chunked", zap.Int("chunks", len(chunks)), zap.String("mode", string(s.mode)))

	extractions := s.extract(ctx, chunks, log)
	if len(extractions) == 0 {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		return nil, fmt.Errorf("%w (mode %s)", domain.ErrNoExtractionResult, s.mode)
	}

	merged := synthesis.Merge(extractions)

	run := domain.RunInfo{
		ID:          runID,
		Provider:    s.mode,
		GeneratedAt: time.Now(),
		Elapsed:     time.Since(start),
		Chunks:      len(chunks),
		Documents:   len(docs),
		TotalPages:  totalPages,
	}
	rep := report.Build(caseData, merged, run)

	result := &Result{
		Report:       rep,
		MarkdownPath: filepath.Join(folder, MarkdownFileName),
		DocxPath:     filepath.Join(folder, DocxFileName),
	}
	if err := report.WriteMarkdown(rep, result.MarkdownPath); err != nil {
		return nil, err
	}
	if err := report.WriteDocx(rep, result.DocxPath); err != nil {
		return nil, err
	}
	if writeXLSX {
		result.XLSXPath = filepath.Join(folder, XLSXFileName)
		if err := export.WriteXLSX(rep, result.XLSXPath); err != nil {
			return nil, err
		}
	}

	log.Info("synthesis finished",
		zap.Duration("elapsed", run.Elapsed),
		zap.Int("extractions", len(extractions)),
		zap.String("markdown", result.MarkdownPath))
	return result, nil
}

// extract queries the model once per chunk. A failed chunk is logged and
// skipped; the remaining chunks still contribute to the report.
func (s *Synthesizer) extract(ctx context.Context, chunks []string, log *zap.Logger) []domain.Extraction {
	var extractions []domain.Extraction
	for i, chunk := range chunks {
		if ctx.Err() != nil {
			break
		}
		log.Info("processing chunk", zap.Int("chunk", i+1), zap.Int("total", len(chunks)))

		answer, err := s.completer.Complete(ctx, provider.BuildExtractionPrompt(chunk))
		if err != nil {
			log.Warn("chunk extraction failed", zap.Int("chunk", i+1), zap.Error(err))
			continue
		}

		ext, err := synthesis.ParseExtraction(answer)
		if err != nil {
			log.Warn("chunk answer unusable", zap.Int("chunk", i+1), zap.Error(err))
			continue
		}
		if ext.Empty() {
			log.Warn("chunk yielded no content", zap.Int("chunk", i+1))
			continue
		}
		extractions = append(extractions, ext)
	}
	return extractions
}
