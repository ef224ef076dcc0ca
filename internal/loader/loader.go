package loader

import (
	"crypto/md5"
	"encoding/hex"
	"fmt"
	"io/fs"
	"path/filepath"
	"sort"
	"strings"

	"go.uber.org/zap"

	"sintese/internal/domain"
)

// PriorityFolder is the subfolder whose PDFs are treated as priority pieces.
const PriorityFolder = "importantes"

// priorityPrefixes mark a PDF as priority by filename alone.
var priorityPrefixes = []string{"IMPORTANTE_", "PRINCIPAL_", "DESTAQUE_"}

// TextExtractor pulls the plain text out of one PDF file. The production
// implementation is PDFExtractor; tests substitute a fake.
type TextExtractor interface {
	Extract(path string) (text string, pages int, err error)
}

// Loader collects the PDFs of a process folder into ProcessDocuments,
// dropping duplicates and unreadable scans.
type Loader struct {
	extractor TextExtractor
	log       *zap.Logger
}

// New creates a Loader backed by the real PDF extractor.
func New(log *zap.Logger) *Loader {
	return NewWithExtractor(&PDFExtractor{}, log)
}

// NewWithExtractor creates a Loader with a custom extractor (for testing).
func NewWithExtractor(extractor TextExtractor, log *zap.Logger) *Loader {
	if log == nil {
		log = zap.NewNop()
	}
	return &Loader{extractor: extractor, log: log}
}

// Load reads every PDF under folder, subfolders included. Documents whose
// first 10k characters hash the same are considered duplicate scans and only
// one copy is kept, with the priority copy winning. The result is ordered
// priority pieces first, then by filename; it never contains a document
// without extractable text.
func (l *Loader) Load(folder string) ([]domain.ProcessDocument, error) {
	paths, err := listPDFs(folder)
	if err != nil {
		return nil, err
	}
	if len(paths) == 0 {
		return nil, fmt.Errorf("%w: %s", domain.ErrNoPDFFiles, folder)
	}

	var docs []domain.ProcessDocument
	for _, path := range paths {
		text, pages, err := l.extractor.Extract(path)
		if err != nil {
			l.log.Warn("skipping unreadable PDF", zap.String("file", filepath.Base(path)), zap.Error(err))
			continue
		}
		if strings.TrimSpace(text) == "" {
			l.log.Warn("PDF has no extractable text, skipping", zap.String("file", filepath.Base(path)))
			continue
		}
		docs = append(docs, domain.ProcessDocument{
			Name:     filepath.Base(path),
			Text:     text,
			Pages:    pages,
			Priority: isPriority(folder, path),
			Hash:     contentHash(text),
		})
	}

	if len(docs) == 0 {
		return nil, fmt.Errorf("%w: %s", domain.ErrNoExtractableText, folder)
	}

	docs = dedupe(docs, l.log)

	sort.SliceStable(docs, func(i, j int) bool {
		if docs[i].Priority != docs[j].Priority {
			return docs[i].Priority
		}
		return docs[i].Name < docs[j].Name
	})
	return docs, nil
}

// listPDFs walks folder recursively and returns every .pdf path found.
func listPDFs(folder string) ([]string, error) {
	var paths []string
	err := filepath.WalkDir(folder, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || !strings.EqualFold(filepath.Ext(d.Name()), ".pdf") {
			return nil
		}
		paths = append(paths, path)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("walking folder %s: %w", folder, err)
	}
	return paths, nil
}

// isPriority reports whether the PDF sits below an "importantes" directory
// (any level, any casing) or carries a priority filename prefix.
func isPriority(folder, path string) bool {
	if rel, err := filepath.Rel(folder, filepath.Dir(path)); err == nil && rel != "." {
		for _, part := range strings.Split(rel, string(filepath.Separator)) {
			if strings.EqualFold(part, PriorityFolder) {
				return true
			}
		}
	}
	upper := strings.ToUpper(filepath.Base(path))
	for _, prefix := range priorityPrefixes {
		if strings.HasPrefix(upper, prefix) {
			return true
		}
	}
	return false
}

// contentHash is the md5 of the first 10k characters, enough to spot the
// same piece scanned twice without hashing hundred-page texts.
func contentHash(text string) string {
	if len(text) > 10000 {
		text = text[:10000]
	}
	sum := md5.Sum([]byte(text))
	return hex.EncodeToString(sum[:])
}

// dedupe drops documents whose hash was already seen. A later priority copy
// replaces a non-priority one so the priority flag survives.
func dedupe(docs []domain.ProcessDocument, log *zap.Logger) []domain.ProcessDocument {
	byHash := map[string]int{}
	var out []domain.ProcessDocument
	for _, doc := range docs {
		if idx, seen := byHash[doc.Hash]; seen {
			if doc.Priority && !out[idx].Priority {
				log.Info("duplicate content, keeping priority copy",
					zap.String("kept", doc.Name), zap.String("dropped", out[idx].Name))
				out[idx] = doc
			} else {
				log.Info("duplicate content, skipping", zap.String("file", doc.Name))
			}
			continue
		}
		byHash[doc.Hash] = len(out)
		out = append(out, doc)
	}
	return out
}
