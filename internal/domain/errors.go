package domain

import "errors"

var (
	ErrNoPDFFiles         = errors.New("no PDF files found in folder")
	ErrNoExtractableText  = errors.New("no extractable text in any PDF (OCR may be required)")
	ErrAPIKeyMissing      = errors.New("API key not configured for selected provider")
	ErrUnknownProvider    = errors.New("unknown provider mode")
	ErrEmptyResponse      = errors.New("empty response from provider")
	ErrNoExtractionResult = errors.New("no extraction succeeded for any chunk")
)
