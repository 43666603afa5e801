package services

import "context"

// ChunkFunc receives one incremental piece of a streamed summary.
type ChunkFunc func(chunk string) error

// Summarizer is the boundary to the external generative-AI endpoint. It
// performs no retries; endpoint failures surface as SummarizeError and
// retrying, if wanted, is the caller's business.
type Summarizer interface {
	// SummarizeText summarizes extracted document text. The optional
	// custom instruction is appended to the fixed base instruction.
	SummarizeText(ctx context.Context, text, custom string) (string, error)

	// SummarizeTextStream is SummarizeText with incremental delivery.
	SummarizeTextStream(ctx context.Context, text, custom string, fn ChunkFunc) error

	// SummarizeAudio summarizes a raw audio recording.
	SummarizeAudio(ctx context.Context, data []byte, mimeType string) (string, error)

	// SummarizeAudioStream is SummarizeAudio with incremental delivery.
	SummarizeAudioStream(ctx context.Context, data []byte, mimeType string, fn ChunkFunc) error
}

// TextExtractor converts document bytes into plain text based on the
// declared MIME type. Unknown types fall back to a raw UTF-8 decode.
type TextExtractor interface {
	Extract(data []byte, mimeType string) (string, error)
}
