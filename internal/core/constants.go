package core

// Request validation limits.
const (
	MaxWordCount  = 10
	MaxTextLength = 500
	MinBatchTexts = 1
	MaxBatchTexts = 100
)

// Decoding parameters for the inference runtime. Fixed, not user-configurable,
// so translation output stays reproducible for identical input.
const (
	MaxTokenLength = 512
	NumBeams       = 4
	EarlyStopping  = true
)

// HTTP protocol constants.
const (
	HeaderContentType = "Content-Type"
	HeaderRequestID   = "X-Request-ID"
	ContentTypeJSON   = "application/json"
)

// Inference runtime endpoints.
const (
	RuntimeLoadPath     = "/models/load"
	RuntimeGeneratePath = "/generate"
)
