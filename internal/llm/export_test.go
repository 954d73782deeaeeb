package llm

var (
	GeminiSchema     = geminiSchema
	Unfence          = unfence
	ValidateResponse = validateResponse
	FinishResponse   = finishResponse
)
