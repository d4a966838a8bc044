package dto

// GenerateRequest is the payload of POST /v1/chapters/:cid/generate.
type GenerateRequest struct {
	Prompt     string `json:"prompt" binding:"required"`
	Strictness string `json:"strictness"`
}

// PreviewRequest is the payload of POST /v1/generate/preview.
type PreviewRequest struct {
	Prompt     string `json:"prompt" binding:"required"`
	StyleID    string `json:"style_id"`
	Strictness string `json:"strictness"`
}

// PreviewResponse carries an ephemeral generation result. Nothing about it
// is persisted server side.
type PreviewResponse struct {
	GeneratedText string `json:"generated_text"`
	Summary       string `json:"summary,omitempty"`
}
