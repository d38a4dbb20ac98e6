package dto

// MetaImageResponse is the link-preview extraction result.
// FallbackUsed is true when no representative image was found in the
// page and the host favicon was substituted.
type MetaImageResponse struct {
	Success      bool    `json:"success"`
	FallbackUsed bool    `json:"fallbackUsed"`
	ImageURL     *string `json:"imageUrl,omitempty"`
}

// PresignedUploadRequest asks for a direct-to-bucket upload URL
type PresignedUploadRequest struct {
	FileName    string `json:"fileName" binding:"required,max=255"`
	ContentType string `json:"contentType" binding:"required,max=100"`
	// Kind is the upload purpose: "avatar" or "timeline"
	Kind string `json:"kind" binding:"required,oneof=avatar timeline"`
}

// PresignedUploadResponse carries the upload URL and the final file URL
type PresignedUploadResponse struct {
	UploadURL string `json:"uploadUrl"`
	FileURL   string `json:"fileUrl"`
}
