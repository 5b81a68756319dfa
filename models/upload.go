package models

type UploadedImage struct {
	URL         string `json:"url"`
	PublicID    string `json:"public_id,omitempty"`
	Filename    string `json:"filename"`
	ContentType string `json:"content_type"`
	Size        int    `json:"size"`
}
