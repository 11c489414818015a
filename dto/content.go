// Package dto defines the OpenRouter wire payloads and error types.
package dto

// Content part types for multimodal messages.
const (
	ContentTypeText     = "text"
	ContentTypeImageURL = "image_url"
	ContentTypeFile     = "file"
)

// ContentPart is one element of a multimodal message content sequence.
type ContentPart struct {
	Type     string    `json:"type"`
	Text     string    `json:"text,omitempty"`
	ImageURL *ImageURL `json:"image_url,omitempty"`
	File     *FileData `json:"file,omitempty"`
}

// ImageURL references an image by URL or data URI.
type ImageURL struct {
	URL    string `json:"url"`
	Detail string `json:"detail,omitempty"` // auto, low, high
}

// FileData carries an inline document (e.g., a base64 data URI for a PDF).
type FileData struct {
	Filename string `json:"filename"`
	FileData string `json:"file_data"`
}

// TextPart creates a text content part.
func TextPart(text string) ContentPart {
	return ContentPart{Type: ContentTypeText, Text: text}
}

// ImagePart creates an image content part from a URL or data URI.
func ImagePart(url string) ContentPart {
	return ContentPart{Type: ContentTypeImageURL, ImageURL: &ImageURL{URL: url}}
}

// ImagePartWithDetail creates an image content part with an explicit detail level.
func ImagePartWithDetail(url, detail string) ContentPart {
	return ContentPart{Type: ContentTypeImageURL, ImageURL: &ImageURL{URL: url, Detail: detail}}
}

// FilePart creates a document content part.
func FilePart(filename, fileData string) ContentPart {
	return ContentPart{Type: ContentTypeFile, File: &FileData{Filename: filename, FileData: fileData}}
}
