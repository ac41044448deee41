package domain

import "github.com/samber/lo"

// Descriptor is the normalized view of one attachment of an inbound message
type Descriptor struct {
	Kind     MediaKind `json:"kind"`
	SourceID string    `json:"source_id"`
	FileName string    `json:"file_name,omitempty"`
	MimeType string    `json:"mime_type,omitempty"`
}

// Attachment is what the publishing platform returns for an uploaded file
type Attachment struct {
	ID        int64  `json:"id"`
	SourceURL string `json:"source_url,omitempty"`
}

// UploadedMedia pairs a descriptor with the attachment created for it
type UploadedMedia struct {
	Descriptor Descriptor
	Attachment Attachment
}

// Result is the final state of one descriptor after the pipeline ran
type Result struct {
	Descriptor  Descriptor
	State       ItemState
	FileName    string
	ContentType string
	Attachment  *Attachment
	Err         error
}

// Report collects the per-item results of one pipeline run in input order
type Report struct {
	Results []Result
}

// Uploaded returns the successfully uploaded items in pipeline order.
func (r *Report) Uploaded() []UploadedMedia {
	return lo.FilterMap(r.Results, func(res Result, _ int) (UploadedMedia, bool) {
		if res.State != ItemStateUploaded || res.Attachment == nil {
			return UploadedMedia{}, false
		}
		return UploadedMedia{Descriptor: res.Descriptor, Attachment: *res.Attachment}, true
	})
}

// AttachmentIDs returns the ids of the uploaded items in pipeline order.
func (r *Report) AttachmentIDs() []int64 {
	return lo.Map(r.Uploaded(), func(u UploadedMedia, _ int) int64 {
		return u.Attachment.ID
	})
}
