package models

import "time"

type DocumentCategory string

const (
	DocumentCategoryIdentity  DocumentCategory = "Identity"
	DocumentCategoryEducation DocumentCategory = "Education"
	DocumentCategoryMedical   DocumentCategory = "Medical"
	DocumentCategoryFinance   DocumentCategory = "Finance"
	DocumentCategoryWork      DocumentCategory = "Work"
	DocumentCategoryPersonal  DocumentCategory = "Personal"
)

// Document is a stored file plus its metadata. StorageID is the object key
// in object storage; the record exists only while the object does.
type Document struct {
	ID         string           `json:"_id"`
	UserID     string           `json:"userId"`
	Title      string           `json:"title"`
	Category   DocumentCategory `json:"category"`
	FileURL    string           `json:"fileUrl"`
	FileType   string           `json:"fileType"`
	StorageID  string           `json:"storageId"`
	Thumbnail  string           `json:"thumbnail,omitempty"`
	Tags       []string         `json:"tags"`
	Notes      string           `json:"notes,omitempty"`
	UploadDate time.Time        `json:"uploadDate"`
}
