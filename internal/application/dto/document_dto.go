package dto

import "time"

// CreateDocumentRequest records an uploaded policy file for a project
// subcontractor. The file itself is stored by the upload handler; this
// payload carries its metadata.
type CreateDocumentRequest struct {
	DocumentType   string     `json:"document_type"`
	FileName       string     `json:"file_name"`
	FileURL        string     `json:"file_url"`
	FileSize       int64      `json:"file_size"`
	PolicyNumber   string     `json:"policy_number"`
	EffectiveDate  *time.Time `json:"effective_date"`
	ExpirationDate *time.Time `json:"expiration_date"`
	Notes          string     `json:"notes"`
}

// ReviewDocumentRequest approves or rejects an uploaded document.
type ReviewDocumentRequest struct {
	Approved bool   `json:"approved"`
	Notes    string `json:"notes"`
}

// DocumentResponse public view of an uploaded document.
type DocumentResponse struct {
	ID              string     `json:"id"`
	SubcontractorID string     `json:"subcontractor_id"`
	ProjectID       string     `json:"project_id"`
	DocumentType    string     `json:"document_type"`
	FileName        string     `json:"file_name"`
	FileURL         string     `json:"file_url"`
	FileSize        int64      `json:"file_size,omitempty"`
	PolicyNumber    string     `json:"policy_number,omitempty"`
	EffectiveDate   *time.Time `json:"effective_date,omitempty"`
	ExpirationDate  *time.Time `json:"expiration_date,omitempty"`
	Status          string     `json:"status"`
	ApprovalStatus  string     `json:"approval_status,omitempty"`
	UploadedBy      string     `json:"uploaded_by,omitempty"`
	Notes           string     `json:"notes,omitempty"`
	CreatedAt       time.Time  `json:"created_at"`
	UpdatedAt       time.Time  `json:"updated_at"`
}
