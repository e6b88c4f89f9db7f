package usecase

import (
	"time"

	"github.com/google/uuid"

	"github.com/insuretrack/insuretrack-api/internal/application/dto"
	"github.com/insuretrack/insuretrack-api/internal/domain"
	"github.com/insuretrack/insuretrack-api/internal/domain/entity"
	"github.com/insuretrack/insuretrack-api/internal/domain/repository"
)

// DocumentUseCase business rules for uploaded insurance documents. Approving
// a hold-harmless clears the pending_hold_harmless compliance gate.
type DocumentUseCase struct {
	repo    repository.InsuranceDocumentRepository
	subRepo repository.ProjectSubcontractorRepository
}

// NewDocumentUseCase builds the use case with its ports.
func NewDocumentUseCase(repo repository.InsuranceDocumentRepository, subRepo repository.ProjectSubcontractorRepository) *DocumentUseCase {
	return &DocumentUseCase{repo: repo, subRepo: subRepo}
}

// Create records an uploaded document for a project subcontractor.
func (uc *DocumentUseCase) Create(subID, uploadedBy string, in dto.CreateDocumentRequest) (*dto.DocumentResponse, error) {
	if in.FileName == "" || in.DocumentType == "" {
		return nil, domain.ErrInvalidInput
	}
	sub, err := uc.subRepo.GetByID(subID)
	if err != nil {
		return nil, err
	}
	if sub == nil {
		return nil, domain.ErrNotFound
	}
	now := time.Now()
	d := &entity.InsuranceDocument{
		ID:              uuid.New().String(),
		SubcontractorID: sub.ID,
		ProjectID:       sub.ProjectID,
		DocumentType:    in.DocumentType,
		FileName:        in.FileName,
		FileURL:         in.FileURL,
		FileSize:        in.FileSize,
		PolicyNumber:    in.PolicyNumber,
		EffectiveDate:   in.EffectiveDate,
		ExpirationDate:  in.ExpirationDate,
		Status:          "pending",
		UploadedBy:      uploadedBy,
		Notes:           in.Notes,
		CreatedAt:       now,
		UpdatedAt:       now,
	}
	if err := uc.repo.Create(d); err != nil {
		return nil, err
	}
	return toDocumentResponse(d), nil
}

// GetByID fetches one document record.
func (uc *DocumentUseCase) GetByID(id string) (*dto.DocumentResponse, error) {
	d, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if d == nil {
		return nil, domain.ErrNotFound
	}
	return toDocumentResponse(d), nil
}

// ListBySubcontractor returns the documents on file for an assignment.
func (uc *DocumentUseCase) ListBySubcontractor(subID string, page dto.PageRequest) ([]*dto.DocumentResponse, error) {
	page.DefaultPage()
	items, err := uc.repo.ListBySubcontractor(subID, page.Limit, page.Offset)
	if err != nil {
		return nil, err
	}
	out := make([]*dto.DocumentResponse, 0, len(items))
	for _, d := range items {
		out = append(out, toDocumentResponse(d))
	}
	return out, nil
}

// Review approves or rejects a pending document. An approved hold-harmless
// moves the assignment out of pending_hold_harmless.
func (uc *DocumentUseCase) Review(id string, in dto.ReviewDocumentRequest) (*dto.DocumentResponse, error) {
	d, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if d == nil {
		return nil, domain.ErrNotFound
	}
	if in.Approved {
		d.Status = "approved"
		d.ApprovalStatus = "approved"
	} else {
		d.Status = "rejected"
		d.ApprovalStatus = "rejected"
	}
	if in.Notes != "" {
		d.Notes = in.Notes
	}
	d.UpdatedAt = time.Now()
	if err := uc.repo.Update(d); err != nil {
		return nil, err
	}
	if in.Approved && d.DocumentType == "hold_harmless" {
		sub, err := uc.subRepo.GetByID(d.SubcontractorID)
		if err == nil && sub != nil && sub.ComplianceStatus == entity.ComplianceStatusPendingHoldHarmless {
			_ = uc.subRepo.UpdateComplianceStatus(sub.ID, entity.ComplianceStatusPendingBroker)
		}
	}
	return toDocumentResponse(d), nil
}

// Delete removes a document record.
func (uc *DocumentUseCase) Delete(id string) error {
	d, err := uc.repo.GetByID(id)
	if err != nil {
		return err
	}
	if d == nil {
		return domain.ErrNotFound
	}
	return uc.repo.Delete(id)
}

func toDocumentResponse(d *entity.InsuranceDocument) *dto.DocumentResponse {
	if d == nil {
		return nil
	}
	return &dto.DocumentResponse{
		ID:              d.ID,
		SubcontractorID: d.SubcontractorID,
		ProjectID:       d.ProjectID,
		DocumentType:    d.DocumentType,
		FileName:        d.FileName,
		FileURL:         d.FileURL,
		FileSize:        d.FileSize,
		PolicyNumber:    d.PolicyNumber,
		EffectiveDate:   d.EffectiveDate,
		ExpirationDate:  d.ExpirationDate,
		Status:          d.Status,
		ApprovalStatus:  d.ApprovalStatus,
		UploadedBy:      d.UploadedBy,
		Notes:           d.Notes,
		CreatedAt:       d.CreatedAt,
		UpdatedAt:       d.UpdatedAt,
	}
}
