package usecase

import (
	"time"

	"github.com/google/uuid"

	"github.com/insuretrack/insuretrack-api/internal/application/dto"
	"github.com/insuretrack/insuretrack-api/internal/domain"
	"github.com/insuretrack/insuretrack-api/internal/domain/entity"
	"github.com/insuretrack/insuretrack-api/internal/domain/repository"
)

// ProjectSubcontractorUseCase business rules for project assignments.
type ProjectSubcontractorUseCase struct {
	repo     repository.ProjectSubcontractorRepository
	projRepo repository.ProjectRepository
}

// NewProjectSubcontractorUseCase builds the use case with its ports.
func NewProjectSubcontractorUseCase(repo repository.ProjectSubcontractorRepository, projRepo repository.ProjectRepository) *ProjectSubcontractorUseCase {
	return &ProjectSubcontractorUseCase{repo: repo, projRepo: projRepo}
}

// Assign attaches a subcontractor to a project. The assignment starts with
// compliance pending until a broker submits documents and a check runs.
func (uc *ProjectSubcontractorUseCase) Assign(projectID string, in dto.AssignSubcontractorRequest) (*dto.ProjectSubcontractorResponse, error) {
	if in.CompanyName == "" || len(in.Trades) == 0 {
		return nil, domain.ErrInvalidInput
	}
	project, err := uc.projRepo.GetByID(projectID)
	if err != nil {
		return nil, err
	}
	if project == nil {
		return nil, domain.ErrNotFound
	}
	now := time.Now()
	ps := &entity.ProjectSubcontractor{
		ID:               uuid.New().String(),
		ProjectID:        projectID,
		SubcontractorID:  in.SubcontractorID,
		CompanyName:      in.CompanyName,
		ContactName:      in.ContactName,
		Email:            in.Email,
		Phone:            in.Phone,
		BrokerID:         in.BrokerID,
		Trades:           in.Trades,
		Status:           "pending",
		ComplianceStatus: entity.ComplianceStatusPendingBroker,
		Notes:            in.Notes,
		CreatedAt:        now,
		UpdatedAt:        now,
	}
	if err := uc.repo.Create(ps); err != nil {
		return nil, err
	}
	return toProjectSubResponse(ps), nil
}

// GetByID fetches one assignment.
func (uc *ProjectSubcontractorUseCase) GetByID(id string) (*dto.ProjectSubcontractorResponse, error) {
	ps, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if ps == nil {
		return nil, domain.ErrNotFound
	}
	return toProjectSubResponse(ps), nil
}

// ListByProject returns the subcontractors attached to a project.
func (uc *ProjectSubcontractorUseCase) ListByProject(projectID string, page dto.PageRequest) ([]*dto.ProjectSubcontractorResponse, error) {
	page.DefaultPage()
	items, err := uc.repo.ListByProject(projectID, page.Limit, page.Offset)
	if err != nil {
		return nil, err
	}
	out := make([]*dto.ProjectSubcontractorResponse, 0, len(items))
	for _, ps := range items {
		out = append(out, toProjectSubResponse(ps))
	}
	return out, nil
}

// Update applies editable fields to an assignment. Changing the trade list
// invalidates any prior check, so compliance falls back to pending.
func (uc *ProjectSubcontractorUseCase) Update(id string, in dto.AssignSubcontractorRequest) (*dto.ProjectSubcontractorResponse, error) {
	ps, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if ps == nil {
		return nil, domain.ErrNotFound
	}
	if in.CompanyName != "" {
		ps.CompanyName = in.CompanyName
	}
	ps.ContactName = in.ContactName
	ps.Email = in.Email
	ps.Phone = in.Phone
	ps.BrokerID = in.BrokerID
	if len(in.Trades) > 0 && !sameTrades(ps.Trades, in.Trades) {
		ps.Trades = in.Trades
		ps.ComplianceStatus = entity.ComplianceStatusPendingBroker
	}
	ps.Notes = in.Notes
	ps.UpdatedAt = time.Now()
	if err := uc.repo.Update(ps); err != nil {
		return nil, err
	}
	return toProjectSubResponse(ps), nil
}

// Remove detaches a subcontractor from its project.
func (uc *ProjectSubcontractorUseCase) Remove(id string) error {
	ps, err := uc.repo.GetByID(id)
	if err != nil {
		return err
	}
	if ps == nil {
		return domain.ErrNotFound
	}
	return uc.repo.Delete(id)
}

func sameTrades(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func toProjectSubResponse(ps *entity.ProjectSubcontractor) *dto.ProjectSubcontractorResponse {
	if ps == nil {
		return nil
	}
	return &dto.ProjectSubcontractorResponse{
		ID:               ps.ID,
		ProjectID:        ps.ProjectID,
		SubcontractorID:  ps.SubcontractorID,
		CompanyName:      ps.CompanyName,
		ContactName:      ps.ContactName,
		Email:            ps.Email,
		Phone:            ps.Phone,
		BrokerID:         ps.BrokerID,
		Trades:           ps.Trades,
		Status:           ps.Status,
		ComplianceStatus: ps.ComplianceStatus,
		Notes:            ps.Notes,
		CreatedAt:        ps.CreatedAt,
		UpdatedAt:        ps.UpdatedAt,
	}
}
