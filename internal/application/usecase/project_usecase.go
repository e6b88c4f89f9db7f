package usecase

import (
	"time"

	"github.com/google/uuid"

	"github.com/insuretrack/insuretrack-api/internal/application/dto"
	"github.com/insuretrack/insuretrack-api/internal/domain"
	"github.com/insuretrack/insuretrack-api/internal/domain/entity"
	"github.com/insuretrack/insuretrack-api/internal/domain/repository"
)

// ProjectUseCase business rules for construction projects.
type ProjectUseCase struct {
	repo repository.ProjectRepository
}

// NewProjectUseCase builds the use case with the persistence port.
func NewProjectUseCase(repo repository.ProjectRepository) *ProjectUseCase {
	return &ProjectUseCase{repo: repo}
}

// Create registers a project for a general contractor.
func (uc *ProjectUseCase) Create(in dto.CreateProjectRequest) (*dto.ProjectResponse, error) {
	if in.ProjectName == "" || in.GCID == "" {
		return nil, domain.ErrInvalidInput
	}
	now := time.Now()
	p := &entity.Project{
		ID:                uuid.New().String(),
		ProjectName:       in.ProjectName,
		ProjectNumber:     in.ProjectNumber,
		GCID:              in.GCID,
		OwnerName:         in.OwnerName,
		ProjectType:       in.ProjectType,
		AdditionalInsured: in.AdditionalInsured,
		Location:          in.Location,
		City:              in.City,
		State:             in.State,
		ZipCode:           in.ZipCode,
		Status:            "active",
		StartDate:         in.StartDate,
		EndDate:           in.EndDate,
		Budget:            in.Budget,
		Description:       in.Description,
		CreatedAt:         now,
		UpdatedAt:         now,
	}
	if err := uc.repo.Create(p); err != nil {
		return nil, err
	}
	return toProjectResponse(p), nil
}

// GetByID fetches a project.
func (uc *ProjectUseCase) GetByID(id string) (*dto.ProjectResponse, error) {
	p, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, domain.ErrNotFound
	}
	return toProjectResponse(p), nil
}

// List returns projects. A non-empty gcID scopes the listing to that GC,
// which is how gc-role users see only their own projects.
func (uc *ProjectUseCase) List(gcID string, page dto.PageRequest) ([]*dto.ProjectResponse, error) {
	page.DefaultPage()
	var (
		items []*entity.Project
		err   error
	)
	if gcID != "" {
		items, err = uc.repo.ListByGC(gcID, page.Limit, page.Offset)
	} else {
		items, err = uc.repo.List(page.Limit, page.Offset)
	}
	if err != nil {
		return nil, err
	}
	out := make([]*dto.ProjectResponse, 0, len(items))
	for _, p := range items {
		out = append(out, toProjectResponse(p))
	}
	return out, nil
}

// Update applies editable fields to an existing project.
func (uc *ProjectUseCase) Update(id string, in dto.CreateProjectRequest) (*dto.ProjectResponse, error) {
	p, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, domain.ErrNotFound
	}
	if in.ProjectName != "" {
		p.ProjectName = in.ProjectName
	}
	p.ProjectNumber = in.ProjectNumber
	p.OwnerName = in.OwnerName
	p.ProjectType = in.ProjectType
	p.AdditionalInsured = in.AdditionalInsured
	p.Location = in.Location
	p.City = in.City
	p.State = in.State
	p.ZipCode = in.ZipCode
	p.StartDate = in.StartDate
	p.EndDate = in.EndDate
	p.Budget = in.Budget
	p.Description = in.Description
	p.UpdatedAt = time.Now()
	if err := uc.repo.Update(p); err != nil {
		return nil, err
	}
	return toProjectResponse(p), nil
}

// Delete removes a project.
func (uc *ProjectUseCase) Delete(id string) error {
	p, err := uc.repo.GetByID(id)
	if err != nil {
		return err
	}
	if p == nil {
		return domain.ErrNotFound
	}
	return uc.repo.Delete(id)
}

func toProjectResponse(p *entity.Project) *dto.ProjectResponse {
	if p == nil {
		return nil
	}
	return &dto.ProjectResponse{
		ID:                p.ID,
		ProjectName:       p.ProjectName,
		ProjectNumber:     p.ProjectNumber,
		GCID:              p.GCID,
		OwnerName:         p.OwnerName,
		ProjectType:       p.ProjectType,
		AdditionalInsured: p.AdditionalInsured,
		Location:          p.Location,
		City:              p.City,
		State:             p.State,
		ZipCode:           p.ZipCode,
		Status:            p.Status,
		StartDate:         p.StartDate,
		EndDate:           p.EndDate,
		Budget:            p.Budget,
		Description:       p.Description,
		CreatedAt:         p.CreatedAt,
		UpdatedAt:         p.UpdatedAt,
	}
}
