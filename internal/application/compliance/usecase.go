package compliance

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/insuretrack/insuretrack-api/internal/application/dto"
	"github.com/insuretrack/insuretrack-api/internal/application/ports"
	"github.com/insuretrack/insuretrack-api/internal/domain"
	engine "github.com/insuretrack/insuretrack-api/internal/domain/compliance"
	"github.com/insuretrack/insuretrack-api/internal/domain/entity"
	"github.com/insuretrack/insuretrack-api/internal/domain/repository"
	"github.com/insuretrack/insuretrack-api/pkg/logger"
)

// CheckUseCase runs the compliance engine for one project subcontractor,
// persists the result and keeps the assignment's compliance status current.
type CheckUseCase struct {
	subRepo    repository.ProjectSubcontractorRepository
	projRepo   repository.ProjectRepository
	brokerRepo repository.BrokerRepository
	checkRepo  repository.ComplianceCheckRepository
	coiRepo    repository.GeneratedCOIRepository
	mailer     ports.EmailSender
	log        *logger.Logger
}

// NewCheckUseCase builds the use case with its ports.
func NewCheckUseCase(
	subRepo repository.ProjectSubcontractorRepository,
	projRepo repository.ProjectRepository,
	brokerRepo repository.BrokerRepository,
	checkRepo repository.ComplianceCheckRepository,
	coiRepo repository.GeneratedCOIRepository,
	mailer ports.EmailSender,
	log *logger.Logger,
) *CheckUseCase {
	return &CheckUseCase{
		subRepo:    subRepo,
		projRepo:   projRepo,
		brokerRepo: brokerRepo,
		checkRepo:  checkRepo,
		coiRepo:    coiRepo,
		mailer:     mailer,
		log:        log,
	}
}

// RunCheck evaluates a certificate against the requirements resolved for the
// subcontractor's project and trades. The request may carry an inline
// certificate snapshot; when it does not, the latest certificate on file is
// evaluated instead. Three passes run: the field checks, the free-text trade
// coverage scan, and the per-trade limit floors. The derived status is
// persisted on the assignment; non-compliant results with a broker on file
// trigger a notification mail.
func (uc *CheckUseCase) RunCheck(subID string, in dto.CheckComplianceRequest, checkedBy string) (*dto.ComplianceCheckResponse, error) {
	sub, err := uc.subRepo.GetByID(subID)
	if err != nil {
		return nil, err
	}
	if sub == nil {
		return nil, domain.ErrNotFound
	}
	project, err := uc.projRepo.GetByID(sub.ProjectID)
	if err != nil {
		return nil, err
	}
	if project == nil {
		return nil, domain.ErrNotFound
	}
	coi, err := uc.certificateToCheck(sub.ID, in)
	if err != nil {
		return nil, err
	}

	projectCtx := engine.ProjectContext{
		ProjectType:       project.ProjectType,
		AdditionalInsured: project.AdditionalInsured,
	}
	requirements := engine.ValidateCOICompliance(coi, projectCtx, sub.Trades)
	tradeCoverage := engine.ValidatePolicyTradeCoverage(coi, sub.Trades)
	var restrictions []engine.Issue
	for _, trade := range sub.Trades {
		restrictions = append(restrictions, engine.ValidateTradeRestrictions(coi, trade)...)
	}

	status := deriveStatus(requirements, tradeCoverage, restrictions)
	report := &dto.ComplianceReport{
		Status:        status,
		Requirements:  requirements,
		TradeCoverage: tradeCoverage,
		Restrictions:  restrictions,
	}
	resultJSON, err := json.Marshal(report)
	if err != nil {
		return nil, fmt.Errorf("compliance: marshal report: %w", err)
	}

	now := time.Now()
	check := &entity.ComplianceCheck{
		ID:              uuid.New().String(),
		SubcontractorID: sub.ID,
		ProjectID:       sub.ProjectID,
		CheckType:       "full",
		Status:          status,
		Result:          resultJSON,
		CheckedBy:       checkedBy,
		Notes:           in.Notes,
		CreatedAt:       now,
		UpdatedAt:       now,
	}
	if err := uc.checkRepo.Create(check); err != nil {
		return nil, err
	}
	if err := uc.subRepo.UpdateComplianceStatus(sub.ID, status); err != nil {
		return nil, err
	}

	if status == entity.ComplianceStatusNonCompliant {
		uc.notifyBroker(sub, project, tradeCoverage)
	}

	return &dto.ComplianceCheckResponse{
		ID:              check.ID,
		SubcontractorID: check.SubcontractorID,
		ProjectID:       check.ProjectID,
		CheckType:       check.CheckType,
		Status:          check.Status,
		Report:          report,
		CheckedBy:       check.CheckedBy,
		Notes:           check.Notes,
		CreatedAt:       check.CreatedAt,
	}, nil
}

// certificateToCheck picks the certificate the engine evaluates: the inline
// snapshot when one was supplied, otherwise the snapshot stored with the
// latest generated certificate. ErrNoCOIOnFile when neither exists.
func (uc *CheckUseCase) certificateToCheck(subID string, in dto.CheckComplianceRequest) (*engine.COI, error) {
	if !in.COI.Empty() {
		coi := in.COI
		return &coi, nil
	}
	record, err := uc.coiRepo.GetLatestForSubcontractor(subID)
	if err != nil {
		return nil, err
	}
	if record == nil || len(record.Snapshot) == 0 {
		return nil, domain.ErrNoCOIOnFile
	}
	var coi engine.COI
	if err := json.Unmarshal(record.Snapshot, &coi); err != nil {
		return nil, fmt.Errorf("compliance: decode stored certificate: %w", err)
	}
	return &coi, nil
}

// GetCheck returns one persisted check with its report decoded.
func (uc *CheckUseCase) GetCheck(id string) (*dto.ComplianceCheckResponse, error) {
	check, err := uc.checkRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if check == nil {
		return nil, domain.ErrNotFound
	}
	return toCheckResponse(check), nil
}

// History lists past checks for a project subcontractor, newest first.
func (uc *CheckUseCase) History(subID string, limit, offset int) ([]*dto.ComplianceCheckResponse, error) {
	checks, err := uc.checkRepo.ListBySubcontractor(subID, limit, offset)
	if err != nil {
		return nil, err
	}
	out := make([]*dto.ComplianceCheckResponse, 0, len(checks))
	for _, c := range checks {
		out = append(out, toCheckResponse(c))
	}
	return out, nil
}

// deriveStatus maps engine output to the persisted assignment status.
// Hard failures from any pass win; an expiring policy with no other findings
// becomes expiring_soon.
func deriveStatus(req *engine.Result, tc *engine.TradeCoverageResult, restrictions []engine.Issue) string {
	if !req.Compliant || !tc.Compliant || len(restrictions) > 0 {
		return entity.ComplianceStatusNonCompliant
	}
	for _, w := range req.Warnings {
		if w.Type == engine.IssuePolicyExpiringSoon {
			return entity.ComplianceStatusExpiringSoon
		}
	}
	return entity.ComplianceStatusCompliant
}

// notifyBroker is best-effort: a mail failure never fails the check.
func (uc *CheckUseCase) notifyBroker(sub *entity.ProjectSubcontractor, project *entity.Project, tc *engine.TradeCoverageResult) {
	if sub.BrokerID == "" {
		return
	}
	broker, err := uc.brokerRepo.GetByID(sub.BrokerID)
	if err != nil || broker == nil || broker.Email == "" {
		uc.log.Warn().Str("broker_id", sub.BrokerID).Msg("compliance: broker not reachable for notification")
		return
	}
	subject := fmt.Sprintf("Insurance compliance action required: %s on %s", sub.CompanyName, project.ProjectName)
	body := engine.GenerateBrokerTradeMessage(tc, broker.ContactName, sub.CompanyName, project.ProjectName)
	if err := uc.mailer.SendBrokerNotice(broker.Email, subject, body); err != nil {
		uc.log.Error().Err(err).Str("broker_id", broker.ID).Msg("compliance: broker notification mail failed")
	}
}

func toCheckResponse(c *entity.ComplianceCheck) *dto.ComplianceCheckResponse {
	resp := &dto.ComplianceCheckResponse{
		ID:              c.ID,
		SubcontractorID: c.SubcontractorID,
		ProjectID:       c.ProjectID,
		CheckType:       c.CheckType,
		Status:          c.Status,
		CheckedBy:       c.CheckedBy,
		Notes:           c.Notes,
		CreatedAt:       c.CreatedAt,
	}
	if len(c.Result) > 0 {
		var report dto.ComplianceReport
		if err := json.Unmarshal(c.Result, &report); err == nil {
			resp.Report = &report
		}
	}
	return resp
}
