package compliance

import (
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/insuretrack/insuretrack-api/internal/application/dto"
	"github.com/insuretrack/insuretrack-api/internal/domain"
	engine "github.com/insuretrack/insuretrack-api/internal/domain/compliance"
	"github.com/insuretrack/insuretrack-api/internal/domain/entity"
	"github.com/insuretrack/insuretrack-api/pkg/logger"
)

// ──────────────────────────────────────────────────────────────────────────────
// In-memory fakes for the persistence and mail ports
// ──────────────────────────────────────────────────────────────────────────────

type fakeSubRepo struct {
	sub    *entity.ProjectSubcontractor
	status string
}

func (f *fakeSubRepo) Create(*entity.ProjectSubcontractor) error { return nil }
func (f *fakeSubRepo) GetByID(string) (*entity.ProjectSubcontractor, error) {
	return f.sub, nil
}
func (f *fakeSubRepo) ListByProject(string, int, int) ([]*entity.ProjectSubcontractor, error) {
	return nil, nil
}
func (f *fakeSubRepo) Update(*entity.ProjectSubcontractor) error { return nil }
func (f *fakeSubRepo) UpdateComplianceStatus(_, status string) error {
	f.status = status
	return nil
}
func (f *fakeSubRepo) Delete(string) error { return nil }

type fakeProjectRepo struct{ project *entity.Project }

func (f *fakeProjectRepo) Create(*entity.Project) error { return nil }
func (f *fakeProjectRepo) GetByID(string) (*entity.Project, error) { return f.project, nil }
func (f *fakeProjectRepo) ListByGC(string, int, int) ([]*entity.Project, error) { return nil, nil }
func (f *fakeProjectRepo) List(int, int) ([]*entity.Project, error) { return nil, nil }
func (f *fakeProjectRepo) Update(*entity.Project) error { return nil }
func (f *fakeProjectRepo) Delete(string) error { return nil }

type fakeBrokerRepo struct{ broker *entity.Broker }

func (f *fakeBrokerRepo) Create(*entity.Broker) error { return nil }
func (f *fakeBrokerRepo) GetByID(string) (*entity.Broker, error) { return f.broker, nil }
func (f *fakeBrokerRepo) List(int, int) ([]*entity.Broker, error) { return nil, nil }
func (f *fakeBrokerRepo) Update(*entity.Broker) error { return nil }
func (f *fakeBrokerRepo) Delete(string) error { return nil }

type fakeCheckRepo struct{ created []*entity.ComplianceCheck }

func (f *fakeCheckRepo) Create(c *entity.ComplianceCheck) error {
	f.created = append(f.created, c)
	return nil
}
func (f *fakeCheckRepo) GetByID(string) (*entity.ComplianceCheck, error) { return nil, nil }
func (f *fakeCheckRepo) ListBySubcontractor(string, int, int) ([]*entity.ComplianceCheck, error) {
	return f.created, nil
}

type fakeCOIRepo struct{ latest *entity.GeneratedCOI }

func (f *fakeCOIRepo) Create(*entity.GeneratedCOI) error { return nil }
func (f *fakeCOIRepo) GetByID(string) (*entity.GeneratedCOI, error) { return nil, nil }
func (f *fakeCOIRepo) GetLatestForSubcontractor(string) (*entity.GeneratedCOI, error) {
	return f.latest, nil
}
func (f *fakeCOIRepo) Update(*entity.GeneratedCOI) error { return nil }
func (f *fakeCOIRepo) ListByProject(string, int, int) ([]*entity.GeneratedCOI, error) {
	return nil, nil
}

type fakeMailer struct{ notices []string }

func (f *fakeMailer) SendPasswordReset(string, string, string) error { return nil }
func (f *fakeMailer) SendBrokerNotice(to, _, _ string) error {
	f.notices = append(f.notices, to)
	return nil
}

// ──────────────────────────────────────────────────────────────────────────────
// Fixtures
// ──────────────────────────────────────────────────────────────────────────────

func futureDate(days int) *time.Time {
	t := time.Now().Add(time.Duration(days) * 24 * time.Hour)
	return &t
}

// fullCoverageCOI satisfies the plumbing (tier 2) requirement set with
// expirations 90 days out.
func fullCoverageCOI() engine.COI {
	return engine.COI{
		GLEachOccurrence:        1_000_000,
		GLGeneralAggregate:      2_000_000,
		GLExpirationDate:        futureDate(90),
		GLWaiverOfSubrogation:   true,
		GLEndorsements:          []string{"CG2010", "CG2037"},
		WCEachAccident:          1_000_000,
		WCExpirationDate:        futureDate(90),
		WCWaiverOfSubrogation:   true,
		AutoCombinedSingleLimit: 1_000_000,
		AutoExpirationDate:      futureDate(90),
		AutoWaiverOfSubrogation: true,
		AutoHired:               true,
		AutoNonOwned:            true,
		AdditionalInsured:       []string{"Prime Construction Corp"},
	}
}

type checkFixture struct {
	uc      *CheckUseCase
	subRepo *fakeSubRepo
	checks  *fakeCheckRepo
	cois    *fakeCOIRepo
	mailer  *fakeMailer
}

func newCheckFixture() *checkFixture {
	subRepo := &fakeSubRepo{sub: &entity.ProjectSubcontractor{
		ID:          "sub-1",
		ProjectID:   "proj-1",
		CompanyName: "Apex Plumbing LLC",
		BrokerID:    "broker-1",
		Trades:      []string{"plumbing"},
	}}
	projRepo := &fakeProjectRepo{project: &entity.Project{
		ID:                "proj-1",
		ProjectName:       "Riverside Tower",
		AdditionalInsured: []string{"Prime Construction Corp"},
	}}
	brokerRepo := &fakeBrokerRepo{broker: &entity.Broker{
		ID:          "broker-1",
		ContactName: "Morgan Reyes",
		Email:       "morgan@brokerage.example.com",
	}}
	checks := &fakeCheckRepo{}
	cois := &fakeCOIRepo{}
	mailer := &fakeMailer{}
	log := logger.New(logger.Config{Env: "production", Level: "error"})
	return &checkFixture{
		uc:      NewCheckUseCase(subRepo, projRepo, brokerRepo, checks, cois, mailer, log),
		subRepo: subRepo,
		checks:  checks,
		cois:    cois,
		mailer:  mailer,
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// RunCheck
// ──────────────────────────────────────────────────────────────────────────────

// An inline certificate snapshot is evaluated directly.
func TestRunCheck_InlineSnapshot(t *testing.T) {
	f := newCheckFixture()
	out, err := f.uc.RunCheck("sub-1", dto.CheckComplianceRequest{COI: fullCoverageCOI()}, "admin-1")
	require.NoError(t, err)

	assert.Equal(t, entity.ComplianceStatusCompliant, out.Status)
	assert.Equal(t, entity.ComplianceStatusCompliant, f.subRepo.status,
		"the assignment status must follow the check result")
	require.Len(t, f.checks.created, 1)
	require.NotNil(t, out.Report)
	assert.True(t, out.Report.Requirements.Compliant)
}

// Without an inline snapshot the latest certificate on file is evaluated. A
// compliant stored snapshot proves the engine did not run against a zero
// certificate.
func TestRunCheck_FallsBackToCertificateOnFile(t *testing.T) {
	f := newCheckFixture()
	stored := fullCoverageCOI()
	snapshot, err := json.Marshal(stored)
	require.NoError(t, err)
	f.cois.latest = &entity.GeneratedCOI{
		ID:              "coi-1",
		SubcontractorID: "sub-1",
		Snapshot:        snapshot,
	}

	out, err := f.uc.RunCheck("sub-1", dto.CheckComplianceRequest{}, "admin-1")
	require.NoError(t, err)

	assert.Equal(t, entity.ComplianceStatusCompliant, out.Status)
	assert.Empty(t, out.Report.Requirements.Issues)
}

// No snapshot and nothing on file is an error, not a non-compliant verdict.
func TestRunCheck_NoSnapshotAndNoCertificateOnFile(t *testing.T) {
	f := newCheckFixture()

	_, err := f.uc.RunCheck("sub-1", dto.CheckComplianceRequest{}, "admin-1")
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrNoCOIOnFile))
	assert.Empty(t, f.checks.created, "a failed lookup must not persist a check")
	assert.Empty(t, f.subRepo.status, "the assignment status must stay untouched")
}

// A non-compliant result notifies the broker on file.
func TestRunCheck_NonCompliantNotifiesBroker(t *testing.T) {
	f := newCheckFixture()
	coi := fullCoverageCOI()
	coi.GLEachOccurrence = 500_000

	out, err := f.uc.RunCheck("sub-1", dto.CheckComplianceRequest{COI: coi}, "admin-1")
	require.NoError(t, err)

	assert.Equal(t, entity.ComplianceStatusNonCompliant, out.Status)
	require.Len(t, f.mailer.notices, 1)
	assert.Equal(t, "morgan@brokerage.example.com", f.mailer.notices[0])
}

// A compliant certificate expiring within 30 days is expiring_soon, not
// non_compliant.
func TestRunCheck_ExpiringSoon(t *testing.T) {
	f := newCheckFixture()
	coi := fullCoverageCOI()
	coi.GLExpirationDate = futureDate(15)

	out, err := f.uc.RunCheck("sub-1", dto.CheckComplianceRequest{COI: coi}, "admin-1")
	require.NoError(t, err)

	assert.Equal(t, entity.ComplianceStatusExpiringSoon, out.Status)
	assert.Empty(t, f.mailer.notices, "warnings must not trigger broker mail")
}
