package coi

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/insuretrack/insuretrack-api/internal/application/dto"
	"github.com/insuretrack/insuretrack-api/internal/domain"
	"github.com/insuretrack/insuretrack-api/internal/domain/entity"
	"github.com/insuretrack/insuretrack-api/internal/domain/repository"
	"github.com/insuretrack/insuretrack-api/pkg/logger"
)

// COIUseCase generates ACORD 25 certificates. The first generation creates the
// record; later runs for the same certificate keep the original file and store
// the regenerated one alongside it.
type COIUseCase struct {
	coiRepo    repository.GeneratedCOIRepository
	renderer   CertificateRenderer
	exporter   CertificateXMLExporter
	uploadsDir string
	log        *logger.Logger
}

// NewCOIUseCase builds the use case with its ports.
func NewCOIUseCase(
	coiRepo repository.GeneratedCOIRepository,
	renderer CertificateRenderer,
	exporter CertificateXMLExporter,
	uploadsDir string,
	log *logger.Logger,
) *COIUseCase {
	return &COIUseCase{
		coiRepo:    coiRepo,
		renderer:   renderer,
		exporter:   exporter,
		uploadsDir: uploadsDir,
		log:        log,
	}
}

// Generate renders the certificate PDF and stores it. When in.COIID is set the
// run is a regeneration of an existing certificate; otherwise a new record is
// created for the given project assignment.
func (uc *COIUseCase) Generate(projectID, subID, createdBy string, in dto.GenerateCOIRequest) (*dto.GenerateCOIResponse, error) {
	if in.SubcontractorName == "" {
		return nil, domain.ErrInvalidInput
	}
	pdfBytes, err := uc.renderer.RenderACORD25(&in)
	if err != nil {
		return nil, fmt.Errorf("coi: render certificate: %w", err)
	}

	filename := certFilename(in.SubcontractorName, time.Now())
	if err := uc.writeUpload(filename, pdfBytes); err != nil {
		return nil, err
	}
	url := "/uploads/coi/" + filename

	snapshot, err := json.Marshal(complianceSnapshot(&in))
	if err != nil {
		return nil, fmt.Errorf("coi: marshal certificate snapshot: %w", err)
	}

	now := time.Now()
	if in.COIID != "" {
		record, err := uc.coiRepo.GetByID(in.COIID)
		if err != nil {
			return nil, err
		}
		if record == nil {
			return nil, domain.ErrNotFound
		}
		record.RegeneratedCOIURL = url
		record.RegeneratedCOIFilename = filename
		record.Status = "issued"
		record.Snapshot = snapshot
		record.UpdatedAt = now
		if err := uc.coiRepo.Update(record); err != nil {
			return nil, err
		}
		uc.log.Info().Str("coi_id", record.ID).Str("filename", filename).Msg("coi: certificate regenerated")
		return &dto.GenerateCOIResponse{
			Success:  true,
			Message:  "certificate regenerated",
			Filename: filename,
			URL:      url,
			COIID:    record.ID,
		}, nil
	}

	record := &entity.GeneratedCOI{
		ID:               uuid.New().String(),
		ProjectID:        projectID,
		SubcontractorID:  subID,
		Status:           "issued",
		FirstCOIURL:      url,
		FirstCOIFilename: filename,
		Snapshot:         snapshot,
		CreatedBy:        createdBy,
		CreatedAt:        now,
		UpdatedAt:        now,
	}
	if exp := latestExpiration(in.Coverages); exp != nil {
		record.ExpirationDate = exp
	}
	if err := uc.coiRepo.Create(record); err != nil {
		return nil, err
	}
	uc.log.Info().Str("coi_id", record.ID).Str("filename", filename).Msg("coi: certificate generated")
	return &dto.GenerateCOIResponse{
		Success:  true,
		Message:  "certificate generated",
		Filename: filename,
		URL:      url,
		COIID:    record.ID,
	}, nil
}

// ExportXML serializes the certificate data as ACORD XML and returns the
// document bytes with a download filename.
func (uc *COIUseCase) ExportXML(in dto.GenerateCOIRequest) ([]byte, string, error) {
	if in.SubcontractorName == "" {
		return nil, "", domain.ErrInvalidInput
	}
	xmlBytes, err := uc.exporter.ExportACORDXML(&in)
	if err != nil {
		return nil, "", fmt.Errorf("coi: export acord xml: %w", err)
	}
	filename := strings.TrimSuffix(certFilename(in.SubcontractorName, time.Now()), ".pdf") + ".xml"
	return xmlBytes, filename, nil
}

// GetLatest returns the newest certificate for a project subcontractor.
// Returns ErrNoCOIOnFile when none has been generated.
func (uc *COIUseCase) GetLatest(subID string) (*entity.GeneratedCOI, error) {
	record, err := uc.coiRepo.GetLatestForSubcontractor(subID)
	if err != nil {
		return nil, err
	}
	if record == nil {
		return nil, domain.ErrNoCOIOnFile
	}
	return record, nil
}

// OpenFile resolves a stored certificate filename inside the uploads dir.
// The name is sanitized so path traversal cannot escape the directory.
func (uc *COIUseCase) OpenFile(filename string) (string, error) {
	clean := filepath.Base(filename)
	path := filepath.Join(uc.uploadsDir, "coi", clean)
	if _, err := os.Stat(path); err != nil {
		return "", domain.ErrNotFound
	}
	return path, nil
}

func (uc *COIUseCase) writeUpload(filename string, data []byte) error {
	dir := filepath.Join(uc.uploadsDir, "coi")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("coi: create uploads dir: %w", err)
	}
	if err := os.WriteFile(filepath.Join(dir, filename), data, 0o644); err != nil {
		return fmt.Errorf("coi: write certificate file: %w", err)
	}
	return nil
}

// certFilename builds COI_<Company>_<timestamp>.pdf with unsafe characters
// replaced, matching the naming of previously issued certificates.
func certFilename(company string, now time.Time) string {
	safe := strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
			return r
		case r == ' ', r == '-', r == '_':
			return '_'
		default:
			return -1
		}
	}, company)
	if safe == "" {
		safe = "certificate"
	}
	return fmt.Sprintf("COI_%s_%s.pdf", safe, now.Format("20060102_150405"))
}

// latestExpiration picks the furthest coverage expiration date for the record.
func latestExpiration(coverages []dto.CoverageInfo) *time.Time {
	var latest *time.Time
	for _, c := range coverages {
		t, err := time.Parse("01/02/2006", c.ExpirationDate)
		if err != nil {
			continue
		}
		if latest == nil || t.After(*latest) {
			tt := t
			latest = &tt
		}
	}
	return latest
}
