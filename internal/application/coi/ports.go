package coi

import "github.com/insuretrack/insuretrack-api/internal/application/dto"

// CertificateRenderer renders an ACORD 25 certificate of insurance as PDF.
type CertificateRenderer interface {
	RenderACORD25(req *dto.GenerateCOIRequest) ([]byte, error)
}

// CertificateXMLExporter serializes the certificate data as ACORD XML for
// carrier and agency-management system intake.
type CertificateXMLExporter interface {
	ExportACORDXML(req *dto.GenerateCOIRequest) ([]byte, error)
}
