package dto

// ProducerInfo broker details printed on the certificate.
type ProducerInfo struct {
	Name        string `json:"name"`
	ContactName string `json:"contactName"`
	Address     string `json:"address"`
	City        string `json:"city"`
	State       string `json:"state"`
	ZipCode     string `json:"zipCode"`
	Phone       string `json:"phone"`
	Email       string `json:"email"`
}

// InsuredInfo subcontractor address block on the certificate.
type InsuredInfo struct {
	Address string `json:"address"`
	City    string `json:"city"`
	State   string `json:"state"`
	ZipCode string `json:"zipCode"`
}

// InsurerInfo one carrier row (letter A-F as on the ACORD 25 form).
type InsurerInfo struct {
	Letter string `json:"letter"`
	Name   string `json:"name"`
	NAIC   string `json:"naic"`
}

// CoverageInfo one coverage row on the certificate.
type CoverageInfo struct {
	Type           string            `json:"type"`
	Insurer        string            `json:"insurer"` // carrier letter A-F
	PolicyNumber   string            `json:"policyNumber"`
	EffectiveDate  string            `json:"effectiveDate"`  // MM/DD/YYYY
	ExpirationDate string            `json:"expirationDate"` // MM/DD/YYYY
	Limits         map[string]string `json:"limits"`
}

// GenerateCOIRequest payload for ACORD 25 certificate generation.
type GenerateCOIRequest struct {
	COIID             string         `json:"coiId"`
	SubcontractorName string         `json:"subcontractorName"`
	ProjectName       string         `json:"projectName"`
	GCName            string         `json:"gcName"`
	ProducerInfo      *ProducerInfo  `json:"producerInfo"`
	InsuredInfo       *InsuredInfo   `json:"insuredInfo"`
	Insurers          []InsurerInfo  `json:"insurers"`
	Coverages         []CoverageInfo `json:"coverages"`
	Description       string         `json:"description"`
}

// GenerateCOIResponse result of certificate generation.
type GenerateCOIResponse struct {
	Success  bool   `json:"success"`
	Message  string `json:"message"`
	Filename string `json:"filename"`
	URL      string `json:"url"`
	COIID    string `json:"coiId"`
}
