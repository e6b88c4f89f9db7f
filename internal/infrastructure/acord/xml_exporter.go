// Package acord serializes certificate data as ACORD XML for carrier and
// agency-management system intake.
package acord

import (
	"fmt"
	"time"

	"github.com/beevik/etree"

	appcoi "github.com/insuretrack/insuretrack-api/internal/application/coi"
	"github.com/insuretrack/insuretrack-api/internal/application/dto"
)

var _ appcoi.CertificateXMLExporter = (*XMLExporter)(nil)

// XMLExporter builds the ACORD XML document with etree.
type XMLExporter struct{}

// NewXMLExporter builds the exporter.
func NewXMLExporter() *XMLExporter { return &XMLExporter{} }

// ExportACORDXML serializes a certificate request as an ACORD XML document.
func (e *XMLExporter) ExportACORDXML(req *dto.GenerateCOIRequest) ([]byte, error) {
	doc := etree.NewDocument()
	doc.CreateProcInst("xml", `version="1.0" encoding="UTF-8"`)

	root := doc.CreateElement("ACORD")
	root.CreateAttr("xmlns", "http://www.ACORD.org/standards/PC_Surety/ACORD1/xml/")

	// SignonRq: who produced the document and when.
	signon := root.CreateElement("SignonRq")
	signon.CreateElement("ClientDt").SetText(time.Now().Format(time.RFC3339))
	signon.CreateElement("CustLangPref").SetText("en-US")

	svcRq := root.CreateElement("InsuranceSvcRq")
	certRq := svcRq.CreateElement("CertificateOfInsuranceRq")

	if req.ProducerInfo != nil {
		producer := certRq.CreateElement("Producer")
		gi := producer.CreateElement("GeneralPartyInfo")
		gi.CreateElement("NameInfo").CreateElement("CommlName").
			CreateElement("CommercialName").SetText(req.ProducerInfo.Name)
		addAddr(gi, req.ProducerInfo.Address, req.ProducerInfo.City, req.ProducerInfo.State, req.ProducerInfo.ZipCode)
		if req.ProducerInfo.Email != "" || req.ProducerInfo.Phone != "" {
			comm := gi.CreateElement("Communications")
			if req.ProducerInfo.Phone != "" {
				phone := comm.CreateElement("PhoneInfo")
				phone.CreateElement("PhoneTypeCd").SetText("Phone")
				phone.CreateElement("PhoneNumber").SetText(req.ProducerInfo.Phone)
			}
			if req.ProducerInfo.Email != "" {
				email := comm.CreateElement("EmailInfo")
				email.CreateElement("EmailAddr").SetText(req.ProducerInfo.Email)
			}
		}
	}

	insured := certRq.CreateElement("InsuredOrPrincipal")
	igi := insured.CreateElement("GeneralPartyInfo")
	igi.CreateElement("NameInfo").CreateElement("CommlName").
		CreateElement("CommercialName").SetText(req.SubcontractorName)
	if req.InsuredInfo != nil {
		addAddr(igi, req.InsuredInfo.Address, req.InsuredInfo.City, req.InsuredInfo.State, req.InsuredInfo.ZipCode)
	}

	certInfo := certRq.CreateElement("CertificateInfo")
	for _, ins := range req.Insurers {
		insurer := certInfo.CreateElement("Insurer")
		insurer.CreateAttr("id", "Insurer"+ins.Letter)
		insurer.CreateElement("InsurerName").SetText(ins.Name)
		if ins.NAIC != "" {
			insurer.CreateElement("NAICCd").SetText(ins.NAIC)
		}
	}

	for _, cov := range req.Coverages {
		c := certInfo.CreateElement("Coverage")
		c.CreateElement("CoverageCd").SetText(cov.Type)
		if cov.Insurer != "" {
			c.CreateElement("InsurerRef").SetText("Insurer" + cov.Insurer)
		}
		if cov.PolicyNumber != "" {
			c.CreateElement("PolicyNumber").SetText(cov.PolicyNumber)
		}
		if cov.EffectiveDate != "" {
			c.CreateElement("EffectiveDt").SetText(cov.EffectiveDate)
		}
		if cov.ExpirationDate != "" {
			c.CreateElement("ExpirationDt").SetText(cov.ExpirationDate)
		}
		for name, amount := range cov.Limits {
			limit := c.CreateElement("Limit")
			limit.CreateElement("LimitAppliesToCd").SetText(name)
			limit.CreateElement("FormatText").SetText(amount)
		}
	}

	remarks := certRq.CreateElement("RemarkText")
	if req.Description != "" {
		remarks.SetText(req.Description)
	} else {
		remarks.SetText(fmt.Sprintf("RE: %s. Certificate holder: %s.", req.ProjectName, req.GCName))
	}

	doc.Indent(2)
	out, err := doc.WriteToBytes()
	if err != nil {
		return nil, fmt.Errorf("acord: serialize xml: %w", err)
	}
	return out, nil
}

func addAddr(parent *etree.Element, addr1, city, state, zip string) {
	if addr1 == "" && city == "" {
		return
	}
	a := parent.CreateElement("Addr")
	if addr1 != "" {
		a.CreateElement("Addr1").SetText(addr1)
	}
	if city != "" {
		a.CreateElement("City").SetText(city)
	}
	if state != "" {
		a.CreateElement("StateProvCd").SetText(state)
	}
	if zip != "" {
		a.CreateElement("PostalCode").SetText(zip)
	}
}
