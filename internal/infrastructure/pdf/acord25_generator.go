// Package pdf renders the ACORD 25 Certificate of Liability Insurance.
//
// Letter page layout:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: ACORD 25 title + issue date                        │
//	│  ─────────────────────────────────────────────────────────  │
//	│  PRODUCER: broker contact block │ INSURED: subcontractor    │
//	│  ─────────────────────────────────────────────────────────  │
//	│  INSURERS AFFORDING COVERAGE: letters A-F + NAIC #          │
//	│  ─────────────────────────────────────────────────────────  │
//	│  COVERAGES: type | policy # | eff | exp | limits            │
//	│  ─────────────────────────────────────────────────────────  │
//	│  DESCRIPTION OF OPERATIONS / CERTIFICATE HOLDER             │
//	│  FOOTER: ACORD disclaimer + authorized representative       │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"fmt"
	"sort"
	"strings"
	"time"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"

	appcoi "github.com/insuretrack/insuretrack-api/internal/application/coi"
	"github.com/insuretrack/insuretrack-api/internal/application/dto"
)

// ── Color palette ─────────────────────────────────────────────────────────────

var (
	colorHeader = &props.Color{Red: 40, Green: 40, Blue: 40}
	colorGray   = &props.Color{Red: 100, Green: 100, Blue: 100}
)

var _ appcoi.CertificateRenderer = (*ACORD25Generator)(nil)

// ACORD25Generator renders certificates with Maroto v2.
type ACORD25Generator struct{}

// NewACORD25Generator builds the renderer.
func NewACORD25Generator() *ACORD25Generator { return &ACORD25Generator{} }

// RenderACORD25 renders the certificate PDF and returns its bytes.
func (g *ACORD25Generator) RenderACORD25(req *dto.GenerateCOIRequest) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.Letter).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 8}).
		WithTitle("Certificate of Liability Insurance", true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRows(time.Now())...)
	m.AddRows(line.NewRow(1, props.Line{Color: colorHeader, Thickness: 0.5}))
	m.AddRows(producerInsuredRow(req))
	m.AddRows(line.NewRow(1, props.Line{Color: colorHeader, Thickness: 0.3}))
	m.AddRows(insurerRows(req.Insurers)...)
	m.AddRows(line.NewRow(1, props.Line{Color: colorHeader, Thickness: 0.3}))
	m.AddRows(coverageHeaderRow())
	for _, c := range req.Coverages {
		m.AddRows(coverageRow(c))
	}
	m.AddRows(line.NewRow(1, props.Line{Color: colorHeader, Thickness: 0.3}))
	m.AddRows(descriptionRows(req)...)
	m.AddRows(line.NewRow(2))
	m.AddRows(footerRows()...)

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generate certificate: %w", err)
	}
	return doc.GetBytes(), nil
}

// ── Sections ──────────────────────────────────────────────────────────────────

func headerRows(issued time.Time) []core.Row {
	return []core.Row{
		row.New(14).Add(
			col.New(8).Add(
				text.New("ACORD", props.Text{Style: fontstyle.Bold, Size: 14, Color: colorHeader}),
				text.New("CERTIFICATE OF LIABILITY INSURANCE", props.Text{
					Style: fontstyle.Bold, Size: 11, Top: 7, Color: colorHeader,
				}),
			),
			col.New(4).Add(
				text.New("DATE (MM/DD/YYYY)", props.Text{Size: 6, Align: align.Right, Color: colorGray}),
				text.New(issued.Format("01/02/2006"), props.Text{Size: 9, Top: 4, Align: align.Right}),
			),
		),
		row.New(8).Add(
			col.New(12).Add(
				text.New("THIS CERTIFICATE IS ISSUED AS A MATTER OF INFORMATION ONLY AND CONFERS NO RIGHTS UPON THE CERTIFICATE HOLDER.", props.Text{
					Size: 6, Color: colorGray,
				}),
			),
		),
	}
}

func producerInsuredRow(req *dto.GenerateCOIRequest) core.Row {
	producer := blockLines(producerLines(req.ProducerInfo))
	insured := blockLines(insuredLines(req))
	return row.New(28).Add(
		col.New(6).Add(labeledBlock("PRODUCER", producer)...),
		col.New(6).Add(labeledBlock("INSURED", insured)...),
	)
}

func producerLines(p *dto.ProducerInfo) []string {
	if p == nil {
		return nil
	}
	lines := []string{p.Name, p.ContactName, p.Address}
	if cityLine := joinCityStateZip(p.City, p.State, p.ZipCode); cityLine != "" {
		lines = append(lines, cityLine)
	}
	if p.Phone != "" {
		lines = append(lines, "PHONE: "+p.Phone)
	}
	if p.Email != "" {
		lines = append(lines, "E-MAIL: "+p.Email)
	}
	return lines
}

func insuredLines(req *dto.GenerateCOIRequest) []string {
	lines := []string{req.SubcontractorName}
	if req.InsuredInfo != nil {
		lines = append(lines, req.InsuredInfo.Address)
		if cityLine := joinCityStateZip(req.InsuredInfo.City, req.InsuredInfo.State, req.InsuredInfo.ZipCode); cityLine != "" {
			lines = append(lines, cityLine)
		}
	}
	return lines
}

func insurerRows(insurers []dto.InsurerInfo) []core.Row {
	rows := []core.Row{
		row.New(6).Add(
			col.New(8).Add(text.New("INSURER(S) AFFORDING COVERAGE", props.Text{Style: fontstyle.Bold, Size: 7})),
			col.New(4).Add(text.New("NAIC #", props.Text{Style: fontstyle.Bold, Size: 7, Align: align.Right})),
		),
	}
	for _, ins := range insurers {
		rows = append(rows, row.New(5).Add(
			col.New(8).Add(text.New(fmt.Sprintf("INSURER %s: %s", ins.Letter, ins.Name), props.Text{Size: 7})),
			col.New(4).Add(text.New(ins.NAIC, props.Text{Size: 7, Align: align.Right})),
		))
	}
	return rows
}

func coverageHeaderRow() core.Row {
	header := props.Text{Style: fontstyle.Bold, Size: 7}
	return row.New(7).Add(
		col.New(3).Add(text.New("TYPE OF INSURANCE", header)),
		col.New(1).Add(text.New("INSR", header)),
		col.New(2).Add(text.New("POLICY NUMBER", header)),
		col.New(1).Add(text.New("EFF", header)),
		col.New(1).Add(text.New("EXP", header)),
		col.New(4).Add(text.New("LIMITS", header)),
	)
}

func coverageRow(c dto.CoverageInfo) core.Row {
	height := float64(6 + 4*len(c.Limits))
	return row.New(height).Add(
		col.New(3).Add(text.New(c.Type, props.Text{Size: 7, Style: fontstyle.Bold})),
		col.New(1).Add(text.New(c.Insurer, props.Text{Size: 7})),
		col.New(2).Add(text.New(c.PolicyNumber, props.Text{Size: 7})),
		col.New(1).Add(text.New(c.EffectiveDate, props.Text{Size: 7})),
		col.New(1).Add(text.New(c.ExpirationDate, props.Text{Size: 7})),
		col.New(4).Add(limitTexts(c.Limits)...),
	)
}

// limitTexts renders "NAME  $AMOUNT" lines sorted by limit name so output is
// stable between regenerations.
func limitTexts(limits map[string]string) []core.Component {
	names := make([]string, 0, len(limits))
	for name := range limits {
		names = append(names, name)
	}
	sort.Strings(names)

	comps := make([]core.Component, 0, len(names))
	for i, name := range names {
		comps = append(comps, text.New(fmt.Sprintf("%s: %s", strings.ToUpper(name), limits[name]), props.Text{
			Size: 6, Top: float64(i * 4),
		}))
	}
	return comps
}

func descriptionRows(req *dto.GenerateCOIRequest) []core.Row {
	desc := req.Description
	if desc == "" {
		desc = fmt.Sprintf("RE: %s. %s is named as additional insured as required by written contract.",
			req.ProjectName, req.GCName)
	}
	return []core.Row{
		row.New(6).Add(col.New(12).Add(
			text.New("DESCRIPTION OF OPERATIONS / LOCATIONS / VEHICLES", props.Text{Style: fontstyle.Bold, Size: 7}),
		)),
		row.New(14).Add(col.New(12).Add(text.New(desc, props.Text{Size: 7}))),
		row.New(6).Add(col.New(12).Add(
			text.New("CERTIFICATE HOLDER: "+req.GCName, props.Text{Style: fontstyle.Bold, Size: 7}),
		)),
	}
}

func footerRows() []core.Row {
	return []core.Row{
		row.New(10).Add(
			col.New(8).Add(
				text.New("SHOULD ANY OF THE ABOVE DESCRIBED POLICIES BE CANCELLED BEFORE THE EXPIRATION DATE THEREOF, NOTICE WILL BE DELIVERED IN ACCORDANCE WITH THE POLICY PROVISIONS.", props.Text{
					Size: 6, Color: colorGray,
				}),
			),
			col.New(4).Add(
				text.New("AUTHORIZED REPRESENTATIVE", props.Text{Size: 6, Align: align.Right, Color: colorGray}),
			),
		),
		row.New(6).Add(col.New(12).Add(
			text.New("ACORD 25 (2016/03)  © 1988-2015 ACORD CORPORATION. All rights reserved.", props.Text{
				Size: 6, Color: colorGray,
			}),
		)),
	}
}

// ── Helpers ───────────────────────────────────────────────────────────────────

func labeledBlock(label string, lines []string) []core.Component {
	comps := []core.Component{
		text.New(label, props.Text{Style: fontstyle.Bold, Size: 7, Color: colorGray}),
	}
	for i, l := range lines {
		comps = append(comps, text.New(l, props.Text{Size: 7, Top: float64(4 + i*4)}))
	}
	return comps
}

// blockLines drops empty entries so blocks stay compact.
func blockLines(lines []string) []string {
	out := lines[:0]
	for _, l := range lines {
		if strings.TrimSpace(l) != "" {
			out = append(out, l)
		}
	}
	return out
}

func joinCityStateZip(city, state, zip string) string {
	var b strings.Builder
	if city != "" {
		b.WriteString(city)
	}
	if state != "" {
		if b.Len() > 0 {
			b.WriteString(", ")
		}
		b.WriteString(state)
	}
	if zip != "" {
		if b.Len() > 0 {
			b.WriteString(" ")
		}
		b.WriteString(zip)
	}
	return b.String()
}
