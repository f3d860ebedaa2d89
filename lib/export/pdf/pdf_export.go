package pdfexport

import (
	"bytes"
	"text/template"
	"time"

	"github.com/go-pdf/fpdf"
	"github.com/pkg/errors"
)

// OfferData feeds the offer letter template.
type OfferData struct {
	ApplicantName string
	JobTitle      string
	CompanyName   string
	Date          string
}

const offerBodyTemplate = `Dear {{.ApplicantName}},

We are pleased to offer you the position of {{.JobTitle}} at {{.CompanyName}}.

You have successfully completed all interview rounds of our hiring pipeline.
Details of compensation and your start date will be shared by your recruiter.

We look forward to working with you.

{{.CompanyName}}
{{.Date}}`

// GenerateOfferLetter renders the offer letter PDF for a finished pipeline.
func GenerateOfferLetter(data OfferData) (pdfFile []byte, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = errors.Errorf("GenerateOfferLetter panic recover: %v", r)
		}
	}()
	if data.Date == "" {
		data.Date = time.Now().Format("02.01.2006")
	}

	tpl, err := template.New("offer_body").Parse(offerBodyTemplate)
	if err != nil {
		return nil, err
	}
	buf := new(bytes.Buffer)
	err = tpl.Execute(buf, data)
	if err != nil {
		return nil, err
	}

	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.AddPage()
	pdf.SetFont("Helvetica", "B", 16)
	pdf.CellFormat(0, 10, "Offer of Employment", "", 1, "C", false, 0, "")
	pdf.Ln(6)
	pdf.SetFont("Helvetica", "", 12)
	_, lineHt := pdf.GetFontSize()
	pdf.MultiCell(0, lineHt*1.6, buf.String(), "", "L", false)
	if pdf.Error() != nil {
		return nil, pdf.Error()
	}

	out := new(bytes.Buffer)
	err = pdf.Output(out)
	if err != nil {
		return nil, err
	}
	return out.Bytes(), nil
}
