package xlsexport

import (
	"bytes"
	"fmt"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"github.com/xuri/excelize/v2"

	timesheetapimodels "hiring-backend/models/api/timesheet"
	dbmodels "hiring-backend/models/db"
)

type Provider interface {
	ExportApplicantList(list []dbmodels.Applicant) (*bytes.Buffer, error)
	ExportUtilization(list []timesheetapimodels.UtilizationRow, title string) (*bytes.Buffer, error)
}

var Instance Provider

func NewHandler() {
	Instance = impl{}
}

type impl struct{}

var applicantHeaders = []string{"Name", "Contacts", "Position", "Status", "Offer status", "Screening result", "Applied at"}

func (i impl) ExportApplicantList(list []dbmodels.Applicant) (*bytes.Buffer, error) {
	f := excelize.NewFile()
	defer func() {
		if err := f.Close(); err != nil {
			log.WithError(err).Error("failed to close xlsx file")
		}
	}()
	sheet := "Sheet1"
	row := 0
	row, err := writeHeader(f, sheet, row, applicantHeaders)
	if err != nil {
		return nil, errors.Wrap(err, "failed to write xlsx header")
	}
	if len(list) != 0 {
		row, err = writeApplicantData(f, sheet, list, row)
		if err != nil {
			return nil, errors.Wrap(err, "failed to write xlsx data rows")
		}
	}
	f.SetSheetName(sheet, "Applicants")
	return f.WriteToBuffer()
}

func writeApplicantData(f *excelize.File, sheet string, list []dbmodels.Applicant, row int) (int, error) {
	if err := applyDataCellStyle(f, sheet, 1, row+1, len(applicantHeaders), len(list)+1); err != nil {
		return row, err
	}
	for _, item := range list {
		row++
		col := 1
		if err := writeColumn(f, sheet, col, row, item.Name); err != nil {
			return row, err
		}

		col++
		if err := writeColumn(f, sheet, col, row, fmt.Sprintf("%v\r%v", item.Phone, item.Email)); err != nil {
			return row, err
		}

		col++
		if item.Job != nil {
			if err := writeColumn(f, sheet, col, row, item.Job.Title); err != nil {
				return row, err
			}
		}

		col++
		if err := writeColumn(f, sheet, col, row, string(item.Status)); err != nil {
			return row, err
		}

		col++
		if err := writeColumn(f, sheet, col, row, string(item.OfferStatus)); err != nil {
			return row, err
		}

		col++
		if err := writeColumn(f, sheet, col, row, string(item.AIResult)); err != nil {
			return row, err
		}

		col++
		if err := writeColumn(f, sheet, col, row, item.CreatedAt.Format("02.01.2006")); err != nil {
			return row, err
		}
	}
	return row, nil
}

var utilizationHeaders = []string{"Employee", "Month", "Total hours"}

func (i impl) ExportUtilization(list []timesheetapimodels.UtilizationRow, title string) (*bytes.Buffer, error) {
	f := excelize.NewFile()
	defer func() {
		if err := f.Close(); err != nil {
			log.WithError(err).Error("failed to close xlsx file")
		}
	}()
	sheet := "Sheet1"
	row := 0
	row, err := writeHeader(f, sheet, row, utilizationHeaders)
	if err != nil {
		return nil, errors.Wrap(err, "failed to write xlsx header")
	}
	if err = applyDataCellStyle(f, sheet, 1, row+1, len(utilizationHeaders), len(list)+1); err != nil {
		return nil, err
	}
	for _, item := range list {
		row++
		if err := writeColumn(f, sheet, 1, row, item.EmployeeName); err != nil {
			return nil, err
		}
		if err := writeColumn(f, sheet, 2, row, item.Month); err != nil {
			return nil, err
		}
		if err := writeColumn(f, sheet, 3, row, item.TotalHours); err != nil {
			return nil, err
		}
	}
	f.SetSheetName(sheet, title)
	return f.WriteToBuffer()
}
