package notify

import (
	"fmt"
	"time"

	log "github.com/sirupsen/logrus"

	pdfexport "hiring-backend/lib/export/pdf"
	"hiring-backend/lib/smtp"
	connectionhub "hiring-backend/lib/ws/hub/connection-hub"
	"hiring-backend/models"
	dbmodels "hiring-backend/models/db"
	wsmodels "hiring-backend/models/ws"
)

// Provider delivers pipeline events to the applicant (email) and to
// connected recruiters (ws pushes). Delivery is best-effort, failures are
// logged and never surface to the caller.
type Provider interface {
	InterviewScheduled(applicant dbmodels.Applicant, stageName string, at time.Time)
	StageCompleted(applicant dbmodels.Applicant, stageName string, result models.StageResult, newStatus models.ApplicantStatus)
	OfferDecision(applicant dbmodels.Applicant, decision models.OfferStatus)
}

var Instance Provider

func NewHandler(companyName string) {
	Instance = &impl{
		companyName: companyName,
	}
}

type impl struct {
	companyName string
}

func (i impl) InterviewScheduled(applicant dbmodels.Applicant, stageName string, at time.Time) {
	logger := log.WithField("applicant_id", applicant.ID)
	subject := fmt.Sprintf("Interview invitation: %s", stageName)
	message := fmt.Sprintf("Dear %s,\n\nYour %s for the %s position is scheduled for %s.\n\nBest regards,\n%s",
		applicant.Name, stageName, i.jobTitle(applicant), at.Format("02.01.2006 15:04"), i.companyName)
	if err := smtp.Instance.SendEMail(applicant.Email, subject, message); err != nil {
		logger.WithError(err).Warn("failed to send interview invitation")
	}
	i.push(wsmodels.CodeInterviewScheduled,
		fmt.Sprintf("%s scheduled for %s", stageName, applicant.Name))
}

func (i impl) StageCompleted(applicant dbmodels.Applicant, stageName string, result models.StageResult, newStatus models.ApplicantStatus) {
	logger := log.WithField("applicant_id", applicant.ID)
	switch {
	case result == models.StageResultFail:
		subject := "Update on your application"
		message := fmt.Sprintf("Dear %s,\n\nThank you for the time you invested in the %s position. "+
			"Unfortunately we will not be moving forward with your application.\n\nBest regards,\n%s",
			applicant.Name, i.jobTitle(applicant), i.companyName)
		if err := smtp.Instance.SendEMail(applicant.Email, subject, message); err != nil {
			logger.WithError(err).Warn("failed to send rejection email")
		}
	case newStatus == models.ApplicantStatusOffered:
		subject := "Congratulations - offer extended"
		message := fmt.Sprintf("Dear %s,\n\nCongratulations! You have passed all interview rounds for the %s position. "+
			"An offer is on its way.\n\nBest regards,\n%s",
			applicant.Name, i.jobTitle(applicant), i.companyName)
		if err := smtp.Instance.SendEMail(applicant.Email, subject, message); err != nil {
			logger.WithError(err).Warn("failed to send offer email")
		}
	}
	i.push(wsmodels.CodeStageCompleted,
		fmt.Sprintf("%s finished %s: %s", applicant.Name, stageName, result))
}

func (i impl) OfferDecision(applicant dbmodels.Applicant, decision models.OfferStatus) {
	logger := log.WithField("applicant_id", applicant.ID)
	if decision == models.OfferStatusAccepted {
		letter, err := pdfexport.GenerateOfferLetter(pdfexport.OfferData{
			ApplicantName: applicant.Name,
			JobTitle:      i.jobTitle(applicant),
			CompanyName:   i.companyName,
		})
		if err != nil {
			logger.WithError(err).Warn("failed to generate offer letter")
		} else {
			subject := "Welcome aboard"
			message := fmt.Sprintf("Dear %s,\n\nWe are delighted you accepted our offer. "+
				"Your offer letter is attached.\n\nBest regards,\n%s", applicant.Name, i.companyName)
			err = smtp.Instance.SendEMailWithAttachment(applicant.Email, subject, message, "offer_letter.pdf", letter)
			if err != nil {
				logger.WithError(err).Warn("failed to send offer letter")
			}
		}
	}
	i.push(wsmodels.CodeOfferDecision,
		fmt.Sprintf("%s has %s the offer", applicant.Name, decision))
}

func (i impl) jobTitle(applicant dbmodels.Applicant) string {
	if applicant.Job != nil && applicant.Job.Title != "" {
		return applicant.Job.Title
	}
	return "open"
}

func (i impl) push(code, msg string) {
	if connectionhub.Instance == nil {
		return
	}
	connectionhub.Instance.Broadcast(wsmodels.ServerMessage{
		Time: time.Now().Format("02.01.2006 15:04:05"),
		Code: code,
		Msg:  msg,
	})
}
