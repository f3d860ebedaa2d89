package aiscreening

import (
	"fmt"
	"strings"

	log "github.com/sirupsen/logrus"

	yagptclient "hiring-backend/lib/ai-screening/yagpt-client"
	"hiring-backend/config"
	"hiring-backend/models"
	dbmodels "hiring-backend/models/db"
)

const screeningPromt = "You are a recruiting assistant. You review a resume against a job description " +
	"and answer with exactly one word on the first line: SHORTLISTED or REJECTED, " +
	"followed by a short explanation on the next lines."

type Provider interface {
	ScreenResume(job dbmodels.Job, resumeText string) (result models.AIResult, notes string, err error)
}

var Instance Provider

func NewHandler() {
	Instance = impl{
		client: yagptclient.NewClient(config.Conf.AI.YaGPTToken, config.Conf.AI.YaGPTCatalog),
	}
}

type impl struct {
	client yagptclient.Provider
}

func (i impl) ScreenResume(job dbmodels.Job, resumeText string) (result models.AIResult, notes string, err error) {
	text := fmt.Sprintf("Job: %s\nGrade: %s\nRole overview: %s\nKey responsibilities: %s\nKey skills: %s\n\nResume:\n%s",
		job.Title, job.Grade, job.RoleOverview, job.KeyResponsibilities, job.KeySkillsAndCompetencies, resumeText)
	answer, err := i.client.GenerateByPromtAndText(screeningPromt, text)
	if err != nil {
		log.WithField("job_id", job.ID).WithError(err).Error("resume screening request failed")
		return "", "", err
	}
	return parseVerdict(answer)
}

func parseVerdict(answer string) (models.AIResult, string, error) {
	trimmed := strings.TrimSpace(answer)
	firstLine := trimmed
	rest := ""
	if idx := strings.IndexByte(trimmed, '\n'); idx >= 0 {
		firstLine = trimmed[:idx]
		rest = strings.TrimSpace(trimmed[idx+1:])
	}
	switch {
	case strings.Contains(strings.ToUpper(firstLine), "SHORTLISTED"):
		return models.AIResultShortlisted, rest, nil
	case strings.Contains(strings.ToUpper(firstLine), "REJECTED"):
		return models.AIResultRejected, rest, nil
	}
	// model ignored the format, keep the whole answer as notes
	return "", trimmed, nil
}
