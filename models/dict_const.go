package models

type FunctionArea string

const (
	FunctionDataTransformation FunctionArea = "Data Transformation"
	FunctionAnalyticsAI        FunctionArea = "Analytics and AI"
	FunctionLowCode            FunctionArea = "Low Code"
	FunctionDigitalEnablement  FunctionArea = "Digital Enablement"
	FunctionInnovation         FunctionArea = "Innovation and Emerging Tech"
)

var FunctionAreas = []FunctionArea{
	FunctionDataTransformation,
	FunctionAnalyticsAI,
	FunctionLowCode,
	FunctionDigitalEnablement,
	FunctionInnovation,
}

func (f FunctionArea) Valid() bool {
	for _, v := range FunctionAreas {
		if f == v {
			return true
		}
	}
	return false
}

type Grade string

const (
	GradeAnalyst          Grade = "Analyst"
	GradeAssociate        Grade = "Associate"
	GradeSeniorAssociate  Grade = "Senior Associate"
	GradeAssistantManager Grade = "Assistant Manager"
	GradeManager          Grade = "Manager"
	GradeManagerOne       Grade = "Manager-1"
	GradeSeniorManager    Grade = "Senior Manager"
	GradeDirector         Grade = "Director"
)

var Grades = []Grade{
	GradeAnalyst,
	GradeAssociate,
	GradeSeniorAssociate,
	GradeAssistantManager,
	GradeManager,
	GradeManagerOne,
	GradeSeniorManager,
	GradeDirector,
}

func (g Grade) Valid() bool {
	for _, v := range Grades {
		if g == v {
			return true
		}
	}
	return false
}

type HiringUrgency string

const (
	UrgencyImmediate HiringUrgency = "Urgent - Immediate Hire"
	UrgencyHigh      HiringUrgency = "High Priority"
	UrgencyNormal    HiringUrgency = "Normal"
	UrgencyLow       HiringUrgency = "Low Priority"
)

type JobStatus string

const (
	JobStatusActive JobStatus = "Active"
	JobStatusPaused JobStatus = "Paused"
	JobStatusClosed JobStatus = "Closed"
)

type ProjectStatus string

const (
	ProjectStatusPlanning   ProjectStatus = "Planning"
	ProjectStatusInProgress ProjectStatus = "In Progress"
	ProjectStatusCompleted  ProjectStatus = "Completed"
	ProjectStatusOnHold     ProjectStatus = "On Hold"
)
