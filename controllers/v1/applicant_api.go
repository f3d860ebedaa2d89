package apiv1

import (
	"io"

	"github.com/gofiber/fiber/v2"

	"hiring-backend/controllers"
	applicanthandler "hiring-backend/lib/applicant"
	filestorage "hiring-backend/lib/file-storage"
	interviewhandler "hiring-backend/lib/interview"
	"hiring-backend/middleware"
	"hiring-backend/models"
	apimodels "hiring-backend/models/api"
	applicantapimodels "hiring-backend/models/api/applicant"
	dbmodels "hiring-backend/models/db"
)

type applicantApiController struct {
	controllers.BaseAPIController
}

func InitApplicantApiRouters(app fiber.Router) {
	controller := applicantApiController{}
	app.Route("applicants", func(router fiber.Router) {
		router.Get("", controller.list)
		router.Post("", controller.create)
		router.Get("export/xlsx", middleware.RequireRoles(models.UserRoleHR), controller.exportXLSX)
		router.Route(":id", func(idRoute fiber.Router) {
			idRoute.Get("", controller.get)
			idRoute.Delete("", middleware.RequireRoles(models.UserRoleHR), controller.delete)
			idRoute.Post("screen", middleware.RequireRoles(models.UserRoleHR), controller.screen)
			idRoute.Get("next-stage", controller.nextStage)
			idRoute.Get("outcomes", controller.outcomes)
			idRoute.Get("interviews", controller.interviews)
			idRoute.Put("offer-decision", middleware.RequireRoles(models.UserRoleHR), controller.offerDecision)
			idRoute.Post("resume", controller.uploadResume)
			idRoute.Get("resume", controller.downloadResume)
			idRoute.Get("files", controller.listFiles)
		})
	})
	app.Route("files", func(router fiber.Router) {
		router.Get(":id", controller.downloadFile)
	})
}

// @Summary Create applicant
// @Tags Applicants
// @Description Register an application for a job
// @Param   Authorization		header		string	true	"Authorization token"
// @Param	body body	 applicantapimodels.CreateRequest	true	"request body"
// @Success 200 {object} apimodels.Response{data=applicantapimodels.View}
// @Failure 400 {object} apimodels.Response
// @Failure 404 {object} apimodels.Response
// @Failure 409 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/applicants [post]
func (c *applicantApiController) create(ctx *fiber.Ctx) error {
	var payload applicantapimodels.CreateRequest
	if err := c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	if err := payload.Validate(); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	view, err := applicanthandler.Instance.Create(payload)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "failed to create applicant")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(view))
}

// @Summary Get applicant
// @Tags Applicants
// @Description Applicant by ID
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   id          		path    string  	true	"rec ID"
// @Success 200 {object} apimodels.Response{data=applicantapimodels.View}
// @Failure 400 {object} apimodels.Response
// @Failure 404 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/applicants/{id} [get]
func (c *applicantApiController) get(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	view, err := applicanthandler.Instance.GetByID(id)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "failed to load applicant")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(view))
}

// @Summary Applicant list
// @Tags Applicants
// @Description Applicants filtered by job and status
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   job_id      		query   string  	false	"job filter"
// @Param   status      		query   string  	false	"status filter"
// @Success 200 {object} apimodels.Response{data=[]applicantapimodels.View}
// @Failure 500 {object} apimodels.Response
// @router /api/v1/applicants [get]
func (c *applicantApiController) list(ctx *fiber.Ctx) error {
	list, err := applicanthandler.Instance.List(ctx.Query("job_id"), ctx.Query("status"))
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "failed to list applicants")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(list))
}

// @Summary Delete applicant
// @Tags Applicants
// @Description Remove an applicant and their history
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   id          		path    string  	true	"rec ID"
// @Success 200 {object} apimodels.Response
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 404 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/applicants/{id} [delete]
func (c *applicantApiController) delete(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	if err = applicanthandler.Instance.Delete(id); err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "failed to delete applicant")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(nil))
}

// @Summary Screen resume
// @Tags Applicants
// @Description Run the resume through AI screening
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   id          		path    string  	true	"rec ID"
// @Success 200 {object} apimodels.Response{data=applicantapimodels.View}
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 404 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/applicants/{id}/screen [post]
func (c *applicantApiController) screen(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	view, err := applicanthandler.Instance.ScreenResume(ctx.UserContext(), id)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "failed to screen resume")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(view))
}

// @Summary Next stage proposal
// @Tags Applicants
// @Description Which stage the applicant may be scheduled for next
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   id          		path    string  	true	"rec ID"
// @Success 200 {object} apimodels.Response{data=interviewapimodels.ProposalView}
// @Failure 400 {object} apimodels.Response
// @Failure 404 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/applicants/{id}/next-stage [get]
func (c *applicantApiController) nextStage(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	view, err := interviewhandler.Instance.ProposeNextStage(id)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "failed to compute next stage")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(view))
}

// @Summary Outcome history
// @Tags Applicants
// @Description All stage outcomes of the applicant in pipeline order
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   id          		path    string  	true	"rec ID"
// @Success 200 {object} apimodels.Response{data=[]interviewapimodels.OutcomeView}
// @Failure 400 {object} apimodels.Response
// @Failure 404 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/applicants/{id}/outcomes [get]
func (c *applicantApiController) outcomes(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	list, err := interviewhandler.Instance.OutcomeHistory(id)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "failed to load outcomes")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(list))
}

// @Summary Applicant interviews
// @Tags Applicants
// @Description All interviews of the applicant
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   id          		path    string  	true	"rec ID"
// @Success 200 {object} apimodels.Response{data=[]interviewapimodels.View}
// @Failure 400 {object} apimodels.Response
// @Failure 404 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/applicants/{id}/interviews [get]
func (c *applicantApiController) interviews(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	list, err := interviewhandler.Instance.ListByApplicant(id)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "failed to list interviews")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(list))
}

// @Summary Offer decision
// @Tags Applicants
// @Description Record the applicant's decision on an outstanding offer
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   id          		path    string  	true	"rec ID"
// @Param	body body	 applicantapimodels.OfferDecisionRequest	true	"request body"
// @Success 200 {object} apimodels.Response{data=applicantapimodels.View}
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 404 {object} apimodels.Response
// @Failure 409 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/applicants/{id}/offer-decision [put]
func (c *applicantApiController) offerDecision(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	var payload applicantapimodels.OfferDecisionRequest
	if err = c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	if err = payload.Validate(); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	view, err := interviewhandler.Instance.SubmitOfferDecision(ctx.UserContext(), id, payload.Decision)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "failed to record offer decision")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(view))
}

// @Summary Upload resume
// @Tags Applicants
// @Description Attach a resume file to the applicant
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   id          		path    string  	true	"rec ID"
// @Param   file        		formData	file	true	"resume file"
// @Success 200 {object} apimodels.Response{data=string}
// @Failure 400 {object} apimodels.Response
// @Failure 404 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/applicants/{id}/resume [post]
func (c *applicantApiController) uploadResume(ctx *fiber.Ctx) error {
	return c.uploadFile(ctx, dbmodels.FileTypeResume)
}

func (c *applicantApiController) uploadFile(ctx *fiber.Ctx, fileType dbmodels.FileType) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	if _, err = applicanthandler.Instance.GetByID(id); err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "failed to load applicant")
	}
	fileHeader, err := ctx.FormFile("file")
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError("file is required"))
	}
	file, err := fileHeader.Open()
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "failed to read uploaded file")
	}
	defer file.Close()
	body, err := io.ReadAll(file)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "failed to read uploaded file")
	}
	fileID, err := filestorage.Instance.Upload(ctx.UserContext(), id, fileType,
		fileHeader.Filename, fileHeader.Header.Get("Content-Type"), body)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "failed to store file")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(fileID))
}

// @Summary Download resume
// @Tags Applicants
// @Description Latest resume of the applicant
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   id          		path    string  	true	"rec ID"
// @Success 200 {file} binary
// @Failure 400 {object} apimodels.Response
// @Failure 404 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/applicants/{id}/resume [get]
func (c *applicantApiController) downloadResume(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	rec, body, err := filestorage.Instance.GetResume(ctx.UserContext(), id)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "failed to load resume")
	}
	ctx.Set(fiber.HeaderContentType, rec.ContentType)
	ctx.Set(fiber.HeaderContentDisposition, `attachment; filename="`+rec.FileName+`"`)
	return ctx.Status(fiber.StatusOK).Send(body)
}

// @Summary Applicant files
// @Tags Applicants
// @Description Metadata of files attached to the applicant
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   id          		path    string  	true	"rec ID"
// @Success 200 {object} apimodels.Response{data=[]dbmodels.FileRecord}
// @Failure 400 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/applicants/{id}/files [get]
func (c *applicantApiController) listFiles(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	list, err := filestorage.Instance.List(id, dbmodels.FileType(ctx.Query("type")))
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "failed to list files")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(list))
}

// @Summary Download file
// @Tags Applicants
// @Description File body by file ID
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   id          		path    string  	true	"file ID"
// @Success 200 {file} binary
// @Failure 400 {object} apimodels.Response
// @Failure 404 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/files/{id} [get]
func (c *applicantApiController) downloadFile(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	rec, body, err := filestorage.Instance.Download(ctx.UserContext(), id)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "failed to load file")
	}
	ctx.Set(fiber.HeaderContentType, rec.ContentType)
	ctx.Set(fiber.HeaderContentDisposition, `attachment; filename="`+rec.FileName+`"`)
	return ctx.Status(fiber.StatusOK).Send(body)
}

// @Summary Export applicants
// @Tags Applicants
// @Description Applicant list as an XLSX workbook
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   job_id      		query   string  	false	"job filter"
// @Param   status      		query   string  	false	"status filter"
// @Success 200 {file} binary
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/applicants/export/xlsx [get]
func (c *applicantApiController) exportXLSX(ctx *fiber.Ctx) error {
	buf, err := applicanthandler.Instance.ExportXLSX(ctx.Query("job_id"), ctx.Query("status"))
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "failed to export applicants")
	}
	ctx.Set(fiber.HeaderContentType, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	ctx.Set(fiber.HeaderContentDisposition, `attachment; filename="applicants.xlsx"`)
	return ctx.Status(fiber.StatusOK).Send(buf.Bytes())
}
