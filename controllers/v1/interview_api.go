package apiv1

import (
	"github.com/gofiber/fiber/v2"

	"hiring-backend/controllers"
	interviewhandler "hiring-backend/lib/interview"
	apimodels "hiring-backend/models/api"
	interviewapimodels "hiring-backend/models/api/interview"
)

type interviewApiController struct {
	controllers.BaseAPIController
}

func InitInterviewApiRouters(app fiber.Router) {
	controller := interviewApiController{}
	app.Route("interviews", func(router fiber.Router) {
		router.Get("", controller.list)
		router.Post("", controller.schedule)
		router.Get("stats", controller.stats)
		router.Route(":id", func(idRoute fiber.Router) {
			idRoute.Get("", controller.get)
			idRoute.Post("outcome", controller.submitOutcome)
		})
	})
}

// @Summary Schedule interview
// @Tags Interviews
// @Description Book the applicant's next pipeline stage with an interviewer
// @Param   Authorization		header		string	true	"Authorization token"
// @Param	body body	 interviewapimodels.ScheduleRequest	true	"request body"
// @Success 200 {object} apimodels.Response{data=interviewapimodels.View}
// @Failure 400 {object} apimodels.Response
// @Failure 404 {object} apimodels.Response
// @Failure 409 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/interviews [post]
func (c *interviewApiController) schedule(ctx *fiber.Ctx) error {
	var payload interviewapimodels.ScheduleRequest
	if err := c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	if err := payload.Validate(); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	view, err := interviewhandler.Instance.Schedule(ctx.UserContext(), payload)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "failed to schedule interview")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(view))
}

// @Summary Submit outcome
// @Tags Interviews
// @Description Record the result of a scheduled interview
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   id          		path    string  	true	"rec ID"
// @Param	body body	 interviewapimodels.OutcomeRequest	true	"request body"
// @Success 200 {object} apimodels.Response{data=interviewapimodels.View}
// @Failure 400 {object} apimodels.Response
// @Failure 404 {object} apimodels.Response
// @Failure 409 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/interviews/{id}/outcome [post]
func (c *interviewApiController) submitOutcome(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	var payload interviewapimodels.OutcomeRequest
	if err = c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	if err = payload.Validate(); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	view, err := interviewhandler.Instance.SubmitOutcome(ctx.UserContext(), id, payload)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "failed to submit outcome")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(view))
}

// @Summary Get interview
// @Tags Interviews
// @Description Interview by ID with its stage and outcome
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   id          		path    string  	true	"rec ID"
// @Success 200 {object} apimodels.Response{data=interviewapimodels.View}
// @Failure 400 {object} apimodels.Response
// @Failure 404 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/interviews/{id} [get]
func (c *interviewApiController) get(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	view, err := interviewhandler.Instance.GetByID(id)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "failed to load interview")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(view))
}

// @Summary Interview list
// @Tags Interviews
// @Description Interviews filtered by job
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   job_id      		query   string  	true	"job filter"
// @Success 200 {object} apimodels.Response{data=[]interviewapimodels.View}
// @Failure 400 {object} apimodels.Response
// @Failure 404 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/interviews [get]
func (c *interviewApiController) list(ctx *fiber.Ctx) error {
	jobID := ctx.Query("job_id")
	if jobID == "" {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError("job_id is required"))
	}
	list, err := interviewhandler.Instance.ListByJob(jobID)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "failed to list interviews")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(list))
}

// @Summary Stage statistics
// @Tags Interviews
// @Description Pass, fail and pending counts per pipeline stage
// @Param   Authorization		header		string	true	"Authorization token"
// @Success 200 {object} apimodels.Response{data=[]interviewapimodels.StageStatsView}
// @Failure 500 {object} apimodels.Response
// @router /api/v1/interviews/stats [get]
func (c *interviewApiController) stats(ctx *fiber.Ctx) error {
	list, err := interviewhandler.Instance.StageStats()
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "failed to load stage stats")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(list))
}
