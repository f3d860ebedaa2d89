package apiv1

import (
	"github.com/gofiber/fiber/v2"

	"hiring-backend/controllers"
	interviewerhandler "hiring-backend/lib/interviewer"
	"hiring-backend/middleware"
	"hiring-backend/models"
	apimodels "hiring-backend/models/api"
	staffapimodels "hiring-backend/models/api/staff"
)

type interviewerApiController struct {
	controllers.BaseAPIController
}

func InitInterviewerApiRouters(app fiber.Router) {
	controller := interviewerApiController{}
	app.Route("interviewers", func(router fiber.Router) {
		router.Get("", controller.list)
		router.Post("", middleware.RequireRoles(models.UserRoleHR), controller.create)
		router.Route(":id", func(idRoute fiber.Router) {
			idRoute.Get("", controller.get)
			idRoute.Put("", middleware.RequireRoles(models.UserRoleHR), controller.update)
			idRoute.Delete("", middleware.RequireRoles(models.UserRoleHR), controller.delete)
		})
	})
}

// @Summary Create interviewer
// @Tags Interviewers
// @Description Register an interviewer
// @Param   Authorization		header		string	true	"Authorization token"
// @Param	body body	 staffapimodels.InterviewerSaveRequest	true	"request body"
// @Success 200 {object} apimodels.Response{data=string}
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 409 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/interviewers [post]
func (c *interviewerApiController) create(ctx *fiber.Ctx) error {
	var payload staffapimodels.InterviewerSaveRequest
	if err := c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	if err := payload.Validate(); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	id, err := interviewerhandler.Instance.Create(payload)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "failed to create interviewer")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(id))
}

// @Summary Update interviewer
// @Tags Interviewers
// @Description Update an interviewer
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   id          		path    string  	true	"rec ID"
// @Param	body body	 staffapimodels.InterviewerSaveRequest	true	"request body"
// @Success 200 {object} apimodels.Response
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 404 {object} apimodels.Response
// @Failure 409 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/interviewers/{id} [put]
func (c *interviewerApiController) update(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	var payload staffapimodels.InterviewerSaveRequest
	if err = c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	if err = payload.Validate(); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	if err = interviewerhandler.Instance.Update(id, payload); err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "failed to update interviewer")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(nil))
}

// @Summary Get interviewer
// @Tags Interviewers
// @Description Interviewer by ID
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   id          		path    string  	true	"rec ID"
// @Success 200 {object} apimodels.Response{data=dbmodels.Interviewer}
// @Failure 400 {object} apimodels.Response
// @Failure 404 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/interviewers/{id} [get]
func (c *interviewerApiController) get(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	rec, err := interviewerhandler.Instance.GetByID(id)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "failed to load interviewer")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(rec))
}

// @Summary Interviewer list
// @Tags Interviewers
// @Description Interviewers, optionally filtered by interview type
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   type        		query   string  	false	"interview type filter"
// @Success 200 {object} apimodels.Response{data=[]dbmodels.Interviewer}
// @Failure 500 {object} apimodels.Response
// @router /api/v1/interviewers [get]
func (c *interviewerApiController) list(ctx *fiber.Ctx) error {
	list, err := interviewerhandler.Instance.List(ctx.Query("type"))
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "failed to list interviewers")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(list))
}

// @Summary Delete interviewer
// @Tags Interviewers
// @Description Remove an interviewer
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   id          		path    string  	true	"rec ID"
// @Success 200 {object} apimodels.Response
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 404 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/interviewers/{id} [delete]
func (c *interviewerApiController) delete(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	if err = interviewerhandler.Instance.Delete(id); err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "failed to delete interviewer")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(nil))
}
