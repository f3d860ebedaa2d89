package apiv1

import (
	"github.com/gofiber/fiber/v2"

	"hiring-backend/controllers"
	hiringmanagerhandler "hiring-backend/lib/hiring-manager"
	"hiring-backend/middleware"
	"hiring-backend/models"
	apimodels "hiring-backend/models/api"
	staffapimodels "hiring-backend/models/api/staff"
)

type hiringManagerApiController struct {
	controllers.BaseAPIController
}

func InitHiringManagerApiRouters(app fiber.Router) {
	controller := hiringManagerApiController{}
	app.Route("hiring-managers", func(router fiber.Router) {
		router.Get("", controller.list)
		router.Post("", middleware.RequireRoles(models.UserRoleHR), controller.create)
		router.Route(":id", func(idRoute fiber.Router) {
			idRoute.Get("", controller.get)
			idRoute.Put("", middleware.RequireRoles(models.UserRoleHR), controller.update)
			idRoute.Delete("", middleware.RequireRoles(models.UserRoleHR), controller.delete)
		})
	})
}

// @Summary Create hiring manager
// @Tags HiringManagers
// @Description Register a hiring manager
// @Param   Authorization		header		string	true	"Authorization token"
// @Param	body body	 staffapimodels.HiringManagerSaveRequest	true	"request body"
// @Success 200 {object} apimodels.Response{data=string}
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 409 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/hiring-managers [post]
func (c *hiringManagerApiController) create(ctx *fiber.Ctx) error {
	var payload staffapimodels.HiringManagerSaveRequest
	if err := c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	if err := payload.Validate(); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	id, err := hiringmanagerhandler.Instance.Create(payload)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "failed to create hiring manager")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(id))
}

// @Summary Update hiring manager
// @Tags HiringManagers
// @Description Update a hiring manager
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   id          		path    string  	true	"rec ID"
// @Param	body body	 staffapimodels.HiringManagerSaveRequest	true	"request body"
// @Success 200 {object} apimodels.Response
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 404 {object} apimodels.Response
// @Failure 409 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/hiring-managers/{id} [put]
func (c *hiringManagerApiController) update(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	var payload staffapimodels.HiringManagerSaveRequest
	if err = c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	if err = payload.Validate(); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	if err = hiringmanagerhandler.Instance.Update(id, payload); err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "failed to update hiring manager")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(nil))
}

// @Summary Get hiring manager
// @Tags HiringManagers
// @Description Hiring manager by ID
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   id          		path    string  	true	"rec ID"
// @Success 200 {object} apimodels.Response{data=dbmodels.HiringManager}
// @Failure 400 {object} apimodels.Response
// @Failure 404 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/hiring-managers/{id} [get]
func (c *hiringManagerApiController) get(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	rec, err := hiringmanagerhandler.Instance.GetByID(id)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "failed to load hiring manager")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(rec))
}

// @Summary Hiring manager list
// @Tags HiringManagers
// @Description All hiring managers
// @Param   Authorization		header		string	true	"Authorization token"
// @Success 200 {object} apimodels.Response{data=[]dbmodels.HiringManager}
// @Failure 500 {object} apimodels.Response
// @router /api/v1/hiring-managers [get]
func (c *hiringManagerApiController) list(ctx *fiber.Ctx) error {
	list, err := hiringmanagerhandler.Instance.List()
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "failed to list hiring managers")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(list))
}

// @Summary Delete hiring manager
// @Tags HiringManagers
// @Description Remove a hiring manager
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   id          		path    string  	true	"rec ID"
// @Success 200 {object} apimodels.Response
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 404 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/hiring-managers/{id} [delete]
func (c *hiringManagerApiController) delete(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	if err = hiringmanagerhandler.Instance.Delete(id); err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "failed to delete hiring manager")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(nil))
}
