package apiv1

import (
	"github.com/gofiber/fiber/v2"

	"hiring-backend/controllers"
	projecthandler "hiring-backend/lib/project"
	"hiring-backend/middleware"
	"hiring-backend/models"
	apimodels "hiring-backend/models/api"
	projectapimodels "hiring-backend/models/api/project"
)

type projectApiController struct {
	controllers.BaseAPIController
}

func InitProjectApiRouters(app fiber.Router) {
	controller := projectApiController{}
	app.Route("projects", func(router fiber.Router) {
		router.Get("", controller.list)
		router.Post("", middleware.RequireRoles(models.UserRoleManager), controller.create)
		router.Route(":id", func(idRoute fiber.Router) {
			idRoute.Get("", controller.get)
			idRoute.Put("", middleware.RequireRoles(models.UserRoleManager), controller.update)
			idRoute.Delete("", middleware.RequireRoles(models.UserRoleManager), controller.delete)
			idRoute.Put("assign", middleware.RequireRoles(models.UserRoleManager), controller.assign)
		})
	})
}

// @Summary Create project
// @Tags Projects
// @Description Open a project, optionally with initial assignees
// @Param   Authorization		header		string	true	"Authorization token"
// @Param	body body	 projectapimodels.SaveRequest	true	"request body"
// @Success 200 {object} apimodels.Response{data=string}
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 404 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/projects [post]
func (c *projectApiController) create(ctx *fiber.Ctx) error {
	var payload projectapimodels.SaveRequest
	if err := c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	if err := payload.Validate(); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	id, err := projecthandler.Instance.Create(payload)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "failed to create project")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(id))
}

// @Summary Update project
// @Tags Projects
// @Description Update a project, replacing assignees when given
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   id          		path    string  	true	"rec ID"
// @Param	body body	 projectapimodels.SaveRequest	true	"request body"
// @Success 200 {object} apimodels.Response
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 404 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/projects/{id} [put]
func (c *projectApiController) update(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	var payload projectapimodels.SaveRequest
	if err = c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	if err = payload.Validate(); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	if err = projecthandler.Instance.Update(id, payload); err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "failed to update project")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(nil))
}

// @Summary Get project
// @Tags Projects
// @Description Project by ID with its assignees
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   id          		path    string  	true	"rec ID"
// @Success 200 {object} apimodels.Response{data=dbmodels.Project}
// @Failure 400 {object} apimodels.Response
// @Failure 404 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/projects/{id} [get]
func (c *projectApiController) get(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	rec, err := projecthandler.Instance.GetByID(id)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "failed to load project")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(rec))
}

// @Summary Project list
// @Tags Projects
// @Description Projects, optionally filtered by status
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   status      		query   string  	false	"status filter"
// @Success 200 {object} apimodels.Response{data=[]dbmodels.Project}
// @Failure 500 {object} apimodels.Response
// @router /api/v1/projects [get]
func (c *projectApiController) list(ctx *fiber.Ctx) error {
	list, err := projecthandler.Instance.List(ctx.Query("status"))
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "failed to list projects")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(list))
}

// @Summary Assign employees
// @Tags Projects
// @Description Replace the project's assignee list
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   id          		path    string  	true	"rec ID"
// @Param	body body	 projectapimodels.AssignRequest	true	"request body"
// @Success 200 {object} apimodels.Response{data=dbmodels.Project}
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 404 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/projects/{id}/assign [put]
func (c *projectApiController) assign(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	var payload projectapimodels.AssignRequest
	if err = c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	if err = payload.Validate(); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	rec, err := projecthandler.Instance.Assign(id, payload.EmployeeIDs)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "failed to assign employees")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(rec))
}

// @Summary Delete project
// @Tags Projects
// @Description Remove a project
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   id          		path    string  	true	"rec ID"
// @Success 200 {object} apimodels.Response
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 404 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/projects/{id} [delete]
func (c *projectApiController) delete(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	if err = projecthandler.Instance.Delete(id); err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "failed to delete project")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(nil))
}
