package apiv1

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"hiring-backend/controllers"
	employeehandler "hiring-backend/lib/employee"
	"hiring-backend/middleware"
	"hiring-backend/models"
	apimodels "hiring-backend/models/api"
	staffapimodels "hiring-backend/models/api/staff"
)

type employeeApiController struct {
	controllers.BaseAPIController
}

func InitEmployeeApiRouters(app fiber.Router) {
	controller := employeeApiController{}
	app.Route("employees", func(router fiber.Router) {
		router.Get("", controller.list)
		router.Post("", middleware.RequireRoles(models.UserRoleHR), controller.create)
		router.Route(":id", func(idRoute fiber.Router) {
			idRoute.Get("", controller.get)
			idRoute.Put("", middleware.RequireRoles(models.UserRoleHR), controller.update)
			idRoute.Delete("", middleware.RequireRoles(models.UserRoleHR), controller.delete)
			idRoute.Get("availability", controller.availability)
		})
	})
}

// @Summary Create employee
// @Tags Employees
// @Description Add an employee to the roster
// @Param   Authorization		header		string	true	"Authorization token"
// @Param	body body	 staffapimodels.EmployeeSaveRequest	true	"request body"
// @Success 200 {object} apimodels.Response{data=string}
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 409 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/employees [post]
func (c *employeeApiController) create(ctx *fiber.Ctx) error {
	var payload staffapimodels.EmployeeSaveRequest
	if err := c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	if err := payload.Validate(); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	id, err := employeehandler.Instance.Create(payload)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "failed to create employee")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(id))
}

// @Summary Update employee
// @Tags Employees
// @Description Update an employee record
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   id          		path    string  	true	"rec ID"
// @Param	body body	 staffapimodels.EmployeeSaveRequest	true	"request body"
// @Success 200 {object} apimodels.Response
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 404 {object} apimodels.Response
// @Failure 409 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/employees/{id} [put]
func (c *employeeApiController) update(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	var payload staffapimodels.EmployeeSaveRequest
	if err = c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	if err = payload.Validate(); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	if err = employeehandler.Instance.Update(id, payload); err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "failed to update employee")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(nil))
}

// @Summary Get employee
// @Tags Employees
// @Description Employee by ID with assigned projects
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   id          		path    string  	true	"rec ID"
// @Success 200 {object} apimodels.Response{data=dbmodels.Employee}
// @Failure 400 {object} apimodels.Response
// @Failure 404 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/employees/{id} [get]
func (c *employeeApiController) get(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	rec, err := employeehandler.Instance.GetByID(id)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "failed to load employee")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(rec))
}

// @Summary Employee list
// @Tags Employees
// @Description Employees, optionally filtered by department
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   department  		query   string  	false	"department filter"
// @Success 200 {object} apimodels.Response{data=[]dbmodels.Employee}
// @Failure 500 {object} apimodels.Response
// @router /api/v1/employees [get]
func (c *employeeApiController) list(ctx *fiber.Ctx) error {
	list, err := employeehandler.Instance.List(ctx.Query("department"))
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "failed to list employees")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(list))
}

// @Summary Delete employee
// @Tags Employees
// @Description Remove an employee from the roster
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   id          		path    string  	true	"rec ID"
// @Success 200 {object} apimodels.Response
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 404 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/employees/{id} [delete]
func (c *employeeApiController) delete(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	if err = employeehandler.Instance.Delete(id); err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "failed to delete employee")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(nil))
}

// @Summary Employee availability
// @Tags Employees
// @Description Day-by-day availability against project assignments
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   id          		path    string  	true	"rec ID"
// @Param   start_date  		query   string  	true	"range start, YYYY-MM-DD"
// @Param   end_date    		query   string  	true	"range end, YYYY-MM-DD"
// @Success 200 {object} apimodels.Response{data=staffapimodels.AvailabilityView}
// @Failure 400 {object} apimodels.Response
// @Failure 404 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/employees/{id}/availability [get]
func (c *employeeApiController) availability(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	from, err := time.Parse("2006-01-02", ctx.Query("start_date"))
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError("start_date must be YYYY-MM-DD"))
	}
	to, err := time.Parse("2006-01-02", ctx.Query("end_date"))
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError("end_date must be YYYY-MM-DD"))
	}
	view, err := employeehandler.Instance.Availability(id, from, to)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "failed to compute availability")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(view))
}
