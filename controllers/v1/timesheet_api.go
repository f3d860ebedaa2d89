package apiv1

import (
	"github.com/gofiber/fiber/v2"

	"hiring-backend/controllers"
	timesheethandler "hiring-backend/lib/timesheet"
	apimodels "hiring-backend/models/api"
	timesheetapimodels "hiring-backend/models/api/timesheet"
)

type timesheetApiController struct {
	controllers.BaseAPIController
}

func InitTimesheetApiRouters(app fiber.Router) {
	controller := timesheetApiController{}
	app.Route("timesheets", func(router fiber.Router) {
		router.Post("", controller.upsertEntry)
		router.Get("sheet", controller.monthlySheet)
		router.Get("utilization", controller.monthlyUtilization)
		router.Get("utilization/yearly", controller.yearlyUtilization)
		router.Get("utilization/export", controller.exportUtilization)
	})
}

// @Summary Record hours
// @Tags Timesheets
// @Description Record hours for an employee on a project for a day, overwriting an existing entry
// @Param   Authorization		header		string	true	"Authorization token"
// @Param	body body	 timesheetapimodels.EntryRequest	true	"request body"
// @Success 200 {object} apimodels.Response{data=dbmodels.Timesheet}
// @Failure 400 {object} apimodels.Response
// @Failure 404 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/timesheets [post]
func (c *timesheetApiController) upsertEntry(ctx *fiber.Ctx) error {
	var payload timesheetapimodels.EntryRequest
	if err := c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	if err := payload.Validate(); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	rec, err := timesheethandler.Instance.UpsertEntry(payload)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "failed to record hours")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(rec))
}

// @Summary Monthly sheet
// @Tags Timesheets
// @Description Entries of one employee for a month
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   employee_id 		query   string  	true	"employee"
// @Param   month       		query   int     	true	"month 1-12"
// @Param   year        		query   int     	true	"year"
// @Success 200 {object} apimodels.Response{data=[]dbmodels.Timesheet}
// @Failure 400 {object} apimodels.Response
// @Failure 404 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/timesheets/sheet [get]
func (c *timesheetApiController) monthlySheet(ctx *fiber.Ctx) error {
	employeeID := ctx.Query("employee_id")
	if employeeID == "" {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError("employee_id is required"))
	}
	list, err := timesheethandler.Instance.MonthlySheet(employeeID, ctx.QueryInt("month"), ctx.QueryInt("year"))
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "failed to load timesheet")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(list))
}

// @Summary Monthly utilization
// @Tags Timesheets
// @Description Total hours per employee for a month
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   month       		query   int     	true	"month 1-12"
// @Param   year        		query   int     	true	"year"
// @Success 200 {object} apimodels.Response{data=[]timesheetapimodels.UtilizationRow}
// @Failure 400 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/timesheets/utilization [get]
func (c *timesheetApiController) monthlyUtilization(ctx *fiber.Ctx) error {
	list, err := timesheethandler.Instance.MonthlyUtilization(ctx.QueryInt("month"), ctx.QueryInt("year"))
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "failed to load utilization")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(list))
}

// @Summary Yearly utilization
// @Tags Timesheets
// @Description Per-month hours of one employee for a year
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   employee_id 		query   string  	true	"employee"
// @Param   year        		query   int     	true	"year"
// @Success 200 {object} apimodels.Response{data=[]timesheetapimodels.UtilizationRow}
// @Failure 400 {object} apimodels.Response
// @Failure 404 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/timesheets/utilization/yearly [get]
func (c *timesheetApiController) yearlyUtilization(ctx *fiber.Ctx) error {
	employeeID := ctx.Query("employee_id")
	if employeeID == "" {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError("employee_id is required"))
	}
	list, err := timesheethandler.Instance.YearlyUtilization(employeeID, ctx.QueryInt("year"))
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "failed to load utilization")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(list))
}

// @Summary Export utilization
// @Tags Timesheets
// @Description Monthly utilization as an XLSX workbook
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   month       		query   int     	true	"month 1-12"
// @Param   year        		query   int     	true	"year"
// @Success 200 {file} binary
// @Failure 400 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/timesheets/utilization/export [get]
func (c *timesheetApiController) exportUtilization(ctx *fiber.Ctx) error {
	buf, err := timesheethandler.Instance.ExportUtilizationXLSX(ctx.QueryInt("month"), ctx.QueryInt("year"))
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "failed to export utilization")
	}
	ctx.Set(fiber.HeaderContentType, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	ctx.Set(fiber.HeaderContentDisposition, `attachment; filename="utilization.xlsx"`)
	return ctx.Status(fiber.StatusOK).Send(buf.Bytes())
}
