package apiv1

import (
	"github.com/gofiber/fiber/v2"

	"hiring-backend/controllers"
	authhandler "hiring-backend/lib/auth"
	authutils "hiring-backend/lib/utils/auth-utils"
	"hiring-backend/middleware"
	apimodels "hiring-backend/models/api"
	authapimodels "hiring-backend/models/api/auth"
)

type authApiController struct {
	controllers.BaseAPIController
}

func InitAuthApiRouters(app fiber.Router) {
	controller := authApiController{}
	app.Route("auth", func(router fiber.Router) {
		router.Post("register", controller.register)
		router.Post("login", controller.login)
		router.Route("", func(secured fiber.Router) {
			secured.Use(middleware.AuthorizationRequired())
			secured.Get("me", controller.me)
			secured.Post("logout", controller.logout)
			secured.Put("password", controller.updatePassword)
			secured.Put("role", middleware.AdminOnly(), controller.updateRole)
			secured.Get("users", middleware.AdminOnly(), controller.listUsers)
		})
	})
}

// @Summary Register
// @Tags Auth
// @Description Register a new user account
// @Param	body body	 authapimodels.RegisterRequest	true	"request body"
// @Success 200 {object} apimodels.Response{data=authapimodels.TokenResponse}
// @Failure 400 {object} apimodels.Response
// @Failure 409 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/auth/register [post]
func (c *authApiController) register(ctx *fiber.Ctx) error {
	var payload authapimodels.RegisterRequest
	if err := c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	if err := payload.Validate(); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	resp, err := authhandler.Instance.Register(payload)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "failed to register user")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(resp))
}

// @Summary Login
// @Tags Auth
// @Description Exchange credentials for a JWT
// @Param	body body	 authapimodels.LoginRequest	true	"request body"
// @Success 200 {object} apimodels.Response{data=authapimodels.TokenResponse}
// @Failure 400 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/auth/login [post]
func (c *authApiController) login(ctx *fiber.Ctx) error {
	var payload authapimodels.LoginRequest
	if err := c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	if err := payload.Validate(); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	resp, err := authhandler.Instance.Login(payload)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "failed to log in")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(resp))
}

// @Summary Current user
// @Tags Auth
// @Description Profile of the authenticated user
// @Param   Authorization		header		string	true	"Authorization token"
// @Success 200 {object} apimodels.Response{data=authapimodels.UserView}
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/auth/me [get]
func (c *authApiController) me(ctx *fiber.Ctx) error {
	userID := authutils.GetUserID(ctx)
	view, err := authhandler.Instance.Me(userID)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "failed to load profile")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(view))
}

// @Summary Logout
// @Tags Auth
// @Description Invalidate the session on the client side; tokens are stateless
// @Param   Authorization		header		string	true	"Authorization token"
// @Success 200 {object} apimodels.Response
// @Failure 403
// @router /api/v1/auth/logout [post]
func (c *authApiController) logout(ctx *fiber.Ctx) error {
	c.GetLogger(ctx).Info("user logged out")
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(nil))
}

// @Summary Change password
// @Tags Auth
// @Description Change the password of the authenticated user
// @Param   Authorization		header		string	true	"Authorization token"
// @Param	body body	 authapimodels.UpdatePasswordRequest	true	"request body"
// @Success 200 {object} apimodels.Response
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/auth/password [put]
func (c *authApiController) updatePassword(ctx *fiber.Ctx) error {
	var payload authapimodels.UpdatePasswordRequest
	if err := c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	if err := payload.Validate(); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	userID := authutils.GetUserID(ctx)
	if err := authhandler.Instance.UpdatePassword(userID, payload); err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "failed to change password")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(nil))
}

// @Summary Change role
// @Tags Auth
// @Description Change another user's role (admin only)
// @Param   Authorization		header		string	true	"Authorization token"
// @Param	body body	 authapimodels.UpdateRoleRequest	true	"request body"
// @Success 200 {object} apimodels.Response
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/auth/role [put]
func (c *authApiController) updateRole(ctx *fiber.Ctx) error {
	var payload authapimodels.UpdateRoleRequest
	if err := c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	if err := payload.Validate(); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	if err := authhandler.Instance.UpdateRole(payload); err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "failed to change role")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(nil))
}

// @Summary User list
// @Tags Auth
// @Description All registered users (admin only)
// @Param   Authorization		header		string	true	"Authorization token"
// @Success 200 {object} apimodels.Response{data=[]authapimodels.UserView}
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/auth/users [get]
func (c *authApiController) listUsers(ctx *fiber.Ctx) error {
	list, err := authhandler.Instance.List()
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "failed to list users")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(list))
}
