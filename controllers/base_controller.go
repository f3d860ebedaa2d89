package controllers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"

	authutils "hiring-backend/lib/utils/auth-utils"
	"hiring-backend/models"
	apimodels "hiring-backend/models/api"
)

type BaseAPIController struct{}

func (c *BaseAPIController) BodyParser(ctx *fiber.Ctx, out interface{}) error {
	if err := ctx.BodyParser(out); err != nil {
		log.WithError(err).Error("failed to parse request body")
		return errors.New("failed to read request data")
	}
	return nil
}

func (c *BaseAPIController) GetID(ctx *fiber.Ctx) (string, error) {
	id := ctx.Params("id")
	if id == "" {
		return "", errors.New("record id is required")
	}
	return id, nil
}

func (c *BaseAPIController) GetLogger(ctx *fiber.Ctx) *log.Entry {
	return log.
		WithField("path", ctx.Path()).
		WithField("user_id", authutils.GetUserID(ctx))
}

// SendError turns a handler error into an HTTP response. Rejections keep
// their reason and map to a client status, everything else is a 500 with a
// generic message.
func (c *BaseAPIController) SendError(ctx *fiber.Ctx, logger *log.Entry, err error, msg string) error {
	if rej, ok := models.AsRejection(err); ok {
		status := fiber.StatusBadRequest
		switch rej.Kind {
		case models.RejectNotFound:
			status = fiber.StatusNotFound
		case models.RejectConflict:
			status = fiber.StatusConflict
		}
		return ctx.Status(status).JSON(apimodels.NewError(rej.Reason))
	}
	logger.WithError(err).Error(msg)
	return ctx.Status(fiber.StatusInternalServerError).JSON(apimodels.NewError(msg))
}
