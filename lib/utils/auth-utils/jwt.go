package authutils

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"

	"hiring-backend/config"
	"hiring-backend/models"
)

func GetToken(userID, name string, role models.UserRole) (tokenString string, err error) {
	claims := jwt.MapClaims{
		"name": name,
		"sub":  userID,
		"role": string(role),
		"exp":  time.Now().Add(time.Second * time.Duration(config.Conf.Auth.JWTExpireInSec)).Unix(),
		"iat":  time.Now().Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(config.Conf.Auth.JWTSecret))
}

func GetClaims(ctx *fiber.Ctx) jwt.MapClaims {
	token, ok := ctx.Locals("user").(*jwt.Token)
	if !ok {
		return jwt.MapClaims{}
	}
	return token.Claims.(jwt.MapClaims)
}

func GetUserID(ctx *fiber.Ctx) string {
	claims := GetClaims(ctx)
	sub, _ := claims["sub"].(string)
	return sub
}

func GetUserRole(ctx *fiber.Ctx) models.UserRole {
	claims := GetClaims(ctx)
	role, _ := claims["role"].(string)
	return models.UserRole(role)
}

func GetIssuedAt(ctx *fiber.Ctx) time.Time {
	claims := GetClaims(ctx)
	switch iat := claims["iat"].(type) {
	case float64:
		return time.Unix(int64(iat), 0)
	case int64:
		return time.Unix(iat, 0)
	}
	return time.Time{}
}
