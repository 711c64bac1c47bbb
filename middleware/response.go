package middleware

import "github.com/gofiber/fiber/v2"

// JsonResponse writes the {success, message, data} envelope used by every route.
func JsonResponse(c *fiber.Ctx, statusCode int, success bool, message string, data interface{}) error {
	body := fiber.Map{
		"success": success,
		"message": message,
	}
	if data != nil {
		body["data"] = data
	}
	return c.Status(statusCode).JSON(body)
}

func ValidationErrorResponse(c *fiber.Ctx, message string, errors map[string]string) error {
	return JsonResponse(c, fiber.StatusBadRequest, false, message, errors)
}
