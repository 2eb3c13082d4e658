// file: internals/helpers/json_response.go
package helper

import (
	"github.com/gofiber/fiber/v2"
)

/* ===============================
   Bentuk response API
   - list/detail : body JSON apa adanya
   - sukses      : {"success": true, ...extra}
   - error       : {"error": "pesan"}
=================================*/

// JsonData: response mentah (array/objek) untuk endpoint listing publik.
func JsonData(c *fiber.Ctx, data any) error {
	return c.Status(fiber.StatusOK).JSON(data)
}

// JsonSuccess: {"success": true} plus field tambahan opsional.
func JsonSuccess(c *fiber.Ctx, extra ...fiber.Map) error {
	body := fiber.Map{"success": true}
	for _, m := range extra {
		for k, v := range m {
			body[k] = v
		}
	}
	return c.Status(fiber.StatusOK).JSON(body)
}

// JsonError: error generic; selalu {"error": message}.
func JsonError(c *fiber.Ctx, status int, message string) error {
	if message == "" {
		message = fiber.ErrInternalServerError.Message
	}
	if status == 0 {
		status = fiber.StatusInternalServerError
	}
	return c.Status(status).JSON(fiber.Map{"error": message})
}
