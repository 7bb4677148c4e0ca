package helper

import (
	"errors"
	"log"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// JsonStoreError maps a store failure to the HTTP edge: missing row → 404,
// anything else → a generic 500. The underlying error is logged, not leaked.
func JsonStoreError(c *fiber.Ctx, err error, notFoundMsg string) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return JsonError(c, fiber.StatusNotFound, notFoundMsg)
	}
	log.Printf("[STORE] %s %s: %v", c.Method(), c.OriginalURL(), err)
	return JsonError(c, fiber.StatusInternalServerError, "Operation failed")
}
