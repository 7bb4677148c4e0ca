package oss

import (
	"mime/multipart"
	"strings"

	"github.com/gofiber/fiber/v2"
)

// IsMultipart reports whether the request carries a multipart form.
func IsMultipart(c *fiber.Ctx) bool {
	ct := strings.ToLower(c.Get(fiber.HeaderContentType))
	return strings.HasPrefix(ct, "multipart/form-data")
}

// FormFile returns the first file found under the given field names, or nil
// when the form carries none.
func FormFile(c *fiber.Ctx, fieldNames ...string) *multipart.FileHeader {
	if !IsMultipart(c) {
		return nil
	}
	for _, name := range fieldNames {
		if fh, err := c.FormFile(name); err == nil && fh != nil {
			return fh
		}
	}
	return nil
}
