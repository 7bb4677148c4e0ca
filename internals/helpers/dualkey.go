package helper

import (
	"strings"

	"github.com/gofiber/fiber/v2"
)

/* ===============================
   Dual-keyed row shaping
=================================*/

// Public rows carry every field under both its snake_case and camelCase name
// (image_url AND imageUrl). The web frontend reads camelCase, the admin panel
// reads snake_case; both shapes must keep working without call-site mapping.

// SnakeToCamel converts one snake_case key to camelCase. Keys without an
// underscore pass through unchanged.
func SnakeToCamel(s string) string {
	if !strings.Contains(s, "_") {
		return s
	}
	parts := strings.Split(s, "_")
	var b strings.Builder
	b.WriteString(parts[0])
	for _, p := range parts[1:] {
		if p == "" {
			continue
		}
		b.WriteString(strings.ToUpper(p[:1]))
		b.WriteString(p[1:])
	}
	return b.String()
}

// DualMap takes a snake_case-keyed row and returns a copy that also carries a
// camelCase alias for every key, pointing at the same value. Pure function;
// the input map is not modified.
func DualMap(row fiber.Map) fiber.Map {
	out := make(fiber.Map, len(row)*2)
	for k, v := range row {
		out[k] = v
		if camel := SnakeToCamel(k); camel != k {
			out[camel] = v
		}
	}
	return out
}

// DualMapSlice applies DualMap to every row.
func DualMapSlice(rows []fiber.Map) []fiber.Map {
	out := make([]fiber.Map, 0, len(rows))
	for _, r := range rows {
		out = append(out, DualMap(r))
	}
	return out
}
