package helper

import (
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
)

func TestSnakeToCamel(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"image_url", "imageUrl"},
		{"created_at", "createdAt"},
		{"tag_ids", "tagIds"},
		{"id", "id"},
		{"sort_order", "sortOrder"},
		{"a_b_c", "aBC"},
		{"", ""},
	}
	for _, tc := range cases {
		if got := SnakeToCamel(tc.in); got != tc.want {
			t.Fatalf("SnakeToCamel(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestDualMapAliasesEveryKey(t *testing.T) {
	in := fiber.Map{
		"id":         "x",
		"image_url":  "https://example.com/a.webp",
		"tag_ids":    []string{"t1"},
		"sort_order": 3,
		"active":     true,
	}
	out := DualMap(in)

	for k, v := range in {
		if got, ok := out[k]; !ok || !equalValue(got, v) {
			t.Fatalf("snake key %q missing or changed in output", k)
		}
		camel := SnakeToCamel(k)
		if camel == k {
			continue
		}
		got, ok := out[camel]
		if !ok {
			t.Fatalf("camel alias %q missing for key %q", camel, k)
		}
		if !equalValue(got, v) {
			t.Fatalf("alias %q = %v, want %v", camel, got, v)
		}
	}

	// every camelCase key must mirror a snake key, no strays
	for k := range out {
		if strings.Contains(k, "_") {
			continue
		}
		found := false
		for sk := range in {
			if SnakeToCamel(sk) == k || sk == k {
				found = true
				break
			}
		}
		if !found {
			t.Fatalf("unexpected output key %q", k)
		}
	}
}

func TestDualMapDoesNotMutateInput(t *testing.T) {
	in := fiber.Map{"image_url": "u"}
	_ = DualMap(in)
	if len(in) != 1 {
		t.Fatalf("input map mutated: %v", in)
	}
}

func equalValue(a, b any) bool {
	switch av := a.(type) {
	case []string:
		bv, ok := b.([]string)
		if !ok || len(av) != len(bv) {
			return false
		}
		for i := range av {
			if av[i] != bv[i] {
				return false
			}
		}
		return true
	default:
		return a == b
	}
}
