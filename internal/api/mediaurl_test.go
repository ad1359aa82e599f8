package api_test

import (
	"testing"

	"cofau/internal/api"
)

const base = "https://api.cofau.app"

func TestNormalizeMediaURL(t *testing.T) {
	cases := []struct {
		name string
		raw  string
		want string
	}{
		{"empty stays empty", "", ""},
		{"absolute https passes through", "https://cdn.cofau.app/x.jpg", "https://cdn.cofau.app/x.jpg"},
		{"absolute http passes through", "http://cdn.cofau.app/x.jpg", "http://cdn.cofau.app/x.jpg"},
		{"protocol relative gets https", "//cdn.cofau.app/x.jpg", "https://cdn.cofau.app/x.jpg"},
		{"server path joined onto base", "/media/x.jpg", "https://api.cofau.app/media/x.jpg"},
		{"bare path joined onto base", "media/x.jpg", "https://api.cofau.app/media/x.jpg"},
		{"backslashes repaired", "\\media\\x.jpg", "https://api.cofau.app/media/x.jpg"},
		{"protocol relative keeps inner slashes", "//cdn.cofau.app//m//x.jpg", "https://cdn.cofau.app//m//x.jpg"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := api.NormalizeMediaURL(base, tc.raw); got != tc.want {
				t.Fatalf("NormalizeMediaURL(%q) = %q, want %q", tc.raw, got, tc.want)
			}
		})
	}
}

func TestFixURL(t *testing.T) {
	cases := []struct {
		name string
		base string
		path string
		want string
	}{
		{"plain join", base, "media/x.jpg", "https://api.cofau.app/media/x.jpg"},
		{"leading slash", base, "/media/x.jpg", "https://api.cofau.app/media/x.jpg"},
		{"trailing slash on base", base + "/", "/media/x.jpg", "https://api.cofau.app/media/x.jpg"},
		{"empty path returns base", base, "", "https://api.cofau.app"},
		{"many slashes", base + "//", "///media/x.jpg", "https://api.cofau.app/media/x.jpg"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := api.FixURL(tc.base, tc.path); got != tc.want {
				t.Fatalf("FixURL(%q, %q) = %q, want %q", tc.base, tc.path, got, tc.want)
			}
		})
	}
}
