package jellyfin

import (
	"net/url"
	"strings"
	"testing"
)

func TestNormalizeURL(t *testing.T) {
	tests := []struct{ in, want string }{
		{"media.example.com", "https://media.example.com"},
		{" http://10.0.0.2:8096/ ", "http://10.0.0.2:8096"},
		{"https://media.example.com//", "https://media.example.com"},
	}
	for _, tt := range tests {
		if got := normalizeURL(tt.in); got != tt.want {
			t.Errorf("normalizeURL(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestFeaturedSubset(t *testing.T) {
	items := []MediaItem{
		{ID: "a", BackdropTags: []string{"x"}},
		{ID: "b"},
		{ID: "c", ImageTags: map[string]string{"Primary": "p"}},
		{ID: "d", BackdropTags: []string{"y"}, ImageTags: map[string]string{"Primary": "p"}},
		{ID: "e", BackdropTags: []string{"z"}},
	}

	ids := func(items []MediaItem) string {
		var s []string
		for _, it := range items {
			s = append(s, it.ID)
		}
		return strings.Join(s, ",")
	}

	if got := ids(featuredSubset(items, 10, false)); got != "a,c,d,e" {
		t.Errorf("backdrop subset = %s", got)
	}
	if got := ids(featuredSubset(items, 10, true)); got != "c,d" {
		t.Errorf("primary subset = %s", got)
	}
	if got := ids(featuredSubset(items, 2, false)); got != "a,c" {
		t.Errorf("limited subset = %s", got)
	}
}

func TestSlideArtURL(t *testing.T) {
	c := NewClient("media.example.com")

	withBackdrop := MediaItem{ID: "42", BackdropTags: []string{"t"}}
	u, err := url.Parse(c.SlideArtURL(withBackdrop, false))
	if err != nil {
		t.Fatal(err)
	}
	if u.Path != "/Items/42/Images/Backdrop" || u.Query().Get("maxWidth") != "1440" {
		t.Errorf("backdrop url = %s", u)
	}

	u, _ = url.Parse(c.SlideArtURL(withBackdrop, true))
	if u.Path != "/Items/42/Images/Primary" {
		t.Errorf("primary url = %s", u)
	}

	u, _ = url.Parse(c.SlideArtURL(MediaItem{ID: "7"}, false))
	if u.Path != "/Items/7/Images/Primary" {
		t.Errorf("fallback url = %s", u)
	}
}

func TestGetStreamURL(t *testing.T) {
	c := NewClient("https://media.example.com")
	c.SetToken("secret", "user")
	u, err := url.Parse(c.GetStreamURL("abc"))
	if err != nil {
		t.Fatal(err)
	}
	if u.Path != "/Videos/abc/stream" || u.Query().Get("api_key") != "secret" || u.Query().Get("Static") != "true" {
		t.Errorf("stream url = %s", u)
	}
}
