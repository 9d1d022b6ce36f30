package assets

import "testing"

func TestCleanAssetPath(t *testing.T) {
	cases := []struct {
		in, want string
	}{
		{"", ""},
		{"sounds/menuhit.wav", "sounds/menuhit.wav"},
		{"assets/sounds/fail.wav", "sounds/fail.wav"},
		{"/home/me/tapbeat/assets/skin/tab.png", "skin/tab.png"},
		{"/tmp/tab.png", "tab.png"},
	}
	for _, c := range cases {
		t.Run(c.in, func(t *testing.T) {
			if got := cleanAssetPath(c.in); got != c.want {
				t.Fatalf("cleanAssetPath(%q) = %q, want %q", c.in, got, c.want)
			}
		})
	}
}

func TestExists(t *testing.T) {
	if !Exists("embed.go") {
		t.Fatalf("expected embed.go to be embedded")
	}
	if Exists("sounds/nope.wav") {
		t.Fatalf("unexpected asset")
	}
}
