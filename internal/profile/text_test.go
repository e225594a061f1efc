package profile

import "testing"

func TestCleanText(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"  hello   world  ", "hello world"},
		{"line\none\n\ttwo", "line one two"},
		{"", ""},
		{"   \n\t  ", ""},
	}

	for _, tt := range tests {
		if got := CleanText(tt.in); got != tt.want {
			t.Errorf("CleanText(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestNormText(t *testing.T) {
	if got := NormText("  Mental  HEALTH Support "); got != "mental health support" {
		t.Errorf("unexpected norm: %q", got)
	}
}

func TestHTMLToText(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"plain text untouched", "no markup here", "no markup here"},
		{"tags stripped", "<p>Funding of <b>S$20,000</b> available.</p>", "Funding of S$20,000 available."},
		{"script dropped", "<div>visible</div><script>alert(1)</script>", "visible"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := HTMLToText(tt.in); got != tt.want {
				t.Errorf("HTMLToText(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestJoinNonEmpty(t *testing.T) {
	got := JoinNonEmpty([]string{" a ", "", "  ", "b"}, "\n")
	if got != "a\nb" {
		t.Errorf("expected %q, got %q", "a\nb", got)
	}
}

func TestTruncateText(t *testing.T) {
	if got := TruncateText("abcdefghij", 8); got != "abcde..." {
		t.Errorf("expected abcde..., got %q", got)
	}
	if got := TruncateText("short", 10); got != "short" {
		t.Errorf("expected short, got %q", got)
	}
}
