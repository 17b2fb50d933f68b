package mdtext

import "testing"

func TestExtractInlineMarkup(t *testing.T) {
	cases := []struct {
		name string
		src  string
		want string
	}{
		{"plain", "Hello world.\n", "Hello world."},
		{"link", "Click [here](https://example.com) now.\n", "Click here now."},
		{"emphasis", "This is *really* **bold** text.\n", "This is really bold text."},
		{"code span", "Use `fmt.Println` to print.\n", "Use fmt.Println to print."},
		{"image", "See ![alt text](image.png) here.\n", "See alt text here."},
		{"soft break", "Hello\nworld.\n", "Hello world."},
		{"autolink", "Visit <https://example.com> today.\n", "Visit https://example.com today."},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if got := Extract([]byte(c.src)); got != c.want {
				t.Fatalf("got %q, want %q", got, c.want)
			}
		})
	}
}

func TestExtractBlocks(t *testing.T) {
	src := "# Title\n\nSome *text* here.\n\n```go\nfmt.Println(\"x\")\n```\n\n---\n\n- one\n- two\n\n> quoted line\n\n<div>html</div>\n"
	want := "Title\n\nSome text here.\n\none\n\ntwo\n\nquoted line"
	if got := Extract([]byte(src)); got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
}

func TestExtractIndentedCodeDropped(t *testing.T) {
	src := "Intro.\n\n    indented code\n\nOutro.\n"
	if got := Extract([]byte(src)); got != "Intro.\n\nOutro." {
		t.Fatalf("got %q", got)
	}
}

func TestExtractEmpty(t *testing.T) {
	if got := Extract(nil); got != "" {
		t.Fatalf("expected empty output, got %q", got)
	}
}
