package sanitize

import (
	"strings"
	"testing"
)

func TestStripTags_PlainTextUnchanged(t *testing.T) {
	in := "This is a test message with sufficient length"
	if got := StripTags(in); got != in {
		t.Errorf("plain text changed: got %q", got)
	}
}

func TestStripTags_EmptyPassthrough(t *testing.T) {
	if got := StripTags(""); got != "" {
		t.Errorf("expected empty passthrough, got %q", got)
	}
}

func TestStripTags_RemovesScriptEntirely(t *testing.T) {
	got := StripTags("<script>alert(1)</script>Hi")
	if strings.Contains(got, "<script") {
		t.Errorf("script tag survived: %q", got)
	}
	if strings.Contains(got, "alert(1)") {
		t.Errorf("script body survived: %q", got)
	}
	if !strings.Contains(got, "Hi") {
		t.Errorf("surrounding text lost: %q", got)
	}
}

func TestStripTags_UnwrapsMarkup(t *testing.T) {
	got := StripTags(`Hello <b>World</b> from <a href="http://evil.example">me</a>`)
	if strings.ContainsAny(got, "<>") {
		t.Errorf("markup survived: %q", got)
	}
	for _, want := range []string{"Hello", "World", "me"} {
		if !strings.Contains(got, want) {
			t.Errorf("text content %q lost: %q", want, got)
		}
	}
}

func TestStripTags_EventHandlerAttributes(t *testing.T) {
	got := StripTags(`<img src=x onerror="alert(1)">Subject`)
	if strings.Contains(got, "onerror") || strings.Contains(got, "<img") {
		t.Errorf("dangerous attribute survived: %q", got)
	}
	if !strings.Contains(got, "Subject") {
		t.Errorf("text content lost: %q", got)
	}
}

func TestStripTags_NestedAndMalformed(t *testing.T) {
	cases := []string{
		"<scr<script>ipt>alert(1)</scr</script>ipt>name",
		"<<b>script>payload</b>",
		"<IMG SRC=\"javascript:alert('XSS')\">ok",
	}
	for _, in := range cases {
		got := StripTags(in)
		if strings.Contains(got, "<script") || strings.Contains(got, "javascript:alert") {
			t.Errorf("StripTags(%q) left an executable payload: %q", in, got)
		}
	}
}
