package msg

import (
	"errors"
	"testing"
	"time"
)

func TestGetMessageFromBundle(t *testing.T) {
	if got := GetMessage("alert.location-not-found"); got != "Location not found" {
		t.Fatalf("got %q", got)
	}
	if got := GetMessage("view.no-forecast"); got != "No forecast available." {
		t.Fatalf("got %q", got)
	}
}

func TestGetMessagePlaceholders(t *testing.T) {
	got := GetMessage("weather.current-failed", "Paris", errors.New("boom"))
	if got != "Failed to fetch current weather for Paris: boom" {
		t.Fatalf("got %q", got)
	}

	got = GetMessage("weather.stale-discarded", "suggestions", uint64(3), uint64(4))
	if got != "Discarded stale suggestions response (seq 3, latest 4)" {
		t.Fatalf("got %q", got)
	}

	got = GetMessage("app.req-end", "GET", "/", 200, 1500*time.Millisecond, "abc")
	if got != "Request GET / finished with status 200 in 1.5s (request_id=abc)" {
		t.Fatalf("got %q", got)
	}
}

func TestGetMessageMissingKey(t *testing.T) {
	if got := GetMessage("does.not.exist"); got != "Message not found: does.not.exist" {
		t.Fatalf("got %q", got)
	}
}

func TestLoadReplacesBundle(t *testing.T) {
	previous := messages
	t.Cleanup(func() { messages = previous })

	if err := Load([]byte("greeting:\n  hello: \"Hello {0}\"\n")); err != nil {
		t.Fatalf("load: %v", err)
	}
	if got := GetMessage("greeting.hello", "world"); got != "Hello world" {
		t.Fatalf("got %q", got)
	}
	if got := GetMessage("alert.location-not-found"); got != "Message not found: alert.location-not-found" {
		t.Fatalf("old bundle still visible: %q", got)
	}
}
