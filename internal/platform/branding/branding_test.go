package branding

import "testing"

func TestAppName(t *testing.T) {
	if AppName == "" {
		t.Fatal("expected AppName to be non-empty")
	}
	if AppName != "BuryatVPN" {
		t.Fatalf("AppName = %q, want %q", AppName, "BuryatVPN")
	}
}

func TestConsoleHeading(t *testing.T) {
	if ConsoleHeading != "Админ панель" {
		t.Fatalf("ConsoleHeading = %q", ConsoleHeading)
	}
}
