package log

import (
	"bytes"
	"encoding/json"
	"testing"
)

func TestConfigure_JSONLevel(t *testing.T) {
	var buf bytes.Buffer
	Configure(Config{Level: "info", Output: &buf, JSON: true})
	t.Cleanup(func() { Configure(Config{}) })

	l := WithComponent("buildconf")
	l.Debug().Msg("hidden")
	l.Info().Str("os", "linux").Msg("resolved")

	lines := bytes.Split(bytes.TrimSpace(buf.Bytes()), []byte("\n"))
	if len(lines) != 1 {
		t.Fatalf("expected 1 log line, got %d: %s", len(lines), buf.String())
	}

	var entry map[string]any
	if err := json.Unmarshal(lines[0], &entry); err != nil {
		t.Fatalf("unmarshal log line: %v", err)
	}
	if entry["component"] != "buildconf" {
		t.Errorf("component = %v, want buildconf", entry["component"])
	}
	if entry["message"] != "resolved" {
		t.Errorf("message = %v, want resolved", entry["message"])
	}
	if entry["os"] != "linux" {
		t.Errorf("os = %v, want linux", entry["os"])
	}
}

func TestConfigure_UnknownLevelFallsBackToWarn(t *testing.T) {
	var buf bytes.Buffer
	Configure(Config{Level: "chatty", Output: &buf, JSON: true})
	t.Cleanup(func() { Configure(Config{}) })

	l := Base()
	l.Info().Msg("dropped")
	l.Warn().Msg("kept")

	if bytes.Contains(buf.Bytes(), []byte("dropped")) {
		t.Errorf("info line should be filtered at warn level: %s", buf.String())
	}
	if !bytes.Contains(buf.Bytes(), []byte("kept")) {
		t.Errorf("warn line missing: %s", buf.String())
	}
}
