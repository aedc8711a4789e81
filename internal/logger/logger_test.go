package logger

import (
	"bytes"
	"encoding/json"
	"testing"
)

// SetupがJSON形式でログを出力することを検証
func TestSetup_WritesJSONLog(t *testing.T) {
	var buf bytes.Buffer

	log := Setup(&buf)
	log.Info("test message", "key", "value")

	var entry map[string]interface{}
	if err := json.Unmarshal(buf.Bytes(), &entry); err != nil {
		t.Fatalf("log output should be valid JSON: %v", err)
	}

	if entry["msg"] != "test message" {
		t.Errorf("msg = %v, want %q", entry["msg"], "test message")
	}
	if entry["key"] != "value" {
		t.Errorf("key = %v, want %q", entry["key"], "value")
	}
}

// DebugレベルのログはInfoレベル設定では出力されないことを検証
func TestSetup_SuppressesDebugLevel(t *testing.T) {
	var buf bytes.Buffer

	log := Setup(&buf)
	log.Debug("should not appear")

	if buf.Len() != 0 {
		t.Errorf("debug log should be suppressed, got: %s", buf.String())
	}
}
