package log

import (
	"bytes"
	"context"
	"encoding/json"
	"strings"
	"testing"
)

// TestZerologProviderOutput tests that the zerolog provider emits structured JSON
func TestZerologProviderOutput(t *testing.T) {
	var buf bytes.Buffer
	provider := NewZerologProvider(&buf, LevelDebug)

	logger := provider.GetLoggerWithName("tree.grower")
	logger.Info("split chosen",
		AttributeKey, "no-surfacing",
		GainKey, 0.42,
	)

	line := strings.TrimSpace(buf.String())
	if line == "" {
		t.Fatal("Expected log output, got empty string")
	}

	var entry map[string]interface{}
	if err := json.Unmarshal([]byte(line), &entry); err != nil {
		t.Fatalf("Failed to parse log line as JSON: %v", err)
	}

	if entry[ComponentKey] != "tree.grower" {
		t.Errorf("Expected component %q, got %v", "tree.grower", entry[ComponentKey])
	}

	if entry[AttributeKey] != "no-surfacing" {
		t.Errorf("Expected attribute field, got %v", entry[AttributeKey])
	}

	if entry["message"] != "split chosen" {
		t.Errorf("Expected message 'split chosen', got %v", entry["message"])
	}
}

// TestZerologProviderLevelFiltering tests that records below the provider level are dropped
func TestZerologProviderLevelFiltering(t *testing.T) {
	var buf bytes.Buffer
	provider := NewZerologProvider(&buf, LevelWarn)

	logger := provider.GetLogger()
	logger.Debug("hidden debug")
	logger.Info("hidden info")
	logger.Warn("visible warning")

	output := buf.String()
	if strings.Contains(output, "hidden debug") || strings.Contains(output, "hidden info") {
		t.Errorf("Low-level records should be filtered out: %s", output)
	}
	if !strings.Contains(output, "visible warning") {
		t.Errorf("Warn record should be emitted: %s", output)
	}

	// Enabled must agree with what is emitted
	ctx := context.Background()
	if logger.Enabled(ctx, LevelDebug) {
		t.Error("Enabled(LevelDebug) should be false at warn level")
	}
	if !logger.Enabled(ctx, LevelError) {
		t.Error("Enabled(LevelError) should be true at warn level")
	}
}

// TestZerologProviderSetLevel tests level adjustment after construction
func TestZerologProviderSetLevel(t *testing.T) {
	var buf bytes.Buffer
	provider := NewZerologProvider(&buf, LevelWarn)

	provider.GetLogger().Info("before raise")
	provider.SetLevel(LevelDebug)
	provider.GetLogger().Info("after raise")

	output := buf.String()
	if strings.Contains(output, "before raise") {
		t.Error("Info record should be filtered before SetLevel")
	}
	if !strings.Contains(output, "after raise") {
		t.Error("Info record should be emitted after SetLevel")
	}
}

// TestZerologProviderWith tests contextual field chaining through With
func TestZerologProviderWith(t *testing.T) {
	var buf bytes.Buffer
	provider := NewZerologProvider(&buf, LevelDebug)

	logger := provider.GetLogger().With(
		ModelNameKey, "DecisionTreeClassifier",
	)
	logger.Info("training started", SamplesKey, 5)

	var entry map[string]interface{}
	if err := json.Unmarshal([]byte(strings.TrimSpace(buf.String())), &entry); err != nil {
		t.Fatalf("Failed to parse log line as JSON: %v", err)
	}

	if entry[ModelNameKey] != "DecisionTreeClassifier" {
		t.Errorf("Expected contextual model name, got %v", entry[ModelNameKey])
	}
	if entry[SamplesKey] != 5.0 {
		t.Errorf("Expected samples field 5, got %v", entry[SamplesKey])
	}
}

// TestDefaultProviderSingleton tests the package-level accessors
func TestDefaultProviderSingleton(t *testing.T) {
	logger := GetLogger()
	if logger == nil {
		t.Fatal("GetLogger returned nil")
	}

	named := GetLoggerWithName("test.component")
	if named == nil {
		t.Fatal("GetLoggerWithName returned nil")
	}

	// The default provider writes to stderr at warn level; just exercise the
	// calls without asserting on process-level output.
	named.Debug("quiet by default")
}
