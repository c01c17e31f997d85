package models

import (
	"reflect"
	"testing"
)

func TestParseMetadataJSON(t *testing.T) {
	m := ParseMetadata(`{"url":"https://a.test/items","pages":3}`)
	parsed, ok := m.Parsed.(map[string]interface{})
	if !ok {
		t.Fatalf("expected parsed JSON object, got %T", m.Parsed)
	}
	if parsed["url"] != "https://a.test/items" {
		t.Errorf("unexpected parsed value: %v", parsed)
	}
	if !reflect.DeepEqual(m.RunnerValue(), m.Parsed) {
		t.Error("RunnerValue must return the structured value for JSON metadata")
	}
}

func TestParseMetadataFreeText(t *testing.T) {
	raw := "ghi chú vận hành, không phải JSON"
	m := ParseMetadata(raw)
	if m.Parsed != nil {
		t.Fatalf("free text must not parse, got %v", m.Parsed)
	}
	if m.RunnerValue() != raw {
		t.Errorf("RunnerValue must fall back to the raw string, got %v", m.RunnerValue())
	}
}

func TestIsCrawlerStatus(t *testing.T) {
	for _, status := range CrawlerStatuses {
		if !IsCrawlerStatus(status) {
			t.Errorf("%s must be a valid status", status)
		}
	}
	if IsCrawlerStatus("running") {
		t.Error("running is not a valid status")
	}
	if IsCrawlerStatus("") {
		t.Error("empty string is not a valid status")
	}
}
