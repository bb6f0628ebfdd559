package dataset

import (
	"strings"
	"testing"
)

func TestResolveColumns_PreferredNames(t *testing.T) {
	t.Parallel()

	columns := []string{"Flight Number", "Launch Site", "class", "Payload Mass (kg)", "Booster Version", "Booster Version Category"}

	cm, err := ResolveColumns(columns)
	if err != nil {
		t.Fatalf("resolve: %v", err)
	}
	if cm.Site != "Launch Site" {
		t.Fatalf("site column = %q", cm.Site)
	}
	if cm.Payload != "Payload Mass (kg)" {
		t.Fatalf("payload column = %q", cm.Payload)
	}
	if cm.Outcome != "class" {
		t.Fatalf("outcome column = %q", cm.Outcome)
	}
	if cm.Booster != "Booster Version Category" {
		t.Fatalf("booster column = %q", cm.Booster)
	}
}

func TestResolveColumns_FallbackNames(t *testing.T) {
	t.Parallel()

	columns := []string{"LaunchSite", "Class", "PayloadMassKg", "BoosterVersionCategory"}

	cm, err := ResolveColumns(columns)
	if err != nil {
		t.Fatalf("resolve: %v", err)
	}
	if cm.Payload != "PayloadMassKg" {
		t.Fatalf("payload column = %q, want PayloadMassKg", cm.Payload)
	}
	if cm.Site != "LaunchSite" {
		t.Fatalf("site column = %q", cm.Site)
	}
	if cm.Booster != "BoosterVersionCategory" {
		t.Fatalf("booster column = %q", cm.Booster)
	}
}

func TestResolveColumns_OrderedPreference(t *testing.T) {
	t.Parallel()

	// 多个候选列同时存在时，取优先级最高的那个
	columns := []string{"PayloadMassKg", "Payload Mass (kg)", "PayloadMass", "Launch Site", "class", "Booster Version Category"}

	cm, err := ResolveColumns(columns)
	if err != nil {
		t.Fatalf("resolve: %v", err)
	}
	if cm.Payload != "Payload Mass (kg)" {
		t.Fatalf("payload column = %q, want Payload Mass (kg)", cm.Payload)
	}
}

func TestResolveColumns_MissingPayload(t *testing.T) {
	t.Parallel()

	columns := []string{"Launch Site", "class", "Booster Version Category", "Orbit"}

	_, err := ResolveColumns(columns)
	if err == nil {
		t.Fatal("expected error for missing payload column")
	}
	// 错误信息需要带上可用列名便于排查
	if !strings.Contains(err.Error(), "Orbit") || !strings.Contains(err.Error(), "Launch Site") {
		t.Fatalf("error should list available columns: %v", err)
	}
	if !strings.Contains(err.Error(), "payload") {
		t.Fatalf("error should name the missing field: %v", err)
	}
}
