package session

import (
	"context"
	"testing"
)

func TestEnvKeyGate(t *testing.T) {
	gate := EnvKeyGate{Var: "PULSE_TEST_VIDEO_KEY"}

	if gate.HasSelectedKey() {
		t.Error("expected no key selected for an unset variable")
	}
	if err := gate.SelectKey(context.Background()); err == nil {
		t.Error("expected headless key selection to fail")
	}

	t.Setenv("PULSE_TEST_VIDEO_KEY", "secret")
	if !gate.HasSelectedKey() {
		t.Error("expected a set variable to count as selected")
	}
}
