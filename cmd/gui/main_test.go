package main

import (
	"testing"

	"github.com/kacebover/bassline-generator/bassline"
)

// TestScaleDisplayNamesUnique ensures the scale select labels map back to
// exactly one scale identifier
func TestScaleDisplayNamesUnique(t *testing.T) {
	seen := make(map[string]string)
	for _, name := range bassline.NewScales().AvailableScales() {
		label := bassline.DisplayName(name)
		if other, ok := seen[label]; ok {
			t.Errorf("display name %q is ambiguous: %s and %s", label, other, name)
		}
		seen[label] = name
	}
}
