package cloud

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestSampleSceneDeterministic(t *testing.T) {
	a := SampleScene(200, 42)
	b := SampleScene(200, 42)

	if diff := cmp.Diff(a, b); diff != "" {
		t.Errorf("same seed should reproduce the cloud (-got +want):\n%s", diff)
	}
}

func TestSampleSceneSeedVaries(t *testing.T) {
	a := SampleScene(200, 1)
	b := SampleScene(200, 2)

	if diff := cmp.Diff(a, b); diff == "" {
		t.Error("different seeds should produce different clouds")
	}
}

func TestSampleSceneShape(t *testing.T) {
	points := SampleScene(1000, 99)
	if len(points) != 1000 {
		t.Fatalf("expected 1000 points, got %d", len(points))
	}

	for i, p := range points {
		if p.Intensity < 0 || p.Intensity > 1 {
			t.Fatalf("point %d intensity out of range: %v", i, p.Intensity)
		}
		if r := p.Position.Length(); r > 8 {
			t.Fatalf("point %d unexpectedly far from origin: %v", i, r)
		}
	}
}
