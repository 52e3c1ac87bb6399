package diagnostics

import (
	"math/rand/v2"
	"testing"
)

func testRotator(topics []string) *Rotator {
	return NewRotator(topics).withRand(rand.New(rand.NewPCG(7, 11)))
}

func TestRotator_NeverRepeatsPrevious(t *testing.T) {
	r := testRotator(nil)

	prev := r.Next(nil)
	for i := 0; i < 200; i++ {
		next := r.Next([]string{prev})
		if next == prev {
			t.Fatalf("draw %d repeated topic %q", i, prev)
		}
		prev = next
	}
}

func TestRotator_ExcludesThreeMostRecent(t *testing.T) {
	topics := []string{"A", "B", "C", "D", "E", "F"}
	r := testRotator(topics)

	recent := []string{"A", "B", "C", "D"} // only the first three count
	seen := map[string]bool{}
	for i := 0; i < 200; i++ {
		got := r.Next(recent)
		seen[got] = true
		switch got {
		case "A", "B", "C":
			t.Fatalf("draw %d returned excluded topic %q", i, got)
		}
	}

	// All three eligible topics get drawn, the fourth most recent included.
	for _, want := range []string{"D", "E", "F"} {
		if !seen[want] {
			t.Errorf("topic %s never drawn despite being eligible", want)
		}
	}
}

func TestRotator_FallbackWhenExclusionExhausts(t *testing.T) {
	r := testRotator([]string{"A", "B"})

	// Excluding three recents would empty a two-topic universe, so only
	// the most recent is excluded.
	for i := 0; i < 50; i++ {
		if got := r.Next([]string{"A", "B", "A"}); got != "B" {
			t.Fatalf("got %q, want B", got)
		}
	}
}

func TestRotator_SingleTopicUniverse(t *testing.T) {
	r := testRotator([]string{"Only"})

	if got := r.Next([]string{"Only"}); got != "Only" {
		t.Errorf("got %q, want Only", got)
	}
}

func TestRotator_UnknownRecentsIgnored(t *testing.T) {
	r := testRotator([]string{"A", "B", "C"})

	// Recents outside the universe exclude nothing real.
	seen := map[string]bool{}
	for i := 0; i < 100; i++ {
		seen[r.Next([]string{"X", "Y", "Z"})] = true
	}
	for _, want := range []string{"A", "B", "C"} {
		if !seen[want] {
			t.Errorf("topic %s never drawn", want)
		}
	}
}

func TestNewRotator_DefaultsToCurriculum(t *testing.T) {
	r := NewRotator(nil)
	if got, want := len(r.topics), len(DefaultCurriculum); got != want {
		t.Errorf("got %d topics, want %d", got, want)
	}
}
