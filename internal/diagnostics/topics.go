package diagnostics

import "math/rand/v2"

// DefaultCurriculum is the fixed topic set of the introductory course.
var DefaultCurriculum = []string{
	"Plato's Cave",
	"Gettier Problems",
	"Frankfurt Cases",
	"The Trolley Problem",
	"Ship of Theseus",
	"The Euthyphro Dilemma",
	"Zhuangzi's Butterfly Dream",
	"The Categorical Imperative",
	"Utilitarianism",
	"Free Will and Determinism",
}

// recentTopicExclusion is how many recently used topics rotation avoids.
const recentTopicExclusion = 3

// Rotator picks question topics while avoiding immediate repeats.
type Rotator struct {
	topics []string
	rng    *rand.Rand
}

// NewRotator creates a Rotator over the given topic universe. A nil or
// empty universe falls back to DefaultCurriculum.
func NewRotator(topics []string) *Rotator {
	if len(topics) == 0 {
		topics = DefaultCurriculum
	}
	return &Rotator{topics: topics}
}

// withRand fixes the random source. Tests only.
func (r *Rotator) withRand(rng *rand.Rand) *Rotator {
	r.rng = rng
	return r
}

// Next picks a topic uniformly at random, excluding the 3 most recently
// used topics in recentTopics (most recent first). If that exclusion would
// empty the candidate set, only the single most recent topic is excluded;
// if even that empties the set, the full universe is used. The immediately
// preceding topic is never repeated unless the universe has size 1.
func (r *Rotator) Next(recentTopics []string) string {
	if len(r.topics) == 1 {
		return r.topics[0]
	}

	exclude := recentTopics
	if len(exclude) > recentTopicExclusion {
		exclude = exclude[:recentTopicExclusion]
	}

	candidates := without(r.topics, exclude)
	if len(candidates) == 0 && len(recentTopics) > 0 {
		candidates = without(r.topics, recentTopics[:1])
	}
	if len(candidates) == 0 {
		candidates = r.topics
	}

	return candidates[r.intn(len(candidates))]
}

func (r *Rotator) intn(n int) int {
	if r.rng != nil {
		return r.rng.IntN(n)
	}
	return rand.IntN(n)
}

// without returns the topics not present in exclude.
func without(topics, exclude []string) []string {
	var out []string
	for _, t := range topics {
		excluded := false
		for _, e := range exclude {
			if t == e {
				excluded = true
				break
			}
		}
		if !excluded {
			out = append(out, t)
		}
	}
	return out
}
