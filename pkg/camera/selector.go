package camera

import "math/rand"

// categoryStreakLimit is the number of consecutive same-category shots
// after which the selector becomes free to switch categories.
const categoryStreakLimit = 3

// History tracks what the selector has recently picked. Mutated only
// by the Selector.
type History struct {
	LastIndex    map[Category]int
	LastCategory Category
	Streak       int
}

// NewHistory returns a history with no prior selections.
func NewHistory() History {
	return History{
		LastIndex:    map[Category]int{CategoryCockpit: -1, CategoryExternal: -1},
		LastCategory: CategoryCockpit,
	}
}

// Selector picks the next shot, enforcing the category-streak and
// no-immediate-repeat rules. The random source is injected so tests
// can seed it.
type Selector struct {
	rng     *rand.Rand
	history History
}

// NewSelector creates a selector around the given random source.
func NewSelector(rng *rand.Rand) *Selector {
	return &Selector{rng: rng, history: NewHistory()}
}

// Reset clears selection history; used when camera control restarts so
// a fresh activation begins from a clean state.
func (s *Selector) Reset() {
	s.history = NewHistory()
	if s.rng.Intn(2) == 0 {
		s.history.LastCategory = CategoryCockpit
	} else {
		s.history.LastCategory = CategoryExternal
	}
}

// History returns a copy of the current selection history.
func (s *Selector) History() History {
	h := s.history
	h.LastIndex = map[Category]int{
		CategoryCockpit:  s.history.LastIndex[CategoryCockpit],
		CategoryExternal: s.history.LastIndex[CategoryExternal],
	}
	return h
}

// Next selects the next shot from the catalog and resolves its
// duration uniformly from [minDur, maxDur]. A category switch is only
// possible once the same-category streak has reached the limit; when
// eligible the category is decided by a coin flip. Within a category
// the index is redrawn until it differs from the previous pick, unless
// the list has a single entry. An empty list yields the fallback shot.
func (s *Selector) Next(cat Catalog, minDur, maxDur float64) ActiveShot {
	next := s.history.LastCategory
	if s.history.Streak >= categoryStreakLimit {
		if s.rng.Intn(2) == 0 {
			next = CategoryCockpit
		} else {
			next = CategoryExternal
		}
	}

	if next != s.history.LastCategory {
		s.history.Streak = 1
		s.history.LastCategory = next
	} else {
		s.history.Streak++
	}

	list := cat.Cockpit
	if next == CategoryExternal {
		list = cat.External
	}

	if len(list) == 0 {
		return resolveDuration(FallbackShot(), s.rng, minDur, maxDur)
	}

	last := s.history.LastIndex[next]
	idx := s.rng.Intn(len(list))
	for idx == last && len(list) > 1 {
		idx = s.rng.Intn(len(list))
	}
	s.history.LastIndex[next] = idx

	return resolveDuration(list[idx], s.rng, minDur, maxDur)
}

func resolveDuration(shot Shot, rng *rand.Rand, minDur, maxDur float64) ActiveShot {
	if maxDur < minDur {
		maxDur = minDur
	}
	return ActiveShot{
		Shot:             shot,
		ResolvedDuration: minDur + rng.Float64()*(maxDur-minDur),
	}
}
