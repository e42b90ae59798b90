// Package score provides the shared score counter every game reports into.
// A Tally is created once per player session and handed to each game
// explicitly; there is no package-level score.
package score

// Tally is a non-negative running score with synchronous observers.
// It is not safe for concurrent use: a session drives it from a single
// update loop.
type Tally struct {
	total     int
	observers []observer
	nextID    int
}

type observer struct {
	id int
	fn func(total int)
}

// New creates a tally starting at zero.
func New() *Tally {
	return &Tally{}
}

// Total returns the current score.
func (t *Tally) Total() int {
	return t.total
}

// Add increases the score by points. Negative values count as zero.
func (t *Tally) Add(points int) {
	if points < 0 {
		points = 0
	}
	t.total += points
	t.notify()
}

// Subtract decreases the score by points, never going below zero.
// Negative values count as zero.
func (t *Tally) Subtract(points int) {
	if points < 0 {
		points = 0
	}
	t.total -= points
	if t.total < 0 {
		t.total = 0
	}
	t.notify()
}

// Subscribe registers fn to be called with the new total after every
// mutation. Observers run in subscription order. The returned function
// removes the observer.
func (t *Tally) Subscribe(fn func(total int)) (cancel func()) {
	t.nextID++
	id := t.nextID
	t.observers = append(t.observers, observer{id: id, fn: fn})

	return func() {
		for i, o := range t.observers {
			if o.id == id {
				t.observers = append(t.observers[:i], t.observers[i+1:]...)
				return
			}
		}
	}
}

func (t *Tally) notify() {
	for _, o := range t.observers {
		o.fn(t.total)
	}
}
