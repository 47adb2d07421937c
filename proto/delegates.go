package proto

import (
	"slices"

	"github.com/gofrs/uuid"

	"github.com/deepnoodle-ai/gizmo/errz"
)

// Delegates is the ordered delegate list of one Object, together with the
// object's event registration. The delegate graph is kept acyclic: every
// insertion is checked against the transitive delegates of the candidate.
type Delegates struct {
	owner *Object
	list  []Getter
}

// ID returns the identifier of the owning object.
func (l *Delegates) ID() uuid.UUID {
	return l.owner.id
}

// Owner returns the object this list belongs to.
func (l *Delegates) Owner() *Object {
	return l.owner
}

// Len returns the number of direct delegates.
func (l *Delegates) Len() int {
	return len(l.list)
}

// Add appends d to the end of the list.
func (l *Delegates) Add(d Getter) error {
	return l.insertAt(d, len(l.list))
}

// Insert places d at index. Indexes outside [0, Len()] are clamped, so a
// negative index inserts at the front rather than counting from the end.
func (l *Delegates) Insert(d Getter, index int) error {
	return l.insertAt(d, index)
}

// InsertFront places d ahead of every existing delegate.
func (l *Delegates) InsertFront(d Getter) error {
	return l.insertAt(d, 0)
}

func (l *Delegates) insertAt(d Getter, index int) error {
	if err := l.check(d); err != nil {
		l.owner.log.Debug().Err(err).Msg("delegate rejected")
		return err
	}
	index = max(0, min(index, len(l.list)))
	l.list = slices.Insert(l.list, index, d)
	l.owner.log.Debug().
		Str("delegate", describe(d)).
		Int("index", index).
		Msg("delegate added")
	return l.owner.bus.fire(Event{Type: PrototypeAdded, Value: d})
}

func (l *Delegates) check(d Getter) error {
	if isNil(d) {
		return errz.New(errz.InvalidDelegate, "delegate is nil")
	}
	target, _ := DelegatesOf(d)
	if same(d, l.owner) || target == l {
		return errz.Newf(errz.SelfDelegation,
			"object %s cannot delegate to itself", l.owner.id)
	}
	if slices.ContainsFunc(l.list, func(item Getter) bool {
		return matches(item, d, target)
	}) {
		return errz.Newf(errz.DuplicateDelegate,
			"%s is already a delegate of %s", describe(d), l.owner.id)
	}
	if target != nil && target.reaches(l.owner, l, map[*Delegates]struct{}{}) {
		return errz.Newf(errz.Cycle,
			"%s already delegates to %s", describe(d), l.owner.id)
	}
	return nil
}

// matches reports whether item is d, either by identity or because both
// expose the same delegate list (as wrappers embedding an *Object do).
func matches(item, d Getter, target *Delegates) bool {
	if same(item, d) {
		return true
	}
	if target == nil {
		return false
	}
	other, ok := DelegatesOf(item)
	return ok && other == target
}

// Remove removes d if it is a direct delegate. Transitive delegates and
// unknown values are ignored.
func (l *Delegates) Remove(d Getter) error {
	i := l.index(d)
	if i < 0 {
		return nil
	}
	l.list = slices.Delete(l.list, i, i+1)
	l.owner.log.Debug().Str("delegate", describe(d)).Msg("delegate removed")
	return l.owner.bus.fire(Event{Type: PrototypeRemoved, Value: d})
}

// Has reports whether d is a direct delegate or is reachable through the
// delegate lists of the direct delegates.
// Values exposing the same delegate list as d count as d.
func (l *Delegates) Has(d Getter) bool {
	target, _ := DelegatesOf(d)
	return l.reaches(d, target, map[*Delegates]struct{}{})
}

// reaches walks the delegate graph below l, visiting each list once.
func (l *Delegates) reaches(d Getter, target *Delegates, seen map[*Delegates]struct{}) bool {
	if _, ok := seen[l]; ok {
		return false
	}
	seen[l] = struct{}{}
	for _, item := range l.list {
		if matches(item, d, target) {
			return true
		}
		if other, ok := DelegatesOf(item); ok && other.reaches(d, target, seen) {
			return true
		}
	}
	return false
}

// ForEach calls fn for every direct delegate with its index and a copy of
// the list; changes made to the list during iteration are not observed.
// When recursive is true each delegate that carries its own list is walked
// right after it is visited, giving a depth-first pre-order traversal.
func (l *Delegates) ForEach(fn func(d Getter, index int, all []Getter), recursive bool) {
	all := l.snapshot()
	for i, d := range all {
		fn(d, i, all)
		if !recursive {
			continue
		}
		if other, ok := DelegatesOf(d); ok {
			other.ForEach(fn, true)
		}
	}
}

// Listen registers a listener for events on the owning object. Registering
// the same listener twice has no effect.
func (l *Delegates) Listen(lst Listener) {
	l.owner.bus.listen(lst)
}

// Ignore removes a previously registered listener.
func (l *Delegates) Ignore(lst Listener) {
	l.owner.bus.ignore(lst)
}

func (l *Delegates) index(d Getter) int {
	return slices.IndexFunc(l.list, func(item Getter) bool {
		return same(item, d)
	})
}

func (l *Delegates) snapshot() []Getter {
	return slices.Clone(l.list)
}
