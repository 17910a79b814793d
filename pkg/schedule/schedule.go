package schedule

import (
	"github.com/google/btree"
)

const defaultDegree = 32

type entry struct {
	key  string
	item Item
}

func (e entry) Less(than btree.Item) bool {
	return e.key < than.(entry).key
}

// Schedule is an ordered index of items keyed by Item.Key.
// It is built once and then only read; it is not safe for concurrent mutation.
type Schedule struct {
	tree *btree.BTree
}

func New() *Schedule {
	return &Schedule{
		tree: btree.New(defaultDegree),
	}
}

// Add inserts it, replacing any item with the same key.
// It reports whether an earlier item was replaced.
func (s *Schedule) Add(it Item) bool {
	return s.tree.ReplaceOrInsert(entry{key: it.Key(), item: it}) != nil
}

func (s *Schedule) Get(subject, catalog, section string) (Item, bool) {
	probe := Item{Subject: subject, Catalog: catalog, Section: section}
	res := s.tree.Get(entry{key: probe.Key()})
	if res == nil {
		return Item{}, false
	}
	return res.(entry).item, true
}

func (s *Schedule) Len() int {
	return s.tree.Len()
}

// Ascend calls fn for each item in key order until fn returns false.
func (s *Schedule) Ascend(fn func(it Item) bool) {
	s.tree.Ascend(func(i btree.Item) bool {
		return fn(i.(entry).item)
	})
}

func (s *Schedule) All() []Item {
	return s.filter(func(Item) bool { return true })
}

func (s *Schedule) FindBySubject(subject string) []Item {
	return s.filter(func(it Item) bool {
		return it.Subject == subject
	})
}

func (s *Schedule) FindBySubjectAndCatalog(subject, catalog string) []Item {
	return s.filter(func(it Item) bool {
		return it.Subject == subject && it.Catalog == catalog
	})
}

func (s *Schedule) FindByInstructorLastName(lastName string) []Item {
	return s.filter(func(it Item) bool {
		return it.InstructorLastName() == lastName
	})
}

func (s *Schedule) filter(match func(Item) bool) []Item {
	var res []Item
	s.Ascend(func(it Item) bool {
		if match(it) {
			res = append(res, it)
		}
		return true
	})
	return res
}
