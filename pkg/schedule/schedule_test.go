package schedule

import (
	"testing"
)

func TestKeyAndLastName(t *testing.T) {
	it := Item{Subject: "MATH", Catalog: "101", Section: "001", Instructor: "Smith, John"}
	if got := it.Key(); got != "MATH_101_001" {
		t.Fatalf("key: got %q", got)
	}
	if got := it.InstructorLastName(); got != "Smith" {
		t.Fatalf("last name: got %q", got)
	}

	it.Instructor = "Einstein"
	if got := it.InstructorLastName(); got != "Einstein" {
		t.Fatalf("last name without comma: got %q", got)
	}
	it.Instructor = ""
	if got := it.InstructorLastName(); got != "" {
		t.Fatalf("empty instructor: got %q", got)
	}
}

func TestEqualUsesIdentityOnly(t *testing.T) {
	a := Item{Subject: "MATH", Catalog: "101", Section: "001", TotEnrl: 25, Instructor: "Smith, John"}
	b := Item{Subject: "MATH", Catalog: "101", Section: "001", TotEnrl: 28, Instructor: "Doe, Jane"}
	c := Item{Subject: "MATH", Catalog: "101", Section: "002"}
	if !a.Equal(b) {
		t.Fatalf("expected items with same subject/catalog/section to be equal")
	}
	if a.Equal(c) {
		t.Fatalf("expected different sections to differ")
	}
}

func TestStringIsTabSeparated(t *testing.T) {
	it := Item{"MATH", "101", "001", "LEC", "Fall", 3, 28, 30, "Doe, Jane"}
	want := "MATH\t101\t001\tLEC\tFall\t3\t28\t30\tDoe, Jane"
	if got := it.String(); got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
}

func TestAddOverwritesSameKey(t *testing.T) {
	s := New()
	if s.Add(Item{Subject: "MATH", Catalog: "101", Section: "001", TotEnrl: 25}) {
		t.Fatalf("first insert reported a replacement")
	}
	if !s.Add(Item{Subject: "MATH", Catalog: "101", Section: "001", TotEnrl: 28}) {
		t.Fatalf("second insert did not report a replacement")
	}
	if s.Len() != 1 {
		t.Fatalf("expected 1 item, got %d", s.Len())
	}
	it, ok := s.Get("MATH", "101", "001")
	if !ok || it.TotEnrl != 28 {
		t.Fatalf("expected later item to win, got ok=%v item=%+v", ok, it)
	}
	if _, ok := s.Get("MATH", "101", "002"); ok {
		t.Fatalf("expected missing key")
	}
}

func TestAllIsSortedByKey(t *testing.T) {
	s := New()
	for _, it := range []Item{
		{Subject: "PHYS", Catalog: "101", Section: "001"},
		{Subject: "MATH", Catalog: "20", Section: "001"},
		{Subject: "MATH", Catalog: "101", Section: "002"},
		{Subject: "CS", Catalog: "9", Section: "1"},
		{Subject: "MATH", Catalog: "101", Section: "001"},
	} {
		s.Add(it)
	}

	// Plain string order: "101" sorts before "20".
	want := []string{"CS_9_1", "MATH_101_001", "MATH_101_002", "MATH_20_001", "PHYS_101_001"}
	got := s.All()
	if len(got) != len(want) {
		t.Fatalf("expected %d items, got %d", len(want), len(got))
	}
	for i, it := range got {
		if it.Key() != want[i] {
			t.Fatalf("position %d: got %s, want %s", i, it.Key(), want[i])
		}
	}
}

func TestFilters(t *testing.T) {
	s := New()
	s.Add(Item{Subject: "MATH", Catalog: "101", Section: "001", Instructor: "Smith, John"})
	s.Add(Item{Subject: "MATH", Catalog: "101", Section: "002", Instructor: "Doe, Jane"})
	s.Add(Item{Subject: "MATH", Catalog: "202", Section: "001", Instructor: "Smith, Anna"})
	s.Add(Item{Subject: "MATHX", Catalog: "101", Section: "001", Instructor: "Smithson, Al"})
	s.Add(Item{Subject: "math", Catalog: "101", Section: "001", Instructor: "Einstein"})

	keys := func(items []Item) []string {
		var ks []string
		for _, it := range items {
			ks = append(ks, it.Key())
		}
		return ks
	}
	tests := []struct {
		name string
		got  []Item
		want []string
	}{
		{"subject", s.FindBySubject("MATH"), []string{"MATH_101_001", "MATH_101_002", "MATH_202_001"}},
		{"subject lower", s.FindBySubject("math"), []string{"math_101_001"}},
		{"subject none", s.FindBySubject("MAT"), nil},
		{"subject and catalog", s.FindBySubjectAndCatalog("MATH", "101"), []string{"MATH_101_001", "MATH_101_002"}},
		{"subject and catalog none", s.FindBySubjectAndCatalog("MATH", "303"), nil},
		{"last name", s.FindByInstructorLastName("Smith"), []string{"MATH_101_001", "MATH_202_001"}},
		{"last name no comma", s.FindByInstructorLastName("Einstein"), []string{"math_101_001"}},
		{"last name full string", s.FindByInstructorLastName("Doe, Jane"), nil},
	}
	for _, tt := range tests {
		got := keys(tt.got)
		if len(got) != len(tt.want) {
			t.Errorf("%s: got %v, want %v", tt.name, got, tt.want)
			continue
		}
		for i := range got {
			if got[i] != tt.want[i] {
				t.Errorf("%s: got %v, want %v", tt.name, got, tt.want)
				break
			}
		}
	}
	if s.Len() != 5 {
		t.Fatalf("queries changed the index: len=%d", s.Len())
	}
}

func TestAscendStopsEarly(t *testing.T) {
	s := New()
	s.Add(Item{Subject: "A", Catalog: "1", Section: "1"})
	s.Add(Item{Subject: "B", Catalog: "1", Section: "1"})
	s.Add(Item{Subject: "C", Catalog: "1", Section: "1"})

	var seen []string
	s.Ascend(func(it Item) bool {
		seen = append(seen, it.Subject)
		return len(seen) < 2
	})
	if len(seen) != 2 || seen[0] != "A" || seen[1] != "B" {
		t.Fatalf("unexpected visit order: %v", seen)
	}
}
