package landmarks

import "testing"

func TestDefaultCatalog(t *testing.T) {
	c := NewCatalog()

	all := c.All()
	expected := 42
	if len(all) != expected {
		t.Errorf("Expected %d landmarks, got %d", expected, len(all))
	}

	for _, l := range all {
		if l.Name == "" || l.City == "" || l.Country == "" {
			t.Errorf("Landmark %+v is missing required fields", l)
		}
		if l.Latitude < -90 || l.Latitude > 90 || l.Longitude < -180 || l.Longitude > 180 {
			t.Errorf("Landmark %s has out-of-range coordinates", l.Name)
		}
		if !l.Category.Valid() {
			t.Errorf("Landmark %s has unknown category %q", l.Name, l.Category)
		}
	}
}

func TestResolveByNameAndAlias(t *testing.T) {
	c := NewCatalog()

	byName, ok := c.Resolve("eiffel tower")
	if !ok {
		t.Fatal("Expected 'eiffel tower' to resolve")
	}
	byAlias, ok := c.Resolve("Tour Eiffel")
	if !ok {
		t.Fatal("Expected alias 'Tour Eiffel' to resolve")
	}
	if byName.Name != "Eiffel Tower" || byAlias.Name != byName.Name {
		t.Errorf("Expected both to resolve to Eiffel Tower, got %q and %q", byName.Name, byAlias.Name)
	}
	if byName.Latitude != 48.8584 || byName.Longitude != 2.2945 {
		t.Errorf("Unexpected coordinates %f,%f", byName.Latitude, byName.Longitude)
	}
}

func TestResolveBeforeComma(t *testing.T) {
	c := NewCatalog()

	l, ok := c.Resolve("Big Ben, London")
	if !ok || l.Name != "Big Ben" {
		t.Errorf("Expected 'Big Ben, London' to resolve to Big Ben, got %q (%v)", l.Name, ok)
	}

	l, ok = c.Resolve("lady liberty, NY")
	if !ok || l.Name != "Statue of Liberty" {
		t.Errorf("Expected alias before comma to resolve, got %q (%v)", l.Name, ok)
	}
}

func TestResolveMiss(t *testing.T) {
	c := NewCatalog()

	if l, ok := c.Resolve("Paris, France"); ok {
		t.Errorf("Expected no match for 'Paris, France', got %q", l.Name)
	}
	if _, ok := c.Resolve("Springfield"); ok {
		t.Error("Expected no match for 'Springfield'")
	}
	if _, ok := c.Resolve("   "); ok {
		t.Error("Expected no match for blank input")
	}
}

func TestResolveFallsBackToSearch(t *testing.T) {
	c := NewCatalog()

	l, ok := c.Resolve("Colosse")
	if !ok || l.Name != "Colosseum" {
		t.Errorf("Expected substring fallback to Colosseum, got %q (%v)", l.Name, ok)
	}
}

func TestSearch(t *testing.T) {
	c := NewCatalog()

	if got := c.Search("a"); len(got) != 0 {
		t.Errorf("Expected no results for single character, got %d", len(got))
	}

	// Beijing has three landmarks; they come back in table order.
	got := c.Search("BEIJING")
	if len(got) != 3 {
		t.Fatalf("Expected 3 Beijing landmarks, got %d", len(got))
	}
	want := []string{"Great Wall of China", "Forbidden City", "Temple of Heaven"}
	for i, name := range want {
		if got[i].Name != name {
			t.Errorf("Result %d: expected %q, got %q", i, name, got[i].Name)
		}
	}

	// "China" matches more than ten entries by country; the cap applies.
	got = c.Search("china")
	if len(got) != MaxSearchResults {
		t.Errorf("Expected %d results, got %d", MaxSearchResults, len(got))
	}
	if got[0].Name != "Great Wall of China" {
		t.Errorf("Expected table order, first result was %q", got[0].Name)
	}

	got = c.Search("coathanger")
	if len(got) != 1 || got[0].Name != "Harbour Bridge" {
		t.Errorf("Expected alias match on Harbour Bridge, got %+v", got)
	}
}

func TestByCategoryAndRandom(t *testing.T) {
	c := NewCatalog()

	for _, l := range c.ByCategory(CategoryReligious) {
		if l.Category != CategoryReligious {
			t.Errorf("Unexpected category %q for %s", l.Category, l.Name)
		}
	}
	if got := c.ByCategory("volcano"); len(got) != 0 {
		t.Errorf("Expected no landmarks for unknown category, got %d", len(got))
	}

	got := c.Random(5)
	if len(got) != 5 {
		t.Fatalf("Expected 5 random landmarks, got %d", len(got))
	}
	seen := map[string]bool{}
	for _, l := range got {
		if seen[l.Name] {
			t.Errorf("Duplicate landmark %s in random selection", l.Name)
		}
		seen[l.Name] = true
	}

	if got := c.Random(1000); len(got) != len(c.All()) {
		t.Errorf("Expected Random to cap at table size, got %d", len(got))
	}
}

func TestCatalogReturnsCopies(t *testing.T) {
	c := NewCatalog()

	l, _ := c.Resolve("Eiffel Tower")
	l.Name = "Modified"
	l.Aliases[0] = "Modified alias"

	again, _ := c.Resolve("Eiffel Tower")
	if again.Name != "Eiffel Tower" || again.Aliases[0] != "Tour Eiffel" {
		t.Error("Resolve should return copies, not references into the table")
	}
}

func TestCatalogFromCustomList(t *testing.T) {
	c := NewCatalogFrom([]Landmark{
		{Name: "Old Mill", City: "Ghent", Country: "Belgium", Latitude: 51.05, Longitude: 3.72, Category: CategoryHistorical},
	})

	if l, ok := c.Resolve("old mill"); !ok || l.City != "Ghent" {
		t.Errorf("Expected custom catalog to resolve 'old mill', got %q (%v)", l.Name, ok)
	}
	if _, ok := c.Resolve("Taj Mahal"); ok {
		t.Error("Expected custom catalog to ignore the built-in table")
	}
	if got := c.Search("belg"); len(got) != 1 {
		t.Errorf("Expected 1 search result, got %d", len(got))
	}
}
