package landmarks

import (
	"math/rand"
	"strings"
)

// Category groups landmarks by kind.
type Category string

const (
	CategoryMonument   Category = "monument"
	CategoryBuilding   Category = "building"
	CategoryNatural    Category = "natural"
	CategoryReligious  Category = "religious"
	CategoryHistorical Category = "historical"
	CategoryModern     Category = "modern"
)

// Valid reports whether c is one of the known categories.
func (c Category) Valid() bool {
	switch c {
	case CategoryMonument, CategoryBuilding, CategoryNatural,
		CategoryReligious, CategoryHistorical, CategoryModern:
		return true
	}
	return false
}

// MaxSearchResults caps the number of landmarks Search returns.
const MaxSearchResults = 10

// Landmark is a named point of interest with known coordinates.
type Landmark struct {
	Name        string   `json:"name"`
	City        string   `json:"city"`
	Country     string   `json:"country"`
	Latitude    float64  `json:"latitude"`
	Longitude   float64  `json:"longitude"`
	Category    Category `json:"category"`
	Description string   `json:"description"`
	Aliases     []string `json:"aliases,omitempty"`
}

func (l Landmark) clone() Landmark {
	if l.Aliases != nil {
		l.Aliases = append([]string(nil), l.Aliases...)
	}
	return l
}

// Catalog is a read-only landmark table. It is safe for concurrent use
// because nothing mutates it after construction.
type Catalog struct {
	landmarks []Landmark
}

// NewCatalog returns the curated default catalog.
func NewCatalog() *Catalog {
	return NewCatalogFrom(defaultLandmarks)
}

// NewCatalogFrom builds a catalog over a copy of list, keeping its order.
func NewCatalogFrom(list []Landmark) *Catalog {
	c := &Catalog{landmarks: make([]Landmark, 0, len(list))}
	for _, l := range list {
		c.landmarks = append(c.landmarks, l.clone())
	}
	return c
}

// All returns every landmark in table order.
func (c *Catalog) All() []Landmark {
	result := make([]Landmark, 0, len(c.landmarks))
	for _, l := range c.landmarks {
		result = append(result, l.clone())
	}
	return result
}

// Resolve matches free text to a landmark: exact name, then exact alias, then
// the same two checks on the part before the first comma, and finally the
// first substring search hit.
func (c *Catalog) Resolve(text string) (Landmark, bool) {
	text = strings.TrimSpace(text)
	if text == "" {
		return Landmark{}, false
	}

	if l, ok := c.exact(text); ok {
		return l, true
	}

	if head, _, found := strings.Cut(text, ","); found {
		if l, ok := c.exact(strings.TrimSpace(head)); ok {
			return l, true
		}
	}

	if hits := c.Search(text); len(hits) > 0 {
		return hits[0], true
	}
	return Landmark{}, false
}

func (c *Catalog) exact(name string) (Landmark, bool) {
	for _, l := range c.landmarks {
		if strings.EqualFold(l.Name, name) {
			return l.clone(), true
		}
	}
	for _, l := range c.landmarks {
		for _, alias := range l.Aliases {
			if strings.EqualFold(alias, name) {
				return l.clone(), true
			}
		}
	}
	return Landmark{}, false
}

// Search returns landmarks whose name, city, country or any alias contains
// query (case-insensitive). Results keep table order and are capped at
// MaxSearchResults. Queries shorter than two characters match nothing.
func (c *Catalog) Search(query string) []Landmark {
	if len(query) < 2 {
		return []Landmark{}
	}
	term := strings.ToLower(strings.TrimSpace(query))

	result := []Landmark{}
	for _, l := range c.landmarks {
		if len(result) >= MaxSearchResults {
			break
		}
		if matches(l, term) {
			result = append(result, l.clone())
		}
	}
	return result
}

func matches(l Landmark, term string) bool {
	if containsFold(l.Name, term) || containsFold(l.City, term) || containsFold(l.Country, term) {
		return true
	}
	for _, alias := range l.Aliases {
		if containsFold(alias, term) {
			return true
		}
	}
	return false
}

func containsFold(s, lowerSub string) bool {
	return strings.Contains(strings.ToLower(s), lowerSub)
}

// ByCategory returns every landmark in the category, in table order.
func (c *Catalog) ByCategory(category Category) []Landmark {
	result := []Landmark{}
	for _, l := range c.landmarks {
		if l.Category == category {
			result = append(result, l.clone())
		}
	}
	return result
}

// Random returns up to n distinct landmarks in random order.
func (c *Catalog) Random(n int) []Landmark {
	if n <= 0 {
		return []Landmark{}
	}
	if n > len(c.landmarks) {
		n = len(c.landmarks)
	}
	result := make([]Landmark, 0, n)
	for _, i := range rand.Perm(len(c.landmarks))[:n] {
		result = append(result, c.landmarks[i].clone())
	}
	return result
}
