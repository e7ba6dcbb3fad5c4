package lessons

import (
	"errors"
	"sort"
	"strings"
	"sync"
)

// ErrLessonNotFound is returned when a lesson id is not in the catalog.
var ErrLessonNotFound = errors.New("lesson not found")

// Category groups topics on the dashboard.
type Category string

const (
	CategoryTech     Category = "tech"
	CategoryBusiness Category = "business"
)

// Topic is a subject the learner can pick during onboarding.
type Topic struct {
	ID       string   `json:"id"`
	Name     string   `json:"name"`
	Category Category `json:"category"`
}

// Exercise is the hands-on task of a static lesson.
type Exercise struct {
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Placeholder string   `json:"placeholder"`
	Keywords    []string `json:"keywords"`
}

// Material is the hand-written body of a catalog lesson.
type Material struct {
	Introduction string   `json:"introduction"`
	Explanation  string   `json:"explanation"`
	CodeExample  string   `json:"codeExample"`
	Exercise     Exercise `json:"exercise"`
	Summary      string   `json:"summary"`
}

// CatalogLesson is one entry of the lesson catalog.
type CatalogLesson struct {
	ID       string    `json:"id"`
	Topic    string    `json:"topic"`
	Title    string    `json:"title"`
	Concept  string    `json:"concept"`
	Order    int       `json:"order"`
	Minutes  int       `json:"minutes"`
	Material *Material `json:"material,omitempty"`
}

// TitleWords returns the lower-cased words of the title, used to recognise
// on-topic practice answers.
func (l CatalogLesson) TitleWords() []string {
	return strings.Fields(strings.ToLower(l.Title))
}

// Catalog is an immutable, ordered lesson registry.
type Catalog struct {
	topics  []Topic
	lessons []CatalogLesson
	byID    map[string]int
	byTopic map[string][]int
}

// NewCatalog indexes lessons. Lessons are ordered by topic position in
// topics and then by Order.
func NewCatalog(topics []Topic, lessons []CatalogLesson) *Catalog {
	rank := make(map[string]int, len(topics))
	for i, t := range topics {
		rank[t.ID] = i
	}

	sorted := make([]CatalogLesson, len(lessons))
	copy(sorted, lessons)
	sort.SliceStable(sorted, func(i, j int) bool {
		ri, rj := rank[sorted[i].Topic], rank[sorted[j].Topic]
		if ri != rj {
			return ri < rj
		}
		return sorted[i].Order < sorted[j].Order
	})

	c := &Catalog{
		topics:  append([]Topic(nil), topics...),
		lessons: sorted,
		byID:    make(map[string]int, len(sorted)),
		byTopic: make(map[string][]int),
	}
	for i, l := range sorted {
		c.byID[l.ID] = i
		c.byTopic[l.Topic] = append(c.byTopic[l.Topic], i)
	}
	return c
}

var defaultCatalog = sync.OnceValue(func() *Catalog {
	return NewCatalog(seedTopics(), seedLessons())
})

// Default returns the built-in catalog.
func Default() *Catalog {
	return defaultCatalog()
}

// Topics returns all topics in display order.
func (c *Catalog) Topics() []Topic {
	return append([]Topic(nil), c.topics...)
}

// Topic returns the topic with id, if known.
func (c *Catalog) Topic(id string) (Topic, bool) {
	for _, t := range c.topics {
		if t.ID == id {
			return t, true
		}
	}
	return Topic{}, false
}

// TopicName returns a display name for id, falling back to the id itself.
func (c *Catalog) TopicName(id string) string {
	if t, ok := c.Topic(id); ok {
		return t.Name
	}
	return id
}

// All returns every lesson in catalog order.
func (c *Catalog) All() []CatalogLesson {
	return append([]CatalogLesson(nil), c.lessons...)
}

// Lookup returns the lesson with id.
func (c *Catalog) Lookup(id string) (CatalogLesson, error) {
	i, ok := c.byID[id]
	if !ok {
		return CatalogLesson{}, ErrLessonNotFound
	}
	return c.lessons[i], nil
}

// ForTopic returns the lessons of a topic in order.
func (c *Catalog) ForTopic(topic string) []CatalogLesson {
	idx := c.byTopic[topic]
	out := make([]CatalogLesson, 0, len(idx))
	for _, i := range idx {
		out = append(out, c.lessons[i])
	}
	return out
}

// Next returns the lesson after id within the same topic.
func (c *Catalog) Next(id string) (CatalogLesson, bool) {
	i, ok := c.byID[id]
	if !ok {
		return CatalogLesson{}, false
	}
	idx := c.byTopic[c.lessons[i].Topic]
	for pos, li := range idx {
		if li == i && pos+1 < len(idx) {
			return c.lessons[idx[pos+1]], true
		}
	}
	return CatalogLesson{}, false
}
