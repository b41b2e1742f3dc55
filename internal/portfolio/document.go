package portfolio

import (
	"errors"
	"fmt"
)

// ErrUnknownCollection reports a collection name outside the fixed set. Routes
// only ever pass known names, so hitting this is a programming error.
var ErrUnknownCollection = errors.New("unknown collection")

// Collection names supported by the id-keyed CRUD protocol.
const (
	CollectionCertifications = "certifications"
	CollectionProjects       = "projects"
	CollectionExperience     = "experience"
)

// Item is a single entry of a collection. Entries are kept schemaless so that
// create/update bodies pass through untouched apart from the managed "id" key.
type Item map[string]any

// ID returns the item id, tolerating the float64 that encoding/json produces
// when a document is read back from disk. Returns 0 if the id is absent or not
// numeric.
func (it Item) ID() int {
	switch v := it["id"].(type) {
	case int:
		return v
	case int64:
		return int(v)
	case float64:
		return int(v)
	default:
		return 0
	}
}

// Metadata tracks document-level bookkeeping.
type Metadata struct {
	LastUpdated string `json:"last_updated"`
	Version     string `json:"version"`
	Status      string `json:"status"`
}

// Suggestion is a chatbot suggestion left by a visitor.
type Suggestion struct {
	ID        int    `json:"id"`
	Timestamp string `json:"timestamp"`
	Message   string `json:"message"`
	UserQuery string `json:"user_query,omitempty"`
	Category  string `json:"category"`
}

// Document is the root portfolio object. It is the sole unit of persistence:
// every write rewrites the whole document.
type Document struct {
	PersonalInfo       map[string]any      `json:"personal_info"`
	Certifications     []Item              `json:"certifications"`
	Projects           []Item              `json:"projects"`
	Experience         []Item              `json:"experience"`
	Skills             map[string][]string `json:"skills"`
	Metadata           Metadata            `json:"metadata"`
	ChatbotSuggestions []Suggestion        `json:"chatbot_suggestions,omitempty"`
}

// Collection returns a pointer to the named collection slice so callers can
// mutate it in place. Unknown names are an error; a nil slice is a valid
// (empty or absent) collection.
func (d *Document) Collection(name string) (*[]Item, error) {
	switch name {
	case CollectionCertifications:
		return &d.Certifications, nil
	case CollectionProjects:
		return &d.Projects, nil
	case CollectionExperience:
		return &d.Experience, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownCollection, name)
	}
}

// NextID computes the id for a new entry: max(existing ids, 0) + 1. Deleting
// the highest entry makes its id reusable, which is the intended
// auto-increment-like behavior.
func NextID(items []Item) int {
	max := 0
	for _, it := range items {
		if id := it.ID(); id > max {
			max = id
		}
	}
	return max + 1
}

// Merge copies every key of patch over dst, one level deep. A patch value that
// is itself an object replaces the existing object wholesale; nested keys are
// never merged.
func Merge(dst, patch map[string]any) {
	for k, v := range patch {
		dst[k] = v
	}
}

// Clone returns a deep copy of the document through its map/slice fields, so
// two callers can mutate independent copies of the same loaded state.
func (d *Document) Clone() *Document {
	cp := &Document{
		PersonalInfo:   cloneMap(d.PersonalInfo),
		Certifications: cloneItems(d.Certifications),
		Projects:       cloneItems(d.Projects),
		Experience:     cloneItems(d.Experience),
		Metadata:       d.Metadata,
	}
	if d.Skills != nil {
		cp.Skills = make(map[string][]string, len(d.Skills))
		for k, v := range d.Skills {
			cp.Skills[k] = append([]string(nil), v...)
		}
	}
	if d.ChatbotSuggestions != nil {
		cp.ChatbotSuggestions = append([]Suggestion(nil), d.ChatbotSuggestions...)
	}
	return cp
}

func cloneItems(items []Item) []Item {
	if items == nil {
		return nil
	}
	out := make([]Item, len(items))
	for i, it := range items {
		out[i] = Item(cloneMap(it))
	}
	return out
}

func cloneMap(m map[string]any) map[string]any {
	if m == nil {
		return nil
	}
	out := make(map[string]any, len(m))
	for k, v := range m {
		switch val := v.(type) {
		case map[string]any:
			out[k] = cloneMap(val)
		case []any:
			out[k] = append([]any(nil), val...)
		case []string:
			out[k] = append([]string(nil), val...)
		default:
			out[k] = v
		}
	}
	return out
}
