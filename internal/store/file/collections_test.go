package file

import (
	"errors"
	"testing"

	"github.com/folio-dev/folio/internal/portfolio"
)

// saveEmptyCollections replaces the bootstrapped document with one whose
// collections are empty, keeping the sections the store requires.
func saveEmptyCollections(t *testing.T, s *Store) {
	t.Helper()
	doc := portfolio.Default()
	doc.Certifications = []portfolio.Item{}
	doc.Projects = []portfolio.Item{}
	doc.Experience = []portfolio.Item{}
	if err := s.Save(doc); err != nil {
		t.Fatalf("failed to seed document: %v", err)
	}
}

func TestCreateIntoEmptyCollectionYieldsIDOne(t *testing.T) {
	s := newTestStore(t)
	saveEmptyCollections(t, s)

	item, err := s.Create(portfolio.CollectionProjects, portfolio.Item{
		"title":       "P1",
		"description": "D1",
	})
	if err != nil {
		t.Fatalf("Create() error: %v", err)
	}
	if item.ID() != 1 {
		t.Errorf("first id = %d, want 1", item.ID())
	}

	got, err := s.Get(portfolio.CollectionProjects, 1)
	if err != nil {
		t.Fatalf("Get() error: %v", err)
	}
	if got["title"] != "P1" || got["description"] != "D1" {
		t.Errorf("stored item = %v, want request body plus id", got)
	}
}

func TestCreateAssignsMaxPlusOne(t *testing.T) {
	s := newTestStore(t)
	saveEmptyCollections(t, s)

	for want := 1; want <= 3; want++ {
		item, err := s.Create(portfolio.CollectionCertifications, portfolio.Item{"title": "C"})
		if err != nil {
			t.Fatalf("Create() error: %v", err)
		}
		if item.ID() != want {
			t.Errorf("id = %d, want %d", item.ID(), want)
		}
	}

	// Deleting the max frees its id for reuse; deleting below the max does not.
	if _, err := s.Delete(portfolio.CollectionCertifications, 3); err != nil {
		t.Fatalf("Delete() error: %v", err)
	}
	item, err := s.Create(portfolio.CollectionCertifications, portfolio.Item{"title": "C"})
	if err != nil {
		t.Fatalf("Create() error: %v", err)
	}
	if item.ID() != 3 {
		t.Errorf("id after deleting max = %d, want 3 (reused)", item.ID())
	}

	if _, err := s.Delete(portfolio.CollectionCertifications, 1); err != nil {
		t.Fatalf("Delete() error: %v", err)
	}
	item, err = s.Create(portfolio.CollectionCertifications, portfolio.Item{"title": "C"})
	if err != nil {
		t.Fatalf("Create() error: %v", err)
	}
	if item.ID() != 4 {
		t.Errorf("id after deleting non-max = %d, want 4", item.ID())
	}
}

func TestCreateIgnoresBodyID(t *testing.T) {
	s := newTestStore(t)
	saveEmptyCollections(t, s)

	item, err := s.Create(portfolio.CollectionExperience, portfolio.Item{
		"id":       99,
		"position": "Engineer",
	})
	if err != nil {
		t.Fatalf("Create() error: %v", err)
	}
	if item.ID() != 1 {
		t.Errorf("id = %d, want 1 (body id must be ignored)", item.ID())
	}
}

func TestUpdateMergesShallowAndPreservesID(t *testing.T) {
	s := newTestStore(t)
	saveEmptyCollections(t, s)

	if _, err := s.Create(portfolio.CollectionProjects, portfolio.Item{
		"title":       "Old title",
		"description": "Keep me",
		"image":       "/old.png",
	}); err != nil {
		t.Fatalf("Create() error: %v", err)
	}

	updated, err := s.Update(portfolio.CollectionProjects, 1, portfolio.Item{
		"id":    42,
		"title": "New title",
	})
	if err != nil {
		t.Fatalf("Update() error: %v", err)
	}

	if updated.ID() != 1 {
		t.Errorf("id = %d, want 1 (patch id must not win)", updated.ID())
	}
	if updated["title"] != "New title" {
		t.Errorf("title = %v, want overwritten value", updated["title"])
	}
	if updated["description"] != "Keep me" || updated["image"] != "/old.png" {
		t.Errorf("fields absent from patch were not preserved: %v", updated)
	}

	// The merge is persisted, not just applied in memory.
	got, err := s.Get(portfolio.CollectionProjects, 1)
	if err != nil {
		t.Fatalf("Get() error: %v", err)
	}
	if got["title"] != "New title" {
		t.Errorf("persisted title = %v, want New title", got["title"])
	}
}

func TestUpdateNotFound(t *testing.T) {
	s := newTestStore(t)
	saveEmptyCollections(t, s)

	if _, err := s.Update(portfolio.CollectionProjects, 7, portfolio.Item{"title": "x"}); !errors.Is(err, ErrNotFound) {
		t.Errorf("Update() error = %v, want ErrNotFound", err)
	}
}

func TestDeleteRemovesAndPreservesOrder(t *testing.T) {
	s := newTestStore(t)
	saveEmptyCollections(t, s)

	for _, title := range []string{"A", "B", "C"} {
		if _, err := s.Create(portfolio.CollectionProjects, portfolio.Item{"title": title}); err != nil {
			t.Fatalf("Create() error: %v", err)
		}
	}

	removed, err := s.Delete(portfolio.CollectionProjects, 2)
	if err != nil {
		t.Fatalf("Delete() error: %v", err)
	}
	if removed["title"] != "B" {
		t.Errorf("removed item = %v, want B", removed)
	}

	if _, err := s.Get(portfolio.CollectionProjects, 2); !errors.Is(err, ErrNotFound) {
		t.Errorf("Get() after delete = %v, want ErrNotFound", err)
	}

	items, err := s.List(portfolio.CollectionProjects)
	if err != nil {
		t.Fatalf("List() error: %v", err)
	}
	if len(items) != 2 || items[0]["title"] != "A" || items[1]["title"] != "C" {
		t.Errorf("remaining items out of order: %v", items)
	}
}

func TestDeleteNotFoundLeavesCollectionUnchanged(t *testing.T) {
	s := newTestStore(t)
	saveEmptyCollections(t, s)

	if _, err := s.Create(portfolio.CollectionProjects, portfolio.Item{"title": "A"}); err != nil {
		t.Fatalf("Create() error: %v", err)
	}

	if _, err := s.Delete(portfolio.CollectionProjects, 99); !errors.Is(err, ErrNotFound) {
		t.Errorf("Delete() error = %v, want ErrNotFound", err)
	}

	items, err := s.List(portfolio.CollectionProjects)
	if err != nil {
		t.Fatalf("List() error: %v", err)
	}
	if len(items) != 1 {
		t.Errorf("collection length changed by failed delete: %d items", len(items))
	}
}

func TestListMissingCollectionIsEmpty(t *testing.T) {
	s := newTestStore(t)

	// An older/partial document may lack a collection entirely.
	doc := portfolio.Default()
	doc.Certifications = nil
	if err := s.Save(doc); err != nil {
		t.Fatalf("failed to seed document: %v", err)
	}

	items, err := s.List(portfolio.CollectionCertifications)
	if err != nil {
		t.Fatalf("List() error: %v", err)
	}
	if items == nil || len(items) != 0 {
		t.Errorf("List() on missing collection = %v, want empty slice", items)
	}
}

func TestUnknownCollection(t *testing.T) {
	s := newTestStore(t)

	if _, err := s.List("passwords"); !errors.Is(err, portfolio.ErrUnknownCollection) {
		t.Errorf("List(passwords) error = %v, want ErrUnknownCollection", err)
	}
	if _, err := s.Create("passwords", portfolio.Item{}); !errors.Is(err, portfolio.ErrUnknownCollection) {
		t.Errorf("Create(passwords) error = %v, want ErrUnknownCollection", err)
	}
}

// The store offers no locking: two writers that loaded the same state both
// persist a full document, and the second overwrite silently discards the
// first writer's change. This pins the accepted last-writer-wins semantics.
func TestConcurrentWritesLastWriterWins(t *testing.T) {
	s := newTestStore(t)
	saveEmptyCollections(t, s)

	first, err := s.Load()
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	second, err := s.Load()
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}

	first.PersonalInfo["title"] = "From first writer"
	if err := s.Save(first); err != nil {
		t.Fatalf("Save() error: %v", err)
	}

	second.PersonalInfo["name"] = "From second writer"
	if err := s.Save(second); err != nil {
		t.Fatalf("Save() error: %v", err)
	}

	final, err := s.Load()
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if final.PersonalInfo["name"] != "From second writer" {
		t.Error("second writer's change missing")
	}
	if final.PersonalInfo["title"] == "From first writer" {
		t.Error("first writer's change survived; expected it to be lost to the overwrite")
	}
}
