package file

import (
	"fmt"

	"github.com/folio-dev/folio/internal/logger"
	"github.com/folio-dev/folio/internal/portfolio"
)

// List returns all items of the named collection. A collection absent from an
// older or partial document is treated as empty, not as an error.
func (s *Store) List(name string) ([]portfolio.Item, error) {
	doc, err := s.Load()
	if err != nil {
		return nil, err
	}

	items, err := doc.Collection(name)
	if err != nil {
		return nil, err
	}
	if *items == nil {
		s.log.Warn("collection missing from document, treating as empty",
			logger.String("collection", name))
		return []portfolio.Item{}, nil
	}
	return *items, nil
}

// Get returns the item with the given id, or ErrNotFound.
func (s *Store) Get(name string, id int) (portfolio.Item, error) {
	doc, err := s.Load()
	if err != nil {
		return nil, err
	}

	items, err := doc.Collection(name)
	if err != nil {
		return nil, err
	}
	for _, it := range *items {
		if it.ID() == id {
			return it, nil
		}
	}
	return nil, fmt.Errorf("%w: %s id %d", ErrNotFound, name, id)
}

// Create appends a new item with id max(existing ids, 0)+1. An "id" key in
// the body is ignored; the store owns id assignment.
func (s *Store) Create(name string, body portfolio.Item) (portfolio.Item, error) {
	doc, err := s.Load()
	if err != nil {
		return nil, err
	}

	items, err := doc.Collection(name)
	if err != nil {
		return nil, err
	}

	item := portfolio.Item{}
	portfolio.Merge(item, body)
	item["id"] = portfolio.NextID(*items)
	*items = append(*items, item)

	s.touch(doc)
	if err := s.Save(doc); err != nil {
		return nil, err
	}
	return item, nil
}

// Update shallow-merges patch over the first item matching id. Patch keys
// overwrite, other keys are retained, and the stored id always wins over any
// "id" key in the patch.
func (s *Store) Update(name string, id int, patch portfolio.Item) (portfolio.Item, error) {
	doc, err := s.Load()
	if err != nil {
		return nil, err
	}

	items, err := doc.Collection(name)
	if err != nil {
		return nil, err
	}

	for i, it := range *items {
		if it.ID() != id {
			continue
		}
		portfolio.Merge(it, patch)
		it["id"] = id
		(*items)[i] = it

		s.touch(doc)
		if err := s.Save(doc); err != nil {
			return nil, err
		}
		return it, nil
	}
	return nil, fmt.Errorf("%w: %s id %d", ErrNotFound, name, id)
}

// Delete removes the first item matching id, preserving the order of the
// remainder, and returns the removed item.
func (s *Store) Delete(name string, id int) (portfolio.Item, error) {
	doc, err := s.Load()
	if err != nil {
		return nil, err
	}

	items, err := doc.Collection(name)
	if err != nil {
		return nil, err
	}

	for i, it := range *items {
		if it.ID() != id {
			continue
		}
		*items = append((*items)[:i], (*items)[i+1:]...)

		s.touch(doc)
		if err := s.Save(doc); err != nil {
			return nil, err
		}
		return it, nil
	}
	return nil, fmt.Errorf("%w: %s id %d", ErrNotFound, name, id)
}
