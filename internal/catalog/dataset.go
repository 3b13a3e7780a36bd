package catalog

import (
	"errors"
	"fmt"
)

// ErrInvalidDataset is returned by NewDataset when the input is inconsistent.
var ErrInvalidDataset = errors.New("invalid dataset")

// Dataset is a read-only lookup table from Category to its items. It is
// built once at startup and shared by reference; nothing mutates it after
// NewDataset returns.
type Dataset struct {
	categories []Category
	items      map[Category][]Item
	byID       map[string]Item
}

// NewDataset validates and copies the given data into a Dataset.
func NewDataset(categories []Category, items map[Category][]Item) (*Dataset, error) {
	if len(categories) == 0 {
		return nil, fmt.Errorf("%w: no categories", ErrInvalidDataset)
	}

	ds := &Dataset{
		categories: make([]Category, 0, len(categories)),
		items:      make(map[Category][]Item, len(categories)),
		byID:       make(map[string]Item),
	}

	for _, c := range categories {
		if c == "" {
			return nil, fmt.Errorf("%w: empty category name", ErrInvalidDataset)
		}
		if _, dup := ds.items[c]; dup {
			return nil, fmt.Errorf("%w: duplicate category %q", ErrInvalidDataset, c)
		}
		ds.categories = append(ds.categories, c)
		ds.items[c] = []Item{}
	}

	for c, list := range items {
		if _, known := ds.items[c]; !known {
			return nil, fmt.Errorf("%w: items registered for unknown category %q", ErrInvalidDataset, c)
		}
		for _, item := range list {
			if item.ID == "" {
				return nil, fmt.Errorf("%w: item %q in %q has no id", ErrInvalidDataset, item.Name, c)
			}
			if _, dup := ds.byID[item.ID]; dup {
				return nil, fmt.Errorf("%w: duplicate item id %q", ErrInvalidDataset, item.ID)
			}
			ds.byID[item.ID] = item
			ds.items[c] = append(ds.items[c], item)
		}
	}

	return ds, nil
}

// Categories returns the enumeration in menu order.
func (d *Dataset) Categories() []Category {
	out := make([]Category, len(d.categories))
	copy(out, d.categories)
	return out
}

// Default is the category selected when the list screen opens.
func (d *Dataset) Default() Category {
	return d.categories[0]
}

// Has reports whether c is one of the enumerated categories.
func (d *Dataset) Has(c Category) bool {
	_, ok := d.items[c]
	return ok
}

// Items returns the items of c in registration order. Unknown categories
// yield an empty slice.
func (d *Dataset) Items(c Category) []Item {
	list := d.items[c]
	out := make([]Item, len(list))
	copy(out, list)
	return out
}

// Lookup finds an item by its id.
func (d *Dataset) Lookup(id string) (Item, bool) {
	item, ok := d.byID[id]
	return item, ok
}
