package products

// Resolve binds a multi-product selection to the catalog.
//
// A non-empty selection filters the catalog, keeping catalog order. When
// every selected id is stale the whole catalog is used instead, and so is
// an empty selection. The result is empty only when the catalog is.
func Resolve(selected []string, catalog []Product) []Product {
	if len(selected) == 0 {
		return clone(catalog)
	}

	wanted := make(map[ID]struct{}, len(selected))
	for _, id := range selected {
		wanted[ID(id)] = struct{}{}
	}

	var matched []Product
	for _, p := range catalog {
		if _, ok := wanted[p.ID]; ok {
			matched = append(matched, p)
		}
	}

	if len(matched) == 0 {
		return clone(catalog)
	}
	return matched
}

// Featured binds a single-product reference: the matching product, else the
// first catalog product. ok is false only for an empty catalog.
func Featured(id string, catalog []Product) (Product, bool) {
	if len(catalog) == 0 {
		return Product{}, false
	}
	if id != "" {
		for _, p := range catalog {
			if p.ID == ID(id) {
				return p, true
			}
		}
	}
	return catalog[0], true
}

func clone(in []Product) []Product {
	if len(in) == 0 {
		return nil
	}
	out := make([]Product, len(in))
	copy(out, in)
	return out
}
