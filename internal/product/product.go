package product

// Addon is an optional surcharge line item attached to a product. The price
// is charged once per ordered unit when the addon is selected.
type Addon struct {
	Name  string `json:"name"`
	Price int    `json:"price"`
}

// Product represents a storefront product stored under `products/{id}`.
// IDs are caller-supplied strings (admin-entered, e.g. "p1"), not serials.
// Description holds raw markup produced by the admin editor.
type Product struct {
	ID          string            `json:"id"`
	Name        string            `json:"name"`
	Category    string            `json:"category"`
	Description string            `json:"description"`
	Price       int               `json:"price"`
	Stock       int               `json:"stock"`
	Video       *string           `json:"video,omitempty"`
	Images      []string          `json:"images"`
	Addons      []Addon           `json:"addons,omitempty"`
	ExtraFields map[string]string `json:"extraFields,omitempty"`
}

// Update is a partial product mutation. Nil fields are left untouched;
// non-nil fields overwrite (shallow merge, last write wins).
type Update struct {
	Name        *string            `json:"name,omitempty"`
	Category    *string            `json:"category,omitempty"`
	Description *string            `json:"description,omitempty"`
	Price       *int               `json:"price,omitempty"`
	Stock       *int               `json:"stock,omitempty"`
	Video       *string            `json:"video,omitempty"`
	Images      *[]string          `json:"images,omitempty"`
	Addons      *[]Addon           `json:"addons,omitempty"`
	ExtraFields *map[string]string `json:"extraFields,omitempty"`
}

// FindAddon returns the product addon with the given name.
func (p Product) FindAddon(name string) (Addon, bool) {
	for _, a := range p.Addons {
		if a.Name == name {
			return a, true
		}
	}
	return Addon{}, false
}
