package recipe

// Catalog is the read-only recipe list for a session. It is built once and
// never mutated, so it is safe to share.
type Catalog struct {
	recipes []Recipe
}

// NewCatalog copies recipes into a catalog, preserving their order.
func NewCatalog(recipes []Recipe) *Catalog {
	dup := make([]Recipe, len(recipes))
	copy(dup, recipes)
	return &Catalog{recipes: dup}
}

// All returns the recipes in catalog order. The returned slice is a copy.
func (c *Catalog) All() []Recipe {
	if c == nil || len(c.recipes) == 0 {
		return nil
	}
	dup := make([]Recipe, len(c.recipes))
	copy(dup, c.recipes)
	return dup
}

// Len returns the catalog size.
func (c *Catalog) Len() int {
	if c == nil {
		return 0
	}
	return len(c.recipes)
}

// Get returns the recipe with the given id.
func (c *Catalog) Get(id int) (Recipe, error) {
	if c != nil {
		for _, r := range c.recipes {
			if r.ID == id {
				return r, nil
			}
		}
	}
	return Recipe{}, ErrNotFound
}

// Has reports whether id belongs to a catalog recipe.
func (c *Catalog) Has(id int) bool {
	_, err := c.Get(id)
	return err == nil
}

// SampleCatalog returns the built-in catalog.
func SampleCatalog() *Catalog {
	return NewCatalog([]Recipe{
		{
			ID:          1,
			Name:        "Pasta Alfredo",
			Difficulty:  Easy,
			Time:        20,
			Ingredients: []string{"Pasta", "Cream", "Garlic", "Cheese"},
			Steps: []Step{
				Leaf("Boil pasta"),
				Group("Prepare Sauce",
					Leaf("Heat pan"),
					Leaf("Add garlic"),
					Leaf("Add cream"),
					Leaf("Add cheese"),
				),
				Leaf("Mix pasta with sauce"),
			},
		},
		{
			ID:          2,
			Name:        "Chicken Biryani",
			Difficulty:  Hard,
			Time:        60,
			Ingredients: []string{"Rice", "Chicken", "Spices", "Onion"},
			Steps: []Step{
				Leaf("Marinate chicken"),
				Group("Layering",
					Leaf("Add rice"),
					Leaf("Add chicken"),
					Group("Final Steam",
						Leaf("Cover tightly"),
						Leaf("Cook 15 mins"),
					),
				),
			},
		},
		{
			ID:          3,
			Name:        "Omelette",
			Difficulty:  Easy,
			Time:        5,
			Ingredients: []string{"Eggs", "Salt", "Pepper"},
			Steps: []Step{
				Leaf("Beat eggs"),
				Leaf("Heat pan"),
				Leaf("Cook eggs"),
			},
		},
	})
}
