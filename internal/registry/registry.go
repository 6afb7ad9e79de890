// Package registry holds the fixed catalogue of searchable categories and the
// marker presentation of every place label.
package registry

// PlaceType is a leaf category searched with a single Overpass tag predicate.
type PlaceType struct {
	Label     string `json:"label"`
	Predicate string `json:"predicate"`
}

// Category is a named group of place types.
type Category struct {
	Name       string      `json:"name"`
	PlaceTypes []PlaceType `json:"place_types"`
}

// Icon is a Font Awesome icon name and a marker color.
type Icon struct {
	Name  string
	Color string
}

// fallbackIcon is used for place labels without a registered icon.
var fallbackIcon = Icon{Name: "info-sign", Color: "gray"}

var categories = []Category{
	{Name: "Medical", PlaceTypes: []PlaceType{
		{Label: "Hospital", Predicate: `amenity="hospital"`},
		{Label: "Clinic", Predicate: `amenity="clinic"`},
		{Label: "Pharmacy", Predicate: `amenity="pharmacy"`},
	}},
	{Name: "Security", PlaceTypes: []PlaceType{
		{Label: "Police Station", Predicate: `amenity="police"`},
	}},
	{Name: "Grocery", PlaceTypes: []PlaceType{
		{Label: "Grocery Store", Predicate: `shop="supermarket"`},
	}},
	{Name: "Restaurants", PlaceTypes: []PlaceType{
		{Label: "Restaurant", Predicate: `amenity="restaurant"`},
	}},
	{Name: "Banks and Post Office", PlaceTypes: []PlaceType{
		{Label: "Bank", Predicate: `amenity="bank"`},
		{Label: "Post Office", Predicate: `amenity="post_office"`},
	}},
	{Name: "Gas Stations", PlaceTypes: []PlaceType{
		{Label: "Petrol Bunk", Predicate: `amenity="fuel"`},
	}},
	{Name: "Education", PlaceTypes: []PlaceType{
		{Label: "School", Predicate: `amenity="school"`},
	}},
	{Name: "Temple", PlaceTypes: []PlaceType{
		{Label: "Temple", Predicate: `amenity="place_of_worship"`},
	}},
}

var icons = map[string]Icon{
	"Hospital":       {Name: "medkit", Color: "blue"},
	"Clinic":         {Name: "hospital", Color: "lightred"},
	"Pharmacy":       {Name: "plus-square", Color: "lightgreen"},
	"Police Station": {Name: "shield", Color: "darkblue"},
	"Grocery Store":  {Name: "shopping-cart", Color: "green"},
	"Restaurant":     {Name: "cutlery", Color: "orange"},
	"Bank":           {Name: "university", Color: "green"},
	"Post Office":    {Name: "envelope", Color: "pink"},
	"Petrol Bunk":    {Name: "gas-pump", Color: "purple"},
	"School":         {Name: "graduation-cap", Color: "darkgreen"},
	"Temple":         {Name: "place-of-worship", Color: "gold"},
}

// Categories returns a copy of every category in declaration order.
func Categories() []Category {
	out := make([]Category, len(categories))
	for i, c := range categories {
		out[i] = c.clone()
	}
	return out
}

// Names returns the category names in declaration order.
func Names() []string {
	names := make([]string, len(categories))
	for i, c := range categories {
		names[i] = c.Name
	}
	return names
}

// Lookup returns a copy of the named category.
func Lookup(name string) (Category, bool) {
	for _, c := range categories {
		if c.Name == name {
			return c.clone(), true
		}
	}
	return Category{}, false
}

// IconFor returns the marker icon of a place label, or the gray info-sign icon.
func IconFor(label string) Icon {
	if icon, ok := icons[label]; ok {
		return icon
	}
	return fallbackIcon
}

func (c Category) clone() Category {
	types := make([]PlaceType, len(c.PlaceTypes))
	copy(types, c.PlaceTypes)
	return Category{Name: c.Name, PlaceTypes: types}
}
