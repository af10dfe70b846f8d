package enum

// BikeCategory represents the category of a bicycle
type BikeCategory string

const (
	CategoryMountain BikeCategory = "mountain"
	CategoryRoad     BikeCategory = "road"
	CategoryKids     BikeCategory = "kids"
	CategoryElectric BikeCategory = "electric"
	CategoryCity     BikeCategory = "city"
)

// Categories lists all valid bike categories
func Categories() []BikeCategory {
	return []BikeCategory{CategoryMountain, CategoryRoad, CategoryKids, CategoryElectric, CategoryCity}
}

// IsValid reports whether the category is one of the known values
func (c BikeCategory) IsValid() bool {
	switch c {
	case CategoryMountain, CategoryRoad, CategoryKids, CategoryElectric, CategoryCity:
		return true
	}
	return false
}

func (c BikeCategory) String() string {
	return string(c)
}
