package entity

// Affiliation groups characters, e.g. a pirate crew.
type Affiliation struct {
	ID   int64
	Name string
}

// Character is reference data loaded by the seed command.
type Character struct {
	ID            int64
	Name          string
	AffiliationID int64
	LifePoints    int32
	Size          float64 // metres
	Age           int
	Weight        float64 // kilograms
	ImageURL      string
}
