package seed

// CharacterFixture describes one seeded character. Bounty is stored as life
// points and may exceed the int32 column, so it is clamped on insert.
type CharacterFixture struct {
	Name        string
	Affiliation string
	Bounty      int64
	Size        float64
	Age         int
	Weight      float64
	Image       string
}

// Characters is the reference data written by the seed command.
var Characters = []CharacterFixture{
	{Name: "Monkey D. Luffy", Affiliation: "Straw Hat Pirates", Bounty: 1500000000, Size: 1.74, Age: 19, Weight: 64, Image: "luffy.png"},
	{Name: "Roronoa Zoro", Affiliation: "Straw Hat Pirates", Bounty: 320000000, Size: 1.81, Age: 21, Weight: 85, Image: "zoro.png"},
	{Name: "Nami", Affiliation: "Straw Hat Pirates", Bounty: 66000000, Size: 1.7, Age: 20, Weight: 58, Image: "nami.png"},
	{Name: "Usopp", Affiliation: "Straw Hat Pirates", Bounty: 200000000, Size: 1.76, Age: 19, Weight: 65, Image: "usopp.png"},
	{Name: "Sanji", Affiliation: "Straw Hat Pirates", Bounty: 330000000, Size: 1.8, Age: 21, Weight: 69, Image: "sanji.png"},
	{Name: "Tony Tony Chopper", Affiliation: "Straw Hat Pirates", Bounty: 100, Size: 0.9, Age: 17, Weight: 20, Image: "chopper.png"},
	{Name: "Nico Robin", Affiliation: "Straw Hat Pirates", Bounty: 130000000, Size: 1.88, Age: 30, Weight: 62, Image: "robin.png"},
	{Name: "Franky", Affiliation: "Straw Hat Pirates", Bounty: 94000000, Size: 2.4, Age: 36, Weight: 300, Image: "franky.png"},
	{Name: "Brook", Affiliation: "Straw Hat Pirates", Bounty: 83000000, Size: 2.77, Age: 90, Weight: 0, Image: "brook.png"},
	{Name: "Jinbe", Affiliation: "Straw Hat Pirates", Bounty: 438000000, Size: 3.01, Age: 46, Weight: 275, Image: "jinbe.png"},
	{Name: "Boa Hancock", Affiliation: "Kuja Pirates", Bounty: 800000000, Size: 1.91, Age: 31, Weight: 61, Image: "boa_hancock.png"},
	{Name: "Shanks", Affiliation: "Red Hair Pirates", Bounty: 4048900000, Size: 1.99, Age: 39, Weight: 82, Image: "shanks.png"},
}
