package models

// NoImageURL is the placeholder shown wherever a cocktail or ingredient has
// no picture of its own.
const NoImageURL = "https://res.cloudinary.com/dau9qbp3l/image/upload/v1755145790/no-photo-master.png"

const DefaultGlassType = "Highball"

// GlassTypes is the canonical glassware list offered by the admin console.
var GlassTypes = []string{
	"Highball",
	"Rocks",
	"Shot",
	"Martini",
	"Hurricane",
	"Margarita",
	"Coupe",
	"Collins",
	"Flute",
	"Irish Coffee",
	"Red Wine",
	"White Wine",
	"Nick & Nora",
	"Snifter",
	"Tiki",
	"Sling",
	"Pitcher",
	"Goblet",
	"Jar",
	"Copper Mug",
	"French Press",
	"Milkshake",
	"Punch Bowl",
	"Tea Cup",
}

func IsValidGlassType(name string) bool {
	for _, g := range GlassTypes {
		if g == name {
			return true
		}
	}
	return false
}
