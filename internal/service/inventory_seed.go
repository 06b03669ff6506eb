package service

// seedImage is one curated inventory entry. The collections below are
// pre-vetted per category/mood pairing so a fresh deployment has relevant
// imagery before any large-scale import runs.
type seedImage struct {
	URL          string
	Keywords     []string
	SourceID     string
	Photographer string
}

// seedSource labels every curated entry; all current seeds come from Pexels.
const seedSource = "pexels"

// seedCollections maps category → mood → curated images.
var seedCollections = map[string]map[string][]seedImage{
	"jokes": {
		"vibrant": {
			{
				URL:          "https://images.pexels.com/photos/3945657/pexels-photo-3945657.jpeg?auto=compress&cs=tinysrgb&w=1600",
				Keywords:     []string{"happy", "playful", "colorful"},
				SourceID:     "3945657",
				Photographer: "Gratisography",
			},
			{
				URL:          "https://images.pexels.com/photos/1181690/pexels-photo-1181690.jpeg?auto=compress&cs=tinysrgb&w=1600",
				Keywords:     []string{"funny", "vibrant", "bright"},
				SourceID:     "1181690",
				Photographer: "Andrea Piacquadio",
			},
		},
		"playful": {
			{
				URL:          "https://images.pexels.com/photos/416978/pexels-photo-416978.jpeg?auto=compress&cs=tinysrgb&w=1600",
				Keywords:     []string{"playful", "funny", "laugh"},
				SourceID:     "416978",
				Photographer: "Pixabay",
			},
		},
		"bright": {
			{
				URL:          "https://images.pexels.com/photos/1108099/pexels-photo-1108099.jpeg?auto=compress&cs=tinysrgb&w=1600",
				Keywords:     []string{"bright", "colorful", "energetic"},
				SourceID:     "1108099",
				Photographer: "Unsplash",
			},
		},
	},
	"facts": {
		"minimalist": {
			{
				URL:          "https://images.pexels.com/photos/3945683/pexels-photo-3945683.jpeg?auto=compress&cs=tinysrgb&w=1600",
				Keywords:     []string{"minimalist", "clean", "simple"},
				SourceID:     "3945683",
				Photographer: "RDNE Stock project",
			},
		},
		"clean": {
			{
				URL:          "https://images.pexels.com/photos/3062507/pexels-photo-3062507.jpeg?auto=compress&cs=tinysrgb&w=1600",
				Keywords:     []string{"clean", "organized", "clear"},
				SourceID:     "3062507",
				Photographer: "Pixabay",
			},
		},
		"sharp": {
			{
				URL:          "https://images.pexels.com/photos/326502/pexels-photo-326502.jpeg?auto=compress&cs=tinysrgb&w=1600",
				Keywords:     []string{"sharp", "focused", "detailed"},
				SourceID:     "326502",
				Photographer: "Pexels",
			},
		},
	},
	"quotes": {
		"serene": {
			{
				URL:          "https://images.pexels.com/photos/1761279/pexels-photo-1761279.jpeg?auto=compress&cs=tinysrgb&w=1600",
				Keywords:     []string{"serene", "peaceful", "calm"},
				SourceID:     "1761279",
				Photographer: "Pixabay",
			},
			{
				URL:          "https://images.pexels.com/photos/1619317/pexels-photo-1619317.jpeg?auto=compress&cs=tinysrgb&w=1600",
				Keywords:     []string{"serene", "nature", "landscape"},
				SourceID:     "1619317",
				Photographer: "Pixabay",
			},
		},
		"ethereal": {
			{
				URL:          "https://images.pexels.com/photos/1470496/pexels-photo-1470496.jpeg?auto=compress&cs=tinysrgb&w=1600",
				Keywords:     []string{"ethereal", "dreamy", "soft"},
				SourceID:     "1470496",
				Photographer: "Pixabay",
			},
		},
		"atmospheric": {
			{
				URL:          "https://images.pexels.com/photos/3714896/pexels-photo-3714896.jpeg?auto=compress&cs=tinysrgb&w=1600",
				Keywords:     []string{"atmospheric", "moody", "dramatic"},
				SourceID:     "3714896",
				Photographer: "Pixabay",
			},
		},
	},
}
