package gallery

// float64Ptr returns a pointer to v, for optional depth values.
func float64Ptr(v float64) *float64 { return &v }

// DefaultSeed returns the initial gallery shown before anyone has uploaded.
// Inserted in reverse so the first piece lists first (listings are newest-first).
func DefaultSeed() []NewArtwork {
	pieces := []NewArtwork{
		{
			Title:  "Bronze Voyager",
			Artist: "Studio Glimmer",
			Description: "A sculpture capturing the essence of exploration. The bronze figure, " +
				"weathered by time, gazes towards an unseen horizon, symbolizing humanity's " +
				"perpetual quest for discovery. Its intricate details tell a story of journeys " +
				"both physical and spiritual.",
			ImageURL:   "https://placehold.co/600x800",
			Kind:       KindModel,
			Dimensions: Dimensions{Width: 0.8, Height: 1.5, Depth: float64Ptr(0.6)},
		},
		{
			Title:  "Chromatic Dreams",
			Artist: "Alex Chroma",
			Description: "An abstract painting that plays with color and light. Swirls of vibrant " +
				"hues create a dynamic and emotional landscape, inviting the viewer to lose " +
				"themselves in a world of pure imagination. The artist uses a unique layering " +
				"technique to achieve a sense of depth and movement.",
			ImageURL:   "https://placehold.co/800x600",
			Kind:       KindPlane,
			Dimensions: Dimensions{Width: 1.2, Height: 0.9},
		},
		{
			Title:  "Marble Serenity",
			Artist: "Helena Stone",
			Description: "A classical bust carved from a single block of Carrara marble. The " +
				"subject's serene expression and the delicate rendering of hair and fabric " +
				"showcase a mastery of traditional sculpting techniques. It represents peace " +
				"and timeless beauty.",
			ImageURL:   "https://placehold.co/600x800",
			Kind:       KindModel,
			Dimensions: Dimensions{Width: 0.5, Height: 0.7, Depth: float64Ptr(0.3)},
		},
		{
			Title:  "Metropolis Grid",
			Artist: "Urban Construct",
			Description: "A digital artwork converted to a physical plane, depicting a sprawling " +
				"cityscape through a minimalist grid. The piece explores themes of order and " +
				"chaos in urban environments. The use of negative space is as important as the " +
				"lines themselves.",
			ImageURL:   "https://placehold.co/600x600",
			Kind:       KindPlane,
			Dimensions: Dimensions{Width: 1, Height: 1},
		},
	}

	reversed := make([]NewArtwork, 0, len(pieces))
	for i := len(pieces) - 1; i >= 0; i-- {
		reversed = append(reversed, pieces[i])
	}
	return reversed
}
