package repository

import "solemate-service/internal/models"

var sampleReviews = []models.ProductReview{
	{ID: "review1", Author: "Alex K.", Rating: 5, Comment: "Amazingly comfortable and stylish!", Date: "2024-05-01"},
	{ID: "review2", Author: "Jamie L.", Rating: 4, Comment: "Great shoes, but a bit pricey.", Date: "2024-05-05"},
	{ID: "review3", Author: "Casey P.", Rating: 5, Comment: "Perfect fit and excellent quality.", Date: "2024-04-20"},
}

// SeedCatalog returns the starter catalog loaded on every process start
func SeedCatalog() []models.Product {
	return []models.Product{
		{
			ID:              "1",
			Name:            "Urban Strider X1",
			Brand:           "NovaGear",
			Description:     "Experience ultimate comfort and style with the Urban Strider X1. Perfect for city walks and casual outings. Features breathable mesh and responsive cushioning.",
			Price:           120.00,
			Images:          []string{"https://placehold.co/800x600.png?a=1", "https://placehold.co/800x600.png?a=2", "https://placehold.co/800x600.png?a=3"},
			Sizes:           []string{"7", "8", "9", "10", "11", "12"},
			AvailableColors: []string{"Black", "White", "Navy Blue"},
			Category:        "Sneakers",
			Reviews:         sampleReviews[0:2],
			Slug:            "urban-strider-x1",
			Stock:           50,
			Tags:            []string{"casual", "running", "comfort"},
			DataAiHint:      "sneaker shoe",
		},
		{
			ID:              "2",
			Name:            "TrailBlazer Pro Boots",
			Brand:           "TerraBoot",
			Description:     "Conquer any terrain with the TrailBlazer Pro Boots. Waterproof, durable, and designed for the adventurous spirit. Provides excellent ankle support and grip.",
			Price:           180.00,
			Images:          []string{"https://placehold.co/800x600.png?b=1", "https://placehold.co/800x600.png?b=2"},
			Sizes:           []string{"8", "9", "10", "11", "12", "13"},
			AvailableColors: []string{"Brown", "Dark Olive"},
			Category:        "Boots",
			Reviews:         sampleReviews[2:3],
			Slug:            "trailblazer-pro-boots",
			Stock:           30,
			Tags:            []string{"hiking", "outdoor", "waterproof"},
			DataAiHint:      "hiking boot",
		},
		{
			ID:              "3",
			Name:            "Elegant Loafer Classic",
			Brand:           "Gentlemen's Choice",
			Description:     "Step out in sophistication with the Elegant Loafer Classic. Crafted from premium leather, these loafers are perfect for formal events and office wear.",
			Price:           150.00,
			Images:          []string{"https://placehold.co/800x600.png?c=1"},
			Sizes:           []string{"7", "8", "9", "10", "10.5", "11"},
			AvailableColors: []string{"Mahogany", "Black"},
			Category:        "Formal Shoes",
			Reviews:         []models.ProductReview{},
			Slug:            "elegant-loafer-classic",
			Stock:           25,
			Tags:            []string{"formal", "office", "leather"},
			DataAiHint:      "loafer shoe",
		},
		{
			ID:              "4",
			Name:            "Summer Breeze Sandals",
			Brand:           "SunStep",
			Description:     "Enjoy the summer with these light and airy Summer Breeze Sandals. Designed for maximum comfort and breathability on hot days.",
			Price:           60.00,
			Images:          []string{"https://placehold.co/800x600.png?d=1", "https://placehold.co/800x600.png?d=2"},
			Sizes:           []string{"6", "7", "8", "9", "10"},
			AvailableColors: []string{"Beige", "Light Blue", "Coral"},
			Category:        "Sandals",
			Reviews:         sampleReviews[1:3],
			Slug:            "summer-breeze-sandals",
			Stock:           70,
			Tags:            []string{"summer", "beach", "casual"},
			DataAiHint:      "sandal shoe",
		},
		{
			ID:              "5",
			Name:            "Performance Runner Z500",
			Brand:           "NovaGear",
			Description:     "Achieve your personal best with the Performance Runner Z500. Lightweight design, superior energy return, and engineered for speed.",
			Price:           135.00,
			Images:          []string{"https://placehold.co/800x600.png?e=1", "https://placehold.co/800x600.png?e=2", "https://placehold.co/800x600.png?e=3"},
			Sizes:           []string{"7.5", "8", "8.5", "9", "9.5", "10", "11"},
			AvailableColors: []string{"Electric Blue", "Volt Green", "Stealth Gray"},
			Category:        "Running Shoes",
			Reviews:         sampleReviews[0:1],
			Slug:            "performance-runner-z500",
			Stock:           40,
			Tags:            []string{"running", "performance", "sport"},
			DataAiHint:      "running shoe",
		},
		{
			ID:              "6",
			Name:            "Classic Oxford Brogue",
			Brand:           "Gentlemen's Choice",
			Description:     "Timeless elegance meets modern craftsmanship. The Classic Oxford Brogue is a staple for any discerning wardrobe, perfect for weddings and business meetings.",
			Price:           190.00,
			Images:          []string{"https://placehold.co/800x600.png?f=1", "https://placehold.co/800x600.png?f=2"},
			Sizes:           []string{"8", "9", "10", "11", "12"},
			AvailableColors: []string{"Tan", "Dark Brown", "Black"},
			Category:        "Formal Shoes",
			Reviews:         []models.ProductReview{},
			Slug:            "classic-oxford-brogue",
			Stock:           15,
			Tags:            []string{"formal", "business", "leather", "wedding"},
			DataAiHint:      "oxford shoe",
		},
	}
}
