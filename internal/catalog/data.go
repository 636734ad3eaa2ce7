package catalog

// Built-in catalog data. IDs are not contiguous ("3" was retired upstream);
// lookups go through ProductByID, nothing assumes sequential ids.

const fabricDescription = "100% cotton, 240 GSM, breathable fabric with a unique acid-washed finish. Unisex oversized fit with relaxed shoulders and sleeves for a streetwear look."

var categories = []Category{
	{
		ID:           "1",
		Name:         "Acid Washed Oversized Tees",
		Image:        "https://images.pexels.com/photos/8532616/pexels-photo-8532616.jpeg?auto=compress&cs=tinysrgb&w=400",
		ProductCount: 13,
	},
	{
		ID:           "2",
		Name:         "Oversized T-Shirts",
		Image:        "https://images.pexels.com/photos/8532617/pexels-photo-8532617.jpeg?auto=compress&cs=tinysrgb&w=400",
		ProductCount: 18,
	},
	{
		ID:           "3",
		Name:         "Regular Fit T-Shirts",
		Image:        "https://images.pexels.com/photos/8532615/pexels-photo-8532615.jpeg?auto=compress&cs=tinysrgb&w=400",
		ProductCount: 15,
	},
	{
		ID:           "4",
		Name:         "Premium Hoodies",
		Image:        "https://images.pexels.com/photos/8532614/pexels-photo-8532614.jpeg?auto=compress&cs=tinysrgb&w=400",
		ProductCount: 10,
	},
}

var products = []Product{
	// Acid Washed Oversized Tees
	{
		ID:            "1",
		Name:          "ASTRO WORLD Acid Wash Oversized Tee",
		Price:         59.99,
		OriginalPrice: 79.99,
		Image:         "https://images.pexels.com/photos/8532616/pexels-photo-8532616.jpeg?auto=compress&cs=tinysrgb&w=400",
		Category:      "Acid Washed Oversized Tees",
		Description:   fabricDescription,
		Rating:        4.9,
		Reviews:       187,
		InStock:       true,
		Featured:      true,
		Images: []string{
			"https://images.pexels.com/photos/8532616/pexels-photo-8532616.jpeg?auto=compress&cs=tinysrgb&w=800",
			"https://images.pexels.com/photos/8532617/pexels-photo-8532617.jpeg?auto=compress&cs=tinysrgb&w=800",
		},
	},
	{
		ID:            "2",
		Name:          "NIRVANA Acid Wash Oversized Tee",
		Price:         64.99,
		OriginalPrice: 84.99,
		Image:         "https://images.pexels.com/photos/8532617/pexels-photo-8532617.jpeg?auto=compress&cs=tinysrgb&w=400",
		Category:      "Acid Washed Oversized Tees",
		Description:   fabricDescription,
		Rating:        4.8,
		Reviews:       234,
		InStock:       true,
		Featured:      true,
		Images: []string{
			"https://images.pexels.com/photos/8532617/pexels-photo-8532617.jpeg?auto=compress&cs=tinysrgb&w=800",
			"https://images.pexels.com/photos/8532616/pexels-photo-8532616.jpeg?auto=compress&cs=tinysrgb&w=800",
		},
	},
	{
		ID:          "4",
		Name:        "Retro Acid Wash Oversized Tee - Abstract Art",
		Price:       54.99,
		Image:       "https://images.pexels.com/photos/8532614/pexels-photo-8532614.jpeg?auto=compress&cs=tinysrgb&w=400",
		Category:    "Acid Washed Oversized Tees",
		Description: fabricDescription,
		Rating:      4.6,
		Reviews:     89,
		InStock:     true,
	},
	{
		ID:            "5",
		Name:          "Grunge Acid Wash Oversized Tee - Band Style",
		Price:         52.99,
		OriginalPrice: 64.99,
		Image:         "https://images.pexels.com/photos/8532613/pexels-photo-8532613.jpeg?auto=compress&cs=tinysrgb&w=400",
		Category:      "Acid Washed Oversized Tees",
		Description:   fabricDescription,
		Rating:        4.5,
		Reviews:       156,
		InStock:       true,
	},

	// Oversized T-Shirts
	{
		ID:          "6",
		Name:        "Urban Oversized Tee - Geometric Design",
		Price:       39.99,
		Image:       "https://images.pexels.com/photos/8532612/pexels-photo-8532612.jpeg?auto=compress&cs=tinysrgb&w=400",
		Category:    "Oversized T-Shirts",
		Description: fabricDescription,
		Rating:      4.6,
		Reviews:     203,
		InStock:     true,
		Featured:    true,
	},
	{
		ID:          "7",
		Name:        "Minimalist Oversized Tee - Typography",
		Price:       42.99,
		Image:       "https://images.pexels.com/photos/8532611/pexels-photo-8532611.jpeg?auto=compress&cs=tinysrgb&w=400",
		Category:    "Oversized T-Shirts",
		Description: fabricDescription,
		Rating:      4.8,
		Reviews:     174,
		InStock:     true,
	},
	{
		ID:            "8",
		Name:          "Artistic Oversized Tee - Nature Graphics",
		Price:         44.99,
		OriginalPrice: 54.99,
		Image:         "https://images.pexels.com/photos/8532610/pexels-photo-8532610.jpeg?auto=compress&cs=tinysrgb&w=400",
		Category:      "Oversized T-Shirts",
		Description:   fabricDescription,
		Rating:        4.9,
		Reviews:       98,
		InStock:       true,
		Featured:      true,
	},
	{
		ID:          "9",
		Name:        "Street Style Oversized Tee - Urban Art",
		Price:       41.99,
		Image:       "https://images.pexels.com/photos/8532609/pexels-photo-8532609.jpeg?auto=compress&cs=tinysrgb&w=400",
		Category:    "Oversized T-Shirts",
		Description: fabricDescription,
		Rating:      4.7,
		Reviews:     145,
		InStock:     true,
	},

	// Regular Fit T-Shirts
	{
		ID:          "10",
		Name:        "Classic Fit Tee - Vintage Logo",
		Price:       29.99,
		Image:       "https://images.pexels.com/photos/8532608/pexels-photo-8532608.jpeg?auto=compress&cs=tinysrgb&w=400",
		Category:    "Regular Fit T-Shirts",
		Description: fabricDescription,
		Rating:      4.5,
		Reviews:     267,
		InStock:     true,
	},
	{
		ID:            "11",
		Name:          "Regular Fit Tee - Graphic Print",
		Price:         32.99,
		OriginalPrice: 39.99,
		Image:         "https://images.pexels.com/photos/8532607/pexels-photo-8532607.jpeg?auto=compress&cs=tinysrgb&w=400",
		Category:      "Regular Fit T-Shirts",
		Description:   fabricDescription,
		Rating:        4.4,
		Reviews:       189,
		InStock:       true,
	},
	{
		ID:          "12",
		Name:        "Essential Regular Fit Tee - Minimalist",
		Price:       27.99,
		Image:       "https://images.pexels.com/photos/8532606/pexels-photo-8532606.jpeg?auto=compress&cs=tinysrgb&w=400",
		Category:    "Regular Fit T-Shirts",
		Description: fabricDescription,
		Rating:      4.6,
		Reviews:     145,
		InStock:     true,
		Featured:    true,
	},
	{
		ID:          "13",
		Name:        "Premium Regular Fit Tee - Artist Collab",
		Price:       34.99,
		Image:       "https://images.pexels.com/photos/8532605/pexels-photo-8532605.jpeg?auto=compress&cs=tinysrgb&w=400",
		Category:    "Regular Fit T-Shirts",
		Description: fabricDescription,
		Rating:      4.8,
		Reviews:     92,
		InStock:     true,
	},

	// Premium Hoodies
	{
		ID:            "14",
		Name:          "Premium Hoodie - Street Art Graphics",
		Price:         89.99,
		OriginalPrice: 109.99,
		Image:         "https://images.pexels.com/photos/8532604/pexels-photo-8532604.jpeg?auto=compress&cs=tinysrgb&w=400",
		Category:      "Premium Hoodies",
		Description:   fabricDescription,
		Rating:        4.9,
		Reviews:       234,
		InStock:       true,
		Featured:      true,
	},
	{
		ID:          "15",
		Name:        "Luxury Hoodie - Abstract Design",
		Price:       94.99,
		Image:       "https://images.pexels.com/photos/8532603/pexels-photo-8532603.jpeg?auto=compress&cs=tinysrgb&w=400",
		Category:    "Premium Hoodies",
		Description: fabricDescription,
		Rating:      4.8,
		Reviews:     167,
		InStock:     true,
	},
	{
		ID:          "16",
		Name:        "Designer Hoodie - Artistic Print",
		Price:       99.99,
		Image:       "https://images.pexels.com/photos/8532602/pexels-photo-8532602.jpeg?auto=compress&cs=tinysrgb&w=400",
		Category:    "Premium Hoodies",
		Description: fabricDescription,
		Rating:      4.7,
		Reviews:     198,
		InStock:     true,
		Featured:    true,
	},
	{
		ID:            "17",
		Name:          "Limited Edition Hoodie - Graffiti Style",
		Price:         104.99,
		OriginalPrice: 124.99,
		Image:         "https://images.pexels.com/photos/8532601/pexels-photo-8532601.jpeg?auto=compress&cs=tinysrgb&w=400",
		Category:      "Premium Hoodies",
		Description:   fabricDescription,
		Rating:        4.9,
		Reviews:       78,
		InStock:       true,
	},
}
