package product

import "time"

const pexels = "?auto=compress&cs=tinysrgb&w=1260&h=750&dpr=2"

// SeedCategories returns the storefront's starter categories
func SeedCategories() []Category {
	return []Category{
		{
			Name:          "Electronics",
			Slug:          "electronics",
			Image:         "https://images.pexels.com/photos/1779487/pexels-photo-1779487.jpeg" + pexels,
			Description:   "Top-tier gadgets and tech accessories",
			Featured:      true,
			SubCategories: []string{"Smartphones", "Laptops", "Audio", "Gaming", "Wearables"},
		},
		{
			Name:          "Clothing",
			Slug:          "clothing",
			Image:         "https://images.pexels.com/photos/934070/pexels-photo-934070.jpeg" + pexels,
			Description:   "Stylish apparel for all occasions",
			Featured:      true,
			SubCategories: []string{"Men", "Women", "Kids", "Activewear", "Formal"},
		},
		{
			Name:          "Accessories",
			Slug:          "accessories",
			Image:         "https://images.pexels.com/photos/1152077/pexels-photo-1152077.jpeg" + pexels,
			Description:   "Complete your look with premium accessories",
			Featured:      true,
			SubCategories: []string{"Bags", "Jewelry", "Watches", "Belts", "Sunglasses"},
		},
		{
			Name:          "Home & Living",
			Slug:          "home",
			Image:         "https://images.pexels.com/photos/1643383/pexels-photo-1643383.jpeg" + pexels,
			Description:   "Elevate your space with stylish decor",
			Featured:      true,
			SubCategories: []string{"Furniture", "Decor", "Kitchen", "Bedding", "Lighting"},
		},
		{
			Name:          "Beauty",
			Slug:          "beauty",
			Image:         "https://images.pexels.com/photos/2533266/pexels-photo-2533266.jpeg" + pexels,
			Description:   "Premium beauty and skincare products",
			Featured:      false,
			SubCategories: []string{"Skincare", "Makeup", "Fragrances", "Hair Care", "Bath & Body"},
		},
		{
			Name:          "Sports & Outdoors",
			Slug:          "sports",
			Image:         "https://images.pexels.com/photos/416717/pexels-photo-416717.jpeg" + pexels,
			Description:   "Gear up for your active lifestyle",
			Featured:      false,
			SubCategories: []string{"Fitness", "Outdoor Recreation", "Sports Equipment", "Athletic Clothing", "Camping"},
		},
		{
			Name:          "Books & Stationery",
			Slug:          "books",
			Image:         "https://images.pexels.com/photos/590493/pexels-photo-590493.jpeg" + pexels,
			Description:   "Feed your mind with quality reads",
			Featured:      false,
			SubCategories: []string{"Fiction", "Non-Fiction", "Academic", "Journals", "Art Supplies"},
		},
		{
			Name:          "Toys & Games",
			Slug:          "toys",
			Image:         "https://images.pexels.com/photos/163696/toy-car-toy-box-mini-163696.jpeg" + pexels,
			Description:   "Fun for all ages and occasions",
			Featured:      false,
			SubCategories: []string{"Board Games", "Action Figures", "Educational Toys", "Outdoor Toys", "Puzzles"},
		},
	}
}

// SeedProducts returns the starter products. Creation times are spaced one
// minute apart from base so that "newest" ordering is stable.
func SeedProducts(base time.Time) []Product {
	products := []Product{
		{
			ID:           "1",
			Name:         "Premium Wireless Headphones",
			Price:        249.99,
			Category:     "Electronics",
			CategorySlug: "electronics",
			SubCategory:  "Audio",
			Rating:       4.8,
			Image:        "https://images.pexels.com/photos/577769/pexels-photo-577769.jpeg" + pexels,
			Description:  "Experience unparalleled sound quality with our premium wireless headphones.",
		},
		{
			ID:           "2",
			Name:         "Designer Leather Jacket",
			Price:        349.99,
			Category:     "Clothing",
			CategorySlug: "clothing",
			SubCategory:  "Men",
			Rating:       4.9,
			Image:        "https://images.pexels.com/photos/2849742/pexels-photo-2849742.jpeg" + pexels,
			Description:  "Elevate your style with this luxurious leather jacket, perfect for any occasion.",
		},
		{
			ID:           "3",
			Name:         "Smart Watch Series X",
			Price:        299.99,
			Category:     "Electronics",
			CategorySlug: "electronics",
			SubCategory:  "Wearables",
			Rating:       4.7,
			Image:        "https://images.pexels.com/photos/437037/pexels-photo-437037.jpeg" + pexels,
			Description:  "Track your fitness and stay connected with our latest smart watch.",
		},
		{
			ID:           "4",
			Name:         "Minimalist Desk Lamp",
			Price:        89.99,
			Category:     "Home & Living",
			CategorySlug: "home",
			SubCategory:  "Lighting",
			Rating:       4.6,
			Image:        "https://images.pexels.com/photos/1112598/pexels-photo-1112598.jpeg" + pexels,
			Description:  "Add a touch of elegance to your workspace with our minimalist desk lamp.",
		},
		{
			ID:           "5",
			Name:         "Premium Sunglasses",
			Price:        179.99,
			Category:     "Accessories",
			CategorySlug: "accessories",
			SubCategory:  "Sunglasses",
			Rating:       4.8,
			Image:        "https://images.pexels.com/photos/701877/pexels-photo-701877.jpeg" + pexels,
			Description:  "Protect your eyes in style with our premium UV-protected sunglasses.",
		},
		{
			ID:           "6",
			Name:         "Organic Cotton T-Shirt",
			Price:        39.99,
			Category:     "Clothing",
			CategorySlug: "clothing",
			SubCategory:  "Men",
			Rating:       4.5,
			Image:        "https://images.pexels.com/photos/5709665/pexels-photo-5709665.jpeg" + pexels,
			Description:  "Stay comfortable and eco-friendly with our organic cotton t-shirt.",
		},
		{
			ID:           "7",
			Name:         "Wireless Earbuds",
			Price:        129.99,
			Category:     "Electronics",
			CategorySlug: "electronics",
			SubCategory:  "Audio",
			Rating:       4.4,
			Image:        "https://images.pexels.com/photos/3780681/pexels-photo-3780681.jpeg" + pexels,
			Description:  "Experience freedom with our lightweight wireless earbuds.",
		},
		{
			ID:           "8",
			Name:         "Modern Coffee Table",
			Price:        249.99,
			Category:     "Home & Living",
			CategorySlug: "home",
			SubCategory:  "Furniture",
			Rating:       4.7,
			Image:        "https://images.pexels.com/photos/1571459/pexels-photo-1571459.jpeg" + pexels,
			Description:  "Upgrade your living space with this sleek, modern coffee table.",
		},
	}
	for i := range products {
		products[i].CreatedAt = base.Add(time.Duration(i) * time.Minute)
		products[i].UpdatedAt = products[i].CreatedAt
	}
	return products
}
