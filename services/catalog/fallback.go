package catalog

import "rinseo/models"

// fallbackCatalog is the inline product set served when the catalog
// file cannot be read.
func fallbackCatalog() productFile {
	return productFile{
		Products: []models.Product{
			{
				ID:          "vintage-denim-jacket",
				Name:        "Vintage Denim Jacket",
				Category:    "casual",
				Images:      []string{"assets/images/products/vintage-denim-jacket.jpg"},
				BuyPrice:    2999,
				RentPrice:   999,
				Condition:   "excellent",
				Description: "Classic vintage denim jacket with unique detailing",
				Sizes:       []string{"S", "M", "L", "XL"},
				Available:   true,
			},
			{
				ID:          "classic-white-shirt",
				Name:        "Classic White Shirt",
				Category:    "formal",
				Images:      []string{"assets/images/products/classic-white-shirt.jpg"},
				BuyPrice:    1499,
				RentPrice:   499,
				Condition:   "like-new",
				Description: "Crisp white shirt perfect for professional settings",
				Sizes:       []string{"S", "M", "L", "XL", "XXL"},
				Available:   true,
			},
			{
				ID:          "ethnic-kurta-set",
				Name:        "Ethnic Kurta Set",
				Category:    "ethnic",
				Images:      []string{"assets/images/products/ethnic-kurta-set.jpg"},
				BuyPrice:    2499,
				RentPrice:   799,
				Condition:   "excellent",
				Description: "Traditional kurta set for festive occasions",
				Sizes:       []string{"S", "M", "L", "XL", "XXL"},
				Available:   true,
			},
			{
				ID:          "designer-dress",
				Name:        "Designer Dress",
				Category:    "formal",
				Images:      []string{"assets/images/products/designer-dress.jpg"},
				BuyPrice:    3999,
				RentPrice:   1299,
				Condition:   "excellent",
				Description: "Elegant designer dress for special events",
				Sizes:       []string{"XS", "S", "M", "L", "XL"},
				Available:   true,
			},
			{
				ID:          "casual-tshirt",
				Name:        "Casual T-Shirt",
				Category:    "casual",
				Images:      []string{"assets/images/products/casual-tshirt.jpg"},
				BuyPrice:    799,
				RentPrice:   299,
				Condition:   "excellent",
				Description: "Comfortable casual t-shirt for everyday wear",
				Sizes:       []string{"S", "M", "L", "XL", "XXL"},
				Available:   true,
			},
			{
				ID:          "formal-blazer",
				Name:        "Formal Blazer",
				Category:    "formal",
				Images:      []string{"assets/images/products/formal-blazer.jpg"},
				BuyPrice:    4999,
				RentPrice:   1599,
				Condition:   "excellent",
				Description: "Professional blazer for business meetings",
				Sizes:       []string{"S", "M", "L", "XL"},
				Available:   true,
			},
		},
		Plans: []models.ServicePlan{
			{Type: "wash", DisplayName: "Wash Only", BasePrice: 150},
			{Type: "wash-iron", DisplayName: "Wash + Iron", BasePrice: 250},
		},
	}
}
