package catalog

// Default returns the built-in store catalog. Group order and product
// order are part of the API contract, so entries must not be reordered.
func Default() *Catalog {
	return MustNew([]Group{
		{
			Name: "electronics",
			Products: []Product{
				{
					ID:          "iphone15",
					Name:        "iPhone 15 Pro",
					Price:       999,
					Rating:      4.8,
					Category:    "smartphone",
					Description: "Latest iPhone with Pro camera system and titanium design",
					Image:       "https://store.storeimages.cdn-apple.com/4982/as-images.apple.com/is/iphone-15-pro-finish-select-202309-6-1inch-naturaltitanium?wid=5120&hei=2880",
				},
				{
					ID:          "macbook",
					Name:        "MacBook Air M2",
					Price:       1199,
					Rating:      4.9,
					Category:    "laptop",
					Description: "Powerful M2 chip with all-day battery life",
					Image:       "https://store.storeimages.cdn-apple.com/4982/as-images.apple.com/is/macbook-air-midnight-select-20220606?wid=904&hei=840",
				},
				{
					ID:          "airpods",
					Name:        "AirPods Pro",
					Price:       249,
					Rating:      4.7,
					Category:    "audio",
					Description: "Active noise cancellation and spatial audio",
					Image:       "https://store.storeimages.cdn-apple.com/4982/as-images.apple.com/is/MQD83?wid=2000&hei=2000",
				},
				{
					ID:          "ipad",
					Name:        "iPad Air",
					Price:       599,
					Rating:      4.6,
					Category:    "tablet",
					Description: "Versatile iPad with M1 chip for creativity and productivity",
					Image:       "https://store.storeimages.cdn-apple.com/4982/as-images.apple.com/is/ipad-air-select-wifi-blue-202203?wid=940&hei=1112",
				},
			},
		},
		{
			Name: "clothing",
			Products: []Product{
				{
					ID:          "nike_shoes",
					Name:        "Nike Air Max",
					Price:       120,
					Rating:      4.5,
					Category:    "footwear",
					Description: "Comfortable running shoes with Air Max cushioning",
					Image:       "https://static.nike.com/a/images/t_PDP_1728_v1/f_auto,q_auto:eco/99486859-0ff3-46b4-949b-2d16af2ad421/air-max-90-mens-shoes-6n7391.png",
				},
				{
					ID:          "levi_jeans",
					Name:        "Levi's 501 Jeans",
					Price:       80,
					Rating:      4.4,
					Category:    "pants",
					Description: "Classic straight-leg jeans with authentic fit",
					Image:       "https://lsco.scene7.com/is/image/lsco/005010000-front-pdp?fmt=jpeg&qlt=70,1&op_sharpen=0&resMode=sharp2&op_usm=0.9,1.0,8,0&iccEmbed=0&printRes=72&_tparam_layer_1_src=sw/005010000-front-pdp&_tparam_layer_1_anchor=c&_tparam_layer_1_origin=1",
				},
				{
					ID:          "sweater",
					Name:        "Cashmere Sweater",
					Price:       150,
					Rating:      4.6,
					Category:    "tops",
					Description: "Luxurious 100% cashmere sweater for ultimate comfort",
					Image:       "https://images.unsplash.com/photo-1551488831-00ddcb6c6bd3?w=500&h=500&fit=crop",
				},
			},
		},
		{
			Name: "home",
			Products: []Product{
				{
					ID:          "coffee_maker",
					Name:        "Breville Coffee Maker",
					Price:       300,
					Rating:      4.7,
					Category:    "kitchen",
					Description: "Professional-grade espresso machine for home use",
					Image:       "https://images.unsplash.com/photo-1559056199-641a0ac8b55e?w=500&h=500&fit=crop",
				},
				{
					ID:          "vacuum",
					Name:        "Dyson V15",
					Price:       450,
					Rating:      4.8,
					Category:    "cleaning",
					Description: "Powerful cordless vacuum with laser detect technology",
					Image:       "https://images.unsplash.com/photo-1558618047-3c8c76ca7d13?w=500&h=500&fit=crop",
				},
				{
					ID:          "mattress",
					Name:        "Memory Foam Mattress",
					Price:       800,
					Rating:      4.5,
					Category:    "bedroom",
					Description: "Premium memory foam for optimal sleep comfort",
					Image:       "https://images.unsplash.com/photo-1586023492125-27b2c045efd7?w=500&h=500&fit=crop",
				},
			},
		},
		{
			Name: "books",
			Products: []Product{
				{
					ID:          "ai_book",
					Name:        "AI for Everyone",
					Price:       25,
					Rating:      4.3,
					Category:    "technology",
					Description: "Non-technical guide to understanding artificial intelligence",
					Image:       "https://images.unsplash.com/photo-1485988512492-1d364fe2c5ac?w=500&h=500&fit=crop",
				},
				{
					ID:          "cookbook",
					Name:        "Mediterranean Cookbook",
					Price:       30,
					Rating:      4.6,
					Category:    "cooking",
					Description: "Authentic Mediterranean recipes for healthy living",
					Image:       "https://images.unsplash.com/photo-1481627834876-b7833e8f5570?w=500&h=500&fit=crop",
				},
			},
		},
	})
}
