package catalog

import (
	"time"

	"springshop/models"
)

// daysAgo returns a timestamp the given number of days before now.
func daysAgo(now time.Time, days int) time.Time {
	return now.AddDate(0, 0, -days)
}

// SeedCategories returns the fixed demo category set.
func SeedCategories() []models.Category {
	return []models.Category{
		{CategoryID: 1, CategoryName: "Electronics", Icon: "💻"},
		{CategoryID: 2, CategoryName: "Fashion", Icon: "👕"},
		{CategoryID: 3, CategoryName: "Home & Garden", Icon: "🏡"},
		{CategoryID: 4, CategoryName: "Books", Icon: "📚"},
	}
}

// SeedProducts returns the fixed demo product set with creation timestamps
// relative to now. Order here is the canonical catalog order.
func SeedProducts(now time.Time) []models.Product {
	return []models.Product{
		// Electronics (Cat 1)
		{ProductID: 1, ProductName: "Smartphone X", Price: 999, Quantity: 50, Sold: 1200, CreateDate: daysAgo(now, 10), Image: "https://picsum.photos/300/300?random=1", Description: "Latest smartphone", CategoryID: 1},
		{ProductID: 2, ProductName: "Laptop Pro", Price: 1499, Quantity: 20, Sold: 500, CreateDate: daysAgo(now, 2), Image: "https://picsum.photos/300/300?random=2", Description: "High performance laptop", CategoryID: 1},
		{ProductID: 3, ProductName: "Wireless Earbuds", Price: 199, Quantity: 100, Sold: 3000, CreateDate: daysAgo(now, 60), Image: "https://picsum.photos/300/300?random=3", Description: "Noise cancelling", CategoryID: 1},

		// Fashion (Cat 2)
		{ProductID: 4, ProductName: "Classic T-Shirt", Price: 29, Quantity: 200, Sold: 5000, CreateDate: daysAgo(now, 5), Image: "https://picsum.photos/300/300?random=4", Description: "100% Cotton", CategoryID: 2},
		{ProductID: 5, ProductName: "Denim Jeans", Price: 59, Quantity: 150, Sold: 800, CreateDate: daysAgo(now, 20), Image: "https://picsum.photos/300/300?random=5", Description: "Slim fit", CategoryID: 2},
		{ProductID: 6, ProductName: "Running Shoes", Price: 89, Quantity: 80, Sold: 1500, CreateDate: daysAgo(now, 1), Image: "https://picsum.photos/300/300?random=6", Description: "For marathon runners", CategoryID: 2},

		// Home (Cat 3)
		{ProductID: 7, ProductName: "Coffee Maker", Price: 49, Quantity: 30, Sold: 200, CreateDate: daysAgo(now, 3), Image: "https://picsum.photos/300/300?random=7", Description: "Brew the best coffee", CategoryID: 3},
		{ProductID: 8, ProductName: "Desk Lamp", Price: 25, Quantity: 60, Sold: 150, CreateDate: daysAgo(now, 100), Image: "https://picsum.photos/300/300?random=8", Description: "LED Lamp", CategoryID: 3},

		// Books (Cat 4)
		{ProductID: 9, ProductName: "Spring Boot in Action", Price: 45, Quantity: 40, Sold: 600, CreateDate: daysAgo(now, 4), Image: "https://picsum.photos/300/300?random=9", Description: "Master Spring Boot", CategoryID: 4},
		{ProductID: 10, ProductName: "React for Beginners", Price: 35, Quantity: 55, Sold: 900, CreateDate: daysAgo(now, 3), Image: "https://picsum.photos/300/300?random=10", Description: "Learn React fast", CategoryID: 4},

		// Extra for sorting logic
		{ProductID: 11, ProductName: "Old Phone", Price: 100, Quantity: 10, Sold: 10, CreateDate: daysAgo(now, 365), Image: "https://picsum.photos/300/300?random=11", Description: "Vintage", CategoryID: 1},
		{ProductID: 12, ProductName: "Trendy Hat", Price: 20, Quantity: 500, Sold: 2000, CreateDate: daysAgo(now, 0), Image: "https://picsum.photos/300/300?random=12", Description: "Create 0 days ago", CategoryID: 2},
	}
}
