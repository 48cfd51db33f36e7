// Seeds the database with the starter catalog, default settings and an
// admin account. Existing products and settings are wiped first.
package main

import (
	"context"
	"log"
	"time"

	"github.com/Adi-1655/snackshub/configs"
	"github.com/Adi-1655/snackshub/models"

	"go.mongodb.org/mongo-driver/bson"
	"golang.org/x/crypto/bcrypt"
)

var products = []models.Product{
	{Name: "Lays Classic Salted", Category: "Chips", Price: 20, Stock: 50, Brand: "Lays", Weight: "52g", Description: "Indias favourite potato chips", Image: "/uploads/lays-classic.jpg", IsAvailable: true, MaxQuantityPerOrder: 5},
	{Name: "Kurkure Masala Munch", Category: "Chips", Price: 20, Stock: 45, Brand: "Kurkure", Weight: "82g", Description: "Crunchy and spicy snack", Image: "/uploads/kurkure.jpg", IsAvailable: true, MaxQuantityPerOrder: 5},
	{Name: "Bingo Mad Angles", Category: "Chips", Price: 10, Stock: 3, Brand: "Bingo", Weight: "36g", Description: "Triangular shaped spicy chips", Image: "/uploads/bingo.jpg", IsAvailable: true, MaxQuantityPerOrder: 5},
	{Name: "Parle-G Gold", Category: "Biscuits", Price: 10, Stock: 100, Brand: "Parle", Weight: "100g", Description: "Indias original glucose biscuit", Image: "/uploads/parle-g.jpg", IsAvailable: true, MaxQuantityPerOrder: 10},
	{Name: "Oreo Chocolate", Category: "Biscuits", Price: 30, Stock: 40, Brand: "Cadbury", Weight: "120g", Description: "Chocolate sandwich cookies", Image: "/uploads/oreo.jpg", IsAvailable: true, MaxQuantityPerOrder: 5},
	{Name: "Dairy Milk Silk", Category: "Chocolates", Price: 80, Stock: 25, Brand: "Cadbury", Weight: "60g", Description: "Smooth milk chocolate", Image: "/uploads/dairy-milk.jpg", IsAvailable: true, MaxQuantityPerOrder: 3},
	{Name: "KitKat", Category: "Chocolates", Price: 25, Stock: 60, Brand: "Nestle", Weight: "38g", Description: "Crispy wafer chocolate", Image: "/uploads/kitkat.jpg", IsAvailable: true, MaxQuantityPerOrder: 5},
	{Name: "Coca Cola", Category: "Cold Drinks", Price: 40, Stock: 30, Brand: "Coca Cola", Weight: "750ml", Description: "Chilled soft drink", Image: "/uploads/coke.jpg", IsAvailable: true, MaxQuantityPerOrder: 4},
	{Name: "Sprite", Category: "Cold Drinks", Price: 40, Stock: 30, Brand: "Coca Cola", Weight: "750ml", Description: "Lemon-lime soft drink", Image: "/uploads/sprite.jpg", IsAvailable: true, MaxQuantityPerOrder: 4},
	{Name: "Maggi 2-Minute Noodles", Category: "Instant Noodles", Price: 15, Stock: 80, Brand: "Nestle", Weight: "70g", Description: "Hostel staple instant noodles", Image: "/uploads/maggi.jpg", IsAvailable: true, MaxQuantityPerOrder: 10},
	{Name: "Yippee Magic Masala", Category: "Instant Noodles", Price: 15, Stock: 50, Brand: "Sunfeast", Weight: "60g", Description: "Long noodles with masala", Image: "/uploads/yippee.jpg", IsAvailable: true, MaxQuantityPerOrder: 10},
}

func main() {
	ctx, cancel := context.WithTimeout(context.Background(), 60*time.Second)
	defer cancel()

	configs.ConnectDB()

	now := time.Now()

	productCollection := configs.GetCollection("products")
	if _, err := productCollection.DeleteMany(ctx, bson.M{}); err != nil {
		log.Fatalf("failed to clear products: %v", err)
	}
	docs := make([]interface{}, 0, len(products))
	for _, p := range products {
		p.CreatedAt = now
		p.UpdatedAt = now
		docs = append(docs, p)
	}
	if _, err := productCollection.InsertMany(ctx, docs); err != nil {
		log.Fatalf("failed to insert products: %v", err)
	}
	log.Printf("seeded %d products", len(products))

	settingsCollection := configs.GetCollection("settings")
	if _, err := settingsCollection.DeleteMany(ctx, bson.M{}); err != nil {
		log.Fatalf("failed to clear settings: %v", err)
	}
	if _, err := settingsCollection.InsertOne(ctx, models.DefaultSettings()); err != nil {
		log.Fatalf("failed to insert settings: %v", err)
	}
	log.Println("seeded default settings")

	userCollection := configs.GetCollection("users")
	adminPhone := "9999999999"
	count, err := userCollection.CountDocuments(ctx, bson.M{"phone": adminPhone})
	if err != nil {
		log.Fatalf("failed to check admin user: %v", err)
	}
	if count == 0 {
		hashed, err := bcrypt.GenerateFromPassword([]byte("admin123"), bcrypt.DefaultCost)
		if err != nil {
			log.Fatalf("failed to hash admin password: %v", err)
		}
		admin := models.User{
			Name:       "Admin",
			Phone:      adminPhone,
			HostelId:   "ADMIN",
			HostelName: "Admin Block",
			RoomNumber: "0",
			Password:   string(hashed),
			Role:       models.RoleAdmin,
			IsActive:   true,
			CreatedAt:  now,
			UpdatedAt:  now,
		}
		if _, err := userCollection.InsertOne(ctx, admin); err != nil {
			log.Fatalf("failed to insert admin user: %v", err)
		}
		log.Println("seeded admin user (phone 9999999999, password admin123)")
	}

	log.Println("seeding complete")
}
