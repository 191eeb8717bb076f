package db

import (
	"context"
	"os"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

var (
	Client *mongo.Client

	DishesCollection       *mongo.Collection
	CategoriesCollection   *mongo.Collection
	TestimonialsCollection *mongo.Collection
	GalleryCollection      *mongo.Collection
	SiteCollection         *mongo.Collection
)

// SettingsDocID is the identifier of the singleton site settings document.
const SettingsDocID = "settings"

// Init connects to MongoDB and binds the collection handles. The URI comes
// from MONGODB_URI, defaulting to a local instance.
func Init(ctx context.Context) error {
	uri := os.Getenv("MONGODB_URI")
	if uri == "" {
		uri = "mongodb://localhost:27017"
	}

	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		return err
	}
	Client = client

	database := os.Getenv("MONGODB_DATABASE")
	if database == "" {
		database = "restaurantdb"
	}

	DishesCollection = client.Database(database).Collection("dishes")
	CategoriesCollection = client.Database(database).Collection("categories")
	TestimonialsCollection = client.Database(database).Collection("testimonials")
	GalleryCollection = client.Database(database).Collection("gallery")
	SiteCollection = client.Database(database).Collection("site")
	return nil
}
