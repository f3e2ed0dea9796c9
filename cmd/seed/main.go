// Command seed loads a local MongoDB with contact-directory fixtures so
// the interest-form pipeline can route submissions in development.
package main

import (
	"context"
	"flag"
	"log"
	"os"
	"time"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type seedOptions struct {
	mongoURI           string
	database           string
	districtCollection string
	countryCollection  string
	drop               bool
}

type districtContactsDocument struct {
	ID             string    `bson:"_id"`
	Country        string    `bson:"country"`
	District       string    `bson:"district"`
	EmailAddresses []string  `bson:"emailAddresses"`
	ZipCodes       []string  `bson:"zipCodes"`
	CreatedAt      time.Time `bson:"createdAt"`
}

type countryContactsDocument struct {
	ID             string    `bson:"_id"`
	Country        string    `bson:"country"`
	EmailAddresses []string  `bson:"emailAddresses"`
	IsCertified    bool      `bson:"isCertified"`
	CreatedAt      time.Time `bson:"createdAt"`
}

func main() {
	opts := parseFlags()

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(opts.mongoURI))
	if err != nil {
		log.Fatalf("failed to connect to MongoDB: %v", err)
	}
	defer func() {
		if err := client.Disconnect(context.Background()); err != nil {
			log.Printf("error disconnecting: %v", err)
		}
	}()

	db := client.Database(opts.database)
	districts := db.Collection(opts.districtCollection)
	countries := db.Collection(opts.countryCollection)

	if opts.drop {
		if err := districts.Drop(ctx); err != nil {
			log.Fatalf("failed to drop %s: %v", opts.districtCollection, err)
		}
		if err := countries.Drop(ctx); err != nil {
			log.Fatalf("failed to drop %s: %v", opts.countryCollection, err)
		}
	}

	now := time.Now().UTC()
	districtDocs := []interface{}{
		districtContactsDocument{
			ID:             uuid.NewString(),
			Country:        "usa",
			District:       "5370",
			EmailAddresses: []string{"district5370@example.org"},
			ZipCodes:       []string{"12345", "12346"},
			CreatedAt:      now,
		},
		districtContactsDocument{
			ID:             uuid.NewString(),
			Country:        "canada",
			District:       "7070",
			EmailAddresses: []string{"district7070@example.org"},
			ZipCodes:       []string{"M5V", "M4C"},
			CreatedAt:      now,
		},
		// Overlapping zip with 7070 to exercise multi-district routing.
		districtContactsDocument{
			ID:             uuid.NewString(),
			Country:        "canada",
			District:       "7080",
			EmailAddresses: []string{"district7080@example.org"},
			ZipCodes:       []string{"M5V"},
			CreatedAt:      now,
		},
	}
	countryDocs := []interface{}{
		countryContactsDocument{
			ID:             uuid.NewString(),
			Country:        "germany",
			EmailAddresses: []string{"germany@example.org"},
			IsCertified:    true,
			CreatedAt:      now,
		},
		countryContactsDocument{
			ID:             uuid.NewString(),
			Country:        "france",
			EmailAddresses: []string{"france@example.org"},
			IsCertified:    false,
			CreatedAt:      now,
		},
	}

	if _, err := districts.InsertMany(ctx, districtDocs); err != nil {
		log.Fatalf("failed to seed district contacts: %v", err)
	}
	if _, err := countries.InsertMany(ctx, countryDocs); err != nil {
		log.Fatalf("failed to seed country contacts: %v", err)
	}

	districtCount, err := districts.CountDocuments(ctx, bson.D{})
	if err != nil {
		log.Fatalf("failed to count district contacts: %v", err)
	}
	countryCount, err := countries.CountDocuments(ctx, bson.D{})
	if err != nil {
		log.Fatalf("failed to count country contacts: %v", err)
	}
	log.Printf("seed complete: %d district contact versions, %d country contact versions", districtCount, countryCount)
}

func parseFlags() seedOptions {
	opts := seedOptions{}
	flag.StringVar(&opts.mongoURI, "mongo-uri", envOrDefault("MONGO_URI", "mongodb://localhost:27017"), "MongoDB connection string")
	flag.StringVar(&opts.database, "db", envOrDefault("MONGO_DB", "email-forwarding"), "database name")
	flag.StringVar(&opts.districtCollection, "district-collection", envOrDefault("DISTRICT_CONTACT_COLLECTION", "districtContacts"), "district contact collection")
	flag.StringVar(&opts.countryCollection, "country-collection", envOrDefault("COUNTRY_CONTACT_COLLECTION", "countryContacts"), "country contact collection")
	flag.BoolVar(&opts.drop, "drop", false, "drop contact collections before seeding")
	flag.Parse()
	return opts
}

func envOrDefault(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
