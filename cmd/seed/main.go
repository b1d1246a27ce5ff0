package main

import (
	"log"
	"os"

	"github.com/joho/godotenv"

	"kikabraids/internal/database"
)

// Reseeds the service catalog. Existing catalog rows are dropped; bookings
// and testimonials are left untouched.
func main() {
	_ = godotenv.Load()

	dsn := os.Getenv("DATABASE_URL")
	if dsn == "" {
		dsn = "kika_braids.db"
	}

	db, err := database.Connect(dsn)
	if err != nil {
		log.Fatal("DB connection failed:", err)
	}

	if err := database.Migrate(db); err != nil {
		log.Fatal("migration failed:", err)
	}

	log.Println("Cleaning old catalog...")
	if err := db.Exec("DELETE FROM services").Error; err != nil {
		log.Fatal(err)
	}

	if err := database.SeedServices(db); err != nil {
		log.Fatal("seeding failed:", err)
	}

	log.Println("Done.")
}
