// Command seed populates the database with demo users and posts.
package main

import (
	"flag"
	"log"

	"inkwell/internal/config"
	"inkwell/internal/database"
	"inkwell/internal/seed"
)

func main() {
	users := flag.Int("users", 5, "number of users to create")
	postsPerUser := flag.Int("posts", 4, "posts to create per user")
	maxDays := flag.Int("max-days", 90, "spread post timestamps over this many days")
	skipBcrypt := flag.Bool("skip-bcrypt", false, "store plaintext marker passwords (dev fast mode)")
	flag.Parse()

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}
	if cfg.Env == "production" || cfg.Env == "prod" {
		log.Fatal("Refusing to seed a production database")
	}

	db, err := database.Connect(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	factory := seed.NewFactory(db, seed.Options{
		Users:        *users,
		PostsPerUser: *postsPerUser,
		MaxDays:      *maxDays,
		SkipBcrypt:   *skipBcrypt,
	})
	if err := factory.Run(); err != nil {
		log.Fatalf("Seeding failed: %v", err)
	}
	log.Println("Seeding complete")
}
