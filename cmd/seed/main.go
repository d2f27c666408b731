package main

import (
	"database/sql"
	"fmt"
	"log"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/joho/godotenv"

	"github.com/matrikabazaar/marketplace-api/config"
	"github.com/matrikabazaar/marketplace-api/pkg/helpers"
)

func main() {
	_ = godotenv.Load()
	cfg := config.Load()

	db, err := sql.Open("pgx", cfg.PostgresDSN())
	if err != nil {
		log.Fatalf("failed to open db: %v", err)
	}
	defer func() { _ = db.Close() }()

	sellerID := seedUser(db, "Demo Seller", "seller@matrikabazaar.dev", "password123", "seller")
	buyerID := seedUser(db, "Demo Buyer", "buyer@matrikabazaar.dev", "password123", "user")
	fmt.Printf("seeded seller=%s buyer=%s (password: password123)\n", sellerID, buyerID)

	products := []struct {
		title    string
		price    float64
		desc     string
		stock    int
		category string
	}{
		{"Handwoven Scarf", 24.50, "Soft cotton scarf, naturally dyed", 12, "clothing"},
		{"Brass Oil Lamp", 39.00, "Traditional hand-cast brass diya", 5, "home"},
		{"Spice Sampler Box", 18.75, "Eight small-batch spice blends", 30, "food"},
	}
	for _, p := range products {
		var id string
		err := db.QueryRow(`
			INSERT INTO products (title, price, description, image_url, seller_id, stock, category)
			VALUES ($1, $2, $3, '', $4, $5, $6)
			RETURNING id
		`, p.title, p.price, p.desc, sellerID, p.stock, p.category).Scan(&id)
		if err != nil {
			log.Fatalf("failed to seed product %q: %v", p.title, err)
		}
		fmt.Printf("seeded product: id=%s title=%q\n", id, p.title)
	}
}

func seedUser(db *sql.DB, name, email, password, role string) string {
	hash, err := helpers.HashPassword(password)
	if err != nil {
		log.Fatalf("failed to hash password: %v", err)
	}
	var id string
	err = db.QueryRow(`
		INSERT INTO users (name, email, password_hash, role)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (email) DO UPDATE SET name = EXCLUDED.name
		RETURNING id
	`, name, email, hash, role).Scan(&id)
	if err != nil {
		log.Fatalf("failed to seed user %s: %v", email, err)
	}
	return id
}
