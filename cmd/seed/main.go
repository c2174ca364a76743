package main

import (
	"database/sql"
	"fmt"
	"log"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/joho/godotenv"

	"github.com/martify/martify/config"
	"github.com/martify/martify/pkg/helpers"
)

func main() {
	_ = godotenv.Load()
	cfg := config.Load()

	db, err := sql.Open("pgx", cfg.PostgresDSN())
	if err != nil {
		log.Fatalf("failed to open db: %v", err)
	}
	defer func() { _ = db.Close() }()

	email := "admin@martify.local"
	password := "changeme-admin"
	hash, err := helpers.HashPassword(password)
	if err != nil {
		log.Fatalf("failed to hash password: %v", err)
	}

	var id int64
	err = db.QueryRow(`
		INSERT INTO users (name, email, password_hash, role)
		VALUES ($1, $2, $3, 'admin')
		ON CONFLICT (email) DO UPDATE SET role = 'admin'
		RETURNING id
	`, "Administrator", email, hash).Scan(&id)
	if err != nil {
		log.Fatalf("failed to seed admin: %v", err)
	}
	fmt.Printf("seeded admin: id=%d email=%s password=%s\n", id, email, password)

	// Base listing types so the catalog is not empty on first boot
	types := []struct {
		name   string
		schema string
	}{
		{"apartment", `{"fields":[{"name":"rooms","type":"number"},{"name":"area_m2","type":"number"},{"name":"furnished","type":"boolean"}]}`},
		{"vehicle", `{"fields":[{"name":"make","type":"string"},{"name":"model","type":"string"},{"name":"year","type":"number"}]}`},
		{"service", `{"fields":[{"name":"category","type":"string"},{"name":"hourly_rate","type":"number"}]}`},
	}
	for _, t := range types {
		var tid int64
		if err := db.QueryRow(`
			INSERT INTO listing_types (name, schema)
			VALUES ($1, $2)
			ON CONFLICT (name) DO UPDATE SET schema = EXCLUDED.schema
			RETURNING id
		`, t.name, t.schema).Scan(&tid); err != nil {
			log.Fatalf("failed to seed listing type %s: %v", t.name, err)
		}
		fmt.Printf("listing type ensured: %s id=%d\n", t.name, tid)
	}
}
