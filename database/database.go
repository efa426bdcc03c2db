package database

import (
	"fmt"
	"os"

	"buenlibro-backend/models"

	"github.com/rs/zerolog/log"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func Connect() (*gorm.DB, error) {
	dsn := os.Getenv("DATABASE_URL")
	if dsn == "" {
		dsn = "host=localhost user=postgres password=postgres dbname=el_buen_libro_db port=5432 sslmode=disable"
	}

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		return nil, err
	}
	return db, nil
}

// Migrate creates the schema. The unique index on carrito
// (usuario_id, producto_id) is load-bearing: it is the conflict target that
// makes the add-to-cart merge a single atomic statement.
func Migrate(db *gorm.DB) error {
	// gen_random_uuid() needs pgcrypto.
	if err := db.Exec(`CREATE EXTENSION IF NOT EXISTS pgcrypto;`).Error; err != nil {
		return fmt.Errorf("failed to enable pgcrypto extension: %w", err)
	}

	return db.AutoMigrate(
		&models.Usuario{},
		&models.Producto{},
		&models.ItemCarrito{},
		&models.AccessLog{},
	)
}

// SeedDefaultUsers creates the admin and demo customer accounts when they do
// not exist yet. Credentials come from the environment; the defaults are for
// local development only.
func SeedDefaultUsers(db *gorm.DB) error {
	seeds := []struct {
		username string
		email    string
		password string
		role     string
	}{
		{
			username: os.Getenv("ADMIN_USERNAME"),
			email:    "admin@elbuenlibro.com",
			password: os.Getenv("ADMIN_PASSWORD"),
			role:     "admin",
		},
		{
			username: "cliente",
			email:    "cliente@elbuenlibro.com",
			password: os.Getenv("CLIENTE_PASSWORD"),
			role:     "cliente",
		},
	}
	if seeds[0].username == "" {
		seeds[0].username = "admin"
	}
	if seeds[0].password == "" {
		seeds[0].password = "admin123"
	}
	if seeds[1].password == "" {
		seeds[1].password = "cliente123"
	}

	for _, s := range seeds {
		var existing models.Usuario
		if err := db.Where("username = ?", s.username).First(&existing).Error; err == nil {
			continue
		}

		hashed, err := bcrypt.GenerateFromPassword([]byte(s.password), bcrypt.DefaultCost)
		if err != nil {
			return err
		}

		usuario := models.Usuario{
			Username: s.username,
			Email:    s.email,
			Password: string(hashed),
			Role:     s.role,
		}
		if err := db.Create(&usuario).Error; err != nil {
			return err
		}
		log.Info().Str("username", s.username).Str("role", s.role).Msg("usuario por defecto creado")
	}
	return nil
}
