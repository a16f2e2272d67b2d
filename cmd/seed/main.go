package main

import (
	"errors"
	"flag"
	"log"
	"os"

	"notes-be/internal/model"
	"notes-be/internal/pkg/security"
	"notes-be/pkg/database"

	"github.com/fatih/color"
	"github.com/joho/godotenv"
	"gorm.io/gorm"
)

// Seeds an administrator account. Admin status cannot be granted through
// the HTTP API, so the first admin has to come from here.
func main() {
	email := flag.String("email", "admin@example.com", "admin email")
	password := flag.String("password", "", "admin password (required)")
	name := flag.String("name", "Admin", "admin display name")
	flag.Parse()

	if *password == "" {
		color.Red("Error: -password is required")
		os.Exit(1)
	}

	if err := godotenv.Load(); err != nil {
		log.Println("Info: No .env file found, using system env")
	}

	dsn := os.Getenv("DB_CONNECTION_STRING")
	if dsn == "" {
		color.Red("Error: DB_CONNECTION_STRING is not set")
		os.Exit(1)
	}

	db, err := database.NewGormDBFromDSN(dsn)
	if err != nil {
		color.Red("Error: Failed to connect to database: %v", err)
		os.Exit(1)
	}

	var existing model.User
	err = db.Where("email = ?", *email).First(&existing).Error
	switch {
	case err == nil:
		if existing.IsAdmin {
			color.Yellow("User %s already exists and is an admin, nothing to do", *email)
			return
		}
		if err := db.Model(&existing).Update("is_admin", true).Error; err != nil {
			color.Red("Error: Failed to promote user: %v", err)
			os.Exit(1)
		}
		color.Green("Promoted existing user %s to admin", *email)
	case errors.Is(err, gorm.ErrRecordNotFound):
		hash, err := security.HashPassword(*password)
		if err != nil {
			color.Red("Error: Failed to hash password: %v", err)
			os.Exit(1)
		}
		admin := model.User{
			Name:         *name,
			Email:        *email,
			PasswordHash: hash,
			IsAdmin:      true,
		}
		if err := db.Create(&admin).Error; err != nil {
			color.Red("Error: Failed to create admin: %v", err)
			os.Exit(1)
		}
		color.Green("Created admin user %s (id=%d)", *email, admin.Id)
	default:
		color.Red("Error: Failed to look up user: %v", err)
		os.Exit(1)
	}
}
