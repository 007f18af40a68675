package main

import (
	"fmt"
	"log"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/johnquangdev/meeting-manager/internal/domain/entities"
	"github.com/johnquangdev/meeting-manager/internal/infrastructure/database"
	"github.com/johnquangdev/meeting-manager/pkg/config"
	pkgjwt "github.com/johnquangdev/meeting-manager/pkg/jwt"
)

const testPassword = "password123"

func main() {
	log.Println("🚀 Starting test data creation...")

	// Load configuration from .env
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Initialize database
	log.Println("📦 Connecting to database...")
	db, err := database.NewPostgresDB(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer database.CloseDB(db)

	// Initialize JWT manager
	jwtManager := pkgjwt.NewManager(cfg.JWT.Secret, cfg.JWT.Expiry)

	testUsers := []struct {
		Email string
		Name  string
	}{
		{Email: "alice@test.local", Name: "Alice"},
		{Email: "bob@test.local", Name: "Bob"},
	}

	log.Println("🗑️  Cleaning up existing test data...")
	db.Exec("DELETE FROM tasks WHERE user_id IN (SELECT id FROM users WHERE email LIKE ?)", "%@test.local")
	db.Exec("DELETE FROM meetings WHERE user_id IN (SELECT id FROM users WHERE email LIKE ?)", "%@test.local")
	db.Where("email LIKE ?", "%@test.local").Delete(&entities.User{})

	hash, err := bcrypt.GenerateFromPassword([]byte(testPassword), bcrypt.DefaultCost)
	if err != nil {
		log.Fatalf("Failed to hash test password: %v", err)
	}

	log.Println("🔑 Creating test users, meetings and tokens...")
	for _, tu := range testUsers {
		user := entities.NewUser(tu.Email, tu.Name, string(hash))
		if err := db.Create(user).Error; err != nil {
			log.Fatalf("Failed to create user %s: %v", tu.Email, err)
		}

		transcript := "We discussed the upcoming release, agreed on the scope and assigned owners for the remaining work items."
		meetings := []*entities.Meeting{
			{
				UserID:       user.ID,
				Title:        "Sprint planning",
				Date:         time.Now().AddDate(0, 0, 2),
				Duration:     60,
				Participants: []string{tu.Name, "Charlie", "Diana"},
			},
			{
				UserID:       user.ID,
				Title:        "Release retro",
				Date:         time.Now().AddDate(0, 0, -7),
				Duration:     45,
				Participants: []string{tu.Name, "Charlie"},
				Transcript:   &transcript,
			},
		}
		for _, m := range meetings {
			if err := db.Create(m).Error; err != nil {
				log.Fatalf("Failed to create meeting for %s: %v", tu.Email, err)
			}
		}

		task := entities.NewTaskFromActionItem(meetings[1].ID, user.ID, "Write release notes", time.Now().AddDate(0, 0, -10))
		if err := db.Create(task).Error; err != nil {
			log.Fatalf("Failed to create task for %s: %v", tu.Email, err)
		}

		token, err := jwtManager.GenerateToken(user.ID, user.Email)
		if err != nil {
			log.Fatalf("Failed to generate token for %s: %v", tu.Email, err)
		}

		fmt.Printf("👤 %s <%s>\n", tu.Name, tu.Email)
		fmt.Printf("   password: %s\n", testPassword)
		fmt.Printf("   token:    %s\n\n", token)
	}

	log.Println("✅ Test data created")
}
