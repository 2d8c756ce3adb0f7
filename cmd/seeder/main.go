package main

import (
	"fmt"
	"log"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/Oluwaferanmi-Dev/yrdly-app/internal/config"
	"github.com/Oluwaferanmi-Dev/yrdly-app/internal/model"
)

var lgas = []string{"Ikeja", "Surulere", "Yaba", "Lekki", "Ikorodu"}

func main() {
	// Load config
	cfg := config.Load()

	// Force DB logging off to avoid noise
	db, err := gorm.Open(postgres.Open(cfg.DB.DSN()), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		log.Fatalf("❌ Failed to connect to database: %v", err)
	}
	log.Println("✅ Connected to Database")

	// Common password for all users
	password := "password123"
	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		log.Fatalf("❌ Failed to hash password: %v", err)
	}

	// Create 10 users spread over the LGAs
	log.Println("🌱 Seeding 10 users...")

	var ids []uuid.UUID
	for i := 1; i <= 10; i++ {
		username := fmt.Sprintf("user%d", i)
		email := fmt.Sprintf("user%d@yrdly.local", i)

		// Check if exists
		var existing model.User
		if err := db.Where("email = ?", email).First(&existing).Error; err == nil {
			ids = append(ids, existing.ID)
			continue
		}

		user := model.User{
			ID:       uuid.New(),
			Name:     fmt.Sprintf("User Number %d", i),
			Email:    email,
			Password: string(hashedPassword),
			LGA:      lgas[i%len(lgas)],
			Avatar:   fmt.Sprintf("https://api.dicebear.com/7.x/avataaars/svg?seed=%s", username),
			NotificationSettings: model.NotificationSettings{
				model.PrefFriends:  true,
				model.PrefMessages: true,
				model.PrefPosts:    true,
				model.PrefComments: true,
				model.PrefEvents:   true,
			},
		}

		if err := db.Create(&user).Error; err != nil {
			log.Printf("❌ Failed to create user %s: %v", username, err)
		} else {
			log.Printf("✅ Created user: %s | Email: %s | Pass: %s | LGA: %s", username, email, password, user.LGA)
			ids = append(ids, user.ID)
		}
	}

	// Make the first few users friends with each other
	seedFriendships(db, ids)

	log.Println("🎉 Seeding completed!")
}

func seedFriendships(db *gorm.DB, ids []uuid.UUID) {
	if len(ids) < 3 {
		return
	}

	pairs := [][2]uuid.UUID{
		{ids[0], ids[1]},
		{ids[0], ids[2]},
		{ids[1], ids[2]},
	}

	for _, pair := range pairs {
		for _, f := range [][2]uuid.UUID{{pair[0], pair[1]}, {pair[1], pair[0]}} {
			friendship := model.Friendship{UserID: f[0], FriendID: f[1]}
			if err := db.Where(&friendship).FirstOrCreate(&friendship).Error; err != nil {
				log.Printf("❌ Failed to create friendship: %v", err)
			}
		}
	}
	log.Printf("🤝 Seeded %d friendships", len(pairs))
}
