// Seeds a demo hackathon for local development.
//
// Creates one open hackathon with five teams, three criteria and two judge
// accounts so the evaluation endpoints can be exercised without the admin
// CRUD module running.
//
// Usage: go run scripts/seed_demo.go
package main

import (
	"log"
	"os"
	"time"

	"hackathon_judging_backend/internal/config"
	"hackathon_judging_backend/internal/model"
	"hackathon_judging_backend/pkg/database"
	"hackathon_judging_backend/pkg/logger"

	"golang.org/x/crypto/bcrypt"
	"gopkg.in/yaml.v3"
	"gorm.io/gorm"
)

func main() {
	data, err := os.ReadFile("configs/config.yaml")
	if err != nil {
		log.Fatalf("failed to read config file: %v", err)
	}

	var cfg config.Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		log.Fatalf("failed to parse config file: %v", err)
	}

	logger.InitLogger(&cfg)

	db, err := database.InitDB(&cfg.Database)
	if err != nil {
		log.Fatalf("database connection failed: %v", err)
	}

	log.Println("seeding demo hackathon...")
	if err := seed(db); err != nil {
		log.Fatalf("seed failed: %v", err)
	}
	log.Println("done")
}

func seed(db *gorm.DB) error {
	return db.Transaction(func(tx *gorm.DB) error {
		hackathon := model.Hackathon{
			Name:           "Demo Hackathon",
			Slug:           "demo-hackathon",
			StartDate:      time.Now().Add(-24 * time.Hour),
			EndDate:        time.Now().Add(24 * time.Hour),
			EvaluationOpen: true,
		}
		if err := tx.Where(model.Hackathon{Slug: hackathon.Slug}).FirstOrCreate(&hackathon).Error; err != nil {
			return err
		}

		teamNames := []string{"Quantum Leap", "Null Pointers", "Stack Smashers", "Bit Benders", "Race Condition"}
		for i, name := range teamNames {
			team := model.Team{HackathonID: hackathon.ID, Name: name, TeamNumber: i + 1}
			if err := tx.Where(model.Team{HackathonID: hackathon.ID, TeamNumber: team.TeamNumber}).FirstOrCreate(&team).Error; err != nil {
				return err
			}
		}

		criteria := []model.Criterion{
			{HackathonID: hackathon.ID, Name: "Innovation", MaxScore: 10, Category: "product", IsActive: true},
			{HackathonID: hackathon.ID, Name: "Execution", MaxScore: 10, Category: "engineering", IsActive: true},
			{HackathonID: hackathon.ID, Name: "Presentation", MaxScore: 5, Category: "pitch", IsActive: true},
		}
		for i := range criteria {
			if err := tx.Where(model.Criterion{HackathonID: hackathon.ID, Name: criteria[i].Name}).FirstOrCreate(&criteria[i]).Error; err != nil {
				return err
			}
		}

		hash, err := bcrypt.GenerateFromPassword([]byte("demo-password"), bcrypt.DefaultCost)
		if err != nil {
			return err
		}

		judgeEmails := []string{"judge1@example.com", "judge2@example.com"}
		for _, email := range judgeEmails {
			user := model.User{
				Name:     email[:len(email)-len("@example.com")],
				Email:    email,
				Password: string(hash),
				Role:     model.JudgeRole,
			}
			if err := tx.Where(model.User{Email: email}).FirstOrCreate(&user).Error; err != nil {
				return err
			}
			judge := model.Judge{HackathonID: hackathon.ID, UserID: user.ID, IsActive: true}
			if err := tx.Where(model.Judge{HackathonID: hackathon.ID, UserID: user.ID}).FirstOrCreate(&judge).Error; err != nil {
				return err
			}
		}
		return nil
	})
}
