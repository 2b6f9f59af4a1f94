package main

import (
	"context"
	"encoding/json"
	"log"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/NCHAKRADHAR-SINGH1/learn-hub/internal/config"
	"github.com/NCHAKRADHAR-SINGH1/learn-hub/internal/db"
	"github.com/NCHAKRADHAR-SINGH1/learn-hub/internal/model"
	"github.com/NCHAKRADHAR-SINGH1/learn-hub/internal/repository"
)

// Seeds a demo educator, learner and course so the API can be exercised
// against an empty database.
func main() {
	log.Println("Starting seed script...")

	cfg := config.Load()

	gormDB, err := db.NewMySQL(cfg.MySQLDSN)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	log.Println("Connected to database")

	if err := gormDB.AutoMigrate(
		&model.User{},
		&model.Course{},
		&model.Section{},
		&model.Enrollment{},
		&model.ProgressEntry{},
		&model.Payment{},
	); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}
	log.Println("Database migrations completed")

	ctx := context.Background()
	userRepo := repository.NewUserRepository(gormDB)
	courseRepo := repository.NewCourseRepository(gormDB)

	educator, err := seedUser(ctx, userRepo, "ada", "ada@learnhub.dev", "educator123", model.RoleEducator)
	if err != nil {
		log.Fatalf("Failed to seed educator: %v", err)
	}
	if _, err := seedUser(ctx, userRepo, "linus", "linus@learnhub.dev", "learner123", model.RoleLearner); err != nil {
		log.Fatalf("Failed to seed learner: %v", err)
	}

	categories, _ := json.Marshal([]string{"programming", "go"})
	course := &model.Course{
		OwnerID:     educator.ID,
		Educator:    educator.Name,
		Title:       "Introduction to Go",
		Categories:  categories,
		Price:       model.PriceFree,
		Description: "A three-part walk through the basics of Go.",
		Sections: []model.Section{
			{Position: 0, Title: "Getting started", Description: "Toolchain and first program", ContentFilename: "intro.pdf", ContentPath: "/uploads/intro.pdf"},
			{Position: 1, Title: "Types and functions", Description: "The type system in practice", ContentFilename: "types.pdf", ContentPath: "/uploads/types.pdf"},
			{Position: 2, Title: "Concurrency", Description: "Goroutines and channels", ContentFilename: "concurrency.pdf", ContentPath: "/uploads/concurrency.pdf"},
		},
	}

	existing, err := courseRepo.ListByOwner(ctx, educator.ID)
	if err != nil {
		log.Fatalf("Failed to check existing courses: %v", err)
	}
	if len(existing) == 0 {
		if err := courseRepo.Create(ctx, course); err != nil {
			log.Fatalf("Failed to seed course: %v", err)
		}
		log.Printf("Seeded course %q with %d sections", course.Title, len(course.Sections))
	} else {
		log.Printf("Educator already has %d course(s), skipping course seed", len(existing))
	}

	log.Println("Seed completed successfully!")
}

// seedUser creates a user unless the email is already registered.
func seedUser(ctx context.Context, repo repository.UserRepository, name, email, password, role string) (*model.User, error) {
	existing, err := repo.FindByEmail(ctx, email)
	if err == nil {
		log.Printf("User %s already exists, skipping", email)
		return existing, nil
	}
	if err != gorm.ErrRecordNotFound {
		return nil, err
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(password), 10)
	if err != nil {
		return nil, err
	}
	user := &model.User{
		Name:         name,
		Email:        email,
		PasswordHash: string(hashed),
		Role:         role,
	}
	if err := repo.Create(ctx, user); err != nil {
		return nil, err
	}
	log.Printf("Seeded user %s (%s)", email, role)
	return user, nil
}
