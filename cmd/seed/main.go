package main

import (
	"context"
	"log"
	"os"
	"time"

	"educonnect-be/internal/entity"
	"educonnect-be/internal/repository/specification"
	"educonnect-be/internal/repository/unitofwork"
	"educonnect-be/pkg/database"

	"github.com/fatih/color"
	"github.com/google/uuid"
	"github.com/joho/godotenv"
	"golang.org/x/crypto/bcrypt"
)

// Seeds a handful of demo accounts, posts and a chat session so a fresh
// environment has something to show. Safe to run repeatedly: existing
// emails are skipped.
func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("Info: No .env file found, using system env")
	}

	dsn := os.Getenv("DB_CONNECTION_STRING")
	if dsn == "" {
		log.Fatal("Error: DB_CONNECTION_STRING is not set")
	}

	db, err := database.NewGormDBFromDSN(dsn)
	if err != nil {
		log.Fatal("Error: Failed to connect to database:", err)
	}

	ctx := context.Background()
	uow := unitofwork.NewRepositoryFactory(db).NewUnitOfWork(ctx)

	color.Cyan("Seeding EduConnect demo data\n")

	users := []struct {
		name     string
		email    string
		password string
	}{
		{"Ayesha Khan", "ayesha@student.smiu.edu.pk", "password123"},
		{"Bilal Ahmed", "bilal@student.smiu.edu.pk", "password123"},
		{"Fatima Raza", "fatima@student.smiu.edu.pk", "password123"},
	}

	seeded := make([]*entity.User, 0, len(users))
	for _, u := range users {
		existing, err := uow.UserRepository().FindOne(ctx, specification.ByEmail{Email: u.email})
		if err != nil {
			color.Red("Failed to check %s: %v", u.email, err)
			continue
		}
		if existing != nil {
			color.Yellow("Skipping %s (already exists)", u.email)
			seeded = append(seeded, existing)
			continue
		}

		hash, err := bcrypt.GenerateFromPassword([]byte(u.password), bcrypt.DefaultCost)
		if err != nil {
			color.Red("Failed to hash password for %s: %v", u.email, err)
			continue
		}
		hashStr := string(hash)

		user := &entity.User{
			Id:           uuid.New(),
			Email:        u.email,
			FullName:     u.name,
			PasswordHash: &hashStr,
			CreatedAt:    time.Now(),
			UpdatedAt:    time.Now(),
		}
		if err := uow.UserRepository().Create(ctx, user); err != nil {
			color.Red("Failed to create %s: %v", u.email, err)
			continue
		}
		color.Green("Created user %s", u.email)
		seeded = append(seeded, user)
	}

	if len(seeded) == 0 {
		color.Red("No users available, aborting")
		os.Exit(1)
	}

	postCount, err := uow.PostRepository().Count(ctx)
	if err != nil {
		color.Red("Failed to count posts: %v", err)
		os.Exit(1)
	}
	if postCount > 0 {
		color.Yellow("Posts already present, skipping post seed")
	} else {
		description1 := "Welcome to the EduConnect campus feed! Introduce yourself below."
		link1 := "https://www.smiu.edu.pk"
		description2 := "Study group for the midterm exams forming this week. Comment if interested."

		posts := []*entity.Post{
			{
				Id:          uuid.New(),
				UserId:      seeded[0].Id,
				Description: &description1,
				Link:        &link1,
				CreatedAt:   time.Now(),
				UpdatedAt:   time.Now(),
			},
			{
				Id:          uuid.New(),
				UserId:      seeded[len(seeded)-1].Id,
				Description: &description2,
				CreatedAt:   time.Now(),
				UpdatedAt:   time.Now(),
			},
		}
		for _, post := range posts {
			if err := uow.PostRepository().Create(ctx, post); err != nil {
				color.Red("Failed to create post: %v", err)
				continue
			}
			color.Green("Created post %s", post.Id)
		}

		if len(seeded) > 1 {
			if _, err := uow.LikeRepository().Insert(ctx, &entity.Like{
				Id:        uuid.New(),
				UserId:    seeded[1].Id,
				PostId:    posts[0].Id,
				CreatedAt: time.Now(),
			}); err != nil {
				color.Red("Failed to create like: %v", err)
			}

			if err := uow.CommentRepository().Create(ctx, &entity.Comment{
				Id:        uuid.New(),
				UserId:    seeded[1].Id,
				PostId:    posts[0].Id,
				Content:   "Hi everyone, excited to be here!",
				CreatedAt: time.Now(),
			}); err != nil {
				color.Red("Failed to create comment: %v", err)
			}
		}
	}

	chatCount, err := uow.ChatSessionRepository().Count(ctx, specification.UserOwnedBy{UserID: seeded[0].Id})
	if err != nil {
		color.Red("Failed to count chat sessions: %v", err)
		os.Exit(1)
	}
	if chatCount > 0 {
		color.Yellow("Chat sessions already present, skipping chat seed")
	} else {
		now := time.Now()
		session := &entity.ChatSession{
			Id:     uuid.New(),
			UserId: seeded[0].Id,
			Title:  "What are the admission requirements?",
			Messages: []entity.ChatMessage{
				{Role: "user", Content: "What are the admission requirements?", Timestamp: now.Add(-2 * time.Minute)},
				{Role: "assistant", Content: "Admissions open twice a year. You will need your intermediate transcripts and a completed application form from the admissions office.", Timestamp: now.Add(-time.Minute)},
			},
			IsActive:  true,
			CreatedAt: now,
			UpdatedAt: now,
		}
		if err := uow.ChatSessionRepository().Create(ctx, session); err != nil {
			color.Red("Failed to create chat session: %v", err)
		} else {
			color.Green("Created chat session %s", session.Id)
		}
	}

	color.Cyan("\nSeed complete")
}
