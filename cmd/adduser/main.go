// cmd/adduser/main.go
// Creates or updates a user in the database. An existing email keeps its row
// and gets the new password, role and names.
//
// Usage:
//
//	go run ./cmd/adduser -email admin@gym.example -password testing -role admin -first Gym -last Admin
package main

import (
	"context"
	"database/sql"
	"errors"
	"flag"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/padraicbc/gymapi/config"
	bundb "github.com/padraicbc/gymapi/db"
	"github.com/padraicbc/gymapi/models"
	"github.com/padraicbc/gymapi/repository"
	"github.com/padraicbc/gymapi/services"
)

func main() {
	email := flag.String("email", "", "email used to sign in (required)")
	password := flag.String("password", "", "plain-text password (required)")
	role := flag.String("role", models.RoleAdmin, "admin, staff or member")
	first := flag.String("first", "Admin", "first name")
	last := flag.String("last", "", "last name")
	flag.Parse()

	*email = strings.ToLower(strings.TrimSpace(*email))
	if *email == "" || *password == "" {
		log.Fatal("both -email and -password are required")
	}
	if !models.IsValidRole(*role) {
		log.Fatalf("unknown role %q", *role)
	}

	hash, err := services.HashPassword(*password)
	if err != nil {
		log.Fatal("password: ", err)
	}

	ctx := context.Background()
	cfg := config.Load()
	db, err := bundb.Setup(ctx, cfg)
	if err != nil {
		log.Fatal("database: ", err)
	}
	defer db.Close()

	if err := bundb.CreateTables(ctx, db); err != nil {
		log.Fatal("create tables: ", err)
	}

	users := repository.NewUserRepository(db)
	user, err := users.FindByEmail(ctx, *email)
	switch {
	case err == nil:
		user.Password = hash
		user.Role = *role
		user.FirstName = *first
		user.LastName = *last
		err = users.Update(ctx, user)
	case errors.Is(err, sql.ErrNoRows):
		user = &models.User{
			FirstName: *first,
			LastName:  *last,
			Email:     *email,
			Password:  hash,
			Role:      *role,
			CreatedAt: time.Now().UTC(),
		}
		err = users.Create(ctx, user)
	default:
		log.Fatal("lookup user: ", err)
	}
	if err != nil {
		log.Fatal("save user: ", err)
	}

	fmt.Printf("user %q (%s) saved with id %d\n", *email, *role, user.UserID)
}
