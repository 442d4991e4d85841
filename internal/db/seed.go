package db

import (
	"context"
	"fmt"
	"time"

	"github.com/jayamiko/Visual-Book-App-Server/internal/password"

	"github.com/jackc/pgx/v5/pgxpool"
)

// EnsureSeedAdmin creates the bootstrap admin account when it does not exist
// yet. Dev environments only; prod starts empty.
func EnsureSeedAdmin(ctx context.Context, pool *pgxpool.Pool, timeout time.Duration, adminPassword string) error {
	const adminEmail = "admin@visualbook.local"

	ctxCheck, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	var exists bool
	row := pool.QueryRow(ctxCheck, "SELECT EXISTS(SELECT 1 FROM users WHERE email = $1)", adminEmail)
	if err := row.Scan(&exists); err != nil {
		return fmt.Errorf("check seed admin: %w", err)
	}
	if exists {
		return nil
	}

	hash, err := password.NewHasher(password.DefaultCost).Hash(adminPassword)
	if err != nil {
		return fmt.Errorf("hash seed password: %w", err)
	}

	ctxInsert, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	_, err = pool.Exec(ctxInsert, `
		INSERT INTO users (full_name, email, password_hash, status, gender, phone, city, avatar)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`, "Administrator", adminEmail, hash, "admin", "-", "000000000000", "-", "")
	if err != nil {
		return fmt.Errorf("insert seed admin: %w", err)
	}

	return nil
}
