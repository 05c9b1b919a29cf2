package database

import (
	"database/sql"
	"log"
	"os"
	"time"

	_ "github.com/go-sql-driver/mysql"
)

// OpenDB initializes and returns the connection pool used by every
// handler. The DSN comes from the environment, with a local-dev fallback.
func OpenDB() (*sql.DB, error) {
	dsn := os.Getenv("DB_DSN")
	if dsn == "" {
		dsn = "root:duka@tcp(127.0.0.1:3306)/duka?parseTime=true"
	}

	return OpenDBWithDSN(dsn)
}

// OpenDBWithDSN creates and configures a DB connection pool from any DSN.
func OpenDBWithDSN(dsn string) (*sql.DB, error) {
	db, err := sql.Open("mysql", dsn)
	if err != nil {
		return nil, err
	}

	db.SetMaxOpenConns(25)
	db.SetMaxIdleConns(25)
	db.SetConnMaxLifetime(5 * time.Minute)

	// Ping to verify the connection before the server starts serving.
	if err := db.Ping(); err != nil {
		log.Printf("Error connecting to database: %v", err)
		return nil, err
	}

	log.Println("Database connection pool established successfully")
	return db, nil
}

// migrations are applied in order at startup. CREATE TABLE IF NOT EXISTS
// keeps this idempotent; sales and purchases cascade away with their
// product.
var migrations = []string{
	`CREATE TABLE IF NOT EXISTS users (
		id BIGINT AUTO_INCREMENT PRIMARY KEY,
		email VARCHAR(100) NOT NULL,
		fullname VARCHAR(100) NULL,
		password_hash VARCHAR(100) NOT NULL,
		created_at DATETIME NOT NULL,
		UNIQUE KEY uniq_users_email (email)
	)`,
	`CREATE TABLE IF NOT EXISTS products (
		id BIGINT AUTO_INCREMENT PRIMARY KEY,
		name VARCHAR(100) NOT NULL,
		slug VARCHAR(120) NOT NULL,
		buying_price DECIMAL(12,2) NOT NULL,
		selling_price DECIMAL(12,2) NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS sales (
		id BIGINT AUTO_INCREMENT PRIMARY KEY,
		product_id BIGINT NOT NULL,
		quantity INT NOT NULL,
		created_at DATETIME NOT NULL,
		CONSTRAINT fk_sales_product FOREIGN KEY (product_id)
			REFERENCES products (id) ON DELETE CASCADE
	)`,
	`CREATE TABLE IF NOT EXISTS purchases (
		id BIGINT AUTO_INCREMENT PRIMARY KEY,
		product_id BIGINT NOT NULL,
		quantity INT NOT NULL,
		created_at DATETIME NOT NULL,
		CONSTRAINT fk_purchases_product FOREIGN KEY (product_id)
			REFERENCES products (id) ON DELETE CASCADE
	)`,
}

// Migrate creates the four tables the API needs if they do not exist yet.
func Migrate(db *sql.DB) error {
	for _, stmt := range migrations {
		if _, err := db.Exec(stmt); err != nil {
			return err
		}
	}
	return nil
}
