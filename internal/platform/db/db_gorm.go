package db

import (
	"fmt"
	"log"
	"os"
	"time"

	gmysql "gorm.io/driver/mysql"
	gpostgres "gorm.io/driver/postgres"
	"gorm.io/gorm"

	authentity "agri_backend/internal/feature/auth/domain/entity"
	catalogadapters "agri_backend/internal/feature/catalog/adapters"
	farmerentity "agri_backend/internal/feature/farmer/domain/entity"
	marketadapters "agri_backend/internal/feature/market/adapters"
)

// connectTimeout はDB接続のリトライ上限時間です。
const connectTimeout = 60 * time.Second

// Config はデータベース接続の設定を保持します。
type Config struct {
	Driver       string // mysql | postgres
	User         string
	Password     string
	Name         string
	Host         string
	Port         string
	InstanceName string // Cloud SQL instance connection name
}

// LoadConfigFromEnv は環境変数からデータベース設定を読み込みます。
func LoadConfigFromEnv() Config {
	driver := os.Getenv("DB_DRIVER")
	if driver == "" {
		driver = "mysql"
	}
	return Config{
		Driver:       driver,
		User:         os.Getenv("DB_USER"),
		Password:     os.Getenv("DB_PASSWORD"),
		Name:         os.Getenv("DB_NAME"),
		Host:         os.Getenv("DB_HOST"),
		Port:         os.Getenv("DB_PORT"),
		InstanceName: os.Getenv("INSTANCE_CONNECTION_NAME"),
	}
}

// BuildDSN は設定からMySQL用のDSN文字列を生成します。
// InstanceNameが設定されている場合はCloud SQLのUnixソケット接続を使用します。
func BuildDSN(cfg Config) string {
	if cfg.InstanceName != "" {
		return fmt.Sprintf("%s:%s@unix(/cloudsql/%s)/%s?charset=utf8mb4&parseTime=true&loc=Local",
			cfg.User, cfg.Password, cfg.InstanceName, cfg.Name)
	}
	return fmt.Sprintf("%s:%s@tcp(%s:%s)/%s?charset=utf8mb4&parseTime=true&loc=Local",
		cfg.User, cfg.Password, cfg.Host, cfg.Port, cfg.Name)
}

// BuildPostgresDSN は設定からPostgreSQL用のDSN文字列を生成します。
func BuildPostgresDSN(cfg Config) string {
	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=disable TimeZone=Asia/Kolkata",
		cfg.Host, cfg.Port, cfg.User, cfg.Password, cfg.Name)
}

// Opener はDSNからgorm.DBを開く関数です。テストでの差し替えを可能にします。
type Opener func(dsn string) (*gorm.DB, error)

// ConnectWithRetry は接続に失敗した場合、タイムアウトまで3秒間隔でリトライします。
func ConnectWithRetry(dsn string, timeout time.Duration, open Opener) (*gorm.DB, error) {
	deadline := time.Now().Add(timeout)
	for {
		db, err := open(dsn)
		if err == nil {
			return db, nil
		}
		if time.Now().After(deadline) {
			return nil, fmt.Errorf("DB connect failed after %v: %w", timeout, err)
		}
		log.Printf("DB connect failed, retrying...: %v", err)
		time.Sleep(3 * time.Second)
	}
}

// OpenDB は環境変数の設定でデータベースに接続します。
// RUN_MIGRATIONS=true の場合、全テーブルのマイグレーションを実行します。
func OpenDB() *gorm.DB {
	cfg := LoadConfigFromEnv()

	var (
		dsn  string
		open Opener
	)
	switch cfg.Driver {
	case "postgres":
		dsn = BuildPostgresDSN(cfg)
		open = func(dsn string) (*gorm.DB, error) {
			return gorm.Open(gpostgres.Open(dsn), &gorm.Config{})
		}
	default:
		dsn = BuildDSN(cfg)
		open = func(dsn string) (*gorm.DB, error) {
			return gorm.Open(gmysql.Open(dsn), &gorm.Config{})
		}
	}

	db, err := ConnectWithRetry(dsn, connectTimeout, open)
	if err != nil {
		log.Fatalf("%v", err)
	}

	if os.Getenv("RUN_MIGRATIONS") == "true" {
		// マイグレーション（Account, FarmerProfile, 価格レコード, カタログ）
		if err := db.AutoMigrate(
			&authentity.Account{},
			&farmerentity.FarmerProfile{},
			&marketadapters.PriceRecordModel{},
			&catalogadapters.MarketPairModel{},
		); err != nil {
			log.Fatalf("failed to migrate: %v", err)
		}
	}

	return db
}
