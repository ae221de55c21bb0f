// cmd/seed/main.go
// CLI for loading course and golfer-ranking seed data into the database.
// Mirrors the two ingestion paths of the original Django management commands:
// a course-seed JSON file and a ranking-seed CSV file.

package main

import (
	"context"
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"golf-sim/internal/config"
	"golf-sim/internal/database"
	"golf-sim/internal/services"
)

func main() {
	if len(os.Args) < 2 {
		log.Fatal("Usage: seed [courses|rankings] [path]")
	}
	command := os.Args[1]

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load configuration: %v", err)
	}

	logger := log.New(os.Stdout, "[golf-sim-seed] ", log.LstdFlags)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	db, err := database.Initialize(ctx, database.Config{
		MySQL: database.MySQLConfig{
			DSN:             cfg.Database.MySQL.DSN,
			MaxOpenConns:    cfg.Database.MySQL.MaxOpenConns,
			MaxIdleConns:    cfg.Database.MySQL.MaxIdleConns,
			ConnMaxLifetime: cfg.Database.MySQL.ConnMaxLifetime,
		},
		MongoDB: database.MongoConfig{
			URI:      cfg.Database.MongoDB.URI,
			Database: cfg.Database.MongoDB.Database,
		},
		Redis: database.RedisConfig{
			Addr:     cfg.Database.Redis.Addr,
			Password: cfg.Database.Redis.Password,
			DB:       cfg.Database.Redis.DB,
		},
	}, logger)
	if err != nil {
		log.Fatalf("failed to initialize databases: %v", err)
	}
	defer db.Close()

	container := services.NewContainer(db, cfg, logger)

	switch command {
	case "courses":
		path := cfg.Seed.CourseSeedPath
		if len(os.Args) > 2 {
			path = os.Args[2]
		}
		if err := seedCourses(ctx, container, path, logger); err != nil {
			log.Fatalf("course seeding failed: %v", err)
		}
	case "rankings":
		path := cfg.Seed.RankingSeedPath
		if len(os.Args) > 2 {
			path = os.Args[2]
		}
		if err := seedRankings(ctx, container, path, logger); err != nil {
			log.Fatalf("ranking seeding failed: %v", err)
		}
	default:
		log.Fatalf("unknown command: %s (expected courses or rankings)", command)
	}
}

// seedCourses loads a JSON array of course definitions and ingests each one.
func seedCourses(ctx context.Context, container *services.Container, path string, logger *log.Logger) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("file not found: %s: %w", path, err)
	}
	defer f.Close()

	var seeds []services.CourseSeed
	if err := json.NewDecoder(f).Decode(&seeds); err != nil {
		return fmt.Errorf("invalid course seed JSON: %w", err)
	}

	created := 0
	for _, seed := range seeds {
		if err := container.Course.IngestCourse(ctx, seed); err != nil {
			return fmt.Errorf("ingest course %q: %w", seed.Name, err)
		}
		created++
	}

	logger.Printf("processed %d courses from %s", created, path)
	return nil
}

// seedRankings loads a CSV of NAME,RANKING,CTRY rows and refreshes golfer ratings.
func seedRankings(ctx context.Context, container *services.Container, path string, logger *log.Logger) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("file not found: %s: %w", path, err)
	}
	defer f.Close()

	reader := csv.NewReader(f)
	header, err := reader.Read()
	if err != nil {
		return fmt.Errorf("invalid ranking CSV: %w", err)
	}

	nameCol := columnIndex(header, "NAME")
	rankCol := columnIndex(header, "RANKING")
	countryCol := columnIndex(header, "CTRY")
	if nameCol < 0 || rankCol < 0 {
		return fmt.Errorf("ranking CSV missing required NAME/RANKING columns")
	}

	var rows []services.RankingRow
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return fmt.Errorf("invalid ranking CSV row: %w", err)
		}

		rank, err := strconv.Atoi(strings.TrimSpace(record[rankCol]))
		if err != nil {
			continue
		}

		country := ""
		if countryCol >= 0 && countryCol < len(record) {
			country = strings.TrimSpace(record[countryCol])
		}

		rows = append(rows, services.RankingRow{
			Name:    strings.TrimSpace(record[nameCol]),
			Ranking: rank,
			Country: country,
		})
	}

	count, err := container.Golfer.RefreshRatings(ctx, rows)
	if err != nil {
		return fmt.Errorf("refresh ratings: %w", err)
	}

	logger.Printf("refreshed ratings for %d golfers from %s", count, path)
	return nil
}

func columnIndex(header []string, name string) int {
	for i, h := range header {
		if strings.EqualFold(strings.TrimSpace(h), name) {
			return i
		}
	}
	return -1
}
