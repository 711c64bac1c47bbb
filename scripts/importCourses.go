package main

import (
	"encoding/csv"
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"strings"

	"studynotion/config"
	"studynotion/database"
	"studynotion/models"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type importStats struct {
	Inserted int
	Updated  int
	Skipped  int
}

func main() {
	path := flag.String("file", "courses.csv", "CSV file with courseName,courseDescription,price columns")
	flag.Parse()

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	logger, err := zap.NewProduction()
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer logger.Sync()

	db, err := database.ConnectDb(cfg, logger)
	if err != nil {
		logger.Fatal("Failed to connect to database", zap.Error(err))
	}

	file, err := os.Open(*path)
	if err != nil {
		logger.Fatal("Failed to open CSV file", zap.String("file", *path), zap.Error(err))
	}
	defer file.Close()

	stats, err := importCourses(db, file, logger)
	if err != nil {
		logger.Fatal("Import failed", zap.Error(err))
	}

	logger.Info("Import complete",
		zap.Int("inserted", stats.Inserted),
		zap.Int("updated", stats.Updated),
		zap.Int("skipped", stats.Skipped))
}

// importCourses upserts courses by name from a CSV with a header row.
// Rows without a name or with an unparsable price are skipped.
func importCourses(db *gorm.DB, r io.Reader, logger *zap.Logger) (importStats, error) {
	var stats importStats

	records, err := csv.NewReader(r).ReadAll()
	if err != nil {
		return stats, fmt.Errorf("failed to read CSV: %w", err)
	}
	if len(records) < 2 {
		return stats, errors.New("CSV file is empty or has only headers")
	}

	headerIndex := make(map[string]int)
	for i, h := range records[0] {
		headerIndex[strings.TrimSpace(h)] = i
	}

	for i, row := range records[1:] {
		name := getField(row, headerIndex, "courseName")
		price, err := decimal.NewFromString(getField(row, headerIndex, "price"))
		if name == "" || err != nil || price.IsNegative() {
			logger.Warn("Skipping row", zap.Int("row", i+2), zap.String("course", name))
			stats.Skipped++
			continue
		}
		description := getField(row, headerIndex, "courseDescription")

		var existing models.Course
		err = db.Where("course_name = ? AND is_deleted = ?", name, false).First(&existing).Error
		switch {
		case errors.Is(err, gorm.ErrRecordNotFound):
			course := models.Course{CourseName: name, CourseDescription: description, Price: price}
			if err := db.Create(&course).Error; err != nil {
				return stats, fmt.Errorf("failed to insert course %q: %w", name, err)
			}
			stats.Inserted++
		case err != nil:
			return stats, fmt.Errorf("failed to look up course %q: %w", name, err)
		default:
			existing.CourseDescription = description
			existing.Price = price
			if err := db.Save(&existing).Error; err != nil {
				return stats, fmt.Errorf("failed to update course %q: %w", name, err)
			}
			stats.Updated++
		}
	}

	return stats, nil
}

// getField safely gets a field from the row by header name
func getField(row []string, headerIndex map[string]int, field string) string {
	if idx, ok := headerIndex[field]; ok && idx < len(row) {
		return strings.TrimSpace(row[idx])
	}
	return ""
}
