package main

import (
	"encoding/csv"
	"log"
	"os"
	"parkguide/config"
	"parkguide/database"
	"parkguide/models"
	"strconv"
	"strings"
)

func main() {
	// Load config and connect to database
	config.LoadConfig()
	database.ConnectDb()

	// Open CSV file
	file, err := os.Open("plants.csv")
	if err != nil {
		log.Fatalf("Failed to open CSV file: %v", err)
	}
	defer file.Close()

	reader := csv.NewReader(file)

	records, err := reader.ReadAll()
	if err != nil {
		log.Fatalf("Failed to read CSV: %v", err)
	}

	if len(records) < 2 {
		log.Fatal("CSV file is empty or has only headers")
	}

	// Skip header row
	header := records[0]
	log.Printf("CSV Headers: %v", header)
	log.Printf("Total rows to import: %d", len(records)-1)

	// Map header indices
	headerIndex := make(map[string]int)
	for i, h := range header {
		headerIndex[strings.TrimSpace(h)] = i
	}

	field := func(row []string, name string) string {
		idx, ok := headerIndex[name]
		if !ok || idx >= len(row) {
			return ""
		}
		return strings.TrimSpace(row[idx])
	}

	inserted := 0
	updated := 0
	skipped := 0

	for i, row := range records[1:] {
		if i%100 == 0 {
			log.Printf("Processing row %d...", i+1)
		}

		commonName := field(row, "common_name")
		if commonName == "" {
			skipped++
			continue
		}

		plant := models.Plant{
			CommonName:     commonName,
			ScientificName: field(row, "scientific_name"),
			Description:    field(row, "description"),
			ImageURL:       field(row, "image_url"),
		}

		if parkID, err := strconv.Atoi(field(row, "park_id")); err == nil && parkID > 0 {
			id := uint(parkID)
			plant.ParkID = &id
		}

		// Upsert on scientific name so re-running the import is safe
		var existing models.Plant
		if plant.ScientificName != "" {
			err = database.Database.Db.
				Where("scientific_name = ? AND is_deleted = ?", plant.ScientificName, false).
				First(&existing).Error
		} else {
			err = database.Database.Db.
				Where("common_name = ? AND is_deleted = ?", plant.CommonName, false).
				First(&existing).Error
		}

		if err == nil {
			existing.CommonName = plant.CommonName
			existing.Description = plant.Description
			existing.ImageURL = plant.ImageURL
			existing.ParkID = plant.ParkID
			if err := database.Database.Db.Save(&existing).Error; err != nil {
				log.Printf("Failed to update row %d (%s): %v", i+1, commonName, err)
				skipped++
				continue
			}
			updated++
			continue
		}

		if err := database.Database.Db.Create(&plant).Error; err != nil {
			log.Printf("Failed to insert row %d (%s): %v", i+1, commonName, err)
			skipped++
			continue
		}
		inserted++
	}

	log.Printf("Import complete: %d inserted, %d updated, %d skipped", inserted, updated, skipped)
}
