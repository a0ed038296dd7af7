package main

import (
	"encoding/csv"
	"log"
	"os"
	"strings"

	"coursehub/config"
	"coursehub/database"
	"coursehub/models"
	"coursehub/utils"
)

// Imports a course catalog from Catalog.csv. Expected columns:
// topic, institution, block, level, lesson, material, type, language,
// prefix, keywords (pipe-separated). Rows are idempotent on slug.
func main() {
	// Load config and connect to database
	config.LoadConfig()
	database.ConnectDb()

	// Open CSV file
	file, err := os.Open("Catalog.csv")
	if err != nil {
		log.Fatalf("Failed to open CSV file: %v", err)
	}
	defer file.Close()

	// Create CSV reader
	reader := csv.NewReader(file)

	// Read all records
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
		headerIndex[strings.TrimSpace(strings.ToLower(h))] = i
	}

	field := func(row []string, name string) string {
		index, ok := headerIndex[name]
		if !ok || index >= len(row) {
			return ""
		}
		return strings.TrimSpace(row[index])
	}

	db := database.Database.Db
	imported := 0
	skipped := 0

	for i, row := range records[1:] {
		topicName := field(row, "topic")
		blockName := field(row, "block")
		lessonName := field(row, "lesson")
		materialName := field(row, "material")

		if topicName == "" || blockName == "" || lessonName == "" || materialName == "" {
			log.Printf("Row %d is missing hierarchy fields, skipping", i+2)
			skipped++
			continue
		}

		var topic models.Topic
		if err := db.Where("slug = ?", utils.Slugify(topicName)).
			Attrs(models.Topic{Name: topicName, Institution: field(row, "institution")}).
			FirstOrCreate(&topic, models.Topic{Slug: utils.Slugify(topicName)}).Error; err != nil {
			log.Printf("Row %d: failed to upsert topic %q: %v", i+2, topicName, err)
			skipped++
			continue
		}

		var block models.Block
		if err := db.Where("slug = ?", utils.Slugify(blockName)).
			Attrs(models.Block{Name: blockName, TopicID: topic.ID, Level: field(row, "level")}).
			FirstOrCreate(&block, models.Block{Slug: utils.Slugify(blockName)}).Error; err != nil {
			log.Printf("Row %d: failed to upsert block %q: %v", i+2, blockName, err)
			skipped++
			continue
		}

		var lesson models.Lesson
		if err := db.Where("slug = ?", utils.Slugify(lessonName)).
			Attrs(models.Lesson{Name: lessonName, BlockID: block.ID}).
			FirstOrCreate(&lesson, models.Lesson{Slug: utils.Slugify(lessonName)}).Error; err != nil {
			log.Printf("Row %d: failed to upsert lesson %q: %v", i+2, lessonName, err)
			skipped++
			continue
		}

		var keywords models.StringList
		for _, keyword := range strings.Split(field(row, "keywords"), "|") {
			if keyword = strings.TrimSpace(keyword); keyword != "" {
				keywords = append(keywords, keyword)
			}
		}

		material := models.Material{
			Name:     materialName,
			Slug:     utils.Slugify(materialName),
			Type:     field(row, "type"),
			Language: field(row, "language"),
			LessonID: lesson.ID,
			Prefix:   field(row, "prefix"),
			Keywords: keywords,
		}

		if err := db.Where("slug = ?", material.Slug).
			Attrs(material).
			FirstOrCreate(&models.Material{}, models.Material{Slug: material.Slug}).Error; err != nil {
			log.Printf("Row %d: failed to upsert material %q: %v", i+2, materialName, err)
			skipped++
			continue
		}

		imported++
	}

	log.Printf("Import finished: %d imported, %d skipped", imported, skipped)
}
