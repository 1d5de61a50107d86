package main

import (
	"aptivo/config"
	"aptivo/database"
	"aptivo/models"
	"encoding/csv"
	"log"
	"os"
	"strings"
)

// Imports a question bank CSV into the content hierarchy. Expected columns:
// subject, topic, subtopic, question_text, option_a, option_b, option_c,
// option_d, correct_option, explanation, difficulty, passage_group,
// passage_text. An empty subtopic column attaches the question directly to
// the topic.
func main() {
	// Load config and connect to database
	config.LoadConfig()
	database.ConnectDb()

	// Open CSV file
	file, err := os.Open("QuestionBank.csv")
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
		headerIndex[strings.TrimSpace(h)] = i
	}

	db := database.Database.Db

	subjectCache := make(map[string]uint)
	topicCache := make(map[string]uint)
	subtopicCache := make(map[string]uint)

	inserted := 0
	skipped := 0

	for i, row := range records[1:] {
		if i%500 == 0 {
			log.Printf("Processing row %d...", i+1)
		}

		field := func(name string) string {
			idx, ok := headerIndex[name]
			if !ok || idx >= len(row) {
				return ""
			}
			return strings.TrimSpace(row[idx])
		}

		subjectName := field("subject")
		topicName := field("topic")
		questionText := field("question_text")
		if subjectName == "" || topicName == "" || questionText == "" {
			skipped++
			continue
		}

		subjectID, ok := subjectCache[subjectName]
		if !ok {
			var subject models.Subject
			if err := db.Where("name = ? AND is_deleted = ?", subjectName, false).
				FirstOrCreate(&subject, models.Subject{Name: subjectName}).Error; err != nil {
				log.Printf("Row %d: failed to resolve subject %q: %v", i+1, subjectName, err)
				skipped++
				continue
			}
			subjectID = subject.ID
			subjectCache[subjectName] = subjectID
		}

		topicKey := subjectName + "/" + topicName
		topicID, ok := topicCache[topicKey]
		if !ok {
			var topic models.Topic
			if err := db.Where("subject_id = ? AND name = ? AND is_deleted = ?", subjectID, topicName, false).
				FirstOrCreate(&topic, models.Topic{SubjectID: subjectID, Name: topicName}).Error; err != nil {
				log.Printf("Row %d: failed to resolve topic %q: %v", i+1, topicName, err)
				skipped++
				continue
			}
			topicID = topic.ID
			topicCache[topicKey] = topicID
		}

		question := models.Question{
			QuestionText:  questionText,
			OptionA:       field("option_a"),
			OptionB:       field("option_b"),
			OptionC:       field("option_c"),
			OptionD:       field("option_d"),
			CorrectOption: field("correct_option"),
			Explanation:   field("explanation"),
			Difficulty:    field("difficulty"),
			PassageGroup:  field("passage_group"),
			PassageText:   field("passage_text"),
		}
		if question.Difficulty == "" {
			question.Difficulty = "MEDIUM"
		}

		if subtopicName := field("subtopic"); subtopicName != "" {
			subtopicKey := topicKey + "/" + subtopicName
			subtopicID, ok := subtopicCache[subtopicKey]
			if !ok {
				var subtopic models.Subtopic
				if err := db.Where("topic_id = ? AND name = ? AND is_deleted = ?", topicID, subtopicName, false).
					FirstOrCreate(&subtopic, models.Subtopic{TopicID: topicID, Name: subtopicName}).Error; err != nil {
					log.Printf("Row %d: failed to resolve subtopic %q: %v", i+1, subtopicName, err)
					skipped++
					continue
				}
				subtopicID = subtopic.ID
				subtopicCache[subtopicKey] = subtopicID
			}
			question.SubtopicID = &subtopicID
		} else {
			question.TopicID = &topicID
		}

		if err := db.Create(&question).Error; err != nil {
			log.Printf("Row %d: failed to insert question: %v", i+1, err)
			skipped++
			continue
		}
		inserted++
	}

	log.Printf("Import complete: %d inserted, %d skipped", inserted, skipped)
}
