package practiceController

import (
	"encoding/json"
	"errors"
	"log"
	"time"

	"aptivo/config"
	"aptivo/database"
	"aptivo/middleware"
	"aptivo/models"
	"aptivo/practice"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

// sessionQuestion is the question payload served to a student. The answer
// key and explanation stay server-side until submission.
type sessionQuestion struct {
	ID           uint   `json:"id"`
	QuestionText string `json:"question_text"`
	OptionA      string `json:"option_a"`
	OptionB      string `json:"option_b"`
	OptionC      string `json:"option_c"`
	OptionD      string `json:"option_d"`
	Difficulty   string `json:"difficulty"`
	PassageGroup string `json:"passage_group"`
	PassageText  string `json:"passage_text"`
}

// StartPracticeSession generates a practice session for the requesting
// student and persists the served snapshot for grading on submission
func StartPracticeSession(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	var user models.User
	if err := database.Database.Db.Where("id = ? AND is_deleted = ?", userID, false).First(&user).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "User not found!", nil)
	}

	scope, ok := c.Locals("validatedScope").(practice.ContentScope)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	db := database.Database.Db
	generator := practice.NewGenerator(practice.NewGormStore(db), config.AppConfig.DefaultSessionSize, nil)

	questions, err := generator.GenerateSession(scope, user.UniversityID, &userID)
	if err != nil {
		if errors.Is(err, practice.ErrInvalidScope) {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Unknown topic or subtopic!", nil)
		}
		log.Printf("Error generating practice session: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to generate practice session!", nil)
	}

	if len(questions) == 0 {
		return middleware.JsonResponse(c, fiber.StatusOK, true, "No questions available for this selection.", fiber.Map{
			"questions": []sessionQuestion{},
		})
	}

	questionIDs := make([]uint, len(questions))
	served := make([]sessionQuestion, len(questions))
	for i, q := range questions {
		questionIDs[i] = q.ID
		served[i] = sessionQuestion{
			ID:           q.ID,
			QuestionText: q.QuestionText,
			OptionA:      q.OptionA,
			OptionB:      q.OptionB,
			OptionC:      q.OptionC,
			OptionD:      q.OptionD,
			Difficulty:   q.Difficulty,
			PassageGroup: q.PassageGroup,
			PassageText:  q.PassageText,
		}
	}

	idsJSON, err := json.Marshal(questionIDs)
	if err != nil {
		log.Printf("Error marshalling question IDs: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to start practice session!", nil)
	}

	session := models.PracticeSession{
		ReferenceID:    uuid.NewString(),
		UserID:         userID,
		QuestionIDs:    idsJSON,
		TotalQuestions: len(questions),
	}
	if scope.IsTopic() {
		topicID := scope.TopicID
		session.TopicID = &topicID
	} else {
		subtopicID := scope.SubtopicID
		session.SubtopicID = &subtopicID
	}

	if err := db.Create(&session).Error; err != nil {
		log.Printf("Error saving practice session: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to start practice session!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Practice session started!", fiber.Map{
		"reference_id": session.ReferenceID,
		"questions":    served,
	})
}

// SubmitPracticeSession grades submitted answers against the served
// snapshot and records per-question attempts plus session aggregates
func SubmitPracticeSession(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	reqData, ok := c.Locals("validatedSubmission").(*struct {
		ReferenceID string `json:"reference_id"`
		Answers     []struct {
			QuestionID     uint   `json:"question_id"`
			SelectedOption string `json:"selected_option"`
		} `json:"answers"`
	})
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	db := database.Database.Db

	var session models.PracticeSession
	if err := db.Where("reference_id = ? AND user_id = ? AND is_deleted = ?", reqData.ReferenceID, userID, false).First(&session).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Practice session not found!", nil)
	}

	if session.Status != "IN_PROGRESS" {
		return middleware.JsonResponse(c, fiber.StatusConflict, false, "Practice session already submitted!", nil)
	}

	var servedIDs []uint
	if err := json.Unmarshal(session.QuestionIDs, &servedIDs); err != nil {
		log.Printf("Error reading session snapshot: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to submit practice session!", nil)
	}
	servedSet := make(map[uint]bool, len(servedIDs))
	for _, id := range servedIDs {
		servedSet[id] = true
	}

	correctCount := 0
	answeredCount := 0
	results := make([]fiber.Map, 0, len(reqData.Answers))

	for _, answer := range reqData.Answers {
		if !servedSet[answer.QuestionID] {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Answer refers to a question not in this session!", nil)
		}
		// Consume the entry so a repeated question ID cannot be graded
		// twice and inflate the session aggregates.
		delete(servedSet, answer.QuestionID)

		var question models.Question
		if err := db.Where("id = ? AND is_deleted = ?", answer.QuestionID, false).First(&question).Error; err != nil {
			return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Question not found!", nil)
		}

		isCorrect := answer.SelectedOption != "" && answer.SelectedOption == question.CorrectOption

		var attemptCount int64
		db.Model(&models.QuestionAttempt{}).
			Where("user_id = ? AND question_id = ? AND is_deleted = ?", userID, answer.QuestionID, false).
			Count(&attemptCount)

		attempt := models.QuestionAttempt{
			UserID:            userID,
			QuestionID:        answer.QuestionID,
			PracticeSessionID: &session.ID,
			SelectedOption:    answer.SelectedOption,
			IsCorrect:         isCorrect,
			AttemptNumber:     int(attemptCount) + 1,
		}
		if err := db.Create(&attempt).Error; err != nil {
			log.Printf("Error saving question attempt: %v", err)
			return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to record answer!", nil)
		}

		answeredCount++
		if isCorrect {
			correctCount++
		}

		results = append(results, fiber.Map{
			"question_id":    answer.QuestionID,
			"is_correct":     isCorrect,
			"correct_option": question.CorrectOption,
			"explanation":    question.Explanation,
		})
	}

	now := time.Now()
	session.AnsweredCount = answeredCount
	session.CorrectCount = correctCount
	session.Status = "COMPLETED"
	session.CompletedAt = &now

	if err := db.Save(&session).Error; err != nil {
		log.Printf("Error saving session aggregates: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to submit practice session!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Practice session submitted!", fiber.Map{
		"reference_id":    session.ReferenceID,
		"total_questions": session.TotalQuestions,
		"answered":        answeredCount,
		"correct":         correctCount,
		"results":         results,
	})
}

// GetPracticeHistory lists the requesting student's past sessions
func GetPracticeHistory(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	var sessions []models.PracticeSession
	if err := database.Database.Db.Where("user_id = ? AND is_deleted = ?", userID, false).
		Order("created_at desc").Limit(50).Find(&sessions).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch practice history!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Practice history fetched successfully!", sessions)
}
