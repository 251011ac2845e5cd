package chatbotController

import (
	"log"
	"parkguide/config"
	"parkguide/middleware"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/gofiber/fiber/v2"
)

var client = resty.New().SetTimeout(10 * time.Second)

// fallbackAnswers serve common questions when the external assistant is
// unreachable or unconfigured.
var fallbackAnswers = []struct {
	Keywords []string
	Answer   string
}{
	{
		Keywords: []string{"license", "licence", "certified"},
		Answer:   "To obtain a park guide license you must complete all compulsory training modules, pass their quizzes, and then request license approval from your dashboard. An administrator reviews each request.",
	},
	{
		Keywords: []string{"quiz", "pass", "score"},
		Answer:   "Each training module ends with a quiz. You need a score of at least 70% to pass. Passing a quiz earns you a certification valid for one year.",
	},
	{
		Keywords: []string{"payment", "purchase", "price", "pay"},
		Answer:   "Premium modules can be purchased by card from the module catalogue. Payments are reviewed by an administrator; your module unlocks once the payment is approved.",
	},
	{
		Keywords: []string{"expire", "expiry", "renew"},
		Answer:   "Certifications are valid for one year. You will receive an email reminder 14 days before a certification expires so you can renew it in time.",
	},
	{
		Keywords: []string{"park", "location", "where"},
		Answer:   "Our programme covers the national parks of Sarawak. Check the parks section for locations, descriptions and the guides assigned to each park.",
	},
}

const defaultFallback = "I'm sorry, I couldn't find an answer to that. Please try rephrasing your question, or contact the programme administrators for help."

type chatResponse struct {
	Reply string `json:"reply"`
}

// Ask forwards a question to the external assistant, falling back to the
// built-in answers when the service is unavailable.
func Ask(c *fiber.Ctx) error {
	type askRequest struct {
		Message string `json:"message"`
	}

	var reqData askRequest
	if err := c.BodyParser(&reqData); err != nil || strings.TrimSpace(reqData.Message) == "" {
		return middleware.ValidationErrorResponse(c, map[string]string{
			"message": "Message is required!",
		})
	}

	if config.AppConfig.ChatbotApiURL != "" && config.AppConfig.ChatbotApiKey != "" {
		var result chatResponse
		resp, err := client.R().
			SetHeader("Authorization", "Bearer "+config.AppConfig.ChatbotApiKey).
			SetBody(fiber.Map{"message": reqData.Message}).
			SetResult(&result).
			Post(config.AppConfig.ChatbotApiURL)
		if err == nil && resp.IsSuccess() && result.Reply != "" {
			return middleware.JsonResponse(c, fiber.StatusOK, true, "Assistant reply.", fiber.Map{
				"reply":  result.Reply,
				"source": "assistant",
			})
		}
		if err != nil {
			log.Printf("Chatbot service error: %v", err)
		} else {
			log.Printf("Chatbot service returned status %d", resp.StatusCode())
		}
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Assistant reply.", fiber.Map{
		"reply":  FallbackAnswer(reqData.Message),
		"source": "fallback",
	})
}

// FallbackAnswer matches the question against built-in keyword answers.
func FallbackAnswer(message string) string {
	lower := strings.ToLower(message)
	for _, entry := range fallbackAnswers {
		for _, keyword := range entry.Keywords {
			if strings.Contains(lower, keyword) {
				return entry.Answer
			}
		}
	}
	return defaultFallback
}
