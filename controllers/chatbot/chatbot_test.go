package chatbotController

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"parkguide/config"
	"sync/atomic"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFallbackAnswer(t *testing.T) {
	cases := []struct {
		name     string
		message  string
		contains string
	}{
		{"license question", "How do I get my license?", "compulsory training modules"},
		{"quiz question", "What score do I need to pass the quiz?", "70%"},
		{"payment question", "How do I pay for a premium module?", "purchased by card"},
		{"expiry question", "When does my certification expire?", "valid for one year"},
		{"park question", "Where are the parks located?", "national parks of Sarawak"},
		{"case insensitive", "TELL ME ABOUT THE QUIZ", "70%"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Contains(t, FallbackAnswer(tc.message), tc.contains)
		})
	}
}

func TestFallbackAnswerUnknownQuestion(t *testing.T) {
	assert.Equal(t, defaultFallback, FallbackAnswer("what is the meaning of life"))
}

func askApp() *fiber.App {
	app := fiber.New()
	app.Post("/ask", Ask)
	return app
}

func ask(t *testing.T, app *fiber.App, message string) map[string]interface{} {
	t.Helper()
	body, err := json.Marshal(fiber.Map{"message": message})
	require.NoError(t, err)
	req := httptest.NewRequest("POST", "/ask", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	var parsed map[string]interface{}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&parsed))
	return parsed["data"].(map[string]interface{})
}

func TestAskWithoutApiKeySkipsService(t *testing.T) {
	var hits int64
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt64(&hits, 1)
		json.NewEncoder(w).Encode(chatResponse{Reply: "from service"})
	}))
	defer server.Close()

	config.AppConfig = &config.Config{ChatbotApiURL: server.URL, ChatbotApiKey: ""}

	data := ask(t, askApp(), "what score do I need on the quiz?")
	assert.Equal(t, "fallback", data["source"])
	assert.Contains(t, data["reply"], "70%")
	assert.Equal(t, int64(0), atomic.LoadInt64(&hits))
}

func TestAskUsesServiceWhenConfigured(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Bearer test-key", r.Header.Get("Authorization"))
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(chatResponse{Reply: "from service"})
	}))
	defer server.Close()

	config.AppConfig = &config.Config{ChatbotApiURL: server.URL, ChatbotApiKey: "test-key"}

	data := ask(t, askApp(), "hello there")
	assert.Equal(t, "assistant", data["source"])
	assert.Equal(t, "from service", data["reply"])
}
