package controllers

import (
	"strings"

	"github.com/gin-gonic/gin"
	openai "github.com/sashabaranov/go-openai"

	"github.com/xndadelin/NXT/config"
	"github.com/xndadelin/NXT/utils"
)

const assistantSystemPrompt = "You are a CTF learning assistant. Help the user understand " +
	"security concepts, tooling and methodology. Guide them towards the solution with hints " +
	"and explanations instead of handing out flags."

var (
	assistantClient *openai.Client
	assistantModel  string
)

// InitAssistant builds the upstream chat client. The base URL is configurable
// so any OpenAI-compatible provider works.
func InitAssistant(cfg *config.Config) {
	clientConfig := openai.DefaultConfig(cfg.AssistantAPIKey)
	clientConfig.BaseURL = cfg.AssistantBaseURL
	assistantClient = openai.NewClientWithConfig(clientConfig)
	assistantModel = cfg.AssistantModel
}

type assistantReq struct {
	Prompt  string `json:"prompt"`
	Context string `json:"context"`
}

// AskAssistant proxies a single-turn question to the configured model and
// returns the reply verbatim. The prompt never touches the database.
func AskAssistant(c *gin.Context) {
	var req assistantReq
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.Error(c, 1001, "Invalid parameters: "+err.Error())
		return
	}

	req.Prompt = strings.TrimSpace(req.Prompt)
	if req.Prompt == "" {
		utils.Error(c, 1001, "Prompt is required")
		return
	}

	messages := []openai.ChatCompletionMessage{
		{Role: openai.ChatMessageRoleSystem, Content: assistantSystemPrompt},
	}
	if ctx := strings.TrimSpace(req.Context); ctx != "" {
		messages = append(messages, openai.ChatCompletionMessage{
			Role:    openai.ChatMessageRoleSystem,
			Content: "Challenge context:\n" + ctx,
		})
	}
	messages = append(messages, openai.ChatCompletionMessage{
		Role:    openai.ChatMessageRoleUser,
		Content: req.Prompt,
	})

	resp, err := assistantClient.CreateChatCompletion(c.Request.Context(), openai.ChatCompletionRequest{
		Model:    assistantModel,
		Messages: messages,
	})
	if err != nil {
		utils.Error(c, 5000, "Assistant is unavailable right now")
		return
	}
	if len(resp.Choices) == 0 {
		utils.Error(c, 5000, "Assistant returned an empty response")
		return
	}

	utils.Success(c, "success", gin.H{"reply": resp.Choices[0].Message.Content})
}
