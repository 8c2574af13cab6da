package service

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"
	"time"

	"go.uber.org/zap"

	"debt-planner/domain"
)

// AdviceService turns a computed comparison into a short narrative for the
// dashboard. When no API key is configured (or the call fails) it falls back
// to a deterministic template, so the planning endpoints never depend on the
// provider being up. One direct call, no retries, no provider-side caching.
type AdviceService struct {
	apiKey     string
	apiURL     string
	enabled    bool
	httpClient *http.Client
	logger     *zap.Logger
}

type openAIRequest struct {
	Model     string    `json:"model"`
	Messages  []message `json:"messages"`
	MaxTokens int       `json:"max_tokens,omitempty"`
}

type message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type openAIResponse struct {
	Choices []struct {
		Message message `json:"message"`
	} `json:"choices"`
}

func NewAdviceService(logger *zap.Logger, enabled bool) *AdviceService {
	apiKey := os.Getenv("OPENAI_API_KEY")

	return &AdviceService{
		apiKey:  apiKey,
		apiURL:  "https://api.openai.com/v1/chat/completions",
		enabled: enabled && apiKey != "",
		logger:  logger,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

// GenerateComparisonExplanation produces a 3-4 sentence explanation of why
// the optimized plan beats (or matches) the minimum-only baseline.
func (s *AdviceService) GenerateComparisonExplanation(strategy domain.Strategy, result domain.ComparisonResult) string {
	if !s.enabled {
		return s.fallbackExplanation(strategy, result)
	}

	strategyDesc := "paying the highest-interest debt first, which minimizes total interest"
	if strategy == domain.Snowball {
		strategyDesc = "paying the smallest balance first, which builds momentum by clearing debts quickly"
	}

	prompt := fmt.Sprintf(`Explain this debt repayment comparison to a user in plain language.

STRATEGY: %s (%s)

RESULT:
- Baseline (minimum payments only): %d months, $%s in interest
- Optimized plan: %d months, $%s in interest
- Interest saved: $%s (%s%% improvement)
- Months saved: %d

INSTRUCTIONS:
1. Explain how the strategy works and why the savings happen.
2. Be specific with the numbers above.
3. Be encouraging but realistic.

Write 3-4 sentences anyone can understand.`,
		strategy, strategyDesc,
		result.BaselinePlan.PeriodsToPayoff, result.BaselinePlan.TotalInterestPaid,
		result.OptimizedPlan.PeriodsToPayoff, result.OptimizedPlan.TotalInterestPaid,
		result.InterestSaved, result.PercentageImprovement,
		result.TimePeriodsSaved)

	explanation, err := s.callLLM(prompt)
	if err != nil {
		s.logger.Warn("advice generation failed, using fallback", zap.Error(err))
		return s.fallbackExplanation(strategy, result)
	}
	return explanation
}

func (s *AdviceService) fallbackExplanation(strategy domain.Strategy, result domain.ComparisonResult) string {
	name := "avalanche (highest interest rate first)"
	switch strategy {
	case domain.Snowball:
		name = "snowball (smallest balance first)"
	case domain.Custom:
		name = "your custom payoff order"
	}

	if !result.OptimizedPlan.Converged {
		return fmt.Sprintf("At the configured budget this plan does not pay off within %d months. "+
			"Increasing the monthly budget above the interest being charged is required before the %s strategy can make progress.",
			MaxSimulationPeriods, name)
	}

	return fmt.Sprintf("Following the %s strategy, you would be debt-free in %d months instead of %d, "+
		"saving $%s in interest (%s%% less than making minimum payments only).",
		name, result.OptimizedPlan.PeriodsToPayoff, result.BaselinePlan.PeriodsToPayoff,
		result.InterestSaved, result.PercentageImprovement)
}

func (s *AdviceService) callLLM(prompt string) (string, error) {
	reqBody := openAIRequest{
		Model: "gpt-4o-mini",
		Messages: []message{
			{
				Role:    "system",
				Content: "You are a personal-finance advisor. You explain debt repayment plans clearly and accurately, always using the exact figures provided.",
			},
			{
				Role:    "user",
				Content: prompt,
			},
		},
		MaxTokens: 300,
	}

	jsonData, err := json.Marshal(reqBody)
	if err != nil {
		return "", err
	}

	req, err := http.NewRequest(http.MethodPost, s.apiURL, bytes.NewBuffer(jsonData))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", fmt.Sprintf("Bearer %s", s.apiKey))

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return "", fmt.Errorf("API error (status %d): %s", resp.StatusCode, string(body))
	}

	var openAIResp openAIResponse
	if err := json.NewDecoder(resp.Body).Decode(&openAIResp); err != nil {
		return "", err
	}
	if len(openAIResp.Choices) == 0 {
		return "", fmt.Errorf("empty response from API")
	}

	return strings.TrimSpace(openAIResp.Choices[0].Message.Content), nil
}
