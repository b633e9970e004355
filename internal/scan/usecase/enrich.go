package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"scanner-srv/internal/model"
)

// defaultPromptTemplate is used when neither the campaign nor the user's
// settings carry a prompt. %s is replaced by the item content.
const defaultPromptTemplate = `You are a brand monitoring analyst. Evaluate the following content and respond with a JSON object of the form {"evaluation": "<one-paragraph assessment>", "sentiment": "positive" | "negative" | "neutral"}. Respond with JSON only.

Content:
%s`

// aiEvaluation is the JSON shape the model is asked to produce.
type aiEvaluation struct {
	Evaluation string `json:"evaluation"`
	Sentiment  string `json:"sentiment"`
}

var validSentiments = map[string]struct{}{
	model.SentimentPositive: {},
	model.SentimentNegative: {},
	model.SentimentNeutral:  {},
}

// enrichItems runs AI evaluation over the matched items, in place.
// Enrichment only applies to social items and only when the campaign
// has its AI filter enabled; everything else keeps an empty evaluation.
// Per-item calls fan out on the source worker pool, each under its own
// timeout. A per-item failure never aborts the scan; the item keeps a
// placeholder evaluation and no sentiment. Returns the number of
// failed items.
func (uc *implUseCase) enrichItems(ctx context.Context, c model.Campaign, items []fetchedItem) int {
	if !c.AIFilterEnabled {
		return 0
	}

	template := uc.resolvePromptTemplate(ctx, c)
	timeout := time.Duration(uc.cfg.EnrichTimeoutSeconds) * time.Second

	var (
		mu       sync.Mutex
		wg       sync.WaitGroup
		sem      = make(chan struct{}, uc.cfg.SourceWorkers)
		failures int
	)

	for i := range items {
		if items[i].Post == nil {
			continue
		}

		wg.Add(1)
		sem <- struct{}{}
		go func(i int) {
			defer wg.Done()
			defer func() { <-sem }()

			itemCtx, cancel := context.WithTimeout(ctx, timeout)
			defer cancel()

			evaluation, sentiment, err := uc.enrichOneGuarded(itemCtx, template, items[i].Text())
			if err != nil {
				uc.l.Warnf(ctx, "scan.usecase.enrichItems: item from %s: %v", items[i].Source, err)
				items[i].Evaluation = model.EvaluationUnavailable
				items[i].Sentiment = nil
				mu.Lock()
				failures++
				mu.Unlock()
				return
			}
			items[i].Evaluation = evaluation
			items[i].Sentiment = sentiment
		}(i)
	}
	wg.Wait()

	return failures
}

// resolvePromptTemplate prefers the campaign instruction, then the
// owner's settings template, then the built-in default.
func (uc *implUseCase) resolvePromptTemplate(ctx context.Context, c model.Campaign) string {
	if c.AIInstruction != "" {
		return c.AIInstruction
	}
	setting, err := uc.settingsUC.GetByUserID(ctx, c.UserID)
	if err == nil && setting.AIPromptTemplate != "" {
		return setting.AIPromptTemplate
	}
	return defaultPromptTemplate
}

// enrichOneGuarded contains a panicking AI client to its own item; the
// enrichment workers run outside the scan-level recover.
func (uc *implUseCase) enrichOneGuarded(ctx context.Context, template, content string) (evaluation string, sentiment *string, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("enrich panicked: %v", r)
		}
	}()
	return uc.enrichOne(ctx, template, content)
}

func (uc *implUseCase) enrichOne(ctx context.Context, template, content string) (string, *string, error) {
	if uc.gemini == nil {
		return "", nil, errors.New("ai client not configured")
	}

	raw, err := uc.gemini.Generate(ctx, buildPrompt(template, content))
	if err != nil {
		return "", nil, err
	}

	var parsed aiEvaluation
	if err := json.Unmarshal([]byte(stripJSONFences(raw)), &parsed); err != nil {
		return "", nil, fmt.Errorf("parse ai response: %w", err)
	}
	if parsed.Evaluation == "" {
		return "", nil, errors.New("ai response missing evaluation")
	}

	// An unrecognized sentiment keeps the evaluation but stores no
	// sentiment rather than inventing one.
	sentiment := strings.ToLower(strings.TrimSpace(parsed.Sentiment))
	if _, ok := validSentiments[sentiment]; !ok {
		return parsed.Evaluation, nil, nil
	}
	return parsed.Evaluation, &sentiment, nil
}

// buildPrompt substitutes the content into the template. Templates
// without a %s placeholder get the content appended.
func buildPrompt(template, content string) string {
	if strings.Contains(template, "%s") {
		return fmt.Sprintf(template, content)
	}
	return template + "\n\nContent:\n" + content
}

// stripJSONFences removes a markdown code fence wrapping the response.
// Models regularly wrap JSON in ```json blocks despite instructions.
func stripJSONFences(s string) string {
	s = strings.TrimSpace(s)
	if !strings.HasPrefix(s, "```") {
		return s
	}
	s = strings.TrimPrefix(s, "```json")
	s = strings.TrimPrefix(s, "```")
	s = strings.TrimSuffix(strings.TrimSpace(s), "```")
	return strings.TrimSpace(s)
}
