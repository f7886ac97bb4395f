package service

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"sort"
	"strings"
	"time"

	"wigu/internal/config"
	"wigu/internal/model"
)

// GenerationService handles AI generation via the Gemini API. When no API
// key is configured every call falls back to a deterministic rule-based
// generator, so the scoring pipeline works offline.
type GenerationService struct {
	config *config.AIConfig
	client *http.Client
	themes *ThemeExtractor
}

// NewGenerationService creates a new generation service
func NewGenerationService(themes *ThemeExtractor) *GenerationService {
	return NewGenerationServiceWithConfig(config.DefaultAIConfig(), themes)
}

// NewGenerationServiceWithConfig creates a generation service with an
// explicit AI config.
func NewGenerationServiceWithConfig(cfg *config.AIConfig, themes *ThemeExtractor) *GenerationService {
	return &GenerationService{
		config: cfg,
		client: &http.Client{
			Timeout: time.Duration(cfg.TimeoutMS) * time.Millisecond,
		},
		themes: themes,
	}
}

// GenerateInsights produces insight candidates from a session's responses.
func (s *GenerationService) GenerateInsights(ctx context.Context, responses []*model.Response) (*model.InsightGeneration, error) {
	if !s.config.IsEnabled() {
		return s.mockInsights(responses), nil
	}

	prompt := s.buildInsightsPrompt(responses)
	raw, err := s.callGemini(ctx, s.config.Models.Insights, prompt)
	if err != nil {
		// Fallback to rule-based generation on error
		return s.mockInsights(responses), nil
	}

	var gen model.InsightGeneration
	if err := json.Unmarshal([]byte(raw), &gen); err != nil {
		return s.mockInsights(responses), nil
	}

	return &gen, nil
}

// GenerateSynthesis classifies the self-vs-advisor comparison into the five
// synthesis buckets and assesses session-level alignment. The engine only
// aggregates and scores what comes back; the bucketing itself lives here.
func (s *GenerationService) GenerateSynthesis(ctx context.Context, selfResponses []*model.Response, advisorResponses []*model.AdvisorResponse) (*model.SynthesisGeneration, error) {
	if !s.config.IsEnabled() {
		return s.mockSynthesis(selfResponses, advisorResponses), nil
	}

	prompt := s.buildSynthesisPrompt(selfResponses, advisorResponses)
	raw, err := s.callGemini(ctx, s.config.Models.Synthesis, prompt)
	if err != nil {
		return s.mockSynthesis(selfResponses, advisorResponses), nil
	}

	var gen model.SynthesisGeneration
	if err := json.Unmarshal([]byte(raw), &gen); err != nil {
		return s.mockSynthesis(selfResponses, advisorResponses), nil
	}

	return &gen, nil
}

// GenerateFiveInsights classifies insights into the five strength categories.
func (s *GenerationService) GenerateFiveInsights(ctx context.Context, insights []*model.Insight, advisorResponses []*model.AdvisorResponse) (*model.FiveInsightsGeneration, error) {
	if !s.config.IsEnabled() {
		return s.mockFiveInsights(insights), nil
	}

	prompt := s.buildFiveInsightsPrompt(insights, advisorResponses)
	raw, err := s.callGemini(ctx, s.config.Models.FiveInsights, prompt)
	if err != nil {
		return s.mockFiveInsights(insights), nil
	}

	var gen model.FiveInsightsGeneration
	if err := json.Unmarshal([]byte(raw), &gen); err != nil {
		return s.mockFiveInsights(insights), nil
	}

	return &gen, nil
}

// callGemini makes a request to the Gemini API
func (s *GenerationService) callGemini(ctx context.Context, modelName, prompt string) (string, error) {
	reqBody := map[string]interface{}{
		"contents": []map[string]interface{}{
			{
				"parts": []map[string]string{
					{"text": prompt},
				},
			},
		},
		"generationConfig": map[string]interface{}{
			"responseMimeType": "application/json",
		},
	}

	jsonBody, err := json.Marshal(reqBody)
	if err != nil {
		return "", err
	}

	url := fmt.Sprintf("%s?key=%s", s.config.ModelEndpoint(modelName), s.config.APIKey)
	req, err := http.NewRequestWithContext(ctx, "POST", url, bytes.NewBuffer(jsonBody))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.client.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", err
	}

	// Parse Gemini response structure
	var geminiResp struct {
		Candidates []struct {
			Content struct {
				Parts []struct {
					Text string `json:"text"`
				} `json:"parts"`
			} `json:"content"`
		} `json:"candidates"`
	}

	if err := json.Unmarshal(body, &geminiResp); err != nil {
		return "", err
	}

	if len(geminiResp.Candidates) > 0 && len(geminiResp.Candidates[0].Content.Parts) > 0 {
		return geminiResp.Candidates[0].Content.Parts[0].Text, nil
	}

	return "", fmt.Errorf("empty response from Gemini")
}

// Prompt builders

func (s *GenerationService) buildInsightsPrompt(responses []*model.Response) string {
	var sb strings.Builder
	for _, r := range responses {
		fmt.Fprintf(&sb, "- [%s, question %s, quality %.2f] %s\n", r.Domain, r.QuestionID, r.QualityScore(), r.Text)
	}

	return fmt.Sprintf(`You are analyzing career self-reflection responses. Return ONLY valid JSON:
{
  "insights": [{
    "domain": "technical|leadership|creative|analytical|social|entrepreneurial|traditional|investigative",
    "type": "pattern|strength|value|interest|development|compatibility|barrier|nextStep",
    "title": "short finding",
    "description": "one paragraph",
    "confidence": 0.0 to 1.0,
    "sourceQuestionIds": ["question ids the finding rests on, at least one"],
    "keyThemes": ["theme tags, at least one"],
    "actionSuggestion": "optional concrete next step"
  }]
}

Responses:
%s
Derive 3-8 insights. Every insight must cite at least one source question id
and at least one theme. Confidence reflects how strongly the responses
support the finding.`, sb.String())
}

func (s *GenerationService) buildSynthesisPrompt(selfResponses []*model.Response, advisorResponses []*model.AdvisorResponse) string {
	var selfSB strings.Builder
	for _, r := range selfResponses {
		fmt.Fprintf(&selfSB, "- [%s, quality %.2f] %s\n", r.Domain, r.QualityScore(), r.Text)
	}
	var advSB strings.Builder
	for _, a := range advisorResponses {
		fmt.Fprintf(&advSB, "- [%s, credibility %.2f] %s\n", a.Domain, a.CredibilityWeight(), a.Text)
	}

	return fmt.Sprintf(`Compare a person's self-assessment against external advisor feedback.
Return ONLY valid JSON:
{
  "alignmentAreas": [insight],
  "hiddenStrengths": [insight],
  "overestimatedAreas": [insight],
  "developmentOpportunities": [insight],
  "repositioningPotential": [insight],
  "alignmentScore": 0.0 to 1.0,
  "confidenceLevel": "high" or "medium" or "low",
  "executiveSummary": "short paragraph",
  "recommendations": ["recommendation"]
}
where insight = {
  "title": "...", "description": "...",
  "category": "alignment|hidden_strength|overestimated|development|repositioning",
  "supportingEvidence": ["snippet"],
  "strategicImportance": 1 to 5,
  "actionableAdvice": "optional",
  "keyThemes": ["theme"],
  "confidence": 0.0 to 1.0
}

Self responses (weighted by quality):
%s
Advisor responses (weighted by credibility):
%s
Classify each finding into exactly one bucket. Weigh high-credibility advisor
observations more heavily than low-quality self responses.`, selfSB.String(), advSB.String())
}

func (s *GenerationService) buildFiveInsightsPrompt(insights []*model.Insight, advisorResponses []*model.AdvisorResponse) string {
	var sb strings.Builder
	for _, i := range insights {
		fmt.Fprintf(&sb, "- [%s/%s, quality %.2f] %s: %s\n", i.Domain, i.Type, i.QualityScore(), i.Title, i.Description)
	}
	advisorCount := len(advisorResponses)

	return fmt.Sprintf(`Build a five-category strengths profile from these career insights.
Return ONLY valid JSON:
{
  "energizingStrengths": [{"title": "...", "domain": "...", "skillLevel": 1-5, "energyLevel": 1-5, "recognitionLevel": 1-5, "leverageability": 1-5, "actionableAdvice": "..."}],
  "hiddenStrengths": [{"title": "...", "domain": "...", "competenceLevel": 1-5, "recognitionLevel": 1-5, "potentialImpact": 1-5, "developmentStrategy": "..."}],
  "overusedTalents": [{"title": "...", "domain": "...", "burnoutRisk": 1-5, "usageFrequency": 1-5, "rebalancingStrategy": "..."}],
  "aspirationalStrengths": [{"title": "...", "domain": "...", "interestLevel": 1-5, "developmentPotential": 1-5, "developmentPlan": "..."}],
  "misalignedEnergies": [{"title": "...", "domain": "...", "energyDrainLevel": 1-5, "frequency": 1-5, "mitigationStrategy": "..."}],
  "balanceScore": 0.0 to 1.0,
  "recommendations": ["recommendation"]
}

Insights (%d advisor responses informed them):
%s
Every rating must be an integer between 1 and 5. balanceScore reflects how
evenly the profile spreads across the five categories.`, advisorCount, sb.String())
}

// Rule-based fallbacks. These keep the pipeline deterministic and usable
// without an API key; scores still come from the real scoring methods.

func (s *GenerationService) mockInsights(responses []*model.Response) *model.InsightGeneration {
	byDomain := make(map[model.CareerDomain][]*model.Response)
	for _, r := range responses {
		byDomain[r.Domain] = append(byDomain[r.Domain], r)
	}

	gen := &model.InsightGeneration{}
	for _, domain := range model.AllDomains {
		group := byDomain[domain]
		if len(group) == 0 {
			continue
		}

		var (
			sources  []string
			themeSet = map[string]bool{}
			quality  float64
		)
		var combined strings.Builder
		for _, r := range group {
			sources = append(sources, r.QuestionID)
			quality += r.QualityScore()
			combined.WriteString(r.Text)
			combined.WriteString(" ")
		}
		quality /= float64(len(group))

		for _, theme := range s.themes.Extract(combined.String()) {
			themeSet[theme] = true
		}
		themes := make([]string, 0, len(themeSet))
		for t := range themeSet {
			themes = append(themes, t)
		}
		sort.Strings(themes)
		if len(themes) == 0 {
			themes = []string{"general"}
		}

		insightType := model.InsightPattern
		if quality >= 0.6 {
			insightType = model.InsightStrength
		}

		info := domain.Info()
		gen.Insights = append(gen.Insights, model.GeneratedInsight{
			Domain:            domain,
			Type:              insightType,
			Title:             fmt.Sprintf("Recurring focus on %s work", strings.ToLower(info.DisplayName)),
			Description:       fmt.Sprintf("Across %d response(s) the %s domain keeps coming up, touching %s.", len(group), info.DisplayName, strings.Join(themes, ", ")),
			Confidence:        quality,
			SourceQuestionIDs: sources,
			KeyThemes:         themes,
		})
	}
	return gen
}

func (s *GenerationService) mockSynthesis(selfResponses []*model.Response, advisorResponses []*model.AdvisorResponse) *model.SynthesisGeneration {
	// Theme views of both perspectives; advisor themes weighted by credibility.
	selfThemes := make(map[string]int)
	for _, r := range selfResponses {
		for _, t := range s.themes.Extract(r.Text) {
			selfThemes[t]++
		}
	}
	advisorThemes := make(map[string]float64)
	for _, a := range advisorResponses {
		w := a.CredibilityWeight()
		for _, t := range s.themes.Extract(a.Text) {
			advisorThemes[t] += w
		}
	}

	union := make(map[string]bool)
	shared := 0
	for t := range selfThemes {
		union[t] = true
	}
	for t := range advisorThemes {
		if union[t] {
			shared++
		}
		union[t] = true
	}
	alignment := 0.0
	if len(union) > 0 {
		alignment = float64(shared) / float64(len(union))
	}

	gen := &model.SynthesisGeneration{
		AlignmentScore:   alignment,
		ExecutiveSummary: fmt.Sprintf("Rule-based synthesis over %d self and %d advisor responses; %d of %d observed themes are seen from both sides.", len(selfResponses), len(advisorResponses), shared, len(union)),
	}

	switch {
	case len(advisorResponses) >= 5:
		gen.ConfidenceLevel = model.SynthesisConfidenceHigh
	case len(advisorResponses) >= 2:
		gen.ConfidenceLevel = model.SynthesisConfidenceMedium
	default:
		gen.ConfidenceLevel = model.SynthesisConfidenceLow
	}

	themes := make([]string, 0, len(union))
	for t := range union {
		themes = append(themes, t)
	}
	sort.Strings(themes)

	for _, theme := range themes {
		selfSeen := selfThemes[theme] > 0
		advisorWeight := advisorThemes[theme]

		importance := 2 + selfThemes[theme]
		if importance > 5 {
			importance = 5
		}

		insight := model.SynthesisInsight{
			Title:               fmt.Sprintf("Theme: %s", theme),
			KeyThemes:           []string{theme},
			StrategicImportance: importance,
		}

		switch {
		case selfSeen && advisorWeight >= 0.5:
			insight.Category = model.SynthesisAlignment
			insight.Description = "Both the subject and advisors point at this theme."
			insight.Confidence = clampMockConfidence(0.5 + advisorWeight/4)
			gen.AlignmentAreas = append(gen.AlignmentAreas, insight)
		case !selfSeen && advisorWeight >= 0.5:
			insight.Category = model.SynthesisHidden
			insight.Description = "Advisors see this but the subject does not mention it."
			insight.Confidence = clampMockConfidence(0.4 + advisorWeight/4)
			insight.ActionableAdvice = fmt.Sprintf("Ask advisors for concrete examples of %s and claim it deliberately.", theme)
			gen.HiddenStrengths = append(gen.HiddenStrengths, insight)
		case selfSeen && len(advisorResponses) > 0:
			insight.Category = model.SynthesisOverestimated
			insight.Description = "The subject emphasizes this theme without advisor corroboration."
			insight.Confidence = 0.4
			gen.OverestimatedAreas = append(gen.OverestimatedAreas, insight)
		case selfSeen:
			insight.Category = model.SynthesisDevelopment
			insight.Description = "Self-reported interest with no external view yet."
			insight.Confidence = 0.3
			insight.ActionableAdvice = fmt.Sprintf("Invite an advisor who has seen your %s work.", theme)
			gen.DevelopmentOpportunities = append(gen.DevelopmentOpportunities, insight)
		default:
			insight.Category = model.SynthesisRepositioning
			insight.Description = "A faint advisor signal worth repositioning around."
			insight.Confidence = 0.3
			insight.ActionableAdvice = fmt.Sprintf("Explore whether %s deserves more room in your role.", theme)
			gen.RepositioningPotential = append(gen.RepositioningPotential, insight)
		}
	}

	if alignment >= 0.5 {
		gen.Recommendations = append(gen.Recommendations, "Self and advisor views largely agree; lean into the aligned strengths.")
	} else {
		gen.Recommendations = append(gen.Recommendations, "Perspectives diverge; discuss the gaps with your advisors before acting.")
	}

	return gen
}

func (s *GenerationService) mockFiveInsights(insights []*model.Insight) *model.FiveInsightsGeneration {
	gen := &model.FiveInsightsGeneration{}

	for _, in := range insights {
		rating := ratingFromConfidence(in.Confidence)

		switch in.Type {
		case model.InsightStrength, model.InsightPattern:
			gen.EnergizingStrengths = append(gen.EnergizingStrengths, model.EnergizingStrength{
				Title:            in.Title,
				Domain:           in.Domain,
				SkillLevel:       rating,
				EnergyLevel:      rating,
				RecognitionLevel: ratingFromConfidence(in.Confidence * 0.8),
				Leverageability:  rating,
				ActionableAdvice: in.ActionSuggestion,
			})
		case model.InsightDevelopment, model.InsightNextStep:
			gen.AspirationalStrengths = append(gen.AspirationalStrengths, model.AspirationalStrength{
				Title:                in.Title,
				Domain:               in.Domain,
				InterestLevel:        rating,
				DevelopmentPotential: rating,
				DevelopmentPlan:      in.ActionSuggestion,
			})
		case model.InsightBarrier:
			gen.MisalignedEnergies = append(gen.MisalignedEnergies, model.MisalignedEnergy{
				Title:              in.Title,
				Domain:             in.Domain,
				EnergyDrainLevel:   rating,
				Frequency:          rating,
				MitigationStrategy: in.ActionSuggestion,
			})
		case model.InsightValue, model.InsightInterest:
			gen.HiddenStrengths = append(gen.HiddenStrengths, model.HiddenStrength{
				Title:               in.Title,
				Domain:              in.Domain,
				CompetenceLevel:     rating,
				RecognitionLevel:    ratingFromConfidence(in.Confidence * 0.5),
				PotentialImpact:     rating,
				DevelopmentStrategy: in.ActionSuggestion,
			})
		default:
			gen.OverusedTalents = append(gen.OverusedTalents, model.OverusedTalent{
				Title:               in.Title,
				Domain:              in.Domain,
				BurnoutRisk:         ratingFromConfidence(in.Confidence * 0.6),
				UsageFrequency:      rating,
				RebalancingStrategy: in.ActionSuggestion,
			})
		}
	}

	// A flat spread across categories earns a high balance score.
	counts := []int{
		len(gen.EnergizingStrengths),
		len(gen.HiddenStrengths),
		len(gen.OverusedTalents),
		len(gen.AspirationalStrengths),
		len(gen.MisalignedEnergies),
	}
	min, max := counts[0], counts[0]
	for _, c := range counts[1:] {
		if c < min {
			min = c
		}
		if c > max {
			max = c
		}
	}
	if max == 0 {
		gen.BalanceScore = 0
	} else {
		gen.BalanceScore = 1 - float64(max-min)/float64(max)
	}

	gen.Recommendations = append(gen.Recommendations, "Rule-based profile; enable Gemini for richer classification.")
	return gen
}

func ratingFromConfidence(confidence float64) int {
	r := 1 + int(confidence*4+0.5)
	if r > 5 {
		r = 5
	}
	if r < 1 {
		r = 1
	}
	return r
}

func clampMockConfidence(v float64) float64 {
	if v > 1 {
		return 1
	}
	if v < 0 {
		return 0
	}
	return v
}
