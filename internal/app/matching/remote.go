// internal/app/matching/remote.go
package matching

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/dalemusser/hackmatch/internal/domain/models"
)

// contentGenerator is the slice of the AI client that remote ranking needs.
type contentGenerator interface {
	GenerateContent(ctx context.Context, prompt string) (string, error)
}

// RemoteRanking asks a language model to pick and score teammates. The
// model's reply must be a JSON array of result objects; anything else is
// returned as an error so the caller can fall back to local scoring.
type RemoteRanking struct {
	Gen contentGenerator
}

func (r *RemoteRanking) Rank(ctx context.Context, requester *models.UserProfile, pool []models.UserProfile) ([]Result, error) {
	prompt := buildPrompt(requester, pool)

	raw, err := r.Gen.GenerateContent(ctx, prompt)
	if err != nil {
		return nil, fmt.Errorf("generate ranking: %w", err)
	}

	results, err := parseResults(raw)
	if err != nil {
		return nil, err
	}
	if len(results) > MaxSuggestions {
		results = results[:MaxSuggestions]
	}
	return results, nil
}

func buildPrompt(requester *models.UserProfile, pool []models.UserProfile) string {
	var b strings.Builder

	b.WriteString("You are matching hackathon participants into teams.\n\n")
	b.WriteString("Current user:\n")
	fmt.Fprintf(&b, "Name: %s\n", requester.Name)
	fmt.Fprintf(&b, "Skills: %s\n", strings.Join(requester.Skills, ", "))
	fmt.Fprintf(&b, "Preferred roles: %s\n", strings.Join(requester.PreferredRoles, ", "))
	fmt.Fprintf(&b, "Location: %s, %s (wants_local_matches: %t)\n\n",
		requester.Location.City, requester.Location.Country, requester.WantsLocalMatches)

	b.WriteString("Candidates:\n")
	for _, c := range pool {
		fmt.Fprintf(&b, "- %s (%s): %s | roles: %s | location: %s\n",
			c.Name, c.Email,
			strings.Join(c.Skills, ", "),
			strings.Join(c.PreferredRoles, ", "),
			c.Location.City)
	}

	fmt.Fprintf(&b, "\nPick the best teammates for the current user, at most %d. "+
		"Favor complementary skills and roles the user does not already cover. "+
		"Prefer candidates in the user's location when wants_local_matches is true. "+
		"Respond with ONLY a JSON array, no prose, where each element is "+
		`{"name": string, "email": string, "score": number 0-100, "reason": string}.`,
		MaxSuggestions)

	return b.String()
}

// parseResults decodes the model output, tolerating a ```json fenced block
// around the array.
func parseResults(raw string) ([]Result, error) {
	text := stripFence(raw)

	var results []Result
	if err := json.Unmarshal([]byte(text), &results); err != nil {
		return nil, fmt.Errorf("parse ranking response: %w", err)
	}
	return results, nil
}

func stripFence(s string) string {
	text := strings.TrimSpace(s)
	if !strings.HasPrefix(text, "```") {
		return text
	}
	text = strings.TrimPrefix(text, "```json")
	text = strings.TrimPrefix(text, "```")
	text = strings.TrimSuffix(strings.TrimSpace(text), "```")
	return strings.TrimSpace(text)
}
