// Package advice fetches short pre-match coaching tips from an external
// text-generation API. It has no effect on booking state: any failure
// degrades to a fixed tip, and no error ever reaches the caller.
package advice

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"matchpoint/pkg/client"
	"matchpoint/pkg/logger"
	"matchpoint/pkg/model"
)

const (
	// FallbackTip is returned when the API answers but produces no text.
	FallbackTip = "Keep your eye on the ball and dominate the T!"

	// FallbackTipOnError is returned on any transport or decoding failure.
	FallbackTipOnError = "Focus on controlling the T and keeping your opponent moving to the back corners."
)

type Coach struct {
	client *client.HttpClient
	apiKey string
	log    *logger.Logger
}

// NewCoach builds an advice client. An empty baseURL disables remote lookups
// entirely; every request then resolves to the error fallback.
func NewCoach(baseURL, apiKey string, timeout time.Duration, log *logger.Logger) *Coach {
	c := &Coach{
		apiKey: apiKey,
		log:    log,
	}
	if baseURL != "" {
		c.client = client.NewHttpClient(baseURL, timeout)
	}
	return c
}

type tipRequest struct {
	PlayerSkill   model.SkillLevel `json:"player_skill"`
	OpponentSkill model.SkillLevel `json:"opponent_skill,omitempty"`
	Context       string           `json:"context"`
}

type tipResponse struct {
	Tip string `json:"tip"`
}

// Tip returns a short tactical tip for the player. opponentSkill may be
// empty when the opponent is unknown.
func (c *Coach) Tip(ctx context.Context, playerSkill, opponentSkill model.SkillLevel, matchContext string) string {
	if c.client == nil {
		return FallbackTipOnError
	}

	headers := map[string]string{}
	if c.apiKey != "" {
		headers["Authorization"] = fmt.Sprintf("Bearer %s", c.apiKey)
	}

	resp, err := c.client.POSTWithHeaders(ctx, "", tipRequest{
		PlayerSkill:   playerSkill,
		OpponentSkill: opponentSkill,
		Context:       matchContext,
	}, headers)
	if err != nil {
		c.log.Warn("Advice lookup failed, using fallback tip", "error", err)
		return FallbackTipOnError
	}
	if resp.StatusCode != http.StatusOK {
		c.log.Warn("Advice lookup failed, using fallback tip", "status", resp.StatusCode)
		return FallbackTipOnError
	}

	var decoded tipResponse
	if err := resp.DecodeJSON(&decoded); err != nil {
		c.log.Warn("Advice response malformed, using fallback tip", "error", err)
		return FallbackTipOnError
	}

	if decoded.Tip == "" {
		return FallbackTip
	}
	return decoded.Tip
}
