package models

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestWithDefaultsFillsBlankEnumerations(t *testing.T) {
	req := CampaignRequest{Product: "Eco Water Bottle", Audience: "Students", Tone: "  "}.WithDefaults()

	require.Equal(t, GoalLeads, req.Goal)
	require.Equal(t, ToneInformative, req.Tone)
	require.Equal(t, LanguageGerman, req.Language)
}

func TestWithDefaultsKeepsExplicitValues(t *testing.T) {
	req := CampaignRequest{Goal: " App-Downloads ", Tone: ToneHumorous, Language: LanguageEnglish}.WithDefaults()

	require.Equal(t, GoalAppDownload, req.Goal)
	require.Equal(t, ToneHumorous, req.Tone)
	require.Equal(t, LanguageEnglish, req.Language)
}

func TestEnumerationValidity(t *testing.T) {
	require.True(t, GoalNewsletter.Valid())
	require.False(t, Goal("Weltherrschaft").Valid())
	require.True(t, ToneSerious.Valid())
	require.False(t, Tone("Sarkastisch").Valid())
	require.True(t, LanguageEnglish.Valid())
	require.False(t, Language("Franzoesisch").Valid())
}
