package site

import (
	"encoding/json"
	"testing"

	"gedo/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func strPtr(s string) *string { return &s }

func TestMergeOverlaysPartialFields(t *testing.T) {
	defaults := Defaults()

	merged := Merge(defaults, models.SitePatch{
		ContactPhone: strPtr("X"),
	})

	assert.Equal(t, "X", merged.ContactPhone)
	// every other field stays at its default
	assert.Equal(t, defaults.HeroTitle, merged.HeroTitle)
	assert.Equal(t, defaults.ContactAddress, merged.ContactAddress)
	assert.Equal(t, defaults.OpeningHours, merged.OpeningHours)
	assert.Equal(t, defaults.AdminAuth, merged.AdminAuth)
}

func TestMergeEmptyPatchKeepsDefaults(t *testing.T) {
	defaults := Defaults()
	merged := Merge(defaults, models.SitePatch{})
	assert.Equal(t, defaults, merged)
}

func TestMergeReplacesNestedObjectsWholesale(t *testing.T) {
	merged := Merge(Defaults(), models.SitePatch{
		Social: &models.SocialLinks{Instagram: "https://instagram.com/gedo"},
		OpeningHours: []models.OpeningHour{
			{Label: "Daily", Value: "10:00 - 22:00"},
		},
	})

	assert.Equal(t, "https://instagram.com/gedo", merged.Social.Instagram)
	// shallow overlay: the whole sub-object is replaced, not deep-merged
	assert.Empty(t, merged.Social.Facebook)
	require.Len(t, merged.OpeningHours, 1)
}

func TestMergeReplacesAdminAuth(t *testing.T) {
	merged := Merge(Defaults(), models.SitePatch{
		AdminAuth: &models.AdminAuth{Username: "chef", PasswordHash: "abc"},
	})
	assert.Equal(t, "chef", merged.AdminAuth.Username)
	assert.Equal(t, "abc", merged.AdminAuth.PasswordHash)
}

func TestDefaultsCarrySeedCredential(t *testing.T) {
	defaults := Defaults()
	require.NotNil(t, defaults.AdminAuth)
	assert.Equal(t, "Gedo", defaults.AdminAuth.Username)
	assert.Len(t, defaults.AdminAuth.PasswordHash, 64)
}

func TestPatchFieldsEmptyPatchHasNoFields(t *testing.T) {
	// an empty update body must not turn into an empty $set, which mongo rejects
	fields, err := PatchFields(models.SitePatch{})
	require.NoError(t, err)
	assert.Empty(t, fields)
}

func TestPatchFieldsCarriesOnlySetMembers(t *testing.T) {
	fields, err := PatchFields(models.SitePatch{
		ContactPhone: strPtr("X"),
		Social:       &models.SocialLinks{Instagram: "https://instagram.com/gedo"},
	})
	require.NoError(t, err)
	assert.Len(t, fields, 2)
	assert.Equal(t, "X", fields["contactPhone"])
	assert.Contains(t, fields, "social")
}

func TestPublicEncodingOmitsAdminAuth(t *testing.T) {
	settings := Defaults()
	settings.AdminAuth = nil

	buf, err := json.Marshal(settings)
	require.NoError(t, err)
	assert.NotContains(t, string(buf), "adminAuth")
	assert.NotContains(t, string(buf), "passwordHash")
}
