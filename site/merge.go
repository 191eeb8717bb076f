package site

import (
	"gedo/models"

	"go.mongodb.org/mongo-driver/bson"
)

// PatchFields flattens a patch into the set of fields it actually carries,
// relying on the omitempty bson tags to drop unset members.
func PatchFields(patch models.SitePatch) (bson.M, error) {
	raw, err := bson.Marshal(patch)
	if err != nil {
		return nil, err
	}
	var fields bson.M
	if err := bson.Unmarshal(raw, &fields); err != nil {
		return nil, err
	}
	return fields, nil
}

// Merge overlays the stored partial document onto the defaults. Nil patch
// fields keep the default; non-nil fields replace it wholesale (shallow).
func Merge(base models.SiteSettings, patch models.SitePatch) models.SiteSettings {
	out := base

	if patch.TodaysSpecialDishID != nil {
		out.TodaysSpecialDishID = patch.TodaysSpecialDishID
	}
	if patch.HeroTitle != nil {
		out.HeroTitle = *patch.HeroTitle
	}
	if patch.HeroSubtitle != nil {
		out.HeroSubtitle = *patch.HeroSubtitle
	}
	if patch.HeroTitleEN != nil {
		out.HeroTitleEN = *patch.HeroTitleEN
	}
	if patch.HeroSubtitleEN != nil {
		out.HeroSubtitleEN = *patch.HeroSubtitleEN
	}
	if patch.HeroTitleRO != nil {
		out.HeroTitleRO = *patch.HeroTitleRO
	}
	if patch.HeroSubtitleRO != nil {
		out.HeroSubtitleRO = *patch.HeroSubtitleRO
	}
	if patch.WelcomeTitle != nil {
		out.WelcomeTitle = *patch.WelcomeTitle
	}
	if patch.WelcomeText != nil {
		out.WelcomeText = *patch.WelcomeText
	}
	if patch.WelcomeTitleEN != nil {
		out.WelcomeTitleEN = *patch.WelcomeTitleEN
	}
	if patch.WelcomeTextEN != nil {
		out.WelcomeTextEN = *patch.WelcomeTextEN
	}
	if patch.WelcomeTitleRO != nil {
		out.WelcomeTitleRO = *patch.WelcomeTitleRO
	}
	if patch.WelcomeTextRO != nil {
		out.WelcomeTextRO = *patch.WelcomeTextRO
	}
	if patch.LogoURL != nil {
		out.LogoURL = patch.LogoURL
	}
	if patch.HeroBackgroundURL != nil {
		out.HeroBackgroundURL = patch.HeroBackgroundURL
	}
	if patch.DefaultLogoURL != nil {
		out.DefaultLogoURL = *patch.DefaultLogoURL
	}
	if patch.DefaultHeroURL != nil {
		out.DefaultHeroURL = *patch.DefaultHeroURL
	}
	if patch.SignatureDishIDs != nil {
		out.SignatureDishIDs = patch.SignatureDishIDs
	}
	if patch.ContactPhone != nil {
		out.ContactPhone = *patch.ContactPhone
	}
	if patch.ContactAddress != nil {
		out.ContactAddress = *patch.ContactAddress
	}
	if patch.MapEmbedURL != nil {
		out.MapEmbedURL = *patch.MapEmbedURL
	}
	if patch.OpeningHours != nil {
		out.OpeningHours = patch.OpeningHours
	}
	if patch.Social != nil {
		out.Social = *patch.Social
	}
	if patch.TaglineEN != nil {
		out.TaglineEN = *patch.TaglineEN
	}
	if patch.TaglineRO != nil {
		out.TaglineRO = *patch.TaglineRO
	}
	if patch.AdminAuth != nil {
		out.AdminAuth = patch.AdminAuth
	}
	if patch.AboutTitleEN != nil {
		out.AboutTitleEN = *patch.AboutTitleEN
	}
	if patch.AboutTitleRO != nil {
		out.AboutTitleRO = *patch.AboutTitleRO
	}
	if patch.AboutBodyEN != nil {
		out.AboutBodyEN = *patch.AboutBodyEN
	}
	if patch.AboutBodyRO != nil {
		out.AboutBodyRO = *patch.AboutBodyRO
	}

	return out
}
