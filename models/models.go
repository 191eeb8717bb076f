package models

import "time"

// Badge is the optional icon+label shown on a dish card.
type Badge struct {
	Icon  string `json:"icon,omitempty" bson:"icon,omitempty"`
	Label string `json:"label,omitempty" bson:"label,omitempty"`
}

type Dish struct {
	ID          string  `json:"id" bson:"_id,omitempty"`
	Name        string  `json:"name" bson:"name"`
	Price       float64 `json:"price" bson:"price"`
	Description string  `json:"description,omitempty" bson:"description,omitempty"`
	Image       string  `json:"image,omitempty" bson:"image,omitempty"`
	CategoryID  *string `json:"categoryId,omitempty" bson:"categoryId,omitempty"`
	Badge       *Badge  `json:"badge,omitempty" bson:"badge,omitempty"`
}

type Category struct {
	ID        string `json:"id" bson:"_id,omitempty"`
	Name      string `json:"name" bson:"name"`
	Order     int    `json:"order" bson:"order"`
	CreatedAt int64  `json:"createdAt,omitempty" bson:"createdAt,omitempty"`
}

type Testimonial struct {
	ID        string  `json:"id" bson:"_id,omitempty"`
	Name      string  `json:"name" bson:"name"`
	Email     string  `json:"email,omitempty" bson:"email,omitempty"`
	Quote     string  `json:"quote" bson:"quote"`
	Stars     float64 `json:"stars" bson:"stars"`
	Approved  bool    `json:"approved" bson:"approved"`
	CreatedAt int64   `json:"createdAt" bson:"createdAt"`
	Avatar    string  `json:"avatar,omitempty" bson:"avatar,omitempty"`
}

type GalleryItem struct {
	ID        string `json:"id" bson:"_id,omitempty"`
	URL       string `json:"url" bson:"url"`
	Caption   string `json:"caption" bson:"caption"`
	CreatedAt int64  `json:"createdAt" bson:"createdAt"`
}

// AdminAuth is the credential pair stored inside the site settings document.
// It must never reach a public response.
type AdminAuth struct {
	Username     string `json:"username" bson:"username"`
	PasswordHash string `json:"passwordHash" bson:"passwordHash"`
}

type OpeningHour struct {
	Label string `json:"label" bson:"label"`
	Value string `json:"value" bson:"value"`
}

type SocialLinks struct {
	Facebook  string `json:"facebook" bson:"facebook"`
	Instagram string `json:"instagram" bson:"instagram"`
	TikTok    string `json:"tiktok" bson:"tiktok"`
}

// SiteSettings is the effective (merged) settings record. Every read of the
// site document yields a fully populated value of this type.
type SiteSettings struct {
	TodaysSpecialDishID *string       `json:"todaysSpecialDishId" bson:"todaysSpecialDishId"`
	HeroTitle           string        `json:"heroTitle" bson:"heroTitle"`
	HeroSubtitle        string        `json:"heroSubtitle" bson:"heroSubtitle"`
	HeroTitleEN         string        `json:"heroTitle_en" bson:"heroTitle_en"`
	HeroSubtitleEN      string        `json:"heroSubtitle_en" bson:"heroSubtitle_en"`
	HeroTitleRO         string        `json:"heroTitle_ro" bson:"heroTitle_ro"`
	HeroSubtitleRO      string        `json:"heroSubtitle_ro" bson:"heroSubtitle_ro"`
	WelcomeTitle        string        `json:"welcomeTitle" bson:"welcomeTitle"`
	WelcomeText         string        `json:"welcomeText" bson:"welcomeText"`
	WelcomeTitleEN      string        `json:"welcomeTitle_en" bson:"welcomeTitle_en"`
	WelcomeTextEN       string        `json:"welcomeText_en" bson:"welcomeText_en"`
	WelcomeTitleRO      string        `json:"welcomeTitle_ro" bson:"welcomeTitle_ro"`
	WelcomeTextRO       string        `json:"welcomeText_ro" bson:"welcomeText_ro"`
	LogoURL             *string       `json:"logoUrl" bson:"logoUrl"`
	HeroBackgroundURL   *string       `json:"heroBackgroundUrl" bson:"heroBackgroundUrl"`
	DefaultLogoURL      string        `json:"defaultLogoUrl" bson:"defaultLogoUrl"`
	DefaultHeroURL      string        `json:"defaultHeroUrl" bson:"defaultHeroUrl"`
	SignatureDishIDs    []string      `json:"signatureDishIds" bson:"signatureDishIds"`
	ContactPhone        string        `json:"contactPhone" bson:"contactPhone"`
	ContactAddress      string        `json:"contactAddress" bson:"contactAddress"`
	MapEmbedURL         string        `json:"mapEmbedUrl" bson:"mapEmbedUrl"`
	OpeningHours        []OpeningHour `json:"openingHours" bson:"openingHours"`
	Social              SocialLinks   `json:"social" bson:"social"`
	TaglineEN           string        `json:"tagline_en" bson:"tagline_en"`
	TaglineRO           string        `json:"tagline_ro" bson:"tagline_ro"`
	AdminAuth           *AdminAuth    `json:"adminAuth,omitempty" bson:"adminAuth,omitempty"`
	AboutTitleEN        string        `json:"aboutTitle_en" bson:"aboutTitle_en"`
	AboutTitleRO        string        `json:"aboutTitle_ro" bson:"aboutTitle_ro"`
	AboutBodyEN         string        `json:"aboutBody_en" bson:"aboutBody_en"`
	AboutBodyRO         string        `json:"aboutBody_ro" bson:"aboutBody_ro"`
}

// SitePatch mirrors SiteSettings with every field optional. A nil field means
// "not supplied" and is left untouched by a partial write and by the merge.
type SitePatch struct {
	TodaysSpecialDishID *string        `json:"todaysSpecialDishId,omitempty" bson:"todaysSpecialDishId,omitempty"`
	HeroTitle           *string        `json:"heroTitle,omitempty" bson:"heroTitle,omitempty"`
	HeroSubtitle        *string        `json:"heroSubtitle,omitempty" bson:"heroSubtitle,omitempty"`
	HeroTitleEN         *string        `json:"heroTitle_en,omitempty" bson:"heroTitle_en,omitempty"`
	HeroSubtitleEN      *string        `json:"heroSubtitle_en,omitempty" bson:"heroSubtitle_en,omitempty"`
	HeroTitleRO         *string        `json:"heroTitle_ro,omitempty" bson:"heroTitle_ro,omitempty"`
	HeroSubtitleRO      *string        `json:"heroSubtitle_ro,omitempty" bson:"heroSubtitle_ro,omitempty"`
	WelcomeTitle        *string        `json:"welcomeTitle,omitempty" bson:"welcomeTitle,omitempty"`
	WelcomeText         *string        `json:"welcomeText,omitempty" bson:"welcomeText,omitempty"`
	WelcomeTitleEN      *string        `json:"welcomeTitle_en,omitempty" bson:"welcomeTitle_en,omitempty"`
	WelcomeTextEN       *string        `json:"welcomeText_en,omitempty" bson:"welcomeText_en,omitempty"`
	WelcomeTitleRO      *string        `json:"welcomeTitle_ro,omitempty" bson:"welcomeTitle_ro,omitempty"`
	WelcomeTextRO       *string        `json:"welcomeText_ro,omitempty" bson:"welcomeText_ro,omitempty"`
	LogoURL             *string        `json:"logoUrl,omitempty" bson:"logoUrl,omitempty"`
	HeroBackgroundURL   *string        `json:"heroBackgroundUrl,omitempty" bson:"heroBackgroundUrl,omitempty"`
	DefaultLogoURL      *string        `json:"defaultLogoUrl,omitempty" bson:"defaultLogoUrl,omitempty"`
	DefaultHeroURL      *string        `json:"defaultHeroUrl,omitempty" bson:"defaultHeroUrl,omitempty"`
	SignatureDishIDs    []string       `json:"signatureDishIds,omitempty" bson:"signatureDishIds,omitempty"`
	ContactPhone        *string        `json:"contactPhone,omitempty" bson:"contactPhone,omitempty"`
	ContactAddress      *string        `json:"contactAddress,omitempty" bson:"contactAddress,omitempty"`
	MapEmbedURL         *string        `json:"mapEmbedUrl,omitempty" bson:"mapEmbedUrl,omitempty"`
	OpeningHours        []OpeningHour  `json:"openingHours,omitempty" bson:"openingHours,omitempty"`
	Social              *SocialLinks   `json:"social,omitempty" bson:"social,omitempty"`
	TaglineEN           *string        `json:"tagline_en,omitempty" bson:"tagline_en,omitempty"`
	TaglineRO           *string        `json:"tagline_ro,omitempty" bson:"tagline_ro,omitempty"`
	AdminAuth           *AdminAuth     `json:"adminAuth,omitempty" bson:"adminAuth,omitempty"`
	AboutTitleEN        *string        `json:"aboutTitle_en,omitempty" bson:"aboutTitle_en,omitempty"`
	AboutTitleRO        *string        `json:"aboutTitle_ro,omitempty" bson:"aboutTitle_ro,omitempty"`
	AboutBodyEN         *string        `json:"aboutBody_en,omitempty" bson:"aboutBody_en,omitempty"`
	AboutBodyRO         *string        `json:"aboutBody_ro,omitempty" bson:"aboutBody_ro,omitempty"`
}

// Index represents a mutation event emitted to the message queue.
type Index struct {
	EntityType string `json:"entity_type"`
	Method     string `json:"method"`
	EntityId   string `json:"entity_id"`
	ItemId     string `json:"item_id"`
	ItemType   string `json:"item_type"`
}

// Media timestamps follow the original site's convention of unix
// milliseconds; Now returns the current one.
func Now() int64 {
	return time.Now().UnixMilli()
}
