package site

import "gedo/models"

const defaultAdminUser = "Gedo"

// sha256("Gedo1999") — the seed credential replaced via the admin UI.
const defaultAdminHash = "54bb80d4476d7b805cd1b91330d4e6f269e60848438b11c890dbb2e0c87cd93b"

// Defaults is the hardcoded settings record. Every read overlays the stored
// partial document on top of this; a missing key always falls back here.
func Defaults() models.SiteSettings {
	return models.SiteSettings{
		HeroTitle:      "Authentic Sudanese & Arabic Cuisine in Bucharest",
		HeroSubtitle:   "Home-cooked warmth and rich flavors from Khartoum to Obor",
		HeroTitleEN:    "Authentic Sudanese & Arabic Cuisine in Bucharest",
		HeroSubtitleEN: "Home-cooked warmth and rich flavors from Khartoum to Obor",
		HeroTitleRO:    "Bucătărie sudaneză și arabă autentică în București",
		HeroSubtitleRO: "Caldura mâncărurilor de acasă și arome bogate, de la Khartoum la Obor",
		WelcomeTitle:   "Welcome to Gedo",
		WelcomeText:    `Founded by Chef Mahmoud "Gedo" Ibrahim in 2018, our restaurant brings the authentic flavors of Sudan and the Middle East to Romania.`,
		WelcomeTitleEN: "Welcome to Gedo",
		WelcomeTextEN:  `Founded by Chef Mahmoud "Gedo" Ibrahim in 2018, our restaurant brings the authentic flavors of Sudan and the Middle East to Romania.`,
		WelcomeTitleRO: "Bine ai venit la Gedo",
		WelcomeTextRO:  "Fondat de Chef Mahmoud „Gedo” Ibrahim în 2018, restaurantul nostru aduce în România aromele autentice ale Sudanului și Orientului Mijlociu.",
		DefaultLogoURL: "/images/Gedo_Logo.png",
		DefaultHeroURL: "/images/hero_img.webp",

		SignatureDishIDs: []string{},
		ContactPhone:     "+40 721 234 567",
		ContactAddress:   "Str. Ion Maiorescu 18, Obor, Bucharest, Romania",
		MapEmbedURL:      "https://www.google.com/maps/embed?pb=!1m18!1m12!1m3!1d2848.1495794762375!2d26.11831591553598!3d44.448180579102395!2m3!1f0!2f0!3f0!3m2!1i1024!2i768!4f13.1!3m3!1m2!1s0x40b1fff4c02a0a27%3A0x4b37b3303ef1d640!2sStrada%20Ion%20Maiorescu%2018%2C%20Bucure%C8%99ti%20030671!5e0!3m2!1sen!2sro!4v1691498320221!5m2!1sen!2sro",

		OpeningHours: []models.OpeningHour{
			{Label: "Monday - Thursday", Value: "11:00 - 22:00"},
			{Label: "Friday - Saturday", Value: "11:00 - 23:00"},
			{Label: "Sunday", Value: "12:00 - 21:00"},
		},
		Social:    models.SocialLinks{},
		TaglineEN: "Sudanese & Arabic Restaurant",
		TaglineRO: "Restaurant sudanez și arab",

		AdminAuth: &models.AdminAuth{
			Username:     defaultAdminUser,
			PasswordHash: defaultAdminHash,
		},

		AboutTitleEN: "Our Story",
		AboutTitleRO: "Povestea noastră",
		AboutBodyEN:  "Gedo Restaurant was founded by Chef Issam “Gedo” Mirghani in 1999, after he fled the civil war in Sudan and found a new home in Bucharest. “Gedo” means grandfather in Sudanese Arabic, a tribute to the chef’s own grandfather who taught him the secrets of heart‑warming home cooking back in Khartoum.\n\nHidden in the streets behind Piața Obor, Gedo quickly became an insider spot for expats, Arab communities and adventurous locals looking for authentic flavours at honest prices. Everyday the menu changes depending on the freshest produce and spices imported from Egypt, Syria and Lebanon, while meats are sourced locally and prepared in our own halal butchery.\n\nWhether you come for our emblematic Lentil Soup, slow-cooked Mulah Bamia, or fragrant Lamb Mandi, you’ll always be welcomed like family – with a cup of cardamom coffee and plenty of warm stories.",
		AboutBodyRO:  "Restaurantul Gedo a fost fondat de Chef Issam „Gedo” Mirghani în 1999, după ce a fugit de războiul civil din Sudan și și-a găsit o nouă casă la București. „Gedo” înseamnă bunic în arabă sudaneză, un omagiu adus bunicului care i-a transmis secretele bucătăriei de acasă.\n\nAscuns pe străduțele din spatele Pieței Obor, Gedo a devenit rapid un loc preferat de expați, comunități arabe și localnici dornici de a descoperi arome autentice la prețuri corecte. Meniul se schimbă zilnic în funcție de cele mai proaspete ingrediente și condimente aduse din Egipt, Siria și Liban, iar carnea este selectată local și pregătită în măcelăria noastră halal.\n\nFie că vii pentru emblematica Ciorbă de linte, Mulah Bamia gătită încet sau aromatul Lamb Mandi, vei fi mereu întâmpinat ca în familie – cu o cafea cu cardamom și povești calde.",
	}
}
