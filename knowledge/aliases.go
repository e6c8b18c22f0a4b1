package knowledge

import "github.com/dermalens/triage-api/triage/entities"

// symptomAliases maps common phrasing variants to canonical symptom ids.
var symptomAliases = map[string]string{
	// Itching
	"itchy":      "itching",
	"itchy_skin": "itching",
	"itch":       "itching",
	"scratchy":   "itching",

	// Redness
	"red":       "redness",
	"red_skin":  "redness",
	"red_spots": "redness",
	"reddish":   "redness",
	"inflamed":  "inflammation",

	// Dryness
	"dry":     "dry_skin",
	"flaky":   "scaly_skin",
	"flaking": "scaly_skin",
	"scales":  "scaly_skin",
	"scaly":   "scaly_skin",
	"peeling": "skin_peeling",
	"flakes":  "scaly_skin",

	// Texture
	"rough":    "rough_texture",
	"bumpy":    "bumps",
	"bump":     "bumps",
	"lump":     "firm_bump",
	"lumpy":    "firm_bump",
	"raised":   "raised_lesion",
	"elevated": "raised_lesion",

	// Pain
	"sore":      "pain",
	"painful":   "pain",
	"hurts":     "pain",
	"aching":    "pain",
	"tender":    "tenderness",
	"sensitive": "tenderness",

	// Burning
	"burning":  "burning",
	"burns":    "burning",
	"stinging": "stinging",
	"hot":      "warmth",

	// Bleeding
	"bleeding": "bleeding",
	"bleeds":   "bleeding",
	"blood":    "bleeding",

	// Swelling
	"swollen":  "swelling",
	"swelling": "swelling",
	"puffy":    "swelling",
	"inflated": "swelling",

	// Change
	"changing":       "evolving_shape",
	"growing":        "rapid_growth",
	"spreading":      "spreading",
	"getting_bigger": "rapid_growth",
	"enlarging":      "rapid_growth",

	// Crusting
	"crusty": "crusting",
	"crust":  "crusting",
	"scab":   "crusting",
	"scabby": "crusting",

	// Moles and marks
	"mole":    "round_mole",
	"spot":    "spots",
	"patch":   "patches",
	"patches": "patches",
	"mark":    "spots",

	// Color
	"discolored": "discoloration",
	"dark_spot":  "brown_patches",
	"brown_spot": "brown_patches",
	"white_spot": "white_patches",
	"purple":    "purple_spots",
	"pink":      "redness",

	// Blisters
	"blister":       "blisters",
	"blistering":    "blisters",
	"water_blister": "fluid_filled_bumps",
	"bubble":        "blisters",

	// Rash
	"rash":     "rash",
	"breakout": "rash",
	"eruption": "rash",
	"outbreak": "rash",

	// Acne
	"pimple":    "pimples",
	"zit":       "pimples",
	"acne":      "pimples",
	"blackhead": "blackheads",
	"whitehead": "whiteheads",
	"cyst":      "cysts",
	"nodule":    "nodules",

	// Fungal
	"ringworm":      "ring_shaped_rash",
	"ring":          "ring_shaped_rash",
	"athletes_foot": "tinea",
	"jock_itch":     "tinea",

	// Sun
	"sunburn":    "sunburn",
	"sun_damage": "sun_damaged_skin",
	"tan":        "sun_damaged_skin",
	"freckle":    "freckles",

	// Eczema
	"eczema":     "patches",
	"dermatitis": "inflammation",
	"atopic":     "patches",

	// Psoriasis
	"plaque":        "thick_plaques",
	"silvery":       "silvery_scales",
	"silver_scales": "silvery_scales",

	// Vitiligo
	"depigmented":     "depigmentation",
	"loss_of_pigment": "loss_of_color",
	"pale_patch":      "white_patches",

	// Warts
	"wart":         "rough_bump",
	"verruca":      "rough_bump",
	"plantar_wart": "rough_bump",

	// General
	"lesion":    "skin_lesions",
	"wound":     "sore_that_wont_heal",
	"ulcer":     "skin_ulcers",
	"open_sore": "sore_that_wont_heal",
	"infection": "infection_signs",
	"infected":  "infection_signs",
	"pus":       "infection_signs",
	"oozing":    "oozing",
	"weeping":   "oozing",
	"discharge": "oozing",
}

// modifierWords are the intensity modifiers the normalizer strips from a
// symptom phrase, checked in the order high, moderate, low.
var modifierWords = map[entities.Intensity][]string{
	entities.IntensityHigh: {
		"very", "extremely", "severely", "intensely", "unbearably", "terribly",
		"really", "super", "incredibly", "excruciating", "constant", "persistent",
	},
	entities.IntensityModerate: {
		"moderately", "somewhat", "fairly", "quite", "noticeably", "frequently",
	},
	entities.IntensityLow: {
		"slightly", "mildly", "a_little", "barely", "occasionally", "sometimes", "minor",
	},
}

// intensityWords are the descriptors the severity assessor counts in the
// joined symptom text. Distinct from modifierWords: these stay in the text.
var intensityWords = map[entities.Intensity][]string{
	entities.IntensityHigh: {
		"very", "extremely", "severe", "intense", "unbearable", "constant",
		"excruciating", "terrible", "awful", "worst", "agonizing",
	},
	entities.IntensityModerate: {
		"moderate", "noticeable", "persistent", "frequent", "considerable",
		"significant", "bothersome", "uncomfortable",
	},
	entities.IntensityLow: {
		"mild", "slight", "occasional", "minor", "barely", "little", "faint",
	},
}

// areaWords indicate spread; durationWords indicate chronicity.
var areaWords = []string{
	"widespread", "large", "spreading", "multiple", "extensive",
	"whole", "entire", "all_over", "everywhere", "covering",
}

var durationWords = map[string][]string{
	"acute":   {"sudden", "new", "recent", "just_started", "appeared_today"},
	"chronic": {"long_time", "months", "years", "persistent", "recurring", "chronic", "ongoing"},
}

// keywordPatternTable maps free-text phrase patterns to canonical symptoms.
// Order matters: the first matching pattern becomes the primary keyword.
var keywordPatternTable = []struct {
	Pattern string
	Symptom string
}{
	{`itchy?\s*skin`, "itching"},
	{`skin\s*itch`, "itching"},
	{`scratching`, "itching"},
	{`want\s*to\s*scratch`, "itching"},

	{`red\s*spot`, "redness"},
	{`red\s*area`, "redness"},
	{`red\s*skin`, "redness"},
	{`looks?\s*red`, "redness"},
	{`turned?\s*red`, "redness"},

	{`hurts?\s*a?\s*lot`, "pain"},
	{`painful\s*area`, "pain"},
	{`sore\s*spot`, "pain"},
	{`tender\s*to\s*touch`, "tenderness"},

	{`dry\s*skin`, "dry_skin"},
	{`skin\s*dry`, "dry_skin"},
	{`flaky\s*skin`, "scaly_skin"},
	{`peeling\s*skin`, "skin_peeling"},

	{`getting\s*bigger`, "rapid_growth"},
	{`growing\s*fast`, "rapid_growth"},
	{`spreading\s*fast`, "spreading"},
	{`new\s*spot`, "new_growth"},

	{`bleeds?\s*easily`, "bleeding"},
	{`won'?t\s*stop\s*bleeding`, "bleeding"},
	{`blood\s*coming`, "bleeding"},

	{`rough\s*texture`, "rough_texture"},
	{`bumpy\s*skin`, "bumps"},
	{`raised\s*area`, "raised_lesion"},
	{`flat\s*spot`, "flat_lesion"},

	{`dark\s*spot`, "brown_patches"},
	{`brown\s*spot`, "brown_patches"},
	{`white\s*spot`, "white_patches"},
	{`purple\s*spot`, "purple_spots"},
	{`discolored?\s*area`, "discoloration"},

	{`pimple`, "pimples"},
	{`zit`, "pimples"},
	{`blackhead`, "blackheads"},
	{`whitehead`, "whiteheads"},
	{`oily\s*skin`, "oily_skin"},

	{`ring\s*shape`, "ring_shaped_rash"},
	{`circular\s*rash`, "ring_shaped_rash"},
	{`athlete'?s?\s*foot`, "tinea"},
}

// symptomCategories groups the vocabulary for UI display.
var symptomCategories = []struct {
	Name     string
	Symptoms []string
}{
	{"Skin Appearance", []string{
		"redness", "patches", "spots", "bumps", "scaly_skin",
		"discoloration", "brown_patches", "white_patches", "purple_spots",
		"pearly_bump", "flat_lesion", "raised_lesion", "rash", "hives",
	}},
	{"Sensations", []string{
		"itching", "burning", "pain", "tenderness", "stinging",
		"numbness", "tingling", "warmth", "soreness",
	}},
	{"Texture Changes", []string{
		"dry_skin", "rough_texture", "waxy_growth", "firm_bump",
		"raised_surface", "smooth_border", "thick_plaques", "scaly_skin",
		"thickened_skin", "soft_texture",
	}},
	{"Lesion Changes", []string{
		"rapid_growth", "evolving_shape", "color_variation",
		"irregular_border", "changing_shape", "spreading", "new_growth",
		"size_increase",
	}},
	{"Surface Issues", []string{
		"bleeding", "crusting", "oozing", "ulceration", "peeling",
		"cracking", "blisters", "erosions", "skin_peeling",
	}},
	{"Acne Symptoms", []string{
		"pimples", "blackheads", "whiteheads", "oily_skin",
		"cysts", "nodules", "pustules", "papules", "inflammation",
	}},
	{"Fungal Signs", []string{
		"ring_shaped_rash", "red_border", "clear_center",
		"nail_changes", "hair_loss", "athlete_foot",
	}},
	{"Vascular Signs", []string{
		"visible_blood_vessels", "spider_veins", "flushing",
		"facial_redness", "birthmark", "hemangioma",
	}},
	{"Systemic Symptoms", []string{
		"fever", "fatigue", "joint_pain", "swelling",
		"mouth_sores", "eye_irritation",
	}},
	{"Warning Signs", []string{
		"sore_that_wont_heal", "rapid_growth", "bleeding",
		"infection_signs", "satellite_lesions", "lymph_node_swelling",
	}},
}
