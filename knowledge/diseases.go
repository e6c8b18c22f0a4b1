package knowledge

import "github.com/dermalens/triage-api/triage/entities"

// UnknownDisease is the generic fallback profile name used when a classifier
// label does not resolve to any known condition.
const UnknownDisease = "Unknown"

// diseaseProfiles merges the symptom sets, severity bounds and contradiction
// lists for every supported classifier label, including the legacy HAM10000
// names kept for dataset compatibility.
var diseaseProfiles = []entities.DiseaseProfile{
	{
		Name:               "Acne",
		Common:             []string{"pimples", "blackheads", "whiteheads", "oily_skin", "bumps"},
		Optional:           []string{"redness", "inflammation", "scarring", "pustules", "papules"},
		SeverityIndicators: []string{"cysts", "nodules", "widespread", "deep_lesions", "severe_scarring"},
		Baseline:           entities.SeverityMild,
		MaxEscalation:      entities.SeverityModerate,
		SevereIf:           []string{"cysts", "nodules", "widespread", "severe_scarring", "deep_lesions"},
		Contradictions:     []string{"white_patches", "depigmentation", "ring_shaped_rash", "butterfly_rash"},
		Description:        "Common skin condition affecting hair follicles and oil glands",
	},
	{
		Name:               "Actinic Keratosis",
		Common:             []string{"rough_patches", "scaly_skin", "dry_skin", "crusty_patches", "sun_damaged_skin"},
		Optional:           []string{"redness", "itching", "burning", "tenderness", "flat_lesion"},
		SeverityIndicators: []string{"bleeding", "rapid_growth", "multiple_lesions", "large_area", "hardening"},
		Baseline:           entities.SeverityModerate,
		MaxEscalation:      entities.SeveritySevere,
		SevereIf:           []string{"bleeding", "rapid_growth", "multiple_lesions", "large_area", "hardening"},
		Description:        "Pre-cancerous skin condition caused by sun damage that requires monitoring",
	},
	{
		Name:               "Benign Tumors",
		Common:             []string{"lump", "firm_bump", "slow_growing", "painless_mass", "round_shape"},
		Optional:           []string{"skin_colored", "movable", "soft_texture", "smooth_surface"},
		SeverityIndicators: []string{"rapid_growth", "pain", "size_increase", "skin_changes"},
		Baseline:           entities.SeverityMild,
		MaxEscalation:      entities.SeverityModerate,
		SevereIf:           []string{"rapid_growth", "pain", "size_increase", "skin_changes"},
		Description:        "Non-cancerous growth that is usually harmless but should be monitored",
	},
	{
		Name:               "Bullous",
		Common:             []string{"blisters", "fluid_filled_bumps", "skin_peeling", "raw_skin", "erosions"},
		Optional:           []string{"itching", "burning", "pain", "redness", "crusting"},
		SeverityIndicators: []string{"widespread_blisters", "mouth_sores", "infection_signs", "fever", "large_area"},
		Baseline:           entities.SeverityModerate,
		MaxEscalation:      entities.SeveritySevere,
		SevereIf:           []string{"widespread_blisters", "mouth_sores", "infection_signs", "fever", "large_area"},
		Description:        "Blistering skin condition that may require medical treatment",
	},
	{
		Name:               "Candidiasis",
		Common:             []string{"red_rash", "itching", "white_patches", "skin_folds_affected", "moist_areas"},
		Optional:           []string{"burning", "soreness", "cracking", "scaling", "satellite_lesions"},
		SeverityIndicators: []string{"spreading", "severe_itching", "infection_signs", "fever", "widespread"},
		Baseline:           entities.SeverityMild,
		MaxEscalation:      entities.SeverityModerate,
		SevereIf:           []string{"spreading", "severe_itching", "infection_signs", "fever", "widespread"},
		Contradictions:     []string{"silvery_scales", "thick_plaques"},
		Description:        "Fungal infection that typically responds well to treatment",
	},
	{
		Name:               "Drug Eruption",
		Common:             []string{"rash", "hives", "redness", "itching", "widespread_spots"},
		Optional:           []string{"swelling", "blisters", "peeling", "fever", "joint_pain"},
		SeverityIndicators: []string{"mouth_sores", "eye_involvement", "severe_peeling", "fever", "breathing_difficulty"},
		Baseline:           entities.SeverityModerate,
		MaxEscalation:      entities.SeverityCritical,
		SevereIf:           []string{"mouth_sores", "eye_involvement", "severe_peeling", "fever", "breathing_difficulty"},
		Description:        "Skin reaction to medication - may require immediate medical attention",
	},
	{
		Name:               "Eczema",
		Common:             []string{"itching", "redness", "dry_skin", "patches", "inflammation"},
		Optional:           []string{"oozing", "crusting", "thickened_skin", "scaly_skin", "cracking"},
		SeverityIndicators: []string{"bleeding", "infection_signs", "large_area", "sleep_disruption", "severe_itching"},
		Baseline:           entities.SeverityMild,
		MaxEscalation:      entities.SeverityModerate,
		SevereIf:           []string{"bleeding", "infection_signs", "large_area", "sleep_disruption", "severe_itching"},
		Contradictions:     []string{"silvery_scales", "thick_plaques"},
		Description:        "Chronic inflammatory skin condition that can be managed with proper care",
	},
	{
		Name:               "Infestations/Bites",
		Common:             []string{"itching", "red_bumps", "bite_marks", "small_spots", "clustered_bumps"},
		Optional:           []string{"swelling", "redness", "pain", "blisters", "hives"},
		SeverityIndicators: []string{"severe_itching", "infection_signs", "spreading", "allergic_reaction", "fever"},
		Baseline:           entities.SeverityMild,
		MaxEscalation:      entities.SeverityModerate,
		SevereIf:           []string{"severe_itching", "infection_signs", "spreading", "allergic_reaction", "fever"},
		Description:        "Skin reaction to insect bites or infestations",
	},
	{
		Name:               "Lichen",
		Common:             []string{"purple_bumps", "flat_topped_lesions", "itching", "shiny_surface", "white_lines"},
		Optional:           []string{"scaly_skin", "mouth_sores", "nail_changes", "hair_loss", "redness"},
		SeverityIndicators: []string{"widespread", "severe_itching", "scarring", "nail_damage", "mouth_ulcers"},
		Baseline:           entities.SeverityModerate,
		MaxEscalation:      entities.SeveritySevere,
		SevereIf:           []string{"widespread", "severe_itching", "scarring", "nail_damage", "mouth_ulcers"},
		Description:        "Inflammatory condition affecting skin, nails, or mucous membranes",
	},
	{
		Name:               "Lupus",
		Common:             []string{"butterfly_rash", "facial_redness", "sun_sensitivity", "skin_lesions", "discoid_rash"},
		Optional:           []string{"joint_pain", "fatigue", "fever", "hair_loss", "mouth_sores"},
		SeverityIndicators: []string{"widespread_rash", "kidney_problems", "severe_fatigue", "chest_pain", "fever"},
		Baseline:           entities.SeverityModerate,
		MaxEscalation:      entities.SeveritySevere,
		SevereIf:           []string{"widespread_rash", "kidney_problems", "severe_fatigue", "chest_pain", "fever"},
		Description:        "Autoimmune condition that can affect skin and other organs",
	},
	{
		Name:               "Moles",
		Common:             []string{"round_mole", "uniform_color", "smooth_border", "flat_or_raised", "brown_color"},
		Optional:           []string{"multiple_moles", "small_size", "symmetrical", "stable_appearance"},
		SeverityIndicators: []string{"changing_shape", "irregular_border", "color_change", "bleeding", "itching"},
		Baseline:           entities.SeverityMild,
		MaxEscalation:      entities.SeveritySevere,
		SevereIf:           []string{"changing_shape", "irregular_border", "color_change", "bleeding", "rapid_growth"},
		Contradictions:     []string{"rapid_growth", "irregular_border", "color_variation", "ulceration"},
		Description:        "Common skin growth - monitor for changes using ABCDE criteria",
	},
	{
		Name:               "Psoriasis",
		Common:             []string{"red_patches", "silvery_scales", "dry_skin", "itching", "thick_plaques"},
		Optional:           []string{"burning", "soreness", "nail_changes", "joint_pain", "cracking"},
		SeverityIndicators: []string{"widespread", "joint_swelling", "severe_scaling", "bleeding", "large_area"},
		Baseline:           entities.SeverityModerate,
		MaxEscalation:      entities.SeveritySevere,
		SevereIf:           []string{"widespread", "joint_swelling", "severe_scaling", "bleeding", "large_area"},
		Contradictions:     []string{"oozing", "weeping", "moist_areas"},
		Description:        "Chronic autoimmune condition causing rapid skin cell buildup",
	},
	{
		Name:               "Rosacea",
		Common:             []string{"facial_redness", "flushing", "visible_blood_vessels", "bumps", "pimples"},
		Optional:           []string{"burning", "stinging", "dry_skin", "eye_irritation", "swelling"},
		SeverityIndicators: []string{"nose_enlargement", "severe_redness", "eye_problems", "thickened_skin", "persistent_flushing"},
		Baseline:           entities.SeverityMild,
		MaxEscalation:      entities.SeverityModerate,
		SevereIf:           []string{"nose_enlargement", "severe_redness", "eye_problems", "thickened_skin", "persistent_flushing"},
		Contradictions:     []string{"blackheads", "whiteheads"},
		Description:        "Chronic facial skin condition causing redness and visible blood vessels",
	},
	{
		Name:               "Seborrheic Keratoses",
		Common:             []string{"waxy_growth", "brown_patches", "stuck_on_appearance", "rough_texture", "raised_lesion"},
		Optional:           []string{"itching", "multiple_spots", "tan_color", "black_color", "scaly_surface"},
		SeverityIndicators: []string{"rapid_change", "bleeding", "irregular_border", "pain", "inflammation"},
		Baseline:           entities.SeverityMild,
		MaxEscalation:      entities.SeverityModerate,
		SevereIf:           []string{"rapid_change", "bleeding", "irregular_border", "pain", "inflammation"},
		Description:        "Common benign skin growth, typically harmless",
	},
	{
		Name:               "Skin Cancer",
		Common:             []string{"new_growth", "changing_mole", "sore_that_wont_heal", "irregular_border", "color_variation"},
		Optional:           []string{"bleeding", "crusting", "itching", "pain", "ulceration"},
		SeverityIndicators: []string{"rapid_growth", "spreading", "satellite_lesions", "lymph_node_swelling", "large_size"},
		Baseline:           entities.SeveritySevere,
		MaxEscalation:      entities.SeverityCritical,
		SevereIf:           []string{"rapid_growth", "spreading", "satellite_lesions", "lymph_node_swelling", "ulceration"},
		Description:        "Malignant skin condition requiring immediate medical evaluation",
	},
	{
		Name:               "Sun/Sunlight Damage",
		Common:             []string{"sunburn", "redness", "peeling", "dry_skin", "freckles"},
		Optional:           []string{"blisters", "pain", "swelling", "itching", "skin_discoloration"},
		SeverityIndicators: []string{"severe_blistering", "fever", "chills", "nausea", "widespread_damage"},
		Baseline:           entities.SeverityMild,
		MaxEscalation:      entities.SeverityModerate,
		SevereIf:           []string{"severe_blistering", "fever", "chills", "nausea", "widespread_damage"},
		Contradictions:     []string{"white_patches", "depigmentation"},
		Description:        "Skin damage from UV exposure - protect from further sun exposure",
	},
	{
		Name:               "Tinea",
		Common:             []string{"ring_shaped_rash", "itching", "scaly_skin", "red_border", "clear_center"},
		Optional:           []string{"burning", "cracking", "blisters", "hair_loss", "nail_changes"},
		SeverityIndicators: []string{"spreading", "severe_itching", "infection_signs", "widespread", "nail_involvement"},
		Baseline:           entities.SeverityMild,
		MaxEscalation:      entities.SeverityModerate,
		SevereIf:           []string{"spreading", "severe_itching", "infection_signs", "widespread", "nail_involvement"},
		Contradictions:     []string{"pus", "yellow_discharge"},
		Description:        "Fungal skin infection that responds well to antifungal treatment",
	},
	{
		Name:               "Unknown/Normal",
		Common:             []string{"normal_skin", "no_symptoms", "healthy_appearance"},
		Optional:           []string{"minor_blemish", "temporary_redness"},
		SeverityIndicators: []string{},
		Baseline:           entities.SeverityMild,
		MaxEscalation:      entities.SeverityMild,
		SevereIf:           []string{},
		Description:        "Skin appears normal or condition is unidentified",
	},
	{
		Name:               "Vascular Tumors",
		Common:             []string{"red_spots", "purple_patches", "visible_blood_vessels", "birthmark", "hemangioma"},
		Optional:           []string{"swelling", "warmth", "tenderness", "raised_lesion", "soft_texture"},
		SeverityIndicators: []string{"rapid_growth", "bleeding", "pain", "ulceration", "large_size"},
		Baseline:           entities.SeverityMild,
		MaxEscalation:      entities.SeverityModerate,
		SevereIf:           []string{"rapid_growth", "bleeding", "pain", "ulceration", "large_size"},
		Contradictions:     []string{"brown_patches", "hyperpigmentation"},
		Description:        "Blood vessel-related growth, usually benign",
	},
	{
		Name:               "Vasculitis",
		Common:             []string{"purple_spots", "red_spots", "skin_ulcers", "rash", "palpable_purpura"},
		Optional:           []string{"pain", "fever", "fatigue", "joint_pain", "numbness"},
		SeverityIndicators: []string{"widespread", "organ_involvement", "severe_ulcers", "fever", "kidney_problems"},
		Baseline:           entities.SeverityModerate,
		MaxEscalation:      entities.SeveritySevere,
		SevereIf:           []string{"widespread", "organ_involvement", "severe_ulcers", "fever", "kidney_problems"},
		Contradictions:     []string{"oily_skin", "blackheads", "whiteheads"},
		Description:        "Inflammation of blood vessels that may require medical treatment",
	},
	{
		Name:               "Vitiligo",
		Common:             []string{"white_patches", "loss_of_color", "depigmentation", "symmetrical_patches", "pale_skin"},
		Optional:           []string{"premature_graying", "eye_color_change", "mouth_discoloration"},
		SeverityIndicators: []string{"spreading", "widespread", "rapid_progression", "facial_involvement"},
		Baseline:           entities.SeverityMild,
		MaxEscalation:      entities.SeverityModerate,
		SevereIf:           []string{"spreading", "widespread", "rapid_progression", "facial_involvement"},
		Contradictions:     []string{"brown_patches", "hyperpigmentation", "pimples", "oily_skin"},
		Description:        "Autoimmune condition causing loss of skin pigmentation",
	},
	{
		Name:               "Warts",
		Common:             []string{"rough_bump", "skin_colored_growth", "cauliflower_texture", "small_dots", "raised_lesion"},
		Optional:           []string{"pain", "tenderness", "multiple_warts", "clustering", "itching"},
		SeverityIndicators: []string{"spreading", "large_size", "bleeding", "rapid_growth", "genital_area"},
		Baseline:           entities.SeverityMild,
		MaxEscalation:      entities.SeverityModerate,
		SevereIf:           []string{"spreading", "large_size", "bleeding", "rapid_growth", "genital_area"},
		Description:        "Viral skin growth caused by HPV, usually harmless",
	},

	// Legacy HAM10000 labels kept for dataset compatibility.
	{
		Name:               "Actinic keratoses",
		Common:             []string{"rough_patches", "scaly_skin", "dry_skin", "crusty_patches"},
		Optional:           []string{"redness", "itching", "burning", "tenderness"},
		SeverityIndicators: []string{"bleeding", "rapid_growth", "multiple_lesions", "large_area"},
		Baseline:           entities.SeverityModerate,
		MaxEscalation:      entities.SeveritySevere,
		SevereIf:           []string{"bleeding", "rapid_growth", "multiple_lesions", "large_area"},
		Description:        "Pre-cancerous skin condition that requires monitoring",
	},
	{
		Name:               "Basal cell carcinoma",
		Common:             []string{"pearly_bump", "flat_lesion", "sore_that_wont_heal", "bleeding"},
		Optional:           []string{"itching", "crusting", "shiny_appearance", "visible_blood_vessels"},
		SeverityIndicators: []string{"rapid_growth", "large_size", "ulceration", "pain"},
		Baseline:           entities.SeveritySevere,
		MaxEscalation:      entities.SeverityCritical,
		SevereIf:           []string{"rapid_growth", "large_size", "ulceration", "pain"},
		Description:        "Skin cancer that requires medical treatment",
	},
	{
		Name:               "Benign keratosis-like lesions",
		Common:             []string{"waxy_growth", "brown_patches", "stuck_on_appearance", "rough_texture"},
		Optional:           []string{"itching", "multiple_spots", "raised_surface"},
		SeverityIndicators: []string{"rapid_change", "bleeding", "irregular_border"},
		Baseline:           entities.SeverityMild,
		MaxEscalation:      entities.SeverityModerate,
		SevereIf:           []string{"rapid_change", "bleeding", "irregular_border"},
		Description:        "Non-cancerous growth, usually harmless",
	},
	{
		Name:               "Dermatofibroma",
		Common:             []string{"firm_bump", "brown_color", "dimpling_when_pinched", "small_nodule"},
		Optional:           []string{"itching", "tenderness", "pink_color"},
		SeverityIndicators: []string{"rapid_growth", "pain", "bleeding"},
		Baseline:           entities.SeverityMild,
		MaxEscalation:      entities.SeverityModerate,
		SevereIf:           []string{"rapid_growth", "pain", "bleeding"},
		Description:        "Benign skin nodule, typically harmless",
	},
	{
		Name:               "Melanoma",
		Common:             []string{"asymmetric_mole", "irregular_border", "color_variation", "large_diameter"},
		Optional:           []string{"itching", "bleeding", "evolving_shape", "new_mole"},
		SeverityIndicators: []string{"rapid_growth", "ulceration", "satellite_lesions", "pain"},
		Baseline:           entities.SeverityCritical,
		MaxEscalation:      entities.SeverityCritical,
		SevereIf:           []string{"rapid_growth", "ulceration", "satellite_lesions", "pain"},
		Description:        "Serious skin cancer requiring immediate medical attention",
	},
	{
		Name:               "Melanocytic nevi",
		Common:             []string{"round_mole", "uniform_color", "smooth_border", "flat_or_raised"},
		Optional:           []string{"brown_color", "multiple_moles", "small_size"},
		SeverityIndicators: []string{"changing_shape", "irregular_border", "color_change"},
		Baseline:           entities.SeverityMild,
		MaxEscalation:      entities.SeverityModerate,
		SevereIf:           []string{"changing_shape", "irregular_border", "color_change", "rapid_growth"},
		Description:        "Common mole, usually benign",
	},
	{
		Name:               "Vascular lesions",
		Common:             []string{"red_spots", "purple_patches", "visible_blood_vessels", "birthmark"},
		Optional:           []string{"swelling", "warmth", "tenderness"},
		SeverityIndicators: []string{"rapid_growth", "bleeding", "pain", "ulceration"},
		Baseline:           entities.SeverityMild,
		MaxEscalation:      entities.SeverityModerate,
		SevereIf:           []string{"rapid_growth", "bleeding", "pain", "ulceration"},
		Description:        "Blood vessel-related skin condition",
	},

	{
		Name:               UnknownDisease,
		Common:             []string{"rash", "spots", "discoloration", "bumps"},
		Optional:           []string{"itching", "pain", "swelling", "redness"},
		SeverityIndicators: []string{"bleeding", "rapid_spread", "infection_signs"},
		Baseline:           entities.SeverityModerate,
		MaxEscalation:      entities.SeveritySevere,
		SevereIf:           []string{},
		Description:        "Unknown condition",
	},
}

// Diseases whose mere presence as a label escalates urgency.
var (
	redFlagDiseases    = []string{"Melanoma", "Skin Cancer", "Basal cell carcinoma"}
	yellowFlagDiseases = []string{"Drug Eruption", "Bullous", "Vasculitis", "Lupus", "Actinic Keratosis"}
)

// redFlagSymptoms are universal warning keywords that lift the escalation
// clamp and can drive urgency to immediate regardless of disease.
var redFlagSymptoms = []string{
	"bleeding", "infection", "rapid_spread", "severe_pain", "ulceration",
	"breathing_difficulty", "fever", "mouth_sores", "eye_involvement",
	"swollen_lymph_nodes", "chest_pain", "difficulty_swallowing",
}
