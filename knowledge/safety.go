package knowledge

// Content rules for synthesized recommendations. A recommendation that hits
// any of these patterns fails compliance; the engine still returns it but
// flags the violation so callers can audit the corpus.

// prohibitedMedications are specific drug and brand names that must never
// appear in recommendation text. Generic product categories (antihistamine,
// moisturizer, OTC cream) are allowed.
var prohibitedMedications = []string{
	"aspirin", "ibuprofen", "acetaminophen", "tylenol", "advil", "motrin",
	"prednisone", "hydrocortisone 1%", "benadryl", "zyrtec", "claritin",
	"accutane", "isotretinoin", "methotrexate", "humira", "enbrel",
	"doxycycline", "minocycline", "amoxicillin", "penicillin",
}

// dosagePatterns match dosage instructions. Compiled at Base construction.
var dosagePatterns = []string{
	`\d+\s*mg`,
	`\d+\s*ml`,
	`\d+\s*tablets?`,
	`\d+\s*pills?`,
	`take \d+`,
	`apply \d+ times`,
	`\d+\s*drops?`,
}

// diagnosisStatements assert a definitive diagnosis, which the engine must
// never do.
var diagnosisStatements = []string{
	"you have", "you are diagnosed", "this is definitely",
	"you are suffering from", "your condition is",
}

// treatmentPromises overstate what home care can achieve.
var treatmentPromises = []string{
	"will cure", "guaranteed to", "100% effective", "will definitely",
	"proven to cure", "miracle", "instant relief",
}

// procedureTerms name medical procedures. These produce warnings, not
// compliance failures: telling someone a doctor may discuss a biopsy is
// fine, recommending one is not.
var procedureTerms = []string{
	"surgery", "biopsy", "excision", "injection",
	"laser treatment", "cryotherapy", "phototherapy",
}

// Fixed safety texts appended to every recommendation set.
const (
	MedicalDisclaimer = "IMPORTANT: This AI analysis is for informational purposes only and does NOT " +
		"constitute medical diagnosis or advice. Always consult a qualified healthcare " +
		"professional for proper diagnosis and treatment. Do not delay seeking medical " +
		"care based on this analysis."

	AILimitationsNote = "This AI tool has limitations and cannot replace professional medical judgment. " +
		"It analyzes images and symptoms but cannot perform physical examinations or tests."

	PersistenceWarning = "If symptoms persist for more than 2 weeks or worsen, please consult a healthcare provider."

	SelfMedicationWarning = "Do not self-medicate for severe conditions. Professional medical evaluation is essential."
)
