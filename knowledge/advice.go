package knowledge

import "github.com/dermalens/triage-api/triage/entities"

// adviceTemplates holds the severity-tiered recommendation corpus per
// disease. Tiers are mild, moderate and severe; critical requests fall back
// through the synthesizer's lookup chain. Text here must stay compliant with
// the prohibited-content rules in safety.go: no named prescription drugs, no
// dosages, no diagnosis assertions, no cure promises.
var adviceTemplates = map[string]map[entities.Severity]entities.AdviceTemplate{
	"Acne": {
		entities.SeverityMild: {
			GeneralAdvice:   "Acne is a common skin condition affecting hair follicles and oil glands.",
			ImmediateCare:   []string{"Wash face twice daily with gentle cleanser", "Use non-comedogenic products"},
			HomeRemedies:    []string{"Apply benzoyl peroxide spot treatment", "Use oil-free moisturizer", "Try tea tree oil"},
			Precautions:     []string{"Don't pop or squeeze pimples", "Avoid touching face", "Change pillowcases regularly"},
			LifestyleTips:   []string{"Stay hydrated", "Eat balanced diet", "Manage stress"},
			WhenToSeeDoctor: "If acne persists for more than three months or causes scarring",
		},
		entities.SeverityModerate: {
			GeneralAdvice:   "Moderate acne may benefit from prescription treatments.",
			ImmediateCare:   []string{"Continue gentle cleansing routine", "Consider OTC retinoids"},
			HomeRemedies:    []string{"Use salicylic acid products", "Apply ice to reduce inflammation"},
			Precautions:     []string{"Avoid harsh scrubbing", "Don't use multiple acne products at once"},
			LifestyleTips:   []string{"Track triggers in diet", "Get adequate sleep"},
			WhenToSeeDoctor: "Schedule appointment with dermatologist for prescription options",
		},
		entities.SeveritySevere: {
			GeneralAdvice:   "Severe acne requires professional treatment to prevent permanent scarring.",
			ImmediateCare:   []string{"See dermatologist urgently", "Do not attempt to extract cysts"},
			HomeRemedies:    []string{"Gentle cleansing only", "Ice for inflammation"},
			Precautions:     []string{"Avoid all picking/squeezing", "Don't use harsh products"},
			LifestyleTips:   []string{"Stress management is crucial", "Consider dietary changes"},
			WhenToSeeDoctor: "Immediately - prescription acne treatment may be needed",
		},
	},
	"Actinic Keratosis": {
		entities.SeverityMild: {
			GeneralAdvice:   "Actinic keratoses are rough, scaly patches caused by sun damage. They are pre-cancerous.",
			ImmediateCare:   []string{"Protect from sun immediately", "Apply broad-spectrum sunscreen daily"},
			HomeRemedies:    []string{"Use fragrance-free moisturizers", "Apply aloe vera for comfort"},
			Precautions:     []string{"Avoid peak sun hours", "Wear protective clothing and hats"},
			LifestyleTips:   []string{"Regular skin self-exams monthly", "Healthy diet with antioxidants"},
			WhenToSeeDoctor: "If patch grows, bleeds, or changes appearance",
		},
		entities.SeverityModerate: {
			GeneralAdvice:   "Multiple actinic keratoses require professional evaluation and treatment.",
			ImmediateCare:   []string{"Schedule dermatologist appointment", "Document all lesions with photos"},
			HomeRemedies:    []string{"Continue strict sun protection", "Keep skin moisturized"},
			Precautions:     []string{"Do not remove lesions yourself", "Avoid tanning beds completely"},
			LifestyleTips:   []string{"Annual skin cancer screenings", "Consider vitamin D supplements"},
			WhenToSeeDoctor: "As soon as possible for professional evaluation",
		},
		entities.SeveritySevere: {
			GeneralAdvice:   "Severe actinic keratoses significantly increase skin cancer risk.",
			ImmediateCare:   []string{"Seek dermatological care promptly"},
			HomeRemedies:    []string{"Gentle skin care only"},
			Precautions:     []string{"Do not delay medical consultation"},
			LifestyleTips:   []string{"Regular dermatology follow-ups every few months"},
			WhenToSeeDoctor: "Immediately - professional treatment needed",
		},
	},
	"Benign Tumors": {
		entities.SeverityMild: {
			GeneralAdvice:   "Benign tumors are non-cancerous growths that are usually harmless.",
			ImmediateCare:   []string{"No urgent care typically needed", "Monitor for changes"},
			HomeRemedies:    []string{"Keep area clean", "Avoid irritation"},
			Precautions:     []string{"Do not attempt removal yourself", "Protect from trauma"},
			LifestyleTips:   []string{"Regular skin checks", "Maintain overall health"},
			WhenToSeeDoctor: "If growth changes size, shape, or becomes painful",
		},
		entities.SeverityModerate: {
			GeneralAdvice:   "Larger or symptomatic benign tumors may need evaluation.",
			ImmediateCare:   []string{"Schedule dermatologist appointment", "Document size and changes"},
			HomeRemedies:    []string{"Keep area protected", "Avoid friction"},
			Precautions:     []string{"Don't attempt to remove or reduce", "Watch for rapid changes"},
			LifestyleTips:   []string{"Regular monitoring", "Photograph for tracking"},
			WhenToSeeDoctor: "Soon - to confirm benign nature and discuss removal options",
		},
		entities.SeveritySevere: {
			GeneralAdvice:   "Large or rapidly changing growths need prompt evaluation.",
			ImmediateCare:   []string{"See dermatologist promptly", "Note any recent changes"},
			HomeRemedies:    []string{"Gentle care only"},
			Precautions:     []string{"Do not delay evaluation", "Protect from injury"},
			LifestyleTips:   []string{"Follow medical advice closely"},
			WhenToSeeDoctor: "As soon as possible - further evaluation may be recommended",
		},
	},
	"Bullous": {
		entities.SeverityMild: {
			GeneralAdvice:   "Blistering conditions require careful management to prevent infection.",
			ImmediateCare:   []string{"Keep blisters intact if possible", "Apply sterile bandage"},
			HomeRemedies:    []string{"Cool compresses", "Aloe vera gel", "Keep area clean"},
			Precautions:     []string{"Don't pop blisters", "Avoid friction on affected area"},
			LifestyleTips:   []string{"Wear loose clothing", "Stay hydrated"},
			WhenToSeeDoctor: "If blisters are widespread, infected, or accompanied by fever",
		},
		entities.SeverityModerate: {
			GeneralAdvice:   "Multiple or recurring blisters need medical evaluation.",
			ImmediateCare:   []string{"See doctor for proper evaluation", "Keep area protected"},
			HomeRemedies:    []string{"Gentle wound care only"},
			Precautions:     []string{"Watch for signs of infection"},
			LifestyleTips:   []string{"Document triggers if known"},
			WhenToSeeDoctor: "Soon - to determine underlying cause",
		},
		entities.SeveritySevere: {
			GeneralAdvice:   "Extensive blistering can indicate serious conditions requiring urgent care.",
			ImmediateCare:   []string{"Seek medical attention immediately", "Keep blisters covered"},
			HomeRemedies:    []string{"Do not attempt home treatment for severe cases"},
			Precautions:     []string{"Watch for fever or spreading redness", "Stay hydrated"},
			LifestyleTips:   []string{"Rest and avoid physical activity"},
			WhenToSeeDoctor: "Immediately - severe bullous conditions can be life-threatening",
		},
	},
	"Candidiasis": {
		entities.SeverityMild: {
			GeneralAdvice:   "Candidiasis is a fungal infection that responds well to antifungal treatment.",
			ImmediateCare:   []string{"Keep affected area clean and dry", "Use OTC antifungal cream"},
			HomeRemedies:    []string{"Apply plain yogurt topically", "Use coconut oil", "Keep skin folds dry"},
			Precautions:     []string{"Avoid tight clothing", "Change out of wet clothes promptly"},
			LifestyleTips:   []string{"Reduce sugar intake", "Wear breathable fabrics", "Maintain good hygiene"},
			WhenToSeeDoctor: "If infection doesn't improve within two weeks or spreads",
		},
		entities.SeverityModerate: {
			GeneralAdvice:   "Persistent or spreading candidiasis may need prescription antifungals.",
			ImmediateCare:   []string{"Continue OTC treatment", "Keep area very dry"},
			HomeRemedies:    []string{"Probiotics may help", "Apple cider vinegar diluted rinse"},
			Precautions:     []string{"Check blood sugar if recurring", "Avoid irritants"},
			LifestyleTips:   []string{"Consider dietary changes", "Boost immune system"},
			WhenToSeeDoctor: "Schedule appointment for prescription-strength treatment",
		},
		entities.SeveritySevere: {
			GeneralAdvice:   "Severe or systemic candidiasis requires medical treatment.",
			ImmediateCare:   []string{"See doctor promptly", "Note all affected areas"},
			HomeRemedies:    []string{"Continue keeping areas dry"},
			Precautions:     []string{"Watch for signs of systemic infection", "Monitor for fever"},
			LifestyleTips:   []string{"Immune system evaluation may be needed"},
			WhenToSeeDoctor: "As soon as possible - oral antifungals likely needed",
		},
	},
	"Drug Eruption": {
		entities.SeverityMild: {
			GeneralAdvice:   "Drug eruptions are skin reactions to medications. Identify the trigger medication.",
			ImmediateCare:   []string{"Note all recent medications", "Contact prescribing doctor"},
			HomeRemedies:    []string{"Cool compresses", "Calamine lotion for itching"},
			Precautions:     []string{"Do not stop prescribed medications without doctor advice"},
			LifestyleTips:   []string{"Keep medication diary", "Inform all doctors of reactions"},
			WhenToSeeDoctor: "Promptly - to identify causative medication",
		},
		entities.SeverityModerate: {
			GeneralAdvice:   "Moderate drug reactions need medical evaluation and possible medication change.",
			ImmediateCare:   []string{"Contact prescribing doctor today", "Document rash progression"},
			HomeRemedies:    []string{"Antihistamines for itching", "Cool baths"},
			Precautions:     []string{"Watch for worsening symptoms", "Note any new symptoms"},
			LifestyleTips:   []string{"Create comprehensive medication allergy list"},
			WhenToSeeDoctor: "Within one to two days for evaluation",
		},
		entities.SeveritySevere: {
			GeneralAdvice:   "Severe drug reactions can be life-threatening. Seek immediate care.",
			ImmediateCare:   []string{"Go to emergency room immediately", "Bring list of all medications"},
			HomeRemedies:    []string{},
			Precautions:     []string{"Watch for breathing difficulty, mouth sores, or fever"},
			LifestyleTips:   []string{"Wear medical alert bracelet for known allergies"},
			WhenToSeeDoctor: "IMMEDIATELY - this is a medical emergency",
		},
	},
	"Eczema": {
		entities.SeverityMild: {
			GeneralAdvice:   "Eczema is a chronic inflammatory condition that can be managed with proper care.",
			ImmediateCare:   []string{"Apply fragrance-free moisturizer immediately after bathing", "Use lukewarm water"},
			HomeRemedies:    []string{"Oatmeal baths", "Coconut oil", "Aloe vera", "Wet wrap therapy"},
			Precautions:     []string{"Avoid harsh soaps and detergents", "Identify and avoid triggers"},
			LifestyleTips:   []string{"Use humidifier", "Wear soft cotton clothing", "Manage stress"},
			WhenToSeeDoctor: "If itching disrupts sleep or skin becomes infected",
		},
		entities.SeverityModerate: {
			GeneralAdvice:   "Moderate eczema may benefit from prescription treatments.",
			ImmediateCare:   []string{"Continue moisturizing routine", "Consider OTC anti-itch creams"},
			HomeRemedies:    []string{"Diluted bleach baths for bacterial control", "Cool compresses"},
			Precautions:     []string{"Don't scratch - keep nails short", "Avoid known allergens"},
			LifestyleTips:   []string{"Track flare triggers", "Consider allergy testing"},
			WhenToSeeDoctor: "Schedule dermatologist appointment for prescription options",
		},
		entities.SeveritySevere: {
			GeneralAdvice:   "Severe eczema significantly impacts quality of life and needs aggressive treatment.",
			ImmediateCare:   []string{"See dermatologist urgently", "Continue intensive moisturizing"},
			HomeRemedies:    []string{"Wet wrap therapy", "Cool compresses for relief"},
			Precautions:     []string{"Watch for skin infection signs", "Avoid all known triggers"},
			LifestyleTips:   []string{"Consider elimination diet", "Stress reduction crucial"},
			WhenToSeeDoctor: "As soon as possible - systemic treatments may be needed",
		},
	},
	"Infestations/Bites": {
		entities.SeverityMild: {
			GeneralAdvice:   "Insect bites and infestations cause itchy reactions that usually resolve on their own.",
			ImmediateCare:   []string{"Wash area with soap and water", "Apply cold compress"},
			HomeRemedies:    []string{"Calamine lotion", "Baking soda paste", "Aloe vera", "Tea tree oil"},
			Precautions:     []string{"Don't scratch to prevent infection", "Check for ticks if outdoors"},
			LifestyleTips:   []string{"Use insect repellent", "Wear protective clothing outdoors"},
			WhenToSeeDoctor: "If signs of infection, severe swelling, or allergic reaction",
		},
		entities.SeverityModerate: {
			GeneralAdvice:   "Multiple bites or suspected infestation needs proper treatment.",
			ImmediateCare:   []string{"Identify the source of bites", "Treat environment if infestation"},
			HomeRemedies:    []string{"Antihistamines for itching", "Anti-itch cream"},
			Precautions:     []string{"Wash all bedding in hot water", "Vacuum thoroughly"},
			LifestyleTips:   []string{"Consider professional pest control", "Check pets for fleas"},
			WhenToSeeDoctor: "If bites are numerous or infestation persists",
		},
		entities.SeveritySevere: {
			GeneralAdvice:   "Severe reactions or widespread infestation require professional help.",
			ImmediateCare:   []string{"Seek medical care for severe reactions", "Professional extermination for infestations"},
			HomeRemedies:    []string{"Cool compresses only"},
			Precautions:     []string{"Watch for anaphylaxis signs", "Document all bites"},
			LifestyleTips:   []string{"May need to treat entire home"},
			WhenToSeeDoctor: "Immediately if allergic reaction, or soon for persistent infestation",
		},
	},
	"Lichen": {
		entities.SeverityMild: {
			GeneralAdvice:   "Lichen planus is an inflammatory condition affecting skin and mucous membranes.",
			ImmediateCare:   []string{"Avoid scratching", "Use gentle skincare"},
			HomeRemedies:    []string{"Oatmeal baths", "Cool compresses", "Aloe vera"},
			Precautions:     []string{"Avoid spicy foods if mouth is affected", "Use soft toothbrush"},
			LifestyleTips:   []string{"Manage stress", "Avoid alcohol"},
			WhenToSeeDoctor: "For evaluation and treatment options",
		},
		entities.SeverityModerate: {
			GeneralAdvice:   "Lichen planus often requires prescription treatment for relief.",
			ImmediateCare:   []string{"See dermatologist for proper evaluation"},
			HomeRemedies:    []string{"Continue gentle care"},
			Precautions:     []string{"Monitor for nail or hair involvement"},
			LifestyleTips:   []string{"Regular follow-ups"},
			WhenToSeeDoctor: "Soon - prescription treatments are often needed",
		},
		entities.SeveritySevere: {
			GeneralAdvice:   "Severe lichen planus can cause significant discomfort and scarring.",
			ImmediateCare:   []string{"See dermatologist urgently", "Document all affected areas"},
			HomeRemedies:    []string{"Gentle care only - avoid irritants"},
			Precautions:     []string{"Watch for erosive changes", "Oral involvement needs attention"},
			LifestyleTips:   []string{"May need systemic treatment"},
			WhenToSeeDoctor: "As soon as possible - aggressive treatment may be needed",
		},
	},
	"Lupus": {
		entities.SeverityMild: {
			GeneralAdvice:   "Lupus skin manifestations require medical management and sun protection.",
			ImmediateCare:   []string{"Strict sun protection", "Apply high-protection sunscreen"},
			HomeRemedies:    []string{"Cool compresses for rash", "Gentle moisturizers"},
			Precautions:     []string{"Avoid sun exposure completely", "Wear protective clothing"},
			LifestyleTips:   []string{"Get adequate rest", "Manage stress", "Anti-inflammatory diet"},
			WhenToSeeDoctor: "For proper evaluation and systemic workup",
		},
		entities.SeverityModerate: {
			GeneralAdvice:   "Lupus requires ongoing medical care and monitoring.",
			ImmediateCare:   []string{"Contact rheumatologist or dermatologist"},
			HomeRemedies:    []string{"Continue sun protection"},
			Precautions:     []string{"Watch for systemic symptoms like joint pain or fatigue"},
			LifestyleTips:   []string{"Regular medical follow-ups", "Support groups"},
			WhenToSeeDoctor: "Regularly - lupus requires ongoing management",
		},
		entities.SeveritySevere: {
			GeneralAdvice:   "Severe lupus flares can affect multiple organs and need urgent care.",
			ImmediateCare:   []string{"Contact rheumatologist immediately", "Go to ER if severe symptoms"},
			HomeRemedies:    []string{"Rest and sun avoidance only"},
			Precautions:     []string{"Watch for kidney, heart, or lung symptoms", "Monitor for fever"},
			LifestyleTips:   []string{"Strict medication compliance", "Avoid triggers"},
			WhenToSeeDoctor: "Immediately - severe flares can be dangerous",
		},
	},
	"Moles": {
		entities.SeverityMild: {
			GeneralAdvice:   "Moles are usually harmless. Monitor using ABCDE criteria (Asymmetry, Border, Color, Diameter, Evolution).",
			ImmediateCare:   []string{"No urgent care for stable moles"},
			HomeRemedies:    []string{"Protect from sun with sunscreen"},
			Precautions:     []string{"Never remove moles yourself", "Monitor monthly for changes"},
			LifestyleTips:   []string{"Regular skin self-exams", "Take photos to track changes"},
			WhenToSeeDoctor: "If mole changes in size, shape, color, or becomes symptomatic",
		},
		entities.SeverityModerate: {
			GeneralAdvice:   "Atypical moles need professional evaluation.",
			ImmediateCare:   []string{"Schedule dermatologist appointment", "Photograph the mole"},
			HomeRemedies:    []string{"Sun protection only"},
			Precautions:     []string{"Do not irritate or pick at mole", "Note any changes"},
			LifestyleTips:   []string{"Annual skin checks recommended"},
			WhenToSeeDoctor: "Within a few weeks for evaluation",
		},
		entities.SeveritySevere: {
			GeneralAdvice:   "Rapidly changing or suspicious moles need urgent evaluation.",
			ImmediateCare:   []string{"See dermatologist as soon as possible", "Document all changes"},
			HomeRemedies:    []string{},
			Precautions:     []string{"Do not delay evaluation", "Protect from trauma"},
			LifestyleTips:   []string{"Further testing may be recommended"},
			WhenToSeeDoctor: "Urgently - within days, not weeks",
		},
	},
	"Psoriasis": {
		entities.SeverityMild: {
			GeneralAdvice:   "Psoriasis is a chronic autoimmune condition causing rapid skin cell buildup.",
			ImmediateCare:   []string{"Keep skin moisturized", "Use medicated shampoo if scalp affected"},
			HomeRemedies:    []string{"Coal tar products", "Salicylic acid", "Oatmeal baths", "Aloe vera"},
			Precautions:     []string{"Avoid skin injuries (Koebner phenomenon)", "Limit alcohol"},
			LifestyleTips:   []string{"Manage stress", "Maintain healthy weight", "Don't smoke"},
			WhenToSeeDoctor: "For prescription treatments if OTC products don't help",
		},
		entities.SeverityModerate: {
			GeneralAdvice:   "Moderate psoriasis often requires prescription treatments.",
			ImmediateCare:   []string{"See dermatologist for treatment plan"},
			HomeRemedies:    []string{"Continue moisturizing", "Light therapy may be discussed"},
			Precautions:     []string{"Watch for joint pain (psoriatic arthritis)"},
			LifestyleTips:   []string{"Anti-inflammatory diet", "Regular exercise"},
			WhenToSeeDoctor: "Soon - many effective treatments available",
		},
		entities.SeveritySevere: {
			GeneralAdvice:   "Severe psoriasis significantly impacts quality of life and needs aggressive treatment.",
			ImmediateCare:   []string{"See dermatologist urgently", "Document extent of coverage"},
			HomeRemedies:    []string{"Intensive moisturizing", "Gentle care only"},
			Precautions:     []string{"Monitor for psoriatic arthritis", "Watch for infection in plaques"},
			LifestyleTips:   []string{"Biologic medications may be discussed", "Support groups helpful"},
			WhenToSeeDoctor: "As soon as possible - systemic treatments likely needed",
		},
	},
	"Rosacea": {
		entities.SeverityMild: {
			GeneralAdvice:   "Rosacea is a chronic facial condition causing redness and visible blood vessels.",
			ImmediateCare:   []string{"Identify and avoid triggers", "Use gentle skincare"},
			HomeRemedies:    []string{"Green-tinted makeup to neutralize redness", "Cool compresses"},
			Precautions:     []string{"Avoid hot drinks, spicy food, alcohol", "Protect from sun and wind"},
			LifestyleTips:   []string{"Keep trigger diary", "Use fragrance-free products"},
			WhenToSeeDoctor: "For prescription treatments to control symptoms",
		},
		entities.SeverityModerate: {
			GeneralAdvice:   "Moderate rosacea with papules/pustules benefits from prescription treatment.",
			ImmediateCare:   []string{"See dermatologist for topical prescriptions"},
			HomeRemedies:    []string{"Continue gentle skincare", "Cool compresses"},
			Precautions:     []string{"Avoid all known triggers", "Use mineral sunscreen"},
			LifestyleTips:   []string{"Stress management", "Gentle exercise only"},
			WhenToSeeDoctor: "Soon - prescription treatments are very effective",
		},
		entities.SeveritySevere: {
			GeneralAdvice:   "Severe rosacea can cause permanent changes and needs aggressive treatment.",
			ImmediateCare:   []string{"See dermatologist urgently", "Document progression"},
			HomeRemedies:    []string{"Very gentle care only"},
			Precautions:     []string{"Watch for eye involvement (ocular rosacea)", "Avoid all triggers"},
			LifestyleTips:   []string{"Stronger treatment options may be discussed"},
			WhenToSeeDoctor: "As soon as possible - to prevent permanent changes",
		},
	},
	"Seborrheic Keratoses": {
		entities.SeverityMild: {
			GeneralAdvice:   "Seborrheic keratoses are common benign growths, often called 'barnacles of aging'.",
			ImmediateCare:   []string{"No treatment necessary unless bothersome"},
			HomeRemedies:    []string{"Keep area clean", "Moisturize surrounding skin"},
			Precautions:     []string{"Don't pick or scratch", "Avoid irritation"},
			LifestyleTips:   []string{"Normal part of aging", "Removal is cosmetic only"},
			WhenToSeeDoctor: "If growth changes rapidly, bleeds, or looks different from others",
		},
		entities.SeverityModerate: {
			GeneralAdvice:   "Multiple or irritated seborrheic keratoses can be removed if desired.",
			ImmediateCare:   []string{"See dermatologist if removal desired"},
			HomeRemedies:    []string{"Keep areas clean and dry"},
			Precautions:     []string{"Don't attempt removal yourself", "Protect from friction"},
			LifestyleTips:   []string{"Removal options can be discussed with a doctor"},
			WhenToSeeDoctor: "If growths are bothersome or for cosmetic removal",
		},
		entities.SeveritySevere: {
			GeneralAdvice:   "Numerous or rapidly appearing keratoses should be evaluated.",
			ImmediateCare:   []string{"See dermatologist for evaluation"},
			HomeRemedies:    []string{"Gentle care only"},
			Precautions:     []string{"Sudden appearance of many may indicate underlying condition"},
			LifestyleTips:   []string{"Full skin exam recommended"},
			WhenToSeeDoctor: "Soon - to rule out other conditions",
		},
	},
	"Skin Cancer": {
		entities.SeverityMild: {
			GeneralAdvice:   "Any suspected skin cancer requires immediate professional evaluation.",
			ImmediateCare:   []string{"See dermatologist immediately", "Photograph the lesion"},
			HomeRemedies:    []string{},
			Precautions:     []string{"Do not delay care", "Protect from further sun damage"},
			LifestyleTips:   []string{"Learn skin self-exam techniques", "Monthly checks"},
			WhenToSeeDoctor: "IMMEDIATELY - urgent evaluation required",
		},
		entities.SeverityModerate: {
			GeneralAdvice:   "Highly suspicious lesions need prompt professional attention.",
			ImmediateCare:   []string{"Follow up with dermatologist", "Prepare for further evaluation"},
			HomeRemedies:    []string{},
			Precautions:     []string{"Do not delay treatment", "Strict sun protection"},
			LifestyleTips:   []string{"Build support system", "Learn about treatment options"},
			WhenToSeeDoctor: "Urgently - treatment should not be delayed",
		},
		entities.SeveritySevere: {
			GeneralAdvice:   "This requires immediate medical attention.",
			ImmediateCare:   []string{"Go to dermatologist or oncologist today"},
			HomeRemedies:    []string{},
			Precautions:     []string{"Do not delay for any reason"},
			LifestyleTips:   []string{"Connect with cancer support resources"},
			WhenToSeeDoctor: "IMMEDIATELY - emergency care appropriate",
		},
	},
	"Sun/Sunlight Damage": {
		entities.SeverityMild: {
			GeneralAdvice:   "Sun damage can be treated and prevented with proper care.",
			ImmediateCare:   []string{"Get out of sun immediately", "Apply cool compresses"},
			HomeRemedies:    []string{"Aloe vera gel", "Moisturizers", "Stay hydrated"},
			Precautions:     []string{"Avoid further sun exposure", "Don't peel skin"},
			LifestyleTips:   []string{"Always use broad-spectrum sunscreen", "Wear protective clothing"},
			WhenToSeeDoctor: "If severe blistering, fever, or chills occur",
		},
		entities.SeverityModerate: {
			GeneralAdvice:   "Moderate sun damage with blistering needs careful management.",
			ImmediateCare:   []string{"Stay out of sun", "Cool baths", "Hydrate well"},
			HomeRemedies:    []string{"Aloe vera", "Moisturizing lotions"},
			Precautions:     []string{"Don't pop blisters", "Avoid tight clothing"},
			LifestyleTips:   []string{"Commit to sun protection going forward"},
			WhenToSeeDoctor: "If blisters are extensive or signs of sun poisoning",
		},
		entities.SeveritySevere: {
			GeneralAdvice:   "Severe sunburn (sun poisoning) may need medical treatment.",
			ImmediateCare:   []string{"Seek medical care if fever, chills, or nausea", "Hydrate aggressively"},
			HomeRemedies:    []string{"Cool compresses only"},
			Precautions:     []string{"Watch for dehydration", "Monitor for infection"},
			LifestyleTips:   []string{"Complete sun avoidance until healed"},
			WhenToSeeDoctor: "Immediately if systemic symptoms present",
		},
	},
	"Tinea": {
		entities.SeverityMild: {
			GeneralAdvice:   "Tinea (ringworm) is a fungal infection that responds well to antifungal treatment.",
			ImmediateCare:   []string{"Apply OTC antifungal cream", "Keep area clean and dry"},
			HomeRemedies:    []string{"Tea tree oil", "Apple cider vinegar (diluted)", "Garlic paste"},
			Precautions:     []string{"Don't share towels or clothing", "Wash hands after touching"},
			LifestyleTips:   []string{"Wear breathable shoes", "Change socks daily", "Keep feet dry"},
			WhenToSeeDoctor: "If not improving after two weeks of OTC treatment",
		},
		entities.SeverityModerate: {
			GeneralAdvice:   "Persistent or spreading tinea may need prescription antifungals.",
			ImmediateCare:   []string{"Continue OTC treatment", "See doctor if no improvement"},
			HomeRemedies:    []string{"Keep area very dry", "Use antifungal powder"},
			Precautions:     []string{"Treat all affected areas", "Disinfect shoes and surfaces"},
			LifestyleTips:   []string{"Replace old shoes", "Use separate towels"},
			WhenToSeeDoctor: "If spreading or not responding to OTC treatment",
		},
		entities.SeveritySevere: {
			GeneralAdvice:   "Severe or widespread tinea requires prescription oral antifungals.",
			ImmediateCare:   []string{"See doctor for oral medication", "Document all affected areas"},
			HomeRemedies:    []string{"Continue topical treatment as adjunct"},
			Precautions:     []string{"May need longer treatment course", "Check for nail involvement"},
			LifestyleTips:   []string{"Complete full course of medication"},
			WhenToSeeDoctor: "Soon - oral antifungals likely needed",
		},
	},
	"Unknown/Normal": {
		entities.SeverityMild: {
			GeneralAdvice:   "Your skin appears normal or the condition couldn't be identified.",
			ImmediateCare:   []string{"Continue normal skincare routine"},
			HomeRemedies:    []string{"Maintain good skin hygiene", "Stay moisturized"},
			Precautions:     []string{"Monitor for any changes", "Use sun protection"},
			LifestyleTips:   []string{"Regular skin self-exams", "Healthy lifestyle"},
			WhenToSeeDoctor: "If you notice any concerning changes",
		},
		entities.SeverityModerate: {
			GeneralAdvice:   "The condition couldn't be clearly identified - professional evaluation recommended.",
			ImmediateCare:   []string{"Schedule dermatologist appointment for proper evaluation"},
			HomeRemedies:    []string{"Gentle skincare only"},
			Precautions:     []string{"Document any symptoms or changes", "Take photos"},
			LifestyleTips:   []string{"Keep symptom diary"},
			WhenToSeeDoctor: "Soon - for proper evaluation",
		},
		entities.SeveritySevere: {
			GeneralAdvice:   "Unidentified skin conditions with concerning features need evaluation.",
			ImmediateCare:   []string{"See dermatologist promptly"},
			HomeRemedies:    []string{},
			Precautions:     []string{"Do not self-treat without professional evaluation"},
			LifestyleTips:   []string{"Prepare detailed history for doctor"},
			WhenToSeeDoctor: "As soon as possible for proper evaluation",
		},
	},
	"Vascular Tumors": {
		entities.SeverityMild: {
			GeneralAdvice:   "Vascular tumors are blood vessel growths, usually benign.",
			ImmediateCare:   []string{"No urgent care typically needed"},
			HomeRemedies:    []string{"Protect from trauma"},
			Precautions:     []string{"Avoid activities that may cause bleeding"},
			LifestyleTips:   []string{"Treatment is often cosmetic"},
			WhenToSeeDoctor: "If it bleeds frequently, grows rapidly, or becomes painful",
		},
		entities.SeverityModerate: {
			GeneralAdvice:   "Larger or symptomatic vascular tumors may benefit from treatment.",
			ImmediateCare:   []string{"See dermatologist for evaluation"},
			HomeRemedies:    []string{"Protect from injury"},
			Precautions:     []string{"Apply pressure if bleeding occurs", "Note any changes"},
			LifestyleTips:   []string{"Treatment options can be discussed with a doctor"},
			WhenToSeeDoctor: "If causing symptoms or for cosmetic concerns",
		},
		entities.SeveritySevere: {
			GeneralAdvice:   "Large or problematic vascular tumors need professional management.",
			ImmediateCare:   []string{"See specialist for treatment options"},
			HomeRemedies:    []string{},
			Precautions:     []string{"Protect from trauma", "Seek care if significant bleeding"},
			LifestyleTips:   []string{"May need imaging studies"},
			WhenToSeeDoctor: "Soon - to discuss treatment options",
		},
	},
	"Vasculitis": {
		entities.SeverityMild: {
			GeneralAdvice:   "Vasculitis is inflammation of blood vessels requiring medical evaluation.",
			ImmediateCare:   []string{"See doctor for proper evaluation"},
			HomeRemedies:    []string{"Rest affected limbs", "Elevate legs if lower extremities affected"},
			Precautions:     []string{"Watch for systemic symptoms"},
			LifestyleTips:   []string{"Anti-inflammatory diet", "Avoid smoking"},
			WhenToSeeDoctor: "Soon - vasculitis requires medical workup",
		},
		entities.SeverityModerate: {
			GeneralAdvice:   "Vasculitis often requires prescription treatment.",
			ImmediateCare:   []string{"Contact rheumatologist or dermatologist"},
			HomeRemedies:    []string{"Gentle care only"},
			Precautions:     []string{"Monitor for organ involvement"},
			LifestyleTips:   []string{"Regular medical follow-ups"},
			WhenToSeeDoctor: "Promptly - treatment prevents complications",
		},
		entities.SeveritySevere: {
			GeneralAdvice:   "Severe vasculitis can affect organs and requires urgent treatment.",
			ImmediateCare:   []string{"Seek medical care immediately", "Go to ER if severe symptoms"},
			HomeRemedies:    []string{},
			Precautions:     []string{"Watch for kidney, lung, or nerve symptoms", "Monitor for fever"},
			LifestyleTips:   []string{"Strict medication compliance essential"},
			WhenToSeeDoctor: "Immediately - can be life-threatening if untreated",
		},
	},
	"Vitiligo": {
		entities.SeverityMild: {
			GeneralAdvice:   "Vitiligo causes loss of skin pigmentation. It's not contagious or harmful.",
			ImmediateCare:   []string{"Protect depigmented areas from sun (they burn easily)"},
			HomeRemedies:    []string{"Use high-protection sunscreen on affected areas", "Cosmetic camouflage if desired"},
			Precautions:     []string{"Avoid skin trauma (Koebner phenomenon)", "Protect from sunburn"},
			LifestyleTips:   []string{"Connect with support groups", "Embrace your unique appearance"},
			WhenToSeeDoctor: "For treatment options if desired",
		},
		entities.SeverityModerate: {
			GeneralAdvice:   "Spreading vitiligo may benefit from treatment to slow progression.",
			ImmediateCare:   []string{"See dermatologist for treatment options"},
			HomeRemedies:    []string{"Strict sun protection", "Cosmetic options available"},
			Precautions:     []string{"Avoid skin injuries", "Protect from sunburn"},
			LifestyleTips:   []string{"Light-based treatments can be discussed", "Support groups helpful"},
			WhenToSeeDoctor: "Soon - early treatment may help",
		},
		entities.SeveritySevere: {
			GeneralAdvice:   "Extensive vitiligo has treatment options a specialist can explain.",
			ImmediateCare:   []string{"See dermatologist to discuss all options"},
			HomeRemedies:    []string{"Sun protection essential"},
			Precautions:     []string{"Protect all skin from sun damage"},
			LifestyleTips:   []string{"Consider all treatment options", "Mental health support important"},
			WhenToSeeDoctor: "For comprehensive treatment planning",
		},
	},
	"Warts": {
		entities.SeverityMild: {
			GeneralAdvice:   "Warts are caused by HPV and often resolve on their own over time.",
			ImmediateCare:   []string{"OTC salicylic acid treatment", "Keep area clean"},
			HomeRemedies:    []string{"Duct tape occlusion", "Apple cider vinegar", "Banana peel"},
			Precautions:     []string{"Don't pick or bite warts", "Don't share personal items"},
			LifestyleTips:   []string{"Boost immune system", "Wear flip-flops in public showers"},
			WhenToSeeDoctor: "If warts spread, are painful, or don't respond to OTC treatment",
		},
		entities.SeverityModerate: {
			GeneralAdvice:   "Persistent or multiple warts may need professional treatment.",
			ImmediateCare:   []string{"See dermatologist for removal options"},
			HomeRemedies:    []string{"Continue OTC treatment between visits"},
			Precautions:     []string{"Avoid spreading to other areas", "Don't share razors"},
			LifestyleTips:   []string{"Multiple treatments often needed", "Patience required"},
			WhenToSeeDoctor: "If OTC treatments haven't worked after a few months",
		},
		entities.SeveritySevere: {
			GeneralAdvice:   "Extensive or resistant warts need aggressive professional treatment.",
			ImmediateCare:   []string{"See dermatologist for treatment plan"},
			HomeRemedies:    []string{"Follow doctor's instructions"},
			Precautions:     []string{"May need multiple treatment modalities"},
			LifestyleTips:   []string{"Immune system support important", "Complete treatment course"},
			WhenToSeeDoctor: "Soon - multiple treatments likely needed",
		},
	},

	// Legacy HAM10000 labels.
	"Actinic keratoses": {
		entities.SeverityMild: {
			GeneralAdvice:   "Actinic keratoses are rough, scaly patches caused by sun damage.",
			ImmediateCare:   []string{"Protect from sun", "Apply broad-spectrum sunscreen daily"},
			HomeRemedies:    []string{"Use fragrance-free moisturizers", "Apply aloe vera"},
			Precautions:     []string{"Avoid peak sun hours", "Wear protective clothing"},
			LifestyleTips:   []string{"Regular skin self-exams", "Healthy diet with antioxidants"},
			WhenToSeeDoctor: "If patch grows, bleeds, or changes appearance",
		},
		entities.SeverityModerate: {
			GeneralAdvice:   "Multiple actinic keratoses require professional evaluation.",
			ImmediateCare:   []string{"Schedule dermatologist appointment", "Document all lesions"},
			HomeRemedies:    []string{"Continue strict sun protection"},
			Precautions:     []string{"Do not remove lesions yourself", "Avoid tanning beds"},
			LifestyleTips:   []string{"Annual skin cancer screenings"},
			WhenToSeeDoctor: "As soon as possible for professional evaluation",
		},
		entities.SeveritySevere: {
			GeneralAdvice:   "Severe actinic keratoses significantly increase skin cancer risk.",
			ImmediateCare:   []string{"Seek dermatological care promptly"},
			HomeRemedies:    []string{"Gentle skin care only"},
			Precautions:     []string{"Do not delay medical consultation"},
			LifestyleTips:   []string{"Regular dermatology follow-ups every few months"},
			WhenToSeeDoctor: "Immediately - professional treatment needed",
		},
	},
	"Basal cell carcinoma": {
		entities.SeverityMild: {
			GeneralAdvice:   "Basal cell carcinoma is common skin cancer requiring treatment.",
			ImmediateCare:   []string{"Schedule dermatologist appointment", "Protect from sun"},
			HomeRemedies:    []string{"Keep area clean and dry"},
			Precautions:     []string{"Do not pick or scratch", "Avoid sun exposure"},
			LifestyleTips:   []string{"Learn skin self-exam techniques"},
			WhenToSeeDoctor: "As soon as possible for evaluation",
		},
		entities.SeverityModerate: {
			GeneralAdvice:   "Suspicious basal cell lesions need prompt treatment.",
			ImmediateCare:   []string{"Follow up with dermatologist for treatment"},
			HomeRemedies:    []string{},
			Precautions:     []string{"Do not delay treatment", "Strict sun protection"},
			LifestyleTips:   []string{"Discuss treatment options with a specialist"},
			WhenToSeeDoctor: "Urgently - treatment should not be delayed",
		},
		entities.SeveritySevere: {
			GeneralAdvice:   "Advanced basal cell carcinoma requires immediate intervention.",
			ImmediateCare:   []string{"Seek immediate dermatological care"},
			HomeRemedies:    []string{},
			Precautions:     []string{"Follow all medical advice"},
			LifestyleTips:   []string{"Build support system"},
			WhenToSeeDoctor: "Immediately - urgent care needed",
		},
	},
	"Melanoma": {
		entities.SeverityMild: {
			GeneralAdvice:   "Any melanoma suspicion requires immediate professional evaluation.",
			ImmediateCare:   []string{"See dermatologist immediately", "Photograph the lesion"},
			HomeRemedies:    []string{},
			Precautions:     []string{"Do not delay care", "Do not irritate area"},
			LifestyleTips:   []string{"Learn ABCDEs of melanoma", "Monthly skin self-exams"},
			WhenToSeeDoctor: "Immediately - urgent evaluation required",
		},
		entities.SeverityModerate: {
			GeneralAdvice:   "Highly suspicious melanoma requires immediate specialist attention.",
			ImmediateCare:   []string{"Follow oncologist/dermatologist instructions"},
			HomeRemedies:    []string{},
			Precautions:     []string{"Do not delay any recommended care"},
			LifestyleTips:   []string{"Build support network", "Learn about staging"},
			WhenToSeeDoctor: "Immediately - time is critical",
		},
		entities.SeveritySevere: {
			GeneralAdvice:   "This requires immediate medical attention.",
			ImmediateCare:   []string{"Go to dermatologist or ER today"},
			HomeRemedies:    []string{},
			Precautions:     []string{"Do not delay for any reason"},
			LifestyleTips:   []string{"Connect with melanoma support resources"},
			WhenToSeeDoctor: "Immediately - emergency care appropriate",
		},
	},
	"Benign keratosis-like lesions": {
		entities.SeverityMild: {
			GeneralAdvice:   "Benign keratoses are non-cancerous and usually harmless.",
			ImmediateCare:   []string{"No urgent care needed", "Monitor for changes"},
			HomeRemedies:    []string{"Keep area clean", "Avoid picking"},
			Precautions:     []string{"Do not remove yourself", "Watch for changes"},
			LifestyleTips:   []string{"Normal part of aging", "Good skin health"},
			WhenToSeeDoctor: "If growth changes or becomes irritated",
		},
		entities.SeverityModerate: {
			GeneralAdvice:   "Multiple or changing keratoses should be evaluated.",
			ImmediateCare:   []string{"Schedule dermatologist appointment"},
			HomeRemedies:    []string{"Keep areas clean"},
			Precautions:     []string{"Don't attempt removal"},
			LifestyleTips:   []string{"Regular skin checks"},
			WhenToSeeDoctor: "For evaluation and possible removal",
		},
		entities.SeveritySevere: {
			GeneralAdvice:   "Rapidly changing lesions need evaluation to confirm benign nature.",
			ImmediateCare:   []string{"See dermatologist promptly"},
			HomeRemedies:    []string{},
			Precautions:     []string{"Document changes"},
			LifestyleTips:   []string{"Further testing may be needed for confirmation"},
			WhenToSeeDoctor: "Soon - to rule out other conditions",
		},
	},
	"Dermatofibroma": {
		entities.SeverityMild: {
			GeneralAdvice:   "Dermatofibromas are benign nodules, usually harmless.",
			ImmediateCare:   []string{"No urgent care needed"},
			HomeRemedies:    []string{"Leave area alone", "Keep skin moisturized"},
			Precautions:     []string{"Avoid picking", "Protect from trauma"},
			LifestyleTips:   []string{"Removal is optional and cosmetic"},
			WhenToSeeDoctor: "If it grows rapidly or becomes painful",
		},
		entities.SeverityModerate: {
			GeneralAdvice:   "Symptomatic dermatofibromas can be removed if desired.",
			ImmediateCare:   []string{"See dermatologist if removal desired"},
			HomeRemedies:    []string{"Protect from irritation"},
			Precautions:     []string{"Don't attempt removal yourself"},
			LifestyleTips:   []string{"Removal is a simple outpatient option"},
			WhenToSeeDoctor: "If bothersome or for cosmetic removal",
		},
		entities.SeveritySevere: {
			GeneralAdvice:   "Rapidly changing nodules should be evaluated.",
			ImmediateCare:   []string{"See dermatologist for evaluation"},
			HomeRemedies:    []string{},
			Precautions:     []string{"Document any changes"},
			LifestyleTips:   []string{"Further testing may be recommended"},
			WhenToSeeDoctor: "Soon - to confirm the nature of the growth",
		},
	},
	"Melanocytic nevi": {
		entities.SeverityMild: {
			GeneralAdvice:   "Moles are usually harmless. Monitor using ABCDE criteria.",
			ImmediateCare:   []string{"No urgent care for stable moles"},
			HomeRemedies:    []string{"Protect from sun", "Use sunscreen"},
			Precautions:     []string{"Never remove moles yourself", "Monitor monthly"},
			LifestyleTips:   []string{"Regular skin self-exams", "Track mole changes"},
			WhenToSeeDoctor: "If mole changes in size, shape, or color",
		},
		entities.SeverityModerate: {
			GeneralAdvice:   "Atypical moles need professional evaluation.",
			ImmediateCare:   []string{"Schedule dermatologist appointment"},
			HomeRemedies:    []string{"Sun protection"},
			Precautions:     []string{"Don't irritate the mole", "Photograph for tracking"},
			LifestyleTips:   []string{"Annual skin exams recommended"},
			WhenToSeeDoctor: "Within a few weeks for evaluation",
		},
		entities.SeveritySevere: {
			GeneralAdvice:   "Rapidly changing moles need urgent evaluation.",
			ImmediateCare:   []string{"See dermatologist as soon as possible"},
			HomeRemedies:    []string{},
			Precautions:     []string{"Do not delay"},
			LifestyleTips:   []string{"Further testing may be recommended"},
			WhenToSeeDoctor: "Urgently - within days",
		},
	},
	"Vascular lesions": {
		entities.SeverityMild: {
			GeneralAdvice:   "Vascular lesions are blood vessel conditions, usually benign.",
			ImmediateCare:   []string{"No urgent care typically needed"},
			HomeRemedies:    []string{"Protect from trauma"},
			Precautions:     []string{"Avoid activities causing bleeding"},
			LifestyleTips:   []string{"Treatment often cosmetic"},
			WhenToSeeDoctor: "If it bleeds frequently or grows",
		},
		entities.SeverityModerate: {
			GeneralAdvice:   "Symptomatic vascular lesions may benefit from treatment.",
			ImmediateCare:   []string{"See dermatologist for evaluation"},
			HomeRemedies:    []string{"Protect from injury"},
			Precautions:     []string{"Apply pressure if bleeding"},
			LifestyleTips:   []string{"Treatment options can be discussed with a doctor"},
			WhenToSeeDoctor: "If causing symptoms or cosmetic concerns",
		},
		entities.SeveritySevere: {
			GeneralAdvice:   "Large or problematic vascular lesions need professional care.",
			ImmediateCare:   []string{"See specialist for treatment"},
			HomeRemedies:    []string{},
			Precautions:     []string{"Seek care if significant bleeding"},
			LifestyleTips:   []string{"May need imaging or specialized care"},
			WhenToSeeDoctor: "Soon - to discuss treatment options",
		},
	},
}

// defaultTemplate is the generic fallback when a disease has no template.
var defaultTemplate = entities.AdviceTemplate{
	GeneralAdvice:   "This condition should be evaluated by a healthcare professional.",
	ImmediateCare:   []string{"Keep area clean", "Avoid irritation", "Protect from sun"},
	HomeRemedies:    []string{"Use gentle skincare", "Keep moisturized"},
	Precautions:     []string{"Do not self-diagnose", "Monitor for changes"},
	LifestyleTips:   []string{"Maintain skin health", "Stay hydrated"},
	WhenToSeeDoctor: "If condition persists or worsens",
}

// symptomAdviceTable maps symptom keywords to personalization snippets.
// The table is ordered; earlier entries win when the advice cap is reached.
var symptomAdviceTable = []struct {
	Keyword string
	Advice  string
}{
	{"itching", "For itching: Apply cool compresses and avoid scratching. Consider OTC antihistamines."},
	{"severe_itching", "For severe itching: Use cold compresses, take antihistamines, and keep nails short."},
	{"itchy", "For itchiness: Avoid hot showers, use fragrance-free moisturizers after bathing."},

	{"pain", "For pain: Apply cool compresses. OTC pain relievers may help."},
	{"severe_pain", "For severe pain: Seek medical attention. Do not ignore persistent pain."},
	{"burning", "For burning sensation: Apply cool (not cold) compresses. Avoid irritants."},

	{"bleeding", "For bleeding: Apply gentle pressure with clean cloth. Keep area clean."},
	{"oozing", "For oozing: Keep area clean and dry. Apply sterile bandage if needed."},

	{"infection", "Signs of infection detected: Keep area clean. Seek medical care if worsening."},
	{"pus", "Pus present: This may indicate infection. Consult healthcare provider."},
	{"fever", "Fever present: This may indicate systemic involvement. Seek medical care."},

	{"spreading", "Condition spreading: Document progression with photos. Consult doctor soon."},
	{"rapid_growth", "Rapid growth noted: This requires prompt medical evaluation."},
	{"growing", "Growth observed: Monitor closely and consult dermatologist."},

	{"color_change", "Color changes: Document with photos. May need professional evaluation."},
	{"swelling", "Swelling present: Elevate if possible. Apply cool compress."},
	{"redness", "Redness: May indicate inflammation. Avoid irritants and heat."},

	{"persistent", "Persistent symptoms: Chronic conditions benefit from professional management."},
	{"recurring", "Recurring condition: Consider keeping a trigger diary."},
	{"chronic", "Chronic condition: Long-term management plan with doctor recommended."},

	{"face", "Facial involvement: Use gentle, fragrance-free products. Sun protection essential."},
	{"scalp", "Scalp involvement: Use medicated shampoos. Avoid harsh hair products."},
	{"hands", "Hand involvement: Moisturize frequently. Wear gloves for wet work."},
	{"feet", "Foot involvement: Keep feet dry. Wear breathable footwear."},

	{"widespread", "Widespread condition: May need systemic treatment. Consult dermatologist."},
	{"large_area", "Large area affected: Professional evaluation recommended."},
	{"multiple", "Multiple areas affected: Document all locations for doctor visit."},
}

// urgencyMessages is the per-tier message shown alongside recommendations.
var urgencyMessages = map[entities.Urgency]string{
	entities.UrgencyImmediate:     "URGENT: Seek immediate medical attention.",
	entities.UrgencySeekAttention: "Please see a healthcare provider as soon as possible.",
	entities.UrgencyConsultDoctor: "Consider scheduling an appointment with a doctor.",
	entities.UrgencyRoutine:       "Monitor condition. Seek care if it worsens or doesn't improve.",
}
