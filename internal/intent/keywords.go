package intent

// Keyword tables: native-script words plus common Latin transliterations.
// Matching is case-insensitive substring containment over the raw input.
// intentOrder is the fixed evaluation priority; it doubles as the
// tie-break (first intent in order wins).
var intentOrder = []Intent{SowSeeds, WaterField, AddFertilizer, Harvest, PestControl, SoilPrep}

// langOrder fixes the fallback scan order once the detected language's
// list misses.
var langOrder = []Language{LangEnglish, LangHindi, LangTelugu}

var keywords = map[Intent]map[Language][]string{
	SowSeeds: {
		LangEnglish: {"sow", "plant", "seed", "start", "planting", "grow", "farming"},
		LangHindi:   {"बीज", "बोना", "बुवाई", "लगाना", "खेती", "शुरू", "beej", "boya", "buaai", "lagaya", "boye", "bo"},
		LangTelugu:  {"విత్తనాలు", "నాటడం", "వేయండి", "సాగు", "మొదలు", "vittanaalu", "vesa", "naatu", "natandi", "veyandi", "vittanalu"},
	},
	WaterField: {
		LangEnglish: {"water", "irrigate", "sprinkle", "wet", "pour", "hydration"},
		LangHindi:   {"पानी", "सिंचाई", "गीला", "डालना", "paani", "sinchai", "dalo", "dalna", "pani"},
		LangTelugu:  {"నీరు", "తడి", "నీళ్లు", "పోయడం", "neeru", "thadi", "poyandi", "neellu", "thadupu"},
	},
	AddFertilizer: {
		LangEnglish: {"fertilizer", "manure", "nutrient", "compost", "feed", "urea", "npk"},
		LangHindi:   {"खाद", "उर्वरक", "पोषक", "khad", "khaad", "urvarak", "dalo", "daal"},
		LangTelugu:  {"ఎరువు", "మందు", "బలం", "eruvu", "mandu", "balam", "veyandi"},
	},
	Harvest: {
		LangEnglish: {"harvest", "collect", "cut", "yield", "reap", "gathering"},
		LangHindi:   {"कटाई", "फसल", "काटना", "तोड़ना", "katai", "fasal", "kaat", "kato", "todna"},
		LangTelugu:  {"కోత", "పంట", "తీయడం", "kotha", "panta", "koyandi", "koyyadam", "theesu"},
	},
	PestControl: {
		LangEnglish: {"pest", "insect", "spray", "bug", "worm", "pesticide", "protect", "kill"},
		LangHindi:   {"कीटनाशक", "दवा", "स्प्रे", "बचाव", "कीट", "keet", "dawa", "kitnashak", "chidko", "mar"},
		LangTelugu:  {"పురుగు", "మందు", "పిచికారీ", "రక్షణ", "purugu", "mandu", "kottandi", "pichikari", "champu"},
	},
	SoilPrep: {
		LangEnglish: {"till", "plow", "plough", "prepare", "dig", "soil", "earth"},
		LangHindi:   {"जुताई", "खोदना", "तैयार", "मिट्टी", "jutai", "khod", "taiyar", "mitti"},
		LangTelugu:  {"దున్నడం", "తవ్వడం", "భూమి", "మట్టి", "dunnu", "thovvu", "matti", "siddham"},
	},
}
