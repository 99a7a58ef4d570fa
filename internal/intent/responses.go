package intent

// Canned confirmation sentences per (intent, language). Unknown maps to an
// apology. A caller-side speech synthesizer consumes these verbatim.
var responses = map[Language]map[Intent]string{
	LangEnglish: {
		SowSeeds:      "Sowing seeds. Growth started!",
		WaterField:    "Irrigation enabled. Water level updated.",
		AddFertilizer: "Fertilizer applied. Soil health boosting.",
		PestControl:   "Pesticides sprayed. Crop is safe.",
		Harvest:       "Harvest complete! Profit added to account.",
		SoilPrep:      "Soil tilled and ready for planting.",
		Unknown:       "Sorry, I didn't understand that command.",
	},
	LangHindi: {
		SowSeeds:      "बीज बो दिए गए हैं। विकास शुरू!",
		WaterField:    "सिंचाई शुरू कर दी गई है।",
		AddFertilizer: "खाद डाल दी गई है। मिट्टी की सेहत सुधर रही है।",
		PestControl:   "कीटनाशक का छिड़काव किया गया। फसल सुरक्षित है।",
		Harvest:       "कटाई पूरी हुई! मुनाफा खाते में जोड़ दिया गया।",
		SoilPrep:      "मिट्टी की जुताई हो गई है।",
		Unknown:       "क्षमा करें, मुझे समझ नहीं आया।",
	},
	LangTelugu: {
		SowSeeds:      "విత్తనాలు నాటారు. పంట పెరుగుదల మొదలైంది!",
		WaterField:    "నీరు పోయడం మొదలైంది.",
		AddFertilizer: "ఎరువు వేశారు. నేల బలం పెరుగుతోంది.",
		PestControl:   "పురుగు మందు పిచికారీ చేశారు. పంట సురక్షితం.",
		Harvest:       "పంట కోత పూర్తయింది! లాభం జమ చేయబడింది.",
		SoilPrep:      "నేల దున్నడం పూర్తయింది.",
		Unknown:       "క్షమించండి, నాకు అర్థం కాలేదు.",
	},
}

// Respond returns the confirmation sentence for an intent in the given
// language, falling back to English for unknown language tags and to the
// apology for unknown intents.
func Respond(in Intent, lang Language) string {
	table, ok := responses[lang]
	if !ok {
		table = responses[LangEnglish]
	}
	if msg, ok := table[in]; ok {
		return msg
	}
	return table[Unknown]
}
