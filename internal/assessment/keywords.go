package assessment

// keywordSet holds the per-language vocabulary the analyzer scans for.
// Matching is case-insensitive substring containment, so entries include
// both script and common romanized spellings.
type keywordSet struct {
	Critical []string
	Negative []string
	Positive []string
}

// DefaultLanguage is used when a requested language has no keyword set.
const DefaultLanguage = "mr"

var keywordSets = map[string]keywordSet{
	"mr": {
		Critical: []string{
			"आत्महत्या",
			"जगावंसं वाटत नाही",
			"मरावंसं वाटतं",
			"संपवून टाकू",
			"जीवन संपव",
			"aatmahatya",
			"jagavasa vatat nahi",
			"maravasa vatata",
		},
		Negative: []string{
			"निराश",
			"कर्ज",
			"चिंता",
			"एकटा",
			"थकलो",
			"त्रास",
			"रडू",
			"ओझं",
			"दुःख",
			"हताश",
			"nirash",
			"karj",
			"chinta",
			"ekta",
			"traas",
			"hatash",
		},
		Positive: []string{
			"चांगलं",
			"आनंद",
			"आशा",
			"बरं वाटतं",
			"समाधान",
			"मदत मिळाली",
			"changla",
			"anand",
			"aasha",
			"samadhan",
		},
	},
	"hi": {
		Critical: []string{
			"आत्महत्या",
			"मरना चाहता",
			"जीना नहीं चाहता",
			"खुद को खत्म",
			"जान दे दूं",
			"atmahatya",
			"marna chahta",
			"jeena nahi chahta",
		},
		Negative: []string{
			"निराश",
			"परेशान",
			"कर्ज",
			"तनाव",
			"अकेला",
			"थक गया",
			"बोझ",
			"दुखी",
			"रोता",
			"pareshan",
			"karz",
			"tanav",
			"akela",
			"dukhi",
		},
		Positive: []string{
			"अच्छा",
			"खुश",
			"उम्मीद",
			"बेहतर",
			"आभारी",
			"सहारा मिला",
			"khush",
			"umeed",
			"behtar",
			"accha",
		},
	},
	"en": {
		Critical: []string{
			"suicide",
			"kill myself",
			"end my life",
			"end it all",
			"want to die",
			"no reason to live",
			"better off dead",
			"harm myself",
		},
		Negative: []string{
			"hopeless",
			"worthless",
			"stressed",
			"debt",
			"failure",
			"exhausted",
			"alone",
			"worried",
			"depressed",
			"crying",
			"burden",
			"can't sleep",
			"anxious",
			"giving up",
		},
		Positive: []string{
			"hopeful",
			"feeling better",
			"happy",
			"improving",
			"grateful",
			"supported",
			"thankful",
			"relieved",
			"confident",
			"optimistic",
		},
	},
}

// keywordsFor returns the keyword set for a language code, falling back to
// the default language when unsupported.
func keywordsFor(lang string) keywordSet {
	if set, ok := keywordSets[lang]; ok {
		return set
	}
	return keywordSets[DefaultLanguage]
}
