package i18n

import "kisanmitra/internal/model"

// Message is a localized three-part feedback template
type Message struct {
	Greeting string
	Body     string
	Closing  string
}

// Card is a localized suggestion card
type Card struct {
	Title string
	Text  string
}

// Bundle is the full string table for one language
type Bundle struct {
	Messages map[model.RiskLevel]Message
	Cards    map[string]Card
}

// Suggestion card keys. The first five map 1:1 to critical-factor tags; the
// last two are the generic fallback cards.
const (
	CardCropPoor    = "crop_poor"
	CardLoanHigh    = "loan_high"
	CardSleepPoor   = "sleep_poor"
	CardFamilyWeak  = "family_weak"
	CardHopeLow     = "hope_low"
	CardAgriAdvice  = "agri_advice"
	CardGovtSchemes = "govt_schemes"
)

// DefaultLanguage is the fallback for unsupported language codes.
const DefaultLanguage = "mr"

// ForLanguage returns the string table for a language code, falling back to
// Marathi when the code is unsupported.
func ForLanguage(code string) Bundle {
	if b, ok := bundles[code]; ok {
		return b
	}
	return bundles[DefaultLanguage]
}

var bundles = map[string]Bundle{
	"mr": {
		Messages: map[model.RiskLevel]Message{
			model.RiskLow: {
				Greeting: "नमस्कार!",
				Body:     "तुमची परिस्थिती चांगली दिसते आहे. असेच पुढे जा.",
				Closing:  "पुढच्या आठवड्यात पुन्हा भेटू.",
			},
			model.RiskModerate: {
				Greeting: "नमस्कार.",
				Body:     "काही गोष्टींचा ताण जाणवतो आहे. स्वतःची काळजी घ्या आणि जवळच्या व्यक्तीशी बोला.",
				Closing:  "तुम्ही एकटे नाही आहात.",
			},
			model.RiskHigh: {
				Greeting: "नमस्कार.",
				Body:     "सध्या तुमच्यावर खूप ताण आहे असे दिसते. आमचे समुपदेशक तुमच्याशी संपर्क साधतील.",
				Closing:  "मदत मागणे हे धैर्याचे लक्षण आहे.",
			},
			model.RiskCritical: {
				Greeting: "नमस्कार.",
				Body:     "तुमची परिस्थिती गंभीर आहे. कृपया लगेच खालील मदत क्रमांकावर संपर्क करा. समुपदेशक तुमच्याशी लवकरच बोलतील.",
				Closing:  "तुमचे जीवन मौल्यवान आहे. आम्ही तुमच्यासोबत आहोत.",
			},
		},
		Cards: map[string]Card{
			CardCropPoor:    {Title: "पीक सल्ला", Text: "कृषी सहाय्यकाशी पीक नुकसानीबाबत बोला. पीक विमा दावा करता येईल का ते तपासा."},
			CardLoanHigh:    {Title: "कर्ज मदत", Text: "कर्ज पुनर्रचनेसाठी बँकेशी बोला. जिल्हा कर्ज सल्ला केंद्राची मदत घ्या."},
			CardSleepPoor:   {Title: "झोपेची काळजी", Text: "झोपण्यापूर्वी मोबाईल टाळा. रोज ठराविक वेळेस झोपण्याचा प्रयत्न करा."},
			CardFamilyWeak:  {Title: "कुटुंब आधार", Text: "गावातील शेतकरी गटाशी जोडले जा. मित्रांशी नियमित बोला."},
			CardHopeLow:     {Title: "मनाची काळजी", Text: "रोज थोडा वेळ स्वतःसाठी काढा. समुपदेशकाशी मोफत बोलता येते."},
			CardAgriAdvice:  {Title: "शेती सल्ला", Text: "हवामान आधारित पीक नियोजनासाठी कृषी विभागाचा सल्ला घ्या."},
			CardGovtSchemes: {Title: "सरकारी योजना", Text: "पीएम-किसान आणि राज्य मदत योजनांसाठी तुम्ही पात्र असू शकता. तलाठी कार्यालयात चौकशी करा."},
		},
	},
	"hi": {
		Messages: map[model.RiskLevel]Message{
			model.RiskLow: {
				Greeting: "नमस्ते!",
				Body:     "आपकी स्थिति अच्छी लग रही है। ऐसे ही आगे बढ़ते रहें।",
				Closing:  "अगले हफ्ते फिर मिलेंगे।",
			},
			model.RiskModerate: {
				Greeting: "नमस्ते।",
				Body:     "कुछ चीज़ों का तनाव दिख रहा है। अपना ध्यान रखें और किसी अपने से बात करें।",
				Closing:  "आप अकेले नहीं हैं।",
			},
			model.RiskHigh: {
				Greeting: "नमस्ते।",
				Body:     "अभी आप पर काफी दबाव है। हमारे परामर्शदाता आपसे संपर्क करेंगे।",
				Closing:  "मदद मांगना हिम्मत की निशानी है।",
			},
			model.RiskCritical: {
				Greeting: "नमस्ते।",
				Body:     "आपकी स्थिति गंभीर है। कृपया तुरंत नीचे दिए गए हेल्पलाइन नंबर पर संपर्क करें। परामर्शदाता जल्द आपसे बात करेंगे।",
				Closing:  "आपका जीवन अनमोल है। हम आपके साथ हैं।",
			},
		},
		Cards: map[string]Card{
			CardCropPoor:    {Title: "फसल सलाह", Text: "फसल नुकसान के बारे में कृषि सहायक से बात करें। फसल बीमा दावे की जांच करें।"},
			CardLoanHigh:    {Title: "कर्ज सहायता", Text: "कर्ज पुनर्गठन के लिए बैंक से बात करें। जिला ऋण परामर्श केंद्र की मदद लें।"},
			CardSleepPoor:   {Title: "नींद का ध्यान", Text: "सोने से पहले मोबाइल से बचें। रोज़ एक ही समय पर सोने की कोशिश करें।"},
			CardFamilyWeak:  {Title: "पारिवारिक सहारा", Text: "गांव के किसान समूह से जुड़ें। दोस्तों से नियमित बात करें।"},
			CardHopeLow:     {Title: "मन का ध्यान", Text: "रोज़ थोड़ा समय अपने लिए निकालें। परामर्शदाता से मुफ्त बात कर सकते हैं।"},
			CardAgriAdvice:  {Title: "खेती सलाह", Text: "मौसम आधारित फसल योजना के लिए कृषि विभाग की सलाह लें।"},
			CardGovtSchemes: {Title: "सरकारी योजनाएं", Text: "पीएम-किसान और राज्य सहायता योजनाओं के लिए आप पात्र हो सकते हैं। तहसील कार्यालय में पूछताछ करें।"},
		},
	},
	"en": {
		Messages: map[model.RiskLevel]Message{
			model.RiskLow: {
				Greeting: "Hello!",
				Body:     "Things look steady for you this week. Keep it up.",
				Closing:  "See you at the next check-in.",
			},
			model.RiskModerate: {
				Greeting: "Hello.",
				Body:     "Some things seem to be weighing on you. Take care of yourself and talk to someone you trust.",
				Closing:  "You are not alone.",
			},
			model.RiskHigh: {
				Greeting: "Hello.",
				Body:     "You seem to be under a lot of pressure right now. One of our counselors will reach out to you.",
				Closing:  "Asking for help is a sign of strength.",
			},
			model.RiskCritical: {
				Greeting: "Hello.",
				Body:     "Your situation needs immediate attention. Please call the helpline number below right away. A counselor will speak with you soon.",
				Closing:  "Your life matters. We are with you.",
			},
		},
		Cards: map[string]Card{
			CardCropPoor:    {Title: "Crop advice", Text: "Talk to your agriculture assistant about the crop damage. Check whether a crop insurance claim applies."},
			CardLoanHigh:    {Title: "Loan help", Text: "Speak to your bank about restructuring the loan. The district debt counseling center can help."},
			CardSleepPoor:   {Title: "Sleep care", Text: "Avoid your phone before bed and try to sleep at the same time every day."},
			CardFamilyWeak:  {Title: "Community support", Text: "Join the village farmer group. Talk to friends regularly."},
			CardHopeLow:     {Title: "Mind care", Text: "Set aside a little time for yourself each day. Talking to a counselor is free."},
			CardAgriAdvice:  {Title: "Farming advice", Text: "Ask the agriculture department for weather-based crop planning."},
			CardGovtSchemes: {Title: "Government schemes", Text: "You may be eligible for PM-Kisan and state relief schemes. Ask at the taluka office."},
		},
	},
}
