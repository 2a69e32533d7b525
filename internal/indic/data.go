package indic

// Glyph tables for the five supported scripts. Keys are NFC romanization
// tokens; a glyph of NotApplicable means the sound has no letter in that script.

var defaultMappings = Mappings{
	// independent vowels
	"a": {Brahmi: "𑀅", Sinhala: "අ", Tamil: "அ", Devanagari: "अ", TamilBrahmi: "𑀅"},
	"ā": {Brahmi: "𑀆", Sinhala: "ආ", Tamil: "ஆ", Devanagari: "आ", TamilBrahmi: "𑀆"},
	"æ": {Brahmi: "𑀅", Sinhala: "ඇ", Tamil: "அ", Devanagari: "अ", TamilBrahmi: "𑀅"},
	"ä": {Brahmi: "𑀅", Sinhala: "ඇ", Tamil: "அ", Devanagari: "अ", TamilBrahmi: "𑀅"},
	"ǣ": {Brahmi: "𑀆", Sinhala: "ඈ", Tamil: "ஆ", Devanagari: "आ", TamilBrahmi: "𑀆"},
	"ǟ": {Brahmi: "𑀆", Sinhala: "ඈ", Tamil: "ஆ", Devanagari: "आ", TamilBrahmi: "𑀆"},
	"i": {Brahmi: "𑀇", Sinhala: "ඉ", Tamil: "இ", Devanagari: "इ", TamilBrahmi: "𑀇"},
	"ī": {Brahmi: "𑀈", Sinhala: "ඊ", Tamil: "ஈ", Devanagari: "ई", TamilBrahmi: "𑀈"},
	"u": {Brahmi: "𑀉", Sinhala: "උ", Tamil: "உ", Devanagari: "उ", TamilBrahmi: "𑀉"},
	"ū": {Brahmi: "𑀊", Sinhala: "ඌ", Tamil: "ஊ", Devanagari: "ऊ", TamilBrahmi: "𑀊"},
	"r̥": {Brahmi: "𑀋", Sinhala: "ඍ", Tamil: NotApplicable, Devanagari: "ऋ", TamilBrahmi: NotApplicable},
	"ṛ": {Brahmi: "𑀋", Sinhala: "ඍ", Tamil: NotApplicable, Devanagari: "ऋ", TamilBrahmi: NotApplicable},
	"r̥̄": {Brahmi: "𑀌", Sinhala: "ඎ", Tamil: NotApplicable, Devanagari: "ॠ", TamilBrahmi: NotApplicable},
	"ṝ": {Brahmi: "𑀌", Sinhala: "ඎ", Tamil: NotApplicable, Devanagari: "ॠ", TamilBrahmi: NotApplicable},
	"l̥": {Brahmi: "𑀍", Sinhala: "ඏ", Tamil: NotApplicable, Devanagari: "ऌ", TamilBrahmi: NotApplicable},
	"l̥̄": {Brahmi: "𑀎", Sinhala: "ඐ", Tamil: NotApplicable, Devanagari: "ॡ", TamilBrahmi: NotApplicable},
	"e": {Brahmi: "𑀏", Sinhala: "එ", Tamil: "எ", Devanagari: "ए", TamilBrahmi: "𑀏𑁆"},
	"ē": {Brahmi: "𑀏", Sinhala: "ඒ", Tamil: "ஏ", Devanagari: "ए", TamilBrahmi: "𑀏"},
	"ai": {Brahmi: "𑀐", Sinhala: "ඓ", Tamil: "ஐ", Devanagari: "ऐ", TamilBrahmi: "𑀐"},
	"o": {Brahmi: "𑀑", Sinhala: "ඔ", Tamil: "ஒ", Devanagari: "ओ", TamilBrahmi: "𑀑𑁆"},
	"ō": {Brahmi: "𑀑", Sinhala: "ඕ", Tamil: "ஓ", Devanagari: "ओ", TamilBrahmi: "𑀑"},
	"au": {Brahmi: "𑀒", Sinhala: "ඖ", Tamil: "ஔ", Devanagari: "औ", TamilBrahmi: "𑀒"},

	// consonants
	"k": {Brahmi: "𑀓", Sinhala: "ක", Tamil: "க", Devanagari: "क", TamilBrahmi: "𑀓"},
	"kh": {Brahmi: "𑀔", Sinhala: "ඛ", Tamil: "க", Devanagari: "ख", TamilBrahmi: "𑀔"},
	"g": {Brahmi: "𑀕", Sinhala: "ග", Tamil: "க", Devanagari: "ग", TamilBrahmi: "𑀕"},
	"gh": {Brahmi: "𑀖", Sinhala: "ඝ", Tamil: "க", Devanagari: "घ", TamilBrahmi: "𑀖"},
	"ṅ": {Brahmi: "𑀗", Sinhala: "ඞ", Tamil: "ங", Devanagari: "ङ", TamilBrahmi: "𑀗"},
	"c": {Brahmi: "𑀘", Sinhala: "ච", Tamil: "ச", Devanagari: "च", TamilBrahmi: "𑀘"},
	"ch": {Brahmi: "𑀙", Sinhala: "ඡ", Tamil: "ச", Devanagari: "छ", TamilBrahmi: "𑀙"},
	"j": {Brahmi: "𑀚", Sinhala: "ජ", Tamil: "ஜ", Devanagari: "ज", TamilBrahmi: "𑀚"},
	"jh": {Brahmi: "𑀛", Sinhala: "ඣ", Tamil: "ஜ", Devanagari: "झ", TamilBrahmi: "𑀛"},
	"ñ": {Brahmi: "𑀜", Sinhala: "ඤ", Tamil: "ஞ", Devanagari: "ञ", TamilBrahmi: "𑀜"},
	"ṭ": {Brahmi: "𑀝", Sinhala: "ට", Tamil: "ட", Devanagari: "ट", TamilBrahmi: "𑀝"},
	"ṭh": {Brahmi: "𑀞", Sinhala: "ඨ", Tamil: "ட", Devanagari: "ठ", TamilBrahmi: "𑀞"},
	"ḍ": {Brahmi: "𑀟", Sinhala: "ඩ", Tamil: "ட", Devanagari: "ड", TamilBrahmi: "𑀟"},
	"ḍh": {Brahmi: "𑀠", Sinhala: "ඪ", Tamil: "ட", Devanagari: "ढ", TamilBrahmi: "𑀠"},
	"ṇ": {Brahmi: "𑀡", Sinhala: "ණ", Tamil: "ண", Devanagari: "ण", TamilBrahmi: "𑀡"},
	"t": {Brahmi: "𑀢", Sinhala: "ත", Tamil: "த", Devanagari: "त", TamilBrahmi: "𑀢"},
	"th": {Brahmi: "𑀣", Sinhala: "ථ", Tamil: "த", Devanagari: "थ", TamilBrahmi: "𑀣"},
	"d": {Brahmi: "𑀤", Sinhala: "ද", Tamil: "த", Devanagari: "द", TamilBrahmi: "𑀤"},
	"dh": {Brahmi: "𑀥", Sinhala: "ධ", Tamil: "த", Devanagari: "ध", TamilBrahmi: "𑀥"},
	"n": {Brahmi: "𑀦", Sinhala: "න", Tamil: "ந", Devanagari: "न", TamilBrahmi: "𑀦"},
	"p": {Brahmi: "𑀧", Sinhala: "ප", Tamil: "ப", Devanagari: "प", TamilBrahmi: "𑀧"},
	"ph": {Brahmi: "𑀨", Sinhala: "ඵ", Tamil: "ப", Devanagari: "फ", TamilBrahmi: "𑀨"},
	"b": {Brahmi: "𑀩", Sinhala: "බ", Tamil: "ப", Devanagari: "ब", TamilBrahmi: "𑀩"},
	"bh": {Brahmi: "𑀪", Sinhala: "භ", Tamil: "ப", Devanagari: "भ", TamilBrahmi: "𑀪"},
	"m": {Brahmi: "𑀫", Sinhala: "ම", Tamil: "ம", Devanagari: "म", TamilBrahmi: "𑀫"},
	"y": {Brahmi: "𑀬", Sinhala: "ය", Tamil: "ய", Devanagari: "य", TamilBrahmi: "𑀬"},
	"r": {Brahmi: "𑀭", Sinhala: "ර", Tamil: "ர", Devanagari: "र", TamilBrahmi: "𑀭"},
	"l": {Brahmi: "𑀮", Sinhala: "ල", Tamil: "ல", Devanagari: "ल", TamilBrahmi: "𑀮"},
	"v": {Brahmi: "𑀯", Sinhala: "ව", Tamil: "வ", Devanagari: "व", TamilBrahmi: "𑀯"},
	"ś": {Brahmi: "𑀰", Sinhala: "ශ", Tamil: "ஶ", Devanagari: "श", TamilBrahmi: "𑀰"},
	"ṣ": {Brahmi: "𑀱", Sinhala: "ෂ", Tamil: "ஷ", Devanagari: "ष", TamilBrahmi: "𑀱"},
	"s": {Brahmi: "𑀲", Sinhala: "ස", Tamil: "ஸ", Devanagari: "स", TamilBrahmi: "𑀲"},
	"h": {Brahmi: "𑀳", Sinhala: "හ", Tamil: "ஹ", Devanagari: "ह", TamilBrahmi: "𑀳"},
	"ḷ": {Brahmi: "𑀴", Sinhala: "ළ", Tamil: "ள", Devanagari: "ळ", TamilBrahmi: "𑀴"},
	"f": {Brahmi: NotApplicable, Sinhala: "ෆ", Tamil: "ஃப", Devanagari: "फ़", TamilBrahmi: NotApplicable},

	// Dravidian consonants; Sinhala has no distinct letters for them
	"ḻ": {Brahmi: "𑀵", Sinhala: NotApplicable, Tamil: "ழ", Devanagari: "ऴ", TamilBrahmi: "𑀵"},
	"ṉ": {Brahmi: "𑀷", Sinhala: NotApplicable, Tamil: "ன", Devanagari: "ऩ", TamilBrahmi: "𑀷"},
	"ṟ": {Brahmi: "𑀶", Sinhala: NotApplicable, Tamil: "ற", Devanagari: "ऱ", TamilBrahmi: "𑀶"},

	// anusvara and visarga
	"ṁ": {Brahmi: "𑀁", Sinhala: "ං", Tamil: "ஂ", Devanagari: "ं", TamilBrahmi: NotApplicable},
	"ṃ": {Brahmi: "𑀁", Sinhala: "ං", Tamil: "ஂ", Devanagari: "ं", TamilBrahmi: NotApplicable},
	"ḥ": {Brahmi: "𑀂", Sinhala: "ඃ", Tamil: "ஃ", Devanagari: "ः", TamilBrahmi: NotApplicable},

	// Sinhala prenasalized consonants (saññaka)
	"n̆g": {Brahmi: NotApplicable, Sinhala: "ඟ", Tamil: NotApplicable, Devanagari: NotApplicable, TamilBrahmi: NotApplicable},
	"n̆j": {Brahmi: NotApplicable, Sinhala: "ඦ", Tamil: NotApplicable, Devanagari: NotApplicable, TamilBrahmi: NotApplicable},
	"n̆ḍ": {Brahmi: NotApplicable, Sinhala: "ඬ", Tamil: NotApplicable, Devanagari: NotApplicable, TamilBrahmi: NotApplicable},
	"n̆d": {Brahmi: NotApplicable, Sinhala: "ඳ", Tamil: NotApplicable, Devanagari: NotApplicable, TamilBrahmi: NotApplicable},
	"m̆b": {Brahmi: NotApplicable, Sinhala: "ඹ", Tamil: NotApplicable, Devanagari: NotApplicable, TamilBrahmi: NotApplicable},
}

var defaultVowelSigns = map[Script]map[string]string{
	Brahmi: {
		"a": "", "ā": "𑀸", "ä": "", "æ": "",
		"ǟ": "𑀸", "ǣ": "𑀸", "i": "𑀺", "ī": "𑀻",
		"u": "𑀼", "ū": "𑀽", "ṛ": "𑀾", "r̥": "𑀾",
		"ṝ": "𑀿", "r̥̄": "𑀿", "l̥": "𑁀", "l̥̄": "𑁁",
		"e": "𑁂", "ē": "𑁂", "ai": "𑁃", "o": "𑁄",
		"ō": "𑁄", "au": "𑁅",
	},
	Sinhala: {
		"a": "", "ā": "ා", "ä": "ැ", "æ": "ැ",
		"ǟ": "ෑ", "ǣ": "ෑ", "i": "ි", "ī": "ී",
		"u": "ු", "ū": "ූ", "ṛ": "ෘ", "r̥": "ෘ",
		"ṝ": "ෲ", "r̥̄": "ෲ", "l̥": "ෟ", "l̥̄": "ෳ",
		"e": "ෙ", "ē": "ේ", "ai": "ෛ", "o": "ො",
		"ō": "ෝ", "au": "ෞ",
	},
	Tamil: {
		"a": "", "ā": "ா", "ä": "", "æ": "",
		"ǟ": "ா", "ǣ": "ா", "i": "ி", "ī": "ீ",
		"u": "ு", "ū": "ூ", "e": "ெ", "ē": "ே",
		"ai": "ை", "o": "ொ", "ō": "ோ", "au": "ௌ",
	},
	Devanagari: {
		"a": "", "ā": "ा", "ä": "", "æ": "",
		"ǟ": "ा", "ǣ": "ा", "i": "ि", "ī": "ी",
		"u": "ु", "ū": "ू", "ṛ": "ृ", "r̥": "ृ",
		"ṝ": "ॄ", "r̥̄": "ॄ", "l̥": "ॢ", "l̥̄": "ॣ",
		"e": "े", "ē": "े", "ai": "ै", "o": "ो",
		"ō": "ो", "au": "ौ",
	},
	TamilBrahmi: {
		"a": "", "ā": "𑀸", "ä": "", "æ": "",
		"ǟ": "𑀸", "ǣ": "𑀸", "i": "𑀺", "ī": "𑀻",
		"u": "𑀼", "ū": "𑀽", "e": "𑁂", "ē": "𑁂",
		"ai": "𑁃", "o": "𑁄", "ō": "𑁄", "au": "𑁅",
	},
}

var defaultViramas = map[Script]string{
	Brahmi:      "𑁆",
	Sinhala:     "්",
	Tamil:       "்",
	Devanagari:  "्",
	TamilBrahmi: "𑁆",
}

// Ordered by preference; membership is what the segmenter uses.
var defaultVowels = []string{
	"a", "ā", "i", "ī", "u", "ū",
	"ṛ", "r̥", "ṝ", "r̥̄", "l̥", "l̥̄",
	"e", "ai", "o", "au", "ō", "ē",
	"ä", "æ", "ǟ", "ǣ",
}

// anusvara (ISAT), anusvara (ISO 15919), visarga
var defaultFinals = []string{"ṃ", "ṁ", "ḥ"}

// Preferred romanization order for glyphs that several tokens render to.
var defaultAliases = map[Script]map[string][]string{
	Sinhala: {
		"ඇ": {"ä", "æ"},
		"ඈ": {"ǟ", "ǣ"},
		"ඍ": {"ṛ", "r̥"},
		"ඎ": {"ṝ", "r̥̄"},
	},
}
