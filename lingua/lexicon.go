// Package lingua computes heuristic linguistic signals over plain text:
// sentence segmentation, Italian language confidence, formality
// classification, and geographic/cultural/dialectal term detection. All
// lexicons are fixed data tables so the scoring logic stays free of
// cascading conditionals and the tables can be tested and extended
// independently.
package lingua

// FunctionWords is the closed-class Italian lexicon used for the
// language-confidence ratio. Membership is tested per lower-cased token.
var FunctionWords = map[string]struct{}{
	"di": {}, "da": {}, "in": {}, "con": {}, "su": {}, "per": {},
	"tra": {}, "fra": {}, "il": {}, "lo": {}, "la": {}, "gli": {},
	"le": {}, "un": {}, "uno": {}, "una": {}, "ma": {}, "se": {},
	"che": {}, "chi": {}, "cui": {}, "non": {}, "si": {}, "come": {},
	"dove": {}, "quando": {}, "anche": {}, "più": {}, "del": {},
	"dello": {}, "della": {}, "dei": {}, "degli": {}, "delle": {},
	"nel": {}, "nello": {}, "nella": {}, "nei": {}, "nelle": {},
	"sul": {}, "sullo": {}, "sulla": {}, "sui": {}, "sulle": {},
	"al": {}, "allo": {}, "alla": {}, "ai": {}, "agli": {}, "alle": {},
	"dal": {}, "dallo": {}, "dalla": {}, "dai": {}, "dalle": {},
	"questo": {}, "questa": {}, "questi": {}, "queste": {},
	"quello": {}, "quella": {}, "quelli": {}, "quelle": {},
	"io": {}, "tu": {}, "lui": {}, "lei": {}, "noi": {}, "voi": {},
	"loro": {}, "mi": {}, "ti": {}, "ci": {}, "vi": {},
	"è": {}, "sono": {}, "ha": {}, "hanno": {}, "era": {}, "sarà": {},
	"essere": {}, "avere": {}, "cosa": {}, "perché": {}, "quindi": {},
}

// Abbreviations lists title abbreviations that must not terminate a
// sentence. Matched case-insensitively against a segment's trailing word.
var Abbreviations = map[string]struct{}{
	"dott": {}, "dr": {}, "prof": {}, "sig": {}, "ing": {}, "avv": {},
	"on": {}, "sen": {}, "geom": {}, "rag": {}, "arch": {}, "mons": {},
}

// Formality marker lexicons. The three sets are disjoint; classification
// uses strict-majority tie-breaks over their hit counts.
var (
	FormalMarkers = []string{
		"egregio", "gentile", "spettabile", "cordiali saluti",
		"distinti saluti", "pertanto", "tuttavia", "inoltre", "qualora",
		"codesto", "suddetto", "medesimo", "altresì", "nonché",
		"in riferimento", "con la presente",
	}

	InformalMarkers = []string{
		"ciao", "ehi", "dai", "boh", "vabbè", "cioè", "tipo", "figo",
		"mitico", "insomma", "beh", "ecco", "magari", "davvero",
		"un sacco", "che ne so",
	}

	AcademicMarkers = []string{
		"metodologia", "paradigma", "empirico", "epistemologico",
		"bibliografia", "corpus", "ipotesi", "trattazione",
		"dissertazione", "postulato", "paradigmatico", "ermeneutica",
		"nella fattispecie", "in letteratura",
	}
)

// GeographicTerms lists Italian place names, regions, and physical
// geography used both for reference detection and as domain-term hits in
// the confidence score.
var GeographicTerms = []string{
	"italia", "roma", "milano", "napoli", "torino", "firenze", "venezia",
	"bologna", "genova", "palermo", "bari", "verona", "trieste",
	"sicilia", "sardegna", "toscana", "lombardia", "piemonte", "lazio",
	"campania", "veneto", "puglia", "calabria", "liguria", "umbria",
	"abruzzo", "molise", "basilicata", "marche", "trentino", "friuli",
	"tevere", "arno", "po", "adige", "vesuvio", "etna", "dolomiti",
	"alpi", "appennini", "garda", "como",
}

// CulturalTerms lists Italian cultural references: movements, figures,
// food, and traditions.
var CulturalTerms = []string{
	"rinascimento", "barocco", "risorgimento", "futurismo", "neorealismo",
	"opera", "commedia dell'arte", "divina commedia", "dante", "petrarca",
	"boccaccio", "leonardo", "michelangelo", "caravaggio", "raffaello",
	"verdi", "puccini", "rossini", "pasta", "pizza", "espresso",
	"gelato", "risotto", "carnevale", "palio", "ferragosto", "presepe",
	"tarantella", "vendemmia",
}

// DialectalTerms lists regional and dialectal markers. A hit indicates
// dialectal coloring, not a different language.
var DialectalTerms = []string{
	"guaglione", "jamme", "paisà", "picciotto", "picciriddu", "bedda",
	"minchia", "sciura", "michetta", "schei", "ostregheta", "daje",
	"aò", "annamo", "babbo", "garbare", "belin", "mugugno", "neh",
	"cumpà", "uagliò",
}
