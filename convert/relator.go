package convert

// marcRelator maps MARC relator codes to display terms. Codes outside the
// table are ignored without notification: long-tail relator data is noisy
// and a missing role is preferable to a wrong one.
var marcRelator = map[string]string{
	"abr": "abridger",
	"act": "actor",
	"adp": "adapter",
	"arr": "arranger",
	"art": "artist",
	"aut": "author",
	"aui": "author of introduction, etc.",
	"bkd": "book designer",
	"bnd": "binder",
	"cmm": "commentator",
	"cmp": "composer",
	"cnd": "conductor",
	"col": "collector",
	"com": "compiler",
	"ctb": "contributor",
	"cre": "creator",
	"crp": "correspondent",
	"dnr": "donor",
	"drt": "director",
	"dst": "distributor",
	"edt": "editor",
	"egr": "engraver",
	"fmo": "former owner",
	"fnd": "funder",
	"hnr": "honoree",
	"ill": "illustrator",
	"ilu": "illuminator",
	"itr": "instrumentalist",
	"ive": "interviewee",
	"ivr": "interviewer",
	"lbt": "librettist",
	"ltg": "lithographer",
	"lyr": "lyricist",
	"mfr": "manufacturer",
	"nrt": "narrator",
	"pbl": "publisher",
	"pht": "photographer",
	"prf": "performer",
	"prg": "programmer",
	"prn": "production company",
	"pro": "producer",
	"prt": "printer",
	"rcp": "addressee",
	"res": "researcher",
	"rsp": "respondent",
	"scr": "scribe",
	"sgn": "signer",
	"sng": "singer",
	"spk": "speaker",
	"spn": "sponsor",
	"trl": "translator",
	"wde": "wood engraver",
	"wit": "witness",
}

const (
	marcRelatorURI  = "http://id.loc.gov/vocabulary/relators/"
	marcRelatorCode = "marcrelator"
)
