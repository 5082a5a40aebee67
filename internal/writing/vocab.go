package writing

// stopwords is a fixed closed set of English function words. They are
// excluded from the top-token-share signal so that a text is not flagged
// for repeating "the".
var stopwords = map[string]bool{
	"a": true, "an": true, "the": true, "and": true, "or": true, "but": true,
	"if": true, "so": true, "as": true, "at": true, "by": true, "for": true,
	"from": true, "in": true, "into": true, "of": true, "on": true, "to": true,
	"up": true, "with": true, "about": true, "after": true, "before": true,
	"over": true, "under": true, "between": true, "through": true,
	"i": true, "you": true, "he": true, "she": true, "it": true, "we": true,
	"they": true, "me": true, "him": true, "her": true, "us": true, "them": true,
	"my": true, "your": true, "his": true, "its": true, "our": true, "their": true,
	"this": true, "that": true, "these": true, "those": true,
	"is": true, "am": true, "are": true, "was": true, "were": true, "be": true,
	"been": true, "being": true, "do": true, "does": true, "did": true,
	"have": true, "has": true, "had": true, "will": true, "would": true,
	"can": true, "could": true, "should": true, "not": true, "no": true,
}

// referenceVocabulary is a small fixed list of very common English words
// (function words plus frequent content words). It backs the
// recognizable-word ratio, the primary gibberish signal. The list is
// deliberately small: a low hit ratio means gibberish, but unknown words are
// expected (names, rare words) and never penalized individually.
var referenceVocabulary = map[string]bool{
	// function words
	"a": true, "an": true, "the": true, "and": true, "or": true, "but": true,
	"if": true, "so": true, "as": true, "at": true, "by": true, "for": true,
	"from": true, "in": true, "into": true, "of": true, "on": true, "to": true,
	"up": true, "down": true, "with": true, "without": true, "about": true,
	"after": true, "before": true, "over": true, "under": true, "between": true,
	"through": true, "during": true, "against": true, "because": true,
	"while": true, "until": true, "since": true, "although": true, "though": true,
	"when": true, "where": true, "why": true, "how": true, "what": true,
	"which": true, "who": true, "whom": true, "whose": true,
	"i": true, "you": true, "he": true, "she": true, "it": true, "we": true,
	"they": true, "me": true, "him": true, "her": true, "us": true, "them": true,
	"my": true, "your": true, "his": true, "its": true, "our": true, "their": true,
	"mine": true, "yours": true, "hers": true, "ours": true, "theirs": true,
	"myself": true, "yourself": true, "himself": true, "herself": true,
	"itself": true, "ourselves": true, "themselves": true,
	"this": true, "that": true, "these": true, "those": true, "there": true,
	"here": true, "all": true, "any": true, "both": true, "each": true,
	"every": true, "few": true, "many": true, "much": true, "more": true,
	"most": true, "some": true, "such": true, "other": true, "another": true,
	"same": true, "own": true, "no": true, "not": true, "only": true,
	"than": true, "then": true, "too": true, "very": true, "also": true,
	"just": true, "even": true, "still": true, "again": true, "once": true,
	"never": true, "always": true, "often": true, "sometimes": true,
	"usually": true, "already": true, "yet": true, "now": true, "soon": true,
	"today": true, "tomorrow": true, "yesterday": true,
	// auxiliaries and common verbs
	"is": true, "am": true, "are": true, "was": true, "were": true, "be": true,
	"been": true, "being": true, "do": true, "does": true, "did": true,
	"done": true, "have": true, "has": true, "had": true, "having": true,
	"will": true, "would": true, "shall": true, "can": true, "could": true,
	"may": true, "might": true, "must": true, "should": true, "need": true,
	"go": true, "goes": true, "going": true, "went": true, "gone": true,
	"come": true, "comes": true, "coming": true, "came": true,
	"get": true, "gets": true, "getting": true, "got": true,
	"make": true, "makes": true, "making": true, "made": true,
	"take": true, "takes": true, "taking": true, "took": true, "taken": true,
	"give": true, "gives": true, "giving": true, "gave": true, "given": true,
	"see": true, "sees": true, "seeing": true, "saw": true, "seen": true,
	"know": true, "knows": true, "knowing": true, "knew": true, "known": true,
	"think": true, "thinks": true, "thinking": true, "thought": true,
	"say": true, "says": true, "saying": true, "said": true,
	"tell": true, "tells": true, "telling": true, "told": true,
	"ask": true, "asked": true, "asking": true,
	"want": true, "wants": true, "wanted": true, "wanting": true,
	"like": true, "likes": true, "liked": true, "liking": true,
	"love": true, "loves": true, "loved": true,
	"use": true, "uses": true, "used": true, "using": true,
	"find": true, "finds": true, "found": true, "finding": true,
	"work": true, "works": true, "worked": true, "working": true,
	"live": true, "lives": true, "lived": true, "living": true,
	"feel": true, "feels": true, "felt": true, "feeling": true,
	"look": true, "looks": true, "looked": true, "looking": true,
	"help": true, "helps": true, "helped": true, "helping": true,
	"play": true, "plays": true, "played": true, "playing": true,
	"read": true, "reads": true, "reading": true,
	"write": true, "writes": true, "wrote": true, "written": true, "writing": true,
	"learn": true, "learns": true, "learned": true, "learning": true,
	"study": true, "studies": true, "studied": true, "studying": true,
	"speak": true, "speaks": true, "spoke": true, "spoken": true, "speaking": true,
	"talk": true, "talks": true, "talked": true, "talking": true,
	"eat": true, "eats": true, "ate": true, "eating": true,
	"buy": true, "buys": true, "bought": true, "buying": true,
	"visit": true, "visited": true, "visiting": true,
	"travel": true, "traveled": true, "traveling": true, "travelling": true,
	"stay": true, "stayed": true, "staying": true,
	"meet": true, "meets": true, "met": true, "meeting": true,
	"start": true, "started": true, "starting": true,
	"finish": true, "finished": true, "finishing": true,
	"try": true, "tries": true, "tried": true, "trying": true,
	"keep": true, "keeps": true, "kept": true, "keeping": true,
	"believe": true, "believes": true, "believed": true,
	"agree": true, "agrees": true, "agreed": true,
	"hope": true, "hopes": true, "hoped": true, "hoping": true,
	"thank": true, "thanks": true, "thanked": true,
	"recommend": true, "recommended": true, "suggest": true, "suggested": true,
	// frequent nouns
	"time": true, "year": true, "years": true, "day": true, "days": true,
	"week": true, "weeks": true, "month": true, "months": true,
	"people": true, "person": true, "man": true, "woman": true, "child": true,
	"children": true, "family": true, "friend": true, "friends": true,
	"home": true, "house": true, "school": true, "city": true, "town": true,
	"country": true, "world": true, "place": true, "places": true,
	"thing": true, "things": true, "way": true, "ways": true, "life": true,
	"job": true, "money": true, "food": true, "water": true, "book": true,
	"books": true, "film": true, "movie": true, "music": true, "game": true,
	"sport": true, "sports": true, "car": true, "bus": true, "train": true,
	"restaurant": true, "hotel": true, "shop": true, "store": true,
	"teacher": true, "student": true, "students": true, "class": true,
	"english": true, "language": true, "word": true, "words": true,
	"question": true, "answer": true, "problem": true, "problems": true,
	"idea": true, "ideas": true, "opinion": true, "reason": true,
	"example": true, "part": true, "end": true, "beginning": true,
	"morning": true, "evening": true, "night": true, "weekend": true,
	"holiday": true, "trip": true, "experience": true, "service": true,
	"price": true, "quality": true, "staff": true, "room": true,
	"letter": true, "email": true, "message": true, "phone": true,
	"internet": true, "computer": true, "technology": true,
	"government": true, "society": true, "education": true, "health": true,
	"environment": true, "nature": true, "weather": true, "summer": true,
	"winter": true, "mother": true, "father": true, "parents": true,
	// frequent adjectives and adverbs
	"good": true, "bad": true, "great": true, "best": true, "better": true,
	"worse": true, "worst": true, "big": true, "small": true, "large": true,
	"little": true, "long": true, "short": true, "high": true, "low": true,
	"new": true, "old": true, "young": true, "early": true, "late": true,
	"first": true, "second": true, "last": true, "next": true, "important": true,
	"interesting": true, "beautiful": true, "nice": true, "happy": true,
	"sad": true, "easy": true, "difficult": true, "hard": true, "different": true,
	"expensive": true, "cheap": true, "free": true, "busy": true, "right": true,
	"wrong": true, "true": true, "real": true, "sure": true, "possible": true,
	"friendly": true, "delicious": true, "wonderful": true, "terrible": true,
	"excellent": true, "amazing": true, "clean": true, "comfortable": true,
	"however": true, "therefore": true, "moreover": true, "furthermore": true,
	"finally": true, "firstly": true, "secondly": true, "really": true,
	"quite": true, "quickly": true, "slowly": true, "well": true,
	"dear": true, "hello": true, "please": true, "sorry": true, "yes": true,
	"one": true, "two": true, "three": true, "four": true, "five": true,
	"ten": true, "hundred": true, "thousand": true,
}
