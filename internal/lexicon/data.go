package lexicon

var adverbs = []string{
	"actually",
	"additionally",
	"allegedly",
	"ally",
	"alternatively",
	"anomaly",
	"apply",
	"approximately",
	"ashely",
	"ashly",
	"assembly",
	"awfully",
	"baily",
	"belly",
	"bely",
	"billy",
	"bradly",
	"bristly",
	"bubbly",
	"bully",
	"burly",
	"butterfly",
	"carly",
	"charly",
	"chilly",
	"comely",
	"completely",
	"comply",
	"consequently",
	"costly",
	"courtly",
	"crinkly",
	"crumbly",
	"cuddly",
	"curly",
	"currently",
	"daily",
	"dastardly",
	"deadly",
	"deathly",
	"definitely",
	"dilly",
	"disorderly",
	"doily",
	"dolly",
	"dragonfly",
	"early",
	"elderly",
	"elly",
	"emily",
	"especially",
	"exactly",
	"exclusively",
	"expedite",
	"expend",
	"expiration",
	"facilitate",
	"friendly",
	"frilly",
	"gadfly",
	"gangly",
	"generally",
	"ghastly",
	"giggly",
	"globally",
	"goodly",
	"gravelly",
	"grisly",
	"gully",
	"haily",
	"hally",
	"harly",
	"hardly",
	"heavenly",
	"hillbilly",
	"hilly",
	"holly",
	"holy",
	"homely",
	"homily",
	"horsefly",
	"hourly",
	"immediately",
	"instinctively",
	"imply",
	"italy",
	"jelly",
	"jiggly",
	"jilly",
	"jolly",
	"july",
	"karly",
	"kelly",
	"kindly",
	"lately",
	"likely",
	"lilly",
	"lily",
	"lively",
	"lolly",
	"lonely",
	"lovely",
	"lowly",
	"luckily",
	"mealy",
	"measly",
	"melancholy",
	"mentally",
	"molly",
	"monopoly",
	"monthly",
	"multiply",
	"nightly",
	"oily",
	"only",
	"orderly",
	"panoply",
	"particularly",
	"partly",
	"paully",
	"pearly",
	"pebbly",
	"politically",
	"polly",
	"potbelly",
	"presumably",
	"previously",
	"pualy",
	"quarterly",
	"rally",
	"rarely",
	"recently",
	"rely",
	"reply",
	"reportedly",
	"roughly",
	"sally",
	"scaly",
	"shapely",
	"shelly",
	"shirly",
	"shortly",
	"sickly",
	"silly",
	"sly",
	"smelly",
	"sparkly",
	"spindly",
	"spritely",
	"squiggly",
	"stately",
	"steely",
	"supply",
	"surly",
	"tally",
	"timely",
	"trolly",
	"ugly",
	"underbelly",
	"unfortunately",
	"unholy",
	"unlikely",
	"usually",
	"waverly",
	"weekly",
	"wholly",
	"willy",
	"wily",
	"wobbly",
	"wooly",
	"worldly",
	"wrinkly",
	"yearly",
}

var weakPhrases = []string{
	"i believe",
	"i consider",
	"i don't believe",
	"i don't consider",
	"i don't feel",
	"i don't suggest",
	"i don't think",
	"i feel",
	"i hope to",
	"i might",
	"i suggest",
	"i think",
	"i was wondering",
	"i will try",
	"i wonder",
	"in my opinion",
	"is kind of",
	"is sort of",
	"just",
	"maybe",
	"perhaps",
	"possibly",
	"we believe",
	"we consider",
	"we don't believe",
	"we don't consider",
	"we don't feel",
	"we don't suggest",
	"we don't think",
	"we feel",
	"we hope to",
	"we might",
	"we suggest",
	"we think",
	"we were wondering",
	"we will try",
	"we wonder",
}

var passiveVoices = map[string]string{
	"arisen":     "arose",
	"awaken":     "awakened",
	"awoken":     "awoke",
	"beaten":     "beat",
	"been":       "be",
	"begun":      "began",
	"beheld":     "behold",
	"bent":       "bent",
	"bidden":     "bid",
	"bitten":     "bit",
	"bled":       "bled",
	"blown":      "blew",
	"bought":     "bought",
	"broken":     "broke",
	"brought":    "brought",
	"built":      "built",
	"caught":     "caught",
	"chosen":     "chose",
	"clung":      "clung",
	"cut":        "cut",
	"dealt":      "dealt",
	"done":       "did",
	"dove":       "dove",
	"drawn":      "drew",
	"dreamt":     "dreamt",
	"driven":     "drove",
	"eaten":      "ate",
	"fallen":     "fell",
	"fed":        "fed",
	"felt":       "felt",
	"flown":      "flew",
	"forbidden":  "forbade",
	"forgiven":   "forgave",
	"forgotten":  "forgot",
	"forsaken":   "forsake",
	"forseen":    "foresee",
	"fought":     "fought",
	"found":      "found",
	"frozen":     "froze",
	"given":      "gave",
	"gotten":     "got",
	"ground":     "ground",
	"grown":      "grew",
	"hasten":     "hasten",
	"heard":      "heard",
	"held":       "held",
	"hidden":     "hid",
	"hit":        "hit",
	"hung":       "hung",
	"hurt":       "hurt",
	"kept":       "kept",
	"known":      "knew",
	"laid":       "laid",
	"led":        "led",
	"left":       "left",
	"let":        "let",
	"lost":       "lost",
	"made":       "made",
	"meant":      "meant",
	"met":        "met",
	"outdone":    "outdone",
	"outgrown":   "outgrown",
	"overseen":   "oversee",
	"overtaken":  "overtake",
	"overthrown": "overthrow",
	"paid":       "paid",
	"proven":     "proved",
	"put":        "put",
	"read":       "read",
	"rewritten":  "rewritten",
	"ridden":     "rode",
	"risen":      "risen",
	"run":        "ran",
	"rung":       "rang",
	"said":       "said",
	"seen":       "saw",
	"sent":       "sent",
	"sewn":       "sewn",
	"shaken":     "shook",
	"shaved":     "shaved",
	"shone":      "shone",
	"shot":       "shot",
	"shown":      "shown",
	"shrunk":     "shrunk",
	"shrunken":   "shrunk",
	"shut":       "shut",
	"slain":      "slew",
	"slid":       "slid",
	"sold":       "sold",
	"sought":     "sought",
	"sown":       "sown",
	"spent":      "spent",
	"spilt":      "spilt",
	"split":      "split",
	"spoken":     "spoke",
	"spread":     "spread",
	"spun":       "spun",
	"stolen":     "stole",
	"strewn":     "strewn",
	"struck":     "struck",
	"sung":       "sung",
	"sunk":       "sunk",
	"sunken":     "sunk",
	"swept":      "swept",
	"sworn":      "swore",
	"swum":       "swam",
	"swung":      "swung",
	"taken":      "took",
	"taught":     "taught",
	"thought":    "thought",
	"thrown":     "threw",
	"told":       "told",
	"torn":       "tore",
	"undergone":  "underwent",
	"understood": "understood",
	"undone":     "undone",
	"uprisen":    "uprisen",
	"upset":      "upset",
	"waken":      "waken",
	"withdrawn":  "withdrew",
	"woken":      "woke",
	"won":        "won",
	"worn":       "wore",
	"woven":      "wove",
	"written":    "wrote",
	"wrung":      "wrang",
}
