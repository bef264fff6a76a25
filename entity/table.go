package entity

// namedRefs maps reference names, as written after "&" and including the
// trailing semicolon, to their replacement text. Multi-code-point and
// astral replacements are plain strings; the builder re-encodes them as
// UTF-16 units.
var namedRefs = map[string]string{
	"AElig;":   "Æ",
	"AMP;":     "&",
	"Aacute;":  "Á",
	"Acirc;":   "Â",
	"Agrave;":  "À",
	"Alpha;":   "Α",
	"Aopf;":    "\U0001d538",
	"Aring;":   "Å",
	"Atilde;":  "Ã",
	"Auml;":    "Ä",
	"Beta;":    "Β",
	"COPY;":    "©",
	"Ccedil;":  "Ç",
	"Chi;":     "Χ",
	"Copf;":    "ℂ",
	"Dagger;":  "‡",
	"Delta;":   "Δ",
	"ETH;":     "Ð",
	"Eacute;":  "É",
	"Ecirc;":   "Ê",
	"Egrave;":  "È",
	"Epsilon;": "Ε",
	"Eta;":     "Η",
	"Euml;":    "Ë",
	"GT;":      ">",
	"Gamma;":   "Γ",
	"Hopf;":    "ℍ",
	"Iacute;":  "Í",
	"Icirc;":   "Î",
	"Igrave;":  "Ì",
	"Iota;":    "Ι",
	"Iuml;":    "Ï",
	"Kappa;":   "Κ",
	"LT;":      "<",
	"Lambda;":  "Λ",
	"Mu;":      "Μ",
	"Nopf;":    "ℕ",
	"NotEqualTilde;": "≂̸",
	"Ntilde;":  "Ñ",
	"Nu;":      "Ν",
	"OElig;":   "Œ",
	"Oacute;":  "Ó",
	"Ocirc;":   "Ô",
	"Ograve;":  "Ò",
	"Omega;":   "Ω",
	"Omicron;": "Ο",
	"Oslash;":  "Ø",
	"Otilde;":  "Õ",
	"Ouml;":    "Ö",
	"Phi;":     "Φ",
	"Pi;":      "Π",
	"Popf;":    "ℙ",
	"Prime;":   "″",
	"Psi;":     "Ψ",
	"QUOT;":    "\"",
	"Qopf;":    "ℚ",
	"REG;":     "®",
	"Rho;":     "Ρ",
	"Ropf;":    "ℝ",
	"Scaron;":  "Š",
	"Sigma;":   "Σ",
	"THORN;":   "Þ",
	"Tau;":     "Τ",
	"Theta;":   "Θ",
	"Uacute;":  "Ú",
	"Ucirc;":   "Û",
	"Ugrave;":  "Ù",
	"Upsilon;": "Υ",
	"Uuml;":    "Ü",
	"Xi;":      "Ξ",
	"Yacute;":  "Ý",
	"Yuml;":    "Ÿ",
	"Zeta;":    "Ζ",
	"Zopf;":    "ℤ",
	"aacute;":  "á",
	"acirc;":   "â",
	"acute;":   "´",
	"aelig;":   "æ",
	"agrave;":  "à",
	"alefsym;": "ℵ",
	"alpha;":   "α",
	"amp;":     "&",
	"and;":     "∧",
	"ang;":     "∠",
	"aopf;":    "\U0001d552",
	"apos;":    "'",
	"aring;":   "å",
	"asymp;":   "≈",
	"atilde;":  "ã",
	"auml;":    "ä",
	"bdquo;":   "„",
	"beta;":    "β",
	"bnequiv;": "≡⃥",
	"bopf;":    "\U0001d553",
	"brvbar;":  "¦",
	"bull;":    "•",
	"cap;":     "∩",
	"ccedil;":  "ç",
	"cedil;":   "¸",
	"cent;":    "¢",
	"chi;":     "χ",
	"circ;":    "ˆ",
	"clubs;":   "♣",
	"cong;":    "≅",
	"copy;":    "©",
	"crarr;":   "↵",
	"cup;":     "∪",
	"curren;":  "¤",
	"dArr;":    "⇓",
	"dagger;":  "†",
	"darr;":    "↓",
	"deg;":     "°",
	"delta;":   "δ",
	"diams;":   "♦",
	"divide;":  "÷",
	"eacute;":  "é",
	"ecirc;":   "ê",
	"egrave;":  "è",
	"empty;":   "∅",
	"emsp;":    " ",
	"ensp;":    " ",
	"epsilon;": "ε",
	"equiv;":   "≡",
	"eta;":     "η",
	"eth;":     "ð",
	"euml;":    "ë",
	"euro;":    "€",
	"exist;":   "∃",
	"fjlig;":   "fj",
	"fnof;":    "ƒ",
	"forall;":  "∀",
	"frac12;":  "½",
	"frac14;":  "¼",
	"frac34;":  "¾",
	"frasl;":   "⁄",
	"gamma;":   "γ",
	"ge;":      "≥",
	"gt;":      ">",
	"hArr;":    "⇔",
	"harr;":    "↔",
	"hearts;":  "♥",
	"hellip;":  "…",
	"iacute;":  "í",
	"icirc;":   "î",
	"iexcl;":   "¡",
	"igrave;":  "ì",
	"infin;":   "∞",
	"int;":     "∫",
	"iota;":    "ι",
	"iquest;":  "¿",
	"isin;":    "∈",
	"iuml;":    "ï",
	"kappa;":   "κ",
	"lArr;":    "⇐",
	"lambda;":  "λ",
	"lang;":    "⟨",
	"laquo;":   "«",
	"larr;":    "←",
	"lceil;":   "⌈",
	"ldquo;":   "“",
	"le;":      "≤",
	"lfloor;":  "⌊",
	"loz;":     "◊",
	"lrm;":     "‎",
	"lsaquo;":  "‹",
	"lsquo;":   "‘",
	"lt;":      "<",
	"macr;":    "¯",
	"mdash;":   "—",
	"micro;":   "µ",
	"middot;":  "·",
	"minus;":   "−",
	"mu;":      "μ",
	"nabla;":   "∇",
	"nbsp;":    " ",
	"ndash;":   "–",
	"ne;":      "≠",
	"ni;":      "∋",
	"not;":     "¬",
	"notin;":   "∉",
	"nsub;":    "⊄",
	"ntilde;":  "ñ",
	"nu;":      "ν",
	"nvgt;":    ">⃒",
	"nvlt;":    "<⃒",
	"oacute;":  "ó",
	"ocirc;":   "ô",
	"oelig;":   "œ",
	"ograve;":  "ò",
	"oline;":   "‾",
	"omega;":   "ω",
	"omicron;": "ο",
	"oplus;":   "⊕",
	"or;":      "∨",
	"ordf;":    "ª",
	"ordm;":    "º",
	"oslash;":  "ø",
	"otilde;":  "õ",
	"otimes;":  "⊗",
	"ouml;":    "ö",
	"para;":    "¶",
	"part;":    "∂",
	"permil;":  "‰",
	"perp;":    "⊥",
	"phi;":     "φ",
	"pi;":      "π",
	"piv;":     "ϖ",
	"plusmn;":  "±",
	"pound;":   "£",
	"prime;":   "′",
	"prod;":    "∏",
	"prop;":    "∝",
	"psi;":     "ψ",
	"quot;":    "\"",
	"rArr;":    "⇒",
	"radic;":   "√",
	"rang;":    "⟩",
	"raquo;":   "»",
	"rarr;":    "→",
	"rceil;":   "⌉",
	"rdquo;":   "”",
	"reg;":     "®",
	"rfloor;":  "⌋",
	"rho;":     "ρ",
	"rlm;":     "‏",
	"rsaquo;":  "›",
	"rsquo;":   "’",
	"sbquo;":   "‚",
	"scaron;":  "š",
	"sdot;":    "⋅",
	"sect;":    "§",
	"shy;":     "­",
	"sigma;":   "σ",
	"sigmaf;":  "ς",
	"sim;":     "∼",
	"spades;":  "♠",
	"sub;":     "⊂",
	"sube;":    "⊆",
	"sum;":     "∑",
	"sup1;":    "¹",
	"sup2;":    "²",
	"sup3;":    "³",
	"sup;":     "⊃",
	"supe;":    "⊇",
	"szlig;":   "ß",
	"tau;":     "τ",
	"there4;":  "∴",
	"theta;":   "θ",
	"thetasym;": "ϑ",
	"thinsp;":  " ",
	"thorn;":   "þ",
	"tilde;":   "˜",
	"times;":   "×",
	"trade;":   "™",
	"uArr;":    "⇑",
	"uacute;":  "ú",
	"uarr;":    "↑",
	"ucirc;":   "û",
	"ugrave;":  "ù",
	"uml;":     "¨",
	"upsih;":   "ϒ",
	"upsilon;": "υ",
	"uuml;":    "ü",
	"xi;":      "ξ",
	"yacute;":  "ý",
	"yen;":     "¥",
	"yuml;":    "ÿ",
	"zeta;":    "ζ",
	"zwj;":     "‍",
	"zwnj;":    "‌",
}

// legacyRefs are the names recognized without a trailing semicolon. Their
// replacement is the same as the semicolon form; matching one without the
// semicolon is a missing-semicolon-after-character-reference parse error,
// and inside attribute values the match is suppressed when followed by
// "=" or an alphanumeric.
var legacyRefs = []string{
	"AElig", "AMP", "Aacute", "Acirc", "Agrave", "Aring", "Atilde", "Auml",
	"COPY", "Ccedil", "ETH", "Eacute", "Ecirc", "Egrave", "Euml", "GT",
	"Iacute", "Icirc", "Igrave", "Iuml", "LT", "Ntilde", "Oacute", "Ocirc",
	"Ograve", "Oslash", "Otilde", "Ouml", "QUOT", "REG", "THORN", "Uacute",
	"Ucirc", "Ugrave", "Uuml", "Yacute", "aacute", "acirc", "acute",
	"aelig", "agrave", "amp", "aring", "atilde", "auml", "brvbar", "ccedil",
	"cedil", "cent", "copy", "curren", "deg", "divide", "eacute", "ecirc",
	"egrave", "eth", "euml", "frac12", "frac14", "frac34", "gt", "iacute",
	"icirc", "iexcl", "igrave", "iquest", "iuml", "laquo", "lt", "macr",
	"micro", "middot", "nbsp", "not", "ntilde", "oacute", "ocirc", "ograve",
	"ordf", "ordm", "oslash", "otilde", "ouml", "para", "plusmn", "pound",
	"quot", "raquo", "reg", "sect", "shy", "sup1", "sup2", "sup3", "szlig",
	"thorn", "times", "uacute", "ucirc", "ugrave", "uml", "uuml", "yacute",
	"yen", "yuml",
}
