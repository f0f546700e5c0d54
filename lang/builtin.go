package lang

// English uses the lower-case latin letters, each typed as itself
func English() Language {
	labels := make([]string, 0, 26)
	for c := 'a'; c <= 'z'; c++ {
		labels = append(labels, string(c))
	}
	return newTable("eng", labels, labels)
}

const (
	hiragana = "あいうえおかきくけこさしすせそたちつてとなにぬねのはひふへほ" +
		"まみむめもらりるれろがぎぐげござじずぜぞだぢづでどばびぶべぼぱぴぷぺぽやゆよわをん"
	katakana = "アイウエオカキクケコサシスセソタチツテトナニヌネノハヒフヘホ" +
		"マミムメモラリルレロガギグゲゴザジズゼゾダヂヅデドバビブベボパピプペポヤユヨワヲン"
)

// Hiragana uses the basic and voiced hiragana with romanized input
func Hiragana() Language {
	return newTable("jpn_h", splitRunes(hiragana), romaji())
}

// Katakana uses the basic and voiced katakana with romanized input
func Katakana() Language {
	return newTable("jpn_k", splitRunes(katakana), romaji())
}

// romaji builds the consonant-vowel grid, then patches the irregular readings
func romaji() []string {
	out := make([]string, 0, 71)
	for _, cons := range []string{"", "k", "s", "t", "n", "h", "m", "r", "g", "z", "d", "b", "p"} {
		for _, vow := range "aiueo" {
			out = append(out, cons+string(vow))
		}
	}
	out[11] = "shi"
	out[16] = "chi"
	out[17] = "tsu"
	out[27] = "fu"
	out[46] = "ji"
	out[51] = "ji"
	out[52] = "zu"
	return append(out, "ya", "yu", "yo", "wa", "wo", "n")
}

func splitRunes(s string) []string {
	out := make([]string, 0, len(s)/3)
	for _, r := range s {
		out = append(out, string(r))
	}
	return out
}
