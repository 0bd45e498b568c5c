// Package language detects greeting language from keywords and answers in
// the same language using Roman script. Fully offline.
package language

import "strings"

type entry struct {
	keywords []string
	reply    string
}

// Match order matters: the first language whose keyword appears wins.
var greetings = []struct {
	language string
	entry
}{
	{"gujarati", entry{[]string{"kem cho", "majama", "namaskar", "ram ram"}, "Majama! Tame kem cho?"}},
	{"hindi", entry{[]string{"namaste", "kaise ho", "kya haal", "namaskar"}, "Namaste! Aap kaise ho?"}},
	{"punjabi", entry{[]string{"sat sri akal", "tussi thik ho", "ki haal"}, "Tussi thik to assi vi thik?"}},
	{"marathi", entry{[]string{"namaskar", "kasa kai", "tumhi kase", "kai chalay"}, "Namaskar! Tumhi kase ahat?"}},
	{"spanish", entry{[]string{"hola", "buenos dias", "como estas"}, "Hola! Como estas?"}},
	{"french", entry{[]string{"bonjour", "salut", "ca va"}, "Salut! Comment ca va?"}},
	{"english", entry{[]string{"hi", "hello", "hey", "good morning", "good evening"}, "Hey! How are you?"}},
}

const defaultReply = "Hello! How are you?"

// Detect returns a natural greeting reply in the detected language, falling
// back to English.
func Detect(userInput string) (language, reply string) {
	cleaned := stripPunctuation(strings.ToLower(userInput))
	for _, g := range greetings {
		for _, kw := range g.keywords {
			if strings.Contains(cleaned, kw) {
				return g.language, g.reply
			}
		}
	}
	return "english", defaultReply
}

func stripPunctuation(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, ch := range s {
		if strings.ContainsRune("!\"#$%&'()*+,-./:;<=>?@[\\]^_`{|}~", ch) {
			continue
		}
		b.WriteRune(ch)
	}
	return b.String()
}
