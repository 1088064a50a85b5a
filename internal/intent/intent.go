// Package intent routes inbound text. It is a pure function, no I/O.
package intent

import (
	"regexp"
	"strings"

	"github.com/avaldez/pedidosbot/internal/domain"
)

type Kind uint8

const (
	Unknown Kind = iota
	Profanity
	Help
	Greeting
	OrderCode
)

func (k Kind) String() string {
	switch k {
	case Profanity:
		return "profanity"
	case Help:
		return "help"
	case Greeting:
		return "greeting"
	case OrderCode:
		return "order_code"
	default:
		return "unknown"
	}
}

type Intent struct {
	Kind Kind
	// Code holds the normalized order code when Kind is OrderCode.
	Code string
}

var (
	profanityRe = regexp.MustCompile(`(?i)(estupido|idiota|imbecil|tonto|pendejo|pendeja|hijo de puta|hija de puta|puta|cabrón|cabrona)`)
	helpRe      = regexp.MustCompile(`(?i)^(ayuda|help|comandos)$`)
	greetingRe  = regexp.MustCompile(`(?i)^(hola|inicio|buenas|hello)$`)
	codeRe      = regexp.MustCompile(`^[A-Za-z]{3}[-_ ]?[0-9]{3}$`)
)

// IsProfane reports whether the text matches the blocked-word list. Exposed
// separately so the HTTP layer can screen path parameters.
func IsProfane(text string) bool {
	return profanityRe.MatchString(text)
}

// Classify applies a fixed precedence: profanity short-circuits everything,
// then help, then greeting, then the order-code shape. Help and greeting
// require a full match, so a command is never shadowed by an accidental
// code-shaped typo and vice versa.
func Classify(text string) Intent {
	text = strings.TrimSpace(text)

	switch {
	case text == "":
		return Intent{Kind: Unknown}
	case profanityRe.MatchString(text):
		return Intent{Kind: Profanity}
	case helpRe.MatchString(text):
		return Intent{Kind: Help}
	case greetingRe.MatchString(text):
		return Intent{Kind: Greeting}
	case codeRe.MatchString(text):
		return Intent{Kind: OrderCode, Code: domain.NormalizeCode(text)}
	}
	return Intent{Kind: Unknown}
}
