// Package locale provides the page copy in the configured language.
package locale

import (
	"embed"
	"path"

	"github.com/BurntSushi/toml"
	"github.com/nicksnyder/go-i18n/v2/i18n"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Message IDs.
const (
	ContactPrompt = "ContactPrompt"
	ContactMe     = "ContactMe"
	Loading       = "Loading"
	Empty         = "Empty"
	AllProjects   = "AllProjects"
	Position      = "Position"
	BrowseHint    = "BrowseHint"
	CategoryHint  = "CategoryHint"
	Paused        = "Paused"
)

//go:embed messages/*.toml
var messageFS embed.FS

// Locale localizes page copy for one language.
type Locale struct {
	tag   language.Tag
	loc   *i18n.Localizer
	upper cases.Caser
	title cases.Caser
}

func newBundle() (*i18n.Bundle, error) {
	bundle := i18n.NewBundle(language.English)
	bundle.RegisterUnmarshalFunc("toml", toml.Unmarshal)

	entries, err := messageFS.ReadDir("messages")
	if err != nil {
		return nil, err
	}
	for _, e := range entries {
		name := path.Join("messages", e.Name())
		data, err := messageFS.ReadFile(name)
		if err != nil {
			return nil, err
		}
		if _, err := bundle.ParseMessageFileBytes(data, name); err != nil {
			return nil, err
		}
	}
	return bundle, nil
}

// New returns the Locale closest to lang. Unknown or malformed tags fall
// back to English.
func New(lang string) (*Locale, error) {
	bundle, err := newBundle()
	if err != nil {
		return nil, err
	}

	tag := language.English
	if parsed, err := language.Parse(lang); err == nil {
		matcher := language.NewMatcher(bundle.LanguageTags())
		_, idx, conf := matcher.Match(parsed)
		if conf != language.No {
			tag = bundle.LanguageTags()[idx]
		}
	}

	return &Locale{
		tag:   tag,
		loc:   i18n.NewLocalizer(bundle, tag.String()),
		upper: cases.Upper(tag),
		title: cases.Title(tag),
	}, nil
}

// Tag returns the matched language.
func (l *Locale) Tag() language.Tag { return l.tag }

// T returns the message for id, or id itself when it is missing.
func (l *Locale) T(id string) string {
	msg, err := l.loc.Localize(&i18n.LocalizeConfig{MessageID: id})
	if err != nil {
		return id
	}
	return msg
}

// Position formats a 1-based carousel position.
func (l *Locale) Position(index, total int) string {
	msg, err := l.loc.Localize(&i18n.LocalizeConfig{
		MessageID:    Position,
		TemplateData: map[string]int{"Index": index + 1, "Total": total},
	})
	if err != nil {
		return Position
	}
	return msg
}

// Upper upper-cases s using the locale's rules.
func (l *Locale) Upper(s string) string { return l.upper.String(s) }

// Title title-cases s using the locale's rules.
func (l *Locale) Title(s string) string { return l.title.String(s) }
