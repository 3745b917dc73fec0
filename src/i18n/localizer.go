// Package i18n provides the user-visible strings of the client.
package i18n

import (
	"embed"
	"encoding/json"
	"fmt"

	goi18n "github.com/nicksnyder/go-i18n/v2/i18n"
	"golang.org/x/text/language"
)

//go:embed locales/*.json
var locales embed.FS

// Message IDs used across the client.
const (
	SwitchedCategory   = "SwitchedCategory"
	NoResponse         = "NoResponse"
	ServerError        = "ServerError"
	ScholarshipHeader  = "ScholarshipHeader"
	NoScholarships     = "NoScholarships"
	Eligible           = "Eligible"
	NotEligible        = "NotEligible"
	Benefit            = "Benefit"
	Chance             = "Chance"
	SectionHome        = "SectionHome"
	SectionChat        = "SectionChat"
	SectionScholarship = "SectionScholarship"
	SectionAdmin       = "SectionAdmin"
	SectionLogin       = "SectionLogin"
	Welcome            = "Welcome"
	TotalQueries       = "TotalQueries"
	ExamQueries        = "ExamQueries"
	ScholarshipQueries = "ScholarshipQueries"
	ChartTitle         = "ChartTitle"
	NeedAdmin          = "NeedAdmin"
	LoggedIn           = "LoggedIn"
	LoginFailed        = "LoginFailed"
	LoggedOut          = "LoggedOut"
	InputPlaceholder   = "InputPlaceholder"
	Waiting            = "Waiting"
	ActiveCategory     = "ActiveCategory"
	FieldCourse        = "FieldCourse"
	FieldYear          = "FieldYear"
	FieldCategory      = "FieldCategory"
	FieldIncome        = "FieldIncome"
	FieldUsername      = "FieldUsername"
	FieldPassword      = "FieldPassword"
	FieldRole          = "FieldRole"
	SubmitHint         = "SubmitHint"
	NoMessages         = "NoMessages"
	Copied             = "Copied"
	QuitPrompt         = "QuitPrompt"
	Yes                = "Yes"
	No                 = "No"
	HelpTitle          = "HelpTitle"
	Everywhere         = "Everywhere"
	CategoryHint       = "CategoryHint"
	TooSmall           = "TooSmall"
	FieldEmail         = "FieldEmail"
	ValueRequired      = "ValueRequired"
	SignupDone         = "SignupDone"
	SignupFailed       = "SignupFailed"
)

// Control names shown in the help dialog and the footer.
const (
	ControlQuit             = "ControlQuit"
	ControlHelp             = "ControlHelp"
	ControlNextSection      = "ControlNextSection"
	ControlPrevSection      = "ControlPrevSection"
	ControlStartChat        = "ControlStartChat"
	ControlSend             = "ControlSend"
	ControlNextCategory     = "ControlNextCategory"
	ControlCopyReply        = "ControlCopyReply"
	ControlScrollUp         = "ControlScrollUp"
	ControlScrollDown       = "ControlScrollDown"
	ControlCheckEligibility = "ControlCheckEligibility"
	ControlRefresh          = "ControlRefresh"
	ControlLogIn            = "ControlLogIn"
	ControlLogOut           = "ControlLogOut"
)

// Localizer resolves message IDs for one language, falling back to English.
type Localizer struct {
	lang      string
	localizer *goi18n.Localizer
}

// New loads the bundled message files and returns a localizer for lang.
func New(lang string) (*Localizer, error) {
	bundle := goi18n.NewBundle(language.English)
	bundle.RegisterUnmarshalFunc("json", json.Unmarshal)
	for _, name := range []string{"locales/en.json", "locales/hi.json"} {
		if _, err := bundle.LoadMessageFileFS(locales, name); err != nil {
			return nil, fmt.Errorf("loading %s: %w", name, err)
		}
	}
	if lang == "" {
		lang = "en"
	}
	return &Localizer{
		lang:      lang,
		localizer: goi18n.NewLocalizer(bundle, lang, "en"),
	}, nil
}

// MustNew is New for callers that only use the bundled languages.
func MustNew(lang string) *Localizer {
	l, err := New(lang)
	if err != nil {
		panic(err)
	}
	return l
}

// Lang returns the requested language tag.
func (l *Localizer) Lang() string {
	return l.lang
}

// T returns the message for id. A message missing from the requested
// language comes from the English file; IDs unknown to both come back
// unchanged.
func (l *Localizer) T(id string, data ...map[string]any) string {
	cfg := &goi18n.LocalizeConfig{MessageID: id}
	if len(data) > 0 {
		cfg.TemplateData = data[0]
	}
	// A fallback to English still reports MessageNotFoundErr.
	msg, _ := l.localizer.Localize(cfg)
	if msg == "" {
		return id
	}
	return msg
}
