package locale

import (
	_ "embed"
	"fmt"
	"log"
	"os"
	"strings"
	"text/template"

	"github.com/nicksnyder/go-i18n/i18n"
	"github.com/spf13/viper"
	"github.com/thoas/go-funk"

	"github.com/venvexec/cli/internal/print"
)

// Supported languages
var Supported = []string{"en-US", "tr-TR"}

//go:embed en-us.yaml
var translationsEnUS []byte

//go:embed tr-tr.yaml
var translationsTrTR []byte

var translateFunction i18n.TranslateFunc

var exit = os.Exit

func init() {
	viper.SetDefault("Locale", "en-US")

	translations := map[string][]byte{
		"en-us.yaml": translationsEnUS,
		"tr-tr.yaml": translationsTrTR,
	}
	for name, data := range translations {
		if err := i18n.ParseTranslationFileBytes(name, data); err != nil {
			log.Panicf("Could not parse translation file %s: %v", name, err)
		}
	}

	Set(viper.GetString("Locale"))
}

// Set the active language to the given locale
func Set(localeName string) {
	if !funk.Contains(Supported, localeName) {
		print.Error("%s", Tl("err_locale_unsupported", "Locale does not exist: {{.V0}}", localeName))
		exit(1)
		return
	}

	translateFunction, _ = i18n.Tfunc(localeName, Supported[0])
	viper.Set("Locale", localeName)
}

// T aliases to i18n.Tfunc()
func T(translationID string, args ...interface{}) string {
	if translateFunction == nil {
		return translationID
	}
	return translateFunction(translationID, args...)
}

// Tl translates the given ID, dropping back to the given locale string if the
// ID has no translation. Arguments are exposed to the translation as template
// variables V0, V1, etc.
func Tl(translationID, locale string, args ...string) string {
	data := map[string]interface{}{}
	for i, arg := range args {
		data[fmt.Sprintf("V%d", i)] = arg
	}

	translation := T(translationID, data)
	if translation != translationID {
		return translation
	}

	return expand(locale, data)
}

// Tr is like Tl but without a distinct fallback; the ID doubles as the locale
// string
func Tr(translationID string, args ...string) string {
	return Tl(translationID, translationID, args...)
}

// expand renders the given locale string against the template variables
func expand(locale string, data map[string]interface{}) string {
	tpl, err := template.New("locale").Parse(locale)
	if err != nil {
		return locale
	}

	var out strings.Builder
	if err := tpl.Execute(&out, data); err != nil {
		return locale
	}
	return out.String()
}
