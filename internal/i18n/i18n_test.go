package i18n

import (
	"testing"

	"okean/internal/prefs"

	"github.com/stretchr/testify/assert"
)

func TestCatalog_Translate_KnownKey(t *testing.T) {
	c := Default()

	assert.Equal(t, "Главная", c.Translate(LocaleRU, "nav.home"))
	assert.Equal(t, "Асосӣ", c.Translate(LocaleTJ, "nav.home"))
	assert.Equal(t, "Home", c.Translate(LocaleEN, "nav.home"))
}

func TestCatalog_Translate_MissingKeyFallsBackToKey(t *testing.T) {
	c := Default()

	assert.Equal(t, "no.such.key", c.Translate(LocaleRU, "no.such.key"))
	assert.Equal(t, "no.such.key", c.Translate(LocaleEN, "no.such.key"))
}

func TestCatalog_Translate_UnknownLocaleFallsBackToKey(t *testing.T) {
	c := Default()

	assert.Equal(t, "nav.home", c.Translate(Locale("de"), "nav.home"))
}

func TestParseLocale(t *testing.T) {
	for _, code := range []string{"ru", "tj", "en"} {
		l, ok := ParseLocale(code)
		assert.True(t, ok)
		assert.Equal(t, Locale(code), l)
	}

	_, ok := ParseLocale("fr")
	assert.False(t, ok)
	_, ok = ParseLocale("")
	assert.False(t, ok)
}

func TestStore_DefaultsToRussian(t *testing.T) {
	s := NewStore(Default(), prefs.NewMemory())
	assert.Equal(t, LocaleRU, s.Locale())
}

func TestStore_SetLocale_SwitchesAllKeys(t *testing.T) {
	s := NewStore(Default(), prefs.NewMemory())

	s.SetLocale(LocaleEN)
	assert.Equal(t, "Home", s.T("nav.home"))
	assert.Equal(t, "Cart", s.T("nav.cart"))

	s.SetLocale(LocaleTJ)
	assert.Equal(t, "Асосӣ", s.T("nav.home"))
}

func TestStore_SetLocale_InvalidKeepsCurrent(t *testing.T) {
	s := NewStore(Default(), prefs.NewMemory())
	s.SetLocale(LocaleEN)

	s.SetLocale(Locale("xx"))
	assert.Equal(t, LocaleEN, s.Locale())
}

func TestStore_PersistsAcrossRebuild(t *testing.T) {
	p := prefs.NewMemory()

	s := NewStore(Default(), p)
	s.SetLocale(LocaleTJ)

	// a fresh store over the same preferences hydrates the saved locale
	s2 := NewStore(Default(), p)
	assert.Equal(t, LocaleTJ, s2.Locale())
	assert.Equal(t, "Асосӣ", s2.T("nav.home"))
}

func TestStore_CorruptPreferenceFallsBackToDefault(t *testing.T) {
	p := prefs.NewMemory()
	p.Set(PrefKey, "klingon")

	s := NewStore(Default(), p)
	assert.Equal(t, LocaleRU, s.Locale())
}

func TestMatchAcceptLanguage(t *testing.T) {
	assert.Equal(t, LocaleRU, MatchAcceptLanguage(""))
	assert.Equal(t, LocaleRU, MatchAcceptLanguage("ru-RU,ru;q=0.9"))
	assert.Equal(t, LocaleEN, MatchAcceptLanguage("en-US,en;q=0.9"))
	assert.Equal(t, LocaleTJ, MatchAcceptLanguage("tg-TJ,tg;q=0.9"))
	assert.Equal(t, LocaleRU, MatchAcceptLanguage("not a header ;;;"))
}

func TestDefault_AllLocalesShareKeySet(t *testing.T) {
	c := Default()

	ru := c.Table(LocaleRU)
	tj := c.Table(LocaleTJ)
	en := c.Table(LocaleEN)

	assert.Equal(t, len(ru), len(tj))
	assert.Equal(t, len(ru), len(en))
	for k := range ru {
		_, ok := tj[k]
		assert.True(t, ok, "tj missing %s", k)
		_, ok = en[k]
		assert.True(t, ok, "en missing %s", k)
	}
}
