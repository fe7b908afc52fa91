package i18n

// Catalog is the static key→string lookup table for all locales.
type Catalog struct {
	tables map[Locale]map[string]string
}

// NewCatalog builds a catalog from per-locale tables.
// The built-in storefront catalog is Default().
func NewCatalog(tables map[Locale]map[string]string) *Catalog {
	if tables == nil {
		tables = make(map[Locale]map[string]string)
	}
	return &Catalog{tables: tables}
}

// Translate looks key up in the given locale's table. Missing keys come
// back unchanged; there is no fallback to another locale.
func (c *Catalog) Translate(locale Locale, key string) string {
	if table, ok := c.tables[locale]; ok {
		if s, ok := table[key]; ok {
			return s
		}
	}
	return key
}

// Table returns a copy of one locale's table.
func (c *Catalog) Table(locale Locale) map[string]string {
	src := c.tables[locale]
	out := make(map[string]string, len(src))
	for k, v := range src {
		out[k] = v
	}
	return out
}
