// Package i18n holds the en/de string catalog.
package i18n

import (
	"fmt"
	"strings"
)

type Language string

const (
	English Language = "en"
	German  Language = "de"
)

// Parse accepts "en" or "de" in any case.
func Parse(s string) (Language, error) {
	switch Language(strings.ToLower(strings.TrimSpace(s))) {
	case English:
		return English, nil
	case German:
		return German, nil
	}
	return "", fmt.Errorf("unsupported language %q", s)
}

// Toggle switches between English and German.
func (l Language) Toggle() Language {
	if l == German {
		return English
	}
	return German
}

type Catalog map[string]map[Language]string

// Translator looks keys up in a catalog for one language.
type Translator struct {
	lang    Language
	catalog Catalog
}

// New returns a translator over the built-in catalog.
func New(lang Language) *Translator {
	return &Translator{lang: lang, catalog: Default}
}

func (t *Translator) Language() Language { return t.lang }

func (t *Translator) SetLanguage(l Language) { t.lang = l }

// Toggle flips the language and returns the new one.
func (t *Translator) Toggle() Language {
	t.lang = t.lang.Toggle()
	return t.lang
}

// T returns the text for key, or key itself when there is none.
func (t *Translator) T(key string) string {
	if s, ok := t.catalog[key][t.lang]; ok && s != "" {
		return s
	}
	return key
}

// Tf formats the text for key with args.
func (t *Translator) Tf(key string, args ...any) string {
	return fmt.Sprintf(t.T(key), args...)
}

var Default = Catalog{
	"app.title":         {English: " globeview ─ halftone earth ", German: " globeview ─ Halbton-Erde "},
	"globe.loading":     {English: "Loading...", German: "Wird geladen..."},
	"globe.error.title": {English: "Error loading Earth visualization", German: "Fehler beim Laden der Erdvisualisierung"},
	"globe.error.land":  {English: "Failed to load land map data", German: "Landkartendaten konnten nicht geladen werden"},
	"globe.too_small":   {English: "terminal too small", German: "Terminal zu klein"},

	"status.ready":    {English: "ready", German: "bereit"},
	"status.loaded":   {English: "loaded %d features, %d dots", German: "%d Flächen, %d Punkte geladen"},
	"status.theme":    {English: "theme: %s", German: "Design: %s"},
	"status.language": {English: "language: English", German: "Sprache: Deutsch"},
	"status.zoom":     {English: "zoom: %.2fx", German: "Zoom: %.2fx"},
	"status.paused":   {English: "rotation paused", German: "Rotation angehalten"},
	"status.resumed":  {English: "rotation resumed", German: "Rotation fortgesetzt"},
	"status.layers":   {English: "graticule=%v outlines=%v dots=%v", German: "Gradnetz=%v Umrisse=%v Punkte=%v"},

	"help.rotate":   {English: "rotate", German: "drehen"},
	"help.zoom":     {English: "zoom", German: "zoomen"},
	"help.pause":    {English: "pause", German: "Pause"},
	"help.theme":    {English: "theme", German: "Design"},
	"help.language": {English: "language", German: "Sprache"},
	"help.markers":  {English: "markers", German: "Orte"},
	"help.layers":   {English: "layers", German: "Ebenen"},
	"help.help":     {English: "help", German: "Hilfe"},
	"help.quit":     {English: "quit", German: "beenden"},

	"markers.name":     {English: "Location", German: "Ort"},
	"markers.lon":      {English: "Lon", German: "Länge"},
	"markers.lat":      {English: "Lat", German: "Breite"},
	"markers.distance": {English: "Dist°", German: "Abst.°"},
	"markers.visible":  {English: "Visible", German: "Sichtbar"},
	"yes":              {English: "yes", German: "ja"},
	"no":               {English: "no", German: "nein"},

	"marker.Bangladesh": {English: "Bangladesh", German: "Bangladesch"},
	"marker.Germany":    {English: "Germany", German: "Deutschland"},
	"marker.USA":        {English: "USA", German: "USA"},
	"marker.Canada":     {English: "Canada", German: "Kanada"},
	"marker.Australia":  {English: "Australia", German: "Australien"},
	"marker.UK":         {English: "UK", German: "Vereinigtes Königreich"},
}
