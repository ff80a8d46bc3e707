package i18n

import (
	"bytes"
	"embed"
	"encoding/json"
	"fmt"
	"io/fs"
	"path"
	"sort"
	"strings"
	"sync"
	"text/template"

	"golang.org/x/text/language"
)

// Locales contém os arquivos de tradução embutidos no binário
//
//go:embed locales/*.json
var Locales embed.FS

// Service gerencia traduções e internacionalização
type Service struct {
	mu              sync.RWMutex
	translations    map[string]map[string]string // [language][key]message
	defaultLanguage string
	languages       []string // índice paralelo a tags
	matcher         language.Matcher
}

// NewService cria um novo serviço de i18n
// fsys: sistema de arquivos com os JSON de tradução na raiz (ex: fs.Sub(Locales, "locales"))
// defaultLang: idioma padrão (fallback)
func NewService(fsys fs.FS, defaultLang string) (*Service, error) {
	s := &Service{
		translations:    make(map[string]map[string]string),
		defaultLanguage: defaultLang,
	}

	files, err := fs.Glob(fsys, "*.json")
	if err != nil {
		return nil, fmt.Errorf("failed to find locale files: %w", err)
	}

	if len(files) == 0 {
		return nil, fmt.Errorf("no locale files found")
	}

	for _, file := range files {
		lang := strings.TrimSuffix(path.Base(file), ".json")

		data, err := fs.ReadFile(fsys, file)
		if err != nil {
			return nil, fmt.Errorf("failed to read locale file %s: %w", file, err)
		}

		var translations map[string]string
		if err := json.Unmarshal(data, &translations); err != nil {
			return nil, fmt.Errorf("failed to parse locale file %s: %w", file, err)
		}

		s.translations[lang] = translations
	}

	if _, ok := s.translations[defaultLang]; !ok {
		return nil, fmt.Errorf("default language %s not found in locale files", defaultLang)
	}

	// O idioma padrão vem primeiro: é o fallback do matcher
	s.languages = append(s.languages, defaultLang)
	for lang := range s.translations {
		if lang != defaultLang {
			s.languages = append(s.languages, lang)
		}
	}
	sort.Strings(s.languages[1:])

	tags := make([]language.Tag, 0, len(s.languages))
	for _, lang := range s.languages {
		tag, err := language.Parse(lang)
		if err != nil {
			return nil, fmt.Errorf("invalid language tag %s: %w", lang, err)
		}
		tags = append(tags, tag)
	}
	s.matcher = language.NewMatcher(tags)

	return s, nil
}

// NewEmbeddedService carrega as traduções embutidas
func NewEmbeddedService(defaultLang string) (*Service, error) {
	sub, err := fs.Sub(Locales, "locales")
	if err != nil {
		return nil, err
	}
	return NewService(sub, defaultLang)
}

// T traduz uma chave para o idioma especificado
// Suporta interpolação de parâmetros usando templates Go ({{.Name}}, {{.Email}}, etc.)
func (s *Service) T(lang, key string, params ...map[string]interface{}) string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	message := s.getTranslation(lang, key)

	if message == "" {
		message = s.getTranslation(s.defaultLanguage, key)
	}

	if message == "" {
		return key
	}

	if len(params) == 0 {
		return message
	}

	tmpl, err := template.New("msg").Parse(message)
	if err != nil {
		return message
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, params[0]); err != nil {
		return message
	}

	return buf.String()
}

// getTranslation busca uma tradução sem lock (uso interno)
func (s *Service) getTranslation(lang, key string) string {
	if langMap, ok := s.translations[lang]; ok {
		if msg, ok := langMap[key]; ok {
			return msg
		}
	}
	return ""
}

// Match negocia o melhor idioma suportado para um header Accept-Language.
// Retorna "" quando nenhum idioma suportado é aceitável.
func (s *Service) Match(acceptLanguage string) string {
	if strings.TrimSpace(acceptLanguage) == "" {
		return ""
	}

	tags, _, err := language.ParseAcceptLanguage(acceptLanguage)
	if err != nil || len(tags) == 0 {
		return ""
	}

	_, index, confidence := s.matcher.Match(tags...)
	if confidence == language.No {
		return ""
	}
	return s.languages[index]
}

// GetDefaultLanguage retorna o idioma padrão configurado
func (s *Service) GetDefaultLanguage() string {
	return s.defaultLanguage
}

// GetSupportedLanguages retorna lista de idiomas suportados (padrão primeiro)
func (s *Service) GetSupportedLanguages() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	langs := make([]string, len(s.languages))
	copy(langs, s.languages)
	return langs
}

// IsLanguageSupported verifica se um idioma é suportado
func (s *Service) IsLanguageSupported(lang string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()

	_, ok := s.translations[lang]
	return ok
}
