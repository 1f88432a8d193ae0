package dictbreak

import (
	"fmt"
	"io/fs"
	"sync"
	"unicode"

	"github.com/npillmayer/dictbreak/cursor"
	"github.com/npillmayer/dictbreak/dictionary"
)

// Loader locates the dictionary for a script, given as ISO 15924 code
// ("Thai", "Laoo", "Khmr", "Mymr", "Hira").
type Loader interface {
	Load(script string) (dictionary.Matcher, error)
}

// LoaderFunc adapts a function to the Loader interface.
type LoaderFunc func(script string) (dictionary.Matcher, error)

// Load calls f(script).
func (f LoaderFunc) Load(script string) (dictionary.Matcher, error) {
	return f(script)
}

// DictionaryFiles are the default file names of dictionaries by script.
var DictionaryFiles = map[string]string{
	"Thai": "thaidict.dict",
	"Laoo": "laodict.dict",
	"Khmr": "khmerdict.dict",
	"Mymr": "burmesedict.dict",
	"Hira": "cjdict.dict",
}

// FSLoader loads dictionaries from a file system.
type FSLoader struct {
	FS    fs.FS
	Files map[string]string // script → file name; DictionaryFiles if nil
}

// Load reads and parses the dictionary for script.
func (l FSLoader) Load(script string) (dictionary.Matcher, error) {
	files := l.Files
	if files == nil {
		files = DictionaryFiles
	}
	name, ok := files[script]
	if !ok {
		return nil, fmt.Errorf("no dictionary known for script %q", script)
	}
	f, err := l.FS.Open(name)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return dictionary.Load(f)
}

// Registry hands out break engines per character, creating dictionary
// engines on first use. Scripts whose dictionary cannot be loaded are
// delegated to an UnhandledEngine. A Registry is safe for concurrent use.
type Registry struct {
	loader    Loader
	mu        sync.Mutex
	engines   []Engine
	tried     map[string]bool
	matchers  map[string]dictionary.Matcher
	unhandled *UnhandledEngine
}

// NewRegistry creates a registry loading dictionaries with loader.
// loader may be nil, in which case no text will be segmented.
func NewRegistry(loader Loader) *Registry {
	setupCharsets()
	return &Registry{
		loader:    loader,
		tried:     make(map[string]bool),
		matchers:  make(map[string]dictionary.Matcher),
		unhandled: NewUnhandledEngine(),
	}
}

// Register adds an engine, which takes precedence over engines created later.
func (r *Registry) Register(e Engine) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.engines = append(r.engines, e)
}

// EngineFor returns the engine handling c for breaks of kind.
func (r *Registry) EngineFor(c rune, kind BreakKind) Engine {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, e := range r.engines {
		if e.Handles(c, kind) {
			return e
		}
	}
	if r.unhandled.Handles(c, kind) {
		return r.unhandled
	}
	if name := engineName(c, kind); name != "" && !r.tried[name] {
		r.tried[name] = true
		e, err := r.createEngine(name)
		if err != nil {
			tracer().Errorf("cannot create %s break engine, falling back to unhandled: %v", name, err)
		} else {
			r.engines = append(r.engines, e)
			if e.Handles(c, kind) {
				return e
			}
		}
	}
	r.unhandled.HandleChar(c, kind)
	return r.unhandled
}

// engineName selects the engine responsible for c.
func engineName(c rune, kind BreakKind) string {
	switch {
	case kind != WordBreak && kind != LineBreak:
		return ""
	case unicode.Is(thaiSets.word, c):
		return "Thai"
	case unicode.Is(laoSets.word, c):
		return "Laoo"
	case unicode.Is(khmerSets.word, c):
		return "Khmr"
	case unicode.Is(burmeseSets.word, c):
		return "Mymr"
	case kind != WordBreak:
		return ""
	case unicode.Is(cjSet, c):
		return "cj"
	case unicode.Is(hangulSet, c):
		return "ko"
	}
	return ""
}

// createEngine must be called with r.mu held.
func (r *Registry) createEngine(name string) (Engine, error) {
	script := name
	if name == "cj" || name == "ko" {
		script = "Hira"
	}
	dict, err := r.matcher(script)
	if err != nil {
		return nil, err
	}
	switch name {
	case "Thai":
		return NewThaiEngine(dict), nil
	case "Laoo":
		return NewLaoEngine(dict), nil
	case "Khmr":
		return NewKhmerEngine(dict), nil
	case "Mymr":
		return NewBurmeseEngine(dict), nil
	case "cj":
		return NewCJKEngine(dict), nil
	case "ko":
		return NewKoreanEngine(dict), nil
	}
	return nil, fmt.Errorf("unknown break engine %q", name)
}

func (r *Registry) matcher(script string) (dictionary.Matcher, error) {
	if m, ok := r.matchers[script]; ok {
		return m, nil
	}
	if r.loader == nil {
		return nil, fmt.Errorf("no dictionary loader for script %q", script)
	}
	m, err := r.loader.Load(script)
	if err != nil {
		return nil, err
	}
	if m == nil {
		return nil, fmt.Errorf("loader returned no dictionary for script %q", script)
	}
	r.matchers[script] = m
	return m, nil
}

// Breaks finds the dictionary-based breaks of kind in text. Every run of
// characters of a dictionary script is handed to its engine; other
// characters are skipped. The result is in ascending order.
func (r *Registry) Breaks(text []rune, kind BreakKind) []int {
	cur := cursor.NewRuneCursor(text)
	breaks := NewBreakDeque()
	for i := 0; i < len(text); {
		if !unicode.Is(dictionaryScripts, text[i]) {
			i++
			continue
		}
		e := r.EngineFor(text[i], kind)
		e.FindBreaks(cur, i, len(text), kind, breaks)
		i = max(cur.Index(), i+1)
	}
	return breaks.Slice()
}
