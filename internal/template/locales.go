package template

import (
	"bytes"
	_ "embed"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"
)

//go:embed schema/locale.schema.json
var localeSchemaBytes []byte

var (
	localeSchema      *jsonschema.Schema
	localeSchemaOnce  sync.Once
	localeSchemaError error
)

// Messages is the message document written to locales/<code>.json.
type Messages struct {
	Home HomeMessages `json:"home"`
}

// HomeMessages holds the strings rendered by the sample home page.
type HomeMessages struct {
	Title       string `json:"title"`
	Description string `json:"description"`
}

// builtinMessages carries the translations shipped for well-known locales.
// Any other locale gets empty strings.
var builtinMessages = map[string]HomeMessages{
	"uz": {Title: "Salom, Dunyo!", Description: "Bu haywan-frontend loyihasi"},
	"en": {Title: "Hello, World!", Description: "This is haywan-frontend project"},
	"ru": {Title: "Привет, Мир!", Description: "Это проект haywan-frontend"},
}

// MessagesFor returns the message document for a locale code.
func MessagesFor(code string) Messages {
	return Messages{Home: builtinMessages[code]}
}

// LocaleDocument renders the message document for code as indented JSON
// and validates it against the embedded locale schema.
func LocaleDocument(code string) ([]byte, error) {
	data, err := json.MarshalIndent(MessagesFor(code), "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshal locale %q: %w", code, err)
	}
	data = append(data, '\n')

	if err := ValidateLocaleDocument(data); err != nil {
		return nil, fmt.Errorf("locale %q: %w", code, err)
	}
	return data, nil
}

// ValidateLocaleDocument checks raw JSON against the locale message schema.
func ValidateLocaleDocument(data []byte) error {
	schema, err := getLocaleSchema()
	if err != nil {
		return err
	}

	inst, err := jsonschema.UnmarshalJSON(bytes.NewReader(data))
	if err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidLocaleDocument, err)
	}
	if err := schema.Validate(inst); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidLocaleDocument, err)
	}
	return nil
}

// getLocaleSchema compiles the embedded schema once.
func getLocaleSchema() (*jsonschema.Schema, error) {
	localeSchemaOnce.Do(func() {
		doc, err := jsonschema.UnmarshalJSON(bytes.NewReader(localeSchemaBytes))
		if err != nil {
			localeSchemaError = fmt.Errorf("unmarshal locale schema: %w", err)
			return
		}

		c := jsonschema.NewCompiler()
		if err := c.AddResource("locale.schema.json", doc); err != nil {
			localeSchemaError = fmt.Errorf("add locale schema resource: %w", err)
			return
		}
		localeSchema, localeSchemaError = c.Compile("locale.schema.json")
		if localeSchemaError != nil {
			localeSchemaError = fmt.Errorf("compile locale schema: %w", localeSchemaError)
		}
	})
	return localeSchema, localeSchemaError
}
