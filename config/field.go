package config

import (
	"encoding/json"
	"fmt"
	"reflect"
	"strconv"
	"strings"
	"text/template"

	"github.com/AvaAvarai/IndimensionalYoutube/color"
	"github.com/AvaAvarai/IndimensionalYoutube/constant"
	"github.com/AvaAvarai/IndimensionalYoutube/style"
	"github.com/spf13/viper"
)

// Field is a config key with its default value.
// The type of Value is the type the key is read and written as.
type Field struct {
	Key         string
	Value       any
	Description string
}

// Env is the environment variable that overrides the field.
func (f *Field) Env() string {
	return strings.ToUpper(constant.App + "_" + EnvKeyReplacer.Replace(f.Key))
}

func (f *Field) typeName() string {
	if f.Value == nil {
		return "unknown"
	}
	return reflect.TypeOf(f.Value).String()
}

func (f *Field) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Key         string `json:"key"`
		Env         string `json:"env"`
		Value       any    `json:"value"`
		Default     any    `json:"default"`
		Description string `json:"description"`
		Type        string `json:"type"`
	}{
		Key:         f.Key,
		Env:         f.Env(),
		Value:       viper.Get(f.Key),
		Default:     f.Value,
		Description: f.Description,
		Type:        f.typeName(),
	})
}

func highlight(v any) string {
	switch value := v.(type) {
	case bool:
		if value {
			return style.Fg(color.Green)(strconv.FormatBool(value))
		}
		return style.Fg(color.Red)(strconv.FormatBool(value))
	case string:
		return style.Fg(color.Yellow)(strconv.Quote(value))
	case []string:
		return style.Fg(color.Yellow)(strings.Join(value, ", "))
	default:
		return fmt.Sprint(value)
	}
}

var prettyTemplate = template.Must(template.New("pretty").Funcs(template.FuncMap{
	"faint":  style.Faint,
	"purple": style.Fg(color.Purple),
	"label":  style.Fg(color.Blue),
	"hl":     highlight,
	"current": func(k string) any {
		return viper.Get(k)
	},
}).Parse(`{{ faint .Description }}
{{ label "Key:" }}     {{ purple .Key }}
{{ label "Env:" }}     {{ .Env }}
{{ label "Value:" }}   {{ hl (current .Key) }}
{{ label "Default:" }} {{ hl .Value }}
{{ label "Type:" }}    {{ .TypeName }}`))

// Pretty describes the field for the terminal.
func (f *Field) Pretty() string {
	var b strings.Builder
	if err := prettyTemplate.Execute(&b, struct {
		*Field
		TypeName string
	}{f, f.typeName()}); err != nil {
		return f.Key
	}
	return b.String()
}
