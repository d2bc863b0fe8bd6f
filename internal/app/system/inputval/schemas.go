// internal/app/system/inputval/schemas.go
package inputval

import "github.com/dalemusser/gliweb/internal/domain/models"

const datePattern = `^[0-9]{4}-[0-9]{2}-[0-9]{2}$`

var (
	stringType = map[string]any{"type": "string"}
	dateType   = map[string]any{"type": "string", "pattern": datePattern}
)

func nullable(s map[string]any) map[string]any {
	return map[string]any{"anyOf": []any{map[string]any{"type": "null"}, s}}
}

func enumOf[T ~string](values []T) map[string]any {
	out := make([]any, len(values))
	for i, v := range values {
		out[i] = string(v)
	}
	return map[string]any{"type": "string", "enum": out}
}

// GroupCreate validates POST /api/gli-groepen bodies.
var GroupCreate = MustCompile("gli_group_create", map[string]any{
	"type":     "object",
	"required": []any{"gli_aanbieder", "type_gli", "startdatum_groep", "groepnummer", "status"},
	"properties": map[string]any{
		"gli_aanbieder":    stringType,
		"type_gli":         enumOf(models.GLITypes),
		"startdatum_groep": dateType,
		"einddatum_groep":  nullable(dateType),
		"groepnummer":      stringType,
		"status":           enumOf(models.GroupStatuses),
	},
})

// GroupUpdate validates PUT /api/gli-groepen/{id} bodies. Every field is
// optional and null means "leave unchanged".
var GroupUpdate = MustCompile("gli_group_update", map[string]any{
	"type": "object",
	"properties": map[string]any{
		"gli_aanbieder":    nullable(stringType),
		"type_gli":         nullable(enumOf(models.GLITypes)),
		"startdatum_groep": nullable(dateType),
		"einddatum_groep":  nullable(dateType),
		"groepnummer":      nullable(stringType),
		"status":           nullable(enumOf(models.GroupStatuses)),
	},
})

var Register = MustCompile("user_register", map[string]any{
	"type":     "object",
	"required": []any{"email", "password", "name", "role"},
	"properties": map[string]any{
		"email":    stringType,
		"password": stringType,
		"name":     stringType,
		"role":     enumOf(models.Roles),
	},
})

var Login = MustCompile("user_login", map[string]any{
	"type":     "object",
	"required": []any{"email", "password"},
	"properties": map[string]any{
		"email":    stringType,
		"password": stringType,
	},
})

var Contact = MustCompile("contact_request", map[string]any{
	"type":     "object",
	"required": []any{"name", "email", "message", "request_type"},
	"properties": map[string]any{
		"name":         stringType,
		"email":        stringType,
		"phone":        nullable(stringType),
		"message":      stringType,
		"request_type": stringType,
	},
})
