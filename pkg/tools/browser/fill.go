package browser

import (
	"context"
	"fmt"

	"github.com/RomanGod6/browserbot/pkg/tools"
)

// FillFormTool fills several form fields in order.
type FillFormTool struct {
	session *Session
}

// NewFillFormTool creates a new fill_form tool.
func NewFillFormTool(session *Session) *FillFormTool {
	return &FillFormTool{session: session}
}

// Name returns the tool name.
func (t *FillFormTool) Name() string {
	return "fill_form"
}

// Description returns the tool description.
func (t *FillFormTool) Description() string {
	return `Fill multiple form fields at once.

Each field has a selector, a value and an optional field_type:
- text (default): replaces the field's value
- checkbox / radio: checks when value is true, unchecks otherwise
- select: selects the option with the given value`
}

// Schema returns the tool's JSON schema.
func (t *FillFormTool) Schema() map[string]interface{} {
	return tools.BaseToolSchema(
		map[string]interface{}{
			"fields": map[string]interface{}{
				"type":        "array",
				"description": "Fields to fill, in order",
				"items": map[string]interface{}{
					"type": "object",
					"properties": map[string]interface{}{
						"selector": map[string]interface{}{"type": "string"},
						"value":    map[string]interface{}{"type": []string{"string", "boolean"}},
						"field_type": map[string]interface{}{
							"type":    "string",
							"enum":    []string{FieldTypeText, FieldTypeCheckbox, FieldTypeRadio, FieldTypeSelect},
							"default": FieldTypeText,
						},
					},
					"required": []string{"selector", "value"},
				},
			},
		},
		[]string{"fields"},
	)
}

// FillFormInput represents the parameters for filling a form.
type FillFormInput struct {
	Fields []tools.Arguments `json:"fields"`
}

// formField is one decoded entry of the fields argument.
type formField struct {
	Selector  string      `json:"selector"`
	Value     interface{} `json:"value"`
	FieldType string      `json:"field_type"`
}

func decodeFields(objects []tools.Arguments) ([]formField, error) {
	fields := make([]formField, 0, len(objects))
	for i, obj := range objects {
		f := formField{FieldType: FieldTypeText}
		if err := tools.Bind(obj, &f, "selector", "value"); err != nil {
			return nil, fmt.Errorf("fields[%d]: %w", i, err)
		}
		fields = append(fields, f)
	}
	return fields, nil
}

// truthy reports whether a checkbox value means "checked".
func truthy(v interface{}) bool {
	switch b := v.(type) {
	case bool:
		return b
	case string:
		return b == "true"
	}
	return false
}

// stringValue renders a field value for fill and select.
func stringValue(v interface{}) string {
	switch s := v.(type) {
	case nil:
		return ""
	case string:
		return s
	}
	return fmt.Sprint(v)
}

// Execute fills the fields.
func (t *FillFormTool) Execute(ctx context.Context, args tools.Arguments) (string, error) {
	page, err := t.session.Page()
	if err != nil {
		return "", err
	}

	var input FillFormInput
	if err := tools.Bind(args, &input, "fields"); err != nil {
		return "", err
	}
	fields, err := decodeFields(input.Fields)
	if err != nil {
		return "", err
	}

	for _, f := range fields {
		if err := fillField(page, f); err != nil {
			return "", tools.NewActionError("Form fill", fmt.Errorf("%s: %w", f.Selector, err))
		}
	}
	return fmt.Sprintf("Successfully filled %d fields", len(fields)), nil
}

func fillField(page Page, f formField) error {
	switch f.FieldType {
	case FieldTypeCheckbox, FieldTypeRadio:
		if truthy(f.Value) {
			return page.Check(f.Selector)
		}
		return page.Uncheck(f.Selector)
	case FieldTypeSelect:
		return page.SelectOption(f.Selector, stringValue(f.Value))
	default:
		return page.Fill(f.Selector, stringValue(f.Value))
	}
}
