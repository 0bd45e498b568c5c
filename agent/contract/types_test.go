package contract

import (
	"reflect"
	"testing"
)

func TestJSONSchema(t *testing.T) {
	t.Parallel()

	info := ToolInfo{
		Name: "quote.generate",
		Params: map[string]*ParameterInfo{
			"quantity":     {Type: Integer, Desc: "Units to quote", Required: true},
			"customer_id":  {Type: Integer, Desc: "Customer id", Required: true},
			"product_name": {Type: String, Desc: "Product name", Required: true},
			"notes":        {Type: String, Desc: "Optional notes"},
		},
	}

	schema := info.JSONSchema()
	if schema["type"] != "object" {
		t.Fatalf("unexpected schema type: %v", schema["type"])
	}

	properties, ok := schema["properties"].(map[string]any)
	if !ok || len(properties) != 4 {
		t.Fatalf("unexpected properties: %#v", schema["properties"])
	}
	qty, ok := properties["quantity"].(map[string]any)
	if !ok || qty["type"] != "integer" || qty["description"] != "Units to quote" {
		t.Fatalf("unexpected quantity property: %#v", properties["quantity"])
	}

	wantRequired := []string{"customer_id", "product_name", "quantity"}
	if !reflect.DeepEqual(schema["required"], wantRequired) {
		t.Fatalf("required list must be sorted and exclude optionals: %#v", schema["required"])
	}
}

func TestJSONSchemaNoRequiredKeyWhenAllOptional(t *testing.T) {
	t.Parallel()

	info := ToolInfo{
		Name: "noop",
		Params: map[string]*ParameterInfo{
			"hint": {Type: String, Desc: "Optional hint"},
		},
	}
	if _, ok := info.JSONSchema()["required"]; ok {
		t.Fatal("required key must be omitted when nothing is required")
	}
}
