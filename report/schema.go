package report

import "github.com/invopop/jsonschema"

// Schema returns the JSON schema for PromptReport, derived from the
// struct tags. Consumers validating serialized reports against
// SchemaVersion can use this instead of maintaining a schema by hand.
func Schema() *jsonschema.Schema {
	reflector := &jsonschema.Reflector{
		DoNotReference: true,
	}
	return reflector.Reflect(&PromptReport{})
}
