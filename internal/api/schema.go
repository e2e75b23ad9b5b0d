package api

import (
	"errors"
	"fmt"
	"sort"

	"github.com/invopop/jsonschema"
)

// ErrUnknownSchema is returned for a schema name that is not published.
var ErrUnknownSchema = errors.New("unknown schema")

var schemaTypes = map[string]func() *jsonschema.Schema{
	"properties-request":   GenerateSchema[PropertyAnalysisRequest],
	"properties-response":  GenerateSchema[PropertyAnalysisResponse],
	"laplace-request":      GenerateSchema[LaplaceTransformRequest],
	"laplace-response":     GenerateSchema[LaplaceTransformResponse],
	"inverse-request":      GenerateSchema[InverseLaplaceRequest],
	"inverse-response":     GenerateSchema[InverseLaplaceResponse],
	"convolution-request":  GenerateSchema[ConvolutionRequest],
	"convolution-response": GenerateSchema[ConvolutionResponse],
	"convolution-frame":    GenerateSchema[FrameMessage],
	"convolution-control":  GenerateSchema[ControlMessage],
	"lti-request":          GenerateSchema[LTIAnalysisRequest],
	"lti-response":         GenerateSchema[LTIAnalysisResponse],
	"signal":               GenerateSchema[SignalResponse],
	"error":                GenerateSchema[ErrorResponse],
}

// GenerateSchema reflects the JSON schema of T without references, so each
// payload schema is self-contained.
func GenerateSchema[T any]() *jsonschema.Schema {
	reflector := jsonschema.Reflector{
		AllowAdditionalProperties:  false,
		DoNotReference:             true,
		RequiredFromJSONSchemaTags: true,
	}
	var v T
	return reflector.Reflect(v)
}

// SchemaNames lists the published payload schemas in sorted order.
func SchemaNames() []string {
	names := make([]string, 0, len(schemaTypes))
	for name := range schemaTypes {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Schema returns the named payload schema.
func Schema(name string) (*jsonschema.Schema, error) {
	gen, ok := schemaTypes[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownSchema, name)
	}
	return gen(), nil
}
