// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package telemetry

import "go.opentelemetry.io/otel/attribute"

// Langfuse maps langfuse.* attributes onto its own trace model; the function.*
// keys keep the spans readable in any other OTLP backend.
func functionNameAttr(name string) attribute.KeyValue {
	return attribute.String("function.name", name)
}

func functionArgsAttr(args string) attribute.KeyValue {
	return attribute.String("function.args", args)
}

func observationInputAttr(input string) attribute.KeyValue {
	return attribute.String("langfuse.observation.input", input)
}

func observationOutputAttr(output string) attribute.KeyValue {
	return attribute.String("langfuse.observation.output", output)
}

func sessionIDAttr(id string) attribute.KeyValue {
	return attribute.String("langfuse.session.id", id)
}

func serviceNameAttr(name string) attribute.KeyValue {
	return attribute.String("service.name", name)
}
