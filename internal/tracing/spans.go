package tracing

import (
	"context"
	"fmt"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

// Span attribute keys for component lookups.
const (
	AttrLookupKind = "lookup.kind"
	AttrBeanName   = "bean.name"
	AttrBeanType   = "bean.type"
	AttrErrorType  = "error.type"
)

// Lookup kinds.
const (
	LookupByName        = "name"
	LookupByType        = "type"
	LookupByNameAndType = "name_and_type"
)

// StartLookup starts a span for a registry lookup. Empty name or typeName
// attributes are omitted.
func StartLookup(ctx context.Context, tracer trace.Tracer, kind, name, typeName string) (context.Context, trace.Span) {
	attrs := []attribute.KeyValue{attribute.String(AttrLookupKind, kind)}
	if name != "" {
		attrs = append(attrs, attribute.String(AttrBeanName, name))
	}
	if typeName != "" {
		attrs = append(attrs, attribute.String(AttrBeanType, typeName))
	}

	return tracer.Start(ctx, "beans.lookup."+kind, trace.WithAttributes(attrs...))
}

// EndLookup records err on span, if any, and ends it.
func EndLookup(span trace.Span, err error) {
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		span.SetAttributes(attribute.String(AttrErrorType, fmt.Sprintf("%T", err)))
	}
	span.End()
}
