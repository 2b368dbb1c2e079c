package api

import (
	"context"
	"errors"
)

type keyType string

const requestIDKey keyType = "requestID"

// ctxWithRequestID adds a request ID to the context
func ctxWithRequestID(ctx context.Context, requestID string) context.Context {
	return context.WithValue(ctx, requestIDKey, requestID)
}

// ctxGetRequestID retrieves the request ID from the context
func ctxGetRequestID(ctx context.Context) (string, error) {
	ctxValue := ctx.Value(requestIDKey)
	if ctxValue == nil {
		return "", errors.New("request ID not found in context")
	}
	valueAsString, ok := ctxValue.(string)
	if !ok {
		return "", errors.New("request ID is not of type `string`")
	}
	return valueAsString, nil
}
