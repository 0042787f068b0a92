package utils

import (
	"context"

	"medibook-service/internal/pkg/constvars"
)

func GetRequestID(ctx context.Context) string {
	if requestID, ok := ctx.Value(constvars.ContextRequestIDKey).(string); ok {
		return requestID
	}
	return ""
}

func GetBearerToken(ctx context.Context) string {
	if token, ok := ctx.Value(constvars.ContextBearerTokenKey).(string); ok {
		return token
	}
	return ""
}

func GetUserID(ctx context.Context) string {
	if userID, ok := ctx.Value(constvars.ContextUserIDKey).(string); ok {
		return userID
	}
	return ""
}
