package auth

import "context"

// contextKey is a custom type for context keys to avoid collisions.
type contextKey string

// subjectKey is the context key for storing the authenticated subject.
const subjectKey contextKey = "auth_subject"

// ContextWithSubject adds the authenticated subject (user email) to the context.
func ContextWithSubject(ctx context.Context, subject string) context.Context {
	return context.WithValue(ctx, subjectKey, subject)
}

// SubjectFromContext retrieves the authenticated subject from the context.
// Returns empty string if the request is unauthenticated.
func SubjectFromContext(ctx context.Context) string {
	subject, ok := ctx.Value(subjectKey).(string)
	if !ok {
		return ""
	}
	return subject
}
