package apitest

import (
	"context"
	"net/http"
)

func contextWithUser(r *http.Request, nickname string) context.Context {
	return context.WithValue(r.Context(), ctxKey{}, nickname)
}

func userFromContext(r *http.Request) string {
	nickname, _ := r.Context().Value(ctxKey{}).(string)
	return nickname
}
