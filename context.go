package amazonauth

import "context"

type requestCtxKey struct{}

type userCtxKey struct{}

type infoCtxKey struct{}

func contextWithRequest(ctx context.Context, r Request) context.Context {
	return context.WithValue(ctx, requestCtxKey{}, r)
}

// RequestFromContext returns the request that triggered the current verify
// call. It is populated only for strategies built with WithPassRequest.
func RequestFromContext(ctx context.Context) (Request, bool) {
	r, ok := ctx.Value(requestCtxKey{}).(Request)
	return r, ok
}

// ContextWithUser stores an authenticated user and the accompanying info on
// the context. The default middleware success handler uses it; custom hosts
// may call it directly.
func ContextWithUser(ctx context.Context, user any, info Info) context.Context {
	ctx = context.WithValue(ctx, userCtxKey{}, user)
	if info != nil {
		ctx = context.WithValue(ctx, infoCtxKey{}, info)
	}
	return ctx
}

// UserFromContext returns the authenticated user stored by the middleware,
// or nil if the request did not pass authentication.
func UserFromContext(ctx context.Context) any {
	return ctx.Value(userCtxKey{})
}

// InfoFromContext returns the info attached to a successful authentication.
func InfoFromContext(ctx context.Context) Info {
	info, _ := ctx.Value(infoCtxKey{}).(Info)
	return info
}
