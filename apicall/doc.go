// Package apicall normalizes backend responses into a single success/failure
// decision plus a typed payload.
//
// Backends disagree on how they report success: an HTTP status code, a
// boolean flag, a "status": "success" string. A Resolver captures that
// convention once; Response carries the raw status, an optional message,
// and a parsed payload without interpreting any of them; Call ties the two
// together at every call site.
//
//	cfg := apicall.NewConfig(apicall.DefaultResolver)
//
//	user, err := apicall.Call(ctx, cfg, func(ctx context.Context) (*apicall.Response[User], error) {
//	    resp, err := client.Get(ctx, "/users/42")
//	    if err != nil {
//	        return nil, err
//	    }
//	    raw, err := resp.Map()
//	    if err != nil {
//	        return nil, err
//	    }
//	    return apicall.ResponseFrom(raw,
//	        func(r map[string]any) any { return r["status"] },
//	        func(r map[string]any) string { s, _ := r["message"].(string); return s },
//	        parseUser,
//	    )
//	}, showToast)
//
// Call distinguishes two failure modes. A business failure is a structurally
// valid response the resolver rejects: the error callback receives the
// backend's message and the call returns no value and no error. An
// operational failure is anything that goes wrong producing the envelope
// (network error, decode error, parser error): the callback receives a fixed
// generic message and the original error is returned to the caller, never
// swallowed.
package apicall
