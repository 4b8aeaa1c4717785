// Package apikit wires a transport client and a response-normalization
// dispatcher into one initialize-once unit.
//
// Define how your backend reports success a single time, then use one call
// shape everywhere:
//
//	kit, err := apikit.Init(apikit.Options{
//	    BaseURL:  "https://api.example.com",
//	    Resolver: apicall.DefaultResolver,
//	    Interceptors: []transport.Interceptor{
//	        transport.RequestID(),
//	        transport.Tracing(),
//	    },
//	})
//
//	users, err := apikit.Call(ctx, kit, apikit.JSONRequest[[]User](kit,
//	    http.MethodGet, "/users",
//	    func(r map[string]any) any { return r["status"] },
//	    func(r map[string]any) string { s, _ := r["message"].(string); return s },
//	    parseUsers,
//	), showToast)
//
// Init installs the kit as the process-wide default (repeated calls
// replace it; the last call wins) so applications that prefer singleton
// ergonomics can use CallDefault. Libraries and tests should build kits
// with New and pass them explicitly.
package apikit
