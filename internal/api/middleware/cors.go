package middleware

import "net/http"

// Headers the game client sends with every call
const allowedHeaders = "authorization, x-client-info, apikey, content-type"

// CORS sets the cross-origin headers on every response and answers
// OPTIONS preflight requests directly, before auth runs.
func CORS(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Headers", allowedHeaders)

		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusOK)
			_, _ = w.Write([]byte("ok"))
			return
		}

		next.ServeHTTP(w, r)
	})
}
