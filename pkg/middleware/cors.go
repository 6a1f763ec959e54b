package middleware

import (
	"net/http"

	"github.com/rs/cors"
)

// CORS reflects the request origin and allows credentials, so browser
// clients on any host can send their cookies/tokens along.
func CORS() func(http.Handler) http.Handler {
	c := cors.New(cors.Options{
		AllowOriginFunc: func(origin string) bool {
			return true
		},
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Authorization", "Content-Type"},
		AllowCredentials: true,
	})

	return c.Handler
}
