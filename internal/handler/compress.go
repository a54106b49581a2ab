package handler

import (
	"io"
	"net/http"
	"strings"

	"github.com/andybalholm/brotli"
)

// Compress brotli-encodes responses for clients advertising br in
// Accept-Encoding. Anything else passes through unencoded.
func Compress(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !strings.Contains(r.Header.Get("Accept-Encoding"), "br") {
			next.ServeHTTP(w, r)
			return
		}

		w.Header().Set("Content-Encoding", "br")
		w.Header().Del("Content-Length")

		bw := brotli.NewWriter(w)
		defer bw.Close()

		next.ServeHTTP(&brotliResponseWriter{ResponseWriter: w, writer: bw}, r)
	})
}

type brotliResponseWriter struct {
	http.ResponseWriter
	writer io.Writer
}

func (w *brotliResponseWriter) Write(p []byte) (int, error) {
	return w.writer.Write(p)
}
