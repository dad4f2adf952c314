package main

import (
	"os"

	"github.com/go-kit/log"

	"go-money-parser/http"
	"go-money-parser/parser"

	nhttp "net/http"
)

func main() {
	w := log.NewSyncWriter(os.Stderr)
	logger := log.NewLogfmtLogger(w)
	logger = log.With(logger, "ts", log.DefaultTimestampUTC, "caller", log.DefaultCaller)

	parserService := parser.NewService()
	parserService = parser.NewCachingService(parserService)
	parserService = parser.NewLoggingService(log.With(logger, "component", "parser"), parserService)

	handler := http.NewServer(parserService)
	logger.Log("msg", "listening", "addr", ":8080")
	if err := nhttp.ListenAndServe(":8080", handler); err != nil {
		logger.Log("msg", "server stopped", "err", err)
		os.Exit(1)
	}
}
