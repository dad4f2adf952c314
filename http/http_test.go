package http

import (
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-kit/log"
	"github.com/stretchr/testify/assert"

	"go-money-parser/parser"
)

func newTestServer() *Server {
	service := parser.NewService()
	service = parser.NewCachingService(service)
	service = parser.NewLoggingService(log.NewNopLogger(), service)

	return NewServer(service)
}

func post(server *Server, body string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	r := httptest.NewRequest("POST", "/api/parse", strings.NewReader(body))
	server.ServeHTTP(w, r)
	return w
}

func TestServer_Parse(t *testing.T) {
	server := newTestServer()

	w := post(server, `{"input": "42.4 DOLLAR"}`)

	assert.Equal(t, 200, w.Code)
	assert.Equal(t, `{"amount":42.4,"currency":"Dollar"}`, strings.TrimSpace(w.Body.String()))
}

func TestServer_ParseFailures(t *testing.T) {
	server := newTestServer()

	tests := []struct {
		name string
		body string
		want string
	}{
		{
			"missing currency",
			`{"input": "140.01"}`,
			`{"error":"Expecting amount and currency"}`,
		},
		{
			"unknown currency",
			`{"input": "100 pesos"}`,
			`{"error":"Unknown currency"}`,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := post(server, tt.body)

			assert.Equal(t, 400, w.Code)
			assert.Equal(t, tt.want, strings.TrimSpace(w.Body.String()))
		})
	}
}

func TestServer_BadAmount(t *testing.T) {
	server := newTestServer()

	w := post(server, `{"input": "OneMillion Euro"}`)

	assert.Equal(t, 400, w.Code)
	assert.Contains(t, w.Body.String(), "Invalid input:")
}
