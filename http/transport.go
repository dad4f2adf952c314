package http

import (
	"context"
	"encoding/json"
	"io/ioutil"
	"net/http"

	"go-money-parser/parser"
)

// Server dependencies for HTTP Server functions
type Server struct {
	Service parser.Service
	router  http.ServeMux
}

func NewServer(s parser.Service) *Server {
	server := &Server{
		Service: s,
		router:  http.ServeMux{},
	}
	server.routes()
	return server
}

func (s *Server) routes() {
	s.router.Handle("/api/parse", s.parse())
}

func (s *Server) ServeHTTP(rw http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(rw, r)
}

// parse produces HTTP handler for parsing monetary values
func (s *Server) parse() http.HandlerFunc {

	// request for unmarshalling JSON requests posted by clients
	type request struct {
		Input string
	}

	// response for marshalling JSON responses to return to clients
	type response struct {
		Amount   float32 `json:"amount"`
		Currency string  `json:"currency"`
	}

	// failure for marshalling JSON error responses
	type failure struct {
		Error string `json:"error"`
	}

	return func(rw http.ResponseWriter, r *http.Request) {
		defer r.Body.Close()

		rw.Header().Set("Content-Type", "application/json")

		bytes, err := ioutil.ReadAll(r.Body)
		if err != nil {
			rw.WriteHeader(http.StatusBadRequest)
			rw.Write([]byte(`{"error": "invalid request"}`))
			return
		}

		var request request
		err = json.Unmarshal(bytes, &request)
		if err != nil {
			rw.WriteHeader(http.StatusBadRequest)
			rw.Write([]byte(`{"error": "invalid json"}`))
			return
		}

		result, err := s.Service.Parse(context.Background(), request.Input)
		if err != nil {
			rw.WriteHeader(http.StatusBadRequest)
			enc := json.NewEncoder(rw)
			_ = enc.Encode(&failure{Error: err.Error()})
			return
		}

		response := response{
			Amount:   result.Amount,
			Currency: result.Currency.String(),
		}

		enc := json.NewEncoder(rw)
		err = enc.Encode(&response)
		if err != nil {
			rw.WriteHeader(http.StatusInternalServerError)
			rw.Write([]byte(`{"error": "failed json encoding"}`))
			return
		}
	}
}
