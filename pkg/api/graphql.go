package api

import (
	"encoding/json"
	"io"
	"mime"
	"net/http"
	"strings"

	"github.com/go-chi/render"
	"github.com/rs/zerolog/log"
)

type graphQLRequest struct {
	Query         string                 `json:"query"`
	OperationName string                 `json:"operationName"`
	Variables     map[string]interface{} `json:"variables"`
}

type graphQLError struct {
	Message string `json:"message"`
}

func renderRequestError(w http.ResponseWriter, r *http.Request, status int, message string) {
	graphqlRequests.WithLabelValues("invalid").Inc()
	render.Status(r, status)
	render.JSON(w, r, render.M{"errors": []graphQLError{{Message: message}}})
}

// GraphQL executes a query or mutation. GET takes query, operationName
// and JSON-encoded variables from the URL and only runs queries. POST takes a JSON body, or
// the raw document when sent as application/graphql.
func (a *LinkFeedAPIStruct) GraphQL(w http.ResponseWriter, r *http.Request) {
	var req graphQLRequest

	switch r.Method {
	case http.MethodGet:
		params := r.URL.Query()
		req.Query = params.Get("query")
		req.OperationName = params.Get("operationName")
		if v := params.Get("variables"); v != "" {
			if err := json.Unmarshal([]byte(v), &req.Variables); err != nil {
				renderRequestError(w, r, http.StatusBadRequest, "variables must be a JSON object")
				return
			}
		}
		if selectsMutation(req.Query, req.OperationName) {
			w.Header().Set("Allow", "POST")
			renderRequestError(w, r, http.StatusMethodNotAllowed, "mutations must use POST")
			return
		}
	case http.MethodPost:
		mediaType, _, _ := mime.ParseMediaType(r.Header.Get("Content-Type"))
		if mediaType == "application/graphql" {
			body, err := io.ReadAll(r.Body)
			if err != nil {
				renderRequestError(w, r, http.StatusBadRequest, "unable to read request body")
				return
			}
			req.Query = string(body)
		} else if err := render.DecodeJSON(r.Body, &req); err != nil {
			renderRequestError(w, r, http.StatusBadRequest, "invalid JSON request body")
			return
		}
	default:
		w.Header().Set("Allow", "GET, POST")
		renderRequestError(w, r, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	if strings.TrimSpace(req.Query) == "" {
		renderRequestError(w, r, http.StatusBadRequest, "query cannot be blank")
		return
	}

	resp := a.schema.Exec(r.Context(), req.Query, req.OperationName, req.Variables)

	if len(resp.Errors) > 0 {
		graphqlRequests.WithLabelValues("error").Inc()
		log.Debug().
			Str("operation", req.OperationName).
			Interface("errors", resp.Errors).
			Msg("GraphQL request returned errors")
	} else {
		graphqlRequests.WithLabelValues("ok").Inc()
	}

	render.JSON(w, r, resp)
}

type operation struct {
	kind string
	name string
}

// selectsMutation reports whether executing query with operationName would
// run a mutation. Only top-level tokens are inspected; documents the engine
// would reject anyway (unknown or ambiguous operation) report false.
func selectsMutation(query, operationName string) bool {
	var selected []operation
	for _, op := range topLevelOperations(query) {
		if op.kind == "fragment" {
			continue
		}
		if operationName == "" || op.name == operationName {
			selected = append(selected, op)
		}
	}
	return len(selected) == 1 && selected[0].kind == "mutation"
}

func topLevelOperations(query string) []operation {
	var (
		ops        []operation
		braces     int
		parens     int
		pending    bool
		expectName bool
	)

	for i := 0; i < len(query); {
		c := query[i]
		switch {
		case c == '#':
			for i < len(query) && query[i] != '\n' && query[i] != '\r' {
				i++
			}
			continue
		case strings.HasPrefix(query[i:], `"""`):
			i += 3
			for i < len(query) && !strings.HasPrefix(query[i:], `"""`) {
				if strings.HasPrefix(query[i:], `\"""`) {
					i += 4
					continue
				}
				i++
			}
			i += 3
			continue
		case c == '"':
			i++
			for i < len(query) && query[i] != '"' && query[i] != '\n' {
				if query[i] == '\\' {
					i++
				}
				i++
			}
			i++
			continue
		case c == '{':
			if braces == 0 && parens == 0 {
				if !pending {
					ops = append(ops, operation{kind: "query"})
				}
				pending = false
				expectName = false
			}
			braces++
		case c == '}':
			braces--
		case c == '(':
			expectName = false
			parens++
		case c == ')':
			parens--
		case isNameStart(c):
			start := i
			for i < len(query) && isNameContinue(query[i]) {
				i++
			}
			word := query[start:i]
			if braces == 0 && parens == 0 {
				switch {
				case expectName:
					ops[len(ops)-1].name = word
					expectName = false
				case word == "query" || word == "mutation" || word == "subscription" || word == "fragment":
					ops = append(ops, operation{kind: word})
					pending = true
					expectName = true
				}
			}
			continue
		default:
			if c == '@' {
				expectName = false
			}
		}
		i++
	}
	return ops
}

func isNameStart(c byte) bool {
	return c == '_' || (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}

func isNameContinue(c byte) bool {
	return isNameStart(c) || (c >= '0' && c <= '9')
}
