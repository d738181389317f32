package common

import (
	"encoding/json"
	"fmt"
	"net/http"
	"sort"
	"strings"
)

const (
	methodsSeparator = ", "

	multiPartFormMaxMemory   = 32 << 20
	multiPartFormContentType = "multipart/form-data"

	accessControlAllowOriginHeader  = "Access-Control-Allow-Origin"
	accessControlAllowMethodsHeader = "Access-Control-Allow-Methods"
	accessControlAllowHeadersHeader = "Access-Control-Allow-Headers"
	accessControlExposeHeaders      = "Access-Control-Expose-Headers"
	contentTypeHeader               = "Content-Type"

	jsonContentType = "application/json"

	allowedOrigins = "*"
	allowedHeaders = "Accept, Content-Type, Content-Length, Accept-Encoding, X-CSRF-Token, Authorization, Method, Etag"
	exposedHeaders = "Etag"
)

// FormArgumentHandler handles a single form argument, returning payload to be included in the response under the argument name.
// Nil payload is omitted.
type FormArgumentHandler func(*http.Request) (Payload, error)
type FormArgumentValidator func(*http.Request) error

// FormArgumentPredicate decides whether the argument should be handled for the request.
// Arguments that are handled as part of other arguments use it to step aside.
type FormArgumentPredicate func(*http.Request) bool

type FormArgument struct {
	// Exclusive arguments cannot be provided together in a single request.
	Exclusive    bool
	Handle       FormArgumentHandler
	ShouldHandle FormArgumentPredicate
	Validate     FormArgumentValidator
}

type FormResponse struct {
	HandlerErrors
	Payloads map[string]Payload `json:"payloads,omitempty"`
}

type HandlerErrors struct {
	ArgumentErrors map[string]string `json:"argumentErrors"`
	GeneralError   string            `json:"generalError"`
}

type Payload interface{}

// FormHandlerConfig specifies arguments handled by a form handler.
type FormHandlerConfig struct {
	Arguments map[string]FormArgument
	// StatusForError maps an error returned by argument handler to HTTP status.
	// When nil, every handler error results in 500.
	StatusForError func(error) int
}

// MethodHandlers specifiy map between http method and respective handler function.
type MethodHandlers map[string]http.HandlerFunc

// PathHandlerConfig specifies per-path behavior for path handling middleware.
type PathHandlerConfig struct {
	MethodHandlers
	AllowCORS bool
}

// PathHandler returns a function acting as a middleware before handling specified path.
func PathHandler(cfg PathHandlerConfig) http.HandlerFunc {
	return func(res http.ResponseWriter, req *http.Request) {
		if cfg.AllowCORS {
			res.Header().Set(accessControlAllowOriginHeader, allowedOrigins)
			res.Header().Set(accessControlExposeHeaders, exposedHeaders)
		}

		method := req.Method
		if method == http.MethodOptions {
			optionsHandler(allowedMethods(cfg.MethodHandlers), res, req)

			return
		}

		if method == http.MethodHead {
			_, ok := cfg.MethodHandlers[http.MethodGet]
			if !ok {
				res.WriteHeader(http.StatusNotFound)

				return
			}

			res.WriteHeader(http.StatusOK)
			return
		}

		handler, ok := cfg.MethodHandlers[method]
		if !ok {
			res.WriteHeader(http.StatusMethodNotAllowed)

			return
		}

		handler(res, req)
	}
}

func optionsHandler(allowedMethods []string, res http.ResponseWriter, req *http.Request) {
	allowedMethods = append(allowedMethods, http.MethodOptions)

	res.Header().Set(accessControlAllowMethodsHeader, strings.Join(allowedMethods, methodsSeparator))
	res.Header().Set(accessControlAllowHeadersHeader, allowedHeaders)
}

func allowedMethods(handlers MethodHandlers) []string {
	var allowedMethods []string

	for method := range handlers {
		allowedMethods = append(allowedMethods, method)
	}
	sort.Strings(allowedMethods)

	return allowedMethods
}

// CreateFormHandler returns handler function responsible for correct validation and routing of arguments to their handlers.
// Handlers are called in the order of argument names. The first failing handler stops the processing.
func CreateFormHandler(cfg FormHandlerConfig) http.HandlerFunc {
	return func(res http.ResponseWriter, req *http.Request) {
		responsePayload := FormResponse{}

		selectedArgHandlers, errors := validateFormRequest(req, cfg.Arguments)
		responsePayload.GeneralError = errors.GeneralError
		responsePayload.ArgumentErrors = errors.ArgumentErrors

		if responsePayload.GeneralError != "" || len(responsePayload.ArgumentErrors) != 0 {
			WriteJSON(res, http.StatusBadRequest, responsePayload)

			return
		}

		for _, argHandler := range selectedArgHandlers {
			payload, err := argHandler.handle(req)
			if err != nil {
				status := http.StatusInternalServerError
				if cfg.StatusForError != nil {
					status = cfg.StatusForError(err)
				}

				responsePayload.GeneralError = err.Error()
				WriteJSON(res, status, responsePayload)

				return
			}

			if payload == nil {
				continue
			}

			if responsePayload.Payloads == nil {
				responsePayload.Payloads = map[string]Payload{}
			}
			responsePayload.Payloads[argHandler.name] = payload
		}

		WriteJSON(res, http.StatusOK, responsePayload)
	}
}

type namedArgumentHandler struct {
	name   string
	handle FormArgumentHandler
}

// validateFormRequest checks form body for arguments and their correctnes.
// Result of validation is an array of arguments that have handlers associated and handlerErrors (if any occured).
func validateFormRequest(req *http.Request, arguments map[string]FormArgument) ([]namedArgumentHandler, HandlerErrors) {
	correctHandlers := []namedArgumentHandler{}
	handlerErrors := HandlerErrors{
		ArgumentErrors: map[string]string{},
	}

	var err error
	if multipartFormRequest(req) {
		err = req.ParseMultipartForm(multiPartFormMaxMemory)
	} else {
		err = req.ParseForm()
	}

	if err != nil {
		handlerErrors.GeneralError = fmt.Sprintf("could not parse form data: %s", err)

		return correctHandlers, handlerErrors
	}

	argNames := []string{}
	for argName := range req.PostForm {
		argNames = append(argNames, argName)
	}
	sort.Strings(argNames)

	if len(argNames) == 0 {
		handlerErrors.GeneralError = "no arguments provided"

		return correctHandlers, handlerErrors
	}

	exclusiveArgs := []string{}
	for _, argName := range argNames {
		argument, ok := arguments[argName]
		if ok && argument.Exclusive {
			exclusiveArgs = append(exclusiveArgs, argName)
		}
	}

	if len(exclusiveArgs) > 1 {
		handlerErrors.GeneralError = fmt.Sprintf("arguments %s cannot be combined in a single request", strings.Join(exclusiveArgs, methodsSeparator))

		return []namedArgumentHandler{}, handlerErrors
	}

	for _, argName := range argNames {
		argument, ok := arguments[argName]
		if !ok {
			handlerErrors.ArgumentErrors[argName] = fmt.Sprintf("the %s argument handler is not defined", argName)
			continue
		}

		var validateErr error = nil
		if argument.Validate != nil {
			validateErr = argument.Validate(req)
		}

		if validateErr != nil {
			handlerErrors.ArgumentErrors[argName] = fmt.Sprintf("the %s argument is invalid: %s", argName, validateErr)
			continue
		}

		if argument.Handle == nil {
			continue
		}

		if argument.ShouldHandle != nil && !argument.ShouldHandle(req) {
			continue
		}

		correctHandlers = append(correctHandlers, namedArgumentHandler{
			name:   argName,
			handle: argument.Handle,
		})
	}

	return correctHandlers, handlerErrors
}

func multipartFormRequest(req *http.Request) bool {
	contentType, ok := req.Header[contentTypeHeader]

	return ok && len(contentType) > 0 && strings.Contains(contentType[0], multiPartFormContentType)
}

// WriteJSON encodes payload and writes it with the status.
// When encoding fails, 500 with the encoding error is written instead.
func WriteJSON(res http.ResponseWriter, status int, payload interface{}) {
	out, err := json.Marshal(payload)
	if err != nil {
		res.WriteHeader(http.StatusInternalServerError)
		res.Write([]byte(fmt.Sprintf("could not encode json payload: %s\n", err)))

		return
	}

	res.Header().Set(contentTypeHeader, jsonContentType)
	res.WriteHeader(status)
	res.Write(out)
}
