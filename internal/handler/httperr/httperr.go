// Package httperr defines the flat error envelope every endpoint returns.
// Handlers usually build it inline via gin.H; the middleware fallbacks use
// this type so panics and unhandled statuses produce the same shape.
package httperr

type Response struct {
	Status int    `json:"-"`
	Error  string `json:"error"`
	Field  string `json:"field,omitempty"`
}

func New(status int, msg string) Response {
	return Response{Status: status, Error: msg}
}

// WithField attaches the offending request field to a validation response.
func (r Response) WithField(field string) Response {
	r.Field = field
	return r
}
