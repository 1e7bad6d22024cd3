package mcpclient

import (
	"errors"
	"strings"
)

// Call is one tool invocation request: tool name plus argument mapping.
type Call struct {
	Name      string
	Arguments map[string]any
}

// Validate rejects calls without a tool name.
func (c Call) Validate() error {
	if strings.TrimSpace(c.Name) == "" {
		return errors.New("tool name cannot be empty")
	}
	return nil
}

// Response is one tool invocation result. A response carries exactly one of
// content or error according to its success flag; NewResponse is the only
// way to construct one, so the invariant holds by construction.
type Response struct {
	ok      bool
	content string
	errMsg  string
}

// NewResponse builds a Response, rejecting combinations that violate the
// invariant: success requires content and forbids an error message, failure
// requires an error message and forbids content.
func NewResponse(ok bool, content, errMsg string) (Response, error) {
	switch {
	case ok && content == "":
		return Response{}, errors.New("successful response must have content")
	case ok && errMsg != "":
		return Response{}, errors.New("successful response must not carry an error")
	case !ok && errMsg == "":
		return Response{}, errors.New("failed response must have an error message")
	case !ok && content != "":
		return Response{}, errors.New("failed response must not carry content")
	}
	return Response{ok: ok, content: content, errMsg: errMsg}, nil
}

// OK reports whether the call succeeded.
func (r Response) OK() bool { return r.ok }

// Content returns the success payload ("" for failures).
func (r Response) Content() string { return r.content }

// Err returns the failure message ("" for successes).
func (r Response) Err() string { return r.errMsg }

// Text reduces the response to the plain string handed to the model:
// the content on success, an "Error: ..." string on failure.
func (r Response) Text() string {
	if r.ok {
		return r.content
	}
	return "Error: " + r.errMsg
}

func success(content string) Response {
	r, err := NewResponse(true, content, "")
	if err != nil {
		return failure(err.Error())
	}
	return r
}

func failure(msg string) Response {
	if msg == "" {
		msg = "unknown error"
	}
	return Response{ok: false, errMsg: msg}
}
