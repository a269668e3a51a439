/*
Package executor builds, sends and decodes one HTTP request at a time.

# Overview

A Dispatcher owns a single long-lived HTTP client created by New. Execute
turns a types.RequestSpec into exactly one outbound request:
  - GET and DELETE carry no body
  - POST and PUT send the request body (empty when unset)
  - Accept and Content-Type are always application/json, overriding caller headers
  - Any other method fails with ErrInvalidMethod before any network I/O

There is no retry. The call blocks until the response body has been read in
full or the transport fails; DefaultTimeout bounds the whole exchange.

# Response Decoding

The body goes through a fallback chain, each step passing the previous result
through on failure:
  - raw bytes
  - UTF-8 text (invalid input becomes a readable decode-error message)
  - indented JSON when the text parses, the text itself otherwise

# Error Handling

Errors never escape Execute. They are folded into the outcome:
  - Status is "Error"
  - Body is "Error: " followed by a description from Describe
  - Err keeps the original error for errors.Is / errors.As

Taxonomy:
  - ErrInvalidMethod: unknown method, detected before building the request
  - *TransportError: DNS, connect, TLS, timeout and redirect failures
  - *DecodeError: body is not UTF-8, recovered into body text

# Example Usage

	d := executor.New(executor.WithLogger(log))
	body := `{"name":"John"}`
	out := d.Execute(&types.RequestSpec{
		Method:  types.MethodPost,
		URL:     "https://api.example.com/users?verbose",
		Headers: map[string]string{"Authorization": "Bearer abc"},
		Body:    &body,
	})
	fmt.Println(out.Status)
	fmt.Println(out.Body)
*/
package executor
