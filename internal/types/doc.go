/*
Package types defines the data structures shared by the params, executor, session
and front-end packages.

# Request Types

QueryParam:
  - One (key, value, note) row of the params table
  - Kept in an ordered slice; duplicate keys are legal
  - Note is never serialized into the URL

RequestSpec:
  - Method, URL, headers, optional body and optional bearer token
  - Built fresh for every send
  - Body is only sent for POST and PUT

# Response Types

ResponseOutcome:
  - Status label ("200 OK" or "Error")
  - Displayable body text, always set after a dispatch
  - Duration, sizes and response headers
  - The underlying error, if any, for logging and exit codes

# Dispatch State

A send moves through Idle, Building and InFlight, and ends in either
Completed or Failed. Both terminal states carry a populated outcome.

# Field Tags

Request and response types carry JSON and YAML tags so the CLI can print
them in either format. Errors and the bearer token are never serialized.
*/
package types
