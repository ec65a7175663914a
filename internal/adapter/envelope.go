// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/MKhiriev/go-todo-keeper/models"
	"github.com/go-resty/resty/v2"
	"github.com/santhosh-tekuri/jsonschema/v5"
)

const envelopeSchemaJSON = `{
	"type": "object",
	"required": ["success"],
	"properties": {
		"success": {"type": "boolean"},
		"errors": {
			"type": ["array", "null"],
			"items": {"type": "string"}
		}
	}
}`

const listDataSchemaJSON = `{
	"type": "array",
	"items": {
		"type": "object",
		"required": ["id", "name"],
		"properties": {
			"id": {"type": ["string", "number"]},
			"name": {"type": "string"},
			"description": {"type": ["string", "null"]}
		}
	}
}`

const createDataSchemaJSON = `{
	"type": ["string", "number"]
}`

var (
	envelopeSchema   = jsonschema.MustCompileString("envelope.json", envelopeSchemaJSON)
	listDataSchema   = jsonschema.MustCompileString("list-data.json", listDataSchemaJSON)
	createDataSchema = jsonschema.MustCompileString("create-data.json", createDataSchemaJSON)
)

// decodeEnvelope validates and decodes the response body.
//
// A body that is not a valid envelope is reported with the HTTP status
// sentinel when the status is not 2xx, and as ErrMalformedResponse
// otherwise. An envelope with success=false always yields *ServerError.
// A successful envelope on a non-2xx status is still a failure.
// dataSchema, when given, is applied to a non-null data payload.
func decodeEnvelope(resp *resty.Response, dataSchema *jsonschema.Schema) (models.Envelope, error) {
	body := resp.Body()

	var doc interface{}
	if err := json.Unmarshal(body, &doc); err != nil {
		return models.Envelope{}, malformed(resp, err)
	}
	if err := envelopeSchema.Validate(doc); err != nil {
		return models.Envelope{}, malformed(resp, schemaError(err))
	}

	var envelope models.Envelope
	if err := json.Unmarshal(body, &envelope); err != nil {
		return models.Envelope{}, malformed(resp, err)
	}

	if !envelope.Success {
		return envelope, newServerError(resp.StatusCode(), envelope, body)
	}
	if err := statusError(resp); err != nil {
		return envelope, err
	}

	if dataSchema != nil && envelope.HasData() {
		data := doc.(map[string]interface{})["data"]
		if err := dataSchema.Validate(data); err != nil {
			return envelope, fmt.Errorf("%w: data: %v", ErrMalformedResponse, schemaError(err))
		}
	}

	return envelope, nil
}

func malformed(resp *resty.Response, cause error) error {
	if err := statusError(resp); err != nil {
		return err
	}
	return fmt.Errorf("%w: %v", ErrMalformedResponse, cause)
}

func newServerError(status int, envelope models.Envelope, body []byte) *ServerError {
	messages := append([]string(nil), envelope.Errors...)
	if msg := errorFieldText(envelope.Error); msg != "" {
		messages = append(messages, msg)
	}

	var compact bytes.Buffer
	if err := json.Compact(&compact, body); err != nil {
		compact.Reset()
		compact.Write(bytes.TrimSpace(body))
	}

	return &ServerError{
		StatusCode: status,
		Messages:   messages,
		Body:       compact.String(),
	}
}

// errorFieldText renders the optional "error" member: strings are unquoted,
// anything else is kept as compact JSON.
func errorFieldText(raw json.RawMessage) string {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 || string(raw) == "null" {
		return ""
	}

	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		return s
	}

	var compact bytes.Buffer
	if err := json.Compact(&compact, raw); err != nil {
		return string(raw)
	}
	return compact.String()
}

func schemaError(err error) error {
	ve, ok := err.(*jsonschema.ValidationError)
	if !ok {
		return err
	}

	var messages []string
	collectSchemaErrors(ve, &messages)
	return fmt.Errorf("%s", strings.Join(messages, "; "))
}

func collectSchemaErrors(err *jsonschema.ValidationError, messages *[]string) {
	if len(err.Causes) == 0 {
		location := err.InstanceLocation
		if location == "" {
			location = "/"
		}
		*messages = append(*messages, fmt.Sprintf("%s: %s", location, err.Message))
		return
	}

	for _, cause := range err.Causes {
		collectSchemaErrors(cause, messages)
	}
}
