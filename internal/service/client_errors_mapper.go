// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"errors"
	"net/http"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/MKhiriev/fresh-alert/internal/adapter"
)

// mapAdapterError translates the adapter's transport error into a gateway
// error carrying the backend's message, or fallback when there is none.
func mapAdapterError(kind error, fallback string, err error) error {
	if err == nil {
		return nil
	}

	msg := adapter.Message(err)
	if msg == "" {
		msg = fallback
	}

	return &GatewayError{Kind: kind, Message: msg, Err: err}
}

// mapRecognitionError is like mapAdapterError but always prefixes the
// message so recognition failures read differently from other food errors.
func mapRecognitionError(err error) error {
	if err == nil {
		return nil
	}

	detail := adapter.Message(err)
	if detail == "" {
		detail = describeTransport(err)
	}

	return &GatewayError{Kind: ErrFood, Message: MsgRecognitionFailedPrefix + detail, Err: err}
}

func describeTransport(err error) string {
	var respErr *adapter.ResponseError
	switch {
	case errors.As(err, &respErr):
		if text := http.StatusText(respErr.StatusCode); text != "" {
			return text
		}
		return respErr.Err.Error()
	case errors.Is(err, adapter.ErrEmptyResponse):
		return adapter.ErrEmptyResponse.Error()
	case errors.Is(err, adapter.ErrDecodeResponse):
		return adapter.ErrDecodeResponse.Error()
	default:
		return "server unreachable"
	}
}

// UserMessage converts any error returned by this package (or wrapping one)
// into the text shown to the user. It returns "" for a nil error.
func UserMessage(err error) string {
	if err == nil {
		return ""
	}

	var gwErr *GatewayError
	if errors.As(err, &gwErr) {
		return gwErr.Message
	}

	if errors.Is(err, ErrRecognitionIncomplete) {
		return MsgRecognitionIncomplete
	}

	var valErr *ValidationError
	if errors.As(err, &valErr) {
		return capitalize(valErr.Err.Error())
	}

	return capitalize(err.Error())
}

func capitalize(s string) string {
	s = strings.TrimSpace(s)
	r, size := utf8.DecodeRuneInString(s)
	if r == utf8.RuneError {
		return s
	}
	return string(unicode.ToUpper(r)) + s[size:]
}
