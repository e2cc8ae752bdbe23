package services

import "net/http"

// Every rule-engine failure is one of the typed errors below. Each carries
// the HTTP status it must translate to, so route handlers resolve errors to
// a JSON body in exactly one place (utils.RespondWithAppError).

type ValidationError struct{ Msg string }

func (e *ValidationError) Error() string { return e.Msg }
func (e *ValidationError) Status() int   { return http.StatusBadRequest }

type NotFoundError struct{ Msg string }

func (e *NotFoundError) Error() string { return e.Msg }
func (e *NotFoundError) Status() int   { return http.StatusNotFound }

type ConflictError struct{ Msg string }

func (e *ConflictError) Error() string { return e.Msg }
func (e *ConflictError) Status() int   { return http.StatusConflict }

type InvalidStateError struct{ Msg string }

func (e *InvalidStateError) Error() string { return e.Msg }
func (e *InvalidStateError) Status() int   { return http.StatusBadRequest }

type PastDateError struct{ Msg string }

func (e *PastDateError) Error() string { return e.Msg }
func (e *PastDateError) Status() int   { return http.StatusBadRequest }

// AuthError is deliberately generic: the same message and status for unknown
// email and wrong password, so callers cannot enumerate accounts.
type AuthError struct{ Msg string }

func (e *AuthError) Error() string { return e.Msg }
func (e *AuthError) Status() int   { return http.StatusUnauthorized }

type InactiveAccountError struct{ Msg string }

func (e *InactiveAccountError) Error() string { return e.Msg }
func (e *InactiveAccountError) Status() int   { return http.StatusUnauthorized }

// InvalidTokenError does not distinguish a missing token from an expired one.
type InvalidTokenError struct{ Msg string }

func (e *InvalidTokenError) Error() string { return e.Msg }
func (e *InvalidTokenError) Status() int   { return http.StatusBadRequest }
