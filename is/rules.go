package is

import (
	validation "github.com/go-ozzo/ozzo-validation/v4"
	ozzois "github.com/go-ozzo/ozzo-validation/v4/is"
)

var (
	// ErrURI is the error returned by the URI rule.
	ErrURI = validation.NewError("validation_is_uri", "must be a valid URI path")
	// ErrBool is the error returned by the Bool rule.
	ErrBool = validation.NewError("validation_is_bool", "must be a boolean value")
)

// Rules wrapping the predicates. Empty values pass; combine with
// validation.Required to demand presence.
var (
	Integer      = validation.NewStringRuleWithError(IsInteger, ozzois.ErrInt)
	Float        = validation.NewStringRuleWithError(IsFloat, ozzois.ErrFloat)
	Alpha        = validation.NewStringRuleWithError(IsAlpha, ozzois.ErrAlpha)
	Alphanumeric = validation.NewStringRuleWithError(IsAlphanumeric, ozzois.ErrAlphanumeric)
	URL          = validation.NewStringRuleWithError(IsURL, ozzois.ErrURL)
	URI          = validation.NewStringRuleWithError(IsURI, ErrURI)
	Bool         = validation.NewStringRuleWithError(IsBool, ErrBool)
	Email        = validation.NewStringRuleWithError(IsEmail, ozzois.ErrEmail)
)
