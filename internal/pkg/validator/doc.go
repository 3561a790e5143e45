// Package validator provides a small validation abstraction for domain
// structs such as cart items.
//
// Business code should depend on the Validator interface so validation can be
// shared and tested consistently. The concrete implementation is
// go-playground/validator v10 with custom quantity and price rules that
// delegate to package check.
package validator
