// Package auth provides a high-level API for persisting and retrieving user credentials from the system keyring.
package auth

import (
	"github.com/zalando/go-keyring"
)

const (
	service = "drumtake-cli"
	user    = "separator-api-key"
)

// SetKey persists the separation service API key to the system keyring.
func SetKey(apiKey string) error {
	return keyring.Set(service, user, apiKey)
}

// GetKey retrieves the separation service API key from the system keyring.
func GetKey() (string, error) {
	return keyring.Get(service, user)
}

// DeleteKey removes the separation service API key from the system keyring.
func DeleteKey() error {
	return keyring.Delete(service, user)
}
