// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// Credential is a single named secret held in the vault.
//
// Credentials are immutable once loaded: the state machine shares the same
// slice between consecutive states and never writes into it.
type Credential struct {
	// Name is the login or account name shown in the list.
	Name string
	// Secret is the password copied to the clipboard.
	Secret string
}

// String returns the display name of the credential. The secret is never
// part of the string form so a credential can be logged or rendered safely.
func (c Credential) String() string {
	return c.Name
}

// Record is the on-disk JSON form of a [Credential].
//
// The capitalized field names are fixed by files written with earlier
// versions of the vault and must not change.
type Record struct {
	Name     string `json:"Name"`
	Password string `json:"Password"`
}

// ToCredential converts the wire record into a [Credential].
func (r Record) ToCredential() Credential {
	return Credential{Name: r.Name, Secret: r.Password}
}

// NewRecord converts a [Credential] into its wire form.
func NewRecord(c Credential) Record {
	return Record{Name: c.Name, Password: c.Secret}
}
