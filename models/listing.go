// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package models holds the plain data types shared between the store
// adapter, the services and both user interfaces.
package models

import "fmt"

// AppListing is a single app entry returned by a store search.
//
// The pair is carried as-is through selection; the display label is derived
// from it and never parsed back.
type AppListing struct {
	Name  string `json:"name"`
	AppID string `json:"app_id"`
}

// Label renders the listing the way selectors show it:
// "<name> (ID: <app_id>)".
func (a AppListing) Label() string {
	return fmt.Sprintf("%s (ID: %s)", a.Name, a.AppID)
}

// SearchRequest describes one keyword search against the store.
type SearchRequest struct {
	Query  string
	Locale string
	Region string
	Limit  int
}
