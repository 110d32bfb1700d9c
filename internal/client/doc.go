// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client implements the terminal application runtime.
//
// It owns the process lifecycle of the terminal front end and hands control
// to the UI until the user quits or the process receives a stop signal.
package client
