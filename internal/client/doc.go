// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client implements the interactive client application runtime.
//
// It restores the stored session and drives the terminal UI through the
// login and chat phases for the lifetime of the process.
package client
