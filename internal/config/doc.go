// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package config provides configuration loading, merging, and validation
// facilities for the client and the server.
//
// Configuration is assembled from multiple sources in the following priority
// order (later sources override earlier non-zero fields):
//  1. Built-in defaults
//  2. A .env file in the working directory, if present
//  3. Environment variables
//  4. Command-line flags
//  5. JSON or YAML config file
//
// The main entry points are [GetServerConfig] for the API server and
// [GetClientConfig] for the terminal client.
package config
