// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package sandbox implements a local, in-memory Open311 GeoReport v2 server.
//
// It serves the resources the client consumes (discovery, services, service
// definitions, service requests and tokens) in both json and xml, so that
// the client and the command-line tool can be exercised without a real city
// server. State lives in memory and is lost when the process exits.
//
// Wiring:
//
//	store := sandbox.NewStore(sandbox.DefaultServices(), nil)
//	h := sandbox.NewHandler(store, sandbox.Config{APIKey: "key"}, log)
//	srv := sandbox.NewServer("localhost:8311", h.Init(), log)
//	err := srv.Run(ctx)
package sandbox
