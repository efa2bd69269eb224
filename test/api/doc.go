/*
Copyright 2024-2025 the Unikorn Authors.

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

    http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

// Package api provides integration test utilities for the Commercial Event
// Notifications API.
//
// # Separate Client Implementation
//
// Most scenarios drive the service through the generated client wrapped by
// the notifications package.  This package also maintains a small raw HTTP
// client (APIClient) that shares only the signing transport with it.  Any
// legitimate change to the OpenAPI document must have a compensating change
// in the raw client, making API evolution more explicit and reviewable.
//
// The raw client includes features tailored for integration testing:
//   - W3C trace context propagation for request correlation
//   - Detailed error logging with trace IDs for debugging
//   - Direct access to HTTP status codes and response bodies
//
// # Environment
//
// Credentials are read from CEN_* environment variables or a .env file,
// see the client package.  SKIP_INTEGRATION=true skips every suite.
package api
