// Package sortly provides a client for the Sortly inventory management API.
//
// Sortly is an inventory management service for tracking items, folders and
// custom fields. This package implements a thin, idiomatic Go binding over
// its REST API: it builds authenticated requests, decodes JSON responses,
// surfaces rate-limit headers and normalizes error responses into a small
// set of typed errors.
//
// # Architecture
//
//   - Client: holds the connection configuration and issues requests
//   - Typed errors: one error kind per failure class (auth, client, rate
//     limit, server, unclassified, validation)
//   - Rate-limit state: a snapshot of the most recent response's quota
//     headers, readable at any time via Client.RateLimit
//   - Endpoint operations: one method per REST resource/action
//
// # Usage
//
// Create a client with your API token:
//
//	logger := zerolog.New(os.Stderr)
//	client, err := sortly.NewClient("your-api-token", logger,
//		sortly.WithTimeout(15*time.Second),
//	)
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	ctx := context.Background()
//	item, err := client.CreateItem(ctx, sortly.Item{Name: "Widget"})
//	if err != nil {
//		log.Fatal(err)
//	}
//
// # Error Handling
//
// Every call returns either the decoded response or exactly one of the
// typed errors defined in this package. Nothing is retried internally;
// on a RateLimitError the caller decides when to retry, typically after
// the number of seconds reported by Client.RateLimit().Reset.
//
// A GET for a resource that does not exist is not treated as an error:
// fetch operations return a nil result instead.
package sortly
