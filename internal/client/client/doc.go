// Package client is the request gateway between the event client and the
// remote backend.
//
// # Overview
//
//  1. HTTPClient.Request issues a single HTTP call: it joins the configured
//     base URL and a route, attaches the bearer token when one is given,
//     encodes a JSON or multipart body and decodes the JSON response.
//  2. Client is the typed API (auth, users, events, media, chat) built on
//     Request; HTTPClient implements it.
//  3. responses.go holds the wire shapes exactly as the backend sends them.
//
// # Error Handling
//
// A non-2xx response is a *StatusError ("invalid response status: N"). 401
// and 403 also match ErrUnauthorized, gateway errors match ErrUnavailable;
// transport failures wrap ErrUnavailable. Nothing is retried.
package client
