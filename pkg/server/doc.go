// Package server exposes the sheet pipeline over HTTP.
//
// # Routes
//
//	POST /api/v1/sheets          lay out a sheet (body: pipeline.Options)
//	GET  /api/v1/sheets/{id}     fetch a stored sheet
//	GET  /api/v1/poems           list the poetry library
//	GET  /api/v1/poems/{id}      fetch one poem
//	GET  /api/v1/strokes/{char}  stroke count of one character
//	GET  /api/v1/version         build version
//	GET  /healthz                liveness probe
//
// Sheets are stored in the runner's cache under a random UUID for
// [cache.TTLSheet]. Errors are returned as {"code": ..., "message": ...}
// with the HTTP status derived from the error code.
//
// # Usage
//
//	srv := server.New(runner, logger)
//	if err := srv.Serve(ctx, ":8080"); err != nil {
//	    log.Fatal(err)
//	}
package server
