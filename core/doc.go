// Package core contains the lookup logic for the Hub do Desenvolvedor API.
// It does not depend on any concrete transport or logging library.
//
// The core package is organized into several sub-packages:
//
// - domain: JSON object tree, query parameters, envelopes and diagnostics
// - request: Token/debug configuration and URL assembly
// - lookup: CNPJ and CEP operations and envelope interpretation
// - errors: Upstream and transport error kinds
// - interfaces: Contracts for external dependencies (HTTP, logger)
//
// # Usage Example
//
//	import (
//	    "hubdev-client/core/interfaces"
//	    "hubdev-client/core/lookup"
//	    "hubdev-client/core/request"
//	)
//
//	builder := request.NewBuilder(request.DefaultConfig())
//	builder.SetToken("my-token")
//
//	service := lookup.NewService(builder, interfaces.Dependencies{
//	    HTTPClient: myHTTPClient, // implements interfaces.HTTPClient
//	    Logger:     myLogger,     // implements interfaces.Logger
//	})
//
//	result, err := service.CEP(ctx, "01001000", nil)
package core
