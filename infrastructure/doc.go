// Package infrastructure provides concrete implementations of the interfaces
// defined in the core package.
//
// - http/resty: go-resty transport, the default
// - http/standard: net/http transport with httptrace diagnostics
// - http/middleware: request IDs and a logging RoundTripper shared by both
// - logger/logrus: logrus-backed structured logger
//
// # HTTP Client
//
// Both transports follow up to 10 redirects, never retry and use one timeout
// for connection setup and for the whole exchange:
//
//	client := resty.NewClient(180*time.Second, logger)
//	envelope, err := client.Do(ctx, interfaces.Request{
//	    Method: http.MethodGet,
//	    URL:    "https://ws.hubdodesenvolvedor.com.br/v2/cep3?cep=01001000&token=...",
//	    Debug:  true,
//	})
//
// # Logger
//
//	logger, err := logrus.NewLogger("debug", os.Stderr)
//	logger.Info("Lookup finished", map[string]interface{}{
//	    "lookup": "CEP",
//	})
package infrastructure
