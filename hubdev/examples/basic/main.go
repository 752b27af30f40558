// ABOUTME: Basic example showing CNPJ and CEP lookups with the hubdev library
// ABOUTME: Demonstrates minimal configuration and error handling

package main

import (
	"context"
	"fmt"
	"log"
	"os"

	"hubdev-client/hubdev"
)

func main() {
	client, err := hubdev.NewClient(
		hubdev.WithToken(os.Getenv("HUBDEV_TOKEN")),
		hubdev.WithDebug(false),
	)
	if err != nil {
		log.Fatal("Failed to create client:", err)
	}

	ctx := context.Background()

	fmt.Println("=== CEP ===")
	address, err := client.ConsultaCEP(ctx, "01001000")
	if err != nil {
		log.Printf("Error looking up CEP: %v\n", err)
	} else {
		fmt.Printf("%s, %s\n", address.String("logradouro"), address.String("localidade"))
	}

	fmt.Println("\n=== CNPJ ===")
	company, err := client.ConsultaCNPJ(ctx, "00000000000191", hubdev.Param("ignore_db", "true"))
	switch {
	case hubdev.IsUpstreamError(err):
		log.Printf("API rejected the lookup: %v\n", err)
	case err != nil:
		log.Printf("Error looking up CNPJ: %v\n", err)
	default:
		fmt.Printf("Company: %s\n", company.String("nome"))
	}

	// Diagnostics are available through the Lookup variants
	client.SetDebug(true)
	lookup, err := client.LookupCEP(ctx, "01001000")
	if err == nil && lookup.Envelope.Debug != nil {
		fmt.Printf("\nRequest to %s took %v\n",
			lookup.Envelope.Debug.EffectiveURL, lookup.Envelope.Debug.TotalTime)
	}
}
