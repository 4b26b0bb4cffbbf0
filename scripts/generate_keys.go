//go:build ignore

// Prints fresh secrets for an inspection-service .env file.
// Run with: go run scripts/generate_keys.go [-api-keys N]
package main

import (
	"crypto/rand"
	"encoding/base64"
	"encoding/hex"
	"flag"
	"fmt"
	"os"
	"strings"
)

func randomBytes(n int) ([]byte, error) {
	b := make([]byte, n)
	if _, err := rand.Read(b); err != nil {
		return nil, err
	}
	return b, nil
}

func main() {
	apiKeys := flag.Int("api-keys", 1, "number of API keys to generate (one per floor tablet)")
	flag.Parse()

	if *apiKeys < 1 {
		fmt.Fprintln(os.Stderr, "api-keys must be at least 1")
		os.Exit(2)
	}

	jwt, err := randomBytes(32)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to generate JWT secret: %v\n", err)
		os.Exit(1)
	}

	keys := make([]string, 0, *apiKeys)
	for i := 0; i < *apiKeys; i++ {
		b, err := randomBytes(24)
		if err != nil {
			fmt.Fprintf(os.Stderr, "failed to generate API key: %v\n", err)
			os.Exit(1)
		}
		keys = append(keys, base64.RawURLEncoding.EncodeToString(b))
	}

	// MinIO secret keys must be 8-40 characters.
	minio, err := randomBytes(20)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to generate MinIO secret: %v\n", err)
		os.Exit(1)
	}

	fmt.Println("# Inspection service secrets")
	fmt.Println("AUTH_ENABLED=true")
	fmt.Printf("JWT_SECRET_KEY=%s\n", base64.StdEncoding.EncodeToString(jwt))
	fmt.Printf("API_KEYS=%s\n", strings.Join(keys, ","))
	fmt.Printf("MINIO_SECRET_KEY=%s\n", hex.EncodeToString(minio))
}
