// Package main provides the Quran Foundation credential check tool.
package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/alecthomas/kingpin/v2"
	"github.com/joho/godotenv"

	"github.com/osa030/tilawah/internal/infra/qf"
)

var (
	app          = kingpin.New("tilawah-auth", "Quran Foundation credential check for tilawah")
	clientID     = app.Flag("client-id", "Quran Foundation Client ID").Envar("QF_CLIENT_ID").Required().String()
	clientSecret = app.Flag("client-secret", "Quran Foundation Client Secret").Envar("QF_CLIENT_SECRET").Required().String()
	tokenURL     = app.Flag("token-url", "OAuth2 token endpoint").Default(qf.DefaultTokenURL).String()
	baseURL      = app.Flag("base-url", "Content API base URL").Default(qf.DefaultBaseURL).String()
	listChapters = app.Flag("list-chapters", "Also fetch the chapter list").Bool()
)

func main() {
	// Load .env file if it exists (errors are ignored)
	_ = godotenv.Load()

	// Parse flags
	kingpin.MustParse(app.Parse(os.Args[1:]))

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	client, err := qf.New(ctx, qf.Config{
		ClientID:     *clientID,
		ClientSecret: *clientSecret,
		TokenURL:     *tokenURL,
		BaseURL:      *baseURL,
	})
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		os.Exit(1)
	}

	expiry, err := client.CheckCredentials(ctx)
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		os.Exit(1)
	}

	fmt.Println("\n=== CREDENTIALS OK ===")
	fmt.Printf("Token expires at: %s (in %v)\n", expiry.Format(time.RFC3339), time.Until(expiry).Round(time.Second))

	if *listChapters {
		chapters, err := client.ListChapters(ctx)
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("\nChapters (%d):\n", len(chapters))
		for _, c := range chapters {
			fmt.Printf("  %3d. %-20s %s\n", c.Number, c.EnglishName, c.EnglishNameTranslation)
		}
	}

	fmt.Println("\nAdd these to your .env file:")
	fmt.Printf("QF_CLIENT_ID=%s\n", *clientID)
	fmt.Println("QF_CLIENT_SECRET=<your secret>")
}
