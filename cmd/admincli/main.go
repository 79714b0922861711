// Package main provides the admin CLI entry point.
package main

import (
	"context"
	"fmt"
	"net/http"
	"os"

	"connectrpc.com/connect"
	"github.com/alecthomas/kingpin/v2"
	"github.com/joho/godotenv"
	"google.golang.org/protobuf/types/known/emptypb"

	apiconnect "github.com/osa030/tilawah/internal/api/connect"
	readerv1 "github.com/osa030/tilawah/internal/gen/tilawah/reader/v1"
	"github.com/osa030/tilawah/internal/gen/tilawah/reader/v1/readerv1connect"
)

var (
	app    = kingpin.New("tilawah-admincli", "tilawah reader admin client")
	server = app.Flag("server", "Server address").Default("http://localhost:8080").String()
	token  = app.Flag("token", "Admin token (or set ADMIN_TOKEN env)").Envar("ADMIN_TOKEN").String()

	// status command
	statusCmd = app.Command("status", "Get reader status")

	// reset command
	resetCmd = app.Command("reset", "Stop playback and clear the parked verse")
)

func main() {
	// Load .env file if it exists (errors are ignored)
	_ = godotenv.Load()

	// Parse command
	command := kingpin.MustParse(app.Parse(os.Args[1:]))

	// Check admin token
	if *token == "" {
		fmt.Println("Error: admin token is required (use --token or ADMIN_TOKEN env)")
		os.Exit(1)
	}

	// Create client
	client := readerv1connect.NewAdminServiceClient(
		http.DefaultClient,
		*server,
	)

	ctx := context.Background()

	// Execute command
	switch command {
	case statusCmd.FullCommand():
		status(ctx, client, *token)
	case resetCmd.FullCommand():
		reset(ctx, client, *token)
	}
}

func status(ctx context.Context, client readerv1connect.AdminServiceClient, token string) {
	req := connect.NewRequest(&emptypb.Empty{})
	req.Header().Set(apiconnect.AdminTokenHeader, token)
	resp, err := client.GetStatus(ctx, req)
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		os.Exit(1)
	}

	printStatus(resp.Msg)
}

func reset(ctx context.Context, client readerv1connect.AdminServiceClient, token string) {
	req := connect.NewRequest(&emptypb.Empty{})
	req.Header().Set(apiconnect.AdminTokenHeader, token)
	resp, err := client.ResetPlayback(ctx, req)
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		os.Exit(1)
	}

	if resp.Msg.Success {
		fmt.Printf("Success: %s\n", resp.Msg.Message)
	} else {
		fmt.Printf("Failed: %s\n", resp.Msg.Message)
	}
}

func printStatus(s *readerv1.StatusResponse) {
	fmt.Println("\n=== CURRENT READER STATUS ===")
	fmt.Printf("Session ID: %s\n", s.SessionId)
	fmt.Printf("Provider: %s\n", s.Provider)

	fmt.Println("\nView:")
	fmt.Printf("  Phase: %s\n", s.Phase)
	if s.ChapterNumber != 0 {
		fmt.Printf("  Chapter: %d (%s)\n", s.ChapterNumber, s.ChapterName)
	}
	if s.FocusVerse != 0 {
		fmt.Printf("  Focus Verse: %d\n", s.FocusVerse)
	}
	if s.PendingScroll != nil {
		fmt.Printf("  Pending Scroll: %d:%d\n", s.PendingScroll.ChapterNumber, s.PendingScroll.NumberInChapter)
	}
	if s.Error != "" {
		fmt.Printf("  Error: %s\n", s.Error)
	}

	fmt.Println("\nPlayback:")
	fmt.Printf("  State: %s\n", s.PlaybackState)
	fmt.Printf("  Active Verse: %d\n", s.ActiveVerse)
	fmt.Printf("  Pending Verse: %d\n", s.PendingVerse)
	fmt.Printf("  Audio Enabled: %v\n", s.PermissionGranted)

	if s.Notice != nil {
		fmt.Printf("\nNotice: %s (%s, expires %s)\n", s.Notice.Text, s.Notice.Action, s.Notice.ExpiresAt)
	}
	fmt.Println()
}
