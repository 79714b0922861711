// Package main provides the reader CLI entry point for testing.
package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"connectrpc.com/connect"
	"github.com/alecthomas/kingpin/v2"
	"github.com/joho/godotenv"
	"google.golang.org/protobuf/types/known/emptypb"

	readerv1 "github.com/osa030/tilawah/internal/gen/tilawah/reader/v1"
	"github.com/osa030/tilawah/internal/gen/tilawah/reader/v1/readerv1connect"
)

var (
	app    = kingpin.New("tilawah-readercli", "tilawah reader client for testing")
	server = app.Flag("server", "Server address").Default("http://localhost:8080").String()

	// chapters command
	chaptersCmd   = app.Command("chapters", "List chapters")
	chaptersQuery = chaptersCmd.Arg("query", "Filter by name or number").String()

	// select command
	selectCmd    = app.Command("select", "Load a chapter")
	selectNumber = selectCmd.Arg("number", "Chapter number").Int32()
	selectNext   = selectCmd.Flag("next", "Load the following chapter").Bool()
	selectPrev   = selectCmd.Flag("prev", "Load the preceding chapter").Bool()

	// chapter command
	chapterCmd = app.Command("chapter", "Show the loaded chapter")

	// play command
	playCmd         = app.Command("play", "Play a verse")
	playVerse       = playCmd.Arg("verse", "Global verse number").Required().Int32()
	playGesture     = playCmd.Flag("gesture", "Gesture that triggered playback (click, keypress, touchend, touchstart, scroll)").String()
	playInteractive = playCmd.Flag("interactive", "Gesture targets an interactive control").Default("true").Bool()

	// stop command
	stopCmd = app.Command("stop", "Stop playback")

	// interact command
	interactCmd         = app.Command("interact", "Report a user interaction")
	interactGesture     = interactCmd.Arg("gesture", "Gesture (click, keypress, touchend, touchstart, scroll)").Default("click").String()
	interactInteractive = interactCmd.Flag("interactive", "Gesture targets an interactive control").Bool()

	// bookmark commands
	bookmarkCmd         = app.Command("bookmark", "Manage bookmarks")
	bookmarkAddCmd      = bookmarkCmd.Command("add", "Bookmark a verse")
	bookmarkAddVerse    = bookmarkAddCmd.Arg("verse", "Global verse number").Required().Int32()
	bookmarkRemoveCmd   = bookmarkCmd.Command("remove", "Remove a bookmark")
	bookmarkRemoveVerse = bookmarkRemoveCmd.Arg("verse", "Global verse number").Required().Int32()
	bookmarkToggleCmd   = bookmarkCmd.Command("toggle", "Toggle a bookmark")
	bookmarkToggleVerse = bookmarkToggleCmd.Arg("verse", "Global verse number").Required().Int32()
	bookmarkListCmd     = bookmarkCmd.Command("list", "List bookmarks")

	// goto command
	gotoCmd     = app.Command("goto", "Open a bookmarked verse")
	gotoChapter = gotoCmd.Arg("chapter", "Chapter number").Required().Int32()
	gotoVerse   = gotoCmd.Arg("verse", "Verse number within the chapter").Required().Int32()

	// share command
	shareCmd   = app.Command("share", "Share a verse")
	shareVerse = shareCmd.Arg("verse", "Global verse number").Required().Int32()

	// status command
	statusCmd = app.Command("status", "Show reader status")

	// subscribe command
	subscribeCmd = app.Command("subscribe", "Subscribe to notices")
)

func main() {
	// Load .env file if it exists (errors are ignored)
	_ = godotenv.Load()

	// Parse command
	command := kingpin.MustParse(app.Parse(os.Args[1:]))

	// Create client
	client := readerv1connect.NewReaderServiceClient(
		http.DefaultClient,
		*server,
	)

	ctx := context.Background()

	// Execute command
	switch command {
	case chaptersCmd.FullCommand():
		listChapters(ctx, client, *chaptersQuery)
	case selectCmd.FullCommand():
		selectChapter(ctx, client)
	case chapterCmd.FullCommand():
		resp, err := client.GetChapter(ctx, connect.NewRequest(&emptypb.Empty{}))
		exitOnError(err)
		printChapter(resp.Msg)
	case playCmd.FullCommand():
		play(ctx, client)
	case stopCmd.FullCommand():
		resp, err := client.Stop(ctx, connect.NewRequest(&emptypb.Empty{}))
		exitOnError(err)
		printPlayback(resp.Msg)
	case interactCmd.FullCommand():
		resp, err := client.Interact(ctx, connect.NewRequest(&readerv1.InteractRequest{
			Interaction: &readerv1.Interaction{Gesture: *interactGesture, Interactive: *interactInteractive},
		}))
		exitOnError(err)
		fmt.Printf("Qualifies: %v, state: %s\n", resp.Msg.Qualifies, resp.Msg.State)
	case bookmarkAddCmd.FullCommand():
		resp, err := client.AddBookmark(ctx, connect.NewRequest(&readerv1.BookmarkRequest{VerseNumber: *bookmarkAddVerse}))
		exitOnError(err)
		if resp.Msg.Added {
			fmt.Printf("Bookmarked %d:%d\n", resp.Msg.Bookmark.ChapterNumber, resp.Msg.Bookmark.NumberInChapter)
		} else {
			fmt.Println("Already bookmarked")
		}
	case bookmarkRemoveCmd.FullCommand():
		resp, err := client.RemoveBookmark(ctx, connect.NewRequest(&readerv1.BookmarkRequest{VerseNumber: *bookmarkRemoveVerse}))
		exitOnError(err)
		if resp.Msg.Removed {
			fmt.Println("Bookmark removed")
		} else {
			fmt.Println("Not bookmarked")
		}
	case bookmarkToggleCmd.FullCommand():
		resp, err := client.ToggleBookmark(ctx, connect.NewRequest(&readerv1.BookmarkRequest{VerseNumber: *bookmarkToggleVerse}))
		exitOnError(err)
		fmt.Printf("Bookmarked: %v\n", resp.Msg.Bookmarked)
	case bookmarkListCmd.FullCommand():
		listBookmarks(ctx, client)
	case gotoCmd.FullCommand():
		resp, err := client.SelectBookmark(ctx, connect.NewRequest(&readerv1.SelectBookmarkRequest{
			ChapterNumber:   *gotoChapter,
			NumberInChapter: *gotoVerse,
		}))
		exitOnError(err)
		fmt.Printf("Focused verse %d\n", resp.Msg.VerseNumber)
	case shareCmd.FullCommand():
		resp, err := client.Share(ctx, connect.NewRequest(&readerv1.ShareRequest{VerseNumber: *shareVerse}))
		exitOnError(err)
		if resp.Msg.Aborted {
			fmt.Println("Share cancelled")
		} else {
			fmt.Printf("Shared via %s\n", resp.Msg.Method)
		}
	case statusCmd.FullCommand():
		resp, err := client.GetStatus(ctx, connect.NewRequest(&emptypb.Empty{}))
		exitOnError(err)
		printStatus(resp.Msg)
	case subscribeCmd.FullCommand():
		subscribe(ctx, client)
	}
}

func exitOnError(err error) {
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		os.Exit(1)
	}
}

func listChapters(ctx context.Context, client readerv1connect.ReaderServiceClient, query string) {
	resp, err := client.ListChapters(ctx, connect.NewRequest(&readerv1.ListChaptersRequest{Query: query}))
	exitOnError(err)

	for _, c := range resp.Msg.Chapters {
		fmt.Printf("%3d. %-20s %-10s %3d verses  %s\n", c.Number, c.EnglishName, c.RevelationType, c.NumberOfVerses, c.EnglishNameTranslation)
	}
}

func selectChapter(ctx context.Context, client readerv1connect.ReaderServiceClient) {
	req := &readerv1.SelectChapterRequest{Number: *selectNumber}
	switch {
	case *selectNext:
		req.Direction = readerv1.Direction_DIRECTION_NEXT
	case *selectPrev:
		req.Direction = readerv1.Direction_DIRECTION_PREV
	case *selectNumber == 0:
		fmt.Println("Error: chapter number, --next or --prev is required")
		os.Exit(1)
	}

	resp, err := client.SelectChapter(ctx, connect.NewRequest(req))
	exitOnError(err)
	printChapter(resp.Msg)
}

func play(ctx context.Context, client readerv1connect.ReaderServiceClient) {
	req := &readerv1.PlayRequest{VerseNumber: *playVerse}
	if *playGesture != "" {
		req.Interaction = &readerv1.Interaction{Gesture: *playGesture, Interactive: *playInteractive}
	}

	resp, err := client.Play(ctx, connect.NewRequest(req))
	exitOnError(err)
	printPlayback(resp.Msg)
}

func listBookmarks(ctx context.Context, client readerv1connect.ReaderServiceClient) {
	resp, err := client.ListBookmarks(ctx, connect.NewRequest(&emptypb.Empty{}))
	exitOnError(err)

	if len(resp.Msg.Bookmarks) == 0 {
		fmt.Println("No bookmarks")
		return
	}
	for _, b := range resp.Msg.Bookmarks {
		fmt.Printf("%d:%d  %s\n", b.ChapterNumber, b.NumberInChapter, b.ChapterName)
		fmt.Printf("    %s\n", b.VerseText)
		if b.Translation != "" {
			fmt.Printf("    %s\n", b.Translation)
		}
	}
}

func printChapter(c *readerv1.ChapterResponse) {
	if c.Chapter == nil {
		fmt.Println("No chapter loaded")
		return
	}
	fmt.Printf("\n=== %d. %s (%s) ===\n", c.Chapter.Number, c.Chapter.EnglishName, c.Chapter.Name)
	for _, v := range c.Verses {
		marker := " "
		if v.Playing {
			marker = ">"
		}
		if v.Bookmarked {
			marker += "*"
		} else {
			marker += " "
		}
		fmt.Printf("%s %3d [%d] %s\n", marker, v.NumberInChapter, v.Number, v.Text)
		if v.Translation != "" {
			fmt.Printf("         %s\n", v.Translation)
		}
	}
}

func printPlayback(p *readerv1.PlaybackResponse) {
	fmt.Printf("State: %s", p.State)
	if p.ActiveVerse != 0 {
		fmt.Printf(", verse %d", p.ActiveVerse)
	}
	fmt.Println()
}

func printStatus(s *readerv1.StatusResponse) {
	fmt.Printf("Phase: %s\n", s.Phase)
	if s.ChapterNumber != 0 {
		fmt.Printf("Chapter: %d (%s)\n", s.ChapterNumber, s.ChapterName)
	}
	fmt.Printf("Playback: %s (verse %d)\n", s.PlaybackState, s.ActiveVerse)
	if s.Error != "" {
		fmt.Printf("Error: %s\n", s.Error)
	}
	if s.Notice != nil {
		fmt.Printf("Notice: %s\n", s.Notice.Text)
	}
}

func subscribe(ctx context.Context, client readerv1connect.ReaderServiceClient) {
	stream, err := client.SubscribeNotices(ctx, connect.NewRequest(&emptypb.Empty{}))
	exitOnError(err)

	fmt.Println("Subscribed to notices. Press Ctrl+C to exit.")

	// Handle shutdown signal
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		<-sigCh
		fmt.Println("\nUnsubscribing...")
		os.Exit(0)
	}()

	// Receive notices
	for stream.Receive() {
		printNotice(stream.Msg())
	}

	if err := stream.Err(); err != nil {
		fmt.Printf("Stream error: %v\n", err)
	}
}

func printNotice(n *readerv1.NoticeInfo) {
	fmt.Printf("[Sequence: %d] ", n.SequenceNo)
	switch {
	case n.Initial:
		fmt.Print("(current) ")
	case n.Cleared:
		fmt.Println("cleared")
		return
	}
	fmt.Printf("%s: %s", n.Action, n.Text)
	if n.VerseNumber != 0 {
		fmt.Printf(" (verse %d)", n.VerseNumber)
	}
	fmt.Printf(" until %s\n", n.ExpiresAt)
}
