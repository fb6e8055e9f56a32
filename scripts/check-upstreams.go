package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/denisAlshanov/recipeGrab/internal/config"
	"github.com/denisAlshanov/recipeGrab/internal/services/recipe"
	"github.com/denisAlshanov/recipeGrab/internal/services/youtube"
)

const defaultVideoURL = "https://www.youtube.com/watch?v=dQw4w9WgXcQ"

func main() {
	fmt.Println("Upstream API Check")
	fmt.Println("==================")

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	videoURL := defaultVideoURL
	if len(os.Args) > 1 {
		videoURL = os.Args[1]
	}

	videoID, ok := youtube.ExtractVideoID(videoURL)
	if !ok {
		log.Fatalf("Not a YouTube video URL: %s", videoURL)
	}
	fmt.Printf("Video ID: %s\n", videoID)
	fmt.Printf("Thumbnail: %s\n\n", youtube.ThumbnailURL(videoID))

	ctx := context.Background()

	client, err := youtube.NewClient(ctx, &cfg.YouTube)
	if err != nil {
		log.Fatalf("Failed to create YouTube client: %v", err)
	}
	if !client.Configured() {
		log.Fatal("YOUTUBE_API_KEY not set - get a key from https://console.cloud.google.com/apis/credentials")
	}

	meta, err := client.GetVideoMetadata(ctx, videoID)
	if err != nil {
		log.Fatalf("Video lookup failed: %v", err)
	}
	fmt.Printf("Title: %s\n", meta.Title)
	fmt.Printf("Channel: %s\n", meta.ChannelTitle)
	fmt.Printf("Published: %s\n", meta.PublishedAt)
	fmt.Printf("Description: %d characters\n\n", len([]rune(meta.Description)))

	extractor := recipe.NewExtractor(&cfg.OpenAI)
	if !extractor.Configured() {
		fmt.Println("OPENAI_API_KEY not set - skipping recipe extraction")
		return
	}

	fmt.Printf("Extracting recipe with %s...\n", cfg.OpenAI.Model)
	parsed := extractor.Extract(ctx, meta.Description)
	if parsed.IsEmpty() {
		fmt.Println("No recipe found (or extraction failed - check the logs)")
		return
	}

	fmt.Println("\nINGREDIENTS:")
	for _, item := range parsed.Ingredients {
		fmt.Printf("  - %s\n", item)
	}
	fmt.Println("\nINSTRUCTIONS:")
	for i, step := range parsed.Instructions {
		fmt.Printf("  %d. %s\n", i+1, strings.TrimSpace(step))
	}
}
